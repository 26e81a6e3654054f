// Package cli renders a termgrid.Buffer inside a real terminal. It puts
// the host tty into raw mode, paints the grid with differential ANSI
// output, tracks host resizes via SIGWINCH, and feeds typed characters
// back into the buffer.
//
// The package is a renderer/input frontend only: it owns no grid state
// beyond the previous frame, and it never touches the buffer except
// through its public API.
package cli
