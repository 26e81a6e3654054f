package cli

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/phroun/termgrid"
	"golang.org/x/term"
)

// BorderStyle defines the visual style for the window border
type BorderStyle int

const (
	BorderNone   BorderStyle = iota // No border
	BorderSingle                    // Single-line box drawing characters
	BorderDouble                    // Double-line box drawing characters
	BorderHeavy                     // Heavy/thick box drawing characters
	BorderRounded                   // Rounded corners (single line)
)

// Options configures terminal creation
type Options struct {
	Cols           int // Grid width in columns (default: 80)
	Rows           int // Grid height in rows (default: 24)
	ScrollbackSize int // Number of scrollback lines (default: 1000)

	// Display options
	BorderStyle BorderStyle // Border style around the window
	Title       string      // Window title (displayed in top border if applicable)
	OffsetX     int         // X offset from top-left of the host terminal
	OffsetY     int         // Y offset from top-left of the host terminal

	// If true, the grid auto-sizes to fill available space and follows
	// host resizes.
	AutoSize bool

	// If true, render a status bar at the bottom
	ShowStatusBar bool
}

// Terminal displays a termgrid.Buffer inside the host terminal and feeds
// keyboard input back into it.
type Terminal struct {
	mu sync.Mutex

	buffer  *termgrid.Buffer
	options Options

	renderer *Renderer
	input    *InputHandler

	done       chan struct{}
	stopRender chan struct{}

	// Original terminal state for restoration
	oldState *term.State

	// Actual terminal size
	hostCols int
	hostRows int

	onResize func(cols, rows int)
	onKey    func(r rune) bool // return true to consume the key
}

// New creates a terminal frontend around a fresh buffer.
func New(opts Options) (*Terminal, error) {
	if opts.Cols <= 0 {
		opts.Cols = 80
	}
	if opts.Rows <= 0 {
		opts.Rows = 24
	}
	if opts.ScrollbackSize <= 0 {
		opts.ScrollbackSize = 1000
	}

	hostCols, hostRows := getHostTerminalSize()
	if opts.AutoSize {
		opts.Cols, opts.Rows = fitToHost(opts, hostCols, hostRows)
	}

	buffer, err := termgrid.NewBuffer(opts.Cols, opts.Rows, opts.ScrollbackSize)
	if err != nil {
		return nil, fmt.Errorf("create buffer: %w", err)
	}

	t := &Terminal{
		buffer:     buffer,
		options:    opts,
		done:       make(chan struct{}),
		stopRender: make(chan struct{}),
		hostCols:   hostCols,
		hostRows:   hostRows,
	}

	t.renderer = NewRenderer(t)
	t.input = NewInputHandler(t)

	// Repaints are driven by buffer changes.
	buffer.SetDirtyCallback(func() {
		t.renderer.RequestRender()
	})

	return t, nil
}

// fitToHost computes the grid size filling the host, leaving room for
// border and status bar.
func fitToHost(opts Options, hostCols, hostRows int) (cols, rows int) {
	borderOffset := 0
	if opts.BorderStyle != BorderNone {
		borderOffset = 2
	}
	statusOffset := 0
	if opts.ShowStatusBar {
		statusOffset = 1
	}
	cols = hostCols - opts.OffsetX*2 - borderOffset
	rows = hostRows - opts.OffsetY*2 - borderOffset - statusOffset
	if cols < 20 {
		cols = 20
	}
	if rows < 5 {
		rows = 5
	}
	return cols, rows
}

// getHostTerminalSize returns the current size of the host terminal
func getHostTerminalSize() (cols, rows int) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 80, 24
	}
	return cols, rows
}

// Start enters raw mode, switches to the alternate screen, and starts the
// render and input loops.
func (t *Terminal) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	t.oldState = oldState

	// Hide host cursor, enable alternate screen, clear
	fmt.Print("\033[?25l")
	fmt.Print("\033[?1049h")
	fmt.Print("\033[2J\033[H")

	go t.handleSIGWINCH()
	go t.renderer.RenderLoop()
	go t.input.InputLoop()

	return nil
}

// handleSIGWINCH listens for host terminal resize signals
func (t *Terminal) handleSIGWINCH() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGWINCH)
	defer signal.Stop(sigChan)

	for {
		select {
		case <-sigChan:
			t.handleResize()
		case <-t.done:
			return
		}
	}
}

// handleResize propagates a host resize into the buffer when auto-sizing.
func (t *Terminal) handleResize() {
	t.mu.Lock()
	defer t.mu.Unlock()

	newCols, newRows := getHostTerminalSize()
	if newCols == t.hostCols && newRows == t.hostRows {
		return
	}
	t.hostCols = newCols
	t.hostRows = newRows

	if t.options.AutoSize {
		cols, rows := fitToHost(t.options, newCols, newRows)
		if err := t.buffer.Resize(cols, rows); err == nil {
			t.options.Cols = cols
			t.options.Rows = rows
		}
	}

	t.renderer.ForceFullRedraw()

	if t.onResize != nil {
		t.onResize(t.options.Cols, t.options.Rows)
	}
}

// WriteString feeds plain text into the buffer. Newlines advance to the
// start of the next row, scrolling at the bottom; carriage returns move
// to column 0. Everything else is written as-is — this frontend is not an
// escape-sequence interpreter.
func (t *Terminal) WriteString(s string) {
	for _, r := range s {
		switch r {
		case '\n':
			t.lineFeed()
		case '\r':
			pos := t.buffer.GetCursorPosition()
			t.buffer.SetCursorPosition(0, pos.Row)
		default:
			t.buffer.WriteText(string(r))
		}
	}
}

func (t *Terminal) lineFeed() {
	pos := t.buffer.GetCursorPosition()
	_, rows := t.buffer.GetSize()
	if pos.Row >= rows-1 {
		t.buffer.InsertEmptyLineAtBottom()
		t.buffer.SetCursorPosition(0, rows-1)
	} else {
		t.buffer.SetCursorPosition(0, pos.Row+1)
	}
}

// GetSize returns the grid size in columns and rows
func (t *Terminal) GetSize() (cols, rows int) {
	return t.buffer.GetSize()
}

// GetHostSize returns the host terminal size
func (t *Terminal) GetHostSize() (cols, rows int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.hostCols, t.hostRows
}

// Resize resizes the grid explicitly.
func (t *Terminal) Resize(cols, rows int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.buffer.Resize(cols, rows); err != nil {
		return err
	}
	t.options.Cols = cols
	t.options.Rows = rows
	t.renderer.ForceFullRedraw()
	return nil
}

// Buffer returns the underlying grid buffer
func (t *Terminal) Buffer() *termgrid.Buffer {
	return t.buffer
}

// Clear clears the grid screen
func (t *Terminal) Clear() {
	t.buffer.ClearScreen()
}

// SetOnResize sets a callback for grid resize events
func (t *Terminal) SetOnResize(fn func(cols, rows int)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onResize = fn
}

// SetOnKey sets a callback for typed runes. Return true to consume the
// key before it is echoed into the buffer.
func (t *Terminal) SetOnKey(fn func(r rune) bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onKey = fn
}

// SetTitle sets the window title shown in the border
func (t *Terminal) SetTitle(title string) {
	t.mu.Lock()
	t.options.Title = title
	t.mu.Unlock()
	t.renderer.RequestRender()
}

// Wait blocks until Stop is called (typically from the input loop).
func (t *Terminal) Wait() {
	<-t.done
}

// Stop stops the loops and restores the original terminal state.
func (t *Terminal) Stop() error {
	t.mu.Lock()
	select {
	case <-t.done:
		t.mu.Unlock()
		return nil
	default:
	}
	close(t.stopRender)
	close(t.done)
	oldState := t.oldState
	t.mu.Unlock()

	if oldState != nil {
		// Leave alternate screen, show cursor, reset attributes
		fmt.Print("\033[?1049l")
		fmt.Print("\033[?25h")
		fmt.Print("\033[0m")
		term.Restore(int(os.Stdin.Fd()), oldState)
	}

	return nil
}

// Close is an alias for Stop
func (t *Terminal) Close() error {
	return t.Stop()
}
