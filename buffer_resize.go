package termgrid

import "fmt"

// Resize changes the screen dimensions, reconciling scrollback and cursor.
//
// The width phase runs first: every line in screen and scrollback is
// truncated or extended, clearing a wide head that would be cut in half at
// the new right edge. The height phase then shrinks by pushing top lines
// into the scrollback, or grows by recovering the most recent scrollback
// lines above the current top and padding the bottom with empty lines.
// The cursor is finally clamped into the new screen.
func (b *Buffer) Resize(newWidth, newHeight int) error {
	if newWidth < 1 || newHeight < 1 {
		return fmt.Errorf("resize to %dx%d: %w", newWidth, newHeight, ErrInvalidSize)
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if newWidth != b.width {
		b.resizeWidth(newWidth)
	}
	if newHeight < b.height {
		b.shrinkHeight(newHeight)
	} else if newHeight > b.height {
		b.growHeight(newHeight)
	}

	b.cursorCol = clamp(b.cursorCol, 0, b.width-1)
	b.cursorRow = clamp(b.cursorRow, 0, b.height-1)
	b.markDirty()
	return nil
}

func (b *Buffer) resizeWidth(newWidth int) {
	shrinking := newWidth < b.width
	for _, line := range b.screen {
		resizeLine(line, newWidth, shrinking)
	}
	for _, line := range b.scrollback {
		resizeLine(line, newWidth, shrinking)
	}
	b.width = newWidth
}

// resizeLine adjusts one line to the new width. When shrinking, a wide
// head landing in the new last column loses its placeholder to the cut,
// so the head is blanked before truncation.
func resizeLine(line *Line, newWidth int, shrinking bool) {
	if shrinking && line.cells[newWidth-1].Kind == CellWideHead {
		line.cells[newWidth-1] = EmptyCell
	}
	line.Resize(newWidth)
}

// shrinkHeight removes lines from the top of the screen into the
// scrollback. The cursor row moves up with its line; the final clamp in
// Resize catches a cursor whose line was pushed out.
func (b *Buffer) shrinkHeight(newHeight int) {
	removed := b.height - newHeight
	for i := 0; i < removed; i++ {
		b.pushScrollback(b.screen[i])
	}
	b.screen = b.screen[removed:]
	b.height = newHeight
	b.cursorRow -= removed
}

// growHeight recovers the most recent scrollback lines above the current
// top, newest closest to the old top, then pads the bottom with empty
// lines once history runs out. The cursor row moves down with its line.
func (b *Buffer) growHeight(newHeight int) {
	needed := newHeight - b.height
	recovered := 0
	for recovered < needed && len(b.scrollback) > 0 {
		last := b.scrollback[len(b.scrollback)-1]
		b.scrollback = b.scrollback[:len(b.scrollback)-1]
		b.screen = append([]*Line{last}, b.screen...)
		recovered++
	}
	for i := recovered; i < needed; i++ {
		b.screen = append(b.screen, newLine(b.width))
	}
	b.height = newHeight
	b.cursorRow += recovered
}
