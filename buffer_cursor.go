package termgrid

import "fmt"

// CursorPosition is a cursor location: column then row, zero-based.
type CursorPosition struct {
	Column int
	Row    int
}

func (p CursorPosition) String() string {
	return fmt.Sprintf("(%d, %d)", p.Column, p.Row)
}

// GetCursorPosition returns the current cursor location. Column can equal
// the width when a wrap is pending.
func (b *Buffer) GetCursorPosition() CursorPosition {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return CursorPosition{Column: b.cursorCol, Row: b.cursorRow}
}

// SetCursorPosition moves the cursor, clamping both coordinates into the
// screen. Out-of-range requests never fail; they snap to the nearest edge.
func (b *Buffer) SetCursorPosition(col, row int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorCol = clamp(col, 0, b.width-1)
	b.cursorRow = clamp(row, 0, b.height-1)
	b.markDirty()
}

// MoveCursorUp moves the cursor up by n rows, stopping at the top edge.
// n <= 0 is a no-op for all four movement operations; movement never wraps
// and never scrolls.
func (b *Buffer) MoveCursorUp(n int) {
	b.moveCursor(0, -n, n)
}

// MoveCursorDown moves the cursor down by n rows, stopping at the bottom.
func (b *Buffer) MoveCursorDown(n int) {
	b.moveCursor(0, n, n)
}

// MoveCursorLeft moves the cursor left by n columns, stopping at column 0.
// A pending wrap is abandoned: the cursor lands inside the line again.
func (b *Buffer) MoveCursorLeft(n int) {
	b.moveCursor(-n, 0, n)
}

// MoveCursorRight moves the cursor right by n columns, stopping at the
// last column.
func (b *Buffer) MoveCursorRight(n int) {
	b.moveCursor(n, 0, n)
}

func (b *Buffer) moveCursor(dx, dy, n int) {
	if n <= 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorCol = clamp(b.cursorCol+dx, 0, b.width-1)
	b.cursorRow = clamp(b.cursorRow+dy, 0, b.height-1)
	b.markDirty()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
