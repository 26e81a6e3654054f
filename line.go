package termgrid

import (
	"fmt"
	"strings"
)

// Line is a single row of cells with a fixed width. Lines are mutable in
// place; the Buffer owns its lines and never shares one between screen and
// scrollback.
type Line struct {
	cells []Cell
}

// NewLine creates a line of the given width filled with empty cells.
func NewLine(width int) (*Line, error) {
	if width < 1 {
		return nil, fmt.Errorf("line width %d: %w", width, ErrInvalidSize)
	}
	return newLine(width), nil
}

// newLine skips validation; callers have already checked the width.
func newLine(width int) *Line {
	l := &Line{cells: make([]Cell, width)}
	for i := range l.cells {
		l.cells[i] = EmptyCell
	}
	return l
}

// Width returns the number of cells in the line.
func (l *Line) Width() int {
	return len(l.cells)
}

func (l *Line) checkCol(col int) error {
	if col < 0 || col >= len(l.cells) {
		return fmt.Errorf("column %d not in [0, %d]: %w", col, len(l.cells)-1, ErrOutOfRange)
	}
	return nil
}

// GetCell returns the cell at the given column.
func (l *Line) GetCell(col int) (Cell, error) {
	if err := l.checkCol(col); err != nil {
		return Cell{}, err
	}
	return l.cells[col], nil
}

// SetCell replaces the cell at the given column.
func (l *Line) SetCell(col int, c Cell) error {
	if err := l.checkCol(col); err != nil {
		return err
	}
	l.cells[col] = c
	return nil
}

// GetText returns the line as a string: characters in cell order, wide
// placeholders skipped, trailing spaces trimmed. Interior spaces survive.
func (l *Line) GetText() string {
	var sb strings.Builder
	for _, c := range l.cells {
		if c.Kind == CellWidePlaceholder {
			continue
		}
		sb.WriteRune(c.Char)
	}
	return strings.TrimRight(sb.String(), " ")
}

// Fill replaces every cell with a normal cell of the given character and
// attributes. The character's display width is not consulted here: fill is
// a raw bulk overwrite, not text composition.
func (l *Line) Fill(ch rune, attrs Attributes) {
	cell := NewCell(ch, attrs)
	for i := range l.cells {
		l.cells[i] = cell
	}
}

// Clear resets every cell to empty.
func (l *Line) Clear() {
	for i := range l.cells {
		l.cells[i] = EmptyCell
	}
}

// Copy returns a deep copy sharing no cells with the original.
func (l *Line) Copy() *Line {
	cells := make([]Cell, len(l.cells))
	copy(cells, l.cells)
	return &Line{cells: cells}
}

// Resize truncates or extends the line to the new width. New cells on the
// right are empty. A wide head stranded at the cut point is the caller's
// problem; Buffer.Resize clears it before resizing the line.
func (l *Line) Resize(newWidth int) error {
	if newWidth < 1 {
		return fmt.Errorf("line width %d: %w", newWidth, ErrInvalidSize)
	}
	if newWidth == len(l.cells) {
		return nil
	}
	cells := make([]Cell, newWidth)
	n := copy(cells, l.cells)
	for i := n; i < newWidth; i++ {
		cells[i] = EmptyCell
	}
	l.cells = cells
	return nil
}
