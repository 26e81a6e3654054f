package termgrid

import (
	"fmt"
	"strings"
)

func (b *Buffer) checkScreenPos(col, row int) error {
	if row < 0 || row >= b.height {
		return fmt.Errorf("row %d not in [0, %d]: %w", row, b.height-1, ErrOutOfRange)
	}
	if col < 0 || col >= b.width {
		return fmt.Errorf("column %d not in [0, %d]: %w", col, b.width-1, ErrOutOfRange)
	}
	return nil
}

func (b *Buffer) checkScrollbackRow(row int) error {
	if row < 0 || row >= len(b.scrollback) {
		return fmt.Errorf("scrollback row %d not in [0, %d]: %w", row, len(b.scrollback)-1, ErrOutOfRange)
	}
	return nil
}

// GetCellAt returns the full cell at a screen position.
func (b *Buffer) GetCellAt(col, row int) (Cell, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if err := b.checkScreenPos(col, row); err != nil {
		return Cell{}, err
	}
	return b.screen[row].cells[col], nil
}

// GetCharAt returns the character at a screen position. The second column
// of a wide character reports the placeholder's space.
func (b *Buffer) GetCharAt(col, row int) (rune, error) {
	cell, err := b.GetCellAt(col, row)
	if err != nil {
		return 0, err
	}
	return cell.Char, nil
}

// GetAttributesAt returns the attributes at a screen position.
func (b *Buffer) GetAttributesAt(col, row int) (Attributes, error) {
	cell, err := b.GetCellAt(col, row)
	if err != nil {
		return Attributes{}, err
	}
	return cell.Attrs, nil
}

// GetLine returns one screen row as text, trailing spaces trimmed.
func (b *Buffer) GetLine(row int) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if row < 0 || row >= b.height {
		return "", fmt.Errorf("row %d not in [0, %d]: %w", row, b.height-1, ErrOutOfRange)
	}
	return b.screen[row].GetText(), nil
}

// GetScreenContent returns the visible screen as a single string, rows
// joined by newlines. An empty screen of n rows yields n-1 newlines.
func (b *Buffer) GetScreenContent() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	rows := make([]string, b.height)
	for i, line := range b.screen {
		rows[i] = line.GetText()
	}
	return strings.Join(rows, "\n")
}

// GetScrollbackSize returns the number of lines currently in history.
func (b *Buffer) GetScrollbackSize() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.scrollback)
}

// GetScrollbackLine returns one history row as text, oldest row first.
func (b *Buffer) GetScrollbackLine(row int) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if err := b.checkScrollbackRow(row); err != nil {
		return "", err
	}
	return b.scrollback[row].GetText(), nil
}

// GetScrollbackCharAt returns the character at a history position.
func (b *Buffer) GetScrollbackCharAt(col, row int) (rune, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if err := b.checkScrollbackRow(row); err != nil {
		return 0, err
	}
	cell, err := b.scrollback[row].GetCell(col)
	if err != nil {
		return 0, err
	}
	return cell.Char, nil
}

// GetScrollbackAttributesAt returns the attributes at a history position.
func (b *Buffer) GetScrollbackAttributesAt(col, row int) (Attributes, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if err := b.checkScrollbackRow(row); err != nil {
		return Attributes{}, err
	}
	cell, err := b.scrollback[row].GetCell(col)
	if err != nil {
		return Attributes{}, err
	}
	return cell.Attrs, nil
}

// GetAllContent returns history plus screen as one string: scrollback
// lines oldest first, then the screen rows, all joined by newlines.
func (b *Buffer) GetAllContent() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	rows := make([]string, 0, len(b.scrollback)+b.height)
	for _, line := range b.scrollback {
		rows = append(rows, line.GetText())
	}
	for _, line := range b.screen {
		rows = append(rows, line.GetText())
	}
	return strings.Join(rows, "\n")
}
