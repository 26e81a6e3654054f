package termgrid

// WriteText writes text at the cursor in overwrite mode, advancing the
// cursor and wrapping/scrolling as needed. Wide characters take two cells;
// writing over either half of an existing wide pair clears the whole pair.
func (b *Buffer) WriteText(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, r := range text {
		b.writeRune(r)
	}
	b.markDirty()
}

// InsertText inserts text at the cursor, shifting the rest of the row
// right. Cells pushed past the right edge are discarded, never wrapped.
func (b *Buffer) InsertText(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, r := range text {
		b.insertRune(r)
	}
	b.markDirty()
}

// FillLine replaces every cell of the cursor's row with the character in
// the current attributes. The cursor does not move. Fill ignores display
// width: wide characters land as ordinary single cells here.
func (b *Buffer) FillLine(ch rune) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.screen[b.cursorRow].Fill(ch, b.attrs)
	b.markDirty()
}

// writeRune is one step of WriteText, lock held.
func (b *Buffer) writeRune(r rune) {
	if b.cursorCol >= b.width {
		b.wrapCursor()
	}
	line := b.screen[b.cursorRow]

	if !IsWide(r) {
		b.clearWidePair(line, b.cursorCol)
		line.cells[b.cursorCol] = NewCell(r, b.attrs)
		b.cursorCol++
		return
	}

	// A wide character cannot exist in a one-column buffer; write an empty
	// cell and keep going so the cursor still advances per character.
	if b.width < 2 {
		line.cells[b.cursorCol] = EmptyCell
		b.cursorCol++
		return
	}

	// No room for both halves at the last column: blank it and wrap first.
	if b.cursorCol == b.width-1 {
		b.clearWidePair(line, b.cursorCol)
		line.cells[b.cursorCol] = EmptyCell
		b.wrapCursor()
		line = b.screen[b.cursorRow]
	}

	b.clearWidePair(line, b.cursorCol)
	b.clearWidePair(line, b.cursorCol+1)
	line.cells[b.cursorCol] = WideHeadCell(r, b.attrs)
	line.cells[b.cursorCol+1] = PlaceholderCell(b.attrs)
	b.cursorCol += 2
}

// insertRune is one step of InsertText, lock held.
func (b *Buffer) insertRune(r rune) {
	if b.cursorCol >= b.width {
		b.wrapCursor()
	}
	line := b.screen[b.cursorRow]

	if !IsWide(r) {
		// Inserting in front of a placeholder would strand its head.
		if line.cells[b.cursorCol].Kind == CellWidePlaceholder {
			b.clearWidePair(line, b.cursorCol)
		}
		shiftRight(line, b.cursorCol, 1)
		line.cells[b.cursorCol] = NewCell(r, b.attrs)
		trimSplitPair(line)
		b.cursorCol++
		return
	}

	if b.width < 2 {
		line.cells[b.cursorCol] = EmptyCell
		b.cursorCol++
		return
	}

	if b.cursorCol == b.width-1 {
		b.clearWidePair(line, b.cursorCol)
		line.cells[b.cursorCol] = EmptyCell
		b.wrapCursor()
		line = b.screen[b.cursorRow]
	}

	if line.cells[b.cursorCol].Kind == CellWidePlaceholder {
		b.clearWidePair(line, b.cursorCol)
	}
	shiftRight(line, b.cursorCol, 2)
	line.cells[b.cursorCol] = WideHeadCell(r, b.attrs)
	line.cells[b.cursorCol+1] = PlaceholderCell(b.attrs)
	trimSplitPair(line)
	b.cursorCol += 2
}

// wrapCursor resolves a pending wrap (or forces one): cursor to column 0
// of the next row, scrolling if the cursor was on the last row.
func (b *Buffer) wrapCursor() {
	b.cursorCol = 0
	b.cursorRow++
	if b.cursorRow >= b.height {
		b.scrollUp()
		b.cursorRow = b.height - 1
	}
}

// clearWidePair blanks the wide pair covering the given column, if any.
// Both halves become empty; a normal cell at the column is left alone.
func (b *Buffer) clearWidePair(line *Line, col int) {
	switch line.cells[col].Kind {
	case CellWideHead:
		line.cells[col] = EmptyCell
		if col+1 < len(line.cells) {
			line.cells[col+1] = EmptyCell
		}
	case CellWidePlaceholder:
		line.cells[col] = EmptyCell
		if col > 0 {
			line.cells[col-1] = EmptyCell
		}
	}
}

// shiftRight moves cells [from, width-n) right by n, discarding the cells
// that fall off the right edge. Whole cells move: attributes and wide
// metadata travel with their characters.
func shiftRight(line *Line, from, n int) {
	for col := len(line.cells) - 1; col >= from+n; col-- {
		line.cells[col] = line.cells[col-n]
	}
}

// trimSplitPair blanks a wide head shifted into the last column, whose
// placeholder was just discarded off the edge.
func trimSplitPair(line *Line) {
	last := len(line.cells) - 1
	if line.cells[last].Kind == CellWideHead {
		line.cells[last] = EmptyCell
	}
}
