package termgrid

// scrollUp removes the top screen line into the scrollback and appends a
// fresh empty line at the bottom. Lock held. The screen length is height
// before and after.
func (b *Buffer) scrollUp() {
	top := b.screen[0]
	copy(b.screen, b.screen[1:])
	b.screen[b.height-1] = newLine(b.width)
	b.pushScrollback(top)
}

// pushScrollback appends a line the caller no longer references, evicting
// the oldest lines while over capacity. With no scrollback configured the
// line is discarded.
func (b *Buffer) pushScrollback(line *Line) {
	if b.maxScrollback == 0 {
		return
	}
	b.scrollback = append(b.scrollback, line)
	for len(b.scrollback) > b.maxScrollback {
		b.scrollback = b.scrollback[1:]
	}
}

// InsertEmptyLineAtBottom scrolls the screen up by one line: the top line
// moves to the scrollback and an empty line appears at the bottom. The
// cursor does not move.
func (b *Buffer) InsertEmptyLineAtBottom() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.scrollUp()
	b.markDirty()
}

// ClearScreen replaces every screen line with a fresh empty line and homes
// the cursor. Scrollback is untouched.
func (b *Buffer) ClearScreen() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clearScreen()
	b.markDirty()
}

// ClearScreenAndScrollback clears the screen, homes the cursor, and drops
// the entire history.
func (b *Buffer) ClearScreenAndScrollback() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clearScreen()
	b.scrollback = nil
	b.markDirty()
}

func (b *Buffer) clearScreen() {
	for i := range b.screen {
		b.screen[i] = newLine(b.width)
	}
	b.cursorCol = 0
	b.cursorRow = 0
}
