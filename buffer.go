package termgrid

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors returned by constructors, Resize, and indexed accessors.
// Callers match them with errors.Is.
var (
	ErrInvalidSize = errors.New("termgrid: invalid size")
	ErrOutOfRange  = errors.New("termgrid: index out of range")
)

// Buffer is the terminal grid: a screen of exactly height lines, a bounded
// FIFO scrollback of lines pushed off the top, a cursor, and the current
// attribute register applied to newly written cells.
//
// All exported methods are safe for concurrent use. Sequences of calls are
// not atomic as a group; a caller needing a consistent multi-step view must
// serialize externally.
type Buffer struct {
	mu sync.RWMutex

	width, height int
	maxScrollback int

	screen     []*Line // exactly height lines, top first
	scrollback []*Line // oldest first, len <= maxScrollback

	// cursorCol may equal width: the pending-wrap state after writing in
	// the last column. The wrap is resolved by the next character written.
	cursorCol int
	cursorRow int

	attrs Attributes

	dirty         bool
	dirtyCallback func()
}

// NewBuffer creates a buffer of width x height cells keeping at most
// maxScrollback lines of history. Width and height must be at least 1;
// maxScrollback of 0 disables history.
func NewBuffer(width, height, maxScrollback int) (*Buffer, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("buffer size %dx%d: %w", width, height, ErrInvalidSize)
	}
	if maxScrollback < 0 {
		return nil, fmt.Errorf("scrollback size %d: %w", maxScrollback, ErrInvalidSize)
	}
	b := &Buffer{
		width:         width,
		height:        height,
		maxScrollback: maxScrollback,
		screen:        make([]*Line, height),
	}
	for i := range b.screen {
		b.screen[i] = newLine(width)
	}
	return b, nil
}

// GetSize returns the screen dimensions in cells.
func (b *Buffer) GetSize() (width, height int) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.width, b.height
}

// GetMaxScrollbackSize returns the scrollback capacity in lines.
func (b *Buffer) GetMaxScrollbackSize() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.maxScrollback
}

// SetDirtyCallback registers a function invoked after every mutation.
// The callback runs with the buffer lock held: it must only schedule work
// (wake a render loop), not call back into the buffer.
func (b *Buffer) SetDirtyCallback(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dirtyCallback = fn
}

// IsDirty returns true if the buffer changed since the last ClearDirty.
func (b *Buffer) IsDirty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.dirty
}

// ClearDirty resets the dirty flag, typically after a repaint.
func (b *Buffer) ClearDirty() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dirty = false
}

// markDirty is called with the lock held.
func (b *Buffer) markDirty() {
	b.dirty = true
	if b.dirtyCallback != nil {
		b.dirtyCallback()
	}
}

// --- Current attribute register ---

// GetCurrentAttributes returns the attributes applied to written cells.
func (b *Buffer) GetCurrentAttributes() Attributes {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.attrs
}

// SetCurrentAttributes replaces the attribute register wholesale.
func (b *Buffer) SetCurrentAttributes(a Attributes) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.attrs = a
}

// SetForeground changes the register's foreground color.
func (b *Buffer) SetForeground(c Color) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.attrs = b.attrs.WithForeground(c)
}

// SetBackground changes the register's background color.
func (b *Buffer) SetBackground(c Color) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.attrs = b.attrs.WithBackground(c)
}

// AddStyle adds a style flag to the register.
func (b *Buffer) AddStyle(f StyleFlag) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.attrs = b.attrs.WithStyle(f)
}

// RemoveStyle removes a style flag from the register.
func (b *Buffer) RemoveStyle(f StyleFlag) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.attrs = b.attrs.WithoutStyle(f)
}

// ResetAttributes restores the register to defaults. Cells already written
// keep the attributes they were written with.
func (b *Buffer) ResetAttributes() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.attrs = Attributes{}
}
