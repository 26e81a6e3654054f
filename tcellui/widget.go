// Package tcellui renders a termgrid.Buffer through a tcell screen. It is
// the toolkit-widget counterpart of the cli frontend: tcell owns the host
// terminal, the widget maps grid cells to tcell content and forwards
// keyboard and resize events back into the buffer.
package tcellui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/phroun/termgrid"
)

// Widget couples a grid buffer with a tcell screen.
type Widget struct {
	screen tcell.Screen
	buffer *termgrid.Buffer

	// OnKey, when set, sees every key event first; return true to consume.
	OnKey func(ev *tcell.EventKey) bool
}

// New initializes a tcell screen sized to the host terminal and a buffer
// filling it.
func New(scrollback int) (*Widget, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	cols, rows := screen.Size()
	buffer, err := termgrid.NewBuffer(cols, rows, scrollback)
	if err != nil {
		screen.Fini()
		return nil, err
	}

	return &Widget{screen: screen, buffer: buffer}, nil
}

// NewWithBuffer wraps an existing buffer without resizing it.
func NewWithBuffer(buffer *termgrid.Buffer) (*Widget, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return &Widget{screen: screen, buffer: buffer}, nil
}

// Buffer returns the underlying grid buffer
func (w *Widget) Buffer() *termgrid.Buffer {
	return w.buffer
}

// Screen returns the underlying tcell screen
func (w *Widget) Screen() tcell.Screen {
	return w.screen
}

// Draw paints the whole grid into the tcell screen and shows it.
func (w *Widget) Draw() {
	cols, rows := w.buffer.GetSize()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			cell, err := w.buffer.GetCellAt(x, y)
			if err != nil {
				continue
			}
			// tcell handles the double-width glyph itself; the grid's
			// placeholder column must not overwrite its right half.
			if cell.IsPlaceholder() {
				continue
			}
			w.screen.SetContent(x, y, cell.Char, nil, styleOf(cell.Attrs))
		}
	}

	cursor := w.buffer.GetCursorPosition()
	cx := cursor.Column
	if cx >= cols {
		cx = cols - 1
	}
	w.screen.ShowCursor(cx, cursor.Row)
	w.screen.Show()
	w.buffer.ClearDirty()
}

// Run processes tcell events until Escape or Ctrl+C. Typed characters are
// echoed into the buffer; host resizes resize the grid.
func (w *Widget) Run() error {
	w.Draw()
	for {
		ev := w.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			cols, rows := ev.Size()
			if err := w.buffer.Resize(cols, rows); err == nil {
				w.screen.Clear()
			}
		case *tcell.EventKey:
			if w.OnKey != nil && w.OnKey(ev) {
				break
			}
			if done := w.handleKey(ev); done {
				return nil
			}
		case nil:
			return nil
		}
		if w.buffer.IsDirty() {
			w.Draw()
		}
	}
}

func (w *Widget) handleKey(ev *tcell.EventKey) (done bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		w.lineFeed()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		w.backspace()
	case tcell.KeyCtrlL:
		w.buffer.ClearScreen()
		w.screen.Clear()
	case tcell.KeyRune:
		w.buffer.WriteText(string(ev.Rune()))
	}
	return false
}

func (w *Widget) lineFeed() {
	pos := w.buffer.GetCursorPosition()
	_, rows := w.buffer.GetSize()
	if pos.Row >= rows-1 {
		w.buffer.InsertEmptyLineAtBottom()
		w.buffer.SetCursorPosition(0, rows-1)
	} else {
		w.buffer.SetCursorPosition(0, pos.Row+1)
	}
}

func (w *Widget) backspace() {
	pos := w.buffer.GetCursorPosition()
	if pos.Column == 0 {
		return
	}
	w.buffer.MoveCursorLeft(1)
	w.buffer.WriteText(" ")
	w.buffer.MoveCursorLeft(1)
}

// Fini releases the tcell screen and restores the host terminal.
func (w *Widget) Fini() {
	w.screen.Fini()
}

// styleOf maps grid attributes onto a tcell style.
func styleOf(a termgrid.Attributes) tcell.Style {
	style := tcell.StyleDefault
	if ansi, ok := a.Foreground.Ansi(); ok {
		style = style.Foreground(tcell.PaletteColor(int(ansi)))
	}
	if ansi, ok := a.Background.Ansi(); ok {
		style = style.Background(tcell.PaletteColor(int(ansi)))
	}
	if a.HasStyle(termgrid.StyleBold) {
		style = style.Bold(true)
	}
	if a.HasStyle(termgrid.StyleItalic) {
		style = style.Italic(true)
	}
	if a.HasStyle(termgrid.StyleUnderline) {
		style = style.Underline(true)
	}
	return style
}
