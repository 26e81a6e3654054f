package cli

import (
	"os"
	"unicode/utf8"
)

// InputHandler reads raw bytes from stdin and feeds them into the buffer.
// There is no escape-sequence decoding here: arrow keys and other CSI
// input arrive as their constituent bytes and are dropped.
type InputHandler struct {
	term *Terminal
}

// NewInputHandler creates the input handler for a terminal
func NewInputHandler(term *Terminal) *InputHandler {
	return &InputHandler{term: term}
}

// InputLoop reads stdin until the terminal stops.
func (h *InputHandler) InputLoop() {
	var pending []byte
	buf := make([]byte, 256)

	for {
		select {
		case <-h.term.done:
			return
		default:
		}

		n, err := os.Stdin.Read(buf)
		if err != nil {
			return
		}
		pending = append(pending, buf[:n]...)

		for len(pending) > 0 {
			r, size := utf8.DecodeRune(pending)
			if r == utf8.RuneError && size == 1 && !utf8.FullRune(pending) {
				break // wait for the rest of the sequence
			}
			pending = pending[size:]
			h.handleRune(r)
		}
	}
}

func (h *InputHandler) handleRune(r rune) {
	t := h.term

	t.mu.Lock()
	onKey := t.onKey
	t.mu.Unlock()
	if onKey != nil && onKey(r) {
		return
	}

	switch r {
	case 0x03, 0x11: // Ctrl+C, Ctrl+Q
		t.Stop()
	case '\r', '\n':
		t.lineFeed()
	case 0x08, 0x7f: // Backspace, DEL
		h.backspace()
	case 0x0c: // Ctrl+L
		t.buffer.ClearScreen()
	default:
		if r >= 0x20 {
			t.buffer.WriteText(string(r))
		}
	}
}

// backspace erases the cell left of the cursor. A wide pair to the left is
// cleared as a whole by the buffer's overwrite rules.
func (h *InputHandler) backspace() {
	buf := h.term.buffer
	pos := buf.GetCursorPosition()
	if pos.Column == 0 {
		return
	}
	buf.MoveCursorLeft(1)
	buf.WriteText(" ")
	buf.MoveCursorLeft(1)
}
