package cli

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/phroun/termgrid"
)

// Renderer paints the grid buffer into the host terminal
type Renderer struct {
	term *Terminal
	mu   sync.Mutex

	renderNeeded bool
	lastCells    [][]renderedCell // Previous frame for differential rendering

	// Output buffer for batching writes
	output strings.Builder

	// Border characters
	borderChars borderCharSet
}

// renderedCell stores the last rendered state of a cell for diff comparison
type renderedCell struct {
	char  rune
	attrs termgrid.Attributes
	kind  termgrid.CellKind
}

// borderCharSet contains the characters for drawing borders
type borderCharSet struct {
	topLeft     rune
	topRight    rune
	bottomLeft  rune
	bottomRight rune
	horizontal  rune
	vertical    rune
	titleLeft   rune
	titleRight  rune
}

var borderStyles = map[BorderStyle]borderCharSet{
	BorderSingle: {
		topLeft: '┌', topRight: '┐', bottomLeft: '└', bottomRight: '┘',
		horizontal: '─', vertical: '│', titleLeft: '┤', titleRight: '├',
	},
	BorderDouble: {
		topLeft: '╔', topRight: '╗', bottomLeft: '╚', bottomRight: '╝',
		horizontal: '═', vertical: '║', titleLeft: '╡', titleRight: '╞',
	},
	BorderHeavy: {
		topLeft: '┏', topRight: '┓', bottomLeft: '┗', bottomRight: '┛',
		horizontal: '━', vertical: '┃', titleLeft: '┫', titleRight: '┣',
	},
	BorderRounded: {
		topLeft: '╭', topRight: '╮', bottomLeft: '╰', bottomRight: '╯',
		horizontal: '─', vertical: '│', titleLeft: '┤', titleRight: '├',
	},
}

// NewRenderer creates a renderer for the terminal
func NewRenderer(term *Terminal) *Renderer {
	r := &Renderer{
		term:         term,
		renderNeeded: true,
	}

	if term.options.BorderStyle != BorderNone {
		r.borderChars = borderStyles[term.options.BorderStyle]
	}

	return r
}

// RequestRender marks that a render is needed
func (r *Renderer) RequestRender() {
	r.mu.Lock()
	r.renderNeeded = true
	r.mu.Unlock()
}

// ForceFullRedraw clears the cached frame and forces a complete redraw
func (r *Renderer) ForceFullRedraw() {
	r.mu.Lock()
	r.lastCells = nil
	r.renderNeeded = true
	r.mu.Unlock()
}

// RenderLoop runs the main render loop at ~60fps, painting only when a
// change was flagged.
func (r *Renderer) RenderLoop() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.mu.Lock()
			needsRender := r.renderNeeded
			r.renderNeeded = false
			r.mu.Unlock()

			if needsRender {
				r.Render()
			}
		case <-r.term.stopRender:
			return
		}
	}
}

// Render performs a full or differential render of the grid
func (r *Renderer) Render() {
	r.term.mu.Lock()
	opts := r.term.options
	buffer := r.term.buffer
	r.term.mu.Unlock()

	cols, rows := buffer.GetSize()
	cursor := buffer.GetCursorPosition()

	startX := opts.OffsetX
	startY := opts.OffsetY
	contentStartX := startX
	contentStartY := startY
	if opts.BorderStyle != BorderNone {
		contentStartX++
		contentStartY++
	}

	r.output.Reset()

	// Hide cursor during rendering to prevent flicker
	r.output.WriteString("\033[?25l")

	if opts.BorderStyle != BorderNone {
		r.renderBorder(startX, startY, cols, rows, opts.Title)
	}

	prevCells := r.lastCells
	needsFullRender := prevCells == nil || len(prevCells) != rows

	newCells := make([][]renderedCell, rows)
	for y := 0; y < rows; y++ {
		newCells[y] = make([]renderedCell, cols)
	}

	var currentAttrs termgrid.Attributes
	firstAttr := true

	for y := 0; y < rows; y++ {
		rowChanged := needsFullRender
		if !needsFullRender && len(prevCells[y]) != cols {
			rowChanged = true
		}

		for x := 0; x < cols; x++ {
			cell, err := buffer.GetCellAt(x, y)
			if err != nil {
				continue
			}
			newCells[y][x] = renderedCell{char: cell.Char, attrs: cell.Attrs, kind: cell.Kind}

			// A wide head paints both of its columns; its placeholder is
			// never drawn on its own.
			if cell.IsPlaceholder() {
				continue
			}

			if !rowChanged {
				prev := prevCells[y][x]
				if prev.char == cell.Char && prev.attrs == cell.Attrs && prev.kind == cell.Kind {
					continue
				}
			}

			r.output.WriteString(fmt.Sprintf("\033[%d;%dH", contentStartY+y+1, contentStartX+x+1))

			if firstAttr || cell.Attrs != currentAttrs {
				r.output.WriteString(cell.Attrs.ToSGR())
				currentAttrs = cell.Attrs
				firstAttr = false
			}

			r.output.WriteRune(cell.Char)
		}
	}

	if opts.ShowStatusBar {
		r.renderStatusBar(startX, contentStartY+rows, cols)
	}

	// Reset attributes
	r.output.WriteString("\033[0m")

	// Place the host cursor on the grid cursor (clamped off pending wrap)
	cx := cursor.Column
	if cx >= cols {
		cx = cols - 1
	}
	r.output.WriteString(fmt.Sprintf("\033[%d;%dH", contentStartY+cursor.Row+1, contentStartX+cx+1))
	r.output.WriteString("\033[?25h")

	os.Stdout.WriteString(r.output.String())

	r.lastCells = newCells
}

// renderBorder draws the window border
func (r *Renderer) renderBorder(x, y, innerCols, innerRows int, title string) {
	bc := r.borderChars
	totalWidth := innerCols + 2

	// Top border
	r.output.WriteString(fmt.Sprintf("\033[%d;%dH", y+1, x+1))
	r.output.WriteString("\033[0m")
	r.output.WriteRune(bc.topLeft)

	titleWidth := runewidth.StringWidth(title)
	if title != "" && titleWidth < innerCols-4 {
		padding := (innerCols - titleWidth - 2) / 2
		for i := 0; i < padding; i++ {
			r.output.WriteRune(bc.horizontal)
		}
		r.output.WriteRune(bc.titleRight)
		r.output.WriteString(" " + title + " ")
		r.output.WriteRune(bc.titleLeft)
		remaining := innerCols - padding - titleWidth - 4
		for i := 0; i < remaining; i++ {
			r.output.WriteRune(bc.horizontal)
		}
	} else {
		for i := 0; i < innerCols; i++ {
			r.output.WriteRune(bc.horizontal)
		}
	}
	r.output.WriteRune(bc.topRight)

	// Side borders
	for row := 0; row < innerRows; row++ {
		r.output.WriteString(fmt.Sprintf("\033[%d;%dH", y+row+2, x+1))
		r.output.WriteRune(bc.vertical)
		r.output.WriteString(fmt.Sprintf("\033[%d;%dH", y+row+2, x+totalWidth))
		r.output.WriteRune(bc.vertical)
	}

	// Bottom border
	r.output.WriteString(fmt.Sprintf("\033[%d;%dH", y+innerRows+2, x+1))
	r.output.WriteRune(bc.bottomLeft)
	for i := 0; i < innerCols; i++ {
		r.output.WriteRune(bc.horizontal)
	}
	r.output.WriteRune(bc.bottomRight)
}

// renderStatusBar draws the status bar at the bottom
func (r *Renderer) renderStatusBar(x, y, width int) {
	r.output.WriteString(fmt.Sprintf("\033[%d;%dH", y+1, x+1))

	// Status bar style: reversed colors
	r.output.WriteString("\033[7m")

	cols, rows := r.term.buffer.GetSize()
	cursor := r.term.buffer.GetCursorPosition()

	status := fmt.Sprintf(" Lines: %d | Cursor: %d,%d | Size: %dx%d ",
		r.term.buffer.GetScrollbackSize(), cursor.Column+1, cursor.Row+1, cols, rows)

	// Pad to full width
	if w := runewidth.StringWidth(status); w < width {
		status = status + strings.Repeat(" ", width-w)
	} else if w > width {
		status = runewidth.Truncate(status, width, "")
	}

	r.output.WriteString(status)
	r.output.WriteString("\033[27m") // End reverse video
}
