package termgrid

import (
	"errors"
	"testing"
)

func TestNewLineIsEmpty(t *testing.T) {
	l, err := NewLine(10)
	if err != nil {
		t.Fatalf("NewLine: %v", err)
	}
	if l.Width() != 10 {
		t.Fatalf("width = %d, want 10", l.Width())
	}
	for col := 0; col < 10; col++ {
		c, err := l.GetCell(col)
		if err != nil {
			t.Fatalf("GetCell(%d): %v", col, err)
		}
		if c != EmptyCell {
			t.Errorf("cell %d = %v, want empty", col, c)
		}
	}
	if l.GetText() != "" {
		t.Errorf("fresh line text = %q, want empty", l.GetText())
	}
}

func TestNewLineRejectsInvalidWidth(t *testing.T) {
	for _, w := range []int{0, -1, -100} {
		if _, err := NewLine(w); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewLine(%d) err = %v, want ErrInvalidSize", w, err)
		}
	}
}

func TestLineSetAndGetCell(t *testing.T) {
	l, _ := NewLine(5)
	cell := NewCell('Q', DefaultAttributes().WithForeground(ColorOf(Cyan)))
	if err := l.SetCell(2, cell); err != nil {
		t.Fatalf("SetCell: %v", err)
	}
	got, err := l.GetCell(2)
	if err != nil {
		t.Fatalf("GetCell: %v", err)
	}
	if got != cell {
		t.Errorf("cell = %v, want %v", got, cell)
	}
}

func TestLineBounds(t *testing.T) {
	l, _ := NewLine(5)
	for _, col := range []int{-1, 5, 100} {
		if _, err := l.GetCell(col); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("GetCell(%d) err = %v, want ErrOutOfRange", col, err)
		}
		if err := l.SetCell(col, EmptyCell); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("SetCell(%d) err = %v, want ErrOutOfRange", col, err)
		}
	}
}

func TestLineTextTrimsTrailingSpaces(t *testing.T) {
	l, _ := NewLine(10)
	for i, r := range "Hi  " {
		l.SetCell(i, NewCell(r, DefaultAttributes()))
	}
	if got := l.GetText(); got != "Hi" {
		t.Errorf("text = %q, want %q", got, "Hi")
	}
}

func TestLineTextPreservesInternalSpaces(t *testing.T) {
	l, _ := NewLine(10)
	for i, r := range "A B" {
		l.SetCell(i, NewCell(r, DefaultAttributes()))
	}
	if got := l.GetText(); got != "A B" {
		t.Errorf("text = %q, want %q", got, "A B")
	}
}

func TestLineTextSkipsPlaceholders(t *testing.T) {
	l, _ := NewLine(6)
	l.SetCell(0, WideHeadCell('中', DefaultAttributes()))
	l.SetCell(1, PlaceholderCell(DefaultAttributes()))
	l.SetCell(2, NewCell('A', DefaultAttributes()))
	if got := l.GetText(); got != "中A" {
		t.Errorf("text = %q, want %q", got, "中A")
	}
}

func TestLineFill(t *testing.T) {
	l, _ := NewLine(4)
	attrs := DefaultAttributes().WithBackground(ColorOf(Blue))
	l.Fill('#', attrs)
	for col := 0; col < 4; col++ {
		c, _ := l.GetCell(col)
		if c.Char != '#' || c.Attrs != attrs || c.Kind != CellNormal {
			t.Errorf("cell %d = %v after fill", col, c)
		}
	}
	if got := l.GetText(); got != "####" {
		t.Errorf("text = %q, want ####", got)
	}
}

func TestLineClear(t *testing.T) {
	l, _ := NewLine(4)
	l.Fill('x', DefaultAttributes().WithStyle(StyleBold))
	l.Clear()
	for col := 0; col < 4; col++ {
		c, _ := l.GetCell(col)
		if c != EmptyCell {
			t.Errorf("cell %d = %v after clear, want empty", col, c)
		}
	}
}

func TestLineCopyIsIndependent(t *testing.T) {
	l, _ := NewLine(3)
	l.SetCell(0, NewCell('A', DefaultAttributes()))
	dup := l.Copy()

	dup.SetCell(0, NewCell('B', DefaultAttributes()))
	if c, _ := l.GetCell(0); c.Char != 'A' {
		t.Errorf("mutating the copy must not touch the original, got %q", c.Char)
	}
	if c, _ := dup.GetCell(0); c.Char != 'B' {
		t.Errorf("copy cell = %q, want B", c.Char)
	}
}

func TestLineResize(t *testing.T) {
	l, _ := NewLine(5)
	for i, r := range "ABCDE" {
		l.SetCell(i, NewCell(r, DefaultAttributes()))
	}

	if err := l.Resize(3); err != nil {
		t.Fatalf("Resize(3): %v", err)
	}
	if l.Width() != 3 || l.GetText() != "ABC" {
		t.Errorf("after shrink: width %d text %q", l.Width(), l.GetText())
	}

	if err := l.Resize(6); err != nil {
		t.Fatalf("Resize(6): %v", err)
	}
	if l.Width() != 6 || l.GetText() != "ABC" {
		t.Errorf("after grow: width %d text %q", l.Width(), l.GetText())
	}
	for col := 3; col < 6; col++ {
		if c, _ := l.GetCell(col); c != EmptyCell {
			t.Errorf("grown cell %d = %v, want empty", col, c)
		}
	}

	if err := l.Resize(0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Resize(0) err = %v, want ErrInvalidSize", err)
	}
}

func TestWidthOneLine(t *testing.T) {
	l, err := NewLine(1)
	if err != nil {
		t.Fatalf("NewLine(1): %v", err)
	}
	l.SetCell(0, NewCell('Z', DefaultAttributes()))
	if got := l.GetText(); got != "Z" {
		t.Errorf("text = %q, want Z", got)
	}
}
