package termgrid

import "testing"

func TestWideCharOccupiesTwoCells(t *testing.T) {
	b := mustBuffer(t, 10, 3, 0)
	b.WriteText("中")

	head, err := b.GetCellAt(0, 0)
	if err != nil {
		t.Fatalf("GetCellAt(0,0): %v", err)
	}
	if head.Char != '中' || head.DisplayWidth() != 2 {
		t.Errorf("head = %v, want wide 中", head)
	}
	tail, _ := b.GetCellAt(1, 0)
	if !tail.IsPlaceholder() {
		t.Errorf("cell (1,0) = %v, want placeholder", tail)
	}
	wantCursor(t, b, 2, 0)
}

func TestWideCharGetText(t *testing.T) {
	b := mustBuffer(t, 10, 3, 0)
	b.WriteText("中")
	wantLine(t, b, 0, "中")
}

func TestWideMixedWithNarrow(t *testing.T) {
	b := mustBuffer(t, 10, 3, 0)
	b.WriteText("A中B")
	wantLine(t, b, 0, "A中B")
	// A at 0, 中 at 1-2, B at 3.
	if c, _ := b.GetCellAt(2, 0); !c.IsPlaceholder() {
		t.Errorf("cell (2,0) = %v, want placeholder", c)
	}
	wantCursor(t, b, 4, 0)
}

func TestMultipleWideChars(t *testing.T) {
	b := mustBuffer(t, 10, 3, 0)
	b.WriteText("你好世界")
	wantLine(t, b, 0, "你好世界")
	wantCursor(t, b, 8, 0)
}

func TestWideCharWrapsWhenItDoesNotFit(t *testing.T) {
	b := mustBuffer(t, 5, 3, 0)
	b.WriteText("ABCD") // cursor at 4, one cell left
	b.WriteText("中")

	wantLine(t, b, 0, "ABCD") // last column blanked
	wantLine(t, b, 1, "中")
	if c, _ := b.GetCellAt(4, 0); c != EmptyCell {
		t.Errorf("cell (4,0) = %v, want empty", c)
	}
	wantCursor(t, b, 2, 1)
}

func TestWideCharFitsExactlyAtEndOfLine(t *testing.T) {
	b := mustBuffer(t, 6, 3, 0)
	b.WriteText("ABCD")
	b.WriteText("中")

	wantLine(t, b, 0, "ABCD中")
	wantCursor(t, b, 6, 0) // pending wrap
}

func TestOverwriteWideHeadClearsPair(t *testing.T) {
	b := mustBuffer(t, 10, 3, 0)
	b.WriteText("中")
	b.SetCursorPosition(0, 0)
	b.WriteText("A")

	if ch, _ := b.GetCharAt(0, 0); ch != 'A' {
		t.Errorf("char (0,0) = %q, want A", ch)
	}
	if ch, _ := b.GetCharAt(1, 0); ch != ' ' {
		t.Errorf("char (1,0) = %q, want cleared space", ch)
	}
	if c, _ := b.GetCellAt(1, 0); c.IsPlaceholder() {
		t.Errorf("placeholder must be cleared with its head")
	}
}

func TestOverwritePlaceholderClearsPair(t *testing.T) {
	b := mustBuffer(t, 10, 3, 0)
	b.WriteText("中")
	b.SetCursorPosition(1, 0)
	b.WriteText("X")

	if ch, _ := b.GetCharAt(0, 0); ch != ' ' {
		t.Errorf("char (0,0) = %q, want cleared space", ch)
	}
	if c, _ := b.GetCellAt(0, 0); c.DisplayWidth() != 1 {
		t.Errorf("head must be cleared with its placeholder")
	}
	if ch, _ := b.GetCharAt(1, 0); ch != 'X' {
		t.Errorf("char (1,0) = %q, want X", ch)
	}
}

func TestOverwriteWideWithWideClearsNeighbors(t *testing.T) {
	b := mustBuffer(t, 10, 3, 0)
	b.WriteText("你好") // 你 at 0-1, 好 at 2-3
	b.SetCursorPosition(1, 0)
	b.WriteText("中") // lands on 你's placeholder and 好's head

	if ch, _ := b.GetCharAt(0, 0); ch != ' ' {
		t.Errorf("你 head must be cleared, got %q", ch)
	}
	if c, _ := b.GetCellAt(1, 0); c.Char != '中' || c.DisplayWidth() != 2 {
		t.Errorf("cell (1,0) = %v, want wide 中", c)
	}
	if c, _ := b.GetCellAt(2, 0); !c.IsPlaceholder() {
		t.Errorf("cell (2,0) = %v, want 中's placeholder", c)
	}
	if ch, _ := b.GetCharAt(3, 0); ch != ' ' {
		t.Errorf("好's stranded placeholder must be cleared, got %q", ch)
	}
	if c, _ := b.GetCellAt(3, 0); c.IsPlaceholder() {
		t.Errorf("cell (3,0) must not stay a placeholder")
	}
}

func TestWideCharScrollsScreen(t *testing.T) {
	b := mustBuffer(t, 4, 2, 10)
	b.WriteText("AB中CD")

	wantLine(t, b, 0, "AB中")
	wantLine(t, b, 1, "CD")
}

func TestWideCharInWidthTwoBuffer(t *testing.T) {
	b := mustBuffer(t, 2, 2, 0)
	b.WriteText("中")
	wantLine(t, b, 0, "中")
	wantCursor(t, b, 2, 0)
}

func TestWideCharInWidthOneBuffer(t *testing.T) {
	// A wide character can never fit; it degrades to one empty cell and
	// the cursor still advances.
	b := mustBuffer(t, 1, 3, 0)
	b.WriteText("中")
	wantLine(t, b, 0, "")
	wantCursor(t, b, 1, 0)

	b.WriteText("中中")
	if b.GetScrollbackSize() != 0 {
		t.Errorf("zero-scrollback buffer grew history")
	}
}

func TestInsertWideChar(t *testing.T) {
	b := mustBuffer(t, 10, 3, 0)
	b.WriteText("AB")
	b.SetCursorPosition(1, 0)
	b.InsertText("中")

	wantLine(t, b, 0, "A中B")
	if c, _ := b.GetCellAt(2, 0); !c.IsPlaceholder() {
		t.Errorf("cell (2,0) = %v, want placeholder", c)
	}
	wantCursor(t, b, 3, 0)
}

func TestInsertBeforePlaceholderClearsPair(t *testing.T) {
	b := mustBuffer(t, 10, 3, 0)
	b.WriteText("中B")
	b.SetCursorPosition(1, 0) // on the placeholder
	b.InsertText("X")

	// The pair is cleared, X lands at 1, the old placeholder's empty cell
	// and B shift right.
	if ch, _ := b.GetCharAt(0, 0); ch != ' ' {
		t.Errorf("stranded head must be cleared, got %q", ch)
	}
	if ch, _ := b.GetCharAt(1, 0); ch != 'X' {
		t.Errorf("char (1,0) = %q, want X", ch)
	}
	if ch, _ := b.GetCharAt(3, 0); ch != 'B' {
		t.Errorf("char (3,0) = %q, want shifted B", ch)
	}
}

func TestInsertShiftsWidePairIntact(t *testing.T) {
	b := mustBuffer(t, 10, 3, 0)
	b.WriteText("中")
	b.SetCursorPosition(0, 0)
	b.InsertText("A")

	wantLine(t, b, 0, "A中")
	if c, _ := b.GetCellAt(1, 0); c.Char != '中' || c.DisplayWidth() != 2 {
		t.Errorf("cell (1,0) = %v, want wide 中", c)
	}
	if c, _ := b.GetCellAt(2, 0); !c.IsPlaceholder() {
		t.Errorf("cell (2,0) = %v, want placeholder", c)
	}
}

func TestInsertDropsHeadSplitAtRightEdge(t *testing.T) {
	b := mustBuffer(t, 4, 3, 0)
	b.WriteText("AB中") // 中 at 2-3
	b.SetCursorPosition(0, 0)
	b.InsertText("X")

	// 中's head shifts to column 3, its placeholder falls off: the head
	// cannot survive split in half.
	wantLine(t, b, 0, "XAB")
	if c, _ := b.GetCellAt(3, 0); c != EmptyCell {
		t.Errorf("cell (3,0) = %v, want empty", c)
	}
}

func TestScrollbackPreservesWideCells(t *testing.T) {
	b := mustBuffer(t, 4, 1, 5)
	b.WriteText("中文") // 中 fills the row... 中 at 0-1, 文 at 2-3
	b.WriteText("AB") // pending wrap resolves, 中文 scrolls off

	if got, _ := b.GetScrollbackLine(0); got != "中文" {
		t.Errorf("scrollback line = %q, want 中文", got)
	}
	wantLine(t, b, 0, "AB")
}
