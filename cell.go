package termgrid

// CellKind distinguishes ordinary cells from the two halves of a wide
// character. A wide character occupies a head cell followed immediately by
// a placeholder cell; the pair is created and destroyed together.
type CellKind uint8

const (
	CellNormal          CellKind = iota // single-width character
	CellWideHead                        // first half of a wide character
	CellWidePlaceholder                 // second half, carries no character
)

func (k CellKind) String() string {
	switch k {
	case CellNormal:
		return "normal"
	case CellWideHead:
		return "wide-head"
	case CellWidePlaceholder:
		return "placeholder"
	}
	return "invalid"
}

// Cell is a single character cell in the grid: a character, its
// attributes, and its kind. Cells are immutable values; the grid replaces
// cells rather than mutating them.
type Cell struct {
	Char  rune
	Attrs Attributes
	Kind  CellKind
}

// EmptyCell is a space with default attributes, the content of every
// freshly created or cleared cell.
var EmptyCell = Cell{Char: ' '}

// NewCell returns a normal single-width cell.
func NewCell(ch rune, attrs Attributes) Cell {
	return Cell{Char: ch, Attrs: attrs}
}

// WideHeadCell returns the head half of a wide character.
func WideHeadCell(ch rune, attrs Attributes) Cell {
	return Cell{Char: ch, Attrs: attrs, Kind: CellWideHead}
}

// PlaceholderCell returns the trailing half of a wide character. It holds
// a space so that naive cell dumps stay aligned.
func PlaceholderCell(attrs Attributes) Cell {
	return Cell{Char: ' ', Attrs: attrs, Kind: CellWidePlaceholder}
}

// DisplayWidth returns 2 for a wide-character head, 1 otherwise.
// Placeholders report 1: the pair together covers its two columns.
func (c Cell) DisplayWidth() int {
	if c.Kind == CellWideHead {
		return 2
	}
	return 1
}

// IsPlaceholder returns true for the trailing half of a wide character.
func (c Cell) IsPlaceholder() bool {
	return c.Kind == CellWidePlaceholder
}

func (c Cell) String() string {
	if c.Kind == CellWidePlaceholder {
		return "[placeholder " + c.Attrs.String() + "]"
	}
	return "[" + string(c.Char) + " " + c.Attrs.String() + "]"
}
