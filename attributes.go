package termgrid

import "strings"

// StyleFlag is a single text style.
type StyleFlag uint8

const (
	StyleBold      StyleFlag = 1 << iota // SGR 1
	StyleItalic                          // SGR 3
	StyleUnderline                       // SGR 4
)

func (f StyleFlag) String() string {
	switch f {
	case StyleBold:
		return "bold"
	case StyleItalic:
		return "italic"
	case StyleUnderline:
		return "underline"
	}
	return "invalid"
}

// Styles is a set of style flags. The zero value is the empty set.
// Two Styles values are equal iff they contain the same flags.
type Styles uint8

// NewStyles builds a style set from individual flags.
func NewStyles(flags ...StyleFlag) Styles {
	var s Styles
	for _, f := range flags {
		s |= Styles(f)
	}
	return s
}

// Has returns true if the set contains the flag.
func (s Styles) Has(f StyleFlag) bool {
	return s&Styles(f) != 0
}

// With returns the set with the flag added.
func (s Styles) With(f StyleFlag) Styles {
	return s | Styles(f)
}

// Without returns the set with the flag removed.
func (s Styles) Without(f StyleFlag) Styles {
	return s &^ Styles(f)
}

func (s Styles) String() string {
	if s == 0 {
		return "none"
	}
	var names []string
	for _, f := range []StyleFlag{StyleBold, StyleItalic, StyleUnderline} {
		if s.Has(f) {
			names = append(names, f.String())
		}
	}
	return strings.Join(names, "|")
}

// Attributes is the visual styling of a cell: foreground and background
// colors plus a style set. It is an immutable value; the With* methods
// return modified copies. The zero value is DefaultAttributes.
type Attributes struct {
	Foreground Color
	Background Color
	Styles     Styles
}

// DefaultAttributes returns default fg, default bg, no styles.
func DefaultAttributes() Attributes {
	return Attributes{}
}

// NewAttributes builds an attribute value from its parts.
func NewAttributes(fg, bg Color, styles Styles) Attributes {
	return Attributes{Foreground: fg, Background: bg, Styles: styles}
}

// WithForeground returns a copy with the foreground replaced.
func (a Attributes) WithForeground(c Color) Attributes {
	a.Foreground = c
	return a
}

// WithBackground returns a copy with the background replaced.
func (a Attributes) WithBackground(c Color) Attributes {
	a.Background = c
	return a
}

// WithStyle returns a copy with the flag added. Adding a flag already
// present returns an equal value.
func (a Attributes) WithStyle(f StyleFlag) Attributes {
	a.Styles = a.Styles.With(f)
	return a
}

// WithoutStyle returns a copy with the flag removed.
func (a Attributes) WithoutStyle(f StyleFlag) Attributes {
	a.Styles = a.Styles.Without(f)
	return a
}

// HasStyle returns true if the flag is set.
func (a Attributes) HasStyle(f StyleFlag) bool {
	return a.Styles.Has(f)
}

// IsDefault returns true for the all-default attribute value.
func (a Attributes) IsDefault() bool {
	return a == Attributes{}
}

func (a Attributes) String() string {
	return "fg=" + a.Foreground.String() +
		" bg=" + a.Background.String() +
		" styles=" + a.Styles.String()
}

// ToSGR returns the full SGR sequence selecting these attributes, starting
// from a reset. Renderer helper, like Color.ToSGRCode.
func (a Attributes) ToSGR() string {
	var sb strings.Builder
	sb.WriteString("\x1b[0")
	if a.Styles.Has(StyleBold) {
		sb.WriteString(";1")
	}
	if a.Styles.Has(StyleItalic) {
		sb.WriteString(";3")
	}
	if a.Styles.Has(StyleUnderline) {
		sb.WriteString(";4")
	}
	sb.WriteString(";" + a.Foreground.ToSGRCode(true))
	sb.WriteString(";" + a.Background.ToSGRCode(false))
	sb.WriteString("m")
	return sb.String()
}
