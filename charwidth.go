package termgrid

// IsWide reports whether a rune occupies two columns. The classification
// covers the East Asian blocks that are fullwidth in every terminal font;
// ambiguous-width runes and everything outside the BMP count as narrow.
// Keep this table in sync with the wide-cell handling in buffer_edit.go.
func IsWide(r rune) bool {
	switch {
	case r >= 0x2E80 && r <= 0x2FDF:
		// CJK Radicals Supplement, Kangxi Radicals
		return true
	case r >= 0x3000 && r <= 0x30FF:
		// CJK Symbols and Punctuation, Hiragana, Katakana
		return true
	case r >= 0x3100 && r <= 0x31FF:
		// Bopomofo, Hangul Compatibility Jamo
		return true
	case r >= 0x31F0 && r <= 0x33FF:
		// Katakana Phonetic Extensions, Enclosed CJK, CJK Compatibility
		return true
	case r >= 0x3400 && r <= 0x4DBF:
		// CJK Unified Ideographs Extension A
		return true
	case r >= 0x4E00 && r <= 0x9FFF:
		// CJK Unified Ideographs
		return true
	case r >= 0xA000 && r <= 0xA4CF:
		// Yi Syllables, Yi Radicals
		return true
	case r >= 0xAC00 && r <= 0xD7AF:
		// Hangul Syllables
		return true
	case r >= 0xF900 && r <= 0xFAFF:
		// CJK Compatibility Ideographs
		return true
	case r >= 0xFE10 && r <= 0xFE1F:
		// Vertical Forms
		return true
	case r >= 0xFE30 && r <= 0xFE6F:
		// CJK Compatibility Forms, Small Form Variants
		return true
	case r >= 0xFF01 && r <= 0xFF60:
		// Fullwidth Forms (halfwidth katakana above 0xFF60 are narrow)
		return true
	case r >= 0xFFE0 && r <= 0xFFE6:
		// Fullwidth Signs
		return true
	}
	return false
}

// DisplayWidth returns the column count of a rune: 2 if wide, 1 otherwise.
func DisplayWidth(r rune) int {
	if IsWide(r) {
		return 2
	}
	return 1
}
