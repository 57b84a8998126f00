// Copyright 2006-2010 Kirill Simonov
// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0 AND MIT

// Character classification and escape-sequence decoding.
// All predicates are pure; only escape decoding can fail.

package grammar

// isPrintable reports whether the character may appear in a YAML stream at
// all: tab, line breaks, and the printable subset of Unicode excluding
// surrogates, #xFFFE/#xFFFF and the C0/C1 control blocks (NEL excepted).
func isPrintable(r rune) bool {
	switch {
	case r == '\t' || r == '\n' || r == '\r' || r == 0x85:
		return true
	case r >= 0x20 && r <= 0x7E:
		return true
	case r >= 0xA0 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	}
	return false
}

// isBreak reports whether the character is a line break (LF, CR or NEL).
func isBreak(r rune) bool {
	return r == '\n' || r == '\r' || r == 0x85
}

// isWhite reports whether the character is inline white space.
func isWhite(r rune) bool {
	return r == ' ' || r == '\t'
}

// isBlankz reports white space, a line break, or end of input (rune 0).
func isBlankz(r rune) bool {
	return isWhite(r) || isBreak(r) || r == 0
}

// isNSChar reports a non-space printable character: the characters plain
// scalars and anchors are made of.
func isNSChar(r rune) bool {
	return isPrintable(r) && !isWhite(r) && !isBreak(r) && r != 0xFEFF
}

// isIndicator reports whether the character has special meaning at the start
// of a node.
func isIndicator(r rune) bool {
	switch r {
	case '-', '?', ':', ',', '[', ']', '{', '}', '#', '&', '*', '!', '|', '>', '\'', '"', '%', '@', '`':
		return true
	}
	return false
}

// isFlowIndicator reports the characters that delimit flow collections.
func isFlowIndicator(r rune) bool {
	switch r {
	case ',', '[', ']', '{', '}':
		return true
	}
	return false
}

// isAnchorChar reports the characters allowed in anchor and alias names:
// non-space characters excluding flow indicators.
func isAnchorChar(r rune) bool {
	return isNSChar(r) && !isFlowIndicator(r)
}

// isBOM reports the byte-order mark.
func isBOM(r rune) bool {
	return r == 0xFEFF
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHex(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// asHex returns the numeric value of a hexadecimal digit.
func asHex(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	}
	return -1
}

// isTagChar reports the characters allowed in a tag shorthand suffix:
// URI characters excluding the characters that would end or nest the tag.
func isTagChar(r rune) bool {
	if !isNSChar(r) || isFlowIndicator(r) || r == '!' {
		return false
	}
	return true
}

// isWordChar reports the characters allowed in a named tag handle.
func isWordChar(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '-'
}

// simpleEscapes maps single-character escapes in double-quoted scalars to
// their replacement. \x, \u and \U are handled separately.
var simpleEscapes = map[rune]rune{
	'0':  0x00,
	'a':  0x07,
	'b':  0x08,
	't':  0x09,
	'\t': 0x09,
	'n':  0x0A,
	'v':  0x0B,
	'f':  0x0C,
	'r':  0x0D,
	'e':  0x1B,
	' ':  0x20,
	'"':  '"',
	'\'': '\'',
	'\\': '\\',
	'/':  '/',
	'N':  0x85,   // next line
	'_':  0xA0,   // non-breaking space
	'L':  0x2028, // line separator
	'P':  0x2029, // paragraph separator
}

// decodeEscape decodes one escape sequence in a double-quoted scalar. The
// cursor must be positioned on the backslash; on success it is left after
// the sequence. Escaped line breaks are not handled here; the flow layer
// folds those before content is collected.
func decodeEscape(c *cursor) (rune, *ScanError) {
	start := c.mark()
	c.skip(1) // the backslash

	key := c.peek(0)
	if key == 0 {
		return 0, scanErrorf(ErrInvalidEscape, start, "found unterminated escape sequence")
	}

	if r, ok := simpleEscapes[key]; ok {
		c.skip(1)
		return r, nil
	}

	var width int
	switch key {
	case 'x':
		width = 2
	case 'u':
		width = 4
	case 'U':
		width = 8
	default:
		return 0, scanErrorf(ErrInvalidEscape, start, "found unknown escape character %q", key)
	}
	c.skip(1)

	var value rune
	for i := 0; i < width; i++ {
		d := c.peek(0)
		if !isHex(d) {
			return 0, scanErrorf(ErrInvalidEscape, start,
				"found %d-digit hexadecimal escape with a non-hexadecimal character", width)
		}
		value = value<<4 | rune(asHex(d))
		c.skip(1)
	}

	if value >= 0xD800 && value <= 0xDFFF || value > 0x10FFFF {
		return 0, scanErrorf(ErrInvalidEscape, start, "found invalid Unicode character escape code")
	}
	return value, nil
}
