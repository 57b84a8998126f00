// Copyright 2006-2010 Kirill Simonov
// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0 AND MIT

// Stream encoding detection and decoding. The rest of the package works on
// decoded runes; everything byte-order related is confined to this file.

package grammar

import "unicode/utf8"

type encoding int8

const (
	encUTF8 encoding = iota
	encUTF16BE
	encUTF16LE
	encUTF32BE
	encUTF32LE
)

func (e encoding) String() string {
	switch e {
	case encUTF8:
		return "UTF-8"
	case encUTF16BE:
		return "UTF-16BE"
	case encUTF16LE:
		return "UTF-16LE"
	case encUTF32BE:
		return "UTF-32BE"
	case encUTF32LE:
		return "UTF-32LE"
	}
	return "unknown"
}

// detectEncoding inspects the first bytes of the stream. A byte-order mark
// wins; without one, the position of null bytes in the first characters
// decides, since a YAML stream must begin with an ASCII character.
// It returns the encoding and the length of the BOM to strip.
func detectEncoding(data []byte) (encoding, int) {
	switch {
	case len(data) >= 4 && data[0] == 0x00 && data[1] == 0x00 && data[2] == 0xFE && data[3] == 0xFF:
		return encUTF32BE, 4
	case len(data) >= 4 && data[0] == 0xFF && data[1] == 0xFE && data[2] == 0x00 && data[3] == 0x00:
		return encUTF32LE, 4
	case len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF:
		return encUTF8, 3
	case len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF:
		return encUTF16BE, 2
	case len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE:
		return encUTF16LE, 2
	case len(data) >= 4 && data[0] == 0x00 && data[1] == 0x00 && data[2] == 0x00:
		return encUTF32BE, 0
	case len(data) >= 4 && data[1] == 0x00 && data[2] == 0x00 && data[3] == 0x00:
		return encUTF32LE, 0
	case len(data) >= 2 && data[0] == 0x00:
		return encUTF16BE, 0
	case len(data) >= 2 && data[1] == 0x00:
		return encUTF16LE, 0
	}
	return encUTF8, 0
}

// decodeStream turns a raw byte stream into runes, detecting the encoding
// and stripping an initial byte-order mark. Runes outside the printable set
// are rejected here, so the layers above never see them. Escape sequences
// are exempt: a double-quoted "\x01" still produces the control character,
// only the raw byte is forbidden.
func decodeStream(data []byte) ([]rune, *ScanError) {
	enc, bom := detectEncoding(data)
	data = data[bom:]
	switch enc {
	case encUTF8:
		return decodeUTF8(data)
	case encUTF16BE, encUTF16LE:
		return decodeUTF16(data, enc)
	default:
		return decodeUTF32(data, enc)
	}
}

func decodeUTF8(data []byte) ([]rune, *ScanError) {
	out := make([]rune, 0, len(data))
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return nil, scanErrorf(ErrInvalidEncoding, Mark{Index: i},
				"found invalid UTF-8 byte sequence")
		}
		if !isPrintable(r) {
			return nil, scanErrorf(ErrInvalidCharacter, Mark{Index: i},
				"control characters are not allowed")
		}
		out = append(out, r)
		i += size
	}
	return out, nil
}

func decodeUTF16(data []byte, enc encoding) ([]rune, *ScanError) {
	unit := func(i int) rune {
		if enc == encUTF16BE {
			return rune(data[i])<<8 | rune(data[i+1])
		}
		return rune(data[i+1])<<8 | rune(data[i])
	}
	out := make([]rune, 0, len(data)/2)
	for i := 0; i < len(data); i += 2 {
		if i+1 >= len(data) {
			return nil, scanErrorf(ErrInvalidEncoding, Mark{Index: i},
				"found truncated %s code unit", enc)
		}
		r := unit(i)
		switch {
		case r >= 0xDC00 && r <= 0xDFFF:
			return nil, scanErrorf(ErrInvalidEncoding, Mark{Index: i},
				"found unexpected low surrogate")
		case r >= 0xD800 && r <= 0xDBFF:
			if i+3 >= len(data) {
				return nil, scanErrorf(ErrInvalidEncoding, Mark{Index: i},
					"found high surrogate without a pair")
			}
			low := unit(i + 2)
			if low < 0xDC00 || low > 0xDFFF {
				return nil, scanErrorf(ErrInvalidEncoding, Mark{Index: i},
					"found high surrogate without a pair")
			}
			r = 0x10000 + (r-0xD800)<<10 + (low - 0xDC00)
			i += 2
		}
		if !isPrintable(r) {
			return nil, scanErrorf(ErrInvalidCharacter, Mark{Index: i},
				"control characters are not allowed")
		}
		out = append(out, r)
	}
	return out, nil
}

func decodeUTF32(data []byte, enc encoding) ([]rune, *ScanError) {
	out := make([]rune, 0, len(data)/4)
	for i := 0; i < len(data); i += 4 {
		if i+3 >= len(data) {
			return nil, scanErrorf(ErrInvalidEncoding, Mark{Index: i},
				"found truncated %s code unit", enc)
		}
		var r rune
		if enc == encUTF32BE {
			r = rune(data[i])<<24 | rune(data[i+1])<<16 | rune(data[i+2])<<8 | rune(data[i+3])
		} else {
			r = rune(data[i+3])<<24 | rune(data[i+2])<<16 | rune(data[i+1])<<8 | rune(data[i])
		}
		if r > 0x10FFFF || (r >= 0xD800 && r <= 0xDFFF) {
			return nil, scanErrorf(ErrInvalidEncoding, Mark{Index: i},
				"found code point outside the Unicode range")
		}
		if !isPrintable(r) {
			return nil, scanErrorf(ErrInvalidCharacter, Mark{Index: i},
				"control characters are not allowed")
		}
		out = append(out, r)
	}
	return out, nil
}
