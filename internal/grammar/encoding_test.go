// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package grammar

import (
	"testing"

	"go.yaml.in/parser/internal/testutil/assert"
)

func TestDetectEncoding(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		enc  encoding
		bom  int
	}{
		{"utf8-bom", []byte{0xEF, 0xBB, 0xBF, 'a'}, encUTF8, 3},
		{"utf16be-bom", []byte{0xFE, 0xFF, 0x00, 'a'}, encUTF16BE, 2},
		{"utf16le-bom", []byte{0xFF, 0xFE, 'a', 0x00}, encUTF16LE, 2},
		{"utf32be-bom", []byte{0x00, 0x00, 0xFE, 0xFF}, encUTF32BE, 4},
		{"utf32le-bom", []byte{0xFF, 0xFE, 0x00, 0x00}, encUTF32LE, 4},
		{"utf8-bare", []byte("a: 1"), encUTF8, 0},
		{"utf16be-bare", []byte{0x00, 'a', 0x00, ':'}, encUTF16BE, 0},
		{"utf16le-bare", []byte{'a', 0x00, ':', 0x00}, encUTF16LE, 0},
		{"utf32be-bare", []byte{0x00, 0x00, 0x00, 'a'}, encUTF32BE, 0},
		{"utf32le-bare", []byte{'a', 0x00, 0x00, 0x00}, encUTF32LE, 0},
		{"empty", nil, encUTF8, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			enc, bom := detectEncoding(tc.data)
			assert.Equal(t, tc.enc, enc)
			assert.Equal(t, tc.bom, bom)
		})
	}
}

func TestDecodeStreamUTF16(t *testing.T) {
	// "hi" in UTF-16LE with a BOM
	data := []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00}
	runes, err := decodeStream(data)
	assert.True(t, err == nil)
	assert.DeepEqual(t, []rune("hi"), runes)

	// a surrogate pair in UTF-16BE: U+1F600
	data = []byte{0xFE, 0xFF, 0xD8, 0x3D, 0xDE, 0x00}
	runes, err = decodeStream(data)
	assert.True(t, err == nil)
	assert.DeepEqual(t, []rune{0x1F600}, runes)
}

func TestDecodeStreamUTF32(t *testing.T) {
	data := []byte{0x00, 0x00, 0xFE, 0xFF, 0x00, 0x00, 0x00, 'a', 0x00, 0x01, 0xF6, 0x00}
	runes, err := decodeStream(data)
	assert.True(t, err == nil)
	assert.DeepEqual(t, []rune{'a', 0x1F600}, runes)
}

func TestDecodeStreamErrors(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"bad-utf8", []byte{'a', 0xFF, 'b'}},
		{"truncated-utf16", []byte{0xFE, 0xFF, 0x00, 'a', 0x00}},
		{"lone-high-surrogate", []byte{0xFE, 0xFF, 0xD8, 0x3D, 0x00, 'a'}},
		{"lone-low-surrogate", []byte{0xFE, 0xFF, 0xDC, 0x00, 0x00, 'a'}},
		{"utf32-out-of-range", []byte{0x00, 0x00, 0xFE, 0xFF, 0x00, 0x11, 0x00, 0x00}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := decodeStream(tc.data)
			if err == nil {
				t.Fatal("decode succeeded; want error")
			}
			assert.Equal(t, ErrInvalidEncoding, err.Kind)
		})
	}
}

func TestDecodeStreamRejectsControlCharacters(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"plain-scalar", []byte("a: b\x01c")},
		{"double-quoted", []byte("a: \"b\x01c\"")},
		{"delete", []byte("a: b\x7Fc")},
		{"utf16", []byte{0xFE, 0xFF, 0x00, 'a', 0x00, 0x01}},
		{"utf32", []byte{0x00, 0x00, 0xFE, 0xFF, 0x00, 0x00, 0x00, 0x01}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewParser(tc.data)
			if err == nil {
				t.Fatal("parser construction succeeded; want error")
			}
			serr, ok := err.(*ScanError)
			assert.True(t, ok)
			assert.Equal(t, ErrInvalidCharacter, serr.Kind)
			assert.ErrorContains(t, "control characters are not allowed", err)
		})
	}
}

// An escaped control character in a double-quoted scalar is still legal;
// only the raw byte in the stream is rejected.
func TestEscapedControlCharacterAllowed(t *testing.T) {
	root := parseOne(t, `key: "a\x01b"`)
	assert.Equal(t, "a\x01b", root.Content[1].Value)
}

func TestParseUTF16Stream(t *testing.T) {
	src := "a: 1\n"
	data := []byte{0xFF, 0xFE}
	for _, r := range src {
		data = append(data, byte(r), 0x00)
	}
	root := parseUTF16(t, data)
	assert.Equal(t, MappingNode, root.Kind)
	assert.Equal(t, "a", root.Content[0].Value)
	assert.Equal(t, "1", root.Content[1].Value)
}

func parseUTF16(t *testing.T, data []byte) *Node {
	t.Helper()
	p, err := NewParser(data)
	assert.NoError(t, err)
	doc, err := p.Next()
	assert.NoError(t, err)
	return doc.Root
}

func TestEncodingString(t *testing.T) {
	assert.Equal(t, "UTF-8", encUTF8.String())
	assert.Equal(t, "UTF-16BE", encUTF16BE.String())
	assert.Equal(t, "UTF-32LE", encUTF32LE.String())
}
