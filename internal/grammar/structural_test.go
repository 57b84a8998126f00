// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package grammar

import (
	"testing"

	"go.yaml.in/parser/internal/testutil/assert"
)

func testParser(t *testing.T, src string) *Parser {
	t.Helper()
	p, err := NewParser([]byte(src))
	assert.NoError(t, err)
	return p
}

func TestSkipToContent(t *testing.T) {
	cases := []struct {
		src  string
		line int
		col  int
	}{
		{"value", 1, 0},
		{"   value", 1, 3},
		{"# comment\nvalue", 2, 0},
		{"\n\n  # note\n\nvalue", 5, 0},
		{"  \t # tabbed comment line\nvalue", 2, 0},
		{"\t\n value", 2, 1},
	}
	for _, c := range cases {
		p := testParser(t, c.src)
		serr := p.skipToContent(false)
		assert.Truef(t, serr == nil, "input: %q: unexpected error: %v", c.src, serr)
		m := p.cur.mark()
		assert.Equalf(t, c.line, m.Line, "input: %q", c.src)
		assert.Equalf(t, c.col, m.Column, "input: %q", c.src)
	}
}

func TestSkipToContentTabIndent(t *testing.T) {
	p := testParser(t, "\tvalue")
	err := p.skipToContent(false)
	assert.ErrorContains(t, "found a tab character where an indentation space is expected", err)
	assert.Equal(t, ErrInvalidCharacter, err.Kind)

	// Flow context allows tabs before content.
	p = testParser(t, "\t1")
	serr := p.skipToContent(true)
	assert.Truef(t, serr == nil, "unexpected error: %v", serr)
	assert.Equal(t, '1', p.cur.peek(0))
}

func TestSkipComment(t *testing.T) {
	p := testParser(t, "# until the break\nnext")
	p.skipComment()
	assert.True(t, isBreak(p.cur.peek(0)))

	// Not a comment: the cursor stays put.
	p = testParser(t, "plain # text")
	p.skipComment()
	assert.Equal(t, 'p', p.cur.peek(0))
}

func TestLooksLikeKey(t *testing.T) {
	cases := []struct {
		src string
		key bool
	}{
		{"key: value", true},
		{"key:", true},
		{"key:value", false},
		{"plain scalar", false},
		{"'quoted: not a key'", false},
		{"'it''s': value", true},
		{"'json':value", true},
		{"\"a \\\" colon: inside\"", false},
		{"\"json\": value", true},
		{"[a: b] plain", false},
		{"[a, b]: value", true},
		{"{x: 1}: value", true},
		{"key: value # trailing", true},
		{"no colon # comment: here", false},
		{"key\n: next line", false},
	}
	for _, c := range cases {
		p := testParser(t, c.src)
		assert.Equalf(t, c.key, p.looksLikeKey(), "input: %q", c.src)
	}
}

func TestLooksLikeKeyLookaheadLimit(t *testing.T) {
	long := make([]byte, maxKeyLookahead+16)
	for i := range long {
		long[i] = 'x'
	}
	p := testParser(t, string(long)+": value")
	assert.False(t, p.looksLikeKey())
}

func TestFoldInto(t *testing.T) {
	assert.Equal(t, "a b", string(foldInto([]rune("a"), 1))+"b")
	assert.Equal(t, "a\nb", string(foldInto([]rune("a"), 2))+"b")
	assert.Equal(t, "a\n\n\nb", string(foldInto([]rune("a"), 4))+"b")
}

func TestNullNodeAt(t *testing.T) {
	n := nullNodeAt(Mark{Index: 3, Line: 2, Column: 1})
	assert.True(t, n.IsNull())
	assert.Equal(t, NonSpecificTag, n.Tag)
	assert.Equal(t, 2, n.Line)
	assert.Equal(t, 1, n.Column)
}

func TestFinishNodeTags(t *testing.T) {
	p := testParser(t, "")

	plain := &Node{Kind: ScalarNode, Style: PlainStyle, Value: "x"}
	p.finishNode(plain, "", "")
	assert.Equal(t, NonSpecificTag, plain.Tag)

	quoted := &Node{Kind: ScalarNode, Style: DoubleQuotedStyle, Value: "x"}
	p.finishNode(quoted, "", "")
	assert.Equal(t, LocalTag, quoted.Tag)

	tagged := &Node{Kind: ScalarNode, Style: PlainStyle, Value: "x"}
	p.finishNode(tagged, "tag:yaml.org,2002:str", "")
	assert.Equal(t, "tag:yaml.org,2002:str", tagged.Tag)

	seq := &Node{Kind: SequenceNode}
	p.finishNode(seq, "", "")
	assert.Equal(t, NonSpecificTag, seq.Tag)
}

func TestFinishNodeAnchorRebinding(t *testing.T) {
	p := testParser(t, "")
	first := &Node{Kind: ScalarNode, Value: "first"}
	second := &Node{Kind: ScalarNode, Value: "second"}
	p.finishNode(first, "", "a")
	p.finishNode(second, "", "a")
	assert.Equal(t, second, p.anchors["a"])
	assert.Equal(t, "a", second.Anchor)
}
