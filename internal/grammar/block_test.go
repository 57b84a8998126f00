// Copyright 2006-2010 Kirill Simonov
// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0 AND MIT

package grammar

import (
	"testing"

	"go.yaml.in/parser/internal/testutil/assert"
)

func TestBlockSequence(t *testing.T) {
	checkTree(t, "- 1\n- 2\n- 3\n",
		seq(PlainStyle, plain("1"), plain("2"), plain("3")))
}

func TestBlockSequenceNested(t *testing.T) {
	checkTree(t, "- - 1\n  - 2\n- 3\n",
		seq(PlainStyle,
			seq(PlainStyle, plain("1"), plain("2")),
			plain("3")))
}

func TestBlockSequenceNullEntries(t *testing.T) {
	checkTree(t, "-\n- x\n-\n",
		seq(PlainStyle, plain(""), plain("x"), plain("")))
}

func TestBlockSequenceEntryOnNextLine(t *testing.T) {
	checkTree(t, "-\n  deep\n- x\n",
		seq(PlainStyle, plain("deep"), plain("x")))
}

func TestBlockSequenceOfMappings(t *testing.T) {
	checkTree(t, "- a: 1\n  b: 2\n- c: 3\n",
		seq(PlainStyle,
			mapping(PlainStyle, plain("a"), plain("1"), plain("b"), plain("2")),
			mapping(PlainStyle, plain("c"), plain("3"))))
}

func TestBlockSequenceIndentError(t *testing.T) {
	serr := parseFail(t, "- 'a'\n   - b\n")
	assert.Equal(t, ErrUnexpectedIndentation, serr.Kind)
	assert.ErrorContains(t, "did not find expected '-' indicator", serr)
	assert.ErrorContains(t, "while parsing a block sequence", serr)
}

func TestBlockMapping(t *testing.T) {
	checkTree(t, "a: 1\nb: 2\n",
		mapping(PlainStyle, plain("a"), plain("1"), plain("b"), plain("2")))
}

func TestBlockMappingNested(t *testing.T) {
	checkTree(t, "outer:\n  inner: 1\n",
		mapping(PlainStyle,
			plain("outer"),
			mapping(PlainStyle, plain("inner"), plain("1"))))
}

func TestBlockMappingNullValues(t *testing.T) {
	checkTree(t, "a:\nb: 2\nc:\n",
		mapping(PlainStyle,
			plain("a"), plain(""),
			plain("b"), plain("2"),
			plain("c"), plain("")))
}

func TestBlockMappingSequenceValue(t *testing.T) {
	checkTree(t, "list:\n  - 1\n  - 2\n",
		mapping(PlainStyle,
			plain("list"),
			seq(PlainStyle, plain("1"), plain("2"))))
}

func TestBlockMappingExplicitKey(t *testing.T) {
	checkTree(t, "? key\n: value\n",
		mapping(PlainStyle, plain("key"), plain("value")))
}

func TestBlockMappingExplicitKeyWithoutValue(t *testing.T) {
	checkTree(t, "? lonely\n",
		mapping(PlainStyle, plain("lonely"), plain("")))
}

func TestBlockMappingExplicitMultilineKey(t *testing.T) {
	checkTree(t, "? - 1\n  - 2\n: pair\n",
		mapping(PlainStyle,
			seq(PlainStyle, plain("1"), plain("2")),
			plain("pair")))
}

func TestBlockMappingNullKey(t *testing.T) {
	checkTree(t, ": value\n",
		mapping(PlainStyle, plain(""), plain("value")))
}

func TestBlockMappingQuotedKey(t *testing.T) {
	checkTree(t, "\"a\": 1\n",
		mapping(PlainStyle, scalar(LocalTag, "a", DoubleQuotedStyle), plain("1")))
	// A json-like key allows ':' without separation.
	checkTree(t, "'b':2\n",
		mapping(PlainStyle, scalar(LocalTag, "b", SingleQuotedStyle), plain("2")))
}

func TestBlockMappingAnchoredKey(t *testing.T) {
	key := plain("key")
	key.Anchor = "a"
	checkTree(t, "&a key: value\n",
		mapping(PlainStyle, key, plain("value")))
}

func TestBlockMappingAliasKey(t *testing.T) {
	root := parseOne(t, "a: &x 1\n*x : 2\n")
	assert.Equal(t, MappingNode, root.Kind)
	assert.Equal(t, 4, len(root.Content))
	aliasKey := root.Content[2]
	assert.Equal(t, AliasNode, aliasKey.Kind)
	assert.Equal(t, "x", aliasKey.Value)
	assert.Equal(t, "1", aliasKey.Alias.Value)
}

func TestBlockMappingNoIndentlessSequence(t *testing.T) {
	serr := parseFail(t, "a:\n- 1\n- 2\n")
	assert.Equal(t, ErrUnexpectedContent, serr.Kind)
	assert.ErrorContains(t, "did not find expected key", serr)
}

func TestBlockMappingIndentErrors(t *testing.T) {
	serr := parseFail(t, "a: 1\n  b: 2\n")
	assert.Equal(t, ErrUnexpectedIndentation, serr.Kind)
	assert.ErrorContains(t, "did not find expected key", serr)
	assert.ErrorContains(t, "while parsing a block mapping", serr)

	serr = parseFail(t, "a: 1\nb\n")
	assert.Equal(t, ErrUnexpectedContent, serr.Kind)
	assert.ErrorContains(t, "did not find expected key", serr)
}

func TestBlockMappingTabIndent(t *testing.T) {
	serr := parseFail(t, "a:\n\tb\n")
	assert.Equal(t, ErrInvalidCharacter, serr.Kind)
	assert.ErrorContains(t, "found a tab character", serr)
}

func TestBlockDirectiveAfterContent(t *testing.T) {
	serr := parseFail(t, "a: 1\n%YAML 1.2\n")
	assert.Equal(t, ErrDirectiveAfterContent, serr.Kind)
	assert.ErrorContains(t, "without a preceding document end marker", serr)
}

func TestAnchoredNullValue(t *testing.T) {
	root := parseOne(t, "a: &x\nb: *x\n")
	assert.Equal(t, 4, len(root.Content))
	anchored := root.Content[1]
	assert.True(t, anchored.IsNull())
	assert.Equal(t, "x", anchored.Anchor)
	assert.Equal(t, AliasNode, root.Content[3].Kind)
}

func TestLiteralScalar(t *testing.T) {
	checkTree(t, "|\n  a\n  b\n", scalar(LocalTag, "a\nb\n", LiteralStyle))
}

func TestLiteralScalarBlankLines(t *testing.T) {
	checkTree(t, "|\n  a\n\n  b\n", scalar(LocalTag, "a\n\nb\n", LiteralStyle))
}

func TestLiteralScalarChomping(t *testing.T) {
	checkTree(t, "|-\n  a\n  b\n", scalar(LocalTag, "a\nb", LiteralStyle))
	checkTree(t, "|+\n  a\n\n\n", scalar(LocalTag, "a\n\n\n", LiteralStyle))
	// Clip keeps exactly one trailing break.
	checkTree(t, "|\n  a\n\n\n", scalar(LocalTag, "a\n", LiteralStyle))
}

func TestLiteralScalarExplicitIndent(t *testing.T) {
	// With an indentation indicator of 2, the third space is content.
	checkTree(t, "|2\n   a\n", scalar(LocalTag, " a\n", LiteralStyle))
}

func TestFoldedScalar(t *testing.T) {
	checkTree(t, ">\n  a\n  b\n", scalar(LocalTag, "a b\n", FoldedStyle))
}

func TestFoldedScalarBlankLine(t *testing.T) {
	checkTree(t, ">\n  a\n\n  b\n", scalar(LocalTag, "a\nb\n", FoldedStyle))
}

func TestFoldedScalarMoreIndented(t *testing.T) {
	// More indented lines keep their breaks instead of folding.
	checkTree(t, ">\n  a\n   x\n  b\n", scalar(LocalTag, "a\n x\nb\n", FoldedStyle))
}

func TestBlockScalarInMapping(t *testing.T) {
	checkTree(t, "text: |\n  line one\n  line two\nnext: x\n",
		mapping(PlainStyle,
			plain("text"), scalar(LocalTag, "line one\nline two\n", LiteralStyle),
			plain("next"), plain("x")))
}

func TestBlockScalarHeaderErrors(t *testing.T) {
	serr := parseFail(t, "|0\n  a\n")
	assert.Equal(t, ErrInvalidCharacter, serr.Kind)
	assert.ErrorContains(t, "found an indentation indicator equal to 0", serr)

	serr = parseFail(t, "|--\n  a\n")
	assert.ErrorContains(t, "found duplicate chomping indicator", serr)

	serr = parseFail(t, "|24\n  a\n")
	assert.ErrorContains(t, "found duplicate indentation indicator", serr)

	serr = parseFail(t, "| junk\n  a\n")
	assert.Equal(t, ErrUnexpectedContent, serr.Kind)
	assert.ErrorContains(t, "did not find expected comment or line break", serr)
	assert.ErrorContains(t, "while scanning a block scalar", serr)
}

func TestBlockScalarHeaderComment(t *testing.T) {
	checkTree(t, "| # keep it plain\n  a\n", scalar(LocalTag, "a\n", LiteralStyle))
}

func TestBlockNodeBadStart(t *testing.T) {
	serr := parseFail(t, "@nope\n")
	assert.Equal(t, ErrInvalidCharacter, serr.Kind)
	assert.ErrorContains(t, "cannot start any node", serr)
}
