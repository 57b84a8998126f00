// Copyright 2006-2010 Kirill Simonov
// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0 AND MIT

// Structural productions shared by the block and flow layers: white space
// and comment handling, separation, line folding, and the bounded lookahead
// that decides whether content reads as an implicit mapping key.

package grammar

// maxKeyLookahead bounds the implicit key scan. A key and its ':' must fit
// on one line; scanning further than this gives up and treats the content
// as a plain scalar.
const maxKeyLookahead = 1024

// skipInline consumes spaces and tabs on the current line.
func (p *Parser) skipInline() {
	for isWhite(p.cur.peek(0)) {
		p.cur.advance()
	}
}

// skipComment consumes a comment through the end of the line, not including
// the line break.
func (p *Parser) skipComment() {
	if p.cur.peek(0) != '#' {
		return
	}
	for !p.cur.eof() && !isBreak(p.cur.peek(0)) {
		p.cur.advance()
	}
}

// skipToContent advances to the next content character, consuming white
// space, comments and line breaks along the way. In block context a tab
// found in the indentation of a content line is an error; blank and
// comment lines may still use tabs freely.
func (p *Parser) skipToContent(inFlow bool) *ScanError {
	atIndent := p.cur.mark().Column == 0
	for {
		r := p.cur.peek(0)
		switch {
		case r == ' ':
			p.cur.advance()
		case r == '\t':
			if atIndent && !inFlow {
				j := 0
				for isWhite(p.cur.peek(j)) {
					j++
				}
				if next := p.cur.peek(j); next != 0 && next != '#' && !isBreak(next) {
					return scanErrorf(ErrInvalidCharacter, p.cur.mark(),
						"found a tab character where an indentation space is expected")
				}
			}
			p.cur.advance()
		case r == '#':
			p.skipComment()
		case isBreak(r):
			p.cur.advance()
			atIndent = true
		case isBOM(r) && atIndent:
			p.cur.advance()
		default:
			return nil
		}
	}
}

// looksLikeKey reports whether the content at the cursor reads as an
// implicit mapping key: a ':' at the top bracket nesting level on the
// current line, followed by white space or the end of the line. Quoted
// spans are skipped so that colons inside them do not count.
func (p *Parser) looksLikeKey() bool {
	depth := 0
	for i := 0; i < maxKeyLookahead; i++ {
		r := p.cur.peek(i)
		switch {
		case r == 0 || isBreak(r):
			return false
		case r == '\'' || r == '"':
			quote := r
			for i++; i < maxKeyLookahead; i++ {
				s := p.cur.peek(i)
				if s == 0 || isBreak(s) {
					return false
				}
				if quote == '"' && s == '\\' {
					i++
					continue
				}
				if s == quote {
					if quote == '\'' && p.cur.peek(i+1) == '\'' {
						i++
						continue
					}
					// A quoted key carries its own delimiters, so the ':'
					// after it may appear without separation.
					if depth == 0 && p.cur.peek(i+1) == ':' {
						return true
					}
					break
				}
			}
		case r == '[' || r == '{':
			depth++
		case r == ']' || r == '}':
			if depth > 0 {
				depth--
			}
		case r == ':' && depth == 0 && isBlankz(p.cur.peek(i+1)):
			return true
		case r == '#' && i > 0 && isWhite(p.cur.peek(i-1)):
			return false
		}
	}
	return false
}

// foldInto applies the line folding rule to a run of pending breaks: a
// single break joins the surrounding lines with a space, and each break
// beyond the first contributes a literal newline.
func foldInto(buf []rune, breaks int) []rune {
	if breaks == 1 {
		return append(buf, ' ')
	}
	for i := 1; i < breaks; i++ {
		buf = append(buf, '\n')
	}
	return buf
}

// nullNodeAt builds the empty scalar that stands in for an absent node.
func nullNodeAt(m Mark) *Node {
	return &Node{
		Kind:   ScalarNode,
		Style:  PlainStyle,
		Tag:    NonSpecificTag,
		Line:   m.Line,
		Column: m.Column,
	}
}

// enter guards a descent into a nested node against runaway recursion.
func (p *Parser) enter(m Mark) *ScanError {
	p.depth++
	if p.depth > p.opts.MaxDepth {
		return scanErrorf(ErrRecursionLimit, m,
			"exceeded the maximum nesting depth of %d", p.opts.MaxDepth)
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// finishNode applies explicit node properties, falling back to the
// non-specific tags: "?" for plain scalars and untagged collections, "!"
// for quoted and block scalars, whose kind is already evident from their
// style. Anchored nodes are recorded for later alias resolution; binding
// an anchor again replaces the earlier target.
func (p *Parser) finishNode(node *Node, tag, anchor string) *Node {
	if tag != "" {
		node.Tag = tag
	} else if node.Tag == "" && node.Kind != AliasNode {
		if node.Kind == ScalarNode && node.Style != PlainStyle {
			node.Tag = LocalTag
		} else {
			node.Tag = NonSpecificTag
		}
	}
	if anchor != "" {
		node.Anchor = anchor
		p.anchors[anchor] = node
	}
	return node
}
