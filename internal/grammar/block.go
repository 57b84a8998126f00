// Copyright 2006-2010 Kirill Simonov
// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0 AND MIT

// The block layer: indentation-structured sequences and mappings, the two
// block scalar styles, and the dispatch that decides what kind of node
// starts at the cursor.

package grammar

import "strings"

// parseBlockNode parses a node in block context, under the indentation and
// context of the innermost frame. The cursor must sit on the first character
// of the node, whose column the caller has checked to be greater than the
// frame's indentation.
func (p *Parser) parseBlockNode() (*Node, *ScanError) {
	n, c := p.ctx.indent(), p.ctx.context()
	m := p.cur.mark()
	if err := p.enter(m); err != nil {
		return nil, err
	}
	defer p.leave()

	if p.cur.peek(0) == '?' && isBlankz(p.cur.peek(1)) {
		return p.parseBlockMapping()
	}
	if p.looksLikeKey() {
		return p.parseBlockMapping()
	}

	tag, anchor, err := p.parseProperties()
	if err != nil {
		return nil, err
	}
	start := p.cur.mark()
	if tag != "" || anchor != "" {
		// Properties may stand alone on their line. The node then sits on
		// a following, more indented line, or is absent entirely.
		if p.cur.eof() || p.cur.onDocumentMarker() ||
			(start.Line > m.Line && start.Column <= n) {
			return p.finishNode(nullNodeAt(start), tag, anchor), nil
		}
		if p.looksLikeKey() {
			node, err := p.parseBlockMapping()
			if err != nil {
				return nil, err
			}
			return p.finishNode(node, tag, anchor), nil
		}
	}

	var node *Node
	switch r := p.cur.peek(0); {
	case r == '*':
		if tag != "" || anchor != "" {
			return nil, scanErrorf(ErrUnexpectedContent, start,
				"found properties before an alias node")
		}
		return p.parseAlias()
	case r == '|' || r == '>':
		node, err = p.parseBlockScalar(r == '>')
	case r == '-' && isBlankz(p.cur.peek(1)):
		node, err = p.parseBlockSequence()
	case r == '?' && isBlankz(p.cur.peek(1)):
		node, err = p.parseBlockMapping()
	case r == '[':
		node, err = p.parseFlowSequence()
	case r == '{':
		node, err = p.parseFlowMapping()
	case r == '\'' || r == '"':
		node, err = p.parseQuoted(r == '"')
	case r == 0:
		node = nullNodeAt(start)
	case canStartPlain(r, p.cur.peek(1), c):
		node = p.parsePlain()
	default:
		return nil, scanErrorf(ErrInvalidCharacter, start,
			"found character %q that cannot start any node", r)
	}
	if err != nil {
		return nil, err
	}
	return p.finishNode(node, tag, anchor), nil
}

// parseBlockSequence parses the "- entry" form. The first '-' fixes the
// sequence column; every further entry must start at exactly that column.
// Entries parse under a block-in frame at that column.
func (p *Parser) parseBlockSequence() (*Node, *ScanError) {
	const what = "while parsing a block sequence"
	start := p.cur.mark()
	col := start.Column
	tok := p.ctx.push(BlockIn, col)
	defer p.ctx.pop(tok)
	node := &Node{Kind: SequenceNode, Line: start.Line, Column: col}
	for {
		p.cur.advance() // the '-'
		dash := p.cur.mark()
		var entry *Node
		var err *ScanError
		p.skipInline()
		if r := p.cur.peek(0); r == '#' || isBreak(r) || r == 0 {
			p.skipComment()
			if err = p.skipToContent(false); err != nil {
				return nil, err
			}
			if m := p.cur.mark(); p.cur.eof() || p.cur.onDocumentMarker() || m.Column <= col {
				entry = nullNodeAt(dash)
			} else if entry, err = p.parseBlockNode(); err != nil {
				return nil, err
			}
		} else if entry, err = p.parseBlockNode(); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, entry)

		if err := p.skipToContent(false); err != nil {
			return nil, err
		}
		if p.cur.eof() || p.cur.onDocumentMarker() {
			break
		}
		m := p.cur.mark()
		if m.Column < col {
			break
		}
		if m.Column > col {
			return nil, scanErrorCtx(ErrUnexpectedIndentation, what, start, m,
				"did not find expected '-' indicator")
		}
		if p.cur.peek(0) != '-' || !isBlankz(p.cur.peek(1)) {
			break
		}
	}
	return node, nil
}

// parseBlockMapping parses "key: value" entries at a fixed column, in both
// the implicit single-line key form and the explicit "? key" form. The
// mapping frame holds the entry column; implicit keys get a block-key frame
// of their own so that scalar scanners see the single-line restriction.
func (p *Parser) parseBlockMapping() (*Node, *ScanError) {
	const what = "while parsing a block mapping"
	start := p.cur.mark()
	col := start.Column
	tok := p.ctx.push(BlockOut, col)
	defer p.ctx.pop(tok)
	node := &Node{Kind: MappingNode, Line: start.Line, Column: col}
	for {
		var key, value *Node
		var err *ScanError
		keyMark := p.cur.mark()
		switch {
		case p.cur.peek(0) == '?' && isBlankz(p.cur.peek(1)):
			p.cur.advance()
			p.skipInline()
			if r := p.cur.peek(0); r == '#' || isBreak(r) || r == 0 {
				p.skipComment()
				if err = p.skipToContent(false); err != nil {
					return nil, err
				}
				if m := p.cur.mark(); p.cur.eof() || p.cur.onDocumentMarker() || m.Column <= col {
					key = nullNodeAt(keyMark)
				} else if key, err = p.parseBlockNode(); err != nil {
					return nil, err
				}
			} else if key, err = p.parseBlockNode(); err != nil {
				return nil, err
			}
			if err = p.skipToContent(false); err != nil {
				return nil, err
			}
			m := p.cur.mark()
			if !p.cur.eof() && !p.cur.onDocumentMarker() && m.Column == col &&
				p.cur.peek(0) == ':' && isBlankz(p.cur.peek(1)) {
				p.cur.advance()
				if value, err = p.parseMappingValue(); err != nil {
					return nil, err
				}
			} else {
				if !p.cur.eof() && !p.cur.onDocumentMarker() && m.Column > col {
					return nil, scanErrorCtx(ErrUnexpectedIndentation, what, start, m,
						"did not find expected ':' indicator")
				}
				value = nullNodeAt(m)
			}
		case p.cur.peek(0) == ':' && isBlankz(p.cur.peek(1)):
			key = nullNodeAt(keyMark)
			p.cur.advance()
			if value, err = p.parseMappingValue(); err != nil {
				return nil, err
			}
		default:
			keyTok := p.ctx.push(BlockKey, col)
			key, err = p.parseFlowNode()
			p.ctx.pop(keyTok)
			if err != nil {
				return nil, err
			}
			p.skipInline()
			if p.cur.peek(0) != ':' || (!isBlankz(p.cur.peek(1)) && !jsonLike(key)) {
				return nil, scanErrorCtx(ErrUnexpectedContent, what, start, p.cur.mark(),
					"did not find expected ':' after the mapping key")
			}
			p.cur.advance()
			if value, err = p.parseMappingValue(); err != nil {
				return nil, err
			}
		}
		node.Content = append(node.Content, key, value)

		if err := p.skipToContent(false); err != nil {
			return nil, err
		}
		if p.cur.eof() || p.cur.onDocumentMarker() {
			break
		}
		m := p.cur.mark()
		if m.Column < col {
			break
		}
		if m.Column > col {
			return nil, scanErrorCtx(ErrUnexpectedIndentation, what, start, m,
				"did not find expected key")
		}
		if r := p.cur.peek(0); !(r == '?' && isBlankz(p.cur.peek(1))) &&
			!(r == ':' && isBlankz(p.cur.peek(1))) && !p.looksLikeKey() {
			if r == '%' && m.Column == 0 {
				return nil, scanErrorf(ErrDirectiveAfterContent, m,
					"found a directive without a preceding document end marker")
			}
			return nil, scanErrorCtx(ErrUnexpectedContent, what, start, m,
				"did not find expected key")
		}
	}
	return node, nil
}

// parseMappingValue parses what follows a ':' at the mapping column, which
// the innermost frame holds. A value on the same line is parsed in place;
// otherwise the value must sit on a following line indented past the key, or
// it is null.
func (p *Parser) parseMappingValue() (*Node, *ScanError) {
	col := p.ctx.indent()
	vm := p.cur.mark()
	p.skipInline()
	if r := p.cur.peek(0); r != '#' && !isBreak(r) && r != 0 {
		return p.parseBlockNode()
	}
	p.skipComment()
	if err := p.skipToContent(false); err != nil {
		return nil, err
	}
	if m := p.cur.mark(); p.cur.eof() || p.cur.onDocumentMarker() || m.Column <= col {
		return nullNodeAt(vm), nil
	}
	return p.parseBlockNode()
}

type blockLine struct {
	text     []rune
	hadBreak bool
}

// parseBlockScalar scans a literal or folded block scalar, starting at the
// '|' or '>' indicator. The content indentation is taken from the header
// digit when present and detected from the first non-empty line otherwise,
// without consuming anything past the end of the scalar.
func (p *Parser) parseBlockScalar(folded bool) (*Node, *ScanError) {
	const what = "while scanning a block scalar"
	n := p.ctx.indent()
	start := p.cur.mark()
	p.cur.advance()

	chomp := 0 // -1 strip, 0 clip, +1 keep
	increment := 0
header:
	for {
		switch r := p.cur.peek(0); {
		case r == '+' || r == '-':
			if chomp != 0 {
				return nil, scanErrorCtx(ErrUnexpectedContent, what, start, p.cur.mark(),
					"found duplicate chomping indicator")
			}
			chomp = 1
			if r == '-' {
				chomp = -1
			}
			p.cur.advance()
		case isDigit(r):
			if r == '0' {
				return nil, scanErrorCtx(ErrInvalidCharacter, what, start, p.cur.mark(),
					"found an indentation indicator equal to 0")
			}
			if increment != 0 {
				return nil, scanErrorCtx(ErrUnexpectedContent, what, start, p.cur.mark(),
					"found duplicate indentation indicator")
			}
			increment = int(r - '0')
			p.cur.advance()
		default:
			break header
		}
	}
	p.skipInline()
	p.skipComment()
	if r := p.cur.peek(0); r != 0 && !isBreak(r) {
		return nil, scanErrorCtx(ErrUnexpectedContent, what, start, p.cur.mark(),
			"did not find expected comment or line break")
	}
	if !p.cur.eof() {
		p.cur.advance()
	}

	// indent == 0 means not fixed yet; a fixed indent is always at least 1
	indent := 0
	if increment > 0 {
		indent = increment
		if n >= 0 {
			indent = n + increment
		}
	}

	var lines []blockLine
	for {
		if p.cur.eof() || p.cur.onDocumentMarker() {
			break
		}
		i := 0
		for p.cur.peek(i) == ' ' && (indent == 0 || i < indent) {
			i++
		}
		r := p.cur.peek(i)
		if isBreak(r) || r == 0 {
			p.cur.skip(i)
			had := !p.cur.eof()
			if had {
				p.cur.advance()
			}
			lines = append(lines, blockLine{hadBreak: had})
			continue
		}
		if indent == 0 {
			indent = i
			if indent < n+1 {
				indent = n + 1
			}
			if indent < 1 {
				indent = 1
			}
			if r == '\t' && i < indent {
				return nil, scanErrorCtx(ErrInvalidCharacter, what, start, p.cur.mark(),
					"found a tab character where an indentation space is expected")
			}
		}
		if i < indent {
			break
		}
		p.cur.skip(i)
		var text []rune
		for !p.cur.eof() && !isBreak(p.cur.peek(0)) {
			text = append(text, p.cur.peek(0))
			p.cur.advance()
		}
		had := !p.cur.eof()
		if had {
			p.cur.advance()
		}
		lines = append(lines, blockLine{text: text, hadBreak: had})
	}

	// trailing breaks are subject to chomping
	trailBreaks := 0
	for len(lines) > 0 && len(lines[len(lines)-1].text) == 0 {
		if lines[len(lines)-1].hadBreak {
			trailBreaks++
		}
		lines = lines[:len(lines)-1]
	}
	if len(lines) > 0 && lines[len(lines)-1].hadBreak {
		trailBreaks++
	}

	var sb strings.Builder
	blankRun := 0
	prevMore := false
	started := false
	for _, ln := range lines {
		if len(ln.text) == 0 {
			blankRun++
			continue
		}
		more := ln.text[0] == ' ' || ln.text[0] == '\t'
		if started {
			switch {
			case !folded:
				for i := 0; i <= blankRun; i++ {
					sb.WriteByte('\n')
				}
			case blankRun > 0:
				count := blankRun
				if prevMore || more {
					count++
				}
				for i := 0; i < count; i++ {
					sb.WriteByte('\n')
				}
			case prevMore || more:
				sb.WriteByte('\n')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(string(ln.text))
		started = true
		prevMore = more
		blankRun = 0
	}
	switch {
	case chomp < 0:
	case chomp > 0:
		for i := 0; i < trailBreaks; i++ {
			sb.WriteByte('\n')
		}
	default:
		if sb.Len() > 0 && trailBreaks > 0 {
			sb.WriteByte('\n')
		}
	}

	style := LiteralStyle
	if folded {
		style = FoldedStyle
	}
	return &Node{
		Kind:   ScalarNode,
		Style:  style,
		Value:  sb.String(),
		Line:   start.Line,
		Column: start.Column,
	}, nil
}
