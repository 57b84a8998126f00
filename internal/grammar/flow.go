// Copyright 2006-2010 Kirill Simonov
// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0 AND MIT

// The flow layer: node properties, plain and quoted scalars, aliases, and
// the bracketed flow collections. Everything here may appear inside a
// block-structured document, so each production reads the indentation it
// must stay to the right of and the context it runs in from the innermost
// frame of the context stack.

package grammar

import "strings"

// parseProperties collects the optional tag and anchor properties in front
// of a node, in either order, with at most one of each.
func (p *Parser) parseProperties() (tag, anchor string, err *ScanError) {
	c := p.ctx.context()
	for {
		switch p.cur.peek(0) {
		case '!':
			if tag != "" {
				return "", "", scanErrorf(ErrUnexpectedContent, p.cur.mark(),
					"found duplicate tag property")
			}
			if tag, err = p.parseTag(); err != nil {
				return "", "", err
			}
		case '&':
			if anchor != "" {
				return "", "", scanErrorf(ErrUnexpectedContent, p.cur.mark(),
					"found duplicate anchor property")
			}
			if anchor, err = p.parseAnchorName("anchor"); err != nil {
				return "", "", err
			}
		default:
			return tag, anchor, nil
		}
		if c.singleLine() {
			p.skipInline()
		} else if err = p.skipToContent(c.inFlow()); err != nil {
			return "", "", err
		}
	}
}

// parseAnchorName scans the name after an '&' or '*' indicator. A ':' that
// would read as a mapping value indicator ends the name so that aliases
// can serve as implicit keys.
func (p *Parser) parseAnchorName(what string) (string, *ScanError) {
	start := p.cur.mark()
	p.cur.advance()
	var sb strings.Builder
	for {
		r := p.cur.peek(0)
		if !isAnchorChar(r) {
			break
		}
		if r == ':' && isBlankz(p.cur.peek(1)) {
			break
		}
		sb.WriteRune(r)
		p.cur.advance()
	}
	if sb.Len() == 0 {
		return "", scanErrorCtx(ErrInvalidCharacter, "while scanning an "+what, start,
			p.cur.mark(), "did not find expected %s name", what)
	}
	return sb.String(), nil
}

// parseTag scans a tag property and resolves any shorthand against the tag
// directives in scope. Verbatim tags pass through unresolved.
func (p *Parser) parseTag() (string, *ScanError) {
	const what = "while scanning a tag"
	start := p.cur.mark()

	if p.cur.peek(1) == '<' {
		p.cur.skip(2)
		var sb strings.Builder
		for {
			r := p.cur.peek(0)
			if r == '>' {
				break
			}
			if r == 0 || isBreak(r) {
				return "", scanErrorCtx(ErrExpectedCloseDelimiter, what, start,
					p.cur.mark(), "did not find the expected '>'")
			}
			sb.WriteRune(r)
			p.cur.advance()
		}
		p.cur.advance()
		if sb.Len() == 0 {
			return "", scanErrorCtx(ErrInvalidCharacter, what, start, p.cur.mark(),
				"found an empty verbatim tag")
		}
		if err := p.checkTagEnd(what, start); err != nil {
			return "", err
		}
		return sb.String(), nil
	}

	// The handle is either '!', '!!', or '!name!'. Scan the word characters
	// after the first '!' and look for a closing '!'.
	end := 1
	for isWordChar(p.cur.peek(end)) {
		end++
	}
	handle := "!"
	if p.cur.peek(end) == '!' {
		var sb strings.Builder
		for i := 0; i <= end; i++ {
			sb.WriteRune(p.cur.peek(i))
		}
		handle = sb.String()
		p.cur.skip(end + 1)
	} else {
		p.cur.advance()
	}

	var suffix strings.Builder
	for {
		r := p.cur.peek(0)
		if r == '%' {
			h1, h2 := p.cur.peek(1), p.cur.peek(2)
			if !isHex(h1) || !isHex(h2) {
				return "", scanErrorCtx(ErrInvalidCharacter, what, start, p.cur.mark(),
					"found an invalid URI escape")
			}
			suffix.WriteByte(byte(asHex(h1)<<4 | asHex(h2)))
			p.cur.skip(3)
			continue
		}
		if !isTagChar(r) {
			break
		}
		suffix.WriteRune(r)
		p.cur.advance()
	}

	if suffix.Len() == 0 {
		if handle == "!" {
			// a lone '!' is the non-specific tag
			if err := p.checkTagEnd(what, start); err != nil {
				return "", err
			}
			return LocalTag, nil
		}
		return "", scanErrorCtx(ErrInvalidCharacter, what, start, p.cur.mark(),
			"did not find expected tag suffix")
	}

	prefix, ok := p.tags[handle]
	if !ok {
		return "", scanErrorf(ErrUnknownTagHandle, start,
			"found undeclared tag handle %q", handle)
	}
	if err := p.checkTagEnd(what, start); err != nil {
		return "", err
	}
	return prefix + suffix.String(), nil
}

func (p *Parser) checkTagEnd(what string, start Mark) *ScanError {
	if r := p.cur.peek(0); !isBlankz(r) {
		return scanErrorCtx(ErrExpectedSeparation, what, start, p.cur.mark(),
			"did not find expected whitespace or line break after the tag")
	}
	return nil
}

// parseAlias resolves an '*' reference against the anchors bound so far in
// the current document.
func (p *Parser) parseAlias() (*Node, *ScanError) {
	start := p.cur.mark()
	name, err := p.parseAnchorName("alias")
	if err != nil {
		return nil, err
	}
	target, ok := p.anchors[name]
	if !ok {
		return nil, scanErrorf(ErrUnknownAnchor, start, "found undefined alias %q", name)
	}
	return &Node{
		Kind:   AliasNode,
		Value:  name,
		Alias:  target,
		Line:   start.Line,
		Column: start.Column,
	}, nil
}

// parsePlain scans a plain scalar. In multi-line contexts continuation
// lines must be indented past the frame's indentation and are folded into
// the value; document markers, comments and outdented lines end the scalar.
func (p *Parser) parsePlain() *Node {
	n, c := p.ctx.indent(), p.ctx.context()
	start := p.cur.mark()
	var buf, pending []rune
	breaks := 0
	commit := func() {
		if breaks > 0 {
			buf = foldInto(buf, breaks)
			breaks = 0
		} else {
			buf = append(buf, pending...)
		}
		pending = pending[:0]
	}
scan:
	for {
		r := p.cur.peek(0)
		switch {
		case r == 0:
			break scan
		case r == ':' && (isBlankz(p.cur.peek(1)) || (c.inFlow() && isFlowIndicator(p.cur.peek(1)))):
			break scan
		case c.inFlow() && isFlowIndicator(r):
			break scan
		case r == '#' && (len(pending) > 0 || breaks > 0):
			break scan
		case isWhite(r):
			pending = append(pending, r)
			p.cur.advance()
		case isBreak(r):
			if c.singleLine() {
				break scan
			}
			pending = pending[:0]
			p.cur.advance()
			breaks++
			for {
				if p.cur.eof() || p.cur.onDocumentMarker() {
					break scan
				}
				for isWhite(p.cur.peek(0)) {
					p.cur.advance()
				}
				s := p.cur.peek(0)
				if isBreak(s) {
					p.cur.advance()
					breaks++
					continue
				}
				if s == 0 || s == '#' || p.cur.mark().Column <= n {
					break scan
				}
				break
			}
		default:
			commit()
			buf = append(buf, r)
			p.cur.advance()
		}
	}
	return &Node{
		Kind:   ScalarNode,
		Style:  PlainStyle,
		Value:  string(buf),
		Line:   start.Line,
		Column: start.Column,
	}
}

// parseQuoted scans a single- or double-quoted scalar, folding line breaks
// the same way plain scalars do. Double quotes additionally process escape
// sequences, including the escaped line break that joins lines without
// inserting a space.
func (p *Parser) parseQuoted(double bool) (*Node, *ScanError) {
	const what = "while scanning a quoted scalar"
	c := p.ctx.context()
	start := p.cur.mark()
	p.cur.advance()
	var buf, pending []rune
	breaks := 0
	commit := func() {
		if breaks > 0 {
			buf = foldInto(buf, breaks)
			breaks = 0
		} else {
			buf = append(buf, pending...)
		}
		pending = pending[:0]
	}
scan:
	for {
		if p.cur.onDocumentMarker() {
			return nil, scanErrorCtx(ErrUnexpectedContent, what, start, p.cur.mark(),
				"found unexpected document indicator")
		}
		r := p.cur.peek(0)
		switch {
		case r == 0:
			return nil, scanErrorCtx(ErrExpectedCloseDelimiter, what, start, p.cur.mark(),
				"found unexpected end of stream")
		case !double && r == '\'':
			if p.cur.peek(1) == '\'' {
				commit()
				buf = append(buf, '\'')
				p.cur.skip(2)
				continue
			}
			p.cur.advance()
			break scan
		case double && r == '"':
			p.cur.advance()
			break scan
		case double && r == '\\' && isBreak(p.cur.peek(1)):
			commit()
			p.cur.skip(2)
			for isWhite(p.cur.peek(0)) {
				p.cur.advance()
			}
		case double && r == '\\':
			commit()
			dr, err := decodeEscape(p.cur)
			if err != nil {
				return nil, err
			}
			buf = append(buf, dr)
		case isBreak(r):
			if c.singleLine() {
				return nil, scanErrorCtx(ErrExpectedCloseDelimiter, what, start, p.cur.mark(),
					"found unexpected line break in a single-line context")
			}
			pending = pending[:0]
			p.cur.advance()
			breaks++
			for isWhite(p.cur.peek(0)) {
				p.cur.advance()
			}
		case isWhite(r):
			pending = append(pending, r)
			p.cur.advance()
		default:
			commit()
			buf = append(buf, r)
			p.cur.advance()
		}
	}

	if r := p.cur.peek(0); !isBlankz(r) && r != ':' && r != '#' && !isFlowIndicator(r) {
		return nil, scanErrorCtx(ErrExpectedSeparation, what, start, p.cur.mark(),
			"found unexpected character %q after the closing quote", r)
	}
	style := SingleQuotedStyle
	if double {
		style = DoubleQuotedStyle
	}
	return &Node{
		Kind:   ScalarNode,
		Style:  style,
		Value:  string(buf),
		Line:   start.Line,
		Column: start.Column,
	}, nil
}

// canStartPlain reports whether the character begins a plain scalar, given
// the one after it and the context.
func canStartPlain(r, next rune, c Context) bool {
	if r == 0 || isBlankz(r) {
		return false
	}
	if c.inFlow() && isFlowIndicator(r) {
		return false
	}
	if !isIndicator(r) {
		return true
	}
	switch r {
	case '-', ':':
		return !isBlankz(next) && !(c.inFlow() && isFlowIndicator(next))
	case '?':
		return !isBlankz(next)
	}
	return false
}

// parseFlowNode parses any node that may appear inside a flow collection
// or as an implicit mapping key: properties followed by an alias, a nested
// flow collection, a quoted scalar, or a plain scalar.
func (p *Parser) parseFlowNode() (*Node, *ScanError) {
	c := p.ctx.context()
	m := p.cur.mark()
	if err := p.enter(m); err != nil {
		return nil, err
	}
	defer p.leave()

	tag, anchor, err := p.parseProperties()
	if err != nil {
		return nil, err
	}
	start := p.cur.mark()
	var node *Node
	switch r := p.cur.peek(0); {
	case r == '*':
		if tag != "" || anchor != "" {
			return nil, scanErrorf(ErrUnexpectedContent, start,
				"found properties before an alias node")
		}
		return p.parseAlias()
	case r == '[':
		node, err = p.parseFlowSequence()
	case r == '{':
		node, err = p.parseFlowMapping()
	case r == '\'' || r == '"':
		node, err = p.parseQuoted(r == '"')
	case canStartPlain(r, p.cur.peek(1), c):
		node = p.parsePlain()
	default:
		node = nullNodeAt(start)
	}
	if err != nil {
		return nil, err
	}
	return p.finishNode(node, tag, anchor), nil
}

// jsonLike reports whether a key carries its own unambiguous delimiters,
// which allows the ':' after it to appear without separation.
func jsonLike(key *Node) bool {
	if key == nil {
		return false
	}
	switch key.Style {
	case SingleQuotedStyle, DoubleQuotedStyle:
		return true
	case FlowStyle:
		return key.Kind == SequenceNode || key.Kind == MappingNode
	}
	return false
}

// flowSeparate skips to the next token inside a flow collection and checks
// that the collection is still open: the stream may not end, a document
// marker may not intrude, and continuation lines must stay indented past
// the frame's indentation.
func (p *Parser) flowSeparate(what string, start Mark) *ScanError {
	n := p.ctx.indent()
	if err := p.skipToContent(true); err != nil {
		return err
	}
	if p.cur.eof() {
		return scanErrorCtx(ErrExpectedCloseDelimiter, what, start, p.cur.mark(),
			"found unexpected end of stream")
	}
	if p.cur.onDocumentMarker() {
		return scanErrorCtx(ErrExpectedCloseDelimiter, what, start, p.cur.mark(),
			"found unexpected document indicator")
	}
	if m := p.cur.mark(); m.Column <= n {
		return scanErrorCtx(ErrUnexpectedIndentation, what, start, m,
			"found insufficiently indented line")
	}
	return nil
}

func (p *Parser) parseFlowSequence() (*Node, *ScanError) {
	const what = "while parsing a flow sequence"
	start := p.cur.mark()
	tok := p.ctx.push(FlowIn, p.ctx.indent())
	defer p.ctx.pop(tok)
	node := &Node{Kind: SequenceNode, Style: FlowStyle, Line: start.Line, Column: start.Column}
	p.cur.advance()
	for first := true; ; first = false {
		if err := p.flowSeparate(what, start); err != nil {
			return nil, err
		}
		if p.cur.peek(0) == ']' {
			p.cur.advance()
			break
		}
		if first {
			// "[,]" has no first entry for the ',' to follow
			if p.cur.peek(0) == ',' {
				return nil, scanErrorCtx(ErrUnexpectedContent, what, start, p.cur.mark(),
					"did not find expected node content")
			}
		} else {
			if p.cur.peek(0) != ',' {
				return nil, scanErrorCtx(ErrExpectedCloseDelimiter, what, start, p.cur.mark(),
					"expected ',' or ']', but found %q", p.cur.peek(0))
			}
			p.cur.advance()
			if err := p.flowSeparate(what, start); err != nil {
				return nil, err
			}
			if p.cur.peek(0) == ']' {
				p.cur.advance()
				break
			}
		}
		entry, err := p.parseFlowPair(what, start)
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content, entry)
	}
	return node, nil
}

// parseFlowPair parses one flow sequence entry, turning "key: value" and
// "? key : value" forms into a single-pair mapping.
func (p *Parser) parseFlowPair(what string, start Mark) (*Node, *ScanError) {
	m := p.cur.mark()
	explicit := false
	if p.cur.peek(0) == '?' && (isBlankz(p.cur.peek(1)) || isFlowIndicator(p.cur.peek(1))) {
		explicit = true
		p.cur.advance()
		if err := p.flowSeparate(what, start); err != nil {
			return nil, err
		}
	}

	var key *Node
	if r := p.cur.peek(0); r == ',' || r == ']' || r == '}' ||
		(r == ':' && (isBlankz(p.cur.peek(1)) || isFlowIndicator(p.cur.peek(1)))) {
		key = nullNodeAt(m)
	} else {
		var err *ScanError
		if key, err = p.parseFlowNode(); err != nil {
			return nil, err
		}
	}

	p.skipInline()
	isColon := p.cur.peek(0) == ':' &&
		(isBlankz(p.cur.peek(1)) || isFlowIndicator(p.cur.peek(1)) || jsonLike(key))
	if !explicit && !isColon {
		return key, nil
	}

	value := nullNodeAt(p.cur.mark())
	if isColon {
		p.cur.advance()
		if err := p.flowSeparate(what, start); err != nil {
			return nil, err
		}
		if r := p.cur.peek(0); r != ',' && r != ']' && r != '}' {
			var err *ScanError
			if value, err = p.parseFlowNode(); err != nil {
				return nil, err
			}
		}
	}
	return &Node{
		Kind:    MappingNode,
		Style:   FlowStyle,
		Tag:     NonSpecificTag,
		Line:    m.Line,
		Column:  m.Column,
		Content: []*Node{key, value},
	}, nil
}

func (p *Parser) parseFlowMapping() (*Node, *ScanError) {
	const what = "while parsing a flow mapping"
	start := p.cur.mark()
	tok := p.ctx.push(FlowIn, p.ctx.indent())
	defer p.ctx.pop(tok)
	node := &Node{Kind: MappingNode, Style: FlowStyle, Line: start.Line, Column: start.Column}
	p.cur.advance()
	for first := true; ; first = false {
		if err := p.flowSeparate(what, start); err != nil {
			return nil, err
		}
		if p.cur.peek(0) == '}' {
			p.cur.advance()
			break
		}
		if first {
			if p.cur.peek(0) == ',' {
				return nil, scanErrorCtx(ErrUnexpectedContent, what, start, p.cur.mark(),
					"did not find expected node content")
			}
		} else {
			if p.cur.peek(0) != ',' {
				return nil, scanErrorCtx(ErrExpectedCloseDelimiter, what, start, p.cur.mark(),
					"expected ',' or '}', but found %q", p.cur.peek(0))
			}
			p.cur.advance()
			if err := p.flowSeparate(what, start); err != nil {
				return nil, err
			}
			if p.cur.peek(0) == '}' {
				p.cur.advance()
				break
			}
		}

		m := p.cur.mark()
		if p.cur.peek(0) == '?' && (isBlankz(p.cur.peek(1)) || isFlowIndicator(p.cur.peek(1))) {
			p.cur.advance()
			if err := p.flowSeparate(what, start); err != nil {
				return nil, err
			}
		}
		var key *Node
		if r := p.cur.peek(0); r == ',' || r == '}' ||
			(r == ':' && (isBlankz(p.cur.peek(1)) || isFlowIndicator(p.cur.peek(1)))) {
			key = nullNodeAt(m)
		} else {
			var err *ScanError
			if key, err = p.parseFlowNode(); err != nil {
				return nil, err
			}
		}

		p.skipInline()
		value := nullNodeAt(p.cur.mark())
		if p.cur.peek(0) == ':' &&
			(isBlankz(p.cur.peek(1)) || isFlowIndicator(p.cur.peek(1)) || jsonLike(key)) {
			p.cur.advance()
			if err := p.flowSeparate(what, start); err != nil {
				return nil, err
			}
			if r := p.cur.peek(0); r != ',' && r != '}' {
				var err *ScanError
				if value, err = p.parseFlowNode(); err != nil {
					return nil, err
				}
			}
		}
		node.Content = append(node.Content, key, value)
	}
	return node, nil
}
