// Copyright 2006-2010 Kirill Simonov
// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0 AND MIT

// The driver walks the stream through its document-level states and hands
// out one Document at a time.

package grammar

import "io"

type parserState int8

const (
	stateStreamStart parserState = iota
	stateDocumentStart
	stateDocumentContent
	stateDocumentEnd
	stateStreamEnd
)

func (s parserState) String() string {
	switch s {
	case stateStreamStart:
		return "stream-start"
	case stateDocumentStart:
		return "document-start"
	case stateDocumentContent:
		return "document-content"
	case stateDocumentEnd:
		return "document-end"
	case stateStreamEnd:
		return "stream-end"
	}
	return "unknown"
}

// Parser scans one stream and produces its documents in order. It is not
// safe for concurrent use.
type Parser struct {
	cur  *cursor
	ctx  *contextStack
	opts Options

	state parserState
	doc   *Document

	anchors       map[string]*Node
	tags          map[string]string
	explicitTags  map[string]bool
	version       *VersionDirective
	tagDirectives []TagDirective

	warnings []Warning
	depth    int
	docCount int
}

// NewParser decodes the stream and prepares a parser positioned before the
// first document.
func NewParser(data []byte, opts ...Option) (*Parser, error) {
	o, err := ApplyOptions(opts...)
	if err != nil {
		return nil, err
	}
	runes, serr := decodeStream(data)
	if serr != nil {
		return nil, serr
	}
	p := &Parser{
		cur:   newCursor(runes),
		ctx:   newContextStack(),
		opts:  *o,
		state: stateStreamStart,
	}
	p.resetDocument()
	return p, nil
}

// Warnings returns the non-fatal issues observed so far, in stream order.
func (p *Parser) Warnings() []Warning {
	return p.warnings
}

// Next parses and returns the next document in the stream. It returns
// io.EOF once the stream is exhausted.
func (p *Parser) Next() (*Document, error) {
	for {
		switch p.state {
		case stateStreamStart:
			p.state = stateDocumentStart

		case stateDocumentStart:
			if err := p.skipToContent(false); err != nil {
				return nil, err
			}
			if p.cur.eof() {
				p.state = stateStreamEnd
				continue
			}
			if p.opts.SingleDocument && p.docCount >= 1 {
				return nil, scanErrorf(ErrUnexpectedContent, p.cur.mark(),
					"expected a single document in the stream, but found another one")
			}
			p.resetDocument()
			startMark := p.cur.mark()
			sawDirectives := false
			for p.cur.peek(0) == '%' && p.cur.mark().Column == 0 {
				sawDirectives = true
				if err := p.parseDirective(); err != nil {
					return nil, err
				}
				if err := p.skipToContent(false); err != nil {
					return nil, err
				}
			}
			explicit := false
			switch {
			case p.cur.onDocumentMarker() && p.cur.peek(0) == '-':
				p.cur.skip(3)
				explicit = true
			case sawDirectives:
				return nil, scanErrorf(ErrUnexpectedContent, p.cur.mark(),
					"did not find expected '---' after the directives")
			case p.cur.onDocumentMarker():
				// a stray "..." with no document in front of it
				p.cur.skip(3)
				continue
			}
			p.doc = &Document{
				Version:       p.version,
				TagDirectives: p.tagDirectives,
				Explicit:      explicit,
				StartMark:     startMark,
			}
			p.state = stateDocumentContent

		case stateDocumentContent:
			if err := p.skipToContent(false); err != nil {
				return nil, err
			}
			if p.cur.eof() || p.cur.onDocumentMarker() {
				p.doc.Root = nullNodeAt(p.cur.mark())
			} else {
				// the root frame is block-out at indentation -1
				root, err := p.parseBlockNode()
				if err != nil {
					return nil, err
				}
				p.doc.Root = root
			}
			p.state = stateDocumentEnd

		case stateDocumentEnd:
			if err := p.skipToContent(false); err != nil {
				return nil, err
			}
			m := p.cur.mark()
			sawEnd := false
			if p.cur.onDocumentMarker() && p.cur.peek(0) == '.' {
				p.cur.skip(3)
				sawEnd = true
			}
			p.doc.EndMark = p.cur.mark()
			if !sawEnd && !p.cur.eof() && !(p.cur.onDocumentMarker() && p.cur.peek(0) == '-') {
				if p.cur.peek(0) == '%' && m.Column == 0 {
					return nil, scanErrorf(ErrDirectiveAfterContent, m,
						"found a directive without a preceding document end marker")
				}
				return nil, scanErrorf(ErrUnexpectedContent, m,
					"expected the document end, but found additional content")
			}
			doc := p.doc
			p.doc = nil
			p.docCount++
			p.state = stateDocumentStart
			return doc, nil

		case stateStreamEnd:
			return nil, io.EOF
		}
	}
}
