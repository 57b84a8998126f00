// Copyright 2006-2010 Kirill Simonov
// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0 AND MIT

// The document layer: directives and the per-document tables they feed.
// Anchors, tag handles and the version all reset at every document
// boundary; tag shorthands elsewhere in the package resolve against the
// tables maintained here.

package grammar

import (
	"fmt"
	"strings"
)

// defaultSecondaryPrefix is the prefix the '!!' handle resolves to unless
// a %TAG directive overrides it.
const defaultSecondaryPrefix = "tag:yaml.org,2002:"

// resetDocument clears the per-document state before a new document is
// parsed.
func (p *Parser) resetDocument() {
	p.anchors = make(map[string]*Node)
	p.tags = map[string]string{
		"!":  "!",
		"!!": defaultSecondaryPrefix,
	}
	p.explicitTags = make(map[string]bool)
	p.version = nil
	p.tagDirectives = nil
}

// parseDirective scans one '%' line. %YAML and %TAG are understood; any
// other directive produces a warning and is skipped.
func (p *Parser) parseDirective() *ScanError {
	start := p.cur.mark()
	p.cur.advance() // '%'

	var name strings.Builder
	for r := p.cur.peek(0); !isBlankz(r); r = p.cur.peek(0) {
		name.WriteRune(r)
		p.cur.advance()
	}

	switch name.String() {
	case "YAML":
		if err := p.parseVersionDirective(start); err != nil {
			return err
		}
	case "TAG":
		if err := p.parseTagDirective(start); err != nil {
			return err
		}
	case "":
		return scanErrorf(ErrMalformedDirective, start, "did not find expected directive name")
	default:
		p.warn(WarnReservedDirective, start, "found reserved directive %q", name.String())
		for r := p.cur.peek(0); r != 0 && !isBreak(r); r = p.cur.peek(0) {
			p.cur.advance()
		}
		return nil
	}

	p.skipInline()
	p.skipComment()
	if r := p.cur.peek(0); r != 0 && !isBreak(r) {
		return scanErrorCtx(ErrMalformedDirective, "while scanning a %"+name.String()+" directive",
			start, p.cur.mark(), "did not find expected comment or line break")
	}
	return nil
}

func (p *Parser) parseVersionDirective(start Mark) *ScanError {
	const what = "while scanning a %YAML directive"
	if p.version != nil {
		return scanErrorf(ErrMalformedDirective, start, "found duplicate %%YAML directive")
	}
	p.skipInline()
	major, err := p.parseVersionNumber(what, start)
	if err != nil {
		return err
	}
	if p.cur.peek(0) != '.' {
		return scanErrorCtx(ErrMalformedDirective, what, start, p.cur.mark(),
			"did not find expected digit or '.' character")
	}
	p.cur.advance()
	minor, err := p.parseVersionNumber(what, start)
	if err != nil {
		return err
	}
	if major != 1 || minor > 2 {
		p.warn(WarnUnsupportedVersion, start,
			"found unsupported YAML version %d.%d; treating the document as 1.2", major, minor)
	}
	p.version = &VersionDirective{Major: major, Minor: minor}
	return nil
}

func (p *Parser) parseVersionNumber(what string, start Mark) (int, *ScanError) {
	if !isDigit(p.cur.peek(0)) {
		return 0, scanErrorCtx(ErrMalformedDirective, what, start, p.cur.mark(),
			"did not find expected version number")
	}
	value := 0
	for isDigit(p.cur.peek(0)) {
		value = value*10 + int(p.cur.peek(0)-'0')
		if value > 9999 {
			return 0, scanErrorCtx(ErrMalformedDirective, what, start, p.cur.mark(),
				"found excessively long version number")
		}
		p.cur.advance()
	}
	return value, nil
}

func (p *Parser) parseTagDirective(start Mark) *ScanError {
	const what = "while scanning a %TAG directive"
	p.skipInline()

	if p.cur.peek(0) != '!' {
		return scanErrorCtx(ErrMalformedDirective, what, start, p.cur.mark(),
			"did not find expected tag handle")
	}
	var handle strings.Builder
	handle.WriteRune('!')
	p.cur.advance()
	for isWordChar(p.cur.peek(0)) {
		handle.WriteRune(p.cur.peek(0))
		p.cur.advance()
	}
	switch {
	case p.cur.peek(0) == '!':
		handle.WriteRune('!')
		p.cur.advance()
	case handle.Len() > 1:
		// a named handle must close with '!'
		return scanErrorCtx(ErrMalformedDirective, what, start, p.cur.mark(),
			"did not find expected '!' closing the tag handle")
	}
	if !isWhite(p.cur.peek(0)) {
		return scanErrorCtx(ErrMalformedDirective, what, start, p.cur.mark(),
			"did not find expected whitespace after the tag handle")
	}
	p.skipInline()

	var prefix strings.Builder
	for r := p.cur.peek(0); !isBlankz(r); r = p.cur.peek(0) {
		prefix.WriteRune(r)
		p.cur.advance()
	}
	if prefix.Len() == 0 {
		return scanErrorCtx(ErrMalformedDirective, what, start, p.cur.mark(),
			"did not find expected tag prefix")
	}

	h := handle.String()
	if p.explicitTags[h] {
		p.warn(WarnDuplicateTagHandle, start,
			"found duplicate %%TAG directive for handle %q; the last one wins", h)
	}
	p.explicitTags[h] = true
	p.tags[h] = prefix.String()
	p.tagDirectives = append(p.tagDirectives, TagDirective{Handle: h, Prefix: prefix.String()})
	return nil
}

func (p *Parser) warn(kind WarningKind, m Mark, format string, args ...any) {
	w := Warning{Kind: kind, Mark: m, Message: fmt.Sprintf(format, args...)}
	p.warnings = append(p.warnings, w)
	if p.opts.WarningHandler != nil {
		p.opts.WarningHandler(w)
	}
}
