// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package parser parses YAML streams into document trees.
//
// The package understands block and flow styles, the five scalar styles,
// directives, anchors and aliases, and multi-document streams. It stops at
// the representation graph: scalar values are delivered verbatim together
// with their resolved tags, and nothing is converted to native Go types.
//
// This file contains:
// - Type and constant re-exports from internal/grammar
// - Options re-exports
// - The Parser streaming API
// - Parse/ParseString/ParseReader convenience entry points
package parser

import (
	"errors"
	"io"

	"go.yaml.in/parser/internal/grammar"
)

//-----------------------------------------------------------------------------
// Re-exports
//-----------------------------------------------------------------------------

type (
	// Node is one vertex of a parsed document tree.
	Node = grammar.Node

	// Document is one document of a stream, with its directives.
	Document = grammar.Document

	// VersionDirective is a parsed %YAML directive.
	VersionDirective = grammar.VersionDirective

	// TagDirective is a parsed %TAG directive.
	TagDirective = grammar.TagDirective

	// Mark is a position in the input stream.
	Mark = grammar.Mark

	// Kind discriminates scalar, sequence, mapping and alias nodes.
	Kind = grammar.Kind

	// Style records the presentation style a node was written in.
	Style = grammar.Style

	// Error is the error type returned for malformed input.
	Error = grammar.ScanError

	// ErrorKind classifies parse errors.
	ErrorKind = grammar.ErrorKind

	// Warning is a non-fatal issue found while parsing.
	Warning = grammar.Warning

	// WarningKind classifies warnings.
	WarningKind = grammar.WarningKind
)

const (
	ScalarNode   = grammar.ScalarNode
	SequenceNode = grammar.SequenceNode
	MappingNode  = grammar.MappingNode
	AliasNode    = grammar.AliasNode

	PlainStyle        = grammar.PlainStyle
	SingleQuotedStyle = grammar.SingleQuotedStyle
	DoubleQuotedStyle = grammar.DoubleQuotedStyle
	LiteralStyle      = grammar.LiteralStyle
	FoldedStyle       = grammar.FoldedStyle
	FlowStyle         = grammar.FlowStyle

	// NonSpecificTag marks a node whose tag is left to later resolution.
	NonSpecificTag = grammar.NonSpecificTag

	// LocalTag marks quoted and block scalars with no explicit tag.
	LocalTag = grammar.LocalTag
)

const (
	ErrInvalidEncoding       = grammar.ErrInvalidEncoding
	ErrInvalidEscape         = grammar.ErrInvalidEscape
	ErrInvalidCharacter      = grammar.ErrInvalidCharacter
	ErrExpectedSeparation    = grammar.ErrExpectedSeparation
	ErrExpectedCloseDelim    = grammar.ErrExpectedCloseDelimiter
	ErrUnexpectedIndentation = grammar.ErrUnexpectedIndentation
	ErrUnexpectedContent     = grammar.ErrUnexpectedContent
	ErrUnknownAnchor         = grammar.ErrUnknownAnchor
	ErrUnknownTagHandle      = grammar.ErrUnknownTagHandle
	ErrDirectiveAfterContent = grammar.ErrDirectiveAfterContent
	ErrMalformedDirective    = grammar.ErrMalformedDirective
	ErrRecursionLimit        = grammar.ErrRecursionLimit

	WarnDuplicateTagHandle = grammar.WarnDuplicateTagHandle
	WarnUnsupportedVersion = grammar.WarnUnsupportedVersion
	WarnReservedDirective  = grammar.WarnReservedDirective
)

//-----------------------------------------------------------------------------
// Options
//-----------------------------------------------------------------------------

// Option configures parsing.
type Option = grammar.Option

var (
	// WithSingleDocument makes parsing fail when the stream contains a
	// second document.
	WithSingleDocument = grammar.WithSingleDocument

	// WithMaxDepth bounds node nesting.
	WithMaxDepth = grammar.WithMaxDepth

	// WithWarningHandler routes warnings to a callback as they occur.
	WithWarningHandler = grammar.WithWarningHandler
)

//-----------------------------------------------------------------------------
// Streaming API
//-----------------------------------------------------------------------------

// Parser reads a stream document by document.
type Parser struct {
	inner *grammar.Parser
}

// NewParser prepares a parser over the given stream.
func NewParser(data []byte, opts ...Option) (*Parser, error) {
	inner, err := grammar.NewParser(data, opts...)
	if err != nil {
		return nil, err
	}
	return &Parser{inner: inner}, nil
}

// Next returns the next document, or io.EOF at the end of the stream.
func (p *Parser) Next() (*Document, error) {
	return p.inner.Next()
}

// Warnings returns the non-fatal issues observed so far, in stream order.
func (p *Parser) Warnings() []Warning {
	return p.inner.Warnings()
}

//-----------------------------------------------------------------------------
// Convenience entry points
//-----------------------------------------------------------------------------

// Parse parses every document in the stream.
func Parse(data []byte, opts ...Option) ([]*Document, error) {
	p, err := NewParser(data, opts...)
	if err != nil {
		return nil, err
	}
	var docs []*Document
	for {
		doc, err := p.Next()
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
}

// ParseString parses every document in the string.
func ParseString(s string, opts ...Option) ([]*Document, error) {
	return Parse([]byte(s), opts...)
}

// ParseReader reads the stream to its end and parses every document in it.
func ParseReader(r io.Reader, opts ...Option) ([]*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data, opts...)
}
