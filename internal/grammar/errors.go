// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Error types for the grammar engine.
// Provides structured error reporting with line/column information and a
// taxonomy of scan error kinds, plus non-fatal warnings.

package grammar

import (
	"fmt"
	"strings"
)

// Mark holds a position in the input stream.
//
// Index counts bytes in the UTF-8 form of the stream. For UTF-16 and
// UTF-32 input it is an offset into the decoded text, not into the raw
// bytes; Line and Column are encoding-independent.
type Mark struct {
	Index  int // The byte offset, in UTF-8.
	Line   int // The position line (1-indexed).
	Column int // The position column (0-indexed internally, displayed as 1-indexed).
}

func (m Mark) String() string {
	var builder strings.Builder
	if m.Line == 0 {
		return "<unknown position>"
	}

	fmt.Fprintf(&builder, "line %d", m.Line)
	fmt.Fprintf(&builder, ", column %d", m.Column+1)

	return builder.String()
}

// ErrorKind classifies fatal scan errors.
type ErrorKind int

const (
	// ErrNone is the zero kind; no valid ScanError carries it.
	ErrNone ErrorKind = iota

	ErrInvalidEncoding       // The input stream could not be decoded.
	ErrInvalidEscape         // A double-quoted escape sequence is malformed.
	ErrInvalidCharacter      // A character is not allowed at this position.
	ErrExpectedSeparation    // Required whitespace or delimiter is missing.
	ErrExpectedCloseDelimiter // A flow collection or quoted scalar is unterminated.
	ErrUnexpectedIndentation // A line is indented where the grammar forbids it.
	ErrUnexpectedContent     // Content appears where a marker or end of line is required.
	ErrUnknownAnchor         // An alias refers to an unregistered anchor.
	ErrUnknownTagHandle      // A tag shorthand uses an unregistered handle.
	ErrDirectiveAfterContent // A directive appears after document content started.
	ErrMalformedDirective    // A directive line could not be parsed.
	ErrRecursionLimit        // Nesting exceeded the configured depth limit.
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidEncoding:
		return "invalid-encoding"
	case ErrInvalidEscape:
		return "invalid-escape"
	case ErrInvalidCharacter:
		return "invalid-character"
	case ErrExpectedSeparation:
		return "expected-separation"
	case ErrExpectedCloseDelimiter:
		return "expected-close-delimiter"
	case ErrUnexpectedIndentation:
		return "unexpected-indentation"
	case ErrUnexpectedContent:
		return "unexpected-content"
	case ErrUnknownAnchor:
		return "unknown-anchor"
	case ErrUnknownTagHandle:
		return "unknown-tag-handle"
	case ErrDirectiveAfterContent:
		return "directive-after-content"
	case ErrMalformedDirective:
		return "malformed-directive"
	case ErrRecursionLimit:
		return "recursion-limit"
	}
	return "<unknown error kind>"
}

// ScanError is the single fatal error type produced by a parse. It is
// immutable once constructed and aborts the whole-stream parse; no partial
// results survive it.
type ScanError struct {
	Kind ErrorKind
	Mark Mark

	// Optional context, pointing at the construct being scanned when the
	// error occurred (e.g. the opening quote of an unterminated scalar).
	ContextMark    Mark
	ContextMessage string

	Message string
}

func (e *ScanError) Error() string {
	var builder strings.Builder
	builder.WriteString("yaml: ")
	if len(e.ContextMessage) > 0 {
		fmt.Fprintf(&builder, "%s at %s: ", e.ContextMessage, e.ContextMark)
	}
	if len(e.ContextMessage) == 0 || e.ContextMark != e.Mark {
		fmt.Fprintf(&builder, "%s: ", e.Mark)
	}
	builder.WriteString(e.Message)
	return builder.String()
}

// scanErrorf builds a positioned ScanError.
func scanErrorf(kind ErrorKind, mark Mark, format string, args ...any) *ScanError {
	return &ScanError{
		Kind:    kind,
		Mark:    mark,
		Message: fmt.Sprintf(format, args...),
	}
}

// scanErrorCtx attaches a scanning context to an error, libyaml style
// ("while scanning a ..., found ...").
func scanErrorCtx(kind ErrorKind, contextMsg string, contextMark Mark, mark Mark, format string, args ...any) *ScanError {
	return &ScanError{
		Kind:           kind,
		Mark:           mark,
		ContextMark:    contextMark,
		ContextMessage: contextMsg,
		Message:        fmt.Sprintf(format, args...),
	}
}

// WarningKind classifies non-fatal parse conditions.
type WarningKind int

const (
	WarnDuplicateTagHandle WarningKind = iota + 1 // %TAG re-registered a handle; last write wins.
	WarnUnsupportedVersion                        // %YAML other than 1.1/1.2; treated as 1.2.
	WarnReservedDirective                         // A directive other than %YAML/%TAG was skipped.
)

func (k WarningKind) String() string {
	switch k {
	case WarnDuplicateTagHandle:
		return "duplicate-tag-handle"
	case WarnUnsupportedVersion:
		return "unsupported-version"
	case WarnReservedDirective:
		return "reserved-directive"
	}
	return "<unknown warning kind>"
}

// Warning records a non-fatal condition encountered during a parse. Warnings
// never stop parsing; they are collected on the parser and handed to the
// configured warning handler, if any.
type Warning struct {
	Kind    WarningKind
	Mark    Mark
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("yaml: %s: warning: %s", w.Mark, w.Message)
}
