// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package grammar

import "fmt"

// DefaultMaxDepth bounds node nesting unless WithMaxDepth overrides it.
const DefaultMaxDepth = 10000

// Options collects the parsing knobs. Use the With functions to build a
// value rather than filling the struct directly.
type Options struct {
	// SingleDocument makes the parser reject streams holding more than one
	// document.
	SingleDocument bool

	// MaxDepth is the maximum node nesting depth before parsing fails.
	MaxDepth int

	// WarningHandler, when set, receives each non-fatal warning as it is
	// recorded.
	WarningHandler func(Warning)
}

// Option adjusts Options and reports invalid settings.
type Option func(*Options) error

// ApplyOptions builds an Options value from the defaults and the given
// settings, failing on the first invalid one.
func ApplyOptions(opts ...Option) (*Options, error) {
	o := &Options{MaxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// WithSingleDocument makes parsing fail when the stream contains a second
// document.
func WithSingleDocument() Option {
	return func(o *Options) error {
		o.SingleDocument = true
		return nil
	}
}

// WithMaxDepth sets the maximum node nesting depth.
func WithMaxDepth(depth int) Option {
	return func(o *Options) error {
		if depth <= 0 {
			return fmt.Errorf("yaml: maximum depth must be positive, got %d", depth)
		}
		o.MaxDepth = depth
		return nil
	}
}

// WithWarningHandler routes warnings to fn as they are recorded, in
// addition to collecting them on the parser.
func WithWarningHandler(fn func(Warning)) Option {
	return func(o *Options) error {
		o.WarningHandler = fn
		return nil
	}
}
