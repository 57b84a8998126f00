// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package assert holds the small set of test assertions used across the
// module, so that the tests do not pull in a full testing framework.
package assert

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
)

type miniTB interface {
	Helper()
	Fatalf(string, ...any)
}

func suffix(msgFormat string, args ...any) string {
	if msgFormat == "" {
		return ""
	}
	return " - " + fmt.Sprintf(msgFormat, args...)
}

// Equal asserts that two comparable values are equal.
func Equal(tb miniTB, want, got any) {
	tb.Helper()
	Equalf(tb, want, got, "")
}

// Equalf asserts that two comparable values are equal, adding a formatted
// message when they are not.
func Equalf(tb miniTB, want, got any, msgFormat string, args ...any) {
	tb.Helper()
	if got != want {
		tb.Fatalf("got %v; want %v%s", got, want, suffix(msgFormat, args...))
	}
}

// DeepEqual asserts that two values are deeply equal. Use it for slices,
// maps and structs; prefer [Equal] for comparable types.
func DeepEqual(tb miniTB, want, got any) {
	tb.Helper()
	if !reflect.DeepEqual(got, want) {
		tb.Fatalf("got %+v; want %+v", got, want)
	}
}

// NoError asserts that err is nil.
func NoError(tb miniTB, err error) {
	tb.Helper()
	NoErrorf(tb, err, "")
}

// NoErrorf asserts that err is nil, adding a formatted message when it is
// not.
func NoErrorf(tb miniTB, err error, msgFormat string, args ...any) {
	tb.Helper()
	if err != nil {
		tb.Fatalf("unexpected error: %v%s", err, suffix(msgFormat, args...))
	}
}

// ErrorMatches asserts that err is non-nil and its message matches the
// regular expression pattern.
func ErrorMatches(tb miniTB, pattern string, err error) {
	tb.Helper()
	if err == nil {
		tb.Fatalf("got nil; want error matching %q", pattern)
		return
	}
	re, reErr := regexp.Compile(pattern)
	if reErr != nil {
		tb.Fatalf("invalid regexp %q: %v", pattern, reErr)
		return
	}
	if !re.MatchString(err.Error()) {
		tb.Fatalf("error %q does not match %q", err.Error(), pattern)
	}
}

// ErrorContains asserts that err is non-nil and its message contains the
// given substring.
func ErrorContains(tb miniTB, substr string, err error) {
	tb.Helper()
	if err == nil {
		tb.Fatalf("got nil; want error containing %q", substr)
		return
	}
	if !strings.Contains(err.Error(), substr) {
		tb.Fatalf("error %q does not contain %q", err.Error(), substr)
	}
}

// True asserts that got is true.
func True(tb miniTB, got bool) {
	tb.Helper()
	Truef(tb, got, "")
}

// Truef asserts that got is true, adding a formatted message when it is
// not.
func Truef(tb miniTB, got bool, msgFormat string, args ...any) {
	tb.Helper()
	if !got {
		tb.Fatalf("got false; want true%s", suffix(msgFormat, args...))
	}
}

// False asserts that got is false.
func False(tb miniTB, got bool) {
	tb.Helper()
	Falsef(tb, got, "")
}

// Falsef asserts that got is false, adding a formatted message when it is
// not.
func Falsef(tb miniTB, got bool, msgFormat string, args ...any) {
	tb.Helper()
	if got {
		tb.Fatalf("got true; want false%s", suffix(msgFormat, args...))
	}
}

// PanicMatches asserts that f panics with a message matching the given
// pattern.
func PanicMatches(tb miniTB, pattern string, f func()) {
	tb.Helper()
	var pan any
	func() {
		defer func() { pan = recover() }()
		f()
	}()
	if pan == nil {
		tb.Fatalf("function did not panic; want panic matching %q", pattern)
		return
	}
	var msg string
	switch x := pan.(type) {
	case error:
		msg = x.Error()
	case string:
		msg = x
	default:
		msg = fmt.Sprint(x)
	}
	re, reErr := regexp.Compile(pattern)
	if reErr != nil {
		tb.Fatalf("invalid regexp %q: %v", pattern, reErr)
		return
	}
	if !re.MatchString(msg) {
		tb.Fatalf("panic %q does not match %q", msg, pattern)
	}
}
