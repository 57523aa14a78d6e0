// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package jwcc recognizes JSON With Commas and Comments (JWCC) as defined by
// https://nigeltao.github.io/blog/2021/json-with-commas-comments.html
//
// The input is first rewritten to standard JSON, replacing comments and
// trailing commas with spaces, and the result is checked by a
// [jcheck.Recognizer]. Byte offsets and line numbers in the text are
// preserved by the rewrite, so the location of a syntax error reported by
// the recognizer refers to the original input.
//
// The rewrite parses the input, and it checks strings strictly: invalid
// escapes such as "\q", a "\u" without 4 hex digits, and unescaped control
// characters are rejected before the recognizer runs, even if the recognizer
// does not use StrictStrings.
package jwcc

import (
	"bytes"
	"fmt"

	"github.com/creachadair/jcheck"
	"github.com/tailscale/hujson"
)

// Standardize returns a copy of text with comments and trailing commas
// replaced by spaces. It reports an error if text is not valid JWCC.
// The input is not modified.
func Standardize(text []byte) ([]byte, error) {
	std, err := hujson.Standardize(bytes.Clone(text))
	if err != nil {
		return nil, fmt.Errorf("jwcc: %w", err)
	}
	return std, nil
}

// Check reports whether text is a valid JWCC document according to r. If r ==
// nil, a recognizer with the default configuration is used.
//
// Errors reported by the recognizer have concrete type [*jcheck.SyntaxError].
// Inputs the JWCC rewriter cannot handle, including strings with invalid
// escapes or control characters, are reported with the rewriter's error,
// wrapped.
func Check(r *jcheck.Recognizer, text []byte) error {
	std, err := Standardize(text)
	if err != nil {
		return err
	}
	if r == nil {
		return jcheck.Check(std)
	}
	return r.Check(std)
}

// Valid reports whether text is a valid JWCC document, using the default
// grammar.
func Valid(text []byte) bool { return Check(nil, text) == nil }
