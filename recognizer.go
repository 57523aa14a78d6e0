// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcheck

import "go4.org/mem"

// A Recognizer checks the syntax of JSON documents. The zero value is ready
// for use and implements the default grammar described in the package
// documentation.
type Recognizer struct {
	scalarRoot bool // allow a scalar value at the top level
	strict     bool // check string escapes and control characters
	maxDepth   int  // maximum nesting of objects and arrays; 0 is unlimited
}

// NewRecognizer constructs a new Recognizer with the default configuration.
func NewRecognizer() *Recognizer { return new(Recognizer) }

// AllowScalarRoot configures r to accept (true) or reject (false) a document
// whose top-level value is not an object or an array. By default, scalar
// documents such as "null" or "1" are rejected.
func (r *Recognizer) AllowScalarRoot(ok bool) { r.scalarRoot = ok }

// StrictStrings configures r to check (true) or skip checking (false) the
// contents of strings. When enabled, each escape must be one of \" \\ \/ \b
// \f \n \r \t or \u followed by 4 hex digits, and unescaped control
// characters (below U+0020) are rejected. By default, any byte following a
// backslash is accepted and control characters are not checked.
func (r *Recognizer) StrictStrings(ok bool) { r.strict = ok }

// MaxDepth configures r to reject documents in which objects and arrays are
// nested more than n levels deep. If n <= 0, nesting depth is not limited;
// this is the default, and depth is then bounded only by available memory.
func (r *Recognizer) MaxDepth(n int) { r.maxDepth = max(n, 0) }

// Check reports whether text is a valid JSON document. It returns nil if so,
// otherwise it reports an error of concrete type [*SyntaxError].
func (r *Recognizer) Check(text []byte) error { return r.check(mem.B(text)) }

// CheckString is as Check, but accepts a string.
func (r *Recognizer) CheckString(text string) error { return r.check(mem.S(text)) }

// Valid reports whether text is a valid JSON document.
func (r *Recognizer) Valid(text []byte) bool { return r.Check(text) == nil }

func (r *Recognizer) check(in mem.RO) error {
	c := cursor{in: in, cfg: *r}
	return c.document()
}

// std is the recognizer used by the package-level functions.
var std Recognizer

// Valid reports whether text is a valid JSON document, using the default
// grammar.
func Valid(text []byte) bool { return std.Valid(text) }

// ValidString reports whether text is a valid JSON document, using the
// default grammar.
func ValidString(text string) bool { return std.CheckString(text) == nil }

// Check reports whether text is a valid JSON document, using the default
// grammar. It returns nil if so, otherwise it reports an error of concrete
// type [*SyntaxError].
func Check(text []byte) error { return std.Check(text) }
