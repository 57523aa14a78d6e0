// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcheck

import "fmt"

// Production identifies the grammar rule that rejected an input.
type Production byte

// Constants defining the valid Production values.
const (
	Document Production = iota // top-level document
	Value                      // any value, dispatched by lookahead
	Object                     // object "{ ... }"
	Array                      // array "[ ... ]"
	String                     // quoted string
	Number                     // number
	Boolean                    // constant: true or false
	Null                       // constant: null
)

var prodStr = [...]string{
	Document: "document",
	Value:    "value",
	Object:   "object",
	Array:    "array",
	String:   "string",
	Number:   "number",
	Boolean:  "boolean",
	Null:     "null",
}

func (p Production) String() string {
	if int(p) >= len(prodStr) {
		return fmt.Sprintf("Production(%d)", p)
	}
	return prodStr[p]
}

// SyntaxError is the concrete type of errors reported by the recognizer.
type SyntaxError struct {
	Offset     int        // byte offset of the point of failure, 0-based
	Location   LineCol    // line and column of Offset
	Production Production // the rule that rejected the input
	Message    string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s: %s", s.Location, s.Production, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }
