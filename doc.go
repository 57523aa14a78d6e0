// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jcheck implements a JSON syntax recognizer.
//
// # Recognizing
//
// The recognizer decides whether an input is syntactically valid JSON without
// constructing a value. The input must be fully in memory:
//
//	if !jcheck.Valid(data) {
//	   log.Fatal("Invalid JSON")
//	}
//
// To find out where and why an input was rejected, call Check. In case of
// error, Check reports an error of concrete type *jcheck.SyntaxError:
//
//	if err := jcheck.Check(data); err != nil {
//	   log.Fatalf("Check failed: %v", err)
//	}
//
// # Grammar
//
// The recognizer accepts a document whose top-level value is an object or an
// array, optionally surrounded by whitespace (space, tab, LF, CR). A bare
// scalar (string, number, true, false, null) at the top level is rejected
// unless the Recognizer is configured with AllowScalarRoot.
//
// Two relaxations of the JSON grammar are part of the contract:
//
//   - Any byte following a backslash in a string is accepted as an escape,
//     so "\q" and a "\u" without hex digits are not rejected. Unescaped
//     control characters inside strings are also accepted. Use StrictStrings
//     to check string bodies against the full grammar.
//
//   - Object keys are not checked for uniqueness.
//
// # Concurrency
//
// A Recognizer holds only configuration. It is safe to call Check on the same
// Recognizer from multiple goroutines, provided its options are not changed
// concurrently.
package jcheck
