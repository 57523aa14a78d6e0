// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Program jcheck reports whether its input is a valid JSON document.
//
// Usage:
//
//	jcheck [flags] [file]
//
// If no file is given, or the file is "-", the input is read from stdin.
// The whole input is read into memory before it is checked.
//
// If the input is valid, jcheck prints "Valid JSON" to stdout and exits with
// status 0. Otherwise it prints "Invalid JSON" to stderr and exits with status
// 1. If the input cannot be read, jcheck exits with status 1 without checking
// anything.
//
// The LOG_LEVEL environment variable (DEBUG, WARN, ERROR) sets the level of
// diagnostic logging, which is written to stderr.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/creachadair/jcheck"
	"github.com/creachadair/jcheck/jwcc"
)

// openFile opens the named input file.
var openFile = func(path string) (io.ReadCloser, error) { return os.Open(path) }

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the program with the given arguments and streams, and returns
// the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("jcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		allowScalar = fs.Bool("scalar", false, "Accept a scalar value (not an object or array) at the top level")
		strict      = fs.Bool("strict", false, "Reject invalid string escapes and unescaped control characters")
		allowJWCC   = fs.Bool("jwcc", false, "Accept comments and trailing commas (JWCC); strings are always checked strictly")
		maxDepth    = fs.Int("max-depth", 0, "Maximum nesting depth of objects and arrays (0 means unlimited)")
		verbose     = fs.Bool("v", false, "Report the location of a syntax error")
	)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: jcheck [flags] [file]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return 1
	}
	logger := newLogger(stderr)

	path := fs.Arg(0)
	data, err := readInput(path, stdin)
	if err != nil {
		logger.Error("cannot read input", "path", path, "error", err)
		return 1
	}

	r := jcheck.NewRecognizer()
	r.AllowScalarRoot(*allowScalar)
	r.StrictStrings(*strict)
	r.MaxDepth(*maxDepth)
	logger.Debug("checking input", "path", path, "bytes", len(data),
		"scalar", *allowScalar, "strict", *strict, "jwcc", *allowJWCC, "maxDepth", *maxDepth)

	if *allowJWCC {
		err = jwcc.Check(r, data)
	} else {
		err = r.Check(data)
	}
	if err != nil {
		logger.Debug("input rejected", "path", path, "error", err)
		if *verbose {
			fmt.Fprintf(stderr, "Invalid JSON: %v\n", err)
		} else {
			fmt.Fprintln(stderr, "Invalid JSON")
		}
		return 1
	}
	fmt.Fprintln(stdout, "Valid JSON")
	return 0
}

// readInput reads the entire contents of the named file, or of stdin if path
// is "" or "-".
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// newLogger constructs a text logger writing to w, whose level is set from
// the LOG_LEVEL environment variable.
func newLogger(w io.Writer) *slog.Logger {
	lvl := new(slog.LevelVar)
	switch os.Getenv("LOG_LEVEL") {
	case "DEBUG":
		lvl.Set(slog.LevelDebug)
	case "WARN":
		lvl.Set(slog.LevelWarn)
	case "ERROR":
		lvl.Set(slog.LevelError)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
