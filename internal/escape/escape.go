// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape checks escape sequences in JSON strings.
package escape

import (
	"errors"
	"fmt"

	"go4.org/mem"
)

// Check reports the length in bytes of the escape sequence at the front of
// src, which must begin with a backslash. It reports an error if the sequence
// is incomplete, or is not one of the escapes permitted by RFC 8259.
func Check(src mem.RO) (int, error) {
	if src.Len() == 0 || src.At(0) != '\\' {
		return 0, errors.New("missing escape")
	} else if src.Len() < 2 {
		return 0, errors.New("incomplete escape sequence")
	}
	switch b := src.At(1); b {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		return 2, nil
	case 'u':
		if src.Len() < 6 {
			return 0, errors.New("incomplete Unicode escape")
		}
		if err := checkHex(src.Slice(2, 6)); err != nil {
			return 0, fmt.Errorf("invalid Unicode escape: %w", err)
		}
		return 6, nil
	default:
		return 0, fmt.Errorf("invalid %q after escape", b)
	}
}

func checkHex(data mem.RO) error {
	for i := 0; i < data.Len(); i++ {
		if b := data.At(i); !isHexDigit(b) {
			return fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return nil
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
