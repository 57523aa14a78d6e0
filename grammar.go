// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcheck

import (
	"fmt"

	"github.com/creachadair/jcheck/internal/escape"
	"go4.org/mem"
)

// eoi is the sentinel reported by peek at the end of the input.
// It does not match any byte class of the grammar.
const eoi = 0

// A cursor tracks the state of a single recognition pass. The productions are
// methods on the cursor: each one returns nil after consuming its input, or
// reports an error leaving pos at the point of failure. The offset never
// decreases.
type cursor struct {
	in  mem.RO
	pos int
	cfg Recognizer
}

func (c *cursor) atEnd() bool { return c.pos >= c.in.Len() }

// peek returns the byte at the current offset, or eoi at the end of input.
func (c *cursor) peek() byte {
	if c.atEnd() {
		return eoi
	}
	return c.in.At(c.pos)
}

// describe returns a human-readable label for the byte at the current offset.
func (c *cursor) describe() string {
	if c.atEnd() {
		return "end of input"
	}
	return fmt.Sprintf("%q", c.in.At(c.pos))
}

func (c *cursor) skipSpace() {
	for isSpace(c.peek()) {
		c.pos++
	}
}

// skipDigits consumes zero or more decimal digits and reports how many.
func (c *cursor) skipDigits() int {
	start := c.pos
	for isDigit(c.peek()) {
		c.pos++
	}
	return c.pos - start
}

// document consumes the whole input.
func (c *cursor) document() error {
	c.skipSpace()

	var err error
	switch ch := c.peek(); {
	case ch == '{', ch == '[', c.cfg.scalarRoot:
		err = c.value()
	case c.atEnd():
		err = c.fail(Document, "empty input")
	default:
		err = c.failf(Document, "got %s, want object or array", c.describe())
	}
	if err != nil {
		return err
	}

	c.skipSpace()
	if !c.atEnd() {
		return c.failf(Document, "unexpected %s after value", c.describe())
	}
	return nil
}

// value consumes a single value of any type, selected by the next byte.
//
// Objects and arrays do not recurse: each open container pushes its closing
// bracket onto stk, so nesting depth is limited only by memory.
func (c *cursor) value() error {
	var stk []byte // closing brackets of the open containers, innermost last
	for {
		c.skipSpace()
		switch c.peek() {
		case '{':
			if empty, err := c.object(&stk); err != nil {
				return err
			} else if !empty {
				continue // parse the first member value
			}
		case '[':
			if empty, err := c.array(&stk); err != nil {
				return err
			} else if !empty {
				continue // parse the first element
			}
		case '"':
			if err := c.quoted(); err != nil {
				return err
			}
		case 't', 'f':
			if err := c.boolean(); err != nil {
				return err
			}
		case 'n':
			if err := c.literal(Null, "null"); err != nil {
				return err
			}
		default:
			if c.atEnd() {
				return c.fail(Value, "unexpected end of input")
			}
			if err := c.number(); err != nil {
				return err
			}
		}

		// A value is complete. Close containers until one of them continues
		// with another element (",") or none remain.
		more, err := c.close(&stk)
		if err != nil {
			return err
		} else if !more {
			return nil
		}
	}
}

// object opens an object and, if it is not empty, consumes the key of its
// first member. It reports whether the object is empty, in which case the
// closing brace is next.
// Precondition: peek() == '{'.
func (c *cursor) object(stk *[]byte) (bool, error) {
	if err := c.enter(Object, *stk); err != nil {
		return false, err
	}
	*stk = append(*stk, '}')
	c.pos++ // "{"
	c.skipSpace()
	if c.peek() == '}' {
		return true, nil
	}
	return false, c.member()
}

// member consumes an object member key and its colon: "key":
func (c *cursor) member() error {
	c.skipSpace()
	if c.peek() != '"' {
		return c.failf(Object, "got %s, want string key", c.describe())
	}
	if err := c.quoted(); err != nil {
		return err
	}
	c.skipSpace()
	if c.peek() != ':' {
		return c.failf(Object, "got %s, want \":\"", c.describe())
	}
	c.pos++
	return nil
}

// array opens an array. It reports whether the array is empty, in which case
// the closing bracket is next.
// Precondition: peek() == '['.
func (c *cursor) array(stk *[]byte) (bool, error) {
	if err := c.enter(Array, *stk); err != nil {
		return false, err
	}
	*stk = append(*stk, ']')
	c.pos++ // "["
	c.skipSpace()
	return c.peek() == ']', nil
}

// close consumes the closing brackets that follow a complete value. It
// reports true if the innermost open container has another element, after
// consuming the comma and, for an object, the next member key.
func (c *cursor) close(stk *[]byte) (bool, error) {
	for len(*stk) != 0 {
		end := (*stk)[len(*stk)-1]
		c.skipSpace()
		switch c.peek() {
		case end:
			c.pos++
			*stk = (*stk)[:len(*stk)-1]
		case ',':
			c.pos++
			if end == '}' {
				return true, c.member()
			}
			return true, nil
		default:
			p := Array
			if end == '}' {
				p = Object
			}
			return false, c.failf(p, "got %s, want \",\" or \"%c\"", c.describe(), end)
		}
	}
	return false, nil
}

// quoted consumes a string.
// Precondition: peek() == '"'.
func (c *cursor) quoted() error {
	c.pos++ // open quote
	for !c.atEnd() {
		switch ch := c.in.At(c.pos); {
		case ch == '"':
			c.pos++
			return nil
		case ch == '\\' && c.cfg.strict:
			n, err := escape.Check(c.in.SliceFrom(c.pos))
			if err != nil {
				return c.wrap(String, err)
			}
			c.pos += n
		case ch == '\\':
			// The escaped byte is not checked.
			if c.pos+1 >= c.in.Len() {
				return c.fail(String, "incomplete escape sequence")
			}
			c.pos += 2
		case ch < ' ' && c.cfg.strict:
			return c.failf(String, "unescaped control %q", ch)
		default:
			c.pos++
		}
	}
	return c.fail(String, "unterminated string")
}

// number consumes a number. Only the shape is checked; no value is computed.
func (c *cursor) number() error {
	if c.peek() == '-' {
		c.pos++
	}

	// A leading zero ends the integer part. Any digits that follow are left
	// for the caller, which will reject them.
	switch ch := c.peek(); {
	case ch == '0':
		c.pos++
	case isDigit(ch):
		c.skipDigits()
	default:
		return c.failf(Number, "got %s, want digit", c.describe())
	}

	if c.peek() == '.' {
		c.pos++
		if c.skipDigits() == 0 {
			return c.failf(Number, "got %s, want digit after decimal point", c.describe())
		}
	}

	if ch := c.peek(); ch == 'e' || ch == 'E' {
		c.pos++
		if ch := c.peek(); ch == '+' || ch == '-' {
			c.pos++
		}
		if c.skipDigits() == 0 {
			return c.failf(Number, "got %s, want exponent digit", c.describe())
		}
	}
	return nil
}

// boolean consumes true or false.
// Precondition: peek() is 't' or 'f'.
func (c *cursor) boolean() error {
	if c.peek() == 't' {
		return c.literal(Boolean, "true")
	}
	return c.literal(Boolean, "false")
}

// literal consumes the exact text of word, which is a constant of type p.
// If word does not match, no input is consumed.
func (c *cursor) literal(p Production, word string) error {
	if !mem.HasPrefix(c.in.SliceFrom(c.pos), mem.S(word)) {
		return c.failf(p, "want %q", word)
	}
	c.pos += len(word)
	return nil
}

// enter reports an error if opening a container of type p inside the open
// containers of stk exceeds the configured depth limit.
func (c *cursor) enter(p Production, stk []byte) error {
	if c.cfg.maxDepth > 0 && len(stk) >= c.cfg.maxDepth {
		return c.failf(p, "nesting depth exceeds %d", c.cfg.maxDepth)
	}
	return nil
}

func (c *cursor) fail(p Production, msg string) error {
	return &SyntaxError{
		Offset:     c.pos,
		Location:   lineColAt(c.in, c.pos),
		Production: p,
		Message:    msg,
	}
}

func (c *cursor) failf(p Production, msg string, args ...any) error {
	return c.fail(p, fmt.Sprintf(msg, args...))
}

func (c *cursor) wrap(p Production, err error) error {
	serr := c.fail(p, err.Error()).(*SyntaxError)
	serr.err = err
	return serr
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }
