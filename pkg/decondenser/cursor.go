// Copyright 2015 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package decondenser

import "unicode/utf8"

// cursor is a UTF-8 scanner over a fixed input string. It never splits a
// code point: next and peek decode one rune at a time, and byteOffset always
// lands on a rune boundary.
type cursor struct {
	input string
	pos   int // byte offset of the next unread rune
}

func newCursor(input string) *cursor {
	return &cursor{input: input}
}

// peek returns the next rune without consuming it.
func (c *cursor) peek() (rune, bool) {
	if c.pos >= len(c.input) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.input[c.pos:])
	return r, true
}

// next consumes and returns the next rune.
func (c *cursor) next() (rune, bool) {
	if c.pos >= len(c.input) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.input[c.pos:])
	c.pos += size
	return r, true
}

// byteOffset returns the current byte offset into the input.
func (c *cursor) byteOffset() int {
	return c.pos
}

// rest returns the unconsumed tail of the input.
func (c *cursor) rest() string {
	return c.input[c.pos:]
}

// atEOF reports whether the cursor has consumed the entire input.
func (c *cursor) atEOF() bool {
	return c.pos >= len(c.input)
}

// stripPrefix advances past needle if the remaining input starts with it,
// returning the byte offset at which needle started. It returns false
// without advancing if the remaining input does not start with needle.
func (c *cursor) stripPrefix(needle string) (int, bool) {
	if needle == "" {
		return 0, false
	}
	if len(c.input)-c.pos < len(needle) {
		return 0, false
	}
	if c.input[c.pos:c.pos+len(needle)] != needle {
		return 0, false
	}
	start := c.pos
	c.pos += len(needle)
	return start, true
}
