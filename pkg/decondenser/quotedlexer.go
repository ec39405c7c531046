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

import "strings"

// lexQuoted scans the content of a quoted region up to closing (exclusive)
// or EOF, implementing the quoted-region escape grammar. The opening
// delimiter must already have been consumed by the caller.
func lexQuoted(cur *cursor, cfg *Decondenser, closing string) (pieces []quotedPiece, closed bool) {
	rawStart := cur.byteOffset()

	flushRaw := func() {
		if end := cur.byteOffset(); end > rawStart {
			pieces = append(pieces, quotedPiece{raw: cur.input[rawStart:end]})
		}
	}

	for {
		if cur.atEOF() {
			flushRaw()
			return pieces, false
		}

		if closing != "" && strings.HasPrefix(cur.rest(), closing) {
			flushRaw()
			cur.stripPrefix(closing)
			return pieces, true
		}

		r, _ := cur.peek()
		if r == cfg.escapeChar {
			flushRaw()
			pieces = append(pieces, scanEscapeSequence(cur, cfg.escapeChar))
			rawStart = cur.byteOffset()
			continue
		}

		cur.next()
	}
}

// simpleEscapes maps the single-character escapes recognized right after
// the escape character: the standard C-style set plus a small extension.
var simpleEscapes = map[rune]rune{
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'\\': '\\',
	'"':  '"',
	'\'': '\'',
	'#':  '#',
	'$':  '$',
	'0':  0,
	'a':  '\a',
	'b':  '\b',
	'v':  '\v',
	'f':  '\f',
	'e':  0x1b,
	's':  ' ',
}

// scanEscapeSequence scans one escape sequence starting right after the
// escape character has already been peeked (but not consumed) at the
// cursor's current position. It always consumes at least the escape
// character.
func scanEscapeSequence(cur *cursor, escapeChar rune) quotedPiece {
	escStart := cur.byteOffset()
	cur.next() // the escape character itself

	r, ok := cur.peek()
	if !ok {
		return quotedPiece{isEscape: true, source: cur.input[escStart:cur.byteOffset()], unescaped: unescapedInvalid}
	}

	if mapped, isSimple := simpleEscapes[r]; isSimple {
		cur.next()
		return quotedPiece{
			isEscape:    true,
			source:      cur.input[escStart:cur.byteOffset()],
			unescaped:   unescapedChar,
			decodedRune: mapped,
		}
	}

	if r == '\n' {
		cur.next()
		return quotedPiece{isEscape: true, source: cur.input[escStart:cur.byteOffset()], unescaped: unescapedIgnore}
	}

	if r == 'x' {
		cur.next()
		digits := scanHexDigits(cur, 2)
		if digits == "" {
			return quotedPiece{isEscape: true, source: cur.input[escStart:cur.byteOffset()], unescaped: unescapedInvalid}
		}
		v := parseHex(digits)
		return quotedPiece{
			isEscape:    true,
			source:      cur.input[escStart:cur.byteOffset()],
			unescaped:   unescapedChar,
			decodedRune: rune(v),
		}
	}

	if r == 'u' || r == 'U' {
		cur.next()
		braced := false
		if peeked, ok := cur.peek(); ok && peeked == '{' {
			braced = true
			cur.next()
		}

		digits := scanHexDigits(cur, 8)

		if braced {
			if closeBrace, ok := cur.peek(); !ok || closeBrace != '}' {
				return quotedPiece{isEscape: true, source: cur.input[escStart:cur.byteOffset()], unescaped: unescapedInvalid}
			}
			cur.next()
		}

		if digits == "" {
			return quotedPiece{isEscape: true, source: cur.input[escStart:cur.byteOffset()], unescaped: unescapedInvalid}
		}

		cp := parseHex(digits)
		if !isValidCodePoint(cp) {
			return quotedPiece{isEscape: true, source: cur.input[escStart:cur.byteOffset()], unescaped: unescapedInvalid}
		}

		return quotedPiece{
			isEscape:    true,
			source:      cur.input[escStart:cur.byteOffset()],
			unescaped:   unescapedChar,
			decodedRune: rune(cp),
		}
	}

	// Any other sequence is invalid; consume the one rune that follows the
	// escape character so its bytes are preserved verbatim in source.
	cur.next()
	return quotedPiece{isEscape: true, source: cur.input[escStart:cur.byteOffset()], unescaped: unescapedInvalid}
}

// scanHexDigits consumes up to max hex digits and returns them, or "" if
// none were present.
func scanHexDigits(cur *cursor, max int) string {
	start := cur.byteOffset()
	n := 0
	for n < max {
		r, ok := cur.peek()
		if !ok || !isHexDigit(r) {
			break
		}
		cur.next()
		n++
	}
	return cur.input[start:cur.byteOffset()]
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func parseHex(s string) uint32 {
	var v uint32
	for _, r := range s {
		v <<= 4
		switch {
		case r >= '0' && r <= '9':
			v |= uint32(r - '0')
		case r >= 'a' && r <= 'f':
			v |= uint32(r-'a') + 10
		case r >= 'A' && r <= 'F':
			v |= uint32(r-'A') + 10
		}
	}
	return v
}

func isValidCodePoint(cp uint32) bool {
	if cp > 0x10FFFF {
		return false
	}
	if cp >= 0xD800 && cp <= 0xDFFF {
		return false
	}
	return true
}
