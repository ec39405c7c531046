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

// defaultEscapeChar is the escape character used by Unescape, independent
// of any Decondenser configuration: the unescaper is a standalone utility,
// not tied to a particular language profile.
const defaultEscapeChar = '\\'

// Unescape applies the quoted-lexer's escape grammar to the
// entire input, decoding every recognized escape sequence. Text outside of
// an escape sequence is preserved verbatim, and an unrecognized escape
// sequence is preserved bit-for-bit rather than rejected.
func Unescape(s string) string {
	cur := newCursor(s)

	var out strings.Builder
	rawStart := 0

	flushRaw := func() {
		if end := cur.byteOffset(); end > rawStart {
			out.WriteString(s[rawStart:end])
		}
	}

	for {
		if cur.atEOF() {
			flushRaw()
			return out.String()
		}

		r, _ := cur.peek()
		if r != defaultEscapeChar {
			cur.next()
			continue
		}

		flushRaw()
		piece := scanEscapeSequence(cur, defaultEscapeChar)
		switch piece.unescaped {
		case unescapedChar:
			out.WriteRune(piece.decodedRune)
		case unescapedIgnore:
			// Escaped newline: the sequence is dropped entirely.
		case unescapedInvalid:
			out.WriteString(piece.source)
		}
		rawStart = cur.byteOffset()
	}
}
