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

// node is one element of the L2 token tree: a borrowed-slice parse of the
// input honoring group nesting and quoted-region opacity. Exactly one of
// the typed fields is meaningful, selected by kind.
type node struct {
	kind nodeKind

	text string // spaceNode, rawNode

	newlineCount int // newlineNode

	punct *Punct // punctNode

	group        *Group // groupNode
	groupContent []node
	groupClosed  bool

	quote        *Quote // quotedNode
	quoteContent []quotedPiece
	quoteClosed  bool
}

type nodeKind int

const (
	spaceNode nodeKind = iota
	newlineNode
	rawNode
	punctNode
	groupNode
	quotedNode
)

// quotedPiece is one maximal run inside a quoted region: either verbatim
// text or a single escape sequence.
type quotedPiece struct {
	isEscape bool

	raw string // !isEscape

	source     string     // isEscape: the literal bytes of the escape, e.g. `\n`
	unescaped  unescaped  // isEscape: how it decodes
	decodedRune rune      // unescaped == unescapedChar
}

// text returns the piece's literal source representation, which is always
// what gets reproduced verbatim in formatted output (quoted regions are
// never re-escaped, only copied through).
func (p quotedPiece) text() string {
	if p.isEscape {
		return p.source
	}
	return p.raw
}

type unescaped int

const (
	unescapedChar unescaped = iota
	unescapedIgnore
	unescapedInvalid
)
