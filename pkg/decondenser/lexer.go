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

import (
	"strings"
	"unicode"
)

// tokenize scans the whole input into an L2 token tree. It conceptually
// runs in two passes: an L1 pass that only locates the start
// offsets of tokens, and an L2 pass that pairs each start with the next
// token's start (or EOF/terminator) to produce a borrowed slice. Go string
// slices are already zero-copy views into the backing array, so here both
// passes are folded into a single recursive scan that slices as it goes;
// see DESIGN.md for why that's a faithful simplification rather than a cut
// corner.
func tokenize(input string, cfg *Decondenser) []node {
	cur := newCursor(input)
	nodes, _ := scanSequence(cur, cfg, "")
	return nodes
}

// scanSequence scans tokens until the terminator is found (if non-empty) or
// EOF is reached, trying each recognition rule
// in strict priority order. closed reports whether the terminator was
// found; it is always false for the top-level call (terminator == "").
func scanSequence(cur *cursor, cfg *Decondenser, terminator string) (nodes []node, closed bool) {
	var pendingRaw strings.Builder

	flushRaw := func() {
		if pendingRaw.Len() > 0 {
			nodes = append(nodes, node{kind: rawNode, text: pendingRaw.String()})
			pendingRaw.Reset()
		}
	}

	for {
		// Rule 1: active terminator.
		if terminator != "" {
			if _, ok := cur.stripPrefix(terminator); ok {
				flushRaw()
				return nodes, true
			}
		}

		if cur.atEOF() {
			flushRaw()
			return nodes, false
		}

		// Rule 2: newline run.
		if count := tryScanNewlineRun(cur); count > 0 {
			flushRaw()
			nodes = append(nodes, node{kind: newlineNode, newlineCount: count})
			continue
		}

		// Rule 3: other whitespace.
		if r, ok := cur.peek(); ok && unicode.IsSpace(r) {
			flushRaw()
			nodes = append(nodes, node{kind: spaceNode, text: scanSpaceRun(cur)})
			continue
		}

		// Rule 4: group opening, first match in declaration order.
		if idx, ok := matchGroupOpen(cur, cfg); ok {
			flushRaw()
			g := &cfg.groups[idx]
			cur.stripPrefix(g.Opening.Symbol)
			content, gclosed := scanSequence(cur, cfg, g.Closing.Symbol)
			nodes = append(nodes, node{
				kind:         groupNode,
				group:        g,
				groupContent: content,
				groupClosed:  gclosed,
			})
			continue
		}

		// Rule 5: quote opening, first match in declaration order.
		if idx, ok := matchQuoteOpen(cur, cfg); ok {
			flushRaw()
			q := &cfg.quotes[idx]
			cur.stripPrefix(q.Opening)
			pieces, qclosed := lexQuoted(cur, cfg, q.Closing)
			nodes = append(nodes, node{
				kind:         quotedNode,
				quote:        q,
				quoteContent: pieces,
				quoteClosed:  qclosed,
			})
			continue
		}

		// Rule 6: punctuation, first match in declaration order.
		if idx, ok := matchPunct(cur, cfg); ok {
			flushRaw()
			p := &cfg.puncts[idx]
			cur.stripPrefix(p.Symbol)
			nodes = append(nodes, node{kind: punctNode, punct: p})
			continue
		}

		// Rule 7: extend the current raw run by one rune.
		r, _ := cur.next()
		pendingRaw.WriteRune(r)
	}
}

// tryScanNewlineRun consumes a maximal run of `[\r]?\n` occurrences and
// returns how many it found (0 if the cursor isn't sitting on one).
func tryScanNewlineRun(cur *cursor) int {
	count := 0
	for {
		rest := cur.rest()
		switch {
		case strings.HasPrefix(rest, "\r\n"):
			cur.next()
			cur.next()
			count++
		case strings.HasPrefix(rest, "\n"):
			cur.next()
			count++
		default:
			return count
		}
	}
}

// atNewline reports whether the cursor is sitting on a `[\r]?\n` sequence,
// without consuming anything.
func atNewline(cur *cursor) bool {
	rest := cur.rest()
	return strings.HasPrefix(rest, "\n") || strings.HasPrefix(rest, "\r\n")
}

// scanSpaceRun consumes a maximal run of non-newline whitespace.
func scanSpaceRun(cur *cursor) string {
	start := cur.byteOffset()
	for {
		r, ok := cur.peek()
		if !ok || !unicode.IsSpace(r) || atNewline(cur) {
			break
		}
		cur.next()
	}
	return cur.input[start:cur.byteOffset()]
}

func matchGroupOpen(cur *cursor, cfg *Decondenser) (int, bool) {
	rest := cur.rest()
	for i, g := range cfg.groups {
		if g.Opening.Symbol != "" && strings.HasPrefix(rest, g.Opening.Symbol) {
			return i, true
		}
	}
	return 0, false
}

func matchQuoteOpen(cur *cursor, cfg *Decondenser) (int, bool) {
	rest := cur.rest()
	for i, q := range cfg.quotes {
		if q.Opening != "" && strings.HasPrefix(rest, q.Opening) {
			return i, true
		}
	}
	return 0, false
}

func matchPunct(cur *cursor, cfg *Decondenser) (int, bool) {
	rest := cur.rest()
	for i, p := range cfg.puncts {
		if p.Symbol != "" && strings.HasPrefix(rest, p.Symbol) {
			return i, true
		}
	}
	return 0, false
}
