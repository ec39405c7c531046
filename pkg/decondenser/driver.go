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

// drive walks the L2 token tree emitting operations on the normalizer. It
// owns no state of its own: every decision it makes is a direct translation
// of what kind of node it's looking at into the matching normalizer calls.
func drive(nodes []node, norm *normalizer, cfg *Decondenser) {
	walkNodes(nodes, norm, cfg)
}

// walkNodes drives a single sibling list. A bare space or newline run
// immediately next to a Punct is dropped rather than turned into its own
// blank: the Punct's LeadingSpace/TrailingSpace alone defines the spacing
// policy there. Without this, a source space before a "," would be kept
// ("a ,b" would print as "a , b") and a source newline after a "," would
// force a hard break instead of the comma's breakable trailing space.
func walkNodes(nodes []node, norm *normalizer, cfg *Decondenser) {
	for i, nd := range nodes {
		if isBlankNode(nd) {
			prevIsPunct := i > 0 && nodes[i-1].kind == punctNode
			nextIsPunct := i+1 < len(nodes) && nodes[i+1].kind == punctNode
			if prevIsPunct || nextIsPunct {
				continue
			}
		}
		walkNode(nd, norm, cfg)
	}
}

func walkNode(nd node, norm *normalizer, cfg *Decondenser) {
	switch nd.kind {
	case spaceNode:
		norm.space(1)
	case newlineNode:
		norm.hardBreakBlank(clampBlankLines(nd.newlineCount))
	case rawNode:
		norm.raw(cfg.measure(nd.text))
	case punctNode:
		walkPunct(nd.punct, norm, cfg)
	case groupNode:
		walkGroup(nd, norm, cfg)
	case quotedNode:
		walkQuoted(nd, norm, cfg)
	}
}

// clampBlankLines caps a run of N consecutive newlines to at most one blank
// output line: a single newline (the boundary between two lines of input)
// produces a single break, and two or more collapse to two breaks, i.e.
// exactly one blank line in between.
func clampBlankLines(count int) int {
	if count <= 1 {
		return 1
	}
	return 2
}

func walkPunct(p *Punct, norm *normalizer, cfg *Decondenser) {
	applySpace(norm, p.LeadingSpace)
	norm.raw(cfg.measure(p.Symbol))
	applySpace(norm, p.TrailingSpace)
}

// applySpace renders one Space policy. Breakable spaces become a soft-break
// candidate; fixed, non-breakable spaces of positive width become a literal
// space. The Max bound of a preserving space only matters for reproducing
// original whitespace width verbatim, which this formatter never attempts
// to do for punctuation-adjacent runs (see DESIGN.md); Min is what governs
// the non-breaking case.
func applySpace(norm *normalizer, sp Space) {
	if sp.Breakable {
		norm.softBreakControl()
		return
	}
	if sp.Min > 0 {
		norm.space(sp.Min)
	}
}

func walkGroup(nd node, norm *normalizer, cfg *Decondenser) {
	g := nd.group

	applySpace(norm, g.Opening.LeadingSpace)
	norm.raw(cfg.measure(g.Opening.Symbol))

	if len(nd.groupContent) == 0 {
		// An empty group never opens a break scope: "()" stays "()".
		if nd.groupClosed {
			norm.raw(cfg.measure(g.Closing.Symbol))
		}
		return
	}

	norm.beginGroup(g.BreakStyle)
	norm.indent(1)
	norm.softBreakControl()

	walkNodes(nd.groupContent, norm, cfg)

	norm.indent(-1)
	norm.softBreakControl()
	norm.endGroup()

	if nd.groupClosed {
		norm.raw(cfg.measure(g.Closing.Symbol))
	}
	// An unclosed group reproduces its opening delimiter and content but
	// never invents a closing one that wasn't in the input.
}

func walkQuoted(nd node, norm *normalizer, cfg *Decondenser) {
	q := nd.quote

	norm.raw(cfg.measure(q.Opening))
	for _, piece := range nd.quoteContent {
		norm.raw(cfg.measure(piece.text()))
	}
	if nd.quoteClosed {
		norm.raw(cfg.measure(q.Closing))
	}
}
