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

// Package decondenser reformats condensed, machine-generated or otherwise
// hard-to-read text (nested brackets, long delimited lists, escaped string
// literals) into an indented, line-wrapped rendering meant for a human to
// read, without attempting to understand what the text means.
package decondenser

// Format reflows input according to cfg, producing output no line of which
// exceeds cfg's configured width unless it cannot be broken any further.
// Format is idempotent: Format(Format(s)) == Format(s) for any s that was
// produced by a matching configuration.
func (d *Decondenser) Format(input string) string {
	nodes := tokenize(input, d)
	nodes = trimEdges(nodes)

	norm := newNormalizer(d)
	drive(nodes, norm, d)
	return norm.finish()
}

// trimEdges drops any leading or trailing space/newline nodes from the top
// level of the tree. A trailing blank or a leading space would be dropped
// further down anyway, but the printer does emit a hard break that arrives
// before any raw text, so trimming here is what keeps a leading newline out
// of the output.
func trimEdges(nodes []node) []node {
	start := 0
	for start < len(nodes) && isBlankNode(nodes[start]) {
		start++
	}
	end := len(nodes)
	for end > start && isBlankNode(nodes[end-1]) {
		end--
	}
	return nodes[start:end]
}

func isBlankNode(n node) bool {
	return n.kind == spaceNode || n.kind == newlineNode
}
