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

// VisualSize computes the visual width of s in whatever unit the caller
// cares about (terminal columns, runes, bytes...). The single character
// " " must always measure 1; callers that break this invariant will see
// the printer misjudge line fit.
type VisualSize func(s string) int

// defaultVisualSize counts runes, skipping '\r' so CRLF line endings don't
// inflate width calculations.
func defaultVisualSize(s string) int {
	n := 0
	for _, r := range s {
		if r == '\r' {
			continue
		}
		n++
	}
	return n
}

// measuredStr pairs a borrowed slice of the input with its precomputed
// visual size, so the formatter never re-measures the same bytes twice.
type measuredStr struct {
	content string
	size    int
}

func measure(content string, visualSize VisualSize) measuredStr {
	return measuredStr{content: content, size: visualSize(content)}
}

func (m measuredStr) String() string {
	return m.content
}

func (m measuredStr) visualSize() int {
	return m.size
}

func (m measuredStr) isEmpty() bool {
	return m.content == ""
}
