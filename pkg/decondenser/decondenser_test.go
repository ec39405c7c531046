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
	"testing"
)

func TestFormatShortCallFits(t *testing.T) {
	got := Generic().Format("foo(a, b, c)")
	want := "foo(a, b, c)"
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}

func TestFormatLongCallBreaksConsistently(t *testing.T) {
	input := "foo(aaaaaaaaa, bbbbbbbbb, ccccccccc, ddddddddd, eeeeeeeee, fffffffff, ggggggggg)"
	got := Generic().Format(input)

	if !strings.HasPrefix(got, "foo(\n    aaaaaaaaa,\n    bbbbbbbbb,\n") {
		t.Fatalf("Format() = %q, want it to start with one argument per indented line", got)
	}
	if !strings.HasSuffix(got, "\n)") {
		t.Fatalf("Format() = %q, want closing paren alone at the outer indent", got)
	}
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 80 {
			t.Fatalf("line %q exceeds the 80-column budget", line)
		}
	}
}

func TestFormatNestedFitsOnOneLine(t *testing.T) {
	got := Generic().Format("a(b(c,d),e(f,g))")
	want := "a(b(c, d), e(f, g))"
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}

func TestFormatQuotedRegionNeverSplits(t *testing.T) {
	input := `f("a, b, c, d, e, f, g, h, i, j, k, l, m, n, o, p, q, r, s, t")`
	got := Generic().Format(input)
	if !strings.Contains(got, `"a, b, c, d, e, f, g, h, i, j, k, l, m, n, o, p, q, r, s, t"`) {
		t.Fatalf("Format() = %q, quoted region must be reproduced verbatim", got)
	}
}

func TestFormatUnclosedGroupNeverFabricatesClosing(t *testing.T) {
	got := Generic().Format("foo(a, b, c")
	if strings.Contains(got, ")") {
		t.Fatalf("Format() = %q, must not fabricate a closing bracket", got)
	}
	if !strings.Contains(got, "foo(a, b, c") {
		t.Fatalf("Format() = %q, content must still be reproduced", got)
	}
}

func TestFormatIsIdempotent(t *testing.T) {
	inputs := []string{
		"foo(a, b, c)",
		"foo(aaaaaaaaa, bbbbbbbbb, ccccccccc, ddddddddd, eeeeeeeee, fffffffff, ggggggggg)",
		"a(b(c,d),e(f,g))",
	}
	cfg := Generic()
	for _, in := range inputs {
		once := cfg.Format(in)
		twice := cfg.Format(once)
		if once != twice {
			t.Errorf("Format(Format(%q)) = %q, want %q (idempotent)", in, twice, once)
		}
	}
}

func TestFormatNoTrailingWhitespaceOrBlankLines(t *testing.T) {
	got := Generic().Format("foo(aaaaaaaaa, bbbbbbbbb, ccccccccc, ddddddddd)\n\n\n")
	for _, line := range strings.Split(got, "\n") {
		if strings.TrimRight(line, " \t") != line {
			t.Fatalf("Format() produced a line with trailing whitespace: %q", line)
		}
	}
	if strings.HasSuffix(got, "\n") {
		t.Fatalf("Format() = %q, must not end with a blank line", got)
	}
}

func TestFormatNoLeadingWhitespace(t *testing.T) {
	got := Generic().Format("\n\n  foo(a, b)")
	if got == "" || (got[0] == ' ' || got[0] == '\n' || got[0] == '\t') {
		t.Fatalf("Format() = %q, must not start with whitespace", got)
	}
}
