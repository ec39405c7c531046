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

import "testing"

func testCfgForPrinter() *Decondenser {
	return Empty().MaxLineSize(10).NoBreakSize(4).Indent("  ")
}

func TestPrinterNoTrailingWhitespace(t *testing.T) {
	p := newPrinter(testCfgForPrinter())
	p.raw(measure("foo", defaultVisualSize))
	p.space(1)
	out := p.finish()
	if out != "foo" {
		t.Fatalf("finish() = %q, want %q", out, "foo")
	}
}

func TestPrinterBeginFitsInline(t *testing.T) {
	p := newPrinter(testCfgForPrinter())
	p.raw(measure("a", defaultVisualSize))
	p.begin(Consistent, fixedSize(2))
	p.softBreak(fixedSize(1))
	p.raw(measure("b", defaultVisualSize))
	p.end()
	out := p.finish()
	if out != "a b" {
		t.Fatalf("finish() = %q, want %q", out, "a b")
	}
}

func TestPrinterBeginBreaksWhenInfinite(t *testing.T) {
	p := newPrinter(testCfgForPrinter())
	p.raw(measure("a", defaultVisualSize))
	p.begin(Consistent, infiniteSize())
	p.indent(1)
	p.softBreak(fixedSize(1))
	p.raw(measure("b", defaultVisualSize))
	p.indent(-1)
	p.end()
	out := p.finish()
	want := "a\n  b"
	if out != want {
		t.Fatalf("finish() = %q, want %q", out, want)
	}
}

func TestPrinterCompactOnlyBreaksOnOverflow(t *testing.T) {
	p := newPrinter(testCfgForPrinter())
	p.begin(Compact, infiniteSize())
	p.indent(1)
	p.raw(measure("aa", defaultVisualSize))
	p.softBreak(fixedSize(2))
	p.raw(measure("bb", defaultVisualSize))
	p.softBreak(fixedSize(20))
	p.raw(measure("cc", defaultVisualSize))
	p.indent(-1)
	p.end()
	out := p.finish()
	want := "aa bb\n  cc"
	if out != want {
		t.Fatalf("finish() = %q, want %q", out, want)
	}
}

func TestPrinterHardBreakResetsBudgetByIndent(t *testing.T) {
	p := newPrinter(testCfgForPrinter())
	p.indent(1)
	p.hardBreak(1)
	p.raw(measure("x", defaultVisualSize))
	out := p.finish()
	if out != "\n  x" {
		t.Fatalf("finish() = %q, want %q", out, "\n  x")
	}
	wantBudget := maxInt(10-2, 4) - 1
	if got := p.lineSizeBudgetNow(); got != wantBudget {
		t.Fatalf("lineSizeBudgetNow() = %d, want %d", got, wantBudget)
	}
}
