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

// groupState is the printer's record of one open group: whether it ended
// up fitting on the current line (inline) or had to be broken.
type groupState struct {
	style  BreakStyle
	broken bool
}

// pendingKind distinguishes the printer's lazily-flushed trailing blank.
// Blanks are never written to the output eagerly, which is how trailing
// whitespace and leading whitespace on the first line are both avoided
// without any special-casing at EOF.
type pendingKind int

const (
	// pendingSkip discards any space() call outright: this is the state
	// before the first raw token of the whole output, where a space has
	// nothing to attach to. (After a hard break the state is pendingBreaks,
	// which discards spaces as well.)
	pendingSkip pendingKind = iota
	pendingSpaces
	pendingBreaks
)

// printer emits the final text from a stream of measured tokens. It owns
// the output buffer exclusively; nothing else in the engine writes to it.
type printer struct {
	output strings.Builder

	groupsStack []groupState
	indentLevel int

	lineSizeBudget int

	pending      pendingKind
	pendingCount int

	indentStr     string
	indentStrSize int
	maxLineSize   int
	noBreakSize   int
}

func newPrinter(cfg *Decondenser) *printer {
	budget := cfg.maxLineSize
	if cfg.noBreakSize > budget {
		budget = cfg.noBreakSize
	}
	return &printer{
		lineSizeBudget: budget,
		pending:        pendingSkip,
		indentStr:      cfg.indent,
		indentStrSize:  cfg.visualSize(cfg.indent),
		maxLineSize:    cfg.maxLineSize,
		noBreakSize:    cfg.noBreakSize,
	}
}

func (p *printer) decreaseBudget(n int) {
	p.lineSizeBudget -= n
	if p.lineSizeBudget < 0 {
		p.lineSizeBudget = 0
	}
}

func (p *printer) begin(style BreakStyle, dist size) {
	fits := !dist.infinite && dist.fixed <= p.lineSizeBudget
	p.groupsStack = append(p.groupsStack, groupState{style: style, broken: !fits})
}

func (p *printer) end() {
	p.groupsStack = p.groupsStack[:len(p.groupsStack)-1]
}

func (p *printer) indent(diff int) {
	p.indentLevel += diff
	if p.indentLevel < 0 {
		// Well-balanced input never underflows; this is only a safety net.
		p.indentLevel = 0
	}
}

// fits reports whether a run of the given
// size can still be placed starting right where the cursor is now.
func (p *printer) fits(s size) bool {
	if s.infinite {
		return false
	}

	if len(p.groupsStack) == 0 {
		return s.fixed <= p.lineSizeBudget
	}

	top := p.groupsStack[len(p.groupsStack)-1]
	if !top.broken {
		return true
	}
	if top.style == Compact {
		return s.fixed <= p.lineSizeBudget
	}
	return false
}

func (p *printer) hardBreak(count int) {
	// Discard any pending space: the upcoming flush resets the budget for
	// the new line from scratch, so there's nothing left to account for.
	if p.pending == pendingBreaks {
		p.pendingCount = maxInt(p.pendingCount, count)
	} else {
		p.pendingCount = count
	}
	p.pending = pendingBreaks
}

func (p *printer) space(sz int) {
	switch p.pending {
	case pendingSpaces:
		old := p.pendingCount
		p.pendingCount = maxInt(old, sz)
		p.decreaseBudget(p.pendingCount - old)
	case pendingBreaks:
		// A pending hard break takes precedence; the space is discarded.
	case pendingSkip:
		// Leading space with nothing printed yet is discarded.
	}
}

func (p *printer) softBreak(dist size) {
	if p.fits(dist) {
		p.space(1)
		return
	}
	p.hardBreak(1)
}

func (p *printer) raw(s measuredStr) {
	if s.isEmpty() {
		return
	}
	p.flushPending()
	p.output.WriteString(s.content)
	p.decreaseBudget(s.visualSize())
	p.pending = pendingSpaces
	p.pendingCount = 0
}

func (p *printer) flushPending() {
	switch p.pending {
	case pendingSpaces:
		if p.pendingCount > 0 {
			p.output.WriteString(strings.Repeat(" ", p.pendingCount))
		}
	case pendingBreaks:
		p.output.WriteString(strings.Repeat("\n", p.pendingCount))
		p.output.WriteString(strings.Repeat(p.indentStr, p.indentLevel))
		indentSize := p.indentLevel * p.indentStrSize
		p.lineSizeBudget = maxInt(p.maxLineSize-indentSize, p.noBreakSize)
	}
	p.pending = pendingSkip
	p.pendingCount = 0
}

func (p *printer) lineSizeBudgetNow() int {
	return p.lineSizeBudget
}

// finish drops any still-pending blank — never emitting trailing whitespace
// or blank lines at EOF — and returns the accumulated output.
func (p *printer) finish() string {
	p.pending = pendingSkip
	p.pendingCount = 0
	return p.output.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
