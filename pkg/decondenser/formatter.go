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

// formatter is the measured formatter — the heart of the
// engine. It buffers engine tokens in a sliding deque, back-propagates
// next-break distances onto not-yet-measured Begin/SoftBreak/End tokens in
// amortized O(1) per token, and feeds fully measured tokens to the printer
// as soon as they're known.
type formatter struct {
	deque slidingDeque[engToken]

	// unmeasured holds absolute indices (into deque) of Begin, SoftBreak and
	// End tokens whose next-break distance hasn't been resolved yet. End
	// tokens are kept here too, purely to track nesting depth while
	// back-propagating (see measureTokens).
	unmeasured []int

	printedSize int
	totalSize   int

	printer *printer
}

func newFormatter(cfg *Decondenser) *formatter {
	return &formatter{printer: newPrinter(cfg)}
}

func (f *formatter) startsWithUnmeasured() bool {
	return len(f.unmeasured) > 0 && f.unmeasured[0] == f.deque.basisIndex()
}

func (f *formatter) begin(style BreakStyle) {
	idx := f.deque.pushBack(engToken{
		kind:       engBegin,
		breakStyle: style,
		dist:       unmeasuredFrom(f.totalSize),
	})
	f.unmeasured = append(f.unmeasured, idx)
}

func (f *formatter) end() {
	idx := f.deque.pushBack(engToken{kind: engEnd})
	f.unmeasured = append(f.unmeasured, idx)
}

func (f *formatter) indentOp(diff int) {
	f.deque.pushBack(engToken{kind: engIndent, indentDiff: diff})
}

func (f *formatter) hardBreak(count int) {
	f.measureTokens()
	f.breakWhile(func() bool { return true })
	f.printer.hardBreak(count)
}

// softBreak renders as a single space if its enclosing group stays inline,
// or a line break otherwise. That rendered space counts towards totalSize
// from the moment it's pushed — same as an explicit space() — so that an
// enclosing Begin's measured distance correctly reflects what a reader
// would actually see on the line if this break doesn't fire.
func (f *formatter) softBreak() {
	f.measureTokens()
	precedingSize := f.totalSize
	idx := f.deque.pushBack(engToken{
		kind: engSoftBreak,
		dist: unmeasuredFrom(precedingSize),
	})
	f.unmeasured = append(f.unmeasured, idx)
	f.totalSize++
	f.breakWhileOverflows()
}

func (f *formatter) space(sz int) {
	f.deque.pushBack(engToken{kind: engSpace, spaceSize: sz})
	f.totalSize += sz
	f.breakWhileOverflows()
}

func (f *formatter) raw(s measuredStr) {
	f.deque.pushBack(engToken{kind: engRaw, raw: s})
	f.totalSize += s.visualSize()
	f.breakWhileOverflows()
}

// eof runs the final measurement pass and flushes everything left in the
// deque, returning the printer's accumulated output.
func (f *formatter) eof() string {
	if len(f.unmeasured) != 0 {
		f.measureTokens()
	}
	f.printMeasuredTokens()
	return f.printer.finish()
}

func (f *formatter) breakWhileOverflows() {
	f.breakWhile(func() bool {
		pending := f.totalSize - f.printedSize
		return pending > f.printer.lineSizeBudgetNow()
	})
}

// breakWhile flushes tokens, assigning "infinite size" to the oldest
// not-yet-measured Begin/SoftBreak so the printer is forced to break there,
// until condition no longer holds (or there's nothing left to flush).
func (f *formatter) breakWhile(condition func() bool) {
	for {
		if !condition() {
			return
		}

		tok, ok := f.deque.front()
		if !ok {
			return
		}

		if tok.kind == engSoftBreak || tok.kind == engBegin {
			tok.dist.forceInfinite()
		}

		if f.startsWithUnmeasured() {
			f.unmeasured = f.unmeasured[1:]
		}

		f.printMeasuredTokens()
	}
}

func (f *formatter) printMeasuredTokens() {
	for {
		tok, ok := f.deque.front()
		if !ok {
			return
		}

		switch tok.kind {
		case engRaw:
			f.printedSize += tok.raw.visualSize()
			f.printer.raw(tok.raw)
		case engSpace:
			f.printedSize += tok.spaceSize
			f.printer.space(tok.spaceSize)
		case engSoftBreak:
			if !tok.dist.known {
				return
			}
			f.printer.softBreak(tok.dist.value)
		case engBegin:
			if !tok.dist.known {
				return
			}
			f.printer.begin(tok.breakStyle, tok.dist.value)
		case engIndent:
			f.printer.indent(tok.indentDiff)
		case engEnd:
			if f.startsWithUnmeasured() {
				// Still staged for its group's measurement.
				return
			}
			f.printer.end()
		}

		f.deque.popFront()
	}
}

// measureTokens walks the unmeasured queue from the back (most recently
// pushed), assigning Fixed next-break distances to Begin/SoftBreak tokens
// as soon as their matching End (or the next SoftBreak at the same depth)
// is seen. Every token is visited at most twice across the life of the
// formatter, which is what keeps this amortized O(1) per token.
func (f *formatter) measureTokens() {
	depth := 0
	cursor := len(f.unmeasured)

	for cursor > 0 {
		cursor--
		index := f.unmeasured[cursor]

		tok := f.deque.get(index)
		if tok == nil {
			f.unmeasured = append(f.unmeasured[:cursor], f.unmeasured[cursor+1:]...)
			continue
		}

		switch tok.kind {
		case engBegin:
			if depth == 0 {
				if cursor+1 == len(f.unmeasured) {
					continue
				}
				return
			}
			f.unmeasured = append(f.unmeasured[:cursor], f.unmeasured[cursor+1:]...)
			tok.dist.measureFrom(f.totalSize)
			depth--
		case engEnd:
			f.unmeasured = append(f.unmeasured[:cursor], f.unmeasured[cursor+1:]...)
			depth++
		case engSoftBreak:
			f.unmeasured = append(f.unmeasured[:cursor], f.unmeasured[cursor+1:]...)
			tok.dist.measureFrom(f.totalSize)
			if depth == 0 {
				return
			}
		}
	}
}
