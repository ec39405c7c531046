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

// BreakStyle decides how the soft breaks of a group turn into newlines once
// that group doesn't fit on a single line.
type BreakStyle int

const (
	// Consistent turns every soft break of a broken group into a newline,
	// so each item ends up on its own line.
	Consistent BreakStyle = iota
	// Compact only turns a soft break into a newline when the next run of
	// content would overflow the current line.
	Compact
)

func (s BreakStyle) String() string {
	switch s {
	case Consistent:
		return "Consistent"
	case Compact:
		return "Compact"
	default:
		return "BreakStyle(?)"
	}
}

// Space describes how a run of whitespace adjacent to a Punct is rendered.
// A fixed size has Min == Max; a preserving size has Min < Max. The
// formatter does not measure the source whitespace it replaces: a
// non-breakable Space renders as Min units of space, and a breakable one
// renders as a soft break (a single space when its group stays inline),
// whatever its Min and Max.
type Space struct {
	Min, Max  int
	Breakable bool
}

// NoSpace never emits anything.
func NoSpace() Space {
	return Space{}
}

// FixedSpace always emits exactly n visual units of space.
func FixedSpace(n int) Space {
	return Space{Min: n, Max: n}
}

// PreservingSpace returns a Space with the bounds [min, max]. The width of
// the source whitespace is not measured; see Space for how it renders.
func PreservingSpace(min, max int) Space {
	return Space{Min: min, Max: max}
}

// WithBreakable returns a copy of s that is (or isn't) a candidate for a
// soft line break.
func (s Space) WithBreakable(breakable bool) Space {
	s.Breakable = breakable
	return s
}

// Punct is a literal punctuation sequence together with the whitespace
// policy applied immediately before and after it.
type Punct struct {
	Symbol        string
	LeadingSpace  Space
	TrailingSpace Space
}

// NewPunct creates a Punct with no leading or trailing space; chain
// WithLeadingSpace/WithTrailingSpace to change that.
func NewPunct(symbol string) Punct {
	return Punct{Symbol: symbol}
}

func (p Punct) WithLeadingSpace(s Space) Punct {
	p.LeadingSpace = s
	return p
}

func (p Punct) WithTrailingSpace(s Space) Punct {
	p.TrailingSpace = s
	return p
}

// Group is a pair of opening/closing Puncts that delimit a region whose
// content may be reflowed across lines.
type Group struct {
	Opening    Punct
	Closing    Punct
	BreakStyle BreakStyle
}

// NewGroup creates a Group with BreakStyle Consistent.
func NewGroup(opening, closing Punct) Group {
	return Group{Opening: opening, Closing: closing, BreakStyle: Consistent}
}

func (g Group) WithBreakStyle(style BreakStyle) Group {
	g.BreakStyle = style
	return g
}

// Quote is a pair of opening/closing delimiters for an opaque region that
// is never reflowed, whatever it contains.
type Quote struct {
	Opening, Closing string
}

func NewQuote(opening, closing string) Quote {
	return Quote{Opening: opening, Closing: closing}
}

// Decondenser holds an immutable configuration that both the tokenizer and
// the formatter borrow by reference for the lifetime of one Format call.
// Construct one with Empty or Generic and customize it with the chained
// setters before calling Format.
type Decondenser struct {
	indent      string
	maxLineSize int
	noBreakSize int
	groups      []Group
	puncts      []Punct
	quotes      []Quote
	visualSize  VisualSize
	escapeChar  rune
}

// Empty returns the minimal configuration: four-space indent, width 80, no
// groups/quotes/puncts, and the default visual size (counts runes except
// '\r').
func Empty() *Decondenser {
	return &Decondenser{
		indent:      "    ",
		maxLineSize: 80,
		noBreakSize: 40,
		visualSize:  defaultVisualSize,
		escapeChar:  '\\',
	}
}

// Generic returns a predefined configuration covering the common bracket,
// punctuation and quoting conventions shared by most programming languages:
// groups () [] {} <<>>, puncts , and ; with a breakable trailing space, and
// quotes """...""", "...", '''...''' and '...'.
func Generic() *Decondenser {
	d := Empty()

	d.groups = []Group{
		NewGroup(NewPunct("("), NewPunct(")")),
		NewGroup(NewPunct("["), NewPunct("]")),
		NewGroup(NewPunct("{"), NewPunct("}")),
		NewGroup(NewPunct("<<"), NewPunct(">>")),
	}

	breakableComma := PreservingSpace(0, 1).WithBreakable(true)
	d.puncts = []Punct{
		NewPunct(",").WithTrailingSpace(breakableComma),
		NewPunct(";").WithTrailingSpace(breakableComma),
	}

	d.quotes = []Quote{
		NewQuote(`"""`, `"""`),
		NewQuote(`"`, `"`),
		NewQuote(`'''`, `'''`),
		NewQuote(`'`, `'`),
	}

	return d
}

func (d *Decondenser) Indent(s string) *Decondenser {
	d.indent = s
	return d
}

func (d *Decondenser) MaxLineSize(n int) *Decondenser {
	d.maxLineSize = n
	return d
}

func (d *Decondenser) NoBreakSize(n int) *Decondenser {
	d.noBreakSize = n
	return d
}

func (d *Decondenser) Groups(groups []Group) *Decondenser {
	d.groups = groups
	return d
}

func (d *Decondenser) Puncts(puncts []Punct) *Decondenser {
	d.puncts = puncts
	return d
}

func (d *Decondenser) Quotes(quotes []Quote) *Decondenser {
	d.quotes = quotes
	return d
}

func (d *Decondenser) VisualSize(f VisualSize) *Decondenser {
	d.visualSize = f
	return d
}

// EscapeChar sets the character that introduces an escape sequence inside
// quoted regions. The data model carries this alongside the other
// configuration knobs; it defaults to '\\'.
func (d *Decondenser) EscapeChar(r rune) *Decondenser {
	d.escapeChar = r
	return d
}

func (d *Decondenser) lineSizeBudget() int {
	if d.maxLineSize > d.noBreakSize {
		return d.maxLineSize
	}
	return d.noBreakSize
}

func (d *Decondenser) measure(content string) measuredStr {
	return measure(content, d.visualSize)
}
