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

// Package config loads decondenser YAML profiles: named, reusable
// formatting configurations that the CLI selects with --profile, grounded
// on the same gopkg.in/yaml.v3 loading style as sqlcode's own config file.
package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/openconfig/decondenser/pkg/decondenser"
)

// SpaceDoc is the YAML shape of a Space policy.
type SpaceDoc struct {
	Min       int  `yaml:"min"`
	Max       int  `yaml:"max"`
	Breakable bool `yaml:"breakable"`
}

func (s SpaceDoc) toSpace() decondenser.Space {
	return decondenser.PreservingSpace(s.Min, s.Max).WithBreakable(s.Breakable)
}

// PunctDoc is the YAML shape of a Punct.
type PunctDoc struct {
	Symbol        string   `yaml:"symbol"`
	LeadingSpace  SpaceDoc `yaml:"leadingSpace"`
	TrailingSpace SpaceDoc `yaml:"trailingSpace"`
}

func (p PunctDoc) toPunct() decondenser.Punct {
	return decondenser.NewPunct(p.Symbol).
		WithLeadingSpace(p.LeadingSpace.toSpace()).
		WithTrailingSpace(p.TrailingSpace.toSpace())
}

// GroupDoc is the YAML shape of a Group.
type GroupDoc struct {
	Opening    PunctDoc `yaml:"opening"`
	Closing    PunctDoc `yaml:"closing"`
	Consistent bool     `yaml:"consistent"`
}

func (g GroupDoc) toGroup() decondenser.Group {
	style := decondenser.Compact
	if g.Consistent {
		style = decondenser.Consistent
	}
	return decondenser.NewGroup(g.Opening.toPunct(), g.Closing.toPunct()).WithBreakStyle(style)
}

// QuoteDoc is the YAML shape of a Quote.
type QuoteDoc struct {
	Opening string `yaml:"opening"`
	Closing string `yaml:"closing"`
}

func (q QuoteDoc) toQuote() decondenser.Quote {
	return decondenser.NewQuote(q.Opening, q.Closing)
}

// Profile is one named configuration in a Document. A profile that sets
// Base to "generic" starts from decondenser.Generic() and layers its own
// overrides on top; any other (or empty) Base starts from
// decondenser.Empty().
type Profile struct {
	Base        string     `yaml:"base"`
	Indent      string     `yaml:"indent"`
	MaxLineSize int        `yaml:"maxLineSize"`
	NoBreakSize int        `yaml:"noBreakSize"`
	EscapeChar  string     `yaml:"escapeChar"`
	Groups      []GroupDoc `yaml:"groups"`
	Puncts      []PunctDoc `yaml:"puncts"`
	Quotes      []QuoteDoc `yaml:"quotes"`
}

// Document is the top-level shape of a decondenser config file: document-wide
// defaults plus a set of named profiles, one of which the CLI selects by
// name. Indent/MaxLineSize/NoBreakSize set here apply to every profile
// (including the implicit "" / generic lookup) unless a profile overrides
// them with its own non-zero value.
type Document struct {
	Indent      string             `yaml:"indent"`
	MaxLineSize int                `yaml:"maxLineSize"`
	NoBreakSize int                `yaml:"noBreakSize"`
	Profiles    map[string]Profile `yaml:"profiles"`
}

// ProfileNotFoundError is returned by Build when the requested profile name
// isn't defined in the Document, mirroring the descriptive lookup-failure
// errors goyang's pkg/yang/find.go returns.
type ProfileNotFoundError struct {
	Name      string
	Available []string
}

func (e *ProfileNotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("no profile named %q (no profiles defined)", e.Name)
	}
	return fmt.Sprintf("no profile named %q; available profiles: %s", e.Name, strings.Join(e.Available, ", "))
}

// ProfileNames returns the Document's profile names, sorted, for use in
// error messages and --help output.
func (d Document) ProfileNames() []string {
	if len(d.Profiles) == 0 {
		return nil
	}
	names := make([]string, 0, len(d.Profiles))
	for name := range d.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (d Document) applyDefaults(cfg *decondenser.Decondenser) *decondenser.Decondenser {
	if d.Indent != "" {
		cfg = cfg.Indent(d.Indent)
	}
	if d.MaxLineSize > 0 {
		cfg = cfg.MaxLineSize(d.MaxLineSize)
	}
	if d.NoBreakSize > 0 {
		cfg = cfg.NoBreakSize(d.NoBreakSize)
	}
	return cfg
}

// Load reads and parses a decondenser config file from path.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return doc, nil
}

// Build resolves the named profile into a *decondenser.Decondenser. An
// empty name resolves to decondenser.Generic() plus the Document's
// top-level defaults, with no profile lookup. An unknown name returns a
// *ProfileNotFoundError listing the profiles the Document does define.
func (d Document) Build(name string) (*decondenser.Decondenser, error) {
	if name == "" {
		return d.applyDefaults(decondenser.Generic()), nil
	}

	profile, ok := d.Profiles[name]
	if !ok {
		return nil, &ProfileNotFoundError{Name: name, Available: d.ProfileNames()}
	}
	return profile.build(d), nil
}

func (p Profile) build(d Document) *decondenser.Decondenser {
	cfg := decondenser.Empty()
	if p.Base == "generic" {
		cfg = decondenser.Generic()
	}
	cfg = d.applyDefaults(cfg)

	if p.Indent != "" {
		cfg = cfg.Indent(p.Indent)
	}
	if p.MaxLineSize > 0 {
		cfg = cfg.MaxLineSize(p.MaxLineSize)
	}
	if p.NoBreakSize > 0 {
		cfg = cfg.NoBreakSize(p.NoBreakSize)
	}
	if p.EscapeChar != "" {
		cfg = cfg.EscapeChar([]rune(p.EscapeChar)[0])
	}

	if len(p.Groups) > 0 {
		groups := make([]decondenser.Group, len(p.Groups))
		for i, g := range p.Groups {
			groups[i] = g.toGroup()
		}
		cfg = cfg.Groups(groups)
	}
	if len(p.Puncts) > 0 {
		puncts := make([]decondenser.Punct, len(p.Puncts))
		for i, pd := range p.Puncts {
			puncts[i] = pd.toPunct()
		}
		cfg = cfg.Puncts(puncts)
	}
	if len(p.Quotes) > 0 {
		quotes := make([]decondenser.Quote, len(p.Quotes))
		for i, q := range p.Quotes {
			quotes[i] = q.toQuote()
		}
		cfg = cfg.Quotes(quotes)
	}

	return cfg
}
