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

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "decondenser.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadAndBuildGenericBase(t *testing.T) {
	path := writeTempConfig(t, `
profiles:
  wide:
    base: generic
    maxLineSize: 120
`)
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	cfg, err := doc.Build("wide")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	got := cfg.Format("foo(a, b, c)")
	want := "foo(a, b, c)"
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}

func TestBuildEmptyNameReturnsGeneric(t *testing.T) {
	doc := Document{}
	cfg, err := doc.Build("")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := cfg.Format("foo(a, b)"); got != "foo(a, b)" {
		t.Fatalf("Format() = %q, want %q", got, "foo(a, b)")
	}
}

func TestLoadParsesProfileFields(t *testing.T) {
	path := writeTempConfig(t, `
indent: "    "
maxLineSize: 100
noBreakSize: 10
profiles:
  wide:
    base: generic
    indent: "  "
    maxLineSize: 120
    noBreakSize: 20
`)
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Document{
		Indent:      "    ",
		MaxLineSize: 100,
		NoBreakSize: 10,
		Profiles: map[string]Profile{
			"wide": {
				Base:        "generic",
				Indent:      "  ",
				MaxLineSize: 120,
				NoBreakSize: 20,
			},
		},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildAppliesDocumentDefaults(t *testing.T) {
	path := writeTempConfig(t, `
maxLineSize: 5
noBreakSize: 1
profiles:
  plain:
    base: generic
`)
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	cfg, err := doc.Build("plain")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// The document-wide maxLineSize/noBreakSize force a break that
	// wouldn't happen under Generic()'s much larger defaults.
	got := cfg.Format("foo(a, b, c)")
	want := "foo(\n    a,\n    b,\n    c\n)"
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}

func TestBuildProfileOverridesDocumentDefaults(t *testing.T) {
	path := writeTempConfig(t, `
maxLineSize: 5
profiles:
  wide:
    base: generic
    maxLineSize: 120
`)
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	cfg, err := doc.Build("wide")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	got := cfg.Format("foo(a, b, c)")
	want := "foo(a, b, c)"
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}

func TestBuildEmptyNameAppliesDocumentDefaults(t *testing.T) {
	doc := Document{MaxLineSize: 5, NoBreakSize: 1}
	cfg, err := doc.Build("")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	got := cfg.Format("foo(a, b, c)")
	want := "foo(\n    a,\n    b,\n    c\n)"
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}

func TestBuildUnknownProfileErrors(t *testing.T) {
	doc := Document{Profiles: map[string]Profile{
		"wide":   {},
		"narrow": {},
	}}

	_, err := doc.Build("nope")
	if err == nil {
		t.Fatal("Build() with unknown profile should error")
	}

	var notFound *ProfileNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Build() error = %T, want *ProfileNotFoundError", err)
	}
	if notFound.Name != "nope" {
		t.Errorf("notFound.Name = %q, want %q", notFound.Name, "nope")
	}
	want := []string{"narrow", "wide"}
	if diff := cmp.Diff(want, notFound.Available); diff != "" {
		t.Errorf("notFound.Available mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildUnknownProfileErrorsWithNoProfilesDefined(t *testing.T) {
	doc := Document{}
	_, err := doc.Build("nope")
	if err == nil {
		t.Fatal("Build() with unknown profile should error")
	}
	if got := err.Error(); got == "" {
		t.Fatal("error message should not be empty")
	}
}

func TestBuildCustomGroupsAndPuncts(t *testing.T) {
	path := writeTempConfig(t, `
profiles:
  custom:
    groups:
      - opening: {symbol: "("}
        closing: {symbol: ")"}
        consistent: true
    puncts:
      - symbol: ","
        trailingSpace: {min: 0, max: 1, breakable: true}
`)
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	cfg, err := doc.Build("custom")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	got := cfg.Format("(a,b,c)")
	want := "(a, b, c)"
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}
