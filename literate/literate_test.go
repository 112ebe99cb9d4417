// Copyright 2024, 2025 Google LLC
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

package literate_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/phst/literate/literate"
	"github.com/phst/literate/private/testutil"
	"github.com/phst/literate/symbols"
)

func runes(chars []*literate.Character) string {
	var b strings.Builder
	for _, c := range chars {
		b.WriteRune(c.Char)
	}
	return b.String()
}

func TestBuild(t *testing.T) {
	r := literate.Build(symbols.Default())
	if len(r.Characters) < 900 {
		t.Errorf("got %d characters, want at least 900", len(r.Characters))
	}
	seen := make(map[rune]struct{})
	for _, c := range r.Characters {
		if _, dup := seen[c.Char]; dup {
			t.Errorf("duplicate character %s", c)
		}
		seen[c.Char] = struct{}{}
		if len(c.Command) <= len(`\(\)`) || !strings.HasPrefix(c.Command, `\(`) || !strings.HasSuffix(c.Command, `\)`) {
			t.Errorf("invalid command %q for %s", c.Command, c)
		}
	}
	if got, want := runes(r.Dropped), "ⅅⅆⅇⅈⅉ"; got != want {
		t.Errorf("dropped characters: got %q, want %q", got, want)
	}
	if got, want := runes(r.Unverified), "ℑℓℜ"; got != want {
		t.Errorf("unverified characters: got %q, want %q", got, want)
	}
	for _, c := range r.Unverified {
		if !c.Unverified {
			t.Errorf("character %s not marked as unverified", c)
		}
	}
}

func TestBuildPatches(t *testing.T) {
	r := literate.Build(symbols.Default())
	n := len(r.Characters)
	if n < 5 {
		t.Fatalf("got only %d characters", n)
	}
	got := make(map[rune]string)
	for _, c := range r.Characters[n-5:] {
		got[c.Char] = c.Command
	}
	want := map[rune]string{
		'ħ': `\(\hbar\)`,
		'ℵ': `\(\aleph\)`,
		'ℶ': `\(\beth\)`,
		'ℷ': `\(\gimel\)`,
		'ℸ': `\(\daleth\)`,
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Error("-got +want:\n", diff)
	}
}

func TestBuildEpsilon(t *testing.T) {
	r := literate.Build(symbols.Default())
	got := make(map[rune]string)
	for _, c := range r.Characters {
		if c.Char == 'ε' || c.Char == 'ϵ' {
			got[c.Char] = c.Command
		}
	}
	want := map[rune]string{
		'ε': `\(\upepsilon\)`,
		'ϵ': `\(\upepsilon\)`,
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Error("-got +want:\n", diff)
	}
}

func TestBuildDeterministic(t *testing.T) {
	a := literate.Build(symbols.Default())
	b := literate.Build(symbols.Default())
	if diff := cmp.Diff(a, b); diff != "" {
		t.Error("-first +second:\n", diff)
	}
}

func TestBuildSmallTable(t *testing.T) {
	table := symbols.Table{
		{Alias: `\bfA`, Character: '𝐀'},
		{Alias: `\Alpha`, Character: 'Α'},
		{Alias: `\bbiD`, Character: 'ⅅ'},
		{Alias: `\alpha`, Character: 'α'},
		{Alias: `\hbar`, Character: 'ħ'},
	}
	r := literate.Build(table)
	got := make([][2]string, len(r.Characters))
	for i, c := range r.Characters {
		got[i] = [2]string{string(c.Char), c.Command}
	}
	want := [][2]string{
		{"𝐀", `\(\bm{\mathrm{A}}\)`},
		{"α", `\(\upalpha\)`},
		{"ħ", `\(\hbar\)`},
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Error("-got +want:\n", diff)
	}
	if got, want := runes(r.Dropped), "ⅅ"; got != want {
		t.Errorf("dropped characters: got %q, want %q", got, want)
	}
}

func TestGolden(t *testing.T) {
	r := literate.Build(symbols.Default())
	testutil.Golden(t, "testdata/literate.tex", literate.Declaration(r.Characters))
	testutil.Golden(t, "testdata/literate_test.txt", literate.Sample(r.Characters, literate.DefaultWidth))
}
