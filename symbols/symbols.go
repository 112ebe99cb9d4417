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

// Package symbols provides the table of LaTeX-like completion aliases that
// interactive shells use to enter Unicode characters, such as “\alpha” for α or
// “\bfA” for 𝐀.  The embedded table is a snapshot of the one shipped with
// IPython (IPython/core/latex_symbols.py), which in turn derives from the
// Julia REPL completions.
package symbols

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	_ "embed"
)

// Entry maps a single alias to the character it stands for.
type Entry struct {
	Alias     string
	Character rune
}

// Table is an ordered list of entries.  Several aliases may map to the same
// character.
type Table []Entry

// Default returns the embedded table.  Callers must not modify it.
func Default() Table { return defaultTable }

var defaultTable = mustDecode(latexSymbolsJSON)

func mustDecode(b []byte) Table {
	t, err := Decode(bytes.NewReader(b))
	if err != nil {
		panic(fmt.Errorf("invalid embedded symbol table: %s", err))
	}
	return t
}

// ReadFile reads a table in the same JSON format as the embedded one.
func ReadFile(name string) (Table, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("symbol table %s: %w", name, err)
	}
	return t, nil
}

// Decode reads a JSON object of the form
//
//	{"symbols": [["\\alpha", "α"], ["\\beta", "β"], …]}
//
// and returns the entries in the order in which they appear.
func Decode(r io.Reader) (Table, error) {
	var data struct {
		Symbols [][2]string `json:"symbols"`
	}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&data); err != nil {
		return nil, err
	}
	if len(data.Symbols) == 0 {
		return nil, errors.New("no symbols")
	}
	t := make(Table, 0, len(data.Symbols))
	for i, s := range data.Symbols {
		alias, char := s[0], s[1]
		if !strings.HasPrefix(alias, `\`) || len(alias) < 2 {
			return nil, fmt.Errorf("entry %d: invalid alias %q", i, alias)
		}
		r, n := utf8.DecodeRuneInString(char)
		if r == utf8.RuneError || n != len(char) {
			return nil, fmt.Errorf("entry %d: alias %s maps to %q, want a single character", i, alias, char)
		}
		t = append(t, Entry{alias, r})
	}
	return t, nil
}

// Reverse returns a map from characters to aliases.  If more than one alias
// maps to a character, the last one wins.
func (t Table) Reverse() map[rune]string {
	m := make(map[rune]string, len(t))
	for _, e := range t {
		m[e.Character] = e.Alias
	}
	return m
}

// Characters returns the distinct characters in the table in the order of
// their first appearance.
func (t Table) Characters() []rune {
	seen := make(map[rune]struct{}, len(t))
	var r []rune
	for _, e := range t {
		if _, dup := seen[e.Character]; dup {
			continue
		}
		seen[e.Character] = struct{}{}
		r = append(r, e.Character)
	}
	return r
}

//go:embed latex_symbols.json
var latexSymbolsJSON []byte
