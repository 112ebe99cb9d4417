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

// Package literate generates “literate” replacements for the LaTeX listings
// package.  With these, Unicode letters such as α, 𝐱, or ℝ that appear in code
// listings are typeset using math mode commands such as \upalpha,
// \bm{\mathrm{x}}, or \mathbb{R}.  See
// https://ctan.org/pkg/listings for the listings package.
package literate

import (
	"log"

	"github.com/phst/literate/symbols"
)

// Characters that the filter rejects, but for which the alias is a valid LaTeX
// command.  They are appended to the result as is.
var patches = []rune{'ħ', 'ℵ', 'ℶ', 'ℷ', 'ℸ'}

// Result contains the outcome of [Build].
type Result struct {
	// Characters are the characters to include in the generated table, in
	// table order followed by the patches.
	Characters []*Character

	// Dropped are characters that passed the filter, but for which no
	// command could be synthesized.
	Dropped []*Character

	// Unverified are characters in Characters whose command is just their
	// alias.  They should be reviewed manually.
	Unverified []*Character
}

// Build classifies all characters in the given table.
func Build(table symbols.Table) *Result {
	reverse := table.Reverse()
	r := new(Result)
	seen := make(map[rune]struct{})
	for _, char := range table.Characters() {
		c := NewCharacter(char, reverse)
		if !Include(c) {
			continue
		}
		if !Synthesize(c) {
			log.Printf("no command for %s", c)
			r.Dropped = append(r.Dropped, c)
			continue
		}
		if c.Unverified {
			log.Printf("assuming that alias is a valid LaTeX command: %s", c)
			r.Unverified = append(r.Unverified, c)
		}
		r.Characters = append(r.Characters, c)
		seen[char] = struct{}{}
	}
	for _, char := range patches {
		if _, dup := seen[char]; dup {
			log.Printf("patched character %c already included", char)
			continue
		}
		c := NewCharacter(char, reverse)
		if c.Alias == "" {
			log.Printf("no alias for patched character %s", c)
			continue
		}
		c.Command = inlineMath(c.Alias)
		r.Characters = append(r.Characters, c)
	}
	return r
}
