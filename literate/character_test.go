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
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/phst/literate/literate"
	"github.com/phst/literate/symbols"
)

var reverse = symbols.Default().Reverse()

func TestNewCharacter(t *testing.T) {
	for _, tc := range []struct {
		char rune
		want literate.Character
	}{
		{'α', literate.Character{Char: 'α', Category: "Ll", Name: "GREEK SMALL LETTER ALPHA", Alias: `\alpha`}},
		{'𝐀', literate.Character{Char: '𝐀', Category: "Lu", Name: "MATHEMATICAL BOLD CAPITAL A", Alias: `\bfA`}},
		{'𝟎', literate.Character{Char: '𝟎', Category: "Nd", Name: "MATHEMATICAL BOLD DIGIT ZERO", Alias: `\bfzero`}},
		{'ᵃ', literate.Character{Char: 'ᵃ', Category: "Lm", Name: "MODIFIER LETTER SMALL A", Alias: `\^a`}},
		{'ℵ', literate.Character{Char: 'ℵ', Category: "Lo", Name: "ALEF SYMBOL", Alias: `\aleph`}},
		// No alias.
		{'A', literate.Character{Char: 'A', Category: "Lu", Name: "LATIN CAPITAL LETTER A"}},
		{'+', literate.Character{Char: '+', Category: "Sm", Name: "PLUS SIGN"}},
	} {
		t.Run(string(tc.char), func(t *testing.T) {
			got := literate.NewCharacter(tc.char, reverse)
			if diff := cmp.Diff(*got, tc.want); diff != "" {
				t.Error("-got +want:\n", diff)
			}
		})
	}
}

func TestNewCharacterUnassigned(t *testing.T) {
	c := literate.NewCharacter(0x0378, reverse)
	if c.Category != "Cn" {
		t.Errorf("category of unassigned code point: got %q, want Cn", c.Category)
	}
	if c.Alias != "" {
		t.Errorf("alias of unassigned code point: got %q, want none", c.Alias)
	}
}

func TestCharacterString(t *testing.T) {
	c := literate.NewCharacter('ⅅ', reverse)
	if got, want := c.String(), `ⅅ Lu DOUBLE-STRUCK ITALIC CAPITAL D \bbiD`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
