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

package literate

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/runenames"
)

// Character describes a single Unicode character together with its completion
// alias and, once known, the LaTeX code that typesets it.
type Character struct {
	Char rune

	// Category is the two-letter Unicode general category, e.g. “Lu”.
	Category string

	// Name is the Unicode character name, e.g. “GREEK SMALL LETTER ALPHA”.
	Name string

	// Alias is the completion alias, e.g. “\alpha”.  It’s empty if the
	// character has no alias.
	Alias string

	// Command is the LaTeX code for the character, including the inline
	// math delimiters.  It’s empty until a command has been synthesized.
	Command string

	// Unverified is set if Command was taken from the alias without knowing
	// that the alias is also a valid LaTeX command.
	Unverified bool
}

// NewCharacter returns a descriptor for r.  reverse maps characters to their
// aliases; r need not be present.
func NewCharacter(r rune, reverse map[rune]string) *Character {
	return &Character{
		Char:     r,
		Category: category(r),
		Name:     runenames.Name(r),
		Alias:    reverse[r],
	}
}

func (c *Character) String() string {
	return fmt.Sprintf("%c %s %s %s", c.Char, c.Category, c.Name, c.Alias)
}

// words returns the words of the character name.
func (c *Character) words() []string {
	return strings.Fields(c.Name)
}

var categories = []struct {
	name  string
	table *unicode.RangeTable
}{
	{"Lu", unicode.Lu},
	{"Ll", unicode.Ll},
	{"Lt", unicode.Lt},
	{"Lm", unicode.Lm},
	{"Lo", unicode.Lo},
	{"Mn", unicode.Mn},
	{"Mc", unicode.Mc},
	{"Me", unicode.Me},
	{"Nd", unicode.Nd},
	{"Nl", unicode.Nl},
	{"No", unicode.No},
	{"Pc", unicode.Pc},
	{"Pd", unicode.Pd},
	{"Ps", unicode.Ps},
	{"Pe", unicode.Pe},
	{"Pi", unicode.Pi},
	{"Pf", unicode.Pf},
	{"Po", unicode.Po},
	{"Sm", unicode.Sm},
	{"Sc", unicode.Sc},
	{"Sk", unicode.Sk},
	{"So", unicode.So},
	{"Zs", unicode.Zs},
	{"Zl", unicode.Zl},
	{"Zp", unicode.Zp},
	{"Cc", unicode.Cc},
	{"Cf", unicode.Cf},
	{"Co", unicode.Co},
	{"Cs", unicode.Cs},
}

// category returns the general category of r.  Unassigned code points have
// category “Cn”.
func category(r rune) string {
	for _, c := range categories {
		if unicode.Is(c.table, r) {
			return c.name
		}
	}
	return "Cn"
}

var digitNames = map[string]int{
	"ZERO":  0,
	"ONE":   1,
	"TWO":   2,
	"THREE": 3,
	"FOUR":  4,
	"FIVE":  5,
	"SIX":   6,
	"SEVEN": 7,
	"EIGHT": 8,
	"NINE":  9,
}

// digit returns the value of a decimal digit.  Decimal digits are named
// “… DIGIT ZERO” through “… DIGIT NINE”.
func (c *Character) digit() (int, bool) {
	w := c.words()
	if c.Category != "Nd" || len(w) < 2 || w[len(w)-2] != "DIGIT" {
		return 0, false
	}
	d, ok := digitNames[w[len(w)-1]]
	return d, ok
}
