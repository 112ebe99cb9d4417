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

import "strings"

var includedCategories = map[string]struct{}{
	"Lu": {},
	"Ll": {},
	"Lm": {},
	"Nd": {},
}

// Second-to-last words of ordinary letter and digit names, e.g. “GREEK SMALL
// LETTER ALPHA” or “MATHEMATICAL BOLD CAPITAL A”.
var plainNameWords = map[string]struct{}{
	"LETTER":  {},
	"CAPITAL": {},
	"SMALL":   {},
	"DIGIT":   {},
}

// Greek letters that look like Latin letters or that are hardly ever
// distinguished in mathematical typesetting.  See
// https://www.unicode.org/charts/PDF/U1D400.pdf.
var greekBlacklist = []string{
	"Alpha", "Beta", "Epsilon", "Zeta", "Eta", "Iota", "Kappa", "Mu", "Nu",
	"Omicron", "omicron", "Rho", "Tau", "Chi", "Stigma", "Digamma", "digamma",
	"Koppa", "Sampi", "varTheta",
}

// Include reports whether c should be part of the generated table.  It may
// normalize c.Alias so that [Synthesize] produces the right command.
func Include(c *Character) bool {
	if _, ok := includedCategories[c.Category]; !ok {
		return false
	}
	w := c.words()
	if len(w) < 2 {
		return false
	}
	first, second := w[0], w[1]
	last, penultimate := w[len(w)-1], w[len(w)-2]
	if first == "LATIN" {
		switch {
		case second == "SUBSCRIPT" && last != "SCHWA":
		case c.Category == "Lm" && last != "SCHWA":
			// Superscript letters are modifier letters.
		default:
			// Letters with diacritics or strokes; see the patch set.
			return false
		}
	}
	if _, ok := plainNameWords[penultimate]; !ok {
		switch {
		case strings.HasPrefix(c.Alias, `\^`):
			// Superscript Greek letters.
		case last == "SYMBOL":
			// Variant Greek letters such as ϑ or ϵ.  Note that
			// “GREEK LUNATE EPSILON SYMBOL” keeps its alias
			// “\epsilon”, which typesets the lunate form.
		case penultimate == "FINAL":
			// ς
		default:
			return false
		}
	}
	if first == "GREEK" || first == "MATHEMATICAL" {
		alias := c.Alias
		if !strings.HasSuffix(alias, "upsilon") && strings.Contains(alias, "up") {
			if alias != `\upepsilon` {
				return false
			}
			c.Alias = `\epsilon`
		}
		for _, g := range greekBlacklist {
			if strings.HasSuffix(alias, g) {
				return false
			}
		}
		// TODO: support sans-serif Greek letters.
		if second == "SANS-SERIF" && len(last) > 1 && penultimate != "DIGIT" {
			return false
		}
	}
	if first == "TURNED" {
		return false
	}
	if last == "APOSTROPHE" {
		// ʼ isn’t a prime.
		return false
	}
	return true
}
