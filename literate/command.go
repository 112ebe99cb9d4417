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
	"strconv"
	"strings"
	"unicode/utf8"
)

// LaTeX macros for the style families.
const (
	boldMacro       = "bm" // package bm
	italicMacro     = "mathit"
	scriptMacro     = "mathcal"  // package mathalpha, option boondox
	frakturMacro    = "mathfrak" // package amsfonts
	blackboardMacro = "mathbb"   // package mathalpha, option boondox
	sansMacro       = "mathsf"
	italicSansMacro = "mathsfit" // needs a \newcommand
	typewriterMacro = "mathtt"
	romanMacro      = "mathrm"
)

// shape determines how multi-letter names such as “alpha” are turned into
// commands.
type shape int

const (
	anyShape shape = iota
	upright        // \alpha → \upalpha (package upgreek)
	italic         // \Gamma → \varGamma
)

// Greek letters that upgreek doesn’t provide in upright form, either because
// the normal LaTeX command is already upright or because there’s no such
// command.  For italic styles, these get a “var” prefix instead.
var upgreekExceptions = map[string]struct{}{
	"Gamma":    {},
	"Delta":    {},
	"Theta":    {},
	"Lambda":   {},
	"Xi":       {},
	"Pi":       {},
	"Sigma":    {},
	"Upsilon":  {},
	"Phi":      {},
	"Psi":      {},
	"Omega":    {},
	"varkappa": {},
	"varTheta": {},
}

// styleRule maps an alias prefix to a style family.  The macros are applied
// from the outside in.  A rule without format marks an unsupported family.
type styleRule struct {
	prefix string
	shape  shape
	format func(string) string
}

func nest(macros ...string) func(string) string {
	return func(s string) string {
		for i := len(macros) - 1; i >= 0; i-- {
			s = `\` + macros[i] + "{" + s + "}"
		}
		return s
	}
}

func script(marker string) func(string) string {
	return func(s string) string { return "{}" + marker + s }
}

// Rules are tried in order.  Earlier prefixes may be extensions of later ones,
// e.g. “\bisans” must come before “\bi”.
var styleRules = []styleRule{
	{`\^`, anyShape, script("^")},
	{`\_`, anyShape, script("_")},
	{`\tt`, anyShape, nest(typewriterMacro)},
	{`\bisans`, anyShape, nest(boldMacro, italicSansMacro)},
	{`\isans`, anyShape, nest(italicSansMacro)},
	{`\bsans`, anyShape, nest(boldMacro, sansMacro)},
	{`\sans`, anyShape, nest(sansMacro)},
	{`\bfrak`, anyShape, nest(boldMacro, frakturMacro)},
	// TODO: find a package with double-struck italic letters.
	{`\bbi`, anyShape, nil},
	{`\bb`, anyShape, nest(blackboardMacro)},
	{`\frak`, anyShape, nest(frakturMacro)},
	{`\bscr`, anyShape, nest(boldMacro, scriptMacro)},
	{`\scr`, anyShape, nest(scriptMacro)},
	{`\bi`, italic, nest(boldMacro, italicMacro)},
	{`\bf`, upright, nest(boldMacro, romanMacro)},
	{`\it`, italic, nest(italicMacro)},
}

// Synthesize sets c.Command to LaTeX code that typesets c.  It reports
// whether c belongs to a supported style family.  Characters whose command is
// simply their alias are marked as unverified.
func Synthesize(c *Character) bool {
	cmd, ok := command(c)
	if !ok {
		return false
	}
	c.Command = inlineMath(cmd)
	return true
}

func command(c *Character) (string, bool) {
	alias := c.Alias
	if len(alias) < 2 {
		return "", false
	}
	for _, r := range styleRules {
		if !strings.HasPrefix(alias, r.prefix) {
			continue
		}
		if r.format == nil {
			if alias == r.prefix {
				// The bare prefix is a different character, e.g.
				// “\bbi” for 𝕚.
				continue
			}
			return "", false
		}
		return r.format(latexChar(c, r.prefix, r.shape)), true
	}
	switch {
	case strings.HasPrefix(c.Name, "MATHEMATICAL"):
		return "", false
	case strings.HasPrefix(c.Name, "GREEK"):
		return latexChar(c, `\`, upright), true
	default:
		c.Unverified = true
		return alias, true
	}
}

// latexChar returns the LaTeX code for the base letter of c, assuming its
// alias starts with prefix.
func latexChar(c *Character, prefix string, s shape) string {
	if d, ok := c.digit(); ok {
		return strconv.Itoa(d)
	}
	suffix := strings.TrimPrefix(c.Alias, prefix)
	if utf8.RuneCountInString(suffix) <= 1 {
		return suffix
	}
	_, exception := upgreekExceptions[suffix]
	switch {
	case s == upright && !exception:
		suffix = "up" + suffix
	case s == italic && exception && !strings.Contains(suffix, "var"):
		suffix = "var" + suffix
	}
	return `\` + suffix
}

func inlineMath(s string) string {
	return `\(` + s + `\)`
}
