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
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// DefaultWidth is the default line width of [Sample].
const DefaultWidth = 70

const (
	declarationHeader = `\lstset{extendedchars=true,literate=`
	declarationFooter = `}`
)

// Declaration returns a \lstset command that installs the commands of the
// given characters as literate replacements.  Each replacement has length 1.
func Declaration(chars []*Character) string {
	var b strings.Builder
	b.WriteString(declarationHeader)
	for i, c := range chars {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "{%c}{{%s}}1", c.Char, c.Command)
	}
	b.WriteString(declarationFooter)
	return b.String()
}

// Sample returns all given characters, wrapped at width columns.  Typesetting
// the result as a listing shows whether all replacements work.
func Sample(chars []*Character, width int) string {
	var b strings.Builder
	for _, c := range chars {
		b.WriteRune(c.Char)
	}
	return strings.Join(wrap(b.String(), width), "\n")
}

// Column widths don’t depend on the locale.  All characters that we care about
// are narrow anyway.
var columns = &runewidth.Condition{EastAsianWidth: false}

func stringWidth(s string) int {
	n := 0
	for _, r := range s {
		n += columns.RuneWidth(r)
	}
	return n
}

// cut splits s so that the first part is at most width columns wide.  The
// first part contains at least one character.
func cut(s string, width int) (string, string) {
	n := 0
	for i, r := range s {
		w := columns.RuneWidth(r)
		if i > 0 && n+w > width {
			return s[:i], s[i:]
		}
		n += w
	}
	return s, ""
}

// wrap breaks text into lines of at most width columns.  Lines are broken at
// spaces.  Words that are longer than a line are broken as well, filling up the
// current line first.
func wrap(text string, width int) []string {
	var lines []string
	var line strings.Builder
	col := 0
	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		col = 0
	}
	for _, word := range strings.Split(text, " ") {
		if word == "" {
			continue
		}
		w := stringWidth(word)
		if col > 0 && col+1+w <= width {
			line.WriteByte(' ')
			line.WriteString(word)
			col += 1 + w
			continue
		}
		if w <= width {
			if col > 0 {
				flush()
			}
			line.WriteString(word)
			col = w
			continue
		}
		if col > 0 {
			if col+1 < width {
				line.WriteByte(' ')
				col++
			} else {
				flush()
			}
		}
		for word != "" {
			head, rest := cut(word, width-col)
			line.WriteString(head)
			col += stringWidth(head)
			word = rest
			if word != "" {
				flush()
			}
		}
	}
	if col > 0 {
		flush()
	}
	return lines
}

// NewWriter returns a writer that passes valid UTF-8 through to w and fails on
// invalid input.  Callers must close the returned writer to flush it; this
// doesn’t close w.
func NewWriter(w io.Writer) io.WriteCloser {
	return transform.NewWriter(w, encoding.UTF8Validator)
}

// WriteFile writes content to the named file, replacing any existing file.
func WriteFile(name, content string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	w := NewWriter(f)
	if _, err := io.WriteString(w, content); err != nil {
		return fmt.Errorf("can’t write %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("can’t write %s: %w", name, err)
	}
	if err := f.Sync(); err != nil {
		return err
	}
	return f.Close()
}

// WriteTable writes a tab-separated table describing the given characters,
// preceded by a header row.
func WriteTable(w io.Writer, chars []*Character) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if err := cw.Write([]string{"character", "category", "name", "alias", "command"}); err != nil {
		return err
	}
	for _, c := range chars {
		if err := cw.Write([]string{string(c.Char), c.Category, c.Name, c.Alias, c.Command}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
