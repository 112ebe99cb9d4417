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

// Binary generate writes a \lstset command with literate replacements for
// Unicode letters, and a sample text containing all replaced characters.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"

	"github.com/phst/literate/literate"
	"github.com/phst/literate/symbols"
)

// Main function.
func main() {
	flag.Usage = usage
	var g generator
	flag.StringVar(&g.literateFile, "literate", "literate.tex", "output file for the \\lstset command")
	flag.StringVar(&g.sampleFile, "sample", "literate_test.txt", "output file for the sample text")
	flag.StringVar(&g.tableFile, "table", "", "optional output file for a tab-separated character table")
	flag.IntVar(&g.width, "width", literate.DefaultWidth, "line width of the sample text")
	symbolsFile := flag.String("symbols", "", "JSON file with completion aliases; defaults to the built-in table")
	flag.Parse()
	if flag.NArg() != 0 {
		usage()
		os.Exit(2)
	}
	if g.width < 1 {
		log.Fatalf("invalid line width %d", g.width)
	}
	table := symbols.Default()
	if *symbolsFile != "" {
		t, err := symbols.ReadFile(*symbolsFile)
		if err != nil {
			log.Fatal(err)
		}
		table = t
	}
	result := literate.Build(table)
	if err := g.run(result); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d characters to %s, %d dropped, %d need review",
		len(result.Characters), g.literateFile, len(result.Dropped), len(result.Unverified))
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: generate [FLAGS]")
	flag.PrintDefaults()
}

type generator struct {
	literateFile, sampleFile, tableFile string
	width                               int
}

// Writes all output files.
func (g *generator) run(result *literate.Result) (err error) {
	defer runRecover(&err)
	g.doRun(result)
	return
}

func runRecover(err *error) {
	switch x := recover().(type) {
	case nil:
		return
	case error:
		*err = fmt.Errorf("Generator panic: %w", x)
	default:
		*err = fmt.Errorf("Generator panic: %#v", x)
	}
	debug.PrintStack()
}

func (g *generator) doRun(result *literate.Result) {
	g.write(g.literateFile, literate.Declaration(result.Characters))
	g.write(g.sampleFile, literate.Sample(result.Characters, g.width))
	if g.tableFile != "" {
		var b strings.Builder
		if err := literate.WriteTable(&b, result.Characters); err != nil {
			panic(err)
		}
		g.write(g.tableFile, b.String())
	}
}

func (g *generator) write(name, content string) {
	if err := literate.WriteFile(name, content); err != nil {
		panic(err)
	}
}
