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

// Package testutil contains internal test-related utilities.
package testutil

import (
	"flag"
	"io"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

var update = flag.Bool("update", false, "overwrite golden files with the generated output")

// Golden compares got with the contents of the named golden file, which must
// be valid UTF-8.  If the -update flag is given, Golden instead replaces the
// file with got.
func Golden(t testing.TB, name, got string) {
	t.Helper()
	if *update {
		if err := os.WriteFile(name, []byte(got), 0644); err != nil {
			t.Fatal(err)
		}
		return
	}
	want, err := ReadUTF8(name)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf(`Generated output and golden file %s differ.  Please rerun the test with -update.
Diff (-got +want):
%s`, name, diff)
	}
}

// ReadUTF8 reads the named file and returns its contents.  It returns an
// error if the file isn’t valid UTF-8.
func ReadUTF8(name string) (string, error) {
	f, err := os.Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()
	b, err := io.ReadAll(transform.NewReader(f, encoding.UTF8Validator))
	if err != nil {
		return "", err
	}
	return string(b), nil
}
