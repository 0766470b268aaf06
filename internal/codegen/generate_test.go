// Copyright 2026 The Syntx Authors.
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

package codegen_test

import (
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/syntx-project/syntx/internal/codegen"
)

func TestGenerateProducesThreeArtifacts(t *testing.T) {
	stx, err := codegen.Parse(readFixture(t))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	artifacts := codegen.Generate(stx)
	if len(artifacts) != 3 {
		t.Fatalf("got %d artifacts, want 3", len(artifacts))
	}

	wantSuffixes := []string{"_tokenset.go", "_tables.go", "_infer.go"}
	for i, art := range artifacts {
		if !strings.HasSuffix(art.Name, wantSuffixes[i]) {
			t.Errorf("artifact %d name = %q, want suffix %q", i, art.Name, wantSuffixes[i])
		}
		if !strings.Contains(string(art.Source), "package minijava") {
			t.Errorf("artifact %q does not declare package minijava:\n%s", art.Name, art.Source)
		}
	}
}

func TestGenerateRendersDeclaredSymbols(t *testing.T) {
	stx, err := codegen.Parse(readFixture(t))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	artifacts := codegen.Generate(stx)
	var tokenset, tables string
	for _, art := range artifacts {
		switch {
		case strings.HasSuffix(art.Name, "_tokenset.go"):
			tokenset = string(art.Source)
		case strings.HasSuffix(art.Name, "_tables.go"):
			tables = string(art.Source)
		}
	}

	for _, want := range []string{"OpPlus", "OpEq", "DelimiterLParen", "KeywordIf"} {
		if !strings.Contains(tokenset, want) {
			t.Errorf("tokenset source missing %q:\n%s", want, tokenset)
		}
	}
	if !strings.Contains(tables, `"==": OpEq`) {
		t.Errorf("tables source missing the eq operator entry:\n%s", tables)
	}
}

func TestWriteToCreatesLangDirectory(t *testing.T) {
	stx, err := codegen.Parse(readFixture(t))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	fs := afero.NewMemMapFs()
	if err := codegen.WriteTo(fs, "langs", stx); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	for _, name := range []string{"minijava_tokenset.go", "minijava_tables.go", "minijava_infer.go"} {
		path := "langs/minijava/" + name
		ok, err := afero.Exists(fs, path)
		if err != nil {
			t.Fatalf("Exists(%q): %v", path, err)
		}
		if !ok {
			t.Errorf("WriteTo did not create %q", path)
		}
	}
}
