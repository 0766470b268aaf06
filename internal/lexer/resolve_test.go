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

package lexer_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/afero"

	"github.com/syntx-project/syntx/internal/lang/java"
	"github.com/syntx-project/syntx/internal/lexer"
	"github.com/syntx-project/syntx/internal/token"
)

func lexWithResolution(t *testing.T, fs afero.Fs, searchPaths []string, src string) []token.Token {
	t.Helper()
	out := make(chan []token.Token)
	var errBuf bytes.Buffer
	e := lexer.NewEngine(src, java.TokenSet{}, out,
		lexer.WithResolution(fs, searchPaths),
		lexer.WithErrOut(&errBuf))
	go func() {
		defer close(out)
		e.Tokenize(context.Background())
	}()
	var toks []token.Token
	for batch := range out {
		toks = append(toks, batch...)
	}
	return toks
}

// TestImportResolvesIntoSharedSink checks spec.md §4.4: a resolved
// import recursively lexes the target file and feeds its tokens into
// the same sink as the importing file, in order.
func TestImportResolvesIntoSharedSink(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/src/pkg/Helper.java", []byte("class Helper { }"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := lexWithResolution(t, fs, []string{"/src"}, "import pkg.Helper;\nclass Main { }")

	if len(got) == 0 {
		t.Fatal("expected tokens from both the importer and the imported file")
	}
	first, ok := got[0].(java.Keyword)
	if !ok || first.ID != java.KeywordClass {
		t.Fatalf("first token = %#v, want Keyword(class) from Helper.java", got[0])
	}
}

// TestImportOfStdlibPackageIsSkipped checks spec.md §4.4's "system
// reserved prefix": java.* / javax.* imports never hit the filesystem.
func TestImportOfStdlibPackageIsSkipped(t *testing.T) {
	fs := afero.NewMemMapFs()
	got := lexWithResolution(t, fs, []string{"/src"}, "import java.util.List;\nclass Main { }")

	for _, tok := range got {
		if ident, ok := tok.(java.Unknown); ok && ident != unknown("Main", 0) {
			t.Errorf("got unexpected Unknown token %#v; a stdlib import must never touch the filesystem or nested-lex anything", ident)
		}
	}
	foundClass := false
	for _, tok := range got {
		if kw, ok := tok.(java.Keyword); ok && kw.ID == java.KeywordClass {
			foundClass = true
		}
	}
	if !foundClass {
		t.Errorf("got %#v, want a 'class' keyword token from Main's own source", got)
	}
}

// TestImportCycleIsGuarded checks that two files importing each other
// do not recurse forever: the second encounter of the same name is
// skipped rather than re-entered.
func TestImportCycleIsGuarded(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/src/A.java", []byte("import B;\nclass A { }"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, "/src/B.java", []byte("import A;\nclass B { }"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := lexWithResolution(t, fs, []string{"/src"}, "import A;\nclass Main { }")
	if len(got) == 0 {
		t.Fatal("expected some tokens despite the import cycle")
	}
}

// TestWildcardImportEnumeratesDirectory checks spec.md §4.4's wildcard
// form: "pkg.*" lexes every matching-extension file in pkg/, sorted.
func TestWildcardImportEnumeratesDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/src/pkg/A.java", []byte("class A { }"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, "/src/pkg/B.java", []byte("class B { }"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := lexWithResolution(t, fs, []string{"/src"}, "import pkg.*;\nclass Main { }")

	count := 0
	for _, tok := range got {
		if kw, ok := tok.(java.Keyword); ok && kw.ID == java.KeywordClass {
			count++
		}
	}
	if count != 3 {
		t.Errorf("got %d 'class' keywords, want 3 (A.java, B.java, Main)", count)
	}
}

func TestSearchPathFromEnv(t *testing.T) {
	t.Setenv("SYNTX_TEST_CLASSPATH", "")
	if got := lexer.SearchPathFromEnv("SYNTX_TEST_CLASSPATH"); len(got) != 1 || got[0] != "." {
		t.Errorf("empty env var: got %v, want [\".\"]", got)
	}

	t.Setenv("SYNTX_TEST_CLASSPATH", "/a:/b")
	got := lexer.SearchPathFromEnv("SYNTX_TEST_CLASSPATH")
	want := []string{"/a", "/b"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("got %v, want %v", got, want)
	}
}
