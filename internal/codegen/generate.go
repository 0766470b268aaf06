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

package codegen

import (
	"fmt"
	"go/format"
	"path"
	"strconv"
	"strings"

	"github.com/Flyclops/pongo2"
	"github.com/spf13/afero"
)

// Artifact is one generated file's path (relative to the output
// directory) and gofmt'd Go source.
type Artifact struct {
	Name   string
	Source []byte
}

// namedLiteral pairs a generated identifier fragment with the quoted
// source literal it was derived from, for table entries that need
// both (operators, delimiters, keywords).
type namedLiteral struct {
	Name     string
	Exported string
	Quoted   string
}

// Generate renders the three artifacts spec.md §4.6 names for stx:
// token set, language tables, token inference. Each is gofmt'd before
// being returned; a template or gofmt failure is a programmer error in
// the generator itself, not a malformed-input condition, so Generate
// panics rather than returning it as a recoverable parse error —
// mirroring the Rust reference's codegen.rs, which simply unwraps.
func Generate(stx *Spec) []Artifact {
	ctx := buildContext(stx)

	return []Artifact{
		{Name: fmt.Sprintf("%s_tokenset.go", stx.Name), Source: render(tokensetTemplate, ctx)},
		{Name: fmt.Sprintf("%s_tables.go", stx.Name), Source: render(tablesTemplate, ctx)},
		{Name: fmt.Sprintf("%s_infer.go", stx.Name), Source: render(inferTemplate, ctx)},
	}
}

// WriteTo writes the generated artifacts for stx under
// <outDir>/<stx.Name>/, creating the directory if needed — spec.md
// §4.6's "create the output directory langs/<basename>/."
func WriteTo(fsys afero.Fs, outDir string, stx *Spec) error {
	dir := path.Join(outDir, stx.Name)
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("codegen: creating %s: %w", dir, err)
	}
	for _, art := range Generate(stx) {
		if err := afero.WriteFile(fsys, path.Join(dir, art.Name), art.Source, 0o644); err != nil {
			return fmt.Errorf("codegen: writing %s: %w", art.Name, err)
		}
	}
	return nil
}

func render(tpl string, ctx pongo2.Context) []byte {
	t, err := pongo2.FromString(tpl)
	if err != nil {
		panic(fmt.Sprintf("codegen: invalid template: %v", err))
	}
	out, err := t.Execute(ctx)
	if err != nil {
		panic(fmt.Sprintf("codegen: template execution failed: %v", err))
	}
	formatted, err := format.Source([]byte(out))
	if err != nil {
		panic(fmt.Sprintf("codegen: generated invalid Go source: %v\n%s", err, out))
	}
	return formatted
}

func buildContext(stx *Spec) pongo2.Context {
	operators := make([]namedLiteral, 0, len(stx.Operators))
	leadBytes := map[byte]bool{}
	for _, name := range stx.Operators {
		lit := stx.TokenLiteral(name)
		operators = append(operators, namedLiteral{Name: name, Quoted: strconv.Quote(lit)})
		if len(lit) > 0 {
			leadBytes[lit[0]] = true
		}
	}

	delimiters := make([]namedLiteral, 0, len(stx.Delimiters))
	delimByteLiterals := make([]string, 0, len(stx.Delimiters))
	for _, name := range stx.Delimiters {
		lit := stx.TokenLiteral(name)
		delimiters = append(delimiters, namedLiteral{Name: name, Quoted: strconv.Quote(lit)})
		if len(lit) > 0 {
			delimByteLiterals = append(delimByteLiterals, byteLiteral(lit[0]))
		}
	}

	keywords := make([]namedLiteral, 0, len(stx.Keywords))
	for _, kw := range stx.Keywords {
		keywords = append(keywords, namedLiteral{
			Name:     kw,
			Exported: capitalize(kw),
			Quoted:   strconv.Quote(kw),
		})
	}

	scapes := make([]struct{ From, To string }, 0, len(stx.Scapes))
	for from, to := range stx.Scapes {
		if from == "" || to == "" {
			continue
		}
		scapes = append(scapes, struct{ From, To string }{
			From: strconv.QuoteRune([]rune(from)[0]),
			To:   strconv.QuoteRune([]rune(to)[0]),
		})
	}

	numbers := make([]string, 0, len(stx.Numbers))
	for _, n := range stx.Numbers {
		if n == "" {
			continue
		}
		numbers = append(numbers, strconv.QuoteRune([]rune(n)[0]))
	}

	leadByteLiterals := make([]string, 0, len(leadBytes))
	for b := range leadBytes {
		leadByteLiterals = append(leadByteLiterals, byteLiteral(b))
	}

	return pongo2.Context{
		"name":                  stx.Name,
		"operators":             operators,
		"delimiters":            delimiters,
		"keywords":              keywords,
		"scapes":                scapes,
		"numbers":               numbers,
		"operatorLeadBytes":     leadByteLiterals,
		"delimiterByteLiterals": delimByteLiterals,
		"lineCommentTrigger":    strconv.QuoteRune(rune(stx.Comments.Line[0])),
		"lineCommentSecond":     strconv.QuoteRune(rune(stx.Comments.Line[1])),
		"blockCommentStart":     strconv.QuoteRune(rune(stx.Comments.Block[0])),
		"blockCommentEnd":       strconv.QuoteRune(rune(stx.Comments.Block[1])),
	}
}

func byteLiteral(b byte) string {
	return strconv.QuoteRune(rune(b))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
