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

// Package codegen is the Spec Parser + Code Generator (C8): it reads
// a declarative `.stx` language description and emits the three Go
// artifacts (token set, language tables, token inference) a new
// internal/lang subpackage needs to plug into the shared lexer
// engine — the same shape internal/lang/java was hand-written to.
//
// Grounded on original_source/src/codegen/{syntx,codegen}.rs's
// section-state-machine parser, rendered here with
// github.com/Flyclops/pongo2 templates instead of Rust's
// writeln!-based string building.
package codegen

// section names the current `[section]` the parser is inside.
type section int

const (
	sectionNone section = iota
	sectionInfo
	sectionTokens
	sectionDelimiters
	sectionOperators
	sectionComments
	sectionKeywords
	sectionScapes
	sectionNumbers
)

// commentMarkers holds spec.md §4.6's `[comments]` section: Line is the
// two-character line-comment sequence; Block holds the first character
// of the block-comment start sequence and the first character of its
// end sequence (e.g. '/' and '*' for "/*" ... "*/").
type commentMarkers struct {
	Line  [2]byte
	Block [2]byte
}

// Spec is the parsed form of a `.stx` file — the Go rendering of
// original_source's Syntx struct.
type Spec struct {
	Name        string
	Tokens      map[string]string // symbolic name -> literal string
	Delimiters  []string          // symbolic names, each a key into Tokens
	Operators   []string          // symbolic names, each a key into Tokens
	Keywords    []string          // literal keyword lexemes
	Scapes      map[string]string // escape char -> replacement char
	Numbers     []string          // single chars permitted inside numerals
	Comments    commentMarkers
	GrammarSeen bool // reserved [grammar] section observed but unhandled, per spec.md §9
}

func newSpec() *Spec {
	return &Spec{
		Tokens: map[string]string{},
		Scapes: map[string]string{},
	}
}

// TokenLiteral returns the literal string a symbolic [delimeters] or
// [operators] entry refers to via [tokens].
func (s *Spec) TokenLiteral(symbolic string) string {
	return s.Tokens[symbolic]
}
