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

// Package state holds the mutable cursor state a Lexer engine threads
// through every eater and through token inference. It is intentionally
// just an explicit struct — spec.md §9 calls for an explicit state
// parameter over hidden thread-locals, and goyang's lexer follows the
// same shape (row/col/width fields directly on *lexer).
package state

// State is mutable while a lex is in progress and discarded at
// end-of-input.
type State struct {
	// Row is a 1-indexed growing line counter. Column counts the runes
	// consumed on the current line: it starts at 0 and resets to 0
	// (not 1) after a newline is bumped — an explicit
	// choice documented in DESIGN.md resolving spec.md's open question
	// about the off-by-one, matching goyang's own lex.go (`l.col = 0`
	// on '\n').
	Row    int
	Column int

	// InString and InChar are mutually exclusive; both false outside
	// string/char eaters.
	InString bool
	InChar   bool

	// BraceLevel and ParenLevel are non-negative nesting counters.
	// InParen is true whenever ParenLevel > 0.
	BraceLevel int
	ParenLevel int
	InParen    bool

	// ReadInclude is one-shot: set true when token inference identifies
	// an import/include keyword, cleared once the directive's argument
	// has been consumed by the engine.
	ReadInclude bool

	// Errors accumulates degrade-path diagnostics (see §7); populated,
	// never fatal to the overall tokenize call.
	Errors []*LexError
}

// New returns a State ready to begin lexing at row 1, column 0.
func New() *State {
	return &State{Row: 1, Column: 0}
}

// Bump advances the column by one, or — on a newline outside a string
// or char literal — advances the row and resets the column. This is the
// sole primitive through which position bookkeeping changes; the engine
// must route every consumed rune through it.
func (s *State) Bump(ch rune) {
	if !s.InString && !s.InChar && ch == '\n' {
		s.Row++
		s.Column = 0
	} else {
		s.Column++
	}
}

// AddError appends err to the error trail, tagging it with the state's
// current position.
func (s *State) AddError(kind ErrorKind, format string, args ...any) {
	s.Errors = append(s.Errors, newLexError(kind, s.Row, s.Column, format, args...))
}
