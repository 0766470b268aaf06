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

// Package lang declares the capability-bundle interfaces a language
// description must satisfy to plug into the shared lexer engine
// (internal/lexer). A concrete language lives in its own subpackage
// (internal/lang/java) and is either hand-written or emitted by
// internal/codegen from a declarative spec file.
//
// This is the Go rendering of spec.md §9's instruction: "Implement as
// a capability interface parameterizing the engine, or — equivalently
// — as a table value ... passed in at construction." The three-way
// split below mirrors the Rust reference implementation's
// Delimeted/Lexable/Resolvable trait split (original_source/src/tokens/
// token_traits.rs), renamed to Go idiom.
package lang

import (
	"github.com/syntx-project/syntx/internal/state"
	"github.com/syntx-project/syntx/internal/token"
)

// Table exposes the per-language predicates and maps spec.md §3 calls
// the Language Tables: the Delimeted-style contract.
type Table interface {
	// IsDelimiter reports whether b terminates an identifier run.
	// Includes whitespace.
	IsDelimiter(b byte) bool

	// MayTriggerLineComment reports the lookahead length to buffer if
	// ch could begin a line comment, e.g. '/' -> (2, true) for "//".
	MayTriggerLineComment(ch rune) (n int, ok bool)

	// TriggerCommentLine reports whether the buffered lookahead matches
	// the declared line-comment sequence exactly.
	TriggerCommentLine(buf []rune) bool

	// MayTriggerBlockComment reports the end sequence and lookahead
	// length to buffer if ch could begin a block comment.
	MayTriggerBlockComment(ch rune) (endSeq []rune, n int, ok bool)

	// TriggerCommentBlock reports whether the buffered lookahead
	// matches the declared block-comment start sequence exactly.
	TriggerCommentBlock(buf []rune) bool

	// IsOperatorPrefix reports whether b can begin some operator.
	IsOperatorPrefix(b byte) bool

	// IsOperator reports whether s is itself a complete, recognized
	// operator lexeme. Multi-byte operators are supported.
	IsOperator(s []byte) bool

	// AllowedNumberChar reports whether ch may continue a numeric
	// literal once the leading digit has been consumed (beyond plain
	// ASCII alphanumerics, which are always allowed).
	AllowedNumberChar(ch rune) bool

	// AllowedUnicodeEscape reports the expected hex-digit count for the
	// legacy \uXXXX-style escape letter ch (e.g. 'u' -> 4, 'U' -> 8).
	AllowedUnicodeEscape(ch rune) (digits int, ok bool)

	// Escape reports the decoded replacement for a single-character
	// escape (the character immediately following a backslash inside a
	// string or char literal).
	Escape(ch rune) (rune, bool)
}

// Inferrer classifies an accumulated lexeme, in the current state, into
// a concrete token — spec.md §4.2's Token Inference contract.
//
// InferToken returns (nil, false) exactly when the lexeme should be
// swallowed and produce no token (e.g. the designated import keyword,
// which instead sets state.ReadInclude).
type Inferrer interface {
	InferToken(lexeme string, st *state.State) (token.Token, bool)
}

// ImportPolicy supplies the language-specific knowledge the generic
// Import Resolver (internal/lexer) needs: spec.md §4.4's "system
// reserved prefix", dotted-name-to-path mapping, and search-path
// environment variable convention.
type ImportPolicy interface {
	// IsStdlib reports whether name begins with a system-reserved
	// namespace prefix that should never be resolved (e.g. "java"/
	// "javax" for Java).
	IsStdlib(name string) bool

	// Extension is the source file extension for this language,
	// without a leading dot (e.g. "java").
	Extension() string

	// SearchPathEnvVar is the environment variable conventionally used
	// to configure the search path (e.g. "CLASSPATH" for Java).
	SearchPathEnvVar() string
}

// Language bundles the three capabilities a Lexer engine needs to
// tokenize one language. A concrete language (internal/lang/java)
// implements all three on a single zero-size receiver type.
type Language interface {
	Table
	Inferrer
	ImportPolicy
}
