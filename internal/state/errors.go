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

package state

import "fmt"

// ErrorKind enumerates the lexical error kinds spec.md §7 names. The
// lexer never aborts on these — each has a defined fallback described
// at its use site in internal/lexer.
type ErrorKind int

const (
	ErrUnterminatedStringLiteral ErrorKind = iota
	ErrUnterminatedCharLiteral
	ErrUnterminatedBlockComment
	ErrMalformedUnicodeEscape
	ErrMalformedNumericLiteral
	ErrUnbalancedParenthesis
	ErrIOFailureDuringResolution
	ErrUnknownSubcommand
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnterminatedStringLiteral:
		return "UnterminatedStringLiteral"
	case ErrUnterminatedCharLiteral:
		return "UnterminatedCharLiteral"
	case ErrUnterminatedBlockComment:
		return "UnterminatedBlockComment"
	case ErrMalformedUnicodeEscape:
		return "MalformedUnicodeEscape"
	case ErrMalformedNumericLiteral:
		return "MalformedNumericLiteral"
	case ErrUnbalancedParenthesis:
		return "UnbalancedParenthesis"
	case ErrIOFailureDuringResolution:
		return "IoFailureDuringResolution"
	case ErrUnknownSubcommand:
		return "UnknownSubcommand"
	default:
		return "Unknown"
	}
}

// LexError is a recoverable diagnostic located by row/column. It
// implements error so degrade-path fallbacks can still be surfaced to
// callers that want to inspect state.Errors after tokenize completes.
type LexError struct {
	Kind    ErrorKind
	Row     int
	Column  int
	Message string
}

func newLexError(kind ErrorKind, row, col int, format string, args ...any) *LexError {
	return &LexError{
		Kind:    kind,
		Row:     row,
		Column:  col,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%d:%d: %s: %s", e.Row, e.Column, e.Kind, e.Message)
}
