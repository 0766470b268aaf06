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

// Package token defines the language-agnostic token shapes every
// generated language table must produce. A concrete language (for
// example internal/lang/java) supplies its own operator/delimiter/
// keyword enumerations and wraps them in these tagged variants.
package token

// Kind is the categorical class of a Token, derivable purely from its
// underlying variant.
type Kind int

const (
	KindIdentifier Kind = iota
	KindKeyword
	KindOperator
	KindDelimiter
	KindLiteral
	KindWhitespace
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindIdentifier:
		return "Identifier"
	case KindKeyword:
		return "Keyword"
	case KindOperator:
		return "Operator"
	case KindDelimiter:
		return "Delimiter"
	case KindLiteral:
		return "Literal"
	case KindWhitespace:
		return "Whitespace"
	case KindUnknown:
		return "Unknown"
	default:
		return "Invalid"
	}
}

// Token is implemented by every per-language token variant.
type Token interface {
	Kind() Kind
}

// OperatorID and DelimiterID are the language-defined enumerations
// carried by the generic Operator and Delimiter shapes below
// (EndOfInput has no language-specific data).
type OperatorID int

type DelimiterID int

// Operator is a language-defined operator token, e.g. Plus, Assign,
// UnsignedShiftRight.
type Operator struct {
	ID  OperatorID
	Lit string
}

func (Operator) Kind() Kind { return KindOperator }

// Delimiter is a language-defined delimiter token. Whitespace and
// NewLine are always present in every language's enumeration (spec.md §3).
type Delimiter struct {
	ID  DelimiterID
	Lit string
}

func (d Delimiter) Kind() Kind {
	switch d.Lit {
	case " ", "\t":
		return KindWhitespace
	case "\n":
		return KindWhitespace
	default:
		return KindDelimiter
	}
}

// EndOfInput marks the end of the token stream.
type EndOfInput struct{}

func (EndOfInput) Kind() Kind { return KindDelimiter }

// NumberBase enumerates the bases a numeric literal may be lexed in.
type NumberBase int

const (
	Decimal NumberBase = iota
	Hexadecimal
	Octal
	Binary
)

func (b NumberBase) String() string {
	switch b {
	case Decimal:
		return "Decimal"
	case Hexadecimal:
		return "Hexadecimal"
	case Octal:
		return "Octal"
	case Binary:
		return "Binary"
	default:
		return "Invalid"
	}
}
