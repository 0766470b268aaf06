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

// Package java is the Java(-family) Language Tables (C1), Token Model
// variants (C2), and import policy for the syntx lexer engine.
//
// It is hand-written here in the same shape internal/codegen emits for
// a language from a .stx spec file — see testdata/java.stx and
// internal/codegen for the generator. Unlike generated output, it also
// implements lang.ImportPolicy and has its own enumeration layout
// (e.g. a DelimiterTab id). Grounded on
// original_source/src/langs/java/{tokenset,delimiters,inference,
// import_resolution}.rs.
package java

import "github.com/syntx-project/syntx/internal/token"

// TokenSet is the zero-size receiver type implementing lang.Language
// for Java. It carries no state of its own — all tables are pure
// functions/switches over the enumerations below.
type TokenSet struct{}

// Token is the Java token variant, matching spec.md §3's Token shapes.
type Token interface {
	token.Token
	javaToken()
}

type base struct{}

func (base) javaToken() {}

// Operator is a Java operator token.
type Operator struct {
	base
	ID OperatorID
}

func (Operator) Kind() token.Kind { return token.KindOperator }

// Delimiter is a Java delimiter token.
type Delimiter struct {
	base
	ID DelimiterID
}

func (d Delimiter) Kind() token.Kind {
	if d.ID == DelimiterWhitespace || d.ID == DelimiterTab || d.ID == DelimiterNewLine {
		return token.KindWhitespace
	}
	return token.KindDelimiter
}

// Keyword is a Java reserved-word token.
type Keyword struct {
	base
	ID KeywordID
}

func (Keyword) Kind() token.Kind { return token.KindKeyword }

// StringLiteral is a decoded (escape-resolved) string literal.
type StringLiteral struct {
	base
	Text string
}

func (StringLiteral) Kind() token.Kind { return token.KindLiteral }

// CharLiteral is a decoded char literal. Usually exactly one character,
// but may hold a multi-character fallback sequence on malformed escapes
// (spec.md §3).
type CharLiteral struct {
	base
	Text string
}

func (CharLiteral) Kind() token.Kind { return token.KindLiteral }

// Integer is a raw integer lexeme plus its base.
type Integer struct {
	base
	Lexeme string
	Base   token.NumberBase
}

func (Integer) Kind() token.Kind { return token.KindLiteral }

// Float is a parsed double-precision numeric literal.
type Float struct {
	base
	Value float64
}

func (Float) Kind() token.Kind { return token.KindLiteral }

// Unknown is any user-defined name, identified only by its scope-aware
// hash (internal/lexer.Normalize) — see spec.md §4.3.
type Unknown struct {
	base
	Hash uint64
}

func (Unknown) Kind() token.Kind { return token.KindUnknown }

// EndOfInput marks the end of the token stream.
type EndOfInput struct{ base }

func (EndOfInput) Kind() token.Kind { return token.KindDelimiter }

// OperatorID enumerates Java's finite operator set.
type OperatorID int

const (
	OpDot OperatorID = iota
	OpAt
	OpQmark
	OpAssign
	OpEq
	OpNot
	OpNeq
	OpGeq
	OpLeq
	OpGt
	OpLt
	OpPlus
	OpMinus
	OpPlusEq
	OpMinusEq
	OpDiv
	OpMod
	OpMul
	OpDivEq
	OpModEq
	OpMulEq
	OpBitShiftLeft
	OpBitShiftRight
	OpUBitShiftRight
	OpBitShiftLeftEq
	OpBitShiftRightEq
	OpUBitShiftRightEq
	OpIncrement
	OpDecrement
	OpAnd
	OpOr
	OpAndEq
	OpOrEq
	OpXorEq
	OpBitAnd
	OpBitOr
	OpBitXor
	OpBitAndEq
	OpBitOrEq
	OpBitXorEq
	OpBitCompl
	OpInstanceof
)

// DelimiterID enumerates Java's finite delimiter set. Whitespace and
// NewLine are always present, per spec.md §3.
type DelimiterID int

const (
	DelimiterLParen DelimiterID = iota
	DelimiterRParen
	DelimiterLBracket
	DelimiterRBracket
	DelimiterLBrace
	DelimiterRBrace
	DelimiterComma
	DelimiterColon
	DelimiterSemicolon
	DelimiterWhitespace
	DelimiterTab
	DelimiterNewLine
)

// KeywordID enumerates Java's reserved words.
type KeywordID int

const (
	KeywordAbstract KeywordID = iota
	KeywordContinue
	KeywordFor
	KeywordNew
	KeywordSwitch
	KeywordAssert
	KeywordDefault
	KeywordGoto
	KeywordPackage
	KeywordSynchronized
	KeywordBoolean
	KeywordDo
	KeywordIf
	KeywordPrivate
	KeywordThis
	KeywordBreak
	KeywordDouble
	KeywordImplements
	KeywordProtected
	KeywordThrow
	KeywordByte
	KeywordElse
	// KeywordImport exists for completeness but is never produced by
	// InferToken: the "import" lexeme instead sets state.ReadInclude
	// and is swallowed, per spec.md §4.2 item 5.
	KeywordImport
	KeywordPublic
	KeywordThrows
	KeywordCase
	KeywordEnum
	KeywordInstanceof
	KeywordReturn
	KeywordTransient
	KeywordCatch
	KeywordExtends
	KeywordInt
	KeywordShort
	KeywordTry
	KeywordChar
	KeywordFinal
	KeywordInterface
	KeywordStatic
	KeywordVoid
	KeywordClass
	KeywordFinally
	KeywordLong
	KeywordStrictfp
	KeywordVolatile
	KeywordConst
	KeywordFloat
	KeywordNative
	KeywordSuper
	KeywordWhile
)
