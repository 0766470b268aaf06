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

// The three templates below render the Go rendering of
// original_source/src/codegen/{tokenset,delimeted,lexable}.rs's
// writeln!-based generation, using pongo2 instead of raw string
// concatenation. Each produces one compilable Go source file for
// package {{ name }}, gofmt'd by Generate before being written out.

const tokensetTemplate = `// Code generated by syntx's codegen package from a .stx spec. DO NOT EDIT.
package {{ name }}

import "github.com/syntx-project/syntx/internal/token"

type TokenSet struct{}

type Token interface {
	token.Token
	{{ name }}Token()
}

type base struct{}

func (base) {{ name }}Token() {}

type Operator struct {
	base
	ID OperatorID
}

func (Operator) Kind() token.Kind { return token.KindOperator }

type Delimiter struct {
	base
	ID DelimiterID
}

func (d Delimiter) Kind() token.Kind {
	if d.ID == DelimiterWhitespace || d.ID == DelimiterNewLine {
		return token.KindWhitespace
	}
	return token.KindDelimiter
}

type Keyword struct {
	base
	ID KeywordID
}

func (Keyword) Kind() token.Kind { return token.KindKeyword }

type StringLiteral struct {
	base
	Text string
}

func (StringLiteral) Kind() token.Kind { return token.KindLiteral }

type CharLiteral struct {
	base
	Text string
}

func (CharLiteral) Kind() token.Kind { return token.KindLiteral }

type Integer struct {
	base
	Lexeme string
	Base   token.NumberBase
}

func (Integer) Kind() token.Kind { return token.KindLiteral }

type Float struct {
	base
	Value float64
}

func (Float) Kind() token.Kind { return token.KindLiteral }

type Unknown struct {
	base
	Hash uint64
}

func (Unknown) Kind() token.Kind { return token.KindUnknown }

type EndOfInput struct{ base }

func (EndOfInput) Kind() token.Kind { return token.KindDelimiter }

type OperatorID int

const (
	_ OperatorID = iota
{% for op in operators %}	Op{{ op.Name }}
{% endfor %})

type DelimiterID int

const (
	_ DelimiterID = iota
{% for del in delimiters %}	Delimiter{{ del.Name }}
{% endfor %}	DelimiterWhitespace
	DelimiterNewLine
)

type KeywordID int

const (
	_ KeywordID = iota
{% for kw in keywords %}	Keyword{{ kw.Exported }}
{% endfor %})
`

const tablesTemplate = `{% autoescape off %}// Code generated by syntx's codegen package from a .stx spec. DO NOT EDIT.
package {{ name }}

var operators = map[string]OperatorID{
{% for op in operators %}	{{ op.Quoted }}: Op{{ op.Name }},
{% endfor %}}

var operatorLeadBytes = map[byte]bool{
{% for b in operatorLeadBytes %}	{{ b }}: true,
{% endfor %}}

var delimiterBytes = map[byte]bool{
{% for b in delimiterByteLiterals %}	{{ b }}: true,
{% endfor %}}

var delimiterIDs = map[string]DelimiterID{
{% for del in delimiters %}	{{ del.Quoted }}: Delimiter{{ del.Name }},
{% endfor %}}

var escapes = map[rune]rune{
{% for s in scapes %}	{{ s.From }}: {{ s.To }},
{% endfor %}}

var numericExtra = map[rune]bool{
{% for n in numbers %}	{{ n }}: true,
{% endfor %}}

func (TokenSet) IsDelimiter(b byte) bool { return delimiterBytes[b] }

func (TokenSet) IsOperatorPrefix(b byte) bool { return operatorLeadBytes[b] }

func (TokenSet) IsOperator(s []byte) bool {
	_, ok := operators[string(s)]
	return ok
}

func (TokenSet) MayTriggerLineComment(ch rune) (int, bool) {
	if ch == {{ lineCommentTrigger }} {
		return 2, true
	}
	return 0, false
}

func (TokenSet) TriggerCommentLine(buf []rune) bool {
	return len(buf) == 2 && buf[0] == {{ lineCommentTrigger }} && buf[1] == {{ lineCommentSecond }}
}

func (TokenSet) MayTriggerBlockComment(ch rune) ([]rune, int, bool) {
	if ch == {{ blockCommentStart }} {
		return []rune{ {{ blockCommentEnd }}, {{ blockCommentStart }} }, 2, true
	}
	return nil, 0, false
}

func (TokenSet) TriggerCommentBlock(buf []rune) bool {
	return len(buf) == 2 && buf[0] == {{ blockCommentStart }} && buf[1] == {{ blockCommentEnd }}
}

func (TokenSet) AllowedNumberChar(ch rune) bool {
	if ch >= '0' && ch <= '9' || ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' {
		return true
	}
	return numericExtra[ch]
}

func (TokenSet) AllowedUnicodeEscape(ch rune) (int, bool) {
	switch ch {
	case 'u':
		return 4, true
	case 'U':
		return 8, true
	default:
		return 0, false
	}
}

func (TokenSet) Escape(ch rune) (rune, bool) {
	r, ok := escapes[ch]
	return r, ok
}
{% endautoescape %}`

const inferTemplate = `{% autoescape off %}// Code generated by syntx's codegen package from a .stx spec. DO NOT EDIT.
package {{ name }}

import (
	"strconv"
	"strings"

	"github.com/syntx-project/syntx/internal/lexer"
	"github.com/syntx-project/syntx/internal/state"
	"github.com/syntx-project/syntx/internal/token"
)

var keywords = map[string]KeywordID{
{% for kw in keywords %}	{{ kw.Quoted }}: Keyword{{ kw.Exported }},
{% endfor %}}

func (TokenSet) InferToken(lexeme string, st *state.State) (token.Token, bool) {
	if st.InChar {
		return CharLiteral{Text: lexeme}, true
	}
	if st.InString {
		return StringLiteral{Text: lexeme}, true
	}
	if id, ok := operators[lexeme]; ok {
		return Operator{ID: id}, true
	}
	if len(lexeme) > 0 && delimiterBytes[lexeme[0]] {
		if id, ok := delimiterIDs[lexeme]; ok {
			return Delimiter{ID: id}, true
		}
		return Unknown{Hash: lexer.Normalize([]byte(lexeme), st.BraceLevel)}, true
	}
	if id, ok := keywords[lexeme]; ok {
		return Keyword{ID: id}, true
	}
	if tok, ok := classifyNumber(lexeme); ok {
		return tok, true
	}
	return Unknown{Hash: lexer.Normalize([]byte(lexeme), st.BraceLevel)}, true
}

func classifyNumber(raw string) (token.Token, bool) {
	isFloat := false
	allDigits := true
	for _, b := range []byte(raw) {
		switch {
		case b >= '0' && b <= '9':
		case b == '.' || b == 'e' || b == 'E':
			isFloat = true
		case b == '_':
		default:
			allDigits = false
		}
		if !allDigits {
			break
		}
	}
	if isFloat {
		cleaned := strings.ReplaceAll(raw, "_", "")
		if f, err := strconv.ParseFloat(cleaned, 64); err == nil {
			return Float{Value: f}, true
		}
		return nil, false
	}
	if allDigits {
		return Integer{Lexeme: raw, Base: token.Decimal}, true
	}
	switch {
	case strings.HasPrefix(raw, "0x"):
		return Integer{Lexeme: raw, Base: token.Hexadecimal}, true
	case strings.HasPrefix(raw, "0b"):
		return Integer{Lexeme: raw, Base: token.Binary}, true
	case strings.HasPrefix(raw, "0o"):
		return Integer{Lexeme: raw, Base: token.Octal}, true
	}
	return nil, false
}
{% endautoescape %}`
