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

package java_test

import (
	"testing"

	"github.com/syntx-project/syntx/internal/lang/java"
	"github.com/syntx-project/syntx/internal/state"
	"github.com/syntx-project/syntx/internal/token"
)

func TestInferTokenNumericClassification(t *testing.T) {
	st := state.New()
	for _, tt := range []struct {
		lexeme string
		want   token.Token
	}{
		{"42", java.Integer{Lexeme: "42", Base: token.Decimal}},
		{"0xFF", java.Integer{Lexeme: "0xFF", Base: token.Hexadecimal}},
		{"0b101", java.Integer{Lexeme: "0b101", Base: token.Binary}},
		{"0o17", java.Integer{Lexeme: "0o17", Base: token.Octal}},
		{"3.14", java.Float{Value: 3.14}},
		{"1_000", java.Integer{Lexeme: "1_000", Base: token.Decimal}},
		{"1e10", java.Float{Value: 1e10}},
	} {
		got, ok := java.TokenSet{}.InferToken(tt.lexeme, st)
		if !ok {
			t.Errorf("InferToken(%q) = (_, false), want ok", tt.lexeme)
			continue
		}
		if got != tt.want {
			t.Errorf("InferToken(%q) = %#v, want %#v", tt.lexeme, got, tt.want)
		}
	}
}

func TestInferTokenKeyword(t *testing.T) {
	st := state.New()
	got, ok := java.TokenSet{}.InferToken("while", st)
	if !ok || got != (java.Keyword{ID: java.KeywordWhile}) {
		t.Errorf("InferToken(%q) = %#v, %v, want Keyword(while)", "while", got, ok)
	}
}

func TestInferTokenImportSwallowedAndSetsReadInclude(t *testing.T) {
	st := state.New()
	got, ok := java.TokenSet{}.InferToken("import", st)
	if ok {
		t.Errorf("InferToken(import) = %#v, true, want (nil, false)", got)
	}
	if !st.ReadInclude {
		t.Error("InferToken(import) did not set state.ReadInclude")
	}
}

func TestInferTokenUnknownIsScopeAware(t *testing.T) {
	outer := state.New()
	inner := state.New()
	inner.BraceLevel = 1

	gotOuter, _ := java.TokenSet{}.InferToken("widget", outer)
	gotInner, _ := java.TokenSet{}.InferToken("widget", inner)

	if gotOuter.(java.Unknown).Hash == gotInner.(java.Unknown).Hash {
		t.Error("same identifier at different brace depths hashed equally")
	}
}

func TestInferTokenLiteralContextOverridesClassification(t *testing.T) {
	st := state.New()
	st.InString = true
	got, ok := java.TokenSet{}.InferToken("while", st)
	if !ok || got != (java.StringLiteral{Text: "while"}) {
		t.Errorf("InferToken(%q) inside a string = %#v, want StringLiteral", "while", got)
	}
}
