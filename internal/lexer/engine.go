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

// Package lexer is the Lexer Engine (C4), Identifier Normalizer (C5),
// Import Resolver (C6), and Batch Pipeline (C7). It is generic over a
// lang.Language capability bundle — it never imports a concrete
// language subpackage (internal/lang/java and friends import it
// instead, for the Normalize helper), which keeps the dependency
// graph acyclic.
//
// Grounded on openconfig-goyang/pkg/yang/lex.go's cursor/peek/bump
// primitives, generalized per original_source/src/engine/lexer.rs's
// dispatch-priority tokenize() loop.
package lexer

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode"

	"github.com/syntx-project/syntx/internal/lang"
	"github.com/syntx-project/syntx/internal/state"
	"github.com/syntx-project/syntx/internal/token"
)

// Engine tokenizes one source buffer for a given Language, pushing
// tokens through a Pipeline and, on import directives, recursing into
// a nested Engine that shares the same underlying channel.
type Engine struct {
	lang     lang.Language
	cur      *cursor
	st       *state.State
	pipeline *Pipeline
	errOut   io.Writer

	// resolution carries the parts of an import resolve that must be
	// shared across every Engine spawned for one top-level tokenize
	// call: the filesystem, the visited-set cycle guard, and the
	// output channel itself. Nil for an Engine constructed without
	// import support (tests that don't exercise resolution may leave
	// it nil; resolveImport then logs the directive and skips it).
	resolution *resolveContext
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithErrOut overrides the writer resolver I/O failures and other
// degrade-path notices are logged to. Defaults to os.Stderr.
func WithErrOut(w io.Writer) Option {
	return func(e *Engine) { e.errOut = w }
}

// WithResolution enables the Import Resolver (C6) for this Engine,
// supplying the filesystem to search and the search-path roots to
// consult. Without this option, an import directive is logged and
// skipped, producing no tokens for it.
func WithResolution(fsys FS, searchPaths []string) Option {
	return func(e *Engine) {
		e.resolution = &resolveContext{
			fs:          fsys,
			searchPaths: searchPaths,
			visited:     map[string]bool{},
		}
	}
}

// NewEngine constructs an Engine over input for language, sending
// tokens in BatchSize batches down out.
func NewEngine(input string, language lang.Language, out chan<- []token.Token, opts ...Option) *Engine {
	e := &Engine{
		lang:     language,
		cur:      newCursor(input),
		st:       state.New(),
		pipeline: NewPipeline(out),
		errOut:   os.Stderr,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State exposes the engine's mutable lexer state — callers may inspect
// state.Errors after Tokenize returns.
func (e *Engine) State() *state.State { return e.st }

// Tokenize runs the main dispatch loop to completion (spec.md §4.1).
// It consumes every input character exactly once, emits tokens in
// source order, and always flushes a final batch before returning —
// the Go rendering of "signal end-of-input by closing the sink": the
// caller closes out once every top-level and nested Tokenize call has
// returned.
//
// Cancellation is cooperative: ctx is checked once per dispatch
// iteration, matching spec.md §5's "cooperative at the granularity of
// the tokenize loop." Batch sends do not observe ctx: a send blocks
// until the consumer receives it, cancelled or not.
func (e *Engine) Tokenize(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			break
		}
		ch, ok := e.peek()
		if !ok {
			break
		}

		if n, ok := e.lang.MayTriggerLineComment(ch); ok {
			if e.lang.TriggerCommentLine(e.cur.peekRun(n)) {
				e.eatCommentLine()
				continue
			}
		}
		if endSeq, n, ok := e.lang.MayTriggerBlockComment(ch); ok {
			if e.lang.TriggerCommentBlock(e.cur.peekRun(n)) {
				e.eatCommentBlock(endSeq)
				continue
			}
		}

		switch {
		case ch == '"' && !e.st.InChar:
			e.eatString()
		case ch == '\'' && !e.st.InString:
			e.eatChar()
		case ch == '{' || ch == '}':
			e.eatBrace(ch)
		case ch == '(' || ch == ')':
			e.eatParen(ch)
		case ch < 128 && e.lang.IsOperatorPrefix(byte(ch)):
			e.eatOperator(ch)
		case ch < 128 && e.lang.IsDelimiter(byte(ch)):
			e.eatDelimiter(ch)
		case e.st.ReadInclude && unicode.IsLetter(ch):
			e.eatImportDirective(ctx)
		case unicode.IsLetter(ch):
			e.eatIdentifier()
		case unicode.IsDigit(ch):
			e.eatNumber(ch)
		default:
			e.bump(ch)
		}
	}
	e.pipeline.Flush()
}

func (e *Engine) peek() (rune, bool) { return e.cur.peek() }

// bump consumes ch: advances the cursor and routes the rune through
// state.State.Bump for position bookkeeping. This is the engine's
// sole advancement primitive — every eater must call it for every
// character consumed.
func (e *Engine) bump(ch rune) {
	e.cur.advance()
	e.st.Bump(ch)
}

func (e *Engine) send(tok token.Token) {
	if tok != nil {
		e.pipeline.Push(tok)
	}
}

func (e *Engine) emitInferred(lexeme string) {
	if tok, ok := e.lang.InferToken(lexeme, e.st); ok {
		e.send(tok)
	}
}

// eatCommentLine consumes from a confirmed line-comment start through
// (and including) the terminating newline, or end-of-input.
func (e *Engine) eatCommentLine() {
	for {
		ch, ok := e.peek()
		if !ok {
			return
		}
		e.bump(ch)
		if ch == '\n' {
			return
		}
	}
}

// eatCommentBlock consumes from a confirmed block-comment start
// through the first occurrence of endSeq — block comments do not
// nest (spec.md §4.1 item 2, §8 "no comment nesting").
func (e *Engine) eatCommentBlock(endSeq []rune) {
	for {
		ch, ok := e.peek()
		if !ok {
			e.st.AddError(state.ErrUnterminatedBlockComment, "unterminated block comment")
			return
		}
		if matchesAt(e.cur, endSeq) {
			for range endSeq {
				c, _ := e.peek()
				e.bump(c)
			}
			return
		}
		e.bump(ch)
	}
}

func matchesAt(c *cursor, seq []rune) bool {
	for i, want := range seq {
		got, ok := c.peekAt(i)
		if !ok || got != want {
			return false
		}
	}
	return true
}

// eatBrace adjusts brace_level and emits the corresponding delimiter.
func (e *Engine) eatBrace(ch rune) {
	if ch == '{' {
		e.st.BraceLevel++
	} else {
		e.st.BraceLevel--
		if e.st.BraceLevel < 0 {
			e.st.BraceLevel = 0
		}
	}
	e.emitInferred(string(ch))
	e.bump(ch)
}

// eatParen adjusts paren_level/in_paren and emits the corresponding
// delimiter. A closing paren with no matching open is reported as
// UnbalancedParenthesis and clamped to zero, per spec.md §7.
func (e *Engine) eatParen(ch rune) {
	if ch == '(' {
		e.st.ParenLevel++
		e.st.InParen = true
	} else {
		e.st.ParenLevel--
		if e.st.ParenLevel <= 0 {
			if e.st.ParenLevel < 0 {
				e.st.AddError(state.ErrUnbalancedParenthesis, "unmatched ')'")
				e.st.ParenLevel = 0
			}
			e.st.InParen = false
		}
	}
	e.emitInferred(string(ch))
	e.bump(ch)
}

// eatOperator implements the maximal-munch muncher (spec.md §4.1 item
// 8, §8 "Maximal munch"): greedily extend the accumulated lexeme while
// it remains a recognized operator. Requires the language's operator
// set to be closed under non-empty prefixes that are themselves
// operators.
func (e *Engine) eatOperator(first rune) {
	lexeme := []byte(string(first))
	e.bump(first)
	for {
		next, ok := e.peek()
		if !ok {
			break
		}
		candidate := append(append([]byte{}, lexeme...), []byte(string(next))...)
		if !e.lang.IsOperator(candidate) {
			break
		}
		lexeme = candidate
		e.bump(next)
	}
	e.emitInferred(string(lexeme))
}

// eatDelimiter handles spec.md §4.1 item 9. Space and tab are elided;
// a newline is emitted as its own Delimiter token even though it is
// also classified as a delimiter byte — the one carve-out from
// elision (spec.md §8 "Whitespace elision": a whitespace run produces
// no token unless it contains a newline, in which case the newline is
// emitted). skipWhitespaceRun only swallows space/tab, deliberately
// leaving a following newline for the next dispatch iteration to hit
// this same case again — so every newline character, not just the
// first in a run, gets its own token.
func (e *Engine) eatDelimiter(ch rune) {
	if ch == ' ' || ch == '\t' {
		e.skipWhitespaceRun(ch)
		return
	}
	e.emitInferred(string(ch))
	e.skipWhitespaceRun(ch)
}

// skipWhitespaceRun consumes ch (the triggering delimiter byte) and
// then every directly-following space/tab, matching the "go to next
// significant character" primitive of spec.md §4.1 item 9.
func (e *Engine) skipWhitespaceRun(ch rune) {
	e.bump(ch)
	for {
		next, ok := e.peek()
		if !ok || (next != ' ' && next != '\t') {
			return
		}
		e.bump(next)
	}
}

// eatImportDirective implements spec.md §4.1 item 10: consume to
// end-of-line (stripping a trailing ';'), clear read_include, flush
// the pending batch, and delegate to the Import Resolver.
func (e *Engine) eatImportDirective(ctx context.Context) {
	var name []rune
	for {
		ch, ok := e.peek()
		if !ok || ch == '\n' {
			break
		}
		name = append(name, ch)
		e.bump(ch)
	}
	e.st.ReadInclude = false
	e.pipeline.Flush()
	e.resolveImport(ctx, trimImportName(name))
}

func isPlainWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n'
}

func trimImportName(runes []rune) string {
	n := len(runes)
	for n > 0 && isPlainWhitespace(runes[n-1]) {
		n--
	}
	if n > 0 && runes[n-1] == ';' {
		n--
	}
	for n > 0 && isPlainWhitespace(runes[n-1]) {
		n--
	}
	return string(runes[:n])
}

// eatIdentifier consumes an alphabetic run until a delimiter byte
// (spec.md §4.1 item 11).
func (e *Engine) eatIdentifier() {
	var lexeme []rune
	for {
		ch, ok := e.peek()
		if !ok || (ch < 128 && e.lang.IsDelimiter(byte(ch))) || (ch < 128 && e.lang.IsOperatorPrefix(byte(ch))) {
			break
		}
		lexeme = append(lexeme, ch)
		e.bump(ch)
	}
	e.emitInferred(string(lexeme))
}

// eatNumber consumes a numeric run: ASCII alphanumerics plus whatever
// the table additionally allows inside a numeric literal (spec.md
// §4.1 item 12, §3 numeric-extension character set).
func (e *Engine) eatNumber(first rune) {
	lexeme := []rune{first}
	e.bump(first)
	for {
		ch, ok := e.peek()
		if !ok {
			break
		}
		if isASCIIAlnum(ch) || e.lang.AllowedNumberChar(ch) {
			lexeme = append(lexeme, ch)
			e.bump(ch)
			continue
		}
		break
	}
	if tok, ok := e.lang.InferToken(string(lexeme), e.st); ok {
		e.send(tok)
	} else {
		e.st.AddError(state.ErrMalformedNumericLiteral, "unclassifiable numeric literal %q", string(lexeme))
	}
}

func isASCIIAlnum(ch rune) bool {
	return ch >= '0' && ch <= '9' || ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

// eatString consumes a double-quoted string literal, decoding escapes,
// and emits the resulting StringLiteral (spec.md §4.1 item 4).
func (e *Engine) eatString() {
	e.st.InString = true
	opening, _ := e.peek()
	e.bump(opening)
	text, _ := e.eatQuotedBody('"', state.ErrUnterminatedStringLiteral)
	e.emitInferred(text)
	e.st.InString = false
}

// eatChar consumes a single-quoted char literal, decoding escapes, and
// emits the resulting CharLiteral (spec.md §4.1 item 5).
func (e *Engine) eatChar() {
	e.st.InChar = true
	opening, _ := e.peek()
	e.bump(opening)
	text, _ := e.eatQuotedBody('\'', state.ErrUnterminatedCharLiteral)
	e.emitInferred(text)
	e.st.InChar = false
}

// eatQuotedBody consumes characters (decoding escapes per the
// language's escape/unicode-escape tables) until the matching quote or
// end-of-input. An unterminated literal at end-of-input degrades to
// silently closing it there (spec.md §7).
func (e *Engine) eatQuotedBody(quote rune, unterminated state.ErrorKind) (string, bool) {
	var out []rune
	for {
		ch, ok := e.peek()
		if !ok {
			e.st.AddError(unterminated, "unterminated literal at end of input")
			return string(out), false
		}
		if ch == quote {
			e.bump(ch)
			return string(out), true
		}
		if ch != '\\' {
			out = append(out, ch)
			e.bump(ch)
			continue
		}
		e.bump(ch) // consume backslash
		esc, ok := e.peek()
		if !ok {
			e.st.AddError(unterminated, "unterminated escape at end of input")
			return string(out), false
		}
		if esc == 'u' {
			if next, ok := e.cur.peekAt(1); ok && next == '{' {
				e.bump(esc) // 'u'
				brace, _ := e.peek()
				e.bump(brace) // '{'
				out = append(out, e.decodeBraceEscape()...)
				continue
			}
		}
		if digits, ok := e.lang.AllowedUnicodeEscape(esc); ok {
			e.bump(esc)
			out = append(out, e.decodeLegacyUnicodeEscape(digits)...)
			continue
		}
		if replacement, ok := e.lang.Escape(esc); ok {
			e.bump(esc)
			out = append(out, replacement)
			continue
		}
		// Unknown escape letter: push the backslash and the character
		// through literally.
		e.bump(esc)
		out = append(out, '\\', esc)
	}
}

// maxBraceEscapeBody bounds how many characters decodeBraceEscape will
// scan looking for a closing '}' before giving up — large enough for
// any valid code point (at most 6 hex digits) with slack, small enough
// to never swallow the rest of a malformed, unterminated literal.
const maxBraceEscapeBody = 8

// decodeBraceEscape decodes a `\u{...}` escape whose opening `\u{` has
// already been consumed. On success it returns the single decoded rune.
// On a non-hex body, a missing `}`, or a code point ≥ 0x110000, it
// degrades to returning the raw body characters scanned, per spec.md
// §7 and §8's "Unicode fallback" property.
func (e *Engine) decodeBraceEscape() []rune {
	var body []rune
	closed := false
	for len(body) < maxBraceEscapeBody {
		ch, ok := e.peek()
		if !ok || ch == '"' || ch == '\'' || ch == '\n' {
			break
		}
		if ch == '}' {
			e.bump(ch)
			closed = true
			break
		}
		body = append(body, ch)
		e.bump(ch)
	}
	if closed && len(body) > 0 && allHexDigits(body) {
		if v, err := strconv.ParseInt(string(body), 16, 64); err == nil && v < 0x110000 {
			return []rune{rune(v)}
		}
	}
	e.st.AddError(state.ErrMalformedUnicodeEscape, "malformed unicode escape %q", string(body))
	return body
}

// decodeLegacyUnicodeEscape decodes the fixed-width legacy form (e.g.
// \uXXXX, \UXXXXXXXX) whose backslash and escape letter have already
// been consumed. n is the expected hex-digit count. On a short or
// non-hex run it degrades to returning the valid hex prefix actually
// found, per spec.md §7.
func (e *Engine) decodeLegacyUnicodeEscape(n int) []rune {
	window := e.cur.peekRun(n)
	valid := 0
	for valid < len(window) && isHexDigit(window[valid]) {
		valid++
	}
	if valid == n {
		for i := 0; i < n; i++ {
			ch, _ := e.peek()
			e.bump(ch)
		}
		if v, err := strconv.ParseInt(string(window), 16, 64); err == nil {
			return []rune{rune(v)}
		}
	}
	for i := 0; i < valid; i++ {
		ch, _ := e.peek()
		e.bump(ch)
	}
	e.st.AddError(state.ErrMalformedUnicodeEscape, "expected %d hex digits", n)
	return append([]rune{}, window[:valid]...)
}

func allHexDigits(rs []rune) bool {
	for _, r := range rs {
		if !isHexDigit(r) {
			return false
		}
	}
	return true
}

func isHexDigit(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F'
}

func (e *Engine) logResolveFailure(format string, args ...any) {
	fmt.Fprintf(e.errOut, format+"\n", args...)
}
