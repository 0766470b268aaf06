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
	"strings"
)

// ParseError locates a malformed `.stx` line.
type ParseError struct {
	Line int
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("codegen: line %d: %s", e.Line, e.Text)
}

// Parse reads a `.stx` spec file's contents into a Spec, following
// spec.md §4.6's INI-like grammar: bracketed section headers, one
// entry per line, '#'-led comments, blank lines ignored, trailing ';'
// and surrounding '"' stripped from values.
func Parse(src string) (*Spec, error) {
	stx := newSpec()
	cur := sectionNone

	for i, rawLine := range strings.Split(src, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if next, ok := sectionHeader(line); ok {
			cur = next
			continue
		}
		if line == "[grammar]" {
			stx.GrammarSeen = true
			cur = sectionNone
			continue
		}

		switch cur {
		case sectionInfo:
			if key, value, ok := splitOnce(line, '='); ok && strings.TrimSpace(key) == "name" {
				stx.Name = trimValue(value)
			}
		case sectionTokens:
			key, value, ok := splitOnce(line, '=')
			if !ok {
				return nil, &ParseError{i + 1, "expected key = value in [tokens]"}
			}
			stx.Tokens[strings.TrimSpace(key)] = trimValue(value)
		case sectionDelimiters:
			stx.Delimiters = append(stx.Delimiters, strings.TrimSuffix(line, ";"))
		case sectionOperators:
			stx.Operators = append(stx.Operators, strings.TrimSuffix(line, ";"))
		case sectionComments:
			key, value, ok := splitOnce(line, '=')
			if !ok {
				return nil, &ParseError{i + 1, "expected key = value in [comments]"}
			}
			if err := parseCommentEntry(stx, strings.TrimSpace(key), strings.TrimSuffix(strings.TrimSpace(value), ";")); err != nil {
				return nil, &ParseError{i + 1, err.Error()}
			}
		case sectionKeywords:
			stx.Keywords = append(stx.Keywords, strings.TrimSuffix(line, ";"))
		case sectionScapes:
			key, value, ok := splitOnce(line, '=')
			if !ok {
				return nil, &ParseError{i + 1, "expected key = value in [scapes]"}
			}
			stx.Scapes[strings.TrimSpace(key)] = trimQuotes(value)
		case sectionNumbers:
			stx.Numbers = parseBracketedList(strings.TrimSuffix(line, ";"))
		}
	}

	if stx.Name == "" {
		return nil, fmt.Errorf("codegen: [info] name is required")
	}
	return stx, nil
}

func sectionHeader(line string) (section, bool) {
	switch line {
	case "[info]":
		return sectionInfo, true
	case "[tokens]":
		return sectionTokens, true
	case "[delimeters]":
		return sectionDelimiters, true
	case "[operators]":
		return sectionOperators, true
	case "[comments]":
		return sectionComments, true
	case "[keywords]":
		return sectionKeywords, true
	case "[scapes]":
		return sectionScapes, true
	case "[numbers]":
		return sectionNumbers, true
	default:
		return sectionNone, false
	}
}

func splitOnce(s string, sep byte) (key, value string, ok bool) {
	i := strings.IndexByte(s, sep)
	if i < 0 {
		return "", "", false
	}
	return s[:i], s[i+1:], true
}

// trimValue strips surrounding whitespace, a trailing ';', and
// surrounding '"' from a [tokens]/[info] value.
func trimValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ";")
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"`)
	return s
}

// trimQuotes mirrors original_source's trim_quotes: trailing ';' then
// a single layer of surrounding '"'.
func trimQuotes(s string) string {
	s = strings.TrimLeft(s, " \t")
	s = strings.TrimSuffix(s, ";")
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return s
}

func parseCommentEntry(stx *Spec, key, value string) error {
	switch key {
	case "line":
		lit := trimQuotes(strings.TrimSpace(value))
		if len(lit) != 2 {
			return fmt.Errorf("[comments] line must be exactly two characters, got %q", lit)
		}
		stx.Comments.Line = [2]byte{lit[0], lit[1]}
	case "block":
		parts := parseBracketedList(value)
		if len(parts) != 2 || len(parts[0]) == 0 || len(parts[1]) == 0 {
			return fmt.Errorf("[comments] block must be a two-element list, got %q", value)
		}
		stx.Comments.Block = [2]byte{parts[0][0], parts[1][0]}
	default:
		return fmt.Errorf("unrecognized [comments] key %q", key)
	}
	return nil
}

// parseBracketedList parses `[ "a", "b" ]`-style values into their
// unquoted elements.
func parseBracketedList(value string) []string {
	value = strings.TrimSpace(value)
	value = strings.Trim(value, "[]")
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.Trim(strings.TrimSpace(p), `"`))
	}
	return out
}
