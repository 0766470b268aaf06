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

// Package grammar is the shape of an LR-style parser and an
// arena-free grammar tree sitting above the token stream this module
// produces. Neither is wired to anything: the lexer's Token Model
// §1 explicitly scopes grammar construction out, and the `[grammar]`
// section of the .stx format is reserved but unhandled by
// internal/codegen (see DESIGN.md). This package exists only so the
// shape is visible for a future parser to build against — nothing in
// this module constructs a Parser or a Tree.
//
// Grounded on original_source/src/engine/parser.rs (the Action enum
// and Parser's action/goto tables) and
// original_source/src/structures/hash_tree.rs (the Node/Tree shape,
// here without the arena allocator or parent-side RefCell plumbing —
// nothing exercises it, so the Go rendering stays minimal).
package grammar

import "github.com/syntx-project/syntx/internal/token"

// Action is one LR parser table entry.
type Action int

const (
	ActionError Action = iota
	ActionShift
	ActionAccept
	ActionReduce
)

// stateKey indexes the action/goto tables by parser state and
// lookahead token kind.
type stateKey struct {
	State     int
	Lookahead token.Kind
}

// Parser is an unconstructed LR(1)-style table-driven parser shape.
// Nothing in this module populates or runs it.
type Parser struct {
	actionTable map[stateKey]Action
	gotoTable   map[stateKey]int
}

// NewParser returns an empty Parser with no table entries.
func NewParser() *Parser {
	return &Parser{
		actionTable: map[stateKey]Action{},
		gotoTable:   map[stateKey]int{},
	}
}

// Node is one grammar-tree node, keyed by an arbitrary comparable
// label (typically a grammar symbol name).
type Node struct {
	Label    string
	Children []*Node
	Token    token.Token
}

// Tree is a grammar tree rooted at Root, without the bump-allocator
// arena or cursor/backtracking stack the original structure describes
// — nothing here does the traversal that would need them.
type Tree struct {
	Root *Node
}

// NewTree returns a Tree with an empty, unlabeled root.
func NewTree() *Tree {
	return &Tree{Root: &Node{}}
}
