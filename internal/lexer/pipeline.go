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

package lexer

import "github.com/syntx-project/syntx/internal/token"

// BatchSize is the number of tokens accumulated before a batch is sent
// down the pipeline channel — spec.md §4.5's Batch Pipeline (C7).
const BatchSize = 2048

// Pipeline accumulates tokens into fixed-size batches and sends them
// down a shared channel. Each Engine owns its own Pipeline (so that
// nested engines spawned by import resolution keep independent
// buffers), but every Pipeline spawned for one top-level tokenize call
// shares the same underlying channel, which preserves overall token
// ordering. Grounded on goyang's `items chan *token` lexer field,
// generalized from a single unbuffered item to a buffered batch per
// spec.md's batching requirement.
type Pipeline struct {
	out chan<- []token.Token
	buf []token.Token
}

// NewPipeline wraps out, an already-constructed channel, in a fresh
// batch accumulator.
func NewPipeline(out chan<- []token.Token) *Pipeline {
	return &Pipeline{out: out, buf: make([]token.Token, 0, BatchSize)}
}

// Push appends tok to the current batch, flushing immediately once the
// batch reaches BatchSize.
func (p *Pipeline) Push(tok token.Token) {
	p.buf = append(p.buf, tok)
	if len(p.buf) >= BatchSize {
		p.Flush()
	}
}

// Channel returns the underlying output channel, so a nested Engine
// spawned by import resolution can share it.
func (p *Pipeline) Channel() chan<- []token.Token { return p.out }

// Flush sends the current batch — even if empty — and resets the
// buffer. Called both mid-stream, immediately before an import
// delegates to a nested Engine (so the caller's tokens precede the
// imported file's in channel order), and once more at end-of-input.
func (p *Pipeline) Flush() {
	p.out <- p.buf
	p.buf = make([]token.Token, 0, BatchSize)
}
