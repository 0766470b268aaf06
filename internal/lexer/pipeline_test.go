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

package lexer_test

import (
	"testing"

	"github.com/kylelemons/godebug/pretty"

	"github.com/syntx-project/syntx/internal/lang/java"
	"github.com/syntx-project/syntx/internal/lexer"
	"github.com/syntx-project/syntx/internal/token"
)

// TestPipelineFlushesAtBatchSize checks spec.md §4.5: a batch is sent
// once it reaches BatchSize tokens, without waiting for an explicit
// Flush.
func TestPipelineFlushesAtBatchSize(t *testing.T) {
	out := make(chan []token.Token, 4)
	p := lexer.NewPipeline(out)

	for i := 0; i < lexer.BatchSize; i++ {
		p.Push(java.Keyword{ID: java.KeywordIf})
	}

	select {
	case batch := <-out:
		if len(batch) != lexer.BatchSize {
			t.Errorf("got batch of %d, want %d (auto-flush at threshold)", len(batch), lexer.BatchSize)
		}
	default:
		t.Fatal("expected an auto-flushed batch on reaching BatchSize, channel was empty")
	}
}

// TestPipelineFlushAlwaysSendsEvenEmpty checks the "one final (possibly
// short) batch is transmitted at end-of-input" contract, including the
// degenerate empty-buffer case.
func TestPipelineFlushAlwaysSendsEvenEmpty(t *testing.T) {
	out := make(chan []token.Token, 1)
	p := lexer.NewPipeline(out)
	p.Flush()

	select {
	case batch := <-out:
		if diff := pretty.Compare(batch, []token.Token{}); diff != "" {
			t.Errorf("Flush on an empty buffer mismatch (-got +want):\n%s", diff)
		}
	default:
		t.Fatal("Flush must always send, even with nothing buffered")
	}
}

// TestPipelineSharedChannelPreservesOrder checks that two Pipelines
// wrapping the same channel (as a parent Engine and a nested,
// import-resolved Engine do) interleave whole batches, never splitting
// one Push run's tokens across a shared buffer.
func TestPipelineSharedChannelPreservesOrder(t *testing.T) {
	out := make(chan []token.Token, 2)
	parent := lexer.NewPipeline(out)
	nested := lexer.NewPipeline(parent.Channel())

	parent.Push(java.Keyword{ID: java.KeywordClass})
	parent.Flush()
	nested.Push(java.Keyword{ID: java.KeywordIf})
	nested.Flush()

	first := <-out
	second := <-out
	if len(first) != 1 || first[0].(java.Keyword).ID != java.KeywordClass {
		t.Errorf("first batch = %v, want [class]", first)
	}
	if len(second) != 1 || second[0].(java.Keyword).ID != java.KeywordIf {
		t.Errorf("second batch = %v, want [if]", second)
	}
}
