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

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Normalize computes a 64-bit scope-aware identity for an unknown
// identifier lexeme, per spec.md §4.3: the lexeme bytes concatenated
// with the little-endian 8-byte encoding of the current brace level,
// hashed with a member of the xxHash family. Collisions are tolerated
// by design — callers must treat the result only as an opaque equality
// key, never assume injectivity.
//
// The same name at different brace depths hashes differently
// (approximating lexical shadowing without a symbol table); the same
// name at the same depth always hashes equally.
func Normalize(name []byte, braceLevel int) uint64 {
	buf := make([]byte, len(name)+8)
	n := copy(buf, name)
	binary.LittleEndian.PutUint64(buf[n:], uint64(int64(braceLevel)))
	return xxhash.Sum64(buf)
}
