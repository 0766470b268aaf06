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
	"context"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"github.com/syntx-project/syntx/internal/state"
)

// FS is the filesystem the Import Resolver (C6) reads from. afero.Fs
// satisfies it directly — production code passes afero.NewOsFs(),
// tests pass afero.NewMemMapFs().
type FS = afero.Fs

// resolveContext is shared by every Engine spawned for one top-level
// Tokenize call: the filesystem, search-path roots, and the
// cycle-guard visited set. Sharing it (rather than giving each nested
// Engine its own) is what makes the cycle guard actually guard.
type resolveContext struct {
	fs          FS
	searchPaths []string
	visited     map[string]bool
}

// withSharedResolution attaches an already-constructed resolveContext
// to a nested Engine, so recursive imports see the same visited set
// and search roots as their parent.
func withSharedResolution(rc *resolveContext) Option {
	return func(e *Engine) { e.resolution = rc }
}

// SearchPathFromEnv reads envVar and splits it on the host's path-list
// separator (';' on Windows, ':' elsewhere — os.PathListSeparator
// already encodes this), defaulting to ["."] when unset or empty, per
// spec.md §6 "Environment variables."
func SearchPathFromEnv(envVar string) []string {
	raw := os.Getenv(envVar)
	if raw == "" {
		return []string{"."}
	}
	return strings.Split(raw, string(os.PathListSeparator))
}

// resolveImport implements spec.md §4.4's Import Resolver contract for
// the dotted name captured by eatImportDirective. A wildcard target
// (ending in ".*") enumerates every file of the language's extension
// in the named directory; a plain target is searched for across the
// search-path roots in order, using the first match.
func (e *Engine) resolveImport(ctx context.Context, name string) {
	if name == "" {
		return
	}
	if e.resolution == nil {
		e.logResolveFailure("import resolution disabled: skipping %q", name)
		return
	}
	if e.lang.IsStdlib(name) {
		return
	}
	rc := e.resolution
	if rc.visited[name] {
		e.logResolveFailure("import cycle detected at %q: skipping", name)
		return
	}
	rc.visited[name] = true

	if strings.HasSuffix(name, ".*") {
		e.resolveWildcard(ctx, strings.TrimSuffix(name, ".*"), rc)
		return
	}
	e.resolveSingle(ctx, name, rc)
}

func (e *Engine) resolveSingle(ctx context.Context, name string, rc *resolveContext) {
	relPath := dottedNameToPath(name, e.lang.Extension())
	for _, root := range rc.searchPaths {
		full := path.Join(root, relPath)
		ok, err := afero.Exists(rc.fs, full)
		if err != nil {
			e.st.AddError(state.ErrIOFailureDuringResolution, "resolving %q: %v", name, err)
			e.logResolveFailure("io failure resolving %q: %v", name, err)
			continue
		}
		if !ok {
			continue
		}
		e.runNested(ctx, full, rc)
		return
	}
	e.logResolveFailure("import %q not found on search path %v", name, rc.searchPaths)
}

func (e *Engine) resolveWildcard(ctx context.Context, dirName string, rc *resolveContext) {
	dirRel := strings.ReplaceAll(dirName, ".", "/")
	ext := "." + e.lang.Extension()
	for _, root := range rc.searchPaths {
		dir := path.Join(root, dirRel)
		entries, err := afero.ReadDir(rc.fs, dir)
		if err != nil {
			continue
		}
		names := make([]string, 0, len(entries))
		for _, ent := range entries {
			if !ent.IsDir() && strings.HasSuffix(ent.Name(), ext) {
				names = append(names, ent.Name())
			}
		}
		sort.Strings(names)
		for _, n := range names {
			e.runNested(ctx, path.Join(dir, n), rc)
		}
		return
	}
	e.logResolveFailure("wildcard import %q.* not found on search path %v", dirName, rc.searchPaths)
}

// runNested reads a source file into memory, instantiates a fresh
// Engine over its contents sharing the caller's pipeline channel and
// resolveContext, and runs it to completion before returning — spec.md
// §4.4's "run it to completion before continuing to the next file."
func (e *Engine) runNested(ctx context.Context, full string, rc *resolveContext) {
	content, err := afero.ReadFile(rc.fs, full)
	if err != nil {
		e.st.AddError(state.ErrIOFailureDuringResolution, "reading %q: %v", full, err)
		e.logResolveFailure("io failure reading %q: %v", full, err)
		return
	}
	nested := NewEngine(string(content), e.lang, e.pipeline.Channel(),
		WithErrOut(e.errOut), withSharedResolution(rc))
	nested.Tokenize(ctx)
}

func dottedNameToPath(name, ext string) string {
	return strings.ReplaceAll(name, ".", "/") + "." + ext
}
