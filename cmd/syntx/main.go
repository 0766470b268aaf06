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

// Program syntx lexes a source file (or standard input) and either
// prints its tokens, benchmarks the lex, or builds a new language's
// Go sources from a .stx spec.
//
// Usage:
//
//	syntx --bench FILE
//	syntx --tokens FILE
//	syntx --build FILE.stx
//	syntx                   (reads FILE from standard input)
//
// Grounded on original_source/src/main.rs's four-subcommand dispatch,
// rendered in the style of openconfig-goyang/yang.go's getopt-driven
// argument handling.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pborman/getopt"
	"github.com/spf13/afero"

	"github.com/syntx-project/syntx/internal/codegen"
	"github.com/syntx-project/syntx/internal/lang/java"
	"github.com/syntx-project/syntx/internal/lexer"
	"github.com/syntx-project/syntx/internal/token"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		runStdin()
		return 0
	}

	var bench, tokens, build string
	var help bool
	getopt.StringVarLong(&bench, "bench", 0, "lex FILE and report benchmark counters", "FILE")
	getopt.StringVarLong(&tokens, "tokens", 0, "lex FILE and print each token to standard error", "FILE")
	getopt.StringVarLong(&build, "build", 0, "run the code generator on FILE.stx", "FILE.stx")
	getopt.BoolVarLong(&help, "help", '?', "display help")
	getopt.SetParameters("")

	if err := getopt.Getopt(func(o getopt.Option) bool { return true }); err != nil {
		fmt.Fprintln(os.Stderr, err)
		getopt.PrintUsage(os.Stderr)
		return 1
	}
	if help {
		getopt.PrintUsage(os.Stderr)
		return 0
	}

	switch {
	case bench != "":
		return runBenchmark(bench)
	case tokens != "":
		return printTokens(tokens)
	case build != "":
		return runBuild(build)
	default:
		fmt.Fprintf(os.Stderr, "Unknown mode: %s\n", strings.Join(args, " "))
		return 1
	}
}

func runStdin() {
	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	drainAndPrint(lexAll(string(src)))
}

func printTokens(filename string) int {
	src, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	drainAndPrint(lexAll(string(src)))
	return 0
}

func drainAndPrint(batches <-chan []token.Token) {
	for batch := range batches {
		for _, tok := range batch {
			fmt.Fprintf(os.Stderr, "%#v\n", tok)
		}
	}
}

func lexAll(src string) <-chan []token.Token {
	out := make(chan []token.Token)
	go func() {
		defer close(out)
		e := lexer.NewEngine(src, java.TokenSet{}, out,
			lexer.WithResolution(afero.NewOsFs(), lexer.SearchPathFromEnv(java.TokenSet{}.SearchPathEnvVar())))
		e.Tokenize(context.Background())
	}()
	return out
}

func runBenchmark(filename string) int {
	src, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	startMem := residentMemoryKB()
	start := time.Now()

	tokenCount := 0
	for batch := range lexAll(string(src)) {
		tokenCount += len(batch)
	}

	elapsed := time.Since(start).Seconds()
	usedMB := float64(residentMemoryKB()-startMem) / 1024.0
	lineCount := strings.Count(string(src), "\n") + 1

	fmt.Printf("========== Benchmark Results for %s ==========\n", filename)
	fmt.Printf("Lines        : %d\n", lineCount)
	fmt.Printf("Tokens       : %d\n", tokenCount)
	fmt.Printf("Time         : %.4f s\n", elapsed)
	fmt.Printf("Memory       : %.2f MB\n", usedMB)
	if elapsed > 0 {
		fmt.Printf("Lines/sec    : %d\n", int(float64(lineCount)/elapsed))
		fmt.Printf("Tokens/sec   : %d\n", int(float64(tokenCount)/elapsed))
	}
	return 0
}

func runBuild(filename string) int {
	src, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	stx, err := codegen.Parse(string(src))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := codegen.WriteTo(afero.NewOsFs(), "langs", stx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// residentMemoryKB reads the process's resident set size from
// /proc/self/statm (Linux-only, matching the benchmark's original
// procfs-based counter; unreadable platforms just report zero delta).
func residentMemoryKB() int64 {
	f, err := os.Open("/proc/self/statm")
	if err != nil {
		return 0
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return 0
	}
	fields := strings.Fields(scanner.Text())
	if len(fields) < 2 {
		return 0
	}
	pages, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return 0
	}
	return pages * int64(os.Getpagesize()) / 1024
}
