// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package repl provides a read/resolve/print loop for ECMAScript.
//
// It supports readline-style command editing,
// and interrupts through Control-C.
//
// Each chunk of input is resolved as eval code nested in the scope of
// the previous chunk, so declarations persist across chunks. The REPL
// prints the resolution of every identifier reference in the chunk.
// If a chunk cannot be parsed, the REPL reads more lines until it can
// or until a blank line, then reports the error.
//
// Lines beginning with a colon are commands:
//
//	:scopes  print the scope chain of the session
//	:ast     toggle printing of the syntax tree of each chunk
package repl // import "github.com/esfront/esfront/repl"

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/chzyer/readline"

	"github.com/esfront/esfront/parse"
	"github.com/esfront/esfront/report"
	"github.com/esfront/esfront/resolve"
	"github.com/esfront/esfront/syntax"
)

var interrupted = make(chan os.Signal, 1)

// A Session holds the state of a REPL between chunks.
type Session struct {
	Opts    resolve.Options
	Out     io.Writer
	ShowAST bool

	scope  *syntax.Scope // top-level scope of the last successful chunk
	chunks int
}

// NewSession returns a session that resolves with opts and prints to out.
func NewSession(opts resolve.Options, out io.Writer) *Session {
	return &Session{Opts: opts, Out: out}
}

// Scope returns the scope of the last chunk that resolved without
// error, or nil.
func (s *Session) Scope() *syntax.Scope { return s.scope }

// Chunk parses and resolves one chunk of input and prints its
// references. On success the chunk's declarations become visible to
// later chunks. A syntax or resolution error is returned.
func (s *Session) Chunk(ctx context.Context, src string) error {
	s.chunks++
	filename := fmt.Sprintf("<stdin:%d>", s.chunks)
	script, err := parse.Script(ctx, filename, []byte(src))
	if err != nil {
		return err
	}
	if s.ShowAST {
		for _, stmt := range script.List {
			fmt.Fprintln(s.Out, syntax.Dump(stmt))
		}
	}
	if err := resolve.Eval(script, s.scope, s.Opts); err != nil {
		return fmt.Errorf("%s:%w", filename, err)
	}
	s.scope = script.Scope
	return report.WriteRefs(s.Out, script)
}

// Command executes a colon command, without its colon.
func (s *Session) Command(cmd string) error {
	switch strings.TrimSpace(cmd) {
	case "scopes":
		for t := s.scope; t != nil; t = t.Parent() {
			if err := report.Text(s.Out, t); err != nil {
				return err
			}
		}
	case "ast":
		s.ShowAST = !s.ShowAST
		fmt.Fprintf(s.Out, "ast: %t\n", s.ShowAST)
	default:
		return fmt.Errorf("unknown command :%s", cmd)
	}
	return nil
}

// REPL executes a read, resolve, print loop on the terminal.
//
// Each chunk gets a context that is cancelled by a SIGINT (Control-C),
// which interrupts a long parse.
func REPL(s *Session) {
	signal.Notify(interrupted, os.Interrupt)
	defer signal.Stop(interrupted)

	rl, err := readline.New("> ")
	if err != nil {
		PrintError(err)
		return
	}
	defer rl.Close()
	for {
		if err := rep(rl, s); err != nil {
			if err == readline.ErrInterrupt {
				fmt.Println(err)
				continue
			}
			break
		}
	}
	fmt.Println()
}

// rep reads, resolves, and prints one chunk.
//
// It returns an error (possibly readline.ErrInterrupt)
// only if readline failed. Resolution errors are printed.
func rep(rl *readline.Instance, s *Session) error {
	// Note: during Readline calls, Control-C causes Readline to return
	// ErrInterrupt but does not generate a SIGINT.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-interrupted:
			cancel()
		case <-ctx.Done():
		}
	}()

	rl.SetPrompt("> ")
	line, err := rl.Readline()
	if err != nil {
		return err
	}
	if cmd, ok := strings.CutPrefix(strings.TrimSpace(line), ":"); ok {
		if err := s.Command(cmd); err != nil {
			PrintError(err)
		}
		return nil
	}
	if strings.TrimSpace(line) == "" {
		return nil
	}

	src := line + "\n"
	for !complete(ctx, src) {
		rl.SetPrompt("... ")
		more, err := rl.Readline()
		if err == io.EOF || (err == nil && strings.TrimSpace(more) == "") {
			break
		}
		if err != nil {
			return err
		}
		src += more + "\n"
	}

	if err := s.Chunk(ctx, src); err != nil {
		PrintError(err)
	}
	return nil
}

// complete reports whether src parses.
func complete(ctx context.Context, src string) bool {
	_, err := parse.Script(ctx, "<stdin>", []byte(src))
	return err == nil
}

// PrintError prints the error to stderr.
func PrintError(err error) {
	fmt.Fprintln(os.Stderr, err)
}
