// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The esfront command parses and resolves ECMAScript files and prints
// their scope trees. With no arguments and a terminal on standard
// input, it starts a read-resolve-print loop (REPL); otherwise it reads
// a single script from standard input.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"golang.org/x/term"

	"github.com/esfront/esfront/loader"
	"github.com/esfront/esfront/repl"
	"github.com/esfront/esfront/report"
	"github.com/esfront/esfront/rewrite"
	"github.com/esfront/esfront/syntax"
)

func main() {
	os.Exit(doMain())
}

func doMain() int {
	log.SetPrefix("esfront: ")
	log.SetFlags(0)
	cfg, err := parseArgs(flag.CommandLine, os.Args[1:])
	check(err)

	if flag.NArg() == 0 && term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Println("Welcome to esfront. Type :scopes or :ast for commands.")
		repl.REPL(repl.NewSession(cfg.options(), os.Stdout))
		return 0
	}

	var units []loader.Unit
	if flag.NArg() == 0 {
		src, err := io.ReadAll(os.Stdin)
		check(err)
		units = append(units, loader.Unit{Path: "<stdin>", Kind: unitKind(&cfg, ""), Src: src})
	}
	for _, path := range flag.Args() {
		src, err := os.ReadFile(path)
		check(err)
		units = append(units, loader.Unit{Path: path, Kind: unitKind(&cfg, path), Src: src})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	results, err := loader.New(cfg.options(), cfg.Workers).LoadAll(ctx, units)
	check(err)

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	status := 0
	for _, r := range results {
		if r.Err != nil {
			out.Flush()
			repl.PrintError(r.Err)
			status = 1
		}
		if r.Root() == nil {
			continue
		}
		if len(results) > 1 {
			fmt.Fprintf(out, "== %s ==\n", r.Unit.Path)
		}
		check(show(out, &cfg, r))
	}
	return status
}

func unitKind(cfg *config, path string) loader.Kind {
	if cfg.Module || filepath.Ext(path) == ".mjs" {
		return loader.Module
	}
	return loader.Script
}

// show writes the outputs selected by cfg for one result.
func show(w io.Writer, cfg *config, r *loader.Result) error {
	root := r.Root()
	if cfg.Split > 0 {
		if n := rewrite.Split(root, cfg.Split); n > 0 {
			log.Printf("%s: moved statements into %d helpers", r.Unit.Path, n)
		}
	}
	if cfg.AST {
		if _, err := fmt.Fprintln(w, syntax.Dump(root)); err != nil {
			return err
		}
	}
	if cfg.Scopes && r.Scope() != nil {
		if cfg.JSON {
			data, err := report.JSON(r.Scope(), "  ")
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
				return err
			}
		} else if err := report.Text(w, r.Scope()); err != nil {
			return err
		}
	}
	if cfg.Refs {
		return report.WriteRefs(w, root)
	}
	return nil
}

func check(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
