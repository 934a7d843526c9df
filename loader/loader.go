// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package loader parses and resolves independent compilation units,
// concurrently, with a cache keyed on the content of each unit.
package loader // import "github.com/esfront/esfront/loader"

import (
	"context"
	"encoding/binary"
	"fmt"
	"runtime"
	"sync"

	"github.com/zeebo/xxh3"
	"golang.org/x/sync/errgroup"

	"github.com/esfront/esfront/parse"
	"github.com/esfront/esfront/resolve"
	"github.com/esfront/esfront/syntax"
)

// A Kind is the kind of a compilation unit.
type Kind uint8

const (
	Script Kind = iota
	Module
	Eval // indirect eval code
)

var kindNames = [...]string{
	Script: "script",
	Module: "module",
	Eval:   "eval",
}

func (k Kind) String() string { return kindNames[k] }

// A Unit is the source of one compilation unit.
type Unit struct {
	Path string
	Kind Kind
	Src  []byte
}

// A Result is a parsed and resolved compilation unit.
// Exactly one of Script and Module is set, unless parsing failed.
// Err holds the syntax error or the resolve.ErrorList of the unit;
// a unit with resolution errors still has a tree.
type Result struct {
	Unit   Unit
	Script *syntax.Script
	Module *syntax.Module
	Err    error
}

// Root returns the root node of the unit's tree, or nil.
func (r *Result) Root() syntax.Node {
	switch {
	case r.Script != nil:
		return r.Script
	case r.Module != nil:
		return r.Module
	}
	return nil
}

// Scope returns the top-level scope of the unit, or nil.
func (r *Result) Scope() *syntax.Scope {
	switch {
	case r.Script != nil:
		return r.Script.Scope
	case r.Module != nil:
		return r.Module.Scope
	}
	return nil
}

// A Loader loads compilation units with fixed resolver options.
// Results are cached by the path and content of the unit, its kind
// and the options; a cached Result is shared by every caller and must not be
// modified. A Loader is safe for concurrent use.
type Loader struct {
	opts    resolve.Options
	workers int

	mu     sync.Mutex
	cache  map[uint64]*entry
	hits   int
	misses int
}

// An entry is a cache slot. The first loader of a key computes the
// result; later loaders of the same key wait for it.
type entry struct {
	ready  chan struct{}
	result *Result
	err    error // cancellation of the first loader; the slot is gone
}

// New returns a loader that resolves with opts and runs at most
// workers units at once. If workers is not positive, it is the
// number of CPUs.
func New(opts resolve.Options, workers int) *Loader {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Loader{opts: opts, workers: workers, cache: make(map[uint64]*entry)}
}

// Stats returns the number of cache hits and misses so far.
func (l *Loader) Stats() (hits, misses int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.hits, l.misses
}

// key returns the cache key of u under opts. The path is part of the
// key since it appears in the tree and in diagnostics.
func key(u Unit, opts resolve.Options) uint64 {
	var hdr [12]byte
	binary.LittleEndian.PutUint64(hdr[:8], uint64(len(u.Path)))
	hdr[8] = byte(u.Kind)
	if opts.Legacy {
		hdr[9] = 1
	}
	if opts.AnnexB {
		hdr[10] = 1
	}
	if opts.Strict {
		hdr[11] = 1
	}
	h := xxh3.New()
	h.Write(hdr[:])
	h.WriteString(u.Path)
	h.Write(u.Src)
	return h.Sum64()
}

// Load parses and resolves u, or returns the cached result of an
// identical unit. It returns an error only if ctx is done before the
// result is available; the errors of the unit itself are in Result.Err.
func (l *Loader) Load(ctx context.Context, u Unit) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	k := key(u, l.opts)
	l.mu.Lock()
	e, ok := l.cache[k]
	if ok {
		l.hits++
		l.mu.Unlock()
		select {
		case <-e.ready:
			if e.err != nil {
				// The first loader was cancelled and dropped the slot;
				// this caller's ctx may still be live.
				l.mu.Lock()
				l.hits--
				l.mu.Unlock()
				return l.Load(ctx, u)
			}
			return e.result, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	l.misses++
	e = &entry{ready: make(chan struct{})}
	l.cache[k] = e
	l.mu.Unlock()

	r, err := l.load(ctx, u)
	if err != nil {
		// Cancelled: let a later caller try again.
		l.mu.Lock()
		delete(l.cache, k)
		l.mu.Unlock()
		e.err = err
		close(e.ready)
		return nil, err
	}
	e.result = r
	close(e.ready)
	return r, nil
}

// load does the work of Load. Its error is non-nil only on cancellation.
func (l *Loader) load(ctx context.Context, u Unit) (*Result, error) {
	r := &Result{Unit: u}
	switch u.Kind {
	case Script, Eval:
		s, err := parse.Script(ctx, u.Path, u.Src)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			r.Err = err
			return r, nil
		}
		r.Script = s
		if u.Kind == Eval {
			err = resolve.Eval(s, nil, l.opts)
		} else {
			err = resolve.Script(s, l.opts)
		}
		if err != nil {
			r.Err = unitError(u.Path, err)
		}
	case Module:
		m, err := parse.Module(ctx, u.Path, u.Src)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			r.Err = err
			return r, nil
		}
		r.Module = m
		if err := resolve.Module(m, l.opts); err != nil {
			r.Err = unitError(u.Path, err)
		}
	default:
		panic(fmt.Sprintf("internal error: unknown unit kind %d", u.Kind))
	}
	return r, nil
}

// LoadAll loads units concurrently and returns their results in the
// order of units. A unit that fails to parse or resolve does not stop
// the others. LoadAll returns an error only if ctx is cancelled, in
// which case the results of the units not yet loaded are nil.
func (l *Loader) LoadAll(ctx context.Context, units []Unit) ([]*Result, error) {
	results := make([]*Result, len(units))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers)
	for i, u := range units {
		i, u := i, u
		g.Go(func() error {
			r, err := l.Load(ctx, u)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// EvalDirect resolves direct eval code whose call occurs in scope
// caller. Its resolution depends on the caller's scopes, so it is
// never cached.
func (l *Loader) EvalDirect(ctx context.Context, path string, src []byte, caller *syntax.Scope) (*Result, error) {
	u := Unit{Path: path, Kind: Eval, Src: src}
	r := &Result{Unit: u}
	s, err := parse.Script(ctx, path, src)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		r.Err = err
		return r, nil
	}
	r.Script = s
	if err := resolve.Eval(s, caller, l.opts); err != nil {
		r.Err = unitError(path, err)
	}
	return r, nil
}

// unitError prefixes the positions of resolver errors with the file name.
// Syntax errors carry the file name already.
func unitError(path string, err error) error {
	return fmt.Errorf("%s:%w", path, err)
}

// Errors returns the errors of the results that failed, in order.
func Errors(results []*Result) []error {
	var errs []error
	for _, r := range results {
		if r != nil && r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errs
}
