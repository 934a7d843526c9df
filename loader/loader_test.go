// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loader_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/esfront/esfront/loader"
	"github.com/esfront/esfront/parse"
	"github.com/esfront/esfront/resolve"
	"github.com/esfront/esfront/syntax"
)

func TestLoadAll(t *testing.T) {
	l := loader.New(resolve.DefaultOptions(), 2)
	units := []loader.Unit{
		{Path: "a.js", Kind: loader.Script, Src: []byte(`let x = 1; x;`)},
		{Path: "b.js", Kind: loader.Script, Src: []byte(`let = ;`)},
		{Path: "c.mjs", Kind: loader.Module, Src: []byte(`import { y } from "./d.mjs"; export { y };`)},
		{Path: "d.js", Kind: loader.Script, Src: []byte(`const k = 1; k = 2;`)},
		{Path: "e.js", Kind: loader.Eval, Src: []byte(`var v = 1;`)},
	}
	results, err := l.LoadAll(context.Background(), units)
	require.NoError(t, err)
	require.Len(t, results, len(units))

	require.NoError(t, results[0].Err)
	require.Equal(t, syntax.ScriptScope, results[0].Scope().Kind())

	var perr parse.Error
	require.True(t, errors.As(results[1].Err, &perr), "got %v", results[1].Err)
	require.Nil(t, results[1].Root())

	require.NoError(t, results[2].Err)
	require.Equal(t, []string{"./d.mjs"}, results[2].Scope().RequestedModules())

	// A unit with resolution errors keeps its tree.
	var list resolve.ErrorList
	require.True(t, errors.As(results[3].Err, &list))
	require.True(t, list.Has(resolve.ImmutableAssignment))
	require.Contains(t, results[3].Err.Error(), "d.js:1:")
	require.NotNil(t, results[3].Script)

	require.NoError(t, results[4].Err)
	require.Equal(t, syntax.EvalScope, results[4].Scope().Kind())

	require.Len(t, loader.Errors(results), 2)
}

func TestCache(t *testing.T) {
	l := loader.New(resolve.DefaultOptions(), 0)
	ctx := context.Background()
	u := loader.Unit{Path: "a.js", Kind: loader.Script, Src: []byte(`f();`)}

	r1, err := l.Load(ctx, u)
	require.NoError(t, err)
	r2, err := l.Load(ctx, u)
	require.NoError(t, err)
	require.Same(t, r1, r2)

	// The kind and the path are part of the key.
	r3, err := l.Load(ctx, loader.Unit{Path: "a.js", Kind: loader.Eval, Src: u.Src})
	require.NoError(t, err)
	require.NotSame(t, r1, r3)
	r4, err := l.Load(ctx, loader.Unit{Path: "b.js", Kind: loader.Script, Src: u.Src})
	require.NoError(t, err)
	require.NotSame(t, r1, r4)

	hits, misses := l.Stats()
	require.Equal(t, 1, hits)
	require.Equal(t, 3, misses)

	// Options are part of the key too.
	strict := loader.New(resolve.Options{Strict: true}, 0)
	r5, err := strict.Load(ctx, u)
	require.NoError(t, err)
	require.True(t, r5.Scope().IsStrict())
	require.False(t, r1.Scope().IsStrict())
}

func TestConcurrentIdenticalUnits(t *testing.T) {
	l := loader.New(resolve.DefaultOptions(), 8)
	var units []loader.Unit
	for i := 0; i < 64; i++ {
		units = append(units, loader.Unit{
			Path: fmt.Sprintf("u%d.js", i%4),
			Kind: loader.Script,
			Src:  []byte(fmt.Sprintf("function f%d(a) { return a + %d; }", i%4, i%4)),
		})
	}
	results, err := l.LoadAll(context.Background(), units)
	require.NoError(t, err)
	for i, r := range results {
		require.NoError(t, r.Err)
		require.Same(t, results[i%4], r, "unit %d", i)
	}
	hits, misses := l.Stats()
	require.Equal(t, 4, misses)
	require.Equal(t, 60, hits)
}

func TestCancelled(t *testing.T) {
	l := loader.New(resolve.DefaultOptions(), 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := l.LoadAll(ctx, []loader.Unit{{Path: "a.js", Src: []byte(`1;`)}})
	require.ErrorIs(t, err, context.Canceled)

	// A cancelled load is not cached.
	r, err := l.Load(context.Background(), loader.Unit{Path: "a.js", Src: []byte(`1;`)})
	require.NoError(t, err)
	require.NoError(t, r.Err)
}

func TestEvalDirect(t *testing.T) {
	l := loader.New(resolve.DefaultOptions(), 0)
	ctx := context.Background()
	outer, err := l.Load(ctx, loader.Unit{Path: "a.js", Src: []byte(`let x = 1; eval(s);`)})
	require.NoError(t, err)
	require.NoError(t, outer.Err)

	r, err := l.EvalDirect(ctx, "eval.js", []byte(`x; const y = 2; y = 3;`), outer.Scope())
	require.NoError(t, err)
	require.Error(t, r.Err)
	require.Contains(t, r.Err.Error(), "eval.js:1:")
	require.Same(t, outer.Scope(), r.Scope().Parent())
	require.Empty(t, outer.Scope().Children())
}
