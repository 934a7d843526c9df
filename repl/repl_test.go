// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repl_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/esfront/esfront/parse"
	"github.com/esfront/esfront/repl"
	"github.com/esfront/esfront/resolve"
	"github.com/esfront/esfront/syntax"
)

func TestChunksShareScope(t *testing.T) {
	var out bytes.Buffer
	s := repl.NewSession(resolve.DefaultOptions(), &out)
	ctx := context.Background()

	require.NoError(t, s.Chunk(ctx, "let x = 1;\n"))
	require.Empty(t, out.String())
	first := s.Scope()
	require.Equal(t, syntax.EvalScope, first.Kind())

	require.NoError(t, s.Chunk(ctx, "x; y;\n"))
	require.Equal(t, "1:1 x: let x in eval scope at 1:1\n1:4 y: global\n", out.String())
	require.Same(t, first, s.Scope().Parent())
}

func TestChunkErrors(t *testing.T) {
	var out bytes.Buffer
	s := repl.NewSession(resolve.DefaultOptions(), &out)
	ctx := context.Background()

	require.NoError(t, s.Chunk(ctx, "const k = 1;"))
	before := s.Scope()

	err := s.Chunk(ctx, "k = 2;")
	var list resolve.ErrorList
	require.True(t, errors.As(err, &list), "got %v", err)
	require.True(t, list.Has(resolve.ImmutableAssignment))
	require.True(t, strings.HasPrefix(err.Error(), "<stdin:2>:1:1: "), err.Error())
	require.Same(t, before, s.Scope(), "failed chunk must not replace the scope")

	err = s.Chunk(ctx, "let = ;")
	var perr parse.Error
	require.True(t, errors.As(err, &perr), "got %v", err)
	require.Equal(t, "<stdin:3>", perr.Filename)
	require.Same(t, before, s.Scope())
}

func TestCommands(t *testing.T) {
	var out bytes.Buffer
	s := repl.NewSession(resolve.DefaultOptions(), &out)
	ctx := context.Background()

	require.NoError(t, s.Chunk(ctx, "let a;"))
	require.NoError(t, s.Chunk(ctx, "var b;"))
	out.Reset()
	require.NoError(t, s.Command("scopes"))
	require.Equal(t, "eval scope at 1:1\n  var b @1:5\neval scope at 1:1\n  let a @1:5\n", out.String())

	out.Reset()
	require.NoError(t, s.Command(" ast "))
	require.Equal(t, "ast: true\n", out.String())
	require.True(t, s.ShowAST)

	out.Reset()
	require.NoError(t, s.Chunk(ctx, "z;"))
	require.True(t, strings.HasPrefix(out.String(), "(ExpressionStatement"), out.String())
	require.True(t, strings.HasSuffix(out.String(), "1:1 z: global\n"), out.String())

	require.EqualError(t, s.Command("quit"), "unknown command :quit")
}
