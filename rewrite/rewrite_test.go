// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewrite_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/esfront/esfront/parse"
	"github.com/esfront/esfront/resolve"
	"github.com/esfront/esfront/rewrite"
	"github.com/esfront/esfront/syntax"
)

func resolved(t *testing.T, src string) *syntax.Script {
	t.Helper()
	s, err := parse.Script(context.Background(), "a.js", []byte(src))
	require.NoError(t, err)
	require.NoError(t, resolve.Script(s, resolve.DefaultOptions()))
	return s
}

func TestSize(t *testing.T) {
	for _, test := range []struct {
		src  string
		want int
	}{
		{`x;`, 2},                           // statement, reference
		{`x = 1 + 2;`, 6},                   // statement, assignment, x, +, 1, 2
		{`;`, 0},                            // empty statement
		{`f(function () { a; b; c; });`, 4}, // statement, call, f, closure
		{`if (a) { b; }`, 5},
	} {
		s := resolved(t, test.src)
		require.Equal(t, test.want, rewrite.Size(s), test.src)
	}
}

func TestBodySize(t *testing.T) {
	s := resolved(t, `function f(a = 1) { a; return () => { x; y; z; }; }`)
	f := s.List[0].(*syntax.FunctionDeclaration)
	// parameter element, a, 1; statement, a; return, closure
	require.Equal(t, 7, rewrite.BodySize(f))
	require.Equal(t, 1, rewrite.Size(f))
}

func TestSplitStatements(t *testing.T) {
	var src strings.Builder
	src.WriteString("function f() {\n")
	for i := 0; i < 10; i++ {
		src.WriteString("  a = b;\n") // size 4
	}
	src.WriteString("  return a;\n}\n")
	s := resolved(t, src.String())
	f := s.List[0].(*syntax.FunctionDeclaration)
	require.Equal(t, 42, rewrite.BodySize(f))

	n := rewrite.SplitStatements(f, 12)
	require.Equal(t, 3, n)
	body := f.Statements()
	require.Len(t, body, 5)
	for i, stmt := range body[:3] {
		m, ok := stmt.(*syntax.StatementListMethod)
		require.True(t, ok, "statement %d is %s", i, stmt.Kind())
		require.Len(t, m.List, 3)
		require.LessOrEqual(t, rewrite.SizeOf(m.List), 12)
	}
	// A lone leftover statement is not worth a helper.
	require.Equal(t, syntax.KindExpressionStatement, body[3].Kind())
	require.Equal(t, syntax.KindReturnStatement, body[4].Kind())

	// The helper segments are visible to the size pass as calls.
	require.Equal(t, 3+4+2, rewrite.BodySize(f))
}

func TestSplitWithinLimit(t *testing.T) {
	s := resolved(t, `function f() { a; b; }`)
	f := s.List[0].(*syntax.FunctionDeclaration)
	before := f.Statements()
	require.Zero(t, rewrite.SplitStatements(f, 100))
	require.Equal(t, before, f.Statements())
}

func TestMovable(t *testing.T) {
	for _, test := range []struct {
		src     string
		movable bool
	}{
		{`a = 1;`, true},
		{`function g() { return 1; }`, false},
		{`let x = () => { return 1; };`, true},
		{`for (;;) { break; }`, true},
		{`for (;;) { if (a) continue; }`, true},
		{`l: for (;;) { for (;;) { continue l; } }`, true},
		{`switch (a) { case 1: break; }`, true},
		{`{ break; }`, false},
		{`{ continue m; }`, false},
		{`switch (a) { case 1: continue; }`, false},
		{`if (a) return;`, false},
		{`x = yield 1;`, false},
		{`await p;`, false},
		{`for await (const e of s) ;`, false},
		{`b: { break b; }`, true},
	} {
		s := parseBody(t, test.src)
		require.Equal(t, test.movable, rewrite.Movable(s), test.src)
	}
}

// parseBody parses src as the body of an async generator inside a
// labelled loop, so that every jump in it is valid, and returns its
// first statement.
func parseBody(t *testing.T, src string) syntax.Stmt {
	t.Helper()
	s, err := parse.Script(context.Background(), "a.js", []byte("async function* g() { m: for (;;) switch (0) { default: "+src+" } }"))
	require.NoError(t, err, src)
	g := s.List[0].(*syntax.AsyncGeneratorDeclaration)
	loop := g.Body[0].(*syntax.LabelledStatement).Body.(*syntax.ForStatement)
	sw := loop.Body.(*syntax.SwitchStatement)
	return sw.Clauses[0].List[0]
}

func TestSplitTree(t *testing.T) {
	var src strings.Builder
	src.WriteString("(function () {\n")
	for i := 0; i < 6; i++ {
		src.WriteString("  a = b;\n")
	}
	src.WriteString("});\n")
	s := resolved(t, src.String())
	require.Equal(t, 2, rewrite.Split(s, 12))

	fn := s.List[0].(*syntax.ExpressionStatement).X.(*syntax.FunctionExpression)
	require.Len(t, fn.Body, 2)
	require.Equal(t, syntax.KindStatementListMethod, fn.Body[0].Kind())
	// The script itself stays within the limit.
	require.Len(t, s.List, 1)
}
