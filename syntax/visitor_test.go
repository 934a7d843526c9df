// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/esfront/esfront/parse"
	"github.com/esfront/esfront/syntax"
)

func mustParse(t *testing.T, src string) *syntax.Script {
	t.Helper()
	s, err := parse.Script(context.Background(), "a.js", []byte(src))
	require.NoError(t, err)
	return s
}

func firstExpr(t *testing.T, src string) syntax.Expr {
	t.Helper()
	s := mustParse(t, src)
	return s.List[0].(*syntax.ExpressionStatement).X
}

// count returns an IntVisitor that counts the nodes of a tree,
// weighting literals by lit.
func count(lit int) *syntax.IntVisitor {
	v := syntax.NewVisitor[int]()
	sum := func(acc, r int) int { return acc + r }
	v.OnCategory(syntax.CategoryNode, func(n syntax.Node) int { return v.Fold(n, 1, sum) })
	v.OnCategory(syntax.CategoryLiteral, func(n syntax.Node) int { return v.Fold(n, lit, sum) })
	return v
}

func TestCategoryFallback(t *testing.T) {
	x := firstExpr(t, `f(1, "a", b + 2);`)
	// call, callee, 3 literals, binary, b
	require.Equal(t, 7, count(1).Visit(x))
	require.Equal(t, 4+3*10, count(10).Visit(x))
}

func TestKindHandlerOverridesCategory(t *testing.T) {
	v := count(1)
	syntax.On(v, func(x *syntax.StringLiteral) int { return 100 })
	x := firstExpr(t, `[1, "a"];`)
	require.Equal(t, 1+1+100, v.Visit(x))
}

func TestVisitAs(t *testing.T) {
	v := syntax.NewVisitor[string]()
	v.OnCategory(syntax.CategoryNode, func(n syntax.Node) string { return "node" })
	v.OnCategory(syntax.CategoryStatement, func(n syntax.Node) string { return "statement" })
	v.OnCategory(syntax.CategoryIterationStatement, func(n syntax.Node) string { return "loop" })
	syntax.On(v, func(x *syntax.WhileStatement) string {
		return "while/" + v.VisitAs(syntax.CategoryBreakableStatement, x)
	})

	s := mustParse(t, `while (x) ; do ; while (y); if (z) ;`)
	require.Equal(t, "while/statement", v.Visit(s.List[0]))
	require.Equal(t, "loop", v.Visit(s.List[1]))
	require.Equal(t, "statement", v.Visit(s.List[2]))
	require.Equal(t, "loop", v.VisitAs(syntax.CategoryIterationStatement, s.List[0]))
	require.Equal(t, "node", v.VisitAs(syntax.CategoryNode, s.List[0]))

	// An expression never reaches the statement handlers.
	require.Equal(t, "node", v.Visit(s.List[0].(*syntax.WhileStatement).Test))
}

func TestZeroResultWithoutHandler(t *testing.T) {
	v := syntax.NewVisitor[int]()
	syntax.On(v, func(x *syntax.NumericLiteral) int { return int(x.Value) })
	require.Equal(t, 0, v.Visit(firstExpr(t, `"s";`)))
	require.Equal(t, 7, v.Visit(firstExpr(t, `7;`)))
}

func TestEffectVisitor(t *testing.T) {
	var names []string
	v := syntax.NewVisitor[struct{}]()
	syntax.DoCategory(v, syntax.CategoryNode, func(n syntax.Node) { v.VisitChildren(n) })
	syntax.Do(v, func(x *syntax.IdentifierReference) { names = append(names, x.Name.Text) })
	// Functions are opaque.
	syntax.DoCategory(v, syntax.CategoryFunction, func(syntax.Node) {})

	s := mustParse(t, `a = b + c; function f() { d; } (() => e)(g);`)
	for _, stmt := range s.List {
		v.Visit(stmt)
	}
	require.Equal(t, []string{"a", "b", "c", "g"}, names)
}

func TestOnRejectsInterfaceType(t *testing.T) {
	v := syntax.NewVisitor[int]()
	require.PanicsWithValue(t, "internal error: On requires a concrete node type", func() {
		syntax.On(v, func(syntax.Expr) int { return 0 })
	})
}

func TestKindCategories(t *testing.T) {
	require.True(t, syntax.KindForStatement.In(syntax.CategoryIterationStatement))
	require.True(t, syntax.KindForStatement.In(syntax.CategoryBreakableStatement))
	require.True(t, syntax.KindSwitchStatement.In(syntax.CategoryBreakableStatement))
	require.False(t, syntax.KindSwitchStatement.In(syntax.CategoryIterationStatement))
	require.True(t, syntax.KindStringLiteral.In(syntax.CategoryExpression))
	require.True(t, syntax.KindFunctionDeclaration.In(syntax.CategoryHoistableDeclaration))
	require.False(t, syntax.KindClassDeclaration.In(syntax.CategoryHoistableDeclaration))

	n := 0
	for k := syntax.KindScript; k.String() != "Kind(?)"; k++ {
		cats := k.Categories()
		require.Equal(t, syntax.CategoryNode, cats[len(cats)-1], k.String())
		require.False(t, strings.HasPrefix(k.String(), "Kind"), k.String())
		n++
	}
	require.Greater(t, n, 100)
}
