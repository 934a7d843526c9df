// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/esfront/esfront/syntax"
)

func TestScopeBuilder(t *testing.T) {
	s := mustParse(t, `{ }`)
	block := s.List[0]

	b := syntax.NewScopeBuilder(syntax.ScriptScope, s, nil)
	top := b.Top()
	inner := b.Enter(syntax.BlockScope, block)
	require.Same(t, inner, b.Current())
	require.Same(t, top, inner.Parent())
	require.Same(t, top, inner.TopLevel())
	require.Same(t, top, inner.VarScope())
	b.Exit(inner)
	require.Same(t, top, b.Finish())
	require.Equal(t, []*syntax.Scope{inner}, top.Children())
	require.Equal(t, "block scope at 1:1", inner.String())
}

func TestScopeBuilderMisuse(t *testing.T) {
	s := mustParse(t, `{ }`)
	block := s.List[0]

	require.PanicsWithValue(t, "internal error: block scope is not top-level", func() {
		syntax.NewScopeBuilder(syntax.BlockScope, block, nil)
	})

	b := syntax.NewScopeBuilder(syntax.ScriptScope, s, nil)
	outer := b.Enter(syntax.BlockScope, block)
	b.Enter(syntax.BlockScope, block)
	require.PanicsWithValue(t, "internal error: scopes exited out of order", func() { b.Exit(outer) })
	require.PanicsWithValue(t, "internal error: unclosed block scope", func() { b.Finish() })
	require.PanicsWithValue(t, "internal error: nested module scope", func() { b.Enter(syntax.ModuleScope, s) })
	require.Panics(t, func() { b.Top().AddImport(&syntax.ImportEntry{}) })
}

func TestDeclare(t *testing.T) {
	s := mustParse(t, `;`)
	b := syntax.NewScopeBuilder(syntax.ScriptScope, s, nil)
	top := b.Top()

	x := &syntax.Decl{Name: "x", Kind: syntax.ConstDecl}
	require.Nil(t, top.DeclareLexical(x))
	require.Same(t, x, top.DeclareLexical(&syntax.Decl{Name: "x", Kind: syntax.LetDecl}))
	require.Len(t, top.Lexical(), 1)
	require.Same(t, top, x.Scope())
	require.True(t, x.Immutable())
	require.Equal(t, "const x", x.String())

	v := &syntax.Decl{Name: "v", Kind: syntax.VarDecl}
	require.Nil(t, top.DeclareVar(v))
	require.Same(t, v, top.LookupVar("v"))
	require.Nil(t, top.LookupLexical("v"))
	require.Same(t, v, top.Lookup("v"))
	require.False(t, v.Immutable())
}

func TestDeclareArguments(t *testing.T) {
	s := mustParse(t, `function f() {}`)
	fn := s.List[0]
	b := syntax.NewScopeBuilder(syntax.ScriptScope, s, nil)
	body := b.Enter(syntax.FunctionScope, fn)

	a := &syntax.Decl{Name: "arguments", Kind: syntax.ArgumentsDecl}
	require.Nil(t, body.DeclareArguments(a))
	require.Same(t, a, body.DeclareArguments(&syntax.Decl{Name: "arguments", Kind: syntax.ArgumentsDecl}))
	require.Same(t, a, body.Arguments())
	require.Same(t, body, a.Scope())
	require.Same(t, a, body.Lookup("arguments"))
	require.Empty(t, body.Vars())

	v := &syntax.Decl{Name: "arguments", Kind: syntax.VarDecl}
	body.DeclareVar(v)
	require.Same(t, v, body.Lookup("arguments"), "a var precedes the implicit binding")

	require.PanicsWithValue(t, "internal error: arguments declared in script scope", func() {
		b.Top().DeclareArguments(&syntax.Decl{Name: "arguments", Kind: syntax.ArgumentsDecl})
	})
	require.PanicsWithValue(t, "internal error: DeclareArguments of var", func() {
		body.DeclareArguments(v)
	})
}

func TestFind(t *testing.T) {
	s := mustParse(t, `{ }`)
	block := s.List[0]

	b := syntax.NewScopeBuilder(syntax.ScriptScope, s, nil)
	top := b.Top()
	g := &syntax.Decl{Name: "g", Kind: syntax.VarDecl}
	top.DeclareVar(g)

	with := b.Enter(syntax.WithScope, block)
	inner := b.Enter(syntax.BlockScope, block)
	l := &syntax.Decl{Name: "l", Kind: syntax.LetDecl}
	inner.DeclareLexical(l)

	d, dynamic := inner.Find("l")
	require.Same(t, l, d)
	require.False(t, dynamic)

	d, dynamic = inner.Find("g")
	require.Same(t, g, d)
	require.True(t, dynamic)

	d, dynamic = top.Find("missing")
	require.Nil(t, d)
	require.False(t, dynamic)

	require.Same(t, with, inner.Parent())
}

func TestNameResolution(t *testing.T) {
	s := mustParse(t, `;`)
	top := syntax.NewScopeBuilder(syntax.ScriptScope, s, nil).Top()
	d := &syntax.Decl{Name: "x", Kind: syntax.LetDecl}
	top.DeclareLexical(d)

	x := syntax.NewName("x")
	require.False(t, x.IsResolved())
	x.Resolve(d)
	require.True(t, x.IsResolved())
	require.Same(t, d, x.Decl())
	require.Same(t, top, x.Scope())
	require.False(t, x.IsGlobal())

	require.PanicsWithValue(t, `internal error: name "x" resolved twice`, func() { x.Resolve(d) })
	require.PanicsWithValue(t, `internal error: name "x" resolved twice`, func() { x.ResolveGlobal(top) })

	y := syntax.NewName("y")
	require.PanicsWithValue(t, `internal error: name "y" used before resolution`, func() { y.Scope() })
	require.PanicsWithValue(t, `internal error: name "y" used before resolution`, func() { y.Decl() })
	y.ResolveGlobal(top)
	require.True(t, y.IsGlobal())
	require.Nil(t, y.Decl())
	require.Same(t, top, y.Scope())
}

func TestCompletionBeforeResolution(t *testing.T) {
	s := mustParse(t, `for (;;) break;`)
	loop := s.List[0].(*syntax.ForStatement)
	msg := "internal error: completion of breakable statement queried before resolution"
	require.PanicsWithValue(t, msg, func() { loop.Abrupt() })
	require.PanicsWithValue(t, msg, func() { loop.Labels() })

	syntax.SetCompletion(loop, syntax.Break, nil)
	require.Equal(t, syntax.Break, loop.Abrupt())
	require.Equal(t, "{Break}", loop.Abrupt().String())
	require.PanicsWithValue(t, "internal error: completion of breakable statement set twice", func() {
		syntax.SetCompletion(loop, syntax.Continue, nil)
	})
	require.Equal(t, "{Break, Continue}", (syntax.Break | syntax.Continue).String())
}
