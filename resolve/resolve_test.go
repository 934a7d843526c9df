// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resolve_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/esfront/esfront/internal/chunkedfile"
	"github.com/esfront/esfront/parse"
	"github.com/esfront/esfront/resolve"
	"github.com/esfront/esfront/syntax"
)

func TestResolve(t *testing.T) {
	filename := "testdata/resolve.js"
	for _, chunk := range chunkedfile.Read(filename, t) {
		opts := resolve.DefaultOptions()
		opts.Strict = chunk.Option("strict")
		if chunk.Option("noannexb") {
			opts.AnnexB = false
		}

		var err error
		if chunk.IsModule() {
			m, perr := parse.Module(context.Background(), filename, []byte(chunk.Source))
			if perr != nil {
				t.Error(perr)
				continue
			}
			err = resolve.Module(m, opts)
		} else {
			s, perr := parse.Script(context.Background(), filename, []byte(chunk.Source))
			if perr != nil {
				t.Error(perr)
				continue
			}
			err = resolve.Script(s, opts)
		}
		if err != nil {
			for _, err := range err.(resolve.ErrorList) {
				chunk.GotError(int(err.Pos.Line()), err.Msg)
			}
		}
		chunk.Done()
	}
}

func script(t *testing.T, src string, opts resolve.Options) *syntax.Script {
	t.Helper()
	s, err := parse.Script(context.Background(), "a.js", []byte(src))
	require.NoError(t, err)
	require.NoError(t, resolve.Script(s, opts))
	return s
}

// refs returns the references spelled name in n, in source order.
func refs(n syntax.Node, name string) []*syntax.Name {
	var list []*syntax.Name
	syntax.Walk(n, func(n syntax.Node) bool {
		if id, ok := n.(*syntax.IdentifierReference); ok && id.Name.Text == name {
			list = append(list, id.Name)
		}
		return true
	})
	return list
}

func TestBlockScopes(t *testing.T) {
	s := script(t, `let x=1;{let x=2;use(x);}`, resolve.DefaultOptions())

	top := s.Scope
	require.Equal(t, syntax.ScriptScope, top.Kind())
	require.Len(t, top.Children(), 1)
	block := top.Children()[0]
	require.Equal(t, syntax.BlockScope, block.Kind())
	require.Same(t, s.List[1].(*syntax.BlockStatement).Scope, block)

	outer := top.LookupLexical("x")
	inner := block.LookupLexical("x")
	require.NotNil(t, outer)
	require.NotNil(t, inner)
	require.NotSame(t, outer, inner)

	x := refs(s, "x")
	require.Len(t, x, 1)
	require.Same(t, inner, x[0].Decl())

	use := refs(s, "use")[0]
	require.True(t, use.IsGlobal())
	require.Nil(t, use.Decl())
	require.Same(t, top, use.Scope())
}

func TestParameterScope(t *testing.T) {
	s := script(t, `function f(a=b,b){} function g(a,b){}`, resolve.DefaultOptions())

	f := s.List[0].(*syntax.FunctionDeclaration)
	require.NotNil(t, f.ParamScope)
	require.Equal(t, syntax.ParameterScope, f.ParamScope.Kind())
	require.Same(t, f.Scope, f.ParamScope.Body())
	require.Same(t, f.ParamScope, f.Scope.Parent())

	b := refs(f, "b")
	require.Len(t, b, 1)
	require.Equal(t, syntax.ParamDecl, b[0].Decl().Kind)
	require.Same(t, f.ParamScope, b[0].Decl().Scope())

	g := s.List[1].(*syntax.FunctionDeclaration)
	require.Nil(t, g.ParamScope)
	require.Len(t, g.Scope.Params(), 2)
}

func TestLabelSets(t *testing.T) {
	s := script(t, `outer: for(;;){break outer;} a: b: while (x) { continue; }`, resolve.DefaultOptions())

	loop := s.List[0].(*syntax.LabelledStatement).Body.(*syntax.ForStatement)
	require.Equal(t, syntax.Break, loop.Abrupt())
	require.Equal(t, []string{"outer"}, loop.Labels())

	a := s.List[1].(*syntax.LabelledStatement)
	require.Equal(t, []string{"a"}, a.Labels())
	while := a.Body.(*syntax.LabelledStatement).Body.(*syntax.WhileStatement)
	require.Equal(t, syntax.Continue, while.Abrupt())
	require.Equal(t, []string{"a", "b"}, while.Labels())
}

func TestWithIsDynamic(t *testing.T) {
	s := script(t, `function f() { with(obj){x;} } y;`, resolve.DefaultOptions())

	f := s.List[0].(*syntax.FunctionDeclaration)
	require.True(t, f.Scope.IsDynamic())
	require.False(t, s.Scope.IsDynamic())

	with := f.Body[0].(*syntax.WithStatement)
	require.Equal(t, syntax.WithScope, with.Scope.Kind())
	require.False(t, refs(s, "x")[0].IsResolved())
	require.False(t, refs(s, "obj")[0].IsResolved())
	require.True(t, refs(s, "y")[0].IsGlobal())
}

func TestDirectEval(t *testing.T) {
	s := script(t, `
function sloppy() { var a; eval("a"); a; }
function strict() { "use strict"; var b; eval("b"); b; }
function indirect() { var c; (0, eval)("c"); c; }
`, resolve.DefaultOptions())

	sloppy := s.List[0].(*syntax.FunctionDeclaration)
	require.True(t, sloppy.Scope.HasDirectEval())
	require.True(t, sloppy.Scope.IsDynamic())
	require.False(t, refs(sloppy, "a")[0].IsResolved())

	strict := s.List[1].(*syntax.FunctionDeclaration)
	require.True(t, strict.Scope.HasDirectEval())
	require.False(t, strict.Scope.IsDynamic())
	require.Equal(t, syntax.VarDecl, refs(strict, "b")[0].Decl().Kind)

	indirect := s.List[2].(*syntax.FunctionDeclaration)
	require.False(t, indirect.Scope.HasDirectEval())
	require.True(t, refs(indirect, "c")[0].IsResolved())

	require.True(t, s.Scope.HasDirectEval())
}

func TestEvalCode(t *testing.T) {
	s := script(t, `function f() { "use strict"; let a; eval("a; var b;"); }`, resolve.DefaultOptions())
	f := s.List[0].(*syntax.FunctionDeclaration)
	children := len(f.Scope.Children())

	code, err := parse.Script(context.Background(), "eval", []byte(`a; var b; b;`))
	require.NoError(t, err)
	require.NoError(t, resolve.Eval(code, f.Scope, resolve.DefaultOptions()))

	require.Equal(t, syntax.EvalScope, code.Scope.Kind())
	require.True(t, code.Scope.IsStrict())
	require.Same(t, f.Scope, code.Scope.Parent())
	require.Len(t, f.Scope.Children(), children, "caller scope modified")

	a := refs(code, "a")[0]
	require.Same(t, f.Scope.LookupLexical("a"), a.Decl())
	b := refs(code, "b")[0]
	require.Same(t, code.Scope, b.Decl().Scope())
}

func TestArguments(t *testing.T) {
	s := script(t, `
function f() { return arguments; }
function g() { return () => arguments; }
function h(arguments) { return arguments; }
function k() { var arguments; return arguments; }
arguments;
`, resolve.DefaultOptions())

	f := s.List[0].(*syntax.FunctionDeclaration)
	require.True(t, f.Scope.NeedsArguments())
	require.Equal(t, syntax.ArgumentsDecl, refs(f, "arguments")[0].Decl().Kind)

	g := s.List[1].(*syntax.FunctionDeclaration)
	require.True(t, g.Scope.NeedsArguments())
	require.Same(t, g.Scope, refs(g, "arguments")[0].Decl().Scope())

	h := s.List[2].(*syntax.FunctionDeclaration)
	require.False(t, h.Scope.NeedsArguments())
	require.Equal(t, syntax.ParamDecl, refs(h, "arguments")[0].Decl().Kind)

	k := s.List[3].(*syntax.FunctionDeclaration)
	require.True(t, k.Scope.NeedsArguments())
	require.Same(t, k.Scope.LookupVar("arguments"), refs(k, "arguments")[0].Decl())

	require.True(t, refs(s.List[4], "arguments")[0].IsGlobal())
}

func TestArgumentsInParameterScope(t *testing.T) {
	s := script(t, `function f(a = arguments) { function arguments() {} return arguments; }`, resolve.DefaultOptions())
	f := s.List[0].(*syntax.FunctionDeclaration)
	require.NotNil(t, f.ParamScope)

	list := refs(f, "arguments")
	require.Len(t, list, 2)
	param, body := list[0].Decl(), list[1].Decl()
	require.Equal(t, syntax.ArgumentsDecl, param.Kind)
	require.Same(t, f.ParamScope, param.Scope())
	require.Same(t, f.ParamScope.Arguments(), param)
	require.True(t, f.Scope.NeedsArguments())

	require.Equal(t, syntax.FunctionDecl, body.Kind)
	require.Same(t, f.Scope, body.Scope())
	require.Nil(t, f.Scope.Arguments())
}

func TestArgumentsShadowedByFunction(t *testing.T) {
	s := script(t, `
function f() { var arguments; function arguments() {} return arguments; }
function g() { function arguments() {} var arguments; return arguments; }
`, resolve.DefaultOptions())
	for _, stmt := range s.List {
		fn := stmt.(*syntax.FunctionDeclaration)
		require.False(t, fn.Scope.NeedsArguments(), fn.Name.Name)
		require.Nil(t, fn.Scope.Arguments(), fn.Name.Name)
		d := refs(fn, "arguments")[0].Decl()
		require.Same(t, fn.Scope.LookupVar("arguments"), d)
	}
}

func TestArgumentsNotAVar(t *testing.T) {
	s := script(t, `function f() { return arguments; }`, resolve.DefaultOptions())
	f := s.List[0].(*syntax.FunctionDeclaration)
	require.Empty(t, f.Scope.Vars())
	require.Nil(t, f.Scope.LookupVar("arguments"))
	d := f.Scope.Arguments()
	require.NotNil(t, d)
	require.Same(t, d, f.Scope.Lookup("arguments"))
	require.Same(t, d, refs(f, "arguments")[0].Decl())
}

func TestArgumentsInEvalCode(t *testing.T) {
	s := script(t, `
function f() { "use strict"; eval("arguments"); }
function g() { "use strict"; return () => eval("arguments"); }
`, resolve.DefaultOptions())

	for i := range s.List {
		fn := s.List[i].(*syntax.FunctionDeclaration)
		caller := fn.Scope
		if i == 1 {
			caller = caller.Children()[0] // the arrow function
		}

		code, err := parse.Script(context.Background(), "eval", []byte(`arguments;`))
		require.NoError(t, err)
		require.NoError(t, resolve.Eval(code, caller, resolve.DefaultOptions()))

		ref := refs(code, "arguments")[0]
		require.True(t, ref.IsResolved(), fn.Name.Name)
		require.False(t, ref.IsGlobal(), fn.Name.Name)
		require.Equal(t, syntax.ArgumentsDecl, ref.Decl().Kind, fn.Name.Name)
		require.True(t, fn.Scope.NeedsArguments(), fn.Name.Name)
		require.Same(t, fn.Scope.Arguments(), ref.Decl())
	}
}

func TestArgumentsOfCallerWithoutEval(t *testing.T) {
	// A caller scope that never calls eval has no arguments binding,
	// and eval code does not create one in it.
	s := script(t, `function f() { "use strict"; }`, resolve.DefaultOptions())
	f := s.List[0].(*syntax.FunctionDeclaration)

	code, err := parse.Script(context.Background(), "eval", []byte(`arguments;`))
	require.NoError(t, err)
	require.NoError(t, resolve.Eval(code, f.Scope, resolve.DefaultOptions()))
	require.False(t, refs(code, "arguments")[0].IsResolved())
	require.Nil(t, f.Scope.Arguments())
	require.False(t, f.Scope.NeedsArguments())
}

func TestBlockLexicalExcludesVars(t *testing.T) {
	s := script(t, `function f() { { var v; let l; { const c = 1; var w; } } }`, resolve.DefaultOptions())
	f := s.List[0].(*syntax.FunctionDeclaration)

	names := func(ds []*syntax.Decl) []string {
		var out []string
		for _, d := range ds {
			out = append(out, d.Name)
		}
		return out
	}
	require.Equal(t, []string{"v", "w"}, names(f.Scope.Vars()))
	require.Empty(t, f.Scope.Lexical())

	outer := f.Scope.Children()[0]
	require.Equal(t, syntax.BlockScope, outer.Kind())
	require.Equal(t, []string{"l"}, names(outer.Lexical()))
	require.Empty(t, outer.Vars())
	require.Nil(t, outer.Lookup("v"))

	inner := outer.Children()[0]
	require.Equal(t, []string{"c"}, names(inner.Lexical()))
	require.Nil(t, inner.Lookup("w"))
}

func TestEveryReferenceResolved(t *testing.T) {
	// A reference is left unresolved only inside a with statement or a
	// function or script that is dynamic.
	const src = `
let a = 1;
function f(p, q = p) {
	var v = a + p + q;
	{ let b = v; use(b, arguments); }
	with (o) { w; }
	return () => v + this.x;
}
function g(s) { eval(s); return s + a; }
class C { #m = a; static n() { return C; } }
for (const k of list) { if (k) break; else continue; }
label: { f(a); break label; }
`
	s := script(t, src, resolve.DefaultOptions())

	var (
		stack      []syntax.Node
		resolved   int
		unresolved int
	)
	dynamic := func() bool {
		for _, n := range stack {
			switch n := n.(type) {
			case *syntax.WithStatement:
				return true
			case syntax.FunctionNode:
				if n.Func().Scope.IsDynamic() {
					return true
				}
			}
		}
		return s.Scope.IsDynamic()
	}
	syntax.Walk(s, func(n syntax.Node) bool {
		if n == nil {
			stack = stack[:len(stack)-1]
			return true
		}
		if id, ok := n.(*syntax.IdentifierReference); ok {
			if id.Name.IsResolved() {
				resolved++
				require.Panics(t, func() { id.Name.ResolveGlobal(s.Scope) }, id.Name.Text)
			} else {
				unresolved++
				require.True(t, dynamic(), "%s at %s unresolved outside a dynamic scope", id.Name, id.Begin)
			}
		}
		stack = append(stack, n)
		return true
	})
	require.NotZero(t, unresolved)
	require.NotZero(t, resolved)
}

func TestNoAbruptCompletion(t *testing.T) {
	s := script(t, `
for (;;) { x; }
while (x) { function g() { for (;;) break; } }
do { switch (x) { case 1: break; } } while (x);
`, resolve.DefaultOptions())

	require.Equal(t, syntax.Abrupt(0), s.List[0].(*syntax.ForStatement).Abrupt())
	require.Empty(t, s.List[0].(*syntax.ForStatement).Labels())

	while := s.List[1].(*syntax.WhileStatement)
	require.Equal(t, syntax.Abrupt(0), while.Abrupt())
	g := while.Body.(*syntax.BlockStatement).List[0].(*syntax.FunctionDeclaration)
	require.Equal(t, syntax.Break, g.Body[0].(*syntax.ForStatement).Abrupt())

	do := s.List[2].(*syntax.DoWhileStatement)
	require.Equal(t, syntax.Abrupt(0), do.Abrupt())
	sw := do.Body.(*syntax.BlockStatement).List[0].(*syntax.SwitchStatement)
	require.Equal(t, syntax.Break, sw.Abrupt())
}

func TestAnnexBHoisting(t *testing.T) {
	const src = `{ function g() {} } g(); let h; { function h() {} }`

	s := script(t, src, resolve.DefaultOptions())
	d := s.Scope.LookupVar("g")
	require.NotNil(t, d)
	require.Equal(t, syntax.VarDecl, d.Kind)
	require.Same(t, d, refs(s.List[1], "g")[0].Decl())
	require.Nil(t, s.Scope.LookupVar("h"), "hoisting past let h")

	s = script(t, src, resolve.Options{})
	require.Nil(t, s.Scope.LookupVar("g"))
	require.True(t, refs(s.List[1], "g")[0].IsGlobal())
}

func TestHoistedFunctionVisibleBeforeDeclaration(t *testing.T) {
	s := script(t, `f(); function f() {}`, resolve.DefaultOptions())
	d := refs(s, "f")[0].Decl()
	require.Equal(t, syntax.FunctionDecl, d.Kind)
	require.Same(t, s.List[1], d.Node)
	require.Equal(t, []syntax.HoistableDeclaration{s.List[1].(syntax.HoistableDeclaration)}, s.Scope.Functions())
}

func TestClassScopes(t *testing.T) {
	s := script(t, `class A { #p = 1; static m(o) { return o.#p; } }`, resolve.DefaultOptions())
	c := s.List[0].(*syntax.ClassDeclaration)
	require.Equal(t, syntax.ClassScope, c.Scope.Kind())
	require.True(t, c.Scope.IsStrict())
	require.Len(t, c.Scope.PrivateNames(), 1)

	field := c.Elements[0].(*syntax.ClassFieldDefinition)
	require.Equal(t, syntax.ClassFieldScope, field.Init.Scope.Kind())

	var p *syntax.Name
	syntax.Walk(c, func(n syntax.Node) bool {
		if x, ok := n.(*syntax.PrivatePropertyAccessor); ok {
			p = x.Name
		}
		return true
	})
	require.NotNil(t, p)
	require.Equal(t, syntax.PrivateDecl, p.Decl().Kind)
}

func TestModuleEntries(t *testing.T) {
	m, err := parse.Module(context.Background(), "m.js", []byte(`
import "side-effect";
import d, { x as y } from "a";
export { y as z };
export * from "b";
export const k = 1;
export default function () {}
`))
	require.NoError(t, err)
	require.NoError(t, resolve.Module(m, resolve.DefaultOptions()))

	top := m.Scope
	require.True(t, top.IsStrict())
	require.Equal(t, []string{"side-effect", "a", "b"}, top.RequestedModules())

	var imports []string
	for _, e := range top.Imports() {
		imports = append(imports, fmt.Sprintf("%s:%s", e.ImportName, e.LocalName))
	}
	require.Equal(t, []string{":", "default:d", "x:y"}, imports)

	var exports []string
	for _, e := range top.Exports() {
		exports = append(exports, fmt.Sprintf("%s=%s%s", e.ExportName, e.ModuleRequest, e.LocalName))
	}
	require.Equal(t, []string{"z=y", "=b", "k=k", "default=" + syntax.DefaultName}, exports)

	spec := m.Items[3].(*syntax.ExportDeclaration).Clause.Specifiers[0]
	require.Equal(t, syntax.ImportDecl, spec.Local.Decl().Kind)
}

func TestErrorKinds(t *testing.T) {
	s, err := parse.Script(context.Background(), "a.js", []byte("const c = 1; c = 2;\nbreak;"))
	require.NoError(t, err)
	err = resolve.Script(s, resolve.DefaultOptions())
	require.Error(t, err)

	list := err.(resolve.ErrorList)
	require.Len(t, list, 2)
	require.True(t, list.Has(resolve.ImmutableAssignment))
	require.True(t, list.Has(resolve.IllegalBreak))
	require.False(t, list.Has(resolve.UndefinedLabel))
	require.Equal(t, "1:14: cannot assign to const c declared at 1:7 (and 1 more errors)", err.Error())
	require.Equal(t, "illegal break", list[1].Kind.String())
}

func TestLegacySyntax(t *testing.T) {
	// The legacy dialect has no concrete syntax; build
	// let (x = 1) x; by hand.
	x := &syntax.IdentifierReference{Name: syntax.NewName("x")}
	let := &syntax.LetExpression{
		Bindings: []*syntax.LexicalBinding{{
			Target: &syntax.BindingIdentifier{Name: "x"},
			Init:   &syntax.NumericLiteral{Raw: "1", Value: 1},
		}},
		X: x,
	}
	newScript := func() *syntax.Script {
		x.Name = syntax.NewName("x")
		return &syntax.Script{List: []syntax.Stmt{&syntax.ExpressionStatement{X: let}}}
	}

	err := resolve.Script(newScript(), resolve.DefaultOptions())
	require.Error(t, err)
	require.True(t, err.(resolve.ErrorList).Has(resolve.LegacySyntax))

	require.NoError(t, resolve.Script(newScript(), resolve.Options{Legacy: true}))
	require.Equal(t, syntax.LetDecl, x.Name.Decl().Kind)
	require.Same(t, let.Scope, x.Name.Scope())
}

func TestResolveTwicePanics(t *testing.T) {
	s := script(t, `let x; x;`, resolve.DefaultOptions())
	x := refs(s, "x")[0]
	require.PanicsWithValue(t, `internal error: name "x" resolved twice`, func() {
		x.Resolve(s.Scope.LookupLexical("x"))
	})

	unresolved := syntax.NewName("y")
	require.PanicsWithValue(t, `internal error: name "y" used before resolution`, func() {
		unresolved.Decl()
	})
}

func TestConcurrentUnits(t *testing.T) {
	// Independent compilation units share no state.
	srcs := []string{`let a; a;`, `var b; function f() { b; }`, `class C { #x; m() { this.#x; } }`}
	done := make(chan error, len(srcs))
	for _, src := range srcs {
		s, err := parse.Script(context.Background(), "a.js", []byte(src))
		require.NoError(t, err)
		go func() { done <- resolve.Script(s, resolve.DefaultOptions()) }()
	}
	for range srcs {
		require.NoError(t, <-done)
	}
}

func ExampleScript() {
	s, err := parse.Script(context.Background(), "hello.js", []byte(`
let greeting = "hello";
function greet(name) { return greeting + ", " + name; }
console.log(greet("world"));
`))
	if err != nil {
		panic(err)
	}
	if err := resolve.Script(s, resolve.DefaultOptions()); err != nil {
		panic(err)
	}
	syntax.Walk(s, func(n syntax.Node) bool {
		if id, ok := n.(*syntax.IdentifierReference); ok {
			if d := id.Name.Decl(); d != nil {
				fmt.Printf("%s: %s in %s scope\n", id.Name, d.Kind, d.Scope().Kind())
			} else {
				fmt.Printf("%s: global\n", id.Name)
			}
		}
		return true
	})
	// Output:
	// greeting: let in script scope
	// name: parameter in function scope
	// console: global
	// greet: function in script scope
}
