// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse_test

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/esfront/esfront/parse"
	"github.com/esfront/esfront/syntax"
)

func parseScript(t *testing.T, src string) *syntax.Script {
	t.Helper()
	s, err := parse.Script(context.Background(), "a.js", []byte(src))
	require.NoError(t, err, "parse %q", src)
	return s
}

func TestScriptDump(t *testing.T) {
	for _, test := range []struct {
		src, want string
	}{
		{`x = 1 + 2;`,
			`(ExpressionStatement X=(AssignmentExpression Op== Target=x Value=(BinaryExpression Op=+ X=(NumericLiteral Raw="1") Y=(NumericLiteral Raw="2"))))`},
		{`(a, b);`,
			`(ExpressionStatement X=(CommaExpression List=(a b) Parens=1))`},
		{`((a, b));`,
			`(ExpressionStatement X=(CommaExpression List=(a b) Parens=2))`},
		{`function f() { 1; }`,
			`(FunctionDeclaration Name=f Params=(FormalParameterList) Body=((ExpressionStatement X=(EmptyExpression))))`},
		{`let [a, , ...b] = c;`,
			`(LexicalDeclaration List=((LexicalBinding Target=(ArrayBindingPattern Elements=((BindingElement Target=a) (BindingElision) (BindingRestElement Target=b))) Init=c)))`},
		{`a?.b.c;`,
			`(ExpressionStatement X=(OptionalChain X=(PropertyAccessor X=(PropertyAccessor X=a Name="b" Optional) Name="c")))`},
		{`outer: for (;;) { break outer; }`,
			`(LabelledStatement Label="outer" Body=(ForStatement Body=(BlockStatement List=((BreakStatement Label="outer")))))`},
	} {
		s := parseScript(t, test.src)
		require.Len(t, s.List, 1, test.src)
		if diff := cmp.Diff(test.want, syntax.Dump(s.List[0])); diff != "" {
			t.Errorf("Dump(%q) mismatch (-want +got):\n%s", test.src, diff)
		}
	}
}

func TestEmptyCompletion(t *testing.T) {
	// Top-level script values are observable; function body values are not.
	s := parseScript(t, `1; function f() { 2; g(); }`)
	require.Equal(t, syntax.KindNumericLiteral, s.List[0].(*syntax.ExpressionStatement).X.Kind())

	f := s.List[1].(*syntax.FunctionDeclaration)
	require.Equal(t, syntax.KindEmptyExpression, f.Body[0].(*syntax.ExpressionStatement).X.Kind())
	call := f.Body[1].(*syntax.ExpressionStatement).X
	require.True(t, call.HasEmptyCompletion())

	// The completion value of a script can come from any top-level
	// statement, not only the last: here it is x, since the statements
	// after it complete empty.
	s = parseScript(t, `x; if (y) {} ;`)
	x := s.List[0].(*syntax.ExpressionStatement).X
	require.Equal(t, syntax.KindIdentifierReference, x.Kind())
	require.False(t, x.HasEmptyCompletion())
}

func TestDirectivePrologue(t *testing.T) {
	s := parseScript(t, `'use strict'; function f() { "use strict"; } function g() { x; "use strict"; }`)
	require.True(t, s.Strict)
	require.True(t, s.List[1].(*syntax.FunctionDeclaration).Strict)
	require.False(t, s.List[2].(*syntax.FunctionDeclaration).Strict)
}

func TestFunctionKinds(t *testing.T) {
	s := parseScript(t, `
function a() {}
function* b() {}
async function c() {}
async function* d() {}
(function () {});
(x => x);
(async (y, z = 1) => { await y; });
`)
	want := []syntax.Kind{
		syntax.KindFunctionDeclaration,
		syntax.KindGeneratorDeclaration,
		syntax.KindAsyncFunctionDeclaration,
		syntax.KindAsyncGeneratorDeclaration,
		syntax.KindFunctionExpression,
		syntax.KindArrowFunction,
		syntax.KindAsyncArrowFunction,
	}
	require.Len(t, s.List, len(want))
	for i, stmt := range s.List {
		n := syntax.Node(stmt)
		if es, ok := stmt.(*syntax.ExpressionStatement); ok {
			n = es.X
		}
		require.Equal(t, want[i], n.Kind(), "statement %d", i)
	}

	arrow := s.List[5].(*syntax.ExpressionStatement).X.(*syntax.ArrowFunction)
	require.NotNil(t, arrow.Concise)
	require.True(t, arrow.Params.IsSimple())

	async := s.List[6].(*syntax.ExpressionStatement).X.(*syntax.AsyncArrowFunction)
	require.Nil(t, async.Concise)
	require.False(t, async.Params.IsSimple())
}

func TestClass(t *testing.T) {
	s := parseScript(t, `class A extends B {
  constructor() { super(); }
  static m() {}
  get x() { return this.#p; }
  set x(v) {}
  #p = 1;
  static { this.y = 2; }
}`)
	c := s.List[0].(*syntax.ClassDeclaration)
	require.Equal(t, "A", c.Name.Name)
	require.NotNil(t, c.Heritage)
	require.Len(t, c.Elements, 6)

	var types []syntax.MethodType
	for _, e := range c.Elements[:4] {
		types = append(types, e.(*syntax.MethodDefinition).Type)
	}
	require.Equal(t, []syntax.MethodType{
		syntax.MethodDerivedConstructor,
		syntax.MethodFunction,
		syntax.MethodGetter,
		syntax.MethodSetter,
	}, types)
	require.True(t, c.Elements[1].(*syntax.MethodDefinition).Static)

	field := c.Elements[4].(*syntax.ClassFieldDefinition)
	require.Equal(t, "p", field.Key.(*syntax.PrivateName).Name)
	require.NotNil(t, field.Init)
	require.Equal(t, syntax.KindClassStaticBlock, c.Elements[5].Kind())
}

func TestTemplate(t *testing.T) {
	s := parseScript(t, "`a\\n${x}b`;")
	tl := s.List[0].(*syntax.ExpressionStatement).X.(*syntax.TemplateLiteral)
	require.False(t, tl.Tagged)
	require.Len(t, tl.Elements, 3)
	head := tl.Elements[0].(*syntax.TemplateCharacters)
	require.Equal(t, "a\n", head.Cooked)
	require.Equal(t, `a\n`, head.Raw)
	require.Equal(t, syntax.KindIdentifierReference, tl.Elements[1].Kind())
	require.Equal(t, "b", tl.Elements[2].(*syntax.TemplateCharacters).Cooked)

	s = parseScript(t, "tag`x`;")
	call := s.List[0].(*syntax.ExpressionStatement).X.(*syntax.TemplateCallExpression)
	require.True(t, call.Template.Tagged)
}

func TestForHeads(t *testing.T) {
	s := parseScript(t, `
for (var a in o) ;
for (let [k, v] of m) ;
for (x.y of z) ;
async function f() { for await (const e of s) ; }
`)
	in := s.List[0].(*syntax.ForInStatement)
	require.Equal(t, syntax.KindVariableStatement, in.Head.Kind())

	of := s.List[1].(*syntax.ForOfStatement)
	lex := of.Head.(*syntax.LexicalDeclaration)
	require.False(t, lex.IsConst)
	require.Equal(t, syntax.KindArrayBindingPattern, lex.List[0].Target.Kind())

	require.Equal(t, syntax.KindPropertyAccessor, s.List[2].(*syntax.ForOfStatement).Head.Kind())

	f := s.List[3].(*syntax.AsyncFunctionDeclaration)
	require.True(t, f.Body[0].(*syntax.ForOfStatement).Await)
}

func TestModule(t *testing.T) {
	m, err := parse.Module(context.Background(), "m.js", []byte(`
import def, * as ns from "a";
import { x as y, z } from "b";
export { y as w };
export * from "c";
export * as all from "d";
export default function () {}
export const k = 1;
1;
`))
	require.NoError(t, err)
	require.Len(t, m.Items, 8)

	imp := m.Items[0].(*syntax.ImportDeclaration)
	require.Equal(t, "a", imp.Specifier)
	require.Equal(t, "def", imp.Clause.Default.Name)
	require.Equal(t, "ns", imp.Clause.Namespace.Name)

	named := m.Items[1].(*syntax.ImportDeclaration).Clause.Named
	require.Len(t, named, 2)
	require.Equal(t, "x", named[0].Imported)
	require.Equal(t, "y", named[0].Local.Name)

	local := m.Items[2].(*syntax.ExportDeclaration)
	require.Equal(t, syntax.ExportLocal, local.Type)
	require.Equal(t, "y", local.Clause.Specifiers[0].Local.Text)
	require.Equal(t, "w", local.Clause.Specifiers[0].Exported)

	all := m.Items[3].(*syntax.ExportDeclaration)
	require.Equal(t, syntax.ExportAll, all.Type)
	require.Equal(t, "c", all.ModuleSpecifier())
	require.Equal(t, "all", m.Items[4].(*syntax.ExportDeclaration).Namespace)

	def := m.Items[5].(*syntax.ExportDeclaration)
	require.Equal(t, syntax.ExportDefault, def.Type)
	fn := def.Decl.(*syntax.FunctionDeclaration)
	require.Nil(t, fn.Name)

	require.Equal(t, syntax.ExportDecl, m.Items[6].(*syntax.ExportDeclaration).Type)

	// Module top-level values are never observed.
	last := m.Items[7].(*syntax.ExpressionStatement)
	require.Equal(t, syntax.KindEmptyExpression, last.X.Kind())
}

func TestErrors(t *testing.T) {
	for _, test := range []struct {
		src, want string
	}{
		{`let = ;`, "a.js:1:"},
		{`import x from "y";`, "may only appear in a module"},
		{`"\u{110000}";`, "invalid escape sequence"},
	} {
		_, err := parse.Script(context.Background(), "a.js", []byte(test.src))
		require.Error(t, err, test.src)
		var perr parse.Error
		require.True(t, errors.As(err, &perr), "%q: got %T", test.src, err)
		require.Equal(t, "a.js", perr.Filename)
		if !strings.Contains(err.Error(), test.want) {
			t.Errorf("%q: error %q does not contain %q", test.src, err, test.want)
		}
	}
}

func TestNumericLiterals(t *testing.T) {
	for _, test := range []struct {
		src  string
		want float64
	}{
		{"0", 0},
		{"42", 42},
		{"1_000", 1000},
		{"0x1F", 31},
		{"0o17", 15},
		{"0b101", 5},
		{"017", 15},
		{"019", 19},
		{".5", 0.5},
		{"1e3", 1000},
		{"1e400", math.Inf(1)},
	} {
		s := parseScript(t, "x = "+test.src+";")
		a := s.List[0].(*syntax.ExpressionStatement).X.(*syntax.AssignmentExpression)
		n := a.Value.(*syntax.NumericLiteral)
		require.Equal(t, test.src, n.Raw)
		require.Equal(t, test.want, n.Value, test.src)
	}

	s := parseScript(t, "x = 10n;")
	b := s.List[0].(*syntax.ExpressionStatement).X.(*syntax.AssignmentExpression).Value.(*syntax.BigIntLiteral)
	require.Equal(t, "10", b.Raw)
}

func TestStringLiterals(t *testing.T) {
	for _, test := range []struct {
		src, want string
	}{
		{`'a'`, "a"},
		{`"a\tb"`, "a\tb"},
		{`"\x41"`, "A"},
		{`"\u0041"`, "A"},
		{`"\u{1F600}"`, "\U0001F600"},
		{`"😀"`, "\U0001F600"},
		{`"\101"`, "A"},
		{`"\0"`, "\x00"},
		{`"\q"`, "q"},
		{`"a\` + "\n" + `b"`, "ab"},
	} {
		s := parseScript(t, "x = "+test.src+";")
		a := s.List[0].(*syntax.ExpressionStatement).X.(*syntax.AssignmentExpression)
		require.Equal(t, test.want, a.Value.(*syntax.StringLiteral).Value, test.src)
	}
}

func TestPositions(t *testing.T) {
	s := parseScript(t, "var a;\n  b = 1;")
	start, end := s.List[1].Span()
	require.Equal(t, "2:3", start.String())
	require.Equal(t, "2:9", end.String())
}
