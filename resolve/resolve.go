// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resolve defines a name-resolution pass for ECMAScript syntax
// trees.
//
// The resolver runs in two phases over one compilation unit. The first
// phase builds the scope tree top-down, declares each name in the scope
// that holds it, and records every reference together with the scope in
// which it occurs. It also computes the break and continue targets of
// each breakable statement. The second phase runs once every declaration
// is known and links each reference to the declaration it denotes, so a
// hoisted declaration is visible before its textual position.
//
// A reference in a function that contains a with statement or a
// non-strict direct call to eval is left unresolved: the set of names
// visible to it cannot be known until run time. Otherwise, a reference
// to a name declared nowhere is a reference to a global binding.
//
// Independent compilation units may be resolved concurrently. The
// resolver mutates only the tree it is given and the scopes it creates.
package resolve

import (
	"github.com/esfront/esfront/syntax"
)

// Options controls the dialect accepted by the resolver.
// The zero value accepts standard sloppy-mode code without the web
// compatibility extensions.
type Options struct {
	// Legacy accepts the legacy dialect: comprehensions, let blocks and
	// expressions, for each, catch guards, starless generators and
	// expression closures. Otherwise each use is reported as LegacySyntax.
	Legacy bool

	// AnnexB enables var hoisting of function declarations in blocks of
	// sloppy-mode code.
	AnnexB bool

	// Strict treats scripts and eval code as strict mode code.
	Strict bool
}

// DefaultOptions returns the options used by the command-line tool:
// standard code with web compatibility hoisting.
func DefaultOptions() Options { return Options{AnnexB: true} }

// Script resolves the names of a script.
// If it returns a non-nil error, it is an ErrorList.
func Script(s *syntax.Script, opts Options) error {
	r := newResolver(opts)
	r.b = syntax.NewScopeBuilder(syntax.ScriptScope, s, nil)
	top := r.b.Top()
	if s.Strict || opts.Strict {
		top.SetStrict()
	}
	s.Scope = top
	r.fn = &funcState{}
	r.stmts(s.List)
	r.finish()
	return r.result()
}

// Eval resolves the names of eval code. For a direct eval, caller is
// the scope of the call, which must already be resolved; it is nil for
// an indirect eval. The caller's scopes are read but never modified.
func Eval(s *syntax.Script, caller *syntax.Scope, opts Options) error {
	r := newResolver(opts)
	r.b = syntax.NewScopeBuilder(syntax.EvalScope, s, caller)
	top := r.b.Top()
	if s.Strict || opts.Strict {
		top.SetStrict()
	}
	s.Scope = top
	r.fn = evalState(caller)
	r.stmts(s.List)
	r.finish()
	return r.result()
}

// Module resolves the names of a module.
// Module code is always strict.
func Module(m *syntax.Module, opts Options) error {
	r := newResolver(opts)
	r.b = syntax.NewScopeBuilder(syntax.ModuleScope, m, nil)
	top := r.b.Top()
	top.SetStrict()
	m.Scope = top
	r.fn = &funcState{}
	for _, item := range m.Items {
		r.v.Visit(item)
	}
	r.finish()
	return r.result()
}

type resolver struct {
	opts   Options
	errors ErrorList

	b  *syntax.ScopeBuilder
	v  *syntax.EffectVisitor
	fn *funcState // innermost function

	// deferred to the second phase
	refs     []reference
	privates []reference
	exports  []*syntax.ExportSpecifier
	annexB   []annexB
	evals    []*syntax.Scope // scopes containing a direct eval call

	// names of var declarations hoisted out of each block scope
	hoisted map[*syntax.Scope]map[string]bool
}

// A reference is a name occurrence awaiting resolution.
type reference struct {
	name   *syntax.Name
	scope  *syntax.Scope
	pos    syntax.Position
	assign bool
}

// An annexB is a function declaration in a block that may also be
// var-declared in its function.
type annexB struct {
	fn    syntax.HoistableDeclaration
	name  string
	scope *syntax.Scope
}

// A funcState holds the per-function state of the first phase.
type funcState struct {
	node syntax.Node // function, class field initializer or static block; nil at top level

	newTarget     bool // new.target is permitted
	superProperty bool // super.x is permitted
	superCall     bool // super() is permitted

	targets []*jumpTarget // enclosing breakable statements, innermost last
	pending []string      // labels of the labelled statements enclosing the next statement
}

func newFuncState(parent *funcState, n syntax.Node) *funcState {
	st := &funcState{node: n}
	switch n.Kind() {
	case syntax.KindArrowFunction, syntax.KindAsyncArrowFunction, syntax.KindGeneratorComprehension:
		st.newTarget = parent.newTarget
		st.superProperty = parent.superProperty
		st.superCall = parent.superCall
	case syntax.KindMethodDefinition:
		st.newTarget = true
		st.superProperty = true
		st.superCall = n.(*syntax.MethodDefinition).Type == syntax.MethodDerivedConstructor
	case syntax.KindClassFieldInitializer, syntax.KindClassStaticBlock:
		st.newTarget = true
		st.superProperty = true
	default:
		st.newTarget = true
	}
	return st
}

// evalState returns the function state of direct eval code called from
// caller: eval code may use new.target and super where its caller may.
func evalState(caller *syntax.Scope) *funcState {
	for s := caller; s != nil; s = s.Parent() {
		switch s.Kind() {
		case syntax.FunctionScope:
			if s.IsArrow() {
				continue
			}
			if _, ok := s.Node().(syntax.FunctionNode); !ok {
				continue // generator comprehension
			}
			return newFuncState(nil, s.Node())
		case syntax.ClassFieldScope:
			return newFuncState(nil, s.Node())
		}
	}
	return &funcState{}
}

func newResolver(opts Options) *resolver {
	r := &resolver{opts: opts, hoisted: make(map[*syntax.Scope]map[string]bool)}
	r.v = r.visitor()
	return r
}

func (r *resolver) stmts(list []syntax.Stmt) {
	for _, stmt := range list {
		r.v.Visit(stmt)
	}
}

// finish ends the first phase and runs the second.
func (r *resolver) finish() {
	r.b.Finish()
	r.hoistBlockFunctions()
	r.bind()
}

func (r *resolver) legacy(n syntax.Node, what string) {
	if !r.opts.Legacy {
		r.errorf(syntax.Start(n), LegacySyntax, "%s is legacy syntax", what)
	}
}

// varScope returns the scope that receives var declarations made in s,
// or the ParameterScope for code in a parameter list.
func varScope(s *syntax.Scope) *syntax.Scope {
	for t := s; ; t = t.Parent() {
		switch t.Kind() {
		case syntax.ScriptScope, syntax.ModuleScope, syntax.EvalScope,
			syntax.FunctionScope, syntax.ClassFieldScope, syntax.ParameterScope:
			return t
		}
	}
}
