// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resolve

// This file defines the second phase, which links each recorded
// reference to its declaration.

import (
	"github.com/esfront/esfront/syntax"
)

// hoistBlockFunctions var-declares each sloppy-mode block function in
// its function, unless doing so would conflict with a lexical
// declaration or a parameter of the same name.
func (r *resolver) hoistBlockFunctions() {
	for _, c := range r.annexB {
		vs := c.scope.VarScope()
		if blockedHoist(c.scope.Parent(), vs, c.name) {
			continue
		}
		vs.DeclareVar(&syntax.Decl{Name: c.name, Kind: syntax.VarDecl, Pos: syntax.Start(c.fn), Node: c.fn})
	}
}

func blockedHoist(from, vs *syntax.Scope, name string) bool {
	for s := from; ; s = s.Parent() {
		if d := s.LookupLexical(name); d != nil && !simpleCatchParam(d) {
			return true
		}
		if s == vs {
			break
		}
	}
	if vs.LookupParam(name) != nil {
		return true
	}
	ps := vs.Parent()
	return ps != nil && ps.Kind() == syntax.ParameterScope && ps.LookupParam(name) != nil
}

func (r *resolver) bind() {
	// Eval code may name the arguments object of the function that
	// calls it, so such a function needs one.
	for _, s := range r.evals {
		if fn, viaEval := argumentsFunction(s); fn != nil && !viaEval {
			argumentsDecl(fn, true)
		}
	}
	for _, ref := range r.refs {
		r.bindRef(ref)
	}
	for _, ref := range r.privates {
		r.bindPrivate(ref)
	}
	top := r.b.Top()
	for _, s := range r.exports {
		d := top.Lookup(s.Local.Text)
		if d == nil {
			r.errorf(syntax.Start(s), UndeclaredExport, "export of undeclared name %s", s.Local.Text)
			continue
		}
		s.Local.Resolve(d)
	}
}

func (r *resolver) bindRef(ref reference) {
	name := ref.name
	if name.Text == argumentsName && r.bindArguments(ref) {
		return
	}
	d, dynamic := ref.scope.Find(name.Text)
	if dynamic || inDynamicFunction(ref.scope) {
		return
	}
	if d == nil {
		name.ResolveGlobal(ref.scope.TopLevel())
		return
	}
	name.Resolve(d)
	if ref.assign && d.Immutable() {
		r.errorf(ref.pos, ImmutableAssignment, "cannot assign to %s declared at %s", d, d.Pos)
	}
}

// inDynamicFunction reports whether code in s belongs to a function or
// top level whose bindings cannot be known statically.
func inDynamicFunction(s *syntax.Scope) bool {
	for t := s; t != nil; t = t.Parent() {
		if t.IsDynamic() {
			return true
		}
		if varScope(t) == t {
			return false
		}
	}
	return false
}

const argumentsName = "arguments"

// bindArguments resolves a reference to arguments that denotes the
// implicit arguments object of a function, and reports whether it did.
// Eval code sees the arguments object of its caller but never creates
// it; a caller that has none leaves the reference unresolved.
func (r *resolver) bindArguments(ref reference) bool {
	fn, viaEval := argumentsFunction(ref.scope)
	if fn == nil {
		return false
	}
	d := argumentsDecl(fn, !viaEval)
	if d == nil {
		return !shadowsArguments(fn)
	}
	if _, dynamic := ref.scope.Find(argumentsName); dynamic || inDynamicFunction(ref.scope) {
		return true
	}
	ref.name.Resolve(d)
	return true
}

// argumentsFunction returns the function body or parameter scope whose
// arguments object a reference to arguments in s may denote, or nil if
// a declaration or a top level comes first. Arrow functions have no
// arguments object of their own. viaEval reports whether the search
// left eval code for the scope of its caller.
func argumentsFunction(s *syntax.Scope) (fn *syntax.Scope, viaEval bool) {
	for t := s; t != nil; t = t.Parent() {
		switch t.Kind() {
		case syntax.ScriptScope, syntax.ModuleScope, syntax.ClassFieldScope:
			return nil, false
		case syntax.FunctionScope, syntax.ParameterScope:
			if _, ok := t.Node().(syntax.FunctionNode); ok && !t.IsArrow() && !isArrowParams(t) {
				return t, viaEval
			}
		}
		if t.Lookup(argumentsName) != nil {
			return nil, false
		}
		if t.Kind() == syntax.EvalScope {
			viaEval = true
		}
	}
	return nil, false
}

// argumentsDecl returns the binding that arguments denotes in the code
// of fn, a function body or parameter scope, when fn does not declare
// the name itself. A var arguments in the body is that binding;
// otherwise it is the implicit binding, which lives in the parameter
// scope if the function has one so that parameter expressions never
// see the body. If create is set, argumentsDecl declares the implicit
// binding on first use and marks the function as needing it.
func argumentsDecl(fn *syntax.Scope, create bool) *syntax.Decl {
	if shadowsArguments(fn) {
		return nil
	}
	body, home := fn, fn
	if fn.Kind() == syntax.ParameterScope {
		body = fn.Body()
	} else if ps := paramScope(fn); ps != nil {
		home = ps
	}
	if !create {
		if fn == body {
			if d := body.LookupVar(argumentsName); d != nil {
				return d
			}
		}
		return home.Arguments()
	}
	body.SetNeedsArguments()
	if fn == body {
		if d := body.LookupVar(argumentsName); d != nil {
			return d // var arguments denotes the same binding
		}
	}
	d := &syntax.Decl{Name: argumentsName, Kind: syntax.ArgumentsDecl, Pos: syntax.Start(fn.Node()), Node: fn.Node()}
	if prev := home.DeclareArguments(d); prev != nil {
		d = prev
	}
	return d
}

func isArrowParams(s *syntax.Scope) bool {
	if s.Kind() != syntax.ParameterScope {
		return false
	}
	k := s.Node().Kind()
	return k == syntax.KindArrowFunction || k == syntax.KindAsyncArrowFunction
}

// paramScope returns the ParameterScope of the function whose body is
// s, or nil if its parameters are simple.
func paramScope(s *syntax.Scope) *syntax.Scope {
	if ps := s.Parent(); ps != nil && ps.Kind() == syntax.ParameterScope && ps.Node() == s.Node() {
		return ps
	}
	return nil
}

// shadowsArguments reports whether the function scope or parameter
// scope s declares arguments in a way that hides the implicit object:
// as a parameter, a lexical name or a function declared in the body.
// A var declaration does not hide it.
func shadowsArguments(s *syntax.Scope) bool {
	if s.LookupParam(argumentsName) != nil {
		return true
	}
	if s.Kind() == syntax.ParameterScope {
		return false
	}
	if ps := paramScope(s); ps != nil && ps.LookupParam(argumentsName) != nil {
		return true
	}
	if s.LookupLexical(argumentsName) != nil {
		return true
	}
	for _, fn := range s.Functions() {
		if syntax.BoundNames(fn)[0] == argumentsName {
			return true
		}
	}
	return false
}

func (r *resolver) bindPrivate(ref reference) {
	d := ref.scope.FindPrivate(ref.name.Text)
	if d == nil {
		msg := "undeclared private name #" + ref.name.Text
		if n := nearest(ref.name.Text, visiblePrivateNames(ref.scope)); n != "" {
			msg += "; did you mean #" + n + "?"
		}
		r.errorf(ref.pos, UndeclaredPrivateName, "%s", msg)
		return
	}
	ref.name.Resolve(d)
}

func visiblePrivateNames(s *syntax.Scope) []string {
	var names []string
	for t := s; t != nil; t = t.Parent() {
		if t.Kind() == syntax.ClassScope {
			for _, d := range t.PrivateNames() {
				names = append(names, d.Name)
			}
		}
	}
	return names
}
