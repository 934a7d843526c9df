// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resolve

// This file defines the first phase: scope construction, declarations
// and the recording of references.

import (
	"github.com/esfront/esfront/syntax"
)

func (r *resolver) visitor() *syntax.EffectVisitor {
	v := syntax.NewVisitor[struct{}]()

	syntax.DoCategory(v, syntax.CategoryNode, func(n syntax.Node) { v.VisitChildren(n) })

	// References.
	syntax.Do(v, func(x *syntax.IdentifierReference) { r.ref(x, false) })
	syntax.Do(v, func(x *syntax.AssignmentExpression) {
		r.target(x.Target)
		v.Visit(x.Value)
	})
	syntax.Do(v, func(x *syntax.UpdateExpression) { r.target(x.X) })
	syntax.Do(v, func(x *syntax.AssignmentElement) {
		r.target(x.Target)
		if x.Init != nil {
			v.Visit(x.Init)
		}
	})
	syntax.Do(v, func(x *syntax.AssignmentProperty) {
		if x.Key != nil {
			v.Visit(x.Key)
		}
		r.target(x.Target)
		if x.Init != nil {
			v.Visit(x.Init)
		}
	})
	syntax.Do(v, func(x *syntax.AssignmentRestElement) { r.target(x.Target) })
	syntax.Do(v, func(x *syntax.AssignmentRestProperty) { r.target(x.Target) })
	syntax.Do(v, func(x *syntax.PrivatePropertyAccessor) {
		v.Visit(x.X)
		r.private(x.Name, syntax.Start(x))
	})
	syntax.Do(v, func(x *syntax.PrivateInExpression) {
		r.private(x.Name, syntax.Start(x))
		v.Visit(x.Y)
	})
	syntax.Do(v, func(x *syntax.CallExpression) {
		if id, ok := x.Fn.(*syntax.IdentifierReference); ok && id.Name.Text == "eval" && id.Parens() == 0 && !x.Optional {
			r.directEval()
		}
		v.VisitChildren(x)
	})

	// Context-dependent expressions.
	syntax.Do(v, func(x *syntax.NewTarget) {
		if !r.fn.newTarget {
			r.errorf(syntax.Start(x), IllegalNewTarget, "new.target outside function")
		}
	})
	syntax.Do(v, func(x *syntax.SuperPropertyAccessor) { r.superProperty(x) })
	syntax.Do(v, func(x *syntax.SuperElementAccessor) {
		r.superProperty(x)
		v.Visit(x.Index)
	})
	syntax.Do(v, func(x *syntax.SuperCall) {
		if !r.fn.superCall {
			r.errorf(syntax.Start(x), IllegalSuper, "super call outside derived class constructor")
		}
		v.VisitChildren(x)
	})

	// Declarations.
	syntax.Do(v, func(x *syntax.VariableStatement) {
		for _, d := range x.Decls {
			for _, id := range syntax.BoundIdentifiers(d) {
				r.declareVar(id.Name, syntax.VarDecl, syntax.Start(id), id)
			}
		}
		v.VisitChildren(x)
	})
	syntax.Do(v, func(x *syntax.LexicalDeclaration) {
		kind := syntax.LetDecl
		if x.IsConst {
			kind = syntax.ConstDecl
		}
		cur := r.b.Current()
		for _, b := range x.List {
			for _, id := range syntax.BoundIdentifiers(b) {
				r.declareLexical(cur, id.Name, kind, syntax.Start(id), id)
			}
		}
		v.VisitChildren(x)
	})
	syntax.Do(v, func(x *syntax.FunctionDeclaration) { r.hoistable(x) })
	syntax.Do(v, func(x *syntax.GeneratorDeclaration) { r.hoistable(x) })
	syntax.Do(v, func(x *syntax.AsyncFunctionDeclaration) { r.hoistable(x) })
	syntax.Do(v, func(x *syntax.AsyncGeneratorDeclaration) { r.hoistable(x) })
	syntax.Do(v, func(x *syntax.ClassDeclaration) {
		r.declareLexical(r.b.Current(), syntax.BoundNames(x)[0], syntax.ClassDecl, syntax.Start(x), x)
		r.class(x)
	})

	// Functions and classes.
	syntax.DoCategory(v, syntax.CategoryFunction, func(n syntax.Node) {
		// Every function kind other than a declaration or method.
		r.function(n.(syntax.FunctionNode))
	})
	syntax.Do(v, func(x *syntax.MethodDefinition) {
		v.Visit(x.Key)
		r.function(x)
	})
	syntax.Do(v, func(x *syntax.ClassExpression) { r.class(x) })
	syntax.Do(v, func(x *syntax.ClassFieldInitializer) {
		s, save := r.enterField(x)
		x.Scope = s
		v.Visit(x.X)
		r.exitField(s, save)
	})
	syntax.Do(v, func(x *syntax.ClassStaticBlock) {
		s, save := r.enterField(x)
		x.Scope = s
		r.stmts(x.List)
		r.exitField(s, save)
	})

	// Statements with scopes.
	syntax.Do(v, func(x *syntax.BlockStatement) {
		s := r.b.Enter(syntax.BlockScope, x)
		x.Scope = s
		r.stmts(x.List)
		r.b.Exit(s)
	})
	syntax.Do(v, func(x *syntax.WithStatement) {
		v.Visit(x.X)
		s := r.b.Enter(syntax.WithScope, x)
		x.Scope = s
		s.SetDynamic()
		varScope(s.Parent()).SetDynamic()
		v.Visit(x.Body)
		r.b.Exit(s)
	})
	syntax.Do(v, func(x *syntax.CatchNode) { r.catch(x) })

	// Breakable statements and jumps.
	syntax.Do(v, func(x *syntax.WhileStatement) {
		r.breakable(x, true, func() { v.VisitChildren(x) })
	})
	syntax.Do(v, func(x *syntax.DoWhileStatement) {
		r.breakable(x, true, func() { v.VisitChildren(x) })
	})
	syntax.Do(v, func(x *syntax.ForStatement) {
		r.breakable(x, true, func() {
			if x.Init != nil && x.Init.Kind() == syntax.KindLexicalDeclaration {
				s := r.b.Enter(syntax.BlockScope, x)
				x.Scope = s
				defer r.b.Exit(s)
			}
			v.VisitChildren(x)
		})
	})
	syntax.Do(v, func(x *syntax.ForInStatement) {
		if x.Each {
			r.legacy(x, "for each")
		}
		r.breakable(x, true, func() { x.Scope = r.forInOf(x, x.Head, x.X, x.Body) })
	})
	syntax.Do(v, func(x *syntax.ForOfStatement) {
		r.breakable(x, true, func() { x.Scope = r.forInOf(x, x.Head, x.X, x.Body) })
	})
	syntax.Do(v, func(x *syntax.SwitchStatement) {
		r.breakable(x, false, func() {
			v.Visit(x.X)
			s := r.b.Enter(syntax.BlockScope, x)
			x.Scope = s
			for _, c := range x.Clauses {
				v.Visit(c)
			}
			r.b.Exit(s)
		})
	})
	syntax.Do(v, func(x *syntax.LabelledStatement) { r.labelled(x) })
	syntax.Do(v, func(x *syntax.BreakStatement) { r.breakStmt(x) })
	syntax.Do(v, func(x *syntax.ContinueStatement) { r.continueStmt(x) })

	// Modules.
	syntax.Do(v, func(x *syntax.ImportDeclaration) { r.importDecl(x) })
	syntax.Do(v, func(x *syntax.ExportDeclaration) { r.exportDecl(x) })
	syntax.Do(v, func(x *syntax.ExportDefaultExpression) {
		top := r.b.Top()
		r.declareLexical(top, syntax.DefaultName, syntax.ConstDecl, syntax.Start(x), x)
		top.AddExport(&syntax.ExportEntry{ExportName: "default", LocalName: syntax.DefaultName, Pos: syntax.Start(x)})
		v.Visit(x.X)
	})

	// Legacy dialect.
	syntax.Do(v, func(x *syntax.LetStatement) {
		r.legacy(x, "let block")
		s := r.letBindings(x, x.Bindings)
		x.Scope = s
		v.Visit(x.Body)
		r.b.Exit(s)
	})
	syntax.Do(v, func(x *syntax.LetExpression) {
		r.legacy(x, "let expression")
		s := r.letBindings(x, x.Bindings)
		x.Scope = s
		v.Visit(x.X)
		r.b.Exit(s)
	})
	syntax.Do(v, func(x *syntax.ArrayComprehension) {
		r.legacy(x, "array comprehension")
		r.comprehension(x.Comprehension)
	})
	syntax.Do(v, func(x *syntax.GeneratorComprehension) {
		r.legacy(x, "generator comprehension")
		s := r.b.Enter(syntax.FunctionScope, x)
		x.Scope = s
		save := r.fn
		r.fn = newFuncState(save, x)
		r.comprehension(x.Comprehension)
		r.fn = save
		r.b.Exit(s)
	})

	return v
}

// ref records a reference to be resolved in the second phase.
func (r *resolver) ref(x *syntax.IdentifierReference, assign bool) {
	r.refs = append(r.refs, reference{name: x.Name, scope: r.b.Current(), pos: syntax.Start(x), assign: assign})
}

func (r *resolver) private(name *syntax.Name, pos syntax.Position) {
	r.privates = append(r.privates, reference{name: name, scope: r.b.Current(), pos: pos})
}

// target visits the target of an assignment, recording the references
// it assigns.
func (r *resolver) target(x syntax.Expr) {
	if id, ok := x.(*syntax.IdentifierReference); ok {
		r.ref(id, true)
		return
	}
	r.v.Visit(x) // patterns record their own targets
}

func (r *resolver) directEval() {
	cur := r.b.Current()
	r.evals = append(r.evals, cur)
	for s := cur; s != nil; s = s.Parent() {
		s.SetDirectEval()
		if s.Kind().IsTopLevel() {
			break
		}
	}
	if !cur.IsStrict() {
		varScope(cur).SetDynamic()
	}
}

func (r *resolver) superProperty(x syntax.Node) {
	if !r.fn.superProperty {
		r.errorf(syntax.Start(x), IllegalSuper, "super property outside method")
	}
}

// declareLexical declares name lexically in s and reports conflicts
// with other declarations of s.
func (r *resolver) declareLexical(s *syntax.Scope, name string, kind syntax.DeclKind, pos syntax.Position, node syntax.Node) {
	d := &syntax.Decl{Name: name, Kind: kind, Pos: pos, Node: node}
	if prev := s.DeclareLexical(d); prev != nil {
		if kind == syntax.FunctionDecl && prev.Kind == syntax.FunctionDecl &&
			s.Kind() == syntax.BlockScope && !s.IsStrict() && r.opts.AnnexB {
			return // sloppy duplicate block function
		}
		r.errorf(pos, DuplicateDeclaration, "%s already declared at %s", name, prev.Pos)
		return
	}
	if prev := s.LookupVar(name); prev != nil {
		r.errorf(pos, DuplicateDeclaration, "%s already declared as %s at %s", name, prev.Kind, prev.Pos)
		return
	}
	if r.hoisted[s][name] {
		r.errorf(pos, DuplicateDeclaration, "%s conflicts with a var declaration in the same block", name)
		return
	}
	if s.Kind() == syntax.FunctionScope {
		prev := s.LookupParam(name)
		if prev == nil && s.Parent() != nil && s.Parent().Kind() == syntax.ParameterScope {
			prev = s.Parent().LookupParam(name)
		}
		if prev != nil {
			r.errorf(pos, DuplicateDeclaration, "%s already declared as parameter at %s", name, prev.Pos)
		}
	}
}

// declareVar declares name in the var scope of the current scope and
// reports conflicts with the lexical declarations it is hoisted past.
func (r *resolver) declareVar(name string, kind syntax.DeclKind, pos syntax.Position, node syntax.Node) {
	cur := r.b.Current()
	vs := cur.VarScope()
	for s := cur; ; s = s.Parent() {
		if prev := s.LookupLexical(name); prev != nil && !simpleCatchParam(prev) {
			r.errorf(pos, DuplicateDeclaration, "%s already declared as %s at %s", name, prev.Kind, prev.Pos)
			return
		}
		if s == vs {
			break
		}
		m := r.hoisted[s]
		if m == nil {
			m = make(map[string]bool)
			r.hoisted[s] = m
		}
		m[name] = true
	}
	vs.DeclareVar(&syntax.Decl{Name: name, Kind: kind, Pos: pos, Node: node})
}

// simpleCatchParam reports whether d is the parameter of a catch
// clause whose parameter is a plain identifier. Such a parameter may be
// redeclared by var in the catch body.
func simpleCatchParam(d *syntax.Decl) bool {
	if d.Kind != syntax.CatchParamDecl {
		return false
	}
	c, ok := d.Scope().Node().(*syntax.CatchNode)
	return ok && c.Param.Kind() == syntax.KindBindingIdentifier
}

// hoistable declares a function declaration and resolves its body.
func (r *resolver) hoistable(x syntax.HoistableDeclaration) {
	name := syntax.BoundNames(x)[0]
	pos := syntax.Start(x)
	cur := r.b.Current()
	switch cur.Kind() {
	case syntax.ScriptScope, syntax.EvalScope, syntax.FunctionScope, syntax.ClassFieldScope:
		r.declareVar(name, syntax.FunctionDecl, pos, x)
	default:
		r.declareLexical(cur, name, syntax.FunctionDecl, pos, x)
		if cur.Kind() == syntax.BlockScope && !cur.IsStrict() && r.opts.AnnexB &&
			x.Kind() == syntax.KindFunctionDeclaration {
			r.annexB = append(r.annexB, annexB{fn: x, name: name, scope: cur})
		}
	}
	cur.AddFunction(x)
	r.function(x)
}

// function resolves a function: its name, parameters and body.
func (r *resolver) function(fn syntax.FunctionNode) {
	f := fn.Func()
	if f.Legacy {
		r.legacy(fn, "generator without star")
	}
	if syntax.IsExpressionClosure(fn) {
		r.legacy(fn, "expression closure")
	}

	outer := r.b.Current()
	if outer.IsStrict() {
		f.Strict = true
	}
	var nameScope *syntax.Scope
	if f.Name != nil && fn.Kind().In(syntax.CategoryExpression) {
		nameScope = r.b.Enter(syntax.BlockScope, fn)
		nameScope.DeclareLexical(&syntax.Decl{Name: f.Name.Name, Kind: syntax.FunctionNameDecl, Pos: syntax.Start(f.Name), Node: f.Name})
	}

	save := r.fn
	r.fn = newFuncState(save, fn)

	if f.Params.IsSimple() {
		body := r.b.Enter(syntax.FunctionScope, fn)
		if f.Strict {
			body.SetStrict()
		}
		f.Scope = body
		r.declareParams(body, fn)
		r.body(f)
		r.b.Exit(body)
	} else {
		ps := r.b.Enter(syntax.ParameterScope, fn)
		if f.Strict {
			ps.SetStrict()
		}
		f.ParamScope = ps
		r.declareParams(ps, fn)
		r.v.Visit(f.Params)
		body := r.b.Enter(syntax.FunctionScope, fn)
		ps.LinkBody(body)
		f.Scope = body
		r.body(f)
		r.b.Exit(body)
		r.b.Exit(ps)
	}

	r.fn = save
	if nameScope != nil {
		r.b.Exit(nameScope)
	}
}

func (r *resolver) declareParams(s *syntax.Scope, fn syntax.FunctionNode) {
	f := fn.Func()
	unique := s.IsStrict() || !f.Params.IsSimple() || fn.Kind() == syntax.KindMethodDefinition ||
		fn.Kind() == syntax.KindArrowFunction || fn.Kind() == syntax.KindAsyncArrowFunction
	for _, id := range syntax.BoundIdentifiers(f.Params) {
		d := &syntax.Decl{Name: id.Name, Kind: syntax.ParamDecl, Pos: syntax.Start(id), Node: id}
		if prev := s.DeclareParam(d); prev != nil && unique {
			r.errorf(d.Pos, DuplicateDeclaration, "duplicate parameter %s", id.Name)
		}
	}
}

func (r *resolver) body(f *syntax.Function) {
	if f.Concise != nil {
		r.v.Visit(f.Concise)
		return
	}
	r.stmts(f.Body)
}

// class resolves a class: its inner name, private names, heritage and elements.
func (r *resolver) class(c syntax.ClassNode) {
	cls := c.Cls()
	s := r.b.Enter(syntax.ClassScope, c)
	s.SetStrict()
	cls.Scope = s
	if cls.Name != nil {
		s.DeclareLexical(&syntax.Decl{Name: cls.Name.Name, Kind: syntax.ClassNameDecl, Pos: syntax.Start(cls.Name), Node: cls.Name})
	}
	r.declarePrivateNames(s, cls)
	if cls.Heritage != nil {
		r.v.Visit(cls.Heritage)
	}
	for _, e := range cls.Elements {
		r.v.Visit(e)
	}
	r.b.Exit(s)
}

func (r *resolver) declarePrivateNames(s *syntax.Scope, cls *syntax.Class) {
	paired := make(map[string]bool)
	for _, e := range cls.Elements {
		var key syntax.PropertyName
		switch e.Kind() {
		case syntax.KindMethodDefinition:
			key = e.(*syntax.MethodDefinition).Key
		case syntax.KindClassFieldDefinition:
			key = e.(*syntax.ClassFieldDefinition).Key
		default:
			continue
		}
		p, ok := key.(*syntax.PrivateName)
		if !ok {
			continue
		}
		d := &syntax.Decl{Name: p.Name, Kind: syntax.PrivateDecl, Pos: syntax.Start(p), Node: e}
		prev := s.DeclarePrivate(d)
		if prev == nil {
			continue
		}
		if !paired[p.Name] && accessorPair(prev.Node, e) {
			paired[p.Name] = true
			continue
		}
		r.errorf(d.Pos, DuplicatePrivateName, "private name #%s already declared at %s", p.Name, prev.Pos)
	}
}

// accessorPair reports whether x and y are a getter and a setter with
// the same placement.
func accessorPair(x, y syntax.Node) bool {
	mx, ok1 := x.(*syntax.MethodDefinition)
	my, ok2 := y.(*syntax.MethodDefinition)
	if !ok1 || !ok2 || mx.Static != my.Static {
		return false
	}
	return mx.Type == syntax.MethodGetter && my.Type == syntax.MethodSetter ||
		mx.Type == syntax.MethodSetter && my.Type == syntax.MethodGetter
}

// enterField opens the scope of a field initializer or static block.
func (r *resolver) enterField(n syntax.Node) (*syntax.Scope, *funcState) {
	s := r.b.Enter(syntax.ClassFieldScope, n)
	save := r.fn
	r.fn = newFuncState(save, n)
	return s, save
}

func (r *resolver) exitField(s *syntax.Scope, save *funcState) {
	r.b.Exit(s)
	r.fn = save
}

func (r *resolver) catch(x *syntax.CatchNode) {
	s := r.b.Enter(syntax.BlockScope, x)
	x.Scope = s
	if x.Param != nil {
		for _, id := range syntax.BoundIdentifiers(x.Param) {
			d := &syntax.Decl{Name: id.Name, Kind: syntax.CatchParamDecl, Pos: syntax.Start(id), Node: id}
			if prev := s.DeclareLexical(d); prev != nil {
				r.errorf(d.Pos, DuplicateDeclaration, "duplicate catch parameter %s", id.Name)
			}
		}
		r.v.Visit(x.Param)
	}
	if x.Guard != nil {
		r.legacy(x.Guard, "catch guard")
		r.v.Visit(x.Guard)
	}
	r.v.Visit(x.Body)
	for _, d := range x.Body.Scope.Lexical() {
		if prev := s.LookupLexical(d.Name); prev != nil {
			r.errorf(d.Pos, DuplicateDeclaration, "%s already declared as catch parameter at %s", d.Name, prev.Pos)
		}
	}
	r.b.Exit(s)
}

// forInOf resolves the head and body of a for-in or for-of statement
// and returns the scope of a lexical head, if any.
func (r *resolver) forInOf(x syntax.Node, head syntax.Node, iterated syntax.Expr, body syntax.Stmt) *syntax.Scope {
	var s *syntax.Scope
	switch head.Kind() {
	case syntax.KindLexicalDeclaration:
		s = r.b.Enter(syntax.BlockScope, x)
		r.v.Visit(head)
	case syntax.KindVariableStatement:
		r.v.Visit(head)
	default:
		r.target(head.(syntax.Expr))
	}
	r.v.Visit(iterated)
	r.v.Visit(body)
	if s != nil {
		r.b.Exit(s)
	}
	return s
}

// letBindings visits the initializers of a let block or expression in
// the enclosing scope, then opens the scope of its bindings.
func (r *resolver) letBindings(x syntax.Node, bindings []*syntax.LexicalBinding) *syntax.Scope {
	for _, b := range bindings {
		if b.Init != nil {
			r.v.Visit(b.Init)
		}
	}
	s := r.b.Enter(syntax.BlockScope, x)
	for _, b := range bindings {
		for _, id := range syntax.BoundIdentifiers(b) {
			r.declareLexical(s, id.Name, syntax.LetDecl, syntax.Start(id), id)
		}
		r.v.Visit(b.Target)
	}
	return s
}

// comprehension resolves the qualifiers and body of a comprehension.
// Each for qualifier opens a scope that encloses the rest.
func (r *resolver) comprehension(c *syntax.Comprehension) {
	var open []*syntax.Scope
	for _, q := range c.Qualifiers {
		switch q.Kind() {
		case syntax.KindComprehensionFor:
			f := q.(*syntax.ComprehensionFor)
			r.v.Visit(f.X)
			s := r.b.Enter(syntax.BlockScope, f)
			f.Scope = s
			for _, id := range syntax.BoundIdentifiers(f.Binding) {
				r.declareLexical(s, id.Name, syntax.LetDecl, syntax.Start(id), id)
			}
			r.v.Visit(f.Binding)
			open = append(open, s)
		case syntax.KindComprehensionIf:
			r.v.Visit(q.(*syntax.ComprehensionIf).Cond)
		}
	}
	r.v.Visit(c.Body)
	for i := len(open) - 1; i >= 0; i-- {
		r.b.Exit(open[i])
	}
}

func (r *resolver) importDecl(x *syntax.ImportDeclaration) {
	top := r.b.Top()
	spec := x.Specifier
	if x.Clause == nil {
		top.AddImport(&syntax.ImportEntry{ModuleRequest: spec, Pos: syntax.Start(x)})
		return
	}
	add := func(imported string, local *syntax.BindingIdentifier) {
		pos := syntax.Start(local)
		r.declareLexical(top, local.Name, syntax.ImportDecl, pos, local)
		top.AddImport(&syntax.ImportEntry{ModuleRequest: spec, ImportName: imported, LocalName: local.Name, Pos: pos})
	}
	c := x.Clause
	if c.Default != nil {
		add("default", c.Default)
	}
	if c.Namespace != nil {
		add("*", c.Namespace)
	}
	for _, s := range c.Named {
		add(s.Imported, s.Local)
	}
}

func (r *resolver) exportDecl(x *syntax.ExportDeclaration) {
	top := r.b.Top()
	pos := syntax.Start(x)
	local := func(names []string) {
		for _, name := range names {
			top.AddExport(&syntax.ExportEntry{ExportName: name, LocalName: name, Pos: pos})
		}
	}
	switch x.Type {
	case syntax.ExportAll:
		top.AddExport(&syntax.ExportEntry{ExportName: x.Namespace, ModuleRequest: x.ModuleSpecifier(), ImportName: "*", Pos: pos})
	case syntax.ExportExternal:
		for _, s := range x.Clause.Specifiers {
			top.AddExport(&syntax.ExportEntry{ExportName: s.Exported, ModuleRequest: x.ModuleSpecifier(), ImportName: s.Local.Text, Pos: syntax.Start(s)})
		}
	case syntax.ExportLocal:
		for _, s := range x.Clause.Specifiers {
			top.AddExport(&syntax.ExportEntry{ExportName: s.Exported, LocalName: s.Local.Text, Pos: syntax.Start(s)})
			r.exports = append(r.exports, s)
		}
	case syntax.ExportVariable:
		r.v.Visit(x.Variable)
		local(syntax.BoundNames(x.Variable))
	case syntax.ExportDecl:
		r.v.Visit(x.Decl)
		local(syntax.BoundNames(x.Decl))
	case syntax.ExportDefault:
		r.v.Visit(x.Decl)
		top.AddExport(&syntax.ExportEntry{ExportName: "default", LocalName: syntax.BoundNames(x.Decl)[0], Pos: pos})
	}
}
