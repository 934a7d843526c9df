// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/esfront/esfront/syntax"
)

// body converts a statement list that may begin with a directive
// prologue, and reports whether the prologue contains "use strict".
func (p *parser) body(n *sitter.Node) ([]syntax.Stmt, bool) {
	nodes := namedChildren(n)
	strict := false
	for _, c := range nodes {
		if c.Type() == "hash_bang_line" {
			continue
		}
		if c.Type() != "expression_statement" {
			break
		}
		x := firstNamed(c)
		if x == nil || x.Type() != "string" {
			break
		}
		if raw := p.text(x); raw == `"use strict"` || raw == `'use strict'` {
			strict = true
		}
	}
	return p.stmts(nodes), strict
}

func (p *parser) stmts(nodes []*sitter.Node) []syntax.Stmt {
	var list []syntax.Stmt
	for _, c := range nodes {
		if c.Type() == "hash_bang_line" {
			continue
		}
		list = append(list, p.stmt(c))
	}
	return list
}

func (p *parser) stmt(n *sitter.Node) syntax.Stmt {
	x := p.extent(n)
	switch n.Type() {
	case "expression_statement":
		e := p.exprs(firstNamed(n))
		if p.discard {
			e = syntax.EmptyCompletion(e)
		}
		return &syntax.ExpressionStatement{Extent: x, X: e}

	case "variable_declaration":
		return p.varStmt(n)

	case "lexical_declaration":
		return p.lexicalDecl(n)

	case "function_declaration", "generator_function_declaration":
		return p.function(n).(syntax.Stmt)

	case "class_declaration":
		return p.class(n).(syntax.Stmt)

	case "statement_block":
		return p.block(n)

	case "empty_statement":
		return &syntax.EmptyStatement{Extent: x}

	case "if_statement":
		s := &syntax.IfStatement{
			Extent: x,
			Test:   p.cond(n.ChildByFieldName("condition")),
			Then:   p.stmt(n.ChildByFieldName("consequence")),
		}
		if alt := n.ChildByFieldName("alternative"); alt != nil {
			if alt.Type() == "else_clause" {
				alt = firstNamed(alt)
			}
			s.Else = p.stmt(alt)
		}
		return s

	case "while_statement":
		return &syntax.WhileStatement{
			Extent: x,
			Test:   p.cond(n.ChildByFieldName("condition")),
			Body:   p.stmt(n.ChildByFieldName("body")),
		}

	case "do_statement":
		return &syntax.DoWhileStatement{
			Extent: x,
			Body:   p.stmt(n.ChildByFieldName("body")),
			Test:   p.cond(n.ChildByFieldName("condition")),
		}

	case "for_statement":
		return p.forStmt(n)

	case "for_in_statement":
		return p.forInStmt(n)

	case "continue_statement":
		return &syntax.ContinueStatement{Extent: x, Label: p.label(n)}

	case "break_statement":
		return &syntax.BreakStatement{Extent: x, Label: p.label(n)}

	case "return_statement":
		s := &syntax.ReturnStatement{Extent: x}
		if c := firstNamed(n); c != nil {
			s.X = p.exprs(c)
		}
		return s

	case "throw_statement":
		return &syntax.ThrowStatement{Extent: x, X: p.exprs(firstNamed(n))}

	case "with_statement":
		return &syntax.WithStatement{
			Extent: x,
			X:      p.cond(n.ChildByFieldName("object")),
			Body:   p.stmt(n.ChildByFieldName("body")),
		}

	case "switch_statement":
		return p.switchStmt(n)

	case "labeled_statement":
		label := n.ChildByFieldName("label")
		body := n.ChildByFieldName("body")
		if body == nil {
			kids := namedChildren(n)
			body = kids[len(kids)-1]
		}
		return &syntax.LabelledStatement{Extent: x, Label: p.text(label), Body: p.stmt(body)}

	case "try_statement":
		return p.tryStmt(n)

	case "debugger_statement":
		return &syntax.DebuggerStatement{Extent: x}

	case "import_statement", "export_statement":
		if p.module {
			p.errorf(n, "import and export declarations may only appear at top level of a module")
		}
		p.errorf(n, "import and export declarations may only appear in a module")
	}
	p.errorf(n, "unexpected %s", n.Type())
	panic("unreachable")
}

func (p *parser) block(n *sitter.Node) *syntax.BlockStatement {
	return &syntax.BlockStatement{Extent: p.extent(n), List: p.stmts(namedChildren(n))}
}

// cond returns the expression of a parenthesized statement head.
// The parentheses belong to the statement, not to the expression.
func (p *parser) cond(n *sitter.Node) syntax.Expr {
	if n.Type() == "parenthesized_expression" {
		return p.exprs(firstNamed(n))
	}
	return p.exprs(n)
}

func (p *parser) label(n *sitter.Node) string {
	if l := n.ChildByFieldName("label"); l != nil {
		return p.text(l)
	}
	if c := firstNamed(n); c != nil && c.Type() == "statement_identifier" {
		return p.text(c)
	}
	return ""
}

func (p *parser) varStmt(n *sitter.Node) *syntax.VariableStatement {
	s := &syntax.VariableStatement{Extent: p.extent(n)}
	for _, c := range namedChildren(n) {
		d := &syntax.VariableDeclaration{Extent: p.extent(c), Target: p.binding(c.ChildByFieldName("name"))}
		if v := c.ChildByFieldName("value"); v != nil {
			d.Init = p.expr(v)
		}
		s.Decls = append(s.Decls, d)
	}
	return s
}

func (p *parser) lexicalDecl(n *sitter.Node) *syntax.LexicalDeclaration {
	d := &syntax.LexicalDeclaration{Extent: p.extent(n), IsConst: hasToken(n, "const")}
	for _, c := range namedChildren(n) {
		if c.Type() != "variable_declarator" {
			continue
		}
		b := &syntax.LexicalBinding{Extent: p.extent(c), Target: p.binding(c.ChildByFieldName("name"))}
		if v := c.ChildByFieldName("value"); v != nil {
			b.Init = p.expr(v)
		}
		d.List = append(d.List, b)
	}
	return d
}

func (p *parser) forStmt(n *sitter.Node) *syntax.ForStatement {
	s := &syntax.ForStatement{Extent: p.extent(n), Body: p.stmt(n.ChildByFieldName("body"))}
	if init := n.ChildByFieldName("initializer"); init != nil {
		switch init.Type() {
		case "lexical_declaration":
			s.Init = p.lexicalDecl(init)
		case "variable_declaration":
			s.Init = p.varStmt(init)
		case "expression_statement":
			s.Init = p.exprs(firstNamed(init))
		case "empty_statement":
		default:
			s.Init = p.exprs(init)
		}
	}
	if test := n.ChildByFieldName("condition"); test != nil {
		switch test.Type() {
		case "expression_statement":
			s.Test = p.exprs(firstNamed(test))
		case "empty_statement":
		default:
			s.Test = p.exprs(test)
		}
	}
	if update := n.ChildByFieldName("increment"); update != nil {
		s.Update = p.exprs(update)
	}
	return s
}

// forInStmt converts a for-in, for-of or for-await-of statement.
func (p *parser) forInStmt(n *sitter.Node) syntax.Stmt {
	left := n.ChildByFieldName("left")
	var kind, op string
	if k := n.ChildByFieldName("kind"); k != nil {
		kind = p.text(k)
	}
	if o := n.ChildByFieldName("operator"); o != nil {
		op = p.text(o)
	}
	for _, c := range children(n) {
		if c.IsNamed() {
			continue
		}
		switch t := c.Type(); t {
		case "var", "let", "const":
			if kind == "" {
				kind = t
			}
		case "in", "of":
			if op == "" {
				op = t
			}
		}
	}

	var head syntax.Node
	switch kind {
	case "var":
		head = &syntax.VariableStatement{
			Extent: p.extent(left),
			Decls:  []*syntax.VariableDeclaration{{Extent: p.extent(left), Target: p.binding(left)}},
		}
	case "let", "const":
		head = &syntax.LexicalDeclaration{
			Extent:  p.extent(left),
			IsConst: kind == "const",
			List:    []*syntax.LexicalBinding{{Extent: p.extent(left), Target: p.binding(left)}},
		}
	default:
		head = p.target(left)
	}

	x := p.extent(n)
	right := p.exprs(n.ChildByFieldName("right"))
	body := p.stmt(n.ChildByFieldName("body"))
	if op == "of" {
		return &syntax.ForOfStatement{Extent: x, Head: head, X: right, Body: body, Await: hasToken(n, "await")}
	}
	return &syntax.ForInStatement{Extent: x, Head: head, X: right, Body: body}
}

func (p *parser) switchStmt(n *sitter.Node) *syntax.SwitchStatement {
	s := &syntax.SwitchStatement{Extent: p.extent(n), X: p.cond(n.ChildByFieldName("value"))}
	for _, c := range namedChildren(n.ChildByFieldName("body")) {
		clause := &syntax.SwitchClause{Extent: p.extent(c)}
		test := c.ChildByFieldName("value")
		if c.Type() == "switch_case" {
			clause.Test = p.exprs(test)
		}
		for _, b := range namedChildren(c) {
			if sameNode(b, test) {
				continue
			}
			clause.List = append(clause.List, p.stmt(b))
		}
		s.Clauses = append(s.Clauses, clause)
	}
	return s
}

func (p *parser) tryStmt(n *sitter.Node) *syntax.TryStatement {
	s := &syntax.TryStatement{Extent: p.extent(n), Block: p.block(n.ChildByFieldName("body"))}
	if h := n.ChildByFieldName("handler"); h != nil {
		c := &syntax.CatchNode{Extent: p.extent(h), Body: p.block(h.ChildByFieldName("body"))}
		if param := h.ChildByFieldName("parameter"); param != nil {
			c.Param = p.binding(param)
		}
		s.Catch = c
	}
	if f := n.ChildByFieldName("finalizer"); f != nil {
		s.Finally = p.block(f.ChildByFieldName("body"))
	}
	return s
}

func (p *parser) importDecl(n *sitter.Node) *syntax.ImportDeclaration {
	d := &syntax.ImportDeclaration{Extent: p.extent(n), Specifier: p.stringValue(n.ChildByFieldName("source"))}
	for _, c := range namedChildren(n) {
		if c.Type() != "import_clause" {
			continue
		}
		clause := &syntax.ImportClause{Extent: p.extent(c)}
		for _, part := range namedChildren(c) {
			switch part.Type() {
			case "identifier":
				clause.Default = p.bindingIdent(part)
			case "namespace_import":
				clause.Namespace = p.bindingIdent(firstNamed(part))
			case "named_imports":
				for _, s := range namedChildren(part) {
					name := s.ChildByFieldName("name")
					local := name
					if alias := s.ChildByFieldName("alias"); alias != nil {
						local = alias
					}
					clause.Named = append(clause.Named, &syntax.ImportSpecifier{
						Extent:   p.extent(s),
						Imported: p.moduleExportName(name),
						Local:    p.bindingIdent(local),
					})
				}
			}
		}
		d.Clause = clause
	}
	return d
}

func (p *parser) exportDecl(n *sitter.Node) syntax.ModuleItem {
	x := p.extent(n)
	if decl := n.ChildByFieldName("declaration"); decl != nil {
		t := syntax.ExportDecl
		if hasToken(n, "default") {
			t = syntax.ExportDefault
		}
		if decl.Type() == "variable_declaration" {
			return &syntax.ExportDeclaration{Extent: x, Type: syntax.ExportVariable, Variable: p.varStmt(decl)}
		}
		return &syntax.ExportDeclaration{Extent: x, Type: t, Decl: p.stmt(decl).(syntax.Declaration)}
	}
	if v := n.ChildByFieldName("value"); v != nil {
		// export default function () {} and export default class {}
		// declare the binding *default*.
		switch v.Type() {
		case "function", "function_expression", "generator_function", "class":
			if v.ChildByFieldName("name") == nil {
				return &syntax.ExportDeclaration{Extent: x, Type: syntax.ExportDefault, Decl: p.anonymousDecl(v)}
			}
		}
		return &syntax.ExportDefaultExpression{Extent: x, X: p.expr(v)}
	}

	var source string
	if src := n.ChildByFieldName("source"); src != nil {
		source = p.stringValue(src)
	}
	var clause *syntax.ExportClause
	namespace := ""
	for _, c := range namedChildren(n) {
		switch c.Type() {
		case "export_clause":
			clause = &syntax.ExportClause{Extent: p.extent(c)}
			for _, s := range namedChildren(c) {
				name := s.ChildByFieldName("name")
				exported := name
				if alias := s.ChildByFieldName("alias"); alias != nil {
					exported = alias
				}
				clause.Specifiers = append(clause.Specifiers, &syntax.ExportSpecifier{
					Extent:   p.extent(s),
					Local:    syntax.NewName(p.moduleExportName(name)),
					Exported: p.moduleExportName(exported),
				})
			}
		case "namespace_export":
			namespace = p.moduleExportName(firstNamed(c))
		}
	}
	switch {
	case clause == nil:
		return syntax.NewExportFrom(x, syntax.ExportAll, nil, namespace, source)
	case source != "":
		return syntax.NewExportFrom(x, syntax.ExportExternal, clause, "", source)
	default:
		return &syntax.ExportDeclaration{Extent: x, Type: syntax.ExportLocal, Clause: clause}
	}
}

// moduleExportName returns the name of an identifier or string module export name.
func (p *parser) moduleExportName(n *sitter.Node) string {
	if n.Type() == "string" {
		return p.stringValue(n)
	}
	return p.text(n)
}
