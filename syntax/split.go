// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// The nodes in this file never come from source text. Size-driven
// rewriting introduces them after resolution to move part of an
// oversized body into a helper method of its own. Each helper runs in
// the scope of the code it was cut from.

// A StatementListMethod holds a segment of a statement list.
type StatementListMethod struct {
	Extent
	stmtNode
	List []Stmt
}

func (x *StatementListMethod) eachChild(f func(Node)) { eachStmt(x.List, f) }

func (x *StatementListMethod) Statements() []Stmt        { return x.List }
func (x *StatementListMethod) SetStatements(list []Stmt) { x.List = list }

// An ExpressionMethod holds an oversized subexpression.
type ExpressionMethod struct {
	Extent
	exprState
	X Expr
}

func (x *ExpressionMethod) eachChild(f func(Node)) { f(x.X) }

// A PropertyDefinitionsMethod holds a run of property definitions of an
// oversized object literal.
type PropertyDefinitionsMethod struct {
	Extent
	Properties []PropertyDefinition
}

func (x *PropertyDefinitionsMethod) eachChild(f func(Node)) {
	for _, p := range x.Properties {
		f(p)
	}
}

// NewStatementListMethod returns a helper holding list, spanning its statements.
func NewStatementListMethod(list []Stmt) *StatementListMethod {
	m := &StatementListMethod{List: list}
	if len(list) > 0 {
		m.Begin = Start(list[0])
		m.End = End(list[len(list)-1])
	}
	return m
}

// NewExpressionMethod returns a helper wrapping x.
func NewExpressionMethod(x Expr) *ExpressionMethod {
	start, end := x.Span()
	return &ExpressionMethod{Extent: MakeExtent(start, end), X: x}
}

// NewPropertyDefinitionsMethod returns a helper holding props.
func NewPropertyDefinitionsMethod(props []PropertyDefinition) *PropertyDefinitionsMethod {
	m := &PropertyDefinitionsMethod{Properties: props}
	if len(props) > 0 {
		m.Begin = Start(props[0])
		m.End = End(props[len(props)-1])
	}
	return m
}
