// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// This file defines the nodes of the legacy dialect that have no
// standard counterpart. Legacy variants of standard nodes (starless
// generators, expression closures, for-each, catch guards) are the
// standard nodes with their Legacy, Each or Guard field set.

// An ArrayComprehension represents [for (x of y) if (c) x].
type ArrayComprehension struct {
	Extent
	exprState
	Comprehension *Comprehension
	Legacy        bool // [x for (x in y)] form
}

func (x *ArrayComprehension) eachChild(f func(Node)) { f(x.Comprehension) }

// A GeneratorComprehension represents (for (x of y) x). Its body is
// evaluated lazily, in a function scope of its own.
type GeneratorComprehension struct {
	Extent
	exprState
	Comprehension *Comprehension
	Legacy        bool // (x for (x in y)) form

	// set by resolver:
	Scope *Scope // FunctionScope
}

func (x *GeneratorComprehension) eachChild(f func(Node)) { f(x.Comprehension) }

func (x *GeneratorComprehension) NodeScope() *Scope { return x.Scope }

// A Comprehension is the list of qualifiers and body of an array or
// generator comprehension.
type Comprehension struct {
	Extent
	Qualifiers []ComprehensionQualifier
	Body       Expr
}

func (x *Comprehension) eachChild(f func(Node)) {
	for _, q := range x.Qualifiers {
		f(q)
	}
	f(x.Body)
}

// An IterationKind says how a comprehension for clause iterates.
type IterationKind uint8

const (
	IterateOf     IterationKind = iota // for (x of y)
	IterateIn                          // for (x in y)
	IterateEachIn                      // for each (x in y)
)

var iterationKindNames = [...]string{
	IterateOf:     "of",
	IterateIn:     "in",
	IterateEachIn: "each in",
}

func (k IterationKind) String() string { return iterationKindNames[k] }

// A ComprehensionFor represents for (Binding of X) within a comprehension.
type ComprehensionFor struct {
	Extent
	Binding   Binding
	X         Expr
	Iteration IterationKind

	// set by resolver:
	Scope *Scope // BlockScope holding Binding
}

func (x *ComprehensionFor) eachChild(f func(Node)) {
	f(x.Binding)
	f(x.X)
}

func (x *ComprehensionFor) NodeScope() *Scope { return x.Scope }

// A ComprehensionIf represents if (Cond) within a comprehension.
type ComprehensionIf struct {
	Extent
	Cond Expr
}

func (x *ComprehensionIf) eachChild(f func(Node)) { f(x.Cond) }

// A LetExpression represents let (Bindings) X.
type LetExpression struct {
	Extent
	exprState
	Bindings []*LexicalBinding
	X        Expr

	// set by resolver:
	Scope *Scope // BlockScope
}

func (x *LetExpression) eachChild(f func(Node)) {
	for _, b := range x.Bindings {
		f(b)
	}
	f(x.X)
}

func (x *LetExpression) NodeScope() *Scope { return x.Scope }

// A LetStatement represents let (Bindings) Body.
type LetStatement struct {
	Extent
	stmtNode
	Bindings []*LexicalBinding
	Body     *BlockStatement

	// set by resolver:
	Scope *Scope // BlockScope
}

func (x *LetStatement) eachChild(f func(Node)) {
	for _, b := range x.Bindings {
		f(b)
	}
	f(x.Body)
}

func (x *LetStatement) NodeScope() *Scope { return x.Scope }
