// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// A StatementList is a node whose body is a list of statements.
//
// SetStatements is reserved for size-driven rewriting after resolution.
// The replacement must be semantically equivalent to the original list
// and must not introduce or remove declarations.
type StatementList interface {
	Node
	Statements() []Stmt
	SetStatements([]Stmt)
}

// A Script represents a script compilation unit.
type Script struct {
	Extent
	Path   string
	List   []Stmt
	Strict bool // the script begins with a "use strict" directive or is parsed as strict

	// set by resolver:
	Scope *Scope // ScriptScope, or EvalScope for eval code
}

func (x *Script) eachChild(f func(Node)) { eachStmt(x.List, f) }

func (x *Script) NodeScope() *Scope         { return x.Scope }
func (x *Script) Statements() []Stmt        { return x.List }
func (x *Script) SetStatements(list []Stmt) { x.List = list }

// A Module represents a module compilation unit.
type Module struct {
	Extent
	Path  string
	Items []ModuleItem

	// set by resolver:
	Scope *Scope // ModuleScope
}

func (x *Module) eachChild(f func(Node)) {
	for _, item := range x.Items {
		f(item)
	}
}

func (x *Module) NodeScope() *Scope { return x.Scope }

// A BlockStatement represents { List }.
type BlockStatement struct {
	Extent
	stmtNode
	List []Stmt

	// set by resolver:
	Scope *Scope // BlockScope
}

func (x *BlockStatement) eachChild(f func(Node)) { eachStmt(x.List, f) }

func (x *BlockStatement) NodeScope() *Scope         { return x.Scope }
func (x *BlockStatement) Statements() []Stmt        { return x.List }
func (x *BlockStatement) SetStatements(list []Stmt) { x.List = list }

// An EmptyStatement represents a lone semicolon.
type EmptyStatement struct {
	Extent
	stmtNode
}

func (x *EmptyStatement) eachChild(f func(Node)) {}

// An ExpressionStatement represents X;.
type ExpressionStatement struct {
	Extent
	stmtNode
	X Expr
}

func (x *ExpressionStatement) eachChild(f func(Node)) { f(x.X) }

// An IfStatement represents if (Test) Then else Else.
type IfStatement struct {
	Extent
	stmtNode
	Test Expr
	Then Stmt
	Else Stmt // optional
}

func (x *IfStatement) eachChild(f func(Node)) {
	f(x.Test)
	f(x.Then)
	if x.Else != nil {
		f(x.Else)
	}
}

// A DoWhileStatement represents do Body while (Test).
type DoWhileStatement struct {
	Extent
	stmtNode
	completion
	Body Stmt
	Test Expr
}

func (x *DoWhileStatement) eachChild(f func(Node)) {
	f(x.Body)
	f(x.Test)
}

// A WhileStatement represents while (Test) Body.
type WhileStatement struct {
	Extent
	stmtNode
	completion
	Test Expr
	Body Stmt
}

func (x *WhileStatement) eachChild(f func(Node)) {
	f(x.Test)
	f(x.Body)
}

// A ForStatement represents for (Init; Test; Update) Body.
// Init is nil, an Expr, a *VariableStatement or a *LexicalDeclaration.
type ForStatement struct {
	Extent
	stmtNode
	completion
	Init   Node
	Test   Expr // optional
	Update Expr // optional
	Body   Stmt

	// set by resolver:
	Scope *Scope // BlockScope; nil unless Init is a *LexicalDeclaration
}

func (x *ForStatement) eachChild(f func(Node)) {
	if x.Init != nil {
		f(x.Init)
	}
	if x.Test != nil {
		f(x.Test)
	}
	if x.Update != nil {
		f(x.Update)
	}
	f(x.Body)
}

func (x *ForStatement) NodeScope() *Scope { return x.Scope }

// A ForInStatement represents for (Head in X) Body.
// Head is an assignment target Expr, a *VariableStatement or a
// *LexicalDeclaration declaring exactly one binding.
type ForInStatement struct {
	Extent
	stmtNode
	completion
	Head Node
	X    Expr
	Body Stmt
	Each bool // legacy for each (... in ...) iterates values

	// set by resolver:
	Scope *Scope // BlockScope; nil unless Head is a *LexicalDeclaration
}

func (x *ForInStatement) eachChild(f func(Node)) {
	f(x.Head)
	f(x.X)
	f(x.Body)
}

func (x *ForInStatement) NodeScope() *Scope { return x.Scope }

// A ForOfStatement represents for (Head of X) Body, or for await if Await.
type ForOfStatement struct {
	Extent
	stmtNode
	completion
	Head  Node
	X     Expr
	Body  Stmt
	Await bool

	// set by resolver:
	Scope *Scope // BlockScope; nil unless Head is a *LexicalDeclaration
}

func (x *ForOfStatement) eachChild(f func(Node)) {
	f(x.Head)
	f(x.X)
	f(x.Body)
}

func (x *ForOfStatement) NodeScope() *Scope { return x.Scope }

// A ContinueStatement represents continue Label.
type ContinueStatement struct {
	Extent
	stmtNode
	Label string // optional
}

func (x *ContinueStatement) eachChild(f func(Node)) {}

// A BreakStatement represents break Label.
type BreakStatement struct {
	Extent
	stmtNode
	Label string // optional
}

func (x *BreakStatement) eachChild(f func(Node)) {}

// A ReturnStatement represents return X.
type ReturnStatement struct {
	Extent
	stmtNode
	X Expr // optional
}

func (x *ReturnStatement) eachChild(f func(Node)) {
	if x.X != nil {
		f(x.X)
	}
}

// A WithStatement represents with (X) Body.
type WithStatement struct {
	Extent
	stmtNode
	X    Expr
	Body Stmt

	// set by resolver:
	Scope *Scope // WithScope
}

func (x *WithStatement) eachChild(f func(Node)) {
	f(x.X)
	f(x.Body)
}

func (x *WithStatement) NodeScope() *Scope { return x.Scope }

// A SwitchStatement represents switch (X) { Clauses }.
type SwitchStatement struct {
	Extent
	stmtNode
	completion
	X       Expr
	Clauses []*SwitchClause

	// set by resolver:
	Scope *Scope // BlockScope shared by all clauses
}

func (x *SwitchStatement) eachChild(f func(Node)) {
	f(x.X)
	for _, c := range x.Clauses {
		f(c)
	}
}

func (x *SwitchStatement) NodeScope() *Scope { return x.Scope }

// A SwitchClause represents case Test: List, or default: List if Test is nil.
type SwitchClause struct {
	Extent
	Test Expr
	List []Stmt
}

func (x *SwitchClause) eachChild(f func(Node)) {
	if x.Test != nil {
		f(x.Test)
	}
	eachStmt(x.List, f)
}

func (x *SwitchClause) Statements() []Stmt        { return x.List }
func (x *SwitchClause) SetStatements(list []Stmt) { x.List = list }

// IsDefault reports whether the clause is the default clause.
func (x *SwitchClause) IsDefault() bool { return x.Test == nil }

// A LabelledStatement represents Label: Body.
type LabelledStatement struct {
	Extent
	stmtNode
	completion
	Label string
	Body  Stmt
}

func (x *LabelledStatement) eachChild(f func(Node)) { f(x.Body) }

// A ThrowStatement represents throw X.
type ThrowStatement struct {
	Extent
	stmtNode
	X Expr
}

func (x *ThrowStatement) eachChild(f func(Node)) { f(x.X) }

// A TryStatement represents try Block catch Catch finally Finally.
// At least one of Catch and Finally is present.
type TryStatement struct {
	Extent
	stmtNode
	Block   *BlockStatement
	Catch   *CatchNode      // optional
	Finally *BlockStatement // optional
}

func (x *TryStatement) eachChild(f func(Node)) {
	f(x.Block)
	if x.Catch != nil {
		f(x.Catch)
	}
	if x.Finally != nil {
		f(x.Finally)
	}
}

// A CatchNode represents catch (Param if Guard) Body.
type CatchNode struct {
	Extent
	Param Binding // nil for an optional catch binding
	Guard Expr    // legacy catch guard, or nil
	Body  *BlockStatement

	// set by resolver:
	Scope *Scope // BlockScope holding the parameter bindings
}

func (x *CatchNode) eachChild(f func(Node)) {
	if x.Param != nil {
		f(x.Param)
	}
	if x.Guard != nil {
		f(x.Guard)
	}
	f(x.Body)
}

func (x *CatchNode) NodeScope() *Scope { return x.Scope }

// A DebuggerStatement represents debugger.
type DebuggerStatement struct {
	Extent
	stmtNode
}

func (x *DebuggerStatement) eachChild(f func(Node)) {}

// A VariableStatement represents var Decls.
type VariableStatement struct {
	Extent
	stmtNode
	Decls []*VariableDeclaration
}

func (x *VariableStatement) eachChild(f func(Node)) {
	for _, d := range x.Decls {
		f(d)
	}
}

// A VariableDeclaration represents Target = Init within a var statement.
type VariableDeclaration struct {
	Extent
	Target Binding
	Init   Expr // optional
}

func (x *VariableDeclaration) eachChild(f func(Node)) {
	f(x.Target)
	if x.Init != nil {
		f(x.Init)
	}
}

// A LexicalDeclaration represents let List or const List.
type LexicalDeclaration struct {
	Extent
	stmtNode
	IsConst bool
	List    []*LexicalBinding
}

func (x *LexicalDeclaration) eachChild(f func(Node)) {
	for _, b := range x.List {
		f(b)
	}
}

// A LexicalBinding represents Target = Init within a let or const declaration.
type LexicalBinding struct {
	Extent
	Target Binding
	Init   Expr // optional
}

func (x *LexicalBinding) eachChild(f func(Node)) {
	f(x.Target)
	if x.Init != nil {
		f(x.Init)
	}
}
