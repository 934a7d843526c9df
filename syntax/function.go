// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// A Function represents the common parts of every function-like node:
// declarations, expressions, arrows and methods.
type Function struct {
	Name    *BindingIdentifier // nil for anonymous functions and methods
	Params  *FormalParameterList
	Body    []Stmt
	Concise Expr // expression body of an arrow or legacy expression closure; Body is nil
	Strict  bool // body is strict mode code
	Legacy  bool // legacy starless generator; an expression closure has a non-nil Concise

	// set by resolver:
	Scope      *Scope // FunctionScope of the body
	ParamScope *Scope // ParameterScope; non-nil iff !Params.IsSimple()
}

// Func returns fn itself. It is promoted to every node that embeds a Function.
func (fn *Function) Func() *Function { return fn }

// NodeScope returns the scope of the function body.
func (fn *Function) NodeScope() *Scope { return fn.Scope }

// Statements returns the body statements of the function.
func (fn *Function) Statements() []Stmt { return fn.Body }

// SetStatements replaces the body statements of the function.
func (fn *Function) SetStatements(list []Stmt) { fn.Body = list }

func (fn *Function) eachFuncChild(f func(Node)) {
	if fn.Name != nil {
		f(fn.Name)
	}
	if fn.Params != nil {
		f(fn.Params)
	}
	if fn.Concise != nil {
		f(fn.Concise)
	}
	eachStmt(fn.Body, f)
}

// A FunctionNode is a node that embeds a Function.
type FunctionNode interface {
	Node
	Func() *Function
}

// A FunctionExpression represents function Name(Params) { Body }.
type FunctionExpression struct {
	Extent
	exprState
	Function
}

func (x *FunctionExpression) eachChild(f func(Node)) { x.eachFuncChild(f) }

// A GeneratorExpression represents function* Name(Params) { Body }.
type GeneratorExpression struct {
	Extent
	exprState
	Function
}

func (x *GeneratorExpression) eachChild(f func(Node)) { x.eachFuncChild(f) }

// An AsyncFunctionExpression represents async function Name(Params) { Body }.
type AsyncFunctionExpression struct {
	Extent
	exprState
	Function
}

func (x *AsyncFunctionExpression) eachChild(f func(Node)) { x.eachFuncChild(f) }

// An AsyncGeneratorExpression represents async function* Name(Params) { Body }.
type AsyncGeneratorExpression struct {
	Extent
	exprState
	Function
}

func (x *AsyncGeneratorExpression) eachChild(f func(Node)) { x.eachFuncChild(f) }

// An ArrowFunction represents (Params) => Body.
type ArrowFunction struct {
	Extent
	exprState
	Function
}

func (x *ArrowFunction) eachChild(f func(Node)) { x.eachFuncChild(f) }

// An AsyncArrowFunction represents async (Params) => Body.
type AsyncArrowFunction struct {
	Extent
	exprState
	Function
}

func (x *AsyncArrowFunction) eachChild(f func(Node)) { x.eachFuncChild(f) }

// A FunctionDeclaration represents function Name(Params) { Body }.
type FunctionDeclaration struct {
	Extent
	stmtNode
	Function
}

func (x *FunctionDeclaration) eachChild(f func(Node)) { x.eachFuncChild(f) }

// A GeneratorDeclaration represents function* Name(Params) { Body }.
type GeneratorDeclaration struct {
	Extent
	stmtNode
	Function
}

func (x *GeneratorDeclaration) eachChild(f func(Node)) { x.eachFuncChild(f) }

// An AsyncFunctionDeclaration represents async function Name(Params) { Body }.
type AsyncFunctionDeclaration struct {
	Extent
	stmtNode
	Function
}

func (x *AsyncFunctionDeclaration) eachChild(f func(Node)) { x.eachFuncChild(f) }

// An AsyncGeneratorDeclaration represents async function* Name(Params) { Body }.
type AsyncGeneratorDeclaration struct {
	Extent
	stmtNode
	Function
}

func (x *AsyncGeneratorDeclaration) eachChild(f func(Node)) { x.eachFuncChild(f) }

// A MethodType distinguishes the forms of MethodDefinition.
type MethodType uint8

const (
	MethodFunction MethodType = iota
	MethodGenerator
	MethodAsync
	MethodAsyncGenerator
	MethodGetter
	MethodSetter
	MethodClassConstructor
	MethodDerivedConstructor
)

var methodTypeNames = [...]string{
	MethodFunction:           "function",
	MethodGenerator:          "generator",
	MethodAsync:              "async",
	MethodAsyncGenerator:     "async generator",
	MethodGetter:             "getter",
	MethodSetter:             "setter",
	MethodClassConstructor:   "constructor",
	MethodDerivedConstructor: "derived constructor",
}

func (t MethodType) String() string { return methodTypeNames[t] }

// IsConstructor reports whether t is one of the class constructor forms.
func (t MethodType) IsConstructor() bool {
	return t == MethodClassConstructor || t == MethodDerivedConstructor
}

// A MethodDefinition represents a method, getter or setter of an object
// literal or class body.
type MethodDefinition struct {
	Extent
	Type   MethodType
	Static bool
	Key    PropertyName
	Function
}

func (x *MethodDefinition) eachChild(f func(Node)) {
	f(x.Key)
	x.eachFuncChild(f)
}

// A FormalParameterList is the parameter list of a function.
// Its static-semantics properties are computed once, by NewFormalParameterList.
type FormalParameterList struct {
	Extent
	params []BindingElementItem

	simple       bool
	containsExpr bool
	names        []string
	expected     int
}

// NewFormalParameterList returns the parameter list for params.
// Each element is a *BindingElement, or a *BindingRestElement in last position.
func NewFormalParameterList(x Extent, params []BindingElementItem) *FormalParameterList {
	p := &FormalParameterList{Extent: x, params: params, simple: true, expected: -1}
	for i, e := range params {
		switch e := e.(type) {
		case *BindingElement:
			if _, ok := e.Target.(*BindingIdentifier); !ok || e.Init != nil {
				p.simple = false
			}
			if e.Init != nil && p.expected < 0 {
				p.expected = i
			}
		case *BindingRestElement:
			p.simple = false
			if p.expected < 0 {
				p.expected = i
			}
		default:
			panic("internal error: unexpected parameter " + e.Kind().String())
		}
		if ContainsExpression(e) {
			p.containsExpr = true
		}
		p.names = append(p.names, BoundNames(e)...)
	}
	if p.expected < 0 {
		p.expected = len(params)
	}
	return p
}

func (p *FormalParameterList) eachChild(f func(Node)) {
	for _, e := range p.params {
		f(e)
	}
}

// Params returns the parameters in order.
func (p *FormalParameterList) Params() []BindingElementItem { return p.params }

// Len returns the number of parameters, including a rest parameter.
func (p *FormalParameterList) Len() int { return len(p.params) }

// IsSimple reports whether every parameter is a plain identifier
// without an initializer, and there is no rest parameter.
func (p *FormalParameterList) IsSimple() bool { return p.simple }

// ContainsExpression reports whether any parameter has an initializer
// or a computed property key.
func (p *FormalParameterList) ContainsExpression() bool { return p.containsExpr }

// BoundNames returns the names bound by the parameters, in order.
// A name occurs more than once if it is bound more than once.
func (p *FormalParameterList) BoundNames() []string { return p.names }

// ExpectedArgumentCount returns the number of parameters that precede
// the first one with an initializer or the rest parameter.
func (p *FormalParameterList) ExpectedArgumentCount() int { return p.expected }

// HasRest reports whether the list ends with a rest parameter.
func (p *FormalParameterList) HasRest() bool {
	if len(p.params) == 0 {
		return false
	}
	_, ok := p.params[len(p.params)-1].(*BindingRestElement)
	return ok
}

func eachStmt(list []Stmt, f func(Node)) {
	for _, s := range list {
		f(s)
	}
}
