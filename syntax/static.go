// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// This file defines static-semantics queries over the tree.

// DefaultName is the bound name of an anonymous default export.
const DefaultName = "*default*"

var (
	boundNames   = newBoundNamesVisitor()
	boundIdents  = newBoundIdentifiersVisitor()
	containsExpr = newContainsExpressionVisitor()
)

// BoundNames returns the names bound by a binding, binding element,
// declaration or import declaration, in source order. It returns nil
// for other nodes.
func BoundNames(n Node) []string { return boundNames.Visit(n) }

func newBoundNamesVisitor() *Visitor[[]string] {
	v := NewVisitor[[]string]()
	concat := func(acc, r []string) []string { return append(acc, r...) }
	fold := func(n Node) []string { return v.Fold(n, nil, concat) }
	declName := func(name *BindingIdentifier) []string {
		if name == nil {
			return []string{DefaultName}
		}
		return []string{name.Name}
	}

	On(v, func(x *BindingIdentifier) []string { return []string{x.Name} })
	On(v, func(x *ArrayBindingPattern) []string { return fold(x) })
	On(v, func(x *ObjectBindingPattern) []string { return fold(x) })
	On(v, func(x *BindingElement) []string { return v.Visit(x.Target) })
	On(v, func(x *BindingRestElement) []string { return v.Visit(x.Target) })
	On(v, func(x *BindingProperty) []string { return v.Visit(x.Value) })
	On(v, func(x *BindingRestProperty) []string { return v.Visit(x.Target) })
	On(v, func(x *VariableStatement) []string { return fold(x) })
	On(v, func(x *VariableDeclaration) []string { return v.Visit(x.Target) })
	On(v, func(x *LexicalDeclaration) []string { return fold(x) })
	On(v, func(x *LexicalBinding) []string { return v.Visit(x.Target) })
	On(v, func(x *FunctionDeclaration) []string { return declName(x.Name) })
	On(v, func(x *GeneratorDeclaration) []string { return declName(x.Name) })
	On(v, func(x *AsyncFunctionDeclaration) []string { return declName(x.Name) })
	On(v, func(x *AsyncGeneratorDeclaration) []string { return declName(x.Name) })
	On(v, func(x *ClassDeclaration) []string { return declName(x.Name) })
	On(v, func(x *FormalParameterList) []string { return x.BoundNames() })
	On(v, func(x *ImportDeclaration) []string {
		if x.Clause == nil {
			return nil
		}
		return v.Visit(x.Clause)
	})
	On(v, func(x *ImportClause) []string { return fold(x) })
	On(v, func(x *ImportSpecifier) []string { return v.Visit(x.Local) })
	On(v, func(x *ExportDeclaration) []string {
		switch x.Type {
		case ExportVariable:
			return v.Visit(x.Variable)
		case ExportDecl, ExportDefault:
			return v.Visit(x.Decl)
		}
		return nil
	})
	On(v, func(x *ExportDefaultExpression) []string { return []string{DefaultName} })
	return v
}

// BoundIdentifiers returns the binding identifiers of a binding
// structure: a Binding, a binding or rest element, a binding property,
// a variable or lexical binding, or a parameter list.
func BoundIdentifiers(n Node) []*BindingIdentifier { return boundIdents.Visit(n) }

func newBoundIdentifiersVisitor() *Visitor[[]*BindingIdentifier] {
	v := NewVisitor[[]*BindingIdentifier]()
	concat := func(acc, r []*BindingIdentifier) []*BindingIdentifier { return append(acc, r...) }
	fold := func(n Node) []*BindingIdentifier { return v.Fold(n, nil, concat) }

	On(v, func(x *BindingIdentifier) []*BindingIdentifier { return []*BindingIdentifier{x} })
	On(v, func(x *ArrayBindingPattern) []*BindingIdentifier { return fold(x) })
	On(v, func(x *ObjectBindingPattern) []*BindingIdentifier { return fold(x) })
	On(v, func(x *BindingElement) []*BindingIdentifier { return v.Visit(x.Target) })
	On(v, func(x *BindingRestElement) []*BindingIdentifier { return v.Visit(x.Target) })
	On(v, func(x *BindingProperty) []*BindingIdentifier { return v.Visit(x.Value) })
	On(v, func(x *BindingRestProperty) []*BindingIdentifier { return v.Visit(x.Target) })
	On(v, func(x *VariableDeclaration) []*BindingIdentifier { return v.Visit(x.Target) })
	On(v, func(x *LexicalBinding) []*BindingIdentifier { return v.Visit(x.Target) })
	On(v, func(x *FormalParameterList) []*BindingIdentifier { return fold(x) })
	return v
}

// ContainsExpression reports whether a binding contains an initializer
// or a computed property key.
func ContainsExpression(n Node) bool { return containsExpr.Visit(n) }

func newContainsExpressionVisitor() *Visitor[bool] {
	v := NewVisitor[bool]()
	or := func(acc, r bool) bool { return acc || r }
	fold := func(n Node) bool { return v.Fold(n, false, or) }

	On(v, func(x *ArrayBindingPattern) bool { return fold(x) })
	On(v, func(x *ObjectBindingPattern) bool { return fold(x) })
	On(v, func(x *BindingElement) bool { return x.Init != nil || v.Visit(x.Target) })
	On(v, func(x *BindingRestElement) bool { return v.Visit(x.Target) })
	On(v, func(x *BindingProperty) bool {
		if _, ok := x.Key.(*ComputedPropertyName); ok {
			return true
		}
		return v.Visit(x.Value)
	})
	On(v, func(x *FormalParameterList) bool { return x.ContainsExpression() })
	return v
}

// A ThisMode says how a function binds this.
type ThisMode uint8

const (
	ThisGlobal  ThisMode = iota // sloppy function: undefined this is the global object
	ThisStrict                  // strict function: this is used as passed
	ThisLexical                 // arrow function: this is that of the enclosing code
)

var thisModeNames = [...]string{
	ThisGlobal:  "global",
	ThisStrict:  "strict",
	ThisLexical: "lexical",
}

func (m ThisMode) String() string { return thisModeNames[m] }

// FunctionThisMode returns the this-binding mode of fn.
func FunctionThisMode(fn FunctionNode) ThisMode {
	switch fn.Kind() {
	case KindArrowFunction, KindAsyncArrowFunction:
		return ThisLexical
	}
	if fn.Func().Strict {
		return ThisStrict
	}
	return ThisGlobal
}

// IsGenerator reports whether fn is a generator function, including a
// legacy generator that is declared without a star.
func IsGenerator(fn FunctionNode) bool {
	switch fn.Kind() {
	case KindGeneratorDeclaration, KindGeneratorExpression,
		KindAsyncGeneratorDeclaration, KindAsyncGeneratorExpression:
		return true
	case KindFunctionDeclaration, KindFunctionExpression:
		return fn.Func().Legacy
	case KindMethodDefinition:
		t := fn.(*MethodDefinition).Type
		return t == MethodGenerator || t == MethodAsyncGenerator
	}
	return false
}

// IsAsync reports whether fn is an async function.
func IsAsync(fn FunctionNode) bool {
	switch fn.Kind() {
	case KindAsyncFunctionDeclaration, KindAsyncFunctionExpression,
		KindAsyncGeneratorDeclaration, KindAsyncGeneratorExpression,
		KindAsyncArrowFunction:
		return true
	case KindMethodDefinition:
		t := fn.(*MethodDefinition).Type
		return t == MethodAsync || t == MethodAsyncGenerator
	}
	return false
}

// IsConstructor reports whether a function or class node can be
// called with new. Legacy generators are not constructors.
func IsConstructor(n Node) bool {
	switch n.Kind() {
	case KindFunctionDeclaration, KindFunctionExpression:
		return !n.(FunctionNode).Func().Legacy
	case KindClassDeclaration, KindClassExpression:
		return true
	case KindMethodDefinition:
		return n.(*MethodDefinition).Type.IsConstructor()
	}
	return false
}

// IsAnonymousFunctionDefinition reports whether x is a function or
// class expression without a name. Such an expression takes its name
// from the binding or property it is assigned to.
func IsAnonymousFunctionDefinition(x Expr) bool {
	switch x.Kind() {
	case KindFunctionExpression, KindGeneratorExpression,
		KindAsyncFunctionExpression, KindAsyncGeneratorExpression:
		return x.(FunctionNode).Func().Name == nil
	case KindArrowFunction, KindAsyncArrowFunction:
		return true
	case KindClassExpression:
		return x.(*ClassExpression).Name == nil
	}
	return false
}

// IsExpressionClosure reports whether fn is a legacy expression closure,
// a non-arrow function whose body is a single expression.
func IsExpressionClosure(fn FunctionNode) bool {
	switch fn.Kind() {
	case KindArrowFunction, KindAsyncArrowFunction:
		return false
	}
	return fn.Func().Concise != nil
}
