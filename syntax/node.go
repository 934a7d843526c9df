// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package syntax provides the ECMAScript abstract syntax tree, the
// scope records the parser attaches to it, and the traversal protocol
// shared by the resolver, code generators and rewriting passes.
//
// Nodes are built bottom-up by a parser. Apart from the fields
// documented as "set by resolver" and the statement-list rewrites
// described at StatementList, a node is not modified once built.
package syntax

// A Node is a node in an ECMAScript syntax tree.
//
// The set of nodes is closed: every implementation is defined in this
// package and reports a distinct Kind.
type Node interface {
	// Span returns the start and end position of the node.
	Span() (start, end Position)

	// Kind returns the variant tag of the node.
	Kind() Kind

	// eachChild calls f for each non-nil child, in source order.
	eachChild(f func(Node))
}

// Start returns the start position of the node.
func Start(n Node) Position {
	start, _ := n.Span()
	return start
}

// End returns the end position of the node.
func End(n Node) Position {
	_, end := n.Span()
	return end
}

// EachChild calls f for each non-nil child of n, in source order.
func EachChild(n Node, f func(Node)) { n.eachChild(f) }

// An Expr is an ECMAScript expression.
type Expr interface {
	Node

	// Parens returns the number of parentheses pairs that enclosed
	// the expression in the source.
	Parens() int

	// AddParens records one more enclosing pair of parentheses.
	// The parser calls it; code generators may call it afterwards
	// to improve diagnostics.
	AddParens()

	// HasEmptyCompletion reports whether the value of the
	// expression is never observed. See EmptyCompletion.
	HasEmptyCompletion() bool

	markEmptyCompletion()
}

// exprState holds the mutable annotations shared by all expressions.
type exprState struct {
	parens int32
	empty  bool
}

func (x *exprState) Parens() int              { return int(x.parens) }
func (x *exprState) AddParens()               { x.parens++ }
func (x *exprState) HasEmptyCompletion() bool { return x.empty }
func (x *exprState) markEmptyCompletion()     { x.empty = true }

// EmptyCompletion marks x as an expression whose value is discarded and
// returns the expression that should take its place. A Literal has no
// effect when its value is discarded, so it is replaced by EmptyExpression.
//
// EmptyCompletion is idempotent. Once marked, an expression stays marked.
func EmptyCompletion(x Expr) Expr {
	if _, ok := x.(Literal); ok {
		return EmptyExpression{}
	}
	x.markEmptyCompletion()
	return x
}

// A Literal is a literal expression.
type Literal interface {
	Expr
	literal()
}

func (*NullLiteral) literal()              {}
func (*BooleanLiteral) literal()           {}
func (*NumericLiteral) literal()           {}
func (*BigIntLiteral) literal()            {}
func (*StringLiteral) literal()            {}
func (*RegularExpressionLiteral) literal() {}
func (*TemplateCharacters) literal()       {}

// A ModuleItem is an item of a module body: a statement, a declaration,
// or an import or export declaration.
type ModuleItem interface {
	Node
	moduleItem()
}

func (*ImportDeclaration) moduleItem()       {}
func (*ExportDeclaration) moduleItem()       {}
func (*ExportDefaultExpression) moduleItem() {}

// A Stmt is an ECMAScript statement or declaration (a StatementListItem).
type Stmt interface {
	ModuleItem
	stmt()
}

// stmtNode provides the Stmt and ModuleItem marker methods.
type stmtNode struct{}

func (stmtNode) stmt()       {}
func (stmtNode) moduleItem() {}

// A Declaration is a statement that declares names in its enclosing scope.
type Declaration interface {
	Stmt
	declaration()
}

func (*LexicalDeclaration) declaration()        {}
func (*FunctionDeclaration) declaration()       {}
func (*GeneratorDeclaration) declaration()      {}
func (*AsyncFunctionDeclaration) declaration()  {}
func (*AsyncGeneratorDeclaration) declaration() {}
func (*ClassDeclaration) declaration()          {}

// A HoistableDeclaration is a function, generator or async function declaration.
type HoistableDeclaration interface {
	Declaration
	FunctionNode
}

// A Binding is a binding target: an identifier or a destructuring pattern.
type Binding interface {
	Node
	binding()
}

func (*BindingIdentifier) binding()    {}
func (*ArrayBindingPattern) binding()  {}
func (*ObjectBindingPattern) binding() {}

// A BindingElementItem is an element of an array binding pattern or a
// formal parameter: *BindingElement, *BindingElision or *BindingRestElement.
type BindingElementItem interface {
	Node
	bindingElementItem()
}

func (*BindingElement) bindingElementItem()     {}
func (*BindingElision) bindingElementItem()     {}
func (*BindingRestElement) bindingElementItem() {}

// A PropertyName is the key of a property definition, method, class
// field or destructuring property.
type PropertyName interface {
	Node
	propertyName()
}

func (*IdentifierName) propertyName()       {}
func (*StringLiteral) propertyName()        {}
func (*NumericLiteral) propertyName()       {}
func (*BigIntLiteral) propertyName()        {}
func (*ComputedPropertyName) propertyName() {}
func (*PrivateName) propertyName()          {}

// A PropertyDefinition is an element of an object literal.
type PropertyDefinition interface {
	Node
	propertyDefinition()
}

func (*PropertyValueDefinition) propertyDefinition()   {}
func (*PropertyNameDefinition) propertyDefinition()    {}
func (*SpreadProperty) propertyDefinition()            {}
func (*MethodDefinition) propertyDefinition()          {}
func (*PropertyDefinitionsMethod) propertyDefinition() {}

// A ClassElement is an element of a class body.
type ClassElement interface {
	Node
	classElement()
}

func (*MethodDefinition) classElement()     {}
func (*ClassFieldDefinition) classElement() {}
func (*ClassStaticBlock) classElement()     {}

// An AssignmentElementItem is an element of an array assignment pattern:
// *AssignmentElement, *Elision or *AssignmentRestElement.
type AssignmentElementItem interface {
	Node
	assignmentElementItem()
}

func (*AssignmentElement) assignmentElementItem()     {}
func (*Elision) assignmentElementItem()               {}
func (*AssignmentRestElement) assignmentElementItem() {}

// A ComprehensionQualifier is a for or if clause of a comprehension.
type ComprehensionQualifier interface {
	Node
	comprehensionQualifier()
}

func (*ComprehensionFor) comprehensionQualifier() {}
func (*ComprehensionIf) comprehensionQualifier()  {}

// A ScopedNode is a node that introduces a scope.
type ScopedNode interface {
	Node
	// NodeScope returns the scope introduced by the node.
	// It may be nil for nodes whose scope is optional, such as a
	// for statement without a lexical declaration in its head.
	NodeScope() *Scope
}
