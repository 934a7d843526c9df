// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// A Class represents the common parts of ClassDeclaration and ClassExpression.
// Classes must be built with NewClassDeclaration or NewClassExpression,
// which compute the static-semantics properties of the class body.
type Class struct {
	Name     *BindingIdentifier // nil for anonymous class expressions
	Heritage Expr               // extends clause, or nil
	Elements []ClassElement

	// set by resolver:
	Scope *Scope // ClassScope holding the inner name binding and private names

	built         bool
	ctor          *MethodDefinition
	instance      []ClassElement // instance fields, in order
	static        []ClassElement // static fields and static blocks, in order
	privateNames  []*PrivateName
	privateMethod bool
}

func (c *Class) compute() {
	c.built = true
	for _, e := range c.Elements {
		switch e := e.(type) {
		case *MethodDefinition:
			if e.Type.IsConstructor() {
				if c.ctor == nil {
					c.ctor = e
				}
				continue
			}
			if p, ok := e.Key.(*PrivateName); ok {
				c.privateNames = append(c.privateNames, p)
				if !e.Static {
					c.privateMethod = true
				}
			}
		case *ClassFieldDefinition:
			if p, ok := e.Key.(*PrivateName); ok {
				c.privateNames = append(c.privateNames, p)
			}
			if e.Static {
				c.static = append(c.static, e)
			} else {
				c.instance = append(c.instance, e)
			}
		case *ClassStaticBlock:
			c.static = append(c.static, e)
		}
	}
}

func (c *Class) check() {
	if !c.built {
		panic("internal error: class not built by NewClassDeclaration or NewClassExpression")
	}
}

// Cls returns c itself. It is promoted to both class nodes.
func (c *Class) Cls() *Class { return c }

// NodeScope returns the class scope.
func (c *Class) NodeScope() *Scope { return c.Scope }

// Constructor returns the class constructor method, or nil if the class
// has an implicit default constructor.
func (c *Class) Constructor() *MethodDefinition {
	c.check()
	return c.ctor
}

// Derived reports whether the class has an extends clause.
func (c *Class) Derived() bool { return c.Heritage != nil }

// InstanceFields returns the instance field definitions, in order.
func (c *Class) InstanceFields() []ClassElement {
	c.check()
	return c.instance
}

// StaticElements returns the static field definitions and static blocks, in order.
func (c *Class) StaticElements() []ClassElement {
	c.check()
	return c.static
}

// PrivateBoundNames returns the private names declared by the class body.
// An accessor pair declares the same name twice.
func (c *Class) PrivateBoundNames() []*PrivateName {
	c.check()
	return c.privateNames
}

// HasInstancePrivateMethods reports whether the class declares a
// non-static private method or accessor.
func (c *Class) HasInstancePrivateMethods() bool {
	c.check()
	return c.privateMethod
}

func (c *Class) eachClassChild(f func(Node)) {
	if c.Name != nil {
		f(c.Name)
	}
	if c.Heritage != nil {
		f(c.Heritage)
	}
	for _, e := range c.Elements {
		f(e)
	}
}

// A ClassNode is a node that embeds a Class.
type ClassNode interface {
	Node
	Cls() *Class
}

// A ClassDeclaration represents class Name extends Heritage { Elements }.
type ClassDeclaration struct {
	Extent
	stmtNode
	Class
}

// NewClassDeclaration returns a class declaration.
func NewClassDeclaration(x Extent, name *BindingIdentifier, heritage Expr, elements []ClassElement) *ClassDeclaration {
	d := &ClassDeclaration{Extent: x, Class: Class{Name: name, Heritage: heritage, Elements: elements}}
	d.compute()
	return d
}

func (x *ClassDeclaration) eachChild(f func(Node)) { x.eachClassChild(f) }

// A ClassExpression represents class Name extends Heritage { Elements }
// in expression position.
type ClassExpression struct {
	Extent
	exprState
	Class
}

// NewClassExpression returns a class expression.
func NewClassExpression(x Extent, name *BindingIdentifier, heritage Expr, elements []ClassElement) *ClassExpression {
	e := &ClassExpression{Extent: x, Class: Class{Name: name, Heritage: heritage, Elements: elements}}
	e.compute()
	return e
}

func (x *ClassExpression) eachChild(f func(Node)) { x.eachClassChild(f) }

// A ClassFieldDefinition represents a field Key = Init of a class body.
type ClassFieldDefinition struct {
	Extent
	Key    PropertyName
	Init   *ClassFieldInitializer // nil if the field has no initializer
	Static bool
}

func (x *ClassFieldDefinition) eachChild(f func(Node)) {
	f(x.Key)
	if x.Init != nil {
		f(x.Init)
	}
}

// A ClassFieldInitializer is the initializer expression of a class field.
// It is evaluated as if it were the body of a method.
type ClassFieldInitializer struct {
	Extent
	X Expr

	// set by resolver:
	Scope *Scope // ClassFieldScope
}

func (x *ClassFieldInitializer) eachChild(f func(Node)) { f(x.X) }

func (x *ClassFieldInitializer) NodeScope() *Scope { return x.Scope }

// A ClassStaticBlock represents static { List } in a class body.
type ClassStaticBlock struct {
	Extent
	List []Stmt

	// set by resolver:
	Scope *Scope // ClassFieldScope
}

func (x *ClassStaticBlock) eachChild(f func(Node)) { eachStmt(x.List, f) }

func (x *ClassStaticBlock) NodeScope() *Scope         { return x.Scope }
func (x *ClassStaticBlock) Statements() []Stmt        { return x.List }
func (x *ClassStaticBlock) SetStatements(list []Stmt) { x.List = list }
