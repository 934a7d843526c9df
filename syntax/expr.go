// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// An IdentifierReference is a reference occurrence of an identifier.
type IdentifierReference struct {
	Extent
	exprState
	Name *Name
}

func (x *IdentifierReference) eachChild(f func(Node)) {}

// A ThisExpression represents this.
type ThisExpression struct {
	Extent
	exprState
}

func (x *ThisExpression) eachChild(f func(Node)) {}

// A SuperPropertyAccessor represents super.Name.
type SuperPropertyAccessor struct {
	Extent
	exprState
	Name string
}

func (x *SuperPropertyAccessor) eachChild(f func(Node)) {}

// A SuperElementAccessor represents super[Index].
type SuperElementAccessor struct {
	Extent
	exprState
	Index Expr
}

func (x *SuperElementAccessor) eachChild(f func(Node)) { f(x.Index) }

// A SuperCall represents super(Args).
type SuperCall struct {
	Extent
	exprState
	Args []Expr
}

func (x *SuperCall) eachChild(f func(Node)) { eachExpr(x.Args, f) }

// A NewTarget represents new.target.
type NewTarget struct {
	Extent
	exprState
}

func (x *NewTarget) eachChild(f func(Node)) {}

// An ImportMeta represents import.meta.
type ImportMeta struct {
	Extent
	exprState
}

func (x *ImportMeta) eachChild(f func(Node)) {}

// An ImportCall represents import(Arg).
type ImportCall struct {
	Extent
	exprState
	Arg Expr
}

func (x *ImportCall) eachChild(f func(Node)) { f(x.Arg) }

// EmptyExpression is the expression that does nothing and whose value is
// never observed. It has no payload and no position: every
// EmptyExpression value is equivalent to every other.
type EmptyExpression struct{}

func (EmptyExpression) Span() (start, end Position) { return 0, 0 }
func (EmptyExpression) Parens() int                 { return 0 }
func (EmptyExpression) AddParens()                  {}
func (EmptyExpression) HasEmptyCompletion() bool    { return true }
func (EmptyExpression) markEmptyCompletion()        {}
func (EmptyExpression) eachChild(f func(Node))      {}

// A NullLiteral represents null.
type NullLiteral struct {
	Extent
	exprState
}

func (x *NullLiteral) eachChild(f func(Node)) {}

// A BooleanLiteral represents true or false.
type BooleanLiteral struct {
	Extent
	exprState
	Value bool
}

func (x *BooleanLiteral) eachChild(f func(Node)) {}

// A NumericLiteral represents a number.
type NumericLiteral struct {
	Extent
	exprState
	Raw   string // uninterpreted text
	Value float64
}

func (x *NumericLiteral) eachChild(f func(Node)) {}

// A BigIntLiteral represents a BigInt literal such as 10n.
type BigIntLiteral struct {
	Extent
	exprState
	Raw string // digits, without the n suffix
}

func (x *BigIntLiteral) eachChild(f func(Node)) {}

// A StringLiteral represents a string.
type StringLiteral struct {
	Extent
	exprState
	Value string // decoded value
}

func (x *StringLiteral) eachChild(f func(Node)) {}

// A RegularExpressionLiteral represents /Pattern/Flags.
type RegularExpressionLiteral struct {
	Extent
	exprState
	Pattern string
	Flags   string
}

func (x *RegularExpressionLiteral) eachChild(f func(Node)) {}

// A TemplateLiteral represents a template `...${x}...`.
// Elements alternates *TemplateCharacters and substitution expressions,
// starting and ending with *TemplateCharacters.
type TemplateLiteral struct {
	Extent
	exprState
	Tagged   bool
	Elements []Expr
}

func (x *TemplateLiteral) eachChild(f func(Node)) { eachExpr(x.Elements, f) }

// Strings returns the character segments of the template.
func (x *TemplateLiteral) Strings() []*TemplateCharacters {
	var out []*TemplateCharacters
	for _, e := range x.Elements {
		if c, ok := e.(*TemplateCharacters); ok {
			out = append(out, c)
		}
	}
	return out
}

// TemplateCharacters is a literal segment of a template.
type TemplateCharacters struct {
	Extent
	exprState
	Cooked string
	Raw    string
}

func (x *TemplateCharacters) eachChild(f func(Node)) {}

// An ArrayLiteral represents [Elements].
// Holes are represented by *Elision, spreads by *SpreadElement.
type ArrayLiteral struct {
	Extent
	exprState
	Elements []Expr
}

func (x *ArrayLiteral) eachChild(f func(Node)) { eachExpr(x.Elements, f) }

// An ObjectLiteral represents {Properties}.
type ObjectLiteral struct {
	Extent
	exprState
	Properties []PropertyDefinition
}

func (x *ObjectLiteral) eachChild(f func(Node)) {
	for _, p := range x.Properties {
		f(p)
	}
}

// An Elision is a hole in an array literal or array assignment pattern.
type Elision struct {
	Extent
	exprState
}

func (x *Elision) eachChild(f func(Node)) {}

// A SpreadElement represents ...X in an array literal or argument list.
type SpreadElement struct {
	Extent
	exprState
	X Expr
}

func (x *SpreadElement) eachChild(f func(Node)) { f(x.X) }

// A PropertyValueDefinition represents Key: Value in an object literal.
type PropertyValueDefinition struct {
	Extent
	Key   PropertyName
	Value Expr
}

func (x *PropertyValueDefinition) eachChild(f func(Node)) {
	f(x.Key)
	f(x.Value)
}

// A PropertyNameDefinition represents the shorthand {Ref}.
type PropertyNameDefinition struct {
	Extent
	Ref *IdentifierReference
}

func (x *PropertyNameDefinition) eachChild(f func(Node)) { f(x.Ref) }

// A SpreadProperty represents {...X}.
type SpreadProperty struct {
	Extent
	X Expr
}

func (x *SpreadProperty) eachChild(f func(Node)) { f(x.X) }

// An IdentifierName is a property name spelled as an identifier.
type IdentifierName struct {
	Extent
	Name string
}

func (x *IdentifierName) eachChild(f func(Node)) {}

// A ComputedPropertyName represents [X] in property position.
type ComputedPropertyName struct {
	Extent
	X Expr
}

func (x *ComputedPropertyName) eachChild(f func(Node)) { f(x.X) }

// A PrivateName is the declaration of a private name #Name in a class body.
type PrivateName struct {
	Extent
	Name string // without the leading '#'
}

func (x *PrivateName) eachChild(f func(Node)) {}

// A PropertyAccessor represents X.Name, or X?.Name if Optional.
type PropertyAccessor struct {
	Extent
	exprState
	X        Expr
	Name     string
	Optional bool
}

func (x *PropertyAccessor) eachChild(f func(Node)) { f(x.X) }

// An ElementAccessor represents X[Index], or X?.[Index] if Optional.
type ElementAccessor struct {
	Extent
	exprState
	X        Expr
	Index    Expr
	Optional bool
}

func (x *ElementAccessor) eachChild(f func(Node)) {
	f(x.X)
	f(x.Index)
}

// A PrivatePropertyAccessor represents X.#Name, or X?.#Name if Optional.
type PrivatePropertyAccessor struct {
	Extent
	exprState
	X        Expr
	Name     *Name // resolved to the class scope declaring #Name
	Optional bool
}

func (x *PrivatePropertyAccessor) eachChild(f func(Node)) { f(x.X) }

// An OptionalChain delimits a chain of accessors and calls at least one
// of which is optional; a nullish short-circuit skips the rest of X.
type OptionalChain struct {
	Extent
	exprState
	X Expr
}

func (x *OptionalChain) eachChild(f func(Node)) { f(x.X) }

// A CallExpression represents Fn(Args), or Fn?.(Args) if Optional.
type CallExpression struct {
	Extent
	exprState
	Fn       Expr
	Args     []Expr
	Optional bool
}

func (x *CallExpression) eachChild(f func(Node)) {
	f(x.Fn)
	eachExpr(x.Args, f)
}

// A NewExpression represents new Fn(Args).
type NewExpression struct {
	Extent
	exprState
	Fn   Expr
	Args []Expr
}

func (x *NewExpression) eachChild(f func(Node)) {
	f(x.Fn)
	eachExpr(x.Args, f)
}

// A TemplateCallExpression represents the tagged template Fn`...`.
type TemplateCallExpression struct {
	Extent
	exprState
	Fn       Expr
	Template *TemplateLiteral
}

func (x *TemplateCallExpression) eachChild(f func(Node)) {
	f(x.Fn)
	f(x.Template)
}

// A UnaryExpression represents Op X.
type UnaryExpression struct {
	Extent
	exprState
	Op Operator
	X  Expr
}

func (x *UnaryExpression) eachChild(f func(Node)) { f(x.X) }

// An UpdateExpression represents ++X, --X, X++ or X--.
type UpdateExpression struct {
	Extent
	exprState
	Op     Operator // INC or DEC
	Prefix bool
	X      Expr
}

func (x *UpdateExpression) eachChild(f func(Node)) { f(x.X) }

// A BinaryExpression represents X Op Y, including the logical operators.
type BinaryExpression struct {
	Extent
	exprState
	Op Operator
	X  Expr
	Y  Expr
}

func (x *BinaryExpression) eachChild(f func(Node)) {
	f(x.X)
	f(x.Y)
}

// A PrivateInExpression represents #Name in Y.
type PrivateInExpression struct {
	Extent
	exprState
	Name *Name
	Y    Expr
}

func (x *PrivateInExpression) eachChild(f func(Node)) { f(x.Y) }

// A ConditionalExpression represents Test ? Then : Else.
type ConditionalExpression struct {
	Extent
	exprState
	Test Expr
	Then Expr
	Else Expr
}

func (x *ConditionalExpression) eachChild(f func(Node)) {
	f(x.Test)
	f(x.Then)
	f(x.Else)
}

// A CommaExpression represents List[0], List[1], ...
type CommaExpression struct {
	Extent
	exprState
	List []Expr
}

func (x *CommaExpression) eachChild(f func(Node)) { eachExpr(x.List, f) }

// An AssignmentExpression represents Target Op= Value.
// Op is ASSIGN for plain assignment. Target is a simple assignment target
// or, for plain assignment only, an assignment pattern.
type AssignmentExpression struct {
	Extent
	exprState
	Op     Operator
	Target Expr
	Value  Expr
}

func (x *AssignmentExpression) eachChild(f func(Node)) {
	f(x.Target)
	f(x.Value)
}

// A YieldExpression represents yield X or yield* X.
type YieldExpression struct {
	Extent
	exprState
	X        Expr // may be nil
	Delegate bool
}

func (x *YieldExpression) eachChild(f func(Node)) {
	if x.X != nil {
		f(x.X)
	}
}

// An AwaitExpression represents await X.
type AwaitExpression struct {
	Extent
	exprState
	X Expr
}

func (x *AwaitExpression) eachChild(f func(Node)) { f(x.X) }

// An ArrayAssignmentPattern represents [Elements] = ... in assignment position.
type ArrayAssignmentPattern struct {
	Extent
	exprState
	Elements []AssignmentElementItem
}

func (x *ArrayAssignmentPattern) eachChild(f func(Node)) {
	for _, e := range x.Elements {
		f(e)
	}
}

// An ObjectAssignmentPattern represents {Properties, ...Rest} = ... in
// assignment position.
type ObjectAssignmentPattern struct {
	Extent
	exprState
	Properties []*AssignmentProperty
	Rest       *AssignmentRestProperty // optional
}

func (x *ObjectAssignmentPattern) eachChild(f func(Node)) {
	for _, p := range x.Properties {
		f(p)
	}
	if x.Rest != nil {
		f(x.Rest)
	}
}

// An AssignmentElement represents Target = Init within an array assignment pattern.
type AssignmentElement struct {
	Extent
	Target Expr
	Init   Expr // optional
}

func (x *AssignmentElement) eachChild(f func(Node)) {
	f(x.Target)
	if x.Init != nil {
		f(x.Init)
	}
}

// An AssignmentProperty represents Key: Target = Init within an object
// assignment pattern. Key is nil for the shorthand form, in which case
// Target is an *IdentifierReference.
type AssignmentProperty struct {
	Extent
	Key    PropertyName
	Target Expr
	Init   Expr // optional
}

func (x *AssignmentProperty) eachChild(f func(Node)) {
	if x.Key != nil {
		f(x.Key)
	}
	f(x.Target)
	if x.Init != nil {
		f(x.Init)
	}
}

// An AssignmentRestElement represents ...Target within an array assignment pattern.
type AssignmentRestElement struct {
	Extent
	Target Expr
}

func (x *AssignmentRestElement) eachChild(f func(Node)) { f(x.Target) }

// An AssignmentRestProperty represents ...Target within an object assignment pattern.
type AssignmentRestProperty struct {
	Extent
	Target Expr
}

func (x *AssignmentRestProperty) eachChild(f func(Node)) { f(x.Target) }

func eachExpr(list []Expr, f func(Node)) {
	for _, x := range list {
		f(x)
	}
}
