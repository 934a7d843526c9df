// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// A BindingIdentifier is a declaring occurrence of an identifier.
type BindingIdentifier struct {
	Extent
	Name string
}

func (x *BindingIdentifier) eachChild(f func(Node)) {}

// An ArrayBindingPattern represents [Elements] in binding position.
type ArrayBindingPattern struct {
	Extent
	Elements []BindingElementItem
}

func (x *ArrayBindingPattern) eachChild(f func(Node)) {
	for _, e := range x.Elements {
		f(e)
	}
}

// An ObjectBindingPattern represents {Properties, ...Rest} in binding position.
type ObjectBindingPattern struct {
	Extent
	Properties []*BindingProperty
	Rest       *BindingRestProperty // optional
}

func (x *ObjectBindingPattern) eachChild(f func(Node)) {
	for _, p := range x.Properties {
		f(p)
	}
	if x.Rest != nil {
		f(x.Rest)
	}
}

// A BindingElement represents Target = Init, a parameter or an element of
// a binding pattern.
type BindingElement struct {
	Extent
	Target Binding
	Init   Expr // optional
}

func (x *BindingElement) eachChild(f func(Node)) {
	f(x.Target)
	if x.Init != nil {
		f(x.Init)
	}
}

// A BindingElision is a hole in an array binding pattern.
type BindingElision struct {
	Extent
}

func (x *BindingElision) eachChild(f func(Node)) {}

// A BindingRestElement represents ...Target in an array binding pattern
// or parameter list.
type BindingRestElement struct {
	Extent
	Target Binding
}

func (x *BindingRestElement) eachChild(f func(Node)) { f(x.Target) }

// A BindingProperty represents Key: Value in an object binding pattern.
// Key is nil for the shorthand form, in which case Value.Target is a
// *BindingIdentifier.
type BindingProperty struct {
	Extent
	Key   PropertyName
	Value *BindingElement
}

func (x *BindingProperty) eachChild(f func(Node)) {
	if x.Key != nil {
		f(x.Key)
	}
	f(x.Value)
}

// A BindingRestProperty represents ...Target in an object binding pattern.
type BindingRestProperty struct {
	Extent
	Target *BindingIdentifier
}

func (x *BindingRestProperty) eachChild(f func(Node)) { f(x.Target) }
