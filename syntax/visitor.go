// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// A Visitor dispatches on the Kind of a node to a handler returning R.
//
// Handlers are registered per Kind with On, or per Category with
// OnCategory. A node whose Kind has no handler of its own is passed to
// the handler of the most specific category in its chain that has one;
// every chain ends with CategoryNode, so a handler registered for
// CategoryNode is the default. A node with no applicable handler
// yields the zero R.
//
// Dispatch is a single table lookup. Registration rebuilds the table,
// so handlers should be registered before the first Visit; once built,
// a Visitor may be used by several goroutines at once provided its
// handlers are safe for concurrent use.
type Visitor[R any] struct {
	kinds    [numKinds]func(Node) R
	cats     [numCategories]func(Node) R
	dispatch [numKinds]func(Node) R
}

// An IntVisitor computes an integer for each node, such as a size.
type IntVisitor = Visitor[int]

// An EffectVisitor visits nodes for their side effects only.
type EffectVisitor = Visitor[struct{}]

// NewVisitor returns a visitor with no handlers.
func NewVisitor[R any]() *Visitor[R] { return new(Visitor[R]) }

// On registers f as the handler for nodes of type N, which must be a
// concrete node type such as *IfStatement.
func On[N Node, R any](v *Visitor[R], f func(N) R) {
	var zero N
	if any(zero) == nil {
		panic("internal error: On requires a concrete node type")
	}
	v.kinds[zero.Kind()] = func(n Node) R { return f(n.(N)) }
	v.rebuild()
}

// Do registers f as the handler for nodes of type N of an effect-only visitor.
func Do[N Node](v *EffectVisitor, f func(N)) {
	On(v, func(n N) struct{} {
		f(n)
		return struct{}{}
	})
}

// OnCategory registers f as the fallback handler for category c.
func (v *Visitor[R]) OnCategory(c Category, f func(Node) R) {
	v.cats[c] = f
	v.rebuild()
}

// DoCategory registers f as the fallback handler for category c of an
// effect-only visitor.
func DoCategory(v *EffectVisitor, c Category, f func(Node)) {
	v.OnCategory(c, func(n Node) struct{} {
		f(n)
		return struct{}{}
	})
}

func (v *Visitor[R]) rebuild() {
	for k := Kind(0); k < numKinds; k++ {
		v.dispatch[k] = v.lookup(k, 0)
	}
}

// lookup returns the handler for kind k, skipping the first skip
// entries of its fallback sequence (the kind itself, then its chain).
func (v *Visitor[R]) lookup(k Kind, skip int) func(Node) R {
	if skip == 0 && v.kinds[k] != nil {
		return v.kinds[k]
	}
	chain := kinds[k].chain
	for i := max(skip-1, 0); i < len(chain); i++ {
		if h := v.cats[chain[i]]; h != nil {
			return h
		}
	}
	return v.cats[CategoryNode]
}

// Visit calls the handler for n and returns its result.
func (v *Visitor[R]) Visit(n Node) R {
	if h := v.dispatch[n.Kind()]; h != nil {
		return h(n)
	}
	var zero R
	return zero
}

// VisitAs calls the handler that category c would provide for n,
// ignoring any handler registered for n's Kind or for a category more
// specific than c. A kind handler uses it to delegate to its category.
func (v *Visitor[R]) VisitAs(c Category, n Node) R {
	chain := kinds[n.Kind()].chain
	skip := len(chain) + 1
	for i, x := range chain {
		if x == c {
			skip = i + 1
			break
		}
	}
	if h := v.lookup(n.Kind(), skip); h != nil {
		return h(n)
	}
	var zero R
	return zero
}

// VisitChildren visits each child of n in source order.
func (v *Visitor[R]) VisitChildren(n Node) {
	n.eachChild(func(child Node) { v.Visit(child) })
}

// Fold visits each child of n and combines the results with op,
// starting from init.
func (v *Visitor[R]) Fold(n Node, init R, op func(acc, r R) R) R {
	acc := init
	n.eachChild(func(child Node) { acc = op(acc, v.Visit(child)) })
	return acc
}
