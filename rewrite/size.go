// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rewrite provides passes that run over a resolved tree: a
// code-size estimate and the splitting of oversized statement lists
// into helper segments.
package rewrite

import "github.com/esfront/esfront/syntax"

var sizer = newSizer()

// Size returns an estimate of the amount of code generated for the
// tree rooted at n. Every node contributes one unit. Nested functions
// are compiled separately and contribute only the unit of the closure
// that creates them, as do helper segments already split out.
func Size(n syntax.Node) int { return sizer.Visit(n) }

// SizeOf returns the total size of a list of statements.
func SizeOf(list []syntax.Stmt) int {
	total := 0
	for _, s := range list {
		total += sizer.Visit(s)
	}
	return total
}

func newSizer() *syntax.IntVisitor {
	v := syntax.NewVisitor[int]()
	sum := func(acc, r int) int { return acc + r }
	one := func(syntax.Node) int { return 1 }

	v.OnCategory(syntax.CategoryNode, func(n syntax.Node) int { return v.Fold(n, 1, sum) })
	v.OnCategory(syntax.CategorySplit, one)
	v.OnCategory(syntax.CategoryFunction, one)

	syntax.On(v, func(syntax.EmptyExpression) int { return 0 })
	syntax.On(v, func(x *syntax.EmptyStatement) int { return 0 })

	// A class body contributes its methods as closures and its field
	// initializers inline.
	syntax.On(v, func(x *syntax.ClassFieldInitializer) int { return v.Visit(x.X) })

	// A script is measured without a unit of its own.
	syntax.On(v, func(x *syntax.Script) int { return v.Fold(x, 0, sum) })
	return v
}

// BodySize returns the size of the body of fn, ignoring functions
// nested in it. Parameter initializers are included.
func BodySize(fn syntax.FunctionNode) int {
	f := fn.Func()
	size := 0
	if f.Params != nil {
		size += sizer.Fold(f.Params, 0, func(acc, r int) int { return acc + r })
	}
	if f.Concise != nil {
		return size + Size(f.Concise)
	}
	return size + SizeOf(f.Body)
}
