// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewrite

import (
	"slices"

	"github.com/esfront/esfront/syntax"
)

// A StatementList is a node whose body is a list of statements:
// a script, a function, a class static block or a helper segment.
type StatementList interface {
	syntax.Node
	Statements() []syntax.Stmt
	SetStatements([]syntax.Stmt)
}

// SplitStatements moves runs of consecutive statements of body into
// StatementListMethod segments so that no segment exceeds limit.
// It leaves body unchanged if its size is within limit. Statements
// that cannot run as a helper stay in place: function declarations,
// statements larger than limit on their own, and statements through
// which control may leave the body. It returns the number of segments
// created.
func SplitStatements(body StatementList, limit int) int {
	list := body.Statements()
	if SizeOf(list) <= limit {
		return 0
	}
	var (
		out     []syntax.Stmt
		run     []syntax.Stmt
		runSize int
		created int
	)
	flush := func() {
		switch len(run) {
		case 0:
		case 1:
			out = append(out, run[0])
		default:
			out = append(out, syntax.NewStatementListMethod(run))
			created++
		}
		run, runSize = nil, 0
	}
	for _, s := range list {
		size := Size(s)
		if size > limit || !Movable(s) {
			flush()
			out = append(out, s)
			continue
		}
		if runSize+size > limit {
			flush()
		}
		run = append(run, s)
		runSize += size
	}
	flush()
	if created > 0 {
		body.SetStatements(out)
	}
	return created
}

// Split applies SplitStatements to the tree rooted at root and to
// every function and class static block in it, innermost first.
// It returns the number of segments created.
func Split(root syntax.Node, limit int) int {
	var bodies []StatementList
	syntax.Walk(root, func(n syntax.Node) bool {
		if n == nil {
			return true
		}
		if b, ok := n.(StatementList); ok {
			bodies = append(bodies, b)
		}
		return true
	})
	created := 0
	for i := len(bodies) - 1; i >= 0; i-- {
		created += SplitStatements(bodies[i], limit)
	}
	return created
}

// Movable reports whether s can be moved into a helper segment: it is
// not a function declaration, and control cannot leave it by return,
// yield or await, or by a break or continue aimed outside it.
func Movable(s syntax.Stmt) bool {
	if s.Kind().In(syntax.CategoryHoistableDeclaration) {
		return false
	}
	return !escapes(s, jumpTargets{})
}

// jumpTargets describes the statements enclosing a node within the
// statement being tested.
type jumpTargets struct {
	breakable int // enclosing loops and switches
	loops     int
	labels    []string
}

func escapes(n syntax.Node, t jumpTargets) bool {
	switch n.Kind() {
	case syntax.KindReturnStatement, syntax.KindYieldExpression, syntax.KindAwaitExpression:
		return true
	case syntax.KindBreakStatement:
		if label := n.(*syntax.BreakStatement).Label; label != "" {
			return !slices.Contains(t.labels, label)
		}
		return t.breakable == 0
	case syntax.KindContinueStatement:
		if label := n.(*syntax.ContinueStatement).Label; label != "" {
			return !slices.Contains(t.labels, label)
		}
		return t.loops == 0
	case syntax.KindForOfStatement:
		if n.(*syntax.ForOfStatement).Await {
			return true
		}
	case syntax.KindSwitchStatement:
		t.breakable++
	case syntax.KindLabelledStatement:
		t.labels = append(t.labels[:len(t.labels):len(t.labels)], n.(*syntax.LabelledStatement).Label)
	}
	if n.Kind().In(syntax.CategoryFunction) {
		return false
	}
	if n.Kind().In(syntax.CategoryIterationStatement) {
		t.breakable++
		t.loops++
	}
	found := false
	syntax.EachChild(n, func(child syntax.Node) {
		if !found && escapes(child, t) {
			found = true
		}
	})
	return found
}
