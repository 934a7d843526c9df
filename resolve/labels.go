// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resolve

import (
	"github.com/esfront/esfront/syntax"
)

// A jumpTarget is a statement that break or continue may target.
type jumpTarget struct {
	labels    []string
	iteration bool // continue may target it
	plain     bool // unlabelled break may target it
	abrupt    syntax.Abrupt
}

func (t *jumpTarget) hasLabel(label string) bool {
	for _, l := range t.labels {
		if l == label {
			return true
		}
	}
	return false
}

// breakable resolves a loop or switch statement s by calling body, and
// records the jumps that target it. The labels of the labelled
// statements that directly enclose s are part of its label set.
func (r *resolver) breakable(s syntax.Breakable, iteration bool, body func()) {
	fn := r.fn
	t := &jumpTarget{labels: fn.pending, iteration: iteration, plain: true}
	fn.pending = nil
	fn.targets = append(fn.targets, t)
	body()
	fn.targets = fn.targets[:len(fn.targets)-1]
	syntax.SetCompletion(s, t.abrupt, t.labels)
}

func (r *resolver) labelled(x *syntax.LabelledStatement) {
	fn := r.fn
	for _, t := range fn.targets {
		if t.hasLabel(x.Label) {
			r.errorf(syntax.Start(x), DuplicateLabel, "label %s already declared", x.Label)
			break
		}
	}
	labels := append(fn.pending[:len(fn.pending):len(fn.pending)], x.Label)
	t := &jumpTarget{labels: labels}
	fn.targets = append(fn.targets, t)
	fn.pending = nil
	if x.Body.Kind().In(syntax.CategoryBreakableStatement) {
		fn.pending = labels
	}
	r.v.Visit(x.Body)
	fn.pending = nil
	fn.targets = fn.targets[:len(fn.targets)-1]
	syntax.SetCompletion(x, t.abrupt, labels)
}

func (r *resolver) breakStmt(x *syntax.BreakStatement) {
	targets := r.fn.targets
	for i := len(targets) - 1; i >= 0; i-- {
		t := targets[i]
		if x.Label == "" && t.plain || x.Label != "" && t.hasLabel(x.Label) {
			t.abrupt |= syntax.Break
			return
		}
	}
	if x.Label == "" {
		r.errorf(syntax.Start(x), IllegalBreak, "break outside loop or switch")
	} else {
		r.errorf(syntax.Start(x), UndefinedLabel, "undefined label %s", x.Label)
	}
}

func (r *resolver) continueStmt(x *syntax.ContinueStatement) {
	targets := r.fn.targets
	for i := len(targets) - 1; i >= 0; i-- {
		t := targets[i]
		switch {
		case x.Label == "":
			if !t.iteration {
				continue
			}
		case !t.hasLabel(x.Label):
			continue
		case !t.iteration:
			r.errorf(syntax.Start(x), IllegalContinue, "continue target %s is not a loop", x.Label)
			return
		}
		t.abrupt |= syntax.Continue
		return
	}
	if x.Label == "" {
		r.errorf(syntax.Start(x), IllegalContinue, "continue outside loop")
	} else {
		r.errorf(syntax.Start(x), UndefinedLabel, "undefined label %s", x.Label)
	}
}
