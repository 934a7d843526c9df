// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import "strings"

// An Abrupt is a set of abrupt completion kinds that target a breakable
// statement.
type Abrupt uint8

const (
	Break Abrupt = 1 << iota
	Continue
)

// Has reports whether a contains every kind in b.
func (a Abrupt) Has(b Abrupt) bool { return a&b == b }

func (a Abrupt) String() string {
	var parts []string
	if a.Has(Break) {
		parts = append(parts, "Break")
	}
	if a.Has(Continue) {
		parts = append(parts, "Continue")
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// completion holds the abrupt-completion facts of a breakable statement.
type completion struct {
	set    bool
	abrupt Abrupt
	labels []string
}

func (c *completion) check() {
	if !c.set {
		panic("internal error: completion of breakable statement queried before resolution")
	}
}

// Abrupt returns the kinds of break and continue statements that target
// the statement.
func (c *completion) Abrupt() Abrupt {
	c.check()
	return c.abrupt
}

// Labels returns the label set of the statement: the labels of the
// enclosing labelled statements that name it, outermost first.
func (c *completion) Labels() []string {
	c.check()
	return c.labels
}

func (c *completion) setCompletion(a Abrupt, labels []string) {
	if c.set {
		panic("internal error: completion of breakable statement set twice")
	}
	c.set = true
	c.abrupt = a
	c.labels = labels
}

// A Breakable is a statement that may be the target of break or
// continue: an iteration statement, a switch or a labelled statement.
type Breakable interface {
	Stmt
	Abrupt() Abrupt
	Labels() []string
	setCompletion(Abrupt, []string)
}

// SetCompletion records the abrupt completions and label set of s.
// The resolver calls it exactly once per breakable statement.
func SetCompletion(s Breakable, a Abrupt, labels []string) {
	s.setCompletion(a, labels)
}
