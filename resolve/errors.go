// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resolve

import (
	"fmt"
	"sort"

	"github.com/esfront/esfront/syntax"
)

// An ErrorKind classifies a resolver error.
// The kinds are stable and may be used to filter or escalate diagnostics.
type ErrorKind uint8

const (
	DuplicateDeclaration ErrorKind = iota + 1
	DuplicateLabel
	ImmutableAssignment
	UndefinedLabel
	IllegalBreak
	IllegalContinue
	IllegalNewTarget
	IllegalSuper
	UndeclaredPrivateName
	DuplicatePrivateName
	UndeclaredExport
	LegacySyntax
)

var errorKindNames = [...]string{
	DuplicateDeclaration:  "duplicate declaration",
	DuplicateLabel:        "duplicate label",
	ImmutableAssignment:   "immutable assignment",
	UndefinedLabel:        "undefined label",
	IllegalBreak:          "illegal break",
	IllegalContinue:       "illegal continue",
	IllegalNewTarget:      "illegal new.target",
	IllegalSuper:          "illegal super",
	UndeclaredPrivateName: "undeclared private name",
	DuplicatePrivateName:  "duplicate private name",
	UndeclaredExport:      "undeclared export",
	LegacySyntax:          "legacy syntax",
}

func (k ErrorKind) String() string {
	if 0 < k && int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// An ErrorList is a non-empty list of resolver error messages,
// in order of position.
type ErrorList []Error // len > 0

func (e ErrorList) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", e[0].Error(), len(e)-1)
}

// Has reports whether the list contains an error of kind k.
func (e ErrorList) Has(k ErrorKind) bool {
	for _, err := range e {
		if err.Kind == k {
			return true
		}
	}
	return false
}

// An Error describes the nature and position of a resolver error.
type Error struct {
	Pos  syntax.Position
	Kind ErrorKind
	Msg  string
}

func (e Error) Error() string { return e.Pos.String() + ": " + e.Msg }

func (r *resolver) errorf(pos syntax.Position, kind ErrorKind, format string, args ...interface{}) {
	r.errors = append(r.errors, Error{pos, kind, fmt.Sprintf(format, args...)})
}

func (r *resolver) result() error {
	if len(r.errors) == 0 {
		return nil
	}
	sort.SliceStable(r.errors, func(i, j int) bool { return r.errors[i].Pos < r.errors[j].Pos })
	return r.errors
}
