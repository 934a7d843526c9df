// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"io"

	"github.com/esfront/esfront/syntax"
)

// A Ref describes the resolution of one identifier reference.
type Ref struct {
	Name  string
	Pos   syntax.Position
	Decl  *syntax.Decl // nil for a global or unresolved reference
	Scope *syntax.Scope
}

// Global reports whether the reference is to an undeclared global.
func (r Ref) Global() bool { return r.Scope != nil && r.Decl == nil }

// Resolved reports whether the reference was linked. A reference in a
// dynamic scope is not.
func (r Ref) Resolved() bool { return r.Scope != nil }

func (r Ref) String() string {
	switch {
	case !r.Resolved():
		return fmt.Sprintf("%s %s: dynamic", r.Pos, r.Name)
	case r.Global():
		return fmt.Sprintf("%s %s: global", r.Pos, r.Name)
	}
	return fmt.Sprintf("%s %s: %s in %s", r.Pos, r.Name, r.Decl, r.Scope)
}

// Refs returns the identifier references of the resolved tree rooted
// at root, in source order.
func Refs(root syntax.Node) []Ref {
	var refs []Ref
	syntax.Walk(root, func(n syntax.Node) bool {
		if n == nil {
			return true
		}
		id, ok := n.(*syntax.IdentifierReference)
		if !ok {
			return true
		}
		r := Ref{Name: id.Name.Text, Pos: id.Begin}
		if id.Name.IsResolved() {
			r.Scope = id.Name.Scope()
			r.Decl = id.Name.Decl()
		}
		refs = append(refs, r)
		return false
	})
	return refs
}

// WriteRefs writes one line per identifier reference of root.
func WriteRefs(w io.Writer, root syntax.Node) error {
	for _, r := range Refs(root) {
		if _, err := fmt.Fprintln(w, r); err != nil {
			return err
		}
	}
	return nil
}
