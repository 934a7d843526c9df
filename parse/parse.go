// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse builds syntax trees from ECMAScript source text.
//
// The concrete grammar is the tree-sitter JavaScript grammar. The
// package converts its concrete syntax tree bottom-up into the nodes of
// package syntax, records directive prologues, and marks the values of
// expression statements that are never observed. It does not create
// scopes: that is the first phase of package resolve.
//
// The legacy dialect is not accepted by the grammar; trees in that
// dialect can only be built directly with the syntax constructors.
package parse // import "github.com/esfront/esfront/parse"

import (
	"context"
	"fmt"
	"sort"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/esfront/esfront/syntax"
)

// An Error describes a syntax error in the source of a compilation unit.
type Error struct {
	Filename string
	Pos      syntax.Position
	Msg      string
}

func (e Error) Error() string { return fmt.Sprintf("%s:%s: %s", e.Filename, e.Pos, e.Msg) }

// Script parses the source of a script or of eval code.
// Import and export declarations are rejected.
func Script(ctx context.Context, filename string, src []byte) (_ *syntax.Script, err error) {
	p, root, err := begin(ctx, filename, src)
	if err != nil {
		return nil, err
	}
	defer p.tree.Close()
	defer p.recover(&err)

	list, strict := p.body(root)
	s := &syntax.Script{Extent: p.extent(root), Path: filename, List: list, Strict: strict}
	return s, nil
}

// Module parses the source of a module.
func Module(ctx context.Context, filename string, src []byte) (_ *syntax.Module, err error) {
	p, root, err := begin(ctx, filename, src)
	if err != nil {
		return nil, err
	}
	defer p.tree.Close()
	defer p.recover(&err)

	p.module = true
	p.discard = true
	var items []syntax.ModuleItem
	for _, c := range namedChildren(root) {
		switch c.Type() {
		case "import_statement":
			items = append(items, p.importDecl(c))
		case "export_statement":
			items = append(items, p.exportDecl(c))
		case "hash_bang_line":
		default:
			items = append(items, p.stmt(c))
		}
	}
	return &syntax.Module{Extent: p.extent(root), Path: filename, Items: items}, nil
}

// A parser converts one concrete syntax tree.
type parser struct {
	filename string
	src      []byte
	lines    []int // byte offset of the start of each line
	tree     *sitter.Tree

	module  bool
	discard bool // expression statement values are not observed
}

func begin(ctx context.Context, filename string, src []byte) (*parser, *sitter.Node, error) {
	sp := sitter.NewParser()
	defer sp.Close()
	sp.SetLanguage(javascript.GetLanguage())
	tree, err := sp.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", filename, err)
	}
	p := &parser{filename: filename, src: src, lines: []int{0}, tree: tree}
	for i, b := range src {
		if b == '\n' {
			p.lines = append(p.lines, i+1)
		}
	}
	root := tree.RootNode()
	if root.HasError() {
		n := firstError(root)
		msg := "syntax error"
		if n.IsMissing() {
			msg = fmt.Sprintf("missing %s", n.Type())
		}
		err := Error{filename, p.pos(n.StartPoint()), msg}
		tree.Close()
		return nil, nil, err
	}
	return p, root, nil
}

// firstError returns the first ERROR or MISSING node in n.
func firstError(n *sitter.Node) *sitter.Node {
	if n.IsError() || n.IsMissing() {
		return n
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if c := n.Child(i); c.HasError() || c.IsMissing() {
			return firstError(c)
		}
	}
	return n
}

// errorf reports an error at n and abandons the conversion.
func (p *parser) errorf(n *sitter.Node, format string, args ...interface{}) {
	panic(Error{p.filename, p.pos(n.StartPoint()), fmt.Sprintf(format, args...)})
}

func (p *parser) recover(err *error) {
	if e := recover(); e != nil {
		if e, ok := e.(Error); ok {
			*err = e
			return
		}
		panic(e)
	}
}

func (p *parser) pos(pt sitter.Point) syntax.Position {
	return syntax.MakePosition(int32(pt.Row)+1, int32(pt.Column)+1)
}

// posAt returns the position of a byte offset.
func (p *parser) posAt(off uint32) syntax.Position {
	line := sort.Search(len(p.lines), func(i int) bool { return p.lines[i] > int(off) }) - 1
	return syntax.MakePosition(int32(line)+1, int32(int(off)-p.lines[line])+1)
}

func (p *parser) extent(n *sitter.Node) syntax.Extent {
	return syntax.MakeExtent(p.pos(n.StartPoint()), p.pos(n.EndPoint()))
}

func (p *parser) text(n *sitter.Node) string { return n.Content(p.src) }

// namedChildren returns the named children of n, without comments.
func namedChildren(n *sitter.Node) []*sitter.Node {
	var out []*sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if c := n.NamedChild(i); c.Type() != "comment" {
			out = append(out, c)
		}
	}
	return out
}

// children returns all children of n, without comments.
func children(n *sitter.Node) []*sitter.Node {
	var out []*sitter.Node
	for i := 0; i < int(n.ChildCount()); i++ {
		if c := n.Child(i); c.Type() != "comment" {
			out = append(out, c)
		}
	}
	return out
}

// hasToken reports whether n has an anonymous child spelled tok.
func hasToken(n *sitter.Node, tok string) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		if c := n.Child(i); !c.IsNamed() && c.Type() == tok {
			return true
		}
	}
	return false
}

// firstNamed returns the first named child of n other than a comment, or nil.
func firstNamed(n *sitter.Node) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if c := n.NamedChild(i); c.Type() != "comment" {
			return c
		}
	}
	return nil
}

func sameNode(a, b *sitter.Node) bool {
	return a != nil && b != nil && a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}
