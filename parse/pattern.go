// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

// This file converts binding and assignment patterns. The grammar uses
// the same node types for both; the position decides which is meant.

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/esfront/esfront/syntax"
)

func (p *parser) bindingIdent(n *sitter.Node) *syntax.BindingIdentifier {
	return &syntax.BindingIdentifier{Extent: p.extent(n), Name: p.text(n)}
}

// binding converts a binding identifier or binding pattern.
func (p *parser) binding(n *sitter.Node) syntax.Binding {
	x := p.extent(n)
	switch n.Type() {
	case "identifier", "undefined", "shorthand_property_identifier_pattern":
		return p.bindingIdent(n)

	case "array_pattern":
		a := &syntax.ArrayBindingPattern{Extent: x}
		elems(n, func(c *sitter.Node, hole bool) {
			switch {
			case hole:
				a.Elements = append(a.Elements, &syntax.BindingElision{Extent: p.extent(c)})
			case c.Type() == "rest_pattern":
				a.Elements = append(a.Elements, &syntax.BindingRestElement{Extent: p.extent(c), Target: p.binding(firstNamed(c))})
			default:
				a.Elements = append(a.Elements, p.bindingElement(c))
			}
		})
		return a

	case "object_pattern":
		o := &syntax.ObjectBindingPattern{Extent: x}
		for _, c := range namedChildren(n) {
			cx := p.extent(c)
			switch c.Type() {
			case "pair_pattern":
				o.Properties = append(o.Properties, &syntax.BindingProperty{
					Extent: cx,
					Key:    p.propName(c.ChildByFieldName("key")),
					Value:  p.bindingElement(c.ChildByFieldName("value")),
				})
			case "shorthand_property_identifier_pattern":
				o.Properties = append(o.Properties, &syntax.BindingProperty{
					Extent: cx,
					Value:  &syntax.BindingElement{Extent: cx, Target: p.bindingIdent(c)},
				})
			case "object_assignment_pattern":
				o.Properties = append(o.Properties, &syntax.BindingProperty{
					Extent: cx,
					Value: &syntax.BindingElement{
						Extent: cx,
						Target: p.binding(c.ChildByFieldName("left")),
						Init:   p.expr(c.ChildByFieldName("right")),
					},
				})
			case "rest_pattern":
				id := firstNamed(c)
				if id.Type() != "identifier" {
					p.errorf(id, "rest property must be an identifier")
				}
				o.Rest = &syntax.BindingRestProperty{Extent: cx, Target: p.bindingIdent(id)}
			default:
				p.errorf(c, "unexpected %s in object pattern", c.Type())
			}
		}
		return o
	}
	p.errorf(n, "invalid binding target %s", n.Type())
	panic("unreachable")
}

// bindingElement converts a binding with an optional initializer.
func (p *parser) bindingElement(n *sitter.Node) *syntax.BindingElement {
	if n.Type() == "assignment_pattern" {
		return &syntax.BindingElement{
			Extent: p.extent(n),
			Target: p.binding(n.ChildByFieldName("left")),
			Init:   p.expr(n.ChildByFieldName("right")),
		}
	}
	return &syntax.BindingElement{Extent: p.extent(n), Target: p.binding(n)}
}

func (p *parser) params(n *sitter.Node) *syntax.FormalParameterList {
	var items []syntax.BindingElementItem
	for _, c := range namedChildren(n) {
		switch c.Type() {
		case "rest_pattern":
			items = append(items, &syntax.BindingRestElement{Extent: p.extent(c), Target: p.binding(firstNamed(c))})
		case "decorator":
			p.errorf(c, "decorators are not supported")
		default:
			items = append(items, p.bindingElement(c))
		}
	}
	return syntax.NewFormalParameterList(p.extent(n), items)
}

// target converts the target of an assignment or of a for-in/of head
// without declaration.
func (p *parser) target(n *sitter.Node) syntax.Expr {
	x := p.extent(n)
	switch n.Type() {
	case "shorthand_property_identifier_pattern":
		return p.ident(n)

	case "array_pattern", "array":
		a := &syntax.ArrayAssignmentPattern{Extent: x}
		elems(n, func(c *sitter.Node, hole bool) {
			switch {
			case hole:
				a.Elements = append(a.Elements, &syntax.Elision{Extent: p.extent(c)})
			case c.Type() == "rest_pattern" || c.Type() == "spread_element":
				a.Elements = append(a.Elements, &syntax.AssignmentRestElement{Extent: p.extent(c), Target: p.target(firstNamed(c))})
			default:
				t, init := p.targetInit(c)
				a.Elements = append(a.Elements, &syntax.AssignmentElement{Extent: p.extent(c), Target: t, Init: init})
			}
		})
		return a

	case "object_pattern":
		o := &syntax.ObjectAssignmentPattern{Extent: x}
		for _, c := range namedChildren(n) {
			cx := p.extent(c)
			switch c.Type() {
			case "pair_pattern":
				t, init := p.targetInit(c.ChildByFieldName("value"))
				o.Properties = append(o.Properties, &syntax.AssignmentProperty{
					Extent: cx,
					Key:    p.propName(c.ChildByFieldName("key")),
					Target: t,
					Init:   init,
				})
			case "shorthand_property_identifier_pattern":
				o.Properties = append(o.Properties, &syntax.AssignmentProperty{Extent: cx, Target: p.ident(c)})
			case "object_assignment_pattern":
				o.Properties = append(o.Properties, &syntax.AssignmentProperty{
					Extent: cx,
					Target: p.target(c.ChildByFieldName("left")),
					Init:   p.expr(c.ChildByFieldName("right")),
				})
			case "rest_pattern":
				o.Rest = &syntax.AssignmentRestProperty{Extent: cx, Target: p.target(firstNamed(c))}
			default:
				p.errorf(c, "unexpected %s in object pattern", c.Type())
			}
		}
		return o

	case "parenthesized_expression":
		e := p.target(firstNamed(n))
		switch e.Kind() {
		case syntax.KindIdentifierReference, syntax.KindPropertyAccessor, syntax.KindElementAccessor,
			syntax.KindPrivatePropertyAccessor, syntax.KindSuperPropertyAccessor, syntax.KindSuperElementAccessor:
		default:
			p.errorf(n, "invalid assignment target")
		}
		e.AddParens()
		return e
	}
	return p.expr(n)
}

// targetInit splits an element of an assignment pattern into its
// target and optional initializer.
func (p *parser) targetInit(n *sitter.Node) (syntax.Expr, syntax.Expr) {
	if n.Type() == "assignment_pattern" {
		return p.target(n.ChildByFieldName("left")), p.expr(n.ChildByFieldName("right"))
	}
	return p.target(n), nil
}
