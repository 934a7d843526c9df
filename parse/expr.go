// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/esfront/esfront/syntax"
)

// exprs converts an expression that may be a comma expression.
func (p *parser) exprs(n *sitter.Node) syntax.Expr {
	if n.Type() != "sequence_expression" {
		return p.expr(n)
	}
	var list []syntax.Expr
	var flatten func(n *sitter.Node)
	flatten = func(n *sitter.Node) {
		for _, c := range namedChildren(n) {
			if c.Type() == "sequence_expression" {
				flatten(c)
			} else {
				list = append(list, p.expr(c))
			}
		}
	}
	flatten(n)
	return &syntax.CommaExpression{Extent: p.extent(n), List: list}
}

func (p *parser) expr(n *sitter.Node) syntax.Expr {
	switch n.Type() {
	case "member_expression", "subscript_expression", "call_expression":
		x, optional := p.chain(n)
		if optional {
			return &syntax.OptionalChain{Extent: p.extent(n), X: x}
		}
		return x
	}
	return p.primary(n)
}

// chain converts a member, subscript or call expression and reports
// whether it contains an optional link. The OptionalChain node wraps
// the outermost expression of the chain.
func (p *parser) chain(n *sitter.Node) (syntax.Expr, bool) {
	x := p.extent(n)
	opt := n.ChildByFieldName("optional_chain") != nil
	switch n.Type() {
	case "member_expression":
		obj := n.ChildByFieldName("object")
		prop := n.ChildByFieldName("property")
		switch obj.Type() {
		case "super":
			return &syntax.SuperPropertyAccessor{Extent: x, Name: p.text(prop)}, false
		case "import":
			return &syntax.ImportMeta{Extent: x}, false
		case "new":
			return &syntax.NewTarget{Extent: x}, false
		}
		base, inner := p.link(obj)
		if prop.Type() == "private_property_identifier" {
			name := syntax.NewName(p.text(prop)[1:])
			return &syntax.PrivatePropertyAccessor{Extent: x, X: base, Name: name, Optional: opt}, inner || opt
		}
		return &syntax.PropertyAccessor{Extent: x, X: base, Name: p.text(prop), Optional: opt}, inner || opt

	case "subscript_expression":
		obj := n.ChildByFieldName("object")
		index := p.exprs(n.ChildByFieldName("index"))
		if obj.Type() == "super" {
			return &syntax.SuperElementAccessor{Extent: x, Index: index}, false
		}
		base, inner := p.link(obj)
		return &syntax.ElementAccessor{Extent: x, X: base, Index: index, Optional: opt}, inner || opt

	case "call_expression":
		fn := n.ChildByFieldName("function")
		args := n.ChildByFieldName("arguments")
		switch fn.Type() {
		case "import":
			list := p.args(args)
			if len(list) != 1 {
				p.errorf(n, "import() takes exactly one argument")
			}
			return &syntax.ImportCall{Extent: x, Arg: list[0]}, false
		case "super":
			return &syntax.SuperCall{Extent: x, Args: p.args(args)}, false
		}
		base, inner := p.link(fn)
		if args.Type() == "template_string" {
			return &syntax.TemplateCallExpression{Extent: x, Fn: base, Template: p.template(args, true)}, inner
		}
		return &syntax.CallExpression{Extent: x, Fn: base, Args: p.args(args), Optional: opt}, inner || opt
	}
	return p.expr(n), false
}

// link converts the operand of a member, subscript or call expression,
// continuing its optional chain.
func (p *parser) link(n *sitter.Node) (syntax.Expr, bool) {
	switch n.Type() {
	case "member_expression", "subscript_expression", "call_expression":
		return p.chain(n)
	}
	return p.expr(n), false
}

func (p *parser) args(n *sitter.Node) []syntax.Expr {
	var list []syntax.Expr
	for _, c := range namedChildren(n) {
		list = append(list, p.element(c))
	}
	return list
}

// element converts an array element or argument, which may be a spread.
func (p *parser) element(n *sitter.Node) syntax.Expr {
	if n.Type() == "spread_element" {
		return &syntax.SpreadElement{Extent: p.extent(n), X: p.expr(firstNamed(n))}
	}
	return p.expr(n)
}

func (p *parser) ident(n *sitter.Node) *syntax.IdentifierReference {
	return &syntax.IdentifierReference{Extent: p.extent(n), Name: syntax.NewName(p.text(n))}
}

func (p *parser) primary(n *sitter.Node) syntax.Expr {
	x := p.extent(n)
	switch n.Type() {
	case "parenthesized_expression":
		e := p.exprs(firstNamed(n))
		e.AddParens()
		return e

	case "sequence_expression":
		return p.exprs(n)

	case "identifier", "undefined":
		return p.ident(n)

	case "this":
		return &syntax.ThisExpression{Extent: x}

	case "null":
		return &syntax.NullLiteral{Extent: x}

	case "true", "false":
		return &syntax.BooleanLiteral{Extent: x, Value: n.Type() == "true"}

	case "number":
		return p.number(n)

	case "string":
		return &syntax.StringLiteral{Extent: x, Value: p.stringValue(n)}

	case "template_string":
		return p.template(n, false)

	case "regex":
		r := &syntax.RegularExpressionLiteral{Extent: x, Pattern: p.text(n.ChildByFieldName("pattern"))}
		if f := n.ChildByFieldName("flags"); f != nil {
			r.Flags = p.text(f)
		}
		return r

	case "array":
		return p.array(n)

	case "object":
		return p.object(n)

	case "function", "function_expression", "generator_function", "arrow_function":
		return p.function(n).(syntax.Expr)

	case "class":
		return p.class(n).(syntax.Expr)

	case "meta_property":
		if p.text(n) == "import.meta" {
			return &syntax.ImportMeta{Extent: x}
		}
		return &syntax.NewTarget{Extent: x}

	case "new_expression":
		e := &syntax.NewExpression{Extent: x, Fn: p.expr(n.ChildByFieldName("constructor"))}
		if args := n.ChildByFieldName("arguments"); args != nil {
			e.Args = p.args(args)
		}
		return e

	case "assignment_expression":
		return &syntax.AssignmentExpression{
			Extent: x,
			Op:     syntax.ASSIGN,
			Target: p.target(n.ChildByFieldName("left")),
			Value:  p.expr(n.ChildByFieldName("right")),
		}

	case "augmented_assignment_expression":
		op, ok := syntax.AssignmentOperator(p.text(n.ChildByFieldName("operator")))
		if !ok {
			p.errorf(n, "unknown assignment operator")
		}
		return &syntax.AssignmentExpression{
			Extent: x,
			Op:     op,
			Target: p.target(n.ChildByFieldName("left")),
			Value:  p.expr(n.ChildByFieldName("right")),
		}

	case "unary_expression":
		op, ok := syntax.UnaryOperator(p.text(n.ChildByFieldName("operator")))
		if !ok {
			p.errorf(n, "unknown unary operator")
		}
		return &syntax.UnaryExpression{Extent: x, Op: op, X: p.expr(n.ChildByFieldName("argument"))}

	case "update_expression":
		op, ok := syntax.UpdateOperator(p.text(n.ChildByFieldName("operator")))
		if !ok {
			p.errorf(n, "unknown update operator")
		}
		return &syntax.UpdateExpression{
			Extent: x,
			Op:     op,
			Prefix: !n.Child(0).IsNamed(),
			X:      p.expr(n.ChildByFieldName("argument")),
		}

	case "binary_expression":
		left := n.ChildByFieldName("left")
		right := p.expr(n.ChildByFieldName("right"))
		if left.Type() == "private_property_identifier" {
			return &syntax.PrivateInExpression{Extent: x, Name: syntax.NewName(p.text(left)[1:]), Y: right}
		}
		op, ok := syntax.BinaryOperator(p.text(n.ChildByFieldName("operator")))
		if !ok {
			p.errorf(n, "unknown binary operator")
		}
		return &syntax.BinaryExpression{Extent: x, Op: op, X: p.expr(left), Y: right}

	case "ternary_expression":
		return &syntax.ConditionalExpression{
			Extent: x,
			Test:   p.expr(n.ChildByFieldName("condition")),
			Then:   p.expr(n.ChildByFieldName("consequence")),
			Else:   p.expr(n.ChildByFieldName("alternative")),
		}

	case "yield_expression":
		y := &syntax.YieldExpression{Extent: x, Delegate: hasToken(n, "*")}
		if c := firstNamed(n); c != nil {
			y.X = p.expr(c)
		}
		return y

	case "await_expression":
		return &syntax.AwaitExpression{Extent: x, X: p.expr(firstNamed(n))}

	case "spread_element":
		p.errorf(n, "unexpected spread")

	case "member_expression", "subscript_expression", "call_expression":
		return p.expr(n)
	}
	p.errorf(n, "unsupported expression %s", n.Type())
	panic("unreachable")
}

func (p *parser) array(n *sitter.Node) *syntax.ArrayLiteral {
	a := &syntax.ArrayLiteral{Extent: p.extent(n)}
	elems(n, func(c *sitter.Node, hole bool) {
		if hole {
			a.Elements = append(a.Elements, &syntax.Elision{Extent: p.extent(c)})
			return
		}
		a.Elements = append(a.Elements, p.element(c))
	})
	return a
}

// elems calls f for each element of an array literal or pattern, in
// order. For each hole it calls f with the comma that ends it.
func elems(n *sitter.Node, f func(c *sitter.Node, hole bool)) {
	hole := true // an element may start here
	for _, c := range children(n) {
		switch {
		case !c.IsNamed() && c.Type() == "[":
		case !c.IsNamed() && c.Type() == "]":
		case !c.IsNamed() && c.Type() == ",":
			if hole {
				f(c, true)
			}
			hole = true
		default:
			f(c, false)
			hole = false
		}
	}
}

func (p *parser) object(n *sitter.Node) *syntax.ObjectLiteral {
	o := &syntax.ObjectLiteral{Extent: p.extent(n)}
	for _, c := range namedChildren(n) {
		x := p.extent(c)
		switch c.Type() {
		case "pair":
			o.Properties = append(o.Properties, &syntax.PropertyValueDefinition{
				Extent: x,
				Key:    p.propName(c.ChildByFieldName("key")),
				Value:  p.expr(c.ChildByFieldName("value")),
			})
		case "shorthand_property_identifier":
			o.Properties = append(o.Properties, &syntax.PropertyNameDefinition{Extent: x, Ref: p.ident(c)})
		case "spread_element":
			o.Properties = append(o.Properties, &syntax.SpreadProperty{Extent: x, X: p.expr(firstNamed(c))})
		case "method_definition":
			o.Properties = append(o.Properties, p.method(c, false, false))
		default:
			p.errorf(c, "unexpected %s in object literal", c.Type())
		}
	}
	return o
}

func (p *parser) propName(n *sitter.Node) syntax.PropertyName {
	x := p.extent(n)
	switch n.Type() {
	case "property_identifier", "identifier", "shorthand_property_identifier",
		"shorthand_property_identifier_pattern":
		return &syntax.IdentifierName{Extent: x, Name: p.text(n)}
	case "private_property_identifier":
		return &syntax.PrivateName{Extent: x, Name: p.text(n)[1:]}
	case "string":
		return &syntax.StringLiteral{Extent: x, Value: p.stringValue(n)}
	case "number":
		return p.number(n).(syntax.PropertyName)
	case "computed_property_name":
		return &syntax.ComputedPropertyName{Extent: x, X: p.exprs(firstNamed(n))}
	}
	p.errorf(n, "unexpected property name %s", n.Type())
	panic("unreachable")
}

func (p *parser) template(n *sitter.Node, tagged bool) *syntax.TemplateLiteral {
	t := &syntax.TemplateLiteral{Extent: p.extent(n), Tagged: tagged}
	pos := n.StartByte() + 1
	chars := func(end uint32) {
		raw := normalizeNewlines(string(p.src[pos:end]))
		cooked, ok := unescape(raw, true)
		if !ok && !tagged {
			p.errorf(n, "invalid escape sequence in template")
		}
		t.Elements = append(t.Elements, &syntax.TemplateCharacters{
			Extent: syntax.MakeExtent(p.posAt(pos), p.posAt(end)),
			Cooked: cooked,
			Raw:    raw,
		})
	}
	for _, c := range namedChildren(n) {
		if c.Type() != "template_substitution" {
			continue
		}
		chars(c.StartByte())
		t.Elements = append(t.Elements, p.exprs(firstNamed(c)))
		pos = c.EndByte()
	}
	chars(n.EndByte() - 1)
	return t
}

// function converts a function declaration or expression, a generator
// or an arrow function.
func (p *parser) function(n *sitter.Node) syntax.FunctionNode {
	x := p.extent(n)
	var f syntax.Function
	if name := n.ChildByFieldName("name"); name != nil {
		f.Name = p.bindingIdent(name)
	}
	p.funcParts(n, &f)
	async := hasToken(n, "async")
	gen := hasToken(n, "*")

	switch n.Type() {
	case "function_declaration", "generator_function_declaration":
		switch {
		case async && gen:
			return &syntax.AsyncGeneratorDeclaration{Extent: x, Function: f}
		case gen:
			return &syntax.GeneratorDeclaration{Extent: x, Function: f}
		case async:
			return &syntax.AsyncFunctionDeclaration{Extent: x, Function: f}
		}
		return &syntax.FunctionDeclaration{Extent: x, Function: f}
	case "arrow_function":
		if async {
			return &syntax.AsyncArrowFunction{Extent: x, Function: f}
		}
		return &syntax.ArrowFunction{Extent: x, Function: f}
	}
	switch {
	case async && gen:
		return &syntax.AsyncGeneratorExpression{Extent: x, Function: f}
	case gen:
		return &syntax.GeneratorExpression{Extent: x, Function: f}
	case async:
		return &syntax.AsyncFunctionExpression{Extent: x, Function: f}
	}
	return &syntax.FunctionExpression{Extent: x, Function: f}
}

// funcParts converts the parameters and body of a function.
func (p *parser) funcParts(n *sitter.Node, f *syntax.Function) {
	if params := n.ChildByFieldName("parameters"); params != nil {
		f.Params = p.params(params)
	} else if param := n.ChildByFieldName("parameter"); param != nil {
		f.Params = syntax.NewFormalParameterList(p.extent(param), []syntax.BindingElementItem{
			&syntax.BindingElement{Extent: p.extent(param), Target: p.bindingIdent(param)},
		})
	} else {
		p.errorf(n, "function without parameter list")
	}

	body := n.ChildByFieldName("body")
	if body.Type() != "statement_block" {
		f.Concise = p.expr(body)
		return
	}
	save := p.discard
	p.discard = true
	f.Body, f.Strict = p.body(body)
	p.discard = save
}

// anonymousDecl converts the anonymous function or class of
// export default to a declaration without a name.
func (p *parser) anonymousDecl(n *sitter.Node) syntax.Declaration {
	x := p.extent(n)
	if n.Type() == "class" {
		heritage, elements := p.classBody(n)
		return syntax.NewClassDeclaration(x, nil, heritage, elements)
	}
	fn := p.function(n)
	f := *fn.Func()
	switch fn.Kind() {
	case syntax.KindGeneratorExpression:
		return &syntax.GeneratorDeclaration{Extent: x, Function: f}
	case syntax.KindAsyncFunctionExpression:
		return &syntax.AsyncFunctionDeclaration{Extent: x, Function: f}
	case syntax.KindAsyncGeneratorExpression:
		return &syntax.AsyncGeneratorDeclaration{Extent: x, Function: f}
	}
	return &syntax.FunctionDeclaration{Extent: x, Function: f}
}

func (p *parser) class(n *sitter.Node) syntax.ClassNode {
	x := p.extent(n)
	var name *syntax.BindingIdentifier
	if nm := n.ChildByFieldName("name"); nm != nil {
		name = p.bindingIdent(nm)
	}
	heritage, elements := p.classBody(n)
	if n.Type() == "class_declaration" {
		return syntax.NewClassDeclaration(x, name, heritage, elements)
	}
	return syntax.NewClassExpression(x, name, heritage, elements)
}

func (p *parser) classBody(n *sitter.Node) (heritage syntax.Expr, elements []syntax.ClassElement) {
	for _, c := range namedChildren(n) {
		if c.Type() == "class_heritage" {
			heritage = p.expr(firstNamed(c))
		}
	}
	for _, c := range namedChildren(n.ChildByFieldName("body")) {
		x := p.extent(c)
		switch c.Type() {
		case "method_definition":
			elements = append(elements, p.method(c, true, heritage != nil))
		case "field_definition":
			key := c.ChildByFieldName("property")
			if key == nil {
				key = firstNamed(c)
			}
			fd := &syntax.ClassFieldDefinition{Extent: x, Key: p.propName(key), Static: hasToken(c, "static")}
			if v := c.ChildByFieldName("value"); v != nil {
				fd.Init = &syntax.ClassFieldInitializer{Extent: p.extent(v), X: p.expr(v)}
			}
			elements = append(elements, fd)
		case "class_static_block":
			body := c.ChildByFieldName("body")
			if body == nil {
				body = firstNamed(c)
			}
			save := p.discard
			p.discard = true
			elements = append(elements, &syntax.ClassStaticBlock{Extent: x, List: p.stmts(namedChildren(body))})
			p.discard = save
		case "decorator":
			p.errorf(c, "decorators are not supported")
		default:
			p.errorf(c, "unexpected %s in class body", c.Type())
		}
	}
	return heritage, elements
}

// method converts a method of an object literal or class body.
func (p *parser) method(n *sitter.Node, inClass, derived bool) *syntax.MethodDefinition {
	m := &syntax.MethodDefinition{
		Extent: p.extent(n),
		Static: hasToken(n, "static"),
		Key:    p.propName(n.ChildByFieldName("name")),
	}
	async, gen := hasToken(n, "async"), hasToken(n, "*")
	switch {
	case hasToken(n, "get"):
		m.Type = syntax.MethodGetter
	case hasToken(n, "set"):
		m.Type = syntax.MethodSetter
	case async && gen:
		m.Type = syntax.MethodAsyncGenerator
	case gen:
		m.Type = syntax.MethodGenerator
	case async:
		m.Type = syntax.MethodAsync
	case inClass && !m.Static && isConstructorKey(m.Key):
		m.Type = syntax.MethodClassConstructor
		if derived {
			m.Type = syntax.MethodDerivedConstructor
		}
	}
	p.funcParts(n, &m.Function)
	return m
}

func isConstructorKey(k syntax.PropertyName) bool {
	switch k.Kind() {
	case syntax.KindIdentifierName:
		return k.(*syntax.IdentifierName).Name == "constructor"
	case syntax.KindStringLiteral:
		return k.(*syntax.StringLiteral).Value == "constructor"
	}
	return false
}
