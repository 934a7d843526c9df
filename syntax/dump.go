// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import (
	"bytes"
	"fmt"
	"reflect"
)

// Dump returns a compact S-expression rendering of the tree rooted at n,
// for tests and debugging. Positions and scopes are omitted; references
// and binding identifiers are shown as bare names.
func Dump(n Node) string {
	var buf bytes.Buffer
	writeNode(&buf, n)
	return buf.String()
}

var (
	positionType = reflect.TypeOf(Position(0))
	extentType   = reflect.TypeOf(Extent{})
	scopePtrType = reflect.TypeOf((*Scope)(nil))
	namePtrType  = reflect.TypeOf((*Name)(nil))
	nodeType     = reflect.TypeOf((*Node)(nil)).Elem()
	stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
)

func writeNode(out *bytes.Buffer, n Node) {
	switch n.Kind() {
	case KindIdentifierReference:
		out.WriteString(n.(*IdentifierReference).Name.Text)
		return
	case KindBindingIdentifier:
		out.WriteString(n.(*BindingIdentifier).Name)
		return
	case KindEmptyExpression:
		out.WriteString("(EmptyExpression)")
		return
	}
	fmt.Fprintf(out, "(%s", n.Kind())
	switch n.Kind() {
	case KindFormalParameterList:
		writeList(out, "Params", reflect.ValueOf(n.(*FormalParameterList).Params()))
	case KindExportDeclaration:
		x := n.(*ExportDeclaration)
		writeFields(out, reflect.ValueOf(x).Elem())
		if x.Type == ExportAll || x.Type == ExportExternal {
			fmt.Fprintf(out, " Specifier=%q", x.ModuleSpecifier())
		}
	default:
		v := reflect.ValueOf(n)
		if v.Kind() == reflect.Ptr {
			v = v.Elem()
		}
		writeFields(out, v)
	}
	if x, ok := n.(Expr); ok && x.Parens() > 0 {
		fmt.Fprintf(out, " Parens=%d", x.Parens())
	}
	out.WriteByte(')')
}

func writeFields(out *bytes.Buffer, x reflect.Value) {
	t := x.Type()
	for i, n := 0, x.NumField(); i < n; i++ {
		sf := t.Field(i)
		f := x.Field(i)
		if sf.Type == extentType || sf.Type == positionType || sf.Type == scopePtrType {
			continue
		}
		if !sf.IsExported() {
			continue
		}
		if sf.Anonymous {
			writeFields(out, f) // Function, Class
			continue
		}
		name := sf.Name
		if sf.Type == namePtrType {
			if !f.IsNil() {
				fmt.Fprintf(out, " %s=%s", name, f.Interface().(*Name).Text)
			}
			continue
		}
		if sf.Type.Implements(stringerType) && f.Kind() == reflect.Uint8 {
			fmt.Fprintf(out, " %s=%s", name, f.Interface())
			continue
		}
		switch f.Kind() {
		case reflect.Slice:
			writeList(out, name, f)
		case reflect.Ptr, reflect.Interface:
			if !f.IsNil() {
				fmt.Fprintf(out, " %s=", name)
				writeValue(out, f)
			}
		case reflect.Bool:
			if f.Bool() {
				fmt.Fprintf(out, " %s", name)
			}
		case reflect.String:
			if s := f.String(); s != "" {
				fmt.Fprintf(out, " %s=%q", name, s)
			}
		case reflect.Int, reflect.Int32:
			if f.Int() != 0 {
				fmt.Fprintf(out, " %s=%d", name, f.Int())
			}
		}
	}
}

func writeList(out *bytes.Buffer, name string, f reflect.Value) {
	if f.Len() == 0 {
		return
	}
	fmt.Fprintf(out, " %s=(", name)
	for i := 0; i < f.Len(); i++ {
		if i > 0 {
			out.WriteByte(' ')
		}
		writeValue(out, f.Index(i))
	}
	out.WriteByte(')')
}

func writeValue(out *bytes.Buffer, f reflect.Value) {
	if (f.Kind() == reflect.Ptr || f.Kind() == reflect.Interface) && f.IsNil() {
		out.WriteString("nil")
		return
	}
	if f.Type().Implements(nodeType) || (f.Kind() == reflect.Interface && f.Elem().Type().Implements(nodeType)) {
		writeNode(out, f.Interface().(Node))
		return
	}
	switch f.Kind() {
	case reflect.String:
		fmt.Fprintf(out, "%q", f.String())
	default:
		fmt.Fprintf(out, "%v", f.Interface())
	}
}
