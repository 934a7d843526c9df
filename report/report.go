// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report renders resolved scope trees and references, as
// indented text or as a protocol buffer Struct.
package report // import "github.com/esfront/esfront/report"

import (
	"fmt"
	"io"
	"strings"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/esfront/esfront/syntax"
)

// flags returns the names of the flags set on s.
func flags(s *syntax.Scope) []string {
	var out []string
	if s.IsStrict() {
		out = append(out, "strict")
	}
	if s.IsDynamic() {
		out = append(out, "dynamic")
	}
	if s.HasDirectEval() {
		out = append(out, "eval")
	}
	if s.NeedsArguments() {
		out = append(out, "arguments")
	}
	return out
}

// decls returns the declarations of s: parameters, then the implicit
// arguments binding, then vars, then lexical declarations, then
// private names.
func decls(s *syntax.Scope) []*syntax.Decl {
	var out []*syntax.Decl
	out = append(out, s.Params()...)
	if d := s.Arguments(); d != nil {
		out = append(out, d)
	}
	out = append(out, s.Vars()...)
	out = append(out, s.Lexical()...)
	out = append(out, s.PrivateNames()...)
	return out
}

// Text writes an indented rendering of the scope tree rooted at s.
func Text(w io.Writer, s *syntax.Scope) error {
	var b strings.Builder
	writeScope(&b, s, 0)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeScope(b *strings.Builder, s *syntax.Scope, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%s%s", indent, s)
	if f := flags(s); len(f) > 0 {
		fmt.Fprintf(b, " [%s]", strings.Join(f, " "))
	}
	b.WriteByte('\n')
	for _, d := range decls(s) {
		name := d.Name
		if d.Kind == syntax.PrivateDecl {
			name = "#" + name
		}
		fmt.Fprintf(b, "%s  %s %s", indent, d.Kind, name)
		if d.Pos.IsValid() {
			fmt.Fprintf(b, " @%s", d.Pos)
		}
		b.WriteByte('\n')
	}
	for _, e := range s.Imports() {
		fmt.Fprintf(b, "%s  import %s as %s from %q\n", indent, orNone(e.ImportName), orNone(e.LocalName), e.ModuleRequest)
	}
	for _, e := range s.Exports() {
		fmt.Fprintf(b, "%s  export %s", indent, orNone(e.ExportName))
		if e.LocalName != "" {
			fmt.Fprintf(b, " = %s", e.LocalName)
		}
		if e.ModuleRequest != "" {
			fmt.Fprintf(b, " from %q", e.ModuleRequest)
		}
		b.WriteByte('\n')
	}
	for _, c := range s.Children() {
		writeScope(b, c, depth+1)
	}
}

func orNone(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// Struct returns the scope tree rooted at s as a Struct with the
// fields kind, pos, flags, decls, imports, exports and children.
func Struct(s *syntax.Scope) (*structpb.Struct, error) {
	return structpb.NewStruct(scopeMap(s))
}

func scopeMap(s *syntax.Scope) map[string]interface{} {
	m := map[string]interface{}{
		"kind": s.Kind().String(),
		"pos":  syntax.Start(s.Node()).String(),
	}
	if f := flags(s); len(f) > 0 {
		list := make([]interface{}, len(f))
		for i, x := range f {
			list[i] = x
		}
		m["flags"] = list
	}
	if ds := decls(s); len(ds) > 0 {
		list := make([]interface{}, len(ds))
		for i, d := range ds {
			list[i] = map[string]interface{}{
				"name": d.Name,
				"kind": d.Kind.String(),
				"pos":  d.Pos.String(),
			}
		}
		m["decls"] = list
	}
	if imps := s.Imports(); len(imps) > 0 {
		list := make([]interface{}, len(imps))
		for i, e := range imps {
			list[i] = map[string]interface{}{
				"module": e.ModuleRequest,
				"import": e.ImportName,
				"local":  e.LocalName,
			}
		}
		m["imports"] = list
	}
	if exps := s.Exports(); len(exps) > 0 {
		list := make([]interface{}, len(exps))
		for i, e := range exps {
			list[i] = map[string]interface{}{
				"export": e.ExportName,
				"module": e.ModuleRequest,
				"import": e.ImportName,
				"local":  e.LocalName,
			}
		}
		m["exports"] = list
	}
	if cs := s.Children(); len(cs) > 0 {
		list := make([]interface{}, len(cs))
		for i, c := range cs {
			list[i] = scopeMap(c)
		}
		m["children"] = list
	}
	return m
}

// JSON returns the scope tree rooted at s in the JSON form of Struct.
// If indent is non-empty, the output is multi-line.
func JSON(s *syntax.Scope, indent string) ([]byte, error) {
	st, err := Struct(s)
	if err != nil {
		return nil, err
	}
	opts := protojson.MarshalOptions{Indent: indent, Multiline: indent != ""}
	return opts.Marshal(st)
}
