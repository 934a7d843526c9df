// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// An ImportDeclaration represents import Clause from "Specifier",
// or import "Specifier" if Clause is nil.
type ImportDeclaration struct {
	Extent
	Clause    *ImportClause
	Specifier string
}

func (x *ImportDeclaration) eachChild(f func(Node)) {
	if x.Clause != nil {
		f(x.Clause)
	}
}

// An ImportClause represents Default, * as Namespace, { Named }.
type ImportClause struct {
	Extent
	Default   *BindingIdentifier // optional
	Namespace *BindingIdentifier // optional
	Named     []*ImportSpecifier
}

func (x *ImportClause) eachChild(f func(Node)) {
	if x.Default != nil {
		f(x.Default)
	}
	if x.Namespace != nil {
		f(x.Namespace)
	}
	for _, s := range x.Named {
		f(s)
	}
}

// An ImportSpecifier represents Imported as Local.
type ImportSpecifier struct {
	Extent
	Imported string
	Local    *BindingIdentifier
}

func (x *ImportSpecifier) eachChild(f func(Node)) { f(x.Local) }

// An ExportType distinguishes the forms of ExportDeclaration.
type ExportType uint8

const (
	ExportAll      ExportType = iota // export * from "m", or export * as ns from "m"
	ExportExternal                   // export { a as b } from "m"
	ExportLocal                      // export { a as b }
	ExportVariable                   // export var a
	ExportDecl                       // export let a, export function f() {}, export class C {}
	ExportDefault                    // export default function () {}, export default class {}
)

var exportTypeNames = [...]string{
	ExportAll:      "all",
	ExportExternal: "external",
	ExportLocal:    "local",
	ExportVariable: "variable",
	ExportDecl:     "declaration",
	ExportDefault:  "default",
}

func (t ExportType) String() string { return exportTypeNames[t] }

// An ExportDeclaration represents an export declaration other than
// export default of an expression.
type ExportDeclaration struct {
	Extent
	Type      ExportType
	Clause    *ExportClause // ExportExternal, ExportLocal
	Namespace string        // ExportAll with an "as" name, otherwise empty
	Variable  *VariableStatement
	Decl      Declaration // ExportDecl, ExportDefault

	specifier string
}

// NewExportFrom returns an export declaration of type ExportAll or
// ExportExternal, which carry a module specifier.
func NewExportFrom(x Extent, t ExportType, clause *ExportClause, namespace, specifier string) *ExportDeclaration {
	if t != ExportAll && t != ExportExternal {
		panic("internal error: " + t.String() + " export has no module specifier")
	}
	return &ExportDeclaration{Extent: x, Type: t, Clause: clause, Namespace: namespace, specifier: specifier}
}

// ModuleSpecifier returns the module specifier of an ExportAll or
// ExportExternal declaration. It panics for the other forms.
func (x *ExportDeclaration) ModuleSpecifier() string {
	if x.Type != ExportAll && x.Type != ExportExternal {
		panic("internal error: ModuleSpecifier called on " + x.Type.String() + " export")
	}
	return x.specifier
}

func (x *ExportDeclaration) eachChild(f func(Node)) {
	if x.Clause != nil {
		f(x.Clause)
	}
	if x.Variable != nil {
		f(x.Variable)
	}
	if x.Decl != nil {
		f(x.Decl)
	}
}

// An ExportClause represents { Specifiers }.
type ExportClause struct {
	Extent
	Specifiers []*ExportSpecifier
}

func (x *ExportClause) eachChild(f func(Node)) {
	for _, s := range x.Specifiers {
		f(s)
	}
}

// An ExportSpecifier represents Local as Exported.
// For a local export, the resolver binds Local to its declaration.
type ExportSpecifier struct {
	Extent
	Local    *Name
	Exported string
}

func (x *ExportSpecifier) eachChild(f func(Node)) {}

// An ExportDefaultExpression represents export default X.
type ExportDefaultExpression struct {
	Extent
	X Expr
}

func (x *ExportDefaultExpression) eachChild(f func(Node)) { f(x.X) }
