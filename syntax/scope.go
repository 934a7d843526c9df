// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// This file defines the scope and name records that the resolver
// attaches to the syntax tree. Scopes mirror the nesting of the
// scope-introducing nodes but form a separate tree.

import "fmt"

// A ScopeKind says what construct introduced a scope.
type ScopeKind uint8

const (
	ScriptScope     ScopeKind = iota // top level of a script
	ModuleScope                      // top level of a module
	EvalScope                        // top level of eval code
	FunctionScope                    // function body, including arrows and methods
	ParameterScope                   // non-simple parameter list
	BlockScope                       // block, for head, catch clause, switch
	WithScope                        // with statement body
	ClassScope                       // class body: inner name and private names
	ClassFieldScope                  // field initializer or static block
)

var scopeKindNames = [...]string{
	ScriptScope:     "script",
	ModuleScope:     "module",
	EvalScope:       "eval",
	FunctionScope:   "function",
	ParameterScope:  "parameter",
	BlockScope:      "block",
	WithScope:       "with",
	ClassScope:      "class",
	ClassFieldScope: "class field",
}

func (k ScopeKind) String() string { return scopeKindNames[k] }

// IsTopLevel reports whether k is the kind of a compilation unit's scope.
func (k ScopeKind) IsTopLevel() bool { return k <= EvalScope }

// A DeclKind says how a name was declared.
type DeclKind uint8

const (
	VarDecl          DeclKind = iota // var
	LetDecl                          // let
	ConstDecl                        // const
	ClassDecl                        // class declaration
	FunctionDecl                     // function, generator or async function declaration
	ParamDecl                        // formal parameter
	CatchParamDecl                   // catch clause parameter
	ImportDecl                       // import binding
	ClassNameDecl                    // inner name of a class
	FunctionNameDecl                 // name of a named function expression
	ArgumentsDecl                    // implicit arguments object of a function
	PrivateDecl                      // #name in a class body
)

var declKindNames = [...]string{
	VarDecl:          "var",
	LetDecl:          "let",
	ConstDecl:        "const",
	ClassDecl:        "class",
	FunctionDecl:     "function",
	ParamDecl:        "parameter",
	CatchParamDecl:   "catch parameter",
	ImportDecl:       "import",
	ClassNameDecl:    "class name",
	FunctionNameDecl: "function name",
	ArgumentsDecl:    "arguments",
	PrivateDecl:      "private name",
}

func (k DeclKind) String() string { return declKindNames[k] }

// A Decl is the declaration of a name in a scope.
type Decl struct {
	Name string
	Kind DeclKind
	Pos  Position
	Node Node // declaring node, e.g. *BindingIdentifier or a function declaration

	scope *Scope
}

// Scope returns the scope in which the name is declared.
func (d *Decl) Scope() *Scope { return d.scope }

// Immutable reports whether assignment to the binding is an error.
// Assignment to the name of a function expression is silently ignored
// in sloppy code, so FunctionNameDecl is not immutable in this sense.
func (d *Decl) Immutable() bool {
	return d.Kind == ConstDecl || d.Kind == ImportDecl || d.Kind == ClassNameDecl
}

func (d *Decl) String() string { return fmt.Sprintf("%s %s", d.Kind, d.Name) }

// An ImportEntry records one binding imported by a module.
// ImportName is "*" for a namespace import. An import declaration
// without bindings, such as import "m", has an entry with empty names.
type ImportEntry struct {
	ModuleRequest string
	ImportName    string
	LocalName     string
	Pos           Position
}

// An ExportEntry records one name exported by a module.
// For a local export ModuleRequest is empty; for export * it is
// ExportName that is empty.
type ExportEntry struct {
	ExportName    string
	ModuleRequest string
	ImportName    string
	LocalName     string
	Pos           Position
}

// A Scope is a region of the program in which names may be declared.
type Scope struct {
	kind     ScopeKind
	parent   *Scope
	node     Node
	children []*Scope
	body     *Scope // ParameterScope only: the FunctionScope of the body

	lexical  []*Decl
	vars     []*Decl
	params   []*Decl
	private  []*Decl
	lexIndex map[string]*Decl
	varIndex map[string]*Decl
	parIndex map[string]*Decl
	prvIndex map[string]*Decl
	args     *Decl // implicit arguments object

	functions []HoistableDeclaration // function declarations instantiated on entry

	imports []*ImportEntry
	exports []*ExportEntry

	strict         bool
	dynamic        bool
	directEval     bool
	needsArguments bool
}

func newScope(kind ScopeKind, parent *Scope, node Node) *Scope {
	s := &Scope{kind: kind, parent: parent, node: node}
	if parent != nil {
		parent.children = append(parent.children, s)
		s.strict = parent.strict
	}
	return s
}

func (s *Scope) Kind() ScopeKind    { return s.kind }
func (s *Scope) Parent() *Scope     { return s.parent }
func (s *Scope) Node() Node         { return s.node }
func (s *Scope) Children() []*Scope { return s.children }

// Body returns the body scope of a ParameterScope, and nil otherwise.
func (s *Scope) Body() *Scope { return s.body }

// LinkBody records body as the body scope of the ParameterScope s.
func (s *Scope) LinkBody(body *Scope) {
	if s.kind != ParameterScope || body.kind != FunctionScope || body.parent != s {
		panic("internal error: LinkBody on " + s.kind.String() + " scope")
	}
	s.body = body
}

// TopLevel returns the nearest enclosing top-level scope.
// It panics if the scope chain does not end at one.
func (s *Scope) TopLevel() *Scope {
	for t := s; t != nil; t = t.parent {
		if t.kind.IsTopLevel() {
			return t
		}
	}
	panic("internal error: scope chain does not end at a top-level scope")
}

// VarScope returns the nearest enclosing scope that holds var
// declarations: a function body, a class field initializer or a top level.
// The var scope of a ParameterScope is its body.
func (s *Scope) VarScope() *Scope {
	for t := s; t != nil; t = t.parent {
		switch t.kind {
		case ScriptScope, ModuleScope, EvalScope, FunctionScope, ClassFieldScope:
			return t
		case ParameterScope:
			if t.body == nil {
				panic("internal error: parameter scope has no body")
			}
			return t.body
		}
	}
	panic("internal error: scope chain does not end at a top-level scope")
}

// IsArrow reports whether s is the body scope of an arrow function.
func (s *Scope) IsArrow() bool {
	if s.kind != FunctionScope {
		return false
	}
	k := s.node.Kind()
	return k == KindArrowFunction || k == KindAsyncArrowFunction
}

// Lexical returns the lexically declared names of s, in declaration order.
func (s *Scope) Lexical() []*Decl { return s.lexical }

// Vars returns the var-declared names of s, in declaration order.
func (s *Scope) Vars() []*Decl { return s.vars }

// Params returns the parameter names of s, in declaration order.
func (s *Scope) Params() []*Decl { return s.params }

// PrivateNames returns the private names declared in a class scope.
func (s *Scope) PrivateNames() []*Decl { return s.private }

// Functions returns the function declarations to be instantiated on
// entry to s, in source order.
func (s *Scope) Functions() []HoistableDeclaration { return s.functions }

// LookupLexical returns the lexical declaration of name in s, or nil.
func (s *Scope) LookupLexical(name string) *Decl { return s.lexIndex[name] }

// LookupVar returns the var declaration of name in s, or nil.
func (s *Scope) LookupVar(name string) *Decl { return s.varIndex[name] }

// LookupParam returns the parameter declaration of name in s, or nil.
func (s *Scope) LookupParam(name string) *Decl { return s.parIndex[name] }

// LookupPrivate returns the declaration of the private name #name in s, or nil.
func (s *Scope) LookupPrivate(name string) *Decl { return s.prvIndex[name] }

// Lookup returns the declaration of name in s alone. Lexical
// declarations take precedence over var declarations, which take
// precedence over parameters and then the implicit arguments object.
func (s *Scope) Lookup(name string) *Decl {
	if d := s.lexIndex[name]; d != nil {
		return d
	}
	if d := s.varIndex[name]; d != nil {
		return d
	}
	if d := s.parIndex[name]; d != nil {
		return d
	}
	if s.args != nil && s.args.Name == name {
		return s.args
	}
	return nil
}

// Arguments returns the implicit arguments binding of a function or
// parameter scope, or nil if none is declared. It is not among Vars.
func (s *Scope) Arguments() *Decl { return s.args }

// DeclareArguments records d as the implicit arguments binding of s,
// which must be a FunctionScope or ParameterScope. If one is already
// declared, DeclareArguments leaves s unchanged and returns it.
func (s *Scope) DeclareArguments(d *Decl) (prev *Decl) {
	if s.kind != FunctionScope && s.kind != ParameterScope {
		panic("internal error: arguments declared in " + s.kind.String() + " scope")
	}
	if d.Kind != ArgumentsDecl {
		panic("internal error: DeclareArguments of " + d.Kind.String())
	}
	if s.args != nil {
		return s.args
	}
	d.scope = s
	s.args = d
	return nil
}

func declare(s *Scope, list *[]*Decl, index *map[string]*Decl, d *Decl) *Decl {
	if prev := (*index)[d.Name]; prev != nil {
		return prev
	}
	if *index == nil {
		*index = make(map[string]*Decl)
	}
	d.scope = s
	(*index)[d.Name] = d
	*list = append(*list, d)
	return nil
}

// DeclareLexical adds a lexical declaration to s.
// If name is already lexically declared in s, DeclareLexical leaves s
// unchanged and returns the previous declaration.
func (s *Scope) DeclareLexical(d *Decl) (prev *Decl) {
	return declare(s, &s.lexical, &s.lexIndex, d)
}

// DeclareVar adds a var declaration to s, which must hold var declarations.
// If name is already var-declared in s, DeclareVar leaves s unchanged and
// returns the previous declaration.
func (s *Scope) DeclareVar(d *Decl) (prev *Decl) {
	switch s.kind {
	case BlockScope, WithScope, ClassScope, ParameterScope:
		panic("internal error: var declaration in " + s.kind.String() + " scope")
	}
	return declare(s, &s.vars, &s.varIndex, d)
}

// DeclareParam adds a parameter to s, which must be a FunctionScope or
// ParameterScope.
func (s *Scope) DeclareParam(d *Decl) (prev *Decl) {
	if s.kind != FunctionScope && s.kind != ParameterScope {
		panic("internal error: parameter declaration in " + s.kind.String() + " scope")
	}
	return declare(s, &s.params, &s.parIndex, d)
}

// DeclarePrivate adds a private name to the class scope s.
func (s *Scope) DeclarePrivate(d *Decl) (prev *Decl) {
	if s.kind != ClassScope {
		panic("internal error: private name declared in " + s.kind.String() + " scope")
	}
	return declare(s, &s.private, &s.prvIndex, d)
}

// AddFunction records a function declaration to be instantiated on entry to s.
func (s *Scope) AddFunction(fn HoistableDeclaration) { s.functions = append(s.functions, fn) }

// AddImport records an import entry of the module scope s.
func (s *Scope) AddImport(e *ImportEntry) {
	s.checkModule()
	s.imports = append(s.imports, e)
}

// AddExport records an export entry of the module scope s.
func (s *Scope) AddExport(e *ExportEntry) {
	s.checkModule()
	s.exports = append(s.exports, e)
}

func (s *Scope) checkModule() {
	if s.kind != ModuleScope {
		panic("internal error: import or export in " + s.kind.String() + " scope")
	}
}

// Imports returns the import entries of a module scope.
func (s *Scope) Imports() []*ImportEntry { return s.imports }

// Exports returns the export entries of a module scope.
func (s *Scope) Exports() []*ExportEntry { return s.exports }

// RequestedModules returns the module specifiers named by the imports
// and exports of a module scope, in order of first occurrence.
func (s *Scope) RequestedModules() []string {
	var out []string
	seen := make(map[string]bool)
	add := func(m string) {
		if m != "" && !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	for _, e := range s.imports {
		add(e.ModuleRequest)
	}
	for _, e := range s.exports {
		add(e.ModuleRequest)
	}
	return out
}

// IsStrict reports whether code in s is strict mode code.
func (s *Scope) IsStrict() bool { return s.strict }

// SetStrict marks s as strict. A scope inherits strictness from its
// parent when it is created.
func (s *Scope) SetStrict() { s.strict = true }

// IsDynamic reports whether the bindings visible in s cannot be known
// statically, because of a with statement or a non-strict direct eval.
func (s *Scope) IsDynamic() bool { return s.dynamic }

// SetDynamic marks s as dynamic.
func (s *Scope) SetDynamic() { s.dynamic = true }

// HasDirectEval reports whether the code of s calls eval directly.
func (s *Scope) HasDirectEval() bool { return s.directEval }

// SetDirectEval records a direct eval call in s.
func (s *Scope) SetDirectEval() { s.directEval = true }

// NeedsArguments reports whether the function of s uses its implicit
// arguments object.
func (s *Scope) NeedsArguments() bool { return s.needsArguments }

// SetNeedsArguments records that the function of s uses its arguments object.
func (s *Scope) SetNeedsArguments() { s.needsArguments = true }

// Find searches s and its enclosing scopes for a declaration of name.
// It returns the declaration and whether the search passed through a
// with scope or a dynamic scope before finding it. A nil declaration
// means the name is not declared anywhere in the chain.
func (s *Scope) Find(name string) (d *Decl, dynamic bool) {
	for t := s; t != nil; t = t.parent {
		if t.kind == WithScope || t.dynamic {
			dynamic = true
		}
		if d := t.Lookup(name); d != nil {
			return d, dynamic
		}
	}
	return nil, dynamic
}

// FindPrivate searches s and its enclosing scopes for the class scope
// that declares the private name #name.
func (s *Scope) FindPrivate(name string) *Decl {
	for t := s; t != nil; t = t.parent {
		if t.kind == ClassScope {
			if d := t.prvIndex[name]; d != nil {
				return d
			}
		}
	}
	return nil
}

func (s *Scope) String() string {
	start := Start(s.node)
	return fmt.Sprintf("%s scope at %s", s.kind, start)
}

// A ScopeBuilder constructs the scope tree of one compilation unit.
// Scopes are entered and exited in strict nesting order.
type ScopeBuilder struct {
	top *Scope
	cur *Scope
}

// NewScopeBuilder returns a builder whose current scope is a new
// top-level scope of the given kind for node. The parent is nil except
// for direct eval code, whose top-level scope encloses in the caller's scope.
func NewScopeBuilder(kind ScopeKind, node Node, parent *Scope) *ScopeBuilder {
	if !kind.IsTopLevel() {
		panic("internal error: " + kind.String() + " scope is not top-level")
	}
	if parent != nil && kind != EvalScope {
		panic("internal error: " + kind.String() + " scope has an enclosing scope")
	}
	top := newScope(kind, nil, node)
	if parent != nil {
		// The caller's scope tree does not list eval scopes as children.
		top.parent = parent
		top.strict = parent.strict
	}
	return &ScopeBuilder{top: top, cur: top}
}

// Top returns the top-level scope.
func (b *ScopeBuilder) Top() *Scope { return b.top }

// Current returns the innermost open scope.
func (b *ScopeBuilder) Current() *Scope { return b.cur }

// Enter opens a new scope of the given kind for node, nested in the current one.
func (b *ScopeBuilder) Enter(kind ScopeKind, node Node) *Scope {
	if kind.IsTopLevel() {
		panic("internal error: nested " + kind.String() + " scope")
	}
	b.cur = newScope(kind, b.cur, node)
	return b.cur
}

// Exit closes s, which must be the current scope.
func (b *ScopeBuilder) Exit(s *Scope) {
	if s != b.cur || s == b.top {
		panic("internal error: scopes exited out of order")
	}
	b.cur = s.parent
}

// Finish checks that every entered scope was exited and returns the top-level scope.
func (b *ScopeBuilder) Finish() *Scope {
	if b.cur != b.top {
		panic("internal error: unclosed " + b.cur.kind.String() + " scope")
	}
	return b.top
}

// A Name is an identifier occurrence that refers to a binding.
//
// The resolver links each Name to the declaration it denotes, at most once.
// A Name inside a dynamic scope is never linked.
type Name struct {
	Text string

	scope  *Scope
	decl   *Decl
	global bool
}

// NewName returns an unresolved name spelled text.
func NewName(text string) *Name { return &Name{Text: text} }

func (n *Name) link(s *Scope) {
	if n.scope != nil {
		panic(fmt.Sprintf("internal error: name %q resolved twice", n.Text))
	}
	if s == nil {
		panic(fmt.Sprintf("internal error: name %q resolved to nil scope", n.Text))
	}
	n.scope = s
}

// Resolve links n to its declaration d.
// It panics if n is already resolved.
func (n *Name) Resolve(d *Decl) {
	if d == nil {
		panic(fmt.Sprintf("internal error: name %q resolved to nil declaration", n.Text))
	}
	n.link(d.scope)
	n.decl = d
}

// ResolveGlobal links n to the global bindings of the top-level scope top.
// It panics if n is already resolved.
func (n *Name) ResolveGlobal(top *Scope) {
	n.link(top)
	n.global = true
}

// IsResolved reports whether n has been linked.
func (n *Name) IsResolved() bool { return n.scope != nil }

// Scope returns the scope declaring n, or the top-level scope for a
// global reference. It panics if n is unresolved.
func (n *Name) Scope() *Scope {
	if n.scope == nil {
		panic(fmt.Sprintf("internal error: name %q used before resolution", n.Text))
	}
	return n.scope
}

// Decl returns the declaration of n, or nil for a global reference.
// It panics if n is unresolved.
func (n *Name) Decl() *Decl {
	n.Scope()
	return n.decl
}

// IsGlobal reports whether n refers to an undeclared global binding.
func (n *Name) IsGlobal() bool { return n.global }

func (n *Name) String() string { return n.Text }
