// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// A Kind is the variant tag of a Node.
type Kind uint8

const (
	KindScript Kind = iota
	KindModule

	// references and primary expressions
	KindIdentifierReference
	KindThisExpression
	KindSuperPropertyAccessor
	KindSuperElementAccessor
	KindSuperCall
	KindNewTarget
	KindImportMeta
	KindImportCall
	KindEmptyExpression

	// literals
	KindNullLiteral
	KindBooleanLiteral
	KindNumericLiteral
	KindBigIntLiteral
	KindStringLiteral
	KindRegularExpressionLiteral
	KindTemplateLiteral
	KindTemplateCharacters
	KindArrayLiteral
	KindObjectLiteral

	// parts of array and object literals
	KindElision
	KindSpreadElement
	KindPropertyValueDefinition
	KindPropertyNameDefinition
	KindSpreadProperty
	KindIdentifierName
	KindComputedPropertyName
	KindPrivateName

	// functions and classes
	KindFunctionExpression
	KindGeneratorExpression
	KindAsyncFunctionExpression
	KindAsyncGeneratorExpression
	KindArrowFunction
	KindAsyncArrowFunction
	KindMethodDefinition
	KindClassExpression
	KindFormalParameterList

	// member access and calls
	KindPropertyAccessor
	KindElementAccessor
	KindPrivatePropertyAccessor
	KindOptionalChain
	KindCallExpression
	KindNewExpression
	KindTemplateCallExpression

	// operators
	KindUnaryExpression
	KindUpdateExpression
	KindBinaryExpression
	KindPrivateInExpression
	KindConditionalExpression
	KindCommaExpression
	KindAssignmentExpression
	KindYieldExpression
	KindAwaitExpression

	// assignment patterns
	KindArrayAssignmentPattern
	KindObjectAssignmentPattern
	KindAssignmentElement
	KindAssignmentProperty
	KindAssignmentRestElement
	KindAssignmentRestProperty

	// legacy dialect expressions
	KindArrayComprehension
	KindGeneratorComprehension
	KindComprehension
	KindComprehensionFor
	KindComprehensionIf
	KindLetExpression

	// code-splitting helpers
	KindExpressionMethod
	KindPropertyDefinitionsMethod
	KindStatementListMethod

	// statements
	KindBlockStatement
	KindEmptyStatement
	KindExpressionStatement
	KindIfStatement
	KindDoWhileStatement
	KindWhileStatement
	KindForStatement
	KindForInStatement
	KindForOfStatement
	KindContinueStatement
	KindBreakStatement
	KindReturnStatement
	KindWithStatement
	KindSwitchStatement
	KindSwitchClause
	KindLabelledStatement
	KindThrowStatement
	KindTryStatement
	KindCatchNode
	KindDebuggerStatement
	KindLetStatement

	// declarations
	KindVariableStatement
	KindVariableDeclaration
	KindLexicalDeclaration
	KindLexicalBinding
	KindFunctionDeclaration
	KindGeneratorDeclaration
	KindAsyncFunctionDeclaration
	KindAsyncGeneratorDeclaration
	KindClassDeclaration

	// class elements
	KindClassFieldDefinition
	KindClassFieldInitializer
	KindClassStaticBlock

	// bindings
	KindBindingIdentifier
	KindArrayBindingPattern
	KindObjectBindingPattern
	KindBindingElement
	KindBindingElision
	KindBindingRestElement
	KindBindingProperty
	KindBindingRestProperty

	// modules
	KindImportDeclaration
	KindImportClause
	KindImportSpecifier
	KindExportDeclaration
	KindExportClause
	KindExportSpecifier
	KindExportDefaultExpression

	numKinds
)

// A Category is a syntactic category of the node lattice.
// Each Kind belongs to an ordered chain of categories, from the most
// specific to the least; every chain implicitly ends with CategoryNode.
type Category uint8

const (
	CategoryNode Category = iota
	CategoryExpression
	CategoryLiteral
	CategoryFunction
	CategoryClass
	CategoryStatement
	CategoryIterationStatement
	CategoryBreakableStatement
	CategoryDeclaration
	CategoryHoistableDeclaration
	CategoryBinding
	CategoryAssignmentPattern
	CategoryPropertyDefinition
	CategoryPropertyName
	CategoryClassElement
	CategoryModuleItem
	CategoryComprehension
	CategorySplit

	numCategories
)

var categoryNames = [...]string{
	CategoryNode:                 "Node",
	CategoryExpression:           "Expression",
	CategoryLiteral:              "Literal",
	CategoryFunction:             "Function",
	CategoryClass:                "Class",
	CategoryStatement:            "Statement",
	CategoryIterationStatement:   "IterationStatement",
	CategoryBreakableStatement:   "BreakableStatement",
	CategoryDeclaration:          "Declaration",
	CategoryHoistableDeclaration: "HoistableDeclaration",
	CategoryBinding:              "Binding",
	CategoryAssignmentPattern:    "AssignmentPattern",
	CategoryPropertyDefinition:   "PropertyDefinition",
	CategoryPropertyName:         "PropertyName",
	CategoryClassElement:         "ClassElement",
	CategoryModuleItem:           "ModuleItem",
	CategoryComprehension:        "Comprehension",
	CategorySplit:                "Split",
}

func (c Category) String() string { return categoryNames[c] }

type kindInfo struct {
	name  string
	chain []Category // most specific first, CategoryNode omitted
}

var (
	exprChain      = []Category{CategoryExpression}
	literalChain   = []Category{CategoryLiteral, CategoryExpression}
	funcExprChain  = []Category{CategoryFunction, CategoryExpression}
	patternChain   = []Category{CategoryAssignmentPattern, CategoryExpression}
	stmtChain      = []Category{CategoryStatement}
	loopChain      = []Category{CategoryIterationStatement, CategoryBreakableStatement, CategoryStatement}
	breakableChain = []Category{CategoryBreakableStatement, CategoryStatement}
	hoistableChain = []Category{CategoryFunction, CategoryHoistableDeclaration, CategoryDeclaration, CategoryStatement}
	bindingChain   = []Category{CategoryBinding}
	moduleChain    = []Category{CategoryModuleItem}
)

var kinds = [numKinds]kindInfo{
	KindScript: {"Script", nil},
	KindModule: {"Module", nil},

	KindIdentifierReference:   {"IdentifierReference", exprChain},
	KindThisExpression:        {"ThisExpression", exprChain},
	KindSuperPropertyAccessor: {"SuperPropertyAccessor", exprChain},
	KindSuperElementAccessor:  {"SuperElementAccessor", exprChain},
	KindSuperCall:             {"SuperCall", exprChain},
	KindNewTarget:             {"NewTarget", exprChain},
	KindImportMeta:            {"ImportMeta", exprChain},
	KindImportCall:            {"ImportCall", exprChain},
	KindEmptyExpression:       {"EmptyExpression", exprChain},

	KindNullLiteral:              {"NullLiteral", literalChain},
	KindBooleanLiteral:           {"BooleanLiteral", literalChain},
	KindNumericLiteral:           {"NumericLiteral", literalChain},
	KindBigIntLiteral:            {"BigIntLiteral", literalChain},
	KindStringLiteral:            {"StringLiteral", literalChain},
	KindRegularExpressionLiteral: {"RegularExpressionLiteral", literalChain},
	KindTemplateLiteral:          {"TemplateLiteral", exprChain},
	KindTemplateCharacters:       {"TemplateCharacters", literalChain},
	KindArrayLiteral:             {"ArrayLiteral", exprChain},
	KindObjectLiteral:            {"ObjectLiteral", exprChain},

	KindElision:                 {"Elision", exprChain},
	KindSpreadElement:           {"SpreadElement", exprChain},
	KindPropertyValueDefinition: {"PropertyValueDefinition", []Category{CategoryPropertyDefinition}},
	KindPropertyNameDefinition:  {"PropertyNameDefinition", []Category{CategoryPropertyDefinition}},
	KindSpreadProperty:          {"SpreadProperty", []Category{CategoryPropertyDefinition}},
	KindIdentifierName:          {"IdentifierName", []Category{CategoryPropertyName}},
	KindComputedPropertyName:    {"ComputedPropertyName", []Category{CategoryPropertyName}},
	KindPrivateName:             {"PrivateName", []Category{CategoryPropertyName}},

	KindFunctionExpression:       {"FunctionExpression", funcExprChain},
	KindGeneratorExpression:      {"GeneratorExpression", funcExprChain},
	KindAsyncFunctionExpression:  {"AsyncFunctionExpression", funcExprChain},
	KindAsyncGeneratorExpression: {"AsyncGeneratorExpression", funcExprChain},
	KindArrowFunction:            {"ArrowFunction", funcExprChain},
	KindAsyncArrowFunction:       {"AsyncArrowFunction", funcExprChain},
	KindMethodDefinition:         {"MethodDefinition", []Category{CategoryFunction, CategoryClassElement, CategoryPropertyDefinition}},
	KindClassExpression:          {"ClassExpression", []Category{CategoryClass, CategoryExpression}},
	KindFormalParameterList:      {"FormalParameterList", nil},

	KindPropertyAccessor:        {"PropertyAccessor", exprChain},
	KindElementAccessor:         {"ElementAccessor", exprChain},
	KindPrivatePropertyAccessor: {"PrivatePropertyAccessor", exprChain},
	KindOptionalChain:           {"OptionalChain", exprChain},
	KindCallExpression:          {"CallExpression", exprChain},
	KindNewExpression:           {"NewExpression", exprChain},
	KindTemplateCallExpression:  {"TemplateCallExpression", exprChain},

	KindUnaryExpression:       {"UnaryExpression", exprChain},
	KindUpdateExpression:      {"UpdateExpression", exprChain},
	KindBinaryExpression:      {"BinaryExpression", exprChain},
	KindPrivateInExpression:   {"PrivateInExpression", exprChain},
	KindConditionalExpression: {"ConditionalExpression", exprChain},
	KindCommaExpression:       {"CommaExpression", exprChain},
	KindAssignmentExpression:  {"AssignmentExpression", exprChain},
	KindYieldExpression:       {"YieldExpression", exprChain},
	KindAwaitExpression:       {"AwaitExpression", exprChain},

	KindArrayAssignmentPattern:  {"ArrayAssignmentPattern", patternChain},
	KindObjectAssignmentPattern: {"ObjectAssignmentPattern", patternChain},
	KindAssignmentElement:       {"AssignmentElement", []Category{CategoryAssignmentPattern}},
	KindAssignmentProperty:      {"AssignmentProperty", []Category{CategoryAssignmentPattern}},
	KindAssignmentRestElement:   {"AssignmentRestElement", []Category{CategoryAssignmentPattern}},
	KindAssignmentRestProperty:  {"AssignmentRestProperty", []Category{CategoryAssignmentPattern}},

	KindArrayComprehension:     {"ArrayComprehension", []Category{CategoryComprehension, CategoryExpression}},
	KindGeneratorComprehension: {"GeneratorComprehension", []Category{CategoryComprehension, CategoryFunction, CategoryExpression}},
	KindComprehension:          {"Comprehension", []Category{CategoryComprehension}},
	KindComprehensionFor:       {"ComprehensionFor", []Category{CategoryComprehension}},
	KindComprehensionIf:        {"ComprehensionIf", []Category{CategoryComprehension}},
	KindLetExpression:          {"LetExpression", exprChain},

	KindExpressionMethod:          {"ExpressionMethod", []Category{CategorySplit, CategoryExpression}},
	KindPropertyDefinitionsMethod: {"PropertyDefinitionsMethod", []Category{CategorySplit, CategoryPropertyDefinition}},
	KindStatementListMethod:       {"StatementListMethod", []Category{CategorySplit, CategoryStatement}},

	KindBlockStatement:      {"BlockStatement", stmtChain},
	KindEmptyStatement:      {"EmptyStatement", stmtChain},
	KindExpressionStatement: {"ExpressionStatement", stmtChain},
	KindIfStatement:         {"IfStatement", stmtChain},
	KindDoWhileStatement:    {"DoWhileStatement", loopChain},
	KindWhileStatement:      {"WhileStatement", loopChain},
	KindForStatement:        {"ForStatement", loopChain},
	KindForInStatement:      {"ForInStatement", loopChain},
	KindForOfStatement:      {"ForOfStatement", loopChain},
	KindContinueStatement:   {"ContinueStatement", stmtChain},
	KindBreakStatement:      {"BreakStatement", stmtChain},
	KindReturnStatement:     {"ReturnStatement", stmtChain},
	KindWithStatement:       {"WithStatement", stmtChain},
	KindSwitchStatement:     {"SwitchStatement", breakableChain},
	KindSwitchClause:        {"SwitchClause", nil},
	KindLabelledStatement:   {"LabelledStatement", breakableChain},
	KindThrowStatement:      {"ThrowStatement", stmtChain},
	KindTryStatement:        {"TryStatement", stmtChain},
	KindCatchNode:           {"CatchNode", nil},
	KindDebuggerStatement:   {"DebuggerStatement", stmtChain},
	KindLetStatement:        {"LetStatement", stmtChain},

	KindVariableStatement:         {"VariableStatement", stmtChain},
	KindVariableDeclaration:       {"VariableDeclaration", nil},
	KindLexicalDeclaration:        {"LexicalDeclaration", []Category{CategoryDeclaration, CategoryStatement}},
	KindLexicalBinding:            {"LexicalBinding", nil},
	KindFunctionDeclaration:       {"FunctionDeclaration", hoistableChain},
	KindGeneratorDeclaration:      {"GeneratorDeclaration", hoistableChain},
	KindAsyncFunctionDeclaration:  {"AsyncFunctionDeclaration", hoistableChain},
	KindAsyncGeneratorDeclaration: {"AsyncGeneratorDeclaration", hoistableChain},
	KindClassDeclaration:          {"ClassDeclaration", []Category{CategoryClass, CategoryDeclaration, CategoryStatement}},

	KindClassFieldDefinition:  {"ClassFieldDefinition", []Category{CategoryClassElement}},
	KindClassFieldInitializer: {"ClassFieldInitializer", nil},
	KindClassStaticBlock:      {"ClassStaticBlock", []Category{CategoryClassElement}},

	KindBindingIdentifier:    {"BindingIdentifier", bindingChain},
	KindArrayBindingPattern:  {"ArrayBindingPattern", bindingChain},
	KindObjectBindingPattern: {"ObjectBindingPattern", bindingChain},
	KindBindingElement:       {"BindingElement", bindingChain},
	KindBindingElision:       {"BindingElision", bindingChain},
	KindBindingRestElement:   {"BindingRestElement", bindingChain},
	KindBindingProperty:      {"BindingProperty", bindingChain},
	KindBindingRestProperty:  {"BindingRestProperty", bindingChain},

	KindImportDeclaration:       {"ImportDeclaration", moduleChain},
	KindImportClause:            {"ImportClause", moduleChain},
	KindImportSpecifier:         {"ImportSpecifier", moduleChain},
	KindExportDeclaration:       {"ExportDeclaration", moduleChain},
	KindExportClause:            {"ExportClause", moduleChain},
	KindExportSpecifier:         {"ExportSpecifier", moduleChain},
	KindExportDefaultExpression: {"ExportDefaultExpression", moduleChain},
}

func (k Kind) String() string {
	if k < numKinds {
		return kinds[k].name
	}
	return "Kind(?)"
}

// Categories returns the category chain of k, from the most specific
// category to CategoryNode.
func (k Kind) Categories() []Category {
	chain := kinds[k].chain
	out := make([]Category, 0, len(chain)+1)
	out = append(out, chain...)
	return append(out, CategoryNode)
}

// In reports whether k belongs to category c.
func (k Kind) In(c Category) bool {
	if c == CategoryNode {
		return true
	}
	for _, x := range kinds[k].chain {
		if x == c {
			return true
		}
	}
	return false
}

func (*Script) Kind() Kind                    { return KindScript }
func (*Module) Kind() Kind                    { return KindModule }
func (*IdentifierReference) Kind() Kind       { return KindIdentifierReference }
func (*ThisExpression) Kind() Kind            { return KindThisExpression }
func (*SuperPropertyAccessor) Kind() Kind     { return KindSuperPropertyAccessor }
func (*SuperElementAccessor) Kind() Kind      { return KindSuperElementAccessor }
func (*SuperCall) Kind() Kind                 { return KindSuperCall }
func (*NewTarget) Kind() Kind                 { return KindNewTarget }
func (*ImportMeta) Kind() Kind                { return KindImportMeta }
func (*ImportCall) Kind() Kind                { return KindImportCall }
func (EmptyExpression) Kind() Kind            { return KindEmptyExpression }
func (*NullLiteral) Kind() Kind               { return KindNullLiteral }
func (*BooleanLiteral) Kind() Kind            { return KindBooleanLiteral }
func (*NumericLiteral) Kind() Kind            { return KindNumericLiteral }
func (*BigIntLiteral) Kind() Kind             { return KindBigIntLiteral }
func (*StringLiteral) Kind() Kind             { return KindStringLiteral }
func (*RegularExpressionLiteral) Kind() Kind  { return KindRegularExpressionLiteral }
func (*TemplateLiteral) Kind() Kind           { return KindTemplateLiteral }
func (*TemplateCharacters) Kind() Kind        { return KindTemplateCharacters }
func (*ArrayLiteral) Kind() Kind              { return KindArrayLiteral }
func (*ObjectLiteral) Kind() Kind             { return KindObjectLiteral }
func (*Elision) Kind() Kind                   { return KindElision }
func (*SpreadElement) Kind() Kind             { return KindSpreadElement }
func (*PropertyValueDefinition) Kind() Kind   { return KindPropertyValueDefinition }
func (*PropertyNameDefinition) Kind() Kind    { return KindPropertyNameDefinition }
func (*SpreadProperty) Kind() Kind            { return KindSpreadProperty }
func (*IdentifierName) Kind() Kind            { return KindIdentifierName }
func (*ComputedPropertyName) Kind() Kind      { return KindComputedPropertyName }
func (*PrivateName) Kind() Kind               { return KindPrivateName }
func (*FunctionExpression) Kind() Kind        { return KindFunctionExpression }
func (*GeneratorExpression) Kind() Kind       { return KindGeneratorExpression }
func (*AsyncFunctionExpression) Kind() Kind   { return KindAsyncFunctionExpression }
func (*AsyncGeneratorExpression) Kind() Kind  { return KindAsyncGeneratorExpression }
func (*ArrowFunction) Kind() Kind             { return KindArrowFunction }
func (*AsyncArrowFunction) Kind() Kind        { return KindAsyncArrowFunction }
func (*MethodDefinition) Kind() Kind          { return KindMethodDefinition }
func (*ClassExpression) Kind() Kind           { return KindClassExpression }
func (*FormalParameterList) Kind() Kind       { return KindFormalParameterList }
func (*PropertyAccessor) Kind() Kind          { return KindPropertyAccessor }
func (*ElementAccessor) Kind() Kind           { return KindElementAccessor }
func (*PrivatePropertyAccessor) Kind() Kind   { return KindPrivatePropertyAccessor }
func (*OptionalChain) Kind() Kind             { return KindOptionalChain }
func (*CallExpression) Kind() Kind            { return KindCallExpression }
func (*NewExpression) Kind() Kind             { return KindNewExpression }
func (*TemplateCallExpression) Kind() Kind    { return KindTemplateCallExpression }
func (*UnaryExpression) Kind() Kind           { return KindUnaryExpression }
func (*UpdateExpression) Kind() Kind          { return KindUpdateExpression }
func (*BinaryExpression) Kind() Kind          { return KindBinaryExpression }
func (*PrivateInExpression) Kind() Kind       { return KindPrivateInExpression }
func (*ConditionalExpression) Kind() Kind     { return KindConditionalExpression }
func (*CommaExpression) Kind() Kind           { return KindCommaExpression }
func (*AssignmentExpression) Kind() Kind      { return KindAssignmentExpression }
func (*YieldExpression) Kind() Kind           { return KindYieldExpression }
func (*AwaitExpression) Kind() Kind           { return KindAwaitExpression }
func (*ArrayAssignmentPattern) Kind() Kind    { return KindArrayAssignmentPattern }
func (*ObjectAssignmentPattern) Kind() Kind   { return KindObjectAssignmentPattern }
func (*AssignmentElement) Kind() Kind         { return KindAssignmentElement }
func (*AssignmentProperty) Kind() Kind        { return KindAssignmentProperty }
func (*AssignmentRestElement) Kind() Kind     { return KindAssignmentRestElement }
func (*AssignmentRestProperty) Kind() Kind    { return KindAssignmentRestProperty }
func (*ArrayComprehension) Kind() Kind        { return KindArrayComprehension }
func (*GeneratorComprehension) Kind() Kind    { return KindGeneratorComprehension }
func (*Comprehension) Kind() Kind             { return KindComprehension }
func (*ComprehensionFor) Kind() Kind          { return KindComprehensionFor }
func (*ComprehensionIf) Kind() Kind           { return KindComprehensionIf }
func (*LetExpression) Kind() Kind             { return KindLetExpression }
func (*ExpressionMethod) Kind() Kind          { return KindExpressionMethod }
func (*PropertyDefinitionsMethod) Kind() Kind { return KindPropertyDefinitionsMethod }
func (*StatementListMethod) Kind() Kind       { return KindStatementListMethod }
func (*BlockStatement) Kind() Kind            { return KindBlockStatement }
func (*EmptyStatement) Kind() Kind            { return KindEmptyStatement }
func (*ExpressionStatement) Kind() Kind       { return KindExpressionStatement }
func (*IfStatement) Kind() Kind               { return KindIfStatement }
func (*DoWhileStatement) Kind() Kind          { return KindDoWhileStatement }
func (*WhileStatement) Kind() Kind            { return KindWhileStatement }
func (*ForStatement) Kind() Kind              { return KindForStatement }
func (*ForInStatement) Kind() Kind            { return KindForInStatement }
func (*ForOfStatement) Kind() Kind            { return KindForOfStatement }
func (*ContinueStatement) Kind() Kind         { return KindContinueStatement }
func (*BreakStatement) Kind() Kind            { return KindBreakStatement }
func (*ReturnStatement) Kind() Kind           { return KindReturnStatement }
func (*WithStatement) Kind() Kind             { return KindWithStatement }
func (*SwitchStatement) Kind() Kind           { return KindSwitchStatement }
func (*SwitchClause) Kind() Kind              { return KindSwitchClause }
func (*LabelledStatement) Kind() Kind         { return KindLabelledStatement }
func (*ThrowStatement) Kind() Kind            { return KindThrowStatement }
func (*TryStatement) Kind() Kind              { return KindTryStatement }
func (*CatchNode) Kind() Kind                 { return KindCatchNode }
func (*DebuggerStatement) Kind() Kind         { return KindDebuggerStatement }
func (*LetStatement) Kind() Kind              { return KindLetStatement }
func (*VariableStatement) Kind() Kind         { return KindVariableStatement }
func (*VariableDeclaration) Kind() Kind       { return KindVariableDeclaration }
func (*LexicalDeclaration) Kind() Kind        { return KindLexicalDeclaration }
func (*LexicalBinding) Kind() Kind            { return KindLexicalBinding }
func (*FunctionDeclaration) Kind() Kind       { return KindFunctionDeclaration }
func (*GeneratorDeclaration) Kind() Kind      { return KindGeneratorDeclaration }
func (*AsyncFunctionDeclaration) Kind() Kind  { return KindAsyncFunctionDeclaration }
func (*AsyncGeneratorDeclaration) Kind() Kind { return KindAsyncGeneratorDeclaration }
func (*ClassDeclaration) Kind() Kind          { return KindClassDeclaration }
func (*ClassFieldDefinition) Kind() Kind      { return KindClassFieldDefinition }
func (*ClassFieldInitializer) Kind() Kind     { return KindClassFieldInitializer }
func (*ClassStaticBlock) Kind() Kind          { return KindClassStaticBlock }
func (*BindingIdentifier) Kind() Kind         { return KindBindingIdentifier }
func (*ArrayBindingPattern) Kind() Kind       { return KindArrayBindingPattern }
func (*ObjectBindingPattern) Kind() Kind      { return KindObjectBindingPattern }
func (*BindingElement) Kind() Kind            { return KindBindingElement }
func (*BindingElision) Kind() Kind            { return KindBindingElision }
func (*BindingRestElement) Kind() Kind        { return KindBindingRestElement }
func (*BindingProperty) Kind() Kind           { return KindBindingProperty }
func (*BindingRestProperty) Kind() Kind       { return KindBindingRestProperty }
func (*ImportDeclaration) Kind() Kind         { return KindImportDeclaration }
func (*ImportClause) Kind() Kind              { return KindImportClause }
func (*ImportSpecifier) Kind() Kind           { return KindImportSpecifier }
func (*ExportDeclaration) Kind() Kind         { return KindExportDeclaration }
func (*ExportClause) Kind() Kind              { return KindExportClause }
func (*ExportSpecifier) Kind() Kind           { return KindExportSpecifier }
func (*ExportDefaultExpression) Kind() Kind   { return KindExportDefaultExpression }
