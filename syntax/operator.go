// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// An Operator is a unary, update, binary or assignment operator.
type Operator uint8

const (
	ILLEGAL Operator = iota

	// unary
	DELETE // delete
	VOID   // void
	TYPEOF // typeof
	POS    // +x
	NEG    // -x
	BITNOT // ~
	NOT    // !

	// update
	INC // ++
	DEC // --

	// binary
	MUL        // *
	DIV        // /
	MOD        // %
	EXP        // **
	ADD        // +
	SUB        // -
	SHL        // <<
	SHR        // >>
	USHR       // >>>
	LT         // <
	GT         // >
	LE         // <=
	GE         // >=
	INSTANCEOF // instanceof
	IN         // in
	EQ         // ==
	NE         // !=
	SEQ        // ===
	SNE        // !==
	BITAND     // &
	BITXOR     // ^
	BITOR      // |
	AND        // &&
	OR         // ||
	COALESCE   // ??

	// assignment
	ASSIGN // =
)

var operatorNames = [...]string{
	ILLEGAL:    "illegal operator",
	DELETE:     "delete",
	VOID:       "void",
	TYPEOF:     "typeof",
	POS:        "+",
	NEG:        "-",
	BITNOT:     "~",
	NOT:        "!",
	INC:        "++",
	DEC:        "--",
	MUL:        "*",
	DIV:        "/",
	MOD:        "%",
	EXP:        "**",
	ADD:        "+",
	SUB:        "-",
	SHL:        "<<",
	SHR:        ">>",
	USHR:       ">>>",
	LT:         "<",
	GT:         ">",
	LE:         "<=",
	GE:         ">=",
	INSTANCEOF: "instanceof",
	IN:         "in",
	EQ:         "==",
	NE:         "!=",
	SEQ:        "===",
	SNE:        "!==",
	BITAND:     "&",
	BITXOR:     "^",
	BITOR:      "|",
	AND:        "&&",
	OR:         "||",
	COALESCE:   "??",
	ASSIGN:     "=",
}

func (op Operator) String() string { return operatorNames[op] }

// IsLogical reports whether op is a short-circuiting operator.
func (op Operator) IsLogical() bool { return op == AND || op == OR || op == COALESCE }

var (
	unaryOperators = map[string]Operator{
		"delete": DELETE, "void": VOID, "typeof": TYPEOF,
		"+": POS, "-": NEG, "~": BITNOT, "!": NOT,
	}
	binaryOperators = make(map[string]Operator)
)

func init() {
	for op := MUL; op <= COALESCE; op++ {
		binaryOperators[operatorNames[op]] = op
	}
}

// UnaryOperator returns the unary operator spelled s.
func UnaryOperator(s string) (Operator, bool) {
	op, ok := unaryOperators[s]
	return op, ok
}

// BinaryOperator returns the binary operator spelled s.
func BinaryOperator(s string) (Operator, bool) {
	op, ok := binaryOperators[s]
	return op, ok
}

// UpdateOperator returns the update operator spelled s.
func UpdateOperator(s string) (Operator, bool) {
	switch s {
	case "++":
		return INC, true
	case "--":
		return DEC, true
	}
	return ILLEGAL, false
}

// AssignmentOperator returns the operator of the assignment spelled s.
// Plain assignment is ASSIGN; a compound assignment such as "+=" or
// "??=" is represented by its binary operator.
func AssignmentOperator(s string) (Operator, bool) {
	if s == "=" {
		return ASSIGN, true
	}
	if len(s) < 2 || s[len(s)-1] != '=' {
		return ILLEGAL, false
	}
	op, ok := binaryOperators[s[:len(s)-1]]
	if !ok || (LT <= op && op <= SNE) {
		return ILLEGAL, false
	}
	return op, true
}
