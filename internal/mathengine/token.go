package mathengine

import (
	"fmt"
	"strconv"
)

// Operation enumerates the binary (and unary) operations in the language.
// Precedence and associativity are derived from the operation, not stored
// alongside it.
type Operation uint

const (
	OpAdd Operation = iota
	OpSubtract
	OpMultiply
	OpDivide
	OpPower
	OpConvert
)

func (op Operation) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	case OpPower:
		return "^"
	case OpConvert:
		return "to"
	}
	return "unknown"
}

// Precedence returns the binding power of the operation; higher binds
// tighter. Convert outranks everything so that a trailing unit name binds to
// the value immediately to its left.
func (op Operation) Precedence() int {
	switch op {
	case OpAdd, OpSubtract:
		return 1
	case OpMultiply, OpDivide:
		return 2
	case OpPower:
		return 3
	case OpConvert:
		return 5
	}
	return 0
}

// IsRightAssociative reports whether the operation groups to the right.
// Power is the only one: 2^3^4 parses as 2^(3^4).
func (op Operation) IsRightAssociative() bool {
	return op == OpPower
}

// TokenType tags the kind of a lexed token.
type TokenType uint

const (
	// A bare number literal, e.g. "100.50".
	TokenNumber TokenType = iota
	// A number fused with its trailing unit spelling, e.g. "100cm".
	TokenNumberWithUnit
	// A bare unit name, e.g. the "m" in "100cm to m".
	TokenUnitName
	// One of the operations, including the "to" keyword.
	TokenOperation
	TokenLeftParen
	TokenRightParen
)

// Token groups a run of characters with the information obtained while
// scanning it. Which payload fields are meaningful depends on Typ.
type Token struct {
	Typ      TokenType
	Op       Operation
	Value    float64
	Unit     string
	Position int
}

func (t Token) String() string {
	switch t.Typ {
	case TokenNumber:
		return strconv.FormatFloat(t.Value, 'f', -1, 64)
	case TokenNumberWithUnit:
		return fmt.Sprintf("%s%s", strconv.FormatFloat(t.Value, 'f', -1, 64), t.Unit)
	case TokenUnitName:
		return fmt.Sprintf("unit '%s'", t.Unit)
	case TokenOperation:
		return fmt.Sprintf("'%s'", t.Op)
	case TokenLeftParen:
		return "'('"
	case TokenRightParen:
		return "')'"
	}
	return "unknown token"
}
