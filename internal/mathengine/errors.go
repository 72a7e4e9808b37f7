package mathengine

import "fmt"

// EmptyInputError is returned when the source is empty or all whitespace.
type EmptyInputError struct{}

// NewEmptyInputError creates an error for an empty source string.
func NewEmptyInputError() error {
	return &EmptyInputError{}
}

func (err *EmptyInputError) Error() string {
	return "Empty input provided"
}

// UnexpectedCharacterError is returned when the lexer meets a character that
// cannot begin any token.
type UnexpectedCharacterError struct {
	Char     rune
	Position int
}

// NewUnexpectedCharacterError creates an error for a character the lexer
// does not recognize.
func NewUnexpectedCharacterError(char rune, position int) error {
	return &UnexpectedCharacterError{char, position}
}

func (err *UnexpectedCharacterError) Error() string {
	return fmt.Sprintf(
		"Unexpected character '%c' at position %d",
		err.Char,
		err.Position,
	)
}

// InvalidNumberError is returned when a run of digits and dots does not form
// a valid floating point literal.
type InvalidNumberError struct {
	Input    string
	Position int
}

// NewInvalidNumberError creates an error for a malformed number literal.
func NewInvalidNumberError(input string, position int) error {
	return &InvalidNumberError{input, position}
}

func (err *InvalidNumberError) Error() string {
	return fmt.Sprintf(
		"Invalid number '%s' at position %d",
		err.Input,
		err.Position,
	)
}

// EmptyTokenStreamError is returned when the parser receives no tokens.
type EmptyTokenStreamError struct{}

// NewEmptyTokenStreamError creates an error for an empty token stream.
func NewEmptyTokenStreamError() error {
	return &EmptyTokenStreamError{}
}

func (err *EmptyTokenStreamError) Error() string {
	return "Cannot parse empty token stream"
}

// UnexpectedTokenError is returned when the parser meets a token that cannot
// appear at the current position.
type UnexpectedTokenError struct {
	Expected string
	Found    Token
	Position int
}

// NewUnexpectedTokenError creates an error naming the expected category and
// the token that was found instead.
func NewUnexpectedTokenError(expected string, found Token, position int) error {
	return &UnexpectedTokenError{expected, found, position}
}

func (err *UnexpectedTokenError) Error() string {
	return fmt.Sprintf(
		"Expected %s but found %s at position %d",
		err.Expected,
		err.Found,
		err.Position,
	)
}

// UnexpectedEndOfInputError is returned when the token stream ends where the
// parser still expects something.
type UnexpectedEndOfInputError struct {
	Expected string
}

// NewUnexpectedEndOfInputError creates an error naming what the parser was
// expecting when the tokens ran out.
func NewUnexpectedEndOfInputError(expected string) error {
	return &UnexpectedEndOfInputError{expected}
}

func (err *UnexpectedEndOfInputError) Error() string {
	return fmt.Sprintf("Expected %s but reached end of input", err.Expected)
}

// InvalidExpressionError is returned for structurally invalid expressions
// that no more specific parse error describes.
type InvalidExpressionError struct {
	Message  string
	Position int
}

// NewInvalidExpressionError creates an error for an invalid expression.
func NewInvalidExpressionError(message string, position int) error {
	return &InvalidExpressionError{message, position}
}

func (err *InvalidExpressionError) Error() string {
	return fmt.Sprintf(
		"Invalid expression at position %d: %s",
		err.Position,
		err.Message,
	)
}

// DivisionByZeroError is returned when the divisor evaluates to exactly zero.
type DivisionByZeroError struct{}

// NewDivisionByZeroError creates an error for a division by zero.
func NewDivisionByZeroError() error {
	return &DivisionByZeroError{}
}

func (err *DivisionByZeroError) Error() string {
	return "Division by zero"
}

// IncompatibleUnitsError is returned when an operation combines two
// dimensioned values from different unit families.
type IncompatibleUnitsError struct {
	LeftUnit  string
	RightUnit string
	Operation string
}

// NewIncompatibleUnitsError creates an error for an operation over two
// values whose dimensions do not match.
func NewIncompatibleUnitsError(leftUnit, rightUnit, operation string) error {
	return &IncompatibleUnitsError{leftUnit, rightUnit, operation}
}

func (err *IncompatibleUnitsError) Error() string {
	return fmt.Sprintf(
		"Cannot %s incompatible units: %s and %s",
		err.Operation,
		err.LeftUnit,
		err.RightUnit,
	)
}

// InvalidConversionError is returned when a conversion crosses unit families
// or targets a unit outside the source's family.
type InvalidConversionError struct {
	FromUnit string
	ToUnit   string
}

// NewInvalidConversionError creates an error for an impossible conversion.
func NewInvalidConversionError(fromUnit, toUnit string) error {
	return &InvalidConversionError{fromUnit, toUnit}
}

func (err *InvalidConversionError) Error() string {
	return fmt.Sprintf(
		"Cannot convert from '%s' to '%s'",
		err.FromUnit,
		err.ToUnit,
	)
}

// UnsupportedOperationError is returned when an operation is applied to a
// combination of operand kinds it is not defined for.
type UnsupportedOperationError struct {
	Operation   string
	OperandKind string
}

// NewUnsupportedOperationError creates an error naming the rejected
// operation and the operand kinds it was applied to.
func NewUnsupportedOperationError(operation, operandKind string) error {
	return &UnsupportedOperationError{operation, operandKind}
}

func (err *UnsupportedOperationError) Error() string {
	return fmt.Sprintf(
		"Unsupported operation '%s' for %s",
		err.Operation,
		err.OperandKind,
	)
}

// InvalidUnitExpressionError is returned for structural misuse of units,
// such as evaluating a bare unit name or converting a plain number.
type InvalidUnitExpressionError struct {
	Message string
}

// NewInvalidUnitExpressionError creates an error for a structurally invalid
// use of a unit.
func NewInvalidUnitExpressionError(message string) error {
	return &InvalidUnitExpressionError{message}
}

func (err *InvalidUnitExpressionError) Error() string {
	return fmt.Sprintf("Invalid unit expression: %s", err.Message)
}
