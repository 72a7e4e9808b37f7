package mathengine

import "github.com/javif89/mathengine/internal/units"

// maxNestingDepth bounds parser recursion so that deeply nested input fails
// with a typed error instead of exhausting the call stack. The evaluator
// recurses over the resulting tree, so this bounds its depth as well.
const maxNestingDepth = 256

// Parser composes the expression tree from the sequence of tokens using
// precedence climbing.
//
// Grammar
//
//	expr      --> primary ( binop expr )* ;
//	primary   --> NUMBER
//	            | NUMBER UNIT_NAME
//	            | UNIT_NAME
//	            | "(" expr ")"
//	            | "-" primary ;
//	binop     --> "+" | "-" | "*" | "/" | "^" | "to" ;
//
// Binary operators are consumed according to the precedence table on
// Operation. A bare UNIT_NAME is only meaningful as the right operand of
// "to"; the parser accepts it anywhere and leaves the structural check to
// the evaluator.
type Parser struct {
	current int
	depth   int
	tokens  []Token
}

// NewParser creates a parser over the given token sequence.
func NewParser(tokens []Token) *Parser {
	return &Parser{0, 0, tokens}
}

// Parse consumes the entire token sequence into one expression tree. Any
// leftover token is an error.
func (parser *Parser) Parse() (Expr, error) {
	if len(parser.tokens) == 0 {
		return nil, NewEmptyTokenStreamError()
	}
	expr, err := parser.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if parser.hasNext() {
		found := parser.peek()
		return nil, NewUnexpectedTokenError("end of input", found, found.Position)
	}
	return expr, nil
}

// parseExpression parses one primary, then folds in every following binary
// operator whose precedence is at least minPrecedence. Right-associative
// operators recurse at their own precedence, left-associative ones at
// precedence+1.
func (parser *Parser) parseExpression(minPrecedence int) (Expr, error) {
	if err := parser.descend(); err != nil {
		return nil, err
	}
	defer parser.ascend()

	left, err := parser.parsePrimary()
	if err != nil {
		return nil, err
	}
	for parser.hasNext() && parser.peek().Typ == TokenOperation {
		op := parser.peek().Op
		precedence := op.Precedence()
		if precedence < minPrecedence {
			break
		}
		parser.advance()

		rightPrecedence := precedence + 1
		if op.IsRightAssociative() {
			rightPrecedence = precedence
		}
		right, err := parser.parseExpression(rightPrecedence)
		if err != nil {
			return nil, err
		}
		left = NewBinaryExpr(op, left, right)
	}
	return left, nil
}

// parsePrimary parses a literal, a bare unit name, a parenthesized
// sub-expression, or a unary minus. Unit spellings on literals are
// canonicalized here; a spelling no family recognizes becomes the literal
// string "unknown" and is rejected at evaluation time.
func (parser *Parser) parsePrimary() (Expr, error) {
	if err := parser.descend(); err != nil {
		return nil, err
	}
	defer parser.ascend()

	if !parser.hasNext() {
		return nil, NewUnexpectedEndOfInputError("expression")
	}
	token := parser.advance()
	switch token.Typ {
	case TokenNumber:
		return NewNumberExpr(token.Value), nil
	case TokenNumberWithUnit:
		return NewUnitValueExpr(token.Value, canonicalizeUnit(token.Unit)), nil
	case TokenUnitName:
		return NewUnitNameExpr(token.Unit), nil
	case TokenLeftParen:
		expr, err := parser.parseExpression(0)
		if err != nil {
			return nil, err
		}
		if !parser.hasNext() {
			return nil, NewUnexpectedEndOfInputError("')'")
		}
		if closing := parser.advance(); closing.Typ != TokenRightParen {
			return nil, NewUnexpectedTokenError("')'", closing, closing.Position)
		}
		return expr, nil
	case TokenOperation:
		if token.Op == OpSubtract {
			operand, err := parser.parsePrimary()
			if err != nil {
				return nil, err
			}
			return NewUnaryExpr(OpSubtract, operand), nil
		}
	}
	return nil, NewUnexpectedTokenError(
		"number, unit value, '(', or unary operator",
		token,
		token.Position,
	)
}

func (parser *Parser) descend() error {
	parser.depth++
	if parser.depth > maxNestingDepth {
		return NewInvalidExpressionError(
			"expression nesting is too deep",
			parser.peek().Position,
		)
	}
	return nil
}

func (parser *Parser) ascend() {
	parser.depth--
}

func (parser *Parser) hasNext() bool {
	return parser.current < len(parser.tokens)
}

// peek returns the current token without consuming it.
func (parser *Parser) peek() Token {
	if !parser.hasNext() {
		return Token{}
	}
	return parser.tokens[parser.current]
}

// advance consumes and returns the current token.
func (parser *Parser) advance() Token {
	token := parser.tokens[parser.current]
	parser.current++
	return token
}

// canonicalizeUnit maps a raw unit spelling to its family's abbreviation.
// Spellings no family recognizes fail closed to "unknown", which every
// classification treats as unparseable.
func canonicalizeUnit(unit string) string {
	canonical, err := units.Canonicalize(unit)
	if err != nil {
		return "unknown"
	}
	return canonical
}
