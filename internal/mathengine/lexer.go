package mathengine

import (
	"strconv"
	"strings"
	"unicode"
)

// Lexer converts source text into a flat token sequence in a single
// left-to-right pass with no backtracking.
type Lexer struct {
	current int
	source  []rune
}

// NewLexer creates a lexer over the given source. ASCII input is assumed;
// positions count characters consumed.
func NewLexer(source string) *Lexer {
	lexer := new(Lexer)
	lexer.current = 0
	lexer.source = []rune(source)
	return lexer
}

// Tokenize reads the source and collects all the tokens that can be found.
// A number immediately followed by an alphabetic run, with only whitespace
// in between, is fused into a single number-with-unit token carrying the raw
// unit spelling.
func (lexer *Lexer) Tokenize() ([]Token, error) {
	if strings.TrimSpace(string(lexer.source)) == "" {
		return nil, NewEmptyInputError()
	}

	tokens := make([]Token, 0)
	for lexer.hasNext() {
		start := lexer.current
		switch r := lexer.advance(); {
		case unicode.IsSpace(r):
		case unicode.IsDigit(r):
			value, err := lexer.scanNumber(start)
			if err != nil {
				return nil, err
			}
			lexer.skipWhitespace()
			if unicode.IsLetter(lexer.peek()) {
				unitStart := lexer.current
				lexer.advance()
				unit := lexer.scanIdentifier(unitStart)
				tokens = append(tokens, Token{
					Typ:      TokenNumberWithUnit,
					Value:    value,
					Unit:     unit,
					Position: start,
				})
			} else {
				tokens = append(tokens, Token{
					Typ:      TokenNumber,
					Value:    value,
					Position: start,
				})
			}
		case unicode.IsLetter(r):
			ident := lexer.scanIdentifier(start)
			if strings.EqualFold(ident, "to") {
				tokens = append(tokens, Token{
					Typ:      TokenOperation,
					Op:       OpConvert,
					Position: start,
				})
			} else {
				tokens = append(tokens, Token{
					Typ:      TokenUnitName,
					Unit:     ident,
					Position: start,
				})
			}
		case r == '+':
			tokens = append(tokens, Token{Typ: TokenOperation, Op: OpAdd, Position: start})
		case r == '-':
			tokens = append(tokens, Token{Typ: TokenOperation, Op: OpSubtract, Position: start})
		case r == '*':
			tokens = append(tokens, Token{Typ: TokenOperation, Op: OpMultiply, Position: start})
		case r == '/':
			tokens = append(tokens, Token{Typ: TokenOperation, Op: OpDivide, Position: start})
		case r == '^':
			tokens = append(tokens, Token{Typ: TokenOperation, Op: OpPower, Position: start})
		case r == '(':
			tokens = append(tokens, Token{Typ: TokenLeftParen, Position: start})
		case r == ')':
			tokens = append(tokens, Token{Typ: TokenRightParen, Position: start})
		default:
			return nil, NewUnexpectedCharacterError(r, start)
		}
	}
	return tokens, nil
}

// scanNumber consumes the maximal run of digits and decimal points following
// the digit at start. Validation is left to the float parser so that inputs
// like "1.2.3" surface as one invalid-number error.
func (lexer *Lexer) scanNumber(start int) (float64, error) {
	for unicode.IsDigit(lexer.peek()) || lexer.peek() == '.' {
		lexer.advance()
	}
	lexeme := string(lexer.source[start:lexer.current])
	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return 0, NewInvalidNumberError(lexeme, start)
	}
	return value, nil
}

// scanIdentifier consumes the maximal alphabetic run following the letter at
// start and returns its raw spelling.
func (lexer *Lexer) scanIdentifier(start int) string {
	for unicode.IsLetter(lexer.peek()) {
		lexer.advance()
	}
	return string(lexer.source[start:lexer.current])
}

func (lexer *Lexer) skipWhitespace() {
	for unicode.IsSpace(lexer.peek()) {
		lexer.advance()
	}
}

// hasNext returns true if the lexer has not read past the source length.
func (lexer *Lexer) hasNext() bool {
	return lexer.current < len(lexer.source)
}

// advance consumes and returns the rune at the current position.
func (lexer *Lexer) advance() rune {
	r := lexer.source[lexer.current]
	lexer.current++
	return r
}

// peek returns the rune at the current position, but does not consume it.
func (lexer *Lexer) peek() rune {
	if !lexer.hasNext() {
		return '\x00'
	}
	return lexer.source[lexer.current]
}
