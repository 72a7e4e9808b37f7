package mathengine

// EvaluateExpression runs a source string through the whole pipeline:
// lexical analysis, parsing, and unit-aware evaluation. It returns the
// resulting value or the first typed error produced by any stage; no stage
// attempts partial recovery.
func EvaluateExpression(source string) (Value, error) {
	lexer := NewLexer(source)
	tokens, err := lexer.Tokenize()
	if err != nil {
		return nil, err
	}
	parser := NewParser(tokens)
	expr, err := parser.Parse()
	if err != nil {
		return nil, err
	}
	return Evaluate(expr)
}
