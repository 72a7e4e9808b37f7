package mathengine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustTokenize(t *testing.T, src string) []Token {
	t.Helper()
	toks, err := NewLexer(src).Tokenize()
	if err != nil {
		t.Fatalf("tokenize %q: %v", src, err)
	}
	return toks
}

func TestParsePrimary(t *testing.T) {
	testCases := []struct {
		src  string
		expr Expr
	}{
		{"3.14", NewNumberExpr(3.14)},
		{"10m", NewUnitValueExpr(10.0, "m")},
		{"100 centimeters", NewUnitValueExpr(100.0, "cm")},
		{"23C", NewUnitValueExpr(23.0, "C")},
		{"feet", NewUnitNameExpr("feet")},
		{"(3.14)", NewNumberExpr(3.14)},
		{"((42))", NewNumberExpr(42.0)},
		{"-3.14", NewUnaryExpr(OpSubtract, NewNumberExpr(3.14))},
		{"--3.14", NewUnaryExpr(OpSubtract, NewUnaryExpr(OpSubtract, NewNumberExpr(3.14)))},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		expr, err := NewParser(mustTokenize(t, tc.src)).Parse()

		assert.NoError(err)
		assert.Equal(tc.expr, expr, "src: %q", tc.src)
	}
}

// Unit spellings no family recognizes fail closed to the literal string
// "unknown" at parse time; rejection happens during evaluation.
func TestParseCanonicalizesUnits(t *testing.T) {
	testCases := []struct {
		src   string
		value float64
		unit  string
	}{
		{"10 meters", 10.0, "m"},
		{"10 FEET", 10.0, "ft"},
		{"12 inches", 12.0, "in"},
		{"3 yards", 3.0, "yd"},
		{"2 kelvin", 2.0, "K"},
		{"23 fahrenheit", 23.0, "F"},
		{"10xyz", 10.0, "unknown"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		expr, err := NewParser(mustTokenize(t, tc.src)).Parse()

		assert.NoError(err)
		assert.Equal(NewUnitValueExpr(tc.value, tc.unit), expr, "src: %q", tc.src)
	}
}

func TestParsePrecedence(t *testing.T) {
	testCases := []struct {
		src  string
		expr Expr
	}{
		{
			"2 + 3 * 4",
			NewBinaryExpr(OpAdd,
				NewNumberExpr(2.0),
				NewBinaryExpr(OpMultiply, NewNumberExpr(3.0), NewNumberExpr(4.0))),
		},
		{
			"2 * 3 + 4",
			NewBinaryExpr(OpAdd,
				NewBinaryExpr(OpMultiply, NewNumberExpr(2.0), NewNumberExpr(3.0)),
				NewNumberExpr(4.0)),
		},
		{
			"(2 + 3) * 4",
			NewBinaryExpr(OpMultiply,
				NewBinaryExpr(OpAdd, NewNumberExpr(2.0), NewNumberExpr(3.0)),
				NewNumberExpr(4.0)),
		},
		{
			"2 * 3 ^ 4",
			NewBinaryExpr(OpMultiply,
				NewNumberExpr(2.0),
				NewBinaryExpr(OpPower, NewNumberExpr(3.0), NewNumberExpr(4.0))),
		},
		{
			"1 - 2 - 3",
			NewBinaryExpr(OpSubtract,
				NewBinaryExpr(OpSubtract, NewNumberExpr(1.0), NewNumberExpr(2.0)),
				NewNumberExpr(3.0)),
		},
		{
			"8 / 4 / 2",
			NewBinaryExpr(OpDivide,
				NewBinaryExpr(OpDivide, NewNumberExpr(8.0), NewNumberExpr(4.0)),
				NewNumberExpr(2.0)),
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		expr, err := NewParser(mustTokenize(t, tc.src)).Parse()

		assert.NoError(err)
		assert.Equal(tc.expr, expr, "src: %q", tc.src)
	}
}

func TestParsePowerIsRightAssociative(t *testing.T) {
	assert := assert.New(t)
	expr, err := NewParser(mustTokenize(t, "2^3^4")).Parse()

	assert.NoError(err)
	assert.Equal(
		NewBinaryExpr(OpPower,
			NewNumberExpr(2.0),
			NewBinaryExpr(OpPower, NewNumberExpr(3.0), NewNumberExpr(4.0))),
		expr,
	)
}

func TestParseConversion(t *testing.T) {
	testCases := []struct {
		src  string
		expr Expr
	}{
		{
			"100cm to m",
			NewBinaryExpr(OpConvert,
				NewUnitValueExpr(100.0, "cm"),
				NewUnitNameExpr("m")),
		},
		{
			"(1m + 2m) to feet",
			NewBinaryExpr(OpConvert,
				NewBinaryExpr(OpAdd,
					NewUnitValueExpr(1.0, "m"),
					NewUnitValueExpr(2.0, "m")),
				NewUnitNameExpr("feet")),
		},
		// Convert binds tighter than addition, so only the adjacent
		// operand is converted.
		{
			"1m + 100cm to m",
			NewBinaryExpr(OpAdd,
				NewUnitValueExpr(1.0, "m"),
				NewBinaryExpr(OpConvert,
					NewUnitValueExpr(100.0, "cm"),
					NewUnitNameExpr("m"))),
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		expr, err := NewParser(mustTokenize(t, tc.src)).Parse()

		assert.NoError(err)
		assert.Equal(tc.expr, expr, "src: %q", tc.src)
	}
}

func TestParseEmptyTokenStream(t *testing.T) {
	assert := assert.New(t)
	_, err := NewParser(nil).Parse()

	var empty *EmptyTokenStreamError
	assert.ErrorAs(err, &empty)
}

func TestParseLeftoverTokens(t *testing.T) {
	testCases := []string{
		"1 2",
		"2 m feet",
		"(1) (2)",
	}

	assert := assert.New(t)
	for _, src := range testCases {
		_, err := NewParser(mustTokenize(t, src)).Parse()

		var unexpected *UnexpectedTokenError
		assert.ErrorAs(err, &unexpected, "src: %q", src)
		assert.Equal("end of input", unexpected.Expected)
	}
}

func TestParseUnexpectedToken(t *testing.T) {
	testCases := []string{
		"+ 1",
		"* 2",
		"1 + * 2",
		"()",
		"(1 + 2(",
	}

	assert := assert.New(t)
	for _, src := range testCases {
		_, err := NewParser(mustTokenize(t, src)).Parse()

		var unexpected *UnexpectedTokenError
		assert.ErrorAs(err, &unexpected, "src: %q", src)
	}
}

func TestParseUnexpectedEndOfInput(t *testing.T) {
	testCases := []struct {
		src      string
		expected string
	}{
		{"1 +", "expression"},
		{"-", "expression"},
		{"(1 + 2", "')'"},
		{"(", "expression"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		_, err := NewParser(mustTokenize(t, tc.src)).Parse()

		var eof *UnexpectedEndOfInputError
		assert.ErrorAs(err, &eof, "src: %q", tc.src)
		assert.Equal(tc.expected, eof.Expected)
	}
}

func TestParseNestingIsBounded(t *testing.T) {
	assert := assert.New(t)
	depth := maxNestingDepth + 1
	src := strings.Repeat("(", depth) + "1" + strings.Repeat(")", depth)
	_, err := NewParser(mustTokenize(t, src)).Parse()

	var invalid *InvalidExpressionError
	assert.ErrorAs(err, &invalid)
}
