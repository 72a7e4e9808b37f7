package mathengine

// Expr is implemented by every node of the expression tree. The set of nodes
// is closed; consumers dispatch with an exhaustive type switch.
type Expr interface {
	exprNode()
}

// NumberExpr is a dimensionless number literal.
type NumberExpr struct {
	Value float64
}

// UnitValueExpr is a number literal carrying a unit. The unit string is
// canonicalized at parse time.
type UnitValueExpr struct {
	Value float64
	Unit  string
}

// UnitNameExpr is a bare unit, valid only as the right operand of a
// conversion.
type UnitNameExpr struct {
	Unit string
}

// BinaryExpr applies an operation to two sub-expressions.
type BinaryExpr struct {
	Op    Operation
	Left  Expr
	Right Expr
}

// UnaryExpr applies an operation to a single operand. Only negation is
// accepted by the parser today.
type UnaryExpr struct {
	Op      Operation
	Operand Expr
}

func NewNumberExpr(value float64) *NumberExpr {
	return &NumberExpr{value}
}

func NewUnitValueExpr(value float64, unit string) *UnitValueExpr {
	return &UnitValueExpr{value, unit}
}

func NewUnitNameExpr(unit string) *UnitNameExpr {
	return &UnitNameExpr{unit}
}

func NewBinaryExpr(op Operation, left, right Expr) *BinaryExpr {
	return &BinaryExpr{op, left, right}
}

func NewUnaryExpr(op Operation, operand Expr) *UnaryExpr {
	return &UnaryExpr{op, operand}
}

func (expr *NumberExpr) exprNode()    {}
func (expr *UnitValueExpr) exprNode() {}
func (expr *UnitNameExpr) exprNode()  {}
func (expr *BinaryExpr) exprNode()    {}
func (expr *UnaryExpr) exprNode()     {}
