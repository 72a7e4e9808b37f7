package mathengine

import (
	"math"

	"github.com/javif89/mathengine/internal/units"
)

// Evaluate reduces an expression tree to a single value, enforcing
// dimensional rules at every arithmetic step. The walk is post-order and
// purely recursive; the one exception is conversion, whose right child is a
// bare unit name that is read structurally rather than evaluated.
func Evaluate(expr Expr) (Value, error) {
	switch expr := expr.(type) {
	case *NumberExpr:
		return Number(expr.Value), nil
	case *UnitValueExpr:
		return NewUnitValue(expr.Value, expr.Unit), nil
	case *UnitNameExpr:
		return nil, NewInvalidUnitExpressionError("Cannot evaluate a unit without a value")
	case *BinaryExpr:
		if expr.Op == OpConvert {
			return evaluateConversion(expr)
		}
		return evaluateBinary(expr)
	case *UnaryExpr:
		return evaluateUnary(expr)
	}
	panic("Unreachable")
}

// evaluateConversion handles the "to" operation. The left side must reduce
// to a unit value and the right side must structurally be a bare unit name.
// Conversions never cross unit families and never approximate.
func evaluateConversion(expr *BinaryExpr) (Value, error) {
	left, err := Evaluate(expr.Left)
	if err != nil {
		return nil, err
	}
	from, ok := left.(UnitValue)
	if !ok {
		return nil, NewInvalidUnitExpressionError("Left side of conversion must be a unit value")
	}
	target, ok := expr.Right.(*UnitNameExpr)
	if !ok {
		return nil, NewInvalidUnitExpressionError("Right side of conversion must be a unit")
	}

	fromDimension := units.Classify(from.Unit)
	if fromDimension == units.DimensionUnknown {
		return nil, units.NewUnknownUnitError(from.Unit)
	}
	toDimension := units.Classify(target.Unit)
	if toDimension == units.DimensionUnknown {
		return nil, units.NewUnknownUnitError(target.Unit)
	}
	if fromDimension != toDimension {
		return nil, NewInvalidConversionError(from.Unit, target.Unit)
	}

	converted, err := fromDimension.Convert(from.Unit, target.Unit, from.Value)
	if err != nil {
		return nil, NewInvalidConversionError(from.Unit, target.Unit)
	}
	canonical, err := units.Canonicalize(target.Unit)
	if err != nil {
		return nil, units.NewUnknownUnitError(target.Unit)
	}
	return NewUnitValue(converted, canonical), nil
}

// evaluateBinary evaluates both sides and dispatches on the pair of result
// kinds.
func evaluateBinary(expr *BinaryExpr) (Value, error) {
	left, err := Evaluate(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := Evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch l := left.(type) {
	case Number:
		switch r := right.(type) {
		case Number:
			return evaluateNumberNumber(expr.Op, l, r)
		case UnitValue:
			return evaluateNumberUnitValue(expr.Op, l, r)
		}
	case UnitValue:
		switch r := right.(type) {
		case Number:
			return evaluateUnitValueNumber(expr.Op, l, r)
		case UnitValue:
			return evaluateUnitValueUnitValue(expr.Op, l, r)
		}
	}
	panic("Unreachable")
}

func evaluateNumberNumber(op Operation, l, r Number) (Value, error) {
	switch op {
	case OpAdd:
		return l + r, nil
	case OpSubtract:
		return l - r, nil
	case OpMultiply:
		return l * r, nil
	case OpDivide:
		if r == 0.0 {
			return nil, NewDivisionByZeroError()
		}
		return l / r, nil
	case OpPower:
		return Number(math.Pow(float64(l), float64(r))), nil
	}
	return nil, NewUnsupportedOperationError(op.String(), "numbers")
}

// evaluateUnitValueUnitValue combines two dimensioned values. Addition and
// subtraction require the same dimension; both operands are reduced to the
// dimension's base unit and the result keeps that base unit. There is no
// compound-unit model, so multiplication, division, and exponentiation are
// rejected.
func evaluateUnitValueUnitValue(op Operation, l, r UnitValue) (Value, error) {
	switch op {
	case OpAdd, OpSubtract:
		if l.Dimension != r.Dimension ||
			l.Dimension == units.DimensionUnknown ||
			r.Dimension == units.DimensionUnknown {
			operation := "add"
			if op == OpSubtract {
				operation = "subtract"
			}
			return nil, NewIncompatibleUnitsError(l.Unit, r.Unit, operation)
		}
		leftBase, err := l.Dimension.ToBase(l.Unit, l.Value)
		if err != nil {
			return nil, units.NewUnknownUnitError(l.Unit)
		}
		rightBase, err := r.Dimension.ToBase(r.Unit, r.Value)
		if err != nil {
			return nil, units.NewUnknownUnitError(r.Unit)
		}
		combined := leftBase + rightBase
		if op == OpSubtract {
			combined = leftBase - rightBase
		}
		return NewUnitValue(combined, l.Dimension.BaseUnit()), nil
	}
	return nil, NewUnsupportedOperationError(op.String(), "unit values")
}

// evaluateUnitValueNumber treats the number as already expressed in the unit
// value's current unit; the result keeps that unit.
func evaluateUnitValueNumber(op Operation, l UnitValue, r Number) (Value, error) {
	switch op {
	case OpAdd:
		return UnitValue{l.Value + float64(r), l.Unit, l.Dimension}, nil
	case OpSubtract:
		return UnitValue{l.Value - float64(r), l.Unit, l.Dimension}, nil
	case OpMultiply:
		return UnitValue{l.Value * float64(r), l.Unit, l.Dimension}, nil
	case OpDivide:
		if r == 0.0 {
			return nil, NewDivisionByZeroError()
		}
		return UnitValue{l.Value / float64(r), l.Unit, l.Dimension}, nil
	}
	return nil, NewUnsupportedOperationError(op.String(), "unit value and number")
}

// evaluateNumberUnitValue mirrors evaluateUnitValueNumber for the operations
// where the order of operands does not change what is legal. Dividing a
// number by a unit value would require inverse units, which the system does
// not model.
func evaluateNumberUnitValue(op Operation, l Number, r UnitValue) (Value, error) {
	switch op {
	case OpAdd:
		return UnitValue{float64(l) + r.Value, r.Unit, r.Dimension}, nil
	case OpSubtract:
		return UnitValue{float64(l) - r.Value, r.Unit, r.Dimension}, nil
	case OpMultiply:
		return UnitValue{float64(l) * r.Value, r.Unit, r.Dimension}, nil
	case OpDivide:
		return nil, NewUnsupportedOperationError(op.String(), "number by unit value")
	}
	return nil, NewUnsupportedOperationError(op.String(), "number and unit value")
}

func evaluateUnary(expr *UnaryExpr) (Value, error) {
	operand, err := Evaluate(expr.Operand)
	if err != nil {
		return nil, err
	}
	if expr.Op != OpSubtract {
		return nil, NewUnsupportedOperationError(expr.Op.String(), "unary operand")
	}
	if n, ok := operand.(Number); ok {
		return -n, nil
	}
	return nil, NewUnsupportedOperationError("negate", "unit value")
}
