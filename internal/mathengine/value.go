package mathengine

import (
	"fmt"
	"strconv"

	"github.com/javif89/mathengine/internal/units"
)

// Value is the result of evaluating an expression: either a dimensionless
// Number or a UnitValue tagged with a unit and its dimension. The set of
// variants is closed.
type Value interface {
	fmt.Stringer
	valueNode()
}

// Number is a dimensionless evaluation result.
type Number float64

func (n Number) valueNode() {}

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

// UnitValue is an evaluation result carrying a unit and the dimension the
// unit belongs to.
type UnitValue struct {
	Value     float64
	Unit      string
	Dimension units.DimensionType
}

// NewUnitValue creates a unit value, deriving the dimension from the unit
// string.
func NewUnitValue(value float64, unit string) UnitValue {
	return UnitValue{value, unit, units.Classify(unit)}
}

func (uv UnitValue) valueNode() {}

func (uv UnitValue) String() string {
	return strconv.FormatFloat(uv.Value, 'f', -1, 64) + uv.Unit
}
