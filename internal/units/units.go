package units

import "fmt"

// Family describes one dimension of measurement. Each family declares its
// closed set of units, how unit spellings are parsed, the canonical short
// form for each unit, and how values move to and from the family's base
// unit. Adding a dimension to the engine means implementing this interface,
// not touching the evaluator.
type Family[U comparable] interface {
	// Parse maps a case-insensitive unit name or abbreviation to a unit.
	Parse(s string) (U, error)
	// Canonical returns the short, stable abbreviation for a unit. The
	// result is used for display and must re-parse to the same unit.
	Canonical(u U) string
	// Base returns the unit all conversions in this family route through.
	Base() U
	// ToBase expresses a value given in unit u in the family's base unit.
	ToBase(u U, value float64) float64
	// FromBase expresses a base-unit value in unit u.
	FromBase(u U, value float64) float64
	// ConvertDirect reports an exact pairwise conversion when one exists.
	// It returns false when the pair has no direct formula, in which case
	// callers fall back to the base-unit route.
	ConvertDirect(from, to U, value float64) (float64, bool)
}

// Convert moves a value between two units of the same family. Converting a
// unit to itself is the identity. A direct formula is preferred when the
// family provides one; otherwise the value is routed through the base unit.
func Convert[U comparable](f Family[U], from, to U, value float64) float64 {
	if from == to {
		return value
	}
	if converted, ok := f.ConvertDirect(from, to, value); ok {
		return converted
	}
	return f.FromBase(to, f.ToBase(from, value))
}

// UnknownUnitError is returned when no unit family recognizes a spelling.
type UnknownUnitError struct {
	Unit string
}

// NewUnknownUnitError creates an error for an unrecognized unit spelling.
func NewUnknownUnitError(unit string) error {
	return &UnknownUnitError{unit}
}

func (err *UnknownUnitError) Error() string {
	return fmt.Sprintf("Unknown unit: '%s'", err.Unit)
}
