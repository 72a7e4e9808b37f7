package units

import "strings"

// LengthUnit is one concrete unit of length.
type LengthUnit uint

const (
	Meter LengthUnit = iota
	Centimeter
	Millimeter
	Kilometer
	Foot
	Inch
	Yard
	Mile
)

// Length implements the length family. The base unit is the meter.
type Length struct{}

func (Length) Parse(s string) (LengthUnit, error) {
	switch strings.ToLower(s) {
	case "m", "meter", "meters":
		return Meter, nil
	case "cm", "centimeter", "centimeters":
		return Centimeter, nil
	case "mm", "millimeter", "millimeters":
		return Millimeter, nil
	case "km", "kilometer", "kilometers":
		return Kilometer, nil
	case "ft", "foot", "feet":
		return Foot, nil
	case "in", "inch", "inches":
		return Inch, nil
	case "yd", "yard", "yards":
		return Yard, nil
	case "mi", "mile", "miles":
		return Mile, nil
	}
	return Meter, NewUnknownUnitError(s)
}

func (Length) Canonical(u LengthUnit) string {
	switch u {
	case Meter:
		return "m"
	case Centimeter:
		return "cm"
	case Millimeter:
		return "mm"
	case Kilometer:
		return "km"
	case Foot:
		return "ft"
	case Inch:
		return "in"
	case Yard:
		return "yd"
	case Mile:
		return "mi"
	}
	panic("Unreachable")
}

func (Length) Base() LengthUnit {
	return Meter
}

func (Length) ToBase(u LengthUnit, value float64) float64 {
	switch u {
	case Meter:
		return value
	case Centimeter:
		return value / 100.0
	case Millimeter:
		return value / 1000.0
	case Kilometer:
		return value * 1000.0
	case Foot:
		return value * 0.3048
	case Inch:
		return value * 0.0254
	case Yard:
		return value * 0.9144
	case Mile:
		return value * 1609.344
	}
	panic("Unreachable")
}

func (Length) FromBase(u LengthUnit, value float64) float64 {
	switch u {
	case Meter:
		return value
	case Centimeter:
		return value * 100.0
	case Millimeter:
		return value * 1000.0
	case Kilometer:
		return value / 1000.0
	case Foot:
		return value / 0.3048
	case Inch:
		return value / 0.0254
	case Yard:
		return value / 0.9144
	case Mile:
		return value / 1609.344
	}
	panic("Unreachable")
}

// ConvertDirect handles the imperial pairs whose ratios are exact, avoiding
// the rounding introduced by routing through meters.
func (Length) ConvertDirect(from, to LengthUnit, value float64) (float64, bool) {
	switch {
	case from == Inch && to == Foot:
		return value / 12.0, true
	case from == Foot && to == Inch:
		return value * 12.0, true
	case from == Foot && to == Yard:
		return value / 3.0, true
	case from == Yard && to == Foot:
		return value * 3.0, true
	case from == Inch && to == Yard:
		return value / 36.0, true
	case from == Yard && to == Inch:
		return value * 36.0, true
	case from == Foot && to == Mile:
		return value / 5280.0, true
	case from == Mile && to == Foot:
		return value * 5280.0, true
	case from == Inch && to == Mile:
		return value / 63360.0, true
	case from == Mile && to == Inch:
		return value * 63360.0, true
	case from == Yard && to == Mile:
		return value / 1760.0, true
	case from == Mile && to == Yard:
		return value * 1760.0, true
	}
	return 0, false
}
