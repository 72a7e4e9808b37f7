package units

import "strings"

// TemperatureUnit is one concrete unit of temperature.
type TemperatureUnit uint

const (
	Kelvin TemperatureUnit = iota
	Celsius
	Fahrenheit
)

// Temperature implements the temperature family. The base unit is the
// Kelvin; Celsius and Fahrenheit are affine transforms of it.
type Temperature struct{}

func (Temperature) Parse(s string) (TemperatureUnit, error) {
	switch strings.ToLower(s) {
	case "k", "kelvin":
		return Kelvin, nil
	case "c", "celsius":
		return Celsius, nil
	case "f", "fahrenheit":
		return Fahrenheit, nil
	}
	return Kelvin, NewUnknownUnitError(s)
}

func (Temperature) Canonical(u TemperatureUnit) string {
	switch u {
	case Kelvin:
		return "K"
	case Celsius:
		return "C"
	case Fahrenheit:
		return "F"
	}
	panic("Unreachable")
}

func (Temperature) Base() TemperatureUnit {
	return Kelvin
}

func (Temperature) ToBase(u TemperatureUnit, value float64) float64 {
	switch u {
	case Kelvin:
		return value
	case Celsius:
		return value + 273.15
	case Fahrenheit:
		return (value-32.0)*5.0/9.0 + 273.15
	}
	panic("Unreachable")
}

func (Temperature) FromBase(u TemperatureUnit, value float64) float64 {
	switch u {
	case Kelvin:
		return value
	case Celsius:
		return value - 273.15
	case Fahrenheit:
		return (value-273.15)*9.0/5.0 + 32.0
	}
	panic("Unreachable")
}

func (Temperature) ConvertDirect(from, to TemperatureUnit, value float64) (float64, bool) {
	return 0, false
}
