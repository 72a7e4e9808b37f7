package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemperatureParse(t *testing.T) {
	testCases := []struct {
		spelling string
		unit     TemperatureUnit
	}{
		{"k", Kelvin},
		{"K", Kelvin},
		{"kelvin", Kelvin},
		{"Kelvin", Kelvin},
		{"c", Celsius},
		{"C", Celsius},
		{"celsius", Celsius},
		{"Celsius", Celsius},
		{"f", Fahrenheit},
		{"F", Fahrenheit},
		{"fahrenheit", Fahrenheit},
		{"FAHRENHEIT", Fahrenheit},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		unit, err := Temperature{}.Parse(tc.spelling)

		assert.NoError(err)
		assert.Equal(tc.unit, unit)
	}
}

func TestTemperatureParseUnknown(t *testing.T) {
	assert := assert.New(t)
	for _, spelling := range []string{"", "xyz", "celcius", "degrees"} {
		_, err := Temperature{}.Parse(spelling)

		var unknown *UnknownUnitError
		assert.ErrorAs(err, &unknown)
		assert.Equal(spelling, unknown.Unit)
	}
}

func TestTemperatureCanonicalReparses(t *testing.T) {
	assert := assert.New(t)
	for _, unit := range []TemperatureUnit{Kelvin, Celsius, Fahrenheit} {
		reparsed, err := Temperature{}.Parse(Temperature{}.Canonical(unit))

		assert.NoError(err)
		assert.Equal(unit, reparsed)
	}
}

func TestTemperatureConvert(t *testing.T) {
	testCases := []struct {
		from  TemperatureUnit
		to    TemperatureUnit
		value float64
		want  float64
	}{
		{Celsius, Celsius, 21.5, 21.5},
		{Celsius, Fahrenheit, 0.0, 32.0},
		{Celsius, Fahrenheit, 100.0, 212.0},
		{Celsius, Fahrenheit, 23.0, 73.4},
		{Fahrenheit, Celsius, 212.0, 100.0},
		{Fahrenheit, Celsius, 32.0, 0.0},
		{Celsius, Kelvin, 0.0, 273.15},
		{Kelvin, Celsius, 273.15, 0.0},
		{Fahrenheit, Kelvin, 32.0, 273.15},
		{Kelvin, Fahrenheit, 255.372222222, -0.00000000040},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		got := Convert[TemperatureUnit](Temperature{}, tc.from, tc.to, tc.value)

		assert.InDelta(tc.want, got, 1e-8)
	}
}

func TestTemperatureConvertRoundTrip(t *testing.T) {
	allUnits := []TemperatureUnit{Kelvin, Celsius, Fahrenheit}

	assert := assert.New(t)
	for _, from := range allUnits {
		for _, to := range allUnits {
			there := Convert[TemperatureUnit](Temperature{}, from, to, 37.3)
			back := Convert[TemperatureUnit](Temperature{}, to, from, there)

			assert.InEpsilon(37.3, back, 1e-9)
		}
	}
}

func TestTemperatureConvertViaIntermediate(t *testing.T) {
	allUnits := []TemperatureUnit{Kelvin, Celsius, Fahrenheit}

	assert := assert.New(t)
	for _, from := range allUnits {
		for _, via := range allUnits {
			for _, to := range allUnits {
				direct := Convert[TemperatureUnit](Temperature{}, from, to, 37.3)
				stepped := Convert[TemperatureUnit](Temperature{}, via, to,
					Convert[TemperatureUnit](Temperature{}, from, via, 37.3))

				assert.InDelta(direct, stepped, 1e-9)
			}
		}
	}
}
