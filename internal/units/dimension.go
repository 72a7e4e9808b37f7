package units

// DimensionType names the family a unit spelling belongs to.
type DimensionType uint

const (
	DimensionLength DimensionType = iota
	DimensionTemperature
	DimensionUnknown
)

func (d DimensionType) String() string {
	switch d {
	case DimensionLength:
		return "length"
	case DimensionTemperature:
		return "temperature"
	}
	return "unknown"
}

// Classify determines the dimension of a unit spelling by attempting each
// family's parser in a fixed order, length before temperature. No spelling
// currently belongs to both families, but the order is a deliberate policy:
// if a future vocabulary introduces a collision, the earlier family wins.
func Classify(spelling string) DimensionType {
	if _, err := (Length{}).Parse(spelling); err == nil {
		return DimensionLength
	}
	if _, err := (Temperature{}).Parse(spelling); err == nil {
		return DimensionTemperature
	}
	return DimensionUnknown
}

// Canonicalize maps a unit spelling to its family's canonical abbreviation.
func Canonicalize(spelling string) (string, error) {
	switch Classify(spelling) {
	case DimensionLength:
		u, err := (Length{}).Parse(spelling)
		if err != nil {
			return "", err
		}
		return (Length{}).Canonical(u), nil
	case DimensionTemperature:
		u, err := (Temperature{}).Parse(spelling)
		if err != nil {
			return "", err
		}
		return (Temperature{}).Canonical(u), nil
	}
	return "", NewUnknownUnitError(spelling)
}

// BaseUnit returns the canonical abbreviation of the dimension's base unit.
func (d DimensionType) BaseUnit() string {
	switch d {
	case DimensionLength:
		return (Length{}).Canonical((Length{}).Base())
	case DimensionTemperature:
		return (Temperature{}).Canonical((Temperature{}).Base())
	}
	return "unknown"
}

// ToBase expresses a value given in the spelled unit in the dimension's base
// unit. It fails when the spelling does not belong to the dimension.
func (d DimensionType) ToBase(spelling string, value float64) (float64, error) {
	switch d {
	case DimensionLength:
		u, err := (Length{}).Parse(spelling)
		if err != nil {
			return 0, err
		}
		return (Length{}).ToBase(u, value), nil
	case DimensionTemperature:
		u, err := (Temperature{}).Parse(spelling)
		if err != nil {
			return 0, err
		}
		return (Temperature{}).ToBase(u, value), nil
	}
	return 0, NewUnknownUnitError(spelling)
}

// Convert moves a value between two unit spellings of this dimension. It
// fails when either spelling does not belong to the dimension; it never
// approximates across dimensions.
func (d DimensionType) Convert(from, to string, value float64) (float64, error) {
	switch d {
	case DimensionLength:
		family := Length{}
		fromUnit, err := family.Parse(from)
		if err != nil {
			return 0, err
		}
		toUnit, err := family.Parse(to)
		if err != nil {
			return 0, err
		}
		return Convert[LengthUnit](family, fromUnit, toUnit, value), nil
	case DimensionTemperature:
		family := Temperature{}
		fromUnit, err := family.Parse(from)
		if err != nil {
			return 0, err
		}
		toUnit, err := family.Parse(to)
		if err != nil {
			return 0, err
		}
		return Convert[TemperatureUnit](family, fromUnit, toUnit, value), nil
	}
	return 0, NewUnknownUnitError(from)
}
