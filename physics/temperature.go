package physics

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

//--------------------------------------
// Temperature units
//--------------------------------------

type TemperatureType int

const (
	Fahrenheit TemperatureType = iota
	Celsius
	Kelvin
)

var ErrUnknownTemperatureType = errors.New("unknown temperature type")

func (t TemperatureType) String() string {
	switch t {
	case Fahrenheit:
		return "F"
	case Celsius:
		return "C"
	case Kelvin:
		return "K"
	}
	return fmt.Sprintf("TemperatureType(%d)", int(t))
}

// ParseTemperatureType accepts F, C, K or the full unit names, ignoring case.
func ParseTemperatureType(s string) (TemperatureType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "f", "fahrenheit":
		return Fahrenheit, nil
	case "c", "celsius":
		return Celsius, nil
	case "k", "kelvin":
		return Kelvin, nil
	}
	return Kelvin, fmt.Errorf("%w: %q", ErrUnknownTemperatureType, s)
}

func FahrenheitToCelsius(degrees float64) float64 {
	return (degrees+40.)*5./9. - 40.
}

// CelsiusToKelvin never returns less than absolute zero. NaN is passed through.
func CelsiusToKelvin(degrees float64) float64 {
	return clampAbsoluteZero(degrees + zeroCelsius)
}

func KelvinToCelsius(temperature float64) float64 {
	return temperature - zeroCelsius
}

// NormalizeTemperature converts a temperature in the given unit to Kelvin.
func NormalizeTemperature(temperature float64, temperatureType TemperatureType) float64 {
	switch temperatureType {
	case Fahrenheit:
		return CelsiusToKelvin(FahrenheitToCelsius(temperature))
	case Celsius:
		return CelsiusToKelvin(temperature)
	default:
		return clampAbsoluteZero(temperature)
	}
}

func clampAbsoluteZero(kelvin float64) float64 {
	if math.IsNaN(kelvin) {
		return kelvin
	}
	if kelvin < 0 {
		return 0
	}
	return kelvin
}
