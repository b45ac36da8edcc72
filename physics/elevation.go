package physics

import "math"

// Barometric formula for an isothermal standard atmosphere.
const (
	seaLevelPressure    = 101.325   // kPa
	standardGravity     = 9.80665   // m/s^2
	molarMassAtmosphere = 0.0289644 // kg/mol
	gasConstantSI       = 8.31447   // J/(mol.K)
	standardTemperature = 288.15    // K
)

// PressureAt returns the barometric pressure [kPa] at elevation [m] above sea level.
// PressureAt(1000) is about 89.996 kPa.
func PressureAt(elevation float64) float64 {
	return seaLevelPressure * math.Exp(-standardGravity*molarMassAtmosphere*elevation/(gasConstantSI*standardTemperature))
}
