package physics

import "math"

//--------------------------------------
// Moist air state (CIPM-2007)
//--------------------------------------

// SaturationVapourPressure returns the saturated vapour pressure [kPa] at temperature [K].
func SaturationVapourPressure(temperature float64) float64 {
	return 0.001 * math.Exp(1.2378847e-5*(temperature*temperature)-
		1.9121316e-2*temperature+
		33.93711047-
		6.3431645e3/temperature)
}

// EnhancementFactor from pressure [kPa] and temperature [K].
func EnhancementFactor(pressure float64, temperature float64) float64 {
	return 1.00062 + 3.14e-5*pressure + 5.6e-7*(temperature*temperature)
}

// MolarWaterVapour returns the molar fraction of water vapour [mol/mol] from
// pressure [kPa], temperature [K] and relative humidity [%].
//
// Note:
//
//	A zero pressure is not guarded and yields Inf or NaN.
func MolarWaterVapour(pressure float64, temperature float64, humiditySaturation float64) float64 {
	enhancementFactor := EnhancementFactor(pressure, temperature)
	saturatedVapourPressure := SaturationVapourPressure(temperature)
	return 0.01 * humiditySaturation * enhancementFactor * saturatedVapourPressure / pressure
}

// HumidityRatio is the mole ratio of water vapour to dry air.
func HumidityRatio(molarWaterVapour float64) float64 {
	return molarWaterVapour / (1.0 - molarWaterVapour)
}
