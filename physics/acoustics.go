package physics

import "math"

//--------------------------------------
// Wall losses and wave numbers
//--------------------------------------

// boundary-layer loss factor shared by epsilon and alpha
func lossFactor(specificHeatsRatio float64, prandtlNumber float64) float64 {
	return 1.0 + (specificHeatsRatio-1.0)/math.Sqrt(prandtlNumber)
}

func epsilonConstant(dynamicViscosity, airDensity, specificHeatsRatio, prandtlNumber float64) float64 {
	return 1.0 / (2.0 * math.Sqrt(math.Pi)) *
		math.Sqrt(dynamicViscosity/airDensity) *
		lossFactor(specificHeatsRatio, prandtlNumber)
}

func alphaConstant(dynamicViscosity, airDensity, soundSpeed, specificHeatsRatio, prandtlNumber float64) float64 {
	return math.Sqrt(dynamicViscosity/(2.0*airDensity*soundSpeed)) *
		lossFactor(specificHeatsRatio, prandtlNumber)
}

func waveNumberAt1Hz(soundSpeed float64) float64 {
	return 2.0 * math.Pi / soundSpeed
}

// EpsilonConstant is the multiplier of the wall-loss adjustment to the complex wave number,
// per unit radius and unit square root of frequency.
func EpsilonConstant(pressure, temperature, humiditySaturation, molarCO2 float64) float64 {
	m := newMoistAir(pressure, temperature, humiditySaturation, molarCO2)
	mu := m.dynamicViscosity()
	cp := m.specificHeat()
	return epsilonConstant(mu, m.airDensity(), m.specificHeatsRatio(cp), mu*cp/m.thermalConductivity())
}

// AlphaConstant is the multiplier of the wall-loss adjustment per unit radius and unit
// square root of wave number.
func AlphaConstant(pressure, temperature, humiditySaturation, molarCO2 float64) float64 {
	m := newMoistAir(pressure, temperature, humiditySaturation, molarCO2)
	mu := m.dynamicViscosity()
	cp := m.specificHeat()
	gamma := m.specificHeatsRatio(cp)
	return alphaConstant(mu, m.airDensity(), m.soundSpeed(gamma), gamma, mu*cp/m.thermalConductivity())
}

// WaveNumberAt1Hz [rad/m].
func WaveNumberAt1Hz(pressure, temperature, humiditySaturation, molarCO2 float64) float64 {
	return waveNumberAt1Hz(SoundSpeed(pressure, temperature, humiditySaturation, molarCO2))
}

// WaveImpedance of a bore of nominal radius [m], in kg/(m^4.s).
func WaveImpedance(parameters PhysicalParameters, radius float64) float64 {
	return parameters.AirDensity * parameters.SoundSpeed / (math.Pi * radius * radius)
}

// EpsilonFromFrequency returns the wall-loss term at frequency [Hz] in a bore of radius [m].
func EpsilonFromFrequency(parameters PhysicalParameters, frequency float64, radius float64) float64 {
	return parameters.EpsilonConstant / (radius * math.Sqrt(frequency))
}

// AlphaFromWaveNumber returns the wall-loss term at wave number [rad/m] in a bore of radius [m].
func AlphaFromWaveNumber(parameters PhysicalParameters, waveNumber float64, radius float64) float64 {
	return parameters.AlphaConstant / (radius * math.Sqrt(waveNumber))
}

// Frequency [Hz] of a wave number [rad/m].
func Frequency(parameters PhysicalParameters, waveNumber float64) float64 {
	return waveNumber / parameters.WaveNumber
}

// WaveNumber [rad/m] at frequency [Hz].
func WaveNumber(parameters PhysicalParameters, frequency float64) float64 {
	return frequency * parameters.WaveNumber
}
