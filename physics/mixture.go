package physics

import "math"

//--------------------------------------
// Gas mixture properties of humid, CO2-bearing air
//--------------------------------------

// MolarMassDryAir returns the molar mass of dry air [kg/kmol] with molar CO2 fraction molarCO2,
// where CO2 displaces O2.
func MolarMassDryAir(molarCO2 float64) float64 {
	// subtracted in float64, not as an exact constant expression
	co2, o2 := float64(MolarMassCO2), float64(MolarMassO2)
	return MolarMassCO2FreeAir + (co2-o2)*molarCO2
}

// MolarMassMoistAir returns the molar mass of the mixture [kg/kmol].
//
// Note:
//
//	The water vapour term is weighted by zero.
func MolarMassMoistAir(molarWaterVapour float64, molarMassDryAir float64) float64 {
	return (1.0-molarWaterVapour)*molarMassDryAir + molarWaterVapour*0.
}

// HumidAirGasConstant returns the specific gas constant [J/(kg.K)] for a molar mass [kg/kmol].
func HumidAirGasConstant(molarMass float64) float64 {
	return UniversalGasConstant / (0.001 * molarMass)
}

// MassFractionWaterVapour converts a molar fraction of water vapour to a mass fraction.
func MassFractionWaterVapour(molarWaterVapour float64, molarMassMoistAir float64) float64 {
	return molarWaterVapour * MolarMassWaterVapour / molarMassMoistAir
}

// MassFractionCO2 converts a molar fraction of CO2 to a mass fraction.
func MassFractionCO2(molarCO2 float64, molarMassMoistAir float64) float64 {
	return molarCO2 * MolarMassCO2 / molarMassMoistAir
}

// AirDynamicViscosity of dry air [Pa.s] by Sutherland's formula (McQuillan et al., 1984).
func AirDynamicViscosity(temperature float64) float64 {
	return 1.4592e-6 * math.Pow(temperature, 1.5) / (temperature + 109.1)
}

// WaterVapourDynamicViscosity [Pa.s], linear fit after Tsilingiris (2007).
func WaterVapourDynamicViscosity(temperature float64) float64 {
	return 8.058131868e-6 + temperature*4.000549451e-8
}

func DynamicViscosityRatio(airDynamicViscosity float64, waterVapourDynamicViscosity float64) float64 {
	return math.Sqrt(airDynamicViscosity / waterVapourDynamicViscosity)
}

// PhiAirVapour is the Wilke interaction factor of air with water vapour.
func PhiAirVapour(dynamicViscosityRatio float64, molarMassDryAir float64) float64 {
	a := 1.0 + dynamicViscosityRatio*math.Pow(MolarMassWaterVapour/molarMassDryAir, 0.25)
	return 0.5 * (a * a) / math.Sqrt(2.0*(1.0+molarMassDryAir/MolarMassWaterVapour))
}

// PhiVapourAir is the Wilke interaction factor of water vapour with air.
func PhiVapourAir(dynamicViscosityRatio float64, molarMassDryAir float64) float64 {
	a := 1.0 + math.Pow(molarMassDryAir/MolarMassWaterVapour, 0.25)/dynamicViscosityRatio
	return 0.5 * (a * a) / math.Sqrt(2.0*(1.0+MolarMassWaterVapour/molarMassDryAir))
}

// moistAir holds the intermediates shared by every property of one condition.
type moistAir struct {
	pressure           float64 // kPa
	temperature        float64 // K
	humiditySaturation float64 // %
	molarCO2           float64 // mol/mol

	molarWaterVapour  float64
	humidityRatio     float64
	molarMassDryAir   float64
	molarMassMoistAir float64
	celsius           float64

	phiAirVapour float64
	phiVapourAir float64
}

func newMoistAir(pressure float64, temperature float64, humiditySaturation float64, molarCO2 float64) moistAir {
	xv := MolarWaterVapour(pressure, temperature, humiditySaturation)
	ma := MolarMassDryAir(molarCO2)
	ratio := DynamicViscosityRatio(AirDynamicViscosity(temperature), WaterVapourDynamicViscosity(temperature))
	return moistAir{
		pressure:           pressure,
		temperature:        temperature,
		humiditySaturation: humiditySaturation,
		molarCO2:           molarCO2,
		molarWaterVapour:   xv,
		humidityRatio:      HumidityRatio(xv),
		molarMassDryAir:    ma,
		molarMassMoistAir:  MolarMassMoistAir(xv, ma),
		celsius:            KelvinToCelsius(temperature),
		phiAirVapour:       PhiAirVapour(ratio, ma),
		phiVapourAir:       PhiVapourAir(ratio, ma),
	}
}

// Gas constant of the moist mixture.
func (m moistAir) gasConstant() float64 {
	return HumidAirGasConstant(m.molarMassMoistAir)
}

// CIPM-2007 density. The ideal-gas term uses the dry-air gas constant.
func (m moistAir) airDensity() float64 {
	T := m.temperature
	xv := m.molarWaterVapour
	p := m.pressure * 1000.0 // Pa

	compressibility := 1.0 -
		p/T*(1.58123e-6-2.9331e-8*T+
			1.1043e-10*(T*T)+
			(5.707e-6-2.051e-8*T)*xv+
			(1.9898e-4-2.376e-6*T)*(xv*xv)) +
		(p/T)*(p/T)*(1.83e-11-0.765e-8*(xv*xv))

	return m.pressure * 1e3 / (compressibility * HumidAirGasConstant(m.molarMassDryAir) * T)
}

func (m moistAir) dynamicViscosity() float64 {
	air := AirDynamicViscosity(m.temperature)
	vapour := WaterVapourDynamicViscosity(m.temperature)
	w := m.humidityRatio
	return air/(1.0+m.phiAirVapour*w) + w*vapour/(w+m.phiVapourAir)
}

// Isobaric specific heat of air and water vapour after Tsilingiris (2007), with
// the air value reduced by 2 J/(kg.K) to get gamma right; CO2 is a curve fit.
func (m moistAir) specificHeat() float64 {
	T := m.temperature
	tc := m.celsius
	wv := MassFractionWaterVapour(m.molarWaterVapour, m.molarMassMoistAir)
	wco2 := MassFractionCO2(m.molarCO2, m.molarMassMoistAir)

	air := 1032.0 + T*(-0.284887+T*(0.7816818e-3+T*(-0.4970786e-6+T*0.1077024e-9)))
	vapour := 1869.10989 + tc*(-0.2578421578+tc*1.941058941e-2)
	co2 := 817.02 + tc*(1.0562-tc*6.67e-4)

	return air*(1.-wv-wco2) + vapour*wv + co2*wco2
}

func (m moistAir) specificHeatsRatio(specificHeat float64) float64 {
	return specificHeat / (specificHeat - m.gasConstant())
}

func (m moistAir) thermalConductivity() float64 {
	T := m.temperature
	tc := m.celsius
	w := m.humidityRatio

	// dry air by Sutherland's formula (McQuillan et al., 1984)
	air := 2.3340e-3 * math.Pow(T, 1.5) / (T + 164.54)
	// water vapour after Tsilingiris (2007)
	vapour := 0.01761758242 + tc*(5.558941059e-5+tc*1.663336663e-7)

	return air/(1.0+m.phiAirVapour*w) + w*vapour/(w+m.phiVapourAir)
}

func (m moistAir) soundSpeed(specificHeatsRatio float64) float64 {
	return math.Sqrt(specificHeatsRatio * m.gasConstant() * m.temperature)
}

// AirDensity [kg/m^3] from pressure [kPa], temperature [K], relative humidity [%]
// and molar CO2 fraction [mol/mol].
func AirDensity(pressure, temperature, humiditySaturation, molarCO2 float64) float64 {
	return newMoistAir(pressure, temperature, humiditySaturation, molarCO2).airDensity()
}

// DynamicViscosity of the mixture [Pa.s].
func DynamicViscosity(pressure, temperature, humiditySaturation, molarCO2 float64) float64 {
	return newMoistAir(pressure, temperature, humiditySaturation, molarCO2).dynamicViscosity()
}

// SpecificHeat is the isobaric specific heat of the mixture [J/(kg.K)].
func SpecificHeat(pressure, temperature, humiditySaturation, molarCO2 float64) float64 {
	return newMoistAir(pressure, temperature, humiditySaturation, molarCO2).specificHeat()
}

// SpecificHeatsRatio cp/cv (gamma).
func SpecificHeatsRatio(pressure, temperature, humiditySaturation, molarCO2 float64) float64 {
	m := newMoistAir(pressure, temperature, humiditySaturation, molarCO2)
	return m.specificHeatsRatio(m.specificHeat())
}

// ThermalConductivity of the mixture [W/(m.K)].
func ThermalConductivity(pressure, temperature, humiditySaturation, molarCO2 float64) float64 {
	return newMoistAir(pressure, temperature, humiditySaturation, molarCO2).thermalConductivity()
}

func PrandtlNumber(pressure, temperature, humiditySaturation, molarCO2 float64) float64 {
	m := newMoistAir(pressure, temperature, humiditySaturation, molarCO2)
	return m.dynamicViscosity() * m.specificHeat() / m.thermalConductivity()
}

// SoundSpeed [m/s].
func SoundSpeed(pressure, temperature, humiditySaturation, molarCO2 float64) float64 {
	m := newMoistAir(pressure, temperature, humiditySaturation, molarCO2)
	return m.soundSpeed(m.specificHeatsRatio(m.specificHeat()))
}
