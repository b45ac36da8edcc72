package physics

// Physical properties of the air column in a bore.
type PhysicalParameters struct {
	// Basic properties
	Temperature        float64 `json:"temperature" yaml:"temperature"`                 // K
	Pressure           float64 `json:"pressure" yaml:"pressure"`                       // kPa
	MolarCO2           float64 `json:"molar_co2" yaml:"molar_co2"`                     // mol/mol
	MolarWaterVapour   float64 `json:"molar_water_vapour" yaml:"molar_water_vapour"`   // mol/mol
	HumiditySaturation float64 `json:"humidity_saturation" yaml:"humidity_saturation"` // % of saturation

	// Calculated properties
	AirDensity          float64 `json:"air_density" yaml:"air_density"`                   // kg/m^3
	DynamicViscosity    float64 `json:"dynamic_viscosity" yaml:"dynamic_viscosity"`       // kg/(m.s)
	SpecificHeat        float64 `json:"specific_heat" yaml:"specific_heat"`               // isobaric, J/(kg.K)
	SpecificHeatsRatio  float64 `json:"specific_heats_ratio" yaml:"specific_heats_ratio"` // cp/cv, gamma
	ThermalConductivity float64 `json:"thermal_conductivity" yaml:"thermal_conductivity"` // W/(m.K), kappa
	PrandtlNumber       float64 `json:"prandtl_number" yaml:"prandtl_number"`             // dimensionless
	SoundSpeed          float64 `json:"sound_speed" yaml:"sound_speed"`                   // m/s
	EpsilonConstant     float64 `json:"epsilon_constant" yaml:"epsilon_constant"`         // wall-loss multiplier
	AlphaConstant       float64 `json:"alpha_constant" yaml:"alpha_constant"`             // wall-loss multiplier
	WaveNumber          float64 `json:"wave_number" yaml:"wave_number"`                   // at 1 Hz, rad/m
}

// Celsius returns the temperature in °C.
func (p PhysicalParameters) Celsius() float64 {
	return KelvinToCelsius(p.Temperature)
}

// ParametersBuilder collects environmental overrides. Methods return a modified copy,
// so a builder can be shared and branched freely. The zero value builds with defaults.
type ParametersBuilder struct {
	temperature        *float64 // K
	pressure           *float64 // kPa
	humiditySaturation *float64 // %
	molarCO2           *float64 // mol/mol
}

// NewParametersBuilder returns a builder seeded with the defaults.
func NewParametersBuilder() ParametersBuilder {
	return ParametersBuilder{}.
		WithTemperature(DefaultTemperature, DefaultTemperatureType).
		WithPressure(DefaultPressure).
		WithHumiditySaturation(DefaultHumiditySaturation).
		WithMolarCO2(DefaultMolarCO2)
}

// WithTemperature sets the temperature, converted from temperatureType to kelvin.
func (b ParametersBuilder) WithTemperature(temperature float64, temperatureType TemperatureType) ParametersBuilder {
	kelvin := NormalizeTemperature(temperature, temperatureType)
	b.temperature = &kelvin
	return b
}

// WithPressure sets the barometric pressure [kPa].
func (b ParametersBuilder) WithPressure(pressure float64) ParametersBuilder {
	b.pressure = &pressure
	return b
}

// WithElevation sets the pressure to the barometric pressure at elevation [m].
func (b ParametersBuilder) WithElevation(elevation float64) ParametersBuilder {
	return b.WithPressure(PressureAt(elevation))
}

// WithHumiditySaturation sets the relative humidity [%].
func (b ParametersBuilder) WithHumiditySaturation(humiditySaturation float64) ParametersBuilder {
	b.humiditySaturation = &humiditySaturation
	return b
}

// WithMolarCO2 sets the CO2 molar fraction [mol/mol].
func (b ParametersBuilder) WithMolarCO2(molarCO2 float64) ParametersBuilder {
	b.molarCO2 = &molarCO2
	return b
}

// Build derives every property for the collected condition.
func (b ParametersBuilder) Build() PhysicalParameters {
	temperature := valueOr(b.temperature, NormalizeTemperature(DefaultTemperature, DefaultTemperatureType))
	pressure := valueOr(b.pressure, DefaultPressure)
	humiditySaturation := valueOr(b.humiditySaturation, DefaultHumiditySaturation)
	molarCO2 := valueOr(b.molarCO2, DefaultMolarCO2)

	m := newMoistAir(pressure, temperature, humiditySaturation, molarCO2)

	airDensity := m.airDensity()
	dynamicViscosity := m.dynamicViscosity()
	specificHeat := m.specificHeat()
	specificHeatsRatio := m.specificHeatsRatio(specificHeat)
	thermalConductivity := m.thermalConductivity()
	prandtlNumber := dynamicViscosity * specificHeat / thermalConductivity
	soundSpeed := m.soundSpeed(specificHeatsRatio)

	return PhysicalParameters{
		Temperature:         temperature,
		Pressure:            pressure,
		MolarCO2:            molarCO2,
		MolarWaterVapour:    m.molarWaterVapour,
		HumiditySaturation:  humiditySaturation,
		AirDensity:          airDensity,
		DynamicViscosity:    dynamicViscosity,
		SpecificHeat:        specificHeat,
		SpecificHeatsRatio:  specificHeatsRatio,
		ThermalConductivity: thermalConductivity,
		PrandtlNumber:       prandtlNumber,
		SoundSpeed:          soundSpeed,
		EpsilonConstant:     epsilonConstant(dynamicViscosity, airDensity, specificHeatsRatio, prandtlNumber),
		AlphaConstant:       alphaConstant(dynamicViscosity, airDensity, soundSpeed, specificHeatsRatio, prandtlNumber),
		WaveNumber:          waveNumberAt1Hz(soundSpeed),
	}
}

func valueOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}
