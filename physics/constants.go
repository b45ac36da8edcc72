package physics

const (
	UniversalGasConstant = 8.314472 // J/(mol.K)

	MolarMassWaterVapour = 18.01527  // kg/kmol
	MolarMassO2          = 31.9988   // kg/kmol
	MolarMassCO2         = 44.01     // kg/kmol
	MolarMassCO2FreeAir  = 28.960745 // CO2-free dry air, kg/kmol

	zeroCelsius = 273.15 // K
)

// Defaults applied by the builder when a value is not overridden.
const (
	DefaultTemperature        = 72.0 // °F
	DefaultTemperatureType    = Fahrenheit
	DefaultPressure           = 101.325 // kPa
	DefaultHumiditySaturation = 45.0    // %
	DefaultMolarCO2           = 0.00039 // mol/mol
)
