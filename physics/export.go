package physics

import (
	"bytes"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/gocarina/gocsv"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// A named condition and the bore it is evaluated in.
type Entry struct {
	Name       string
	Parameters PhysicalParameters
	Radius     float64 // m
	Frequency  float64 // Hz
}

// Report is an ordered list of evaluated conditions.
type Report []Entry

// Flattened entry for tabular and structured output.
type Row struct {
	Name                string  `csv:"name" json:"name" yaml:"name"`
	Temperature         float64 `csv:"temperature" json:"temperature" yaml:"temperature"`
	Pressure            float64 `csv:"pressure" json:"pressure" yaml:"pressure"`
	HumiditySaturation  float64 `csv:"humidity_saturation" json:"humidity_saturation" yaml:"humidity_saturation"`
	MolarCO2            float64 `csv:"molar_co2" json:"molar_co2" yaml:"molar_co2"`
	MolarWaterVapour    float64 `csv:"molar_water_vapour" json:"molar_water_vapour" yaml:"molar_water_vapour"`
	AirDensity          float64 `csv:"air_density" json:"air_density" yaml:"air_density"`
	DynamicViscosity    float64 `csv:"dynamic_viscosity" json:"dynamic_viscosity" yaml:"dynamic_viscosity"`
	SpecificHeat        float64 `csv:"specific_heat" json:"specific_heat" yaml:"specific_heat"`
	SpecificHeatsRatio  float64 `csv:"specific_heats_ratio" json:"specific_heats_ratio" yaml:"specific_heats_ratio"`
	ThermalConductivity float64 `csv:"thermal_conductivity" json:"thermal_conductivity" yaml:"thermal_conductivity"`
	PrandtlNumber       float64 `csv:"prandtl_number" json:"prandtl_number" yaml:"prandtl_number"`
	SoundSpeed          float64 `csv:"sound_speed" json:"sound_speed" yaml:"sound_speed"`
	EpsilonConstant     float64 `csv:"epsilon_constant" json:"epsilon_constant" yaml:"epsilon_constant"`
	AlphaConstant       float64 `csv:"alpha_constant" json:"alpha_constant" yaml:"alpha_constant"`
	WaveNumber          float64 `csv:"wave_number" json:"wave_number" yaml:"wave_number"`
	Radius              float64 `csv:"radius" json:"radius" yaml:"radius"`
	Frequency           float64 `csv:"frequency" json:"frequency" yaml:"frequency"`
	WaveImpedance       float64 `csv:"wave_impedance" json:"wave_impedance" yaml:"wave_impedance"`
	Epsilon             float64 `csv:"epsilon" json:"epsilon" yaml:"epsilon"`
	Alpha               float64 `csv:"alpha" json:"alpha" yaml:"alpha"`
}

func (e Entry) Row() Row {
	p := e.Parameters
	return Row{
		Name:                e.Name,
		Temperature:         p.Temperature,
		Pressure:            p.Pressure,
		HumiditySaturation:  p.HumiditySaturation,
		MolarCO2:            p.MolarCO2,
		MolarWaterVapour:    p.MolarWaterVapour,
		AirDensity:          p.AirDensity,
		DynamicViscosity:    p.DynamicViscosity,
		SpecificHeat:        p.SpecificHeat,
		SpecificHeatsRatio:  p.SpecificHeatsRatio,
		ThermalConductivity: p.ThermalConductivity,
		PrandtlNumber:       p.PrandtlNumber,
		SoundSpeed:          p.SoundSpeed,
		EpsilonConstant:     p.EpsilonConstant,
		AlphaConstant:       p.AlphaConstant,
		WaveNumber:          p.WaveNumber,
		Radius:              e.Radius,
		Frequency:           e.Frequency,
		WaveImpedance:       WaveImpedance(p, e.Radius),
		Epsilon:             EpsilonFromFrequency(p, e.Frequency, e.Radius),
		Alpha:               AlphaFromWaveNumber(p, WaveNumber(p, e.Frequency), e.Radius),
	}
}

func (r Report) Rows() []Row {
	rows := make([]Row, len(r))
	for i, e := range r {
		rows[i] = e.Row()
	}
	return rows
}

// ToCSV writes a header line and one line per condition.
func (r Report) ToCSV(buf *bytes.Buffer) error {
	rows := r.Rows()
	return gocsv.Marshal(&rows, buf)
}

// MarshalJSON writes the fields in declaration order. Non-finite values become null.
func (row Row) MarshalJSON() ([]byte, error) {
	v := reflect.ValueOf(row)
	t := v.Type()
	out := bytes.NewBufferString("{")
	for i := 0; i < t.NumField(); i++ {
		if i > 0 {
			out.WriteString(",")
		}
		key, err := json.Marshal(t.Field(i).Tag.Get("json"))
		if err != nil {
			return nil, err
		}
		out.Write(key)
		out.WriteString(":")

		f := v.Field(i)
		if f.Kind() == reflect.Float64 && (math.IsNaN(f.Float()) || math.IsInf(f.Float(), 0)) {
			out.WriteString("null")
			continue
		}
		b, err := json.Marshal(f.Interface())
		if err != nil {
			return nil, err
		}
		out.Write(b)
	}
	out.WriteString("}")
	return out.Bytes(), nil
}

func (r Report) ToJSON(buf *bytes.Buffer) error {
	b, err := json.Marshal(r.Rows())
	if err != nil {
		return err
	}
	if err := json.Indent(buf, b, "", "  "); err != nil {
		return err
	}
	buf.WriteString("\n")
	return nil
}

func (r Report) ToYAML(buf *bytes.Buffer) error {
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(r.Rows()); err != nil {
		return err
	}
	return enc.Close()
}

// ToText writes a human readable block per condition.
func (r Report) ToText(buf *bytes.Buffer) {
	writeLine := func(label string, v float64, unit string) {
		buf.WriteString(fmt.Sprintf("  %-22s %s", label, strconv.FormatFloat(v, 'g', -1, 64)))
		if unit != "" {
			buf.WriteString(" " + unit)
		}
		buf.WriteString("\n")
	}
	for i, e := range r {
		if i > 0 {
			buf.WriteString("\n")
		}
		row := e.Row()
		buf.WriteString(fmt.Sprintf("[%s]\n", e.Name))
		writeLine("temperature", row.Temperature, fmt.Sprintf("K (%.2f °C)", e.Parameters.Celsius()))
		writeLine("pressure", row.Pressure, "kPa")
		writeLine("humidity saturation", row.HumiditySaturation, "%")
		writeLine("molar CO2", row.MolarCO2, "mol/mol")
		writeLine("molar water vapour", row.MolarWaterVapour, "mol/mol")
		writeLine("air density", row.AirDensity, "kg/m^3")
		writeLine("dynamic viscosity", row.DynamicViscosity, "Pa.s")
		writeLine("specific heat", row.SpecificHeat, "J/(kg.K)")
		writeLine("specific heats ratio", row.SpecificHeatsRatio, "")
		writeLine("thermal conductivity", row.ThermalConductivity, "W/(m.K)")
		writeLine("prandtl number", row.PrandtlNumber, "")
		writeLine("sound speed", row.SoundSpeed, "m/s")
		writeLine("epsilon constant", row.EpsilonConstant, "")
		writeLine("alpha constant", row.AlphaConstant, "")
		writeLine("wave number", row.WaveNumber, "rad/m at 1 Hz")
		writeLine("wave impedance", row.WaveImpedance, fmt.Sprintf("kg/(m^4.s) at r=%g m", row.Radius))
		writeLine("epsilon", row.Epsilon, fmt.Sprintf("at f=%g Hz", row.Frequency))
		writeLine("alpha", row.Alpha, fmt.Sprintf("at f=%g Hz", row.Frequency))
	}
}
