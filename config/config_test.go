package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erickisos/RustedInstrumentDesigner/physics"
)

const conditionsYAML = `
bore:
  radius: 0.008
  frequency: 220
conditions:
  - name: exhaled
    temperature: 37
    unit: C
    pressure: 101.325
    humidity: 100
    co2: 0.04
  - name: one-km
    temperature: 293.15
    unit: K
    elevation: 1000
    humidity: 100
  - temperature: 68
    unit: fahrenheit
`

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conditions.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func Test_Parse(t *testing.T) {
	cfg, err := Parse([]byte(conditionsYAML))
	require.NoError(t, err)

	assert.Equal(t, 0.008, cfg.Radius)
	assert.Equal(t, 220.0, cfg.Frequency)
	require.Len(t, cfg.Conditions, 3)
	assert.Equal(t, "exhaled", cfg.Conditions[0].Name)
	assert.Equal(t, "condition-3", cfg.Conditions[2].Name)
	assert.Nil(t, cfg.Conditions[2].Pressure)
}

func Test_Parse_BoreDefaults(t *testing.T) {
	cfg, err := Parse([]byte("conditions:\n  - name: room\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultRadius, cfg.Radius)
	assert.Equal(t, DefaultFrequency, cfg.Frequency)
}

func Test_Parse_Errors(t *testing.T) {
	_, err := Parse([]byte("bore:\n  radius: 0.01\n"))
	assert.True(t, errors.Is(err, ErrNoConditions))

	_, err = Parse([]byte("conditions:\n  - pressure: 90\n    elevation: 1000\n"))
	assert.True(t, errors.Is(err, ErrPressureAndElevation))

	_, err = Parse([]byte("conditions:\n  - temperature: 20\n    unit: R\n"))
	assert.True(t, errors.Is(err, physics.ErrUnknownTemperatureType))

	_, err = Parse([]byte("bore:\n  radius: -1\nconditions:\n  - name: room\n"))
	assert.True(t, errors.Is(err, ErrNonPositiveBoreRadius))

	_, err = Parse([]byte("conditions: [\n"))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "parse config file"))
}

// Out-of-range physical values are accepted as given.
func Test_Parse_DoesNotValidatePhysicalRanges(t *testing.T) {
	_, err := Parse([]byte("conditions:\n  - pressure: -5\n    humidity: 250\n    co2: -0.1\n"))
	assert.NoError(t, err)
}

func Test_Condition_Builder(t *testing.T) {
	cfg, err := Parse([]byte(conditionsYAML))
	require.NoError(t, err)

	b, err := cfg.Conditions[0].Builder()
	require.NoError(t, err)
	expected := physics.NewParametersBuilder().
		WithTemperature(37, physics.Celsius).
		WithPressure(101.325).
		WithHumiditySaturation(100).
		WithMolarCO2(0.04).
		Build()
	assert.Equal(t, expected, b.Build())

	b, err = cfg.Conditions[1].Builder()
	require.NoError(t, err)
	assert.Equal(t, physics.PressureAt(1000), b.Build().Pressure)
	assert.Equal(t, physics.DefaultMolarCO2, b.Build().MolarCO2)
}

func Test_Condition_Builder_CelsiusWithoutUnit(t *testing.T) {
	temperature := 20.0
	b, err := Condition{Name: "room", Temperature: &temperature}.Builder()
	require.NoError(t, err)
	assert.InDelta(t, 293.15, b.Build().Temperature, 1e-9)
}

func Test_Condition_Builder_Empty(t *testing.T) {
	b, err := Condition{Name: "defaults"}.Builder()
	require.NoError(t, err)
	assert.Equal(t, physics.NewParametersBuilder().Build(), b.Build())
}

func Test_Load(t *testing.T) {
	cfg, err := Load(writeConfigFile(t, conditionsYAML))
	require.NoError(t, err)

	report, err := cfg.Report()
	require.NoError(t, err)
	require.Len(t, report, 3)

	assert.Equal(t, "exhaled", report[0].Name)
	assert.Equal(t, 0.008, report[0].Radius)
	assert.Equal(t, 220.0, report[0].Frequency)
	assert.InDelta(t, 363.99110139436897, report[0].Parameters.SoundSpeed, 1e-9)
	assert.InDelta(t, 1.1571049683032653, report[0].Parameters.AirDensity, 1e-12)
	assert.InDelta(t, 293.15, report[2].Parameters.Temperature, 1e-9)
}

func Test_Load_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func Test_Load_WrapsParseErrors(t *testing.T) {
	path := writeConfigFile(t, "bore:\n  radius: 0.01\n")
	_, err := Load(path)
	assert.True(t, errors.Is(err, ErrNoConditions))
	assert.Contains(t, err.Error(), path)
}
