package physics

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testReport() Report {
	return Report{
		{
			Name:       "sea-level",
			Parameters: NewParametersBuilder().WithTemperature(20, Celsius).Build(),
			Radius:     0.006,
			Frequency:  440,
		},
		{
			Name: "exhaled",
			Parameters: NewParametersBuilder().
				WithTemperature(37, Celsius).
				WithHumiditySaturation(100).
				WithMolarCO2(0.04).
				Build(),
			Radius:    0.008,
			Frequency: 220,
		},
	}
}

func Test_Entry_Row(t *testing.T) {
	e := testReport()[0]
	row := e.Row()

	assert.Equal(t, "sea-level", row.Name)
	assert.Equal(t, e.Parameters.SoundSpeed, row.SoundSpeed)
	assertClose(t, 3681860.1456449446, row.WaveImpedance, "wave impedance")
	assert.Equal(t, EpsilonFromFrequency(e.Parameters, 440, 0.006), row.Epsilon)
	assert.Equal(t, AlphaFromWaveNumber(e.Parameters, WaveNumber(e.Parameters, 440), 0.006), row.Alpha)
}

func Test_ToCSV(t *testing.T) {
	buf := bytes.NewBuffer([]byte{})
	require.NoError(t, testReport().ToCSV(buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "name,temperature,pressure,"))
	assert.True(t, strings.HasSuffix(lines[0], ",wave_impedance,epsilon,alpha"))
	assert.True(t, strings.HasPrefix(lines[1], "sea-level,293.15,101.325,"))
	assert.True(t, strings.HasPrefix(lines[2], "exhaled,"))
}

func Test_ToJSON(t *testing.T) {
	buf := bytes.NewBuffer([]byte{})
	require.NoError(t, testReport().ToJSON(buf))

	var rows []Row
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	assert.Equal(t, testReport().Rows(), rows)
}

func Test_ToJSON_NonFinite(t *testing.T) {
	report := Report{{
		Name:       "vacuum",
		Parameters: NewParametersBuilder().WithPressure(0).Build(),
		Radius:     0.006,
		Frequency:  0,
	}}
	buf := bytes.NewBuffer([]byte{})
	require.NoError(t, report.ToJSON(buf))

	text := buf.String()
	assert.Contains(t, text, `"molar_water_vapour": null`)
	assert.Less(t, strings.Index(text, `"name"`), strings.Index(text, `"temperature"`))

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "vacuum", rows[0]["name"])
	assert.Nil(t, rows[0]["molar_water_vapour"])
	assert.Nil(t, rows[0]["epsilon"])
	assert.Equal(t, 0.0, rows[0]["pressure"])
}

func Test_ToYAML(t *testing.T) {
	buf := bytes.NewBuffer([]byte{})
	require.NoError(t, testReport().ToYAML(buf))

	var rows []map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "exhaled", rows[1]["name"])
	assert.Equal(t, 0.04, rows[1]["molar_co2"])
}

func Test_ToText(t *testing.T) {
	buf := bytes.NewBuffer([]byte{})
	testReport().ToText(buf)

	text := buf.String()
	assert.Contains(t, text, "[sea-level]\n")
	assert.Contains(t, text, "[exhaled]\n")
	assert.Contains(t, text, "K (20.00 °C)")
	assert.Contains(t, text, "  sound speed")
	assert.Contains(t, text, "at f=220 Hz")
	assert.NotContains(t, text, " \n")
}
