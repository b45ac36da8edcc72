package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hhkbp2/go-logging"
	"gopkg.in/yaml.v3"

	"github.com/erickisos/RustedInstrumentDesigner/physics"
)

// Bore defaults, in m and Hz.
const (
	DefaultRadius    = 0.006
	DefaultFrequency = 440.0
)

var (
	ErrNoConditions          = errors.New("no conditions defined")
	ErrPressureAndElevation  = errors.New("pressure and elevation are mutually exclusive")
	ErrNonPositiveBoreRadius = errors.New("bore radius must be positive")
)

// Config is a set of environmental conditions evaluated in one bore.
type Config struct {
	Radius     float64 // m
	Frequency  float64 // Hz
	Conditions []Condition
}

// Condition is one environmental condition. Nil fields keep the builder defaults.
type Condition struct {
	Name        string   `yaml:"name"`
	Temperature *float64 `yaml:"temperature"`
	Unit        string   `yaml:"unit"`
	Pressure    *float64 `yaml:"pressure"`  // kPa
	Elevation   *float64 `yaml:"elevation"` // m
	Humidity    *float64 `yaml:"humidity"`  // %
	CO2         *float64 `yaml:"co2"`       // mol/mol
}

type fileConfig struct {
	Bore struct {
		Radius    *float64 `yaml:"radius"`
		Frequency *float64 `yaml:"frequency"`
	} `yaml:"bore"`

	Conditions []Condition `yaml:"conditions"`
}

// Load reads a conditions file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logging.GetLogger("rusted-designer").Debugf("loaded %d conditions from %s", len(cfg.Conditions), path)
	return cfg, nil
}

// Parse decodes a conditions file held in memory.
func Parse(data []byte) (*Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	cfg := &Config{
		Radius:     DefaultRadius,
		Frequency:  DefaultFrequency,
		Conditions: fc.Conditions,
	}
	if fc.Bore.Radius != nil {
		cfg.Radius = *fc.Bore.Radius
	}
	if fc.Bore.Frequency != nil {
		cfg.Frequency = *fc.Bore.Frequency
	}
	for i := range cfg.Conditions {
		if strings.TrimSpace(cfg.Conditions[i].Name) == "" {
			cfg.Conditions[i].Name = fmt.Sprintf("condition-%d", i+1)
		}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Physical ranges are not checked: out-of-domain inputs propagate as NaN/Inf.
func validate(cfg *Config) error {
	if len(cfg.Conditions) == 0 {
		return ErrNoConditions
	}
	if !(cfg.Radius > 0) {
		return fmt.Errorf("%w, got %v", ErrNonPositiveBoreRadius, cfg.Radius)
	}
	for _, c := range cfg.Conditions {
		if c.Pressure != nil && c.Elevation != nil {
			return fmt.Errorf("condition %q: %w", c.Name, ErrPressureAndElevation)
		}
		if c.Unit != "" {
			if _, err := physics.ParseTemperatureType(c.Unit); err != nil {
				return fmt.Errorf("condition %q: %w", c.Name, err)
			}
		}
	}
	return nil
}

// Builder applies the condition over the default builder. A temperature without a
// unit is read as Celsius.
func (c Condition) Builder() (physics.ParametersBuilder, error) {
	b := physics.NewParametersBuilder()

	if c.Temperature != nil {
		unit := physics.Celsius
		if c.Unit != "" {
			var err error
			unit, err = physics.ParseTemperatureType(c.Unit)
			if err != nil {
				return b, fmt.Errorf("condition %q: %w", c.Name, err)
			}
		}
		b = b.WithTemperature(*c.Temperature, unit)
	}
	if c.Pressure != nil && c.Elevation != nil {
		return b, fmt.Errorf("condition %q: %w", c.Name, ErrPressureAndElevation)
	}
	if c.Pressure != nil {
		b = b.WithPressure(*c.Pressure)
	}
	if c.Elevation != nil {
		b = b.WithElevation(*c.Elevation)
	}
	if c.Humidity != nil {
		b = b.WithHumiditySaturation(*c.Humidity)
	}
	if c.CO2 != nil {
		b = b.WithMolarCO2(*c.CO2)
	}
	return b, nil
}

// Report builds every condition.
func (cfg *Config) Report() (physics.Report, error) {
	report := make(physics.Report, 0, len(cfg.Conditions))
	for _, c := range cfg.Conditions {
		b, err := c.Builder()
		if err != nil {
			return nil, err
		}
		report = append(report, physics.Entry{
			Name:       c.Name,
			Parameters: b.Build(),
			Radius:     cfg.Radius,
			Frequency:  cfg.Frequency,
		})
	}
	return report, nil
}
