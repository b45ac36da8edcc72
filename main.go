// RustedInstrumentDesigner air parameters
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"

	"github.com/erickisos/RustedInstrumentDesigner/config"
	"github.com/erickisos/RustedInstrumentDesigner/physics"
)

const loggerName = "rusted-designer"

func main() {
	defer logging.Shutdown()

	if err := run(os.Args, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	// command line options
	parser := argparse.NewParser("rusted-designer", "Derives the acoustic properties of humid air in an instrument bore")

	temperature := parser.Float("t", "temperature", &argparse.Options{
		Default: physics.DefaultTemperature,
		Help:    "Air temperature"})

	unit := parser.Selector("u", "unit", []string{"F", "C", "K"}, &argparse.Options{
		Default: physics.DefaultTemperatureType.String(),
		Help:    "Temperature unit F, C or K"})

	pressure := parser.Float("p", "pressure", &argparse.Options{
		Default: physics.DefaultPressure,
		Help:    "Barometric pressure in kPa"})

	elevation := parser.Float("e", "elevation", &argparse.Options{
		Default: math.NaN(),
		Help:    "Elevation in m; replaces --pressure with the barometric pressure at this elevation"})

	humidity := parser.Float("r", "humidity", &argparse.Options{
		Default: physics.DefaultHumiditySaturation,
		Help:    "Relative humidity in %"})

	co2 := parser.Float("", "co2", &argparse.Options{
		Default: physics.DefaultMolarCO2,
		Help:    "Molar fraction of CO2 in mol/mol"})

	radius := parser.Float("", "radius", &argparse.Options{
		Default: config.DefaultRadius,
		Help:    "Bore radius in m"})

	frequency := parser.Float("", "frequency", &argparse.Options{
		Default: config.DefaultFrequency,
		Help:    "Frequency in Hz for the wall-loss terms"})

	configFile := parser.String("c", "config", &argparse.Options{
		Default: "",
		Help:    "YAML file with named conditions; overrides the condition options"})

	format := parser.Selector("f", "format", []string{"TEXT", "CSV", "JSON", "YAML"}, &argparse.Options{
		Default: "TEXT",
		Help:    "Output format TEXT, CSV, JSON or YAML"})

	filename := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "Output file path"})

	logLevel := parser.Selector("", "log", []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}, &argparse.Options{
		Default: "ERROR",
		Help:    "Log level"})

	if err := parser.Parse(args); err != nil {
		return errors.New(parser.Usage(err))
	}

	// log level
	logger := logging.GetLogger(loggerName)
	switch *logLevel {
	case "DEBUG":
		logger.SetLevel(logging.LevelDebug)
	case "INFO":
		logger.SetLevel(logging.LevelInfo)
	case "WARN":
		logger.SetLevel(logging.LevelWarn)
	case "ERROR":
		logger.SetLevel(logging.LevelError)
	case "CRITICAL":
		logger.SetLevel(logging.LevelCritical)
	}

	var report physics.Report
	if *configFile != "" {
		logger.Infof("reading conditions from %s", *configFile)
		cfg, err := config.Load(*configFile)
		if err != nil {
			return err
		}
		report, err = cfg.Report()
		if err != nil {
			return err
		}
	} else {
		if !(*radius > 0) {
			return fmt.Errorf("%w, got %v", config.ErrNonPositiveBoreRadius, *radius)
		}
		temperatureType, err := physics.ParseTemperatureType(*unit)
		if err != nil {
			return err
		}
		b := physics.NewParametersBuilder().
			WithTemperature(*temperature, temperatureType).
			WithPressure(*pressure).
			WithHumiditySaturation(*humidity).
			WithMolarCO2(*co2)
		if !math.IsNaN(*elevation) {
			b = b.WithElevation(*elevation)
			logger.Debugf("pressure at %g m: %g kPa", *elevation, physics.PressureAt(*elevation))
		}
		report = physics.Report{{
			Name:       fmt.Sprintf("%g%s", *temperature, temperatureType),
			Parameters: b.Build(),
			Radius:     *radius,
			Frequency:  *frequency,
		}}
	}
	logger.Infof("evaluated %d conditions", len(report))

	buf := bytes.NewBuffer([]byte{})
	if err := render(report, *format, buf); err != nil {
		return err
	}

	if *filename == "" {
		_, err := stdout.Write(buf.Bytes())
		return err
	}
	logger.Infof("writing %s", *filename)
	if err := os.WriteFile(*filename, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func render(report physics.Report, format string, buf *bytes.Buffer) error {
	switch format {
	case "CSV":
		return report.ToCSV(buf)
	case "JSON":
		return report.ToJSON(buf)
	case "YAML":
		return report.ToYAML(buf)
	case "TEXT":
		report.ToText(buf)
		return nil
	}
	return fmt.Errorf("unknown format %q", format)
}
