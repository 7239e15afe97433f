package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/perigee-astro/perigee"
	"github.com/spf13/viper"
)

// This reads a scenario, prints the delta-v budget of its maneuver and exports the scene if an
// output directory is configured.

const (
	defaultScenario = "~~unset~~"
)

var (
	scenario   string
	configFile string
	verbose    bool
)

func init() {
	// Read flags
	flag.StringVar(&scenario, "scenario", defaultScenario, "scenario TOML file")
	flag.StringVar(&configFile, "config", "", "configuration file (defaults to $PERIGEE_CONFIG/conf)")
	flag.BoolVar(&verbose, "verbose", false, "log at debug level")
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "perigee: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	if scenario == defaultScenario {
		return fmt.Errorf("no scenario provided")
	}
	conf, err := perigee.LoadConfig(configFile)
	if err != nil {
		return err
	}
	if verbose {
		conf.LogLevel = "debug"
	}
	logger := perigee.NewLogger(os.Stderr, conf.LogLevel)

	viper.SetConfigFile(scenario)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("%s: %w", scenario, err)
	}
	level.Debug(logger).Log("scenario", viper.ConfigFileUsed(), "conf", fmt.Sprintf("%+v", conf))

	// Read body
	body, err := conf.NewBody(viper.GetString("body.name"), viper.GetFloat64("body.mass"), viper.GetFloat64("body.radius"), viper.GetString("body.color"))
	if err != nil {
		return fmt.Errorf("body: %w", err)
	}

	// Read orbit and craft
	orbit, err := readOrbit("orbit")
	if err != nil {
		return err
	}
	craft := perigee.Craft{Name: viper.GetString("craft.name"), Color: viper.GetString("craft.color")}

	// Maneuver
	var maneuver *perigee.Maneuver
	if viper.IsSet("maneuver") {
		target, err := readOrbit("maneuver")
		if err != nil {
			return err
		}
		maneuver = perigee.NewManeuver(&target, viper.GetString("maneuver.color"))
		if err := printBudget(os.Stdout, body, orbit, craft, maneuver); err != nil {
			return err
		}
	}

	geo, err := perigee.NewGeometry(conf, logger)
	if err != nil {
		return err
	}
	scene, err := perigee.NewPlanner(geo, logger).Plot(body, orbit, craft, maneuver)
	if err != nil {
		return err
	}
	if conf.OutputDir == "" {
		level.Debug(logger).Log("msg", "no output directory, nothing exported")
		return nil
	}
	exporter, err := perigee.NewExporter(conf, log.With(logger, "craft", craft))
	if err != nil {
		return err
	}
	viper.SetDefault("scenario.name", "scene")
	catalog, err := exporter.Export(viper.GetString("scenario.name"), scene)
	if err != nil {
		return err
	}
	fmt.Printf("Saved scene to %s\n", catalog)
	return nil
}

func readOrbit(key string) (perigee.Orbit, error) {
	o, err := perigee.NewOrbit(viper.GetFloat64(key+".apogee"), viper.GetFloat64(key+".perigee"), viper.GetFloat64(key+".inclination"))
	if err != nil {
		return perigee.Orbit{}, fmt.Errorf("%s: %w", key, err)
	}
	return o, nil
}
