package perigee

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	// BigG is the gravitational constant in km^3 kg^-1 s^-2, so that G*mass is in km^3/s^2.
	BigG = 6.67430e-20
	// DefaultDivisions is the number of samples in an orbit point sequence.
	DefaultDivisions = 61
	// DefaultTickValue is the number of km represented by one output unit.
	DefaultTickValue = 1000.0
	// DefaultParabolicEpsilon is the maximum 1-e for which an orbit is drawn as a parabola.
	DefaultParabolicEpsilon = 0.1
	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"

	configEnvVar = "PERIGEE_CONFIG"
	envPrefix    = "PERIGEE"
)

// Config holds the numerical constants used by the calculators.
type Config struct {
	G                float64 // gravitational constant in km^3 kg^-1 s^-2
	Divisions        int     // samples per orbit point sequence
	TickValue        float64 // km per output unit
	ParabolicEpsilon float64 // 1-e threshold under which the parabolic formula is used
	OutputDir        string  // where exports are written, empty disables exports
	LogLevel         string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		G:                BigG,
		Divisions:        DefaultDivisions,
		TickValue:        DefaultTickValue,
		ParabolicEpsilon: DefaultParabolicEpsilon,
		LogLevel:         DefaultLogLevel,
	}
}

// NewBody returns a new body whose μ is computed with this configuration's G.
func (c Config) NewBody(name string, mass, radius float64, color string) (Body, error) {
	return newBody(c.G, name, mass, radius, color)
}

// Validate returns a ValidationError if any of the constants is unusable.
func (c Config) Validate() error {
	if !(c.G > 0) || math.IsInf(c.G, 0) {
		return &ValidationError{"G", "must be a finite number greater than zero"}
	}
	if c.Divisions < 3 {
		return &ValidationError{"divisions", "need at least three samples per orbit"}
	}
	if !(c.TickValue > 0) || math.IsInf(c.TickValue, 0) {
		return &ValidationError{"tick value", "must be greater than zero"}
	}
	if !(c.ParabolicEpsilon > 0 && c.ParabolicEpsilon < 1) {
		return &ValidationError{"parabolic epsilon", "must be within (0, 1)"}
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return &ValidationError{"log level", fmt.Sprintf("%q is not one of debug, info, warn, error", c.LogLevel)}
	}
	return nil
}

// LoadConfig reads the configuration. If path is empty, the directory in $PERIGEE_CONFIG is
// searched for a `conf` file (any format viper understands). A missing file is not an error:
// defaults apply, and PERIGEE_* environment variables override both.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	def := DefaultConfig()
	v.SetDefault("physics.G", def.G)
	v.SetDefault("geometry.divisions", def.Divisions)
	v.SetDefault("geometry.tick", def.TickValue)
	v.SetDefault("geometry.parabolic_epsilon", def.ParabolicEpsilon)
	v.SetDefault("output.dir", "")
	v.SetDefault("log.level", def.LogLevel)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("conf")
		if confPath := os.Getenv(configEnvVar); confPath != "" {
			v.AddConfigPath(confPath)
		}
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return Config{}, fmt.Errorf("could not read configuration: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	conf := Config{
		G:                v.GetFloat64("physics.G"),
		Divisions:        v.GetInt("geometry.divisions"),
		TickValue:        v.GetFloat64("geometry.tick"),
		ParabolicEpsilon: v.GetFloat64("geometry.parabolic_epsilon"),
		OutputDir:        v.GetString("output.dir"),
		LogLevel:         v.GetString("log.level"),
	}
	if err := conf.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return conf, nil
}
