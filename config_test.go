package perigee

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConf(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "conf.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv(configEnvVar, t.TempDir())
	conf, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), conf)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConf(t, dir, `
[geometry]
divisions = 121
tick = 100.0

[output]
dir = "/tmp/perigee"

[log]
level = "debug"
`)
	conf, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 121, conf.Divisions)
	assert.Equal(t, 100.0, conf.TickValue)
	assert.Equal(t, "/tmp/perigee", conf.OutputDir)
	assert.Equal(t, "debug", conf.LogLevel)
	assert.Equal(t, BigG, conf.G)
	assert.Equal(t, DefaultParabolicEpsilon, conf.ParabolicEpsilon)

	// Found through $PERIGEE_CONFIG too.
	t.Setenv(configEnvVar, dir)
	fromEnvDir, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, conf, fromEnvDir)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := writeConf(t, t.TempDir(), "[geometry]\ndivisions = 121\n")
	t.Setenv("PERIGEE_GEOMETRY_DIVISIONS", "31")
	t.Setenv("PERIGEE_GEOMETRY_PARABOLIC_EPSILON", "0.05")
	conf, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 31, conf.Divisions)
	assert.Equal(t, 0.05, conf.ParabolicEpsilon)
}

func TestLoadConfigNaNFromEnv(t *testing.T) {
	t.Setenv(configEnvVar, t.TempDir())
	t.Setenv("PERIGEE_GEOMETRY_TICK", "NaN")
	_, err := LoadConfig("")
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected a ValidationError, got %v", err)
	assert.Equal(t, "tick value", verr.Field)
}

func TestConfigValidateNonFinite(t *testing.T) {
	for name, mutate := range map[string]func(*Config){
		"G":      func(c *Config) { c.G = math.NaN() },
		"tick":   func(c *Config) { c.TickValue = math.NaN() },
		"ε":      func(c *Config) { c.ParabolicEpsilon = math.NaN() },
		"+Inf G": func(c *Config) { c.G = math.Inf(1) },
	} {
		t.Run(name, func(t *testing.T) {
			conf := DefaultConfig()
			mutate(&conf)
			var verr *ValidationError
			assert.True(t, errors.As(conf.Validate(), &verr))
			_, err := NewGeometry(conf, nil)
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	for name, content := range map[string]string{
		"tick":      "[geometry]\ntick = -1.0\n",
		"divisions": "[geometry]\ndivisions = 2\n",
		"epsilon":   "[geometry]\nparabolic_epsilon = 1.0\n",
		"G":         "[physics]\nG = 0.0\n",
		"log level": "[log]\nlevel = \"chatty\"\n",
		"NaN tick":  "[geometry]\ntick = nan\n",
		"NaN G":     "[physics]\nG = nan\n",
		"NaN ε":     "[geometry]\nparabolic_epsilon = nan\n",
		"+Inf tick": "[geometry]\ntick = inf\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConf(t, t.TempDir(), content))
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected a ValidationError, got %v", err)
		})
	}
}
