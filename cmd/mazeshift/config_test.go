package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultConfig_Valid makes sure the defaults pass validation.
func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, PointConfig{X: 14, Y: 14}, cfg.GoalPoint())
}

// TestLoadConfig_File overlays a YAML file on the defaults.
func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mazeshift.yaml")
	data := []byte(`
maze:
  width: 8
  seed: 42
shift:
  steps: 3
  goal: {x: 2, y: 5}
log:
  level: debug
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Maze.Width)
	assert.Equal(t, 15, cfg.Maze.Height, "unset keys keep defaults")
	assert.Equal(t, int64(42), cfg.Maze.Seed)
	assert.Equal(t, 3, cfg.Shift.Steps)
	assert.Equal(t, PointConfig{X: 2, Y: 5}, cfg.GoalPoint())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

// TestLoadConfig_Errors reports unreadable and malformed files.
func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("maze: [1, 2"), 0o600))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

// TestConfig_Validate rejects each kind of bad setting.
func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"ZeroWidth", func(c *Config) { c.Maze.Width = 0 }},
		{"NegativeHeight", func(c *Config) { c.Maze.Height = -4 }},
		{"NegativeSteps", func(c *Config) { c.Shift.Steps = -1 }},
		{"UnknownLevel", func(c *Config) { c.Log.Level = "loud" }},
		{"StartOutside", func(c *Config) { c.Shift.Start = PointConfig{X: 15, Y: 0} }},
		{"GoalOutside", func(c *Config) { c.Shift.Goal = &PointConfig{X: 0, Y: -1} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

// TestParsePoint accepts "x,y" with optional spaces.
func TestParsePoint(t *testing.T) {
	p, err := parsePoint("3, 4")
	require.NoError(t, err)
	assert.Equal(t, PointConfig{X: 3, Y: 4}, p)

	for _, bad := range []string{"", "3", "a,1", "1,b"} {
		_, err := parsePoint(bad)
		assert.Error(t, err, "parsePoint(%q)", bad)
	}
}
