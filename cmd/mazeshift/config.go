package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every Config.Validate failure.
var ErrInvalidConfig = errors.New("mazeshift: invalid config")

// Config is the full driver configuration: defaults, then the YAML file,
// then explicitly set flags.
type Config struct {
	// Maze contains generation settings.
	Maze MazeConfig `yaml:"maze"`

	// Shift contains mutation settings for the shift command.
	Shift ShiftConfig `yaml:"shift"`

	// Log contains logging settings.
	Log LogConfig `yaml:"log"`
}

// MazeConfig sizes and seeds the generated maze.
// Seed 0 means "pick one from the clock".
type MazeConfig struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`
}

// ShiftConfig drives repeated mutation.
// Seed 0 derives the mutation stream from the maze seed.
// A nil Goal means the bottom-right cell.
type ShiftConfig struct {
	Steps int          `yaml:"steps"`
	Seed  int64        `yaml:"seed"`
	Start PointConfig  `yaml:"start"`
	Goal  *PointConfig `yaml:"goal"`
}

// PointConfig is a cell coordinate in the config file.
type PointConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// LogConfig selects the slog level; Trace logs every carved passage.
type LogConfig struct {
	Level string `yaml:"level"`
	Trace bool   `yaml:"trace"`
}

// DefaultConfig returns the settings used when no file or flag overrides them.
func DefaultConfig() Config {
	return Config{
		Maze: MazeConfig{
			Width:  15,
			Height: 15,
		},
		Shift: ShiftConfig{
			Steps: 10,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig starts from DefaultConfig and overlays the YAML file at path,
// if path is non-empty.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// GoalPoint resolves the configured goal, defaulting to the bottom-right cell.
func (c Config) GoalPoint() PointConfig {
	if c.Shift.Goal != nil {
		return *c.Shift.Goal
	}
	return PointConfig{X: c.Maze.Width - 1, Y: c.Maze.Height - 1}
}

// Validate rejects settings the engine would refuse at run time.
func (c Config) Validate() error {
	if c.Maze.Width <= 0 || c.Maze.Height <= 0 {
		return fmt.Errorf("%w: maze size %dx%d", ErrInvalidConfig, c.Maze.Width, c.Maze.Height)
	}
	if c.Shift.Steps < 0 {
		return fmt.Errorf("%w: negative shift steps %d", ErrInvalidConfig, c.Shift.Steps)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	inside := func(p PointConfig) bool {
		return p.X >= 0 && p.X < c.Maze.Width && p.Y >= 0 && p.Y < c.Maze.Height
	}
	if !inside(c.Shift.Start) {
		return fmt.Errorf("%w: start (%d,%d) outside maze", ErrInvalidConfig, c.Shift.Start.X, c.Shift.Start.Y)
	}
	if goal := c.GoalPoint(); !inside(goal) {
		return fmt.Errorf("%w: goal (%d,%d) outside maze", ErrInvalidConfig, goal.X, goal.Y)
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return lvl, nil
}
