// SPDX-License-Identifier: MIT

// Package config loads the editor and playback settings from TOML.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/graphisual/ctxlog"
	"github.com/katalvlaran/graphisual/playback"
	"github.com/katalvlaran/graphisual/tool"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds graphisual configuration.
type Config struct {
	Playback PlaybackConfig `toml:"playback"`
	Editor   EditorConfig   `toml:"editor"`
	Log      LogConfig      `toml:"log"`
}

// PlaybackConfig controls visualization timing.
type PlaybackConfig struct {
	SpeedMS int `toml:"speed_ms"`
}

// EditorConfig controls the tool controller.
type EditorConfig struct {
	InitialTool       string  `toml:"initial_tool"` // tool.Mode name, e.g. "draw-node"
	NodeRadius        float64 `toml:"node_radius"`
	EdgeTolerance     float64 `toml:"edge_tolerance"`
	DefaultEdgeWeight float64 `toml:"default_edge_weight"`
}

// LogConfig controls the slog level.
type LogConfig struct {
	Level string `toml:"level"` // "debug", "info", "warn", "error"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Playback: PlaybackConfig{SpeedMS: int(playback.DefaultSpeed)},
		Editor: EditorConfig{
			InitialTool:       tool.ModeDrawNode.String(),
			NodeRadius:        tool.DefaultNodeRadius,
			EdgeTolerance:     tool.DefaultEdgeTolerance,
			DefaultEdgeWeight: 1,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads path on top of the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes TOML data on top of the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if _, err := playback.ParseSpeed(c.Playback.SpeedMS); err != nil {
		return fmt.Errorf("%w: playback.speed_ms: %w", ErrInvalidConfig, err)
	}
	m, err := tool.ParseMode(c.Editor.InitialTool)
	if err != nil {
		return fmt.Errorf("%w: editor.initial_tool: %w", ErrInvalidConfig, err)
	}
	if m == tool.ModeSelectAnchors || m == tool.ModeReset {
		return fmt.Errorf("%w: editor.initial_tool %q cannot be a start tool", ErrInvalidConfig, c.Editor.InitialTool)
	}
	if c.Editor.NodeRadius <= 0 {
		return fmt.Errorf("%w: editor.node_radius must be positive", ErrInvalidConfig)
	}
	if c.Editor.EdgeTolerance <= 0 {
		return fmt.Errorf("%w: editor.edge_tolerance must be positive", ErrInvalidConfig)
	}
	if _, err := ctxlog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Speed returns the validated playback speed.
func (c *Config) Speed() playback.Speed {
	s, err := playback.ParseSpeed(c.Playback.SpeedMS)
	if err != nil {
		return playback.DefaultSpeed
	}

	return s
}

// ToolOptions maps the editor section onto controller options.
func (c *Config) ToolOptions() []tool.Option {
	m, err := tool.ParseMode(c.Editor.InitialTool)
	if err != nil {
		m = tool.ModeDrawNode
	}

	return []tool.Option{
		tool.WithInitialMode(m),
		tool.WithNodeRadius(c.Editor.NodeRadius),
		tool.WithEdgeTolerance(c.Editor.EdgeTolerance),
		tool.WithSpeed(c.Speed()),
		tool.WithPrompter(tool.FixedWeight(c.Editor.DefaultEdgeWeight)),
	}
}
