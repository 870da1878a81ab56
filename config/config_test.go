// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphisual/config"
	"github.com/katalvlaran/graphisual/playback"
	"github.com/katalvlaran/graphisual/tool"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, playback.DefaultSpeed, cfg.Speed())
	assert.Equal(t, "draw-node", cfg.Editor.InitialTool)
	assert.Len(t, cfg.ToolOptions(), 5)
}

func TestParse(t *testing.T) {
	cfg, err := config.Parse([]byte(`
[playback]
speed_ms = 500

[editor]
initial_tool = "move-node"
node_radius = 20

[log]
level = "debug"
`))
	require.NoError(t, err)
	assert.Equal(t, playback.Speed(500), cfg.Speed())
	assert.Equal(t, "move-node", cfg.Editor.InitialTool)
	assert.Equal(t, 20.0, cfg.Editor.NodeRadius)
	assert.Equal(t, tool.DefaultEdgeTolerance, cfg.Editor.EdgeTolerance, "unset keys keep defaults")
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"speed off grid":  "[playback]\nspeed_ms = 250\n",
		"speed too slow":  "[playback]\nspeed_ms = 2000\n",
		"unknown tool":    "[editor]\ninitial_tool = \"lasso\"\n",
		"anchor tool":     "[editor]\ninitial_tool = \"select-anchors\"\n",
		"zero radius":     "[editor]\nnode_radius = 0\n",
		"negative toler.": "[editor]\nedge_tolerance = -1\n",
		"bad level":       "[log]\nlevel = \"loud\"\n",
		"unknown key":     "[editor]\ncolour = \"red\"\n",
	}
	for name, src := range cases {
		_, err := config.Parse([]byte(src))
		assert.ErrorIs(t, err, config.ErrInvalidConfig, name)
	}

	_, err := config.Parse([]byte("[playback\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	cfg, err := config.Load(filepath.Join(dir, "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	path := filepath.Join(dir, "graphisual.toml")
	require.NoError(t, os.WriteFile(path, []byte("[playback]\nspeed_ms = 100\n"), 0o644))
	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, playback.MinSpeed, cfg.Speed())
}
