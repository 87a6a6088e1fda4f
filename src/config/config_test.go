package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iafilius/BestResponsePlot/src/payoff"
	"github.com/iafilius/BestResponsePlot/src/render"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, payoff.DefaultDomain(), cfg.Domain)
	assert.Equal(t, render.DefaultStyle(), cfg.RenderStyle())
	require.NoError(t, cfg.Validate())
}

func TestLoadOverlaysDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "custom.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 0.0, cfg.Domain.S1Min)
	assert.Equal(t, 6.0, cfg.Domain.S1Max)
	assert.Equal(t, payoff.S2Min, cfg.Domain.S2Min, "unset fields keep defaults")
	assert.Equal(t, payoff.S2Max, cfg.Domain.S2Max)

	assert.Equal(t, 640, cfg.Figure.Size)
	assert.Equal(t, 100.0, cfg.Figure.DPI)
	assert.False(t, cfg.Figure.Grid)
	assert.Equal(t, "homework 4", cfg.Figure.Caption)

	assert.Equal(t, "112233", cfg.Style.BR1.Color, "leading # is stripped")
	assert.Equal(t, 1.7, cfg.Style.BR1.Width)
	assert.Equal(t, "ff00ff", cfg.Style.BR2.Color)

	assert.Equal(t, "out/chart.svg", cfg.Output.Path)
	assert.Equal(t, "svg", cfg.Output.Format)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	path := filepath.Join("testdata", "bad_format.yaml")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.format")
	assert.Contains(t, err.Error(), path)
}

func TestLoadRejectsBadColor(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "bad_color.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "style.vertical.color")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoadKeepsDegenerateDomain(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "degenerate.yaml"))
	require.NoError(t, err)
	assert.True(t, cfg.Domain.Degenerate())
}

func TestValidateFigureAndWidths(t *testing.T) {
	cfg := Default()
	cfg.Figure.Size = 0
	assert.ErrorContains(t, cfg.Validate(), "figure.size")

	cfg = Default()
	cfg.Figure.DPI = -1
	assert.ErrorContains(t, cfg.Validate(), "figure.dpi")

	cfg = Default()
	cfg.Style.Horizontal.Width = 0
	assert.ErrorContains(t, cfg.Validate(), "style.horizontal.width")

	cfg = Default()
	cfg.Output.Path = " "
	assert.ErrorContains(t, cfg.Validate(), "output.path")
}
