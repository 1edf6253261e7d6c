package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "image.png", cfg.Export.FileName)
	assert.Equal(t, 3.0, cfg.InitialStyle().StrokeWidth)
	assert.Equal(t, 10.0, cfg.InitialStyle().CornerRadius)
}

func TestLoadEmptyPathGivesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sketch.yaml")
	doc := `
canvas:
  width: 640
style:
  stroke: "#155ea1"
palette:
  stroke_widths: [2, 4]
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Canvas.Width)
	assert.Equal(t, 768, cfg.Canvas.Height)
	assert.Equal(t, "#155ea1", cfg.Style.Stroke)
	assert.Equal(t, "#ffc9c9", cfg.Style.Fill)
	assert.Equal(t, []float64{2, 4}, cfg.Palette.StrokeWidths)
	assert.Equal(t, "image.png", cfg.Export.FileName)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"zero width":   "canvas: {width: 0}",
		"bad color":    "style: {fill: pink}",
		"empty export": `export: {file_name: ""}`,
		"not yaml":     "canvas: [",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			err := Parse([]byte(doc), &cfg)
			require.Error(t, err)
			if name != "not yaml" {
				assert.ErrorIs(t, err, ErrInvalid)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
