// Package config loads LocalSketch settings. Every value has a default;
// a YAML file only needs the keys it changes.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"LocalSketch/internal/state"
)

var ErrInvalid = errors.New("invalid config")

type Canvas struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Background is painted under all shapes and into exports.
	Background string `yaml:"background"`
}

type Style struct {
	Fill         string  `yaml:"fill"`
	Stroke       string  `yaml:"stroke"`
	StrokeWidth  float64 `yaml:"stroke_width"`
	CornerRadius float64 `yaml:"corner_radius"`
}

// Palette lists the choices offered by the side panel.
type Palette struct {
	Strokes      []string  `yaml:"strokes"`
	Fills        []string  `yaml:"fills"`
	CornerRadii  []float64 `yaml:"corner_radii"`
	StrokeWidths []float64 `yaml:"stroke_widths"`
}

type Export struct {
	FileName    string `yaml:"file_name"`
	PDFFileName string `yaml:"pdf_file_name"`
}

type Config struct {
	Canvas  Canvas  `yaml:"canvas"`
	Style   Style   `yaml:"style"`
	Palette Palette `yaml:"palette"`
	Export  Export  `yaml:"export"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Canvas: Canvas{Width: 1024, Height: 768, Background: "#ffffff"},
		Style: Style{
			Fill:         "#ffc9c9",
			Stroke:       "#B92929",
			StrokeWidth:  3,
			CornerRadius: 10,
		},
		Palette: Palette{
			Strokes:      []string{"#1E1E1E", "#B92929", "#278338", "#155ea1", "#c77400"},
			Fills:        []string{"#00000000", "#ffc9c9", "#b2f2bb", "#a5d8ff", "#ffec99"},
			CornerRadii:  []float64{0, 10},
			StrokeWidths: []float64{1, 3, 5},
		},
		Export: Export{FileName: "image.png", PDFFileName: "image.pdf"},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Parse(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, keeping values the document leaves out,
// then validates the result.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("yaml: %w", err)
	}
	return cfg.Validate()
}

func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas %dx%d: %w", c.Canvas.Width, c.Canvas.Height, ErrInvalid)
	}
	if c.Export.FileName == "" {
		return fmt.Errorf("export file name is empty: %w", ErrInvalid)
	}
	colors := []string{c.Canvas.Background, c.Style.Fill, c.Style.Stroke}
	colors = append(colors, c.Palette.Strokes...)
	colors = append(colors, c.Palette.Fills...)
	for _, col := range colors {
		if _, err := state.ParseHex(col); err != nil {
			return fmt.Errorf("%v: %w", err, ErrInvalid)
		}
	}
	return nil
}

// InitialStyle is the style new boards start with.
func (c Config) InitialStyle() state.StyleSnapshot {
	return state.StyleSnapshot{
		Style: state.Style{
			Fill:        c.Style.Fill,
			Stroke:      c.Style.Stroke,
			StrokeWidth: c.Style.StrokeWidth,
		},
		CornerRadius: c.Style.CornerRadius,
	}
}
