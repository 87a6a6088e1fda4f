// Package config loads the YAML settings for brplot. Values missing from the
// file keep their defaults; command-line flags are applied on top by the caller.
package config

import (
	"os"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/iafilius/BestResponsePlot/src/payoff"
	"github.com/iafilius/BestResponsePlot/src/render"
)

// DefaultOutputPath is where the chart is written when nothing else is configured.
const DefaultOutputPath = "best_response.png"

var hexColor = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

// Figure holds the canvas settings and the optional caption.
type Figure struct {
	Size    int     `yaml:"size"`
	DPI     float64 `yaml:"dpi"`
	Grid    bool    `yaml:"grid"`
	Caption string  `yaml:"caption"`
}

// Styles holds the stroke of each curve and guide family.
type Styles struct {
	BR1        render.LineStyle `yaml:"br1"`
	BR2        render.LineStyle `yaml:"br2"`
	Horizontal render.LineStyle `yaml:"horizontal"`
	Vertical   render.LineStyle `yaml:"vertical"`
}

// Output says where and in which format the chart is written.
type Output struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"`
}

// Config is the full tool configuration.
type Config struct {
	Domain   payoff.Domain `yaml:"domain"`
	Figure   Figure        `yaml:"figure"`
	Style    Styles        `yaml:"style"`
	Output   Output        `yaml:"output"`
	LogLevel string        `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	st := render.DefaultStyle()
	return Config{
		Domain: payoff.DefaultDomain(),
		Figure: Figure{Size: st.Size, DPI: st.DPI, Grid: st.Grid},
		Style: Styles{
			BR1:        st.BR1,
			BR2:        st.BR2,
			Horizontal: st.Horizontal,
			Vertical:   st.Vertical,
		},
		Output:   Output{Path: DefaultOutputPath, Format: string(render.FormatPNG)},
		LogLevel: "info",
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parse config %s", path)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

func (c *Config) normalize() {
	for _, ls := range []*render.LineStyle{&c.Style.BR1, &c.Style.BR2, &c.Style.Horizontal, &c.Style.Vertical} {
		ls.Color = strings.TrimPrefix(strings.TrimSpace(ls.Color), "#")
	}
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
}

// Validate checks figure, style and output settings. The domain is left alone:
// degenerate domains render as degenerate charts.
func (c Config) Validate() error {
	if c.Figure.Size <= 0 {
		return errors.Errorf("figure.size must be positive, got %d", c.Figure.Size)
	}
	if c.Figure.DPI <= 0 {
		return errors.Errorf("figure.dpi must be positive, got %v", c.Figure.DPI)
	}
	lines := []struct {
		name string
		ls   render.LineStyle
	}{
		{"br1", c.Style.BR1},
		{"br2", c.Style.BR2},
		{"horizontal", c.Style.Horizontal},
		{"vertical", c.Style.Vertical},
	}
	for _, l := range lines {
		if !hexColor.MatchString(l.ls.Color) {
			return errors.Errorf("style.%s.color must be 6 hex digits, got %q", l.name, l.ls.Color)
		}
		if l.ls.Width <= 0 {
			return errors.Errorf("style.%s.width must be positive, got %v", l.name, l.ls.Width)
		}
	}
	if _, err := render.ParseFormat(c.Output.Format); err != nil {
		return errors.Wrap(err, "output.format")
	}
	if strings.TrimSpace(c.Output.Path) == "" {
		return errors.New("output.path must not be empty")
	}
	return nil
}

// RenderStyle converts the figure and style sections into a render.Style.
func (c Config) RenderStyle() render.Style {
	return render.Style{
		BR1:        c.Style.BR1,
		BR2:        c.Style.BR2,
		Horizontal: c.Style.Horizontal,
		Vertical:   c.Style.Vertical,
		Size:       c.Figure.Size,
		DPI:        c.Figure.DPI,
		Grid:       c.Figure.Grid,
		Caption:    c.Figure.Caption,
	}
}
