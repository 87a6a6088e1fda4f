package render

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/pkg/errors"
	chart "github.com/wcharczuk/go-chart/v2"
)

// Format is an output encoding.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ParseFormat accepts "png" or "svg" in any case.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatPNG:
		return FormatPNG, nil
	case FormatSVG:
		return FormatSVG, nil
	}
	return "", errors.Errorf("unknown output format %q (want png or svg)", s)
}

func (f Format) provider() chart.RendererProvider {
	if f == FormatSVG {
		return chart.SVG
	}
	return chart.PNG
}

// Build replays fig onto a fresh go-chart backend. A captioned figure gets
// CaptionBand extra rows of bottom padding.
func Build(fig *Figure) *ChartBackend {
	b := NewChartBackend(fig.Size, fig.DPI)
	if fig.Caption != "" {
		b.CaptionBand = CaptionBand
	}
	fig.Draw(b)
	return b
}

// Encode writes fig to w in the given format. Captions are drawn on PNG
// output only.
func Encode(fig *Figure, format Format, w io.Writer) error {
	if format == FormatPNG && fig.Caption != "" {
		img, err := Image(fig)
		if err != nil {
			return err
		}
		return errors.Wrap(png.Encode(w, img), "png encode")
	}
	return renderChart(fig, format, w)
}

// Image renders fig, caption included, as a decoded raster image.
func Image(fig *Figure) (image.Image, error) {
	var buf bytes.Buffer
	if err := renderChart(fig, FormatPNG, &buf); err != nil {
		return nil, err
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, errors.Wrap(err, "decode chart png")
	}
	return DrawCaption(img, fig.Caption, CaptionBand), nil
}

func renderChart(fig *Figure, format Format, w io.Writer) error {
	c := Build(fig).Chart()
	return errors.Wrapf(c.Render(format.provider(), w), "render %s chart", format)
}
