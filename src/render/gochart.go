package render

import (
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	axisTickCount = 6
	basePadBottom = 28
)

var (
	guideDash = []float64{5, 4}
	gridColor = drawing.ColorFromHex("d9d9d9")
)

// ChartBackend collects a figure as go-chart series.
type ChartBackend struct {
	Width  int
	Height int
	DPI    float64

	// CaptionBand is extra bottom padding reserved for DrawCaption.
	CaptionBand int

	grid   bool
	lines  []Line
	series []chart.ContinuousSeries
	xName  string
	yName  string
	legend []string
}

// NewChartBackend returns a backend for a size x size chart.
func NewChartBackend(size int, dpi float64) *ChartBackend {
	return &ChartBackend{Width: size, Height: size, DPI: dpi}
}

// EnableGrid draws a grid line at every interior tick on both axes.
func (b *ChartBackend) EnableGrid() { b.grid = true }

// DrawSegment adds a solid, named series.
func (b *ChartBackend) DrawSegment(label string, from, to Point, color string, width float64) {
	b.add(Line{Label: label, From: from, To: to, Color: color, Width: width})
}

// DrawDashed adds an unnamed dashed series.
func (b *ChartBackend) DrawDashed(from, to Point, color string, width float64) {
	b.add(Line{From: from, To: to, Color: color, Width: width, Dashed: true})
}

// SetAxisLabels names the X and Y axes.
func (b *ChartBackend) SetAxisLabels(x, y string) {
	b.xName, b.yName = x, y
}

// SetLegend lists the series names shown in the legend, in order.
func (b *ChartBackend) SetLegend(labels []string) {
	b.legend = append([]string(nil), labels...)
}

func (b *ChartBackend) add(l Line) {
	st := chart.Style{
		StrokeColor: drawing.ColorFromHex(l.Color),
		StrokeWidth: l.Width,
	}
	if l.Dashed {
		st.StrokeDashArray = guideDash
	}
	b.lines = append(b.lines, l)
	b.series = append(b.series, chart.ContinuousSeries{
		Name:    l.Label,
		XValues: []float64{l.From.X, l.To.X},
		YValues: []float64{l.From.Y, l.To.Y},
		Style:   st,
	})
}

// Series returns the series drawn so far, in draw order.
func (b *ChartBackend) Series() []chart.ContinuousSeries {
	return append([]chart.ContinuousSeries(nil), b.series...)
}

// LegendSeries returns the named series listed in the legend, in legend order.
// Labels with no matching series are skipped.
func (b *ChartBackend) LegendSeries() []chart.Series {
	out := make([]chart.Series, 0, len(b.legend))
	for _, name := range b.legend {
		for _, s := range b.series {
			if s.Name != "" && s.Name == name {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

// gridStyle is used for both major and minor lines: go-chart alternates the two
// across ticks, so hiding minor lines would drop every other grid line.
func (b *ChartBackend) gridStyle() chart.Style {
	if !b.grid {
		return chart.Style{Hidden: true}
	}
	return chart.Style{StrokeColor: gridColor, StrokeWidth: 1}
}

// Chart assembles the go-chart definition. Axis ranges cover every line with a
// small pad so the guides never sit on the plot border.
func (b *ChartBackend) Chart() chart.Chart {
	grid := b.gridStyle()
	xAxis := chart.XAxis{Name: b.xName, GridMajorStyle: grid, GridMinorStyle: grid}
	yAxis := chart.YAxis{Name: b.yName, GridMajorStyle: grid, GridMinorStyle: grid}
	if minX, maxX, minY, maxY, ok := bounds(b.lines); ok {
		x0, x1 := axisRange(minX, maxX, axisTickCount)
		y0, y1 := axisRange(minY, maxY, axisTickCount)
		xAxis.Range = &chart.ContinuousRange{Min: x0, Max: x1}
		xAxis.Ticks = niceTicks(x0, x1, axisTickCount)
		yAxis.Range = &chart.ContinuousRange{Min: y0, Max: y1}
		yAxis.Ticks = niceTicks(y0, y1, axisTickCount)
	}

	series := make([]chart.Series, 0, len(b.series))
	for _, s := range b.series {
		series = append(series, s)
	}
	c := chart.Chart{
		Width:      b.Width,
		Height:     b.Height,
		DPI:        b.DPI,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: basePadBottom + b.CaptionBand}},
		XAxis:      xAxis,
		YAxis:      yAxis,
		Series:     series,
	}
	if len(b.legend) > 0 {
		// The legend reads series from its own chart so guides stay unlabelled.
		legendChart := &chart.Chart{Series: b.LegendSeries()}
		c.Elements = []chart.Renderable{chart.Legend(legendChart)}
	}
	return c
}
