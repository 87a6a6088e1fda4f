// Package render turns a payoff domain and two best-response functions into a
// chart: two response segments, four dashed guides marking the domain edges,
// axis labels and a legend.
//
// Geometry is computed into a backend-independent Figure. A Backend replays the
// figure; ChartBackend does so on go-chart.
package render

import (
	"github.com/iafilius/BestResponsePlot/src/payoff"
)

// Point is a chart coordinate: X runs along s2, Y along s1.
type Point struct {
	X, Y float64
}

// Line is one straight segment of the figure.
type Line struct {
	Label  string
	From   Point
	To     Point
	Color  string
	Width  float64
	Dashed bool
}

// Figure is a rendered chart description. Each call to Render builds a new one
// and the caller owns it.
type Figure struct {
	Size    int
	DPI     float64
	Grid    bool
	Caption string
	XLabel  string
	YLabel  string
	Lines   []Line
	Legend  []string
}

// Curves returns the solid lines in draw order.
func (f *Figure) Curves() []Line {
	var out []Line
	for _, l := range f.Lines {
		if !l.Dashed {
			out = append(out, l)
		}
	}
	return out
}

// Guides returns the dashed lines in draw order.
func (f *Figure) Guides() []Line {
	var out []Line
	for _, l := range f.Lines {
		if l.Dashed {
			out = append(out, l)
		}
	}
	return out
}

// Renderer builds figures with a fixed Style.
type Renderer struct {
	Style Style
}

// NewRenderer returns a renderer using DefaultStyle.
func NewRenderer() *Renderer {
	return &Renderer{Style: DefaultStyle()}
}

// PlotGraphs renders with the default style.
func PlotGraphs(s1Min, s1Max, s2Min, s2Max float64, br1, br2 payoff.ResponseFunc) *Figure {
	d := payoff.Domain{S1Min: s1Min, S1Max: s1Max, S2Min: s2Min, S2Max: s2Max}
	return NewRenderer().Render(d, br1, br2)
}

// Render computes the figure for d. br1 maps s2 to s1 and br2 maps s1 to s2.
// Each response is drawn as the segment between its values at the domain
// bounds; nonlinear responses are not sampled in between. Degenerate domains
// are drawn as-is.
func (r *Renderer) Render(d payoff.Domain, br1, br2 payoff.ResponseFunc) *Figure {
	st := r.Style
	eps1, eps2 := d.Eps1(), d.Eps2()

	f := &Figure{
		Size:    st.Size,
		DPI:     st.DPI,
		Grid:    st.Grid,
		Caption: st.Caption,
		XLabel:  LabelXAxis,
		YLabel:  LabelYAxis,
		Legend:  []string{LabelBR1, LabelBR2},
	}
	f.Lines = []Line{
		{
			Label: LabelBR1,
			From:  Point{X: d.S2Min, Y: br1(d.S2Min)},
			To:    Point{X: d.S2Max, Y: br1(d.S2Max)},
			Color: st.BR1.Color, Width: st.BR1.Width,
		},
		{
			Label: LabelBR2,
			From:  Point{X: br2(d.S1Min), Y: d.S1Min},
			To:    Point{X: br2(d.S1Max), Y: d.S1Max},
			Color: st.BR2.Color, Width: st.BR2.Width,
		},
		horizontalGuide(d.S1Min, d.S2Min-eps2, d.S2Max+eps2, st.Horizontal),
		horizontalGuide(d.S1Max, d.S2Min-eps2, d.S2Max+eps2, st.Horizontal),
		verticalGuide(d.S2Min, d.S1Min-eps1, d.S1Max+eps1, st.Vertical),
		verticalGuide(d.S2Max, d.S1Min-eps1, d.S1Max+eps1, st.Vertical),
	}
	return f
}

func horizontalGuide(s1, fromS2, toS2 float64, ls LineStyle) Line {
	return Line{
		From: Point{X: fromS2, Y: s1}, To: Point{X: toS2, Y: s1},
		Color: ls.Color, Width: ls.Width, Dashed: true,
	}
}

func verticalGuide(s2, fromS1, toS1 float64, ls LineStyle) Line {
	return Line{
		From: Point{X: s2, Y: fromS1}, To: Point{X: s2, Y: toS1},
		Color: ls.Color, Width: ls.Width, Dashed: true,
	}
}
