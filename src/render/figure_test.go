package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iafilius/BestResponsePlot/src/payoff"
)

func br1(s2 float64) float64 { return (1 + s2) / 2 }
func br2(s1 float64) float64 { return (3 + s1) / 2 }

// squared makes the straight-segment approximation visible: only endpoints are evaluated.
func squared(v float64) float64 { return v * v }

func defaultFigure() *Figure {
	return PlotGraphs(payoff.S1Min, payoff.S1Max, payoff.S2Min, payoff.S2Max, br1, br2)
}

func TestRenderLineCounts(t *testing.T) {
	f := defaultFigure()
	require.Len(t, f.Lines, 6)
	assert.Len(t, f.Curves(), 2)
	assert.Len(t, f.Guides(), 4)
	assert.Equal(t, []string{"BR1(s2)", "BR2(s1)"}, f.Legend)
	assert.Equal(t, "s2", f.XLabel)
	assert.Equal(t, "s1", f.YLabel)
	assert.True(t, f.Grid)
	assert.Equal(t, 500, f.Size)
	assert.Empty(t, f.Caption)
}

func TestRenderCurveEndpointsExact(t *testing.T) {
	d := payoff.DefaultDomain()
	c := NewRenderer().Render(d, squared, math.Sqrt).Curves()
	require.Equal(t, LabelBR1, c[0].Label)
	require.Equal(t, LabelBR2, c[1].Label)
	assert.Equal(t, Point{X: d.S2Min, Y: squared(d.S2Min)}, c[0].From)
	assert.Equal(t, Point{X: d.S2Max, Y: squared(d.S2Max)}, c[0].To)
	assert.Equal(t, Point{X: math.Sqrt(d.S1Min), Y: d.S1Min}, c[1].From)
	assert.Equal(t, Point{X: math.Sqrt(d.S1Max), Y: d.S1Max}, c[1].To)
}

func TestRenderGuides(t *testing.T) {
	d := payoff.DefaultDomain()
	eps1, eps2 := d.Eps1(), d.Eps2()
	g := NewRenderer().Render(d, br1, br2).Guides()
	want := []struct{ from, to Point }{
		{Point{d.S2Min - eps2, d.S1Min}, Point{d.S2Max + eps2, d.S1Min}},
		{Point{d.S2Min - eps2, d.S1Max}, Point{d.S2Max + eps2, d.S1Max}},
		{Point{d.S2Min, d.S1Min - eps1}, Point{d.S2Min, d.S1Max + eps1}},
		{Point{d.S2Max, d.S1Min - eps1}, Point{d.S2Max, d.S1Max + eps1}},
	}
	for i, w := range want {
		assert.Equal(t, w.from, g[i].From, "guide %d from", i)
		assert.Equal(t, w.to, g[i].To, "guide %d to", i)
		assert.Empty(t, g[i].Label, "guide %d label", i)
	}
	st := DefaultStyle()
	assert.Equal(t, st.Horizontal.Color, g[0].Color)
	assert.Equal(t, st.Horizontal.Color, g[1].Color)
	assert.Equal(t, st.Vertical.Color, g[2].Color)
	assert.Equal(t, st.Vertical.Color, g[3].Color)
	assert.NotEqual(t, st.Horizontal.Color, st.Vertical.Color)
	for i, l := range g {
		assert.Less(t, l.Width, st.BR1.Width, "guide %d thinner than curves", i)
	}
}

func TestRenderIdempotent(t *testing.T) {
	a, b := defaultFigure(), defaultFigure()
	require.NotSame(t, a, b, "each call builds a fresh figure")
	assert.Equal(t, a, b)
}

func TestRenderDegenerateDomainIsSilent(t *testing.T) {
	g := PlotGraphs(1, 1, 2, 0, br1, br2).Guides()
	require.Len(t, g, 4)
	assert.Greater(t, g[0].From.X, g[0].To.X, "inverted s2 axis reverses the horizontal guide")
	assert.Equal(t, g[2].From.Y, g[2].To.Y, "flat s1 axis collapses the vertical guide")
}

func TestRenderCarriesCaption(t *testing.T) {
	r := NewRenderer()
	r.Style.Caption = payoff.Formulas
	assert.Equal(t, payoff.Formulas, r.Render(payoff.DefaultDomain(), br1, br2).Caption)
}

type call struct {
	kind   string
	label  string
	labels []string
}

type recorder struct {
	calls []call
}

func (r *recorder) EnableGrid() { r.calls = append(r.calls, call{kind: "grid"}) }
func (r *recorder) DrawSegment(label string, from, to Point, color string, width float64) {
	r.calls = append(r.calls, call{kind: "segment", label: label})
}
func (r *recorder) DrawDashed(from, to Point, color string, width float64) {
	r.calls = append(r.calls, call{kind: "dashed"})
}
func (r *recorder) SetAxisLabels(x, y string) {
	r.calls = append(r.calls, call{kind: "axes", labels: []string{x, y}})
}
func (r *recorder) SetLegend(labels []string) {
	r.calls = append(r.calls, call{kind: "legend", labels: labels})
}

func (r *recorder) kinds() []string {
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.kind
	}
	return out
}

func TestDrawReplaysInOrder(t *testing.T) {
	rec := &recorder{}
	defaultFigure().Draw(rec)
	require.Equal(t, []string{"grid", "segment", "segment", "dashed", "dashed", "dashed", "dashed", "axes", "legend"}, rec.kinds())
	assert.Equal(t, LabelBR1, rec.calls[1].label)
	assert.Equal(t, LabelBR2, rec.calls[2].label)
	assert.Equal(t, []string{"s2", "s1"}, rec.calls[7].labels)
	assert.Equal(t, []string{LabelBR1, LabelBR2}, rec.calls[8].labels)
}

func TestDrawSkipsGridWhenDisabled(t *testing.T) {
	r := NewRenderer()
	r.Style.Grid = false
	rec := &recorder{}
	r.Render(payoff.DefaultDomain(), br1, br2).Draw(rec)
	assert.NotContains(t, rec.kinds(), "grid")
}
