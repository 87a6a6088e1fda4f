package render

// Backend is the drawing surface a Figure is replayed onto.
type Backend interface {
	EnableGrid()
	DrawSegment(label string, from, to Point, color string, width float64)
	DrawDashed(from, to Point, color string, width float64)
	SetAxisLabels(x, y string)
	SetLegend(labels []string)
}

// Draw replays f onto b in figure order.
func (f *Figure) Draw(b Backend) {
	if f.Grid {
		b.EnableGrid()
	}
	for _, l := range f.Lines {
		if l.Dashed {
			b.DrawDashed(l.From, l.To, l.Color, l.Width)
			continue
		}
		b.DrawSegment(l.Label, l.From, l.To, l.Color, l.Width)
	}
	b.SetAxisLabels(f.XLabel, f.YLabel)
	b.SetLegend(f.Legend)
}
