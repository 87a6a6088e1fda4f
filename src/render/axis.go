package render

import (
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
)

// axisPadFrac pads each axis by twice the guide margin (span/30) so the guide
// ends stand clear of the plot frame.
const axisPadFrac = 2.0 / 30

var tickSteps = []float64{1, 2, 2.5, 5, 10}

// niceStep picks the 1/2/2.5/5/10 step that splits span into about n ticks.
func niceStep(span float64, n int) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	best, bestScore := mag, math.MaxFloat64
	for _, c := range tickSteps {
		step := c * mag
		count := math.Max(2, math.Ceil(span/step))
		if score := math.Abs(count - float64(n)); score < bestScore {
			best, bestScore = step, score
		}
	}
	return best
}

// axisRange pads [min,max] by axisPadFrac of the span and snaps both ends
// outward onto the tick step for n ticks. An empty or inverted span becomes
// one unit wide.
func axisRange(min, max float64, n int) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return min, max
	}
	if max <= min {
		min, max = min-0.5, min+0.5
	}
	pad := (max - min) * axisPadFrac
	a, b := min-pad, max+pad
	step := niceStep(b-a, n)
	return math.Floor(a/step) * step, math.Ceil(b/step) * step
}

// niceTicks generates up to n+3 tick marks inside [min, max].
func niceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	step := niceStep(max-min, n)
	start := math.Ceil(min/step-1e-9) * step
	tol := step * 1e-6
	ticks := []chart.Tick{}
	for i := 0; ; i++ {
		v := start + float64(i)*step
		if v > max+tol || len(ticks) > n+2 {
			break
		}
		if math.Abs(v) < tol {
			v = 0
		}
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
	}
	return ticks
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

// bounds is the bounding box of every endpoint. ok is false when there are no lines.
func bounds(lines []Line) (minX, maxX, minY, maxY float64, ok bool) {
	minX, minY = math.MaxFloat64, math.MaxFloat64
	maxX, maxY = -math.MaxFloat64, -math.MaxFloat64
	for _, l := range lines {
		for _, p := range []Point{l.From, l.To} {
			minX = math.Min(minX, p.X)
			maxX = math.Max(maxX, p.X)
			minY = math.Min(minY, p.Y)
			maxY = math.Max(maxY, p.Y)
		}
	}
	return minX, maxX, minY, maxY, len(lines) > 0
}
