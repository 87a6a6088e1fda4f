package render

// Legend and axis labels.
const (
	LabelBR1   = "BR1(s2)"
	LabelBR2   = "BR2(s1)"
	LabelXAxis = "s2"
	LabelYAxis = "s1"
)

// LineStyle is the stroke used for one line. Color is a 6-digit hex RGB string.
type LineStyle struct {
	Color string  `yaml:"color"`
	Width float64 `yaml:"width"`
}

// Style controls every visual choice the renderer makes.
type Style struct {
	BR1        LineStyle `yaml:"br1"`
	BR2        LineStyle `yaml:"br2"`
	Horizontal LineStyle `yaml:"horizontal"`
	Vertical   LineStyle `yaml:"vertical"`

	// Size is the edge of the square figure in pixels.
	Size int     `yaml:"size"`
	DPI  float64 `yaml:"dpi"`
	Grid bool    `yaml:"grid"`

	// Caption is printed under the chart in PNG output; empty for none.
	Caption string `yaml:"caption"`
}

// DefaultStyle: cyan/magenta curves over blue horizontal and red vertical
// dashed guides on a 5in square at 100 DPI.
func DefaultStyle() Style {
	return Style{
		BR1:        LineStyle{Color: "00ffff", Width: 1.7},
		BR2:        LineStyle{Color: "ff00ff", Width: 1.7},
		Horizontal: LineStyle{Color: "0000ff", Width: 1},
		Vertical:   LineStyle{Color: "ff0000", Width: 1},
		Size:       500,
		DPI:        100,
		Grid:       true,
	}
}
