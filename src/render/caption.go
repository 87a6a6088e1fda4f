package render

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// CaptionBand is the bottom padding, in pixels, reserved under the x axis
// when a figure carries a caption.
const CaptionBand = 20

var captionColor = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}

// DrawCaption writes text centred in the bottom band rows of img. Text wider
// than the image is cut and ends in "...". A blank caption or a band too thin
// for the font returns img unchanged.
func DrawCaption(img image.Image, text string, band int) image.Image {
	text = strings.TrimSpace(text)
	face := basicfont.Face7x13
	if img == nil || text == "" || band < face.Height {
		return img
	}
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, img, bounds.Min, draw.Src)

	d := &font.Drawer{Dst: out, Src: image.NewUniform(captionColor), Face: face}
	text = fitText(d, text, bounds.Dx()-2*captionMargin)
	w := d.MeasureString(text).Ceil()
	x := bounds.Min.X + (bounds.Dx()-w)/2
	// Baseline sits so the glyph box is vertically centred in the band.
	y := bounds.Max.Y - (band-face.Height)/2 - face.Descent
	d.Dot = fixed.P(x, y)
	d.DrawString(text)
	return out
}

const captionMargin = 4

// fitText trims text until it measures at most maxW pixels.
func fitText(d *font.Drawer, text string, maxW int) string {
	if d.MeasureString(text).Ceil() <= maxW {
		return text
	}
	runes := []rune(text)
	for n := len(runes) - 1; n > 0; n-- {
		s := strings.TrimRight(string(runes[:n]), " ") + "..."
		if d.MeasureString(s).Ceil() <= maxW {
			return s
		}
	}
	return ""
}
