package main

import (
	"image"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"

	"github.com/iafilius/BestResponsePlot/cmd/brplot/uihelpers"
)

// showWindow blocks until the user closes the chart window.
func showWindow(title string, img image.Image, figSize int) {
	a := app.New()
	w := a.NewWindow(title)
	ci := canvas.NewImageFromImage(img)
	ci.FillMode = canvas.ImageFillContain
	ci.SetMinSize(fyne.NewSize(float32(figSize), float32(figSize)))
	w.SetContent(ci)
	ww, wh := uihelpers.ComputeWindowSize(figSize)
	w.Resize(fyne.NewSize(float32(ww), float32(wh)))
	w.ShowAndRun()
}
