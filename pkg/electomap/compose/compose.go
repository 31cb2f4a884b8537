// Package compose assembles rendered images into captioned frames and
// encodes frame sequences as looping animations. All handoff is in memory;
// nothing here touches disk.
package compose

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Concat pastes images left to right onto a new canvas sized to the total
// width and maximum height. Images are top-aligned; any area below a
// shorter image stays white.
func Concat(images ...image.Image) *image.RGBA {
	totalWidth, maxHeight := 0, 0
	for _, img := range images {
		b := img.Bounds()
		totalWidth += b.Dx()
		if b.Dy() > maxHeight {
			maxHeight = b.Dy()
		}
	}

	canvas := image.NewRGBA(image.Rect(0, 0, totalWidth, maxHeight))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	x := 0
	for _, img := range images {
		b := img.Bounds()
		draw.Draw(canvas, image.Rect(x, 0, x+b.Dx(), b.Dy()), img, b.Min, draw.Src)
		x += b.Dx()
	}
	return canvas
}

// TextStyle enumerates the text options the pipeline uses.
type TextStyle struct {
	Face  font.Face
	Color color.Color
}

// DrawText draws a string onto the image in place, with the top-left corner
// of the text at pos.
func DrawText(img *image.RGBA, pos image.Point, text string, style TextStyle) {
	dc := gg.NewContextForRGBA(img)
	dc.SetFontFace(style.Face)
	dc.SetColor(style.Color)
	// gg anchors at the baseline; ay=1 shifts it down by the text height
	// so pos becomes the top-left corner.
	dc.DrawStringAnchored(text, float64(pos.X), float64(pos.Y), 0, 1)
}
