package compose

import (
	"errors"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"time"
)

// ErrNoFrames indicates an animation was requested with an empty frame list.
var ErrNoFrames = errors.New("no frames to encode")

// EncodeGIF writes the frames as a looping GIF, each displayed for delay.
// Frame order is preserved exactly. Frames are quantized to the Plan 9
// palette with Floyd-Steinberg dithering.
func EncodeGIF(w io.Writer, frames []image.Image, delay time.Duration) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}

	out := &gif.GIF{LoopCount: 0}
	hundredths := int(delay / (10 * time.Millisecond))
	for _, frame := range frames {
		b := frame.Bounds()
		paletted := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), palette.Plan9)
		draw.FloydSteinberg.Draw(paletted, paletted.Bounds(), frame, b.Min)
		out.Image = append(out.Image, paletted)
		out.Delay = append(out.Delay, hundredths)
	}
	return gif.EncodeAll(w, out)
}
