package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// RGBFrame is a packed 8-bit RGB framebuffer with row 0 at the top.
// It implements image.Image so it can be passed straight to the standard encoders.
type RGBFrame struct {
	Width  int
	Height int
	Pix    []uint8 // 3 bytes per pixel, row-major
}

// NewRGBFrame allocates a black frame
func NewRGBFrame(width, height int) *RGBFrame {
	return &RGBFrame{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// PixOffset returns the index of the red byte of pixel (x, y)
func (f *RGBFrame) PixOffset(x, y int) int {
	return (y*f.Width + x) * 3
}

// SetRGB stores a pixel. Distinct workers may write distinct rows concurrently.
func (f *RGBFrame) SetRGB(x, y int, r, g, b uint8) {
	i := f.PixOffset(x, y)
	f.Pix[i] = r
	f.Pix[i+1] = g
	f.Pix[i+2] = b
}

// RGB returns the stored pixel
func (f *RGBFrame) RGB(x, y int) (r, g, b uint8) {
	i := f.PixOffset(x, y)
	return f.Pix[i], f.Pix[i+1], f.Pix[i+2]
}

// ColorModel implements image.Image
func (f *RGBFrame) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image
func (f *RGBFrame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.Width, f.Height)
}

// At implements image.Image
func (f *RGBFrame) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(f.Bounds())) {
		return color.RGBA{}
	}
	r, g, b := f.RGB(x, y)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// WriteColor averages a summed pixel color over samples, gamma corrects it and writes it to (x, y)
func (f *RGBFrame) WriteColor(x, y int, pixelColor core.Vec3, samples int) {
	r, g, b := ColorToRGB(pixelColor, samples)
	f.SetRGB(x, y, r, g, b)
}

// ColorToRGB converts a sum of samples into 8-bit channels: average, gamma 2 (square root),
// clamp to [0, 0.999] and scale by 256.
func ColorToRGB(pixelColor core.Vec3, samples int) (r, g, b uint8) {
	c := pixelColor.Multiply(1.0 / float64(samples)).Clamp(0, 1).Sqrt().Clamp(0, 0.999)
	return toByte(c.X), toByte(c.Y), toByte(c.Z)
}

func toByte(v float64) uint8 {
	// NaN contributions collapse to black
	if math.IsNaN(v) {
		return 0
	}
	return uint8(256 * v)
}
