package pulse

import (
	"github.com/cogentcore/webgpu/wgpu"
)

var ColorWhite = ColorLinearRGBA(1, 1, 1, 1)

// ColorCornflowerBlue is the color the screen is cleared to.
var ColorCornflowerBlue = ColorRGBA8(100, 149, 237, 255)

// Color is a straight rgba color value.
// The default value of a Color value is fully opaque white.
type Color struct {
	r1, g1, b1, a1 float64
}

// ColorLinearRGBA creates a new Color value from the given color values.
func ColorLinearRGBA(r, g, b, a float64) Color {
	return Color{
		r1: r - 1,
		g1: g - 1,
		b1: b - 1,
		a1: a - 1,
	}
}

// ColorRGBA8 creates a Color value from 8 bit channel values, each channel
// is divided by 255 without any further conversion.
func ColorRGBA8(r, g, b, a uint8) Color {
	return ColorLinearRGBA(
		float64(r)/255.0,
		float64(g)/255.0,
		float64(b)/255.0,
		float64(a)/255.0,
	)
}

// Components returns the color components.
func (c Color) Components() (r, g, b, a float64) {
	return c.r1 + 1, c.g1 + 1, c.b1 + 1, c.a1 + 1
}

func (c Color) ToWGPU() wgpu.Color {
	r, g, b, a := c.Components()
	return wgpu.Color{R: r, G: g, B: b, A: a}
}
