package hal

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is the colour of a single LED segment.
type Color = color.RGBA

var (
	Off   = Color{A: 255}
	Green = Color{G: 255, A: 255}
	Red   = Color{R: 255, A: 255}
)

// HSV converts an 8-bit hue/saturation/value triple to RGB. The hue byte
// spans the full circle, so 0 is red, 85 green and 171 blue.
func HSV(h, s, v uint8) Color {
	r, g, b := colorful.Hsv(float64(h)*360/256, float64(s)/255, float64(v)/255).RGB255()
	return Color{R: r, G: g, B: b, A: 255}
}

// IsOff reports whether c emits no light.
func IsOff(c Color) bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}
