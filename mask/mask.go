// Package mask generates the rounded-rectangle ("squircle") alpha masks
// applied to icon rasters. Two interchangeable geometries are provided: an
// exact superellipse membership test evaluated per pixel, and a cheaper
// vector-drawn rounded rectangle with anti-aliased quarter-circle corners.
package mask

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

const (
	// DefaultExponent is the superellipse exponent. n=5 approximates the
	// macOS continuous-corner curve.
	DefaultExponent = 5.0
	// CornerRadiusPercent is the rounded-rectangle corner radius as a
	// fraction of the body size (22.5% of body = 45% of half-body).
	CornerRadiusPercent = 0.225
)

// Shape selects the mask geometry.
type Shape string

const (
	// ShapeSuperellipse uses the per-pixel superellipse membership test.
	ShapeSuperellipse Shape = "superellipse"
	// ShapeRounded uses a vector-drawn rounded rectangle.
	ShapeRounded Shape = "rounded"
)

// ParseShape validates a shape name from user input.
func ParseShape(s string) (Shape, error) {
	switch Shape(s) {
	case ShapeSuperellipse, ShapeRounded:
		return Shape(s), nil
	}
	return "", fmt.Errorf("unknown mask shape: %q (supported: %s, %s)", s, ShapeSuperellipse, ShapeRounded)
}

// validateSizes fails fast on non-positive or inconsistent dimensions.
func validateSizes(canvas, body int) error {
	if canvas <= 0 {
		return fmt.Errorf("invalid canvas size: %d", canvas)
	}
	if body <= 0 {
		return fmt.Errorf("invalid body size: %d", body)
	}
	if body > canvas {
		return fmt.Errorf("body size %d exceeds canvas size %d", body, canvas)
	}
	return nil
}

// InsideSuperellipse reports whether pixel (x, y) lies within the
// superellipse of the given body size centered on a canvas x canvas grid.
//
// The pixel's center (x+0.5, y+0.5) is normalized to [-1, 1] relative to
// half the body size; a pixel is inside when |x|^n + |y|^n <= 1. Sampling
// at pixel centers keeps the canvas center inside for every odd or even
// canvas size. Pure function of its inputs.
func InsideSuperellipse(x, y, canvas, body int, exponent float64) bool {
	half := float64(body) / 2
	c := float64(canvas) / 2
	nx := (float64(x) + 0.5 - c) / half
	ny := (float64(y) + 0.5 - c) / half
	return math.Pow(math.Abs(nx), exponent)+math.Pow(math.Abs(ny), exponent) <= 1.0
}

// Superellipse renders a binary superellipse mask.
//
// Arguments:
//   - canvas: Edge length of the square mask in pixels.
//   - body: Edge length of the icon body; the margin (canvas-body)/2 stays
//     transparent on every side.
//
// Returns:
//   - *image.Alpha: The mask; 255 inside the superellipse, 0 outside.
//   - error: An error for non-positive sizes or body > canvas.
//
// The output is deterministic: identical parameters always yield
// byte-identical masks.
func Superellipse(canvas, body int) (*image.Alpha, error) {
	if err := validateSizes(canvas, body); err != nil {
		return nil, err
	}

	m := image.NewAlpha(image.Rect(0, 0, canvas, canvas))
	for y := 0; y < canvas; y++ {
		for x := 0; x < canvas; x++ {
			if InsideSuperellipse(x, y, canvas, body, DefaultExponent) {
				m.SetAlpha(x, y, color.Alpha{A: 255})
			}
		}
	}
	return m, nil
}

// RoundedRect renders a rounded-rectangle mask with anti-aliased corners.
// The corner curve is a true quarter circle rather than a continuous
// superellipse; sufficient when the consuming platform re-applies its own
// corner mask.
func RoundedRect(canvas, body int) (*image.Alpha, error) {
	if err := validateSizes(canvas, body); err != nil {
		return nil, err
	}

	margin := float64(canvas-body) / 2
	radius := float64(body) * CornerRadiusPercent

	dc := gg.NewContext(canvas, canvas)
	dc.SetRGB(1, 1, 1)
	dc.DrawRoundedRectangle(margin, margin, float64(body), float64(body), radius)
	dc.Fill()

	src := dc.Image()
	m := image.NewAlpha(image.Rect(0, 0, canvas, canvas))
	for y := 0; y < canvas; y++ {
		for x := 0; x < canvas; x++ {
			_, _, _, a := src.At(x, y).RGBA()
			m.SetAlpha(x, y, color.Alpha{A: uint8(a >> 8)})
		}
	}
	return m, nil
}

// Generate dispatches to the mask geometry selected by shape.
func Generate(shape Shape, canvas, body int) (*image.Alpha, error) {
	switch shape {
	case ShapeSuperellipse:
		return Superellipse(canvas, body)
	case ShapeRounded:
		return RoundedRect(canvas, body)
	}
	return nil, fmt.Errorf("unknown mask shape: %q", shape)
}
