package icons

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"

	"github.com/ideate-app/icongen/mask"
)

// Variant selects the treatment applied to every generated size.
type Variant string

const (
	// VariantMasked pre-bakes the squircle into the shipped icon.
	VariantMasked Variant = "masked"
	// VariantFullBleed flattens the source onto a solid background and ships
	// an unmasked square; the host platform clips its own corners.
	VariantFullBleed Variant = "fullbleed"
	// VariantTransparent draws the spark logo on a transparent background.
	VariantTransparent Variant = "transparent"
	// VariantLight draws the spark logo on a white squircle.
	VariantLight Variant = "light"
	// VariantDark draws the spark logo on a dark squircle.
	VariantDark Variant = "dark"
)

// ParseVariant validates a variant name from user input.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case VariantMasked, VariantFullBleed, VariantTransparent, VariantLight, VariantDark:
		return Variant(s), nil
	}
	return "", fmt.Errorf("unknown variant: %q (supported: %s, %s, %s, %s, %s)",
		s, VariantMasked, VariantFullBleed, VariantTransparent, VariantLight, VariantDark)
}

// usesSource reports whether the variant reads a source image file. The
// spark variants render their base programmatically.
func (v Variant) usesSource() bool {
	return v == VariantMasked || v == VariantFullBleed
}

// Base canvas geometry for the rendered spark variants. The 824px body on a
// 1024px canvas leaves a 100px margin on each side.
const (
	CanvasSize = 1024
	BodySize   = 824
)

// Brand colors for the rendered spark variants.
var (
	sparkGreen = color.NRGBA{R: 34, G: 197, B: 94, A: 255}
	lightBG    = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	darkBG     = color.NRGBA{R: 26, G: 26, B: 26, A: 255}
	// FullBleedBG is the default flatten background for the full-bleed variant.
	FullBleedBG = color.NRGBA{R: 15, G: 15, B: 15, A: 255}
)

// RenderBase draws the 1024x1024 spark logo base image for a rendered
// variant: three four-point stars, optionally over a light or dark squircle
// body.
func RenderBase(v Variant) (*image.NRGBA, error) {
	dc := gg.NewContext(CanvasSize, CanvasSize)

	switch v {
	case VariantTransparent:
		// Sparks only; no squircle body.
	case VariantLight, VariantDark:
		bg := lightBG
		if v == VariantDark {
			bg = darkBG
		}
		margin := float64(CanvasSize-BodySize) / 2
		radius := float64(BodySize) * mask.CornerRadiusPercent
		dc.SetColor(bg)
		dc.DrawRoundedRectangle(margin, margin, BodySize, BodySize, radius)
		dc.Fill()
	default:
		return nil, fmt.Errorf("variant %q has no rendered base", v)
	}

	cx := float64(CanvasSize) / 2
	cy := float64(CanvasSize) / 2
	drawSparks(dc, cx, cy, 1.0)

	out := image.NewNRGBA(image.Rect(0, 0, CanvasSize, CanvasSize))
	draw.Draw(out, out.Bounds(), dc.Image(), image.Point{}, draw.Src)
	return out, nil
}

// drawSparks draws the three-spark logo centered at (cx, cy): one large
// spark bottom-left, a medium spark top-right, and a small spark
// bottom-right.
func drawSparks(dc *gg.Context, cx, cy, scale float64) {
	drawFourPointStar(dc, cx-80*scale, cy+20*scale, 180*scale)
	drawFourPointStar(dc, cx+140*scale, cy-120*scale, 90*scale)
	drawFourPointStar(dc, cx+120*scale, cy+120*scale, 60*scale)
}

// drawFourPointStar draws a single four-pointed star (spark) of the given
// half-diagonal size centered at (x, y). The waist sits at 30% of the size,
// giving the pinched star silhouette.
func drawFourPointStar(dc *gg.Context, x, y, size float64) {
	waist := size * 0.3
	dc.NewSubPath()
	dc.MoveTo(x, y-size)
	dc.LineTo(x+waist, y-waist)
	dc.LineTo(x+size, y)
	dc.LineTo(x+waist, y+waist)
	dc.LineTo(x, y+size)
	dc.LineTo(x-waist, y+waist)
	dc.LineTo(x-size, y)
	dc.LineTo(x-waist, y-waist)
	dc.ClosePath()
	dc.SetColor(sparkGreen)
	dc.Fill()
}
