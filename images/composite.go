package images

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// ApplyAlphaMask copies the mask's coverage into the image's alpha channel,
// replacing any existing transparency (ImageMagick's CopyOpacity composite).
// Pixel colors are untouched; only alpha changes.
//
// Arguments:
//   - img: The image to mask.
//   - mask: A single-channel mask with the same dimensions as img.
//
// Returns:
//   - *image.NRGBA: The masked image.
//   - error: An error if either input is nil or the dimensions differ.
func ApplyAlphaMask(img image.Image, mask *image.Alpha) (*image.NRGBA, error) {
	if img == nil {
		return nil, fmt.Errorf("nil source image")
	}
	if mask == nil {
		return nil, fmt.Errorf("nil mask")
	}

	b := img.Bounds()
	mb := mask.Bounds()
	if b.Dx() != mb.Dx() || b.Dy() != mb.Dy() {
		return nil, fmt.Errorf("mask dimensions %dx%d do not match image dimensions %dx%d",
			mb.Dx(), mb.Dy(), b.Dx(), b.Dy())
	}

	out := toNRGBA(img)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			i := out.PixOffset(x, y)
			out.Pix[i+3] = mask.AlphaAt(mb.Min.X+x, mb.Min.Y+y).A
		}
	}
	return out, nil
}

// Flatten composites img over an opaque background color, removing all
// transparency. Used for full-bleed icon variants where the host platform
// applies its own corner mask.
func Flatten(img image.Image, bg color.Color) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Over)
	return out
}
