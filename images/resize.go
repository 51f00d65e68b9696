package images

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/nfnt/resize"
	xdraw "golang.org/x/image/draw"
)

// ResampleFilter defines the resampling algorithm used for image scaling.
type ResampleFilter int

const (
	// NearestNeighborFilter uses nearest-neighbor interpolation (fastest, lowest quality).
	NearestNeighborFilter ResampleFilter = iota
	// BilinearFilter uses bilinear interpolation (fast, good quality).
	BilinearFilter
	// BicubicFilter uses bicubic interpolation (slower, better quality).
	BicubicFilter
	// LanczosFilter uses Lanczos resampling with a=3 (slowest, best quality).
	LanczosFilter
	// MitchellNetravaliFilter uses the Mitchell-Netravali cubic filter (balanced).
	MitchellNetravaliFilter
	// CatmullRomFilter uses the Catmull-Rom kernel from golang.org/x/image.
	CatmullRomFilter
)

// interpolations maps each filter type to its nfnt/resize interpolation
// function. CatmullRomFilter is handled separately via x/image/draw.
var interpolations = map[ResampleFilter]resize.InterpolationFunction{
	NearestNeighborFilter:   resize.NearestNeighbor,
	BilinearFilter:          resize.Bilinear,
	BicubicFilter:           resize.Bicubic,
	LanczosFilter:           resize.Lanczos3,
	MitchellNetravaliFilter: resize.MitchellNetravali,
}

// ResizeSquare resamples src onto a size x size canvas.
//
// A non-square source is scaled to fit and centered, leaving transparent
// margins; square sources (the normal case for icon masters) fill the canvas
// exactly.
//
// Arguments:
//   - src: The source image.
//   - size: Edge length of the square output in pixels.
//   - filter: The resampling filter to use.
//
// Returns:
//   - image.Image: The resampled square image with an alpha channel.
//   - error: An error for a nil source, non-positive size, or unknown filter.
func ResizeSquare(src image.Image, size int, filter ResampleFilter) (image.Image, error) {
	if src == nil {
		return nil, fmt.Errorf("nil source image")
	}
	if size <= 0 {
		return nil, fmt.Errorf("invalid dimensions: size=%d", size)
	}

	srcBounds := src.Bounds()
	srcW, srcH := srcBounds.Dx(), srcBounds.Dy()
	if srcW <= 0 || srcH <= 0 {
		return nil, fmt.Errorf("empty source image")
	}

	// Fit the source into the square, preserving aspect ratio. The clamp
	// keeps extreme aspect ratios from rounding a dimension down to zero,
	// which nfnt/resize would reinterpret as "derive from aspect".
	newW, newH := size, size
	if srcW > srcH {
		newH = max(1, size*srcH/srcW)
	} else if srcH > srcW {
		newW = max(1, size*srcW/srcH)
	}

	scaled, err := scale(src, newW, newH, filter)
	if err != nil {
		return nil, err
	}

	if newW == size && newH == size {
		return toNRGBA(scaled), nil
	}

	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	offX := (size - newW) / 2
	offY := (size - newH) / 2
	r := image.Rect(offX, offY, offX+newW, offY+newH)
	draw.Draw(dst, r, scaled, scaled.Bounds().Min, draw.Src)
	return dst, nil
}

func scale(src image.Image, w, h int, filter ResampleFilter) (image.Image, error) {
	if filter == CatmullRomFilter {
		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
		return dst, nil
	}
	interp, ok := interpolations[filter]
	if !ok {
		return nil, fmt.Errorf("unsupported resample filter: %d", filter)
	}
	return resize.Resize(uint(w), uint(h), src, interp), nil
}

// toNRGBA normalizes any image to non-premultiplied RGBA so the pipeline
// always works on a buffer with an explicit alpha channel.
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
