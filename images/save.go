package images

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// SavePNG encodes img as a PNG at path, unconditionally overwriting any
// existing file. The image is normalized to NRGBA before encoding so every
// output buffer carries an alpha channel.
func SavePNG(img image.Image, path string) error {
	if img == nil {
		return fmt.Errorf("nil image")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, toNRGBA(img)); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
