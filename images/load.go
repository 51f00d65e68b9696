// Package images provides the raster primitives for the icon pipeline:
// loading, high-quality resampling, alpha-mask compositing, flattening,
// and PNG output.
package images

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
)

// ErrSourceMissing reports that the source image file does not exist.
// Callers must abort before producing any output when this is returned.
var ErrSourceMissing = errors.New("source image not found")

// Load reads and decodes the source raster at path.
//
// Arguments:
//   - path: Path to the source image file.
//
// Returns:
//   - image.Image: The decoded image, orientation-corrected.
//   - error: ErrSourceMissing (wrapped) if the file does not exist, or a
//     decode/validation error otherwise.
func Load(path string) (image.Image, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrSourceMissing, path)
	}

	if _, err := FormatForPath(path); err != nil {
		return nil, err
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}
