package icons

import (
	"image"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	ico "github.com/sergeymakinen/go-ico"

	"github.com/ideate-app/icongen/images"
)

// ICOName is the file name of the Windows icon container.
const ICOName = "icon.ico"

// icoSizes are the resolutions embedded in the Windows icon.
var icoSizes = []int{16, 24, 32, 48, 64, 128, 256}

// WriteICO encodes a multi-resolution icon.ico from the generated primary
// raster. Requires GenerateAll to have run.
func WriteICO(dir string, filter images.ResampleFilter) error {
	primary, err := images.Load(filepath.Join(dir, string(SizePrimary)))
	if err != nil {
		return errors.Wrap(err, "loading primary icon for ico packing")
	}

	imgs := make([]image.Image, 0, len(icoSizes))
	for _, size := range icoSizes {
		resized, err := images.ResizeSquare(primary, size, filter)
		if err != nil {
			return err
		}
		imgs = append(imgs, resized)
	}

	out := filepath.Join(dir, ICOName)
	f, err := os.Create(out)
	if err != nil {
		return errors.Wrapf(err, "creating %s", out)
	}
	if err := ico.EncodeAll(f, imgs); err != nil {
		f.Close()
		return errors.Wrap(err, "encoding ico")
	}
	return f.Close()
}
