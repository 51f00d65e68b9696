package icons

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/jackmordaunt/icns/v3"
	"github.com/pkg/errors"

	"github.com/ideate-app/icongen/images"
)

// ICNSName is the file name of the packed multi-resolution container.
const ICNSName = "icon.icns"

// iconutilPath locates the platform icns packer. Overridable in tests.
var iconutilPath = func() (string, error) {
	return exec.LookPath("iconutil")
}

// WriteICNS packs the PNG set previously generated into dir into
// dir/icon.icns.
//
// The per-resolution files are staged under their required names into a
// temporary .iconset directory and handed to the platform iconutil tool.
// When iconutil is unavailable (any non-macOS host), the pure-Go encoder is
// used over the primary 1024px raster instead. The staging directory is
// removed on success and failure.
//
// Arguments:
//   - dir: The directory holding the generated size set; also receives the
//     container file.
//   - filter: Resampling filter for the 16x16 member, which is derived here
//     rather than being part of the size registry.
//
// Returns:
//   - error: A missing-input error if the primary raster was never
//     generated, or the packer's diagnostic output on a non-zero exit.
func WriteICNS(dir string, filter images.ResampleFilter) error {
	primary, err := images.Load(filepath.Join(dir, string(SizePrimary)))
	if err != nil {
		return errors.Wrap(err, "loading primary icon for icns packing")
	}

	staging, err := os.MkdirTemp(dir, "staging-*.iconset")
	if err != nil {
		return errors.Wrap(err, "creating iconset staging directory")
	}
	defer os.RemoveAll(staging)

	if err := stageIconset(dir, staging, primary, filter); err != nil {
		return err
	}

	out := filepath.Join(dir, ICNSName)
	tool, lookErr := iconutilPath()
	if lookErr == nil {
		cmd := exec.Command(tool, "-c", "icns", staging, "-o", out)
		var stderr bytes.Buffer
		cmd.Stderr = &stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("iconutil failed: %v: %s", err, stderr.String())
		}
		return nil
	}

	f, err := os.Create(out)
	if err != nil {
		return errors.Wrapf(err, "creating %s", out)
	}
	if err := icns.Encode(f, primary); err != nil {
		f.Close()
		return errors.Wrap(err, "encoding icns")
	}
	return f.Close()
}

// stageIconset copies the generated files into staging under the fixed
// per-resolution naming contract and adds the 16x16 member resized from the
// primary raster.
func stageIconset(dir, staging string, primary image.Image, filter images.ResampleFilter) error {
	icon16, err := images.ResizeSquare(primary, 16, filter)
	if err != nil {
		return err
	}
	if err := images.SavePNG(icon16, filepath.Join(staging, "icon_16x16.png")); err != nil {
		return err
	}

	for _, m := range iconsetMappings {
		data, err := os.ReadFile(filepath.Join(dir, string(m.src)))
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return errors.Wrapf(err, "staging %s", m.src)
		}
		if err := os.WriteFile(filepath.Join(staging, m.dst), data, 0o644); err != nil {
			return errors.Wrapf(err, "staging %s", m.dst)
		}
	}
	return nil
}
