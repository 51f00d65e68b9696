package icons

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/ideate-app/icongen/images"
	"github.com/ideate-app/icongen/mask"
)

// PreviewName is the file name of the optional 256px preview output.
const PreviewName = "preview.png"

// PreviewSize is the edge length of the preview raster.
const PreviewSize = 256

// Config holds the pipeline configuration for one generation run.
type Config struct {
	// SourcePath is the source image file. Required for the masked and
	// fullbleed variants; ignored by the rendered spark variants.
	SourcePath string
	// OutputDir receives the generated files. Created if absent.
	OutputDir string
	// Variant selects the per-size treatment.
	Variant Variant
	// Shape selects the mask geometry for the masked variant.
	Shape mask.Shape
	// Background is the flatten color for the fullbleed variant.
	// Defaults to FullBleedBG when nil.
	Background color.Color
	// Filter is the resampling filter for all resizes.
	Filter images.ResampleFilter
}

// Validate fails fast on invalid parameters before any output is produced.
func (c *Config) Validate() error {
	if _, err := ParseVariant(string(c.Variant)); err != nil {
		return err
	}
	if c.Variant == VariantMasked {
		if _, err := mask.ParseShape(string(c.Shape)); err != nil {
			return err
		}
	}
	if c.Variant.usesSource() && c.SourcePath == "" {
		return fmt.Errorf("source path is required for variant %q", c.Variant)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	return nil
}

func (c *Config) background() color.Color {
	if c.Background == nil {
		return FullBleedBG
	}
	return c.Background
}

// GenerateAll runs the pipeline: it loads or renders the base image, then
// produces every size in the registry independently from that base.
//
// Fails closed on a missing source: no output file is written unless the
// base image is available. A failure partway through the size loop leaves
// the already written files in place (partial output is accepted, not
// rolled back) and is reported alongside them.
//
// Arguments:
//   - cfg: The validated pipeline configuration.
//
// Returns:
//   - []string: Paths of the files written, in generation order.
//   - error: The first fatal error encountered.
func GenerateAll(cfg Config) ([]string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base, err := loadBase(cfg)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating output directory %s", cfg.OutputDir)
	}

	var written []string
	for _, sz := range AllSizes() {
		img, err := renderSize(base, sz.Pixels, cfg)
		if err != nil {
			return written, errors.Wrapf(err, "generating %s", sz.Name)
		}
		path := filepath.Join(cfg.OutputDir, string(sz.Name))
		if err := images.SavePNG(img, path); err != nil {
			return written, errors.Wrapf(err, "writing %s", sz.Name)
		}
		written = append(written, path)
	}
	return written, nil
}

// loadBase resolves the base 1024-class image for the configured variant:
// the decoded source file, or the programmatically rendered spark logo.
func loadBase(cfg Config) (image.Image, error) {
	if cfg.Variant.usesSource() {
		base, err := images.Load(cfg.SourcePath)
		if err != nil {
			return nil, err
		}
		return base, nil
	}
	return RenderBase(cfg.Variant)
}

// renderSize produces one output raster from the base image. Each size is
// computed independently; nothing is shared across sizes except the
// read-only base.
func renderSize(base image.Image, pixels int, cfg Config) (image.Image, error) {
	switch cfg.Variant {
	case VariantFullBleed:
		// Flatten first, then resample, matching the full-bleed policy of
		// shipping an opaque square for the OS to clip.
		return images.ResizeSquare(images.Flatten(base, cfg.background()), pixels, cfg.Filter)
	case VariantMasked:
		resized, err := images.ResizeSquare(base, pixels, cfg.Filter)
		if err != nil {
			return nil, err
		}
		// The pre-baked squircle spans the full canvas at every size.
		m, err := mask.Generate(cfg.Shape, pixels, pixels)
		if err != nil {
			return nil, err
		}
		return images.ApplyAlphaMask(resized, m)
	default:
		// Spark variants carry their treatment in the rendered base.
		return images.ResizeSquare(base, pixels, cfg.Filter)
	}
}

// WritePreview writes a 256px preview of the generated primary icon into
// dir, for display in settings UIs. Requires GenerateAll to have run.
func WritePreview(dir string, filter images.ResampleFilter) (string, error) {
	base, err := images.Load(filepath.Join(dir, string(SizePrimary)))
	if err != nil {
		return "", errors.Wrap(err, "loading primary icon for preview")
	}
	preview, err := images.ResizeSquare(base, PreviewSize, filter)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, PreviewName)
	if err := images.SavePNG(preview, path); err != nil {
		return "", err
	}
	return path, nil
}
