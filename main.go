package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"strconv"
	"strings"

	"github.com/ideate-app/icongen/icons"
	"github.com/ideate-app/icongen/images"
	"github.com/ideate-app/icongen/mask"
)

const (
	// DefaultOutputDir is where generated assets land unless overridden.
	DefaultOutputDir = "icons-out"
	// DefaultBackground is the flatten color for the full-bleed variant.
	DefaultBackground = "#0f0f0f"
)

func main() {
	var (
		sourcePath string
		outputDir  string
		variant    string
		shape      string
		background string
		writeICNS  bool
		writeICO   bool
		preview    bool
	)
	flag.StringVar(&sourcePath, "source", "", "Path to the source image (.png, .jpg)")
	flag.StringVar(&outputDir, "out", DefaultOutputDir, "Output directory for generated assets")
	flag.StringVar(&variant, "variant", string(icons.VariantMasked), "Icon variant: masked, fullbleed, transparent, light, dark")
	flag.StringVar(&shape, "shape", string(mask.ShapeSuperellipse), "Mask shape for the masked variant: superellipse, rounded")
	flag.StringVar(&background, "background", DefaultBackground, "Flatten background for the fullbleed variant (#rrggbb)")
	flag.BoolVar(&writeICNS, "icns", true, "Pack the size set into icon.icns")
	flag.BoolVar(&writeICO, "ico", false, "Pack a Windows icon.ico")
	flag.BoolVar(&preview, "preview", false, "Write a 256px preview.png")
	flag.Parse()

	cfg, err := buildConfig(sourcePath, outputDir, variant, shape, background)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Generating %s icons into %s...\n", cfg.Variant, cfg.OutputDir)
	written, err := icons.GenerateAll(cfg)
	for _, path := range written {
		fmt.Printf("  - %s\n", path)
	}
	if err != nil {
		log.Fatalf("icon generation failed: %v", err)
	}

	// Packer failures after the size set is written do not roll it back;
	// they are reported and fail the run.
	exitErr := false
	if writeICNS {
		fmt.Printf("Packing %s...\n", icons.ICNSName)
		if err := icons.WriteICNS(cfg.OutputDir, cfg.Filter); err != nil {
			log.Printf("icns packing failed: %v", err)
			exitErr = true
		}
	}
	if writeICO {
		fmt.Printf("Packing %s...\n", icons.ICOName)
		if err := icons.WriteICO(cfg.OutputDir, cfg.Filter); err != nil {
			log.Printf("ico packing failed: %v", err)
			exitErr = true
		}
	}
	if preview {
		path, err := icons.WritePreview(cfg.OutputDir, cfg.Filter)
		if err != nil {
			log.Printf("preview failed: %v", err)
			exitErr = true
		} else {
			fmt.Printf("  - %s\n", path)
		}
	}
	if exitErr {
		log.Fatal("finished with errors")
	}
	fmt.Println("Done! All icons created successfully.")
}

// buildConfig validates the command-line flags and assembles the pipeline
// configuration. All parameter errors are fatal before any output is
// produced.
func buildConfig(sourcePath, outputDir, variant, shape, background string) (icons.Config, error) {
	v, err := icons.ParseVariant(variant)
	if err != nil {
		return icons.Config{}, err
	}
	s, err := mask.ParseShape(shape)
	if err != nil {
		return icons.Config{}, err
	}
	bg, err := parseHexColor(background)
	if err != nil {
		return icons.Config{}, err
	}

	cfg := icons.Config{
		SourcePath: sourcePath,
		OutputDir:  outputDir,
		Variant:    v,
		Shape:      s,
		Background: bg,
		Filter:     images.LanczosFilter,
	}
	if err := cfg.Validate(); err != nil {
		return icons.Config{}, err
	}
	return cfg, nil
}

// parseHexColor parses a #rrggbb color string.
func parseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid background color %q: want #rrggbb", s)
	}
	val, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid background color %q: %v", s, err)
	}
	return color.NRGBA{
		R: uint8(val >> 16),
		G: uint8(val >> 8),
		B: uint8(val),
		A: 255,
	}, nil
}
