package images

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ImageFormat represents supported image formats
type ImageFormat string

const (
	FormatPNG  ImageFormat = "png"
	FormatJPEG ImageFormat = "jpeg"
)

// formatsByExtension maps source file extensions to their format.
var formatsByExtension = map[string]ImageFormat{
	".png":  FormatPNG,
	".jpg":  FormatJPEG,
	".jpeg": FormatJPEG,
}

// FormatForPath resolves the image format from a file extension.
func FormatForPath(path string) (ImageFormat, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := formatsByExtension[ext]; ok {
		return f, nil
	}
	return "", fmt.Errorf("unsupported file extension: %s. Supported extensions: %v", ext, supportedExtensions())
}

func supportedExtensions() []string {
	exts := make([]string, 0, len(formatsByExtension))
	for ext := range formatsByExtension {
		exts = append(exts, ext)
	}
	return exts
}
