package images

import (
	"crypto/md5"
	"fmt"
	"image"
)

// Checksum generates a deterministic checksum for an image to verify
// idempotency.
//
// Arguments:
// - img: The image to compute a checksum for.
//
// Returns:
// - A hex-encoded MD5 checksum string over the raw pixel data.
//
// Example:
//
// ```go
//
//	sum := Checksum(mask)
//	fmt.Printf("Mask checksum: %s\n", sum)
//
// ```
func Checksum(img image.Image) string {
	if img == nil || img.Bounds().Empty() {
		return "empty"
	}

	hash := md5.New()
	switch v := img.(type) {
	case *image.NRGBA:
		hash.Write(v.Pix)
	case *image.RGBA:
		hash.Write(v.Pix)
	case *image.Alpha:
		hash.Write(v.Pix)
	case *image.Gray:
		hash.Write(v.Pix)
	default:
		hash.Write(toNRGBA(img).Pix)
	}
	return fmt.Sprintf("%x", hash.Sum(nil))
}
