// Package icons implements the icon asset pipeline: a fixed registry of
// output sizes, the variant treatments applied to each size, and the packed
// multi-resolution container outputs (.icns and .ico).
package icons

// SizeName identifies one output raster in the icon set. The name is also
// the output file name, following the Tauri/macOS packaging convention.
type SizeName string

// Defines the unique name for each required output raster.
const (
	Size32x32       SizeName = "32x32.png"
	Size128x128     SizeName = "128x128.png"
	Size128x128At2x SizeName = "128x128@2x.png"
	Size256x256     SizeName = "256x256.png"
	Size256x256At2x SizeName = "256x256@2x.png"
	Size512x512     SizeName = "512x512.png"
	Size512x512At2x SizeName = "512x512@2x.png"
	SizePrimary     SizeName = "icon.png"
)

// Size describes one required output raster.
type Size struct {
	// Name is the output file name.
	Name SizeName `json:"name"`
	// Pixels is the edge length of the square output.
	Pixels int `json:"pixels"`
}

// sizes lists every required output in generation order, smallest first.
// Every entry is square; no output depends on another output.
var sizes = []Size{
	{Name: Size32x32, Pixels: 32},
	{Name: Size128x128, Pixels: 128},
	{Name: Size128x128At2x, Pixels: 256},
	{Name: Size256x256, Pixels: 256},
	{Name: Size256x256At2x, Pixels: 512},
	{Name: Size512x512, Pixels: 512},
	{Name: Size512x512At2x, Pixels: 1024},
	{Name: SizePrimary, Pixels: 1024},
}

// AllSizes returns every required output size in generation order.
func AllSizes() []Size {
	out := make([]Size, len(sizes))
	copy(out, sizes)
	return out
}

// SizeByName retrieves a specific size by its output file name.
// It returns the Size and true if found, otherwise an empty Size and false.
func SizeByName(name SizeName) (Size, bool) {
	for _, s := range sizes {
		if s.Name == name {
			return s, true
		}
	}
	return Size{}, false
}

// iconsetMappings maps generated output files to the per-resolution file
// names the icns packer requires inside its staging directory. The 16x16
// member is not in the size registry and is resized at staging time.
var iconsetMappings = []struct {
	src SizeName
	dst string
}{
	{Size32x32, "icon_16x16@2x.png"},
	{Size32x32, "icon_32x32.png"},
	{Size128x128, "icon_64x64@2x.png"},
	{Size128x128, "icon_128x128.png"},
	{Size128x128At2x, "icon_128x128@2x.png"},
	{Size256x256, "icon_256x256.png"},
	{Size256x256At2x, "icon_256x256@2x.png"},
	{Size512x512, "icon_512x512.png"},
	{Size512x512At2x, "icon_512x512@2x.png"},
}
