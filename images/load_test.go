package images

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingSource(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.png"))
	require.Error(t, err, "Load should fail for a missing file")
	assert.ErrorIs(t, err, ErrSourceMissing, "missing files map to ErrSourceMissing")
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "source.bmp")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := Load(path)
	require.Error(t, err, "Load should reject unsupported extensions")
	assert.NotErrorIs(t, err, ErrSourceMissing, "an existing file is not a missing-input error")
}

func TestLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "source.png")

	src := getTestImage(64, 64)
	require.NoError(t, SavePNG(src, path), "SavePNG should succeed")

	img, err := Load(path)
	require.NoError(t, err, "Load should decode what SavePNG wrote")
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 64, img.Bounds().Dy())
}

func TestSavePNG_Overwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")

	require.NoError(t, SavePNG(getTestImage(32, 32), path))
	require.NoError(t, SavePNG(getTestImage(16, 16), path), "existing files are overwritten unconditionally")

	img, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx(), "second write wins")
}

func TestFormatForPath(t *testing.T) {
	f, err := FormatForPath("icons/app-icon.PNG")
	require.NoError(t, err, "extension matching is case-insensitive")
	assert.Equal(t, FormatPNG, f)

	f, err = FormatForPath("master.jpeg")
	require.NoError(t, err)
	assert.Equal(t, FormatJPEG, f)

	_, err = FormatForPath("master.webp")
	assert.Error(t, err)
}

func TestChecksum(t *testing.T) {
	a := getTestImage(32, 32)
	b := getTestImage(32, 32)

	assert.Equal(t, Checksum(a), Checksum(b), "identical pixel data yields identical checksums")
	assert.Equal(t, "empty", Checksum(nil), "nil image has the sentinel checksum")

	b.Pix[0] = 7
	assert.NotEqual(t, Checksum(a), Checksum(b), "differing pixel data yields differing checksums")
}
