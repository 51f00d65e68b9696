package mask

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInsideSuperellipse_Membership validates the membership test against
// known geometric cases.
func TestInsideSuperellipse_Membership(t *testing.T) {
	tests := []struct {
		name   string
		x, y   int
		canvas int
		body   int
		inside bool
	}{
		{
			name:   "Canvas center is always inside",
			x:      512, y: 512,
			canvas: 1024, body: 824,
			inside: true,
		},
		{
			name:   "Canvas corner is outside when body < canvas",
			x:      0, y: 0,
			canvas: 1024, body: 824,
			inside: false,
		},
		{
			name:   "Canvas corner is outside even at full body",
			x:      0, y: 0,
			canvas: 1024, body: 1024,
			inside: false,
		},
		{
			name:   "Edge midpoint at full body is inside",
			x:      0, y: 512,
			canvas: 1024, body: 1024,
			inside: true,
		},
		{
			name:   "Point just inside the flat side",
			x:      101, y: 512,
			canvas: 1024, body: 824,
			inside: true,
		},
		{
			name:   "Point in the margin is outside",
			x:      50, y: 512,
			canvas: 1024, body: 824,
			inside: false,
		},
		{
			name:   "Tiny canvas center",
			x:      1, y: 1,
			canvas: 3, body: 1,
			inside: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InsideSuperellipse(tt.x, tt.y, tt.canvas, tt.body, DefaultExponent)
			assert.Equal(t, tt.inside, got)
		})
	}
}

func TestSuperellipse_Idempotent(t *testing.T) {
	m1, err := Superellipse(256, 206)
	require.NoError(t, err, "first mask should generate")
	m2, err := Superellipse(256, 206)
	require.NoError(t, err, "second mask should generate")

	assert.True(t, bytes.Equal(m1.Pix, m2.Pix), "identical parameters must yield byte-identical masks")
}

func TestSuperellipse_Dimensions(t *testing.T) {
	m, err := Superellipse(128, 100)
	require.NoError(t, err)
	assert.Equal(t, 128, m.Bounds().Dx(), "mask should have canvas width")
	assert.Equal(t, 128, m.Bounds().Dy(), "mask should have canvas height")

	// Binary mask: every pixel is either fully opaque or fully transparent.
	for _, a := range m.Pix {
		assert.True(t, a == 0 || a == 255, "superellipse mask must be binary")
	}
}

func TestRoundedRect_CoversCenterNotCorner(t *testing.T) {
	m, err := RoundedRect(256, 206)
	require.NoError(t, err)
	assert.Equal(t, 256, m.Bounds().Dx())
	assert.Equal(t, 256, m.Bounds().Dy())

	assert.EqualValues(t, 255, m.AlphaAt(128, 128).A, "canvas center should be opaque")
	assert.EqualValues(t, 0, m.AlphaAt(0, 0).A, "canvas corner should be transparent")
}

// TestValidation covers the fail-fast parameter errors shared by both
// geometries.
func TestValidation(t *testing.T) {
	tests := []struct {
		name   string
		canvas int
		body   int
	}{
		{name: "Zero canvas", canvas: 0, body: 10},
		{name: "Negative canvas", canvas: -64, body: 10},
		{name: "Zero body", canvas: 64, body: 0},
		{name: "Negative body", canvas: 64, body: -1},
		{name: "Body exceeds canvas", canvas: 64, body: 65},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Superellipse(tt.canvas, tt.body)
			assert.Error(t, err, "Superellipse should reject invalid sizes")
			_, err = RoundedRect(tt.canvas, tt.body)
			assert.Error(t, err, "RoundedRect should reject invalid sizes")
		})
	}
}

func TestGenerate_Dispatch(t *testing.T) {
	m, err := Generate(ShapeSuperellipse, 64, 64)
	require.NoError(t, err)
	assert.Equal(t, 64, m.Bounds().Dx())

	m, err = Generate(ShapeRounded, 64, 64)
	require.NoError(t, err)
	assert.Equal(t, 64, m.Bounds().Dx())

	_, err = Generate("hexagon", 64, 64)
	assert.Error(t, err, "unknown shape should fail fast")
}

func TestParseShape(t *testing.T) {
	s, err := ParseShape("superellipse")
	require.NoError(t, err)
	assert.Equal(t, ShapeSuperellipse, s)

	s, err = ParseShape("rounded")
	require.NoError(t, err)
	assert.Equal(t, ShapeRounded, s)

	_, err = ParseShape("circle")
	assert.Error(t, err)
}
