package captcha

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGGSurfaceInvalidDimensions(t *testing.T) {
	for _, d := range []struct{ w, h int }{{0, 100}, {100, 0}, {-1, -1}} {
		_, err := newGGSurface(d.w, d.h)
		require.Error(t, err)
	}
}

func TestGGSurfaceEncode(t *testing.T) {
	s, err := newGGSurface(50, 30)
	require.NoError(t, err)

	buf, err := s.Encode()
	require.NoError(t, err)

	cfg, err := png.DecodeConfig(bytes.NewReader(buf))
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Width)
	assert.Equal(t, 30, cfg.Height)
}

func TestGGSurfaceDrawImageStretches(t *testing.T) {
	s, err := newGGSurface(50, 30)
	require.NoError(t, err)

	// A solid red 10x10 image must cover the whole 50x30 canvas.
	red := image.NewRGBA(image.Rect(0, 0, 10, 10))
	draw.Draw(red, red.Bounds(), image.NewUniform(color.NRGBA{R: 255, A: 255}), image.Point{}, draw.Src)
	s.DrawImage(red)

	buf, err := s.Encode()
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(buf))
	require.NoError(t, err)

	for _, p := range []image.Point{{1, 1}, {25, 15}, {48, 28}} {
		r, g, b, _ := img.At(p.X, p.Y).RGBA()
		assert.Equal(t, uint32(0xffff), r, "pixel %v", p)
		assert.Zero(t, g, "pixel %v", p)
		assert.Zero(t, b, "pixel %v", p)
	}
}

func TestGGSurfaceDrawText(t *testing.T) {
	s, err := newGGSurface(100, 60)
	require.NoError(t, err)

	require.NoError(t, s.SetFont("", 40))
	s.SetColor(color.NRGBA{R: 255, A: 255})
	s.DrawText("A", 20, 45)

	buf, err := s.Encode()
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(buf))
	require.NoError(t, err)

	// At least one pixel must carry the glyph color.
	var inked bool
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y && !inked; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if r, _, _, a := img.At(x, y).RGBA(); r > 0 && a > 0 {
				inked = true
				break
			}
		}
	}
	assert.True(t, inked, "expected glyph pixels on the canvas")
}

func TestGGSurfaceSetFontMissingFile(t *testing.T) {
	s, err := newGGSurface(10, 10)
	require.NoError(t, err)
	require.Error(t, s.SetFont("no/such/font.ttf", 12))
}
