package captcha

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		opacity float64
		want    color.NRGBA
	}{
		{"long form", "#32cf7e", 1, color.NRGBA{R: 0x32, G: 0xcf, B: 0x7e, A: 255}},
		{"no hash", "646566", 1, color.NRGBA{R: 0x64, G: 0x65, B: 0x66, A: 255}},
		{"short form", "#fff", 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"short with alpha", "#abcd", 1, color.NRGBA{R: 170, G: 187, B: 204, A: 221}},
		{"long with alpha", "11223344", 1, color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}},
		{"half opacity", "#ffffff", 0.5, color.NRGBA{R: 255, G: 255, B: 255, A: 127}},
		{"zero opacity", "#ffffff", 0, color.NRGBA{R: 255, G: 255, B: 255, A: 0}},
		{"opacity clamped high", "#000000", 3, color.NRGBA{A: 255}},
		{"opacity clamped low", "#000000", -1, color.NRGBA{}},
		{"uppercase digits", "#AABBCC", 1, color.NRGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseColor(tt.spec, tt.opacity)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, spec := range []string{"", "#12345", "red", "#xyzxyz", "#ggg"} {
		t.Run(spec, func(t *testing.T) {
			_, err := parseColor(spec, 1)
			require.Error(t, err)
		})
	}
}
