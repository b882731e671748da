package captcha

import (
	"fmt"
	"image/color"
	"strings"
)

// parseColor turns a hex color spec into an NRGBA value with the layer
// opacity folded into the alpha channel. Supported forms are "RGB", "RGBA",
// "RRGGBB" and "RRGGBBAA", with or without a leading '#'.
func parseColor(spec string, opacity float64) (color.NRGBA, error) {
	hex := strings.TrimPrefix(spec, "#")

	var parts [4]uint32
	parts[3] = 255

	var err error
	switch len(hex) {
	case 3, 4:
		for i := 0; i < len(hex) && err == nil; i++ {
			parts[i], err = parseHex(hex[i : i+1])
			parts[i] *= 17
		}
	case 6, 8:
		for i := 0; i*2 < len(hex) && err == nil; i++ {
			parts[i], err = parseHex(hex[i*2 : i*2+2])
		}
	default:
		err = fmt.Errorf("unsupported format")
	}
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", spec, err)
	}

	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	return color.NRGBA{
		R: uint8(parts[0]),
		G: uint8(parts[1]),
		B: uint8(parts[2]),
		A: uint8(float64(parts[3]) * opacity),
	}, nil
}

func parseHex(s string) (uint32, error) {
	var v uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		v *= 16
		switch {
		case '0' <= c && c <= '9':
			v += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			v += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			v += uint32(c - 'A' + 10)
		default:
			return 0, fmt.Errorf("invalid hex digit %q", c)
		}
	}
	return v, nil
}
