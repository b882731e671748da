package captcha

import (
	"bytes"
	"fmt"
	"image"
	"net/http"
	"os"
	"strings"

	// Background references may be PNG or JPEG encoded.
	_ "image/jpeg"
	_ "image/png"
)

// resolveBackground turns an opaque background reference into a decoded
// image. Accepted reference types:
//
//   - image.Image: used as-is
//   - []byte: decoded from PNG/JPEG bytes
//   - string: fetched over HTTP when it starts with http:// or https://,
//     otherwise read from the filesystem
//
// The reference is not validated when it is set; a missing file, failed
// fetch or corrupt encoding fails the Generate call that resolves it.
func resolveBackground(ref any) (image.Image, error) {
	switch v := ref.(type) {
	case image.Image:
		return v, nil
	case []byte:
		img, _, err := image.Decode(bytes.NewReader(v))
		if err != nil {
			return nil, fmt.Errorf("decode background bytes: %w", err)
		}
		return img, nil
	case string:
		if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
			return fetchBackground(v)
		}
		data, err := os.ReadFile(v)
		if err != nil {
			return nil, fmt.Errorf("read background %q: %w", v, err)
		}
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode background %q: %w", v, err)
		}
		return img, nil
	default:
		return nil, fmt.Errorf("unsupported background reference type %T", ref)
	}
}

func fetchBackground(url string) (image.Image, error) {
	rsp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch background %q: %w", url, err)
	}
	defer rsp.Body.Close()
	if rsp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch background %q: status %s", url, rsp.Status)
	}
	img, _, err := image.Decode(rsp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode background %q: %w", url, err)
	}
	return img, nil
}
