package captcha

import (
	"fmt"
	"os"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// parseDefaultFont parses the embedded Go Regular face once.
var parseDefaultFont = sync.OnceValues(func() (*truetype.Font, error) {
	return truetype.Parse(goregular.TTF)
})

// loadFace resolves a font option to a face at the given size. An empty name
// selects the embedded default; anything else is read as a TrueType file.
func loadFace(name string, size float64) (font.Face, error) {
	var (
		f   *truetype.Font
		err error
	)
	if name == "" {
		f, err = parseDefaultFont()
	} else {
		var data []byte
		data, err = os.ReadFile(name)
		if err == nil {
			f, err = truetype.Parse(data)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("load font %q: %w", name, err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: size}), nil
}
