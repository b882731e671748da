package captcha

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
)

// Surface is the 2D drawing collaborator the compositor renders against. The
// default implementation wraps a fogleman/gg context; tests substitute a
// recording fake via WithSurface.
//
// A Surface is single-shot: it is constructed per Generate call, drawn on
// once, and serialized by Encode.
type Surface interface {
	// SetFont selects the face for subsequent DrawText calls. An empty
	// name means the implementation's default face.
	SetFont(name string, size float64) error
	// SetColor sets the fill and stroke color, alpha included.
	SetColor(c color.Color)
	SetLineWidth(w float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()
	DrawText(s string, x, y float64)
	// DrawImage blits img stretched to cover the whole canvas.
	DrawImage(img image.Image)
	// Encode serializes the surface to a PNG buffer.
	Encode() ([]byte, error)
}

// NewSurfaceFunc constructs a fresh Surface for one generation run.
type NewSurfaceFunc func(width, height int) (Surface, error)

// ggSurface renders through fogleman/gg into an in-memory RGBA canvas.
type ggSurface struct {
	dc     *gg.Context
	width  int
	height int
}

func newGGSurface(width, height int) (Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("surface: invalid dimensions %dx%d", width, height)
	}
	dc := gg.NewContext(width, height)
	dc.SetLineJoin(gg.LineJoinRound)
	return &ggSurface{dc: dc, width: width, height: height}, nil
}

func (s *ggSurface) SetFont(name string, size float64) error {
	face, err := loadFace(name, size)
	if err != nil {
		return err
	}
	s.dc.SetFontFace(face)
	return nil
}

func (s *ggSurface) SetColor(c color.Color) { s.dc.SetColor(c) }

func (s *ggSurface) SetLineWidth(w float64) { s.dc.SetLineWidth(w) }

func (s *ggSurface) MoveTo(x, y float64) { s.dc.MoveTo(x, y) }

func (s *ggSurface) LineTo(x, y float64) { s.dc.LineTo(x, y) }

func (s *ggSurface) Stroke() { s.dc.Stroke() }

func (s *ggSurface) DrawText(t string, x, y float64) { s.dc.DrawString(t, x, y) }

func (s *ggSurface) DrawImage(img image.Image) {
	b := img.Bounds()
	if b.Dx() != s.width || b.Dy() != s.height {
		scaled := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
		xdraw.BiLinear.Scale(scaled, scaled.Bounds(), img, b, xdraw.Src, nil)
		img = scaled
	}
	s.dc.DrawImage(img, 0, 0)
}

func (s *ggSurface) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
