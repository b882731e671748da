package captcha

import "log/slog"

// decoyDensity divides the canvas area to derive the decoy glyph count, so
// larger canvases get proportionally more noise.
const decoyDensity = 10000

// drawDecoys scatters semi-transparent hex glyphs across the canvas. Each
// glyph gets an independently drawn position, unrelated to the challenge
// layout. An opacity of 0 disables the layer.
func (g *Generator) drawDecoys(s Surface, log *slog.Logger) error {
	if g.decoy.Opacity <= 0 {
		log.Debug("decoy layer skipped")
		return nil
	}
	count := g.height * g.width / decoyDensity
	if count <= 0 {
		return nil
	}
	glyphs, err := decoyText(g.src, count)
	if err != nil {
		return err
	}
	if err := s.SetFont(g.decoy.Font, g.decoy.Size); err != nil {
		return err
	}
	c, err := parseColor(g.decoy.Color, g.decoy.Opacity)
	if err != nil {
		return err
	}
	s.SetColor(c)
	for _, glyph := range glyphs {
		x := float64(g.src.IntN(g.width))
		y := float64(g.src.IntN(g.height))
		s.DrawText(string(glyph), x, y)
	}
	return nil
}

// drawTrace strokes one polyline through all layout coordinates in order.
// An opacity of 0 disables the layer.
func (g *Generator) drawTrace(s Surface, log *slog.Logger, coords []Coordinate) error {
	if g.trace.Opacity <= 0 {
		log.Debug("trace layer skipped")
		return nil
	}
	if len(coords) == 0 {
		return nil
	}
	c, err := parseColor(g.trace.Color, g.trace.Opacity)
	if err != nil {
		return err
	}
	s.SetColor(c)
	s.SetLineWidth(g.trace.Size)
	s.MoveTo(coords[0].X, coords[0].Y)
	for _, p := range coords[1:] {
		s.LineTo(p.X, p.Y)
	}
	s.Stroke()
	return nil
}

// drawText places challenge glyph i at layout coordinate i. An opacity of 0
// disables the layer, leaving an image with no readable challenge.
func (g *Generator) drawText(s Surface, log *slog.Logger, coords []Coordinate) error {
	if g.text.Opacity <= 0 {
		log.Debug("text layer skipped")
		return nil
	}
	if err := s.SetFont(g.text.Font, g.text.Size); err != nil {
		return err
	}
	c, err := parseColor(g.text.Color, g.text.Opacity)
	if err != nil {
		return err
	}
	s.SetColor(c)
	for i, glyph := range []rune(g.text.Text) {
		if i >= len(coords) {
			break
		}
		s.DrawText(string(glyph), coords[i].X, coords[i].Y)
	}
	return nil
}
