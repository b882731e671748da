package captcha

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Generator composes captcha images from its current configuration. Create
// one with New, adjust it through the fluent setters, then call Generate.
//
// A Generator holds no state across Generate calls besides configuration:
// decoy placement and glyph y-coordinates are redrawn every call, while the
// challenge text stays fixed until SetCaptcha overrides it.
type Generator struct {
	id         string
	height     int
	width      int
	background any
	text       TextOptions
	decoy      DecoyOptions
	trace      TraceOptions
	src        Source
	newSurface NewSurfaceFunc
}

// Option configures a Generator during creation.
type Option func(*Generator)

// WithSource injects the randomness source. The default draws text material
// from crypto/rand; tests pass a deterministic Source here.
func WithSource(src Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}

// WithSurface injects the rendering surface constructor. The default renders
// through fogleman/gg and encodes PNG.
func WithSurface(fn NewSurfaceFunc) Option {
	return func(g *Generator) {
		if fn != nil {
			g.newSurface = fn
		}
	}
}

// New creates a Generator with a 300×100 canvas, default option groups and a
// freshly drawn 6-character challenge.
func New(opts ...Option) *Generator {
	g := &Generator{
		id:         uuid.NewString(),
		height:     defaultHeight,
		width:      defaultWidth,
		text:       defaultTextOptions(),
		decoy:      defaultDecoyOptions(),
		trace:      defaultTraceOptions(),
		src:        cryptoSource{},
		newSurface: newGGSurface,
	}
	for _, opt := range opts {
		opt(g)
	}
	// A failed draw leaves Text empty; Generate retries and surfaces the
	// error there, since constructors do not fail.
	if s, err := challengeText(g.src, g.text.Characters); err == nil {
		g.text.Text = s
	}
	return g
}

// ID returns the generator's unique identity, assigned at construction.
func (g *Generator) ID() string { return g.id }

// Text returns the current challenge string.
func (g *Generator) Text() string { return g.text.Text }

// SetDimension replaces both canvas dimensions. Values are not validated
// here; non-positive dimensions fail the next Generate call.
func (g *Generator) SetDimension(height, width int) *Generator {
	g.height = height
	g.width = width
	return g
}

// SetBackground stores an opaque background reference (path, URL, encoded
// bytes or a decoded image). It is resolved at Generate time; see
// resolveBackground for the accepted types.
func (g *Generator) SetBackground(ref any) *Generator {
	g.background = ref
	return g
}

// SetCaptcha merges a partial override onto the challenge text options.
// Supplying Text fixes the challenge string and re-derives Characters from
// its length; supplying Characters alone redraws the challenge at the new
// length.
func (g *Generator) SetCaptcha(ov TextOverride) *Generator {
	g.text = g.text.merge(ov)
	switch {
	case ov.Text != nil:
		g.text.Text = *ov.Text
		g.text.Characters = len(*ov.Text)
	case ov.Characters != nil:
		g.text.Characters = *ov.Characters
		// Empty on failure; Generate redraws and reports the error.
		g.text.Text, _ = challengeText(g.src, g.text.Characters)
	}
	return g
}

// SetTrace merges a partial override onto the trace line options.
func (g *Generator) SetTrace(ov TraceOverride) *Generator {
	g.trace = g.trace.merge(ov)
	return g
}

// SetDecoy merges a partial override onto the decoy glyph options.
func (g *Generator) SetDecoy(ov DecoyOverride) *Generator {
	g.decoy = g.decoy.merge(ov)
	return g
}

// Generate renders the captcha and returns the encoded PNG buffer. Layers
// draw in a fixed order so noise can never fully occlude the challenge:
// background, then decoys, then the trace line, then the challenge text.
// A layer whose opacity is 0 is skipped outright.
//
// Generate may be called repeatedly; each call redraws decoy placement and
// glyph y-coordinates but keeps the same challenge text. Any failure aborts
// the whole call — there is no partial output.
func (g *Generator) Generate() ([]byte, error) {
	if g.text.Text == "" && g.text.Characters > 0 {
		s, err := challengeText(g.src, g.text.Characters)
		if err != nil {
			return nil, err
		}
		g.text.Text = s
	}
	if g.text.Characters <= 0 {
		return nil, fmt.Errorf("generate: character count %d must be positive", g.text.Characters)
	}

	surface, err := g.newSurface(g.width, g.height)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	log := Logger().With(slog.String("captcha", g.id))
	log.Debug("generating", slog.Int("width", g.width), slog.Int("height", g.height))

	if g.background != nil {
		img, err := resolveBackground(g.background)
		if err != nil {
			return nil, fmt.Errorf("generate: %w", err)
		}
		surface.DrawImage(img)
	}

	coords := layoutCoordinates(g.src, g.text.Characters, g.width, g.height)

	if err := g.drawDecoys(surface, log); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	if err := g.drawTrace(surface, log, coords); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	if err := g.drawText(surface, log, coords); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	return surface.Encode()
}
