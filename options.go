package captcha

// TextOptions governs the challenge text layer. Opacity doubles as the layer
// enable switch: 0 skips the layer entirely.
type TextOptions struct {
	// Text is the challenge string. It is derived, not set directly; use
	// Generator.SetCaptcha to override it.
	Text string
	// Characters is the challenge length. Kept equal to len(Text).
	Characters int
	// Font is a path to a TrueType font file. Empty selects the embedded
	// default face.
	Font    string
	Size    float64
	Color   string
	Opacity float64
}

// DecoyOptions governs the scattered noise glyphs. The glyph count is derived
// from the canvas area at generation time, not stored here.
type DecoyOptions struct {
	Font    string
	Size    float64
	Color   string
	Opacity float64
}

// TraceOptions governs the stroke connecting the challenge glyphs.
// Size is the stroke width in pixels.
type TraceOptions struct {
	Color   string
	Size    float64
	Opacity float64
}

// TextOverride is a partial TextOptions. Nil fields keep their current
// values; see Generator.SetCaptcha for the Text/Characters coupling.
type TextOverride struct {
	Text       *string
	Characters *int
	Font       *string
	Size       *float64
	Color      *string
	Opacity    *float64
}

// DecoyOverride is a partial DecoyOptions. Nil fields keep their current
// values.
type DecoyOverride struct {
	Font    *string
	Size    *float64
	Color   *string
	Opacity *float64
}

// TraceOverride is a partial TraceOptions. Nil fields keep their current
// values.
type TraceOverride struct {
	Color   *string
	Size    *float64
	Opacity *float64
}

const (
	defaultHeight = 100
	defaultWidth  = 300
)

func defaultTextOptions() TextOptions {
	return TextOptions{
		Characters: 6,
		Size:       40,
		Color:      "#32cf7e",
		Opacity:    1,
	}
}

func defaultDecoyOptions() DecoyOptions {
	return DecoyOptions{
		Size:    20,
		Color:   "#646566",
		Opacity: 0.8,
	}
}

func defaultTraceOptions() TraceOptions {
	return TraceOptions{
		Color:   "#32cf7e",
		Size:    3,
		Opacity: 1,
	}
}

// merge copies the override's non-nil fields onto o. Text and Characters are
// handled by the caller because they are coupled.
func (o TextOptions) merge(ov TextOverride) TextOptions {
	if ov.Font != nil {
		o.Font = *ov.Font
	}
	if ov.Size != nil {
		o.Size = *ov.Size
	}
	if ov.Color != nil {
		o.Color = *ov.Color
	}
	if ov.Opacity != nil {
		o.Opacity = *ov.Opacity
	}
	return o
}

func (o DecoyOptions) merge(ov DecoyOverride) DecoyOptions {
	if ov.Font != nil {
		o.Font = *ov.Font
	}
	if ov.Size != nil {
		o.Size = *ov.Size
	}
	if ov.Color != nil {
		o.Color = *ov.Color
	}
	if ov.Opacity != nil {
		o.Opacity = *ov.Opacity
	}
	return o
}

func (o TraceOptions) merge(ov TraceOverride) TraceOptions {
	if ov.Color != nil {
		o.Color = *ov.Color
	}
	if ov.Size != nil {
		o.Size = *ov.Size
	}
	if ov.Opacity != nil {
		o.Opacity = *ov.Opacity
	}
	return o
}

// String returns a pointer to s, for use in override literals.
func String(s string) *string { return &s }

// Int returns a pointer to n, for use in override literals.
func Int(n int) *int { return &n }

// Float returns a pointer to f, for use in override literals.
func Float(f float64) *float64 { return &f }
