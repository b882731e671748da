package captcha

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextOptionsMerge(t *testing.T) {
	base := defaultTextOptions()
	merged := base.merge(TextOverride{
		Size:  Float(60),
		Color: String("#000000"),
	})

	assert.Equal(t, 60.0, merged.Size)
	assert.Equal(t, "#000000", merged.Color)
	assert.Equal(t, base.Font, merged.Font)
	assert.Equal(t, base.Opacity, merged.Opacity)
	assert.Equal(t, base.Characters, merged.Characters)
}

func TestDecoyOptionsMerge(t *testing.T) {
	base := defaultDecoyOptions()
	merged := base.merge(DecoyOverride{Opacity: Float(0)})

	assert.Zero(t, merged.Opacity)
	assert.Equal(t, base.Size, merged.Size)
	assert.Equal(t, base.Color, merged.Color)
	assert.Equal(t, base.Font, merged.Font)
}

func TestTraceOptionsMerge(t *testing.T) {
	base := defaultTraceOptions()
	merged := base.merge(TraceOverride{Size: Float(7)})

	assert.Equal(t, 7.0, merged.Size)
	assert.Equal(t, base.Color, merged.Color)
	assert.Equal(t, base.Opacity, merged.Opacity)
}

func TestMergeEmptyOverrideIsNoop(t *testing.T) {
	assert.Equal(t, defaultTextOptions(), defaultTextOptions().merge(TextOverride{}))
	assert.Equal(t, defaultDecoyOptions(), defaultDecoyOptions().merge(DecoyOverride{}))
	assert.Equal(t, defaultTraceOptions(), defaultTraceOptions().merge(TraceOverride{}))
}

func TestPointerHelpers(t *testing.T) {
	assert.Equal(t, "x", *String("x"))
	assert.Equal(t, 3, *Int(3))
	assert.Equal(t, 0.5, *Float(0.5))
}
