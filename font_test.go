package captcha

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFaceDefault(t *testing.T) {
	face, err := loadFace("", 40)
	require.NoError(t, err)
	assert.NotNil(t, face)
}

func TestLoadFaceMissingFile(t *testing.T) {
	_, err := loadFace("no/such.ttf", 12)
	require.Error(t, err)
	assert.ErrorContains(t, err, "no/such.ttf")
}

func TestLoadFaceBadData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ttf")
	require.NoError(t, os.WriteFile(path, []byte("not a font"), 0o644))

	_, err := loadFace(path, 12)
	require.Error(t, err)
}
