package captcha

import (
	cryptorand "crypto/rand"
	"encoding/hex"
	"fmt"
	mathrand "math/rand"
	"strings"
)

// Source supplies all randomness used during generation. Challenge and decoy
// text come from Bytes, which must be cryptographically strong; placement
// jitter comes from IntN, where predictability is acceptable. Substitute a
// deterministic Source in tests via WithSource.
type Source interface {
	// Bytes returns n random bytes.
	Bytes(n int) ([]byte, error)
	// IntN returns a random int in [0, n). n must be positive.
	IntN(n int) int
}

// cryptoSource is the default Source: crypto/rand for text material,
// math/rand for geometry.
type cryptoSource struct{}

func (cryptoSource) Bytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := cryptorand.Read(b); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return b, nil
}

func (cryptoSource) IntN(n int) int { return mathrand.Intn(n) }

// maxTextDraws bounds the filter-and-refill loop in challengeText so a
// Source that never yields letter bytes cannot hang generation.
const maxTextDraws = 16

// challengeText builds an n-character challenge string: random bytes are
// hex-encoded, uppercased and filtered to letters, then truncated. The hex
// encoding means only A-F survive the filter, so the effective alphabet is
// six letters wide.
func challengeText(src Source, n int) (string, error) {
	if n <= 0 {
		return "", nil
	}
	var b strings.Builder
	b.Grow(n)
	for draws := 0; b.Len() < n; draws++ {
		if draws == maxTextDraws {
			return "", fmt.Errorf("challenge text: source yielded too few letters after %d draws", draws)
		}
		raw, err := src.Bytes(n)
		if err != nil {
			return "", fmt.Errorf("challenge text: %w", err)
		}
		enc := strings.ToUpper(hex.EncodeToString(raw))
		for i := 0; i < len(enc) && b.Len() < n; i++ {
			if enc[i] >= 'A' && enc[i] <= 'Z' {
				b.WriteByte(enc[i])
			}
		}
	}
	return b.String(), nil
}

// decoyText builds the decoy glyph pool: n hex characters, unfiltered, so it
// legitimately spans 0-9 and a-f.
func decoyText(src Source, n int) (string, error) {
	if n <= 0 {
		return "", nil
	}
	raw, err := src.Bytes((n + 1) / 2)
	if err != nil {
		return "", fmt.Errorf("decoy text: %w", err)
	}
	return hex.EncodeToString(raw)[:n], nil
}
