// Package captcha renders randomized, human-legible text challenges as PNG
// images, layered with optional background art, decoy glyphs and a trace line
// that threads through the challenge text to frustrate naive OCR.
//
// # Quick Start
//
//	g := captcha.New()
//	buf, err := g.Generate()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("captcha.png", buf, 0o644)
//	fmt.Println("answer:", g.Text())
//
// Mutators are fluent and chainable:
//
//	buf, err := captcha.New().
//	    SetDimension(200, 600).
//	    SetTrace(captcha.TraceOverride{Color: captcha.String("#ff6b6b")}).
//	    Generate()
//
// # Challenge Alphabet
//
// Challenge text is drawn from a cryptographically strong byte source,
// hex-encoded, uppercased and filtered to letters. Hex digits 0-9 are
// discarded by the filter, so the effective alphabet is {A,B,C,D,E,F}.
// This narrowing is deliberate; decoy glyphs use the unfiltered hex
// alphabet and span 0-9 and a-f.
//
// # Layers
//
// Generate draws in a fixed order: background, decoys, trace line, challenge
// text. Each layer's opacity doubles as its enable switch: setting an opacity
// to 0 skips that layer entirely. The challenge text is always drawn last so
// the noise layers can never fully occlude it.
//
// # Concurrency
//
// A Generator is a single-owner value. Concurrent Generate calls on the same
// instance are not supported; create one Generator per goroutine instead.
package captcha
