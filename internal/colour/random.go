package colour

import (
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

// Saturation and value ranges for random base colours. Very dark or washed
// out bases produce palettes that are hard to tell apart.
const (
	randomMinSat = 0.35
	randomMaxSat = 0.90
	randomMinVal = 0.35
	randomMaxVal = 0.85
)

// RandomRGB returns a random base colour with a uniformly random hue.
func RandomRGB(r *rand.Rand) RGB {
	h := r.Float64() * 360
	s := randomMinSat + r.Float64()*(randomMaxSat-randomMinSat)
	v := randomMinVal + r.Float64()*(randomMaxVal-randomMinVal)

	red, green, blue := colorful.Hsv(h, s, v).Clamped().RGB255()
	return RGB{R: red, G: green, B: blue}
}

// NewRand returns a PCG source seeded with seed. Equal seeds give equal colours.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
