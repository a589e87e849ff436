// Package visualizer holds the audio-reactive rendering algorithms. Each
// variant owns private persistent state (particles, rings, springs) that
// only advances while the variant is active, so switching away and back
// resumes motion instead of resetting it.
package visualizer

import (
	"math/rand"

	"github.com/poetics22/glowjack-receiver/internal/feature"
)

// Surface is the 2D drawing boundary the algorithms paint onto. Coordinates
// are pixels; hue is 0..1 wrapping, lum is 0..1 brightness (the terminal
// stand-in for alpha).
type Surface interface {
	Size() (w, h int)
	Fade(factor float64)
	Plot(x, y, hue, lum float64)
	Disc(cx, cy, r, hue, lum float64)
	Ring(cx, cy, r, hue, lum float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	StrokePath(hue, lum float64)
	Glow(cx, cy, r, hue, lum float64)
}

// Visualizer renders one frame from the shared feature snapshot. clock is
// the monotonic render clock, dt the fixed per-frame step in seconds.
type Visualizer interface {
	Name() string
	Draw(s Surface, f feature.Vector, clock, dt float64)
}

// Modes returns the selectable variants in dispatch order. Indices outside
// this slice fall back to index 0 at dispatch time.
func Modes(rng *rand.Rand) []Visualizer {
	return []Visualizer{
		NewSwarm(rng),
		NewTunnel(rng),
		NewRibbons(),
		NewGrid(),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
