package visualizer

import (
	"math"

	"github.com/poetics22/glowjack-receiver/internal/feature"
)

const (
	gridCols = 16
	gridRows = 8
)

// Grid is variant 3: a cols x rows field of dots, one frequency bin per
// column, pulsing with bin magnitude and the global beat. Magnitudes are
// spring-smoothed so dots move instead of snapping.
type Grid struct {
	smooth springField
}

func NewGrid() *Grid {
	return &Grid{smooth: newSpringField(50, 9.0, 0.75)}
}

func (v *Grid) Name() string { return "grid" }

func (v *Grid) Draw(s Surface, f feature.Vector, clock, dt float64) {
	wi, hi := s.Size()
	w, h := float64(wi), float64(hi)

	cellW := w / gridCols
	cellH := h / gridRows
	maxR := math.Min(cellW, cellH) * 0.45

	v.smooth.resize(gridCols)
	bins := len(f.FFTMagnitudes)

	for col := 0; col < gridCols; col++ {
		var mag float64
		if bins > 0 {
			mag = f.FFTMagnitudes[col*bins/gridCols]
		}
		mag = v.smooth.step(col, clamp01(mag))
		level := clamp01(mag + f.BeatPulse*0.4)

		for row := 0; row < gridRows; row++ {
			cx := (float64(col) + 0.5) * cellW
			cy := (float64(row) + 0.5) * cellH
			hue := math.Mod(float64(col)/gridCols*0.5+float64(row)/gridRows*0.2+clock*0.04, 1)
			r := 0.5 + level*maxR
			lum := 0.15 + 0.85*level

			s.Disc(cx, cy, r*1.9, hue, lum*0.2)
			s.Disc(cx, cy, r, hue, lum)
		}
	}
}
