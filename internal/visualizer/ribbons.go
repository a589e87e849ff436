package visualizer

import (
	"math"

	"github.com/poetics22/glowjack-receiver/internal/feature"
)

const (
	ribbonCount = 5
	ribbonStep  = 2 // horizontal pixels per trace sample
)

// Ribbons is variant 2: horizontal flowing lines displaced by the waveform
// plus a synthetic sine, so they keep moving even over a flat buffer.
type Ribbons struct{}

func NewRibbons() *Ribbons { return &Ribbons{} }

func (v *Ribbons) Name() string { return "ribbons" }

func (v *Ribbons) Draw(s Surface, f feature.Vector, clock, dt float64) {
	wi, hi := s.Size()
	w, h := float64(wi), float64(hi)

	amp := h * 0.12 * (0.4 + f.EnergyLow + f.BeatPulse*0.7)
	weight := 1 + int(f.EnergyLow*2+f.BeatPulse*2)
	lum := 0.35 + 0.65*clamp01(0.3+f.EnergyLow+f.BeatPulse*0.5)

	for rb := 0; rb < ribbonCount; rb++ {
		frac := (float64(rb) + 1) / (ribbonCount + 1)
		baseY := h * frac
		phase := float64(rb) * 1.7
		hue := math.Mod(clock*0.05+float64(rb)*0.13, 1)

		for pass := 0; pass < weight; pass++ {
			off := float64(pass) - float64(weight-1)/2
			first := true
			for x := 0; x < wi; x += ribbonStep {
				t := float64(x) / w
				wi2 := int(t*float64(len(f.Waveform))) + int(clock*40) + rb*17
				wave := sampleWrapped(f.Waveform, wi2)
				sine := math.Sin(t*6*math.Pi+phase+clock*2) * (0.2 + f.EnergyHigh)
				y := baseY + (wave+sine*0.5)*amp + off
				if first {
					s.MoveTo(float64(x), y)
					first = false
				} else {
					s.LineTo(float64(x), y)
				}
			}
			s.StrokePath(hue, lum)
		}
	}
}
