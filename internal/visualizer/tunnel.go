package visualizer

import (
	"math"
	"math/rand"

	"github.com/poetics22/glowjack-receiver/internal/feature"
)

const (
	ringCap        = 24
	ringAlphaFloor = 0.03
	ringSegments   = 90
	warmThreshold  = 0.55 // brightness above this branches to warm hues
)

type ring struct {
	radius    float64
	thickness float64
	alpha     float64
	hue       float64
	phase     float64 // per-ring angular offset into the waveform
	waveAmp   float64 // how strongly the waveform displaces the contour
}

// Tunnel is variant 1: expanding waveform-rippled rings racing outward
// from a glowing center.
type Tunnel struct {
	rings []ring
	rng   *rand.Rand
}

func NewTunnel(rng *rand.Rand) *Tunnel {
	return &Tunnel{
		rings: make([]ring, 0, ringCap),
		rng:   rng,
	}
}

func (v *Tunnel) Name() string { return "tunnel" }

// spawn appends a ring unless the set is at capacity; over-capacity spawns
// are skipped outright, never queued.
func (v *Tunnel) spawn(f feature.Vector) {
	if len(v.rings) >= ringCap {
		return
	}
	hue := 0.55 + v.rng.Float64()*0.12 // cool cyan-blue
	if f.Brightness > warmThreshold {
		hue = 0.02 + v.rng.Float64()*0.1 // warm red-orange
	}
	v.rings = append(v.rings, ring{
		radius:    2,
		thickness: 1 + f.BeatPulse*2,
		alpha:     1,
		hue:       hue,
		phase:     v.rng.Float64() * 2 * math.Pi,
		waveAmp:   0.4 + v.rng.Float64()*0.8,
	})
}

// step expands every ring by speed and drops the ones that faded out or
// outgrew the surface. Radius only ever grows over a ring's lifetime.
func (v *Tunnel) step(maxRadius, speed float64) {
	kept := v.rings[:0]
	for _, r := range v.rings {
		r.radius += speed
		r.alpha = clamp01(1 - r.radius/maxRadius)
		if r.alpha < ringAlphaFloor || r.radius > maxRadius {
			continue
		}
		kept = append(kept, r)
	}
	v.rings = kept
}

func (v *Tunnel) Draw(s Surface, f feature.Vector, clock, dt float64) {
	wi, hi := s.Size()
	w, h := float64(wi), float64(hi)
	cx, cy := w/2, h/2
	maxRadius := math.Hypot(w, h) / 2

	if v.rng.Float64() < 0.02+f.EnergyLow*0.25 {
		v.spawn(f)
	}
	if f.IsBeat {
		v.spawn(f)
	}

	v.step(maxRadius, (4+f.EnergyLow*40)*dt)
	for _, r := range v.rings {
		v.drawRing(s, r, f, cx, cy)
	}

	glow := clamp01(f.EnergyLow*0.7 + f.BeatPulse*0.6)
	if glow > 0.02 {
		centerHue := 0.6
		if f.Brightness > warmThreshold {
			centerHue = 0.05
		}
		s.Glow(cx, cy, 6+glow*maxRadius*0.3, centerHue, glow)
	}
}

// drawRing strokes one ring as a closed path whose radius is displaced
// per-angle by circularly sampled waveform data, giving the organic
// non-circular contour.
func (v *Tunnel) drawRing(s Surface, r ring, f feature.Vector, cx, cy float64) {
	passes := int(r.thickness)
	if passes < 1 {
		passes = 1
	}
	if len(f.Waveform) == 0 {
		// Nothing to displace the contour with: a plain circle is cheaper
		// than a 90-segment path.
		for pass := 0; pass < passes; pass++ {
			s.Ring(cx, cy, r.radius+float64(pass), r.hue, r.alpha)
		}
		return
	}
	for pass := 0; pass < passes; pass++ {
		for seg := 0; seg <= ringSegments; seg++ {
			a := float64(seg) / ringSegments * 2 * math.Pi
			wi := int((a + r.phase) / (2 * math.Pi) * float64(len(f.Waveform)))
			ripple := sampleWrapped(f.Waveform, wi) * r.waveAmp * r.radius * 0.25
			rad := r.radius + ripple + float64(pass)
			x := cx + math.Cos(a)*rad
			y := cy + math.Sin(a)*rad
			if seg == 0 {
				s.MoveTo(x, y)
			} else {
				s.LineTo(x, y)
			}
		}
		s.StrokePath(r.hue, r.alpha)
	}
}
