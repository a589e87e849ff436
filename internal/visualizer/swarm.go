package visualizer

import (
	"math"
	"math/rand"

	"github.com/poetics22/glowjack-receiver/internal/feature"
)

const (
	swarmCount    = 48
	swarmDamping  = 0.96 // multiplicative velocity decay per frame
	swarmSwirl    = 0.35 // constant tangential drift
	glowThreshold = 2.2  // particles above this size get an under-glow
)

type particle struct {
	x, y   float64
	vx, vy float64
	size   float64
	hue    float64
	life   float64
}

// Swarm is variant 0: particles orbiting the center, pulled in by low-band
// energy and kicked outward on beats.
type Swarm struct {
	particles []particle
	rng       *rand.Rand
	seeded    bool
}

// NewSwarm creates the swarm. Particle positions are seeded from rng on the
// first frame, once the surface dimensions are known.
func NewSwarm(rng *rand.Rand) *Swarm {
	return &Swarm{
		particles: make([]particle, swarmCount),
		rng:       rng,
	}
}

func (v *Swarm) Name() string { return "swarm" }

func (v *Swarm) seed(w, h float64) {
	for i := range v.particles {
		v.particles[i] = particle{
			x:    v.rng.Float64() * w,
			y:    v.rng.Float64() * h,
			vx:   (v.rng.Float64() - 0.5) * 2,
			vy:   (v.rng.Float64() - 0.5) * 2,
			size: 1 + v.rng.Float64()*2.5,
			hue:  v.rng.Float64(),
			life: 0.5 + v.rng.Float64()*0.5,
		}
	}
	v.seeded = true
}

func (v *Swarm) Draw(s Surface, f feature.Vector, clock, dt float64) {
	wi, hi := s.Size()
	w, h := float64(wi), float64(hi)
	if !v.seeded {
		v.seed(w, h)
	}

	cx, cy := w/2, h/2
	attract := 0.12 + f.EnergyLow*0.9
	hueRate := 0.02 + f.EnergyHigh*0.25
	bright := 0.35 + 0.65*clamp01(f.Amplitude*0.8+f.BeatPulse*0.5)

	for i := range v.particles {
		p := &v.particles[i]

		dx := cx - p.x
		dy := cy - p.y
		dist := math.Hypot(dx, dy)
		if dist < 1e-6 {
			dist = 1e-6
		}
		nx, ny := dx/dist, dy/dist

		p.vx += nx * attract * dt * 30
		p.vy += ny * attract * dt * 30

		if f.IsBeat {
			kick := f.BeatPulse * 4
			p.vx -= nx * kick
			p.vy -= ny * kick
		}

		// Tangential swirl: perpendicular to the center direction.
		p.vx += -ny * swarmSwirl * dt * 30
		p.vy += nx * swarmSwirl * dt * 30

		p.vx *= swarmDamping
		p.vy *= swarmDamping

		p.x = wrapCoord(p.x+p.vx, w)
		p.y = wrapCoord(p.y+p.vy, h)

		p.hue = math.Mod(p.hue+hueRate*dt*10, 1)

		size := p.size * (0.7 + f.Amplitude*0.6 + f.BeatPulse*0.8)
		lum := bright * p.life
		if size > glowThreshold {
			s.Disc(p.x, p.y, size*2.2, p.hue, lum*0.22)
		}
		s.Disc(p.x, p.y, size, p.hue, lum)
	}
}
