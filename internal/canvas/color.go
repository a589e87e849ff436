package canvas

import (
	"fmt"
	"math"
	"os"
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

type colorProfile uint8

const (
	colorNone colorProfile = iota
	colorANSI16
	colorANSI256
	colorTrueColor
)

var (
	profileOnce sync.Once
	profile     colorProfile
	seqCache    sync.Map
)

func currentColorProfile() colorProfile {
	profileOnce.Do(func() {
		if _, disabled := os.LookupEnv("NO_COLOR"); disabled {
			profile = colorNone
			return
		}
		term := strings.ToLower(os.Getenv("TERM"))
		colorTerm := strings.ToLower(os.Getenv("COLORTERM"))
		switch {
		case strings.Contains(colorTerm, "truecolor"), strings.Contains(colorTerm, "24bit"):
			profile = colorTrueColor
		case strings.Contains(term, "256color"):
			profile = colorANSI256
		case term == "", term == "dumb":
			profile = colorNone
		default:
			profile = colorANSI16
		}
	})
	return profile
}

// ansiPalette turns hue/intensity pairs into foreground escape sequences,
// quantized so the per-frame sequence cache stays small.
type ansiPalette struct {
	profile colorProfile
}

func newANSIPalette() *ansiPalette {
	return &ansiPalette{profile: currentColorProfile()}
}

type frameEmitter struct {
	profile colorProfile
	current uint32
}

func (p *ansiPalette) newFrame() frameEmitter {
	return frameEmitter{profile: p.profile, current: ^uint32(0)}
}

// set switches the terminal foreground for the given hue (0..1, wrapping)
// and intensity (0..1). Repeated calls with the same quantized color are
// free.
func (e *frameEmitter) set(sb *strings.Builder, hue, lum float64) {
	if e.profile == colorNone {
		return
	}
	h := math.Mod(hue, 1)
	if h < 0 {
		h++
	}
	if lum < 0 {
		lum = 0
	}
	if lum > 1 {
		lum = 1
	}
	// Quantize before caching: 64 hues x 16 levels is plenty for braille dots.
	key := uint32(e.profile)<<24 | uint32(h*63.999)<<8 | uint32(lum*15.999)
	if key == e.current {
		return
	}
	sb.WriteString(sequenceFor(key, e.profile, h, lum))
	e.current = key
}

func (e *frameEmitter) reset(sb *strings.Builder) {
	if e.profile == colorNone || e.current == ^uint32(0) {
		return
	}
	sb.WriteString("\x1b[0m")
	e.current = ^uint32(0)
}

func sequenceFor(key uint32, profile colorProfile, hue, lum float64) string {
	if seq, ok := seqCache.Load(key); ok {
		return seq.(string)
	}

	col := colorful.Hsv(hue*360, 0.72, 0.3+0.7*lum)
	r, g, b := col.RGB255()

	var seq string
	switch profile {
	case colorTrueColor:
		seq = fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
	case colorANSI256:
		idx := 16 + 36*(int(r)*5/255) + 6*(int(g)*5/255) + int(b)*5/255
		seq = fmt.Sprintf("\x1b[38;5;%dm", idx)
	case colorANSI16:
		seq = fmt.Sprintf("\x1b[%dm", 30+nearestANSI16(r, g, b))
	default:
		seq = ""
	}

	seqCache.Store(key, seq)
	return seq
}

var ansi16 = [8][3]uint8{
	{0, 0, 0},
	{205, 49, 49},
	{13, 188, 121},
	{229, 229, 16},
	{36, 114, 200},
	{188, 63, 188},
	{17, 168, 205},
	{229, 229, 229},
}

func nearestANSI16(r, g, b uint8) int {
	best := 0
	bestDist := math.MaxFloat64
	for i, p := range ansi16 {
		dr := float64(r) - float64(p[0])
		dg := float64(g) - float64(p[1])
		db := float64(b) - float64(p[2])
		if d := dr*dr + dg*dg + db*db; d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}
