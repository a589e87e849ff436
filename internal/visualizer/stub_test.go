package visualizer

// stubSurface satisfies Surface for algorithm tests, counting operations
// instead of rasterizing.
type stubSurface struct {
	w, h    int
	plots   int
	discs   int
	rings   int
	strokes int
	glows   int
	fades   int
}

func (s *stubSurface) Size() (int, int) { return s.w, s.h }

func (s *stubSurface) Fade(float64) { s.fades++ }

func (s *stubSurface) Plot(x, y, hue, lum float64) { s.plots++ }

func (s *stubSurface) Disc(cx, cy, r, hue, lum float64) { s.discs++ }

func (s *stubSurface) Ring(cx, cy, r, hue, lum float64) { s.rings++ }

func (s *stubSurface) MoveTo(x, y float64) {}

func (s *stubSurface) LineTo(x, y float64) {}

func (s *stubSurface) StrokePath(hue, lum float64) { s.strokes++ }

func (s *stubSurface) Glow(cx, cy, r, hue, lum float64) { s.glows++ }
