// Package canvas provides a high-resolution terminal drawing surface built
// from Unicode Braille characters. Each terminal cell is a 2x4 dot grid,
// giving square-ish pixels at 2x horizontal and 4x vertical cell resolution.
// Pixels carry an intensity and a hue; Fade multiplies every intensity by a
// factor below one, which is how the renderer gets its exponential
// trail/afterimage compositing without a real alpha channel.
package canvas

import (
	"math"
	"strings"
)

// Dots dimmer than this render as empty and are treated as dead by Fade.
const lumFloor = 0.045

type point struct {
	x float64
	y float64
}

// Canvas is a pixel buffer over a cols x rows cell grid. It is not safe for
// concurrent use; the scheduler and router share one event loop.
type Canvas struct {
	cols int
	rows int
	pw   int // pixel width = cols*2
	ph   int // pixel height = rows*4

	lum []float64
	hue []float64

	path []point

	color *ansiPalette
}

// New creates a canvas covering cols x rows terminal cells.
func New(cols, rows int) *Canvas {
	c := &Canvas{color: newANSIPalette()}
	c.Resize(cols, rows)
	return c
}

// Resize reallocates the pixel buffers for a new cell grid. Previous pixel
// content is dropped; the next frame repaints from live visualizer state.
func (c *Canvas) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	c.cols, c.rows = cols, rows
	c.pw, c.ph = cols*2, rows*4
	c.lum = make([]float64, c.pw*c.ph)
	c.hue = make([]float64, c.pw*c.ph)
}

// Size returns the surface dimensions in pixels.
func (c *Canvas) Size() (w, h int) {
	return c.pw, c.ph
}

// Fade multiplies every pixel intensity by factor, clearing dots that drop
// below the render floor. factor < 1 produces the trailing afterimage.
func (c *Canvas) Fade(factor float64) {
	for i, l := range c.lum {
		l *= factor
		if l < lumFloor {
			l = 0
		}
		c.lum[i] = l
	}
}

// Plot lights the pixel at (x, y). Overlapping draws keep the brighter
// intensity and its hue.
func (c *Canvas) Plot(x, y, hue, lum float64) {
	px := int(math.Round(x))
	py := int(math.Round(y))
	if px < 0 || px >= c.pw || py < 0 || py >= c.ph || lum <= 0 {
		return
	}
	i := py*c.pw + px
	if lum > c.lum[i] {
		c.lum[i] = math.Min(lum, 1)
		c.hue[i] = hue
	}
}

// Disc fills a circle of radius r centered at (cx, cy).
func (c *Canvas) Disc(cx, cy, r, hue, lum float64) {
	if r < 0.5 {
		c.Plot(cx, cy, hue, lum)
		return
	}
	x0 := int(math.Floor(cx - r))
	x1 := int(math.Ceil(cx + r))
	y0 := int(math.Floor(cy - r))
	y1 := int(math.Ceil(cy + r))
	rr := r * r
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			dx := float64(px) - cx
			dy := float64(py) - cy
			if dx*dx+dy*dy <= rr {
				c.Plot(float64(px), float64(py), hue, lum)
			}
		}
	}
}

// Ring strokes a circle outline of radius r centered at (cx, cy).
func (c *Canvas) Ring(cx, cy, r, hue, lum float64) {
	if r <= 0 {
		return
	}
	steps := int(2 * math.Pi * r)
	if steps < 8 {
		steps = 8
	}
	for s := 0; s < steps; s++ {
		a := float64(s) / float64(steps) * 2 * math.Pi
		c.Plot(cx+math.Cos(a)*r, cy+math.Sin(a)*r, hue, lum)
	}
}

// MoveTo starts a new path at (x, y), discarding any open path.
func (c *Canvas) MoveTo(x, y float64) {
	c.path = c.path[:0]
	c.path = append(c.path, point{x, y})
}

// LineTo extends the open path to (x, y).
func (c *Canvas) LineTo(x, y float64) {
	if len(c.path) == 0 {
		c.MoveTo(x, y)
		return
	}
	c.path = append(c.path, point{x, y})
}

// StrokePath rasterizes the open path as connected line segments and
// closes it.
func (c *Canvas) StrokePath(hue, lum float64) {
	for i := 1; i < len(c.path); i++ {
		c.line(c.path[i-1], c.path[i], hue, lum)
	}
	c.path = c.path[:0]
}

// line is Bresenham over the pixel grid.
func (c *Canvas) line(a, b point, hue, lum float64) {
	x0 := int(math.Round(a.x))
	y0 := int(math.Round(a.y))
	x1 := int(math.Round(b.x))
	y1 := int(math.Round(b.y))

	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy

	for {
		c.Plot(float64(x0), float64(y0), hue, lum)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Glow fills a radial gradient of radius r centered at (cx, cy), intensity
// lum at the center falling off quadratically to zero at the rim.
func (c *Canvas) Glow(cx, cy, r, hue, lum float64) {
	if r < 1 || lum <= 0 {
		return
	}
	x0 := int(math.Floor(cx - r))
	x1 := int(math.Ceil(cx + r))
	y0 := int(math.Floor(cy - r))
	y1 := int(math.Ceil(cy + r))
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			dx := float64(px) - cx
			dy := float64(py) - cy
			d := math.Sqrt(dx*dx+dy*dy) / r
			if d >= 1 {
				continue
			}
			fall := (1 - d) * (1 - d)
			c.Plot(float64(px), float64(py), hue, lum*fall)
		}
	}
}

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// Render emits the cell grid as rows of Braille runes with ANSI color, one
// string per frame. Cell color comes from the brightest pixel in the cell.
func (c *Canvas) Render() string {
	var out strings.Builder
	out.Grow(c.rows * (c.cols + 16))
	emit := c.color.newFrame()

	for row := 0; row < c.rows; row++ {
		if row > 0 {
			out.WriteByte('\n')
		}
		for col := 0; col < c.cols; col++ {
			var pattern uint
			bestLum := 0.0
			bestHue := 0.0
			for dx := 0; dx < 2; dx++ {
				for dy := 0; dy < 4; dy++ {
					i := (row*4+dy)*c.pw + (col*2 + dx)
					l := c.lum[i]
					if l < lumFloor {
						continue
					}
					pattern |= 1 << brailleBits[dx][dy]
					if l > bestLum {
						bestLum = l
						bestHue = c.hue[i]
					}
				}
			}
			if pattern == 0 {
				out.WriteRune(' ')
				continue
			}
			emit.set(&out, bestHue, bestLum)
			out.WriteRune(rune(0x2800 + pattern))
		}
		emit.reset(&out)
	}

	return out.String()
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
