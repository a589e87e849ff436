package canvas

import (
	"strings"
	"testing"
)

func TestSizeIsPixelResolution(t *testing.T) {
	c := New(10, 5)
	w, h := c.Size()
	if w != 20 || h != 20 {
		t.Fatalf("expected 20x20 pixels for 10x5 cells, got %dx%d", w, h)
	}
}

func TestResizeClampsToMinimumCell(t *testing.T) {
	c := New(0, -3)
	w, h := c.Size()
	if w != 2 || h != 4 {
		t.Fatalf("expected 2x4 pixel floor, got %dx%d", w, h)
	}
}

func TestPlotMapsToBrailleDot(t *testing.T) {
	c := New(2, 1)
	c.Plot(0, 0, 0, 1) // top-left dot of the first cell, bit 0

	out := stripANSI(c.Render())
	if got := []rune(out)[0]; got != rune(0x2801) {
		t.Fatalf("expected U+2801 for top-left dot, got %U", got)
	}
	if got := []rune(out)[1]; got != ' ' {
		t.Fatalf("expected empty second cell, got %q", got)
	}
}

func TestPlotIgnoresOutOfBounds(t *testing.T) {
	c := New(2, 2)
	c.Plot(-1, 0, 0, 1)
	c.Plot(0, -1, 0, 1)
	c.Plot(99, 99, 0, 1)
	if out := stripANSI(c.Render()); strings.Trim(out, " \n") != "" {
		t.Fatalf("expected empty canvas, got %q", out)
	}
}

func TestFadeDecaysToEmpty(t *testing.T) {
	c := New(4, 2)
	c.Disc(3, 3, 2, 0.5, 1)
	if strings.Trim(stripANSI(c.Render()), " \n") == "" {
		t.Fatal("expected lit cells before fading")
	}

	for i := 0; i < 40; i++ {
		c.Fade(0.82)
	}
	if out := stripANSI(c.Render()); strings.Trim(out, " \n") != "" {
		t.Fatalf("expected trail to fade to empty, got %q", out)
	}
}

func TestFadeIsMonotone(t *testing.T) {
	c := New(2, 1)
	c.Plot(0, 0, 0, 1)
	prev := c.lum[0]
	for i := 0; i < 5; i++ {
		c.Fade(0.9)
		if c.lum[0] > prev {
			t.Fatalf("expected intensity to decay, %v -> %v", prev, c.lum[0])
		}
		prev = c.lum[0]
	}
}

func TestResizeDropsContent(t *testing.T) {
	c := New(4, 2)
	c.Disc(2, 2, 2, 0, 1)
	c.Resize(6, 3)
	if out := stripANSI(c.Render()); strings.Trim(out, " \n") != "" {
		t.Fatalf("expected cleared canvas after resize, got %q", out)
	}
	if w, h := c.Size(); w != 12 || h != 12 {
		t.Fatalf("expected 12x12 pixels after resize, got %dx%d", w, h)
	}
}

func TestGlowFallsOffFromCenter(t *testing.T) {
	c := New(8, 4)
	c.Glow(8, 8, 7, 0.3, 1)

	center := c.lum[8*16+8]
	rim := c.lum[8*16+13]
	if center <= rim {
		t.Fatalf("expected center brighter than rim, center %v rim %v", center, rim)
	}
	if center <= 0 {
		t.Fatal("expected glow to light the center")
	}
}

func TestStrokePathDrawsConnectedSegments(t *testing.T) {
	c := New(8, 2)
	c.MoveTo(0, 0)
	c.LineTo(15, 0)
	c.LineTo(15, 7)
	c.StrokePath(0.1, 1)

	if c.lum[0] == 0 || c.lum[15] == 0 || c.lum[7*16+15] == 0 {
		t.Fatal("expected path endpoints and corner to be lit")
	}
	// Path is consumed by the stroke.
	c.StrokePath(0.1, 1)
	if len(c.path) != 0 {
		t.Fatal("expected path cleared after stroke")
	}
}

func TestRenderLineCount(t *testing.T) {
	c := New(5, 3)
	if got := len(strings.Split(c.Render(), "\n")); got != 3 {
		t.Fatalf("expected 3 rows, got %d", got)
	}
}

func stripANSI(s string) string {
	var out strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case inEsc:
			if r == 'm' {
				inEsc = false
			}
		case r == '\x1b':
			inEsc = true
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}
