package visualizer

import "testing"

func TestWrapIndexNonNegativeForAnyInput(t *testing.T) {
	cases := []struct {
		i, n, want int
	}{
		{0, 8, 0},
		{7, 8, 7},
		{8, 8, 0},
		{13, 8, 5},
		{-1, 8, 7},
		{-8, 8, 0},
		{-13, 8, 3},
		{5, 1, 0},
		{3, 0, 0},
		{3, -2, 0},
	}
	for _, c := range cases {
		if got := WrapIndex(c.i, c.n); got != c.want {
			t.Errorf("WrapIndex(%d, %d) = %d, want %d", c.i, c.n, got, c.want)
		}
	}
}

func TestSampleWrapped(t *testing.T) {
	buf := []float64{1, 2, 3, 4}
	if got := sampleWrapped(buf, 5); got != 2 {
		t.Fatalf("expected wrapped sample 2, got %v", got)
	}
	if got := sampleWrapped(buf, -1); got != 4 {
		t.Fatalf("expected wrapped sample 4 for negative index, got %v", got)
	}
	if got := sampleWrapped(nil, 3); got != 0 {
		t.Fatalf("expected 0 for empty buffer, got %v", got)
	}
}

func TestWrapCoordToroidal(t *testing.T) {
	cases := []struct {
		v, extent, want float64
	}{
		{12.5, 10, 2.5},
		{-0.5, 10, 9.5},
		{10, 10, 0},
		{0.25, 1, 0.25},
		{1.75, 1, 0.75},
		{-3, 1, 0},
	}
	for _, c := range cases {
		if got := wrapCoord(c.v, c.extent); got != c.want {
			t.Errorf("wrapCoord(%v, %v) = %v, want %v", c.v, c.extent, got, c.want)
		}
	}
}

func TestWrapCoordStaysBelowExtentForTinyNegatives(t *testing.T) {
	// math.Mod(-1e-16, 10) + 10 rounds to exactly 10; the result must still
	// land inside [0, 10).
	for _, v := range []float64{-1e-16, -1e-300, -5e-17} {
		got := wrapCoord(v, 10)
		if got < 0 || got >= 10 {
			t.Errorf("wrapCoord(%v, 10) = %v, outside [0, 10)", v, got)
		}
	}
}
