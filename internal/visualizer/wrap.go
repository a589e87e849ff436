package visualizer

import "math"

// WrapIndex maps any integer onto [0, n) by modulo, non-negative for
// negative inputs. Both the tunnel and ribbon algorithms sample their
// buffers circularly through this.
func WrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// sampleWrapped reads buf at index i with circular wraparound, returning 0
// for an empty buffer.
func sampleWrapped(buf []float64, i int) float64 {
	if len(buf) == 0 {
		return 0
	}
	return buf[WrapIndex(i, len(buf))]
}

// wrapCoord folds v onto [0, extent) toroidally, so a point leaving one
// edge re-enters the opposite edge carrying its overflow.
func wrapCoord(v, extent float64) float64 {
	if extent <= 0 {
		return 0
	}
	v = math.Mod(v, extent)
	if v < 0 {
		v += extent
	}
	// A tiny negative v can round to exactly extent after the add; fold it
	// back so the result stays inside [0, extent).
	if v >= extent {
		v = 0
	}
	return v
}
