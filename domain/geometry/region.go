package geometry

// Region is an axis-aligned rectangle in image-pixel coordinates. Width and
// Height may be negative while a drag gesture is in progress; Regularize
// yields the canonical non-negative form covering the same extent.
type Region struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Regularize returns a copy with non-negative dimensions, shifting X/Y so the
// covered extent is unchanged. Pure; calling it twice yields the same value.
func (r Region) Regularize() Region {
	out := r
	if r.Width < 0 {
		out.X = r.X + r.Width
		out.Width = -r.Width
	}
	if r.Height < 0 {
		out.Y = r.Y + r.Height
		out.Height = -r.Height
	}
	return out
}

// IsValid reports whether the region has nonzero extent in both dimensions.
// A line-shaped drag (either dimension exactly zero) is invalid and gets
// discarded rather than clamped to a minimum size.
func (r Region) IsValid() bool {
	return r.Width != 0 && r.Height != 0
}

// Area returns Width*Height. The result is negative for a mirrored in-progress
// drag; regularize first when a magnitude is needed.
func (r Region) Area() float64 {
	return r.Width * r.Height
}

// EqualTo reports whether both regions cover the same extent, comparing the
// regularized forms so a region and its mirrored-drag equivalent are equal.
func (r *Region) EqualTo(other *Region) bool {
	if r == other {
		return true
	}
	if r == nil || other == nil {
		return false
	}
	a := r.Regularize()
	b := other.Regularize()
	return a.X == b.X && a.Y == b.Y && a.Width == b.Width && a.Height == b.Height
}

// Equal is the nil-safe comparison: true when both are nil or both non-nil
// and equal under EqualTo.
func Equal(a, b *Region) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.EqualTo(b)
}
