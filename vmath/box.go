package vmath

// Box is an axis-aligned volume described by center and half-size extents
// Negative extents are treated by absolute value
type Box struct {
	Center  Vec3F
	Extents Vec3F
}

// NewBoxMinMax builds a box from two opposite corners in any order
func NewBoxMinMax(a, b Vec3F) Box {
	lo := Vec3F{min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z)}
	hi := Vec3F{max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z)}
	return Box{
		Center:  V3FScale(V3FAdd(lo, hi), 0.5),
		Extents: V3FScale(V3FSub(hi, lo), 0.5),
	}
}

func (b Box) abs() Vec3F {
	e := b.Extents
	if e.X < 0 {
		e.X = -e.X
	}
	if e.Y < 0 {
		e.Y = -e.Y
	}
	if e.Z < 0 {
		e.Z = -e.Z
	}
	return e
}

// Min returns the lowest corner
func (b Box) Min() Vec3F {
	return V3FSub(b.Center, b.abs())
}

// Max returns the highest corner
func (b Box) Max() Vec3F {
	return V3FAdd(b.Center, b.abs())
}

// Size returns full edge lengths
func (b Box) Size() Vec3F {
	return V3FScale(b.abs(), 2)
}

// Contains reports whether p lies inside or on the surface
func (b Box) Contains(p Vec3F) bool {
	lo, hi := b.Min(), b.Max()
	return p.X >= lo.X && p.X <= hi.X &&
		p.Y >= lo.Y && p.Y <= hi.Y &&
		p.Z >= lo.Z && p.Z <= hi.Z
}

// ClosestPoint projects p onto the box, interior points are returned unchanged
func (b Box) ClosestPoint(p Vec3F) Vec3F {
	lo, hi := b.Min(), b.Max()
	return Vec3F{
		X: ClampF(p.X, lo.X, hi.X),
		Y: ClampF(p.Y, lo.Y, hi.Y),
		Z: ClampF(p.Z, lo.Z, hi.Z),
	}
}
