package skitter

// Box is an axis-aligned rectangle in world space described by its center
// and half-extents.
type Box struct {
	Center     Vec2
	HalfExtent Vec2
}

// BoxFromTransform returns the box covered by a unit quad scaled by
// t.Scale and centered on t.Position.
func BoxFromTransform(t Transform) Box {
	return Box{Center: t.Position, HalfExtent: t.Scale.Scale(0.5)}
}

// Contains reports whether p lies strictly inside the box. Points on an
// edge are outside.
func (b Box) Contains(p Vec2) bool {
	return p.X > b.Center.X-b.HalfExtent.X && p.X < b.Center.X+b.HalfExtent.X &&
		p.Y > b.Center.Y-b.HalfExtent.Y && p.Y < b.Center.Y+b.HalfExtent.Y
}

// Min returns the top-left corner.
func (b Box) Min() Vec2 { return b.Center.Sub(b.HalfExtent) }

// Max returns the bottom-right corner.
func (b Box) Max() Vec2 { return b.Center.Add(b.HalfExtent) }

// Repel mirrors center through itself away from point:
// the result is center - (point - center).
func Repel(center, point Vec2) Vec2 {
	return center.Sub(point.Sub(center))
}
