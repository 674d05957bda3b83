package common

// Vec2 is a 2D point or direction.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Intersects reports whether r and other overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// IntersectsCircle reports whether the circle at center with the given radius
// overlaps r. The test clamps the center onto the rectangle and compares the
// squared distance against the squared radius.
func (r Rect) IntersectsCircle(center Vec2, radius float64) bool {
	cx := Clamp(center.X, r.X, r.X+r.Width)
	cy := Clamp(center.Y, r.Y, r.Y+r.Height)
	dx := center.X - cx
	dy := center.Y - cy
	return dx*dx+dy*dy <= radius*radius
}
