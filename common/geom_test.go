package common

import "testing"

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 10, Height: 10}

	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", Rect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"contained", Rect{X: 2, Y: 2, Width: 4, Height: 4}, true},
		{"touching_edge", Rect{X: 10, Y: 0, Width: 5, Height: 5}, false},
		{"disjoint", Rect{X: 20, Y: 20, Width: 5, Height: 5}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := base.Intersects(c.other); got != c.want {
				t.Fatalf("Intersects(%+v) = %v, want %v", c.other, got, c.want)
			}
			if got := c.other.Intersects(base); got != c.want {
				t.Fatalf("Intersects is not symmetric for %+v", c.other)
			}
		})
	}
}

func TestRectIntersectsCircle(t *testing.T) {
	box := Rect{X: 100, Y: 100, Width: 40, Height: 40}

	cases := []struct {
		name   string
		center Vec2
		radius float64
		want   bool
	}{
		{"center_inside", Vec2{X: 120, Y: 120}, 5, true},
		{"touching_left_edge", Vec2{X: 95, Y: 120}, 5, true},
		{"near_miss_left", Vec2{X: 94, Y: 120}, 5, false},
		{"corner_hit", Vec2{X: 97, Y: 97}, 5, true},
		{"corner_miss", Vec2{X: 95, Y: 95}, 5, false},
		{"far_away", Vec2{X: 0, Y: 0}, 5, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := box.IntersectsCircle(c.center, c.radius); got != c.want {
				t.Fatalf("IntersectsCircle(%+v, %v) = %v, want %v", c.center, c.radius, got, c.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 10, 0},
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", c.v, c.lo, c.hi, got, c.want)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Fatalf("Lerp(0, 10, 0.5) = %v, want 5", got)
	}
	if got := Lerp(2, 2, 0.7); got != 2 {
		t.Fatalf("Lerp(2, 2, 0.7) = %v, want 2", got)
	}
}
