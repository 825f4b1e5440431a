package skitter

import "testing"

func TestBoxContainsCenter(t *testing.T) {
	centers := []Vec2{{0, 0}, {123.5, -7}, {-1e6, 1e6}}
	halves := []Vec2{{50, 50}, {0.001, 3}, {1e4, 0.5}}
	for _, c := range centers {
		for _, h := range halves {
			if !(Box{Center: c, HalfExtent: h}).Contains(c) {
				t.Errorf("box center %v half %v does not contain its center", c, h)
			}
		}
	}
}

func TestBoxEdgesAreOutside(t *testing.T) {
	b := Box{Center: Vec2{10, -20}, HalfExtent: Vec2{50, 30}}
	edges := []Vec2{
		{60, -20},  // right
		{-40, -20}, // left
		{10, 10},   // bottom
		{10, -50},  // top
		{60, 10},   // corner
	}
	for _, p := range edges {
		if b.Contains(p) {
			t.Errorf("edge point %v reported inside", p)
		}
	}
}

func TestBoxContainsInterior(t *testing.T) {
	b := Box{HalfExtent: Vec2{50, 50}}
	if !b.Contains(Vec2{49.999, -49.999}) {
		t.Error("point just inside the corner should hit")
	}
	if b.Contains(Vec2{60, 0}) {
		t.Error("point outside on X should miss")
	}
	if b.Contains(Vec2{0, -50.001}) {
		t.Error("point outside on Y should miss")
	}
}

func TestBoxFromTransform(t *testing.T) {
	b := BoxFromTransform(Transform{Position: Vec2{5, 6}, Scale: Vec2{100, 40}})
	assertVec(t, "center", b.Center, Vec2{5, 6})
	assertVec(t, "half extent", b.HalfExtent, Vec2{50, 20})
	assertVec(t, "min", b.Min(), Vec2{-45, -14})
	assertVec(t, "max", b.Max(), Vec2{55, 26})
}

func TestRepel(t *testing.T) {
	assertVec(t, "Repel((0,0),(10,10))", Repel(Vec2{}, Vec2{10, 10}), Vec2{-10, -10})

	pairs := [][2]Vec2{
		{{0, 0}, {10, 10}},
		{{3, -4}, {3, -4}},
		{{-12.5, 7}, {100, 0.25}},
	}
	for _, pair := range pairs {
		c, p := pair[0], pair[1]
		got := Repel(c, p)
		assertVec(t, "2C-P", got, c.Scale(2).Sub(p))
		// The new center sits as far from the old one as the point, on the
		// opposite side.
		assertVec(t, "mirror", got.Sub(c), c.Sub(p))
	}
}

func TestRepelTwiceDoesNotReturn(t *testing.T) {
	c, p := Vec2{0, 0}, Vec2{10, 0}
	if got := Repel(Repel(c, p), p); got == c {
		t.Errorf("Repel twice returned to %v", c)
	}
}
