package physics

import (
	"testing"

	"github.com/astratt/vectoroids/internal/geom"
)

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name   string
		c1     geom.Vec2
		r1     float64
		c2     geom.Vec2
		r2     float64
		expect bool
	}{
		{"clearly overlapping", geom.Vec2{X: 0, Y: 0}, 5, geom.Vec2{X: 3, Y: 0}, 5, true},
		{"clearly apart", geom.Vec2{X: 0, Y: 0}, 1, geom.Vec2{X: 10, Y: 0}, 1, false},
		{"exactly touching", geom.Vec2{X: 0, Y: 0}, 2, geom.Vec2{X: 5, Y: 0}, 3, true},
		{"barely apart", geom.Vec2{X: 0, Y: 0}, 2, geom.Vec2{X: 5.001, Y: 0}, 3, false},
		{"same center", geom.Vec2{X: 4, Y: 4}, 1, geom.Vec2{X: 4, Y: 4}, 1, true},
	}

	for _, tt := range tests {
		if got := CirclesOverlap(tt.c1, tt.r1, tt.c2, tt.r2); got != tt.expect {
			t.Errorf("%s: CirclesOverlap = %v, want %v", tt.name, got, tt.expect)
		}
	}
}

func TestCirclesOverlapSymmetric(t *testing.T) {
	pairs := []struct {
		c1     geom.Vec2
		r1     float64
		c2     geom.Vec2
		r2     float64
	}{
		{geom.Vec2{X: 1, Y: 2}, 3, geom.Vec2{X: 4, Y: 6}, 1},
		{geom.Vec2{X: 0, Y: 0}, 2, geom.Vec2{X: 5, Y: 0}, 3},
		{geom.Vec2{X: -3, Y: 7}, 0.5, geom.Vec2{X: -3.2, Y: 7.1}, 0.25},
	}

	for _, p := range pairs {
		ab := CirclesOverlap(p.c1, p.r1, p.c2, p.r2)
		ba := CirclesOverlap(p.c2, p.r2, p.c1, p.r1)
		if ab != ba {
			t.Errorf("asymmetric result for %v/%v: %v vs %v", p.c1, p.c2, ab, ba)
		}
	}
}

func TestPointInCircle(t *testing.T) {
	center := geom.Vec2{X: 10, Y: 10}
	if !PointInCircle(geom.Vec2{X: 12, Y: 10}, center, 3) {
		t.Error("point inside circle not detected")
	}
	if !PointInCircle(geom.Vec2{X: 13, Y: 10}, center, 3) {
		t.Error("point on boundary must count as inside")
	}
	if PointInCircle(geom.Vec2{X: 14, Y: 10}, center, 3) {
		t.Error("point outside circle detected as inside")
	}
}

func TestSpatialGridFindsNeighbors(t *testing.T) {
	g := NewSpatialGrid(100, 100, 10)

	positions := []geom.Vec2{
		{X: 5, Y: 5},
		{X: 8, Y: 5},
		{X: 50, Y: 50},
	}
	for i, p := range positions {
		g.Insert(p, i)
	}

	var found []int
	g.QueryAround(geom.Vec2{X: 6, Y: 6}, func(idx int) bool {
		found = append(found, idx)
		return false
	})

	has := func(want int) bool {
		for _, idx := range found {
			if idx == want {
				return true
			}
		}
		return false
	}
	if !has(0) || !has(1) {
		t.Errorf("query near (6,6) missed close items, got %v", found)
	}
	if has(2) {
		t.Errorf("query near (6,6) returned distant item, got %v", found)
	}
}

func TestSpatialGridWrapsAtEdges(t *testing.T) {
	g := NewSpatialGrid(100, 100, 10)

	// Item just inside the far edge must be visible from the near edge.
	g.Insert(geom.Vec2{X: 99, Y: 99}, 7)

	found := false
	g.QueryAround(geom.Vec2{X: 1, Y: 1}, func(idx int) bool {
		if idx == 7 {
			found = true
			return true
		}
		return false
	})
	if !found {
		t.Error("query at (1,1) did not see item at (99,99) in wrapping world")
	}
}

func TestSpatialGridClear(t *testing.T) {
	g := NewSpatialGrid(100, 100, 10)
	g.Insert(geom.Vec2{X: 5, Y: 5}, 0)
	g.Clear()

	count := 0
	g.QueryAround(geom.Vec2{X: 5, Y: 5}, func(int) bool {
		count++
		return false
	})
	if count != 0 {
		t.Errorf("grid not empty after Clear, found %d items", count)
	}
}
