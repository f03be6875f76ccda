package cube

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestBBoxIntersectsIgnoresTouchingFaces(t *testing.T) {
	a := Box(0, 0, 0, 1, 1, 1)
	if a.IntersectsWith(Box(1, 0, 0, 2, 1, 1)) {
		t.Fatalf("boxes sharing a face must not intersect")
	}
	if !a.IntersectsWith(Box(0.5, 0.5, 0.5, 2, 2, 2)) {
		t.Fatalf("overlapping boxes must intersect")
	}
}

func TestBBoxPenetrationPicksShorterWayOut(t *testing.T) {
	body := Box(0.2, 0.9, 0.2, 0.8, 2.7, 0.8)
	depth, positive := body.Penetration(Pos{0, 0, 0}.BBox())
	if !mgl64.FloatEqual(depth[1], 0.1) || !positive[1] {
		t.Fatalf("expected upward push of 0.1, got %v (positive=%v)", depth[1], positive[1])
	}
}

func TestBBoxWithMinAxisKeepsSize(t *testing.T) {
	b := Box(0, 0.3, 0, 1, 2.1, 1).WithMinAxis(1, 10)
	if b.Min()[1] != 10 || !mgl64.FloatEqual(b.Height(), 1.8) {
		t.Fatalf("unexpected box %v", b)
	}
}

func TestFloorDiv(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{0, 16, 0}, {15, 16, 0}, {16, 16, 1}, {-1, 16, -1}, {-16, 16, -1}, {-17, 16, -2},
	}
	for _, c := range cases {
		if got := FloorDiv(c.a, c.b); got != c.want {
			t.Fatalf("FloorDiv(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(-3) != 3 || Abs(4) != 4 || Abs(0) != 0 {
		t.Fatalf("integer Abs returned wrong values")
	}
	if Abs(-2.5) != 2.5 {
		t.Fatalf("float Abs(-2.5) = %v, want 2.5", Abs(-2.5))
	}
}
