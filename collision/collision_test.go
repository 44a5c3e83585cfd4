package collision

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func vecApprox(a, b cp.Vector) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}

func TestCollide(t *testing.T) {
	cases := []struct {
		name       string
		posA       cp.Vector
		a          Shape
		posB       cp.Vector
		b          Shape
		wantHit    bool
		wantNormal cp.Vector
		wantDepth  float64
	}{
		{
			name: "circles_apart",
			posA: cp.Vector{}, a: Circle(16),
			posB: cp.Vector{X: 40}, b: Circle(16),
		},
		{
			name: "circles_touching",
			posA: cp.Vector{}, a: Circle(16),
			posB: cp.Vector{X: 32}, b: Circle(16),
		},
		{
			name: "circles_overlap",
			posA: cp.Vector{}, a: Circle(16),
			posB: cp.Vector{X: 30}, b: Circle(16),
			wantHit: true, wantNormal: cp.Vector{X: 1}, wantDepth: 2,
		},
		{
			name: "circles_coincident",
			posA: cp.Vector{X: 5, Y: 5}, a: Circle(10),
			posB: cp.Vector{X: 5, Y: 5}, b: Circle(6),
			wantHit: true, wantNormal: cp.Vector{X: 1}, wantDepth: 16,
		},
		{
			name: "boxes_overlap_x",
			posA: cp.Vector{}, a: Box(32, 16),
			posB: cp.Vector{X: 60, Y: 4}, b: Box(32, 16),
			wantHit: true, wantNormal: cp.Vector{X: 1}, wantDepth: 4,
		},
		{
			name: "boxes_overlap_y",
			posA: cp.Vector{}, a: Box(32, 16),
			posB: cp.Vector{X: 2, Y: -30}, b: Box(32, 16),
			wantHit: true, wantNormal: cp.Vector{Y: -1}, wantDepth: 2,
		},
		{
			name: "boxes_apart",
			posA: cp.Vector{}, a: Box(32, 16),
			posB: cp.Vector{Y: 40}, b: Box(32, 16),
		},
		{
			name: "circle_left_of_box",
			posA: cp.Vector{X: -40}, a: Circle(16),
			posB: cp.Vector{}, b: Box(32, 16),
			wantHit: true, wantNormal: cp.Vector{X: 1}, wantDepth: 8,
		},
		{
			name: "box_right_of_circle",
			posA: cp.Vector{}, a: Box(32, 16),
			posB: cp.Vector{X: -40}, b: Circle(16),
			wantHit: true, wantNormal: cp.Vector{X: -1}, wantDepth: 8,
		},
		{
			name: "circle_near_box_corner",
			posA: cp.Vector{X: 35, Y: 20}, a: Circle(16),
			posB: cp.Vector{}, b: Box(32, 16),
			wantHit: true, wantNormal: cp.Vector{X: -0.6, Y: -0.8}, wantDepth: 11,
		},
		{
			name: "circle_centre_inside_box",
			posA: cp.Vector{X: 0, Y: 10}, a: Circle(16),
			posB: cp.Vector{}, b: Box(32, 16),
			wantHit: true, wantNormal: cp.Vector{Y: -1}, wantDepth: 22,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, hit := Collide(c.posA, c.a, c.posB, c.b)
			if hit != c.wantHit {
				t.Fatalf("expected hit=%v, got %v (%+v)", c.wantHit, hit, got)
			}
			if !hit {
				return
			}
			if !vecApprox(got.Normal, c.wantNormal) {
				t.Fatalf("expected normal %v, got %v", c.wantNormal, got.Normal)
			}
			if !approx(got.Depth, c.wantDepth) {
				t.Fatalf("expected depth %v, got %v", c.wantDepth, got.Depth)
			}
		})
	}
}

func TestDisplacementSeparatesShapes(t *testing.T) {
	cases := []struct {
		name string
		posA cp.Vector
		a    Shape
		posB cp.Vector
		b    Shape
	}{
		{"circle_circle", cp.Vector{X: 3, Y: 4}, Circle(16), cp.Vector{X: 20, Y: 10}, Circle(16)},
		{"box_box", cp.Vector{X: 10, Y: 5}, Box(32, 16), cp.Vector{X: 40, Y: 20}, Box(32, 16)},
		{"circle_box", cp.Vector{X: 30, Y: 25}, Circle(16), cp.Vector{}, Box(32, 16)},
		{"box_circle", cp.Vector{}, Box(32, 16), cp.Vector{X: -20, Y: 24}, Circle(16)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			contact, hit := Collide(c.posA, c.a, c.posB, c.b)
			if !hit {
				t.Fatalf("expected overlap")
			}
			moved := c.posA.Add(contact.Displacement())
			if again, hit := Collide(moved, c.a, c.posB, c.b); hit {
				t.Fatalf("expected separation after displacement, still overlapping by %v", again.Depth)
			}
		})
	}
}

func TestContainsPoint(t *testing.T) {
	zone := Box(40, 40)
	if !ContainsPoint(cp.Vector{X: 100, Y: 100}, zone, cp.Vector{X: 130, Y: 70}) {
		t.Fatalf("expected point inside box zone")
	}
	if !ContainsPoint(cp.Vector{}, zone, cp.Vector{X: 40, Y: -40}) {
		t.Fatalf("expected boundary point to count as inside")
	}
	if ContainsPoint(cp.Vector{}, zone, cp.Vector{X: 41}) {
		t.Fatalf("expected point outside box zone")
	}
	if !ContainsPoint(cp.Vector{}, Circle(10), cp.Vector{X: 6, Y: 8}) {
		t.Fatalf("expected point on circle edge to count as inside")
	}
	if ContainsPoint(cp.Vector{}, Circle(10), cp.Vector{X: 8, Y: 8}) {
		t.Fatalf("expected point outside circle")
	}
}
