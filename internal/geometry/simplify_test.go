package geometry

import (
	"math"
	"testing"
)

func TestSimplifyShortInputsUnchanged(t *testing.T) {
	for _, points := range [][]Point{
		nil,
		{{1, 2}},
		{{1, 2}, {3, 4}},
	} {
		got := Simplify(points, 1.0)
		if len(got) != len(points) {
			t.Fatalf("input of %d points changed length to %d", len(points), len(got))
		}
		for i := range points {
			if got[i] != points[i] {
				t.Fatalf("point %d changed: %v -> %v", i, points[i], got[i])
			}
		}
	}
}

func TestSimplifyCollapsesCollinear(t *testing.T) {
	points := make([]Point, 0, 50)
	for i := 0; i < 50; i++ {
		points = append(points, Point{X: float64(i), Y: 2 * float64(i)})
	}
	got := Simplify(points, 0.5)
	if len(got) != 2 {
		t.Fatalf("collinear run simplified to %d points, want 2", len(got))
	}
	if got[0] != points[0] || got[1] != points[len(points)-1] {
		t.Errorf("endpoints not retained: %v", got)
	}
}

func TestSimplifyKeepsCorner(t *testing.T) {
	// Dense L-shaped path: both legs collapse but the corner must survive.
	var points []Point
	for i := 0; i <= 10; i++ {
		points = append(points, Point{X: float64(i), Y: 0})
	}
	for j := 1; j <= 10; j++ {
		points = append(points, Point{X: 10, Y: float64(j)})
	}
	got := Simplify(points, 0.5)

	want := []Point{{0, 0}, {10, 0}, {10, 10}}
	if len(got) != len(want) {
		t.Fatalf("got %d points %v, want %v", len(got), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSimplifyZeroChord(t *testing.T) {
	// Closed loop: first and last points coincide, so the top-level chord has
	// zero length and distance falls back to plain point distance.
	points := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}
	got := Simplify(points, 1.0)
	if len(got) < 3 {
		t.Fatalf("loop collapsed to %d points: %v", len(got), got)
	}
	if got[0] != points[0] || got[len(got)-1] != points[len(points)-1] {
		t.Errorf("endpoints not retained: %v", got)
	}
}

// TestSimplifyInvariants checks the contract on a mix of inputs: output is a
// subsequence, never longer than the input, and keeps both endpoints.
func TestSimplifyInvariants(t *testing.T) {
	inputs := map[string][]Point{
		"sine":     sineWave(200),
		"circle":   circleTrace(128, 100),
		"zigzag":   zigzag(60),
		"constant": repeated(Point{5, 5}, 20),
	}
	for name, points := range inputs {
		for _, epsilon := range []float64{0.1, 1, 5, 50} {
			got := Simplify(points, epsilon)
			if len(got) > len(points) {
				t.Errorf("%s eps=%v: output longer than input", name, epsilon)
			}
			if got[0] != points[0] || got[len(got)-1] != points[len(points)-1] {
				t.Errorf("%s eps=%v: endpoints not retained", name, epsilon)
			}
			// Subsequence check: every output point appears in input order.
			j := 0
			for _, p := range got {
				for j < len(points) && points[j] != p {
					j++
				}
				if j == len(points) {
					t.Errorf("%s eps=%v: output is not a subsequence", name, epsilon)
					break
				}
				j++
			}
		}
	}
}

func sineWave(n int) []Point {
	points := make([]Point, n)
	for i := range points {
		x := float64(i)
		points[i] = Point{X: x, Y: 20 * math.Sin(x/10)}
	}
	return points
}

func circleTrace(n int, r float64) []Point {
	points := make([]Point, n)
	for i := range points {
		a := 2 * math.Pi * float64(i) / float64(n)
		points[i] = Point{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}
	return points
}

func zigzag(n int) []Point {
	points := make([]Point, n)
	for i := range points {
		y := 0.0
		if i%2 == 1 {
			y = 10
		}
		points[i] = Point{X: float64(i * 3), Y: y}
	}
	return points
}

func repeated(p Point, n int) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = p
	}
	return points
}
