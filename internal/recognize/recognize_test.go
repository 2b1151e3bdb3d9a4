package recognize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sketchboard/internal/geometry"
)

// lerpLine samples n points evenly between a and b, inclusive.
func lerpLine(a, b geometry.Point, n int) []geometry.Point {
	points := make([]geometry.Point, n)
	for i := range points {
		t := float64(i) / float64(n-1)
		points[i] = geometry.Point{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
	}
	return points
}

// tracePolygon walks the closed polygon edge by edge with perEdge samples per
// edge, starting and ending at the first vertex.
func tracePolygon(vertices []geometry.Point, perEdge int) []geometry.Point {
	var points []geometry.Point
	for i := range vertices {
		next := vertices[(i+1)%len(vertices)]
		edge := lerpLine(vertices[i], next, perEdge+1)
		points = append(points, edge[:perEdge]...)
	}
	return append(points, vertices[0])
}

func traceCircle(cx, cy, r float64, n int) []geometry.Point {
	points := make([]geometry.Point, n)
	for i := range points {
		a := 2 * math.Pi * float64(i) / float64(n)
		points[i] = geometry.Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
	}
	return points
}

func TestClassifyTooFewPoints(t *testing.T) {
	// A perfect line, but one sample short of the minimum.
	points := lerpLine(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 100, Y: 100}, MinPoints-1)
	got := Classify(points)

	assert.Equal(t, KindUnknown, got.Kind)
	assert.Zero(t, got.Score)
	assert.Nil(t, got.Line)
}

func TestClassifyDegenerateStroke(t *testing.T) {
	// Plenty of samples, all at one location: zero-size bounding box.
	points := make([]geometry.Point, 12)
	for i := range points {
		points[i] = geometry.Point{X: 40, Y: 40}
	}
	got := Classify(points)

	assert.Equal(t, KindUnknown, got.Kind)
	assert.Zero(t, got.Score)
}

func TestClassifyLine(t *testing.T) {
	a, b := geometry.Point{X: 10, Y: 20}, geometry.Point{X: 200, Y: 150}
	got := Classify(lerpLine(a, b, 20))

	require.Equal(t, KindLine, got.Kind)
	require.NotNil(t, got.Line)
	assert.Equal(t, a, got.Line.Start)
	assert.Equal(t, b, got.Line.End)
	assert.Greater(t, got.Score, 0.94)
}

func TestClassifyHorizontalLine(t *testing.T) {
	// Zero-height bounding box; the linearity test must run before any
	// box-based guard for this to classify at all.
	a, b := geometry.Point{X: 0, Y: 50}, geometry.Point{X: 150, Y: 50}
	got := Classify(lerpLine(a, b, 15))

	require.Equal(t, KindLine, got.Kind)
	assert.InDelta(t, 1.0, got.Score, 1e-9)
}

func TestClassifyWavyLineBeatsThinRect(t *testing.T) {
	// Slightly wavy but essentially straight: thin bounding box, a handful of
	// simplified vertices. Must come out a line, never a thin rectangle.
	points := make([]geometry.Point, 40)
	for i := range points {
		x := float64(i) * 5
		points[i] = geometry.Point{X: x, Y: 100 + 2*math.Sin(x/15)}
	}
	got := Classify(points)

	assert.Equal(t, KindLine, got.Kind)
}

func TestClassifyRect(t *testing.T) {
	const left, top, width, height = 20.0, 30.0, 120.0, 80.0
	points := tracePolygon([]geometry.Point{
		{X: left, Y: top}, {X: left + width, Y: top}, {X: left + width, Y: top + height}, {X: left, Y: top + height},
	}, 20)
	got := Classify(points)

	require.Equal(t, KindRect, got.Kind)
	require.NotNil(t, got.Rect)
	assert.InDelta(t, left, got.Rect.Left, 1e-9)
	assert.InDelta(t, top, got.Rect.Top, 1e-9)
	assert.InDelta(t, width, got.Rect.Width, 1e-9)
	assert.InDelta(t, height, got.Rect.Height, 1e-9)
}

func TestClassifyTriangle(t *testing.T) {
	points := tracePolygon([]geometry.Point{
		{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 50, Y: 90},
	}, 30)
	got := Classify(points)

	require.Equal(t, KindTriangle, got.Kind)
	require.NotNil(t, got.Triangle)
	assert.InDelta(t, 50, got.Triangle.CX, 1e-9)
	assert.InDelta(t, 45, got.Triangle.CY, 1e-9)
	assert.InDelta(t, 100, got.Triangle.Width, 1e-9)
	assert.InDelta(t, 90, got.Triangle.Height, 1e-9)
	assert.InDelta(t, 0.9, got.Score, 1e-9)
}

func TestClassifyCircle(t *testing.T) {
	const cx, cy, r = 200.0, 150.0, 80.0
	got := Classify(traceCircle(cx, cy, r, 64))

	require.Equal(t, KindCircle, got.Kind)
	require.NotNil(t, got.Circle)
	assert.InDelta(t, cx, got.Circle.CX, 1e-6)
	assert.InDelta(t, cy, got.Circle.CY, 1e-6)
	assert.InDelta(t, r, got.Circle.Radius, 1e-6)
	assert.Greater(t, got.Score, 0.99)
}

func TestClassifyFuzzyTriangleFallback(t *testing.T) {
	// A 7-pointed star: far too many simplified vertices for the vertex-count
	// stage, too spiky for the circle stage, but its fill ratio sits in the
	// fuzzy-triangle band.
	var vertices []geometry.Point
	for i := 0; i < 14; i++ {
		radius := 100.0
		if i%2 == 1 {
			radius = 55.0
		}
		a := math.Pi * float64(i) / 7
		vertices = append(vertices, geometry.Point{X: radius * math.Cos(a), Y: radius * math.Sin(a)})
	}
	got := Classify(tracePolygon(vertices, 10))

	require.Equal(t, KindTriangle, got.Kind)
	assert.InDelta(t, 0.7, got.Score, 1e-9)
}

func TestClassifyScribbleUnknown(t *testing.T) {
	// An open sawtooth scribble: many vertices, near-zero enclosed area.
	vertices := []geometry.Point{
		{X: 0, Y: 0}, {X: 14, Y: 80}, {X: 28, Y: 6}, {X: 42, Y: 74}, {X: 57, Y: 8}, {X: 71, Y: 76}, {X: 85, Y: 4}, {X: 100, Y: 78},
	}
	var points []geometry.Point
	for i := 0; i < len(vertices)-1; i++ {
		points = append(points, lerpLine(vertices[i], vertices[i+1], 10)[:9]...)
	}
	points = append(points, vertices[len(vertices)-1])
	got := Classify(points)

	assert.Equal(t, KindUnknown, got.Kind)
	assert.Zero(t, got.Score)
}

func TestClassifyPure(t *testing.T) {
	points := traceCircle(100, 100, 60, 48)
	backup := make([]geometry.Point, len(points))
	copy(backup, points)

	first := Classify(points)
	second := Classify(points)

	assert.Equal(t, first, second, "same stroke must classify identically")
	assert.Equal(t, backup, points, "input stroke must not be mutated")
}
