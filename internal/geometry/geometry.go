// Package geometry holds the small set of planar primitives the shape
// recognizer is built from: distances, path length, bounding boxes and the
// shoelace area estimate.
package geometry

import "math"

// Point is a 2D coordinate in board space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// PathLength returns the length of the polyline through the points in order.
// A single point (or none) has length 0.
func PathLength(points []Point) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += Distance(points[i-1], points[i])
	}
	return total
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// BoundsOf returns the componentwise min/max box of the points.
// The zero Bounds is returned for an empty slice.
func BoundsOf(points []Point) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	b := Bounds{
		MinX: points[0].X, MinY: points[0].Y,
		MaxX: points[0].X, MaxY: points[0].Y,
	}
	for _, p := range points[1:] {
		if p.X < b.MinX {
			b.MinX = p.X
		}
		if p.X > b.MaxX {
			b.MaxX = p.X
		}
		if p.Y < b.MinY {
			b.MinY = p.Y
		}
		if p.Y > b.MaxY {
			b.MaxY = p.Y
		}
	}
	return b
}

func (b Bounds) Width() float64  { return b.MaxX - b.MinX }
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Diagonal is the length of the box diagonal.
func (b Bounds) Diagonal() float64 {
	return math.Hypot(b.Width(), b.Height())
}

// Center is the midpoint of the box.
func (b Bounds) Center() Point {
	return Point{X: b.MinX + b.Width()/2, Y: b.MinY + b.Height()/2}
}

// Empty reports whether the box has zero extent on either axis.
func (b Bounds) Empty() bool {
	return b.Width() == 0 || b.Height() == 0
}

// Contains reports whether p lies inside the box (inclusive).
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Inset grows (negative d) or shrinks (positive d) the box on all sides.
func (b Bounds) Inset(d float64) Bounds {
	return Bounds{MinX: b.MinX + d, MinY: b.MinY + d, MaxX: b.MaxX - d, MaxY: b.MaxY - d}
}

// Union returns the smallest box covering both boxes.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		MinX: math.Min(b.MinX, o.MinX),
		MinY: math.Min(b.MinY, o.MinY),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MaxY: math.Max(b.MaxY, o.MaxY),
	}
}

// PolygonArea returns the absolute shoelace area of the point sequence treated
// as a closed polygon (last point connects back to the first). The sequence
// does not have to be closed, or even simple; for an open self-intersecting
// stroke this is an approximation of the enclosed area, which is exactly how
// the recognizer uses it.
func PolygonArea(points []Point) float64 {
	if len(points) < 3 {
		return 0
	}
	var sum float64
	n := len(points)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += points[i].X*points[j].Y - points[j].X*points[i].Y
	}
	return math.Abs(sum) / 2
}

// SegmentDistance returns the distance from p to the line segment a-b.
func SegmentDistance(p, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return Distance(p, a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Distance(p, Point{X: a.X + t*dx, Y: a.Y + t*dy})
}
