package geometry

// Simplify reduces the polyline with the Ramer-Douglas-Peucker algorithm.
// The result is a subsequence of the input that always keeps the first and
// last points; no dropped point deviates more than epsilon from the chord of
// the segment it was collapsed into. Inputs shorter than 3 points come back
// unchanged.
//
// The usual recursive formulation is replaced by an explicit stack of index
// ranges over the input plus a keep-mask, so a pathological stroke with
// thousands of samples cannot grow the call stack.
func Simplify(points []Point, epsilon float64) []Point {
	if len(points) < 3 {
		return points
	}

	keep := make([]bool, len(points))
	keep[0] = true
	keep[len(points)-1] = true

	type span struct{ first, last int }
	stack := []span{{0, len(points) - 1}}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		maxDist := 0.0
		maxIdx := -1
		for i := s.first + 1; i < s.last; i++ {
			d := chordDistance(points[i], points[s.first], points[s.last])
			if d > maxDist {
				maxDist = d
				maxIdx = i
			}
		}
		if maxDist > epsilon {
			keep[maxIdx] = true
			stack = append(stack, span{s.first, maxIdx}, span{maxIdx, s.last})
		}
	}

	out := make([]Point, 0, len(points))
	for i, p := range points {
		if keep[i] {
			out = append(out, p)
		}
	}
	return out
}

// chordDistance is the perpendicular distance from p to the infinite line
// through a and b. A zero-length chord degenerates to the plain distance from
// p to that shared location.
func chordDistance(p, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := Distance(a, b)
	if length == 0 {
		return Distance(p, a)
	}
	cross := dx*(p.Y-a.Y) - dy*(p.X-a.X)
	if cross < 0 {
		cross = -cross
	}
	return cross / length
}
