package state

import (
	"sketchboard/internal/geometry"
)

// HitTest finds the topmost object within tolerance of p, for the eraser
// tool. Strokes match on distance to their segments; shapes match on their
// inflated bounding box. A bounding-box prefilter keeps the segment walk off
// strokes that are nowhere near the pointer.
func (bs *BoardState) HitTest(p geometry.Point, tolerance float64) (string, bool) {
	bs.mu.RLock()
	defer bs.mu.RUnlock()

	for i := len(bs.order) - 1; i >= 0; i-- {
		id := bs.order[i]
		if s := bs.strokes[id]; s != nil && strokeHit(s, p, tolerance) {
			return id, true
		}
		if s := bs.shapes[id]; s != nil {
			box := s.Geom.Bounds().Inset(-(tolerance + float64(s.Width)))
			if box.Contains(p) {
				return id, true
			}
		}
	}
	return "", false
}

func strokeHit(s *Stroke, p geometry.Point, tolerance float64) bool {
	reach := tolerance + float64(s.Width)/2
	if !geometry.BoundsOf(s.Points).Inset(-reach).Contains(p) {
		return false
	}
	if len(s.Points) == 1 {
		return geometry.Distance(p, s.Points[0]) <= reach
	}
	for i := 0; i < len(s.Points)-1; i++ {
		if geometry.SegmentDistance(p, s.Points[i], s.Points[i+1]) <= reach {
			return true
		}
	}
	return false
}
