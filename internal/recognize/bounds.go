package recognize

import "sketchboard/internal/geometry"

// Bounds returns the axis-aligned box the recognized primitive occupies.
// KindUnknown yields the zero box.
func (a Analysis) Bounds() geometry.Bounds {
	switch a.Kind {
	case KindLine:
		if a.Line != nil {
			return geometry.BoundsOf([]geometry.Point{a.Line.Start, a.Line.End})
		}
	case KindRect:
		if a.Rect != nil {
			return geometry.Bounds{
				MinX: a.Rect.Left, MinY: a.Rect.Top,
				MaxX: a.Rect.Left + a.Rect.Width, MaxY: a.Rect.Top + a.Rect.Height,
			}
		}
	case KindTriangle:
		if a.Triangle != nil {
			return geometry.Bounds{
				MinX: a.Triangle.CX - a.Triangle.Width/2, MinY: a.Triangle.CY - a.Triangle.Height/2,
				MaxX: a.Triangle.CX + a.Triangle.Width/2, MaxY: a.Triangle.CY + a.Triangle.Height/2,
			}
		}
	case KindCircle:
		if a.Circle != nil {
			return geometry.Bounds{
				MinX: a.Circle.CX - a.Circle.Radius, MinY: a.Circle.CY - a.Circle.Radius,
				MaxX: a.Circle.CX + a.Circle.Radius, MaxY: a.Circle.CY + a.Circle.Radius,
			}
		}
	}
	return geometry.Bounds{}
}
