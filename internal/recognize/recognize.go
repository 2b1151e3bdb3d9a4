// Package recognize decides whether a completed freehand stroke was an attempt
// at an idealized primitive (line, rectangle, triangle, circle) or should stay
// freehand. Classification is a single pure function over the sampled points;
// the board decides what to do with the verdict.
package recognize

import (
	"math"

	"sketchboard/internal/geometry"
)

// Kind is the category a stroke classifies into.
type Kind string

const (
	KindLine     Kind = "line"
	KindRect     Kind = "rect"
	KindTriangle Kind = "triangle"
	KindCircle   Kind = "circle"
	KindUnknown  Kind = "unknown"
)

// MinPoints is the minimum stroke length considered for classification.
// Anything shorter is always unknown.
const MinPoints = 10

// Line is the payload for KindLine.
type Line struct {
	Start geometry.Point `json:"start"`
	End   geometry.Point `json:"end"`
}

// Rect is the payload for KindRect: the stroke's bounding box.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Triangle is the payload for KindTriangle. It carries the bounding-box
// center and extent, not vertex positions.
type Triangle struct {
	CX     float64 `json:"cx"`
	CY     float64 `json:"cy"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Circle is the payload for KindCircle.
type Circle struct {
	CX     float64 `json:"cx"`
	CY     float64 `json:"cy"`
	Radius float64 `json:"radius"`
}

// Analysis is the classification verdict. Exactly one payload pointer is
// non-nil unless Kind is KindUnknown. Score is in [0,1] and only meaningful
// within a single kind (linearity for lines, fill ratio or 1-variance for the
// rest); it is a diagnostic, not a cross-kind ranking.
type Analysis struct {
	Kind     Kind      `json:"kind"`
	Score    float64   `json:"score"`
	Line     *Line     `json:"line,omitempty"`
	Rect     *Rect     `json:"rect,omitempty"`
	Triangle *Triangle `json:"triangle,omitempty"`
	Circle   *Circle   `json:"circle,omitempty"`
}

// Tuning thresholds. These are part of the classifier's contract: changing
// any of them, or the order the checks run in, changes verdicts on ambiguous
// strokes.
const (
	lineLinearity = 0.94
	// A circle can fill at most pi/4 of its bounding box, so anything above
	// 0.80 is treated as a rectangle without looking at vertices.
	rectFillRatio   = 0.80
	epsilonFloor    = 5.0
	epsilonScale    = 0.04
	closedGapRatio  = 0.15
	circleVariance  = 0.05
	circleFillRatio = 0.60
	triFillLow      = 0.35
	triFillHigh     = 0.65
)

// Classify maps one completed stroke to an Analysis. It never mutates the
// input and keeps no state between calls; every degenerate input (too few
// points, zero-extent bounding box, stroke collapsed onto one location)
// resolves to KindUnknown rather than an error.
//
// The checks run in a fixed precedence order. In particular the line test
// runs before anything area-based, so a near-straight stroke is never misread
// as a thin rectangle, and an axis-aligned straight stroke (zero-height or
// zero-width box) still classifies as a line.
func Classify(points []geometry.Point) Analysis {
	if len(points) < MinPoints {
		return Analysis{Kind: KindUnknown}
	}

	start, end := points[0], points[len(points)-1]

	if total := geometry.PathLength(points); total > 0 {
		linearity := geometry.Distance(start, end) / total
		if linearity > lineLinearity {
			return Analysis{
				Kind:  KindLine,
				Score: linearity,
				Line:  &Line{Start: start, End: end},
			}
		}
	}

	box := geometry.BoundsOf(points)
	if box.Empty() {
		return Analysis{Kind: KindUnknown}
	}

	fill := geometry.PolygonArea(points) / (box.Width() * box.Height())
	if fill > rectFillRatio {
		return Analysis{Kind: KindRect, Score: fill, Rect: boxRect(box)}
	}

	diag := box.Diagonal()
	epsilon := math.Max(epsilonFloor, diag*epsilonScale)
	simplified := geometry.Simplify(points, epsilon)

	gap := diag * closedGapRatio
	closed := geometry.Distance(simplified[0], simplified[len(simplified)-1]) <= gap ||
		geometry.Distance(start, end) <= gap
	if closed && len(simplified) > 3 &&
		geometry.Distance(simplified[0], simplified[len(simplified)-1]) <= 2*epsilon {
		simplified = simplified[:len(simplified)-1]
	}

	switch n := len(simplified); {
	case n == 3:
		return Analysis{Kind: KindTriangle, Score: 0.9, Triangle: boxTriangle(box)}
	case n >= 4 && n <= 6:
		// Jittery corners often simplify to an extra vertex or two.
		return Analysis{Kind: KindRect, Score: 0.9, Rect: boxRect(box)}
	}

	center := box.Center()
	avgRadius, variance := radialSpread(points, center)
	if avgRadius > 0 {
		normalized := variance / (avgRadius * avgRadius)
		if normalized < circleVariance && fill > circleFillRatio {
			return Analysis{
				Kind:   KindCircle,
				Score:  1 - normalized,
				Circle: &Circle{CX: center.X, CY: center.Y, Radius: avgRadius},
			}
		}
	}

	if fill > triFillLow && fill < triFillHigh {
		return Analysis{Kind: KindTriangle, Score: 0.7, Triangle: boxTriangle(box)}
	}

	return Analysis{Kind: KindUnknown}
}

// radialSpread returns the mean and variance of the distances from the points
// to center.
func radialSpread(points []geometry.Point, center geometry.Point) (mean, variance float64) {
	n := float64(len(points))
	for _, p := range points {
		mean += geometry.Distance(p, center)
	}
	mean /= n
	for _, p := range points {
		d := geometry.Distance(p, center) - mean
		variance += d * d
	}
	variance /= n
	return mean, variance
}

func boxRect(b geometry.Bounds) *Rect {
	return &Rect{Left: b.MinX, Top: b.MinY, Width: b.Width(), Height: b.Height()}
}

func boxTriangle(b geometry.Bounds) *Triangle {
	c := b.Center()
	return &Triangle{CX: c.X, CY: c.Y, Width: b.Width(), Height: b.Height()}
}
