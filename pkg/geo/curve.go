package geo

import (
	"math"
)

// Point is a geographic coordinate in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Curvature bounds for rendered flight paths. Longer routes bow more,
// normalized against half of a full degree wrap.
const (
	minCurvature = 0.15
	maxCurvature = 0.40
	maxDistance  = 180.0
)

// CurvedPath returns the interpolated points of a single-bow arc between
// from and to, for drawing a flight path on a flat map.
//
// Coordinates are treated as a flat 2-D plane, not great-circle arcs. The
// control point sits perpendicular to the straight line at the midpoint,
// offset by distance times a curvature factor, and the cubic Bézier formula
// uses that one control point for both interior terms. This produces a
// symmetric arc and is kept exactly as-is for rendering compatibility.
func CurvedPath(from, to Point) []Point {
	offsetX := to.Lng - from.Lng
	offsetY := to.Lat - from.Lat

	center := Point{
		Lat: from.Lat + offsetY/2,
		Lng: from.Lng + offsetX/2,
	}
	distance := math.Sqrt(offsetX*offsetX + offsetY*offsetY)

	normalized := math.Min(distance/maxDistance, 1)
	curvature := minCurvature + (maxCurvature-minCurvature)*normalized

	angle := math.Atan2(offsetY, offsetX) + math.Pi/2
	control := Point{
		Lat: center.Lat + distance*curvature*math.Sin(angle),
		Lng: center.Lng + distance*curvature*math.Cos(angle),
	}

	// Roughly two points per unit distance, clamped for very short and
	// very long routes.
	steps := int(math.Max(20, math.Min(50, math.Floor(distance*2))))

	points := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		t2 := t * t
		t3 := t2 * t
		mt := 1 - t
		mt2 := mt * mt
		mt3 := mt2 * mt

		points = append(points, Point{
			Lat: from.Lat*mt3 + 3*control.Lat*mt2*t + 3*control.Lat*mt*t2 + to.Lat*t3,
			Lng: from.Lng*mt3 + 3*control.Lng*mt2*t + 3*control.Lng*mt*t2 + to.Lng*t3,
		})
	}

	return points
}
