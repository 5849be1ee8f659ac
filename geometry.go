package main

import "math"

// Point is a planar position in room coordinates. Height never matters
// for navigation, so only x and z are carried.
type Point struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

// Distance calculates Euclidean distance between two points
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dz := p.Z - other.Z
	return math.Sqrt(dx*dx + dz*dz)
}

// Near reports whether two points coincide within epsilon.
func (p Point) Near(other Point, epsilon float64) bool {
	return p.Distance(other) <= epsilon
}

// Polygon is an obstacle footprint or region boundary as an ordered
// vertex ring. The closing vertex is not duplicated.
type Polygon struct {
	Vertices []Point `json:"vertices"`
}

// LineSegment represents a line segment between two points
type LineSegment struct {
	P1, P2 Point
}

// DoSegmentsIntersect checks if two line segments intersect.
// Segments that merely share an endpoint do not count; the visibility
// graph relies on that so edges may start and end on hole corners.
func DoSegmentsIntersect(seg1, seg2 LineSegment) bool {
	p1, p2 := seg1.P1, seg1.P2
	p3, p4 := seg2.P1, seg2.P2

	if (p1 == p3 && p2 == p4) || (p1 == p4 && p2 == p3) {
		return false
	}
	if p1 == p3 || p1 == p4 || p2 == p3 || p2 == p4 {
		return false
	}

	d1 := direction(p3, p4, p1)
	d2 := direction(p3, p4, p2)
	d3 := direction(p1, p2, p3)
	d4 := direction(p1, p2, p4)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// Collinear cases
	if d1 == 0 && onSegment(p3, p4, p1) {
		return true
	}
	if d2 == 0 && onSegment(p3, p4, p2) {
		return true
	}
	if d3 == 0 && onSegment(p1, p2, p3) {
		return true
	}
	if d4 == 0 && onSegment(p1, p2, p4) {
		return true
	}

	return false
}

// direction calculates the cross product to determine orientation
func direction(p1, p2, p3 Point) float64 {
	return (p3.X-p1.X)*(p2.Z-p1.Z) - (p2.X-p1.X)*(p3.Z-p1.Z)
}

// onSegment checks if point q lies on segment pr
func onSegment(p, r, q Point) bool {
	return q.X <= math.Max(p.X, r.X) && q.X >= math.Min(p.X, r.X) &&
		q.Z <= math.Max(p.Z, r.Z) && q.Z >= math.Min(p.Z, r.Z)
}

// IsPointInPolygon checks if a point is inside a polygon using ray casting
func IsPointInPolygon(point Point, polygon Polygon) bool {
	n := len(polygon.Vertices)
	if n < 3 {
		return false
	}

	count := 0
	for i := 0; i < n; i++ {
		v1 := polygon.Vertices[i]
		v2 := polygon.Vertices[(i+1)%n]

		if (v1.Z > point.Z) != (v2.Z > point.Z) {
			slope := (point.X-v1.X)*(v2.Z-v1.Z) - (v2.X-v1.X)*(point.Z-v1.Z)
			if v2.Z > v1.Z {
				if slope > 0 {
					count++
				}
			} else {
				if slope < 0 {
					count++
				}
			}
		}
	}

	return count%2 == 1
}

// DoesSegmentIntersectPolygon checks if a line segment intersects any edge of a polygon
func DoesSegmentIntersectPolygon(seg LineSegment, polygon Polygon) bool {
	n := len(polygon.Vertices)
	for i := 0; i < n; i++ {
		edge := LineSegment{
			P1: polygon.Vertices[i],
			P2: polygon.Vertices[(i+1)%n],
		}
		if DoSegmentsIntersect(seg, edge) {
			return true
		}
	}
	return false
}

// segmentClearOfPolygons checks if a straight line between two points is
// collision-free with respect to every polygon in the list.
func segmentClearOfPolygons(p1, p2 Point, polygons []Polygon) bool {
	segment := LineSegment{P1: p1, P2: p2}

	for _, poly := range polygons {
		if DoesSegmentIntersectPolygon(segment, poly) {
			return false
		}

		if IsPointInPolygon(p1, poly) || IsPointInPolygon(p2, poly) {
			return false
		}

		// Midpoint catches a segment lying entirely inside the polygon
		midpoint := Point{
			X: (p1.X + p2.X) / 2,
			Z: (p1.Z + p2.Z) / 2,
		}
		if IsPointInPolygon(midpoint, poly) {
			return false
		}
	}

	return true
}
