package main

import (
	"math"

	"github.com/paulmach/orb"
)

const ringCloseThreshold = 1e-9

// KeepFree names points the dilated geometry must never swallow. The
// planner passes the performer start and the target position; a point
// captured only by buffering triggers the per-obstacle fallback.
type KeepFree struct {
	Source *Point
	Target *Point
}

func (k KeepFree) points() []Point {
	var pts []Point
	if k.Source != nil {
		pts = append(pts, *k.Source)
	}
	if k.Target != nil {
		pts = append(pts, *k.Target)
	}
	return pts
}

// DilateObstacles buffers each obstacle footprint outward by margin
// with square joins, substitutes the unbuffered footprint for any
// obstacle whose buffer would newly capture a keep-free point, and
// merges overlapping results. Empty input yields empty output.
func DilateObstacles(obstacles []Polygon, margin float64, keep KeepFree) []Polygon {
	if len(obstacles) == 0 {
		return nil
	}

	dilated := make([]Polygon, 0, len(obstacles))
	for _, obstacle := range obstacles {
		base := normalizeRing(obstacle)
		if len(base.Vertices) < 3 {
			continue
		}

		buffered := bufferPolygon(base, margin)
		if buffersOverKeepPoint(buffered, base, keep) {
			// Buffering would trap the start or target; this one
			// obstacle keeps its original footprint.
			dilated = append(dilated, base)
			continue
		}
		dilated = append(dilated, buffered)
	}

	return mergeOverlappingPolygons(dilated, keep.points())
}

// buffersOverKeepPoint reports whether the buffered form newly contains
// a keep-free point the unbuffered form did not.
func buffersOverKeepPoint(buffered, base Polygon, keep KeepFree) bool {
	for _, pt := range keep.points() {
		if IsPointInPolygon(pt, buffered) && !IsPointInPolygon(pt, base) {
			return true
		}
	}
	return false
}

// normalizeRing strips a duplicated closing vertex and reorders the
// ring counter-clockwise.
func normalizeRing(poly Polygon) Polygon {
	vertices := poly.Vertices
	n := len(vertices)
	if n > 1 {
		first, last := vertices[0], vertices[n-1]
		if math.Abs(first.X-last.X) < ringCloseThreshold &&
			math.Abs(first.Z-last.Z) < ringCloseThreshold {
			vertices = vertices[:n-1]
			n--
		}
	}
	if n < 3 {
		return Polygon{Vertices: append([]Point(nil), vertices...)}
	}

	ring := make(orb.Ring, 0, n+1)
	for _, v := range vertices {
		ring = append(ring, orb.Point{v.X, v.Z})
	}
	ring = append(ring, ring[0])

	out := make([]Point, n)
	if ring.Orientation() == orb.CW {
		for i, v := range vertices {
			out[n-1-i] = v
		}
	} else {
		copy(out, vertices)
	}
	return Polygon{Vertices: out}
}

// bufferPolygon offsets every edge of a counter-clockwise convex ring
// outward by margin and rebuilds the corners from the offset edge
// intersections. At right angles this is a square join.
func bufferPolygon(poly Polygon, margin float64) Polygon {
	n := len(poly.Vertices)
	if n < 3 || margin == 0 {
		return Polygon{Vertices: append([]Point(nil), poly.Vertices...)}
	}

	type offsetEdge struct {
		a, b Point
	}
	edges := make([]offsetEdge, n)
	for i := 0; i < n; i++ {
		a := poly.Vertices[i]
		b := poly.Vertices[(i+1)%n]
		dx, dz := b.X-a.X, b.Z-a.Z
		length := math.Sqrt(dx*dx + dz*dz)
		if length < ringCloseThreshold {
			edges[i] = offsetEdge{a: a, b: b}
			continue
		}
		// Interior lies left of a counter-clockwise edge, so the
		// outward normal is to the right.
		nx, nz := dz/length, -dx/length
		edges[i] = offsetEdge{
			a: Point{X: a.X + nx*margin, Z: a.Z + nz*margin},
			b: Point{X: b.X + nx*margin, Z: b.Z + nz*margin},
		}
	}

	out := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		prev := edges[(i+n-1)%n]
		curr := edges[i]
		corner, ok := lineIntersection(prev.a, prev.b, curr.a, curr.b)
		if !ok {
			// Collinear neighbors share the offset point
			corner = curr.a
		}
		out = append(out, corner)
	}
	return Polygon{Vertices: out}
}

// lineIntersection intersects the infinite lines through (a1,a2) and
// (b1,b2). ok is false when the lines are (near) parallel.
func lineIntersection(a1, a2, b1, b2 Point) (Point, bool) {
	d1x, d1z := a2.X-a1.X, a2.Z-a1.Z
	d2x, d2z := b2.X-b1.X, b2.Z-b1.Z

	denom := d1x*d2z - d1z*d2x
	if math.Abs(denom) < ringCloseThreshold {
		return Point{}, false
	}

	t := ((b1.X-a1.X)*d2z - (b1.Z-a1.Z)*d2x) / denom
	return Point{X: a1.X + t*d1x, Z: a1.Z + t*d1z}, true
}

// mergeOverlappingPolygons removes fully contained polygons, then
// replaces each group of mutually overlapping polygons with the convex
// hull of the group's vertices. A hull that would capture a keep-free
// point none of its members contains is rejected and the group stays
// unmerged, preserving the dilation-fallback guarantee.
func mergeOverlappingPolygons(polygons []Polygon, keepFree []Point) []Polygon {
	if len(polygons) <= 1 {
		return polygons
	}

	filtered := removeContainedPolygons(polygons)
	if len(filtered) <= 1 {
		return filtered
	}

	merged := make([]bool, len(filtered))
	result := make([]Polygon, 0, len(filtered))

	for i := 0; i < len(filtered); i++ {
		if merged[i] {
			continue
		}

		group := []int{i}
		merged[i] = true

		// Grow the group transitively
		for grew := true; grew; {
			grew = false
			for j := 0; j < len(filtered); j++ {
				if merged[j] {
					continue
				}
				for _, idx := range group {
					if polygonsOverlap(filtered[idx], filtered[j]) {
						group = append(group, j)
						merged[j] = true
						grew = true
						break
					}
				}
			}
		}

		if len(group) == 1 {
			result = append(result, filtered[i])
			continue
		}

		allVertices := make([]Point, 0)
		for _, idx := range group {
			allVertices = append(allVertices, filtered[idx].Vertices...)
		}
		hull := Polygon{Vertices: convexHull(allVertices)}

		if hullTrapsKeepPoint(hull, group, filtered, keepFree) {
			for _, idx := range group {
				result = append(result, filtered[idx])
			}
			continue
		}
		result = append(result, hull)
	}

	return result
}

func hullTrapsKeepPoint(hull Polygon, group []int, polygons []Polygon, keepFree []Point) bool {
	for _, pt := range keepFree {
		if !IsPointInPolygon(pt, hull) {
			continue
		}
		inMember := false
		for _, idx := range group {
			if IsPointInPolygon(pt, polygons[idx]) {
				inMember = true
				break
			}
		}
		if !inMember {
			return true
		}
	}
	return false
}

// polygonsOverlap reports whether two polygons intersect or one
// contains a vertex of the other.
func polygonsOverlap(a, b Polygon) bool {
	for _, v := range a.Vertices {
		if IsPointInPolygon(v, b) {
			return true
		}
	}
	for _, v := range b.Vertices {
		if IsPointInPolygon(v, a) {
			return true
		}
	}
	na := len(a.Vertices)
	for i := 0; i < na; i++ {
		edge := LineSegment{P1: a.Vertices[i], P2: a.Vertices[(i+1)%na]}
		if DoesSegmentIntersectPolygon(edge, b) {
			return true
		}
	}
	return false
}

// removeContainedPolygons removes polygons that are fully contained within other polygons
func removeContainedPolygons(polygons []Polygon) []Polygon {
	result := make([]Polygon, 0, len(polygons))
	contained := make([]bool, len(polygons))

	for i := 0; i < len(polygons); i++ {
		if contained[i] {
			continue
		}

		for j := 0; j < len(polygons); j++ {
			if i == j || contained[j] {
				continue
			}

			if isPolygonContainedIn(polygons[i], polygons[j]) {
				contained[i] = true
				break
			}

			if isPolygonContainedIn(polygons[j], polygons[i]) {
				contained[j] = true
			}
		}
	}

	for i := 0; i < len(polygons); i++ {
		if !contained[i] {
			result = append(result, polygons[i])
		}
	}

	return result
}

// isPolygonContainedIn checks if polygon A is fully contained within polygon B
func isPolygonContainedIn(a, b Polygon) bool {
	if len(a.Vertices) == 0 || len(b.Vertices) == 0 {
		return false
	}

	if !isBBoxContained(getBBox(a), getBBox(b)) {
		return false
	}

	for _, vertex := range a.Vertices {
		if !IsPointInPolygon(vertex, b) {
			return false
		}
	}

	return true
}

// BBox represents a bounding box
type BBox struct {
	MinX, MinZ, MaxX, MaxZ float64
}

// getBBox calculates the bounding box of a polygon
func getBBox(poly Polygon) BBox {
	if len(poly.Vertices) == 0 {
		return BBox{}
	}

	bbox := BBox{
		MinX: poly.Vertices[0].X,
		MinZ: poly.Vertices[0].Z,
		MaxX: poly.Vertices[0].X,
		MaxZ: poly.Vertices[0].Z,
	}

	for _, v := range poly.Vertices[1:] {
		bbox.MinX = math.Min(bbox.MinX, v.X)
		bbox.MinZ = math.Min(bbox.MinZ, v.Z)
		bbox.MaxX = math.Max(bbox.MaxX, v.X)
		bbox.MaxZ = math.Max(bbox.MaxZ, v.Z)
	}

	return bbox
}

// isBBoxContained checks if bounding box A is contained in bounding box B
func isBBoxContained(a, b BBox) bool {
	return a.MinX >= b.MinX && a.MaxX <= b.MaxX &&
		a.MinZ >= b.MinZ && a.MaxZ <= b.MaxZ
}

// convexHull computes the convex hull using Graham scan
func convexHull(points []Point) []Point {
	if len(points) < 3 {
		return points
	}

	pts := append([]Point(nil), points...)

	// Lowest z, then lowest x, is the pivot
	start := 0
	for i := 1; i < len(pts); i++ {
		if pts[i].Z < pts[start].Z ||
			(pts[i].Z == pts[start].Z && pts[i].X < pts[start].X) {
			start = i
		}
	}
	pts[0], pts[start] = pts[start], pts[0]
	pivot := pts[0]

	sorted := pts[1:]
	for i := 0; i < len(sorted)-1; i++ {
		for j := i + 1; j < len(sorted); j++ {
			if polarAngle(pivot, sorted[j]) < polarAngle(pivot, sorted[i]) {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}

	hull := []Point{pivot, sorted[0]}
	for i := 1; i < len(sorted); i++ {
		for len(hull) > 1 && crossProduct(hull[len(hull)-2], hull[len(hull)-1], sorted[i]) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, sorted[i])
	}

	return hull
}

// polarAngle calculates the polar angle from pivot to point
func polarAngle(pivot, point Point) float64 {
	return math.Atan2(point.Z-pivot.Z, point.X-pivot.X)
}

// crossProduct calculates the cross product of vectors (b-a) and (c-a)
func crossProduct(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Z-a.Z) - (b.Z-a.Z)*(c.X-a.X)
}
