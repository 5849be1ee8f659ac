package main

// ApproachPoints derives the stand-points to try around a target: the
// corners of the footprint buffered outward by reach distance, in a
// consistent order, plus the outward-offset midpoint of each footprint
// side. A box footprint yields eight candidates.
func ApproachPoints(cfg PlannerConfig, footprint Polygon) []Point {
	base := normalizeRing(footprint)
	if len(base.Vertices) < 3 {
		return nil
	}

	dilated := rotateRingToAnchor(bufferPolygon(base, cfg.ReachDistance))

	points := make([]Point, 0, 2*len(dilated.Vertices))
	points = append(points, dilated.Vertices...)

	n := len(dilated.Vertices)
	for i := 0; i < n; i++ {
		a := dilated.Vertices[i]
		b := dilated.Vertices[(i+1)%n]
		points = append(points, Point{X: (a.X + b.X) / 2, Z: (a.Z + b.Z) / 2})
	}
	return points
}

// rotateRingToAnchor rotates the ring so it starts at the
// lexicographically smallest vertex (min z, then min x), giving corner
// candidates a stable order regardless of how the footprint was
// authored.
func rotateRingToAnchor(poly Polygon) Polygon {
	n := len(poly.Vertices)
	if n == 0 {
		return poly
	}

	anchor := 0
	for i := 1; i < n; i++ {
		v, best := poly.Vertices[i], poly.Vertices[anchor]
		if v.Z < best.Z || (v.Z == best.Z && v.X < best.X) {
			anchor = i
		}
	}

	out := make([]Point, 0, n)
	out = append(out, poly.Vertices[anchor:]...)
	out = append(out, poly.Vertices[:anchor]...)
	return Polygon{Vertices: out}
}
