package main

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Size is a room's x/z extent, centered on the origin.
type Size struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

// Environment is the navigable free space for one planning call: the
// room rectangle inset for the performer's width, minus the dilated
// obstacle holes. It is rebuilt fresh per call and never shared.
type Environment struct {
	Boundary Polygon
	Holes    []Polygon

	index *SpatialIndex
}

// BuildEnvironment assembles the free-space region. Malformed geometry
// and backend panics surface as an error, never a crash; the caller
// treats the error as "no path exists" for the whole call.
func BuildEnvironment(room Size, holes []Polygon, inset float64) (env *Environment, err error) {
	defer func() {
		if r := recover(); r != nil {
			env = nil
			err = fmt.Errorf("environment construction failed: %v", r)
		}
	}()

	halfX := room.X/2 - inset
	halfZ := room.Z/2 - inset
	if halfX <= 0 || halfZ <= 0 {
		return nil, fmt.Errorf("room %gx%g too small for inset %g", room.X, room.Z, inset)
	}

	boundary := Polygon{Vertices: []Point{
		{X: -halfX, Z: -halfZ},
		{X: halfX, Z: -halfZ},
		{X: halfX, Z: halfZ},
		{X: -halfX, Z: halfZ},
	}}

	for i, hole := range holes {
		if len(hole.Vertices) < 3 {
			return nil, fmt.Errorf("hole %d has %d vertices", i, len(hole.Vertices))
		}
		if holeArea(hole) < ringCloseThreshold {
			return nil, fmt.Errorf("hole %d is degenerate", i)
		}
	}

	return &Environment{
		Boundary: boundary,
		Holes:    holes,
		index:    NewSpatialIndex(holes),
	}, nil
}

// holeArea measures a polygon's area via the geometry backend.
func holeArea(poly Polygon) float64 {
	ring := make(orb.Ring, 0, len(poly.Vertices)+1)
	for _, v := range poly.Vertices {
		ring = append(ring, orb.Point{v.X, v.Z})
	}
	if len(ring) > 0 {
		ring = append(ring, ring[0])
	}
	return math.Abs(planar.Area(ring))
}

// Contains reports whether a point lies in the navigable region: inside
// the inset room boundary and outside every hole.
func (e *Environment) Contains(p Point) bool {
	if !IsPointInPolygon(p, e.Boundary) {
		return false
	}
	for _, hole := range e.index.QueryPoint(p) {
		if IsPointInPolygon(p, hole) {
			return false
		}
	}
	return true
}

// edgeNavigable reports whether the straight segment between two points
// stays inside the boundary and clear of every hole.
func (e *Environment) edgeNavigable(a, b Point) bool {
	seg := LineSegment{P1: a, P2: b}
	if DoesSegmentIntersectPolygon(seg, e.Boundary) {
		return false
	}
	mid := Point{X: (a.X + b.X) / 2, Z: (a.Z + b.Z) / 2}
	if !IsPointInPolygon(mid, e.Boundary) {
		return false
	}
	return segmentClearOfPolygons(a, b, e.index.QuerySegment(a, b))
}
