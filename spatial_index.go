package main

import (
	"github.com/dhconnelly/rtreego"
)

// PolygonEntry wraps a hole polygon for R-tree storage
type PolygonEntry struct {
	Polygon Polygon
	BBox    rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (p *PolygonEntry) Bounds() rtreego.Rect {
	return p.BBox
}

// SpatialIndex answers which hole polygons could be relevant to a point
// or segment, so navigability tests skip far-away holes.
type SpatialIndex struct {
	tree *rtreego.Rtree
}

// NewSpatialIndex creates a new spatial index
func NewSpatialIndex(polygons []Polygon) *SpatialIndex {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node

	for _, polygon := range polygons {
		bbox, err := polygonRect(polygon)
		if err == nil {
			tree.Insert(&PolygonEntry{Polygon: polygon, BBox: bbox})
		}
	}

	return &SpatialIndex{tree: tree}
}

// QueryPoint returns the holes whose bounding boxes contain the point.
func (si *SpatialIndex) QueryPoint(p Point) []Polygon {
	return si.queryRect(p.X, p.Z, p.X, p.Z)
}

// QuerySegment returns the holes whose bounding boxes intersect the
// segment's bounding box.
func (si *SpatialIndex) QuerySegment(a, b Point) []Polygon {
	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minZ, maxZ := a.Z, b.Z
	if minZ > maxZ {
		minZ, maxZ = maxZ, minZ
	}
	return si.queryRect(minX, minZ, maxX, maxZ)
}

func (si *SpatialIndex) queryRect(minX, minZ, maxX, maxZ float64) []Polygon {
	bbox, err := rtreego.NewRect(
		rtreego.Point{minX, minZ},
		[]float64{rectSpan(maxX - minX), rectSpan(maxZ - minZ)},
	)
	if err != nil {
		return []Polygon{}
	}

	results := si.tree.SearchIntersect(bbox)
	polygons := make([]Polygon, 0, len(results))
	for _, item := range results {
		entry := item.(*PolygonEntry)
		polygons = append(polygons, entry.Polygon)
	}
	return polygons
}

// polygonRect computes the axis-aligned bounding rect for a polygon
func polygonRect(polygon Polygon) (rtreego.Rect, error) {
	if len(polygon.Vertices) == 0 {
		return rtreego.Rect{}, nil
	}

	bbox := getBBox(polygon)
	return rtreego.NewRect(
		rtreego.Point{bbox.MinX, bbox.MinZ},
		[]float64{rectSpan(bbox.MaxX - bbox.MinX), rectSpan(bbox.MaxZ - bbox.MinZ)},
	)
}

// rectSpan keeps rect side lengths positive; rtreego rejects
// zero-length sides, which degenerate boxes and point queries produce.
func rectSpan(d float64) float64 {
	const minSpan = 1e-9
	if d < minSpan {
		return minSpan
	}
	return d
}
