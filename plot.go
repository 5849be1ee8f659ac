package main

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// WriteFreeSpacePlot dumps the navigable region as a GeoJSON feature
// collection: one polygon for the inset room boundary and one per
// dilated hole. Debug output only; results never depend on it.
func WriteFreeSpacePlot(env *Environment, filename string) error {
	fc := geojson.NewFeatureCollection()

	boundary := geojson.NewFeature(orb.Polygon{toRing(env.Boundary)})
	boundary.Properties["kind"] = "boundary"
	fc.Append(boundary)

	for i, hole := range env.Holes {
		feature := geojson.NewFeature(orb.Polygon{toRing(hole)})
		feature.Properties["kind"] = "obstacle"
		feature.Properties["index"] = i
		fc.Append(feature)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal free-space plot: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write free-space plot: %w", err)
	}
	return nil
}

// toRing converts a polygon to a closed orb ring.
func toRing(poly Polygon) orb.Ring {
	ring := make(orb.Ring, 0, len(poly.Vertices)+1)
	for _, v := range poly.Vertices {
		ring = append(ring, orb.Point{v.X, v.Z})
	}
	if len(ring) > 0 {
		ring = append(ring, ring[0])
	}
	return ring
}
