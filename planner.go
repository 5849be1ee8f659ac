package main

import "log"

// TargetSpec describes what the agent must reach: the object's position
// and top-down footprint. When the target sits inside a container the
// caller passes the container's position and footprint instead.
type TargetSpec struct {
	Position  Point   `json:"position"`
	Footprint Polygon `json:"footprint"`
}

// PlanRequest is one independent planning problem.
type PlanRequest struct {
	RoomDimensions Size       `json:"roomDimensions"`
	Start          Pose       `json:"start"`
	Target         TargetSpec `json:"target"`
	Obstacles      []Polygon  `json:"obstacles"`

	// PlotFile, when set, receives a GeoJSON plot of the computed free
	// space. Debug only; never affects the result.
	PlotFile string `json:"plotFile,omitempty"`
}

// PlanRoute computes ranked quantized-action routes from the start pose
// to within reach of the target. The returned error means the
// environment could not be built at all ("no path" for the whole call);
// an empty list with nil error means every approach point failed.
func PlanRoute(cfg PlannerConfig, req PlanRequest) ([]CandidatePath, error) {
	// Snapshot the obstacle footprints; the caller may reuse its slices
	obstacles := make([]Polygon, len(req.Obstacles))
	for i, o := range req.Obstacles {
		obstacles[i] = Polygon{Vertices: append([]Point(nil), o.Vertices...)}
	}

	source := req.Start.Position
	targetPos := req.Target.Position

	holes := DilateObstacles(obstacles, cfg.DilationMargin, KeepFree{
		Source: &source,
		Target: &targetPos,
	})

	env, err := BuildEnvironment(req.RoomDimensions, holes, cfg.AgentHalfWidth+cfg.BoundaryTolerance)
	if err != nil {
		return nil, err
	}

	if req.PlotFile != "" {
		if plotErr := WriteFreeSpacePlot(env, req.PlotFile); plotErr != nil {
			log.Printf("free-space plot not written: %v", plotErr)
		}
	}

	approaches := ApproachPoints(cfg, req.Target.Footprint)

	var candidates []CandidatePath
	for _, approach := range approaches {
		route := ShortestPath(env, cfg, source, approach)
		if route == nil {
			continue
		}

		start := CandidatePath{Pose: req.Start}
		budget := &branchBudget{remaining: cfg.MaxBranches}
		for _, expanded := range Expand(cfg, env, start, route[1:], approach, budget) {
			// Turn to face the target and close the remaining gap with
			// the single most accurate counts.
			faced := RotateThenMove(cfg, expanded, targetPos, true)
			candidates = append(candidates, faced...)
		}
	}

	ranked := RankPaths(candidates)
	log.Printf("planned %d candidate paths (%d before ranking) across %d approach points",
		len(ranked), len(candidates), len(approaches))
	return ranked, nil
}
