package main

// ShortestPath returns the geometric shortest path between two free
// points in the environment, including both endpoints. Any failure —
// an endpoint outside the navigable region, a graph that cannot be
// built, no route, or a backend panic — yields nil; the caller moves
// on to its next candidate.
func ShortestPath(env *Environment, cfg PlannerConfig, from, to Point) (path []Point) {
	defer func() {
		if recover() != nil {
			path = nil
		}
	}()

	if env == nil {
		return nil
	}
	if !env.Contains(from) || !env.Contains(to) {
		return nil
	}

	// Direct line of sight needs no graph search
	if env.edgeNavigable(from, to) {
		return []Point{from, to}
	}

	graph := BuildVisibilityGraph(env, from, to, cfg.MaxGraphNodes)
	if graph == nil {
		return nil
	}

	route, ok := AStarPathOnGraph(graph, 0, 1)
	if !ok {
		return nil
	}
	return route
}
