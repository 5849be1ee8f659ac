package main

// branchBudget caps how many branches one approach point may spawn
// across all hops. Quantization produces at most six branches per hop,
// but they compound multiplicatively along a corridor; the budget is
// shared down the whole recursion.
type branchBudget struct {
	remaining int
}

func (b *branchBudget) take() bool {
	if b.remaining <= 0 {
		return false
	}
	b.remaining--
	return true
}

// Expand walks the candidate along the waypoint list, quantizing each
// hop and re-planning from each branch's actual landing position. The
// continuous waypoints only ever seed the first hop: after quantization
// the agent stands somewhere slightly off the geometric path, so every
// branch gets a fresh shortest-path query from where it really is.
// Branches whose landing position has no route to the goal are dropped.
func Expand(cfg PlannerConfig, env *Environment, path CandidatePath, waypoints []Point, goal Point, budget *branchBudget) []CandidatePath {
	if len(waypoints) == 0 {
		return []CandidatePath{path}
	}

	branches := RotateThenMove(cfg, path, waypoints[0], false)

	var results []CandidatePath
	for _, branch := range branches {
		if !budget.take() {
			break
		}

		landed := branch.Pose.Position
		if landed.Near(path.Pose.Position, cfg.Epsilon) || landed.Near(goal, cfg.Epsilon) {
			// A no-op hop, or close enough to the goal already
			results = append(results, branch)
			continue
		}

		route := ShortestPath(env, cfg, landed, goal)
		if route == nil {
			continue
		}
		results = append(results, Expand(cfg, env, branch, route[1:], goal, budget)...)
	}
	return results
}
