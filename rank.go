package main

import (
	"sort"
	"strings"
)

// canonicalActions flattens an action list into its canonical string.
func canonicalActions(actions []Action) string {
	parts := make([]string, len(actions))
	for i, a := range actions {
		parts[i] = string(a)
	}
	return strings.Join(parts, ",")
}

// RankPaths deduplicates candidates by canonical action string, keeping
// the first occurrence, and orders them shortest-first. The sort is
// stable, so equal-length candidates keep their discovery order.
func RankPaths(paths []CandidatePath) []CandidatePath {
	seen := make(map[string]bool, len(paths))
	unique := make([]CandidatePath, 0, len(paths))

	for _, path := range paths {
		key := canonicalActions(path.Actions)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, path)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return len(unique[i].Actions) < len(unique[j].Actions)
	})
	return unique
}
