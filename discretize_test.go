package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// replay folds a candidate's actions through Advance from a start pose.
func replay(cfg PlannerConfig, start Pose, actions []Action) Pose {
	pose := start
	for _, action := range actions {
		pose = Advance(cfg, pose, action)
	}
	return pose
}

func countActions(actions []Action, kind Action) int {
	n := 0
	for _, a := range actions {
		if a == kind {
			n++
		}
	}
	return n
}

func TestNormalizeAngle(t *testing.T) {
	vs := []struct{ in, out float64 }{
		{0, 0},
		{180, 180},
		{-180, 180},
		{190, -170},
		{-190, 170},
		{360, 0},
		{540, 180},
		{-90, -90},
	}
	for _, v := range vs {
		assert.InDelta(t, v.out, normalizeAngle(v.in), 1e-9, "normalizeAngle(%v)", v.in)
	}
}

func TestRotationCandidates(t *testing.T) {
	cfg := DefaultConfig()

	// Exact multiple collapses to one count
	assert.Equal(t, []int{4}, rotationCandidates(cfg, 40, false))
	assert.Equal(t, []int{0}, rotationCandidates(cfg, 0, false))

	// Mid-bucket remainder yields floor and ceil
	assert.Equal(t, []int{4, 5}, rotationCandidates(cfg, 45, false))

	// Remainder near the low bucket edge adds floor-1
	assert.Equal(t, []int{4, 5, 3}, rotationCandidates(cfg, 41, false))

	// Remainder near the high bucket edge adds ceil+1
	assert.Equal(t, []int{4, 5, 6}, rotationCandidates(cfg, 49, false))

	// No negative counts at the low edge when floor is zero
	assert.Equal(t, []int{0, 1}, rotationCandidates(cfg, 1, false))

	// singleBest picks the nearest count only
	assert.Equal(t, []int{4}, rotationCandidates(cfg, 41, true))
	assert.Equal(t, []int{5}, rotationCandidates(cfg, 49, true))
}

func TestMoveCandidates(t *testing.T) {
	cfg := DefaultConfig()

	// Exact multiple collapses to one count
	assert.Equal(t, []int{20}, moveCandidates(cfg, 2.0, false))

	// Otherwise floor and ceil, never an edge-bucket extra
	assert.Equal(t, []int{14, 15}, moveCandidates(cfg, 1.45, false))
	assert.Equal(t, []int{14, 15}, moveCandidates(cfg, 1.401, false))
	assert.Equal(t, []int{14, 15}, moveCandidates(cfg, 1.499, false))

	assert.Equal(t, []int{14}, moveCandidates(cfg, 1.42, true))
}

func TestRotateThenMoveDegenerate(t *testing.T) {
	cfg := DefaultConfig()
	path := CandidatePath{Pose: Pose{Position: Point{X: 1, Z: 1}, Heading: 30}}

	branches := RotateThenMove(cfg, path, Point{X: 1, Z: 1}, false)
	require.Len(t, branches, 1)
	assert.Empty(t, branches[0].Actions)
	assert.Equal(t, path.Pose, branches[0].Pose)
}

func TestRotateThenMoveStraightAhead(t *testing.T) {
	cfg := DefaultConfig()
	start := Pose{Position: Point{X: 0, Z: 0}, Heading: 0}

	// Target dead ahead at an exact multiple of the move increment:
	// one branch, all moves, no rotation.
	branches := RotateThenMove(cfg, CandidatePath{Pose: start}, Point{X: 2, Z: 0}, false)
	require.Len(t, branches, 1)
	assert.Equal(t, 20, countActions(branches[0].Actions, ActionMoveForward))
	assert.Equal(t, 0, countActions(branches[0].Actions, ActionRotateLeft))
	assert.Equal(t, 0, countActions(branches[0].Actions, ActionRotateRight))
	assert.InDelta(t, 2.0, branches[0].Pose.Position.X, 1e-9)
	assert.InDelta(t, 0.0, branches[0].Pose.Position.Z, 1e-9)
}

func TestRotateThenMoveDirection(t *testing.T) {
	cfg := DefaultConfig()
	start := Pose{Position: Point{X: 0, Z: 0}, Heading: 0}

	// +z is counter-clockwise of +x: rotate left
	left := RotateThenMove(cfg, CandidatePath{Pose: start}, Point{X: 0, Z: 1}, true)
	require.Len(t, left, 1)
	assert.Equal(t, 9, countActions(left[0].Actions, ActionRotateLeft))
	assert.Equal(t, 0, countActions(left[0].Actions, ActionRotateRight))

	// -z is clockwise: rotate right
	right := RotateThenMove(cfg, CandidatePath{Pose: start}, Point{X: 0, Z: -1}, true)
	require.Len(t, right, 1)
	assert.Equal(t, 9, countActions(right[0].Actions, ActionRotateRight))
	assert.Equal(t, 0, countActions(right[0].Actions, ActionRotateLeft))
}

func TestRotateThenMoveBranchesCrossProduct(t *testing.T) {
	cfg := DefaultConfig()
	start := Pose{Position: Point{X: 0, Z: 0}, Heading: 0}

	// 45 degrees off heading, distance sqrt(2): 2 rotate counts x 2
	// move counts
	branches := RotateThenMove(cfg, CandidatePath{Pose: start}, Point{X: 1, Z: 1}, false)
	require.Len(t, branches, 4)

	lengths := make(map[int]bool)
	for _, b := range branches {
		lengths[len(b.Actions)] = true
	}
	assert.True(t, len(lengths) > 1, "floor/ceil branches should differ in length")

	// singleBest collapses to exactly one branch
	best := RotateThenMove(cfg, CandidatePath{Pose: start}, Point{X: 1, Z: 1}, true)
	assert.Len(t, best, 1)
}

func TestReplayInvariant(t *testing.T) {
	cfg := DefaultConfig()
	start := Pose{Position: Point{X: -1.3, Z: 0.7}, Heading: 37}

	branches := RotateThenMove(cfg, CandidatePath{Pose: start}, Point{X: 2.1, Z: -1.9}, false)
	require.NotEmpty(t, branches)

	for _, b := range branches {
		// Exact equality: the recorded pose must reproduce bit for bit
		assert.Equal(t, b.Pose, replay(cfg, start, b.Actions))
	}
}
