package main

import "math"

// Action is one quantized agent primitive.
type Action string

const (
	ActionRotateLeft  Action = "ROTATE_LEFT"
	ActionRotateRight Action = "ROTATE_RIGHT"
	ActionMoveForward Action = "MOVE_FORWARD"
)

// Pose is a planar position plus heading in degrees, counter-clockwise
// from +x. Simulator headings are converted at the scene boundary.
type Pose struct {
	Position Point   `json:"position"`
	Heading  float64 `json:"heading"`
}

// CandidatePath is an action list together with the pose produced by
// replaying those actions from the start pose.
type CandidatePath struct {
	Actions []Action `json:"actions"`
	Pose    Pose     `json:"pose"`
}

// countRoundingEpsilon decides when a rotate or move count divides out
// with no remainder.
const countRoundingEpsilon = 1e-6

// normalizeAngle maps degrees into (-180, 180].
func normalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg <= -180 {
		deg += 360
	} else if deg > 180 {
		deg -= 360
	}
	return deg
}

// Advance applies one action to a pose using the fixed per-action
// increments. Replaying a CandidatePath's actions through Advance from
// the start pose reproduces its recorded pose exactly; the planner and
// any replay share this one routine.
func Advance(cfg PlannerConfig, pose Pose, action Action) Pose {
	switch action {
	case ActionRotateLeft:
		pose.Heading = normalizeAngle(pose.Heading + cfg.RotationIncrement)
	case ActionRotateRight:
		pose.Heading = normalizeAngle(pose.Heading - cfg.RotationIncrement)
	case ActionMoveForward:
		rad := pose.Heading * math.Pi / 180
		pose.Position.X += cfg.MoveIncrement * math.Cos(rad)
		pose.Position.Z += cfg.MoveIncrement * math.Sin(rad)
	}
	return pose
}

// appendActions extends a candidate with count repetitions of one
// action, advancing the pose step by step.
func appendActions(cfg PlannerConfig, path CandidatePath, action Action, count int) CandidatePath {
	actions := make([]Action, 0, len(path.Actions)+count)
	actions = append(actions, path.Actions...)
	pose := path.Pose
	for i := 0; i < count; i++ {
		actions = append(actions, action)
		pose = Advance(cfg, pose, action)
	}
	return CandidatePath{Actions: actions, Pose: pose}
}

// rotationCandidates quantizes an absolute angular delta into rotate
// counts. An exact multiple yields one count; otherwise floor and ceil,
// plus one extra count beyond whichever bucket edge the remainder sits
// within the edge-bucket threshold of. The extra candidate exists for
// rotation only; translation rounding never gets it.
func rotationCandidates(cfg PlannerConfig, absDelta float64, singleBest bool) []int {
	q := absDelta / cfg.RotationIncrement
	nearest := math.Round(q)

	if singleBest || math.Abs(q-nearest) < countRoundingEpsilon {
		return []int{int(nearest)}
	}

	floor := int(math.Floor(q))
	counts := []int{floor, floor + 1}

	rem := q - math.Floor(q)
	if rem < cfg.RotationEdgeBucket && floor > 0 {
		counts = append(counts, floor-1)
	} else if rem > 1-cfg.RotationEdgeBucket {
		counts = append(counts, floor+2)
	}
	return counts
}

// moveCandidates quantizes a straight-line distance into move counts.
func moveCandidates(cfg PlannerConfig, distance float64, singleBest bool) []int {
	q := distance / cfg.MoveIncrement
	nearest := math.Round(q)

	if singleBest || math.Abs(q-nearest) < countRoundingEpsilon {
		return []int{int(nearest)}
	}
	floor := int(math.Floor(q))
	return []int{floor, floor + 1}
}

// RotateThenMove converts the hop from the candidate's current position
// toward nextPoint into quantized rotate+move branches: every rotate
// count crossed with every move count. singleBest collapses both to
// their most accurate counts and is used only for the final
// face-the-target hop.
func RotateThenMove(cfg PlannerConfig, path CandidatePath, nextPoint Point, singleBest bool) []CandidatePath {
	position := path.Pose.Position
	if position.Near(nextPoint, cfg.Epsilon) {
		return []CandidatePath{path}
	}

	bearing := math.Atan2(nextPoint.Z-position.Z, nextPoint.X-position.X) * 180 / math.Pi
	delta := normalizeAngle(bearing - path.Pose.Heading)

	rotateAction := ActionRotateLeft
	if delta < 0 {
		rotateAction = ActionRotateRight
	}

	distance := position.Distance(nextPoint)

	var branches []CandidatePath
	for _, rotateCount := range rotationCandidates(cfg, math.Abs(delta), singleBest) {
		rotated := appendActions(cfg, path, rotateAction, rotateCount)
		for _, moveCount := range moveCandidates(cfg, distance, singleBest) {
			branches = append(branches, appendActions(cfg, rotated, ActionMoveForward, moveCount))
		}
	}
	return branches
}
