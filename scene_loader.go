package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Scene structures mirror the generator's scene description files.

type SceneVector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type ScenePerformerStart struct {
	Position SceneVector `json:"position"`
	Rotation SceneVector `json:"rotation"`
}

type SceneObject struct {
	ID             string      `json:"id"`
	Mass           float64     `json:"mass"`
	LocationParent string      `json:"locationParent,omitempty"`
	Position       SceneVector `json:"position"`
	// BoundingBox is the object's top-down footprint.
	BoundingBox []Point `json:"boundingBox"`
}

type Scene struct {
	Name           string              `json:"name"`
	RoomDimensions Size                `json:"roomDimensions"`
	PerformerStart ScenePerformerStart `json:"performerStart"`
	TargetID       string              `json:"targetId"`
	Objects        []SceneObject       `json:"objects"`
}

// LoadScene reads one scene description file.
func LoadScene(filename string) (*Scene, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}

	var scene Scene
	if err := json.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	if scene.Name == "" {
		scene.Name = filepath.Base(filename)
	}
	return &scene, nil
}

// LoadScenesFromDir loads every scene JSON file in a directory. Files
// that fail to parse are logged and skipped.
func LoadScenesFromDir(dir string) ([]*Scene, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}

	log.Printf("Loading scenes from %d JSON files...", len(files))

	scenes := make([]*Scene, 0, len(files))
	for _, file := range files {
		scene, err := LoadScene(file)
		if err != nil {
			log.Printf("skipping %s: %v", filepath.Base(file), err)
			continue
		}
		scenes = append(scenes, scene)
	}

	log.Printf("Total scenes loaded: %d", len(scenes))
	return scenes, nil
}

// simulatorHeadingToPlanner converts the simulator's heading convention
// (degrees clockwise from +z) into the planner's (degrees
// counter-clockwise from +x).
func simulatorHeadingToPlanner(yRotation float64) float64 {
	return normalizeAngle(90 - yRotation)
}

// BuildPlanRequest turns a scene into a planning problem for its
// target. Objects too light to block the performer, objects nested
// inside a container, and the target itself are not obstacles. A target
// nested in a container resolves to the container's pose and footprint.
func BuildPlanRequest(cfg PlannerConfig, scene *Scene) (PlanRequest, error) {
	var req PlanRequest

	objectByID := make(map[string]SceneObject, len(scene.Objects))
	for _, obj := range scene.Objects {
		objectByID[obj.ID] = obj
	}

	target, ok := objectByID[scene.TargetID]
	if !ok {
		return req, fmt.Errorf("scene %q has no object with target id %q", scene.Name, scene.TargetID)
	}

	// The reachable thing is the container when the target is inside one
	reachable := target
	if target.LocationParent != "" {
		parent, ok := objectByID[target.LocationParent]
		if !ok {
			return req, fmt.Errorf("target %q names missing container %q", target.ID, target.LocationParent)
		}
		reachable = parent
	}
	if len(reachable.BoundingBox) < 3 {
		return req, fmt.Errorf("target %q has no usable footprint", reachable.ID)
	}

	obstacles := make([]Polygon, 0, len(scene.Objects))
	for _, obj := range scene.Objects {
		if obj.ID == reachable.ID || obj.ID == target.ID {
			continue
		}
		if obj.LocationParent != "" {
			continue
		}
		if obj.Mass < cfg.MinObstacleMass {
			continue
		}
		if len(obj.BoundingBox) < 3 {
			continue
		}
		obstacles = append(obstacles, Polygon{Vertices: append([]Point(nil), obj.BoundingBox...)})
	}

	req = PlanRequest{
		RoomDimensions: scene.RoomDimensions,
		Start: Pose{
			Position: Point{X: scene.PerformerStart.Position.X, Z: scene.PerformerStart.Position.Z},
			Heading:  simulatorHeadingToPlanner(scene.PerformerStart.Rotation.Y),
		},
		Target: TargetSpec{
			Position:  Point{X: reachable.Position.X, Z: reachable.Position.Z},
			Footprint: Polygon{Vertices: append([]Point(nil), reachable.BoundingBox...)},
		},
		Obstacles: obstacles,
	}
	return req, nil
}
