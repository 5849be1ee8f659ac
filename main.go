package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

var (
	globalConfig PlannerConfig
	configMutex  sync.RWMutex
)

func currentConfig() PlannerConfig {
	configMutex.RLock()
	defer configMutex.RUnlock()
	return globalConfig
}

// corsMiddleware adds CORS headers to allow frontend requests
func corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

// PlanAPIRequest is the wire form of a planning problem. The start
// rotation arrives in the simulator's convention (degrees clockwise
// from +z) and is converted here at the boundary.
type PlanAPIRequest struct {
	RoomDimensions Size       `json:"roomDimensions"`
	StartPosition  Point      `json:"startPosition"`
	StartRotationY float64    `json:"startRotationY"`
	Target         TargetSpec `json:"target"`
	Obstacles      []Polygon  `json:"obstacles"`
	PlotFile       string     `json:"plotFile,omitempty"`
}

type PlanAPIResponse struct {
	Success bool            `json:"success"`
	Paths   []CandidatePath `json:"paths"`
	Message string          `json:"message,omitempty"`
}

func writePlanResponse(w http.ResponseWriter, paths []CandidatePath, err error) {
	response := PlanAPIResponse{Paths: paths}
	switch {
	case err != nil:
		response.Message = err.Error()
	case len(paths) == 0:
		response.Message = "no path to target"
	default:
		response.Success = true
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func planHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("========================================")
	log.Println("Plan request received")

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req PlanAPIRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("invalid request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	log.Printf("   Room: %.2f x %.2f", req.RoomDimensions.X, req.RoomDimensions.Z)
	log.Printf("   Start: (%.2f, %.2f) rotation %.1f", req.StartPosition.X, req.StartPosition.Z, req.StartRotationY)
	log.Printf("   Obstacles: %d", len(req.Obstacles))

	paths, err := PlanRoute(currentConfig(), PlanRequest{
		RoomDimensions: req.RoomDimensions,
		Start: Pose{
			Position: req.StartPosition,
			Heading:  simulatorHeadingToPlanner(req.StartRotationY),
		},
		Target:    req.Target,
		Obstacles: req.Obstacles,
		PlotFile:  req.PlotFile,
	})
	if err != nil {
		log.Printf("no environment: %v", err)
	}

	writePlanResponse(w, paths, err)
	log.Println("========================================")
}

func planSceneHandler(sceneDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Println("========================================")
		log.Println("Plan-scene request received")

		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req struct {
			Scene string `json:"scene"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Scene == "" {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		scene, err := LoadScene(filepath.Join(sceneDir, filepath.Base(req.Scene)))
		if err != nil {
			log.Printf("scene load failed: %v", err)
			writePlanResponse(w, nil, err)
			return
		}

		cfg := currentConfig()
		planReq, err := BuildPlanRequest(cfg, scene)
		if err != nil {
			log.Printf("scene %q unusable: %v", scene.Name, err)
			writePlanResponse(w, nil, err)
			return
		}

		paths, err := PlanRoute(cfg, planReq)
		if err != nil {
			log.Printf("no environment for scene %q: %v", scene.Name, err)
		}
		writePlanResponse(w, paths, err)
		log.Println("========================================")
	}
}

// GET /health - Health check endpoint
func healthHandler(w http.ResponseWriter, r *http.Request) {
	cfg := currentConfig()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":            "ready",
		"moveIncrement":     cfg.MoveIncrement,
		"rotationIncrement": cfg.RotationIncrement,
	})
}

// watchConfig reloads the planner config whenever its file changes.
// Bad edits are logged and ignored; the last good config stays active.
func watchConfig(configFile string) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("config watch unavailable: %v", err)
		return
	}

	if err := watcher.Add(filepath.Dir(configFile)); err != nil {
		log.Printf("config watch unavailable: %v", err)
		watcher.Close()
		return
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != configFile || !event.Has(fsnotify.Write) {
					continue
				}
				cfg, err := LoadConfig(configFile)
				if err != nil {
					log.Printf("config reload failed, keeping previous: %v", err)
					continue
				}
				configMutex.Lock()
				globalConfig = cfg
				configMutex.Unlock()
				log.Printf("config reloaded from %s", configFile)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("config watch error: %v", err)
			}
		}
	}()
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	configFile := flag.String("config", "", "planner config YAML (optional)")
	sceneDir := flag.String("scenes", "scenes", "scene description directory")
	flag.Parse()

	log.Println("========================================")
	log.Println("Scene Path Planner Server")
	log.Println("========================================")

	globalConfig = DefaultConfig()
	if *configFile != "" {
		cfg, err := LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		globalConfig = cfg
		watchConfig(*configFile)
		log.Printf("Config loaded from %s (watching for changes)", *configFile)
	} else {
		log.Println("Using default planner config")
	}

	http.HandleFunc("/plan", corsMiddleware(planHandler))
	http.HandleFunc("/planScene", corsMiddleware(planSceneHandler(*sceneDir)))
	http.HandleFunc("/health", corsMiddleware(healthHandler))

	log.Printf("Server starting on %s", *addr)
	log.Println("")
	log.Println("Endpoints:")
	log.Println("  POST /plan       - Plan action routes for an inline request")
	log.Println("  POST /planScene  - Plan action routes for a scene file")
	log.Println("  GET  /health     - Check server status")
	log.Println("========================================")

	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.Fatal(err)
	}
}
