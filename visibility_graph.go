package main

import "log"

// Graph is a visibility graph over hole vertices plus the two query
// endpoints.
type Graph struct {
	Nodes map[int]Point
	Edges map[int][]Edge
}

// Edge represents a connection between two nodes with a cost
type Edge struct {
	To   int     // Index of the destination node
	Cost float64 // Euclidean distance
}

// BuildVisibilityGraph constructs a visibility graph for the
// environment with from/to as nodes 0 and 1. Returns nil when the
// graph would exceed the node cap.
func BuildVisibilityGraph(env *Environment, from, to Point, maxNodes int) *Graph {
	graph := &Graph{
		Nodes: make(map[int]Point),
		Edges: make(map[int][]Edge),
	}

	nodeIndex := 0

	startIdx := nodeIndex
	graph.Nodes[nodeIndex] = from
	nodeIndex++

	endIdx := nodeIndex
	graph.Nodes[nodeIndex] = to
	nodeIndex++

	vertexToIdx := make(map[Point]int)
	vertexToIdx[from] = startIdx
	vertexToIdx[to] = endIdx

	// Hole corners are the only useful intermediate waypoints. Corners
	// outside the room boundary can never be stood on.
	for _, hole := range env.Holes {
		for _, vertex := range hole.Vertices {
			if _, exists := vertexToIdx[vertex]; exists {
				continue
			}
			if !IsPointInPolygon(vertex, env.Boundary) {
				continue
			}
			graph.Nodes[nodeIndex] = vertex
			vertexToIdx[vertex] = nodeIndex
			nodeIndex++
		}
	}

	if len(graph.Nodes) > maxNodes {
		log.Printf("visibility graph too large: %d nodes (cap %d)", len(graph.Nodes), maxNodes)
		return nil
	}

	// Connect every mutually visible node pair
	for i, nodeI := range graph.Nodes {
		for j, nodeJ := range graph.Nodes {
			if i >= j {
				continue // Avoid duplicates and self-loops
			}

			if env.edgeNavigable(nodeI, nodeJ) {
				distance := nodeI.Distance(nodeJ)
				graph.Edges[i] = append(graph.Edges[i], Edge{To: j, Cost: distance})
				graph.Edges[j] = append(graph.Edges[j], Edge{To: i, Cost: distance})
			}
		}
	}

	return graph
}
