package main

import (
	"container/heap"
)

// searchNode is one graph node's state during A*.
type searchNode struct {
	nodeID int
	g      float64 // Cost from start to this node
	h      float64 // Heuristic cost from this node to end
	f      float64 // Total cost (g + h)
	parent *searchNode
	index  int // Index in the heap
}

type nodeQueue []*searchNode

func (pq nodeQueue) Len() int { return len(pq) }

func (pq nodeQueue) Less(i, j int) bool {
	return pq[i].f < pq[j].f
}

func (pq nodeQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *nodeQueue) Push(x any) {
	n := len(*pq)
	node := x.(*searchNode)
	node.index = n
	*pq = append(*pq, node)
}

func (pq *nodeQueue) Pop() any {
	old := *pq
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*pq = old[0 : n-1]
	return node
}

// AStarPathOnGraph computes the shortest path between two graph nodes.
func AStarPathOnGraph(graph *Graph, startIdx, endIdx int) ([]Point, bool) {
	if graph == nil || len(graph.Nodes) == 0 {
		return nil, false
	}

	startPoint := graph.Nodes[startIdx]
	endPoint := graph.Nodes[endIdx]

	openSet := &nodeQueue{}
	heap.Init(openSet)

	startNode := &searchNode{
		nodeID: startIdx,
		g:      0,
		h:      startPoint.Distance(endPoint),
		f:      startPoint.Distance(endPoint),
	}
	heap.Push(openSet, startNode)

	closedSet := make(map[int]bool)
	openSetMap := map[int]*searchNode{startIdx: startNode}

	for openSet.Len() > 0 {
		current := heap.Pop(openSet).(*searchNode)
		delete(openSetMap, current.nodeID)

		if current.nodeID == endIdx {
			var reversed []Point
			for node := current; node != nil; node = node.parent {
				reversed = append(reversed, graph.Nodes[node.nodeID])
			}
			path := make([]Point, len(reversed))
			for i, p := range reversed {
				path[len(reversed)-1-i] = p
			}
			return path, true
		}

		closedSet[current.nodeID] = true

		for _, edge := range graph.Edges[current.nodeID] {
			neighborID := edge.To
			if closedSet[neighborID] {
				continue
			}

			tentativeG := current.g + edge.Cost

			neighbor, exists := openSetMap[neighborID]
			if !exists {
				neighborPoint := graph.Nodes[neighborID]
				neighbor = &searchNode{
					nodeID: neighborID,
					g:      tentativeG,
					h:      neighborPoint.Distance(endPoint),
					parent: current,
				}
				neighbor.f = neighbor.g + neighbor.h
				heap.Push(openSet, neighbor)
				openSetMap[neighborID] = neighbor
			} else if tentativeG < neighbor.g {
				// Found a better path to this neighbor
				neighbor.g = tentativeG
				neighbor.f = neighbor.g + neighbor.h
				neighbor.parent = current
				heap.Fix(openSet, neighbor.index)
			}
		}
	}

	return nil, false
}
