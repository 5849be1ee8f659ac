package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEnvironmentInsetsBoundary(t *testing.T) {
	env, err := BuildEnvironment(Size{X: 10, Z: 10}, nil, 0.3)
	require.NoError(t, err)

	bbox := getBBox(env.Boundary)
	assert.InDelta(t, -4.7, bbox.MinX, 1e-9)
	assert.InDelta(t, 4.7, bbox.MaxX, 1e-9)
	assert.InDelta(t, -4.7, bbox.MinZ, 1e-9)
	assert.InDelta(t, 4.7, bbox.MaxZ, 1e-9)
}

func TestBuildEnvironmentRoomTooSmall(t *testing.T) {
	_, err := BuildEnvironment(Size{X: 0.5, Z: 0.5}, nil, 0.3)
	assert.Error(t, err)
}

func TestBuildEnvironmentRejectsDegenerateHole(t *testing.T) {
	twoVertices := Polygon{Vertices: []Point{{X: 0, Z: 0}, {X: 1, Z: 0}}}
	_, err := BuildEnvironment(Size{X: 10, Z: 10}, []Polygon{twoVertices}, 0.3)
	assert.Error(t, err)

	zeroArea := Polygon{Vertices: []Point{{X: 0, Z: 0}, {X: 1, Z: 0}, {X: 2, Z: 0}}}
	_, err = BuildEnvironment(Size{X: 10, Z: 10}, []Polygon{zeroArea}, 0.3)
	assert.Error(t, err)
}

func TestEnvironmentContains(t *testing.T) {
	hole := squareAt(2, 2, 0.5)
	env, err := BuildEnvironment(Size{X: 10, Z: 10}, []Polygon{hole}, 0.3)
	require.NoError(t, err)

	assert.True(t, env.Contains(Point{X: 0, Z: 0}))
	assert.False(t, env.Contains(Point{X: 2, Z: 2}), "inside hole")
	assert.False(t, env.Contains(Point{X: 5, Z: 0}), "outside inset boundary")
	assert.False(t, env.Contains(Point{X: 7, Z: 7}), "outside room")
}

func TestEnvironmentEdgeNavigable(t *testing.T) {
	hole := squareAt(0, 0, 0.5)
	env, err := BuildEnvironment(Size{X: 10, Z: 10}, []Polygon{hole}, 0.3)
	require.NoError(t, err)

	assert.False(t, env.edgeNavigable(Point{X: -2, Z: 0}, Point{X: 2, Z: 0}), "straight through hole")
	assert.True(t, env.edgeNavigable(Point{X: -2, Z: 2}, Point{X: 2, Z: 2}), "clear of hole")
	assert.False(t, env.edgeNavigable(Point{X: 0, Z: 0}, Point{X: 2, Z: 2}), "endpoint inside hole")
}

func TestShortestPathDirect(t *testing.T) {
	env, err := BuildEnvironment(Size{X: 10, Z: 10}, nil, 0.3)
	require.NoError(t, err)

	cfg := DefaultConfig()
	path := ShortestPath(env, cfg, Point{X: -2, Z: 0}, Point{X: 2, Z: 0})
	require.Len(t, path, 2)
	assert.Equal(t, Point{X: -2, Z: 0}, path[0])
	assert.Equal(t, Point{X: 2, Z: 0}, path[1])
}

func TestShortestPathAroundObstacle(t *testing.T) {
	hole := squareAt(0, 0, 0.8)
	env, err := BuildEnvironment(Size{X: 10, Z: 10}, []Polygon{hole}, 0.3)
	require.NoError(t, err)

	cfg := DefaultConfig()
	from, to := Point{X: -3, Z: 0}, Point{X: 3, Z: 0}
	path := ShortestPath(env, cfg, from, to)
	require.NotNil(t, path)
	require.Greater(t, len(path), 2, "route must detour via hole corners")

	assert.Equal(t, from, path[0])
	assert.Equal(t, to, path[len(path)-1])
	for i := 0; i+1 < len(path); i++ {
		assert.True(t, env.edgeNavigable(path[i], path[i+1]),
			"hop %d not navigable", i)
	}
}

func TestShortestPathUnreachableEndpoints(t *testing.T) {
	hole := squareAt(0, 0, 0.8)
	env, err := BuildEnvironment(Size{X: 10, Z: 10}, []Polygon{hole}, 0.3)
	require.NoError(t, err)

	cfg := DefaultConfig()
	assert.Nil(t, ShortestPath(env, cfg, Point{X: 0, Z: 0}, Point{X: 3, Z: 0}), "from inside hole")
	assert.Nil(t, ShortestPath(env, cfg, Point{X: -3, Z: 0}, Point{X: 6, Z: 0}), "to outside room")
}

func TestShortestPathNoRoute(t *testing.T) {
	// Walls sealing off the right half of the room
	walls := []Polygon{
		{Vertices: []Point{{X: 1, Z: -6}, {X: 2, Z: -6}, {X: 2, Z: 6}, {X: 1, Z: 6}}},
	}
	env, err := BuildEnvironment(Size{X: 10, Z: 10}, walls, 0.3)
	require.NoError(t, err)

	cfg := DefaultConfig()
	assert.Nil(t, ShortestPath(env, cfg, Point{X: -3, Z: 0}, Point{X: 4, Z: 0}))
}
