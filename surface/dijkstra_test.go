package surface

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDijkstraDistance(t *testing.T) {
	var (
		s   = newSphere(t, 10)
		tol = 1.e-6
	)
	{ // Known distances from vertex 2
		dist, err := s.DijkstraDistance(2)
		require.NoError(t, err)
		assert.Len(t, dist, 102)
		assert.Equal(t, 0., dist[2])
		for v, d := range map[int]float64{
			0:   3.613173280799,
			1:   0.2846296765,
			52:  1.87458018,
			53:  2.0487004817,
			54:  2.222820777,
			99:  3.3285436042,
			100: 3.3285436042,
			101: 3.3285436042,
		} {
			assert.InDelta(t, d, dist[v], tol, "vertex %d", v)
		}
	}
	{ // Symmetry and the triangle inequality over every edge
		d0, err := s.DijkstraDistance(0)
		require.NoError(t, err)
		d2, _ := s.DijkstraDistance(2)
		assert.InDelta(t, d2[0], d0[2], 1.e-12)
		adj := s.Adjacency()
		for u := 0; u < adj.Len(); u++ {
			for _, n := range adj.Neighbors(u) {
				assert.LessOrEqual(t, d0[n.ID], d0[u]+n.Weight+1.e-12)
			}
		}
	}
	{ // Bounded search
		dist, err := s.DijkstraDistance(2, WithMaxDistance(1))
		require.NoError(t, err)
		full, _ := s.DijkstraDistance(2)
		assert.Less(t, len(dist), len(full))
		for v, d := range full {
			if d <= 1 {
				assert.Equal(t, d, dist[v])
			} else {
				assert.NotContains(t, dist, v)
			}
		}
	}
	{ // Bad inputs
		_, err := s.DijkstraDistance(102)
		assert.ErrorIs(t, err, ErrVertexOutOfRange)
		_, err = s.DijkstraDistance(-1)
		assert.ErrorIs(t, err, ErrVertexOutOfRange)
		_, err = s.DijkstraDistance(0, WithMaxDistance(-1))
		assert.ErrorIs(t, err, ErrInvalidParameter)
		_, err = s.DijkstraDistance(0, WithMaxDistance(math.NaN()))
		assert.ErrorIs(t, err, ErrInvalidParameter)
	}
}

func TestDijkstraIsolated(t *testing.T) {
	s, err := NewSurface(
		[][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {5, 5, 5}},
		[][]int{{0, 1, 2}})
	require.NoError(t, err)
	dist, err := s.DijkstraDistance(3)
	require.NoError(t, err)
	assert.Equal(t, map[int]float64{3: 0}, dist)
	dist, err = s.DijkstraDistance(0)
	require.NoError(t, err)
	assert.Equal(t, map[int]float64{0: 0, 1: 1, 2: 1}, dist)

	_, _, err = s.ShortestPath(0, 3)
	assert.ErrorIs(t, err, ErrUnreachable)
	assert.Equal(t, [][]int{{0, 1, 2}, {3}}, s.ConnectedComponents())
}

func TestShortestPath(t *testing.T) {
	var (
		s   = newSphere(t, 10)
		adj = s.Adjacency()
	)
	dist, err := s.DijkstraDistance(2)
	require.NoError(t, err)
	path, length, err := s.ShortestPath(2, 0)
	require.NoError(t, err)
	assert.InDelta(t, dist[0], length, 1.e-9)
	require.True(t, len(path) > 2)
	assert.Equal(t, 2, path[0])
	assert.Equal(t, 0, path[len(path)-1])
	var sum float64
	for i := 1; i < len(path); i++ {
		w, ok := adj.Weight(path[i-1], path[i])
		require.True(t, ok)
		sum += w
	}
	assert.InDelta(t, length, sum, 1.e-9)

	path, length, err = s.ShortestPath(7, 7)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, path)
	assert.Equal(t, 0., length)
	_, _, err = s.ShortestPath(7, 700)
	assert.ErrorIs(t, err, ErrVertexOutOfRange)

	assert.Len(t, s.ConnectedComponents(), 1)
	g := s.Graph()
	assert.Equal(t, 102, g.Nodes().Len())
	w, ok := g.Weight(0, 96)
	assert.True(t, ok)
	assert.InDelta(t, 0.28462967654657023, w, 1.e-6)
}
