package surface

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Graph returns the neighbor graph as a gonum weighted undirected graph. Node
// ids are vertex ids and every vertex is present, isolated or not.
func (s *Surface) Graph() (g *simple.WeightedUndirectedGraph) {
	adj := s.Adjacency()
	g = simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for v := 0; v < adj.Len(); v++ {
		g.AddNode(simple.Node(v))
	}
	for u, nb := range adj.nbrs {
		for _, n := range nb {
			if n.ID > u {
				g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(u), simple.Node(n.ID), n.Weight))
			}
		}
	}
	return
}

// ShortestPath returns the vertices along one shortest path from src to dst
// and its length.
func (s *Surface) ShortestPath(src, dst int) (vertices []int, length float64, err error) {
	for _, v := range []int{src, dst} {
		if v < 0 || v >= s.NVertices() {
			err = fmt.Errorf("%w: vertex %d, have %d vertices", ErrVertexOutOfRange, v, s.NVertices())
			return
		}
	}
	if src == dst {
		return []int{src}, 0, nil
	}
	nodes, w := path.DijkstraFromTo(simple.Node(src), simple.Node(dst), s.Graph())
	if nodes == nil {
		err = fmt.Errorf("%w: no path from %d to %d", ErrUnreachable, src, dst)
		return
	}
	vertices = nodeIDs(nodes)
	length = w
	return
}

// ConnectedComponents returns the vertex sets of the connected pieces of the
// mesh, each sorted, ordered by their smallest vertex id.
func (s *Surface) ConnectedComponents() (cc [][]int) {
	for _, c := range topo.ConnectedComponents(s.Graph()) {
		ids := nodeIDs(c)
		sort.Ints(ids)
		cc = append(cc, ids)
	}
	sort.Slice(cc, func(i, j int) bool { return cc[i][0] < cc[j][0] })
	return
}

func nodeIDs(nodes []graph.Node) (ids []int) {
	ids = make([]int, len(nodes))
	for i, n := range nodes {
		ids[i] = int(n.ID())
	}
	return
}
