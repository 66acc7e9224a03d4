package surface

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gosurf/types"
)

// Neighbor is one weighted entry of the neighbor graph.
type Neighbor struct {
	ID     int
	Weight float64
}

/*
Adjacency is a snapshot of the neighbor graph of a surface. Two vertices are
neighbors when they share a face, and the weight of the pair is the Euclidean
distance between them at the time the snapshot was taken. Later changes to the
surface do not reach an existing snapshot.
*/
type Adjacency struct {
	nbrs [][]Neighbor // Sorted by neighbor id
}

func buildAdjacency(V *mat.Dense, faces []Face) (adj *Adjacency) {
	var (
		Nv, _ = V.Dims()
		seen  = make(map[types.EdgeKey]struct{}, 3*len(faces)/2)
	)
	adj = &Adjacency{nbrs: make([][]Neighbor, Nv)}
	for _, f := range faces {
		for _, e := range f.Edges() {
			if e[0] == e[1] {
				continue // Degenerate face
			}
			key := types.NewEdgeKey(e)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			w := floats.Distance(V.RawRowView(e[0]), V.RawRowView(e[1]), 2)
			adj.nbrs[e[0]] = append(adj.nbrs[e[0]], Neighbor{ID: e[1], Weight: w})
			adj.nbrs[e[1]] = append(adj.nbrs[e[1]], Neighbor{ID: e[0], Weight: w})
		}
	}
	for _, nb := range adj.nbrs {
		sort.Slice(nb, func(i, j int) bool { return nb[i].ID < nb[j].ID })
	}
	return
}

// Len returns the number of vertices covered by the snapshot.
func (adj *Adjacency) Len() int { return len(adj.nbrs) }

// Weight returns the edge weight between u and v, and false if they are not
// neighbors.
func (adj *Adjacency) Weight(u, v int) (w float64, ok bool) {
	if u < 0 || u >= len(adj.nbrs) {
		return
	}
	nb := adj.nbrs[u]
	i := sort.Search(len(nb), func(i int) bool { return nb[i].ID >= v })
	if i < len(nb) && nb[i].ID == v {
		w, ok = nb[i].Weight, true
	}
	return
}

// Neighbors returns the neighbors of v sorted by id, nil if v is not a vertex.
func (adj *Adjacency) Neighbors(v int) (nb []Neighbor) {
	if v < 0 || v >= len(adj.nbrs) {
		return
	}
	nb = make([]Neighbor, len(adj.nbrs[v]))
	copy(nb, adj.nbrs[v])
	return
}

// Degree returns the neighbor count of v, 0 if v is not a vertex.
func (adj *Adjacency) Degree(v int) int {
	if v < 0 || v >= len(adj.nbrs) {
		return 0
	}
	return len(adj.nbrs[v])
}

// Map returns the neighbor graph as one id to weight map per vertex.
func (adj *Adjacency) Map() (m []map[int]float64) {
	m = make([]map[int]float64, len(adj.nbrs))
	for v, nb := range adj.nbrs {
		m[v] = make(map[int]float64, len(nb))
		for _, n := range nb {
			m[v][n.ID] = n.Weight
		}
	}
	return
}

// Adjacency returns the cached neighbor graph, building it on first use.
func (s *Surface) Adjacency() *Adjacency {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.adj == nil {
		s.adj = buildAdjacency(s.vertices, s.topo.faces)
	}
	return s.adj
}

func (s *Surface) vertexFaces() [][]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.v2f == nil {
		s.v2f = make([][]int, s.NVertices())
		for k, f := range s.topo.faces {
			for n, id := range f {
				// A degenerate face lists a vertex once
				if (n > 0 && f[n-1] == id) || (n == 2 && f[0] == id) {
					continue
				}
				s.v2f[id] = append(s.v2f[id], k)
			}
		}
	}
	return s.v2f
}

// VertexFaces returns, for every vertex, the ascending ids of the faces that
// contain it.
func (s *Surface) VertexFaces() (v2f [][]int) {
	cache := s.vertexFaces()
	v2f = make([][]int, len(cache))
	for v, ff := range cache {
		v2f[v] = append([]int(nil), ff...)
	}
	return
}

// NodeFaces returns the ascending ids of the faces that contain vertex v, nil
// if v is not a vertex.
func (s *Surface) NodeFaces(v int) []int {
	v2f := s.vertexFaces()
	if v < 0 || v >= len(v2f) {
		return nil
	}
	return append([]int(nil), v2f[v]...)
}
