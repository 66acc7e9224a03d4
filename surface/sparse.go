package surface

import (
	"sort"

	"github.com/james-bowman/sparse"
)

// IncidenceMatrix returns the M x N face to vertex matrix, 1 where a face
// uses a vertex.
func (s *Surface) IncidenceMatrix() *sparse.CSR {
	FToV := sparse.NewDOK(s.NFaces(), s.NVertices())
	for k, f := range s.topo.faces {
		for _, v := range f {
			FToV.Set(k, v, 1)
		}
	}
	return FToV.ToCSR()
}

// AdjacencyMatrix returns the neighbor graph as a symmetric N x N matrix of
// edge weights.
func (s *Surface) AdjacencyMatrix() *sparse.CSR {
	var (
		adj = s.Adjacency()
		A   = sparse.NewDOK(adj.Len(), adj.Len())
	)
	for u, nb := range adj.nbrs {
		for _, n := range nb {
			A.Set(u, n.ID, n.Weight)
		}
	}
	return A.ToCSR()
}

// FaceNeighbors returns, for every face, the ascending ids of the faces it
// shares an edge with. Two faces share an edge when they have two vertices in
// common, which is an entry of 2 in F*Transpose(F) for incidence matrix F.
func (s *Surface) FaceNeighbors() (nbrs [][]int) {
	Nf := s.NFaces()
	nbrs = make([][]int, Nf)
	if Nf == 0 {
		return
	}
	var (
		FToV = s.IncidenceMatrix()
		FToF = sparse.NewCSR(Nf, Nf, nil, nil, nil)
	)
	FToF.Mul(FToV, FToV.T())
	FToF.DoNonZero(func(i, j int, v float64) {
		if i != j && v == 2 {
			nbrs[i] = append(nbrs[i], j)
		}
	})
	for _, nb := range nbrs {
		sort.Ints(nb)
	}
	return
}
