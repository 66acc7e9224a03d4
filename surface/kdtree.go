package surface

import (
	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

// vertexPoint is a vertex position tagged with its id so that k-d tree hits
// can be traced back to the mesh.
type vertexPoint struct {
	r3.Vec
	id int
}

func (p vertexPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(vertexPoint)
	switch d {
	case 0:
		return p.X - q.X
	case 1:
		return p.Y - q.Y
	case 2:
		return p.Z - q.Z
	}
	panic("illegal dimension")
}

func (p vertexPoint) Dims() int { return 3 }

// Distance returns the squared Euclidean distance, as kdtree expects.
func (p vertexPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(vertexPoint)
	return r3.Norm2(r3.Sub(p.Vec, q.Vec))
}

type vertexPoints []vertexPoint

func (p vertexPoints) Index(i int) kdtree.Comparable         { return p[i] }
func (p vertexPoints) Len() int                              { return len(p) }
func (p vertexPoints) Pivot(d kdtree.Dim) int                { return vertexPlane{vertexPoints: p, Dim: d}.Pivot() }
func (p vertexPoints) Slice(start, end int) kdtree.Interface { return p[start:end] }

type vertexPlane struct {
	kdtree.Dim
	vertexPoints
}

func (p vertexPlane) Less(i, j int) bool {
	return p.vertexPoints[i].Compare(p.vertexPoints[j], p.Dim) < 0
}
func (p vertexPlane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfRandoms(p, 100)) }
func (p vertexPlane) Slice(start, end int) kdtree.SortSlicer {
	p.vertexPoints = p.vertexPoints[start:end]
	return p
}
func (p vertexPlane) Swap(i, j int) {
	p.vertexPoints[i], p.vertexPoints[j] = p.vertexPoints[j], p.vertexPoints[i]
}

// spatialIndex returns the cached k-d tree over the vertices of s.
func (s *Surface) spatialIndex() *kdtree.Tree {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index == nil {
		pts := make(vertexPoints, s.NVertices())
		for i := range pts {
			pts[i] = vertexPoint{Vec: s.Vertex(i), id: i}
		}
		s.index = kdtree.New(pts, false)
	}
	return s.index
}
