package surface

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// Metric selects how CircleAround measures distance.
type Metric uint8

const (
	Euclidean Metric = iota
	Geodesic         // Shortest path through the neighbor graph
)

func (m Metric) String() string {
	switch m {
	case Euclidean:
		return "Euclidean"
	case Geodesic:
		return "Geodesic"
	}
	return fmt.Sprintf("Metric(%d)", uint8(m))
}

// faceCross returns (B-A)x(C-A) for face k, twice the area in length and
// pointing outward for a counter-clockwise face.
func (s *Surface) faceCross(k int) r3.Vec {
	f := s.topo.faces[k]
	A, B, C := s.Vertex(f[0]), s.Vertex(f[1]), s.Vertex(f[2])
	return r3.Cross(r3.Sub(B, A), r3.Sub(C, A))
}

// FaceNormals returns the unit normal of every face. Degenerate faces get a
// zero normal.
func (s *Surface) FaceNormals() (normals []r3.Vec) {
	normals = make([]r3.Vec, s.NFaces())
	for k := range normals {
		if n := s.faceCross(k); r3.Norm(n) != 0 {
			normals[k] = r3.Unit(n)
		}
	}
	return
}

func (s *Surface) FaceAreas() (areas []float64) {
	areas = make([]float64, s.NFaces())
	for k := range areas {
		areas[k] = 0.5 * r3.Norm(s.faceCross(k))
	}
	return
}

// NodeAreas gives every vertex one third of the area of each face it is on.
func (s *Surface) NodeAreas() (areas []float64) {
	var (
		faceAreas = s.FaceAreas()
	)
	areas = make([]float64, s.NVertices())
	for v, ff := range s.vertexFaces() {
		for _, k := range ff {
			areas[v] += faceAreas[k] / 3
		}
	}
	return
}

// NodeNormals returns the area weighted mean of the normals of the faces
// around each vertex, scaled to unit length.
func (s *Surface) NodeNormals() (normals []r3.Vec) {
	normals = make([]r3.Vec, s.NVertices())
	for v, ff := range s.vertexFaces() {
		var sum r3.Vec
		for _, k := range ff {
			sum = r3.Add(sum, s.faceCross(k))
		}
		if r3.Norm(sum) != 0 {
			normals[v] = r3.Unit(sum)
		}
	}
	return
}

// EuclideanDistances returns the straight line distance from src to every
// vertex.
func (s *Surface) EuclideanDistances(src int) (dist []float64, err error) {
	if src < 0 || src >= s.NVertices() {
		err = fmt.Errorf("%w: source %d, have %d vertices", ErrVertexOutOfRange, src, s.NVertices())
		return
	}
	var (
		Nv = s.NVertices()
		p  = s.vertices.RawRowView(src)
	)
	dist = make([]float64, Nv)
	for i := 0; i < Nv; i++ {
		dist[i] = floats.Distance(p, s.vertices.RawRowView(i), 2)
	}
	return
}

// CircleAround returns the vertices within radius of src, with their
// distance measured by metric.
func (s *Surface) CircleAround(src int, radius float64, metric Metric) (circle map[int]float64, err error) {
	if radius < 0 {
		err = fmt.Errorf("%w: radius %v", ErrInvalidParameter, radius)
		return
	}
	switch metric {
	case Geodesic:
		return s.DijkstraDistance(src, WithMaxDistance(radius))
	case Euclidean:
		var dist []float64
		if dist, err = s.EuclideanDistances(src); err != nil {
			return
		}
		circle = make(map[int]float64)
		for v, d := range dist {
			if d <= radius {
				circle[v] = d
			}
		}
		return
	}
	err = fmt.Errorf("%w: unknown metric %s", ErrInvalidParameter, metric)
	return
}
