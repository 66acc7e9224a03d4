package surface

import (
	"fmt"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"
)

/*
Surface is a triangulated mesh of N vertices in 3-space and M triangular faces.
The row index of a vertex is its id and stays fixed for the life of the Surface.

The neighbor graph, the vertex to face lists and the spatial index are built on
first use and cached. SetFaces drops them. Coordinates written through the
handle returned by Vertices are not seen by the caches until Invalidate is
called.
*/
type Surface struct {
	vertices *mat.Dense
	topo     *Topology

	mu    sync.Mutex
	adj   *Adjacency
	v2f   [][]int
	index *kdtree.Tree
}

// NewSurface builds a surface from vertex rows of three coordinates and faces
// of three vertex ids. Both inputs are copied.
func NewSurface(vertices [][]float64, faces [][]int) (s *Surface, err error) {
	var (
		Nv   = len(vertices)
		data = make([]float64, 3*Nv)
		ff   = make([]Face, len(faces))
	)
	for i, v := range vertices {
		if len(v) != 3 {
			err = fmt.Errorf("%w: vertex %d has %d coordinates, need 3",
				ErrShapeMismatch, i, len(v))
			return
		}
		copy(data[3*i:], v)
	}
	for i, f := range faces {
		if len(f) != 3 {
			err = fmt.Errorf("%w: face %d has %d vertices, need 3",
				ErrShapeMismatch, i, len(f))
			return
		}
		ff[i] = Face{f[0], f[1], f[2]}
	}
	return newSurface(Nv, data, ff)
}

// NewSurfaceFromDense builds a surface from an N x 3 coordinate matrix.
func NewSurfaceFromDense(vertices mat.Matrix, faces []Face) (s *Surface, err error) {
	var (
		Nv, nc = vertices.Dims()
		ff     = make([]Face, len(faces))
	)
	if nc != 3 {
		err = fmt.Errorf("%w: vertex matrix is %d x %d, need N x 3",
			ErrShapeMismatch, Nv, nc)
		return
	}
	copy(ff, faces)
	data := make([]float64, 3*Nv)
	for i := 0; i < Nv; i++ {
		for j := 0; j < 3; j++ {
			data[3*i+j] = vertices.At(i, j)
		}
	}
	return newSurface(Nv, data, ff)
}

func newSurface(Nv int, data []float64, faces []Face) (s *Surface, err error) {
	var topo *Topology
	if Nv == 0 {
		err = fmt.Errorf("%w: surface has no vertices", ErrShapeMismatch)
		return
	}
	if topo, err = newTopology(faces, Nv); err != nil {
		return
	}
	s = &Surface{
		vertices: mat.NewDense(Nv, 3, data),
		topo:     topo,
	}
	return
}

func (s *Surface) NVertices() int {
	nr, _ := s.vertices.Dims()
	return nr
}

func (s *Surface) NFaces() int { return s.topo.Len() }

// Vertices returns the N x 3 coordinate storage of this surface. Writes
// through it change this surface only.
func (s *Surface) Vertices() *mat.Dense { return s.vertices }

func (s *Surface) Vertex(i int) r3.Vec {
	row := s.vertices.RawRowView(i)
	return r3.Vec{X: row[0], Y: row[1], Z: row[2]}
}

func (s *Surface) Face(i int) Face { return s.topo.Face(i) }

// Faces returns a copy of the face list. Use SetFaces to change connectivity.
func (s *Surface) Faces() []Face { return s.topo.Faces() }

func (s *Surface) Topology() *Topology { return s.topo }

// SetFaces replaces the connectivity of s and drops the derived caches.
// Surfaces previously derived from s keep the old faces.
func (s *Surface) SetFaces(faces []Face) (err error) {
	var (
		ff   = make([]Face, len(faces))
		topo *Topology
	)
	copy(ff, faces)
	if topo, err = newTopology(ff, s.NVertices()); err != nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.topo = topo
	s.adj, s.v2f = nil, nil
	return
}

// Invalidate drops every derived cache so the next query rebuilds it from the
// current coordinates and faces.
func (s *Surface) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adj, s.v2f, s.index = nil, nil, nil
}

// ScaleAndTranslate returns a new surface with vertices v*a + b. The
// coordinates are copied, the topology is shared.
func (s *Surface) ScaleAndTranslate(a float64, b r3.Vec) *Surface {
	var (
		Nv  = s.NVertices()
		V   = mat.NewDense(Nv, 3, nil)
		off = [3]float64{b.X, b.Y, b.Z}
	)
	for i := 0; i < Nv; i++ {
		src, dst := s.vertices.RawRowView(i), V.RawRowView(i)
		for j := range dst {
			dst[j] = src[j]*a + off[j]
		}
	}
	return &Surface{vertices: V, topo: s.topo}
}

// Transform applies the affine map m to every vertex and returns the result
// as a new surface sharing the topology of s.
func (s *Surface) Transform(m mgl64.Mat4) *Surface {
	var (
		Nv = s.NVertices()
		V  = mat.NewDense(Nv, 3, nil)
	)
	for i := 0; i < Nv; i++ {
		src, dst := s.vertices.RawRowView(i), V.RawRowView(i)
		p := m.Mul4x1(mgl64.Vec3{src[0], src[1], src[2]}.Vec4(1))
		dst[0], dst[1], dst[2] = p[0], p[1], p[2]
	}
	return &Surface{vertices: V, topo: s.topo}
}

// Merge joins two surfaces into one. Vertex ids of b are offset by the
// vertex count of a.
func Merge(a, b *Surface) *Surface {
	var (
		V      mat.Dense
		offset = a.NVertices()
		faces  = make([]Face, 0, a.NFaces()+b.NFaces())
	)
	V.Stack(a.vertices, b.vertices)
	faces = append(faces, a.topo.faces...)
	for _, f := range b.topo.faces {
		faces = append(faces, Face{f[0] + offset, f[1] + offset, f[2] + offset})
	}
	return &Surface{vertices: &V, topo: &Topology{faces: faces}}
}

func (s *Surface) CenterOfMass() r3.Vec {
	var c [3]float64
	for j := range c {
		c[j] = stat.Mean(mat.Col(nil, j, s.vertices), nil)
	}
	return r3.Vec{X: c[0], Y: c[1], Z: c[2]}
}
