package surface

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func newSphere(t testing.TB, d int) *Surface {
	s, err := GenerateSphere(d)
	require.NoError(t, err)
	return s
}

func TestGenerateSphere(t *testing.T) {
	{ // Closed form counts
		s := newSphere(t, 10)
		assert.Equal(t, 102, s.NVertices())
		assert.Equal(t, 200, s.NFaces())
		nr, nc := s.Vertices().Dims()
		assert.Equal(t, [2]int{102, 3}, [2]int{nr, nc})
		s = newSphere(t, 40)
		assert.Equal(t, 1602, s.NVertices())
		assert.Equal(t, 3200, s.NFaces())
		s = newSphere(t, 1)
		assert.Equal(t, 3, s.NVertices())
		assert.Equal(t, 2, s.NFaces())
	}
	{ // Fixed vertex positions
		s := newSphere(t, 10)
		assert.Equal(t, r3.Vec{Z: 1}, s.Vertex(0))
		assert.Equal(t, r3.Vec{Z: -1}, s.Vertex(1))
		tol := 1.e-6
		v := s.Vertex(10)
		assert.InDeltaSlice(t, []float64{0.08706015, -0.26794358, -0.95949297}, []float64{v.X, v.Y, v.Z}, tol)
		v = s.Vertex(40)
		assert.InDeltaSlice(t, []float64{0.86511144, -0.28109175, -0.41541501}, []float64{v.X, v.Y, v.Z}, tol)
		for i := 0; i < s.NVertices(); i++ {
			assert.InDelta(t, 1., r3.Norm(s.Vertex(i)), 1.e-12)
		}
	}
	{ // Fixed faces
		s := newSphere(t, 10)
		assert.Equal(t, Face{2, 3, 1}, s.Face(0))
		assert.Equal(t, Face{7, 8, 1}, s.Face(10))
		assert.Equal(t, Face{93, 92, 0}, s.Face(1))
		assert.Equal(t, Face{30, 31, 21}, s.Face(40))
	}
	{ // Bad resolution
		_, err := GenerateSphere(0)
		assert.ErrorIs(t, err, ErrInvalidParameter)
	}
}

func TestNewSurface(t *testing.T) {
	var (
		verts = [][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	)
	{ // Inputs are copied
		faces := [][]int{{0, 1, 2}}
		s, err := NewSurface(verts, faces)
		require.NoError(t, err)
		verts[0][0], faces[0][0] = 5, 2
		assert.Equal(t, 0., s.Vertices().At(0, 0))
		assert.Equal(t, Face{0, 1, 2}, s.Face(0))
		verts[0][0] = 0
	}
	{ // Shape and range errors
		_, err := NewSurface([][]float64{{0, 0}}, nil)
		assert.ErrorIs(t, err, ErrShapeMismatch)
		_, err = NewSurface(verts, [][]int{{0, 1}})
		assert.ErrorIs(t, err, ErrShapeMismatch)
		_, err = NewSurface(verts, [][]int{{0, 1, 3}})
		assert.ErrorIs(t, err, ErrVertexOutOfRange)
		_, err = NewSurface(verts, [][]int{{0, -1, 2}})
		assert.ErrorIs(t, err, ErrVertexOutOfRange)
		_, err = NewSurface(nil, nil)
		assert.ErrorIs(t, err, ErrShapeMismatch)
	}
	{ // From a dense matrix
		s := newSphere(t, 4)
		s2, err := NewSurfaceFromDense(s.Vertices(), s.Faces())
		require.NoError(t, err)
		assert.True(t, SameTopology(s, s2))
		assert.Equal(t, s.Vertex(7), s2.Vertex(7))
		s.Vertices().Set(7, 0, 3)
		assert.NotEqual(t, s.Vertex(7), s2.Vertex(7))
	}
}

func TestScaleAndTranslate(t *testing.T) {
	var (
		s   = newSphere(t, 10)
		off = r3.Vec{X: 2, Y: 2, Z: 2}
		s2  = s.ScaleAndTranslate(10, off)
	)
	{ // Elementwise v*10 + 2 with shared topology
		assert.True(t, SameTopology(s, s2))
		assert.True(t, s.SameTopology(s2))
		assert.Same(t, s.Topology(), s2.Topology())
		for i := 0; i < s.NVertices(); i++ {
			for j := 0; j < 3; j++ {
				assert.Equal(t, s.Vertices().At(i, j)*10+2, s2.Vertices().At(i, j))
			}
		}
	}
	{ // Copy independence both ways
		before := s2.Vertex(5)
		s.Vertices().Set(5, 0, -100)
		assert.Equal(t, before, s2.Vertex(5))
		parent := s.Vertex(6)
		s2.Vertices().Set(6, 1, 1000)
		assert.Equal(t, parent, s.Vertex(6))
	}
	{ // Affine transform matches scale and translate
		s3 := newSphere(t, 10)
		m := mgl64.Translate3D(2, 2, 2).Mul4(mgl64.Scale3D(10, 10, 10))
		tr := s3.Transform(m)
		st := s3.ScaleAndTranslate(10, off)
		assert.Same(t, s3.Topology(), tr.Topology())
		for i := 0; i < s3.NVertices(); i++ {
			assert.InDelta(t, 0., r3.Norm(r3.Sub(st.Vertex(i), tr.Vertex(i))), 1.e-12)
		}
	}
}

func TestSameTopology(t *testing.T) {
	var (
		sphere = newSphere(t, 10)
		cube   = GenerateCube()
	)
	assert.False(t, SameTopology(sphere, cube))
	assert.False(t, SameTopology(cube, sphere))
	assert.True(t, SameTopology(sphere, newSphere(t, 10)))
	assert.False(t, SameTopology(sphere, newSphere(t, 9)))
	{ // Same face count, different faces
		a, err := NewSurface([][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, [][]int{{0, 1, 2}})
		require.NoError(t, err)
		b, err := NewSurface([][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, [][]int{{0, 2, 1}})
		require.NoError(t, err)
		assert.False(t, SameTopology(a, b))
	}
}

func TestSetFaces(t *testing.T) {
	var (
		s      = newSphere(t, 10)
		child  = s.ScaleAndTranslate(1, r3.Vec{})
		oldTop = s.Topology()
	)
	{ // Bad ids leave the surface as it was
		err := s.SetFaces([]Face{{0, 1, 500}})
		assert.ErrorIs(t, err, ErrVertexOutOfRange)
		assert.Same(t, oldTop, s.Topology())
	}
	{ // New connectivity drops the caches and does not reach derived surfaces
		assert.Equal(t, 10, s.Adjacency().Degree(0))
		require.NoError(t, s.SetFaces([]Face{{0, 2, 3}}))
		assert.Equal(t, 1, s.NFaces())
		assert.Equal(t, 2, s.Adjacency().Degree(0))
		assert.Equal(t, []int{0}, s.NodeFaces(2))
		assert.Equal(t, 200, child.NFaces())
		assert.False(t, SameTopology(s, child))
	}
}

func TestMerge(t *testing.T) {
	var (
		a = GenerateCube()
		b = a.ScaleAndTranslate(1, r3.Vec{X: 5})
		m = Merge(a, b)
	)
	assert.Equal(t, 16, m.NVertices())
	assert.Equal(t, 24, m.NFaces())
	assert.Equal(t, Face{8, 9, 10}, m.Face(12))
	assert.Equal(t, b.Vertex(3), m.Vertex(11))
	cm := m.CenterOfMass()
	assert.InDeltaSlice(t, []float64{2.5, 0, 0}, []float64{cm.X, cm.Y, cm.Z}, 1.e-12)
	cc := m.ConnectedComponents()
	assert.Equal(t, [][]int{{0, 1, 2, 3, 4, 5, 6, 7}, {8, 9, 10, 11, 12, 13, 14, 15}}, cc)
}
