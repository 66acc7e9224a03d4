package surface

import "fmt"

// Face is a triangle given by three vertex ids.
type Face [3]int

// Edges returns the three edges of the face in winding order.
func (f Face) Edges() [3][2]int {
	return [3][2]int{{f[0], f[1]}, {f[1], f[2]}, {f[2], f[0]}}
}

// Topology is the face connectivity of a mesh. A Topology is never modified
// after construction, surfaces derived through affine maps share one.
type Topology struct {
	faces []Face
}

func newTopology(faces []Face, nv int) (t *Topology, err error) {
	for i, f := range faces {
		for _, id := range f {
			if id < 0 || id >= nv {
				err = fmt.Errorf("%w: face %d refers to vertex %d, have %d vertices",
					ErrVertexOutOfRange, i, id, nv)
				return
			}
		}
	}
	t = &Topology{faces: faces}
	return
}

func (t *Topology) Len() int { return len(t.faces) }

func (t *Topology) Face(i int) Face { return t.faces[i] }

// Faces returns a copy of the face list.
func (t *Topology) Faces() (faces []Face) {
	faces = make([]Face, len(t.faces))
	copy(faces, t.faces)
	return
}

// Equal reports whether both topologies hold the same faces in the same order.
func (t *Topology) Equal(o *Topology) bool {
	if t == o {
		return true
	}
	if t == nil || o == nil || len(t.faces) != len(o.faces) {
		return false
	}
	for i := range t.faces {
		if t.faces[i] != o.faces[i] {
			return false
		}
	}
	return true
}

// SameTopology reports whether a and b have identical face arrays. Vertex
// coordinates play no part.
func SameTopology(a, b *Surface) bool {
	return a.topo.Equal(b.topo)
}

func (s *Surface) SameTopology(o *Surface) bool {
	return SameTopology(s, o)
}
