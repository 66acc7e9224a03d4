package surface

import (
	"fmt"
	"sort"

	"github.com/notargets/gosurf/types"
)

// EdgeFaces maps every distinct edge of the mesh to the ascending ids of the
// faces that use it. Collapsed edges of degenerate faces are left out.
func (s *Surface) EdgeFaces() (e2f map[types.EdgeKey][]int) {
	e2f = make(map[types.EdgeKey][]int, 3*s.NFaces()/2)
	for k, f := range s.topo.faces {
		for _, e := range f.Edges() {
			if e[0] == e[1] {
				continue
			}
			key := types.NewEdgeKey(e)
			if ff := e2f[key]; len(ff) != 0 && ff[len(ff)-1] == k {
				continue
			}
			e2f[key] = append(e2f[key], k)
		}
	}
	return
}

// Edges returns the distinct edges of the mesh in ascending key order.
func (s *Surface) Edges() (edges []types.EdgeKey) {
	e2f := s.EdgeFaces()
	edges = make([]types.EdgeKey, 0, len(e2f))
	for key := range e2f {
		edges = append(edges, key)
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i] < edges[j] })
	return
}

// BorderVertices returns the ascending ids of the vertices that lie on an
// edge used by a single face. A closed mesh has none.
func (s *Surface) BorderVertices() (border []int) {
	onBorder := make(map[int]struct{})
	for key, ff := range s.EdgeFaces() {
		if len(ff) == 1 {
			verts := key.GetVertices(false)
			onBorder[verts[0]] = struct{}{}
			onBorder[verts[1]] = struct{}{}
		}
	}
	for v := range onBorder {
		border = append(border, v)
	}
	sort.Ints(border)
	return
}

// BorderLoops returns the closed curves formed by the border edges, each as a
// vertex sequence that follows the winding of the faces it borders.
func (s *Surface) BorderLoops() (loops [][]int, err error) {
	var (
		e2f    = s.EdgeFaces()
		border types.Curve
		curves []types.Curve
	)
	for _, f := range s.topo.faces {
		for _, e := range f.Edges() {
			if e[0] != e[1] && len(e2f[types.NewEdgeKey(e)]) == 1 {
				border = append(border, types.NewEdgeInt(e))
			}
		}
	}
	if curves, err = border.Loops(); err != nil {
		err = fmt.Errorf("%w: border is not a set of simple loops: %s", ErrInvalidParameter, err)
		return
	}
	for _, c := range curves {
		loops = append(loops, c.Vertices())
	}
	return
}
