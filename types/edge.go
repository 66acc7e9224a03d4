package types

import (
	"fmt"
	"math"
	"sort"
)

/*
EdgeKey identifies an undirected edge. The two vertex ids are packed into one
uint64 with the smaller id in the low 32 bits, so [4,0] and [0,4] give the
same key and keys sort by their larger vertex first.
*/
type EdgeKey uint64

func NewEdgeKey(verts [2]int) (packed EdgeKey) {
	for _, vert := range verts {
		if vert < 0 || vert > math.MaxUint32 {
			panic(fmt.Errorf("unable to pack vertices %d and %d into an edge key",
				verts[0], verts[1]))
		}
	}
	lo, hi := verts[0], verts[1]
	if lo > hi {
		lo, hi = hi, lo
	}
	packed = EdgeKey(uint64(hi)<<32 | uint64(lo))
	return
}

// GetVertices returns the vertex ids in ascending order, or descending if rev
// is set.
func (ek EdgeKey) GetVertices(rev bool) (verts [2]int) {
	verts[0], verts[1] = int(ek&math.MaxUint32), int(ek>>32)
	if rev {
		verts[0], verts[1] = verts[1], verts[0]
	}
	return
}

func (ek EdgeKey) String() string {
	v := ek.GetVertices(false)
	return fmt.Sprintf("[%d,%d]", v[0], v[1])
}

/*
EdgeInt is a directed edge. It packs the same way as EdgeKey and carries the
direction in its sign: negative when the edge runs from the larger id to the
smaller one.
*/
type EdgeInt int64

func NewEdgeInt(verts [2]int) (packed EdgeInt) {
	const limit = math.MaxUint32 >> 1 // Leave room for the sign bit
	for _, vert := range verts {
		if vert < 0 || vert > limit {
			panic(fmt.Errorf("unable to pack vertices %d and %d into a directed edge",
				verts[0], verts[1]))
		}
	}
	packed = EdgeInt(NewEdgeKey(verts))
	if verts[0] > verts[1] {
		packed = -packed
	}
	return
}

// GetVertices returns the ids in the direction of the edge.
func (e EdgeInt) GetVertices() (verts [2]int) {
	if e < 0 {
		return EdgeKey(-e).GetVertices(true)
	}
	return EdgeKey(e).GetVertices(false)
}

func (e EdgeInt) GetKey() EdgeKey {
	if e < 0 {
		return EdgeKey(-e)
	}
	return EdgeKey(e)
}

// Curve is a sequence of directed edges.
type Curve []EdgeInt

// Vertices returns the tail of every edge in order.
func (c Curve) Vertices() (verts []int) {
	verts = make([]int, len(c))
	for i, e := range c {
		verts[i] = e.GetVertices()[0]
	}
	return
}

/*
Loops chains an unordered set of directed edges into closed curves, each edge
followed by the edge leaving its head. Loops are returned in ascending order
of their smallest vertex and each starts there. An error is returned when a
vertex starts or ends more than one edge or a chain does not close.
*/
func (c Curve) Loops() (loops []Curve, err error) {
	var (
		next  = make(map[int]EdgeInt, len(c))
		ends  = make(map[int]bool, len(c))
		tails = make([]int, 0, len(c))
		used  = make(map[int]bool, len(c))
	)
	for _, e := range c {
		v := e.GetVertices()
		if _, dup := next[v[0]]; dup {
			err = fmt.Errorf("vertex %d starts more than one edge", v[0])
			return
		}
		if ends[v[1]] {
			err = fmt.Errorf("vertex %d ends more than one edge", v[1])
			return
		}
		next[v[0]], ends[v[1]] = e, true
		tails = append(tails, v[0])
	}
	sort.Ints(tails)
	for _, start := range tails {
		if used[start] {
			continue
		}
		var loop Curve
		for v := start; ; {
			e, ok := next[v]
			if !ok {
				err = fmt.Errorf("curve starting at %d is open at vertex %d", start, v)
				return
			}
			used[v] = true
			loop = append(loop, e)
			if v = e.GetVertices()[1]; v == start {
				break
			}
		}
		loops = append(loops, loop)
	}
	return
}
