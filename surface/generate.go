package surface

import (
	"fmt"
	"math"
)

/*
GenerateSphere triangulates the unit sphere with d*d+2 vertices and 2*d*d
faces. Vertex 0 is the north pole and vertex 1 the south pole. They are
followed by d rings of d vertices each, ordered from the south pole upward at
polar angles k*Pi/(d+1), k = 1..d. Each ring is turned half a step against the
one below it so that neighbouring rings close into a strip of triangles.

Faces 0 to 2d-1 alternate between the south and north caps, one pair per
column. The strips follow column by column, from column d-1 down to 0, with
two faces per band going north. All faces wind clockwise seen from outside,
so their normals point toward the center.
*/
func GenerateSphere(d int) (s *Surface, err error) {
	if d < 1 {
		err = fmt.Errorf("%w: sphere resolution %d, need at least 1", ErrInvalidParameter, d)
		return
	}
	var (
		Nv    = d*d + 2
		V     = make([]float64, 3*Nv)
		faces = make([]Face, 0, 2*d*d)
		ring  = func(k, j int) int { return 2 + (k-1)*d + j%d }
	)
	V[2], V[5] = 1, -1
	for k := 1; k <= d; k++ {
		theta := float64(k) * math.Pi / float64(d+1)
		for j := 0; j < d; j++ {
			phi := 2 * math.Pi * (float64(j) + 0.5*float64(k-1)) / float64(d)
			i := 3 * ring(k, j)
			V[i] = math.Sin(theta) * math.Cos(phi)
			V[i+1] = math.Sin(theta) * math.Sin(phi)
			V[i+2] = -math.Cos(theta)
		}
	}
	for j := 0; j < d; j++ { // Caps
		faces = append(faces,
			Face{ring(1, j), ring(1, j+1), 1},
			Face{ring(d, j+1), ring(d, j), 0})
	}
	for j := d - 1; j >= 0; j-- {
		for k := 1; k < d; k++ {
			faces = append(faces,
				Face{ring(k+1, j), ring(k+1, j+1), ring(k, j+1)},
				Face{ring(k, j), ring(k+1, j), ring(k, j+1)})
		}
	}
	return newSurface(Nv, V, faces)
}

// GenerateCube returns the cube [-1,1]^3 as 8 vertices and 12 triangles,
// wound like the faces of GenerateSphere. Bits 0, 1 and 2 of a vertex id
// select the sign of x, y and z.
func GenerateCube() (s *Surface) {
	var (
		V     = make([]float64, 3*8)
		faces = []Face{
			{0, 1, 2}, {1, 3, 2}, // z = -1
			{4, 6, 5}, {5, 6, 7}, // z = +1
			{0, 4, 1}, {1, 4, 5}, // y = -1
			{2, 3, 6}, {3, 7, 6}, // y = +1
			{0, 2, 4}, {2, 6, 4}, // x = -1
			{1, 5, 3}, {3, 5, 7}, // x = +1
		}
		err error
	)
	for i := 0; i < 8; i++ {
		for j := 0; j < 3; j++ {
			V[3*i+j] = float64(2*(i>>j&1) - 1)
		}
	}
	if s, err = newSurface(8, V, faces); err != nil {
		panic(err)
	}
	return
}
