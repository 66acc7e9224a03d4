package surface

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/gosurf/utils"
)

// Squared distances within this relative margin of the best match are treated
// as equal.
const tieTolerance = 1e-9

type MapOptions struct {
	ParallelDegree int // Number of partitions of the coarse vertices
}

type MapOption func(*MapOptions)

func WithParallelDegree(n int) MapOption {
	return func(o *MapOptions) { o.ParallelDegree = n }
}

/*
MapToHighResolution pairs every vertex of coarse with the vertex of fine that
lies closest to it. Only fine vertices within distance epsilon are candidates.
When several candidates are equally close the one with the highest id wins.

If any coarse vertex has no candidate the tolerance is too tight for the
geometry and the call fails as a whole with ErrInvalidParameter.
*/
func MapToHighResolution(coarse, fine *Surface, epsilon float64, opts ...MapOption) (mapping map[int]int, err error) {
	cfg := MapOptions{ParallelDegree: runtime.NumCPU()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !(epsilon > 0) || math.IsInf(epsilon, 1) {
		err = fmt.Errorf("%w: epsilon %v, need a finite value > 0", ErrInvalidParameter, epsilon)
		return
	}
	if cfg.ParallelDegree < 1 {
		err = fmt.Errorf("%w: parallel degree %d", ErrInvalidParameter, cfg.ParallelDegree)
		return
	}
	var (
		Nc    = coarse.NVertices()
		tree  = fine.spatialIndex()
		pm    = utils.NewPartitionMap(min(cfg.ParallelDegree, Nc), Nc)
		parts = make([][]int, pm.ParallelDegree) // Fine ids per bucket
	)
	err = pm.Run(context.Background(), func(ctx context.Context, bn, kMin, kMax int) (err error) {
		part := make([]int, pm.GetBucketDimension(bn))
		for k := kMin; k < kMax; k++ {
			if ctx.Err() != nil {
				return
			}
			if part[k-kMin], err = matchVertex(tree, coarse.Vertex(k), epsilon); err != nil {
				return fmt.Errorf("coarse vertex %d: %w", k, err)
			}
		}
		parts[bn] = part
		return
	})
	if err != nil {
		return
	}
	mapping = make(map[int]int, Nc)
	for k := 0; k < Nc; k++ {
		bn, kMin, _ := pm.GetBucket(k)
		mapping[k] = parts[bn][k-kMin]
	}
	return
}

func (s *Surface) MapToHighResolution(fine *Surface, epsilon float64, opts ...MapOption) (map[int]int, error) {
	return MapToHighResolution(s, fine, epsilon, opts...)
}

func matchVertex(tree *kdtree.Tree, p r3.Vec, epsilon float64) (id int, err error) {
	var (
		q    = vertexPoint{Vec: p, id: -1}
		keep = kdtree.NewDistKeeper(epsilon * epsilon)
	)
	tree.NearestSet(keep, q)
	if keep.Len() == 0 {
		_, d2 := tree.Nearest(q)
		err = fmt.Errorf("%w: no vertex within %g, nearest is %g away",
			ErrInvalidParameter, epsilon, math.Sqrt(d2))
		return
	}
	// Heap is in ascending order of distance
	best := keep.Heap[0].Dist
	id = -1
	for _, c := range keep.Heap {
		if c.Dist > best*(1+tieTolerance) {
			break
		}
		if vid := c.Comparable.(vertexPoint).id; vid > id {
			id = vid
		}
	}
	return
}

// NearestVertex returns the vertex of s closest to p and its distance.
func (s *Surface) NearestVertex(p r3.Vec) (id int, dist float64) {
	c, d2 := s.spatialIndex().Nearest(vertexPoint{Vec: p, id: -1})
	return c.(vertexPoint).id, math.Sqrt(d2)
}
