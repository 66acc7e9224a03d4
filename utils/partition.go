package utils

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// PartitionMap splits the index range [0, MaxIndex) into ParallelDegree
// contiguous buckets whose sizes differ by at most one.
type PartitionMap struct {
	MaxIndex       int
	ParallelDegree int
	Partitions     [][2]int // Start and end (exclusive) of each bucket
}

func NewPartitionMap(ParallelDegree, maxIndex int) (pm *PartitionMap) {
	pm = &PartitionMap{
		MaxIndex:       maxIndex,
		ParallelDegree: ParallelDegree,
		Partitions:     make([][2]int, ParallelDegree),
	}
	for n := 0; n < ParallelDegree; n++ {
		pm.Partitions[n] = pm.Split1D(n)
	}
	return
}

// Split1D returns the range of bucket n. The remainder of the division is
// spread one apiece over the first buckets.
func (pm *PartitionMap) Split1D(n int) (bucket [2]int) {
	var (
		size      = pm.MaxIndex / pm.ParallelDegree
		remainder = pm.MaxIndex % pm.ParallelDegree
		extra     = min(n, remainder)
	)
	bucket[0] = n*size + extra
	bucket[1] = bucket[0] + size
	if n < remainder {
		bucket[1]++
	}
	return
}

// GetBucket finds the bucket holding index k, or -1 if k is out of range.
func (pm *PartitionMap) GetBucket(k int) (bucketNum, kMin, kMax int) {
	_, bucketNum, kMin, kMax = pm.getBucketWithTryCount(k)
	return
}

func (pm *PartitionMap) getBucketWithTryCount(k int) (tryCount, bucketNum, kMin, kMax int) {
	if k < 0 || k >= pm.MaxIndex {
		return 0, -1, 0, 0
	}
	// Buckets are nearly even, so the proportional guess is off by one at most
	bucketNum = min(pm.ParallelDegree*k/pm.MaxIndex, pm.ParallelDegree-1)
	for {
		p := pm.Partitions[bucketNum]
		if p[0] <= k && k < p[1] {
			break
		}
		if p[0] > k {
			bucketNum--
		} else {
			bucketNum++
		}
		tryCount++
	}
	kMin, kMax = pm.Partitions[bucketNum][0], pm.Partitions[bucketNum][1]
	return
}

func (pm *PartitionMap) GetBucketRange(bucketNum int) (kMin, kMax int) {
	kMin, kMax = pm.Partitions[bucketNum][0], pm.Partitions[bucketNum][1]
	return
}

func (pm *PartitionMap) GetBucketDimension(bucketNum int) int {
	kMin, kMax := pm.GetBucketRange(bucketNum)
	return kMax - kMin
}

// Run calls fn for every bucket on its own goroutine and returns the first
// error. The context passed to fn is cancelled once any call fails.
func (pm *PartitionMap) Run(ctx context.Context,
	fn func(ctx context.Context, bucketNum, kMin, kMax int) error) error {
	g, ctx := errgroup.WithContext(ctx)
	for bn := 0; bn < pm.ParallelDegree; bn++ {
		kMin, kMax := pm.GetBucketRange(bn)
		g.Go(func() error { return fn(ctx, bn, kMin, kMax) })
	}
	return g.Wait()
}
