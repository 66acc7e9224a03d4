package surface

import (
	"container/heap"
	"fmt"
	"math"
)

// DijkstraOptions configures DijkstraDistance.
type DijkstraOptions struct {
	MaxDistance float64 // Vertices farther than this are not reported
}

type DijkstraOption func(*DijkstraOptions)

// WithMaxDistance stops the search at path length r.
func WithMaxDistance(r float64) DijkstraOption {
	return func(o *DijkstraOptions) { o.MaxDistance = r }
}

func defaultDijkstraOptions() DijkstraOptions {
	return DijkstraOptions{MaxDistance: math.Inf(1)}
}

/*
DijkstraDistance returns the length of the shortest path through the neighbor
graph from src to every vertex it reaches. The source maps to exactly 0.
Vertices that cannot be reached, or lie beyond the WithMaxDistance bound, are
left out of the result, so an isolated vertex yields only itself.
*/
func (s *Surface) DijkstraDistance(src int, opts ...DijkstraOption) (dist map[int]float64, err error) {
	cfg := defaultDijkstraOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if src < 0 || src >= s.NVertices() {
		err = fmt.Errorf("%w: source %d, have %d vertices", ErrVertexOutOfRange, src, s.NVertices())
		return
	}
	if cfg.MaxDistance < 0 || math.IsNaN(cfg.MaxDistance) {
		err = fmt.Errorf("%w: max distance %v", ErrInvalidParameter, cfg.MaxDistance)
		return
	}
	r := newRunner(s.Adjacency(), cfg)
	r.run(src)
	return r.dist, nil
}

type runner struct {
	adj     *Adjacency
	options DijkstraOptions
	dist    map[int]float64 // Best known distance from the source
	visited []bool
	pq      nodePQ
}

func newRunner(adj *Adjacency, cfg DijkstraOptions) *runner {
	return &runner{
		adj:     adj,
		options: cfg,
		dist:    make(map[int]float64),
		visited: make([]bool, adj.Len()),
	}
}

func (r *runner) run(src int) {
	r.dist[src] = 0
	heap.Push(&r.pq, nodeItem{id: src, dist: 0})
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		if r.visited[item.id] {
			continue // Stale entry
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}
}

func (r *runner) relax(u int) {
	du := r.dist[u]
	for _, n := range r.adj.nbrs[u] {
		if r.visited[n.ID] {
			continue
		}
		d := du + n.Weight
		if d > r.options.MaxDistance {
			continue
		}
		if old, ok := r.dist[n.ID]; ok && d >= old {
			continue
		}
		r.dist[n.ID] = d
		heap.Push(&r.pq, nodeItem{id: n.ID, dist: d})
	}
}

type nodeItem struct {
	id   int
	dist float64
}

type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
