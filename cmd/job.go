package cmd

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/gosurf/InputParameters"
	"github.com/notargets/gosurf/surface"
)

// Report holds the results of one surface job.
type Report struct {
	Coarse, Fine *surface.Surface
	Distances    map[int]float64 // From the source vertex
	Paths        map[int][]int   // Source to each target
	Mapping      map[int]int     // Coarse vertex to fine vertex
}

func newShape(shape string, resolution int) (s *surface.Surface, err error) {
	switch shape {
	case "sphere":
		return surface.GenerateSphere(resolution)
	case "cube":
		return surface.GenerateCube(), nil
	}
	err = fmt.Errorf("unknown shape %q, use sphere or cube", shape)
	return
}

// RunJob builds the coarse and fine spheres described by sp, placed by its
// scale and translation, and computes distances, paths and the mapping.
func RunJob(sp *InputParameters.SurfaceParameters) (rpt *Report, err error) {
	var (
		coarse, fine *surface.Surface
		off          = r3.Vec{X: sp.Translate[0], Y: sp.Translate[1], Z: sp.Translate[2]}
		opts         []surface.DijkstraOption
	)
	if err = sp.Validate(); err != nil {
		return
	}
	if coarse, err = surface.GenerateSphere(sp.Resolution); err != nil {
		return
	}
	if fine, err = surface.GenerateSphere(sp.FineResolution); err != nil {
		return
	}
	rpt = &Report{
		Coarse: coarse.ScaleAndTranslate(sp.Scale, off),
		Fine:   fine.ScaleAndTranslate(sp.Scale, off),
		Paths:  make(map[int][]int),
	}
	if sp.MaxDistance > 0 {
		opts = append(opts, surface.WithMaxDistance(sp.MaxDistance))
	}
	if rpt.Distances, err = rpt.Coarse.DijkstraDistance(sp.Source, opts...); err != nil {
		return
	}
	for _, tgt := range sp.Targets {
		if rpt.Paths[tgt], _, err = rpt.Coarse.ShortestPath(sp.Source, tgt); err != nil {
			return
		}
	}
	// The tolerance is absolute, so it follows the scale of the surfaces
	if rpt.Mapping, err = rpt.Coarse.MapToHighResolution(rpt.Fine, sp.Epsilon*sp.Scale,
		surface.WithParallelDegree(sp.ParallelDegree)); err != nil {
		return
	}
	return
}

func (rpt *Report) Print(source int) {
	PrintInfo("Coarse", rpt.Coarse)
	PrintInfo("Fine", rpt.Fine)
	printDistances(source, rpt.Distances)
	targets := make([]int, 0, len(rpt.Paths))
	for tgt := range rpt.Paths {
		targets = append(targets, tgt)
	}
	sort.Ints(targets)
	for _, tgt := range targets {
		if d, ok := rpt.Distances[tgt]; ok {
			fmt.Printf("Path %d -> %d: %v, length %8.5f\n", source, tgt, rpt.Paths[tgt], d)
		} else {
			fmt.Printf("Path %d -> %d: %v, beyond the distance limit\n", source, tgt, rpt.Paths[tgt])
		}
	}
	printMapping(rpt.Mapping, 10)
}

func PrintInfo(name string, s *surface.Surface) {
	areas := s.FaceAreas()
	fmt.Printf("%s surface\n", name)
	fmt.Printf("[%d]\t\t\t= Vertices\n", s.NVertices())
	fmt.Printf("[%d]\t\t\t= Faces\n", s.NFaces())
	fmt.Printf("[%d]\t\t\t= Edges\n", len(s.Edges()))
	fmt.Printf("[%d]\t\t\t= Border Vertices\n", len(s.BorderVertices()))
	fmt.Printf("[%d]\t\t\t= Components\n", len(s.ConnectedComponents()))
	fmt.Printf("%8.5f\t\t= Area\n", floats.Sum(areas))
	fmt.Printf("%v\t= Center of Mass\n", s.CenterOfMass())
}

func printDistances(source int, dist map[int]float64) {
	var (
		far, farthest = source, 0.
	)
	for v, d := range dist {
		if d > farthest || (d == farthest && v < far) {
			far, farthest = v, d
		}
	}
	fmt.Printf("%d vertices reached from %d, farthest is %d at %8.5f\n",
		len(dist), source, far, farthest)
}

func printMapping(mapping map[int]int, limit int) {
	keys := make([]int, 0, len(mapping))
	for k := range mapping {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	fmt.Printf("%d coarse vertices mapped\n", len(mapping))
	for i, k := range keys {
		if limit > 0 && i == limit {
			fmt.Printf("...\n")
			break
		}
		fmt.Printf("%6d -> %d\n", k, mapping[k])
	}
}
