package InputParameters

import (
	"fmt"
	"runtime"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file. ghodss/yaml converts the YAML
// to JSON before decoding, so the json tags name the keys.
type SurfaceParameters struct {
	Title          string     `json:"Title"`
	Resolution     int        `json:"Resolution"`     // Coarse sphere resolution
	FineResolution int        `json:"FineResolution"` // Sphere mapped onto
	Epsilon        float64    `json:"Epsilon"`        // Mapping tolerance
	Source         int        `json:"Source"`         // Start vertex for distances
	Targets        []int      `json:"Targets"`        // Path end points reported
	MaxDistance    float64    `json:"MaxDistance"`    // Zero is unbounded
	ParallelDegree int        `json:"ParallelDegree"`
	Scale          float64    `json:"Scale"`
	Translate      [3]float64 `json:"Translate"`
}

func NewSurfaceParameters() *SurfaceParameters {
	return &SurfaceParameters{
		Title:          "Sphere Mapping",
		Resolution:     10,
		FineResolution: 40,
		Epsilon:        0.1,
		ParallelDegree: runtime.NumCPU(),
		Scale:          1,
	}
}

// Parse reads the YAML in data over the current values, keys not present
// keep their value.
func (sp *SurfaceParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, sp)
}

func (sp *SurfaceParameters) Validate() (err error) {
	Nv := sp.Resolution*sp.Resolution + 2
	switch {
	case sp.Resolution < 1 || sp.FineResolution < 1:
		err = fmt.Errorf("resolutions must be at least 1, have %d and %d",
			sp.Resolution, sp.FineResolution)
	case !(sp.Epsilon > 0):
		err = fmt.Errorf("epsilon must be > 0, have %v", sp.Epsilon)
	case sp.MaxDistance < 0:
		err = fmt.Errorf("max distance must be >= 0, have %v", sp.MaxDistance)
	case !(sp.Scale > 0):
		err = fmt.Errorf("scale must be > 0, have %v", sp.Scale)
	case sp.ParallelDegree < 1:
		err = fmt.Errorf("parallel degree must be at least 1, have %d", sp.ParallelDegree)
	case sp.Source < 0 || sp.Source >= Nv:
		err = fmt.Errorf("source vertex %d out of range for %d vertices", sp.Source, Nv)
	}
	if err != nil {
		return
	}
	for _, tgt := range sp.Targets {
		if tgt < 0 || tgt >= Nv {
			err = fmt.Errorf("target vertex %d out of range for %d vertices", tgt, Nv)
			return
		}
	}
	return
}

func (sp *SurfaceParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", sp.Title)
	fmt.Printf("[%d]\t\t\t= Resolution\n", sp.Resolution)
	fmt.Printf("[%d]\t\t\t= Fine Resolution\n", sp.FineResolution)
	fmt.Printf("%8.5f\t\t= Epsilon\n", sp.Epsilon)
	fmt.Printf("[%d]\t\t\t= Source Vertex\n", sp.Source)
	fmt.Printf("%v\t\t\t= Targets\n", sp.Targets)
	fmt.Printf("%8.5f\t\t= Max Distance\n", sp.MaxDistance)
	fmt.Printf("[%d]\t\t\t= Parallel Degree\n", sp.ParallelDegree)
	fmt.Printf("%8.5f\t\t= Scale\n", sp.Scale)
	fmt.Printf("%v\t\t= Translate\n", sp.Translate)
}
