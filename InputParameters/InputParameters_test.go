package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurfaceParameters(t *testing.T) {
	{ // Parse over defaults
		fileInput := []byte(`
Title: Test Case
Resolution: 12
Epsilon: 0.05
Source: 2
Targets: [0, 53]
Translate: [1, 2, 3]
`)
		sp := NewSurfaceParameters()
		require.NoError(t, sp.Parse(fileInput))
		assert.Equal(t, "Test Case", sp.Title)
		assert.Equal(t, 12, sp.Resolution)
		assert.Equal(t, 40, sp.FineResolution)
		assert.Equal(t, 0.05, sp.Epsilon)
		assert.Equal(t, 2, sp.Source)
		assert.Equal(t, []int{0, 53}, sp.Targets)
		assert.Equal(t, 1., sp.Scale)
		assert.Equal(t, [3]float64{1, 2, 3}, sp.Translate)
		assert.NoError(t, sp.Validate())
		sp.Print()
	}
	{ // Validation
		sp := NewSurfaceParameters()
		require.NoError(t, sp.Validate())
		sp.Epsilon = 0
		assert.Error(t, sp.Validate())
		sp = NewSurfaceParameters()
		sp.Source = 102
		assert.Error(t, sp.Validate())
		sp = NewSurfaceParameters()
		sp.Targets = []int{-1}
		assert.Error(t, sp.Validate())
		sp = NewSurfaceParameters()
		sp.ParallelDegree = 0
		assert.Error(t, sp.Validate())
		sp = NewSurfaceParameters()
		sp.MaxDistance = -1
		assert.Error(t, sp.Validate())
		sp = NewSurfaceParameters()
		sp.Scale = 0
		assert.Error(t, sp.Validate())
	}
	{ // Malformed input
		sp := NewSurfaceParameters()
		assert.Error(t, sp.Parse([]byte("Resolution: [1, 2")))
	}
}
