package rde

import (
	"fmt"
	"math"
	"strings"

	"github.com/rdetools/gorde/cellular"
	"github.com/rdetools/gorde/physics"
)

// BackendResult is all the core consumes from an external solver run.
type BackendResult struct {
	Success  bool
	Warnings []string
	Log      string
}

// SolverBackend sizes a mesh whose minimum cell dimension on each axis is
// below requiredMeshSize, generates a solver configuration, executes it, and
// reports the outcome. Implementations beyond mesh sizing live outside this
// module.
type SolverBackend interface {
	Run(g physics.Geometry, settings physics.SimulationSettings,
		c *physics.ChemistryState, requiredMeshSize float64) BackendResult
}

// MeshSizingBackend is the built-in analytic backend: it performs only the
// cellular-constraint mesh sizing, leaving execution to an external solver.
type MeshSizingBackend struct{}

// Floor cell counts regardless of constraint looseness
const (
	minRadialCells          = 10
	minCircumferentialCells = 20
	minAxialCells           = 20
)

func (MeshSizingBackend) Run(g physics.Geometry, settings physics.SimulationSettings,
	c *physics.ChemistryState, requiredMeshSize float64) BackendResult {
	var (
		b      strings.Builder
		result = BackendResult{Success: true}
	)
	if requiredMeshSize <= 0 {
		return BackendResult{
			Success:  false,
			Warnings: []string{fmt.Sprintf("invalid required mesh size %g m", requiredMeshSize)},
		}
	}

	radialCells := settings.RadialCells
	circumferentialCells := settings.CircumferentialCells
	axialCells := settings.AxialCells

	if settings.AutoMeshSizing {
		var (
			gap           = g.AnnularGap()
			circumference = g.Circumference()
		)
		radialCells = max(minRadialCells, int(math.Ceil(gap/requiredMeshSize)))
		circumferentialCells = max(minCircumferentialCells, int(math.Ceil(circumference/requiredMeshSize)))
		axialCells = max(minAxialCells, int(math.Ceil(g.ChamberLength/requiredMeshSize)))

		minSize := math.Min(gap/float64(radialCells),
			math.Min(circumference/float64(circumferentialCells), g.ChamberLength/float64(axialCells)))
		if c.CellSize > 0 && !cellular.MeshResolutionSatisfied(minSize, c.CellSize) {
			result.Warnings = append(result.Warnings,
				"mesh resolution may be insufficient for cellular structure capture")
		}
	}

	fmt.Fprintf(&b, "solver: %s (%s flux, %s time scheme)\n",
		settings.SolverType, settings.FluxScheme, settings.TimeScheme)
	fmt.Fprintf(&b, "required mesh size: %.4e m\n", requiredMeshSize)
	fmt.Fprintf(&b, "mesh cells: %d x %d x %d (radial x circumferential x axial)\n",
		radialCells, circumferentialCells, axialCells)
	result.Log = b.String()
	return result
}
