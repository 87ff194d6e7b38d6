package geometry2D

import (
	"fmt"
	"math"
	"strings"

	"github.com/rdetools/gorde/cellular"
	"github.com/rdetools/gorde/physics"
)

// AxisCheck is one mesh-constraint evaluation along a single axis.
type AxisCheck struct {
	Name             string
	Cells            int
	CellSize         float64 // [m]
	Satisfied        bool
	RecommendedCells int // Minimum count to satisfy the constraint; 0 when satisfied
}

// ConstraintReport aggregates the three axis checks against the 2D-corrected
// required mesh size.
type ConstraintReport struct {
	BaseCellSize     float64 // 1D λ [m]
	EffectiveSize2D  float64 // Curvature-corrected 2D λ [m]
	RequiredMeshSize float64 // [m]
	Axes             []AxisCheck
	Satisfied        bool
}

// Required2DMeshSize applies the radial and circumferential variation margins
// on top of the curvature-corrected mean before dividing by the constraint
// ratio.
func Required2DMeshSize(s CellularStructure2D, ratio float64) float64 {
	effective := s.MeanCellSize * (1.0 + s.RadialVariation + s.CircumferentialVariation)
	return cellular.RequiredMeshSize(effective, ratio)
}

// Validate2DConstraints checks the radial, circumferential and axial cell
// sizes implied by the settings against the 2D-corrected required mesh size
// and recommends minimum cell counts for any failing axis.
func (e *Extension2D) Validate2DConstraints(g physics.Geometry, c *physics.ChemistryState,
	settings physics.SimulationSettings) ConstraintReport {
	var (
		base       = e.Predictor.PredictCellSize(c)
		correction = CurvatureCorrection(g.MidRadius(), base)
		s          = CellularStructure2D{
			MeanCellSize:             base * (1.0 + correction),
			CurvatureCorrection:      correction,
			RadialVariation:          0.15,
			CircumferentialVariation: 0.10,
		}
		ratio = settings.CellularConstraintRatio
	)
	if ratio <= 0 {
		ratio = cellular.CellularConstraintRatio
	}

	report := ConstraintReport{
		BaseCellSize:     base,
		EffectiveSize2D:  s.MeanCellSize,
		RequiredMeshSize: Required2DMeshSize(s, ratio),
		Satisfied:        true,
	}

	axes := []struct {
		name   string
		extent float64
		cells  int
	}{
		{"radial", g.AnnularGap(), settings.RadialCells},
		{"circumferential", g.OuterRadius * g.DomainAngle, settings.CircumferentialCells},
		{"axial", g.ChamberLength, settings.AxialCells},
	}
	for _, axis := range axes {
		check := AxisCheck{Name: axis.name, Cells: axis.cells}
		if axis.cells > 0 {
			check.CellSize = axis.extent / float64(axis.cells)
			check.Satisfied = check.CellSize <= report.RequiredMeshSize
		}
		if !check.Satisfied {
			check.RecommendedCells = int(math.Ceil(axis.extent / report.RequiredMeshSize))
			report.Satisfied = false
		}
		report.Axes = append(report.Axes, check)
	}
	return report
}

// Report renders the constraint evaluation as review text.
func (r ConstraintReport) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== 2D Cellular Constraint Validation ===\n")
	fmt.Fprintf(&b, "Base cell size: %.4e m\n", r.BaseCellSize)
	fmt.Fprintf(&b, "Effective 2D cell size: %.4e m\n", r.EffectiveSize2D)
	fmt.Fprintf(&b, "Required mesh size (λ/ratio): %.4e m\n\n", r.RequiredMeshSize)
	for _, axis := range r.Axes {
		fmt.Fprintf(&b, "%s direction:\n", axis.Name)
		fmt.Fprintf(&b, "  Cells: %d\n", axis.Cells)
		fmt.Fprintf(&b, "  Cell size: %.4e m\n", axis.CellSize)
		if axis.Satisfied {
			fmt.Fprintf(&b, "  Constraint: SATISFIED\n\n")
		} else {
			fmt.Fprintf(&b, "  Constraint: VIOLATED (increase cells to at least %d)\n\n",
				axis.RecommendedCells)
		}
	}
	if r.Satisfied {
		fmt.Fprintf(&b, "Overall validation: PASS\n")
	} else {
		fmt.Fprintf(&b, "Overall validation: FAIL\n")
	}
	return b.String()
}
