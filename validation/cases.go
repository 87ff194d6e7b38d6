package validation

import (
	"fmt"
	"math"
	"os"

	"github.com/ghodss/yaml"

	"github.com/rdetools/gorde/physics"
)

type CaseType uint8

const (
	Analytical1D CaseType = iota
	CellularStructure
	DetonationTube
	WedgeGeometry
	SimplifiedRDE
	FullRDE
)

var caseTypeNames = map[CaseType]string{
	Analytical1D:      "analytical_1d",
	CellularStructure: "cellular_structure",
	DetonationTube:    "detonation_tube",
	WedgeGeometry:     "wedge",
	SimplifiedRDE:     "simplified_rde",
	FullRDE:           "full_rde",
}

func (t CaseType) String() string {
	return caseTypeNames[t]
}

// ValidationCase is one named reference condition with expected values and
// per-quantity tolerance percentages.
type ValidationCase struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Source      string `json:"source"`
	Type        CaseType

	Fuel             physics.Fuel `json:"fuelType"`
	Pressure         float64      `json:"pressure"`    // [Pa]
	Temperature      float64      `json:"temperature"` // [K]
	EquivalenceRatio float64      `json:"equivalenceRatio"`

	ExpectedCJVelocity    float64 `json:"expectedCJVelocity"` // [m/s]
	ExpectedCellSize      float64 `json:"expectedCellSize"`   // [m]
	ExpectedPressureRatio float64 `json:"expectedPressureRatio"`
	ExpectedFrequency     float64 `json:"expectedFrequency"`  // [Hz]

	VelocityTolerance  float64 `json:"velocityTolerance"`  // [%]
	CellSizeTolerance  float64 `json:"cellSizeTolerance"`  // [%]
	PressureTolerance  float64 `json:"pressureTolerance"`  // [%]
	FrequencyTolerance float64 `json:"frequencyTolerance"` // [%]

	Geometry *physics.Geometry           `json:"geometry,omitempty"`
	Settings *physics.SimulationSettings `json:"settings,omitempty"`
}

// Standard tolerances [%]
const (
	defaultVelocityTol  = 5.0
	defaultCellSizeTol  = 20.0
	defaultPressureTol  = 10.0
	defaultFrequencyTol = 15.0
)

func withDefaultTolerances(c ValidationCase) ValidationCase {
	c.VelocityTolerance = defaultVelocityTol
	c.CellSizeTolerance = defaultCellSizeTol
	c.PressureTolerance = defaultPressureTol
	c.FrequencyTolerance = defaultFrequencyTol
	return c
}

// AnalyticalSuite holds the closed-form stoichiometric reference conditions
// at 1 atm / 298.15 K for the three calibrated fuels.
func AnalyticalSuite() []ValidationCase {
	return []ValidationCase{
		withDefaultTolerances(ValidationCase{
			Name:                  "H2_air_analytical_1atm",
			Description:           "Hydrogen-air analytical validation at 1 atm",
			Source:                "Analytical",
			Type:                  Analytical1D,
			Fuel:                  physics.Hydrogen,
			Pressure:              101325.0,
			Temperature:           298.15,
			EquivalenceRatio:      1.0,
			ExpectedCJVelocity:    1970.0,
			ExpectedCellSize:      0.001,
			ExpectedPressureRatio: 18.0,
			ExpectedFrequency:     1970000.0,
		}),
		withDefaultTolerances(ValidationCase{
			Name:                  "CH4_air_analytical_1atm",
			Description:           "Methane-air analytical validation at 1 atm",
			Source:                "Analytical",
			Type:                  Analytical1D,
			Fuel:                  physics.Methane,
			Pressure:              101325.0,
			Temperature:           298.15,
			EquivalenceRatio:      1.0,
			ExpectedCJVelocity:    1800.0,
			ExpectedCellSize:      0.01,
			ExpectedPressureRatio: 25.0,
			ExpectedFrequency:     180000.0,
		}),
		withDefaultTolerances(ValidationCase{
			Name:                  "C3H8_air_analytical_1atm",
			Description:           "Propane-air analytical validation at 1 atm",
			Source:                "Analytical",
			Type:                  Analytical1D,
			Fuel:                  physics.Propane,
			Pressure:              101325.0,
			Temperature:           298.15,
			EquivalenceRatio:      1.0,
			ExpectedCJVelocity:    1850.0,
			ExpectedCellSize:      0.02,
			ExpectedPressureRatio: 28.0,
			ExpectedFrequency:     92500.0,
		}),
	}
}

// CellularSuite exercises the cell-size predictor against measured cellular
// structure, including the high-pressure hydrogen variant.
func CellularSuite() []ValidationCase {
	return []ValidationCase{
		withDefaultTolerances(ValidationCase{
			Name:                  "H2_cellular_structure_validation",
			Description:           "Hydrogen cellular structure prediction validation",
			Source:                "NASA_Glenn",
			Type:                  CellularStructure,
			Fuel:                  physics.Hydrogen,
			Pressure:              101325.0,
			Temperature:           298.15,
			EquivalenceRatio:      1.0,
			ExpectedCJVelocity:    1970.0,
			ExpectedCellSize:      0.001,
			ExpectedPressureRatio: 18.0,
			ExpectedFrequency:     1970000.0,
		}),
		withDefaultTolerances(ValidationCase{
			Name:                  "H2_cellular_high_pressure",
			Description:           "Hydrogen cellular structure at high pressure (5 atm)",
			Source:                "NASA_Glenn",
			Type:                  CellularStructure,
			Fuel:                  physics.Hydrogen,
			Pressure:              500000.0,
			Temperature:           298.15,
			EquivalenceRatio:      1.0,
			ExpectedCJVelocity:    1970.0,
			ExpectedCellSize:      0.0004, // Cells shrink with pressure
			ExpectedPressureRatio: 18.0,
			ExpectedFrequency:     4925000.0,
		}),
	}
}

// ExperimentalSuite carries the large-scale full-RDE comparison against the
// published NASA Glenn high-thrust rig.
func ExperimentalSuite() []ValidationCase {
	geometry := physics.Geometry{
		OuterRadius:          0.15,
		InnerRadius:          0.10,
		ChamberLength:        0.20,
		DomainAngle:          2 * math.Pi,
		InjectorCount:        12,
		InjectorWidth:        0.002,
		InjectionType:        "axial",
		InjectionAngle:       90.0,
		InjectionPenetration: 0.005,
	}
	geometry.InjectorAngles = make([]float64, geometry.InjectorCount)
	geometry.InjectorRadii = make([]float64, geometry.InjectorCount)
	for i := range geometry.InjectorAngles {
		geometry.InjectorAngles[i] = float64(i) * geometry.DomainAngle / float64(geometry.InjectorCount)
		geometry.InjectorRadii[i] = geometry.MidRadius()
	}

	settings := physics.DefaultSettings()
	settings.SolverType = "detonationFoam"
	settings.FluxScheme = "HLLC"
	settings.AutoMeshSizing = true
	settings.EnableCellularTracking = true

	return []ValidationCase{
		withDefaultTolerances(ValidationCase{
			Name:                  "NASA_Glenn_H2_4000lbs_thrust",
			Description:           "NASA Glenn 4000+ lbs thrust RDE validation",
			Source:                "NASA_Glenn",
			Type:                  FullRDE,
			Fuel:                  physics.Hydrogen,
			Pressure:              200000.0,
			Temperature:           298.15,
			EquivalenceRatio:      1.0,
			ExpectedCJVelocity:    1970.0,
			ExpectedCellSize:      0.0007,
			ExpectedPressureRatio: 18.0,
			ExpectedFrequency:     2814286.0,
			Geometry:              &geometry,
			Settings:              &settings,
		}),
	}
}

// LoadCases reads a YAML list of validation cases from disk for custom
// suites.
func LoadCases(path string) ([]ValidationCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading validation cases: %w", err)
	}
	var cases []ValidationCase
	if err = yaml.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("parsing validation cases %s: %w", path, err)
	}
	return cases, nil
}
