package physics

import (
	"fmt"
	"math"
)

// Geometry describes the annular RDE combustor. Immutable once constructed;
// Validate is a precondition for every component that consumes it.
type Geometry struct {
	OuterRadius   float64 `json:"outerRadius" yaml:"outerRadius"`     // [m]
	InnerRadius   float64 `json:"innerRadius" yaml:"innerRadius"`     // [m]
	ChamberLength float64 `json:"chamberLength" yaml:"chamberLength"` // [m]
	DomainAngle   float64 `json:"domainAngle" yaml:"domainAngle"`     // (0, 2π] [rad]

	InjectorCount  int       `json:"numberOfInjectors" yaml:"numberOfInjectors"`
	InjectorAngles []float64 `json:"injectorAngularPositions" yaml:"injectorAngularPositions"` // [rad]
	InjectorRadii  []float64 `json:"injectorRadialPositions" yaml:"injectorRadialPositions"`   // [m]
	InjectorWidth  float64   `json:"injectorWidth" yaml:"injectorWidth"`                       // [m]

	InjectionType        string  `json:"injectionType" yaml:"injectionType"` // "axial", "radial", "mixed"
	InjectionAngle       float64 `json:"injectionAngle" yaml:"injectionAngle"`
	InjectionPenetration float64 `json:"injectionPenetration" yaml:"injectionPenetration"` // [m]
}

// DefaultGeometry returns the small lab-scale annulus used as a baseline.
func DefaultGeometry() Geometry {
	g := Geometry{
		OuterRadius:          0.05,
		InnerRadius:          0.03,
		ChamberLength:        0.1,
		DomainAngle:          2 * math.Pi,
		InjectorCount:        12,
		InjectorWidth:        0.002,
		InjectionType:        "axial",
		InjectionAngle:       90.0,
		InjectionPenetration: 0.005,
	}
	g.InjectorAngles = make([]float64, g.InjectorCount)
	g.InjectorRadii = make([]float64, g.InjectorCount)
	for i := range g.InjectorAngles {
		g.InjectorAngles[i] = float64(i) * g.DomainAngle / float64(g.InjectorCount)
		g.InjectorRadii[i] = g.MidRadius()
	}
	return g
}

func (g Geometry) Validate() error {
	if g.InnerRadius <= 0 {
		return fmt.Errorf("inner radius must be positive, got %g m", g.InnerRadius)
	}
	if g.OuterRadius <= g.InnerRadius {
		return fmt.Errorf("invalid geometry: outer radius (%g m) must be greater than inner radius (%g m)",
			g.OuterRadius, g.InnerRadius)
	}
	if g.ChamberLength <= 0 {
		return fmt.Errorf("chamber length must be positive, got %g m", g.ChamberLength)
	}
	if g.DomainAngle <= 0 || g.DomainAngle > 2*math.Pi {
		return fmt.Errorf("domain angle must lie in (0, 2π], got %g rad", g.DomainAngle)
	}
	if g.InjectorCount < 0 {
		return fmt.Errorf("injector count must be non-negative, got %d", g.InjectorCount)
	}
	if len(g.InjectorAngles) != g.InjectorCount || len(g.InjectorRadii) != g.InjectorCount {
		return fmt.Errorf("injector position arrays (%d angular, %d radial) must match injector count %d",
			len(g.InjectorAngles), len(g.InjectorRadii), g.InjectorCount)
	}
	return nil
}

func (g Geometry) AnnularGap() float64 {
	return g.OuterRadius - g.InnerRadius
}

func (g Geometry) MidRadius() float64 {
	return 0.5 * (g.OuterRadius + g.InnerRadius)
}

// Circumference is the mid-annulus arc length over the domain angle.
func (g Geometry) Circumference() float64 {
	return g.MidRadius() * g.DomainAngle
}

func (g Geometry) AnnularArea() float64 {
	return math.Pi * (g.OuterRadius*g.OuterRadius - g.InnerRadius*g.InnerRadius)
}

// SimulationSettings carries the solver and mesh controls handed to the CFD
// backend plus the cellular-resolution constraint.
type SimulationSettings struct {
	SolverType string `json:"solverType" yaml:"solverType"`
	FluxScheme string `json:"fluxScheme" yaml:"fluxScheme"`
	TimeScheme string `json:"timeScheme" yaml:"timeScheme"`

	RadialCells          int `json:"radialCells" yaml:"radialCells"`
	CircumferentialCells int `json:"circumferentialCells" yaml:"circumferentialCells"`
	AxialCells           int `json:"axialCells" yaml:"axialCells"`

	// Target mesh size is λ ÷ CellularConstraintRatio
	CellularConstraintRatio float64 `json:"cellularConstraintRatio" yaml:"cellularConstraintRatio"`
	AutoMeshSizing          bool    `json:"autoMeshSizing" yaml:"autoMeshSizing"`
	EnableCellularTracking  bool    `json:"enableCellularTracking" yaml:"enableCellularTracking"`

	TimeStep         float64 `json:"timeStep" yaml:"timeStep"`                 // [s]
	MaxCourantNumber float64 `json:"maxCourantNumber" yaml:"maxCourantNumber"`
	SimulationTime   float64 `json:"simulationTime" yaml:"simulationTime"` // [s]
	WriteInterval    int     `json:"writeInterval" yaml:"writeInterval"`
}

func DefaultSettings() SimulationSettings {
	return SimulationSettings{
		SolverType:              "detonationFoam",
		FluxScheme:              "HLLC",
		TimeScheme:              "Euler",
		RadialCells:             50,
		CircumferentialCells:    200,
		AxialCells:              100,
		CellularConstraintRatio: 10.0,
		AutoMeshSizing:          true,
		EnableCellularTracking:  true,
		TimeStep:                1e-7,
		MaxCourantNumber:        0.5,
		SimulationTime:          0.005,
		WriteInterval:           100,
	}
}
