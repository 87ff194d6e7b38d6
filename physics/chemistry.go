package physics

import "fmt"

// ChemistryState carries the mixture definition and operating conditions for
// one analysis request. The detonation and cellular fields are filled once by
// the predictor and are read-only afterwards.
type ChemistryState struct {
	Fuel             Fuel     `json:"fuelType" yaml:"fuelType"`
	Oxidizer         Oxidizer `json:"oxidizerType" yaml:"oxidizerType"`
	EquivalenceRatio float64  `json:"equivalenceRatio" yaml:"equivalenceRatio"`

	ChamberPressure      float64 `json:"chamberPressure" yaml:"chamberPressure"`           // [Pa]
	InjectionTemperature float64 `json:"injectionTemperature" yaml:"injectionTemperature"` // [K]
	InjectionVelocity    float64 `json:"injectionVelocity" yaml:"injectionVelocity"`       // [m/s]

	// Derived detonation properties
	DetonationVelocity    float64 `json:"detonationVelocity" yaml:"detonationVelocity"`       // [m/s]
	DetonationPressure    float64 `json:"detonationPressure" yaml:"detonationPressure"`       // [Pa]
	DetonationTemperature float64 `json:"detonationTemperature" yaml:"detonationTemperature"` // [K]

	// Derived cellular properties
	CellSize        float64 `json:"cellSize" yaml:"cellSize"`               // λ [m]
	InductionLength float64 `json:"inductionLength" yaml:"inductionLength"` // ΔI [m]
	CJMachNumber    float64 `json:"cjMachNumber" yaml:"cjMachNumber"`
	MaxThermicity   float64 `json:"maxThermicity" yaml:"maxThermicity"` // [1/s]

	UseRegressionModel bool `json:"useCellularModel" yaml:"useCellularModel"`
}

// DefaultChemistry mirrors typical hydrogen/air RDE inlet conditions.
func DefaultChemistry() ChemistryState {
	return ChemistryState{
		Fuel:                 Hydrogen,
		Oxidizer:             Air,
		EquivalenceRatio:     1.0,
		ChamberPressure:      ReferencePressure,
		InjectionTemperature: 300.0,
		InjectionVelocity:    100.0,
		UseRegressionModel:   true,
	}
}

func (c *ChemistryState) Validate() error {
	if c.EquivalenceRatio <= 0 {
		return fmt.Errorf("equivalence ratio must be positive, got %g", c.EquivalenceRatio)
	}
	if c.ChamberPressure <= 0 {
		return fmt.Errorf("chamber pressure must be positive, got %g Pa", c.ChamberPressure)
	}
	if c.InjectionTemperature <= 0 {
		return fmt.Errorf("injection temperature must be positive, got %g K", c.InjectionTemperature)
	}
	return nil
}
