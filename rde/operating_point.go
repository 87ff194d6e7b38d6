package rde

import (
	"math"

	"github.com/rdetools/gorde/physics"
)

// OperatingPoint is the predicted steady-state performance of an RDE.
type OperatingPoint struct {
	WaveCount     int     `json:"numberOfWaves"`
	WaveSpeed     float64 `json:"waveSpeed"`     // [m/s]
	WaveFrequency float64 `json:"waveFrequency"` // [Hz]

	Thrust          float64 `json:"thrust"`          // [N]
	SpecificImpulse float64 `json:"specificImpulse"` // [s]
	MassFlowRate    float64 `json:"massFlowRate"`    // [kg/s]
	PressureGain    float64 `json:"pressureGain"`

	CombustionEfficiency float64 `json:"combustionEfficiency"`
	PressureOscillations float64 `json:"pressureOscillations"` // RMS fraction
	HeatLossRate         float64 `json:"heatLossRate"`         // [W]
	IncompleteCombustion float64 `json:"incompleteCombustion"`
}

// Empirical operating constants; placeholders for a calibration pass, not
// derived quantities.
const (
	// RDEs run below the ideal CJ speed; 0.8 is the typical operating
	// fraction observed across published rigs.
	OperatingSpeedFraction = 0.8

	characteristicCombustionTime = 1e-4   // [s]
	maxCombustionEfficiency      = 0.98
	wallHeatTransferCoeff        = 1000.0 // [W/(m²·K)]
	cooledWallTemperature        = 800.0  // [K]
)

// OperatingPointFor converts chemistry plus geometry into performance
// metrics using simplified momentum theory. waveCount ≥ 1.
func OperatingPointFor(g physics.Geometry, c *physics.ChemistryState, waveCount int) OperatingPoint {
	if waveCount < 1 {
		waveCount = 1
	}
	var (
		circumference = g.Circumference()
		cjVelocity    = ChapmanJouguetVelocity(c)
		cjPressure    = ChapmanJouguetPressure(c)
		cjTemperature = ChapmanJouguetTemperature(c)
	)

	op := OperatingPoint{WaveCount: waveCount}
	op.WaveSpeed = OperatingSpeedFraction * cjVelocity
	op.WaveFrequency = op.WaveSpeed / circumference

	var (
		injectionArea = float64(g.InjectorCount) * g.InjectorWidth * g.ChamberLength
		density       = c.ChamberPressure / (rAir * c.InjectionTemperature)
	)
	op.MassFlowRate = density * c.InjectionVelocity * injectionArea

	exitVelocity := math.Sqrt(math.Max(0, 2.0*(cjPressure-physics.ReferencePressure)/density))
	op.Thrust = op.MassFlowRate * exitVelocity
	if op.MassFlowRate > 0 {
		op.SpecificImpulse = op.Thrust / (op.MassFlowRate * physics.StandardGravity)
	}

	op.PressureGain = cjPressure / c.ChamberPressure

	residenceTime := g.ChamberLength / c.InjectionVelocity
	op.CombustionEfficiency = math.Min(
		1.0-math.Exp(-residenceTime/characteristicCombustionTime),
		maxCombustionEfficiency)
	op.IncompleteCombustion = 1.0 - op.CombustionEfficiency

	op.PressureOscillations = 0.1 * (1.0 + float64(waveCount)*0.1)

	wallArea := 2.0 * math.Pi * (g.OuterRadius + g.InnerRadius) * g.ChamberLength
	op.HeatLossRate = wallHeatTransferCoeff * wallArea * (cjTemperature - cooledWallTemperature)

	return op
}
