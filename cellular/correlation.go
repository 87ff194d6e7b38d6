package cellular

import (
	"math"

	"github.com/rdetools/gorde/physics"
)

// CorrelationCellSize is the deterministic per-fuel fallback, a closed-form
// power law in pressure ratio with a φ-deviation and temperature correction.
// It never fails: every fuel, including FuelUnknown, has a table entry.
func CorrelationCellSize(c *physics.ChemistryState) float64 {
	var (
		props         = c.Fuel.Properties()
		pressureRatio = c.ChamberPressure / physics.ReferencePressure
	)
	lambda := props.CorrelationCoeff * math.Pow(pressureRatio, props.PressureExponent)
	if c.Fuel == physics.FuelUnknown {
		// Generic correlation carries no φ or temperature correction
		return lambda
	}
	phiDev := c.EquivalenceRatio - 1.0
	phiFactor := 1.0 / (1.0 + props.PhiQuadCoeff*phiDev*phiDev)
	tempFactor := math.Pow(c.InjectionTemperature/physics.ReferenceTemperature, props.TemperatureExp)
	return lambda * phiFactor * tempFactor
}
