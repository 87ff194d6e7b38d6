package rde

import (
	"math"

	"github.com/rdetools/gorde/physics"
)

// Pure-oxygen corrections relative to air
const (
	oxygenVelocityFactor    = 1.2
	oxygenPressureFactor    = 1.4
	oxygenTemperatureFactor = 1.1
)

// DetonationProperties fills the detonation velocity, pressure and
// temperature from the per-fuel table, linearly adjusted off stoichiometric,
// with a fixed multiplicative correction for pure oxygen.
func DetonationProperties(c *physics.ChemistryState) {
	var (
		props  = c.Fuel.Properties()
		phi    = c.EquivalenceRatio
		phiDev = phi - 1.0
	)
	c.DetonationVelocity = props.CJVelocityBase + phiDev*props.CJVelocitySlope
	c.DetonationPressure = c.ChamberPressure * (props.PressureRatioA + phi*props.PressureRatioB)
	c.DetonationTemperature = props.CJTempBase + phi*props.CJTempSlope

	if c.Oxidizer == physics.Oxygen {
		c.DetonationVelocity *= oxygenVelocityFactor
		c.DetonationPressure *= oxygenPressureFactor
		c.DetonationTemperature *= oxygenTemperatureFactor
	}
}

// Specific gas constant for air [J/(kg·K)]
const rAir = 287.0

// ChapmanJouguetVelocity is the simplified one-γ CJ velocity from the fuel's
// heat of combustion, clamped to not exceed the tabulated detonation
// velocity.
func ChapmanJouguetVelocity(c *physics.ChemistryState) float64 {
	var (
		gamma = physics.GammaProducts
		q     = c.Fuel.Properties().HeatOfCombustion
		phi   = c.EquivalenceRatio
	)
	v := math.Sqrt(2.0 * gamma * q * phi / ((gamma + 1.0) * (1.0 + phi)))
	if c.DetonationVelocity > 0 {
		v = math.Min(v, c.DetonationVelocity)
	}
	return v
}

// ChapmanJouguetPressure applies the one-γ CJ pressure relation over the
// unburned density.
func ChapmanJouguetPressure(c *physics.ChemistryState) float64 {
	var (
		gamma    = physics.GammaProducts
		velocity = ChapmanJouguetVelocity(c)
		density0 = c.ChamberPressure / (rAir * c.InjectionTemperature)
	)
	return c.ChamberPressure + density0*velocity*velocity/gamma
}

// ChapmanJouguetTemperature estimates the burned temperature from the CJ
// pressure ratio via an ideal-gas energy balance.
func ChapmanJouguetTemperature(c *physics.ChemistryState) float64 {
	var (
		gamma    = physics.GammaProducts
		pressure = ChapmanJouguetPressure(c)
	)
	ratio := (pressure / c.ChamberPressure) * math.Pow(gamma/(gamma+1.0), gamma)
	return c.InjectionTemperature * ratio
}
