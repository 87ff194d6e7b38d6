package InputParameters

import (
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/rdetools/gorde/physics"
)

func TestParseCaseFile(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Test RDE Case
Analysis: performance
WaveCount: 2
Geometry:
  outerRadius: 0.06
  innerRadius: 0.04
  chamberLength: 0.12
  numberOfInjectors: 0
Chemistry:
  fuelType: methane
  oxidizerType: air
  equivalenceRatio: 1.1
  chamberPressure: 200000
  injectionTemperature: 320
Settings:
  fluxScheme: HLLC
  cellularConstraintRatio: 10
`)
	input := NewInputParametersRDE()
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, input.WaveCount, 2)
	assert.Equal(t, input.Geometry.OuterRadius, 0.06)
	assert.Equal(t, input.Chemistry.Fuel, physics.Methane)
	assert.Equal(t, input.Chemistry.ChamberPressure, 200000.)
	input.Print()
	assert.Equal(t, input.Settings.FluxScheme, "HLLC")
}
