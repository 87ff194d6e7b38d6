package physics

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuelParsing(t *testing.T) {
	{
		assert.Equal(t, Hydrogen, ParseFuel("hydrogen"))
		assert.Equal(t, Hydrogen, ParseFuel("H2"))
		assert.Equal(t, Methane, ParseFuel("CH4"))
		assert.Equal(t, Propane, ParseFuel("propane"))
		assert.Equal(t, FuelUnknown, ParseFuel("kerosene"))
	}
	// Round trip through the wire encoding
	{
		for _, f := range []Fuel{Hydrogen, Methane, Propane, FuelUnknown} {
			data, err := json.Marshal(f)
			assert.NoError(t, err)
			var back Fuel
			assert.NoError(t, json.Unmarshal(data, &back))
			assert.Equal(t, f, back)
		}
	}
	{
		assert.Equal(t, Oxygen, ParseOxidizer("O2"))
		assert.Equal(t, Air, ParseOxidizer("air"))
		assert.Equal(t, Air, ParseOxidizer("nitrous"))
	}
}

func TestFuelProperties(t *testing.T) {
	{
		props := Hydrogen.Properties()
		assert.True(t, near(props.CJVelocityBase, 1970))
		assert.True(t, near(props.CorrelationCoeff, 0.001))
		assert.True(t, props.Validity.Contains(101325, 1.0, 300))
		assert.False(t, props.Validity.Contains(101325, 3.0, 300))
		assert.False(t, props.Validity.Contains(3e6, 1.0, 300))
	}
	// Unrecognized fuels fall back to the generic entry
	{
		props := Fuel(200).Properties()
		assert.True(t, near(props.CorrelationCoeff, 0.0294))
		assert.True(t, near(props.PhiQuadCoeff, 0))
	}
}

func TestUnburnedSoundSpeed(t *testing.T) {
	// γRT with air properties at 300 K, ~347 m/s
	a := UnburnedSoundSpeed(300)
	assert.True(t, near(a, math.Sqrt(1.4*(8314.0/29.0)*300)))
	assert.InDelta(t, 347.0, a, 1.0)
}

func TestGeometryValidation(t *testing.T) {
	{
		g := DefaultGeometry()
		assert.NoError(t, g.Validate())
		assert.True(t, near(g.AnnularGap(), 0.02))
		assert.True(t, near(g.MidRadius(), 0.04))
		assert.True(t, near(g.Circumference(), 0.04*2*math.Pi))
	}
	{
		g := DefaultGeometry()
		g.OuterRadius, g.InnerRadius = 0.02, 0.03
		assert.Error(t, g.Validate())
	}
	{
		g := DefaultGeometry()
		g.ChamberLength = 0
		assert.Error(t, g.Validate())
	}
	{
		g := DefaultGeometry()
		g.InjectorAngles = g.InjectorAngles[:3]
		assert.Error(t, g.Validate())
	}
}

func TestChemistryValidation(t *testing.T) {
	c := DefaultChemistry()
	assert.NoError(t, c.Validate())
	c.EquivalenceRatio = -0.5
	assert.Error(t, c.Validate())
	c = DefaultChemistry()
	c.ChamberPressure = 0
	assert.Error(t, c.Validate())
	c = DefaultChemistry()
	c.InjectionTemperature = 0
	assert.Error(t, c.Validate())
}

func near(a, b float64) (l bool) {
	if math.Abs(a-b) < 1.e-08*math.Max(math.Abs(a), 1) {
		l = true
	}
	return
}
