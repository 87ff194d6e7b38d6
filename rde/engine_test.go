package rde

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rdetools/gorde/physics"
)

func defaultRequest() AnalysisRequest {
	return AnalysisRequest{
		AnalysisType: "performance",
		Geometry:     physics.DefaultGeometry(),
		Chemistry:    physics.DefaultChemistry(),
		Settings:     physics.DefaultSettings(),
		WaveCount:    1,
	}
}

func TestDetonationProperties(t *testing.T) {
	// Stoichiometric hydrogen/air reproduces the tabulated base values
	{
		c := physics.DefaultChemistry()
		DetonationProperties(&c)
		assert.True(t, nearRDE(c.DetonationVelocity, 1970))
		assert.True(t, nearRDE(c.DetonationPressure, 101325*20.0))
		assert.True(t, nearRDE(c.DetonationTemperature, 3200))
	}
	// Linear φ adjustment
	{
		c := physics.DefaultChemistry()
		c.EquivalenceRatio = 1.2
		DetonationProperties(&c)
		assert.True(t, nearRDE(c.DetonationVelocity, 1970+0.2*200))
	}
	// Pure oxygen boosts all three properties
	{
		air, oxy := physics.DefaultChemistry(), physics.DefaultChemistry()
		oxy.Oxidizer = physics.Oxygen
		DetonationProperties(&air)
		DetonationProperties(&oxy)
		assert.True(t, nearRDE(oxy.DetonationVelocity, 1.2*air.DetonationVelocity))
		assert.True(t, nearRDE(oxy.DetonationPressure, 1.4*air.DetonationPressure))
		assert.True(t, nearRDE(oxy.DetonationTemperature, 1.1*air.DetonationTemperature))
	}
}

func TestChapmanJouguetRelations(t *testing.T) {
	c := physics.DefaultChemistry()
	DetonationProperties(&c)

	v := ChapmanJouguetVelocity(&c)
	assert.True(t, v > 0)
	// Clamped to the tabulated detonation velocity
	assert.True(t, v <= c.DetonationVelocity)

	p := ChapmanJouguetPressure(&c)
	density0 := c.ChamberPressure / (rAir * c.InjectionTemperature)
	assert.True(t, nearRDE(p, c.ChamberPressure+density0*v*v/physics.GammaProducts))
	assert.True(t, p > c.ChamberPressure)

	temp := ChapmanJouguetTemperature(&c)
	assert.True(t, temp > c.InjectionTemperature)
}

func TestOperatingPoint(t *testing.T) {
	var (
		g = physics.DefaultGeometry()
		c = physics.DefaultChemistry()
	)
	DetonationProperties(&c)
	op := OperatingPointFor(g, &c, 1)

	assert.Equal(t, 1, op.WaveCount)
	assert.True(t, nearRDE(op.WaveSpeed, OperatingSpeedFraction*ChapmanJouguetVelocity(&c)))
	assert.True(t, nearRDE(op.WaveFrequency, op.WaveSpeed/g.Circumference()))
	assert.True(t, op.MassFlowRate > 0)
	assert.True(t, op.Thrust > 0)
	assert.True(t, op.SpecificImpulse > 0)
	assert.True(t, op.PressureGain > 1)
	assert.True(t, op.CombustionEfficiency > 0 && op.CombustionEfficiency <= 0.98)
	assert.True(t, nearRDE(op.IncompleteCombustion, 1-op.CombustionEfficiency))
	assert.True(t, op.HeatLossRate > 0)

	// Oscillation level grows with wave count; zero count clamps to one
	op2 := OperatingPointFor(g, &c, 3)
	assert.True(t, op2.PressureOscillations > op.PressureOscillations)
	assert.Equal(t, 1, OperatingPointFor(g, &c, 0).WaveCount)
}

func TestMeshSizingBackend(t *testing.T) {
	var (
		backend  = MeshSizingBackend{}
		g        = physics.DefaultGeometry()
		c        = physics.DefaultChemistry()
		settings = physics.DefaultSettings()
	)
	c.CellSize = 0.001
	{
		res := backend.Run(g, settings, &c, 0.0001)
		assert.True(t, res.Success)
		assert.Contains(t, res.Log, "mesh cells:")
		// Auto sizing covers the gap with cells no larger than required
		radial := int(math.Ceil(g.AnnularGap() / 0.0001))
		assert.Contains(t, res.Log, "detonationFoam")
		assert.True(t, radial >= 10)
	}
	// Non-positive mesh size is a hard failure
	{
		res := backend.Run(g, settings, &c, 0)
		assert.False(t, res.Success)
		assert.True(t, len(res.Warnings) > 0)
	}
	// Manual sizing leaves the configured counts untouched
	{
		settings.AutoMeshSizing = false
		res := backend.Run(g, settings, &c, 0.0001)
		assert.True(t, res.Success)
		assert.Contains(t, res.Log, "50 x 200 x 100")
	}
}

func TestAnalyzeRDE(t *testing.T) {
	// Nominal hydrogen/air case succeeds with populated metrics
	{
		e := NewEngine()
		result := e.AnalyzeRDE(defaultRequest())
		assert.True(t, result.Success)
		assert.True(t, result.OperatingPoint.Thrust > 0)
		assert.True(t, result.Chemistry.CellSize > 0)
		assert.True(t, result.PerformanceMetrics["thrust"] > 0)
		assert.True(t, result.PerformanceMetrics["wave_frequency"] > 0)
		assert.NotEmpty(t, result.BackendLog)
		// The diagnostic history picked up the run
		assert.Equal(t, 1, len(e.Predictor.TrackingHistory()))
	}
	// Structurally invalid geometry fails fast with no side effects
	{
		e := NewEngine()
		req := defaultRequest()
		req.Geometry.OuterRadius = 0.02
		req.Geometry.InnerRadius = 0.03
		result := e.AnalyzeRDE(req)
		assert.False(t, result.Success)
		assert.True(t, len(result.Warnings) > 0)
		assert.Contains(t, strings.Join(result.Warnings, " "), "radius")
		assert.Empty(t, result.BackendLog)
		assert.Nil(t, result.PerformanceMetrics)
		assert.Empty(t, e.Predictor.TrackingHistory())
	}
	// Invalid chemistry likewise
	{
		e := NewEngine()
		req := defaultRequest()
		req.Chemistry.ChamberPressure = -5
		result := e.AnalyzeRDE(req)
		assert.False(t, result.Success)
		assert.Empty(t, result.BackendLog)
	}
	// Out-of-envelope φ warns but still succeeds
	{
		e := NewEngine()
		req := defaultRequest()
		req.Chemistry.EquivalenceRatio = 2.5
		result := e.AnalyzeRDE(req)
		assert.True(t, result.Success)
		assert.Contains(t, strings.Join(result.Warnings, " "), "operating range")
	}
	// With tracking disabled the correlation fallback supplies λ
	{
		e := NewEngine()
		req := defaultRequest()
		req.Settings.EnableCellularTracking = false
		result := e.AnalyzeRDE(req)
		assert.True(t, result.Success)
		assert.True(t, result.Chemistry.CellSize > 0)
		assert.True(t, nearRDE(result.Chemistry.CJMachNumber, 0))
	}
}

type panicBackend struct{}

func (panicBackend) Run(physics.Geometry, physics.SimulationSettings,
	*physics.ChemistryState, float64) BackendResult {
	panic("solver exploded")
}

func TestAnalyzeRDERecovery(t *testing.T) {
	// A panicking backend becomes Success=false with a diagnostic, never an
	// unhandled fault
	e := NewEngine()
	e.Backend = panicBackend{}
	result := e.AnalyzeRDE(defaultRequest())
	assert.False(t, result.Success)
	assert.Contains(t, strings.Join(result.Warnings, " "), "analysis failed")
}

func TestRecommendations(t *testing.T) {
	e := NewEngine()
	req := defaultRequest()
	// Short chamber starves residence time, tanking efficiency
	req.Geometry.ChamberLength = 0.001
	req.Chemistry.InjectionVelocity = 400.0
	result := e.AnalyzeRDE(req)
	assert.True(t, result.Success)
	assert.True(t, result.OperatingPoint.CombustionEfficiency < 0.8)
	assert.True(t, len(result.Recommendations) > 0)
}

func nearRDE(a, b float64) (l bool) {
	if math.Abs(a-b) < 1.e-08*math.Max(math.Abs(a), 1) {
		l = true
	}
	return
}
