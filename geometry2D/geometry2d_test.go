package geometry2D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rdetools/gorde/cellular"
	"github.com/rdetools/gorde/physics"
	"github.com/rdetools/gorde/rde"
)

func annularChemistry() physics.ChemistryState {
	c := physics.DefaultChemistry()
	rde.DetonationProperties(&c)
	return c
}

func TestCoordinateTransforms(t *testing.T) {
	// Cylindrical → Cartesian → cylindrical round trip
	cases := []struct{ r, theta float64 }{
		{0.04, 0.0},
		{0.04, 1.0},
		{0.05, math.Pi},
		{0.03, 3 * math.Pi / 2},
		{0.1, 6.28},
	}
	for _, tc := range cases {
		x, y := ToCartesian(tc.r, tc.theta)
		r, theta := ToCylindrical(x, y)
		assert.InDelta(t, tc.r, r, 1e-9)
		assert.InDelta(t, tc.theta, theta, 1e-9)
	}
	// Negative angles normalize into [0, 2π)
	{
		_, theta := ToCylindrical(0.0, -1.0)
		assert.InDelta(t, 3*math.Pi/2, theta, 1e-9)
	}
}

func TestAngularDistance(t *testing.T) {
	full := 2 * math.Pi
	assert.InDelta(t, 0.2, angularDistance(0.1, 0.3, full), 1e-12)
	// Wraps across the branch cut
	assert.InDelta(t, 0.2, angularDistance(0.1, full-0.1, full), 1e-12)
	assert.InDelta(t, math.Pi, angularDistance(0, math.Pi, full), 1e-12)
}

func TestCurvatureCorrection(t *testing.T) {
	assert.Equal(t, 0.0, CurvatureCorrection(0.04, 0))
	// Negligible when the annulus is much larger than the cells
	assert.Equal(t, 0.0, CurvatureCorrection(0.5, 0.001))
	// Capped at 0.3 when cells approach the radius
	assert.InDelta(t, 0.3, CurvatureCorrection(0.001, 0.001), 1e-12)
	// Monotone decay in between
	c1 := CurvatureCorrection(0.02, 0.001)
	c2 := CurvatureCorrection(0.04, 0.001)
	assert.True(t, c1 > c2)
}

func TestAnalyze2DStructure(t *testing.T) {
	var (
		ext = NewExtension2D(cellular.NewPredictor())
		g   = physics.DefaultGeometry()
		c   = annularChemistry()
	)
	s := ext.Analyze2DStructure(g, &c)

	base := ext.Predictor.PredictCellSize(&c)
	assert.True(t, near2d(s.MeanCellSize, base*(1.0+s.CurvatureCorrection)))
	assert.True(t, near2d(s.RadialVariation, 0.15))
	assert.True(t, near2d(s.CircumferentialVariation, 0.10))
	assert.True(t, near2d(s.Regularity, 0.75))

	nR, nTheta := s.Field.Dims()
	assert.Equal(t, DefaultRadialSamples, nR)
	assert.Equal(t, DefaultAngularSamples, nTheta)

	// One synthetic triple point per injector, downstream of it
	assert.Equal(t, g.InjectorCount, len(s.TriplePoints))
	for _, tp := range s.TriplePoints {
		assert.True(t, near2d(tp.R, g.MidRadius()))
		assert.True(t, near2d(tp.Pressure, 3.0*c.DetonationPressure))
	}
}

func TestFieldWallThinning(t *testing.T) {
	var (
		ext = NewExtension2D(cellular.NewPredictor())
		g   = physics.DefaultGeometry()
		c   = annularChemistry()
	)
	// Remove injectors so wall bands are the only modulation
	g.InjectorCount = 0
	g.InjectorAngles = nil
	g.InjectorRadii = nil

	s := ext.Analyze2DStructure(g, &c)
	_, nTheta := s.Field.Dims()
	for j := 0; j < nTheta; j++ {
		assert.True(t, near2d(s.Field.At(0, j), 0.9*s.MeanCellSize))
		assert.True(t, near2d(s.Field.At(DefaultRadialSamples-1, j), 0.95*s.MeanCellSize))
		assert.True(t, near2d(s.Field.At(DefaultRadialSamples/2, j), s.MeanCellSize))
	}
}

func TestTrackWavePropagation(t *testing.T) {
	var (
		ext   = NewExtension2D(cellular.NewPredictor())
		g     = physics.DefaultGeometry()
		c     = annularChemistry()
		front = InitialFront(g, &c, 36)
	)
	assert.Equal(t, 36, len(front))

	wp := ext.TrackWavePropagation(g, &c, front, 0.001)
	assert.True(t, near2d(wp.MeanSpeed, c.DetonationVelocity))
	assert.True(t, near2d(wp.SpeedVariation, 0.1*c.DetonationVelocity))
	assert.True(t, near2d(wp.Thickness, 3.0*ext.Predictor.PredictCellSize(&c)))
	assert.True(t, near2d(wp.EnergyDissipation, 0.05))
	assert.Equal(t, len(front), len(wp.CollisionPoints))

	// Local speeds oscillate within the 10% band around nominal
	for _, v := range wp.LocalSpeeds {
		assert.True(t, v >= 0.9*wp.MeanSpeed-1e-9)
		assert.True(t, v <= 1.1*wp.MeanSpeed+1e-9)
	}
	// Collisions predicted diametrically opposite each front point
	assert.InDelta(t, math.Pi, angularDistance(front[0].Theta, wp.CollisionPoints[0].Theta, g.DomainAngle), 1e-9)
}

func TestMultiWaveClassification(t *testing.T) {
	var (
		ext = NewExtension2D(cellular.NewPredictor())
		g   = physics.DefaultGeometry()
		c   = annularChemistry()
	)
	evenWaves := func(n int, speed float64) []WavePropagation2D {
		waves := make([]WavePropagation2D, n)
		for i := range waves {
			theta := float64(i) * g.DomainAngle / float64(n)
			waves[i] = WavePropagation2D{
				Trajectory: []Wave2DPoint{{R: g.MidRadius(), Theta: theta}},
				MeanSpeed:  speed,
			}
		}
		return waves
	}

	// Single wave
	{
		sys := ext.AnalyzeMultiWaveSystem(g, &c, evenWaves(1, 1970))
		assert.Equal(t, PatternSingle, sys.Pattern)
		assert.True(t, near2d(sys.StabilityIndex, 0.8))
		assert.True(t, near2d(sys.SystemFrequency, 1970/(g.OuterRadius*g.DomainAngle)))
	}
	// Evenly spaced equal-speed waves classify co-rotating at 0.9 stability
	{
		sys := ext.AnalyzeMultiWaveSystem(g, &c, evenWaves(3, 1970))
		assert.Equal(t, PatternCoRotating, sys.Pattern)
		assert.True(t, near2d(sys.StabilityIndex, 0.9))
		assert.Equal(t, 3, len(sys.Spacings))
		// Equal speeds within the collision threshold pair up
		assert.True(t, len(sys.CollisionPairs) > 0)
	}
	// Badly clustered waves classify counter-rotating
	{
		waves := evenWaves(3, 1970)
		waves[1].Trajectory[0].Theta = 0.1
		waves[2].Trajectory[0].Theta = 0.2
		sys := ext.AnalyzeMultiWaveSystem(g, &c, waves)
		assert.Equal(t, PatternCounterRotating, sys.Pattern)
		assert.True(t, near2d(sys.StabilityIndex, 0.4))
	}
}

func TestInjectionCoupling(t *testing.T) {
	var (
		ext = NewExtension2D(cellular.NewPredictor())
		g   = physics.DefaultGeometry()
		c   = annularChemistry()
	)
	wp := ext.TrackWavePropagation(g, &c, InitialFront(g, &c, 12), 0.001)

	// Default 90° injection is perpendicular, hence neutral
	interactions := ext.AnalyzeInjectionCoupling(g, &c, wp)
	assert.Equal(t, g.InjectorCount, len(interactions))
	for _, iw := range interactions {
		assert.Equal(t, InteractionNeutral, iw.Type)
		assert.True(t, near2d(iw.PressureDisturbance, 0.1*c.DetonationPressure))
		assert.True(t, iw.MomentumCoupling > 0)
	}

	g.InjectionAngle = 45.0
	interactions = ext.AnalyzeInjectionCoupling(g, &c, wp)
	assert.Equal(t, InteractionReinforcing, interactions[0].Type)

	g.InjectionAngle = 135.0
	interactions = ext.AnalyzeInjectionCoupling(g, &c, wp)
	assert.Equal(t, InteractionOpposing, interactions[0].Type)
}

func TestValidate2DConstraints(t *testing.T) {
	var (
		ext      = NewExtension2D(cellular.NewPredictor())
		g        = physics.DefaultGeometry()
		c        = annularChemistry()
		settings = physics.DefaultSettings()
	)
	report := ext.Validate2DConstraints(g, &c, settings)
	assert.Equal(t, 3, len(report.Axes))
	assert.True(t, report.RequiredMeshSize > 0)
	assert.True(t, near2d(report.EffectiveSize2D,
		report.BaseCellSize*(1.0+CurvatureCorrection(g.MidRadius(), report.BaseCellSize))))

	// A deliberately coarse mesh fails at least one axis
	settings.RadialCells = 2
	settings.CircumferentialCells = 4
	settings.AxialCells = 2
	report = ext.Validate2DConstraints(g, &c, settings)
	if !report.Satisfied {
		for _, axis := range report.Axes {
			if !axis.Satisfied {
				assert.True(t, axis.RecommendedCells > axis.Cells)
			}
		}
	}
}

func near2d(a, b float64) (l bool) {
	if math.Abs(a-b) < 1.e-08*math.Max(math.Abs(a), 1) {
		l = true
	}
	return
}
