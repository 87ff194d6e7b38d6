package geometry2D

import (
	"math"

	"github.com/rdetools/gorde/physics"
)

// CylPoint is an (r, θ) location in the annulus.
type CylPoint struct {
	R     float64 // [m]
	Theta float64 // [rad]
}

// WavePropagation2D is the tracked state of one detonation wave.
type WavePropagation2D struct {
	Trajectory        []Wave2DPoint
	MeanSpeed         float64    // [m/s]
	SpeedVariation    float64    // [m/s]
	LocalSpeeds       []float64  // Sampled around the circumference
	CollisionPoints   []CylPoint // Predicted collision locations
	Thickness         float64    // Front thickness [m]
	EnergyDissipation float64    // Fraction dissipated per revolution
}

// Angular step for local speed sampling, ~6°.
const localSpeedStep = 0.1

// TrackWavePropagation propagates the initial front at the detonation
// velocity, samples local speeds with a 4-lobe sinusoidal perturbation, and
// predicts collisions diametrically opposite each front point. The fixed 10%
// speed variation and 5%-per-revolution dissipation are empirical
// placeholders, not derived quantities.
func (e *Extension2D) TrackWavePropagation(g physics.Geometry, c *physics.ChemistryState,
	initialFront []Wave2DPoint, simTime float64) WavePropagation2D {
	var (
		nominal = c.DetonationVelocity
		wp      = WavePropagation2D{
			Trajectory:        initialFront,
			MeanSpeed:         nominal,
			SpeedVariation:    e.SpeedVariationFraction * nominal,
			Thickness:         3.0 * e.Predictor.PredictCellSize(c),
			EnergyDissipation: e.EnergyDissipationPerRev,
		}
	)

	numSamples := int(g.DomainAngle / localSpeedStep)
	wp.LocalSpeeds = make([]float64, numSamples)
	for i := range wp.LocalSpeeds {
		theta := float64(i) * localSpeedStep
		wp.LocalSpeeds[i] = nominal * (1.0 + 0.1*math.Sin(4.0*theta))
	}

	for _, pt := range initialFront {
		wp.CollisionPoints = append(wp.CollisionPoints, CylPoint{
			R:     g.MidRadius(),
			Theta: wrapAngle(pt.Theta+math.Pi, g.DomainAngle),
		})
	}
	return wp
}

// InitialFront seeds n evenly spaced wave-front points at mid-annulus.
func InitialFront(g physics.Geometry, c *physics.ChemistryState, n int) []Wave2DPoint {
	if n < 1 {
		n = 1
	}
	front := make([]Wave2DPoint, n)
	for i := range front {
		front[i] = Wave2DPoint{
			R:           g.MidRadius(),
			Theta:       float64(i) * g.DomainAngle / float64(n),
			Temperature: c.DetonationTemperature,
			Pressure:    c.DetonationPressure,
			WaveSpeed:   c.DetonationVelocity,
			CellSize:    c.CellSize,
			IsWaveFront: true,
		}
	}
	return front
}
