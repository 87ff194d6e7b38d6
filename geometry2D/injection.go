package geometry2D

import (
	"math"

	"github.com/rdetools/gorde/physics"
)

type InteractionType uint8

const (
	InteractionNeutral InteractionType = iota
	InteractionReinforcing
	InteractionOpposing
)

var interactionNames = map[InteractionType]string{
	InteractionNeutral:     "neutral",
	InteractionReinforcing: "reinforcing",
	InteractionOpposing:    "opposing",
}

func (t InteractionType) String() string {
	return interactionNames[t]
}

// InjectionWaveInteraction characterizes the coupling between one injector
// and the passing detonation wave.
type InjectionWaveInteraction struct {
	InjectorIndex       int
	InjectorTheta       float64 // [rad]
	WavePhase           float64 // Wave phase at injection [rad]
	MomentumCoupling    float64 // Injection momentum / wave inertia
	PressureDisturbance float64 // [Pa]
	Type                InteractionType
	PenetrationDepth    float64 // [m]
}

// Approximate wave inertia scale, unit injection density assumed.
const waveInertiaScale = 1000.0

// AnalyzeInjectionCoupling evaluates each injector against the tracked wave.
// Interaction type follows the injection angle band: ≈90°±10° neutral
// (perpendicular), <80° reinforcing (forward), otherwise opposing.
func (e *Extension2D) AnalyzeInjectionCoupling(g physics.Geometry, c *physics.ChemistryState,
	wp WavePropagation2D) []InjectionWaveInteraction {
	interactions := make([]InjectionWaveInteraction, 0, len(g.InjectorAngles))
	for i, injTheta := range g.InjectorAngles {
		iw := InjectionWaveInteraction{
			InjectorIndex:       i,
			InjectorTheta:       injTheta,
			WavePhase:           2.0 * math.Pi * injTheta / g.DomainAngle,
			MomentumCoupling:    c.InjectionVelocity / (waveInertiaScale * c.DetonationVelocity),
			PressureDisturbance: 0.1 * c.DetonationPressure,
			PenetrationDepth:    g.InjectionPenetration,
		}
		switch {
		case g.InjectionAngle > 80.0 && g.InjectionAngle < 100.0:
			iw.Type = InteractionNeutral
		case g.InjectionAngle < 80.0:
			iw.Type = InteractionReinforcing
		default:
			iw.Type = InteractionOpposing
		}
		interactions = append(interactions, iw)
	}
	return interactions
}
