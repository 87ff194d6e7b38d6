package geometry2D

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/rdetools/gorde/physics"
)

type WavePattern uint8

const (
	PatternSingle WavePattern = iota
	PatternCoRotating
	PatternMixed
	PatternCounterRotating
)

var patternNames = map[WavePattern]string{
	PatternSingle:          "single_wave",
	PatternCoRotating:      "co_rotating",
	PatternMixed:           "mixed",
	PatternCounterRotating: "counter_rotating",
}

func (p WavePattern) String() string {
	return patternNames[p]
}

// WaveSpacing is the wrapped angular gap ahead of the wave located at Theta.
type WaveSpacing struct {
	Theta   float64 // Leading wave position [rad]
	Spacing float64 // Gap to the next wave [rad]
}

// MultiWaveSystem classifies a set of co-existing detonation waves.
type MultiWaveSystem struct {
	WaveCount       int
	Waves           []WavePropagation2D
	Spacings        []WaveSpacing
	Pattern         WavePattern
	StabilityIndex  float64 // [0,1]
	SystemFrequency float64 // [Hz]
	CollisionPairs  [][2]int
}

// Waves whose speeds differ by less than this are flagged as a predicted
// collision pair.
const collisionSpeedThreshold = 50.0 // [m/s]

// AnalyzeMultiWaveSystem computes wrapped spacings between consecutive waves
// and classifies the pattern by spacing variation relative to the uniform
// mean: <10% co-rotating (stability 0.9), <30% mixed (0.6), else
// counter-rotating (0.4). A single wave classifies as single (0.8).
func (e *Extension2D) AnalyzeMultiWaveSystem(g physics.Geometry, c *physics.ChemistryState,
	waves []WavePropagation2D) MultiWaveSystem {
	var (
		sys = MultiWaveSystem{
			WaveCount: len(waves),
			Waves:     waves,
		}
		circumference = g.OuterRadius * g.DomainAngle
	)

	if sys.WaveCount <= 1 {
		sys.Pattern = PatternSingle
		sys.StabilityIndex = 0.8
		if sys.WaveCount == 1 {
			sys.SystemFrequency = waves[0].MeanSpeed / circumference
		}
		return sys
	}

	for i, wave := range waves {
		if len(wave.Trajectory) == 0 {
			continue
		}
		current := wave.Trajectory[0].Theta
		next := waves[(i+1)%len(waves)].Trajectory[0].Theta
		if i+1 == len(waves) {
			next += g.DomainAngle
		}
		spacing := next - current
		if spacing < 0 {
			spacing += g.DomainAngle
		}
		sys.Spacings = append(sys.Spacings, WaveSpacing{Theta: current, Spacing: spacing})
	}

	var (
		uniformSpacing   = g.DomainAngle / float64(sys.WaveCount)
		spacingVariation float64
	)
	for _, s := range sys.Spacings {
		spacingVariation += math.Abs(s.Spacing - uniformSpacing)
	}
	spacingVariation /= float64(len(sys.Spacings))

	switch {
	case spacingVariation < 0.1*uniformSpacing:
		sys.Pattern = PatternCoRotating
		sys.StabilityIndex = 0.9
	case spacingVariation < 0.3*uniformSpacing:
		sys.Pattern = PatternMixed
		sys.StabilityIndex = 0.6
	default:
		sys.Pattern = PatternCounterRotating
		sys.StabilityIndex = 0.4
	}

	speeds := make([]float64, len(waves))
	for i, wave := range waves {
		speeds[i] = wave.MeanSpeed
	}
	sys.SystemFrequency = stat.Mean(speeds, nil) * float64(sys.WaveCount) / circumference

	for i := 0; i < sys.WaveCount; i++ {
		for j := i + 1; j < sys.WaveCount; j++ {
			if math.Abs(waves[i].MeanSpeed-waves[j].MeanSpeed) < collisionSpeedThreshold {
				sys.CollisionPairs = append(sys.CollisionPairs, [2]int{i, j})
			}
		}
	}
	return sys
}
