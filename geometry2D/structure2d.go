package geometry2D

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/rdetools/gorde/cellular"
	"github.com/rdetools/gorde/physics"
)

// Field resolution defaults
const (
	DefaultRadialSamples  = 20
	DefaultAngularSamples = 40
)

// Empirical placeholders, kept as named fields so a calibration pass can
// replace them without touching algorithm logic.
const (
	DefaultSpeedVariationFraction  = 0.10 // Fraction of nominal wave speed
	DefaultEnergyDissipationPerRev = 0.05 // Fraction of wave energy per revolution
)

// Wave2DPoint is one sample on a wave front in cylindrical coordinates.
type Wave2DPoint struct {
	R           float64 // [m]
	Theta       float64 // [rad]
	Time        float64 // [s]
	Temperature float64 // [K]
	Pressure    float64 // [Pa]
	VelocityR   float64 // [m/s]
	VelocityT   float64 // [m/s]
	WaveSpeed   float64 // [m/s]
	CellSize    float64 // [m]
	IsWaveFront bool
}

// CellularStructure2D extends the 1D cell prediction onto the annulus.
type CellularStructure2D struct {
	MeanCellSize             float64       // Curvature-corrected λ [m]
	CurvatureCorrection      float64       // Fractional increase from annular curvature
	RadialVariation          float64       // Fractional variation across the gap
	CircumferentialVariation float64       // Fractional variation around the annulus
	Field                    *mat.Dense    // Local cell size, radial × angular
	Regularity               float64       // [0,1]
	WaveAngle                float64       // Mean front angle from radial [rad]
	TriplePoints             []Wave2DPoint
}

// Extension2D projects the 1D predictor onto an annular cylindrical domain.
// Query methods are pure; one instance may serve concurrent readers.
type Extension2D struct {
	Predictor *cellular.Predictor

	RadialSamples           int
	AngularSamples          int
	SpeedVariationFraction  float64
	EnergyDissipationPerRev float64
}

func NewExtension2D(p *cellular.Predictor) *Extension2D {
	return &Extension2D{
		Predictor:               p,
		RadialSamples:           DefaultRadialSamples,
		AngularSamples:          DefaultAngularSamples,
		SpeedVariationFraction:  DefaultSpeedVariationFraction,
		EnergyDissipationPerRev: DefaultEnergyDissipationPerRev,
	}
}

// CurvatureCorrection grows as the mid-annulus radius approaches the cell
// size: 0.5·exp(−(r/λ)/10), capped at 0.3 and negligible for r/λ > 100.
func CurvatureCorrection(radius, cellSize float64) float64 {
	if cellSize <= 0 {
		return 0
	}
	ratio := radius / cellSize
	if ratio > 100 {
		return 0
	}
	return math.Min(0.5*math.Exp(-ratio/10.0), 0.3)
}

// Analyze2DStructure computes the curvature-corrected mean cell size and
// fills the 2D field with wall thinning and injector-proximity perturbations.
func (e *Extension2D) Analyze2DStructure(g physics.Geometry, c *physics.ChemistryState) CellularStructure2D {
	var (
		baseCellSize = e.Predictor.PredictCellSize(c)
		correction   = CurvatureCorrection(g.MidRadius(), baseCellSize)
	)
	s := CellularStructure2D{
		CurvatureCorrection:      correction,
		MeanCellSize:             baseCellSize * (1.0 + correction),
		RadialVariation:          0.15,
		CircumferentialVariation: 0.10,
		Regularity:               0.75,
		WaveAngle:                0.35, // ~20° from radial, typical RDE fronts
	}
	e.fillField(&s, g)
	e.placeTriplePoints(&s, g, c)
	return s
}

func (e *Extension2D) fillField(s *CellularStructure2D, g physics.Geometry) {
	var (
		nR     = e.RadialSamples
		nTheta = e.AngularSamples
		gap    = g.AnnularGap()
	)
	s.Field = mat.NewDense(nR, nTheta, nil)
	for i := 0; i < nR; i++ {
		r := g.InnerRadius + float64(i)*gap/float64(nR-1)
		for j := 0; j < nTheta; j++ {
			theta := float64(j) * g.DomainAngle / float64(nTheta-1)
			cellSize := s.MeanCellSize

			// Boundary-layer thinning near both walls
			switch {
			case r < g.InnerRadius+0.1*gap:
				cellSize *= 0.9
			case r > g.OuterRadius-0.1*gap:
				cellSize *= 0.95
			}

			// Injector-proximity perturbation, decaying with angular distance
			for _, injTheta := range g.InjectorAngles {
				d := angularDistance(theta, injTheta, g.DomainAngle)
				if d < 0.2 {
					cellSize *= 1.0 + 0.2*math.Exp(-d/0.1)
				}
			}

			s.Field.Set(i, j, cellSize)
		}
	}
}

// placeTriplePoints seeds one synthetic triple-point marker per injector at
// mid-annulus, offset downstream of the injector.
func (e *Extension2D) placeTriplePoints(s *CellularStructure2D, g physics.Geometry, c *physics.ChemistryState) {
	s.TriplePoints = make([]Wave2DPoint, 0, len(g.InjectorAngles))
	for _, injTheta := range g.InjectorAngles {
		s.TriplePoints = append(s.TriplePoints, Wave2DPoint{
			R:           g.MidRadius(),
			Theta:       wrapAngle(injTheta+0.1, g.DomainAngle),
			Temperature: 3500.0,
			Pressure:    3.0 * c.DetonationPressure,
			CellSize:    s.MeanCellSize,
			IsWaveFront: true,
		})
	}
}
