package cellular

import (
	"math"

	"github.com/rdetools/gorde/physics"
)

// CellularConstraintRatio fixes the mesh-resolution contract: the target mesh
// size is λ ÷ ratio, and a mesh resolves the cellular structure only when
// Δx/λ < 1/ratio. Every call site uses this one convention.
const CellularConstraintRatio = 10.0

// PredictionTolerance is the relative error above which a prediction is
// flagged as uncertain against the reference table.
const PredictionTolerance = 0.2

type Warning uint8

const (
	WarnMeshTooCoarse Warning = iota
	WarnOutsideValidity
	WarnNoReferenceData
	WarnHighUncertainty
)

var warningMessages = map[Warning]string{
	WarnMeshTooCoarse:   "Mesh resolution is too coarse for cellular structure (Δx > λ/10)",
	WarnOutsideValidity: "Operating conditions are outside validated range",
	WarnNoReferenceData: "No experimental validation data available for this fuel",
	WarnHighUncertainty: "Cell size prediction has high uncertainty",
}

func (w Warning) String() string {
	if msg, ok := warningMessages[w]; ok {
		return msg
	}
	return "Unknown warning"
}

// CellularStructure is the derived 1D cell geometry for one chemistry state.
type CellularStructure struct {
	CellSize     float64   // λ [m]
	CellWidth    float64   // Transverse dimension [m]
	CellHeight   float64   // Longitudinal dimension [m]
	Irregularity float64   // ≥1, grows off stoichiometric
	Frequency    float64   // Cell passage frequency [Hz]
	Distribution []float64 // Synthetic size sample, diagnostics only
}

// Predictor predicts detonation cell size and derived CJ quantities. All
// query methods are pure and safe for concurrent use; only RecordTracking
// mutates state and needs external serialization when an instance is shared.
type Predictor struct {
	model   regressionModel
	refData []ReferenceRecord
	history trackingHistory
}

func NewPredictor() *Predictor {
	return &Predictor{
		model:   newRegressionModel(),
		refData: defaultReferenceData,
	}
}

// NewPredictorWithReference builds a predictor over an external measurement
// table instead of the built-in one.
func NewPredictorWithReference(records []ReferenceRecord) *Predictor {
	p := NewPredictor()
	p.refData = records
	return p
}

// PredictCellSize returns λ for the given chemistry. With the regression flag
// off the stored value passes through unchanged. The regression path falls
// back to the per-fuel correlation on any failure; the fallback itself cannot
// fail.
func (p *Predictor) PredictCellSize(c *physics.ChemistryState) float64 {
	if !c.UseRegressionModel {
		return c.CellSize
	}
	if err := c.Validate(); err != nil {
		return CorrelationCellSize(c)
	}
	var (
		inductionLength = p.InductionLength(c)
		cjMach          = p.CJMachNumber(c)
		thermicity      = p.MaxThermicity(c)
	)
	lambda, err := p.model.Predict(inductionLength, cjMach, thermicity)
	if err != nil {
		return CorrelationCellSize(c)
	}
	return lambda
}

// InductionLength scales the per-fuel base ΔI with pressure and temperature:
// ΔI shrinks with pressure and grows weakly with temperature.
func (p *Predictor) InductionLength(c *physics.ChemistryState) float64 {
	var (
		props  = c.Fuel.Properties()
		pRatio = c.ChamberPressure / physics.ReferencePressure
		tRatio = c.InjectionTemperature / physics.ReferenceTemperature
	)
	return props.BaseInductionLength * math.Pow(pRatio, -0.5) * math.Pow(tRatio, 0.3)
}

// CJMachNumber is detonation velocity over the unburned sound speed.
func (p *Predictor) CJMachNumber(c *physics.ChemistryState) float64 {
	return c.DetonationVelocity / physics.UnburnedSoundSpeed(c.InjectionTemperature)
}

// MaxThermicity peaks at stoichiometric and floors at 10% of the per-fuel
// base rate, with a weak pressure boost.
func (p *Predictor) MaxThermicity(c *physics.ChemistryState) float64 {
	var (
		props  = c.Fuel.Properties()
		phiDev = c.EquivalenceRatio - 1.0
	)
	phiFactor := math.Max(1.0-phiDev*phiDev, 0.1)
	pressureFactor := math.Pow(c.ChamberPressure/physics.ReferencePressure, 0.3)
	return props.BaseThermicity * phiFactor * pressureFactor
}

// MeshResolutionSatisfied reports whether a mesh spacing dx resolves cells of
// size lambda: Δx/λ strictly below 1/CellularConstraintRatio.
func MeshResolutionSatisfied(dx, lambda float64) bool {
	return dx/lambda < 1.0/CellularConstraintRatio
}

// RequiredMeshSize is the largest admissible mesh spacing, λ ÷ ratio.
func RequiredMeshSize(lambda, ratio float64) float64 {
	return lambda / ratio
}

// AnalyzeCellularStructure derives the cell geometry and a synthetic size
// distribution for reporting.
func (p *Predictor) AnalyzeCellularStructure(c *physics.ChemistryState, g physics.Geometry) CellularStructure {
	var (
		lambda = p.PredictCellSize(c)
		phiDev = math.Abs(c.EquivalenceRatio - 1.0)
	)
	s := CellularStructure{
		CellSize:     lambda,
		CellWidth:    lambda,
		CellHeight:   0.5 * lambda,
		Irregularity: 1.0 + 0.3*phiDev,
	}
	s.Frequency = c.DetonationVelocity / lambda

	s.Distribution = make([]float64, 100)
	for i := range s.Distribution {
		factor := 1.0 + float64(i-50)/50.0*0.3*s.Irregularity
		s.Distribution[i] = lambda * factor
	}
	return s
}

// ValidatePrediction returns the relative error of the correlation prediction
// against the nearest reference measurement for the fuel. Distance is the
// unweighted sum of relative differences in pressure, φ and temperature.
// Returns 1.0 (maximal uncertainty) when the fuel has no reference data.
//
// NOTE: the unweighted distance metric is inherited from the calibration
// study; it is adequate at the current table size but has not been confirmed
// as intentional weighting.
func (p *Predictor) ValidatePrediction(c *physics.ChemistryState) float64 {
	records := filterByFuel(p.refData, c.Fuel)
	if len(records) == 0 {
		return 1.0
	}

	minDistance := math.MaxFloat64
	var closest ReferenceRecord
	for _, rec := range records {
		distance := math.Abs(rec.Pressure-c.ChamberPressure)/c.ChamberPressure +
			math.Abs(rec.EquivalenceRatio-c.EquivalenceRatio)/c.EquivalenceRatio +
			math.Abs(rec.Temperature-c.InjectionTemperature)/c.InjectionTemperature
		if distance < minDistance {
			minDistance = distance
			closest = rec
		}
	}

	predicted := CorrelationCellSize(c)
	return math.Abs(predicted-closest.MeasuredCellSize) / closest.MeasuredCellSize
}

// ValidateInputs returns non-fatal warning codes for the chemistry; it never
// fails and attaches nothing when the state is fully inside the envelope.
// A stored positive CellSize is treated as the candidate mesh spacing.
func (p *Predictor) ValidateInputs(c *physics.ChemistryState) (warnings []Warning) {
	if c.CellSize > 0 && !MeshResolutionSatisfied(c.CellSize, p.PredictCellSize(c)) {
		warnings = append(warnings, WarnMeshTooCoarse)
	}
	props := c.Fuel.Properties()
	if !props.Validity.Contains(c.ChamberPressure, c.EquivalenceRatio, c.InjectionTemperature) {
		warnings = append(warnings, WarnOutsideValidity)
	}
	if len(filterByFuel(p.refData, c.Fuel)) == 0 {
		warnings = append(warnings, WarnNoReferenceData)
	} else if p.ValidatePrediction(c) > PredictionTolerance {
		warnings = append(warnings, WarnHighUncertainty)
	}
	return
}

// RecordTracking appends a diagnostic sample to the bounded history. Not safe
// for unserialized concurrent callers sharing one predictor.
func (p *Predictor) RecordTracking(s TrackingSample) {
	p.history.Push(s)
}

// TrackingHistory returns the retained diagnostic samples, oldest first.
func (p *Predictor) TrackingHistory() []TrackingSample {
	return p.history.Samples()
}
