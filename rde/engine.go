package rde

import (
	"fmt"

	"github.com/rdetools/gorde/cellular"
	"github.com/rdetools/gorde/physics"
)

// AnalysisRequest mirrors the remote-protocol payload for a full RDE
// analysis. Field names are wire-stable.
type AnalysisRequest struct {
	AnalysisType string                     `json:"analysisType"`
	Geometry     physics.Geometry           `json:"geometry"`
	Chemistry    physics.ChemistryState     `json:"chemistry"`
	Settings     physics.SimulationSettings `json:"settings"`
	WaveCount    int                        `json:"waveCount"`
}

// AnalysisResult is the structured outcome of AnalyzeRDE. Success=false
// carries the diagnostic in Warnings; no partial metrics are populated for
// structurally invalid input.
type AnalysisResult struct {
	AnalysisType       string                 `json:"analysisType"`
	Success            bool                   `json:"success"`
	Warnings           []string               `json:"warnings"`
	Chemistry          physics.ChemistryState `json:"chemistry"`
	OperatingPoint     OperatingPoint         `json:"operatingPoint"`
	PerformanceMetrics map[string]float64     `json:"performanceMetrics"`
	Recommendations    []string               `json:"recommendations"`
	BackendLog         string                 `json:"backendLog"`
}

// Engine orchestrates a full RDE analysis over the predictor and the solver
// backend. Engine itself is stateless across calls; the predictor's
// diagnostic history is the only mutation.
type Engine struct {
	Predictor *cellular.Predictor
	Backend   SolverBackend
}

func NewEngine() *Engine {
	return &Engine{
		Predictor: cellular.NewPredictor(),
		Backend:   MeshSizingBackend{},
	}
}

// Operating envelope soft bounds; violations warn but do not abort.
const (
	phiEnvelopeMin = 0.1
	phiEnvelopeMax = 2.0
)

// AnalyzeRDE runs the complete pipeline: input validation, detonation and
// cellular properties, operating point, backend mesh sizing and risk
// flagging. Structural input errors fail fast with no side effects; any
// unexpected panic downstream is converted into Success=false with a
// diagnostic warning.
func (e *Engine) AnalyzeRDE(req AnalysisRequest) (result AnalysisResult) {
	result.AnalysisType = req.AnalysisType

	defer func() {
		if r := recover(); r != nil {
			result.Success = false
			result.Warnings = append(result.Warnings, fmt.Sprintf("analysis failed: %v", r))
		}
	}()

	if err := req.Geometry.Validate(); err != nil {
		result.Warnings = append(result.Warnings, err.Error())
		return
	}
	if err := req.Chemistry.Validate(); err != nil {
		result.Warnings = append(result.Warnings, err.Error())
		return
	}

	chemistry := req.Chemistry
	if phi := chemistry.EquivalenceRatio; phi < phiEnvelopeMin || phi > phiEnvelopeMax {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("equivalence ratio %.2f outside typical RDE operating range (%.1f-%.1f)",
				phi, phiEnvelopeMin, phiEnvelopeMax))
	}

	DetonationProperties(&chemistry)

	ratio := req.Settings.CellularConstraintRatio
	if ratio <= 0 {
		ratio = cellular.CellularConstraintRatio
	}
	if req.Settings.EnableCellularTracking {
		// Validate before λ overwrites CellSize; the incoming value, if any,
		// is the user's candidate mesh spacing.
		for _, w := range e.Predictor.ValidateInputs(&chemistry) {
			result.Warnings = append(result.Warnings, w.String())
		}
		chemistry.CellSize = e.Predictor.PredictCellSize(&chemistry)
		chemistry.InductionLength = e.Predictor.InductionLength(&chemistry)
		chemistry.CJMachNumber = e.Predictor.CJMachNumber(&chemistry)
		chemistry.MaxThermicity = e.Predictor.MaxThermicity(&chemistry)
	} else {
		chemistry.CellSize = cellular.CorrelationCellSize(&chemistry)
	}
	result.Chemistry = chemistry

	result.OperatingPoint = OperatingPointFor(req.Geometry, &chemistry, req.WaveCount)

	backendResult := e.Backend.Run(req.Geometry, req.Settings, &chemistry,
		cellular.RequiredMeshSize(chemistry.CellSize, ratio))
	result.Warnings = append(result.Warnings, backendResult.Warnings...)
	result.BackendLog = backendResult.Log
	if !backendResult.Success {
		result.Warnings = append(result.Warnings,
			"mesh generation failed - using simplified analytical approach")
	}

	op := result.OperatingPoint
	result.PerformanceMetrics = map[string]float64{
		"thrust":                op.Thrust,
		"specific_impulse":      op.SpecificImpulse,
		"combustion_efficiency": op.CombustionEfficiency,
		"pressure_gain":         op.PressureGain,
		"wave_frequency":        op.WaveFrequency,
	}

	if op.CombustionEfficiency < 0.8 {
		result.Recommendations = append(result.Recommendations,
			"Low combustion efficiency detected. Consider adjusting equivalence ratio or injection velocity.")
	}
	if op.PressureOscillations > 0.2 {
		result.Recommendations = append(result.Recommendations,
			"High pressure oscillations detected. Review injection timing and chamber geometry.")
	}
	if op.WaveCount > 1 {
		result.Recommendations = append(result.Recommendations,
			"Multiple wave modes detected. This may indicate beneficial pressure gain or potential instability.")
	}

	if req.Settings.EnableCellularTracking {
		e.Predictor.RecordTracking(cellular.TrackingSample{
			CellSize:  chemistry.CellSize,
			WaveSpeed: op.WaveSpeed,
			Pressure:  chemistry.DetonationPressure,
		})
	}

	result.Success = true
	return
}
