package validation

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/rdetools/gorde/cellular"
	"github.com/rdetools/gorde/physics"
	"github.com/rdetools/gorde/rde"
)

type Mode uint8

const (
	// FAST runs only the closed-form analytical cases.
	FAST Mode = iota
	// STANDARD runs the cellular-structure predictor cases.
	STANDARD
	// COMPREHENSIVE combines analytical and cellular cases.
	COMPREHENSIVE
	// EXPERT adds the curated experimental full-RDE comparisons.
	EXPERT
)

var modeNames = map[Mode]string{
	FAST:          "Fast Analytical Validation",
	STANDARD:      "Standard Cellular Validation",
	COMPREHENSIVE: "Comprehensive Validation Suite",
	EXPERT:        "Expert-Level Validation Suite",
}

func (m Mode) String() string {
	return modeNames[m]
}

// ValidationResult scores one case: signed per-quantity relative errors in
// percent, aggregated accuracy in [0,1], and a pass flag.
type ValidationResult struct {
	CaseName string

	PredictedCJVelocity    float64
	PredictedCellSize      float64
	PredictedPressureRatio float64
	PredictedFrequency     float64

	VelocityError  float64 // [%]
	CellSizeError  float64 // [%]
	PressureError  float64 // [%]
	FrequencyError float64 // [%]

	Accuracy float64 // [0,1]
	Passed   bool
	Warnings []string

	Metrics map[string]float64
}

// ValidationSuiteResult aggregates a suite run.
type ValidationSuiteResult struct {
	SuiteName   string
	TotalCases  int
	PassedCases int
	FailedCases int

	OverallAccuracy    float64
	MeanVelocityError  float64
	MeanCellSizeError  float64
	MeanPressureError  float64
	MeanFrequencyError float64

	Results []ValidationResult
	Summary string
}

// Engine runs validation cases against the prediction components.
type Engine struct {
	Predictor *cellular.Predictor
	RDE       *rde.Engine
	Verbose   bool
}

func NewEngine() *Engine {
	e := &Engine{
		Predictor: cellular.NewPredictor(),
	}
	e.RDE = &rde.Engine{Predictor: e.Predictor, Backend: rde.MeshSizingBackend{}}
	return e
}

// RelativeError is the signed error in percent; zero when no expectation is
// set, so unset quantities never penalize a case.
func RelativeError(predicted, expected float64) float64 {
	if expected == 0 {
		return 0
	}
	return (predicted - expected) / expected * 100.0
}

// OverallAccuracy maps the mean absolute percent error onto [0,1].
func OverallAccuracy(errors []float64) float64 {
	if len(errors) == 0 {
		return 0
	}
	abs := make([]float64, len(errors))
	for i, e := range errors {
		abs[i] = math.Abs(e)
	}
	meanAbs := floats.Sum(abs) / float64(len(abs))
	return math.Max(0, 1.0-meanAbs/100.0)
}

// ValidateCase dispatches on the case type, scores the prediction and marks
// pass/fail. A panic during evaluation scores the case at accuracy 0 with a
// diagnostic warning instead of aborting the suite.
func (e *Engine) ValidateCase(tc ValidationCase) (result ValidationResult) {
	result.CaseName = tc.Name

	defer func() {
		if r := recover(); r != nil {
			result.Accuracy = 0
			result.Passed = false
			result.Warnings = append(result.Warnings, fmt.Sprintf("validation failed: %v", r))
		}
	}()

	if e.Verbose {
		fmt.Printf("Validating case: %s\n", tc.Name)
	}

	switch tc.Type {
	case Analytical1D, WedgeGeometry:
		e.evaluateAnalytical(tc, &result)
	case CellularStructure, DetonationTube:
		e.evaluateCellular(tc, &result)
	case SimplifiedRDE, FullRDE:
		e.evaluateRDE(tc, &result)
	default:
		result.Warnings = append(result.Warnings, "unknown validation case type")
		return
	}

	result.VelocityError = RelativeError(result.PredictedCJVelocity, tc.ExpectedCJVelocity)
	result.CellSizeError = RelativeError(result.PredictedCellSize, tc.ExpectedCellSize)
	result.PressureError = RelativeError(result.PredictedPressureRatio, tc.ExpectedPressureRatio)
	result.FrequencyError = RelativeError(result.PredictedFrequency, tc.ExpectedFrequency)

	result.Accuracy = OverallAccuracy([]float64{
		result.VelocityError, result.CellSizeError,
		result.PressureError, result.FrequencyError,
	})
	result.Passed = result.Accuracy >= 1.0-tc.VelocityTolerance/100.0

	if e.Verbose {
		fmt.Printf("  Overall accuracy: %.1f%%\n", result.Accuracy*100)
		fmt.Printf("  Status: %s\n", passLabel(result.Passed))
	}
	return
}

// Analytical closed-form relations, weak power laws in pressure and
// temperature around the tabulated stoichiometric values.
func analyticCJVelocity(fuel physics.Fuel, pressure, temperature float64) float64 {
	props := fuel.Properties()
	return props.CJVelocityBase *
		math.Pow(pressure/physics.ReferencePressure, 0.05) *
		math.Pow(temperature/physics.ReferenceTemperature, -0.1)
}

func analyticCellSize(fuel physics.Fuel, pressure float64) float64 {
	base := map[physics.Fuel]float64{
		physics.Hydrogen: 0.001,
		physics.Methane:  0.01,
		physics.Propane:  0.02,
	}
	lambda, ok := base[fuel]
	if !ok {
		lambda = 0.01
	}
	return lambda * math.Pow(pressure/physics.ReferencePressure, -0.5)
}

func analyticPressureRatio(fuel physics.Fuel) float64 {
	switch fuel {
	case physics.Hydrogen:
		return 18.0
	case physics.Methane:
		return 25.0
	case physics.Propane:
		return 28.0
	}
	return 20.0
}

func (e *Engine) evaluateAnalytical(tc ValidationCase, result *ValidationResult) {
	result.PredictedCJVelocity = analyticCJVelocity(tc.Fuel, tc.Pressure, tc.Temperature)
	result.PredictedCellSize = analyticCellSize(tc.Fuel, tc.Pressure)
	result.PredictedPressureRatio = analyticPressureRatio(tc.Fuel)
	result.PredictedFrequency = result.PredictedCJVelocity / result.PredictedCellSize

	result.Metrics = map[string]float64{
		"mach_number": result.PredictedCJVelocity / physics.UnburnedSoundSpeed(tc.Temperature),
	}
}

func (e *Engine) evaluateCellular(tc ValidationCase, result *ValidationResult) {
	chemistry := chemistryFor(tc)
	rde.DetonationProperties(&chemistry)

	result.PredictedCellSize = e.Predictor.PredictCellSize(&chemistry)
	result.PredictedCJVelocity = analyticCJVelocity(tc.Fuel, tc.Pressure, tc.Temperature)
	result.PredictedPressureRatio = analyticPressureRatio(tc.Fuel)
	result.PredictedFrequency = result.PredictedCJVelocity / result.PredictedCellSize

	result.Metrics = map[string]float64{
		"induction_length": e.Predictor.InductionLength(&chemistry),
		"cj_mach_number":   e.Predictor.CJMachNumber(&chemistry),
		"max_thermicity":   e.Predictor.MaxThermicity(&chemistry),
	}
	for _, w := range e.Predictor.ValidateInputs(&chemistry) {
		result.Warnings = append(result.Warnings, w.String())
	}
}

func (e *Engine) evaluateRDE(tc ValidationCase, result *ValidationResult) {
	req := rde.AnalysisRequest{
		AnalysisType: "performance",
		Chemistry:    chemistryFor(tc),
		WaveCount:    1,
	}
	if tc.Geometry != nil {
		req.Geometry = *tc.Geometry
	} else {
		req.Geometry = physics.DefaultGeometry()
	}
	if tc.Settings != nil {
		req.Settings = *tc.Settings
	} else {
		req.Settings = physics.DefaultSettings()
	}
	if tc.Type == SimplifiedRDE {
		// Simplified cases skip the solver backend entirely
		req.Settings.AutoMeshSizing = false
	}

	analysis := e.RDE.AnalyzeRDE(req)
	result.Warnings = append(result.Warnings, analysis.Warnings...)
	if !analysis.Success {
		result.Warnings = append(result.Warnings, "RDE analysis failed")
		return
	}

	op := analysis.OperatingPoint
	result.PredictedCJVelocity = op.WaveSpeed
	result.PredictedCellSize = analysis.Chemistry.CellSize
	result.PredictedPressureRatio = op.PressureGain
	result.PredictedFrequency = op.WaveFrequency
	result.Metrics = map[string]float64{
		"thrust":                op.Thrust,
		"specific_impulse":      op.SpecificImpulse,
		"combustion_efficiency": op.CombustionEfficiency,
	}
}

func chemistryFor(tc ValidationCase) physics.ChemistryState {
	c := physics.DefaultChemistry()
	c.Fuel = tc.Fuel
	c.Oxidizer = physics.Air
	c.EquivalenceRatio = tc.EquivalenceRatio
	c.ChamberPressure = tc.Pressure
	c.InjectionTemperature = tc.Temperature
	c.UseRegressionModel = true
	return c
}

// ValidateSuite runs every case, accumulating pass/fail counts and mean
// per-quantity errors. Individual case failures never stop the suite.
func (e *Engine) ValidateSuite(name string, cases []ValidationCase) ValidationSuiteResult {
	suite := ValidationSuiteResult{
		SuiteName:  name,
		TotalCases: len(cases),
	}

	fmt.Printf("Running validation suite with %d cases...\n", len(cases))

	var (
		accuracies      []float64
		velocityErrors  []float64
		cellSizeErrors  []float64
		pressureErrors  []float64
		frequencyErrors []float64
	)
	for _, tc := range cases {
		result := e.ValidateCase(tc)
		suite.Results = append(suite.Results, result)
		if result.Passed {
			suite.PassedCases++
		} else {
			suite.FailedCases++
		}
		accuracies = append(accuracies, result.Accuracy)
		velocityErrors = append(velocityErrors, math.Abs(result.VelocityError))
		cellSizeErrors = append(cellSizeErrors, math.Abs(result.CellSizeError))
		pressureErrors = append(pressureErrors, math.Abs(result.PressureError))
		frequencyErrors = append(frequencyErrors, math.Abs(result.FrequencyError))
	}

	if len(cases) > 0 {
		suite.OverallAccuracy = stat.Mean(accuracies, nil)
		suite.MeanVelocityError = stat.Mean(velocityErrors, nil)
		suite.MeanCellSizeError = stat.Mean(cellSizeErrors, nil)
		suite.MeanPressureError = stat.Mean(pressureErrors, nil)
		suite.MeanFrequencyError = stat.Mean(frequencyErrors, nil)
	}
	suite.Summary = suite.Report()

	fmt.Printf("Validation suite completed: %d total, %d passed, %d failed, accuracy %.1f%%\n",
		suite.TotalCases, suite.PassedCases, suite.FailedCases, suite.OverallAccuracy*100)
	return suite
}

// RunSuite combines the built-in case factories for the mode and runs them.
func (e *Engine) RunSuite(mode Mode) ValidationSuiteResult {
	var cases []ValidationCase
	switch mode {
	case FAST:
		cases = AnalyticalSuite()
	case STANDARD:
		cases = CellularSuite()
	case COMPREHENSIVE:
		cases = append(AnalyticalSuite(), CellularSuite()...)
	case EXPERT:
		cases = append(AnalyticalSuite(), CellularSuite()...)
		cases = append(cases, ExperimentalSuite()...)
	}
	return e.ValidateSuite(mode.String(), cases)
}
