package validation

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rdetools/gorde/physics"
	"github.com/rdetools/gorde/rde"
)

func TestRelativeError(t *testing.T) {
	assert.True(t, nearV(RelativeError(110, 100), 10))
	assert.True(t, nearV(RelativeError(90, 100), -10))
	// Unset expectations never penalize
	assert.True(t, nearV(RelativeError(1234, 0), 0))
}

func TestOverallAccuracy(t *testing.T) {
	assert.True(t, nearV(OverallAccuracy([]float64{0, 0, 0, 0}), 1.0))
	assert.True(t, nearV(OverallAccuracy([]float64{10, -10}), 0.9))
	// Clamped at zero for wildly wrong predictions
	assert.True(t, nearV(OverallAccuracy([]float64{500}), 0))
	assert.True(t, nearV(OverallAccuracy(nil), 0))
}

func TestValidateCaseExactMatch(t *testing.T) {
	e := NewEngine()
	// Expected values taken from the closed-form relations themselves, so
	// every error term vanishes and the case scores a perfect accuracy.
	tc := withDefaultTolerances(ValidationCase{
		Name:             "exact_match",
		Type:             Analytical1D,
		Fuel:             physics.Hydrogen,
		Pressure:         101325.0,
		Temperature:      298.15,
		EquivalenceRatio: 1.0,
	})
	tc.ExpectedCJVelocity = analyticCJVelocity(tc.Fuel, tc.Pressure, tc.Temperature)
	tc.ExpectedCellSize = analyticCellSize(tc.Fuel, tc.Pressure)
	tc.ExpectedPressureRatio = analyticPressureRatio(tc.Fuel)
	tc.ExpectedFrequency = tc.ExpectedCJVelocity / tc.ExpectedCellSize

	result := e.ValidateCase(tc)
	assert.True(t, nearV(result.Accuracy, 1.0))
	assert.True(t, result.Passed)
	assert.True(t, nearV(result.VelocityError, 0))
	assert.True(t, nearV(result.FrequencyError, 0))
}

func TestValidateCaseAnalytical(t *testing.T) {
	e := NewEngine()
	suite := AnalyticalSuite()
	for _, tc := range suite {
		result := e.ValidateCase(tc)
		assert.True(t, result.Passed, "case %s", tc.Name)
		assert.True(t, result.Accuracy > 0.9, "case %s accuracy %g", tc.Name, result.Accuracy)
	}
}

func TestValidateCasePressureScaling(t *testing.T) {
	e := NewEngine()
	// Analytical cell size halves when pressure quadruples
	tc := withDefaultTolerances(ValidationCase{
		Name:             "h2_4atm",
		Type:             Analytical1D,
		Fuel:             physics.Hydrogen,
		Pressure:         4 * 101325.0,
		Temperature:      298.15,
		EquivalenceRatio: 1.0,
		ExpectedCellSize: 0.0005,
	})
	result := e.ValidateCase(tc)
	assert.True(t, nearV(result.PredictedCellSize, 0.0005))
	assert.True(t, nearV(result.CellSizeError, 0))
}

func TestValidateCaseCellular(t *testing.T) {
	e := NewEngine()
	for _, tc := range CellularSuite() {
		result := e.ValidateCase(tc)
		assert.True(t, result.PredictedCellSize > 0, "case %s", tc.Name)
		assert.NotNil(t, result.Metrics)
		assert.True(t, result.Metrics["cj_mach_number"] > 3, "case %s", tc.Name)
	}
}

func TestValidateCaseRDEFailure(t *testing.T) {
	e := NewEngine()
	// An impossible annulus makes the RDE analysis fail; the case scores
	// zero instead of aborting the suite.
	bad := physics.DefaultGeometry()
	bad.OuterRadius, bad.InnerRadius = 0.02, 0.03
	tc := withDefaultTolerances(ValidationCase{
		Name:               "impossible_annulus",
		Type:               SimplifiedRDE,
		Fuel:               physics.Hydrogen,
		Pressure:           101325.0,
		Temperature:        300.0,
		EquivalenceRatio:   1.0,
		ExpectedCJVelocity: 1970.0,
		Geometry:           &bad,
	})
	result := e.ValidateCase(tc)
	assert.False(t, result.Passed)
	assert.Contains(t, strings.Join(result.Warnings, " "), "RDE analysis failed")
	assert.True(t, nearV(result.PredictedCJVelocity, 0))
}

type explodingBackend struct{}

func (explodingBackend) Run(physics.Geometry, physics.SimulationSettings,
	*physics.ChemistryState, float64) rde.BackendResult {
	panic("backend exploded")
}

func TestValidateCasePanicScoresZero(t *testing.T) {
	// A backend panic is absorbed by the analysis layer; the case scores
	// zero against its expectations without aborting the suite
	e := NewEngine()
	e.RDE.Backend = explodingBackend{}
	tc := withDefaultTolerances(ValidationCase{
		Name:                  "panicking_case",
		Type:                  FullRDE,
		Fuel:                  physics.Hydrogen,
		Pressure:              101325.0,
		Temperature:           300.0,
		EquivalenceRatio:      1.0,
		ExpectedCJVelocity:    1970.0,
		ExpectedCellSize:      0.001,
		ExpectedPressureRatio: 18.0,
		ExpectedFrequency:     1970000.0,
	})
	result := e.ValidateCase(tc)
	assert.True(t, nearV(result.Accuracy, 0))
	assert.False(t, result.Passed)
	assert.Contains(t, strings.Join(result.Warnings, " "), "analysis failed")
}

func TestValidateSuiteAggregation(t *testing.T) {
	e := NewEngine()
	suite := e.ValidateSuite("Aggregation Test", AnalyticalSuite())
	assert.Equal(t, len(AnalyticalSuite()), suite.TotalCases)
	assert.Equal(t, suite.TotalCases, suite.PassedCases+suite.FailedCases)
	assert.Equal(t, suite.TotalCases, len(suite.Results))
	assert.True(t, suite.OverallAccuracy > 0)
	assert.NotEmpty(t, suite.Summary)
}

func TestRunSuiteModes(t *testing.T) {
	e := NewEngine()
	{
		suite := e.RunSuite(FAST)
		assert.Equal(t, len(AnalyticalSuite()), suite.TotalCases)
	}
	{
		suite := e.RunSuite(STANDARD)
		assert.Equal(t, len(CellularSuite()), suite.TotalCases)
	}
	{
		suite := e.RunSuite(COMPREHENSIVE)
		assert.Equal(t, len(AnalyticalSuite())+len(CellularSuite()), suite.TotalCases)
	}
	{
		suite := e.RunSuite(EXPERT)
		assert.Equal(t, len(AnalyticalSuite())+len(CellularSuite())+len(ExperimentalSuite()),
			suite.TotalCases)
	}
}

func TestSuiteReport(t *testing.T) {
	e := NewEngine()
	suite := e.RunSuite(FAST)
	report := suite.Report()
	assert.Contains(t, report, suite.SuiteName)
	assert.Contains(t, report, "Success Rate")
	for _, r := range suite.Results {
		assert.Contains(t, report, r.CaseName)
	}
}

func nearV(a, b float64) (l bool) {
	if math.Abs(a-b) < 1.e-08*math.Max(math.Abs(a), 1) {
		l = true
	}
	return
}
