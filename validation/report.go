package validation

import (
	"fmt"
	"strings"
)

func passLabel(passed bool) string {
	if passed {
		return "PASS"
	}
	return "FAIL"
}

// Report renders the suite summary as review text.
func (s ValidationSuiteResult) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== RDE Validation Suite Report ===\n")
	fmt.Fprintf(&b, "Suite: %s\n", s.SuiteName)
	fmt.Fprintf(&b, "Total Cases: %d\n", s.TotalCases)
	fmt.Fprintf(&b, "Passed: %d\n", s.PassedCases)
	fmt.Fprintf(&b, "Failed: %d\n", s.FailedCases)
	if s.TotalCases > 0 {
		fmt.Fprintf(&b, "Success Rate: %.1f%%\n", float64(s.PassedCases)/float64(s.TotalCases)*100)
	}
	fmt.Fprintf(&b, "Overall Accuracy: %.1f%%\n\n", s.OverallAccuracy*100)

	fmt.Fprintf(&b, "Average Errors:\n")
	fmt.Fprintf(&b, "  Velocity: %.2f%%\n", s.MeanVelocityError)
	fmt.Fprintf(&b, "  Cell Size: %.2f%%\n", s.MeanCellSizeError)
	fmt.Fprintf(&b, "  Pressure: %.2f%%\n", s.MeanPressureError)
	fmt.Fprintf(&b, "  Frequency: %.2f%%\n\n", s.MeanFrequencyError)

	fmt.Fprintf(&b, "Detailed Results:\n")
	for _, r := range s.Results {
		fmt.Fprintf(&b, "  %s: %s (Accuracy: %.1f%%)\n", r.CaseName, passLabel(r.Passed), r.Accuracy*100)
		for _, w := range r.Warnings {
			fmt.Fprintf(&b, "    warning: %s\n", w)
		}
	}
	return b.String()
}
