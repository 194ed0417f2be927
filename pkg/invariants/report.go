package invariants

import (
	"fmt"
	"strings"
)

// PropertyResult is the outcome of checking one property from spec.md §8.
type PropertyResult struct {
	Name      string
	Satisfied bool
	Details   string
}

// Report aggregates every PropertyResult checked for a scene or bundle.
type Report struct {
	Passed  bool
	Results []PropertyResult
	Errors  []string
}

// NewReport returns an empty, passing report.
func NewReport() *Report {
	return &Report{Passed: true}
}

// add records result and flips Passed/Errors if it failed.
func (r *Report) add(result PropertyResult) {
	r.Results = append(r.Results, result)
	if !result.Satisfied {
		r.Passed = false
		r.Errors = append(r.Errors, fmt.Sprintf("%s: %s", result.Name, result.Details))
	}
}

// Summary renders a human-readable report, in the teacher's
// pkg/validation.Summary style.
func (r *Report) Summary() string {
	var b strings.Builder
	if r.Passed {
		b.WriteString("invariants: PASSED\n")
	} else {
		b.WriteString("invariants: FAILED\n")
	}
	for _, result := range r.Results {
		status := "ok"
		if !result.Satisfied {
			status = "FAIL"
		}
		fmt.Fprintf(&b, "  [%s] %s: %s\n", status, result.Name, result.Details)
	}
	return b.String()
}
