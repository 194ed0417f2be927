// Package invariants checks a rewritten scene or assembled bundle against
// the testable properties spec.md §8 names: closure completeness,
// triangular pairing, new-root reparenting, type-table density, and
// manifest shape. Used by tests and by the --verify CLI flag.
package invariants
