// Package norms converts raw per-test scores into Z-scores against
// fixed population statistics.
package norms

import (
	"errors"
	"fmt"

	"github.com/abhisek/neuroscreen/internal/battery"
)

// ErrInvalidNorms flags a missing or degenerate norm entry. The
// affected test is excluded from the composite rather than scored.
var ErrInvalidNorms = errors.New("invalid population norms")

// Params are the population statistics for one test.
type Params struct {
	Mean   float64
	StdDev float64
	// Invert flips the Z-score sign for tests where a lower raw value
	// means better performance (completion times, latencies), so a
	// higher Z always reads as better.
	Invert bool
}

// Table maps each test to its norm parameters.
type Table map[battery.TestID]Params

// DefaultTable returns the built-in population norms.
func DefaultTable() Table {
	return Table{
		battery.TestMemory:  {Mean: 18.0, StdDev: 5.0},
		battery.TestFluency: {Mean: 17.0, StdDev: 4.5},
		battery.TestTrails:  {Mean: 75.0, StdDev: 25.0, Invert: true},
		battery.TestStroop:  {Mean: 150.0, StdDev: 80.0, Invert: true},
		battery.TestPicture: {Mean: 60.0, StdDev: 20.0},
	}
}

// ZScore standardizes raw against the table entry for id. A missing
// entry or a zero standard deviation is a configuration error reported
// as ErrInvalidNorms; the table is never divided through.
func (t Table) ZScore(id battery.TestID, raw float64) (float64, error) {
	p, ok := t[id]
	if !ok {
		return 0, fmt.Errorf("%w: no entry for test %q", ErrInvalidNorms, id)
	}
	if p.StdDev == 0 {
		return 0, fmt.Errorf("%w: zero standard deviation for test %q", ErrInvalidNorms, id)
	}
	z := (raw - p.Mean) / p.StdDev
	if p.Invert {
		z = -z
	}
	return z, nil
}
