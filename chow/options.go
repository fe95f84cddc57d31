// Package chow: functional options for the checkers.

package chow

// DefaultMaxGrade signals "check every grade the pairing family covers".
const DefaultMaxGrade = -1

// Options carries the configurable knobs of CheckGeometric and
// CheckArithmetic. Zero value is not meaningful; use gatherOptions.
type Options struct {
	// MaxGrade caps the highest grade checked; DefaultMaxGrade means all.
	MaxGrade int

	// Aux, when set, is reused instead of being rebuilt per run.
	Aux *Aux
}

// Option mutates Options. Constructors panic on nonsensical arguments
// (programmer error); every runtime failure is an error return instead.
type Option func(*Options)

// WithMaxGrade caps checking at the given grade. Grades above the cap are
// skipped entirely; the report covers only what was checked.
// Panics if limit < 0 (use the default to check everything).
func WithMaxGrade(limit int) Option {
	if limit < 0 {
		panic("chow: WithMaxGrade requires a non-negative limit")
	}

	return func(o *Options) { o.MaxGrade = limit }
}

// WithAux supplies precomputed degree tables, typically shared across the
// geometric and arithmetic runs for the same bounds. Panics on nil.
func WithAux(aux *Aux) Option {
	if aux == nil {
		panic("chow: WithAux requires a non-nil aux")
	}

	return func(o *Options) { o.Aux = aux }
}

// gatherOptions folds the user's options over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{MaxGrade: DefaultMaxGrade}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
