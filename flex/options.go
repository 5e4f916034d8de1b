package flex

import (
	"fmt"

	"go.uber.org/zap"

	"flexkit/matsubara"
)

// Options configures a solver run. Set everything before New; a Solver never
// reads the Options value again after construction.
type Options struct {
	// FermionicWindow bounds the sampled fermionic Matsubara indices for the
	// propagator, response and self-energy stages. Bounds must be odd.
	FermionicWindow matsubara.Window
	// BosonicWindow bounds the sampled bosonic Matsubara indices for the
	// response, interaction and self-energy stages. Bounds must be even.
	BosonicWindow matsubara.Window
	// U and J are the primary and secondary interaction parameters. The
	// derived U′ = U − 2J and J′ = J are computed once at construction.
	U, J float64
	// MaxIterations is the hard bound on self-consistency iterations.
	MaxIterations int
	// Norm selects the convergence metric formula.
	Norm Norm
	// Tolerance is the convergence threshold. The loop exits early once the
	// metric drops strictly below it; the zero value therefore never
	// triggers early exit.
	Tolerance float64
	// Observer, if non-nil, is invoked synchronously after every state
	// transition. It observes; it cannot abort the run.
	Observer Observer
	// Logger receives stage timing and iteration progress. Nil means no
	// logging.
	Logger *zap.Logger
}

// DefaultOptions returns the solver defaults: the minimal fermionic window
// (−1, 1), the minimal bosonic window (0, 0), zero couplings, a single
// iteration, the Max norm and zero tolerance.
func DefaultOptions() Options {
	return Options{
		FermionicWindow: matsubara.Window{Lower: -1, Upper: 1},
		BosonicWindow:   matsubara.Window{Lower: 0, Upper: 0},
		MaxIterations:   1,
	}
}

// validate checks windows, iteration bound and norm.
func (o Options) validate() error {
	if err := o.FermionicWindow.Validate(matsubara.Fermionic); err != nil {
		return fmt.Errorf("%w: fermionic window: %w", ErrConfiguration, err)
	}
	if err := o.BosonicWindow.Validate(matsubara.Bosonic); err != nil {
		return fmt.Errorf("%w: bosonic window: %w", ErrConfiguration, err)
	}
	if o.MaxIterations < 1 {
		return fmt.Errorf("%w: max iterations must be at least 1, got %d", ErrConfiguration, o.MaxIterations)
	}
	if o.Norm != NormMax && o.Norm != NormL2 {
		return fmt.Errorf("%w: %d", ErrUnknownNorm, o.Norm)
	}
	return nil
}
