package flex

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"flexkit/kspace"
	"flexkit/matsubara"
	"flexkit/property"
)

// Solver drives the fluctuation-exchange self-consistency loop:
//
//	bare propagator → { bare response → renormalized responses →
//	effective interaction → self-energy (+ expansion) →
//	propagator update → convergence test } × MaxIterations
//
// Stages execute strictly one after another on the calling goroutine; the
// observer is invoked inline after every state transition. A Solver is not
// safe for concurrent use and Run may be called only once.
type Solver struct {
	ctx    *kspace.Context
	model  Model
	stages StageSet

	fermionicWindow matsubara.Window
	bosonicWindow   matsubara.Window
	couplings       Couplings
	maxIterations   int
	norm            Norm
	tolerance       float64
	observer        Observer
	logger          *zap.Logger

	layout *property.PairLayout

	state      State
	iterations int

	propagator0    *property.Propagator // bare, computed once
	propagator     *property.Propagator // current iterate
	oldPropagator  *property.Propagator // previous iterate, for the convergence test
	bareResponse   *property.Response
	chargeResponse *property.Response
	spinResponse   *property.Response
	interaction    *property.Vertex
	selfEnergy     *property.SelfEnergy // expanded layout
	convergence    float64
}

// New constructs a Solver over an immutable momentum-space context, an
// opaque model handle, one implementation of each stage contract and a
// validated configuration.
//
// Returns an error wrapping ErrConfiguration if the mesh is not exactly
// two-dimensional, a window is malformed, the iteration bound is below one
// or the norm is unknown, and ErrMissingStage if a stage is nil. All checks
// happen here: a Solver that constructs will not fail on configuration
// during Run.
func New(ctx *kspace.Context, model Model, stages StageSet, opts Options) (*Solver, error) {
	if err := ctx.RequireTwoDimensional(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	if err := stages.validate(); err != nil {
		return nil, err
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	layout, err := property.NewPairLayout(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Solver{
		ctx:             ctx,
		model:           model,
		stages:          stages,
		fermionicWindow: opts.FermionicWindow,
		bosonicWindow:   opts.BosonicWindow,
		couplings:       DeriveCouplings(opts.U, opts.J),
		maxIterations:   opts.MaxIterations,
		norm:            opts.Norm,
		tolerance:       opts.Tolerance,
		observer:        opts.Observer,
		logger:          logger,
		layout:          layout,
		state:           StateNotStarted,
	}, nil
}

// Run executes the pipeline until the convergence metric drops below the
// tolerance or MaxIterations is exhausted. The first stage error aborts the
// run; there is no partial recovery. All artifact getters remain valid after
// Run returns, converged or not.
func (s *Solver) Run() error {
	g0, err := timedStage(s, "bare propagator", func() (*property.Propagator, error) {
		return s.stages.BarePropagator.ComputeBarePropagator(s.model, s.fermionicWindow)
	})
	if err != nil {
		return fmt.Errorf("flex: bare propagator: %w", err)
	}
	if err := s.checkWindow("bare propagator", g0.Axis(), s.fermionicWindow); err != nil {
		return err
	}
	s.propagator0 = g0
	s.propagator = g0
	s.transition(StatePropagatorReady)

	for s.iterations < s.maxIterations {
		s.iterations++
		if err := s.iterate(); err != nil {
			return err
		}
		if s.convergence < s.tolerance {
			s.logger.Info("converged",
				zap.Int("iteration", s.iterations),
				zap.Float64("convergence", s.convergence),
				zap.Float64("tolerance", s.tolerance),
			)
			break
		}
	}
	return nil
}

// iterate performs one full self-consistency iteration.
func (s *Solver) iterate() error {
	bare, err := timedStage(s, "bare response", func() (*property.Response, error) {
		return s.stages.BareResponse.ComputeBareResponse(s.model, s.propagator, s.bosonicWindow, s.fermionicWindow)
	})
	if err != nil {
		return fmt.Errorf("flex: bare response: %w", err)
	}
	if err := s.checkWindow("bare response", bare.Axis(), s.bosonicWindow); err != nil {
		return err
	}
	s.bareResponse = bare
	s.transition(StateBareResponseReady)

	charge, spin, err := s.timedPair("renormalized responses", func() (*property.Response, *property.Response, error) {
		return s.stages.RenormalizedResponse.ComputeRenormalizedResponses(s.model, s.bareResponse, s.couplings)
	})
	if err != nil {
		return fmt.Errorf("flex: renormalized responses: %w", err)
	}
	s.chargeResponse, s.spinResponse = charge, spin
	s.transition(StateRenormalizedResponseReady)

	vertex, err := timedStage(s, "effective interaction", func() (*property.Vertex, error) {
		return s.stages.EffectiveInteraction.ComputeEffectiveInteraction(s.model, s.chargeResponse, s.spinResponse, s.couplings)
	})
	if err != nil {
		return fmt.Errorf("flex: effective interaction: %w", err)
	}
	s.interaction = vertex
	s.transition(StateInteractionReady)

	sigma, err := timedStage(s, "self-energy", func() (*property.SelfEnergy, error) {
		reduced, err := s.stages.SelfEnergy.ComputeSelfEnergy(s.model, s.interaction, s.propagator, s.fermionicWindow, s.bosonicWindow)
		if err != nil {
			return nil, err
		}
		return ExpandSelfEnergy(s.layout, reduced)
	})
	if err != nil {
		return fmt.Errorf("flex: self-energy: %w", err)
	}
	if err := s.checkWindow("self-energy", sigma.Axis(), s.fermionicWindow); err != nil {
		return err
	}
	s.selfEnergy = sigma
	s.transition(StateSelfEnergyReady)

	// Retain the current iterate as "previous". The update stage returns a
	// fresh propagator, so the previous snapshot is replaced, never mutated.
	s.oldPropagator = s.propagator
	next, err := timedStage(s, "propagator update", func() (*property.Propagator, error) {
		return s.stages.PropagatorUpdate.UpdatePropagator(s.model, s.propagator0, s.selfEnergy)
	})
	if err != nil {
		return fmt.Errorf("flex: propagator update: %w", err)
	}
	if err := s.checkWindow("propagator update", next.Axis(), s.fermionicWindow); err != nil {
		return err
	}
	s.propagator = next
	s.transition(StatePropagatorReady)

	metric, err := Divergence(s.oldPropagator, s.propagator, s.norm)
	if err != nil {
		return err
	}
	s.convergence = metric
	s.logger.Info("iteration complete",
		zap.Int("iteration", s.iterations),
		zap.Float64("convergence", s.convergence),
	)
	return nil
}

// checkWindow enforces that a stage output carries the axis of the window it
// was computed under.
func (s *Solver) checkWindow(stage string, got matsubara.Axis, want matsubara.Window) error {
	if got.Window() != want {
		return fmt.Errorf("%w: %s produced [%d, %d], window is [%d, %d]",
			ErrAxisMismatch, stage, got.Lower, got.Upper, want.Lower, want.Upper)
	}
	return nil
}

// transition advances the state machine and notifies the observer.
func (s *Solver) transition(next State) {
	s.state = next
	if s.observer != nil {
		s.observer.StateChanged(s)
	}
}

// timedStage runs fn and logs its wall-clock duration at debug level.
func timedStage[T any](s *Solver, name string, fn func() (T, error)) (T, error) {
	start := time.Now()
	out, err := fn()
	s.logger.Debug("stage finished",
		zap.String("stage", name),
		zap.Duration("elapsed", time.Since(start)),
	)
	return out, err
}

// timedPair is timedStage for the one stage that returns two artifacts.
func (s *Solver) timedPair(name string, fn func() (*property.Response, *property.Response, error)) (*property.Response, *property.Response, error) {
	start := time.Now()
	charge, spin, err := fn()
	s.logger.Debug("stage finished",
		zap.String("stage", name),
		zap.Duration("elapsed", time.Since(start)),
	)
	return charge, spin, err
}

// State returns the last completed pipeline state.
func (s *Solver) State() State {
	return s.state
}

// Iterations returns the number of completed (or in-progress, when observed
// from a callback) self-consistency iterations.
func (s *Solver) Iterations() int {
	return s.iterations
}

// Convergence returns the most recent convergence metric. It is meaningful
// only after the first full iteration, once two propagator snapshots exist.
func (s *Solver) Convergence() float64 {
	return s.convergence
}

// Couplings returns the free and derived interaction parameters of the run.
func (s *Solver) Couplings() Couplings {
	return s.couplings
}

// Context returns the shared momentum-space context.
func (s *Solver) Context() *kspace.Context {
	return s.ctx
}

// BarePropagator returns G0, computed once at the start of Run.
func (s *Solver) BarePropagator() *property.Propagator {
	return s.propagator0
}

// Propagator returns the current propagator iterate.
func (s *Solver) Propagator() *property.Propagator {
	return s.propagator
}

// BareResponse returns the most recent bare response.
func (s *Solver) BareResponse() *property.Response {
	return s.bareResponse
}

// ChargeResponse returns the most recent renormalized charge channel.
func (s *Solver) ChargeResponse() *property.Response {
	return s.chargeResponse
}

// SpinResponse returns the most recent renormalized spin channel.
func (s *Solver) SpinResponse() *property.Response {
	return s.spinResponse
}

// Interaction returns the most recent effective interaction.
func (s *Solver) Interaction() *property.Vertex {
	return s.interaction
}

// SelfEnergy returns the most recent self-energy, in the expanded layout.
func (s *Solver) SelfEnergy() *property.SelfEnergy {
	return s.selfEnergy
}
