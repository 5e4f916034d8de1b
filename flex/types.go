// Package flex defines core types and sentinel errors for the
// fluctuation-exchange pipeline, part of the flexkit module.
package flex

import "errors"

// Sentinel errors for solver construction and the convergence evaluator.
var (
	// ErrConfiguration indicates an invalid solver configuration, detected
	// before any stage runs and before any observer notification.
	ErrConfiguration = errors.New("flex: invalid solver configuration")
	// ErrMissingStage indicates a StageSet with a nil member.
	ErrMissingStage = errors.New("flex: stage set is missing a stage")
	// ErrUnknownNorm indicates a Norm value outside {NormMax, NormL2}.
	ErrUnknownNorm = errors.New("flex: unknown convergence norm")
	// ErrSizeMismatch indicates two propagator snapshots of different sample
	// counts. This is an internal invariant violation, not bad user input.
	ErrSizeMismatch = errors.New("flex: incompatible propagator sample counts")
	// ErrAxisMismatch indicates a stage produced an artifact whose energy
	// axis does not match the window it was asked to compute under.
	ErrAxisMismatch = errors.New("flex: artifact energy axis does not match configured window")
)

// Model is the opaque Hamiltonian/basis handle shared by every stage. The
// pipeline never inspects it; it only threads it through stage calls.
type Model interface{}

// State identifies the last completed stage of the pipeline within the
// current iteration. It only ever advances, one step per stage call, and
// resets to StatePropagatorReady at the top of each iteration when the
// propagator is recomputed.
type State int

const (
	// StateNotStarted: Run has not produced anything yet.
	StateNotStarted State = iota
	// StatePropagatorReady: a propagator (bare or updated) is available.
	StatePropagatorReady
	// StateBareResponseReady: the bare response has been computed.
	StateBareResponseReady
	// StateRenormalizedResponseReady: both renormalized channels are ready.
	StateRenormalizedResponseReady
	// StateInteractionReady: the effective interaction has been computed.
	StateInteractionReady
	// StateSelfEnergyReady: the self-energy is computed and expanded.
	StateSelfEnergyReady
)

// String returns a short state name for logs.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StatePropagatorReady:
		return "propagator-ready"
	case StateBareResponseReady:
		return "bare-response-ready"
	case StateRenormalizedResponseReady:
		return "renormalized-response-ready"
	case StateInteractionReady:
		return "interaction-ready"
	case StateSelfEnergyReady:
		return "self-energy-ready"
	default:
		return "unknown"
	}
}

// Norm selects the convergence metric formula.
type Norm int

const (
	// NormMax: max_n |old−new| / max_n |old|.
	NormMax Norm = iota
	// NormL2: Σ|old−new|² / Σ|old|².
	NormL2
)

// String returns the lower-case norm name used in configuration files.
func (n Norm) String() string {
	switch n {
	case NormMax:
		return "max"
	case NormL2:
		return "l2"
	default:
		return "unknown"
	}
}

// Couplings bundles the two free interaction parameters with the two derived
// ones. Uprime and Jprime are computed exactly once, in DeriveCouplings, and
// passed explicitly to every stage that needs them.
type Couplings struct {
	U, J           float64
	Uprime, Jprime float64
}

// DeriveCouplings computes the derived parameters U′ = U − 2J and J′ = J.
func DeriveCouplings(u, j float64) Couplings {
	return Couplings{U: u, J: j, Uprime: u - 2*j, Jprime: j}
}
