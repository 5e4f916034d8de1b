// Package flex implements the fluctuation-exchange (FLEX) self-consistency
// pipeline: a synchronous orchestrator that drives a fixed sequence of
// numerical stages until the propagator stops changing.
//
// What:
//
//   - Solver sequences the stages in fixed order each iteration:
//     BareResponse → RenormalizedResponse → EffectiveInteraction →
//     SelfEnergy (computed reduced, expanded onto the propagator layout) →
//     PropagatorUpdate → convergence test, after computing the bare
//     propagator exactly once up front.
//   - The six stage contracts are single-method interfaces (with Func
//     adapters); flexkit ships no physical kernels — callers plug in their
//     own diagonalizer, susceptibility, vertex and Green's-function solvers.
//   - Divergence compares two propagator snapshots under a selectable norm;
//     ExpandSelfEnergy is the reduced→expanded index remapping.
//   - An Observer sees every state transition synchronously; Recorder and
//     LogObserver are ready-made implementations.
//   - Config/LoadConfig read a YAML run configuration into Options.
//
// Why:
//
//   - The loop, the state machine, the two live propagator snapshots and
//     the convergence decision are easy to get subtly wrong; centralizing
//     them keeps stage implementations pure and stateless.
//
// Execution model:
//
//   - Single-threaded and synchronous. No stage call is skipped, reordered
//     or overlapped within an iteration; observers block the loop. Stages
//     may parallelize internally (ExpandSelfEnergy partitions its copy
//     across mesh cells) but present one synchronous result.
//   - No cancellation: once Run begins it proceeds to convergence or the
//     iteration bound. Errors are fatal and surfaced; there is no partial
//     recovery.
//
// Errors:
//
//   - ErrConfiguration: invalid configuration, rejected in New before any
//     stage runs or observer fires (wraps kspace.ErrDimensionality for
//     non-2-D meshes).
//   - ErrMissingStage: a nil member in the StageSet.
//   - ErrUnknownNorm: a norm outside {max, l2}.
//   - ErrSizeMismatch: the convergence evaluator was handed snapshots of
//     different sample counts, an internal invariant violation.
//   - ErrAxisMismatch: a stage output carries an energy axis that differs
//     from the window it was computed under.
//   - kspace.ErrDimensionality: raised by stages or the remapper mid-run on
//     a non-2-D mesh; fatal for the run.
package flex
