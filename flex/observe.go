package flex

import "go.uber.org/zap"

// Observer receives the solver's live state synchronously after every state
// transition. The callback blocks the loop until it returns and has read
// access to every artifact produced so far; it has no control over loop
// continuation.
type Observer interface {
	StateChanged(s *Solver)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(s *Solver)

// StateChanged calls f.
func (f ObserverFunc) StateChanged(s *Solver) {
	f(s)
}

// Recorder is an Observer that records the sequence of observed states.
type Recorder struct {
	states []State
}

// StateChanged appends the solver's current state to the record.
func (r *Recorder) StateChanged(s *Solver) {
	r.states = append(r.states, s.State())
}

// States returns a copy of the recorded state sequence.
func (r *Recorder) States() []State {
	out := make([]State, len(r.states))
	copy(out, r.states)
	return out
}

// LogObserver returns an Observer that logs every state transition with the
// current iteration and convergence metric.
func LogObserver(logger *zap.Logger) Observer {
	return ObserverFunc(func(s *Solver) {
		logger.Info("pipeline state changed",
			zap.Stringer("state", s.State()),
			zap.Int("iteration", s.Iterations()),
			zap.Float64("convergence", s.Convergence()),
		)
	})
}
