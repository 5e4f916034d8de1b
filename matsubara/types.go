// Package matsubara defines core types and sentinel errors for Matsubara
// index windows, part of the flexkit module.
package matsubara

import "errors"

// Sentinel errors for window validation.
var (
	// ErrWindowOrder indicates Upper < Lower.
	ErrWindowOrder = errors.New("matsubara: window upper bound below lower bound")
	// ErrWindowParity indicates a bound whose parity does not match the statistic.
	ErrWindowParity = errors.New("matsubara: window bounds have wrong parity for statistic")
)

// Statistic selects the particle statistic a window samples.
type Statistic int

const (
	// Fermionic windows hold odd Matsubara indices (n = ±1, ±3, …).
	Fermionic Statistic = iota
	// Bosonic windows hold even Matsubara indices (n = 0, ±2, …).
	Bosonic
)

// String returns the lower-case statistic name.
func (s Statistic) String() string {
	switch s {
	case Fermionic:
		return "fermionic"
	case Bosonic:
		return "bosonic"
	default:
		return "unknown"
	}
}

// Window is an inclusive range of Matsubara indices. Indices stride by 2
// within a window, so both bounds share the statistic's parity.
type Window struct {
	Lower, Upper int
}

// NumEnergies returns the number of sampled indices in the window.
func (w Window) NumEnergies() int {
	return (w.Upper-w.Lower)/2 + 1
}

// Validate checks bound ordering and parity against the given statistic.
func (w Window) Validate(s Statistic) error {
	if w.Upper < w.Lower {
		return ErrWindowOrder
	}
	want := 0
	if s == Fermionic {
		want = 1
	}
	if abs(w.Lower)%2 != want || abs(w.Upper)%2 != want {
		return ErrWindowParity
	}
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
