package property

import (
	"fmt"

	"flexkit/kspace"
	"flexkit/matsubara"
)

// SelfEnergyLayout distinguishes the two storage forms of a self-energy.
type SelfEnergyLayout int

const (
	// Reduced is the computational layout: keyed by one mesh cell and two
	// free orbital indices.
	Reduced SelfEnergyLayout = iota
	// Expanded is the storage layout of propagator-shaped data: keyed by
	// two composite (mesh point, orbital) indices over a PairLayout.
	Expanded
)

// String returns the lower-case layout name.
func (l SelfEnergyLayout) String() string {
	switch l {
	case Reduced:
		return "reduced"
	case Expanded:
		return "expanded"
	default:
		return "unknown"
	}
}

// SelfEnergy is the interaction correction to the bare propagator. Stages
// produce it in the Reduced layout; it must be expanded onto a PairLayout
// before a propagator update can consume it. Both forms carry the same
// fermionic energy axis.
type SelfEnergy struct {
	layout      SelfEnergyLayout
	ctx         *kspace.Context
	pairs       *PairLayout // non-nil iff layout == Expanded
	axis        matsubara.Axis
	numOrbitals int
	data        []complex128
}

// NewReducedSelfEnergy allocates a zeroed reduced-layout self-energy.
func NewReducedSelfEnergy(ctx *kspace.Context, axis matsubara.Axis) *SelfEnergy {
	numOrbitals := ctx.NumOrbitals()
	return &SelfEnergy{
		layout:      Reduced,
		ctx:         ctx,
		axis:        axis,
		numOrbitals: numOrbitals,
		data:        make([]complex128, ctx.NumCells()*numOrbitals*numOrbitals*axis.NumEnergies()),
	}
}

// NewExpandedSelfEnergy allocates a zeroed expanded-layout self-energy over
// an existing pair enumeration.
func NewExpandedSelfEnergy(pairs *PairLayout, axis matsubara.Axis) *SelfEnergy {
	return &SelfEnergy{
		layout:      Expanded,
		ctx:         pairs.Context(),
		pairs:       pairs,
		axis:        axis,
		numOrbitals: pairs.Context().NumOrbitals(),
		data:        make([]complex128, pairs.NumRows()*axis.NumEnergies()),
	}
}

// Layout reports which storage form the instance carries.
func (s *SelfEnergy) Layout() SelfEnergyLayout {
	return s.layout
}

// Context returns the momentum-space context.
func (s *SelfEnergy) Context() *kspace.Context {
	return s.ctx
}

// PairLayout returns the pair enumeration of an Expanded self-energy, or nil
// for a Reduced one.
func (s *SelfEnergy) PairLayout() *PairLayout {
	return s.pairs
}

// Axis returns the fermionic energy axis. The axis is identical before and
// after expansion.
func (s *SelfEnergy) Axis() matsubara.Axis {
	return s.axis
}

// NumSamples returns the total number of stored complex samples.
func (s *SelfEnergy) NumSamples() int {
	return len(s.data)
}

// Data returns the backing slice; read-only for everyone but the producer.
func (s *SelfEnergy) Data() []complex128 {
	return s.data
}

// AtReduced returns the sample at ({cell}, {o0}, {o1}, n) of a Reduced
// self-energy. Panics if the layout is Expanded or an index is out of range.
func (s *SelfEnergy) AtReduced(cell, o0, o1, n int) complex128 {
	return s.data[s.reducedOffset(cell, o0, o1, n)]
}

// SetReduced stores the sample at ({cell}, {o0}, {o1}, n) of a Reduced
// self-energy. Panics if the layout is Expanded or an index is out of range.
func (s *SelfEnergy) SetReduced(cell, o0, o1, n int, v complex128) {
	s.data[s.reducedOffset(cell, o0, o1, n)] = v
}

// AtPair returns the sample at ((first, second), n) of an Expanded
// self-energy. Panics if the layout is Reduced or the pair is unknown.
func (s *SelfEnergy) AtPair(first, second kspace.CompositeIndex, n int) complex128 {
	return s.data[s.pairOffset(first, second, n)]
}

// SetPair stores the sample at ((first, second), n) of an Expanded
// self-energy. Panics if the layout is Reduced or the pair is unknown.
func (s *SelfEnergy) SetPair(first, second kspace.CompositeIndex, n int, v complex128) {
	s.data[s.pairOffset(first, second, n)] = v
}

func (s *SelfEnergy) reducedOffset(cell, o0, o1, n int) int {
	if s.layout != Reduced {
		panic("property: reduced access on an expanded self-energy")
	}
	if cell < 0 || cell >= s.ctx.NumCells() {
		panic(fmt.Sprintf("property: cell %d outside [0, %d)", cell, s.ctx.NumCells()))
	}
	if o0 < 0 || o0 >= s.numOrbitals || o1 < 0 || o1 >= s.numOrbitals {
		panic(fmt.Sprintf("property: orbital pair (%d,%d) outside [0, %d)", o0, o1, s.numOrbitals))
	}
	numEnergies := s.axis.NumEnergies()
	if n < 0 || n >= numEnergies {
		panic(fmt.Sprintf("property: energy sample %d outside [0, %d)", n, numEnergies))
	}
	return ((cell*s.numOrbitals+o0)*s.numOrbitals+o1)*numEnergies + n
}

func (s *SelfEnergy) pairOffset(first, second kspace.CompositeIndex, n int) int {
	if s.layout != Expanded {
		panic("property: pair access on a reduced self-energy")
	}
	row, ok := s.pairs.Row(first, second)
	if !ok {
		panic(fmt.Sprintf("property: pair (%v, %v) not in self-energy layout", first, second))
	}
	numEnergies := s.axis.NumEnergies()
	if n < 0 || n >= numEnergies {
		panic(fmt.Sprintf("property: energy sample %d outside [0, %d)", n, numEnergies))
	}
	return row*numEnergies + n
}
