package property

import (
	"fmt"

	"flexkit/kspace"
	"flexkit/matsubara"
)

// Propagator is a single-particle Green's function: one complex value per
// PairLayout row per fermionic Matsubara sample. Data is stored densely,
// row-major over the layout enumeration.
type Propagator struct {
	layout *PairLayout
	axis   matsubara.Axis
	data   []complex128
}

// NewPropagator allocates a zeroed Propagator over the given layout and axis.
func NewPropagator(layout *PairLayout, axis matsubara.Axis) *Propagator {
	return &Propagator{
		layout: layout,
		axis:   axis,
		data:   make([]complex128, layout.NumRows()*axis.NumEnergies()),
	}
}

// Layout returns the pair layout the propagator is stored over.
func (g *Propagator) Layout() *PairLayout {
	return g.layout
}

// Axis returns the fermionic energy axis.
func (g *Propagator) Axis() matsubara.Axis {
	return g.axis
}

// NumSamples returns the total number of stored complex samples.
func (g *Propagator) NumSamples() int {
	return len(g.data)
}

// Data returns the backing slice. It is shared, not copied; callers other
// than the producing stage must treat it as read-only.
func (g *Propagator) Data() []complex128 {
	return g.data
}

// At returns the sample at ((first, second), n).
// Panics if the pair is not in the layout or n is out of range.
func (g *Propagator) At(first, second kspace.CompositeIndex, n int) complex128 {
	return g.data[g.offset(first, second, n)]
}

// Set stores the sample at ((first, second), n).
// Panics if the pair is not in the layout or n is out of range.
func (g *Propagator) Set(first, second kspace.CompositeIndex, n int, v complex128) {
	g.data[g.offset(first, second, n)] = v
}

// Clone returns an independent deep copy sharing only the (immutable) layout.
func (g *Propagator) Clone() *Propagator {
	data := make([]complex128, len(g.data))
	copy(data, g.data)
	return &Propagator{layout: g.layout, axis: g.axis, data: data}
}

func (g *Propagator) offset(first, second kspace.CompositeIndex, n int) int {
	row, ok := g.layout.Row(first, second)
	if !ok {
		panic(fmt.Sprintf("property: pair (%v, %v) not in propagator layout", first, second))
	}
	numEnergies := g.axis.NumEnergies()
	if n < 0 || n >= numEnergies {
		panic(fmt.Sprintf("property: energy sample %d outside [0, %d)", n, numEnergies))
	}
	return row*numEnergies + n
}
