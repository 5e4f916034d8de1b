package property

import (
	"fmt"

	"flexkit/kspace"
	"flexkit/matsubara"
)

// Response is a two-particle response function: one complex value per mesh
// cell, per ordered orbital 4-tuple, per bosonic Matsubara sample. Both the
// bare and the renormalized (charge/spin channel) responses use this shape.
type Response struct {
	ctx         *kspace.Context
	axis        matsubara.Axis
	numOrbitals int
	data        []complex128
}

// NewResponse allocates a zeroed Response over ctx and the given bosonic axis.
func NewResponse(ctx *kspace.Context, axis matsubara.Axis) *Response {
	numOrbitals := ctx.NumOrbitals()
	orb4 := numOrbitals * numOrbitals * numOrbitals * numOrbitals
	return &Response{
		ctx:         ctx,
		axis:        axis,
		numOrbitals: numOrbitals,
		data:        make([]complex128, ctx.NumCells()*orb4*axis.NumEnergies()),
	}
}

// Context returns the momentum-space context.
func (r *Response) Context() *kspace.Context {
	return r.ctx
}

// Axis returns the bosonic energy axis.
func (r *Response) Axis() matsubara.Axis {
	return r.axis
}

// NumSamples returns the total number of stored complex samples.
func (r *Response) NumSamples() int {
	return len(r.data)
}

// Data returns the backing slice; read-only for everyone but the producer.
func (r *Response) Data() []complex128 {
	return r.data
}

// At returns the sample at (cell, a, b, c, d, n).
// Panics on out-of-range indices.
func (r *Response) At(cell, a, b, c, d, n int) complex128 {
	return r.data[r.offset(cell, a, b, c, d, n)]
}

// Set stores the sample at (cell, a, b, c, d, n).
// Panics on out-of-range indices.
func (r *Response) Set(cell, a, b, c, d, n int, v complex128) {
	r.data[r.offset(cell, a, b, c, d, n)] = v
}

// Clone returns an independent deep copy.
func (r *Response) Clone() *Response {
	data := make([]complex128, len(r.data))
	copy(data, r.data)
	return &Response{ctx: r.ctx, axis: r.axis, numOrbitals: r.numOrbitals, data: data}
}

func (r *Response) offset(cell, a, b, c, d, n int) int {
	if cell < 0 || cell >= r.ctx.NumCells() {
		panic(fmt.Sprintf("property: cell %d outside [0, %d)", cell, r.ctx.NumCells()))
	}
	for _, o := range [4]int{a, b, c, d} {
		if o < 0 || o >= r.numOrbitals {
			panic(fmt.Sprintf("property: orbital %d outside [0, %d)", o, r.numOrbitals))
		}
	}
	numEnergies := r.axis.NumEnergies()
	if n < 0 || n >= numEnergies {
		panic(fmt.Sprintf("property: energy sample %d outside [0, %d)", n, numEnergies))
	}
	o := r.numOrbitals
	return ((((cell*o+a)*o+b)*o+c)*o+d)*numEnergies + n
}

// Vertex is the effective interaction derived from the two renormalized
// responses. It shares the Response index shape.
type Vertex struct {
	Response
}

// NewVertex allocates a zeroed Vertex over ctx and the given bosonic axis.
func NewVertex(ctx *kspace.Context, axis matsubara.Axis) *Vertex {
	return &Vertex{Response: *NewResponse(ctx, axis)}
}
