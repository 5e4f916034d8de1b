package property

import "flexkit/kspace"

// IndexPair is an ordered pair of composite indices, the key of one row of
// propagator-shaped data.
type IndexPair struct {
	First, Second kspace.CompositeIndex
}

// PairLayout enumerates every block-diagonal ordered orbital pair
// ((kx,ky,o0),(kx,ky,o1)) of a two-dimensional context, in mesh-major,
// orbital-minor order, and provides O(1) lookup from pair to row.
//
// The enumeration is built exactly once; a single PairLayout is shared by
// all propagator-shaped artifacts of a run.
type PairLayout struct {
	ctx   *kspace.Context
	pairs []IndexPair
	rows  map[IndexPair]int
}

// NewPairLayout builds the pair enumeration for ctx.
// Returns kspace.ErrDimensionality unless the mesh is exactly 2-D.
func NewPairLayout(ctx *kspace.Context) (*PairLayout, error) {
	if err := ctx.RequireTwoDimensional(); err != nil {
		return nil, err
	}
	mesh := ctx.MeshPoints()
	numOrbitals := ctx.NumOrbitals()

	n := ctx.NumCells() * numOrbitals * numOrbitals
	pairs := make([]IndexPair, 0, n)
	rows := make(map[IndexPair]int, n)
	for kx := 0; kx < mesh[0]; kx++ {
		for ky := 0; ky < mesh[1]; ky++ {
			for o0 := 0; o0 < numOrbitals; o0++ {
				for o1 := 0; o1 < numOrbitals; o1++ {
					p := IndexPair{
						First:  kspace.CompositeIndex{Kx: kx, Ky: ky, Orbital: o0},
						Second: kspace.CompositeIndex{Kx: kx, Ky: ky, Orbital: o1},
					}
					rows[p] = len(pairs)
					pairs = append(pairs, p)
				}
			}
		}
	}

	return &PairLayout{ctx: ctx, pairs: pairs, rows: rows}, nil
}

// Context returns the momentum-space context the layout was built for.
func (l *PairLayout) Context() *kspace.Context {
	return l.ctx
}

// NumRows returns the number of enumerated pairs.
func (l *PairLayout) NumRows() int {
	return len(l.pairs)
}

// Pair returns the enumerated pair at the given row.
func (l *PairLayout) Pair(row int) IndexPair {
	return l.pairs[row]
}

// Row returns the row of the given ordered pair, or ok=false if the pair is
// not part of the layout (off-diagonal in the mesh, or orbital out of range).
func (l *PairLayout) Row(first, second kspace.CompositeIndex) (row int, ok bool) {
	row, ok = l.rows[IndexPair{First: first, Second: second}]
	return row, ok
}
