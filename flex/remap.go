package flex

import (
	"golang.org/x/sync/errgroup"

	"flexkit/kspace"
	"flexkit/property"
)

// ExpandSelfEnergy translates a reduced-layout self-energy into the expanded
// layout the propagator update consumes: for every mesh point and every
// ordered orbital pair, the value at the reduced key ({kx,ky},{o0},{o1}) is
// copied to the expanded key ((kx,ky,o0),(kx,ky,o1)) at the same energy
// sample. The mapping is a bijection — no sample is dropped, duplicated or
// aggregated — and the energy axis is carried through unchanged.
//
// The copy is partitioned across mesh cells; the caller sees one synchronous
// result. Returns kspace.ErrDimensionality unless the mesh is exactly 2-D.
func ExpandSelfEnergy(layout *property.PairLayout, reduced *property.SelfEnergy) (*property.SelfEnergy, error) {
	ctx := reduced.Context()
	if err := ctx.RequireTwoDimensional(); err != nil {
		return nil, err
	}

	expanded := property.NewExpandedSelfEnergy(layout, reduced.Axis())
	numOrbitals := ctx.NumOrbitals()
	numEnergies := reduced.Axis().NumEnergies()

	var group errgroup.Group
	for cell := 0; cell < ctx.NumCells(); cell++ {
		cell := cell
		group.Go(func() error {
			kx, ky := ctx.MeshPoint(cell)
			for o0 := 0; o0 < numOrbitals; o0++ {
				for o1 := 0; o1 < numOrbitals; o1++ {
					first := kspace.CompositeIndex{Kx: kx, Ky: ky, Orbital: o0}
					second := kspace.CompositeIndex{Kx: kx, Ky: ky, Orbital: o1}
					for n := 0; n < numEnergies; n++ {
						expanded.SetPair(first, second, n, reduced.AtReduced(cell, o0, o1, n))
					}
				}
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return expanded, nil
}
