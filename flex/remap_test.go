package flex_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"flexkit/flex"
	"flexkit/kspace"
	"flexkit/matsubara"
	"flexkit/property"
)

// fillReduced writes a value unique to every (cell, o0, o1, n) key.
func fillReduced(ctx *kspace.Context, sigma *property.SelfEnergy) {
	numOrb := ctx.NumOrbitals()
	numEnergies := sigma.Axis().NumEnergies()
	for cell := 0; cell < ctx.NumCells(); cell++ {
		for o0 := 0; o0 < numOrb; o0++ {
			for o1 := 0; o1 < numOrb; o1++ {
				for n := 0; n < numEnergies; n++ {
					sigma.SetReduced(cell, o0, o1, n,
						complex(float64(((cell*numOrb+o0)*numOrb+o1)*numEnergies+n), float64(cell-n)))
				}
			}
		}
	}
}

// TestExpandSelfEnergy_RoundTrip: for all mesh points, orbital pairs and
// energy samples, expanded((kx,ky,o0),(kx,ky,o1))[n] == reduced(cell,o0,o1)[n].
func TestExpandSelfEnergy_RoundTrip(t *testing.T) {
	ctx, err := kspace.NewContext([]int{3, 2}, 3)
	require.NoError(t, err)
	layout, err := property.NewPairLayout(ctx)
	require.NoError(t, err)

	axis := matsubara.NewAxis(matsubara.Window{Lower: -5, Upper: 5}, 0.02)
	reduced := property.NewReducedSelfEnergy(ctx, axis)
	fillReduced(ctx, reduced)

	expanded, err := flex.ExpandSelfEnergy(layout, reduced)
	require.NoError(t, err)
	require.Equal(t, property.Expanded, expanded.Layout())

	mesh := ctx.MeshPoints()
	for kx := 0; kx < mesh[0]; kx++ {
		for ky := 0; ky < mesh[1]; ky++ {
			cell := ctx.Cell(kx, ky)
			for o0 := 0; o0 < ctx.NumOrbitals(); o0++ {
				for o1 := 0; o1 < ctx.NumOrbitals(); o1++ {
					first := kspace.CompositeIndex{Kx: kx, Ky: ky, Orbital: o0}
					second := kspace.CompositeIndex{Kx: kx, Ky: ky, Orbital: o1}
					for n := 0; n < axis.NumEnergies(); n++ {
						require.Equal(t,
							reduced.AtReduced(cell, o0, o1, n),
							expanded.AtPair(first, second, n),
							"mismatch at (%d,%d) orbitals (%d,%d) sample %d", kx, ky, o0, o1, n)
					}
				}
			}
		}
	}
}

// TestExpandSelfEnergy_Lossless: the bijection preserves the sample count
// and the full multiset of values.
func TestExpandSelfEnergy_Lossless(t *testing.T) {
	ctx, err := kspace.NewContext([]int{2, 2}, 2)
	require.NoError(t, err)
	layout, err := property.NewPairLayout(ctx)
	require.NoError(t, err)

	axis := matsubara.NewAxis(matsubara.Window{Lower: -1, Upper: 1}, 0.1)
	reduced := property.NewReducedSelfEnergy(ctx, axis)
	fillReduced(ctx, reduced)

	expanded, err := flex.ExpandSelfEnergy(layout, reduced)
	require.NoError(t, err)

	require.Equal(t, reduced.NumSamples(), expanded.NumSamples())
	counts := func(data []complex128) map[complex128]int {
		m := make(map[complex128]int, len(data))
		for _, v := range data {
			m[v]++
		}
		return m
	}
	require.Empty(t, cmp.Diff(counts(reduced.Data()), counts(expanded.Data())),
		"expansion must neither drop nor duplicate any value")
}

// TestExpandSelfEnergy_CarriesAxis: bounds and fundamental spacing are
// identical before and after remapping.
func TestExpandSelfEnergy_CarriesAxis(t *testing.T) {
	ctx, err := kspace.NewContext([]int{2, 2}, 1)
	require.NoError(t, err)
	layout, err := property.NewPairLayout(ctx)
	require.NoError(t, err)

	axis := matsubara.NewAxis(matsubara.Window{Lower: -7, Upper: 7}, 0.031)
	reduced := property.NewReducedSelfEnergy(ctx, axis)

	expanded, err := flex.ExpandSelfEnergy(layout, reduced)
	require.NoError(t, err)
	require.True(t, expanded.Axis().Equal(axis))
}

// TestExpandSelfEnergy_DimensionalityGuard: a reduced artifact over a non-2-D
// mesh is rejected with kspace.ErrDimensionality.
func TestExpandSelfEnergy_DimensionalityGuard(t *testing.T) {
	ctx2, err := kspace.NewContext([]int{2, 2}, 1)
	require.NoError(t, err)
	layout, err := property.NewPairLayout(ctx2)
	require.NoError(t, err)

	ctx3, err := kspace.NewContext([]int{2, 2, 2}, 1)
	require.NoError(t, err)
	axis := matsubara.NewAxis(matsubara.Window{Lower: -1, Upper: 1}, 0.1)
	reduced := property.NewReducedSelfEnergy(ctx3, axis)

	_, err = flex.ExpandSelfEnergy(layout, reduced)
	require.ErrorIs(t, err, kspace.ErrDimensionality)
}
