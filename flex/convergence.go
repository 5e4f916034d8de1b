package flex

import (
	"math/cmplx"

	"flexkit/property"
)

// Divergence compares two propagator snapshots of identical size under the
// given norm and returns a scalar measure of their difference.
//
//   - NormMax: max_n |old[n]−new[n]| / max_n |old[n]|
//   - NormL2:  Σ_n |old[n]−new[n]|² / Σ_n |old[n]|²
//
// Both metrics are ≥ 0 and exactly 0 for element-wise identical snapshots.
// Returns ErrSizeMismatch if the sample counts differ; that is an internal
// invariant violation, never user input.
func Divergence(prev, next *property.Propagator, norm Norm) (float64, error) {
	oldData := prev.Data()
	newData := next.Data()
	if len(oldData) != len(newData) {
		return 0, ErrSizeMismatch
	}

	switch norm {
	case NormMax:
		var oldMax, diffMax float64
		for n := range oldData {
			if a := cmplx.Abs(oldData[n]); a > oldMax {
				oldMax = a
			}
			if d := cmplx.Abs(oldData[n] - newData[n]); d > diffMax {
				diffMax = d
			}
		}
		return diffMax / oldMax, nil
	case NormL2:
		var oldL2, diffL2 float64
		for n := range oldData {
			a := cmplx.Abs(oldData[n])
			oldL2 += a * a
			d := cmplx.Abs(oldData[n] - newData[n])
			diffL2 += d * d
		}
		return diffL2 / oldL2, nil
	default:
		return 0, ErrUnknownNorm
	}
}
