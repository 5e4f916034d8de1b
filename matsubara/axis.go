package matsubara

import "math"

// Boltzmann is k_B in eV/K, used when deriving the fundamental Matsubara
// energy from a temperature.
const Boltzmann = 8.617333262e-5

// FundamentalEnergy returns π·k_B·T, the spacing between consecutive
// Matsubara indices at temperature T (in Kelvin).
func FundamentalEnergy(temperature float64) float64 {
	return math.Pi * Boltzmann * temperature
}

// Axis carries the energy-axis metadata attached to a solver artifact:
// the inclusive Matsubara index bounds and the fundamental energy spacing.
// Layout transformations must carry an Axis through unchanged.
type Axis struct {
	Lower, Upper int
	Fundamental  float64
}

// NewAxis builds an Axis from a validated window and a fundamental energy.
func NewAxis(w Window, fundamental float64) Axis {
	return Axis{Lower: w.Lower, Upper: w.Upper, Fundamental: fundamental}
}

// Window returns the index window the axis spans.
func (a Axis) Window() Window {
	return Window{Lower: a.Lower, Upper: a.Upper}
}

// NumEnergies returns the number of samples along the axis.
func (a Axis) NumEnergies() int {
	return (a.Upper-a.Lower)/2 + 1
}

// Index returns the Matsubara index of sample n (0-based along the axis).
func (a Axis) Index(n int) int {
	return a.Lower + 2*n
}

// Energy returns the imaginary part of the Matsubara energy at sample n,
// i.e. the index times the fundamental spacing.
func (a Axis) Energy(n int) float64 {
	return float64(a.Index(n)) * a.Fundamental
}

// Equal reports whether two axes have identical bounds and spacing.
func (a Axis) Equal(b Axis) bool {
	return a.Lower == b.Lower && a.Upper == b.Upper && a.Fundamental == b.Fundamental
}
