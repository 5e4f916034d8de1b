// Package matsubara models discrete imaginary-frequency (Matsubara) index
// windows and the energy-axis metadata attached to every solver artifact.
//
// What:
//
//   - Window: an inclusive [Lower, Upper] range of Matsubara indices.
//   - Statistic: Fermionic (odd indices) or Bosonic (even indices).
//   - Axis: the per-artifact energy axis — lower index, upper index and the
//     fundamental energy spacing — that must survive every layout
//     transformation unchanged.
//
// Why:
//
//   - Fermionic samples sit at E_n = i·n·E_f with n odd, bosonic at n even,
//     where E_f = π·k_B·T is the fundamental Matsubara energy. Indices
//     therefore always stride by 2, and a window of bounds (l, u) holds
//     (u−l)/2 + 1 samples.
//   - Encoding the parity rules once here keeps every downstream stage from
//     re-deriving (and disagreeing on) sample counts.
//
// Errors:
//
//   - ErrWindowOrder: Upper < Lower.
//   - ErrWindowParity: bound parity does not match the statistic.
//
// Units: Fundamental is an energy; Boltzmann is k_B in eV/K for callers that
// build an Axis from a temperature via FundamentalEnergy.
package matsubara
