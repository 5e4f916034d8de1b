// Package flexkit is a toolkit for driving fluctuation-exchange (FLEX)
// self-consistency calculations: the orchestration loop, the artifact
// containers and the index-space plumbing, without any physical kernel.
//
// What is flexkit?
//
//	A library that brings together:
//		• matsubara/ — imaginary-frequency index windows and energy axes
//		• kspace/    — the immutable momentum-mesh context and composite indices
//		• property/  — dense complex artifacts: propagators, responses,
//		               interaction vertices and self-energies, with explicit
//		               enumerated memory layouts
//		• flex/      — the solver: state machine, stage contracts, observer
//		               hooks, convergence norms and the reduced→expanded
//		               self-energy remapping
//		• cmd/flexcheck — validate run configurations from the shell
//
// Why flexkit?
//
//   - The expensive physics (diagonalization, susceptibilities, vertices,
//     Green's-function algebra) belongs to the caller; flexkit owns the part
//     that is easy to get wrong — stage ordering, snapshot lifetimes,
//     convergence decisions and layout bijections — and keeps it tested.
//   - Stage implementations plug in as single-method interfaces and stay
//     pure; the solver threads windows, couplings and the opaque model
//     through every call explicitly.
//
// Quick sketch of one run:
//
//	G0 → ┌ χ0 → χc,χs → Γ → Σ (expand) → G ┐
//	     └──────── until |ΔG| < tol ───────┘
//
// See flex.New and flex.Options for the entry point.
package flexkit
