// Package property holds the dense, complex-valued artifacts a solver run
// produces: propagators, response functions, effective interactions and
// self-energies.
//
// What:
//
//   - PairLayout: an explicit, enumerated memory layout over every
//     block-diagonal ordered pair ((kx,ky,o0),(kx,ky,o1)) of composite
//     indices, built once per momentum-space context.
//   - Propagator: Green's-function data keyed by a PairLayout row and a
//     fermionic Matsubara sample.
//   - Response (and Vertex, which shares its shape): two-particle data keyed
//     by one mesh cell, four orbital indices and a bosonic sample.
//   - SelfEnergy: produced in a reduced layout (cell, orbital, orbital) and
//     expanded onto a PairLayout before it can dress a propagator.
//
// Why:
//
//   - Every artifact carries its own matsubara.Axis; layout transformations
//     must preserve it bit-for-bit, and axis mismatches between collaborating
//     artifacts are programming errors caught early.
//   - Layouts are plain enumerations with O(1) row lookup, not shared mutable
//     trees; the same PairLayout value backs every propagator-shaped artifact
//     of a run.
//
// Accessor contract: At/Set index directly into dense storage and panic on
// unknown keys or out-of-range samples, like slice indexing. Operations that
// can fail on caller input return errors.
//
// Errors:
//
//   - kspace.ErrDimensionality: PairLayout construction on a non-2-D mesh.
package property
