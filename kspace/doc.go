// Package kspace describes the discretized momentum space a solver run
// operates on: a rectangular mesh of k-points with a fixed number of
// orbitals per point.
//
// What:
//
//   - Context wraps the mesh dimensions and orbital count. It is immutable
//     and shared read-only by every pipeline stage for the lifetime of a run.
//   - CompositeIndex is the (kx, ky, orbital) tuple used as an array key by
//     propagator-shaped artifacts.
//   - Row-major cell arithmetic (Cell, MeshPoint, NumCells) gives every
//     k-point a stable linear index.
//
// Why:
//
//   - Block-diagonal artifacts are stored densely per k-point; the cell
//     index is the common currency between layouts.
//   - Current solvers support exactly two mesh dimensions. Construction
//     accepts any dimensionality so the context can describe a model, but
//     RequireTwoDimensional gates every computation that assumes 2-D.
//
// Errors:
//
//   - ErrEmptyMesh: no dimensions, or a dimension with no mesh points.
//   - ErrNoOrbitals: orbital count below one.
//   - ErrDimensionality: an operation that requires a 2-D mesh was given
//     a context of different dimensionality.
package kspace
