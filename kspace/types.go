// Package kspace defines core types and sentinel errors for the momentum
// mesh, part of the flexkit module.
package kspace

import "errors"

// Sentinel errors for context construction and use.
var (
	// ErrEmptyMesh indicates a mesh with no dimensions or a zero-sized dimension.
	ErrEmptyMesh = errors.New("kspace: mesh must have at least one point per dimension")
	// ErrNoOrbitals indicates an orbital count below one.
	ErrNoOrbitals = errors.New("kspace: number of orbitals must be at least one")
	// ErrDimensionality indicates an operation that supports only
	// two-dimensional meshes was given a different dimensionality.
	ErrDimensionality = errors.New("kspace: only two-dimensional momentum meshes are supported")
)

// CompositeIndex combines a 2-D mesh point with an orbital label. It is the
// array key of propagator-shaped artifacts and is valid as a map key.
type CompositeIndex struct {
	Kx, Ky, Orbital int
}
