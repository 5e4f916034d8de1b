package kspace

// Context is an immutable description of the momentum-space discretization:
// the number of mesh points along each dimension and the number of orbitals
// per mesh point. A Context is shared read-only across a whole solver run.
type Context struct {
	meshPoints  []int
	numOrbitals int
	numCells    int
}

// NewContext constructs a Context from per-dimension mesh sizes and an
// orbital count. It deep-copies meshPoints to ensure immutability.
// Returns ErrEmptyMesh if meshPoints is empty or any entry is < 1,
// ErrNoOrbitals if numOrbitals < 1.
func NewContext(meshPoints []int, numOrbitals int) (*Context, error) {
	if len(meshPoints) == 0 {
		return nil, ErrEmptyMesh
	}
	cells := 1
	for _, m := range meshPoints {
		if m < 1 {
			return nil, ErrEmptyMesh
		}
		cells *= m
	}
	if numOrbitals < 1 {
		return nil, ErrNoOrbitals
	}
	mesh := make([]int, len(meshPoints))
	copy(mesh, meshPoints)

	return &Context{
		meshPoints:  mesh,
		numOrbitals: numOrbitals,
		numCells:    cells,
	}, nil
}

// Dimensions returns the number of mesh dimensions.
func (c *Context) Dimensions() int {
	return len(c.meshPoints)
}

// MeshPoints returns a copy of the per-dimension mesh sizes.
func (c *Context) MeshPoints() []int {
	mesh := make([]int, len(c.meshPoints))
	copy(mesh, c.meshPoints)
	return mesh
}

// NumOrbitals returns the number of orbitals per mesh point.
func (c *Context) NumOrbitals() int {
	return c.numOrbitals
}

// NumCells returns the total number of mesh points across all dimensions.
func (c *Context) NumCells() int {
	return c.numCells
}

// RequireTwoDimensional returns ErrDimensionality unless the mesh has
// exactly two dimensions. Stages and layout transformations that assume a
// (kx, ky) structure call this before touching any data.
func (c *Context) RequireTwoDimensional() error {
	if len(c.meshPoints) != 2 {
		return ErrDimensionality
	}
	return nil
}

// InBounds reports whether (kx, ky) lies within a two-dimensional mesh.
func (c *Context) InBounds(kx, ky int) bool {
	return kx >= 0 && kx < c.meshPoints[0] && ky >= 0 && ky < c.meshPoints[1]
}

// Cell maps a 2-D mesh point to its row-major linear index: kx·N_ky + ky.
func (c *Context) Cell(kx, ky int) int {
	return kx*c.meshPoints[1] + ky
}

// MeshPoint inverts Cell, returning the (kx, ky) pair of a linear index.
func (c *Context) MeshPoint(cell int) (kx, ky int) {
	return cell / c.meshPoints[1], cell % c.meshPoints[1]
}
