package flex

import (
	"flexkit/matsubara"
	"flexkit/property"
)

// The six stage contracts. Each stage is a pure function of its declared
// inputs plus the shared configuration windows; implementations hold no
// state across calls beyond what the solver threads through explicitly.
// A stage that cannot handle the model's mesh dimensionality returns
// kspace.ErrDimensionality, which the solver treats as fatal.
//
// Stages may parallelize internally (across mesh cells or energy samples)
// as long as they present one synchronous result.

// BarePropagator computes the non-interacting propagator G0.
type BarePropagator interface {
	ComputeBarePropagator(model Model, fermionic matsubara.Window) (*property.Propagator, error)
}

// BareResponse computes the bare two-particle response from the current
// propagator.
type BareResponse interface {
	ComputeBareResponse(model Model, g *property.Propagator, bosonic, fermionic matsubara.Window) (*property.Response, error)
}

// RenormalizedResponse dresses the bare response into the two physically
// distinct channels (charge and spin).
type RenormalizedResponse interface {
	ComputeRenormalizedResponses(model Model, bare *property.Response, c Couplings) (charge, spin *property.Response, err error)
}

// EffectiveInteraction derives the interaction vertex from the two
// renormalized channels.
type EffectiveInteraction interface {
	ComputeEffectiveInteraction(model Model, charge, spin *property.Response, c Couplings) (*property.Vertex, error)
}

// SelfEnergy computes the self-energy in the reduced layout.
type SelfEnergy interface {
	ComputeSelfEnergy(model Model, v *property.Vertex, g *property.Propagator, fermionic, bosonic matsubara.Window) (*property.SelfEnergy, error)
}

// PropagatorUpdate dresses the bare propagator with an expanded-layout
// self-energy, producing the next propagator iterate.
type PropagatorUpdate interface {
	UpdatePropagator(model Model, bare *property.Propagator, sigma *property.SelfEnergy) (*property.Propagator, error)
}

// Func adapters let plain functions satisfy the stage contracts.

// BarePropagatorFunc adapts a function to the BarePropagator interface.
type BarePropagatorFunc func(model Model, fermionic matsubara.Window) (*property.Propagator, error)

// ComputeBarePropagator calls f.
func (f BarePropagatorFunc) ComputeBarePropagator(model Model, fermionic matsubara.Window) (*property.Propagator, error) {
	return f(model, fermionic)
}

// BareResponseFunc adapts a function to the BareResponse interface.
type BareResponseFunc func(model Model, g *property.Propagator, bosonic, fermionic matsubara.Window) (*property.Response, error)

// ComputeBareResponse calls f.
func (f BareResponseFunc) ComputeBareResponse(model Model, g *property.Propagator, bosonic, fermionic matsubara.Window) (*property.Response, error) {
	return f(model, g, bosonic, fermionic)
}

// RenormalizedResponseFunc adapts a function to the RenormalizedResponse interface.
type RenormalizedResponseFunc func(model Model, bare *property.Response, c Couplings) (*property.Response, *property.Response, error)

// ComputeRenormalizedResponses calls f.
func (f RenormalizedResponseFunc) ComputeRenormalizedResponses(model Model, bare *property.Response, c Couplings) (*property.Response, *property.Response, error) {
	return f(model, bare, c)
}

// EffectiveInteractionFunc adapts a function to the EffectiveInteraction interface.
type EffectiveInteractionFunc func(model Model, charge, spin *property.Response, c Couplings) (*property.Vertex, error)

// ComputeEffectiveInteraction calls f.
func (f EffectiveInteractionFunc) ComputeEffectiveInteraction(model Model, charge, spin *property.Response, c Couplings) (*property.Vertex, error) {
	return f(model, charge, spin, c)
}

// SelfEnergyFunc adapts a function to the SelfEnergy interface.
type SelfEnergyFunc func(model Model, v *property.Vertex, g *property.Propagator, fermionic, bosonic matsubara.Window) (*property.SelfEnergy, error)

// ComputeSelfEnergy calls f.
func (f SelfEnergyFunc) ComputeSelfEnergy(model Model, v *property.Vertex, g *property.Propagator, fermionic, bosonic matsubara.Window) (*property.SelfEnergy, error) {
	return f(model, v, g, fermionic, bosonic)
}

// PropagatorUpdateFunc adapts a function to the PropagatorUpdate interface.
type PropagatorUpdateFunc func(model Model, bare *property.Propagator, sigma *property.SelfEnergy) (*property.Propagator, error)

// UpdatePropagator calls f.
func (f PropagatorUpdateFunc) UpdatePropagator(model Model, bare *property.Propagator, sigma *property.SelfEnergy) (*property.Propagator, error) {
	return f(model, bare, sigma)
}

// StageSet bundles one implementation of each stage contract.
type StageSet struct {
	BarePropagator       BarePropagator
	BareResponse         BareResponse
	RenormalizedResponse RenormalizedResponse
	EffectiveInteraction EffectiveInteraction
	SelfEnergy           SelfEnergy
	PropagatorUpdate     PropagatorUpdate
}

// validate returns ErrMissingStage if any member is nil.
func (s StageSet) validate() error {
	if s.BarePropagator == nil || s.BareResponse == nil ||
		s.RenormalizedResponse == nil || s.EffectiveInteraction == nil ||
		s.SelfEnergy == nil || s.PropagatorUpdate == nil {
		return ErrMissingStage
	}
	return nil
}
