package strategy

import (
	"errors"
	"fmt"
)

// ErrUnknownStrategy is returned by Create for an unregistered identifier.
var ErrUnknownStrategy = errors.New("unknown strategy")

// Descriptor carries the display metadata of a registered strategy.
type Descriptor struct {
	ID          string
	Name        string
	Description string
}

// descriptors is the fixed registration order; enumeration never depends on
// map iteration.
var descriptors = []Descriptor{
	{ID: "momentum", Name: "Momentum Strategy", Description: "Identifies top and bottom performers based on returns"},
	{ID: "rebalancing", Name: "Rebalancing Strategy", Description: "Suggests portfolio rebalancing to maintain equal weights"},
}

// Available returns all registered strategies in declared order.
func Available() []Descriptor {
	out := make([]Descriptor, len(descriptors))
	copy(out, descriptors)
	return out
}

// Create returns a fresh instance of the strategy with the given identifier.
func Create(id string) (Strategy, error) {
	switch id {
	case "momentum":
		return NewMomentumStrategy(), nil
	case "rebalancing":
		return NewRebalancingStrategy(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, id)
	}
}
