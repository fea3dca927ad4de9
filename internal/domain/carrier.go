package domain

import "fmt"

// Represents an available carrier: its current location, remaining weight
// capacity, and how far it is willing to travel for a pickup. Optional
// numeric fields are pointers; nil means the carrier declared nothing, which
// the scorer treats as neutral rather than as zero.
type Carrier struct {
	ID               string
	CurrentLocation  Coordinate
	CapacityWeightKg *float64
	CurrentLoadKg    float64
	ServiceRadiusKm  *float64
	VehicleTypes     []VehicleType
	TrafficAdaptive  bool
}

func (c Carrier) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("%w: carrier id must be non-empty", ErrInvalidInput)
	}
	if err := c.CurrentLocation.Validate(); err != nil {
		return fmt.Errorf("carrier %q: location: %w", c.ID, err)
	}
	if c.CapacityWeightKg != nil && *c.CapacityWeightKg < 0 {
		return fmt.Errorf("%w: carrier %q: capacity %vkg must be non-negative", ErrInvalidInput, c.ID, *c.CapacityWeightKg)
	}
	if c.CurrentLoadKg < 0 {
		return fmt.Errorf("%w: carrier %q: current load %vkg must be non-negative", ErrInvalidInput, c.ID, c.CurrentLoadKg)
	}
	if c.ServiceRadiusKm != nil && *c.ServiceRadiusKm < 0 {
		return fmt.Errorf("%w: carrier %q: service radius %vkm must be non-negative", ErrInvalidInput, c.ID, *c.ServiceRadiusKm)
	}
	for _, v := range c.VehicleTypes {
		if !validVehicleType(v) {
			return fmt.Errorf("%w: carrier %q: unknown vehicle type %q", ErrInvalidInput, c.ID, v)
		}
	}
	return nil
}
