package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInput marks malformed engine input. It is the caller's bug to
// fix, not a runtime condition to recover from, so validation fails fast
// instead of coercing values.
var ErrInvalidInput = errors.New("invalid input")

type VehicleType string

const (
	VehicleLight     VehicleType = "light"
	VehicleMedium    VehicleType = "medium"
	VehicleHeavy     VehicleType = "heavy"
	VehicleContainer VehicleType = "container"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Represents a single pending shipment: a pickup point, a drop point, a
// weight, and an optional availability window. Shipments are created by the
// shipper-facing system and consumed read-only by the pooling engine.
// ReadyAt/DueBy are both optional; a shipment without a complete window is
// treated as time-flexible.
type Shipment struct {
	ID                  string
	Pickup              Coordinate
	Drop                Coordinate
	WeightKg            float64
	ReadyAt             *time.Time
	DueBy               *time.Time
	VehicleTypeRequired VehicleType // empty means no requirement
	Priority            Priority    // empty means unspecified
}

// HasWindow reports whether the shipment declares a complete availability window.
func (s Shipment) HasWindow() bool {
	return s.ReadyAt != nil && s.DueBy != nil
}

func (s Shipment) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("%w: shipment id must be non-empty", ErrInvalidInput)
	}
	if err := s.Pickup.Validate(); err != nil {
		return fmt.Errorf("shipment %q: pickup: %w", s.ID, err)
	}
	if err := s.Drop.Validate(); err != nil {
		return fmt.Errorf("shipment %q: drop: %w", s.ID, err)
	}
	if s.WeightKg < 0 {
		return fmt.Errorf("%w: shipment %q: weight %vkg must be non-negative", ErrInvalidInput, s.ID, s.WeightKg)
	}
	if s.ReadyAt != nil && s.DueBy != nil && s.DueBy.Before(*s.ReadyAt) {
		return fmt.Errorf("%w: shipment %q: due_by %s before ready_at %s",
			ErrInvalidInput, s.ID, s.DueBy.Format(time.RFC3339), s.ReadyAt.Format(time.RFC3339))
	}
	if s.VehicleTypeRequired != "" && !validVehicleType(s.VehicleTypeRequired) {
		return fmt.Errorf("%w: shipment %q: unknown vehicle type %q", ErrInvalidInput, s.ID, s.VehicleTypeRequired)
	}
	if s.Priority != "" && !validPriority(s.Priority) {
		return fmt.Errorf("%w: shipment %q: unknown priority %q", ErrInvalidInput, s.ID, s.Priority)
	}
	return nil
}

func validVehicleType(v VehicleType) bool {
	switch v {
	case VehicleLight, VehicleMedium, VehicleHeavy, VehicleContainer:
		return true
	}
	return false
}

func validPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}
