package domain

import "fmt"

// Immutable geographic coordinate (latitude, longitude) in decimal degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Validate checks that the coordinate lies inside the valid WGS84 range.
func (c Coordinate) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("%w: latitude %v out of range [-90,90]", ErrInvalidInput, c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: longitude %v out of range [-180,180]", ErrInvalidInput, c.Longitude)
	}
	return nil
}
