package domain

import (
	"github.com/google/uuid"
)

// CarID uniquely identifies a car.
// It wraps uuid.UUID to provide type safety at the domain layer.
type CarID uuid.UUID

// NewCarID returns a random car identifier.
func NewCarID() CarID {
	return CarID(uuid.New())
}

// ParseCarID parses the canonical textual form of a car identifier.
func ParseCarID(s string) (CarID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return CarID{}, err //nolint: wrapcheck
	}

	return CarID(id), nil
}

func (id CarID) String() string {
	return uuid.UUID(id).String()
}

// LicensePlate is a formatted vehicle registration string. Its format is
// produced by a generator, never validated.
type LicensePlate string

func (p LicensePlate) String() string {
	return string(p)
}

// Car is a single record of the car collection.
type Car struct {
	// ID is the unique identifier of the car.
	ID CarID
	// LicensePlate is nil for cars that never got a plate assigned.
	LicensePlate *LicensePlate

	Brand string
	Model string
	// Year is free text, e.g. "1969". Nil when unknown.
	Year *string
}

// NewCar is the payload used to register a car. The plate is always assigned
// by the application.
type NewCar struct {
	ID    CarID
	Brand string
	Model string
	Year  *string
}
