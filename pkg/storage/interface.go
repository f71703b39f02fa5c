// Package storage defines the storage interfaces that the application relies
// on. Concrete backends (currently the in-memory store) live in sub-packages.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"carlot/pkg/domain"
	"context"
)

// CarStorage holds the car collection.
type CarStorage interface {
	// All returns a snapshot of every stored car in insertion order. Later
	// mutations of the store do not affect the returned slice.
	All(ctx context.Context) []domain.Car
	// FindByBrand returns the cars whose brand equals brand exactly, in
	// insertion order.
	FindByBrand(ctx context.Context, brand string) []domain.Car
	// ByID returns the car with the given ID, or nil when there is none.
	ByID(ctx context.Context, ID domain.CarID) *domain.Car
	// ByLicensePlate returns the first car, in insertion order, carrying
	// exactly the given plate, or nil when there is none.
	ByLicensePlate(ctx context.Context, plate domain.LicensePlate) *domain.Car
	// Add inserts car. It returns an error matching ErrDuplicateEntry (and
	// serrors.ErrConflict) when a car with the same uniqueness key is already
	// stored, in which case the store is left unchanged.
	Add(ctx context.Context, car domain.Car) error
}
