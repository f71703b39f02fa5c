package garage

import (
	"carlot/pkg/domain"
	"context"
)

//go:generate mockgen -package mockgarage -source=interface.go -destination=mock/mockgarage.go *
type Garage interface {
	Cars(ctx context.Context) []domain.Car
	CarsByBrand(ctx context.Context, brand string) []domain.Car
	CarByID(ctx context.Context, ID domain.CarID) (*domain.Car, error)
	CarByLicensePlate(ctx context.Context, plate domain.LicensePlate) (*domain.Car, error)
	AddCar(ctx context.Context, newCar domain.NewCar) (*domain.Car, error)
	GenerateLicensePlate(ctx context.Context) domain.LicensePlate
	GenerateCarID(ctx context.Context) domain.CarID
	Owners(ctx context.Context, car domain.Car) []domain.Person
	UUIDThing(ctx context.Context) domain.UUIDThing
}
