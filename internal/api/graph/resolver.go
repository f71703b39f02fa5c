package graph

import (
	"carlot/internal/garage"
	"carlot/pkg/domain"
	"carlot/pkg/serrors"
	"context"
	"errors"

	graphql "github.com/graph-gophers/graphql-go"
)

// Resolver is the root resolver serving both Query and Mutation fields.
type Resolver struct {
	garage garage.Garage
}

// NewResolver creates a root resolver backed by g.
func NewResolver(g garage.Garage) *Resolver {
	return &Resolver{garage: g}
}

func (r *Resolver) cars(cars []domain.Car) []*CarResolver {
	out := make([]*CarResolver, 0, len(cars))
	for i := range cars {
		out = append(out, &CarResolver{car: cars[i], garage: r.garage})
	}

	return out
}

// Cars resolves Query.cars.
func (r *Resolver) Cars(ctx context.Context) []*CarResolver {
	return r.cars(r.garage.Cars(ctx))
}

// CarByBrand resolves Query.carByBrand.
func (r *Resolver) CarByBrand(ctx context.Context, args struct{ Brand string }) []*CarResolver {
	return r.cars(r.garage.CarsByBrand(ctx, args.Brand))
}

// CarByID resolves Query.carById. An unknown id resolves to null.
func (r *Resolver) CarByID(ctx context.Context, args struct{ ID UUID }) (*CarResolver, error) {
	car, err := r.garage.CarByID(ctx, domain.CarID(args.ID))
	if errors.Is(err, serrors.ErrNotFound) {
		return nil, nil //nolint: nilnil
	}
	if err != nil {
		return nil, NewError(ctx, err)
	}

	return &CarResolver{car: *car, garage: r.garage}, nil
}

// CarByLicensePlate resolves Query.carByLicensePlate. An unknown plate
// resolves to null.
func (r *Resolver) CarByLicensePlate(ctx context.Context, args struct{ LicensePlate LicensePlate }) (*CarResolver, error) {
	car, err := r.garage.CarByLicensePlate(ctx, domain.LicensePlate(args.LicensePlate))
	if errors.Is(err, serrors.ErrNotFound) {
		return nil, nil //nolint: nilnil
	}
	if err != nil {
		return nil, NewError(ctx, err)
	}

	return &CarResolver{car: *car, garage: r.garage}, nil
}

// GenerateLicensePlate resolves Query.generateLicensePlate.
func (r *Resolver) GenerateLicensePlate(ctx context.Context) LicensePlate {
	return LicensePlate(r.garage.GenerateLicensePlate(ctx))
}

// GenerateCarID resolves Query.generateCarId.
func (r *Resolver) GenerateCarID(ctx context.Context) UUID {
	return UUID(r.garage.GenerateCarID(ctx))
}

// UUIDThing resolves Query.uuidThing.
func (r *Resolver) UUIDThing(ctx context.Context) *UUIDThingResolver {
	return &UUIDThingResolver{thing: r.garage.UUIDThing(ctx)}
}

// NewCarInput is the NewCar input object.
type NewCarInput struct {
	ID    UUID
	Brand string
	Model string
	Year  *string
}

// AddCar resolves Mutation.addCar.
func (r *Resolver) AddCar(ctx context.Context, args struct{ NewCar NewCarInput }) (*CarResolver, error) {
	car, err := r.garage.AddCar(ctx, domain.NewCar{
		ID:    domain.CarID(args.NewCar.ID),
		Brand: args.NewCar.Brand,
		Model: args.NewCar.Model,
		Year:  args.NewCar.Year,
	})
	if err != nil {
		return nil, NewError(ctx, err)
	}

	return &CarResolver{car: *car, garage: r.garage}, nil
}

// CarResolver resolves the Car type.
type CarResolver struct {
	car    domain.Car
	garage garage.Garage
}

func (c *CarResolver) ID() UUID { return UUID(c.car.ID) }

func (c *CarResolver) LicensePlate() *LicensePlate {
	if c.car.LicensePlate == nil {
		return nil
	}
	p := LicensePlate(*c.car.LicensePlate)

	return &p
}

func (c *CarResolver) Brand() string { return c.car.Brand }

func (c *CarResolver) Model() string { return c.car.Model }

func (c *CarResolver) Year() *string { return c.car.Year }

// Owners is only computed when the query selects it.
func (c *CarResolver) Owners(ctx context.Context) []*PersonResolver {
	persons := c.garage.Owners(ctx, c.car)
	out := make([]*PersonResolver, 0, len(persons))
	for _, p := range persons {
		out = append(out, &PersonResolver{person: p})
	}

	return out
}

// PersonResolver resolves the Person type.
type PersonResolver struct {
	person domain.Person
}

func (p *PersonResolver) ID() graphql.ID { return graphql.ID(p.person.ID) }

func (p *PersonResolver) Name() string { return p.person.Name }

// UUIDThingResolver resolves the UUIDThing type.
type UUIDThingResolver struct {
	thing domain.UUIDThing
}

func (u *UUIDThingResolver) UUID() UUID { return UUID(u.thing.UUID) }

func (u *UUIDThingResolver) Name() string { return u.thing.Name }

func (u *UUIDThingResolver) Date() Date { return Date(u.thing.Date) }

func (u *UUIDThingResolver) DateTime() DateTime { return DateTime(u.thing.DateTime) }
