// Package garage is the application layer of the car service. It combines the
// car storage with the plate generator and is the only dependency of the API
// boundaries (GraphQL and REST).
package garage

import (
	"carlot/internal/config"
	"carlot/pkg/domain"
	"carlot/pkg/logger"
	"carlot/pkg/plate"
	"carlot/pkg/serrors"
	"carlot/pkg/storage"
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentationName = "carlot/internal/garage"

// DefaultOwnersPerCar is how many owners a car reports when Options leaves it unset.
const DefaultOwnersPerCar = 2

// persons is the fixed pool car owners are drawn from.
var persons = []domain.Person{ //nolint: gochecknoglobals
	{ID: "1", Name: "Keith Richards"},
	{ID: "2", Name: "Steven Tyler"},
	{ID: "3", Name: "Samantha Fox"},
	{ID: "4", Name: "Bonnie Raitt"},
}

// Options tune the garage behavior. They are typically derived from
// application configuration.
type Options struct {
	// OwnersPerCar is how many random owners Owners returns, capped at the
	// size of the owner pool.
	OwnersPerCar int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		OwnersPerCar: cfg.Garage.OwnersPerCar,
	}
}

// Deps are the collaborators of the garage.
type Deps struct {
	Storage storage.CarStorage
	Plates  plate.Generator
	// MeterProvider receives the garage counters. Nil falls back to the
	// global provider.
	MeterProvider metric.MeterProvider
	// TracerProvider receives one span per operation. Nil falls back to the
	// global provider.
	TracerProvider trace.TracerProvider
}

type garage struct {
	options Options
	storage storage.CarStorage
	plates  plate.Generator
	tracer  trace.Tracer
	now     func() time.Time

	carsAdded       metric.Int64Counter
	carsRejected    metric.Int64Counter
	platesGenerated metric.Int64Counter
}

// Cars returns every stored car.
func (g *garage) Cars(ctx context.Context) []domain.Car {
	ctx, span := g.tracer.Start(ctx, "garage.Cars")
	defer span.End()

	return g.storage.All(ctx)
}

// CarsByBrand returns the stored cars of the given brand.
func (g *garage) CarsByBrand(ctx context.Context, brand string) []domain.Car {
	ctx, span := g.tracer.Start(ctx, "garage.CarsByBrand", trace.WithAttributes(attribute.String("brand", brand)))
	defer span.End()

	return g.storage.FindByBrand(ctx, brand)
}

// CarByID returns the car with the given ID or a not-found error.
func (g *garage) CarByID(ctx context.Context, ID domain.CarID) (*domain.Car, error) {
	ctx, span := g.tracer.Start(ctx, "garage.CarByID", trace.WithAttributes(attribute.Stringer("id", ID)))
	defer span.End()

	car := g.storage.ByID(ctx, ID)
	if car == nil {
		return nil, serrors.With(serrors.ErrNotFound, "car %s not found", ID)
	}

	return car, nil
}

// CarByLicensePlate returns the car carrying the given plate or a not-found error.
func (g *garage) CarByLicensePlate(ctx context.Context, lp domain.LicensePlate) (*domain.Car, error) {
	ctx, span := g.tracer.Start(ctx, "garage.CarByLicensePlate",
		trace.WithAttributes(attribute.Stringer("licensePlate", lp)))
	defer span.End()

	car := g.storage.ByLicensePlate(ctx, lp)
	if car == nil {
		return nil, serrors.With(serrors.ErrNotFound, "car with plate %q not found", lp)
	}

	return car, nil
}

// AddCar registers a new car with a freshly generated plate. A car colliding
// with an existing one under the storage uniqueness policy is rejected with a
// conflict error.
func (g *garage) AddCar(ctx context.Context, newCar domain.NewCar) (*domain.Car, error) {
	ctx, span := g.tracer.Start(ctx, "garage.AddCar", trace.WithAttributes(
		attribute.Stringer("id", newCar.ID),
		attribute.String("brand", newCar.Brand),
		attribute.String("model", newCar.Model),
	))
	defer span.End()

	p := g.generatePlate(ctx)
	car := domain.Car{
		ID:           newCar.ID,
		LicensePlate: &p,
		Brand:        newCar.Brand,
		Model:        newCar.Model,
		Year:         newCar.Year,
	}

	if err := g.storage.Add(ctx, car); err != nil {
		g.carsRejected.Add(ctx, 1)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, fmt.Errorf("could not add car: %w", err)
	}
	g.carsAdded.Add(ctx, 1, metric.WithAttributes(attribute.String("brand", car.Brand)))

	logger.Info(ctx, "car added",
		zap.Stringer("trace_id", span.SpanContext().TraceID()),
		zap.Stringer("id", car.ID),
		zap.Stringer("licensePlate", p),
		zap.String("brand", car.Brand),
		zap.String("model", car.Model))

	return &car, nil
}

// GenerateLicensePlate returns a new random plate without storing anything.
func (g *garage) GenerateLicensePlate(ctx context.Context) domain.LicensePlate {
	ctx, span := g.tracer.Start(ctx, "garage.GenerateLicensePlate")
	defer span.End()

	return g.generatePlate(ctx)
}

func (g *garage) generatePlate(ctx context.Context) domain.LicensePlate {
	p := g.plates.Generate()
	g.platesGenerated.Add(ctx, 1)

	return p
}

// GenerateCarID returns a new random car identifier.
func (g *garage) GenerateCarID(_ context.Context) domain.CarID {
	return domain.NewCarID()
}

// Owners returns random owners of car. The owners are not stored, every call
// draws again.
func (g *garage) Owners(ctx context.Context, car domain.Car) []domain.Person {
	logger.Info(ctx, "fetching owners for car", zap.Stringer("id", car.ID))

	n := min(g.options.OwnersPerCar, len(persons))
	out := make([]domain.Person, 0, n)
	for _, i := range rand.Perm(len(persons))[:n] { //nolint: gosec
		out = append(out, persons[i])
	}

	return out
}

// UUIDThing returns a record carrying a random UUID, today's date and the
// current time.
func (g *garage) UUIDThing(_ context.Context) domain.UUIDThing {
	now := g.now()

	return domain.UUIDThing{
		UUID:     uuid.New(),
		Name:     "Foo",
		Date:     time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		DateTime: now,
	}
}

// Option customizes a garage created by New.
type Option func(*garage)

// WithClock replaces time.Now as the garage's time source.
func WithClock(now func() time.Time) Option {
	return func(g *garage) {
		g.now = now
	}
}

// New creates a Garage backed by the given dependencies.
func New(deps Deps, options Options, opts ...Option) (Garage, error) {
	if options.OwnersPerCar <= 0 {
		options.OwnersPerCar = DefaultOwnersPerCar
	}

	mp := deps.MeterProvider
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	meter := mp.Meter(instrumentationName)

	tp := deps.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	g := &garage{
		options: options,
		storage: deps.Storage,
		plates:  deps.Plates,
		tracer:  tp.Tracer(instrumentationName),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}

	var err error
	if g.carsAdded, err = meter.Int64Counter("garage.cars.added",
		metric.WithDescription("Number of cars added to the store")); err != nil {
		return nil, fmt.Errorf("could not create counter: %w", err)
	}
	if g.carsRejected, err = meter.Int64Counter("garage.cars.rejected",
		metric.WithDescription("Number of car inserts rejected as duplicates")); err != nil {
		return nil, fmt.Errorf("could not create counter: %w", err)
	}
	if g.platesGenerated, err = meter.Int64Counter("garage.plates.generated",
		metric.WithDescription("Number of license plates generated")); err != nil {
		return nil, fmt.Errorf("could not create counter: %w", err)
	}

	return g, nil
}
