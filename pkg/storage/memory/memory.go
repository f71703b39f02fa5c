// Package memory implements storage.CarStorage on top of a mutex-guarded
// slice. Nothing is persisted: the collection lives as long as the process.
package memory

import (
	"carlot/pkg/domain"
	"carlot/pkg/logger"
	"carlot/pkg/serrors"
	"carlot/pkg/storage"
	"context"
	"sync"

	"go.uber.org/zap"
)

// Options configures the in-memory store.
type Options struct {
	// Policy decides which inserts are rejected as duplicates. Nil means
	// storage.UniqueByID.
	Policy storage.UniquenessPolicy
}

// Memory is an in-memory car collection. It is safe for concurrent use.
type Memory struct {
	policy storage.UniquenessPolicy

	mu   sync.RWMutex
	cars []domain.Car
	// keys holds the policy key of every stored car.
	keys map[string]struct{}
}

var _ storage.CarStorage = (*Memory)(nil)

// New creates an empty store.
func New(options Options) *Memory {
	policy := options.Policy
	if policy == nil {
		policy = storage.UniqueByID()
	}

	return &Memory{
		policy: policy,
		keys:   make(map[string]struct{}),
	}
}

// Policy returns the uniqueness policy the store enforces.
func (m *Memory) Policy() storage.UniquenessPolicy {
	return m.policy
}

// All returns a copy of every stored car in insertion order.
func (m *Memory) All(_ context.Context) []domain.Car {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Car, 0, len(m.cars))
	for i := range m.cars {
		out = append(out, clone(m.cars[i]))
	}

	return out
}

// FindByBrand returns copies of the cars of the given brand in insertion order.
func (m *Memory) FindByBrand(_ context.Context, brand string) []domain.Car {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Car, 0)
	for i := range m.cars {
		if m.cars[i].Brand == brand {
			out = append(out, clone(m.cars[i]))
		}
	}

	return out
}

// ByID returns a copy of the car with the given ID, or nil.
func (m *Memory) ByID(_ context.Context, ID domain.CarID) *domain.Car {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.cars {
		if m.cars[i].ID == ID {
			car := clone(m.cars[i])

			return &car
		}
	}

	return nil
}

// ByLicensePlate returns a copy of the first car with the given plate, or nil.
func (m *Memory) ByLicensePlate(_ context.Context, plate domain.LicensePlate) *domain.Car {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.cars {
		if p := m.cars[i].LicensePlate; p != nil && *p == plate {
			car := clone(m.cars[i])

			return &car
		}
	}

	return nil
}

// Add appends car unless its policy key is already taken.
func (m *Memory) Add(ctx context.Context, car domain.Car) error {
	key := m.policy.Key(car)

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.keys[key]; ok {
		logger.Debug(ctx, "rejected duplicate car",
			zap.Stringer("id", car.ID),
			zap.String("policy", m.policy.Name()))

		return serrors.Wrap(serrors.ErrConflict, storage.ErrDuplicateEntry,
			"car %s (%s %s) already exists", car.ID, car.Brand, car.Model)
	}

	m.keys[key] = struct{}{}
	m.cars = append(m.cars, clone(car))

	return nil
}

// Len returns the number of stored cars.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.cars)
}

// clone copies car so that callers never share pointer fields with the store.
func clone(car domain.Car) domain.Car {
	if car.LicensePlate != nil {
		p := *car.LicensePlate
		car.LicensePlate = &p
	}
	if car.Year != nil {
		y := *car.Year
		car.Year = &y
	}

	return car
}
