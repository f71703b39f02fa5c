package storage

import (
	"carlot/pkg/domain"
	"fmt"
)

// UniquenessPolicy decides which cars collide on insert: two cars with the
// same key cannot both be stored.
type UniquenessPolicy interface {
	// Name is the configuration name of the policy.
	Name() string
	// Key derives the duplicate-check key of car.
	Key(car domain.Car) string
}

const (
	// PolicyByID is the configuration name of UniqueByID.
	PolicyByID = "id"
	// PolicyByBrandModel is the configuration name of UniqueByBrandModel.
	PolicyByBrandModel = "brand_model"
)

type byID struct{}

func (byID) Name() string { return PolicyByID }

func (byID) Key(car domain.Car) string { return car.ID.String() }

type byBrandModel struct{}

func (byBrandModel) Name() string { return PolicyByBrandModel }

// Key joins brand and model with a NUL byte, which cannot appear in either.
func (byBrandModel) Key(car domain.Car) string { return car.Brand + "\x00" + car.Model }

// UniqueByID rejects a car whose ID is already stored.
func UniqueByID() UniquenessPolicy { return byID{} }

// UniqueByBrandModel rejects a car whose brand and model pair is already stored.
func UniqueByBrandModel() UniquenessPolicy { return byBrandModel{} }

// ParsePolicy returns the policy registered under name. An empty name selects
// UniqueByID.
func ParsePolicy(name string) (UniquenessPolicy, error) {
	switch name {
	case "", PolicyByID:
		return UniqueByID(), nil
	case PolicyByBrandModel:
		return UniqueByBrandModel(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}
