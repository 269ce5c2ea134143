package domain

import (
	"context"
	"time"
)

type Seed struct {
	ID                    string
	Name                  string
	QuantityAvailable     float64
	CompatibleFertilizers []string
	MaxQuantityPerAcre    float64
	PricePerKg            float64
	PricingID             string
	Timestamp             time.Time
}

type SeedUpdate struct {
	Name                  string
	QuantityAvailable     float64
	CompatibleFertilizers []string
	MaxQuantityPerAcre    float64
	PricePerKg            float64
	PricingID             string
}

type SeedRepository interface {
	Create(ctx context.Context, s *Seed) (*Seed, error)
	GetByID(ctx context.Context, id string) (*Seed, error)
	Update(ctx context.Context, id string, upd SeedUpdate) (*Seed, error)
	List(ctx context.Context, page, perPage int) ([]Seed, int64, error)
	ListAll(ctx context.Context) ([]Seed, error)
	Delete(ctx context.Context, id string) error
}
