package domain

import (
	"context"
	"time"
)

type Fertilizer struct {
	ID                 string
	Name               string
	QuantityAvailable  float64
	MaxQuantityPerAcre float64
	PricePerKg         float64
	PricingID          string
	Timestamp          time.Time
}

type FertilizerUpdate struct {
	Name               string
	QuantityAvailable  float64
	MaxQuantityPerAcre float64
	PricePerKg         float64
	PricingID          string
}

type FertilizerRepository interface {
	Create(ctx context.Context, f *Fertilizer) (*Fertilizer, error)
	GetByID(ctx context.Context, id string) (*Fertilizer, error)
	Update(ctx context.Context, id string, upd FertilizerUpdate) (*Fertilizer, error)
	List(ctx context.Context, page, perPage int) ([]Fertilizer, int64, error)
	ListAll(ctx context.Context) ([]Fertilizer, error)
	Delete(ctx context.Context, id string) error
}
