package domain

import (
	"context"
	"time"
)

type ProductType string

const (
	ProductTypeSeed       ProductType = "Seed"
	ProductTypeFertilizer ProductType = "Fertilizer"
)

type Pricing struct {
	ID          string
	ProductType ProductType
	ProductID   string
	PricePerKg  float64
	Timestamp   time.Time
}

type PricingRepository interface {
	Create(ctx context.Context, p *Pricing) (*Pricing, error)
	GetByID(ctx context.Context, id string) (*Pricing, error)
	GetByProductID(ctx context.Context, productID string) (*Pricing, error)
	// UpdatePrice updates by pricing id when id is set, otherwise by product id.
	UpdatePrice(ctx context.Context, id, productID string, pricePerKg float64) (*Pricing, error)
	List(ctx context.Context, page, perPage int) ([]Pricing, int64, error)
	ListAll(ctx context.Context) ([]Pricing, error)
}
