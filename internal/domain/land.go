package domain

import (
	"context"
	"time"
)

type Land struct {
	ID          string
	FarmerID    string
	LandAddress string
	LandUPI     string
	SizeInAcres float64
	Timestamp   time.Time
}

type LandUpdate struct {
	LandAddress string
	LandUPI     string
	SizeInAcres float64
}

type LandRepository interface {
	Create(ctx context.Context, l *Land) (*Land, error)
	GetByID(ctx context.Context, id string) (*Land, error)
	Update(ctx context.Context, id string, upd LandUpdate) (*Land, error)
	List(ctx context.Context, page, perPage int) ([]Land, int64, error)
	ListAll(ctx context.Context) ([]Land, error)
	ListByFarmer(ctx context.Context, farmerID string) ([]Land, error)
}
