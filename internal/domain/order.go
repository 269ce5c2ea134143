package domain

import (
	"context"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusApproved OrderStatus = "approved"
	OrderStatusRejected OrderStatus = "rejected"
)

type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusUnpaid PaymentStatus = "unpaid"
)

type Order struct {
	ID                        string
	FarmerID                  string
	LandID                    string
	FertilizerID              string
	SeedID                    string
	FertilizerQuantityOrdered float64
	SeedQuantityOrdered       float64
	Status                    OrderStatus
	PaymentStatus             PaymentStatus
	SeedPricePerUnit          float64
	SeedTotalPrice            float64
	FertilizerPricePerUnit    float64
	FertilizerTotalPrice      float64
	Timestamp                 time.Time
}

type OrderStatusUpdate struct {
	Status        OrderStatus
	PaymentStatus PaymentStatus
}

type OrderRepository interface {
	Create(ctx context.Context, o *Order) (*Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	UpdateStatus(ctx context.Context, id string, upd OrderStatusUpdate) (*Order, error)
	// List filters by farmer when farmerID is non-empty.
	List(ctx context.Context, farmerID string, page, perPage int) ([]Order, int64, error)
}
