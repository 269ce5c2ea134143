package dto

type CreateOrderRequest struct {
	FarmerID                  string  `json:"farmerID" validate:"required"`
	LandID                    string  `json:"landID" validate:"required"`
	FertilizerID              string  `json:"fertilizerID" validate:"omitempty"`
	SeedID                    string  `json:"seedID" validate:"omitempty"`
	FertilizerQuantityOrdered float64 `json:"fertilizerQuantityOrdered" validate:"omitempty,gt=0"`
	SeedQuantityOrdered       float64 `json:"seedQuantityOrdered" validate:"omitempty,gt=0"`
}

type UpdateOrderRequest struct {
	Status        string `json:"status" validate:"omitempty,oneof=pending approved rejected"`
	PaymentStatus string `json:"paymentStatus" validate:"omitempty,oneof=paid unpaid"`
}
