package dto

type CreatePricingRequest struct {
	ProductType string  `json:"productType" validate:"required,oneof=Seed Fertilizer"`
	ProductID   string  `json:"productID" validate:"required"`
	PricePerKg  float64 `json:"pricePerKg" validate:"required,gt=0"`
}

type UpdatePricingRequest struct {
	ProductID  string  `json:"productID" validate:"omitempty"`
	PricePerKg float64 `json:"pricePerKg" validate:"required,gt=0"`
}
