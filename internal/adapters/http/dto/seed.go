package dto

type CreateSeedRequest struct {
	Name                  string   `json:"name" validate:"required"`
	QuantityAvailable     float64  `json:"quantityAvailable" validate:"required,gt=0"`
	CompatibleFertilizers []string `json:"compatibleFertilizers" validate:"omitempty"`
	MaxQuantityPerAcre    float64  `json:"maxQuantityPerAcre" validate:"required,gt=0"`
	PricePerKg            float64  `json:"pricePerKg" validate:"required,gt=0"`
	PricingID             string   `json:"pricingID" validate:"omitempty"`
}

type UpdateSeedRequest struct {
	Name                  string   `json:"name" validate:"omitempty"`
	QuantityAvailable     float64  `json:"quantityAvailable" validate:"omitempty,gt=0"`
	CompatibleFertilizers []string `json:"compatibleFertilizers" validate:"omitempty"`
	MaxQuantityPerAcre    float64  `json:"maxQuantityPerAcre" validate:"omitempty,gt=0"`
	PricePerKg            float64  `json:"pricePerKg" validate:"omitempty,gt=0"`
	PricingID             string   `json:"pricingID" validate:"omitempty"`
}
