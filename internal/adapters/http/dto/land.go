package dto

type CreateLandRequest struct {
	FarmerID    string  `json:"farmerID" validate:"required"`
	LandAddress string  `json:"landAddress" validate:"required"`
	LandUPI     string  `json:"landUPI" validate:"required"`
	SizeInAcres float64 `json:"sizeInAcres" validate:"required,gt=0"`
}

type UpdateLandRequest struct {
	LandAddress string  `json:"landAddress" validate:"omitempty"`
	LandUPI     string  `json:"landUPI" validate:"omitempty"`
	SizeInAcres float64 `json:"sizeInAcres" validate:"omitempty,gt=0"`
}
