package usecase

import (
	"context"
	"time"

	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/domain"
)

type PricingView struct {
	ID          string             `json:"id"`
	ProductType domain.ProductType `json:"productType"`
	ProductID   string             `json:"productID"`
	PricePerKg  float64            `json:"pricePerKg"`
	Timestamp   time.Time          `json:"timestamp"`
}

func toPricingView(p *domain.Pricing) PricingView {
	return PricingView{
		ID:          p.ID,
		ProductType: p.ProductType,
		ProductID:   p.ProductID,
		PricePerKg:  p.PricePerKg,
		Timestamp:   p.Timestamp,
	}
}

type PricingService struct {
	Pricings domain.PricingRepository
	Logger   domain.LoggingRepository
}

func NewPricingService(pricings domain.PricingRepository, logger domain.LoggingRepository) *PricingService {
	return &PricingService{Pricings: pricings, Logger: logger}
}

func (s *PricingService) CreatePricing(ctx context.Context, caller domain.Identity, pricing *domain.Pricing) (*PricingView, error) {
	if caller.Category != domain.CategoryAgroStore {
		return nil, domain.ErrAccessDenied
	}
	if pricing.ProductType != domain.ProductTypeSeed && pricing.ProductType != domain.ProductTypeFertilizer {
		return nil, domain.NewDomainError(domain.ErrCodeValidation, "Invalid product type", nil)
	}
	if pricing.PricePerKg <= 0 {
		return nil, domain.NewDomainError(domain.ErrCodeValidation, "Required fields are missing or invalid", nil)
	}

	created, err := s.Pricings.Create(ctx, pricing)
	if err != nil {
		s.Logger.Error("failed to save pricing", "service.name", "pricing-create", "error.message", err.Error())
		return nil, err
	}
	view := toPricingView(created)
	return &view, nil
}

// UpdatePrice changes the price either by pricing id or by the product it
// belongs to, whichever the caller supplied.
func (s *PricingService) UpdatePrice(ctx context.Context, caller domain.Identity, id, productID string, pricePerKg float64) (*PricingView, error) {
	if caller.Category != domain.CategoryAgroStore {
		return nil, domain.ErrAccessDenied
	}
	if id == "" && productID == "" {
		return nil, domain.NewDomainError(domain.ErrCodeValidation, "Required fields are missing or invalid", nil)
	}
	if pricePerKg <= 0 {
		return nil, domain.NewDomainError(domain.ErrCodeValidation, "Required fields are missing or invalid", nil)
	}

	pricing, err := s.Pricings.UpdatePrice(ctx, id, productID, pricePerKg)
	if err != nil {
		s.Logger.Error("failed to update pricing", "service.name", "pricing-update", "error.message", err.Error())
		return nil, err
	}
	if pricing == nil {
		return nil, domain.NewDomainError(domain.ErrCodeNotFound, "Pricing not Found", nil)
	}
	view := toPricingView(pricing)
	return &view, nil
}

func (s *PricingService) GetPricing(ctx context.Context, id string) (*PricingView, error) {
	pricing, err := s.Pricings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pricing == nil {
		return nil, domain.NewDomainError(domain.ErrCodeNotFound, "Pricing not Found", nil)
	}
	view := toPricingView(pricing)
	return &view, nil
}

// GetProductPrice resolves the current price for a seed or fertilizer.
func (s *PricingService) GetProductPrice(ctx context.Context, productID string) (*PricingView, error) {
	pricing, err := s.Pricings.GetByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if pricing == nil {
		return nil, domain.NewDomainError(domain.ErrCodeNotFound, "Pricing not Found", nil)
	}
	view := toPricingView(pricing)
	return &view, nil
}

func (s *PricingService) ListAllPricings(ctx context.Context) ([]PricingView, error) {
	pricings, err := s.Pricings.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]PricingView, 0, len(pricings))
	for i := range pricings {
		views = append(views, toPricingView(&pricings[i]))
	}
	return views, nil
}

func (s *PricingService) ListPricings(ctx context.Context, page, perPage int) (*Paginated[PricingView], error) {
	page, perPage = normalizePage(page, perPage)
	pricings, totalItems, err := s.Pricings.List(ctx, page, perPage)
	if err != nil {
		return nil, err
	}
	views := make([]PricingView, 0, len(pricings))
	for i := range pricings {
		views = append(views, toPricingView(&pricings[i]))
	}
	return paginate(views, totalItems, page, perPage), nil
}
