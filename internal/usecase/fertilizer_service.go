package usecase

import (
	"context"
	"time"

	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/domain"
	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/observability"
)

const maxFertilizerPerAcre = 3.0

type FertilizerView struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	QuantityAvailable  float64   `json:"quantityAvailable"`
	MaxQuantityPerAcre float64   `json:"maxQuantityPerAcre"`
	PricePerKg         float64   `json:"pricePerKg"`
	PricingID          string    `json:"pricingID,omitempty"`
	Timestamp          time.Time `json:"timestamp"`
}

func toFertilizerView(f *domain.Fertilizer) FertilizerView {
	return FertilizerView{
		ID:                 f.ID,
		Name:               f.Name,
		QuantityAvailable:  f.QuantityAvailable,
		MaxQuantityPerAcre: f.MaxQuantityPerAcre,
		PricePerKg:         f.PricePerKg,
		PricingID:          f.PricingID,
		Timestamp:          f.Timestamp,
	}
}

type FertilizerService struct {
	Fertilizers domain.FertilizerRepository
	Logger      domain.LoggingRepository
}

func NewFertilizerService(fertilizers domain.FertilizerRepository, logger domain.LoggingRepository) *FertilizerService {
	return &FertilizerService{Fertilizers: fertilizers, Logger: logger}
}

func validateFertilizerQuantity(maxQuantityPerAcre float64) error {
	if maxQuantityPerAcre > maxFertilizerPerAcre || maxQuantityPerAcre <= 0 {
		return domain.NewDomainError(domain.ErrCodeValidation, "Fertilizer quantity exceeds the maximum limit for 1 acre", nil)
	}
	return nil
}

func (s *FertilizerService) CreateFertilizer(ctx context.Context, caller domain.Identity, fertilizer *domain.Fertilizer) (*FertilizerView, error) {
	reqID := observability.GetRequestID(ctx)
	log := s.Logger.With("service.name", "fertilizer-create", "http.request.id", reqID)

	if caller.Category != domain.CategoryAgroStore {
		return nil, domain.ErrAccessDenied
	}
	if err := validateFertilizerQuantity(fertilizer.MaxQuantityPerAcre); err != nil {
		return nil, err
	}

	created, err := s.Fertilizers.Create(ctx, fertilizer)
	if err != nil {
		log.Error("failed to save fertilizer", "event.outcome", "failed", "error.message", err.Error())
		return nil, err
	}

	log.Info("fertilizer successfully created", "fertilizer.id", created.ID, "event.outcome", "success")
	view := toFertilizerView(created)
	return &view, nil
}

func (s *FertilizerService) GetFertilizer(ctx context.Context, id string) (*FertilizerView, error) {
	fertilizer, err := s.Fertilizers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if fertilizer == nil {
		return nil, domain.NewDomainError(domain.ErrCodeNotFound, "Fertilizer not Found", nil)
	}
	view := toFertilizerView(fertilizer)
	return &view, nil
}

func (s *FertilizerService) UpdateFertilizer(ctx context.Context, caller domain.Identity, id string, upd domain.FertilizerUpdate) (*FertilizerView, error) {
	if caller.Category != domain.CategoryAgroStore {
		return nil, domain.ErrAccessDenied
	}

	existing, err := s.Fertilizers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.NewDomainError(domain.ErrCodeNotFound, "Fertilizer not Found", nil)
	}
	if upd.MaxQuantityPerAcre != 0 {
		if err := validateFertilizerQuantity(upd.MaxQuantityPerAcre); err != nil {
			return nil, err
		}
	}

	fertilizer, err := s.Fertilizers.Update(ctx, id, upd)
	if err != nil {
		s.Logger.Error("failed to update fertilizer", "service.name", "fertilizer-update", "error.message", err.Error())
		return nil, err
	}
	if fertilizer == nil {
		return nil, domain.NewDomainError(domain.ErrCodeNotFound, "Fertilizer not Found", nil)
	}
	view := toFertilizerView(fertilizer)
	return &view, nil
}

func (s *FertilizerService) ListFertilizers(ctx context.Context, page, perPage int) (*Paginated[FertilizerView], error) {
	page, perPage = normalizePage(page, perPage)
	fertilizers, totalItems, err := s.Fertilizers.List(ctx, page, perPage)
	if err != nil {
		return nil, err
	}
	views := make([]FertilizerView, 0, len(fertilizers))
	for i := range fertilizers {
		views = append(views, toFertilizerView(&fertilizers[i]))
	}
	return paginate(views, totalItems, page, perPage), nil
}

func (s *FertilizerService) ListAllFertilizers(ctx context.Context) ([]FertilizerView, error) {
	fertilizers, err := s.Fertilizers.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]FertilizerView, 0, len(fertilizers))
	for i := range fertilizers {
		views = append(views, toFertilizerView(&fertilizers[i]))
	}
	return views, nil
}

func (s *FertilizerService) DeleteFertilizer(ctx context.Context, caller domain.Identity, id string) error {
	if caller.Category != domain.CategoryAgroStore {
		return domain.ErrAccessDenied
	}
	existing, err := s.Fertilizers.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.NewDomainError(domain.ErrCodeNotFound, "Fertilizer not Found", nil)
	}
	return s.Fertilizers.Delete(ctx, id)
}
