package usecase

import (
	"context"
	"time"

	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/domain"
	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/observability"
)

const maxSeedPerAcre = 1.0

type SeedView struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	QuantityAvailable     float64   `json:"quantityAvailable"`
	CompatibleFertilizers []string  `json:"compatibleFertilizers"`
	MaxQuantityPerAcre    float64   `json:"maxQuantityPerAcre"`
	PricePerKg            float64   `json:"pricePerKg"`
	PricingID             string    `json:"pricingID,omitempty"`
	Timestamp             time.Time `json:"timestamp"`
}

func toSeedView(s *domain.Seed) SeedView {
	return SeedView{
		ID:                    s.ID,
		Name:                  s.Name,
		QuantityAvailable:     s.QuantityAvailable,
		CompatibleFertilizers: s.CompatibleFertilizers,
		MaxQuantityPerAcre:    s.MaxQuantityPerAcre,
		PricePerKg:            s.PricePerKg,
		PricingID:             s.PricingID,
		Timestamp:             s.Timestamp,
	}
}

type SeedService struct {
	Seeds  domain.SeedRepository
	Logger domain.LoggingRepository
}

func NewSeedService(seeds domain.SeedRepository, logger domain.LoggingRepository) *SeedService {
	return &SeedService{Seeds: seeds, Logger: logger}
}

func validateSeedQuantity(maxQuantityPerAcre float64) error {
	if maxQuantityPerAcre > maxSeedPerAcre || maxQuantityPerAcre <= 0 {
		return domain.NewDomainError(domain.ErrCodeValidation, "Seed quantity exceeds the maximum limit for 1 acre", nil)
	}
	return nil
}

// CreateSeed registers a new seed in the catalog. Only agro stores may
// manage the catalog.
func (s *SeedService) CreateSeed(ctx context.Context, caller domain.Identity, seed *domain.Seed) (*SeedView, error) {
	reqID := observability.GetRequestID(ctx)
	log := s.Logger.With("service.name", "seed-create", "http.request.id", reqID)

	if caller.Category != domain.CategoryAgroStore {
		return nil, domain.ErrAccessDenied
	}
	if err := validateSeedQuantity(seed.MaxQuantityPerAcre); err != nil {
		return nil, err
	}

	created, err := s.Seeds.Create(ctx, seed)
	if err != nil {
		log.Error("failed to save seed", "event.outcome", "failed", "error.message", err.Error())
		return nil, err
	}

	log.Info("seed successfully created", "seed.id", created.ID, "event.outcome", "success")
	view := toSeedView(created)
	return &view, nil
}

func (s *SeedService) GetSeed(ctx context.Context, id string) (*SeedView, error) {
	seed, err := s.Seeds.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if seed == nil {
		return nil, domain.NewDomainError(domain.ErrCodeNotFound, "Seed not Found", nil)
	}
	view := toSeedView(seed)
	return &view, nil
}

func (s *SeedService) UpdateSeed(ctx context.Context, caller domain.Identity, id string, upd domain.SeedUpdate) (*SeedView, error) {
	if caller.Category != domain.CategoryAgroStore {
		return nil, domain.ErrAccessDenied
	}

	existing, err := s.Seeds.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.NewDomainError(domain.ErrCodeNotFound, "Seed not Found", nil)
	}
	if upd.MaxQuantityPerAcre != 0 {
		if err := validateSeedQuantity(upd.MaxQuantityPerAcre); err != nil {
			return nil, err
		}
	}

	seed, err := s.Seeds.Update(ctx, id, upd)
	if err != nil {
		s.Logger.Error("failed to update seed", "service.name", "seed-update", "error.message", err.Error())
		return nil, err
	}
	if seed == nil {
		return nil, domain.NewDomainError(domain.ErrCodeNotFound, "Seed not Found", nil)
	}
	view := toSeedView(seed)
	return &view, nil
}

func (s *SeedService) ListSeeds(ctx context.Context, page, perPage int) (*Paginated[SeedView], error) {
	page, perPage = normalizePage(page, perPage)
	seeds, totalItems, err := s.Seeds.List(ctx, page, perPage)
	if err != nil {
		return nil, err
	}
	views := make([]SeedView, 0, len(seeds))
	for i := range seeds {
		views = append(views, toSeedView(&seeds[i]))
	}
	return paginate(views, totalItems, page, perPage), nil
}

func (s *SeedService) ListAllSeeds(ctx context.Context) ([]SeedView, error) {
	seeds, err := s.Seeds.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]SeedView, 0, len(seeds))
	for i := range seeds {
		views = append(views, toSeedView(&seeds[i]))
	}
	return views, nil
}

func (s *SeedService) DeleteSeed(ctx context.Context, caller domain.Identity, id string) error {
	if caller.Category != domain.CategoryAgroStore {
		return domain.ErrAccessDenied
	}
	existing, err := s.Seeds.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.NewDomainError(domain.ErrCodeNotFound, "Seed not Found", nil)
	}
	return s.Seeds.Delete(ctx, id)
}
