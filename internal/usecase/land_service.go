package usecase

import (
	"context"
	"time"

	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/domain"
)

type LandView struct {
	ID          string    `json:"id"`
	FarmerID    string    `json:"farmerID"`
	LandAddress string    `json:"landAddress"`
	LandUPI     string    `json:"landUPI"`
	SizeInAcres float64   `json:"sizeInAcres"`
	Timestamp   time.Time `json:"timestamp"`
}

func toLandView(l *domain.Land) LandView {
	return LandView{
		ID:          l.ID,
		FarmerID:    l.FarmerID,
		LandAddress: l.LandAddress,
		LandUPI:     l.LandUPI,
		SizeInAcres: l.SizeInAcres,
		Timestamp:   l.Timestamp,
	}
}

type LandService struct {
	Lands  domain.LandRepository
	Users  domain.UserRepository
	Logger domain.LoggingRepository
}

func NewLandService(lands domain.LandRepository, users domain.UserRepository, logger domain.LoggingRepository) *LandService {
	return &LandService{Lands: lands, Users: users, Logger: logger}
}

func (s *LandService) CreateLand(ctx context.Context, land *domain.Land) (*LandView, error) {
	owner, err := s.Users.GetByID(ctx, land.FarmerID)
	if err != nil {
		return nil, err
	}
	if owner == nil || owner.Category != domain.CategoryFarmer {
		return nil, domain.NewDomainError(domain.ErrCodeValidation, "Farmer not Found", nil)
	}

	created, err := s.Lands.Create(ctx, land)
	if err != nil {
		s.Logger.Error("failed to save land", "service.name", "land-create", "error.message", err.Error())
		return nil, err
	}
	view := toLandView(created)
	return &view, nil
}

func (s *LandService) GetLand(ctx context.Context, id string) (*LandView, error) {
	land, err := s.Lands.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if land == nil {
		return nil, domain.NewDomainError(domain.ErrCodeNotFound, "Land not Found", nil)
	}
	view := toLandView(land)
	return &view, nil
}

func (s *LandService) UpdateLand(ctx context.Context, id string, upd domain.LandUpdate) (*LandView, error) {
	land, err := s.Lands.Update(ctx, id, upd)
	if err != nil {
		s.Logger.Error("failed to update land", "service.name", "land-update", "error.message", err.Error())
		return nil, err
	}
	if land == nil {
		return nil, domain.NewDomainError(domain.ErrCodeNotFound, "Land not Found", nil)
	}
	view := toLandView(land)
	return &view, nil
}

func (s *LandService) ListLands(ctx context.Context, page, perPage int) (*Paginated[LandView], error) {
	page, perPage = normalizePage(page, perPage)
	lands, totalItems, err := s.Lands.List(ctx, page, perPage)
	if err != nil {
		return nil, err
	}
	views := make([]LandView, 0, len(lands))
	for i := range lands {
		views = append(views, toLandView(&lands[i]))
	}
	return paginate(views, totalItems, page, perPage), nil
}

func (s *LandService) ListAllLands(ctx context.Context) ([]LandView, error) {
	lands, err := s.Lands.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]LandView, 0, len(lands))
	for i := range lands {
		views = append(views, toLandView(&lands[i]))
	}
	return views, nil
}

func (s *LandService) ListFarmerLands(ctx context.Context, farmerID string) ([]LandView, error) {
	lands, err := s.Lands.ListByFarmer(ctx, farmerID)
	if err != nil {
		return nil, err
	}
	views := make([]LandView, 0, len(lands))
	for i := range lands {
		views = append(views, toLandView(&lands[i]))
	}
	return views, nil
}
