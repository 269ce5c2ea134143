package usecase

import (
	"context"
	"time"

	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/domain"
	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/observability"
)

// UserView is the user shape exposed over the API. The password hash
// never leaves the service layer.
type UserView struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	Phone             string          `json:"phoneNumber"`
	Address           string          `json:"address"`
	Category          domain.Category `json:"category"`
	PasswordExpiresAt *time.Time      `json:"passwordExpiresAt,omitempty"`
	LoggedIn          bool            `json:"loggedIn"`
	Timestamp         time.Time       `json:"timestamp"`
}

func toUserView(u *domain.User) UserView {
	return UserView{
		ID:                u.ID,
		Name:              u.Name,
		Email:             u.Email,
		Phone:             u.Phone,
		Address:           u.Address,
		Category:          u.Category,
		PasswordExpiresAt: u.PasswordExpiresAt,
		LoggedIn:          u.LoggedIn,
		Timestamp:         u.Timestamp,
	}
}

type UserService struct {
	Users          domain.UserRepository
	Hasher         domain.Password
	PasswordMaxAge time.Duration
	Logger         domain.LoggingRepository
}

func NewUserService(users domain.UserRepository, hasher domain.Password, passwordMaxAge time.Duration, logger domain.LoggingRepository) *UserService {
	return &UserService{
		Users:          users,
		Hasher:         hasher,
		PasswordMaxAge: passwordMaxAge,
		Logger:         logger,
	}
}

func (s *UserService) Register(ctx context.Context, req domain.RegisteredUser) (*UserView, error) {
	reqID := observability.GetRequestID(ctx)
	log := s.Logger.With("service.name", "user-register", "http.request.id", reqID, "event.category", []string{"iam"})
	log.Info("user registration started", "event.type", []string{"start"})

	existing, err := s.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		log.Error(
			"failed to check existing email",
			"event.action", "get_user_by_email",
			"event.type", []string{"error", "end"},
			"event.outcome", "failed",
			"error.message", err.Error())
		return nil, err
	}
	if existing != nil {
		log.Warn(
			"email already registered",
			"event.action", "check_existing_user",
			"event.type", []string{"error", "end"},
			"event.outcome", "failed")
		return nil, domain.NewDomainError(domain.ErrCodeValidation, "Email already exist", nil)
	}

	existing, err = s.Users.GetByPhone(ctx, req.Phone)
	if err != nil {
		log.Error(
			"failed to check existing phone",
			"event.action", "get_user_by_phone",
			"event.type", []string{"error", "end"},
			"event.outcome", "failed",
			"error.message", err.Error())
		return nil, err
	}
	if existing != nil {
		log.Warn(
			"phone already registered",
			"event.action", "check_existing_user",
			"event.type", []string{"error", "end"},
			"event.outcome", "failed")
		return nil, domain.NewDomainError(domain.ErrCodeValidation, "Phone number already exist", nil)
	}

	hashed, err := s.Hasher.HashPassword(req.Password)
	if err != nil {
		log.Error(
			"failed to hash user password",
			"event.action", "hash_password",
			"event.type", []string{"error", "end"},
			"event.outcome", "failed",
			"error.message", err.Error())
		return nil, err
	}

	expiresAt := time.Now().Add(s.PasswordMaxAge)
	user, err := s.Users.Create(ctx, &domain.User{
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		Address:           req.Address,
		Category:          req.Category,
		Password:          hashed,
		PasswordExpiresAt: &expiresAt,
	})
	if err != nil {
		log.Error(
			"failed to save user",
			"event.action", "create_user",
			"event.type", []string{"error", "end"},
			"event.outcome", "failed",
			"error.message", err.Error())
		return nil, err
	}

	log.Info(
		"user successfully registered",
		"user.id", user.ID,
		"event.type", []string{"end", "creation"},
		"event.outcome", "success")

	view := toUserView(user)
	return &view, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*UserView, error) {
	user, err := s.Users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewDomainError(domain.ErrCodeNotFound, "User not Found", nil)
	}
	view := toUserView(user)
	return &view, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id string, upd domain.UserUpdate) (*UserView, error) {
	reqID := observability.GetRequestID(ctx)
	log := s.Logger.With("service.name", "user-update", "http.request.id", reqID, "user.id", id, "event.category", []string{"iam"})

	if upd.Email != "" {
		existing, err := s.Users.GetByEmail(ctx, upd.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			log.Warn(
				"email already registered",
				"event.action", "check_existing_user",
				"event.type", []string{"error", "end"},
				"event.outcome", "failed")
			return nil, domain.NewDomainError(domain.ErrCodeValidation, "Email already exist", nil)
		}
	}
	if upd.Phone != "" {
		existing, err := s.Users.GetByPhone(ctx, upd.Phone)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			log.Warn(
				"phone already registered",
				"event.action", "check_existing_user",
				"event.type", []string{"error", "end"},
				"event.outcome", "failed")
			return nil, domain.NewDomainError(domain.ErrCodeValidation, "Phone number already exist", nil)
		}
	}

	user, err := s.Users.Update(ctx, id, upd)
	if err != nil {
		log.Error(
			"failed to update user",
			"event.action", "update_user",
			"event.type", []string{"error", "end"},
			"event.outcome", "failed",
			"error.message", err.Error())
		return nil, err
	}
	if user == nil {
		return nil, domain.NewDomainError(domain.ErrCodeNotFound, "User not Found", nil)
	}

	log.Info(
		"user successfully updated",
		"event.type", []string{"end", "change"},
		"event.outcome", "success")

	view := toUserView(user)
	return &view, nil
}

// ListFarmers returns the farmer directory. Only agro stores may browse it.
func (s *UserService) ListFarmers(ctx context.Context, caller domain.Identity, page, perPage int) (*Paginated[UserView], error) {
	if caller.Category != domain.CategoryAgroStore {
		return nil, domain.ErrAccessDenied
	}

	page, perPage = normalizePage(page, perPage)
	users, totalItems, err := s.Users.ListByCategory(ctx, domain.CategoryFarmer, page, perPage)
	if err != nil {
		return nil, err
	}

	views := make([]UserView, 0, len(users))
	for i := range users {
		views = append(views, toUserView(&users[i]))
	}
	return paginate(views, totalItems, page, perPage), nil
}
