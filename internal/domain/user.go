package domain

import (
	"context"
	"time"
)

type Category string

const (
	CategoryFarmer    Category = "farmer"
	CategoryAgroStore Category = "agro_store"
)

type User struct {
	ID                string
	Name              string
	Email             string
	Phone             string
	Address           string
	Category          Category
	Password          string
	PasswordExpiresAt *time.Time
	LoginTries        int
	LoggedIn          bool
	Timestamp         time.Time
}

type RegisteredUser struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	Category Category
	Password string
}

type LoginUser struct {
	Email    string
	Password string
}

type UserUpdate struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

type UserRepository interface {
	Create(ctx context.Context, u *User) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByPhone(ctx context.Context, phone string) (*User, error)
	Update(ctx context.Context, id string, upd UserUpdate) (*User, error)
	SetLoggedIn(ctx context.Context, id string, loggedIn bool) error
	ListByCategory(ctx context.Context, category Category, page, perPage int) ([]User, int64, error)
}
