package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/domain"
)

type Hasher struct {
	Cost int
}

func NewHasher(cost int) *Hasher {
	return &Hasher{Cost: cost}
}

var _ domain.Password = (*Hasher)(nil)

func (h *Hasher) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.Cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash the password: %w", err)
	}
	return string(hashed), nil
}

func (h *Hasher) VerifyPassword(hashedPassword, password []byte) error {
	return bcrypt.CompareHashAndPassword(hashedPassword, password)
}
