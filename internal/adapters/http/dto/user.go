package dto

type RegisterUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phoneNumber" validate:"required"`
	Address  string `json:"address" validate:"required"`
	Category string `json:"category" validate:"required,oneof=farmer agro_store"`
	Password string `json:"password" validate:"required,min=8,password_strength"`
}

type UpdateUserRequest struct {
	Name    string `json:"name" validate:"omitempty"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phoneNumber" validate:"omitempty"`
	Address string `json:"address" validate:"omitempty"`
}
