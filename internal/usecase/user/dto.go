package user

import (
	domainUser "fuel-sense/internal/domain/user"
	"fuel-sense/pkg/utils"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User   *domainUser.User `json:"user"`
	Tokens *utils.TokenPair `json:"tokens"`
}
