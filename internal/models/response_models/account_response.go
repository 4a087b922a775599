package response_models

import (
	"time"

	"learnlive/internal/models/db_models"
)

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type AccountResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	ClassLevel *string   `json:"class_level"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewAccountResponse(a *db_models.Account) AccountResponse {
	return AccountResponse{
		ID:         a.ID.String(),
		Email:      a.Email,
		Name:       a.Name,
		Role:       a.Role,
		ClassLevel: a.ClassLevel,
		CreatedAt:  a.CreatedAt,
	}
}
