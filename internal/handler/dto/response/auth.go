package response

import (
	"budget-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

func FromAuthorizedUser(rm *readmodel.AuthorizedUser) UserResponse {
	return UserResponse{
		ID:    rm.ID,
		Email: rm.Email,
		Name:  rm.Name,
	}
}
