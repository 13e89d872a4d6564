package response

import (
	"leadpipe/internal/usecase/commands"

	"github.com/google/uuid"
)

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        LoginUserInfo `json:"user"`
}

type LoginUserInfo struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

func FromLoginResult(result *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		AccessToken: result.AccessToken,
		User: LoginUserInfo{
			ID:    result.UserID,
			Email: result.Email,
			Role:  result.Role,
		},
	}
}
