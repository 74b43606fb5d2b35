package response

import (
	"time"

	"hotel-manager/internal/data/entity"
)

type UserResponse struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Role      entity.UserRole `json:"role"`
	IsActive  bool            `json:"is_active"`
	LastLogin *time.Time      `json:"last_login,omitempty"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		IsActive:  user.IsActive,
		LastLogin: user.LastLogin,
	}
}

type AuthResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token,omitempty"`
	ExpiresAt *time.Time   `json:"expires_at,omitempty"`
}

type RecoveryTokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type SecurityQuestionResponse struct {
	Question string `json:"question"`
}
