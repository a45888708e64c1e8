package dto

import (
	"time"

	"github.com/polkiloo/storerating/internal/domain/model"
)

// RegisterRequest is the self-registration payload. Admin user creation reuses it.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address"`
	Role     string `json:"role"`
}

// Input converts the payload into usecase input.
func (r RegisterRequest) Input() model.UserInput {
	return model.UserInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Address:  r.Address,
		Role:     r.Role,
	}
}

// LoginRequest describes email/password payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public view of an account; the password hash is never exposed.
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse maps model.User onto UserResponse.
func NewUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Address:   u.Address,
		CreatedAt: u.CreatedAt,
	}
}

// NewUserList maps a slice of users, never returning nil.
func NewUserList(users []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// MeResponse wraps the current user.
type MeResponse struct {
	User UserResponse `json:"user"`
}

// UserCreatedResponse is returned by admin user creation.
type UserCreatedResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// MessageResponse carries a human-readable status or error.
type MessageResponse struct {
	Message string `json:"message"`
}
