package model

import "github.com/google/uuid"

// UserDTO doubles as the authenticated principal stored in the request
// context by the auth middleware.
type UserDTO struct {
	ID      uuid.UUID `json:"id"`
	Email   string    `json:"email"`
	Name    string    `json:"name"`
	Picture string    `json:"picture,omitempty"`
	Role    string    `json:"role"`
}

func (u *UserDTO) IsAdmin() bool {
	return u.Role == "admin"
}
