package users

import (
	"time"

	"github.com/carson-networks/finance-server/internal/service"
)

// User is the API response model for a user. It is used only for responses,
// not for request bodies, and never carries the password hash.
type User struct {
	ID        string `json:"id" doc:"User UUID"`
	Username  string `json:"username" doc:"Unique username"`
	Email     string `json:"email" doc:"Unique email"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

func userToResponse(u service.User) User {
	return User{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
