package models

import (
	"strings"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is an API account. The password hash never leaves the server.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserInput is used for creating users.
type UserInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (u *UserInput) Validate() string {
	u.Username = strings.TrimSpace(u.Username)
	if u.Username == "" {
		return "username is required"
	}
	if len(u.Password) < 6 {
		return "password must be at least 6 characters"
	}
	switch u.Role {
	case "":
		u.Role = RoleUser
	case RoleAdmin, RoleUser:
	default:
		return "role must be one of: admin, user"
	}
	return ""
}

// LoginInput is the body of a login request.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult carries the issued token.
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      User      `json:"user"`
}
