package v1

import (
	"github.com/spendwell/backend/internal/models"
)

// RegisterEditable represents all values needed to create a user.
type RegisterEditable struct {
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"correct horse battery staple"`
}

// LoginEditable represents the credentials for a login.
type LoginEditable struct {
	Email    string `json:"email" binding:"required" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"correct horse battery staple"`
}

type User struct {
	models.DefaultModel
	Email string `json:"email" example:"jane@example.com"`
}

func newUser(model models.User) User {
	return User{
		DefaultModel: model.DefaultModel,
		Email:        model.Email,
	}
}

type AuthData struct {
	User  User   `json:"user"`
	Token string `json:"token" example:"cc4a665035a9..."` // Opaque bearer credential for subsequent requests
}

type AuthResponse struct {
	Data  *AuthData `json:"data"`  // The user and their credential
	Error *string   `json:"error"` // The error, if any occurred
}
