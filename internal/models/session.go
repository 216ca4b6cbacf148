package models

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
)

// SessionDuration is how long a bearer credential stays valid.
const SessionDuration = 30 * 24 * time.Hour

// Session is an opaque bearer credential for a user.
//
// Sessions are stored server side so that logging out invalidates the
// credential immediately. There is no process-wide authentication
// state, resolving a token always goes through the database.
type Session struct {
	Token     string `gorm:"primaryKey"`
	UserID    uuid.UUID
	User      User `gorm:"constraint:OnDelete:CASCADE"`
	ExpiresAt time.Time
	CreatedAt time.Time
}

// NewSession creates and persists a session for the user.
func NewSession(userID uuid.UUID) (Session, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return Session{}, err
	}

	session := Session{
		Token:     hex.EncodeToString(raw),
		UserID:    userID,
		ExpiresAt: time.Now().Add(SessionDuration).In(time.UTC),
	}

	err := DB.Create(&session).Error
	if err != nil {
		return Session{}, err
	}

	return session, nil
}

// UserForToken resolves a bearer token to the user it belongs to.
// Unknown and expired tokens both return ErrNoValidSession.
func UserForToken(token string) (User, error) {
	var session Session
	err := DB.First(&session, "token = ?", token).Error
	if errors.Is(err, ErrResourceNotFound) {
		return User{}, ErrNoValidSession
	}
	if err != nil {
		return User{}, err
	}

	if session.ExpiresAt.Before(time.Now()) {
		return User{}, ErrNoValidSession
	}

	var user User
	err = DB.First(&user, "id = ?", session.UserID).Error
	if err != nil {
		return User{}, err
	}

	return user, nil
}

// DeleteSession invalidates the bearer token.
func DeleteSession(token string) error {
	return DB.Delete(&Session{}, "token = ?", token).Error
}
