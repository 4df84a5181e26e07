package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a row of the usuarios table.
// The password hash is never serialized into responses.
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
