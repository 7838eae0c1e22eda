package model

import (
	"time"

	"github.com/google/uuid"
)

// User is an account. Board ownership and membership rows both hang off its
// id; the email is the login identifier.
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Email          string    `gorm:"not null;uniqueIndex"`
	Name           string    `gorm:"not null"`
	HashedPassword string    `gorm:"not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}
