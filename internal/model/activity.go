package model

import (
	"time"

	"github.com/google/uuid"
)

// Activity is an audit record of a board-level event. Writing one never
// fails the operation that produced it.
type Activity struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	BoardID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ActorID   uuid.UUID `gorm:"type:uuid;not null"`
	EventType string    `gorm:"not null"`
	Payload   []byte    `gorm:"type:jsonb"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
