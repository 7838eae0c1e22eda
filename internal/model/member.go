package model

import (
	"time"

	"github.com/google/uuid"
)

// BoardMember grants a non-owner user access to a board. The board's owner
// never holds a row here; at most one row exists per (board, user) pair.
// Removal flips Active to false so the row survives for audit history.
type BoardMember struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	BoardID   uuid.UUID `gorm:"type:uuid;not null;index:idx_board_user,unique"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_board_user,unique"`
	Role      Role      `gorm:"not null;check:role IN ('viewer', 'editor')"`
	Active    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time

	Board Board `gorm:"foreignKey:BoardID"`
	User  User  `gorm:"foreignKey:UserID"`
}
