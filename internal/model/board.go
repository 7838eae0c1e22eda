package model

import (
	"time"

	"github.com/google/uuid"
)

type Board struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Title       string    `gorm:"not null"`
	Description string
	OwnerID     uuid.UUID `gorm:"type:uuid;not null"`
	Archived    bool      `gorm:"not null;default:false"`
	Starred     bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Owner User `gorm:"foreignKey:OwnerID"`
}

// IsOwner reports whether userID is the board's structural owner. Ownership
// is never represented as a membership row.
func (b *Board) IsOwner(userID uuid.UUID) bool {
	return b.OwnerID == userID
}

// HasCapability is the aggregate's capability predicate: the owner may do
// anything, everyone else is judged by the resolved role against the
// capability table. The role must already be resolved; the aggregate does
// no lookups.
func (b *Board) HasCapability(userID uuid.UUID, role Role, c Capability) bool {
	if b.IsOwner(userID) {
		return true
	}
	return role.Can(c)
}

func (b *Board) CanRead(userID uuid.UUID, role Role) bool {
	return b.HasCapability(userID, role, CapRead)
}

func (b *Board) CanWrite(userID uuid.UUID, role Role) bool {
	return b.HasCapability(userID, role, CapWrite)
}

func (b *Board) CanManageMembers(userID uuid.UUID, role Role) bool {
	return b.HasCapability(userID, role, CapManageMembers)
}

func (b *Board) CanArchive(userID uuid.UUID, role Role) bool {
	return b.HasCapability(userID, role, CapArchive)
}

func (b *Board) CanToggleStar(userID uuid.UUID, role Role) bool {
	return b.HasCapability(userID, role, CapToggleStar)
}

func (b *Board) CanDelete(userID uuid.UUID, role Role) bool {
	return b.HasCapability(userID, role, CapDelete)
}
