package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dongwonkwak/boardly-sub002/internal/model"
)

type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) Create(ctx context.Context, member *model.BoardMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// GetByBoardAndUser returns the membership row for (board, user) whether
// active or not; callers decide what an inactive row means.
func (r *MemberRepository) GetByBoardAndUser(ctx context.Context, boardID, userID uuid.UUID) (*model.BoardMember, error) {
	var member model.BoardMember
	err := r.db.WithContext(ctx).
		Where("board_id = ? AND user_id = ?", boardID, userID).
		First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *MemberRepository) ExistsActive(ctx context.Context, boardID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.BoardMember{}).
		Where("board_id = ? AND user_id = ? AND active", boardID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *MemberRepository) CountActiveByBoard(ctx context.Context, boardID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.BoardMember{}).
		Where("board_id = ? AND active", boardID).
		Count(&count).Error
	return count, err
}

func (r *MemberRepository) ListActiveByBoard(ctx context.Context, boardID uuid.UUID) ([]model.BoardMember, error) {
	var members []model.BoardMember
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("board_id = ? AND active", boardID).
		Order("created_at").
		Find(&members).Error
	return members, err
}

func (r *MemberRepository) Update(ctx context.Context, member *model.BoardMember) error {
	return r.db.WithContext(ctx).Save(member).Error
}

func (r *MemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.BoardMember{}, "id = ?", id).Error
}

// DeleteByBoard hard-deletes every membership row of the board, active or
// not. Only the deletion cascade calls this.
func (r *MemberRepository) DeleteByBoard(ctx context.Context, boardID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Delete(&model.BoardMember{}).Error
}
