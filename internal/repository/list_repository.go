package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dongwonkwak/boardly-sub002/internal/model"
)

type ListRepository struct {
	db *gorm.DB
}

func NewListRepository(db *gorm.DB) *ListRepository {
	return &ListRepository{db: db}
}

func (r *ListRepository) Create(ctx context.Context, list *model.BoardList) error {
	return r.db.WithContext(ctx).Create(list).Error
}

func (r *ListRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.BoardList, error) {
	var list model.BoardList
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&list).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &list, nil
}

func (r *ListRepository) GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.BoardList, error) {
	var lists []model.BoardList
	err := r.db.WithContext(ctx).Where("board_id = ?", boardID).Order("position").Find(&lists).Error
	return lists, err
}

func (r *ListRepository) GetMaxPosition(ctx context.Context, boardID uuid.UUID) (int, error) {
	var maxPosition struct {
		Max int
	}
	err := r.db.WithContext(ctx).Model(&model.BoardList{}).
		Select("COALESCE(MAX(position), 0) as max").
		Where("board_id = ?", boardID).
		Scan(&maxPosition).Error
	return maxPosition.Max, err
}

func (r *ListRepository) Update(ctx context.Context, list *model.BoardList) error {
	return r.db.WithContext(ctx).Save(list).Error
}

// Delete removes the list together with its cards and their label
// attachments, children first so no FK is ever left dangling.
func (r *ListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"DELETE FROM card_labels WHERE card_id IN (SELECT id FROM cards WHERE list_id = ?)", id,
		).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM cards WHERE list_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.BoardList{}, "id = ?", id).Error
	})
}

func (r *ListRepository) DeleteByBoard(ctx context.Context, boardID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Delete(&model.BoardList{}).Error
}
