package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dongwonkwak/boardly-sub002/internal/model"
)

type LabelRepository struct {
	db *gorm.DB
}

func NewLabelRepository(db *gorm.DB) *LabelRepository {
	return &LabelRepository{db: db}
}

func (r *LabelRepository) Create(ctx context.Context, label *model.Label) error {
	return r.db.WithContext(ctx).Create(label).Error
}

func (r *LabelRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Label, error) {
	var label model.Label
	if err := r.db.WithContext(ctx).First(&label, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &label, nil
}

func (r *LabelRepository) GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.Label, error) {
	var labels []model.Label
	err := r.db.WithContext(ctx).Where("board_id = ?", boardID).Find(&labels).Error
	return labels, err
}

func (r *LabelRepository) Update(ctx context.Context, label *model.Label) error {
	return r.db.WithContext(ctx).Save(label).Error
}

func (r *LabelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Label{}, "id = ?", id).Error
}

func (r *LabelRepository) DeleteByBoard(ctx context.Context, boardID uuid.UUID) error {
	// Detach from cards first so the join table never references a gone label.
	if err := r.db.WithContext(ctx).Exec(
		"DELETE FROM card_labels WHERE label_id IN (SELECT id FROM labels WHERE board_id = ?)",
		boardID,
	).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Delete(&model.Label{}).Error
}
