package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dongwonkwak/boardly-sub002/internal/model"
)

var ErrCardNotFound = errors.New("card not found")

type CardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

func (r *CardRepository) Create(ctx context.Context, card *model.Card) error {
	return r.db.WithContext(ctx).Create(card).Error
}

func (r *CardRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Card, error) {
	var card model.Card
	if err := r.db.WithContext(ctx).First(&card, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &card, nil
}

func (r *CardRepository) GetByListID(ctx context.Context, listID uuid.UUID) ([]model.Card, error) {
	var cards []model.Card
	err := r.db.WithContext(ctx).Where("list_id = ?", listID).Order("position").Find(&cards).Error
	return cards, err
}

func (r *CardRepository) GetMaxPosition(ctx context.Context, listID uuid.UUID) (int, error) {
	var maxPosition struct {
		Max int
	}
	err := r.db.WithContext(ctx).Model(&model.Card{}).
		Select("COALESCE(MAX(position), 0) as max").
		Where("list_id = ?", listID).
		Scan(&maxPosition).Error
	return maxPosition.Max, err
}

// Move updates the card's list and position, shifting neighbours to keep
// positions contiguous in both the source and the target list.
func (r *CardRepository) Move(ctx context.Context, cardID, listID uuid.UUID, newPosition int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var card model.Card
		if err := tx.First(&card, "id = ?", cardID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCardNotFound
			}
			return err
		}

		oldListID := card.ListID
		oldPosition := card.Position

		if oldListID != listID {
			if err := tx.Model(&model.Card{}).
				Where("list_id = ? AND position > ?", oldListID, oldPosition).
				Update("position", gorm.Expr("position - 1")).Error; err != nil {
				return err
			}
			if err := tx.Model(&model.Card{}).
				Where("list_id = ? AND position >= ?", listID, newPosition).
				Update("position", gorm.Expr("position + 1")).Error; err != nil {
				return err
			}
			card.ListID = listID
			card.Position = newPosition
		} else if oldPosition != newPosition {
			if oldPosition < newPosition {
				if err := tx.Model(&model.Card{}).
					Where("list_id = ? AND position > ? AND position <= ?", listID, oldPosition, newPosition).
					Update("position", gorm.Expr("position - 1")).Error; err != nil {
					return err
				}
			} else {
				if err := tx.Model(&model.Card{}).
					Where("list_id = ? AND position >= ? AND position < ?", listID, newPosition, oldPosition).
					Update("position", gorm.Expr("position + 1")).Error; err != nil {
					return err
				}
			}
			card.Position = newPosition
		}

		return tx.Save(&card).Error
	})
}

func (r *CardRepository) Update(ctx context.Context, card *model.Card) error {
	return r.db.WithContext(ctx).Save(card).Error
}

func (r *CardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Detach labels first so the join table never blocks the delete.
		if err := tx.Exec("DELETE FROM card_labels WHERE card_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Card{}, "id = ?", id).Error
	})
}

// DeleteByBoard removes every card owned by the board transitively through
// its lists, detaching labels from the cards first. Deleting zero rows is a
// success.
func (r *CardRepository) DeleteByBoard(ctx context.Context, boardID uuid.UUID) error {
	if err := r.db.WithContext(ctx).Exec(
		"DELETE FROM card_labels WHERE card_id IN (SELECT cards.id FROM cards JOIN board_lists ON cards.list_id = board_lists.id WHERE board_lists.board_id = ?)",
		boardID,
	).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Exec(
		"DELETE FROM cards WHERE list_id IN (SELECT id FROM board_lists WHERE board_id = ?)",
		boardID,
	).Error
}
