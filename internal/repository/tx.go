package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dongwonkwak/boardly-sub002/internal/service"
)

// TxManager satisfies service.TxRunner: fn runs with every repository bound
// to one gorm transaction, so a failing step rolls back everything the unit
// of work did.
type TxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

func (m *TxManager) InTx(ctx context.Context, fn func(service.Stores) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(service.Stores{
			Boards:     NewBoardRepository(tx),
			Members:    NewMemberRepository(tx),
			Lists:      NewListRepository(tx),
			Cards:      NewCardRepository(tx),
			Labels:     NewLabelRepository(tx),
			Activities: NewActivityRepository(tx),
			Users:      NewUserRepository(tx),
		})
	})
}
