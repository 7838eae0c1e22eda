package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dongwonkwak/boardly-sub002/internal/apperr"
	"github.com/dongwonkwak/boardly-sub002/internal/authz"
	"github.com/dongwonkwak/boardly-sub002/internal/model"
)

// BoardDeleter drives the cascading deletion of a board and everything it
// owns: cards first, then lists, then membership rows (hard delete — the
// board is terminal), then the board itself. The whole cascade runs in one
// transaction and the first failing step halts it; every step is a no-op
// against already-deleted children, so the caller may simply retry.
type BoardDeleter struct {
	tx  TxRunner
	log *logrus.Logger
}

func NewBoardDeleter(tx TxRunner, log *logrus.Logger) *BoardDeleter {
	return &BoardDeleter{tx: tx, log: log}
}

func (d *BoardDeleter) Delete(ctx context.Context, boardID, requestedBy uuid.UUID) error {
	err := d.tx.InTx(ctx, func(st Stores) error {
		board, err := loadBoard(ctx, st, boardID)
		if err != nil {
			return err
		}

		resolver := authz.NewResolver(st.Boards, st.Members)
		if err := resolver.RequireOn(ctx, board, requestedBy, model.CapDelete); err != nil {
			return err
		}

		// Cards go before lists so no list is ever gone while its cards
		// remain, and lists before the board for the same reason.
		if err := st.Cards.DeleteByBoard(ctx, boardID); err != nil {
			return apperr.Internal("failed to delete board cards", err)
		}
		if err := st.Lists.DeleteByBoard(ctx, boardID); err != nil {
			return apperr.Internal("failed to delete board lists", err)
		}
		if err := st.Members.DeleteByBoard(ctx, boardID); err != nil {
			return apperr.Internal("failed to delete board members", err)
		}
		if err := st.Labels.DeleteByBoard(ctx, boardID); err != nil {
			return apperr.Internal("failed to delete board labels", err)
		}
		if err := st.Activities.DeleteByBoard(ctx, boardID); err != nil {
			return apperr.Internal("failed to delete board activity", err)
		}
		if err := st.Boards.Delete(ctx, boardID); err != nil {
			return apperr.Internal("failed to delete board", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	d.log.WithFields(logrus.Fields{
		"board_id": boardID,
		"actor_id": requestedBy,
	}).Info("🗑  board deleted")
	return nil
}
