package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/dongwonkwak/boardly-sub002/internal/apperr"
	"github.com/dongwonkwak/boardly-sub002/internal/authz"
	"github.com/dongwonkwak/boardly-sub002/internal/model"
)

const MaxBoardsPerUser = 5

// BoardService covers the board's own lifecycle short of deletion:
// creation, content updates, the archive flag and the star flag.
type BoardService struct {
	tx    TxRunner
	audit AuditSink
}

func NewBoardService(tx TxRunner, audit AuditSink) *BoardService {
	return &BoardService{tx: tx, audit: audit}
}

func (s *BoardService) Create(ctx context.Context, ownerID uuid.UUID, title, description string) (*model.Board, error) {
	var board *model.Board
	err := s.tx.InTx(ctx, func(st Stores) error {
		count, err := st.Boards.CountOwned(ctx, ownerID)
		if err != nil {
			return apperr.Internal("failed to count boards", err)
		}
		if count >= MaxBoardsPerUser {
			return apperr.BusinessRule("maximum number of boards reached")
		}

		board = &model.Board{
			Title:       title,
			Description: description,
			OwnerID:     ownerID,
		}
		if err := st.Boards.Create(ctx, board); err != nil {
			return apperr.Internal("failed to create board", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, "board.created", ownerID, board.ID, map[string]any{
		"title": title,
	})
	return board, nil
}

// Get returns the board together with the caller's resolved role.
func (s *BoardService) Get(ctx context.Context, boardID, userID uuid.UUID) (*model.Board, model.Role, error) {
	var board *model.Board
	var role model.Role
	err := s.tx.InTx(ctx, func(st Stores) error {
		var err error
		board, err = loadBoard(ctx, st, boardID)
		if err != nil {
			return err
		}

		resolver := authz.NewResolver(st.Boards, st.Members)
		role, err = resolver.RoleOn(ctx, board, userID)
		return err
	})
	if err != nil {
		return nil, "", err
	}
	return board, role, nil
}

func (s *BoardService) ListOwned(ctx context.Context, ownerID uuid.UUID) ([]model.Board, error) {
	var boards []model.Board
	err := s.tx.InTx(ctx, func(st Stores) error {
		var err error
		boards, err = st.Boards.GetOwned(ctx, ownerID)
		if err != nil {
			return apperr.Internal("failed to list boards", err)
		}
		return nil
	})
	return boards, err
}

func (s *BoardService) ListSharedWith(ctx context.Context, userID uuid.UUID) ([]model.Board, error) {
	var boards []model.Board
	err := s.tx.InTx(ctx, func(st Stores) error {
		var err error
		boards, err = st.Boards.GetSharedWith(ctx, userID)
		if err != nil {
			return apperr.Internal("failed to list shared boards", err)
		}
		return nil
	})
	return boards, err
}

func (s *BoardService) Update(ctx context.Context, boardID, userID uuid.UUID, title, description string) (*model.Board, error) {
	var board *model.Board
	err := s.tx.InTx(ctx, func(st Stores) error {
		var err error
		board, err = loadBoard(ctx, st, boardID)
		if err != nil {
			return err
		}

		resolver := authz.NewResolver(st.Boards, st.Members)
		if err := resolver.RequireOn(ctx, board, userID, model.CapWrite); err != nil {
			return err
		}
		if board.Archived {
			return apperr.Conflict("board is archived")
		}

		if title != "" {
			board.Title = title
		}
		if description != "" {
			board.Description = description
		}
		if err := st.Boards.Update(ctx, board); err != nil {
			return apperr.Internal("failed to update board", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, "board.updated", userID, boardID, map[string]any{
		"title": board.Title,
	})
	return board, nil
}

// SetArchived flips the archive flag. Asking for the state the board is
// already in is a conflict, not a silent success.
func (s *BoardService) SetArchived(ctx context.Context, boardID, userID uuid.UUID, archived bool) (*model.Board, error) {
	var board *model.Board
	err := s.tx.InTx(ctx, func(st Stores) error {
		var err error
		board, err = loadBoard(ctx, st, boardID)
		if err != nil {
			return err
		}

		resolver := authz.NewResolver(st.Boards, st.Members)
		if err := resolver.RequireOn(ctx, board, userID, model.CapArchive); err != nil {
			return err
		}
		if board.Archived == archived {
			if archived {
				return apperr.Conflict("board already archived")
			}
			return apperr.Conflict("board is not archived")
		}

		board.Archived = archived
		if err := st.Boards.Update(ctx, board); err != nil {
			return apperr.Internal("failed to update board", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	event := "board.archived"
	if !archived {
		event = "board.unarchived"
	}
	s.audit.Record(ctx, event, userID, boardID, nil)
	return board, nil
}

func (s *BoardService) SetStarred(ctx context.Context, boardID, userID uuid.UUID, starred bool) (*model.Board, error) {
	var board *model.Board
	err := s.tx.InTx(ctx, func(st Stores) error {
		var err error
		board, err = loadBoard(ctx, st, boardID)
		if err != nil {
			return err
		}

		resolver := authz.NewResolver(st.Boards, st.Members)
		if err := resolver.RequireOn(ctx, board, userID, model.CapToggleStar); err != nil {
			return err
		}

		board.Starred = starred
		if err := st.Boards.Update(ctx, board); err != nil {
			return apperr.Internal("failed to update board", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, "board.starred", userID, boardID, map[string]any{
		"starred": starred,
	})
	return board, nil
}
