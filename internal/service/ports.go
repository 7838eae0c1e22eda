package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/dongwonkwak/boardly-sub002/internal/model"
)

// Store interfaces are defined on the consumer side; the gorm repositories
// in internal/repository satisfy them. Lookups report absence as (nil, nil).

type BoardStore interface {
	Create(ctx context.Context, board *model.Board) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Board, error)
	GetOwned(ctx context.Context, ownerID uuid.UUID) ([]model.Board, error)
	GetSharedWith(ctx context.Context, userID uuid.UUID) ([]model.Board, error)
	CountOwned(ctx context.Context, ownerID uuid.UUID) (int64, error)
	Update(ctx context.Context, board *model.Board) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type MemberStore interface {
	Create(ctx context.Context, member *model.BoardMember) error
	GetByBoardAndUser(ctx context.Context, boardID, userID uuid.UUID) (*model.BoardMember, error)
	ExistsActive(ctx context.Context, boardID, userID uuid.UUID) (bool, error)
	CountActiveByBoard(ctx context.Context, boardID uuid.UUID) (int64, error)
	ListActiveByBoard(ctx context.Context, boardID uuid.UUID) ([]model.BoardMember, error)
	Update(ctx context.Context, member *model.BoardMember) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByBoard(ctx context.Context, boardID uuid.UUID) error
}

type ListStore interface {
	Create(ctx context.Context, list *model.BoardList) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.BoardList, error)
	GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.BoardList, error)
	GetMaxPosition(ctx context.Context, boardID uuid.UUID) (int, error)
	Update(ctx context.Context, list *model.BoardList) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByBoard(ctx context.Context, boardID uuid.UUID) error
}

type CardStore interface {
	Create(ctx context.Context, card *model.Card) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Card, error)
	GetByListID(ctx context.Context, listID uuid.UUID) ([]model.Card, error)
	GetMaxPosition(ctx context.Context, listID uuid.UUID) (int, error)
	Move(ctx context.Context, cardID, listID uuid.UUID, position int) error
	Update(ctx context.Context, card *model.Card) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByBoard(ctx context.Context, boardID uuid.UUID) error
}

type LabelStore interface {
	Create(ctx context.Context, label *model.Label) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Label, error)
	GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.Label, error)
	Update(ctx context.Context, label *model.Label) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByBoard(ctx context.Context, boardID uuid.UUID) error
}

type ActivityStore interface {
	Create(ctx context.Context, activity *model.Activity) error
	ListByBoard(ctx context.Context, boardID uuid.UUID, limit int) ([]model.Activity, error)
	DeleteByBoard(ctx context.Context, boardID uuid.UUID) error
}

// UserExistence is consulted before trusting a user id from a request.
type UserExistence interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// Stores bundles every store bound to one unit of work.
type Stores struct {
	Boards     BoardStore
	Members    MemberStore
	Lists      ListStore
	Cards      CardStore
	Labels     LabelStore
	Activities ActivityStore
	Users      UserExistence
}

// TxRunner runs fn with all stores bound to a single database transaction,
// so check-then-mutate flows cannot interleave with concurrent requests.
type TxRunner interface {
	InTx(ctx context.Context, fn func(Stores) error) error
}

// AuditSink records board activity. Fire-and-forget: a failing sink must
// never fail the business operation that produced the event.
type AuditSink interface {
	Record(ctx context.Context, eventType string, actorID, boardID uuid.UUID, payload map[string]any)
}
