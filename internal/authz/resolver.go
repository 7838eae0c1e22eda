package authz

import (
	"context"

	"github.com/google/uuid"

	"github.com/dongwonkwak/boardly-sub002/internal/apperr"
	"github.com/dongwonkwak/boardly-sub002/internal/model"
)

// BoardGetter is the slice of the board store the resolver needs.
// Absent boards are reported as (nil, nil).
type BoardGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Board, error)
}

// MembershipGetter is the slice of the membership store the resolver needs.
// Absent rows are reported as (nil, nil).
type MembershipGetter interface {
	GetByBoardAndUser(ctx context.Context, boardID, userID uuid.UUID) (*model.BoardMember, error)
}

// Resolver answers "what is this user's effective role on this board" and
// the capability questions built on top of it. Every use case shares this
// one component; none re-derives the rules.
type Resolver struct {
	boards  BoardGetter
	members MembershipGetter
}

func NewResolver(boards BoardGetter, members MembershipGetter) *Resolver {
	return &Resolver{boards: boards, members: members}
}

// ResolveRole returns the user's effective role on the board: the owner
// sentinel when the user is the board's owner (no membership lookup is
// made), otherwise the role stored on the user's active membership row.
func (r *Resolver) ResolveRole(ctx context.Context, boardID, userID uuid.UUID) (model.Role, error) {
	board, err := r.boards.GetByID(ctx, boardID)
	if err != nil {
		return "", apperr.Internal("failed to load board", err)
	}
	if board == nil {
		return "", apperr.NotFound("board not found")
	}
	return r.RoleOn(ctx, board, userID)
}

// RoleOn resolves the role against an already-loaded board, saving callers
// that hold the aggregate a second lookup.
func (r *Resolver) RoleOn(ctx context.Context, board *model.Board, userID uuid.UUID) (model.Role, error) {
	if board.IsOwner(userID) {
		return model.RoleOwner, nil
	}

	member, err := r.members.GetByBoardAndUser(ctx, board.ID, userID)
	if err != nil {
		return "", apperr.Internal("failed to load board member", err)
	}
	if member == nil {
		return "", apperr.PermissionDenied("not a board participant")
	}
	if !member.Active {
		return "", apperr.PermissionDenied("member inactive")
	}
	return member.Role, nil
}

// Require fails with the resolver's error when the role cannot be resolved,
// and with PermissionDenied when the resolved role lacks the capability.
// "Cannot resolve" is never treated as "permitted".
func (r *Resolver) Require(ctx context.Context, boardID, userID uuid.UUID, c model.Capability) error {
	board, err := r.boards.GetByID(ctx, boardID)
	if err != nil {
		return apperr.Internal("failed to load board", err)
	}
	if board == nil {
		return apperr.NotFound("board not found")
	}
	return r.RequireOn(ctx, board, userID, c)
}

// RequireOn is Require against an already-loaded board.
func (r *Resolver) RequireOn(ctx context.Context, board *model.Board, userID uuid.UUID, c model.Capability) error {
	role, err := r.RoleOn(ctx, board, userID)
	if err != nil {
		return err
	}
	if !board.HasCapability(userID, role, c) {
		return apperr.PermissionDenied("insufficient role for this action")
	}
	return nil
}

// Can is the boolean form of Require. A resolution failure propagates as an
// error rather than reading as "not permitted by default".
func (r *Resolver) Can(ctx context.Context, boardID, userID uuid.UUID, c model.Capability) (bool, error) {
	err := r.Require(ctx, boardID, userID, c)
	if err == nil {
		return true, nil
	}
	if apperr.IsKind(err, apperr.KindPermissionDenied) {
		return false, nil
	}
	return false, err
}
