package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/dongwonkwak/boardly-sub002/internal/apperr"
	"github.com/dongwonkwak/boardly-sub002/internal/authz"
	"github.com/dongwonkwak/boardly-sub002/internal/model"
)

// MembershipService owns the board membership lifecycle: adding members,
// removing them (soft delete) and changing their roles, under the
// structural invariants of the roster. Each mutation runs inside one
// transaction; the permission check happens inside it too.
type MembershipService struct {
	tx    TxRunner
	audit AuditSink
}

func NewMembershipService(tx TxRunner, audit AuditSink) *MembershipService {
	return &MembershipService{tx: tx, audit: audit}
}

func loadBoard(ctx context.Context, st Stores, boardID uuid.UUID) (*model.Board, error) {
	board, err := st.Boards.GetByID(ctx, boardID)
	if err != nil {
		return nil, apperr.Internal("failed to load board", err)
	}
	if board == nil {
		return nil, apperr.NotFound("board not found")
	}
	return board, nil
}

// AddMember grants targetUserID access to the board with the given role.
// The requester needs the manage-members capability, the board must not be
// archived, and the target must exist and not already be an active member.
// An inactive row for the target is reactivated with the new role rather
// than duplicated.
func (s *MembershipService) AddMember(ctx context.Context, boardID, targetUserID uuid.UUID, role model.Role, requestedBy uuid.UUID) (*model.BoardMember, error) {
	if !role.Assignable() {
		return nil, apperr.InvalidInput("role must be viewer or editor")
	}

	var added *model.BoardMember
	err := s.tx.InTx(ctx, func(st Stores) error {
		board, err := loadBoard(ctx, st, boardID)
		if err != nil {
			return err
		}

		resolver := authz.NewResolver(st.Boards, st.Members)
		if err := resolver.RequireOn(ctx, board, requestedBy, model.CapManageMembers); err != nil {
			return err
		}

		// Archived boards are structurally frozen.
		if board.Archived {
			return apperr.Conflict("board is archived")
		}
		if board.IsOwner(targetUserID) {
			return apperr.Conflict("user is the board owner and already has full access")
		}

		exists, err := st.Users.Exists(ctx, targetUserID)
		if err != nil {
			return apperr.Internal("failed to look up user", err)
		}
		if !exists {
			return apperr.NotFound("user not found")
		}

		existing, err := st.Members.GetByBoardAndUser(ctx, boardID, targetUserID)
		if err != nil {
			return apperr.Internal("failed to load board member", err)
		}
		if existing != nil {
			if existing.Active {
				return apperr.Conflict("membership already exists")
			}
			// One row per (board, user): reactivate instead of inserting.
			existing.Active = true
			existing.Role = role
			if err := st.Members.Update(ctx, existing); err != nil {
				return apperr.Internal("failed to reactivate board member", err)
			}
			added = existing
			return nil
		}

		member := &model.BoardMember{
			BoardID: boardID,
			UserID:  targetUserID,
			Role:    role,
			Active:  true,
		}
		if err := st.Members.Create(ctx, member); err != nil {
			return apperr.Internal("failed to create board member", err)
		}
		added = member
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, "member.added", requestedBy, boardID, map[string]any{
		"user_id": targetUserID.String(),
		"role":    string(role),
	})
	return added, nil
}

// RemoveMember deactivates targetUserID's membership. The self check runs
// before anything else so that self-removal is always an input error, no
// matter what the actor may do on the board. The owner can never be removed
// (checked by identity, never by stored role), and neither can the last
// remaining active member. The count floor is over membership rows only;
// the owner holds no row and does not raise it.
func (s *MembershipService) RemoveMember(ctx context.Context, boardID, targetUserID, requestedBy uuid.UUID) error {
	if requestedBy == targetUserID {
		return apperr.InvalidInput("cannot remove yourself from the board")
	}

	err := s.tx.InTx(ctx, func(st Stores) error {
		board, err := loadBoard(ctx, st, boardID)
		if err != nil {
			return err
		}

		resolver := authz.NewResolver(st.Boards, st.Members)
		if err := resolver.RequireOn(ctx, board, requestedBy, model.CapManageMembers); err != nil {
			return err
		}

		if board.IsOwner(targetUserID) {
			return apperr.BusinessRule("the board owner cannot be removed")
		}

		member, err := st.Members.GetByBoardAndUser(ctx, boardID, targetUserID)
		if err != nil {
			return apperr.Internal("failed to load board member", err)
		}
		if member == nil {
			return apperr.NotFound("membership not found")
		}
		if !member.Active {
			return apperr.Conflict("member already inactive")
		}

		count, err := st.Members.CountActiveByBoard(ctx, boardID)
		if err != nil {
			return apperr.Internal("failed to count board members", err)
		}
		if count <= 1 {
			return apperr.BusinessRule("cannot remove the last remaining member")
		}

		member.Active = false
		if err := st.Members.Update(ctx, member); err != nil {
			return apperr.Internal("failed to deactivate board member", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.audit.Record(ctx, "member.removed", requestedBy, boardID, map[string]any{
		"user_id": targetUserID.String(),
	})
	return nil
}

// ChangeRole sets targetUserID's role. Changing a member to the role it
// already holds succeeds as a no-op and is still audited; the owner's role
// can never be changed since ownership is not a role.
func (s *MembershipService) ChangeRole(ctx context.Context, boardID, targetUserID uuid.UUID, newRole model.Role, requestedBy uuid.UUID) (*model.BoardMember, error) {
	if !newRole.Assignable() {
		return nil, apperr.InvalidInput("role must be viewer or editor")
	}
	if requestedBy == targetUserID {
		return nil, apperr.InvalidInput("cannot change your own role")
	}

	var changed *model.BoardMember
	var oldRole model.Role
	err := s.tx.InTx(ctx, func(st Stores) error {
		board, err := loadBoard(ctx, st, boardID)
		if err != nil {
			return err
		}

		resolver := authz.NewResolver(st.Boards, st.Members)
		if err := resolver.RequireOn(ctx, board, requestedBy, model.CapManageMembers); err != nil {
			return err
		}

		if board.IsOwner(targetUserID) {
			return apperr.BusinessRule("the board owner's role cannot be changed")
		}

		exists, err := st.Users.Exists(ctx, targetUserID)
		if err != nil {
			return apperr.Internal("failed to look up user", err)
		}
		if !exists {
			return apperr.NotFound("user not found")
		}

		member, err := st.Members.GetByBoardAndUser(ctx, boardID, targetUserID)
		if err != nil {
			return apperr.Internal("failed to load board member", err)
		}
		if member == nil {
			return apperr.NotFound("membership not found")
		}
		if !member.Active {
			return apperr.Conflict("member inactive")
		}

		oldRole = member.Role
		if member.Role != newRole {
			member.Role = newRole
			if err := st.Members.Update(ctx, member); err != nil {
				return apperr.Internal("failed to update board member", err)
			}
		}
		changed = member
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, "member.role_changed", requestedBy, boardID, map[string]any{
		"user_id":  targetUserID.String(),
		"old_role": string(oldRole),
		"new_role": string(newRole),
	})
	return changed, nil
}

// ListMembers returns the board's active roster. Any participant may read it.
func (s *MembershipService) ListMembers(ctx context.Context, boardID, requestedBy uuid.UUID) ([]model.BoardMember, error) {
	var members []model.BoardMember
	err := s.tx.InTx(ctx, func(st Stores) error {
		board, err := loadBoard(ctx, st, boardID)
		if err != nil {
			return err
		}

		resolver := authz.NewResolver(st.Boards, st.Members)
		if err := resolver.RequireOn(ctx, board, requestedBy, model.CapRead); err != nil {
			return err
		}

		members, err = st.Members.ListActiveByBoard(ctx, boardID)
		if err != nil {
			return apperr.Internal("failed to list board members", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return members, nil
}
