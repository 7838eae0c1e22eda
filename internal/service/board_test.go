package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dongwonkwak/boardly-sub002/internal/apperr"
	"github.com/dongwonkwak/boardly-sub002/internal/model"
	"github.com/dongwonkwak/boardly-sub002/internal/service"
)

type boardFixture struct {
	boards  *MockBoardStore
	members *MockMemberStore
	audit   *recordingAudit
	svc     *service.BoardService
}

func newBoardFixture() *boardFixture {
	f := &boardFixture{
		boards:  new(MockBoardStore),
		members: new(MockMemberStore),
		audit:   new(recordingAudit),
	}
	tx := stubTx{stores: service.Stores{
		Boards:     f.boards,
		Members:    f.members,
		Lists:      new(MockListStore),
		Cards:      new(MockCardStore),
		Labels:     new(MockLabelStore),
		Activities: new(MockActivityStore),
		Users:      new(MockUserExistence),
	}}
	f.svc = service.NewBoardService(tx, f.audit)
	return f
}

func TestCreateBoard_Success(t *testing.T) {
	// Arrange
	f := newBoardFixture()
	owner := uuid.New()

	f.boards.On("CountOwned", mock.Anything, owner).Return(int64(2), nil)
	f.boards.On("Create", mock.Anything, mock.AnythingOfType("*model.Board")).Return(nil)

	// Act
	board, err := f.svc.Create(context.Background(), owner, "Roadmap", "Q3 planning")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, owner, board.OwnerID)
	assert.Equal(t, "Roadmap", board.Title)
	assert.Len(t, f.audit.events, 1)
	assert.Equal(t, "board.created", f.audit.events[0].EventType)
}

func TestCreateBoard_LimitReached(t *testing.T) {
	// Arrange
	f := newBoardFixture()
	owner := uuid.New()

	f.boards.On("CountOwned", mock.Anything, owner).Return(int64(service.MaxBoardsPerUser), nil)

	// Act
	board, err := f.svc.Create(context.Background(), owner, "One too many", "")

	// Assert
	assert.Nil(t, board)
	assert.True(t, apperr.IsKind(err, apperr.KindBusinessRule))
	f.boards.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Empty(t, f.audit.events)
}

func TestGetBoard_ReturnsResolvedRole(t *testing.T) {
	// Arrange
	f := newBoardFixture()
	editor := uuid.New()
	board := &model.Board{ID: uuid.New(), OwnerID: uuid.New(), Title: "Shared"}

	f.boards.On("GetByID", mock.Anything, board.ID).Return(board, nil)
	f.members.On("GetByBoardAndUser", mock.Anything, board.ID, editor).
		Return(&model.BoardMember{BoardID: board.ID, UserID: editor, Role: model.RoleEditor, Active: true}, nil)

	// Act
	got, role, err := f.svc.Get(context.Background(), board.ID, editor)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, board.ID, got.ID)
	assert.Equal(t, model.RoleEditor, role)
}

func TestGetBoard_OwnerRoleWithoutMembershipRow(t *testing.T) {
	// Arrange
	f := newBoardFixture()
	owner := uuid.New()
	board := &model.Board{ID: uuid.New(), OwnerID: owner}

	f.boards.On("GetByID", mock.Anything, board.ID).Return(board, nil)

	// Act
	_, role, err := f.svc.Get(context.Background(), board.ID, owner)

	// Assert: the owner never has a membership row, so none is looked up
	assert.NoError(t, err)
	assert.Equal(t, model.RoleOwner, role)
	f.members.AssertNotCalled(t, "GetByBoardAndUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateBoard_ArchivedBoard(t *testing.T) {
	// Arrange
	f := newBoardFixture()
	owner := uuid.New()
	board := &model.Board{ID: uuid.New(), OwnerID: owner, Title: "Frozen", Archived: true}

	f.boards.On("GetByID", mock.Anything, board.ID).Return(board, nil)

	// Act
	_, err := f.svc.Update(context.Background(), board.ID, owner, "New title", "")

	// Assert
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	f.boards.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateBoard_ViewerDenied(t *testing.T) {
	// Arrange
	f := newBoardFixture()
	viewer := uuid.New()
	board := &model.Board{ID: uuid.New(), OwnerID: uuid.New()}

	f.boards.On("GetByID", mock.Anything, board.ID).Return(board, nil)
	f.members.On("GetByBoardAndUser", mock.Anything, board.ID, viewer).
		Return(&model.BoardMember{BoardID: board.ID, UserID: viewer, Role: model.RoleViewer, Active: true}, nil)

	// Act
	_, err := f.svc.Update(context.Background(), board.ID, viewer, "Nope", "")

	// Assert
	assert.True(t, apperr.IsKind(err, apperr.KindPermissionDenied))
	f.boards.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSetArchived_AlreadyArchived(t *testing.T) {
	// Arrange
	f := newBoardFixture()
	owner := uuid.New()
	board := &model.Board{ID: uuid.New(), OwnerID: owner, Archived: true}

	f.boards.On("GetByID", mock.Anything, board.ID).Return(board, nil)

	// Act
	_, err := f.svc.SetArchived(context.Background(), board.ID, owner, true)

	// Assert
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	assert.Empty(t, f.audit.events)
}

func TestSetArchived_Success(t *testing.T) {
	// Arrange
	f := newBoardFixture()
	owner := uuid.New()
	board := &model.Board{ID: uuid.New(), OwnerID: owner}

	f.boards.On("GetByID", mock.Anything, board.ID).Return(board, nil)
	f.boards.On("Update", mock.Anything, mock.AnythingOfType("*model.Board")).Return(nil)

	// Act
	got, err := f.svc.SetArchived(context.Background(), board.ID, owner, true)

	// Assert
	assert.NoError(t, err)
	assert.True(t, got.Archived)
	assert.Len(t, f.audit.events, 1)
	assert.Equal(t, "board.archived", f.audit.events[0].EventType)
}

func TestSetStarred_ViewerDenied(t *testing.T) {
	// Arrange
	f := newBoardFixture()
	viewer := uuid.New()
	board := &model.Board{ID: uuid.New(), OwnerID: uuid.New()}

	f.boards.On("GetByID", mock.Anything, board.ID).Return(board, nil)
	f.members.On("GetByBoardAndUser", mock.Anything, board.ID, viewer).
		Return(&model.BoardMember{BoardID: board.ID, UserID: viewer, Role: model.RoleViewer, Active: true}, nil)

	// Act
	_, err := f.svc.SetStarred(context.Background(), board.ID, viewer, true)

	// Assert
	assert.True(t, apperr.IsKind(err, apperr.KindPermissionDenied))
	f.boards.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSetStarred_EditorSuccess(t *testing.T) {
	// Arrange
	f := newBoardFixture()
	editor := uuid.New()
	board := &model.Board{ID: uuid.New(), OwnerID: uuid.New()}

	f.boards.On("GetByID", mock.Anything, board.ID).Return(board, nil)
	f.members.On("GetByBoardAndUser", mock.Anything, board.ID, editor).
		Return(&model.BoardMember{BoardID: board.ID, UserID: editor, Role: model.RoleEditor, Active: true}, nil)
	f.boards.On("Update", mock.Anything, mock.AnythingOfType("*model.Board")).Return(nil)

	// Act
	got, err := f.svc.SetStarred(context.Background(), board.ID, editor, true)

	// Assert
	assert.NoError(t, err)
	assert.True(t, got.Starred)
	assert.Equal(t, "board.starred", f.audit.events[0].EventType)
}
