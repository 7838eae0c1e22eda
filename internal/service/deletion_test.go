package service_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dongwonkwak/boardly-sub002/internal/apperr"
	"github.com/dongwonkwak/boardly-sub002/internal/model"
	"github.com/dongwonkwak/boardly-sub002/internal/service"
)

type deletionFixture struct {
	boards     *MockBoardStore
	members    *MockMemberStore
	lists      *MockListStore
	cards      *MockCardStore
	labels     *MockLabelStore
	activities *MockActivityStore
	svc        *service.BoardDeleter
}

func newDeletionFixture() *deletionFixture {
	f := &deletionFixture{
		boards:     new(MockBoardStore),
		members:    new(MockMemberStore),
		lists:      new(MockListStore),
		cards:      new(MockCardStore),
		labels:     new(MockLabelStore),
		activities: new(MockActivityStore),
	}
	tx := stubTx{stores: service.Stores{
		Boards:     f.boards,
		Members:    f.members,
		Lists:      f.lists,
		Cards:      f.cards,
		Labels:     f.labels,
		Activities: f.activities,
		Users:      new(MockUserExistence),
	}}
	log := logrus.New()
	log.SetOutput(io.Discard)
	f.svc = service.NewBoardDeleter(tx, log)
	return f
}

func TestDeleteBoard_CascadeOrder(t *testing.T) {
	// Arrange
	f := newDeletionFixture()
	owner := uuid.New()
	board := &model.Board{ID: uuid.New(), OwnerID: owner}
	var order []string

	f.boards.On("GetByID", mock.Anything, board.ID).Return(board, nil)
	f.cards.On("DeleteByBoard", mock.Anything, board.ID).Run(func(mock.Arguments) {
		order = append(order, "cards")
	}).Return(nil)
	f.lists.On("DeleteByBoard", mock.Anything, board.ID).Run(func(mock.Arguments) {
		order = append(order, "lists")
	}).Return(nil)
	f.members.On("DeleteByBoard", mock.Anything, board.ID).Run(func(mock.Arguments) {
		order = append(order, "members")
	}).Return(nil)
	f.labels.On("DeleteByBoard", mock.Anything, board.ID).Run(func(mock.Arguments) {
		order = append(order, "labels")
	}).Return(nil)
	f.activities.On("DeleteByBoard", mock.Anything, board.ID).Run(func(mock.Arguments) {
		order = append(order, "activities")
	}).Return(nil)
	f.boards.On("Delete", mock.Anything, board.ID).Run(func(mock.Arguments) {
		order = append(order, "board")
	}).Return(nil)

	// Act
	err := f.svc.Delete(context.Background(), board.ID, owner)

	// Assert: children before parents, board last
	assert.NoError(t, err)
	assert.Equal(t, []string{"cards", "lists", "members", "labels", "activities", "board"}, order)
}

func TestDeleteBoard_CardFailureHaltsCascade(t *testing.T) {
	// Arrange
	f := newDeletionFixture()
	owner := uuid.New()
	board := &model.Board{ID: uuid.New(), OwnerID: owner}

	f.boards.On("GetByID", mock.Anything, board.ID).Return(board, nil)
	f.cards.On("DeleteByBoard", mock.Anything, board.ID).Return(errors.New("db down"))

	// Act
	err := f.svc.Delete(context.Background(), board.ID, owner)

	// Assert: nothing past the failing step runs
	assert.True(t, apperr.IsKind(err, apperr.KindInternal))
	f.lists.AssertNotCalled(t, "DeleteByBoard", mock.Anything, mock.Anything)
	f.members.AssertNotCalled(t, "DeleteByBoard", mock.Anything, mock.Anything)
	f.boards.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteBoard_EditorDenied(t *testing.T) {
	// Arrange
	f := newDeletionFixture()
	editor := uuid.New()
	board := &model.Board{ID: uuid.New(), OwnerID: uuid.New()}

	f.boards.On("GetByID", mock.Anything, board.ID).Return(board, nil)
	f.members.On("GetByBoardAndUser", mock.Anything, board.ID, editor).
		Return(&model.BoardMember{BoardID: board.ID, UserID: editor, Role: model.RoleEditor, Active: true}, nil)

	// Act
	err := f.svc.Delete(context.Background(), board.ID, editor)

	// Assert
	assert.True(t, apperr.IsKind(err, apperr.KindPermissionDenied))
	f.cards.AssertNotCalled(t, "DeleteByBoard", mock.Anything, mock.Anything)
	f.boards.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteBoard_NotFound(t *testing.T) {
	// Arrange
	f := newDeletionFixture()
	boardID := uuid.New()

	f.boards.On("GetByID", mock.Anything, boardID).Return(nil, nil)

	// Act
	err := f.svc.Delete(context.Background(), boardID, uuid.New())

	// Assert
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
