package service_test

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dongwonkwak/boardly-sub002/internal/model"
	"github.com/dongwonkwak/boardly-sub002/internal/service"
)

// stubTx runs the unit of work against a fixed set of stores, standing in
// for a real database transaction.
type stubTx struct {
	stores service.Stores
}

func (s stubTx) InTx(_ context.Context, fn func(service.Stores) error) error {
	return fn(s.stores)
}

// recordingAudit captures emitted events for assertions.
type recordingAudit struct {
	mu     sync.Mutex
	events []auditEvent
}

type auditEvent struct {
	EventType string
	ActorID   uuid.UUID
	BoardID   uuid.UUID
	Payload   map[string]any
}

func (r *recordingAudit) Record(_ context.Context, eventType string, actorID, boardID uuid.UUID, payload map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, auditEvent{EventType: eventType, ActorID: actorID, BoardID: boardID, Payload: payload})
}

type MockBoardStore struct {
	mock.Mock
}

func (m *MockBoardStore) Create(ctx context.Context, board *model.Board) error {
	return m.Called(ctx, board).Error(0)
}

func (m *MockBoardStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Board, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*model.Board), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBoardStore) GetOwned(ctx context.Context, ownerID uuid.UUID) ([]model.Board, error) {
	args := m.Called(ctx, ownerID)
	if b := args.Get(0); b != nil {
		return b.([]model.Board), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBoardStore) GetSharedWith(ctx context.Context, userID uuid.UUID) ([]model.Board, error) {
	args := m.Called(ctx, userID)
	if b := args.Get(0); b != nil {
		return b.([]model.Board), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBoardStore) CountOwned(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBoardStore) Update(ctx context.Context, board *model.Board) error {
	return m.Called(ctx, board).Error(0)
}

func (m *MockBoardStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockMemberStore struct {
	mock.Mock
}

func (m *MockMemberStore) Create(ctx context.Context, member *model.BoardMember) error {
	return m.Called(ctx, member).Error(0)
}

func (m *MockMemberStore) GetByBoardAndUser(ctx context.Context, boardID, userID uuid.UUID) (*model.BoardMember, error) {
	args := m.Called(ctx, boardID, userID)
	if v := args.Get(0); v != nil {
		return v.(*model.BoardMember), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMemberStore) ExistsActive(ctx context.Context, boardID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, boardID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMemberStore) CountActiveByBoard(ctx context.Context, boardID uuid.UUID) (int64, error) {
	args := m.Called(ctx, boardID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMemberStore) ListActiveByBoard(ctx context.Context, boardID uuid.UUID) ([]model.BoardMember, error) {
	args := m.Called(ctx, boardID)
	if v := args.Get(0); v != nil {
		return v.([]model.BoardMember), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMemberStore) Update(ctx context.Context, member *model.BoardMember) error {
	return m.Called(ctx, member).Error(0)
}

func (m *MockMemberStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMemberStore) DeleteByBoard(ctx context.Context, boardID uuid.UUID) error {
	return m.Called(ctx, boardID).Error(0)
}

type MockListStore struct {
	mock.Mock
}

func (m *MockListStore) Create(ctx context.Context, list *model.BoardList) error {
	return m.Called(ctx, list).Error(0)
}

func (m *MockListStore) GetByID(ctx context.Context, id uuid.UUID) (*model.BoardList, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*model.BoardList), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockListStore) GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.BoardList, error) {
	args := m.Called(ctx, boardID)
	if v := args.Get(0); v != nil {
		return v.([]model.BoardList), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockListStore) GetMaxPosition(ctx context.Context, boardID uuid.UUID) (int, error) {
	args := m.Called(ctx, boardID)
	return args.Int(0), args.Error(1)
}

func (m *MockListStore) Update(ctx context.Context, list *model.BoardList) error {
	return m.Called(ctx, list).Error(0)
}

func (m *MockListStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockListStore) DeleteByBoard(ctx context.Context, boardID uuid.UUID) error {
	return m.Called(ctx, boardID).Error(0)
}

type MockCardStore struct {
	mock.Mock
}

func (m *MockCardStore) Create(ctx context.Context, card *model.Card) error {
	return m.Called(ctx, card).Error(0)
}

func (m *MockCardStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Card, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*model.Card), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCardStore) GetByListID(ctx context.Context, listID uuid.UUID) ([]model.Card, error) {
	args := m.Called(ctx, listID)
	if v := args.Get(0); v != nil {
		return v.([]model.Card), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCardStore) GetMaxPosition(ctx context.Context, listID uuid.UUID) (int, error) {
	args := m.Called(ctx, listID)
	return args.Int(0), args.Error(1)
}

func (m *MockCardStore) Move(ctx context.Context, cardID, listID uuid.UUID, position int) error {
	return m.Called(ctx, cardID, listID, position).Error(0)
}

func (m *MockCardStore) Update(ctx context.Context, card *model.Card) error {
	return m.Called(ctx, card).Error(0)
}

func (m *MockCardStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCardStore) DeleteByBoard(ctx context.Context, boardID uuid.UUID) error {
	return m.Called(ctx, boardID).Error(0)
}

type MockLabelStore struct {
	mock.Mock
}

func (m *MockLabelStore) Create(ctx context.Context, label *model.Label) error {
	return m.Called(ctx, label).Error(0)
}

func (m *MockLabelStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Label, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*model.Label), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLabelStore) GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.Label, error) {
	args := m.Called(ctx, boardID)
	if v := args.Get(0); v != nil {
		return v.([]model.Label), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLabelStore) Update(ctx context.Context, label *model.Label) error {
	return m.Called(ctx, label).Error(0)
}

func (m *MockLabelStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockLabelStore) DeleteByBoard(ctx context.Context, boardID uuid.UUID) error {
	return m.Called(ctx, boardID).Error(0)
}

type MockActivityStore struct {
	mock.Mock
}

func (m *MockActivityStore) Create(ctx context.Context, activity *model.Activity) error {
	return m.Called(ctx, activity).Error(0)
}

func (m *MockActivityStore) ListByBoard(ctx context.Context, boardID uuid.UUID, limit int) ([]model.Activity, error) {
	args := m.Called(ctx, boardID, limit)
	if v := args.Get(0); v != nil {
		return v.([]model.Activity), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockActivityStore) DeleteByBoard(ctx context.Context, boardID uuid.UUID) error {
	return m.Called(ctx, boardID).Error(0)
}

type MockUserExistence struct {
	mock.Mock
}

func (m *MockUserExistence) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
