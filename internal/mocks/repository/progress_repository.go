package repository

import (
	"context"

	"ctf/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockProgressRepository is a testify mock of repository.ProgressRepository.
type MockProgressRepository struct {
	mock.Mock
}

// NewMockProgressRepository registers expectation assertions on test cleanup.
func NewMockProgressRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProgressRepository {
	m := &MockProgressRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProgressRepository) MarkSolved(ctx context.Context, userID, questionID int64) (*entity.SolvedQuestion, error) {
	args := m.Called(ctx, userID, questionID)

	solved, _ := args.Get(0).(*entity.SolvedQuestion)

	return solved, args.Error(1)
}

func (m *MockProgressRepository) UnlockHint(ctx context.Context, userID, questionID int64) (*entity.UnlockedHint, error) {
	args := m.Called(ctx, userID, questionID)

	hint, _ := args.Get(0).(*entity.UnlockedHint)

	return hint, args.Error(1)
}

func (m *MockProgressRepository) HasSolved(ctx context.Context, userID, questionID int64) (bool, error) {
	args := m.Called(ctx, userID, questionID)

	return args.Bool(0), args.Error(1)
}

func (m *MockProgressRepository) HasUnlockedHint(ctx context.Context, userID, questionID int64) (bool, error) {
	args := m.Called(ctx, userID, questionID)

	return args.Bool(0), args.Error(1)
}

func (m *MockProgressRepository) CountSolved(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)

	return args.Get(0).(int64), args.Error(1)
}
