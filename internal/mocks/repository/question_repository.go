package repository

import (
	"context"

	"ctf/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockQuestionRepository is a testify mock of repository.QuestionRepository.
type MockQuestionRepository struct {
	mock.Mock
}

// NewMockQuestionRepository registers expectation assertions on test cleanup.
func NewMockQuestionRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQuestionRepository {
	m := &MockQuestionRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockQuestionRepository) Create(ctx context.Context, question *entity.Question) error {
	args := m.Called(ctx, question)

	return args.Error(0)
}

func (m *MockQuestionRepository) FindByID(ctx context.Context, id int64) (*entity.Question, error) {
	args := m.Called(ctx, id)

	question, _ := args.Get(0).(*entity.Question)

	return question, args.Error(1)
}

func (m *MockQuestionRepository) FindByTitle(ctx context.Context, title string) (*entity.Question, error) {
	args := m.Called(ctx, title)

	question, _ := args.Get(0).(*entity.Question)

	return question, args.Error(1)
}

func (m *MockQuestionRepository) List(ctx context.Context) ([]*entity.Question, error) {
	args := m.Called(ctx)

	questions, _ := args.Get(0).([]*entity.Question)

	return questions, args.Error(1)
}

func (m *MockQuestionRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}
