package repository

import (
	"context"

	"ctf/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a testify mock of repository.TransactionManager.
// When no expectation is set with On("Execute"), it runs fn against Factory
// directly, which is what most use case tests need.
type MockTransactionManager struct {
	mock.Mock

	Factory repository.RepositoryFactory
}

// NewMockTransactionManager returns a manager that passes factory to every callback.
func NewMockTransactionManager(factory repository.RepositoryFactory) *MockTransactionManager {
	return &MockTransactionManager{Factory: factory}
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	if len(m.ExpectedCalls) == 0 {
		return fn(m.Factory)
	}

	args := m.Called(ctx, fn)

	return args.Error(0)
}

// MockRepositoryFactory hands out fixed repository instances.
type MockRepositoryFactory struct {
	Users     repository.UserRepository
	Questions repository.QuestionRepository
	Progress  repository.ProgressRepository
}

func (f *MockRepositoryFactory) NewUserRepository() repository.UserRepository {
	return f.Users
}

func (f *MockRepositoryFactory) NewQuestionRepository() repository.QuestionRepository {
	return f.Questions
}

func (f *MockRepositoryFactory) NewProgressRepository() repository.ProgressRepository {
	return f.Progress
}
