package repository

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockSchemaRepository is a testify mock of repository.SchemaRepository.
type MockSchemaRepository struct {
	mock.Mock
}

// NewMockSchemaRepository registers expectation assertions on test cleanup.
func NewMockSchemaRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSchemaRepository {
	m := &MockSchemaRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSchemaRepository) EnsureSchema(ctx context.Context) error {
	args := m.Called(ctx)

	return args.Error(0)
}
