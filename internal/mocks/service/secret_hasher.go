package service

import "github.com/stretchr/testify/mock"

// MockSecretHasher is a testify mock of service.SecretHasher.
type MockSecretHasher struct {
	mock.Mock
}

// NewMockSecretHasher registers expectation assertions on test cleanup.
func NewMockSecretHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSecretHasher {
	m := &MockSecretHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSecretHasher) Hash(plaintext string) (string, error) {
	args := m.Called(plaintext)

	return args.String(0), args.Error(1)
}

func (m *MockSecretHasher) Check(plaintext, hash string) bool {
	args := m.Called(plaintext, hash)

	return args.Bool(0)
}
