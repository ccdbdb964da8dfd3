package operation

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// 🔧 MockStore is a mock implementation of the status.Store interface
type MockStore struct {
	mock.Mock
}

func (m *MockStore) ReadFile(ctx context.Context, path string) ([]byte, error) {
	result := m.Called(ctx, path)
	content, _ := result.Get(0).([]byte)
	return content, result.Error(1)
}

func (m *MockStore) WriteFile(ctx context.Context, path string, content []byte) error {
	result := m.Called(ctx, path, content)
	return result.Error(0)
}
