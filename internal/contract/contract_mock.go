package contract

import (
	"context"

	"github.com/huangsam/pdpboard/schema"
	"github.com/stretchr/testify/mock"
)

// MockTableLoader is a mock implementation of TableLoader for testing.
type MockTableLoader struct {
	mock.Mock
}

var _ TableLoader = &MockTableLoader{} // Compile-time check

// Load implements the TableLoader interface.
func (m *MockTableLoader) Load(ctx context.Context, path string, sheet string) (schema.Table, error) {
	args := m.Called(ctx, path, sheet)
	return args.Get(0).(schema.Table), args.Error(1)
}
