//go:build !production

package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/palemoky/crazy-eights/internal/storage"
)

// MockRecorder 对局记录 mock
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) RecordResult(ctx context.Context, rec *storage.GameRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}
