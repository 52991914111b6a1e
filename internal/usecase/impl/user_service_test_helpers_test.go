package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"swapmarket/config"
	"swapmarket/internal/domain/repository"
	mockRepo "swapmarket/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MaxActiveSessions: maxActiveSessions,
			SuperAdminEmail:   "root@swapmarket.test",
		},
		Cache: &config.CacheConfig{
			FreshnessWindow: 5 * time.Minute,
		},
		Storage: &config.StorageConfig{
			MaxImageBytes: 1024,
		},
	}
}

// expectTx runs every transaction callback against factory.
func expectTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) *mockRepo.MockTransactionManager_Execute_Call {
	return txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

// fixedClock returns a clock frozen at t.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
