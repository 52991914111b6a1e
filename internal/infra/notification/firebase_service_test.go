package notification

import (
	"context"
	"log/slog"
	"testing"

	"swapmarket/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotificationService_DisabledIsNoop(t *testing.T) {
	svc, err := NewNotificationService(context.Background(), &config.Config{}, slog.Default())
	require.NoError(t, err)

	sent, failed, invalid, err := svc.SendBatchNotification(context.Background(), []string{"a", "b"}, "t", "b", nil)

	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	assert.Zero(t, failed)
	assert.Empty(t, invalid)
	assert.NoError(t, svc.SendSingleNotification(context.Background(), "a", "t", "b", nil))
}

func TestFirebaseService_BatchLimit(t *testing.T) {
	svc := &firebaseService{}

	tokens := make([]string, MaxBatchSize+1)
	_, _, _, err := svc.SendBatchNotification(context.Background(), tokens, "t", "b", nil)
	assert.Error(t, err)

	sent, failed, invalid, err := svc.SendBatchNotification(context.Background(), nil, "t", "b", nil)
	assert.NoError(t, err)
	assert.Zero(t, sent+failed)
	assert.Nil(t, invalid)
}
