package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"swapmarket/internal/domain/service"
	mockRepo "swapmarket/internal/mocks/repository"
	mockSvc "swapmarket/internal/mocks/service"
	"swapmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (
	usecase.NotificationUsecase,
	*mockRepo.MockDeviceRepository,
	*mockSvc.MockNotificationService,
) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewNotificationService(deviceRepo, notificationSvc, logger), deviceRepo, notificationSvc
}

func TestNotificationService_DeliverMarketEvent_Success(t *testing.T) {
	svc, deviceRepo, notificationSvc := createTestNotificationService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	event := &service.MarketEvent{
		EventID:      uuid.NewString(),
		Type:         service.EventSwapRequested,
		SubjectID:    uuid.NewString(),
		RecipientIDs: []string{ownerID.String()},
		Data:         map[string]string{"product_name": "Steam Deck"},
	}

	deviceRepo.EXPECT().FindActiveTokensByUsers(ctx, []uuid.UUID{ownerID}).Return([]string{"token-a", "token-b"}, nil)
	notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-a", "token-b"}, "New swap request", "Someone wants to swap for Steam Deck",
			mock.MatchedBy(func(data map[string]string) bool {
				return data["event_id"] == event.EventID && data["product_name"] == "Steam Deck"
			})).
		Return(1, 1, []string{"token-b"}, nil)
	deviceRepo.EXPECT().DeactivateTokens(ctx, []string{"token-b"}).Return(nil)

	report, err := svc.DeliverMarketEvent(ctx, event)

	require.NoError(t, err)
	assert.Equal(t, &usecase.DeliveryReport{Recipients: 1, Tokens: 2, Sent: 1, Failed: 1, Deactivated: 1}, report)
}

func TestNotificationService_DeliverMarketEvent_NothingToPush(t *testing.T) {
	svc, _, _ := createTestNotificationService(t)

	tests := []struct {
		name  string
		event *service.MarketEvent
	}{
		{name: "listing events are not pushed", event: &service.MarketEvent{Type: service.EventProductListed, RecipientIDs: []string{uuid.NewString()}}},
		{name: "no recipients", event: &service.MarketEvent{Type: service.EventOrderPlaced}},
		{name: "malformed recipients", event: &service.MarketEvent{Type: service.EventOrderPlaced, RecipientIDs: []string{"not-a-uuid"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := svc.DeliverMarketEvent(context.Background(), tt.event)

			require.NoError(t, err)
			assert.Zero(t, report.Sent)
		})
	}
}

func TestNotificationService_DeliverMarketEvent_TokenLookupFails(t *testing.T) {
	svc, deviceRepo, _ := createTestNotificationService(t)

	deviceRepo.EXPECT().FindActiveTokensByUsers(mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	report, err := svc.DeliverMarketEvent(context.Background(), &service.MarketEvent{
		Type:         service.EventOrderPlaced,
		RecipientIDs: []string{uuid.NewString()},
	})

	assert.Nil(t, report)
	assert.Contains(t, err.Error(), "failed to fetch device tokens")
}

func TestNotificationService_DeliverMarketEvent_BatchesAndSkipsFailedBatch(t *testing.T) {
	svc, deviceRepo, notificationSvc := createTestNotificationService(t)

	tokens := make([]string, firebaseBatchSize+10)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("token-%d", i)
	}

	deviceRepo.EXPECT().FindActiveTokensByUsers(mock.Anything, mock.Anything).Return(tokens, nil)
	notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, tokens[:firebaseBatchSize], mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, nil, errors.New("quota exceeded"))
	notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, tokens[firebaseBatchSize:], mock.Anything, mock.Anything, mock.Anything).
		Return(10, 0, nil, nil)

	report, err := svc.DeliverMarketEvent(context.Background(), &service.MarketEvent{
		Type:         service.EventSwapResolved,
		RecipientIDs: []string{uuid.NewString()},
		Data:         map[string]string{"status": "accepted"},
	})

	require.NoError(t, err)
	assert.Equal(t, 10, report.Sent)
	assert.Equal(t, firebaseBatchSize, report.Failed)
	assert.Zero(t, report.Deactivated)
}
