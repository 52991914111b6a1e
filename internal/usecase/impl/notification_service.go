package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "swapmarket/internal/delivery/context"
	"swapmarket/internal/domain/repository"
	"swapmarket/internal/domain/service"
	"swapmarket/internal/usecase"

	"github.com/google/uuid"
)

const (
	// Firebase batch size limit
	firebaseBatchSize = 500
)

type notificationService struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	deviceRepo repository.DeviceRepository,
	notificationSvc service.NotificationService,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
		logger:          logger,
	}
}

// notificationText renders the push title and body of a marketplace event
func notificationText(event *service.MarketEvent) (title, body string, ok bool) {
	name := event.Data["product_name"]
	if name == "" {
		name = "your listing"
	}

	switch event.Type {
	case service.EventSwapRequested:
		return "New swap request", fmt.Sprintf("Someone wants to swap for %s", name), true
	case service.EventSwapResolved:
		return "Swap request updated", fmt.Sprintf("Your swap request was %s", event.Data["status"]), true
	case service.EventOrderPlaced:
		return "New order", fmt.Sprintf("%s was just ordered", name), true
	default:
		return "", "", false
	}
}

// DeliverMarketEvent pushes the event to its recipients' active devices
func (s *notificationService) DeliverMarketEvent(ctx context.Context, event *service.MarketEvent) (*usecase.DeliveryReport, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	report := &usecase.DeliveryReport{}

	title, body, ok := notificationText(event)
	if !ok || len(event.RecipientIDs) == 0 {
		logger.Debug("Event has nothing to push", slog.String("type", event.Type), slog.String("eventID", event.EventID))

		return report, nil
	}

	userIDs := make([]uuid.UUID, 0, len(event.RecipientIDs))
	for _, raw := range event.RecipientIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			logger.Warn("Skipping malformed recipient", slog.String("recipient", raw))

			continue
		}
		userIDs = append(userIDs, id)
	}
	report.Recipients = len(userIDs)
	if len(userIDs) == 0 {
		return report, nil
	}

	tokens, err := s.deviceRepo.FindActiveTokensByUsers(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch device tokens: %w", err)
	}
	report.Tokens = len(tokens)

	data := map[string]string{
		"event_id":   event.EventID,
		"type":       event.Type,
		"subject_id": event.SubjectID,
	}
	for k, v := range event.Data {
		data[k] = v
	}

	var invalidTokens []string
	for i := 0; i < len(tokens); i += firebaseBatchSize {
		batch := tokens[i:min(i+firebaseBatchSize, len(tokens))]

		sent, failed, batchInvalid, err := s.notificationSvc.SendBatchNotification(ctx, batch, title, body, data)
		if err != nil {
			// Log error but continue with other batches
			logger.Error("Push batch failed", slog.Int("batchSize", len(batch)), slog.Any("error", err))
			report.Failed += len(batch)

			continue
		}

		report.Sent += sent
		report.Failed += failed
		invalidTokens = append(invalidTokens, batchInvalid...)
	}

	if len(invalidTokens) > 0 {
		if err := s.deviceRepo.DeactivateTokens(ctx, invalidTokens); err != nil {
			logger.Error("Failed to deactivate invalid tokens", slog.Int("count", len(invalidTokens)), slog.Any("error", err))
		} else {
			report.Deactivated = len(invalidTokens)
		}
	}

	logger.Info("Market event delivered",
		slog.String("type", event.Type),
		slog.String("eventID", event.EventID),
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed))

	return report, nil
}
