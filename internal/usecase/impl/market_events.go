package impl

import (
	"context"
	"log/slog"

	deliverycontext "swapmarket/internal/delivery/context"
	"swapmarket/internal/domain/service"

	"github.com/google/uuid"
)

func newMarketEvent(ctx context.Context, eventType string, actorID, subjectID uuid.UUID, recipients []uuid.UUID, data map[string]string) *service.MarketEvent {
	recipientIDs := make([]string, 0, len(recipients))
	seen := make(map[uuid.UUID]struct{}, len(recipients))
	for _, id := range recipients {
		if _, dup := seen[id]; dup || id == uuid.Nil || id == actorID {
			continue
		}
		seen[id] = struct{}{}
		recipientIDs = append(recipientIDs, id.String())
	}

	return &service.MarketEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		EventID:      uuid.NewString(),
		Type:         eventType,
		ActorID:      actorID.String(),
		SubjectID:    subjectID.String(),
		RecipientIDs: recipientIDs,
		Data:         data,
	}
}

// publishEvent hands the event to the publisher. The write it describes has already committed, so failures are only logged.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.MarketEvent) {
	if publisher == nil {
		return
	}
	if err := publisher.PublishMarketEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish market event",
			slog.String("type", event.Type),
			slog.String("subjectID", event.SubjectID),
			slog.Any("error", err))
	}
}
