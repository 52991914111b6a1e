package usecase

import (
	"context"

	"swapmarket/internal/domain/service"
)

// DeliveryReport summarises one push fan-out
type DeliveryReport struct {
	Recipients  int `json:"recipients"`
	Tokens      int `json:"tokens"`
	Sent        int `json:"sent"`
	Failed      int `json:"failed"`
	Deactivated int `json:"deactivated"`
}

// NotificationUsecase pushes marketplace events to the devices of their recipients
type NotificationUsecase interface {
	// DeliverMarketEvent sends the event to every active device of its recipients and
	// deactivates tokens the push provider reports as invalid
	DeliverMarketEvent(ctx context.Context, event *service.MarketEvent) (*DeliveryReport, error)
}
