package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"swapmarket/config"
	deliverycontext "swapmarket/internal/delivery/context"
	"swapmarket/internal/domain/constants"
	"swapmarket/internal/domain/service"
	mockUsecase "swapmarket/internal/mocks/usecase"
	"swapmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pushBody(t *testing.T, event *service.MarketEvent, attrs map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = attrs
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func newPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockNotificationUsecase) {
	notifications := mockUsecase.NewMockNotificationUsecase(t)
	if cfg == nil {
		cfg = &config.Config{}
	}

	return NewPushHandler(PushHandlerParams{
		Config:        cfg,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		Notifications: notifications,
	}), notifications
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	e.POST("/push", h.HandlePush)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestHandlePush(t *testing.T) {
	event := &service.MarketEvent{
		EventID:      "e-1",
		Type:         service.EventSwapRequested,
		RecipientIDs: []string{"8d7f2b5e-8a57-4b2c-9f8e-0c7a4e5d1b21"},
		Data:         map[string]string{"product_name": "iPhone 13"},
	}

	tests := []struct {
		name       string
		body       func(t *testing.T) string
		setup      func(n *mockUsecase.MockNotificationUsecase)
		wantStatus int
	}{
		{
			name: "delivered",
			body: func(t *testing.T) string { return pushBody(t, event, map[string]string{"request_id": "req-42"}) },
			setup: func(n *mockUsecase.MockNotificationUsecase) {
				n.EXPECT().DeliverMarketEvent(mock.MatchedBy(func(ctx context.Context) bool {
					return ctx.Value(deliverycontext.KeyRequestID) == "req-42"
				}), mock.MatchedBy(func(e *service.MarketEvent) bool {
					return e.EventID == "e-1" && e.Type == service.EventSwapRequested
				})).Return(&usecase.DeliveryReport{Recipients: 1, Sent: 1}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "transient failure asks for redelivery",
			body: func(t *testing.T) string { return pushBody(t, event, nil) },
			setup: func(n *mockUsecase.MockNotificationUsecase) {
				n.EXPECT().DeliverMarketEvent(mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "data is not base64",
			body:       func(*testing.T) string { return `{"message":{"data":"%%%"}}` },
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "event without type",
			body: func(t *testing.T) string {
				return pushBody(t, &service.MarketEvent{EventID: "e-2"}, nil)
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notifications := newPushHandler(t, nil)
			if tt.setup != nil {
				tt.setup(notifications)
			}

			rec := servePush(h, tt.body(t))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandlePush_RejectsUnverifiedToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = "production"

	h, _ := newPushHandler(t, cfg)
	require.NotNil(t, h.verify)

	rec := servePush(h, `{}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewPushHandler_LocalSkipsVerification(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvLocal

	h, _ := newPushHandler(t, cfg)
	assert.Nil(t, h.verify)
}
