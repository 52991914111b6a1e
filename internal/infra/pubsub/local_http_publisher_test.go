package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"swapmarket/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_SendsPushEnvelope(t *testing.T) {
	var received PushMessage
	var requestIDHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestIDHeader = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())
	event := &service.MarketEvent{
		RequestID:    "req-1",
		EventID:      "evt-1",
		Type:         service.EventSwapRequested,
		RecipientIDs: []string{"owner-1"},
	}

	require.NoError(t, publisher.PublishMarketEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestIDHeader)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, service.EventSwapRequested, received.Message.Attributes["type"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.MarketEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, []string{"owner-1"}, decoded.RecipientIDs)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())

	err := publisher.PublishMarketEvent(context.Background(), &service.MarketEvent{EventID: "evt-2"})

	assert.Error(t, err)
}
