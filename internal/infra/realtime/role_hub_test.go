package realtime

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"swapmarket/internal/domain/entity"
	"swapmarket/internal/domain/service"
	"swapmarket/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/pubsub/mempubsub"
)

func newTestHub(t *testing.T, buffer int) (*Hub, *metrics.Metrics) {
	t.Helper()

	topic := mempubsub.NewTopic()
	sub := mempubsub.NewSubscription(topic, time.Minute)
	m := metrics.New()
	hub := newHub(topic, sub, buffer, m, slog.Default())
	t.Cleanup(func() { _ = hub.Close(context.Background()) })

	return hub, m
}

func receive(t *testing.T, w service.RoleWatch) (entity.RoleChange, bool) {
	t.Helper()

	select {
	case change, ok := <-w.Changes():
		return change, ok
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for role change")

		return entity.RoleChange{}, false
	}
}

func TestHub_DeliversToWatchersOfThatUser(t *testing.T) {
	hub, _ := newTestHub(t, 0)
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	aliceSession, err := hub.Watch(ctx, alice, "session")
	require.NoError(t, err)
	aliceGate, err := hub.Watch(ctx, alice, "gate")
	require.NoError(t, err)
	bobSession, err := hub.Watch(ctx, bob, "session")
	require.NoError(t, err)

	require.NoError(t, hub.PublishRoleChange(ctx, entity.RoleChange{UserID: alice, Role: entity.RoleAdmin}))

	change, ok := receive(t, aliceSession)
	require.True(t, ok)
	assert.Equal(t, entity.RoleAdmin, change.Role)
	assert.False(t, change.ChangedAt.IsZero())

	change, ok = receive(t, aliceGate)
	require.True(t, ok)
	assert.Equal(t, alice, change.UserID)

	select {
	case <-bobSession.Changes():
		t.Fatal("bob must not see alice's change")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_ReacquireReplacesPreviousWatch(t *testing.T) {
	hub, m := newTestHub(t, 0)
	ctx := context.Background()
	userID := uuid.New()

	first, err := hub.Watch(ctx, userID, "session")
	require.NoError(t, err)
	second, err := hub.Watch(ctx, userID, "session")
	require.NoError(t, err)

	_, ok := <-first.Changes()
	assert.False(t, ok, "first watch must be closed")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RoleWatches))

	first.Close()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RoleWatches), "closing a replaced watch must not release its successor")

	require.NoError(t, hub.PublishRoleChange(ctx, entity.RoleChange{UserID: userID, Role: entity.RoleUser}))
	_, ok = receive(t, second)
	assert.True(t, ok)
}

func TestHub_ContextCancelReleasesWatch(t *testing.T) {
	hub, m := newTestHub(t, 0)
	ctx, cancel := context.WithCancel(context.Background())

	w, err := hub.Watch(ctx, uuid.New(), "session")
	require.NoError(t, err)

	cancel()

	_, ok := receive(t, w)
	assert.False(t, ok)
	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(m.RoleWatches) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestHub_CloseIsIdempotent(t *testing.T) {
	hub, m := newTestHub(t, 0)
	userID := uuid.New()

	w, err := hub.Watch(context.Background(), userID, "session")
	require.NoError(t, err)

	w.Close()
	w.Close()
	assert.Equal(t, 0.0, testutil.ToFloat64(m.RoleWatches))

	require.NoError(t, hub.Close(context.Background()))
	require.NoError(t, hub.Close(context.Background()))

	_, err = hub.Watch(context.Background(), userID, "session")
	assert.ErrorIs(t, err, ErrHubClosed)
}

func TestWatch_OfferKeepsLatest(t *testing.T) {
	hub, _ := newTestHub(t, 1)
	userID := uuid.New()

	w, err := hub.Watch(context.Background(), userID, "session")
	require.NoError(t, err)
	inner := w.(*watch)

	hub.mu.Lock()
	assert.True(t, inner.offer(entity.RoleChange{UserID: userID, Role: entity.RoleUser}))
	assert.False(t, inner.offer(entity.RoleChange{UserID: userID, Role: entity.RoleAdmin}))
	hub.mu.Unlock()

	change := <-w.Changes()
	assert.Equal(t, entity.RoleAdmin, change.Role)
}
