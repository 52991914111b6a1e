// Package realtime fans role-change events out to per-identity watches.
package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"swapmarket/config"
	"swapmarket/internal/domain/entity"
	"swapmarket/internal/domain/service"
	"swapmarket/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/pubsub"
	_ "gocloud.dev/pubsub/mempubsub"
)

const defaultWatchBuffer = 8

// ErrHubClosed is returned by Watch after shutdown.
var ErrHubClosed = errors.New("role hub is closed")

// Hub owns one subscription on the role topic and routes each event to the
// watches registered for its user. A (user, name) pair holds at most one watch.
type Hub struct {
	topic   *pubsub.Topic
	sub     *pubsub.Subscription
	buffer  int
	metrics *metrics.Metrics
	logger  *slog.Logger

	mu      sync.Mutex
	watches map[uuid.UUID]map[string]*watch
	closed  bool

	cancel context.CancelFunc
	done   chan struct{}
}

// NewHub opens realtime.roleTopicUrl for both publishing and receiving.
func NewHub(lc fx.Lifecycle, cfg *config.Config, m *metrics.Metrics, logger *slog.Logger) (*Hub, error) {
	ctx := context.Background()

	topic, err := pubsub.OpenTopic(ctx, cfg.Realtime.RoleTopicURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open role topic %q", cfg.Realtime.RoleTopicURL)
	}

	sub, err := pubsub.OpenSubscription(ctx, cfg.Realtime.RoleTopicURL)
	if err != nil {
		_ = topic.Shutdown(ctx)

		return nil, errors.Wrapf(err, "open role subscription %q", cfg.Realtime.RoleTopicURL)
	}

	hub := newHub(topic, sub, cfg.Realtime.WatchBuffer, m, logger)

	lc.Append(fx.Hook{
		OnStop: hub.Close,
	})

	return hub, nil
}

func newHub(topic *pubsub.Topic, sub *pubsub.Subscription, buffer int, m *metrics.Metrics, logger *slog.Logger) *Hub {
	if buffer <= 0 {
		buffer = defaultWatchBuffer
	}

	ctx, cancel := context.WithCancel(context.Background())
	hub := &Hub{
		topic:   topic,
		sub:     sub,
		buffer:  buffer,
		metrics: m,
		logger:  logger,
		watches: make(map[uuid.UUID]map[string]*watch),
		cancel:  cancel,
		done:    make(chan struct{}),
	}

	go hub.receive(ctx)

	return hub
}

// PublishRoleChange sends change to every process subscribed to the topic.
func (h *Hub) PublishRoleChange(ctx context.Context, change entity.RoleChange) error {
	if change.ChangedAt.IsZero() {
		change.ChangedAt = time.Now()
	}

	body, err := json.Marshal(change)
	if err != nil {
		return errors.Wrap(err, "encode role change")
	}

	if err := h.topic.Send(ctx, &pubsub.Message{
		Body:     body,
		Metadata: map[string]string{"user_id": change.UserID.String()},
	}); err != nil {
		return errors.Wrap(err, "publish role change")
	}

	return nil
}

// Watch registers a watch for userID under name, closing any watch already held
// under the same pair. The watch is released when ctx ends or Close is called.
func (h *Hub) Watch(ctx context.Context, userID uuid.UUID, name string) (service.RoleWatch, error) {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()

		return nil, ErrHubClosed
	}

	byName := h.watches[userID]
	if byName == nil {
		byName = make(map[string]*watch)
		h.watches[userID] = byName
	}
	if prev := byName[name]; prev != nil {
		prev.closeLocked()
	}

	w := &watch{
		hub:    h,
		userID: userID,
		name:   name,
		ch:     make(chan entity.RoleChange, h.buffer),
		done:   make(chan struct{}),
	}
	// closeLocked may have dropped the map when prev was the last watch
	if h.watches[userID] == nil {
		h.watches[userID] = byName
	}
	byName[name] = w
	h.metrics.RoleWatches.Inc()
	h.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			w.Close()
		case <-w.done:
		}
	}()

	return w, nil
}

// Close stops receiving and closes every open watch. Safe to call twice.
func (h *Hub) Close(ctx context.Context) error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()

		return nil
	}
	h.closed = true
	for _, byName := range h.watches {
		for _, w := range byName {
			w.closeLocked()
		}
	}
	h.mu.Unlock()

	h.cancel()
	<-h.done

	subErr := h.sub.Shutdown(ctx)
	topicErr := h.topic.Shutdown(ctx)
	if subErr != nil {
		return errors.Wrap(subErr, "shutdown role subscription")
	}

	return errors.Wrap(topicErr, "shutdown role topic")
}

func (h *Hub) receive(ctx context.Context) {
	defer close(h.done)

	for {
		msg, err := h.sub.Receive(ctx)
		if err != nil {
			if ctx.Err() == nil {
				h.logger.Error("Role subscription stopped", slog.Any("error", err))
			}

			return
		}

		var change entity.RoleChange
		if err := json.Unmarshal(msg.Body, &change); err != nil {
			h.logger.Warn("Dropping malformed role change", slog.Any("error", err))
			msg.Ack()

			continue
		}
		msg.Ack()

		h.dispatch(change)
	}
}

func (h *Hub) dispatch(change entity.RoleChange) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, w := range h.watches[change.UserID] {
		if w.offer(change) {
			h.metrics.RoleEvents.WithLabelValues("delivered").Inc()
		} else {
			h.metrics.RoleEvents.WithLabelValues("dropped").Inc()
		}
	}
}

// watch state is guarded by hub.mu.
type watch struct {
	hub    *Hub
	userID uuid.UUID
	name   string
	ch     chan entity.RoleChange
	done   chan struct{}
	closed bool
}

func (w *watch) Changes() <-chan entity.RoleChange {
	return w.ch
}

func (w *watch) Close() {
	w.hub.mu.Lock()
	defer w.hub.mu.Unlock()

	w.closeLocked()
}

func (w *watch) closeLocked() {
	if w.closed {
		return
	}
	w.closed = true

	if byName := w.hub.watches[w.userID]; byName[w.name] == w {
		delete(byName, w.name)
		if len(byName) == 0 {
			delete(w.hub.watches, w.userID)
		}
	}

	close(w.ch)
	close(w.done)
	w.hub.metrics.RoleWatches.Dec()
}

// offer never blocks. A full buffer drops its oldest event since only the latest role matters.
func (w *watch) offer(change entity.RoleChange) bool {
	select {
	case w.ch <- change:
		return true
	default:
	}

	select {
	case <-w.ch:
	default:
	}

	select {
	case w.ch <- change:
		return false
	default:
		return false
	}
}
