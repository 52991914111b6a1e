package handler

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"swapmarket/config"
	"swapmarket/internal/delivery/api/middleware"
	deliverycontext "swapmarket/internal/delivery/context"
	"swapmarket/internal/domain/entity"
	"swapmarket/internal/session"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = wsPongWait * 9 / 10
)

// Frame types sent on the role socket.
const (
	FrameSession     = "session"
	FrameRoleChanged = "role_changed"
)

// RealtimeHandlerParams holds dependencies for RealtimeHandler, injected by Fx.
type RealtimeHandlerParams struct {
	fx.In

	Sessions *session.Manager
	Config   *config.Config
	Logger   *slog.Logger
}

// RealtimeHandler pushes role changes of the caller over a WebSocket.
type RealtimeHandler struct {
	sessions *session.Manager
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewRealtimeHandler is the constructor for RealtimeHandler
func NewRealtimeHandler(params RealtimeHandlerParams) *RealtimeHandler {
	return &RealtimeHandler{
		sessions: params.Sessions,
		logger:   params.Logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     allowOrigin(params.Config.HTTP.AllowOrigins),
		},
	}
}

// allowOrigin accepts same-origin handshakes and the configured CORS origins.
func allowOrigin(origins []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || slices.Contains(origins, "*") {
			return true
		}

		return slices.Contains(origins, origin)
	}
}

// RoleFrame is one message on the role socket.
type RoleFrame struct {
	Type      string      `json:"type"`
	UserID    string      `json:"user_id"`
	Role      entity.Role `json:"role"`
	IsAdmin   bool        `json:"is_admin"`
	ChangedAt *time.Time  `json:"changed_at,omitempty"`
}

// WatchRoles handles GET /api/v1/ws/roles. The token is resolved before the
// upgrade so an invalid one still gets a JSON 401. ?tab= names the client tab;
// reconnecting with the same name replaces the earlier watch.
func (h *RealtimeHandler) WatchRoles(c echo.Context) error {
	name := c.QueryParam("tab")
	if name == "" {
		name = deliverycontext.GetRequestID(c)
	}

	provider := h.sessions.Open(name)
	defer provider.Close()

	if err := provider.Resolve(c.Request().Context(), middleware.AccessToken(c)); err != nil {
		return errors.WithStack(err)
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		return nil
	}
	defer conn.Close()

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).With(
		slog.String("tab", name),
		slog.String("user_id", provider.Identity().ID.String()),
	)
	logger.Debug("Role socket opened")

	done := make(chan struct{})
	go h.readPump(conn, done)

	user := provider.Identity()
	if err := h.write(conn, &RoleFrame{
		Type:    FrameSession,
		UserID:  user.ID.String(),
		Role:    provider.Role(),
		IsAdmin: provider.IsAdmin(),
	}); err != nil {
		return nil
	}

	h.writePump(c.Request().Context(), conn, provider, done, logger)

	return nil
}

// readPump drains client frames so pongs and close frames are processed.
func (h *RealtimeHandler) readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *RealtimeHandler) writePump(ctx context.Context, conn *websocket.Conn, provider *session.Provider, done <-chan struct{}, logger *slog.Logger) {
	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-done:
			logger.Debug("Role socket closed by client")

			return
		case change, ok := <-provider.Changes():
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "session closed"),
					time.Now().Add(wsWriteWait))

				return
			}

			changedAt := change.ChangedAt
			if err := h.write(conn, &RoleFrame{
				Type:      FrameRoleChanged,
				UserID:    change.UserID.String(),
				Role:      change.Role,
				IsAdmin:   change.Role == entity.RoleAdmin,
				ChangedAt: &changedAt,
			}); err != nil {
				logger.Debug("Role socket write failed", slog.Any("error", err))

				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait)); err != nil {
				return
			}
		}
	}
}

func (h *RealtimeHandler) write(conn *websocket.Conn, frame *RoleFrame) error {
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))

	return errors.WithStack(conn.WriteJSON(frame))
}
