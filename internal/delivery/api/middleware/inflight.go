package middleware

import (
	"sync"

	deliverycontext "swapmarket/internal/delivery/context"
	domainerrors "swapmarket/internal/domain/errors"
	"swapmarket/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// InFlight rejects a second submission of the same mutating route by the same
// identity while the first one is still running.
type InFlight struct {
	metrics *metrics.Metrics

	mu      sync.Mutex
	running map[string]struct{}
}

// InFlightParams holds dependencies for InFlight, injected by Fx
type InFlightParams struct {
	fx.In

	Metrics *metrics.Metrics `optional:"true"`
}

// NewInFlight creates an empty guard.
func NewInFlight(params InFlightParams) *InFlight {
	return &InFlight{
		metrics: params.Metrics,
		running: make(map[string]struct{}),
	}
}

// Guard must run after Authenticate. Anonymous requests are keyed by client IP.
func (g *InFlight) Guard(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller := c.RealIP()
		if user := deliverycontext.GetUser(c); user != nil {
			caller = user.ID.String()
		}
		key := c.Request().Method + " " + c.Path() + " " + caller

		if !g.acquire(key) {
			if g.metrics != nil {
				g.metrics.InFlightRejected.WithLabelValues(c.Path()).Inc()
			}

			return errors.WithStack(domainerrors.ErrRequestInFlight)
		}
		defer g.release(key)

		return next(c)
	}
}

func (g *InFlight) acquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.running[key]; busy {
		return false
	}
	g.running[key] = struct{}{}

	return true
}

func (g *InFlight) release(key string) {
	g.mu.Lock()
	delete(g.running, key)
	g.mu.Unlock()
}
