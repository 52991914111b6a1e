// Package session keeps the signed-in identity of one connected client and the
// role-change subscription it owns.
package session

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "swapmarket/internal/delivery/context"
	"swapmarket/internal/domain/entity"
	domainerrors "swapmarket/internal/domain/errors"
	"swapmarket/internal/domain/service"
	"swapmarket/internal/usecase"

	"github.com/pkg/errors"
)

const eventBuffer = 8

// Provider holds the identity of a single client connection. Every result that
// completes after Close or after a newer SetIdentity is discarded.
type Provider struct {
	name    string
	auth    usecase.AuthUsecase
	roles   usecase.UserRoleUsecase
	logger  *slog.Logger
	release func(*Provider)

	mu         sync.Mutex
	user       *entity.User
	role       entity.Role
	resolving  bool
	generation uint64
	watch      service.RoleWatch
	events     chan entity.RoleChange
	closed     bool
}

func newProvider(name string, auth usecase.AuthUsecase, roles usecase.UserRoleUsecase, logger *slog.Logger, release func(*Provider)) *Provider {
	return &Provider{
		name:      name,
		auth:      auth,
		roles:     roles,
		logger:    logger,
		release:   release,
		role:      entity.RoleUser,
		resolving: true,
		events:    make(chan entity.RoleChange, eventBuffer),
	}
}

func (p *Provider) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, p.logger).With(slog.String("session", p.name))
}

// Name is the client-chosen tab name the role watch is registered under.
func (p *Provider) Name() string {
	return p.name
}

// Resolving reports whether the first identity check is still running.
func (p *Provider) Resolving() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.resolving
}

// Identity returns the signed-in user, nil when anonymous.
func (p *Provider) Identity() *entity.User {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.user
}

// Role returns the last known role of the identity.
func (p *Provider) Role() entity.Role {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.role
}

// IsAdmin is derived from Role.
func (p *Provider) IsAdmin() bool {
	return p.Role() == entity.RoleAdmin
}

// Changes delivers the role changes of the current identity. It is closed by Close,
// which also happens when the role watch is taken over by another session.
func (p *Provider) Changes() <-chan entity.RoleChange {
	return p.events
}

// Resolve authenticates accessToken and makes its user the current identity.
// An invalid token leaves the provider anonymous and ends the resolving phase.
func (p *Provider) Resolve(ctx context.Context, accessToken string) error {
	gen, ok := p.begin()
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	user, err := p.auth.Authenticate(ctx, accessToken)
	if err != nil {
		p.finishAnonymous(gen)

		return errors.WithStack(err)
	}

	return p.SetIdentity(ctx, user)
}

// SetIdentity swaps the current identity. The previous identity's watch is
// closed before the new one is acquired. A nil user signs the provider out.
func (p *Provider) SetIdentity(ctx context.Context, user *entity.User) error {
	gen, previous, ok := p.swap(user)
	if previous != nil {
		previous.Close()
	}
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}
	if user == nil {
		return nil
	}

	role := p.roles.GetCurrentRole(ctx, user.ID)

	watch, err := p.roles.WatchRole(ctx, user.ID, p.name)
	if err != nil {
		p.log(ctx).Warn("Role watch unavailable", slog.String("userID", user.ID.String()), slog.Any("error", err))
		p.adopt(gen, role, nil)

		return nil
	}

	if !p.adopt(gen, role, watch) {
		watch.Close()

		return nil
	}

	go p.forward(gen, watch)

	return nil
}

// Close releases the owned watch and the change channel. It is idempotent.
func (p *Provider) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()

		return
	}
	p.closed = true
	p.generation++
	p.resolving = false
	watch := p.watch
	p.watch = nil
	close(p.events)
	p.mu.Unlock()

	if watch != nil {
		watch.Close()
	}
	if p.release != nil {
		p.release(p)
	}
}

func (p *Provider) begin() (uint64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return 0, false
	}
	p.generation++

	return p.generation, true
}

func (p *Provider) finishAnonymous(gen uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.generation {
		return
	}
	p.resolving = false
}

// swap installs user under a new generation and hands back the watch to dispose.
func (p *Provider) swap(user *entity.User) (uint64, service.RoleWatch, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return 0, nil, false
	}

	p.generation++
	previous := p.watch
	p.watch = nil
	p.user = user
	p.role = entity.RoleUser
	if user == nil {
		p.resolving = false
	}

	return p.generation, previous, true
}

// adopt stores the resolved role and watch if gen is still current.
func (p *Provider) adopt(gen uint64, role entity.Role, watch service.RoleWatch) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || gen != p.generation {
		return false
	}
	p.role = role
	p.watch = watch
	p.resolving = false

	return true
}

// forward relays watch events until the watch ends. A watch that ends while it
// is still the current one was closed elsewhere, for example by a newer tab
// claiming the same name, so the provider closes too.
func (p *Provider) forward(gen uint64, watch service.RoleWatch) {
	for change := range watch.Changes() {
		if !p.apply(gen, change) {
			return
		}
	}

	if p.owns(gen, watch) {
		p.log(context.Background()).Info("Role watch ended, closing session")
		p.Close()
	}
}

func (p *Provider) owns(gen uint64, watch service.RoleWatch) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return !p.closed && gen == p.generation && p.watch == watch
}

func (p *Provider) apply(gen uint64, change entity.RoleChange) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || gen != p.generation {
		return false
	}
	if p.user == nil || change.UserID != p.user.ID {
		return true
	}

	p.role = change.Role
	select {
	case p.events <- change:
	default:
		p.logger.Warn("Session event buffer full, dropping role change",
			slog.String("session", p.name),
			slog.String("role", string(change.Role)))
	}

	return true
}
