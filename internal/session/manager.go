package session

import (
	"context"
	"log/slog"
	"sync"

	"swapmarket/internal/usecase"

	"go.uber.org/fx"
)

// Manager creates providers and closes whatever is still open on shutdown.
type Manager struct {
	auth   usecase.AuthUsecase
	roles  usecase.UserRoleUsecase
	logger *slog.Logger

	mu   sync.Mutex
	open map[*Provider]struct{}
}

// ManagerParams holds dependencies for Manager, injected by Fx
type ManagerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Auth   usecase.AuthUsecase
	Roles  usecase.UserRoleUsecase
	Logger *slog.Logger
}

// NewManager registers a stop hook that closes every open provider.
func NewManager(params ManagerParams) *Manager {
	m := newManager(params.Auth, params.Roles, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			m.CloseAll()

			return nil
		},
	})

	return m
}

func newManager(auth usecase.AuthUsecase, roles usecase.UserRoleUsecase, logger *slog.Logger) *Manager {
	return &Manager{
		auth:   auth,
		roles:  roles,
		logger: logger,
		open:   make(map[*Provider]struct{}),
	}
}

// Open starts an anonymous provider for the client tab called name.
func (m *Manager) Open(name string) *Provider {
	p := newProvider(name, m.auth, m.roles, m.logger, m.forget)

	m.mu.Lock()
	m.open[p] = struct{}{}
	m.mu.Unlock()

	return p
}

// Len is the number of providers not yet closed.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.open)
}

// CloseAll closes every open provider.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	providers := make([]*Provider, 0, len(m.open))
	for p := range m.open {
		providers = append(providers, p)
	}
	m.mu.Unlock()

	for _, p := range providers {
		p.Close()
	}
}

func (m *Manager) forget(p *Provider) {
	m.mu.Lock()
	delete(m.open, p)
	m.mu.Unlock()
}
