package session

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"swapmarket/internal/domain/entity"
	domainerrors "swapmarket/internal/domain/errors"
	"swapmarket/internal/domain/service"
	mockUsecase "swapmarket/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeWatch struct {
	ch     chan entity.RoleChange
	once   sync.Once
	mu     sync.Mutex
	closed bool
}

func newFakeWatch() *fakeWatch {
	return &fakeWatch{ch: make(chan entity.RoleChange, 4)}
}

func (w *fakeWatch) Changes() <-chan entity.RoleChange { return w.ch }

func (w *fakeWatch) Close() {
	w.once.Do(func() {
		w.mu.Lock()
		w.closed = true
		w.mu.Unlock()
		close(w.ch)
	})
}

func (w *fakeWatch) isClosed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.closed
}

type providerFixtures struct {
	manager *Manager
	auth    *mockUsecase.MockAuthUsecase
	roles   *mockUsecase.MockUserRoleUsecase
}

func createTestManager(t *testing.T) providerFixtures {
	fx := providerFixtures{
		auth:  mockUsecase.NewMockAuthUsecase(t),
		roles: mockUsecase.NewMockUserRoleUsecase(t),
	}
	fx.manager = newManager(fx.auth, fx.roles, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return fx
}

func TestProvider_ResolveSetsIdentityAndRole(t *testing.T) {
	fx := createTestManager(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ana@example.com"}
	watch := newFakeWatch()

	fx.auth.EXPECT().Authenticate(ctx, "token").Return(user, nil)
	fx.roles.EXPECT().GetCurrentRole(ctx, user.ID).Return(entity.RoleAdmin)
	fx.roles.EXPECT().WatchRole(ctx, user.ID, "tab-1").Return(watch, nil)

	p := fx.manager.Open("tab-1")
	assert.True(t, p.Resolving())

	require.NoError(t, p.Resolve(ctx, "token"))

	assert.False(t, p.Resolving())
	assert.Equal(t, user, p.Identity())
	assert.True(t, p.IsAdmin())

	p.Close()
	assert.True(t, watch.isClosed())
	assert.Zero(t, fx.manager.Len())
}

func TestProvider_ResolveInvalidTokenStaysAnonymous(t *testing.T) {
	fx := createTestManager(t)
	ctx := context.Background()

	fx.auth.EXPECT().Authenticate(ctx, "bad").Return(nil, domainerrors.ErrAccessTokenInvalid)

	p := fx.manager.Open("tab")
	err := p.Resolve(ctx, "bad")

	assert.True(t, errors.Is(err, domainerrors.ErrAccessTokenInvalid))
	assert.False(t, p.Resolving())
	assert.Nil(t, p.Identity())
	assert.Equal(t, entity.RoleUser, p.Role())
}

func TestProvider_SetIdentityDisposesPreviousWatch(t *testing.T) {
	fx := createTestManager(t)
	ctx := context.Background()
	first := &entity.User{ID: uuid.New()}
	second := &entity.User{ID: uuid.New()}
	firstWatch, secondWatch := newFakeWatch(), newFakeWatch()

	fx.roles.EXPECT().GetCurrentRole(ctx, first.ID).Return(entity.RoleUser)
	fx.roles.EXPECT().WatchRole(ctx, first.ID, "tab").Return(firstWatch, nil)
	fx.roles.EXPECT().GetCurrentRole(ctx, second.ID).Return(entity.RoleUser)
	fx.roles.EXPECT().WatchRole(ctx, second.ID, "tab").
		RunAndReturn(func(context.Context, uuid.UUID, string) (service.RoleWatch, error) {
			assert.True(t, firstWatch.isClosed(), "previous watch must be released before acquiring")

			return secondWatch, nil
		})

	p := fx.manager.Open("tab")
	require.NoError(t, p.SetIdentity(ctx, first))
	require.NoError(t, p.SetIdentity(ctx, second))

	assert.Equal(t, second, p.Identity())
	assert.False(t, secondWatch.isClosed())

	require.NoError(t, p.SetIdentity(ctx, nil))
	assert.True(t, secondWatch.isClosed())
	assert.Nil(t, p.Identity())
}

func TestProvider_ForwardsRoleChanges(t *testing.T) {
	fx := createTestManager(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}
	watch := newFakeWatch()

	fx.roles.EXPECT().GetCurrentRole(ctx, user.ID).Return(entity.RoleAdmin)
	fx.roles.EXPECT().WatchRole(ctx, user.ID, "tab").Return(watch, nil)

	p := fx.manager.Open("tab")
	defer p.Close()
	require.NoError(t, p.SetIdentity(ctx, user))

	watch.ch <- entity.RoleChange{UserID: user.ID, Role: entity.RoleUser}

	select {
	case change := <-p.Changes():
		assert.Equal(t, entity.RoleUser, change.Role)
	case <-time.After(time.Second):
		t.Fatal("role change was not forwarded")
	}
	assert.False(t, p.IsAdmin())
}

func TestProvider_ClosesWhenWatchIsTakenOver(t *testing.T) {
	fx := createTestManager(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}
	watch := newFakeWatch()

	fx.roles.EXPECT().GetCurrentRole(ctx, user.ID).Return(entity.RoleUser)
	fx.roles.EXPECT().WatchRole(ctx, user.ID, "tab").Return(watch, nil)

	p := fx.manager.Open("tab")
	require.NoError(t, p.SetIdentity(ctx, user))
	require.Equal(t, 1, fx.manager.Len())

	// The hub closes the watch when another session registers the same name
	watch.Close()

	select {
	case _, open := <-p.Changes():
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("session stayed open after its watch was taken over")
	}
	assert.Equal(t, 0, fx.manager.Len())
}

func TestProvider_SetIdentityDoesNotCloseOnOwnWatchRelease(t *testing.T) {
	fx := createTestManager(t)
	ctx := context.Background()
	first := &entity.User{ID: uuid.New()}
	firstWatch := newFakeWatch()

	fx.roles.EXPECT().GetCurrentRole(ctx, first.ID).Return(entity.RoleUser)
	fx.roles.EXPECT().WatchRole(ctx, first.ID, "tab").Return(firstWatch, nil)

	p := fx.manager.Open("tab")
	defer p.Close()
	require.NoError(t, p.SetIdentity(ctx, first))
	require.NoError(t, p.SetIdentity(ctx, nil))
	require.True(t, firstWatch.isClosed())

	assert.Never(t, func() bool { return fx.manager.Len() == 0 }, 50*time.Millisecond, 5*time.Millisecond)
}

func TestProvider_LateResultAfterCloseIsDiscarded(t *testing.T) {
	fx := createTestManager(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}
	watch := newFakeWatch()

	p := fx.manager.Open("tab")

	fx.roles.EXPECT().GetCurrentRole(ctx, user.ID).Return(entity.RoleAdmin)
	fx.roles.EXPECT().WatchRole(ctx, user.ID, "tab").
		RunAndReturn(func(context.Context, uuid.UUID, string) (service.RoleWatch, error) {
			p.Close()

			return watch, nil
		})

	require.NoError(t, p.SetIdentity(ctx, user))

	assert.True(t, watch.isClosed())
	assert.Equal(t, entity.RoleUser, p.Role())
	_, open := <-p.Changes()
	assert.False(t, open)
}

func TestProvider_WatchFailureKeepsIdentity(t *testing.T) {
	fx := createTestManager(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}

	fx.roles.EXPECT().GetCurrentRole(ctx, user.ID).Return(entity.RoleUser)
	fx.roles.EXPECT().WatchRole(ctx, user.ID, "tab").Return(nil, errors.New("hub closed"))

	p := fx.manager.Open("tab")
	require.NoError(t, p.SetIdentity(ctx, user))

	assert.Equal(t, user, p.Identity())
	assert.False(t, p.Resolving())
}

func TestProvider_ClosedRejectsWork(t *testing.T) {
	fx := createTestManager(t)

	p := fx.manager.Open("tab")
	p.Close()
	p.Close()

	err := p.Resolve(context.Background(), "token")
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	assert.True(t, errors.Is(p.SetIdentity(context.Background(), &entity.User{ID: uuid.New()}), domainerrors.ErrUnauthenticated))
}

func TestManager_CloseAll(t *testing.T) {
	fx := createTestManager(t)
	fx.roles.EXPECT().GetCurrentRole(mock.Anything, mock.Anything).Return(entity.RoleUser)

	watches := []*fakeWatch{newFakeWatch(), newFakeWatch()}
	for i, w := range watches {
		fx.roles.EXPECT().WatchRole(mock.Anything, mock.Anything, "tab-"+string(rune('a'+i))).Return(w, nil)
		p := fx.manager.Open("tab-" + string(rune('a'+i)))
		require.NoError(t, p.SetIdentity(context.Background(), &entity.User{ID: uuid.New()}))
	}
	require.Equal(t, 2, fx.manager.Len())

	fx.manager.CloseAll()

	assert.Zero(t, fx.manager.Len())
	for _, w := range watches {
		assert.True(t, w.isClosed())
	}
}
