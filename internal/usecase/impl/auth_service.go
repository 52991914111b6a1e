// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"swapmarket/config"
	deliverycontext "swapmarket/internal/delivery/context"
	"swapmarket/internal/domain/entity"
	domainerrors "swapmarket/internal/domain/errors"
	"swapmarket/internal/domain/repository"
	"swapmarket/internal/domain/service"
	"swapmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	googleAuthService service.OAuthAuthService
	roles             usecase.UserRoleUsecase
	maxActiveSessions int
	now               func() time.Time
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	RefreshTokenRepo  repository.RefreshTokenRepository
	Hasher            service.PasswordHasher
	TokenService      service.TokenService
	GoogleAuthService service.OAuthAuthService
	Roles             usecase.UserRoleUsecase
	Config            *config.Config
	Logger            *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &authService{
		txManager:         params.TxManager,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		googleAuthService: params.GoogleAuthService,
		roles:             params.Roles,
		maxActiveSessions: maxActiveSessions,
		now:               time.Now,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// hashToken returns the stored digest of a refresh token.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// SignUp creates the identity, its email credential, a default profile and the user role in one transaction.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "email is required")
	}

	srv.log(ctx).Info("Starting sign-up", slog.String("email", email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password rejected during sign-up", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during sign-up", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	newUser := &entity.User{
		ID:    uuid.New(),
		Email: email,
		Name:  strings.TrimSpace(input.DisplayName),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.NewAuthRepository()

		_, findErr := authRepo.FindAuthentication(ctx, entity.ProviderEmail, email)
		if findErr == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(findErr, repository.ErrAuthNotFound) {
			return errors.Wrap(findErr, "failed to find authentication")
		}

		if err := srv.createIdentity(ctx, repoFactory, newUser); err != nil {
			return err
		}

		return errors.Wrap(authRepo.CreateAuthentication(ctx, &entity.Authentication{
			ID:             uuid.New(),
			UserID:         newUser.ID,
			Provider:       entity.ProviderEmail,
			ProviderUserID: email,
			PasswordHash:   hashedPassword,
		}), "failed to create authentication")
	})
	if err != nil {
		srv.log(ctx).Warn("Sign-up failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute sign-up transaction")
	}

	srv.log(ctx).Info("Sign-up completed", slog.Any("userID", newUser.ID))

	return &usecase.SignUpOutput{User: newUser}, nil
}

// createIdentity inserts the user with its default profile and role.
func (srv *authService) createIdentity(ctx context.Context, repoFactory repository.RepositoryFactory, user *entity.User) error {
	if err := repoFactory.NewUserRepository().Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return domainerrors.ErrUserAlreadyExists
		}

		return errors.Wrap(err, "failed to create user")
	}

	if _, err := repoFactory.NewProfileRepository().FindOrCreate(ctx, entity.DefaultProfile(user)); err != nil {
		return errors.Wrap(err, "failed to create default profile")
	}

	if err := repoFactory.NewUserRoleRepository().CreateIfAbsent(ctx, user.ID, entity.RoleUser); err != nil {
		return errors.Wrap(err, "failed to create default role")
	}

	return nil
}

// SignIn verifies an email credential and opens a session.
func (srv *authService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SessionOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting sign-in", slog.String("email", email))

	var (
		authRecord *entity.Authentication
		user       *entity.User
	)

	// Read from the primary so a sign-in right after sign-up sees the new rows.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		authRecord, err = repoFactory.NewAuthRepository().FindAuthentication(ctx, entity.ProviderEmail, email)
		if errors.Is(err, repository.ErrAuthNotFound) {
			return domainerrors.ErrInvalidCredentials
		}
		if err != nil {
			return errors.Wrap(err, "failed to find authentication")
		}

		user, err = repoFactory.NewUserRepository().FindByID(ctx, authRecord.UserID)

		return errors.Wrap(err, "failed to find user")
	})
	if err != nil {
		srv.log(ctx).Warn("Sign-in failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "sign-in failed")
	}

	// bcrypt is CPU-bound, keep it outside the transaction.
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Sign-in failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "sign-in failed")
	}

	return srv.openSession(ctx, user, input.Device)
}

// GoogleSignIn signs in with a Google ID token, creating the identity on first use.
func (srv *authService) GoogleSignIn(ctx context.Context, input *usecase.GoogleSignInInput) (*usecase.SessionOutput, error) {
	oauthUser, err := srv.googleAuthService.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid, err.Error())
	}

	var user *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		user, err = srv.findOrCreateOAuthUser(ctx, repoFactory, oauthUser)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to resolve Google identity", slog.String("email", oauthUser.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute Google sign-in transaction")
	}

	return srv.openSession(ctx, user, input.Device)
}

// findOrCreateOAuthUser resolves the provider identity. An existing identity with the same email is linked.
func (srv *authService) findOrCreateOAuthUser(ctx context.Context, repoFactory repository.RepositoryFactory, oauthUser *service.OAuthUser) (*entity.User, error) {
	authRepo := repoFactory.NewAuthRepository()
	userRepo := repoFactory.NewUserRepository()

	authRecord, err := authRepo.FindAuthentication(ctx, oauthUser.Provider, oauthUser.ID)
	if err == nil {
		user, findErr := userRepo.FindByID(ctx, authRecord.UserID)

		return user, errors.Wrap(findErr, "failed to find linked user")
	}
	if !errors.Is(err, repository.ErrAuthNotFound) {
		return nil, errors.Wrap(err, "failed to find authentication")
	}

	email := normalizeEmail(oauthUser.Email)
	user, err := userRepo.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		srv.log(ctx).Info("Creating identity for new OAuth user", slog.String("provider", oauthUser.Provider), slog.String("email", email))
		user = &entity.User{ID: uuid.New(), Email: email, Name: oauthUser.Name}
		if err := srv.createIdentity(ctx, repoFactory, user); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, errors.Wrap(err, "failed to find user by email")
	default:
		srv.log(ctx).Info("Linking OAuth provider to existing identity", slog.String("provider", oauthUser.Provider), slog.Any("userID", user.ID))
	}

	if err := authRepo.CreateAuthentication(ctx, &entity.Authentication{
		ID:             uuid.New(),
		UserID:         user.ID,
		Provider:       oauthUser.Provider,
		ProviderUserID: oauthUser.ID,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to create OAuth authentication")
	}

	return user, nil
}

// openSession runs the super-admin self-heal, issues tokens and stores the refresh session.
func (srv *authService) openSession(ctx context.Context, user *entity.User, device entity.DeviceInfo) (*usecase.SessionOutput, error) {
	if err := srv.roles.EnsureSuperAdmin(ctx, user); err != nil {
		srv.log(ctx).Error("Super-admin self-heal failed", slog.Any("userID", user.ID), slog.Any("error", err))
	}

	role := srv.roles.GetCurrentRole(ctx, user.ID)

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Email, []string{role.String()})
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.storeSession(ctx, user.ID, refreshToken, device); err != nil {
		srv.log(ctx).Error("Failed to store session", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store session")
	}

	srv.log(ctx).Debug("Session opened", slog.Any("userID", user.ID), slog.String("role", role.String()))

	return &usecase.SessionOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
		Role:         role,
	}, nil
}

// storeSession persists the refresh token. With a session cap, the oldest sessions are evicted first.
func (srv *authService) storeSession(ctx context.Context, userID uuid.UUID, refreshToken string, device entity.DeviceInfo) error {
	token := &entity.RefreshToken{
		ID:         uuid.New(),
		UserID:     userID,
		TokenHash:  hashToken(refreshToken),
		DeviceInfo: device.UserAgent,
		IPAddress:  device.IPAddress,
		ExpiresAt:  srv.now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if srv.maxActiveSessions <= 0 {
		return errors.Wrap(srv.refreshTokenRepo.CreateRefreshToken(ctx, token), "failed to create refresh token")
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.NewRefreshTokenRepository()

		sessions, err := refreshRepo.FindRefreshTokensByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list sessions")
		}

		now := srv.now()
		active := make([]*entity.RefreshToken, 0, len(sessions))
		for _, session := range sessions {
			if session.IsExpired(now) {
				if err := refreshRepo.DeleteRefreshToken(ctx, session.ID); err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
					return errors.Wrap(err, "failed to delete expired session")
				}

				continue
			}
			active = append(active, session)
		}

		for len(active) >= srv.maxActiveSessions {
			oldest := active[0]
			if err := refreshRepo.DeleteRefreshToken(ctx, oldest.ID); err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return errors.Wrap(err, "failed to evict oldest session")
			}
			srv.log(ctx).Info("Evicted oldest session", slog.Any("userID", userID), slog.Any("sessionID", oldest.ID))
			active = active[1:]
		}

		return errors.Wrap(refreshRepo.CreateRefreshToken(ctx, token), "failed to create refresh token")
	})
}

// Refresh rotates the refresh token. The presented token stops working.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.SessionOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	var (
		user     *entity.User
		previous *entity.RefreshToken
	)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.NewRefreshTokenRepository()

		stored, err := refreshRepo.FindRefreshTokenByHash(ctx, hashToken(refreshToken))
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return domainerrors.ErrRefreshTokenNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find refresh token")
		}
		if stored.UserID != claims.UserID {
			return domainerrors.ErrRefreshTokenInvalid
		}

		if stored.IsExpired(srv.now()) {
			return domainerrors.ErrRefreshTokenExpired
		}
		if err := refreshRepo.DeleteRefreshToken(ctx, stored.ID); err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				// A concurrent refresh already consumed it.
				return domainerrors.ErrRefreshTokenNotFound
			}

			return errors.Wrap(err, "failed to delete refresh token")
		}
		previous = stored

		user, err = repoFactory.NewUserRepository().FindByID(ctx, stored.UserID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrRefreshTokenInvalid
		}

		return errors.Wrap(err, "failed to find user")
	})
	if err != nil {
		srv.log(ctx).Warn("Refresh failed", slog.Any("userID", claims.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to refresh session")
	}

	role := srv.roles.GetCurrentRole(ctx, user.ID)

	accessToken, newRefreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Email, []string{role.String()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	device := entity.DeviceInfo{UserAgent: previous.DeviceInfo, IPAddress: previous.IPAddress}
	if err := srv.storeSession(ctx, user.ID, newRefreshToken, device); err != nil {
		return nil, errors.Wrap(err, "failed to store rotated session")
	}

	return &usecase.SessionOutput{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		User:         user,
		Role:         role,
	}, nil
}

// SignOut deletes the session. Unknown and already revoked tokens succeed.
func (srv *authService) SignOut(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, hashToken(refreshToken)); err != nil {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}

	srv.log(ctx).Info("Signed out")

	return nil
}

// Authenticate resolves an access token to the identity it was issued for.
func (srv *authService) Authenticate(_ context.Context, accessToken string) (*entity.User, error) {
	claims, err := srv.tokenService.ValidateAccessToken(accessToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrAccessTokenInvalid, err.Error())
	}

	return &entity.User{ID: claims.UserID, Email: claims.Email}, nil
}
