// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"swapmarket/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new identity.
type SignUpInput struct {
	Email       string
	Password    string
	DisplayName string
}

// SignInInput defines the data required for an email sign-in.
type SignInInput struct {
	Email    string
	Password string
	Device   entity.DeviceInfo
}

// GoogleSignInInput carries a Google ID token obtained by the client.
type GoogleSignInInput struct {
	IDToken string
	Device  entity.DeviceInfo
}

// --- Output DTOs ---

// SignUpOutput returns the newly created identity.
type SignUpOutput struct {
	User *entity.User
}

// SessionOutput returns the tokens of an opened session.
type SessionOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
	Role         entity.Role
}

// AuthUsecase opens and closes sessions.
type AuthUsecase interface {
	// SignUp creates an identity with its email credential, default profile and user role.
	// It does not sign the caller in.
	SignUp(ctx context.Context, input *SignUpInput) (*SignUpOutput, error)

	// SignIn verifies credentials and opens a session. The super-admin self-heal runs on success.
	SignIn(ctx context.Context, input *SignInInput) (*SessionOutput, error)

	// GoogleSignIn verifies a Google ID token, links or creates the identity and opens a session.
	GoogleSignIn(ctx context.Context, input *GoogleSignInInput) (*SessionOutput, error)

	// Refresh rotates the refresh token and issues a new access token.
	Refresh(ctx context.Context, refreshToken string) (*SessionOutput, error)

	// SignOut ends the session of refreshToken. Unknown tokens are not an error.
	SignOut(ctx context.Context, refreshToken string) error

	// Authenticate resolves an access token to its identity.
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
}
