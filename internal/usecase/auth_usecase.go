// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"blogd/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username string
	Email    string
	FullName string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// UserView is the public projection of a user account.
// It never carries the hashed password.
type UserView struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Disabled bool   `json:"disabled"`
}

// NewUserView projects a user entity into its public view.
func NewUserView(user *entity.User) *UserView {
	if user == nil {
		return nil
	}

	return &UserView{
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
		Disabled: user.Disabled,
	}
}

// LoginOutput returns the issued bearer token after a successful login.
type LoginOutput struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new account with a hashed password and returns its public view.
	Register(ctx context.Context, input *RegisterInput) (*UserView, error)

	// Authenticate verifies a username/password pair. Unknown usernames and
	// wrong passwords are externally indistinguishable.
	Authenticate(ctx context.Context, username, password string) (*entity.User, error)

	// Login authenticates and issues a bearer token for the user.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Resolve derives the user behind a bearer token. A disabled user still
	// resolves at this tier.
	Resolve(ctx context.Context, token string) (*entity.User, error)

	// ResolveActive is Resolve plus the disabled check, failing with a
	// distinct signal for inactive users.
	ResolveActive(ctx context.Context, token string) (*entity.User, error)
}
