// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	deliverycontext "blogd/internal/delivery/context"
	"blogd/internal/domain/entity"
	domainerrors "blogd/internal/domain/errors"
	"blogd/internal/domain/repository"
	"blogd/internal/domain/service"
	"blogd/internal/errors"
	"blogd/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account. Username uniqueness is enforced by the
// store's unique index, so concurrent registrations cannot race past it.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.UserView, error) {
	srv.log(ctx).Info("Registering user", slog.String("username", input.Username))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	user := &entity.User{
		Username:       input.Username,
		Email:          input.Email,
		FullName:       input.FullName,
		HashedPassword: hashedPassword,
		Disabled:       false,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			srv.log(ctx).Warn("Duplicate username on registration", slog.String("username", input.Username))

			return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("username already registered")
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Debug("Registration completed", slog.String("username", user.Username))

	return usecase.NewUserView(user), nil
}

// Authenticate verifies a username/password pair. Unknown usernames and wrong
// passwords both yield the same error so callers cannot tell which was wrong.
func (srv *authService) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown username")
		}

		return nil, errors.Wrap(err, "failed to find user for authentication")
	}

	if !srv.hasher.Check(password, user.HashedPassword) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	return user, nil
}

// Login authenticates and issues a bearer token with the username as subject.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.Authenticate(ctx, input.Username, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username))

		return nil, err
	}

	token, err := srv.tokenService.Issue(user.Username)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Info("Login successful", slog.String("username", user.Username))

	return &usecase.LoginOutput{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

// Resolve derives the user behind a bearer token. An invalid token and a
// vanished user are both unauthenticated; a disabled user still resolves here.
func (srv *authService) Resolve(ctx context.Context, token string) (*entity.User, error) {
	subject, err := srv.tokenService.Verify(token)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("token verification failed")
	}

	user, err := srv.userRepo.FindByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidToken.WrapMessage("token subject no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find token subject")
	}

	return user, nil
}

// ResolveActive is Resolve plus the disabled check.
func (srv *authService) ResolveActive(ctx context.Context, token string) (*entity.User, error) {
	user, err := srv.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	if user.Disabled {
		return nil, domainerrors.ErrInactiveUser.WrapMessage("user is disabled")
	}

	return user, nil
}
