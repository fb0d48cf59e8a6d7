package impl

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"blogd/internal/domain/entity"
	domainerrors "blogd/internal/domain/errors"
	"blogd/internal/domain/repository"
	mockRepo "blogd/internal/mocks/repository"
	mockService "blogd/internal/mocks/service"
	"blogd/internal/usecase"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func activeUser(username string) *entity.User {
	return &entity.User{
		ID:             "68a1f0c2b7e4d9a3c5f10234",
		Username:       username,
		Email:          username + "@example.com",
		FullName:       "Test User",
		HashedPassword: "$2a$12$stored-hash",
		Disabled:       false,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		FullName: "Alice Liddell",
		Password: "s3cret",
	}

	fx.hasher.EXPECT().
		Hash("s3cret").
		Return("$2a$12$hashed", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "alice", user.Username)
			assert.Equal(t, "$2a$12$hashed", user.HashedPassword)
			assert.False(t, user.Disabled)
		}).
		Return(nil)

	view, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "alice", view.Username)
	assert.Equal(t, "alice@example.com", view.Email)
	assert.Equal(t, "Alice Liddell", view.FullName)
	assert.False(t, view.Disabled)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{Username: "alice", Password: "s3cret"}

	fx.hasher.EXPECT().
		Hash("s3cret").
		Return("$2a$12$hashed", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateUsername)

	view, err := fx.service.Register(ctx, input)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().
		Hash("s3cret").
		Return("", errors.New("cost out of range"))

	view, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "alice", Password: "s3cret"})
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAuthService_Register_StoreError(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().
		Hash("s3cret").
		Return("$2a$12$hashed", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(pkgerrors.New("connection reset"))

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "alice", Password: "s3cret"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	assert.Contains(t, err.Error(), "failed to create user")
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	stored := activeUser("alice")

	fx.userRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(stored, nil)

	fx.hasher.EXPECT().
		Check("s3cret", stored.HashedPassword).
		Return(true)

	user, err := fx.service.Authenticate(ctx, "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

// Unknown usernames and wrong passwords must be indistinguishable to the caller.
func TestAuthService_Authenticate_InvalidCredentials(t *testing.T) {
	t.Run("unknown username", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().
			FindByUsername(ctx, "ghost").
			Return(nil, repository.ErrUserNotFound)

		user, err := fx.service.Authenticate(ctx, "ghost", "s3cret")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		stored := activeUser("alice")

		fx.userRepo.EXPECT().
			FindByUsername(ctx, "alice").
			Return(stored, nil)

		fx.hasher.EXPECT().
			Check("wrong", stored.HashedPassword).
			Return(false)

		user, err := fx.service.Authenticate(ctx, "alice", "wrong")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Authenticate_DisabledUserStillAuthenticates(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	stored := activeUser("alice")
	stored.Disabled = true

	fx.userRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(stored, nil)

	fx.hasher.EXPECT().
		Check("s3cret", stored.HashedPassword).
		Return(true)

	user, err := fx.service.Authenticate(ctx, "alice", "s3cret")
	require.NoError(t, err)
	assert.True(t, user.Disabled)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	stored := activeUser("alice")

	fx.userRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(stored, nil)

	fx.hasher.EXPECT().
		Check("s3cret", stored.HashedPassword).
		Return(true)

	fx.tokenService.EXPECT().
		Issue("alice").
		Return("signed-token", nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.AccessToken)
	assert.Equal(t, "bearer", out.TokenType)
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByUsername(ctx, "ghost").
		Return(nil, repository.ErrUserNotFound)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "s3cret"})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_IssueFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	stored := activeUser("alice")

	fx.userRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(stored, nil)

	fx.hasher.EXPECT().
		Check("s3cret", stored.HashedPassword).
		Return(true)

	fx.tokenService.EXPECT().
		Issue("alice").
		Return("", errors.New("signing failed"))

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "s3cret"})
	assert.Nil(t, out)
	assert.Contains(t, err.Error(), "failed to issue token")
}

func TestAuthService_Resolve_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	stored := activeUser("alice")

	fx.tokenService.EXPECT().
		Verify("signed-token").
		Return("alice", nil)

	fx.userRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(stored, nil)

	user, err := fx.service.Resolve(ctx, "signed-token")
	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestAuthService_Resolve_BadToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		Verify("garbage").
		Return("", errors.New("invalid token"))

	user, err := fx.service.Resolve(ctx, "garbage")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

// A token whose subject was deleted after issuance is unauthenticated, not a 404.
func TestAuthService_Resolve_SubjectVanished(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		Verify("signed-token").
		Return("alice", nil)

	fx.userRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.Resolve(ctx, "signed-token")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthService_Resolve_DisabledUserResolves(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	stored := activeUser("alice")
	stored.Disabled = true

	fx.tokenService.EXPECT().
		Verify("signed-token").
		Return("alice", nil)

	fx.userRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(stored, nil)

	user, err := fx.service.Resolve(ctx, "signed-token")
	require.NoError(t, err)
	assert.True(t, user.Disabled)
}

func TestAuthService_ResolveActive_DisabledUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	stored := activeUser("alice")
	stored.Disabled = true

	fx.tokenService.EXPECT().
		Verify("signed-token").
		Return("alice", nil)

	fx.userRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(stored, nil)

	user, err := fx.service.ResolveActive(ctx, "signed-token")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrInactiveUser)
}

func TestAuthService_ResolveActive_ActiveUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	stored := activeUser("alice")

	fx.tokenService.EXPECT().
		Verify("signed-token").
		Return("alice", nil)

	fx.userRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(stored, nil)

	user, err := fx.service.ResolveActive(ctx, "signed-token")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}
