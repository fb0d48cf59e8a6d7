package handler_test

import (
	"io"
	"log/slog"
	"testing"

	"blogd/config"
	"blogd/internal/delivery/http/middleware"
	"blogd/internal/delivery/http/router"
	"blogd/internal/delivery/http/router/handler"
	"blogd/internal/delivery/http/validator"
	"blogd/internal/infra/auth"
	mockRepo "blogd/internal/mocks/repository"
	"blogd/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// serverFixtures wires the real router, middlewares, and services over mocked
// repositories, so tests exercise full request/response cycles.
type serverFixtures struct {
	echo        *echo.Echo
	userRepo    *mockRepo.MockUserRepository
	postRepo    *mockRepo.MockPostRepository
	commentRepo *mockRepo.MockCommentRepository
}

func createTestServer(t *testing.T) serverFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	userRepo := mockRepo.NewMockUserRepository(t)
	postRepo := mockRepo.NewMockPostRepository(t)
	commentRepo := mockRepo.NewMockCommentRepository(t)

	cfg := &config.Config{}
	cfg.SecretKey.Access = "handler-test-secret"
	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	// Min cost keeps the hashing rounds out of the test budget.
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)

	authUC := impl.NewAuthService(impl.AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})
	blogUC := impl.NewBlogService(postRepo, commentRepo)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	router.NewRouter(router.RouterParams{
		AuthHandler:    handler.NewAuthHandler(authUC),
		BlogHandler:    handler.NewBlogHandler(blogUC),
		AuthMiddleware: middleware.NewAuthMiddleware(authUC),
	}).RegisterRoutes(e)

	return serverFixtures{
		echo:        e,
		userRepo:    userRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}
