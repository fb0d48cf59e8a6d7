package middleware

import (
	"strings"

	"blogd/internal/domain/entity"
	domainerrors "blogd/internal/domain/errors"
	"blogd/internal/usecase"

	"github.com/labstack/echo/v4"
)

// keyCurrentUser is the echo.Context key the resolved account is stored under.
const keyCurrentUser = "currentUser"

// AuthMiddleware guards routes behind bearer token authentication.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate resolves the bearer token into an account and stores it on the
// context. A disabled account still passes here; chain RequireActive after it.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrInvalidToken.WrapMessage("authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrInvalidToken.WrapMessage("authorization header is not a bearer token")
		}

		user, err := m.authUC.Resolve(c.Request().Context(), tokenString)
		if err != nil {
			return err
		}

		c.Set(keyCurrentUser, user)

		return next(c)
	}
}

// RequireActive rejects disabled accounts.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireActive(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := CurrentUser(c)
		if !ok {
			return domainerrors.ErrInvalidToken.WrapMessage("no authenticated user on context")
		}

		if user.Disabled {
			return domainerrors.ErrInactiveUser.WrapMessage("account is disabled")
		}

		return next(c)
	}
}

// CurrentUser returns the account resolved by Authenticate, if any.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(keyCurrentUser).(*entity.User)

	return user, ok
}
