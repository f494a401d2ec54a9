// Package middleware contains echo middleware specific to the HTTP API.
package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "fitlog/internal/delivery/context"
	"fitlog/internal/delivery/http/response"
	"fitlog/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerScheme = "bearer"

// AuthMiddleware provides middleware for bearer token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the caller's identity.
// Every failure produces the same 401 so callers cannot tell why a token was rejected.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return response.Unauthenticated(c)
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			ctx := c.Request().Context()
			deliverycontext.GetLoggerOrDefault(ctx, slog.Default()).DebugContext(ctx, "Bearer token rejected",
				slog.Any("error", err),
			)

			return response.Unauthenticated(c)
		}

		identity := deliverycontext.Identity{
			Username: claims.Username,
			UserID:   claims.UserID,
		}

		// Set user info on the context for handlers and the service layer
		deliverycontext.SetIdentity(c, identity)
		ctx := deliverycontext.WithIdentity(c.Request().Context(), identity)
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.Int64("user_id", identity.UserID)))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
// The scheme is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}

	return token, true
}

// GetIdentity returns the caller stored by Authenticate.
func GetIdentity(c echo.Context) (deliverycontext.Identity, bool) {
	return deliverycontext.GetIdentity(c)
}
