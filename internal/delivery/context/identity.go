package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// Identity is the authenticated caller resolved from a bearer token.
type Identity struct {
	Username string
	UserID   int64
}

// LogValue keeps usernames out of structured logs.
func (i Identity) LogValue() slog.Value {
	return slog.Int64Value(i.UserID)
}

// SetIdentity stores the caller in echo.Context.
func SetIdentity(c echo.Context, identity Identity) {
	c.Set(string(KeyIdentity), identity)
}

// GetIdentity extracts the caller from echo.Context.
// The boolean is false on routes not protected by the auth middleware.
func GetIdentity(c echo.Context) (Identity, bool) {
	identity, ok := c.Get(string(KeyIdentity)).(Identity)

	return identity, ok
}

// WithIdentity returns a new context with the caller.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, KeyIdentity, identity)
}

// GetIdentityFromContext extracts the caller from standard context.Context.
func GetIdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(KeyIdentity).(Identity)

	return identity, ok
}
