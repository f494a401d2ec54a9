package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "fitlog/internal/delivery/context"
	domainerrors "fitlog/internal/domain/errors"
	"fitlog/internal/domain/service"
	mockSvc "fitlog/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		token  string
		ok     bool
	}{
		{name: "canonical", header: "Bearer abc.def.ghi", token: "abc.def.ghi", ok: true},
		{name: "lowercase scheme", header: "bearer abc", token: "abc", ok: true},
		{name: "uppercase scheme", header: "BEARER abc", token: "abc", ok: true},
		{name: "extra whitespace", header: "  Bearer   abc  ", token: "abc", ok: true},
		{name: "empty", header: "", ok: false},
		{name: "scheme only", header: "Bearer", ok: false},
		{name: "scheme with blank token", header: "Bearer    ", ok: false},
		{name: "basic scheme", header: "Basic YWxpY2U6cHc=", ok: false},
		{name: "token without scheme", header: "abc.def.ghi", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			token, ok := bearerToken(tc.header)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.token, token)
		})
	}
}

func TestAuthenticate_ValidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Validate("good").Return(&service.Claims{Username: "alice", UserID: 7}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/workouts", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var fromEcho, fromRequest deliverycontext.Identity
	next := func(c echo.Context) error {
		var ok bool
		fromEcho, ok = GetIdentity(c)
		require.True(t, ok)
		fromRequest, ok = deliverycontext.GetIdentityFromContext(c.Request().Context())
		require.True(t, ok)

		return c.NoContent(http.StatusOK)
	}

	err := NewAuthMiddleware(tokenSvc).Authenticate(next)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	expected := deliverycontext.Identity{Username: "alice", UserID: 7}
	assert.Equal(t, expected, fromEcho)
	assert.Equal(t, expected, fromRequest)
}

func TestAuthenticate_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		header string
		setup  func(*mockSvc.MockTokenService)
	}{
		{name: "missing header"},
		{name: "wrong scheme", header: "Token abc"},
		{
			name:   "invalid token",
			header: "Bearer bad",
			setup: func(m *mockSvc.MockTokenService) {
				m.EXPECT().Validate("bad").Return(nil, domainerrors.ErrUnauthenticated)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			if tc.setup != nil {
				tc.setup(tokenSvc)
			}

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/workouts", nil)
			if tc.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tc.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			called := false
			next := func(echo.Context) error {
				called = true

				return nil
			}

			err := NewAuthMiddleware(tokenSvc).Authenticate(next)(c)
			require.NoError(t, err)
			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
			assert.JSONEq(t, `{"error":{"code":"UNAUTHENTICATED","message":"`+domainerrors.ErrUnauthenticated.Message()+`"}}`, rec.Body.String())
		})
	}
}
