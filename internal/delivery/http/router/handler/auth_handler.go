// Package handler contains the echo handlers of the HTTP API.
package handler

import (
	"log/slog"
	"net/http"

	"fitlog/internal/delivery/http/response"
	"fitlog/internal/delivery/http/validator"
	"fitlog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler holds dependencies for registration and login handlers
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// RegisterRequest represents the request body for creating an account
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=64,nonul"`
	Password string `json:"password" validate:"required,bcryptmax"`
}

// LoginRequest carries login credentials. Clients send it form-encoded;
// JSON is accepted as well.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required,nonul"`
	Password string `json:"password" form:"password" validate:"required"`
}

// UserResponse is the public view of a user
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// TokenResponse is returned on successful login
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register handles POST /auth
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.ValidationFailed(c, nil)
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, validator.Details(err))
	}

	out, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, UserResponse{
		ID:       out.User.ID,
		Username: out.User.Username,
	})
}

// Login handles POST /auth/token
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.ValidationFailed(c, nil)
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, validator.Details(err))
	}

	out, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, TokenResponse{
		AccessToken: out.AccessToken,
		TokenType:   out.TokenType,
	})
}
