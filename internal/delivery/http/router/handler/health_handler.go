package handler

import (
	"net/http"

	"fitlog/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthMessage is the body of the unauthenticated health check.
const HealthMessage = "Health Check Complete"

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, HealthMessage)
}
