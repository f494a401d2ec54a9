package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"fitlog/internal/delivery/http/middleware"
	"fitlog/internal/delivery/http/response"
	"fitlog/internal/delivery/http/validator"
	"fitlog/internal/domain/entity"
	domainerrors "fitlog/internal/domain/errors"
	"fitlog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WorkoutHandlerParams holds dependencies for WorkoutHandler, injected by Fx.
type WorkoutHandlerParams struct {
	fx.In

	WorkoutUC usecase.WorkoutUsecase
	Logger    *slog.Logger
}

// WorkoutHandler holds dependencies for workout handlers
type WorkoutHandler struct {
	workoutUC usecase.WorkoutUsecase
	logger    *slog.Logger
}

// NewWorkoutHandler is the constructor for WorkoutHandler
func NewWorkoutHandler(params WorkoutHandlerParams) *WorkoutHandler {
	return &WorkoutHandler{
		workoutUC: params.WorkoutUC,
		logger:    params.Logger,
	}
}

// CreateWorkoutRequest represents the request body for recording a workout.
// The owner is always the caller and is never read from the body.
type CreateWorkoutRequest struct {
	Name        string  `json:"name" validate:"required,max=255,nonul"`
	Description *string `json:"description" validate:"omitempty,nonul"`
	Duration    *int    `json:"duration" validate:"required,gte=0,lte=2147483647"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
}

// WorkoutResponse is the public view of a workout
type WorkoutResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description" validate:"omitempty,nonul"`
	Duration    int     `json:"duration"`
	Date        string  `json:"date"`
	UserID      int64   `json:"user_id"`
}

func toWorkoutResponse(w *entity.Workout) WorkoutResponse {
	return WorkoutResponse{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		Duration:    w.Duration,
		Date:        w.Date,
		UserID:      w.UserID,
	}
}

// parseID reads a numeric path parameter. Anything else is reported as not found.
func parseID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

// GetWorkout handles GET /workouts/:id
func (h *WorkoutHandler) GetWorkout(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthenticated(c)
	}

	workoutID, ok := parseID(c, "id")
	if !ok {
		return response.FromAppError(c, domainerrors.ErrWorkoutNotFound, nil)
	}

	workout, err := h.workoutUC.GetWorkout(c.Request().Context(), identity.UserID, workoutID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toWorkoutResponse(workout))
}

// ListWorkouts handles GET /workouts
func (h *WorkoutHandler) ListWorkouts(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthenticated(c)
	}

	workouts, err := h.workoutUC.ListWorkouts(c.Request().Context(), identity.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	items := make([]WorkoutResponse, 0, len(workouts))
	for _, workout := range workouts {
		items = append(items, toWorkoutResponse(workout))
	}

	return response.Success(c, http.StatusOK, items)
}

// CreateWorkout handles POST /workouts
func (h *WorkoutHandler) CreateWorkout(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthenticated(c)
	}

	var req CreateWorkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.ValidationFailed(c, nil)
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, validator.Details(err))
	}

	workout, err := h.workoutUC.CreateWorkout(c.Request().Context(), identity.UserID, &usecase.CreateWorkoutInput{
		Name:        req.Name,
		Description: req.Description,
		Duration:    *req.Duration,
		Date:        req.Date,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toWorkoutResponse(workout))
}

// DeleteWorkout handles DELETE /workouts/:id
func (h *WorkoutHandler) DeleteWorkout(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthenticated(c)
	}

	workoutID, ok := parseID(c, "id")
	if !ok {
		return response.FromAppError(c, domainerrors.ErrWorkoutNotFound, nil)
	}

	if err := h.workoutUC.DeleteWorkout(c.Request().Context(), identity.UserID, workoutID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
