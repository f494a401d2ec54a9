package handler

import (
	"log/slog"
	"net/http"

	"fitlog/internal/delivery/http/middleware"
	"fitlog/internal/delivery/http/response"
	"fitlog/internal/delivery/http/validator"
	"fitlog/internal/domain/entity"
	domainerrors "fitlog/internal/domain/errors"
	"fitlog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RoutineHandlerParams holds dependencies for RoutineHandler, injected by Fx.
type RoutineHandlerParams struct {
	fx.In

	RoutineUC usecase.RoutineUsecase
	Logger    *slog.Logger
}

// RoutineHandler holds dependencies for routine handlers
type RoutineHandler struct {
	routineUC usecase.RoutineUsecase
	logger    *slog.Logger
}

// NewRoutineHandler is the constructor for RoutineHandler
func NewRoutineHandler(params RoutineHandlerParams) *RoutineHandler {
	return &RoutineHandler{
		routineUC: params.RoutineUC,
		logger:    params.Logger,
	}
}

// CreateRoutineRequest represents the request body for creating a routine
type CreateRoutineRequest struct {
	Name        string  `json:"name" validate:"required,max=255,nonul"`
	Description *string `json:"description" validate:"omitempty,nonul"`
	Duration    *int    `json:"duration" validate:"required,gte=0,lte=2147483647"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
}

// RoutineResponse is the public view of a routine
type RoutineResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description" validate:"omitempty,nonul"`
	Duration    int     `json:"duration"`
	Date        string  `json:"date"`
	UserID      int64   `json:"user_id"`
	WorkoutIDs  []int64 `json:"workout_ids"`
}

func toRoutineResponse(r *entity.Routine) RoutineResponse {
	workoutIDs := r.WorkoutIDs
	if workoutIDs == nil {
		workoutIDs = []int64{}
	}

	return RoutineResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Duration:    r.Duration,
		Date:        r.Date,
		UserID:      r.UserID,
		WorkoutIDs:  workoutIDs,
	}
}

// GetRoutine handles GET /routines/:id
func (h *RoutineHandler) GetRoutine(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthenticated(c)
	}

	routineID, ok := parseID(c, "id")
	if !ok {
		return response.FromAppError(c, domainerrors.ErrRoutineNotFound, nil)
	}

	routine, err := h.routineUC.GetRoutine(c.Request().Context(), identity.UserID, routineID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toRoutineResponse(routine))
}

// ListRoutines handles GET /routines
func (h *RoutineHandler) ListRoutines(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthenticated(c)
	}

	routines, err := h.routineUC.ListRoutines(c.Request().Context(), identity.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	items := make([]RoutineResponse, 0, len(routines))
	for _, routine := range routines {
		items = append(items, toRoutineResponse(routine))
	}

	return response.Success(c, http.StatusOK, items)
}

// CreateRoutine handles POST /routines
func (h *RoutineHandler) CreateRoutine(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthenticated(c)
	}

	var req CreateRoutineRequest
	if err := c.Bind(&req); err != nil {
		return response.ValidationFailed(c, nil)
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, validator.Details(err))
	}

	routine, err := h.routineUC.CreateRoutine(c.Request().Context(), identity.UserID, &usecase.CreateRoutineInput{
		Name:        req.Name,
		Description: req.Description,
		Duration:    *req.Duration,
		Date:        req.Date,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toRoutineResponse(routine))
}

// DeleteRoutine handles DELETE /routines/:id
func (h *RoutineHandler) DeleteRoutine(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthenticated(c)
	}

	routineID, ok := parseID(c, "id")
	if !ok {
		return response.FromAppError(c, domainerrors.ErrRoutineNotFound, nil)
	}

	if err := h.routineUC.DeleteRoutine(c.Request().Context(), identity.UserID, routineID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// AttachWorkout handles PUT /routines/:id/workouts/:workoutId
func (h *RoutineHandler) AttachWorkout(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthenticated(c)
	}

	routineID, workoutID, ok := parseRoutineWorkoutIDs(c)
	if !ok {
		return response.FromAppError(c, domainerrors.ErrRoutineNotFound, nil)
	}

	if err := h.routineUC.AttachWorkout(c.Request().Context(), identity.UserID, routineID, workoutID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// DetachWorkout handles DELETE /routines/:id/workouts/:workoutId
func (h *RoutineHandler) DetachWorkout(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthenticated(c)
	}

	routineID, workoutID, ok := parseRoutineWorkoutIDs(c)
	if !ok {
		return response.FromAppError(c, domainerrors.ErrRoutineNotFound, nil)
	}

	if err := h.routineUC.DetachWorkout(c.Request().Context(), identity.UserID, routineID, workoutID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

func parseRoutineWorkoutIDs(c echo.Context) (int64, int64, bool) {
	routineID, ok := parseID(c, "id")
	if !ok {
		return 0, 0, false
	}

	workoutID, ok := parseID(c, "workoutId")
	if !ok {
		return 0, 0, false
	}

	return routineID, workoutID, true
}
