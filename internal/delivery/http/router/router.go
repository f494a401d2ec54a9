// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fitlog/internal/delivery/http/middleware"
	"fitlog/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	WorkoutHandler *handler.WorkoutHandler
	RoutineHandler *handler.RoutineHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	workoutHandler *handler.WorkoutHandler
	routineHandler *handler.RoutineHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		workoutHandler: params.WorkoutHandler,
		routineHandler: params.RoutineHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("", r.authHandler.Register)
		authGroup.POST("/token", r.authHandler.Login)
	}

	// Workout routes that require authentication
	workoutsGroup := e.Group("/workouts")
	workoutsGroup.Use(r.authMiddleware.Authenticate)
	{
		workoutsGroup.GET("", r.workoutHandler.ListWorkouts)
		workoutsGroup.POST("", r.workoutHandler.CreateWorkout)
		workoutsGroup.GET("/:id", r.workoutHandler.GetWorkout)
		workoutsGroup.DELETE("/:id", r.workoutHandler.DeleteWorkout)
	}

	// Routine routes that require authentication
	routinesGroup := e.Group("/routines")
	routinesGroup.Use(r.authMiddleware.Authenticate)
	{
		routinesGroup.GET("", r.routineHandler.ListRoutines)
		routinesGroup.POST("", r.routineHandler.CreateRoutine)
		routinesGroup.GET("/:id", r.routineHandler.GetRoutine)
		routinesGroup.DELETE("/:id", r.routineHandler.DeleteRoutine)
		routinesGroup.PUT("/:id/workouts/:workoutId", r.routineHandler.AttachWorkout)
		routinesGroup.DELETE("/:id/workouts/:workoutId", r.routineHandler.DetachWorkout)
	}
}
