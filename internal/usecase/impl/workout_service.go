package impl

import (
	"context"
	"log/slog"

	deliverycontext "fitlog/internal/delivery/context"
	"fitlog/internal/domain/constants"
	"fitlog/internal/domain/entity"
	domainerrors "fitlog/internal/domain/errors"
	"fitlog/internal/domain/repository"
	"fitlog/internal/domain/service"
	"fitlog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// workoutService implements the WorkoutUsecase interface.
type workoutService struct {
	workoutRepo repository.WorkoutRepository
	activity    activityRecorder
	logger      *slog.Logger
}

// WorkoutServiceParams holds dependencies for WorkoutService, injected by Fx.
type WorkoutServiceParams struct {
	fx.In

	WorkoutRepo    repository.WorkoutRepository
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewWorkoutService is the constructor for workoutService.
func NewWorkoutService(params WorkoutServiceParams) usecase.WorkoutUsecase {
	return &workoutService{
		workoutRepo: params.WorkoutRepo,
		activity:    newActivityRecorder(params.EventPublisher),
		logger:      params.Logger,
	}
}

func (srv *workoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetWorkout returns one of the owner's workouts.
func (srv *workoutService) GetWorkout(ctx context.Context, ownerID, workoutID int64) (*entity.Workout, error) {
	workout, err := srv.workoutRepo.FindOwned(ctx, workoutID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrWorkoutNotFound) {
			return nil, domainerrors.ErrWorkoutNotFound
		}

		return nil, errors.Wrap(err, "failed to get workout")
	}

	return workout, nil
}

// ListWorkouts returns all of the owner's workouts, never nil.
func (srv *workoutService) ListWorkouts(ctx context.Context, ownerID int64) ([]*entity.Workout, error) {
	workouts, err := srv.workoutRepo.ListOwned(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list workouts")
	}
	if workouts == nil {
		workouts = []*entity.Workout{}
	}

	return workouts, nil
}

// CreateWorkout stores a workout owned by ownerID. The owner never comes from the input.
func (srv *workoutService) CreateWorkout(ctx context.Context, ownerID int64, input *usecase.CreateWorkoutInput) (*entity.Workout, error) {
	workout := &entity.Workout{
		Name:        input.Name,
		Description: input.Description,
		Duration:    input.Duration,
		Date:        input.Date,
		UserID:      ownerID,
	}

	if err := srv.workoutRepo.Create(ctx, workout); err != nil {
		return nil, errors.Wrap(err, "failed to create workout")
	}

	logger := srv.log(ctx)
	logger.Info("Workout created", slog.Int64("workout_id", workout.ID))
	srv.activity.record(ctx, logger, constants.EventWorkoutCreated, ownerID, workout.ID)

	return workout, nil
}

// DeleteWorkout removes one of the owner's workouts.
func (srv *workoutService) DeleteWorkout(ctx context.Context, ownerID, workoutID int64) error {
	deleted, err := srv.workoutRepo.DeleteOwned(ctx, workoutID, ownerID)
	if err != nil {
		return errors.Wrap(err, "failed to delete workout")
	}
	if !deleted {
		return domainerrors.ErrWorkoutNotFound
	}

	logger := srv.log(ctx)
	logger.Info("Workout deleted", slog.Int64("workout_id", workoutID))
	srv.activity.record(ctx, logger, constants.EventWorkoutDeleted, ownerID, workoutID)

	return nil
}
