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

// routineService implements the RoutineUsecase interface.
type routineService struct {
	txManager   repository.TransactionManager
	routineRepo repository.RoutineRepository
	activity    activityRecorder
	logger      *slog.Logger
}

// RoutineServiceParams holds dependencies for RoutineService, injected by Fx.
type RoutineServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	RoutineRepo    repository.RoutineRepository
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewRoutineService is the constructor for routineService.
func NewRoutineService(params RoutineServiceParams) usecase.RoutineUsecase {
	return &routineService{
		txManager:   params.TxManager,
		routineRepo: params.RoutineRepo,
		activity:    newActivityRecorder(params.EventPublisher),
		logger:      params.Logger,
	}
}

func (srv *routineService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetRoutine returns one of the owner's routines with its workout ids.
func (srv *routineService) GetRoutine(ctx context.Context, ownerID, routineID int64) (*entity.Routine, error) {
	routine, err := srv.routineRepo.FindOwned(ctx, routineID, ownerID)
	if err != nil {
		return nil, translateRoutineError(err, "failed to get routine")
	}

	return routine, nil
}

// ListRoutines returns all of the owner's routines, never nil.
func (srv *routineService) ListRoutines(ctx context.Context, ownerID int64) ([]*entity.Routine, error) {
	routines, err := srv.routineRepo.ListOwned(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list routines")
	}
	if routines == nil {
		routines = []*entity.Routine{}
	}

	return routines, nil
}

// CreateRoutine stores an empty routine owned by ownerID.
func (srv *routineService) CreateRoutine(ctx context.Context, ownerID int64, input *usecase.CreateRoutineInput) (*entity.Routine, error) {
	routine := &entity.Routine{
		Name:        input.Name,
		Description: input.Description,
		Duration:    input.Duration,
		Date:        input.Date,
		UserID:      ownerID,
		WorkoutIDs:  []int64{},
	}

	if err := srv.routineRepo.Create(ctx, routine); err != nil {
		return nil, errors.Wrap(err, "failed to create routine")
	}

	logger := srv.log(ctx)
	logger.Info("Routine created", slog.Int64("routine_id", routine.ID))
	srv.activity.record(ctx, logger, constants.EventRoutineCreated, ownerID, routine.ID)

	return routine, nil
}

// DeleteRoutine removes one of the owner's routines. Linked workouts are kept.
func (srv *routineService) DeleteRoutine(ctx context.Context, ownerID, routineID int64) error {
	deleted, err := srv.routineRepo.DeleteOwned(ctx, routineID, ownerID)
	if err != nil {
		return errors.Wrap(err, "failed to delete routine")
	}
	if !deleted {
		return domainerrors.ErrRoutineNotFound
	}

	logger := srv.log(ctx)
	logger.Info("Routine deleted", slog.Int64("routine_id", routineID))
	srv.activity.record(ctx, logger, constants.EventRoutineDeleted, ownerID, routineID)

	return nil
}

// AttachWorkout checks ownership of both rows and links them in one transaction.
func (srv *routineService) AttachWorkout(ctx context.Context, ownerID, routineID, workoutID int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		routineRepo := repoFactory.RoutineRepo()

		if _, err := routineRepo.FindOwned(ctx, routineID, ownerID); err != nil {
			return err
		}
		if _, err := repoFactory.WorkoutRepo().FindOwned(ctx, workoutID, ownerID); err != nil {
			return err
		}

		return routineRepo.AttachWorkout(ctx, routineID, workoutID)
	})
	if err != nil {
		return translateRoutineError(err, "failed to attach workout")
	}

	srv.log(ctx).Info("Workout attached to routine",
		slog.Int64("routine_id", routineID),
		slog.Int64("workout_id", workoutID),
	)

	return nil
}

// DetachWorkout unlinks a workout from one of the owner's routines.
func (srv *routineService) DetachWorkout(ctx context.Context, ownerID, routineID, workoutID int64) error {
	if _, err := srv.routineRepo.FindOwned(ctx, routineID, ownerID); err != nil {
		return translateRoutineError(err, "failed to detach workout")
	}

	removed, err := srv.routineRepo.DetachWorkout(ctx, routineID, workoutID)
	if err != nil {
		return errors.Wrap(err, "failed to detach workout")
	}
	if !removed {
		return domainerrors.ErrRoutineWorkoutNotLinked
	}

	srv.log(ctx).Info("Workout detached from routine",
		slog.Int64("routine_id", routineID),
		slog.Int64("workout_id", workoutID),
	)

	return nil
}

// translateRoutineError maps repository not-found sentinels to their 404 domain errors.
func translateRoutineError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrRoutineNotFound):
		return domainerrors.ErrRoutineNotFound
	case errors.Is(err, repository.ErrWorkoutNotFound):
		return domainerrors.ErrWorkoutNotFound
	default:
		return errors.Wrap(err, message)
	}
}
