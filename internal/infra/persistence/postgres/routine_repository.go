package postgres

import (
	"context"

	"fitlog/internal/domain/entity"
	domainerrors "fitlog/internal/domain/errors"
	"fitlog/internal/domain/repository"
	"fitlog/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// routineRepository implements the repository.RoutineRepository interface.
// Workout links live in the workout_routine join table and are loaded with a second query.
type routineRepository struct {
	db *gorm.DB
}

// NewRoutineRepository is the constructor for routineRepository.
func NewRoutineRepository(db *gorm.DB) repository.RoutineRepository {
	return &routineRepository{
		db: db,
	}
}

// FindOwned retrieves a routine and its linked workout ids, only if it belongs to ownerID.
func (repo *routineRepository) FindOwned(ctx context.Context, id, ownerID int64) (*entity.Routine, error) {
	var routineM model.RoutineModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&routineM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoutineNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find routine")
	}

	links, err := repo.loadLinks(ctx, []int64{routineM.ID})
	if err != nil {
		return nil, err
	}

	return toRoutineDomain(&routineM, links[routineM.ID]), nil
}

// ListOwned retrieves all routines of ownerID ordered by id.
func (repo *routineRepository) ListOwned(ctx context.Context, ownerID int64) ([]*entity.Routine, error) {
	var routineMs []*model.RoutineModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("id ASC").
		Find(&routineMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list routines")
	}

	routines := make([]*entity.Routine, 0, len(routineMs))
	if len(routineMs) == 0 {
		return routines, nil
	}

	ids := make([]int64, 0, len(routineMs))
	for _, routineM := range routineMs {
		ids = append(ids, routineM.ID)
	}

	links, err := repo.loadLinks(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, routineM := range routineMs {
		routines = append(routines, toRoutineDomain(routineM, links[routineM.ID]))
	}

	return routines, nil
}

// Create persists a new routine. Workout links are added separately.
func (repo *routineRepository) Create(ctx context.Context, routine *entity.Routine) error {
	routineM := fromRoutineDomain(routine)

	if err := repo.db.WithContext(ctx).Create(routineM).Error; err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) || isInvalidValue(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid routine fields")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUnauthenticated.WrapMessage("routine owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create routine")
	}

	routine.ID = routineM.ID
	routine.CreatedAt = routineM.CreatedAt
	if routine.WorkoutIDs == nil {
		routine.WorkoutIDs = []int64{}
	}

	return nil
}

// DeleteOwned removes a routine in a single owner-scoped statement.
// Its workout_routine rows are removed by the foreign key cascade.
func (repo *routineRepository) DeleteOwned(ctx context.Context, id, ownerID int64) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.RoutineModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete routine")
	}

	return result.RowsAffected > 0, nil
}

// AttachWorkout inserts a workout_routine row, ignoring an existing one.
func (repo *routineRepository) AttachWorkout(ctx context.Context, routineID, workoutID int64) error {
	link := &model.WorkoutRoutineModel{
		WorkoutID: workoutID,
		RoutineID: routineID,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(link).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRoutineNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to attach workout to routine")
	}

	return nil
}

// DetachWorkout deletes a workout_routine row and reports whether it existed.
func (repo *routineRepository) DetachWorkout(ctx context.Context, routineID, workoutID int64) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("routine_id = ? AND workout_id = ?", routineID, workoutID).
		Delete(&model.WorkoutRoutineModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to detach workout from routine")
	}

	return result.RowsAffected > 0, nil
}

// loadLinks returns the workout ids linked to each of the given routines, ascending.
func (repo *routineRepository) loadLinks(ctx context.Context, routineIDs []int64) (map[int64][]int64, error) {
	var linkMs []*model.WorkoutRoutineModel

	if err := repo.db.WithContext(ctx).
		Where("routine_id IN ?", routineIDs).
		Order("routine_id ASC, workout_id ASC").
		Find(&linkMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load routine workouts")
	}

	links := make(map[int64][]int64, len(routineIDs))
	for _, linkM := range linkMs {
		links[linkM.RoutineID] = append(links[linkM.RoutineID], linkM.WorkoutID)
	}

	return links, nil
}

// --- Mapper Functions ---

func toRoutineDomain(data *model.RoutineModel, workoutIDs []int64) *entity.Routine {
	if data == nil {
		return nil
	}
	if workoutIDs == nil {
		workoutIDs = []int64{}
	}

	return &entity.Routine{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Duration:    data.Duration,
		Date:        data.Date,
		UserID:      data.UserID,
		WorkoutIDs:  workoutIDs,
		CreatedAt:   data.CreatedAt,
	}
}

func fromRoutineDomain(data *entity.Routine) *model.RoutineModel {
	if data == nil {
		return nil
	}

	return &model.RoutineModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Duration:    data.Duration,
		Date:        data.Date,
		UserID:      data.UserID,
		CreatedAt:   data.CreatedAt,
	}
}
