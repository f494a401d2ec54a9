package postgres

import (
	"context"

	"fitlog/internal/domain/entity"
	domainerrors "fitlog/internal/domain/errors"
	"fitlog/internal/domain/repository"
	"fitlog/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// workoutRepository implements the repository.WorkoutRepository interface.
// Every query carries the owner in its predicate.
type workoutRepository struct {
	db *gorm.DB
}

// NewWorkoutRepository is the constructor for workoutRepository.
func NewWorkoutRepository(db *gorm.DB) repository.WorkoutRepository {
	return &workoutRepository{
		db: db,
	}
}

// FindOwned retrieves a workout by id, only if it belongs to ownerID.
func (repo *workoutRepository) FindOwned(ctx context.Context, id, ownerID int64) (*entity.Workout, error) {
	var workoutM model.WorkoutModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&workoutM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWorkoutNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find workout")
	}

	return toWorkoutDomain(&workoutM), nil
}

// ListOwned retrieves all workouts of ownerID ordered by id.
func (repo *workoutRepository) ListOwned(ctx context.Context, ownerID int64) ([]*entity.Workout, error) {
	var workoutMs []*model.WorkoutModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("id ASC").
		Find(&workoutMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list workouts")
	}

	workouts := make([]*entity.Workout, 0, len(workoutMs))
	for _, workoutM := range workoutMs {
		workouts = append(workouts, toWorkoutDomain(workoutM))
	}

	return workouts, nil
}

// Create persists a new workout.
func (repo *workoutRepository) Create(ctx context.Context, workout *entity.Workout) error {
	workoutM := fromWorkoutDomain(workout)

	if err := repo.db.WithContext(ctx).Create(workoutM).Error; err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) || isInvalidValue(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid workout fields")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUnauthenticated.WrapMessage("workout owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create workout")
	}

	workout.ID = workoutM.ID
	workout.CreatedAt = workoutM.CreatedAt

	return nil
}

// DeleteOwned removes a workout in a single owner-scoped statement.
func (repo *workoutRepository) DeleteOwned(ctx context.Context, id, ownerID int64) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.WorkoutModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete workout")
	}

	return result.RowsAffected > 0, nil
}

// --- Mapper Functions ---

func toWorkoutDomain(data *model.WorkoutModel) *entity.Workout {
	if data == nil {
		return nil
	}

	return &entity.Workout{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Duration:    data.Duration,
		Date:        data.Date,
		UserID:      data.UserID,
		CreatedAt:   data.CreatedAt,
	}
}

func fromWorkoutDomain(data *entity.Workout) *model.WorkoutModel {
	if data == nil {
		return nil
	}

	return &model.WorkoutModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Duration:    data.Duration,
		Date:        data.Date,
		UserID:      data.UserID,
		CreatedAt:   data.CreatedAt,
	}
}
