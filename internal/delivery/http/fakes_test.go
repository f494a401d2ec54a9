package http

import (
	"context"
	"sort"
	"sync"

	"fitlog/internal/domain/entity"
	domainerrors "fitlog/internal/domain/errors"
	"fitlog/internal/domain/repository"
	"fitlog/internal/domain/service"
)

// memoryStore is an in-memory stand-in for PostgreSQL shared by the fake repositories.
type memoryStore struct {
	mu sync.Mutex

	users    map[string]*entity.User
	workouts map[int64]*entity.Workout
	routines map[int64]*entity.Routine
	links    map[int64]map[int64]struct{} // routine id -> workout ids

	nextUserID    int64
	nextWorkoutID int64
	nextRoutineID int64
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:    map[string]*entity.User{},
		workouts: map[int64]*entity.Workout{},
		routines: map[int64]*entity.Routine{},
		links:    map[int64]map[int64]struct{}{},
	}
}

type memoryUserRepo struct{ s *memoryStore }

func (r memoryUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user, ok := r.s.users[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *user

	return &clone, nil
}

func (r memoryUserRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.users[user.Username]; exists {
		return domainerrors.ErrUsernameTaken.WrapMessage("username already exists")
	}
	r.s.nextUserID++
	user.ID = r.s.nextUserID
	clone := *user
	r.s.users[user.Username] = &clone

	return nil
}

type memoryWorkoutRepo struct{ s *memoryStore }

func (r memoryWorkoutRepo) FindOwned(_ context.Context, id, ownerID int64) (*entity.Workout, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	workout, ok := r.s.workouts[id]
	if !ok || workout.UserID != ownerID {
		return nil, repository.ErrWorkoutNotFound
	}
	clone := *workout

	return &clone, nil
}

func (r memoryWorkoutRepo) ListOwned(_ context.Context, ownerID int64) ([]*entity.Workout, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	workouts := []*entity.Workout{}
	for _, workout := range r.s.workouts {
		if workout.UserID == ownerID {
			clone := *workout
			workouts = append(workouts, &clone)
		}
	}
	sort.Slice(workouts, func(i, j int) bool { return workouts[i].ID < workouts[j].ID })

	return workouts, nil
}

func (r memoryWorkoutRepo) Create(_ context.Context, workout *entity.Workout) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextWorkoutID++
	workout.ID = r.s.nextWorkoutID
	clone := *workout
	r.s.workouts[workout.ID] = &clone

	return nil
}

func (r memoryWorkoutRepo) DeleteOwned(_ context.Context, id, ownerID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	workout, ok := r.s.workouts[id]
	if !ok || workout.UserID != ownerID {
		return false, nil
	}
	delete(r.s.workouts, id)
	for _, workoutIDs := range r.s.links {
		delete(workoutIDs, id)
	}

	return true, nil
}

type memoryRoutineRepo struct{ s *memoryStore }

func (r memoryRoutineRepo) withLinks(routine *entity.Routine) *entity.Routine {
	clone := *routine
	clone.WorkoutIDs = []int64{}
	for workoutID := range r.s.links[routine.ID] {
		clone.WorkoutIDs = append(clone.WorkoutIDs, workoutID)
	}
	sort.Slice(clone.WorkoutIDs, func(i, j int) bool { return clone.WorkoutIDs[i] < clone.WorkoutIDs[j] })

	return &clone
}

func (r memoryRoutineRepo) FindOwned(_ context.Context, id, ownerID int64) (*entity.Routine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	routine, ok := r.s.routines[id]
	if !ok || routine.UserID != ownerID {
		return nil, repository.ErrRoutineNotFound
	}

	return r.withLinks(routine), nil
}

func (r memoryRoutineRepo) ListOwned(_ context.Context, ownerID int64) ([]*entity.Routine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	routines := []*entity.Routine{}
	for _, routine := range r.s.routines {
		if routine.UserID == ownerID {
			routines = append(routines, r.withLinks(routine))
		}
	}
	sort.Slice(routines, func(i, j int) bool { return routines[i].ID < routines[j].ID })

	return routines, nil
}

func (r memoryRoutineRepo) Create(_ context.Context, routine *entity.Routine) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextRoutineID++
	routine.ID = r.s.nextRoutineID
	clone := *routine
	r.s.routines[routine.ID] = &clone

	return nil
}

func (r memoryRoutineRepo) DeleteOwned(_ context.Context, id, ownerID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	routine, ok := r.s.routines[id]
	if !ok || routine.UserID != ownerID {
		return false, nil
	}
	delete(r.s.routines, id)
	delete(r.s.links, id)

	return true, nil
}

func (r memoryRoutineRepo) AttachWorkout(_ context.Context, routineID, workoutID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.links[routineID] == nil {
		r.s.links[routineID] = map[int64]struct{}{}
	}
	r.s.links[routineID][workoutID] = struct{}{}

	return nil
}

func (r memoryRoutineRepo) DetachWorkout(_ context.Context, routineID, workoutID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.links[routineID][workoutID]; !ok {
		return false, nil
	}
	delete(r.s.links[routineID], workoutID)

	return true, nil
}

// memoryTxManager runs the callback directly; the store has no partial writes to undo in these tests.
type memoryTxManager struct{ s *memoryStore }

func (m memoryTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(memoryFactory(m))
}

type memoryFactory struct{ s *memoryStore }

func (f memoryFactory) UserRepo() repository.UserRepository       { return memoryUserRepo(f) }
func (f memoryFactory) WorkoutRepo() repository.WorkoutRepository { return memoryWorkoutRepo(f) }
func (f memoryFactory) RoutineRepo() repository.RoutineRepository { return memoryRoutineRepo(f) }

// recordingPublisher collects published events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*service.ActivityEvent
}

func (p *recordingPublisher) PublishActivityEvent(_ context.Context, event *service.ActivityEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	types := make([]string, 0, len(p.events))
	for _, event := range p.events {
		types = append(types, event.Type)
	}

	return types
}
