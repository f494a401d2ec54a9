package constants

// Supported activity event publisher providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Activity event types emitted by the use cases.
const (
	EventUserRegistered = "user.registered"
	EventWorkoutCreated = "workout.created"
	EventWorkoutDeleted = "workout.deleted"
	EventRoutineCreated = "routine.created"
	EventRoutineDeleted = "routine.deleted"
)
