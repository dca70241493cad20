package workout

import (
	"context"

	"github.com/fitstacklabs/fitness-api/internal/models"
)

type Repository interface {
	// -------- Create --------
	CreateWorkout(
		ctx context.Context,
		w *models.Workout,
	) error

	// -------- Read --------
	GetWorkoutByID(
		ctx context.Context,
		id string,
	) (*models.Workout, error)

	GetWorkoutForUser(
		ctx context.Context,
		id string,
		userID string,
	) (*models.Workout, error)

	ListWorkoutsByUser(
		ctx context.Context,
		userID string,
	) ([]models.Workout, error)

	ListActiveWorkouts(
		ctx context.Context,
	) ([]models.Workout, error)

	SearchWorkoutsByName(
		ctx context.Context,
		name string,
	) ([]models.Workout, error)

	// -------- Write --------
	UpdateWorkout(
		ctx context.Context,
		w *models.Workout,
	) error

	DeleteWorkout(
		ctx context.Context,
		w *models.Workout,
	) error
}
