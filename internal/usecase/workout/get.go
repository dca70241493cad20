package workout

import (
	"context"

	domain "github.com/fitstacklabs/fitness-api/internal/domain/workout"
	"github.com/fitstacklabs/fitness-api/internal/httperr"
	"github.com/fitstacklabs/fitness-api/internal/models"
)

type GetWorkout struct {
	repo domain.Repository
}

func NewGetWorkout(repo domain.Repository) *GetWorkout {
	return &GetWorkout{repo: repo}
}

func (uc *GetWorkout) Execute(
	ctx context.Context,
	workoutID string,
) (*models.Workout, error) {

	w, err := uc.repo.GetWorkoutByID(ctx, workoutID)
	if err != nil {
		return nil, httperr.ErrBusiness("workout_not_found")
	}
	return w, nil
}
