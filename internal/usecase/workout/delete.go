package workout

import (
	"context"

	"github.com/fitstacklabs/fitness-api/internal/audit"
	domain "github.com/fitstacklabs/fitness-api/internal/domain/workout"
	"github.com/fitstacklabs/fitness-api/internal/httperr"
	"github.com/fitstacklabs/fitness-api/internal/models"
)

type DeleteWorkout struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteWorkout(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteWorkout {
	return &DeleteWorkout{
		repo:  repo,
		audit: audit,
	}
}

// Execute deletes a workout owned by userID and returns the removed record.
func (uc *DeleteWorkout) Execute(
	ctx context.Context,
	userID string,
	workoutID string,
) (*models.Workout, error) {

	w, err := uc.repo.GetWorkoutForUser(ctx, workoutID, userID)
	if err != nil {
		return nil, httperr.ErrBusiness("workout_not_found")
	}

	if err := uc.repo.DeleteWorkout(ctx, w); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "workout_deleted",
		Entity:   "workout",
		EntityID: &w.ID,
	})

	return w, nil
}
