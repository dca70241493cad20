package workout

import (
	"context"

	"github.com/fitstacklabs/fitness-api/internal/audit"
	domain "github.com/fitstacklabs/fitness-api/internal/domain/workout"
	"github.com/fitstacklabs/fitness-api/internal/httperr"
	"github.com/fitstacklabs/fitness-api/internal/models"
)

type CompleteWorkout struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteWorkout(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CompleteWorkout {
	return &CompleteWorkout{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CompleteWorkout) Execute(
	ctx context.Context,
	userID string,
	workoutID string,
) (*models.Workout, error) {

	w, err := uc.repo.GetWorkoutForUser(ctx, workoutID, userID)
	if err != nil {
		return nil, httperr.ErrBusiness("workout_not_found")
	}

	domain.Complete(w)

	if err := uc.repo.UpdateWorkout(ctx, w); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "workout_completed",
		Entity:   "workout",
		EntityID: &w.ID,
	})

	return w, nil
}
