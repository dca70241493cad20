package workout

import (
	"context"

	"github.com/fitstacklabs/fitness-api/internal/audit"
	domain "github.com/fitstacklabs/fitness-api/internal/domain/workout"
	"github.com/fitstacklabs/fitness-api/internal/httperr"
	"github.com/fitstacklabs/fitness-api/internal/models"
)

type ActivateWorkout struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewActivateWorkout(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ActivateWorkout {
	return &ActivateWorkout{
		repo:  repo,
		audit: audit,
	}
}

// Execute activates a workout owned by userID. changed is false when the
// workout was already active; in that case no write happens.
func (uc *ActivateWorkout) Execute(
	ctx context.Context,
	userID string,
	workoutID string,
) (w *models.Workout, changed bool, err error) {

	w, err = uc.repo.GetWorkoutForUser(ctx, workoutID, userID)
	if err != nil {
		return nil, false, httperr.ErrBusiness("workout_not_found")
	}

	if !domain.Activate(w) {
		return w, false, nil
	}

	if err := uc.repo.UpdateWorkout(ctx, w); err != nil {
		return nil, false, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "workout_activated",
		Entity:   "workout",
		EntityID: &w.ID,
	})

	return w, true, nil
}
