package workout

import (
	"context"

	"github.com/fitstacklabs/fitness-api/internal/audit"
	domain "github.com/fitstacklabs/fitness-api/internal/domain/workout"
	"github.com/fitstacklabs/fitness-api/internal/httperr"
	"github.com/fitstacklabs/fitness-api/internal/models"
)

// UpdateInput carries only the fields present in the request; nil means
// "leave unchanged".
type UpdateInput struct {
	Name     *string
	Duration *string
	Status   *string
}

type UpdateWorkout struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateWorkout(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateWorkout {
	return &UpdateWorkout{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateWorkout) Execute(
	ctx context.Context,
	userID string,
	workoutID string,
	in UpdateInput,
) (*models.Workout, error) {

	w, err := uc.repo.GetWorkoutForUser(ctx, workoutID, userID)
	if err != nil {
		return nil, httperr.ErrBusiness("workout_not_found")
	}

	if in.Name != nil {
		w.Name = *in.Name
	}
	if in.Duration != nil {
		w.Duration = *in.Duration
	}
	if in.Status != nil {
		w.Status = *in.Status
	}

	if err := uc.repo.UpdateWorkout(ctx, w); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "workout_updated",
		Entity:   "workout",
		EntityID: &w.ID,
	})

	return w, nil
}
