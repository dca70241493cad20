package workout

import (
	"context"

	"github.com/fitstacklabs/fitness-api/internal/audit"
	domain "github.com/fitstacklabs/fitness-api/internal/domain/workout"
	"github.com/fitstacklabs/fitness-api/internal/httperr"
	"github.com/fitstacklabs/fitness-api/internal/models"
)

type ArchiveWorkout struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewArchiveWorkout(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ArchiveWorkout {
	return &ArchiveWorkout{
		repo:  repo,
		audit: audit,
	}
}

// Execute archives a workout owned by userID. changed is false when the
// workout was already archived; in that case no write happens.
func (uc *ArchiveWorkout) Execute(
	ctx context.Context,
	userID string,
	workoutID string,
) (w *models.Workout, changed bool, err error) {

	w, err = uc.repo.GetWorkoutForUser(ctx, workoutID, userID)
	if err != nil {
		return nil, false, httperr.ErrBusiness("workout_not_found")
	}

	if !domain.Archive(w) {
		return w, false, nil
	}

	if err := uc.repo.UpdateWorkout(ctx, w); err != nil {
		return nil, false, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "workout_archived",
		Entity:   "workout",
		EntityID: &w.ID,
	})

	return w, true, nil
}
