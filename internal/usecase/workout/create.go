package workout

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fitstacklabs/fitness-api/internal/audit"
	domain "github.com/fitstacklabs/fitness-api/internal/domain/workout"
	"github.com/fitstacklabs/fitness-api/internal/models"
)

type CreateInput struct {
	Name      string
	Duration  string
	Status    string
	DateAdded *time.Time
}

type CreateWorkout struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateWorkout(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateWorkout {
	return &CreateWorkout{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateWorkout) Execute(
	ctx context.Context,
	userID string,
	in CreateInput,
) (*models.Workout, error) {

	dateAdded := time.Now()
	if in.DateAdded != nil {
		dateAdded = *in.DateAdded
	}

	w := &models.Workout{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      in.Name,
		Duration:  in.Duration,
		Status:    in.Status,
		IsActive:  true,
		DateAdded: dateAdded,
	}

	if err := uc.repo.CreateWorkout(ctx, w); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "workout_created",
		Entity:   "workout",
		EntityID: &w.ID,
	})

	return w, nil
}
