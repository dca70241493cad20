package workout

import (
	"context"

	domain "github.com/fitstacklabs/fitness-api/internal/domain/workout"
	"github.com/fitstacklabs/fitness-api/internal/models"
)

// ListUserWorkouts returns every workout owned by the caller.
type ListUserWorkouts struct {
	repo domain.Repository
}

func NewListUserWorkouts(repo domain.Repository) *ListUserWorkouts {
	return &ListUserWorkouts{repo: repo}
}

func (uc *ListUserWorkouts) Execute(
	ctx context.Context,
	userID string,
) ([]models.Workout, error) {
	return uc.repo.ListWorkoutsByUser(ctx, userID)
}

// ListActiveWorkouts returns every active workout across all users.
type ListActiveWorkouts struct {
	repo domain.Repository
}

func NewListActiveWorkouts(repo domain.Repository) *ListActiveWorkouts {
	return &ListActiveWorkouts{repo: repo}
}

func (uc *ListActiveWorkouts) Execute(
	ctx context.Context,
) ([]models.Workout, error) {
	return uc.repo.ListActiveWorkouts(ctx)
}
