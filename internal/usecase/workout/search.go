package workout

import (
	"context"

	domain "github.com/fitstacklabs/fitness-api/internal/domain/workout"
	"github.com/fitstacklabs/fitness-api/internal/models"
)

type SearchWorkouts struct {
	repo domain.Repository
}

func NewSearchWorkouts(repo domain.Repository) *SearchWorkouts {
	return &SearchWorkouts{repo: repo}
}

// Execute does a case-insensitive substring match on the workout name.
func (uc *SearchWorkouts) Execute(
	ctx context.Context,
	name string,
) ([]models.Workout, error) {
	return uc.repo.SearchWorkoutsByName(ctx, name)
}
