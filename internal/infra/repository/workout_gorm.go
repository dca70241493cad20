package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/fitstacklabs/fitness-api/internal/models"
)

type WorkoutGormRepository struct {
	db *gorm.DB
}

func NewWorkoutGormRepository(db *gorm.DB) *WorkoutGormRepository {
	return &WorkoutGormRepository{db: db}
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func (r *WorkoutGormRepository) CreateWorkout(
	ctx context.Context,
	w *models.Workout,
) error {
	return r.db.WithContext(ctx).Create(w).Error
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *WorkoutGormRepository) GetWorkoutByID(
	ctx context.Context,
	id string,
) (*models.Workout, error) {

	var w models.Workout
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WorkoutGormRepository) GetWorkoutForUser(
	ctx context.Context,
	id string,
	userID string,
) (*models.Workout, error) {

	var w models.Workout
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WorkoutGormRepository) ListWorkoutsByUser(
	ctx context.Context,
	userID string,
) ([]models.Workout, error) {

	var workouts []models.Workout
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date_added DESC").
		Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

func (r *WorkoutGormRepository) ListActiveWorkouts(
	ctx context.Context,
) ([]models.Workout, error) {

	var workouts []models.Workout
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("date_added DESC").
		Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

func (r *WorkoutGormRepository) SearchWorkoutsByName(
	ctx context.Context,
	name string,
) ([]models.Workout, error) {

	var workouts []models.Workout
	if err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+name+"%").
		Order("date_added DESC").
		Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

// --------------------------------------------------
// Write
// --------------------------------------------------

func (r *WorkoutGormRepository) UpdateWorkout(
	ctx context.Context,
	w *models.Workout,
) error {
	return r.db.WithContext(ctx).Save(w).Error
}

func (r *WorkoutGormRepository) DeleteWorkout(
	ctx context.Context,
	w *models.Workout,
) error {
	return r.db.WithContext(ctx).Delete(w).Error
}
