package user

import (
	"context"

	"github.com/fitstacklabs/fitness-api/internal/models"
)

type Repository interface {
	// -------- Create --------
	CreateUser(
		ctx context.Context,
		u *models.User,
	) error

	// -------- Read --------
	GetUserByID(
		ctx context.Context,
		id string,
	) (*models.User, error)

	GetUserByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	CountUsersByEmail(
		ctx context.Context,
		email string,
	) (int64, error)

	ListUsers(
		ctx context.Context,
	) ([]models.User, error)

	// -------- Write --------
	UpdateUser(
		ctx context.Context,
		u *models.User,
	) error

	UpdateUserPassword(
		ctx context.Context,
		id string,
		hashedPassword string,
	) error
}
