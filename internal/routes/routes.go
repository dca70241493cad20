package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fitstacklabs/fitness-api/internal/audit"
	"github.com/fitstacklabs/fitness-api/internal/config"
	"github.com/fitstacklabs/fitness-api/internal/handlers"
	infraRepo "github.com/fitstacklabs/fitness-api/internal/infra/repository"
	"github.com/fitstacklabs/fitness-api/internal/middleware"
	"github.com/fitstacklabs/fitness-api/internal/token"
	ucWorkout "github.com/fitstacklabs/fitness-api/internal/usecase/workout"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	tokens := token.NewService(cfg.JWTSecret)
	userRepo := infraRepo.NewUserGormRepository(db)
	workoutRepo := infraRepo.NewWorkoutGormRepository(db)

	activityLogger := audit.New(db)
	activityDispatcher := audit.NewDispatcher(activityLogger)

	// ======================================================
	// USE CASES — WORKOUTS
	// ======================================================
	createWorkoutUC := ucWorkout.NewCreateWorkout(workoutRepo, activityDispatcher)
	getWorkoutUC := ucWorkout.NewGetWorkout(workoutRepo)
	listUserWorkoutsUC := ucWorkout.NewListUserWorkouts(workoutRepo)
	listActiveWorkoutsUC := ucWorkout.NewListActiveWorkouts(workoutRepo)
	searchWorkoutsUC := ucWorkout.NewSearchWorkouts(workoutRepo)
	updateWorkoutUC := ucWorkout.NewUpdateWorkout(workoutRepo, activityDispatcher)
	activateWorkoutUC := ucWorkout.NewActivateWorkout(workoutRepo, activityDispatcher)
	archiveWorkoutUC := ucWorkout.NewArchiveWorkout(workoutRepo, activityDispatcher)
	deleteWorkoutUC := ucWorkout.NewDeleteWorkout(workoutRepo, activityDispatcher)
	completeWorkoutUC := ucWorkout.NewCompleteWorkout(workoutRepo, activityDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	userHandler := handlers.NewUserHandler(userRepo, tokens, activityDispatcher)

	workoutHandler := handlers.NewWorkoutHandler(
		createWorkoutUC,
		getWorkoutUC,
		listUserWorkoutsUC,
		listActiveWorkoutsUC,
		searchWorkoutsUC,
		updateWorkoutUC,
		activateWorkoutUC,
		archiveWorkoutUC,
		deleteWorkoutUC,
		completeWorkoutUC,
	)

	// ======================================================
	// USERS
	// ======================================================
	users := r.Group("/users")
	{
		users.POST("", userHandler.Register)
		users.POST("/login", userHandler.Login)
		users.POST("/check-email", userHandler.CheckEmail)

		// listing the user base path needs both guards inline: an empty
		// relative path on a nested group would register "/users/" instead
		users.GET("", middleware.RequireAuth(tokens), middleware.RequireAdmin(), userHandler.List)

		securedUsers := users.Group("/")
		securedUsers.Use(middleware.RequireAuth(tokens))
		{
			securedUsers.GET("/profile", userHandler.GetProfile)
			securedUsers.PATCH("/profile", userHandler.UpdateProfile)
			securedUsers.PATCH("/password", userHandler.UpdatePassword)

			adminUsers := securedUsers.Group("/")
			adminUsers.Use(middleware.RequireAdmin())
			{
				adminUsers.PATCH("/:id/admin", userHandler.SetAdmin)
			}
		}
	}

	// ======================================================
	// WORKOUTS
	// ======================================================
	workouts := r.Group("/workouts")
	{
		workouts.GET("/active", workoutHandler.ListActive)
		workouts.GET("/:id", workoutHandler.GetByID)
		workouts.POST("/search", workoutHandler.Search)

		workouts.POST("", middleware.RequireAuth(tokens), workoutHandler.Create)

		securedWorkouts := workouts.Group("/")
		securedWorkouts.Use(middleware.RequireAuth(tokens))
		{
			securedWorkouts.GET("/all", workoutHandler.ListAll)
			securedWorkouts.PATCH("/:id/update", workoutHandler.Update)
			securedWorkouts.PATCH("/:id/activate", workoutHandler.Activate)
			securedWorkouts.PATCH("/:id/archive", workoutHandler.Archive)
			securedWorkouts.DELETE("/deleteWorkout/:id", workoutHandler.Delete)
			securedWorkouts.PATCH("/completeWorkoutStatus/:id", workoutHandler.Complete)
		}
	}
}
