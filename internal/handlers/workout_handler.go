package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fitstacklabs/fitness-api/internal/httperr"
	"github.com/fitstacklabs/fitness-api/internal/httpresp"
	"github.com/fitstacklabs/fitness-api/internal/middleware"
	ucWorkout "github.com/fitstacklabs/fitness-api/internal/usecase/workout"
	"github.com/fitstacklabs/fitness-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type WorkoutHandler struct {
	create     *ucWorkout.CreateWorkout
	get        *ucWorkout.GetWorkout
	listUser   *ucWorkout.ListUserWorkouts
	listActive *ucWorkout.ListActiveWorkouts
	search     *ucWorkout.SearchWorkouts
	update     *ucWorkout.UpdateWorkout
	activate   *ucWorkout.ActivateWorkout
	archive    *ucWorkout.ArchiveWorkout
	delete     *ucWorkout.DeleteWorkout
	complete   *ucWorkout.CompleteWorkout
}

func NewWorkoutHandler(
	create *ucWorkout.CreateWorkout,
	get *ucWorkout.GetWorkout,
	listUser *ucWorkout.ListUserWorkouts,
	listActive *ucWorkout.ListActiveWorkouts,
	search *ucWorkout.SearchWorkouts,
	update *ucWorkout.UpdateWorkout,
	activate *ucWorkout.ActivateWorkout,
	archive *ucWorkout.ArchiveWorkout,
	remove *ucWorkout.DeleteWorkout,
	complete *ucWorkout.CompleteWorkout,
) *WorkoutHandler {
	return &WorkoutHandler{
		create:     create,
		get:        get,
		listUser:   listUser,
		listActive: listActive,
		search:     search,
		update:     update,
		activate:   activate,
		archive:    archive,
		delete:     remove,
		complete:   complete,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateWorkoutRequest struct {
	Name      string     `json:"name" binding:"required"`
	Duration  string     `json:"duration" binding:"required"`
	Status    string     `json:"status"`
	DateAdded *time.Time `json:"dateAdded"`
}

// Pointer fields distinguish "absent" from "set to empty": omitted fields
// keep their stored value.
type UpdateWorkoutRequest struct {
	Name     *string `json:"name"`
	Duration *string `json:"duration"`
	Status   *string `json:"status"`
}

type SearchWorkoutRequest struct {
	Name string `json:"name" binding:"required"`
}

// ======================================================
// HELPERS
// ======================================================

func workoutID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if !validators.IsWorkoutIDValid(id) {
		httperr.BadRequest(c, "Invalid Workout ID")
		return "", false
	}
	return id, true
}

// ======================================================
// HANDLERS
// ======================================================

func (h *WorkoutHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	w, err := h.create.Execute(c.Request.Context(), userID, ucWorkout.CreateInput{
		Name:      req.Name,
		Duration:  req.Duration,
		Status:    req.Status,
		DateAdded: req.DateAdded,
	})
	if err != nil {
		httperr.Internal(c, err)
		return
	}

	httpresp.Created(c, w)
}

func (h *WorkoutHandler) ListAll(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	workouts, err := h.listUser.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, err)
		return
	}

	httpresp.OK(c, workouts)
}

func (h *WorkoutHandler) ListActive(c *gin.Context) {
	workouts, err := h.listActive.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, err)
		return
	}

	httpresp.OK(c, workouts)
}

func (h *WorkoutHandler) GetByID(c *gin.Context) {
	id, ok := workoutID(c)
	if !ok {
		return
	}

	w, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		if httperr.IsBusiness(err, "workout_not_found") {
			httperr.NotFound(c, "Workout not found")
			return
		}
		httperr.Internal(c, err)
		return
	}

	httpresp.OK(c, w)
}

func (h *WorkoutHandler) Search(c *gin.Context) {
	var req SearchWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	workouts, err := h.search.Execute(c.Request.Context(), req.Name)
	if err != nil {
		httperr.Internal(c, err)
		return
	}

	httpresp.OK(c, workouts)
}

func (h *WorkoutHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	id, ok := workoutID(c)
	if !ok {
		return
	}

	var req UpdateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	w, err := h.update.Execute(c.Request.Context(), userID, id, ucWorkout.UpdateInput{
		Name:     req.Name,
		Duration: req.Duration,
		Status:   req.Status,
	})
	if err != nil {
		if httperr.IsBusiness(err, "workout_not_found") {
			httperr.NotFound(c, "Workout not found")
			return
		}
		httperr.Internal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Workout updated successfully",
		"workouts": w,
	})
}

func (h *WorkoutHandler) Activate(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	id, ok := workoutID(c)
	if !ok {
		return
	}

	w, changed, err := h.activate.Execute(c.Request.Context(), userID, id)
	if err != nil {
		if httperr.IsBusiness(err, "workout_not_found") {
			httperr.NotFound(c, "Workout not found")
			return
		}
		httperr.Internal(c, err)
		return
	}

	if !changed {
		c.JSON(http.StatusOK, gin.H{
			"message": "Workout already active",
			"workout": w,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"message":         "Workout activated successfully",
		"activateWorkout": w,
	})
}

func (h *WorkoutHandler) Archive(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	id, ok := workoutID(c)
	if !ok {
		return
	}

	w, changed, err := h.archive.Execute(c.Request.Context(), userID, id)
	if err != nil {
		if httperr.IsBusiness(err, "workout_not_found") {
			httperr.NotFound(c, "Workout not found")
			return
		}
		httperr.Internal(c, err)
		return
	}

	if !changed {
		c.JSON(http.StatusOK, gin.H{
			"message":         "Workout already archived",
			"archivedWorkout": w,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Workout archived successfully",
	})
}

func (h *WorkoutHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	id, ok := workoutID(c)
	if !ok {
		return
	}

	w, err := h.delete.Execute(c.Request.Context(), userID, id)
	if err != nil {
		if httperr.IsBusiness(err, "workout_not_found") {
			httperr.NotFound(c, "Workout not found")
			return
		}
		httperr.Internal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        "Workout deleted successfully",
		"deletedWorkout": w,
	})
}

func (h *WorkoutHandler) Complete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	id, ok := workoutID(c)
	if !ok {
		return
	}

	w, err := h.complete.Execute(c.Request.Context(), userID, id)
	if err != nil {
		if httperr.IsBusiness(err, "workout_not_found") {
			httperr.NotFound(c, "Workout not found")
			return
		}
		httperr.Internal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        "Workout completed successfully",
		"updatedWorkout": w,
	})
}
