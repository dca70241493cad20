package workout

import (
	"github.com/fitstacklabs/fitness-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Activate flips an archived workout back to active. Returns false when the
// workout is already active, in which case nothing was touched.
func Activate(w *models.Workout) bool {
	if w.IsActive {
		return false
	}
	w.IsActive = true
	return true
}

// Archive deactivates a workout. Returns false when it is already archived.
func Archive(w *models.Workout) bool {
	if !w.IsActive {
		return false
	}
	w.IsActive = false
	return true
}

// Complete marks the workout done. Orthogonal to the active flag.
func Complete(w *models.Workout) {
	w.Status = string(StatusCompleted)
}
