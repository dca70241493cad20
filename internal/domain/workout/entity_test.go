package workout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fitstacklabs/fitness-api/internal/models"
)

func TestActivate(t *testing.T) {
	added := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	w := &models.Workout{IsActive: false, DateAdded: added}

	assert.True(t, Activate(w))
	assert.True(t, w.IsActive)

	// second activation is a no-op and must not touch anything
	assert.False(t, Activate(w))
	assert.True(t, w.IsActive)
	assert.Equal(t, added, w.DateAdded)
}

func TestArchive(t *testing.T) {
	w := &models.Workout{IsActive: true}

	assert.True(t, Archive(w))
	assert.False(t, w.IsActive)

	assert.False(t, Archive(w))
	assert.False(t, w.IsActive)
}

func TestArchiveThenActivate(t *testing.T) {
	w := &models.Workout{IsActive: true}

	assert.True(t, Archive(w))
	assert.True(t, Activate(w))
	assert.True(t, w.IsActive)
}

func TestComplete(t *testing.T) {
	w := &models.Workout{IsActive: true, Status: "in progress"}

	Complete(w)
	assert.Equal(t, "completed", w.Status)
	assert.True(t, w.IsActive)
}
