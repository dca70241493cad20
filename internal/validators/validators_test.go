package validators

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIsEmailValid(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"a@b.com", true},
		{"first.last@sub.example.org", true},
		{"user+tag@example.co", true},
		{"", false},
		{"plainaddress", false},
		{"no@dot", false},
		{"two@@example.com", false},
		{"spaces in@example.com", false},
		{"user@exam ple.com", false},
		{"@example.com", false},
		{"user@x.com", true},
		{"user@", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, IsEmailValid(tc.email), "email %q", tc.email)
	}
}

func TestIsMobileValid(t *testing.T) {
	cases := []struct {
		mobile string
		want   bool
	}{
		{"12345678901", true},
		{"00000000000", true},
		{"1234567890", false},
		{"123456789012", false},
		{"", false},
		{"1234567890a", false},
		{"12345 78901", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, IsMobileValid(tc.mobile), "mobile %q", tc.mobile)
	}
}

func TestIsPasswordValid(t *testing.T) {
	assert.False(t, IsPasswordValid(""))
	assert.False(t, IsPasswordValid("short"))
	assert.False(t, IsPasswordValid("1234567"))
	assert.True(t, IsPasswordValid("12345678"))
	assert.True(t, IsPasswordValid("longenough"))
}

func TestIsWorkoutIDValid(t *testing.T) {
	assert.True(t, IsWorkoutIDValid(uuid.NewString()))
	assert.False(t, IsWorkoutIDValid(""))
	assert.False(t, IsWorkoutIDValid("123"))
	assert.False(t, IsWorkoutIDValid("not-a-uuid"))
}
