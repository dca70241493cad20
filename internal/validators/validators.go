package validators

import (
	"regexp"

	"github.com/google/uuid"
)

// local@domain.tld: no whitespace, single @, at least one dot after it
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

func IsEmailValid(email string) bool {
	return emailPattern.MatchString(email)
}

func IsMobileValid(mobileNo string) bool {
	return len(mobileNo) == 11 && digitsOnly.MatchString(mobileNo)
}

func IsPasswordValid(password string) bool {
	return len(password) >= 8
}

func IsWorkoutIDValid(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
