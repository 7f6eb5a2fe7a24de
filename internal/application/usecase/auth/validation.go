// Package auth contains authentication-related use cases.
package auth

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

const (
	// MaxNameLength is the maximum length of a user's name.
	MaxNameLength = 255
	// MaxEmailLength is the maximum length of an email address.
	MaxEmailLength = 255
	// MaxPasswordBytes is the longest password bcrypt accepts, counted in bytes.
	MaxPasswordBytes = 72
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// isValidEmail validates email format using a simple regex.
func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func requireString(v *domainerror.ValidationError, field, value string) bool {
	if strings.TrimSpace(value) == "" {
		v.Add(field, fmt.Sprintf("The %s field is required.", field))
		return false
	}
	return true
}

func maxLength(v *domainerror.ValidationError, field, value string, limit int) {
	if utf8.RuneCountInString(value) > limit {
		v.Add(field, fmt.Sprintf("The %s field must not be greater than %d characters.", field, limit))
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
