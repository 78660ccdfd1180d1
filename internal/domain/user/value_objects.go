package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidRole  = errors.New("invalid role")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email string

// NewEmail normalizes to lower case so the same address always compares equal.
func NewEmail(value string) (Email, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if !emailRegex.MatchString(value) {
		return Email(""), ErrInvalidEmail
	}
	return Email(value), nil
}

func (e Email) String() string {
	return string(e)
}
