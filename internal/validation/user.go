package validation

import (
	"strings"
	"unicode/utf8"
)

const (
	UserNameMinLength = 2
	UserNameMaxLength = 100
	EmailMaxLength    = 100
)

type UserInput struct {
	Name  string
	Email string
}

func User(name, email string) (UserInput, error) {
	n, err := requiredText("name", "Name", name, UserNameMinLength, UserNameMaxLength)
	if err != nil {
		return UserInput{}, err
	}

	e, err := validateEmail(email)
	if err != nil {
		return UserInput{}, err
	}

	return UserInput{Name: n, Email: e}, nil
}

func validateEmail(raw string) (string, error) {
	if raw == "" {
		return "", fail("email", "Email is required")
	}
	v := strings.TrimSpace(raw)
	if !strings.Contains(v, "@") || !strings.Contains(v, ".") {
		return "", fail("email", "Invalid email format")
	}
	if utf8.RuneCountInString(v) > EmailMaxLength {
		return "", fail("email", "Email must not exceed %d characters", EmailMaxLength)
	}
	return v, nil
}
