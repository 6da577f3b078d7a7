package service

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/codeprnv/login-security/internal/auth/dto"
	autherror "github.com/codeprnv/login-security/internal/errors"
)

var validate = validator.New()

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

var commonPasswords = map[string]struct{}{
	"password":    {},
	"123456":      {},
	"12345678":    {},
	"qwerty":      {},
	"abc123":      {},
	"password123": {},
	"admin":       {},
	"letmein":     {},
	"welcome":     {},
	"monkey":      {},
}

func validateRegistration(input *dto.RegisterInput) error {
	if err := validate.Struct(input); err != nil {
		return &autherror.ValidationError{Reason: registrationErrorMessage(err)}
	}

	if input.Password != input.ConfirmPassword {
		return &autherror.ValidationError{Reason: "Passwords do not match"}
	}

	if !usernamePattern.MatchString(input.Username) {
		return &autherror.ValidationError{Reason: "Username can only contain letters, numbers, underscores, and hyphens"}
	}

	if _, common := commonPasswords[strings.ToLower(input.Password)]; common {
		return &autherror.ValidationError{Reason: "Password is too common"}
	}

	if !passwordComplexEnough(input.Password) {
		return &autherror.ValidationError{Reason: "Password must be at least 8 characters with uppercase, lowercase, number, and special character"}
	}

	return nil
}

func registrationErrorMessage(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "invalid input"
	}

	switch field := errs[0].Field(); field {
	case "Email":
		return "Invalid email format"
	case "Username":
		return "Username must be between 3 and 20 characters"
	case "Password":
		return "Password must be at least 8 characters"
	default:
		return "All fields are required: email, username, password, confirmPassword"
	}
}

func passwordComplexEnough(password string) bool {
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}
	return upper && lower && digit && special
}
