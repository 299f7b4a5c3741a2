package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/carnival/stall-booking/internal/core/domain"
)

const (
	minUsernameLen = 5
	minPasswordLen = 6

	registrationOK = "Registration details are valid."
)

var registrationValidate = validator.New()

type registrationRule struct {
	field   string
	tag     string
	message string
}

func lengthRule(field, label string, n int) registrationRule {
	return registrationRule{
		field:   field,
		tag:     fmt.Sprintf("min=%d", n),
		message: fmt.Sprintf("%s must be at least %d characters in length.", label, n),
	}
}

func digitRule(field, label string) registrationRule {
	return registrationRule{
		field:   field,
		tag:     "containsany=0123456789",
		message: label + " must contain at least 1 digit.",
	}
}

// Order matters: username rules are reported before password rules.
var (
	usernameRules = []registrationRule{
		lengthRule("username", "Username", minUsernameLen),
		digitRule("username", "Username"),
	}
	passwordRules = []registrationRule{
		lengthRule("password", "Password", minPasswordLen),
		digitRule("password", "Password"),
	}
)

// ValidateRegistration checks a proposed username/password pair. Every rule
// is evaluated and every failure is reported.
func ValidateRegistration(username, password string) domain.RegistrationResult {
	var errs []domain.FieldError
	errs = appendFailures(errs, username, usernameRules)
	errs = appendFailures(errs, password, passwordRules)

	if len(errs) > 0 {
		return domain.RegistrationResult{
			Message: fmt.Sprintf("%d registration rule(s) failed.", len(errs)),
			Errors:  errs,
		}
	}
	return domain.RegistrationResult{OK: true, Message: registrationOK}
}

func appendFailures(errs []domain.FieldError, value string, rules []registrationRule) []domain.FieldError {
	for _, r := range rules {
		if err := registrationValidate.Var(value, r.tag); err != nil {
			errs = append(errs, domain.FieldError{Field: r.field, Message: r.message})
		}
	}
	return errs
}
