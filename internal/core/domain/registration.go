package domain

// FieldError describes one failed registration rule.
type FieldError struct {
	Field   string
	Message string
}

// RegistrationResult is the aggregated outcome of validating a proposed
// username/password pair. OK is true only when Errors is empty.
type RegistrationResult struct {
	OK      bool
	Message string
	Errors  []FieldError
}
