package property

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// ValidationResult is the explicit success/failure outcome of a business-rule
// check. Rejections travel as data with a human-readable reason; they are not
// errors, and callers decide how to present them.
type ValidationResult struct {
	valid  bool
	reason string
}

// ValidResult is a passing validation outcome.
func ValidResult() ValidationResult {
	return ValidationResult{valid: true}
}

// InvalidResult is a failing validation outcome with the given reason.
func InvalidResult(reason string) ValidationResult {
	return ValidationResult{reason: reason}
}

// IsValid reports whether the rule passed.
func (r ValidationResult) IsValid() bool { return r.valid }

// Reason returns the human-readable rejection reason; empty when valid.
func (r ValidationResult) Reason() string { return r.reason }

// CodeChecker reports whether an internal code is already used by any property.
type CodeChecker interface {
	CodeInternalExists(ctx context.Context, codeInternal string) (bool, error)
}

// ValidationService enforces property creation business rules that need a
// look across all properties.
type ValidationService struct {
	codes CodeChecker
}

// NewValidationService builds a ValidationService around the code lookup.
func NewValidationService(codes CodeChecker) *ValidationService {
	return &ValidationService{codes: codes}
}

// ValidateCodeInternalUniqueness rejects blank codes and codes already in use.
// The error return is reserved for lookup failures.
func (s *ValidationService) ValidateCodeInternalUniqueness(
	ctx context.Context, codeInternal string,
) (ValidationResult, error) {
	if strings.TrimSpace(codeInternal) == "" {
		return InvalidResult("property code internal cannot be empty"), nil
	}
	exists, err := s.codes.CodeInternalExists(ctx, codeInternal)
	if err != nil {
		return ValidationResult{}, fmt.Errorf("checking code internal uniqueness: %w", err)
	}
	if exists {
		return InvalidResult(fmt.Sprintf(
			"property with code internal %q already exists", codeInternal)), nil
	}
	return ValidResult(), nil
}

// ValidatePropertyForCreation checks name, then year, then code uniqueness,
// short-circuiting in that order.
func (s *ValidationService) ValidatePropertyForCreation(
	ctx context.Context, name, codeInternal string, year int,
) (ValidationResult, error) {
	if strings.TrimSpace(name) == "" {
		return InvalidResult("property name cannot be empty"), nil
	}
	currentYear := time.Now().Year()
	if year < MinYear || year > currentYear {
		return InvalidResult(fmt.Sprintf(
			"property year must be between %d and %d", MinYear, currentYear)), nil
	}
	return s.ValidateCodeInternalUniqueness(ctx, codeInternal)
}
