package property

import "errors"

var (
	// ErrNameEmpty is returned when a property name is blank.
	ErrNameEmpty = errors.New("property name cannot be empty")
	// ErrCodeInternalEmpty is returned when the internal code is blank.
	ErrCodeInternalEmpty = errors.New("property code internal cannot be empty")
	// ErrYearOutOfRange is returned when the build year is before 1800 or in the future.
	ErrYearOutOfRange = errors.New("property year must be between 1800 and the current year")
	// ErrNilOwner is returned when a property is created or reassigned without an owner.
	ErrNilOwner = errors.New("property owner cannot be nil")
	// ErrNilPrice is returned when a nil price is supplied.
	ErrNilPrice = errors.New("property price cannot be nil")
	// ErrNotFound is returned when a property cannot be found.
	ErrNotFound = errors.New("property not found")

	// ErrFileNameEmpty is returned when an image file name is blank.
	ErrFileNameEmpty = errors.New("image file name cannot be empty")
	// ErrPropertyIDEmpty is returned when a nil property id is supplied.
	ErrPropertyIDEmpty = errors.New("property id cannot be empty")
	// ErrImageNotFound is returned when a property image cannot be found.
	ErrImageNotFound = errors.New("property image not found")

	// ErrTaxPercentageOutOfRange is returned when a sale tax percentage is outside [0, 100].
	ErrTaxPercentageOutOfRange = errors.New("tax percentage must be between 0 and 100")
	// ErrTraceNotFound is returned when a property trace cannot be found.
	ErrTraceNotFound = errors.New("property trace not found")

	// ErrOwnershipRuleViolated is the hard failure raised when ownership rules
	// fail during assignment even though the caller should have validated first.
	// It indicates a caller or ordering bug, not a user-facing rejection.
	ErrOwnershipRuleViolated = errors.New("ownership rules violated during assignment")
)

// MinYear is the earliest build year a property may declare.
const MinYear = 1800
