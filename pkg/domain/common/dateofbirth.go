package common

import (
	"errors"
	"time"
)

var (
	// ErrBirthDateInFuture is returned when a date of birth is after today.
	ErrBirthDateInFuture = errors.New("date of birth cannot be in the future")
	// ErrBirthDateTooOld is returned when a date of birth lies more than 150 years back.
	ErrBirthDateTooOld = errors.New("date of birth cannot be more than 150 years ago")
)

const adulthoodAge = 18

// DateOfBirth is an immutable, validated birth date.
type DateOfBirth struct {
	value time.Time
}

// NewDateOfBirth validates and builds a DateOfBirth. The value must not be in
// the future nor more than 150 years in the past.
func NewDateOfBirth(value time.Time) (DateOfBirth, error) {
	today := truncateToDay(time.Now().UTC())
	v := truncateToDay(value.UTC())
	if v.After(today) {
		return DateOfBirth{}, ErrBirthDateInFuture
	}
	if v.Before(today.AddDate(-150, 0, 0)) {
		return DateOfBirth{}, ErrBirthDateTooOld
	}
	return DateOfBirth{value: v}, nil
}

// Value returns the birth date, truncated to midnight UTC.
func (d DateOfBirth) Value() time.Time { return d.value }

// Age returns the age in whole years as of today.
func (d DateOfBirth) Age() int {
	today := truncateToDay(time.Now().UTC())
	age := today.Year() - d.value.Year()
	if d.value.AddDate(age, 0, 0).After(today) {
		age--
	}
	return age
}

// IsAdult reports whether the age is at least 18.
func (d DateOfBirth) IsAdult() bool {
	return d.Age() >= adulthoodAge
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
