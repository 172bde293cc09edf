// Package common holds the value objects shared across aggregates.
package common

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrStreetEmpty is returned when an address street is blank.
	ErrStreetEmpty = errors.New("street cannot be empty")
	// ErrCityEmpty is returned when an address city is blank.
	ErrCityEmpty = errors.New("city cannot be empty")
	// ErrPostalCodeEmpty is returned when an address postal code is blank.
	ErrPostalCodeEmpty = errors.New("postal code cannot be empty")
	// ErrCountryEmpty is returned when an address country is blank.
	ErrCountryEmpty = errors.New("country cannot be empty")
)

// Address is an immutable postal address. All fields are non-empty.
type Address struct {
	street     string
	city       string
	postalCode string
	country    string
}

// NewAddress validates and builds an Address.
func NewAddress(street, city, postalCode, country string) (Address, error) {
	switch {
	case strings.TrimSpace(street) == "":
		return Address{}, ErrStreetEmpty
	case strings.TrimSpace(city) == "":
		return Address{}, ErrCityEmpty
	case strings.TrimSpace(postalCode) == "":
		return Address{}, ErrPostalCodeEmpty
	case strings.TrimSpace(country) == "":
		return Address{}, ErrCountryEmpty
	}
	return Address{street: street, city: city, postalCode: postalCode, country: country}, nil
}

// MustAddress is like NewAddress but panics on invalid input. For tests and seeds.
func MustAddress(street, city, postalCode, country string) Address {
	a, err := NewAddress(street, city, postalCode, country)
	if err != nil {
		panic(fmt.Sprintf("common.MustAddress: %v", err))
	}
	return a
}

// Street returns the street line.
func (a Address) Street() string { return a.street }

// City returns the city.
func (a Address) City() string { return a.city }

// PostalCode returns the postal code.
func (a Address) PostalCode() string { return a.postalCode }

// Country returns the country.
func (a Address) Country() string { return a.country }

// FullAddress renders the address as a single comma-separated line.
func (a Address) FullAddress() string {
	return fmt.Sprintf("%s, %s, %s, %s", a.street, a.city, a.postalCode, a.country)
}
