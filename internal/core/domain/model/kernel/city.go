package kernel

import (
	"fmt"
	"strings"

	"orderflow/internal/pkg/errs"
)

// City represents one of the cities the platform delivers in.
// It is a closed set: orders are created in exactly one city and
// delivery workers are eligible only for orders in their own city.
//
// Each city carries a short code used as the middle segment of
// human-readable order codes (e.g. "OR-DA-000042").
type City int

const (
	// CityUnknown represents an invalid or undefined city.
	// This value (0) helps catch uninitialized City values.
	CityUnknown City = iota

	// Dakhla is the platform's default city.
	Dakhla

	// Boujdour city.
	Boujdour

	// Laayoune city.
	Laayoune
)

func getCityNames() map[City]string {
	return map[City]string{
		CityUnknown: "Unknown",
		Dakhla:      "Dakhla",
		Boujdour:    "Boujdour",
		Laayoune:    "Laayoune",
	}
}

func getCityCodes() map[City]string {
	//nolint:exhaustive // CityUnknown is intentionally excluded as it's invalid
	return map[City]string{
		Dakhla:   "DA",
		Boujdour: "BO",
		Laayoune: "LA",
	}
}

// CityFromString resolves a city by its name, case-insensitively.
// Unrecognized names resolve to Dakhla, the platform default.
func CityFromString(name string) City {
	for city, cityName := range getCityNames() {
		if city != CityUnknown && strings.EqualFold(cityName, name) {
			return city
		}
	}
	return Dakhla
}

// Validate checks if the City value is one of the supported cities.
func (c City) Validate() error {
	if _, ok := getCityCodes()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("city is invalid", fmt.Errorf("%d is not a valid city", c))
	}
	return nil
}

// String returns the human-readable name of the city.
func (c City) String() string {
	if name, ok := getCityNames()[c]; ok {
		return name
	}
	return "Unknown"
}

// Code returns the short city code used in order codes.
// Invalid cities fall back to the default city code "DA".
func (c City) Code() string {
	if code, ok := getCityCodes()[c]; ok {
		return code
	}
	return "DA"
}
