package order

import (
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

// CodeFor formats the human-readable order code for a city and a per-city
// sequence number: "OR-<CityCode>-<6-digit zero-padded sequence>".
//
// The sequence itself comes from the repository within the same transaction
// that persists the order, so two concurrent creations in one city can never
// share a code.
func CodeFor(city kernel.City, sequence int) (string, error) {
	if sequence <= 0 {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"code sequence is invalid",
			fmt.Errorf("%d is not greater than 0", sequence),
		)
	}
	return fmt.Sprintf("OR-%s-%06d", city.Code(), sequence), nil
}
