package order

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// PaymentMethod determines how money flows when the order settles.
//
// COD orders are paid to the delivery worker at handoff, so the merchant is
// later credited the sale minus the platform fee. Prepaid orders were already
// collected by the platform, so the merchant only owes the platform fee.
type PaymentMethod int

const (
	// PaymentUnknown represents an invalid or undefined payment method.
	PaymentUnknown PaymentMethod = iota

	// CashOnDelivery means the customer pays the delivery worker at handoff.
	CashOnDelivery

	// Prepaid means the customer paid in advance through the platform.
	Prepaid
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentUnknown: "Unknown",
		CashOnDelivery: "COD",
		Prepaid:        "PREPAID",
	}
}

// PaymentMethodFromString resolves a payment method by its wire name
// ("COD" or "PREPAID"). Unrecognized names resolve to PaymentUnknown.
func PaymentMethodFromString(name string) PaymentMethod {
	for method, methodName := range getPaymentMethodStrings() {
		if method != PaymentUnknown && methodName == name {
			return method
		}
	}
	return PaymentUnknown
}

// Validate checks if the PaymentMethod is one of the supported methods.
func (p PaymentMethod) Validate() error {
	if p != CashOnDelivery && p != Prepaid {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment method is invalid",
			fmt.Errorf("%d is not a valid payment method", p),
		)
	}
	return nil
}

// String returns the wire name of the payment method.
func (p PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[p]; ok {
		return str
	}
	return "Unknown"
}
