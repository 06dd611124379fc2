// Package discount contains the discount rule value object applied when a
// merchant prices an order: a closed set of rule kinds, each carrying only
// the fields relevant to it.
package discount

import (
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Kind is the closed set of discount rule kinds.
type Kind int

const (
	// KindUnknown represents an invalid or undefined rule kind.
	KindUnknown Kind = iota

	// Percentage discounts a percentage of the original total.
	Percentage

	// FixedAmount discounts a fixed amount, capped at the original total.
	FixedAmount

	// BuyXGetY gives free units of one nominated product.
	BuyXGetY

	// CustomPrice overrides the final total outright.
	CustomPrice
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown: "Unknown",
		Percentage:  "PERCENTAGE",
		FixedAmount: "FIXED_AMOUNT",
		BuyXGetY:    "BUY_X_GET_Y",
		CustomPrice: "CUSTOM_PRICE",
	}
}

// KindFromString resolves a rule kind by its wire name.
func KindFromString(name string) Kind {
	for kind, kindName := range getKindStrings() {
		if kind != KindUnknown && kindName == name {
			return kind
		}
	}
	return KindUnknown
}

// String returns the wire name of the rule kind.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// Rule is one discount applied to an order at creation time.
// Each kind uses only its own fields; the constructors enforce that.
type Rule struct {
	kind      Kind
	value     decimal.Decimal
	productID kernel.UUID
	buyQty    int
	getQty    int

	isConstructed bool
}

// NewPercentage creates a percentage discount. Value must be within (0, 100].
func NewPercentage(value decimal.Decimal) (Rule, error) {
	if !value.IsPositive() || value.GreaterThan(decimal.NewFromInt(100)) {
		return Rule{}, errs.NewValueIsOutOfRangeError("percentage discount", value, 0, 100)
	}
	return Rule{kind: Percentage, value: value, isConstructed: true}, nil
}

// NewFixedAmount creates a fixed-amount discount. Value must be positive;
// the pricing engine caps it at the original total.
func NewFixedAmount(value decimal.Decimal) (Rule, error) {
	if !value.IsPositive() {
		return Rule{}, errs.NewValueIsInvalidErrorWithCause(
			"fixed amount discount",
			fmt.Errorf("%s is not greater than 0", value),
		)
	}
	return Rule{kind: FixedAmount, value: value, isConstructed: true}, nil
}

// NewBuyXGetY creates a buy-X-get-Y discount for the nominated product.
func NewBuyXGetY(productID kernel.UUID, buyQty, getQty int) (Rule, error) {
	if err := productID.Validate(); err != nil {
		return Rule{}, err
	}
	if buyQty <= 0 {
		return Rule{}, errs.NewValueIsInvalidErrorWithCause(
			"buy quantity",
			fmt.Errorf("%d is not greater than 0", buyQty),
		)
	}
	if getQty <= 0 {
		return Rule{}, errs.NewValueIsInvalidErrorWithCause(
			"get quantity",
			fmt.Errorf("%d is not greater than 0", getQty),
		)
	}
	return Rule{kind: BuyXGetY, productID: productID, buyQty: buyQty, getQty: getQty, isConstructed: true}, nil
}

// NewCustomPrice creates a manual override of the final total.
func NewCustomPrice(value decimal.Decimal) (Rule, error) {
	if value.IsNegative() {
		return Rule{}, errs.NewValueIsInvalidErrorWithCause(
			"custom price",
			fmt.Errorf("%s is negative", value),
		)
	}
	return Rule{kind: CustomPrice, value: value, isConstructed: true}, nil
}

// Validate ensures the Rule was created through one of the constructors.
func (r Rule) Validate() error {
	if !r.isConstructed {
		return errs.NewValueIsRequiredError("discount rule must be created via its constructor")
	}
	return nil
}

// Kind returns the rule kind.
func (r Rule) Kind() Kind {
	return r.kind
}

// Value returns the rule's numeric value: the percentage, the fixed amount,
// or the custom final total, depending on the kind.
func (r Rule) Value() decimal.Decimal {
	return r.value
}

// ProductID returns the nominated product for BuyXGetY rules.
func (r Rule) ProductID() kernel.UUID {
	return r.productID
}

// BuyQty returns the paid-unit count for BuyXGetY rules.
func (r Rule) BuyQty() int {
	return r.buyQty
}

// GetQty returns the free-unit count for BuyXGetY rules.
func (r Rule) GetQty() int {
	return r.getQty
}
