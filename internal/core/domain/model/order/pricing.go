package order

import (
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrPricingIsNotConstructed is returned when using an improperly initialized Pricing.
var ErrPricingIsNotConstructed = errs.NewValueIsRequiredError(
	"pricing must be created via NewPricing constructor")

// Pricing is the immutable monetary breakdown of an order.
// It is fixed at the moment the order is placed and never changes afterward.
type Pricing struct {
	subtotal    kernel.Money
	tax         kernel.Money
	deliveryFee kernel.Money
	total       kernel.Money
	guard       guard.ConstructorGuard
}

// NewPricing creates a Pricing breakdown and verifies its internal consistency:
// the total must equal subtotal + tax + delivery fee.
func NewPricing(subtotal, tax, deliveryFee, total kernel.Money) (Pricing, error) {
	expected := subtotal.Add(tax).Add(deliveryFee)
	if !total.IsEqual(expected) {
		return Pricing{}, errs.NewValueIsInvalidErrorWithCause("pricing",
			fmt.Errorf("total %s does not equal subtotal %s + tax %s + delivery fee %s",
				total, subtotal, tax, deliveryFee))
	}

	return Pricing{
		subtotal:    subtotal,
		tax:         tax,
		deliveryFee: deliveryFee,
		total:       total,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Pricing was properly constructed via NewPricing.
func (p Pricing) Validate() error {
	return p.guard.Validate(ErrPricingIsNotConstructed)
}

// Subtotal returns the sum of the item prices.
func (p Pricing) Subtotal() kernel.Money {
	return p.subtotal
}

// Tax returns the tax amount.
func (p Pricing) Tax() kernel.Money {
	return p.tax
}

// DeliveryFee returns the delivery fee.
func (p Pricing) DeliveryFee() kernel.Money {
	return p.deliveryFee
}

// Total returns the total charged to the buyer.
func (p Pricing) Total() kernel.Money {
	return p.total
}
