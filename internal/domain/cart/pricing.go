package cart

import "github.com/shopspring/decimal"

var (
	DefaultShippingFee           = decimal.RequireFromString("2.50")
	DefaultFreeShippingThreshold = decimal.RequireFromString("15.00")
)

// Pricing holds the shop's shipping rule.
type Pricing struct {
	ShippingFee           decimal.Decimal
	FreeShippingThreshold decimal.Decimal
}

func DefaultPricing() Pricing {
	return Pricing{
		ShippingFee:           DefaultShippingFee,
		FreeShippingThreshold: DefaultFreeShippingThreshold,
	}
}

// ShippingFeeFor waives the fee only when subtotal is strictly above the threshold.
func (p Pricing) ShippingFeeFor(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(p.FreeShippingThreshold) {
		return decimal.Zero
	}
	return p.ShippingFee
}

// Total never goes below zero.
func Total(subtotal, shippingFee, discount decimal.Decimal) decimal.Decimal {
	t := subtotal.Add(shippingFee).Sub(discount)
	if t.IsNegative() {
		return decimal.Zero
	}
	return t
}

// Totals is the priced view of a set of lines.
type Totals struct {
	Subtotal    decimal.Decimal
	ShippingFee decimal.Decimal
	Discount    decimal.Decimal
	Total       decimal.Decimal
}

func (p Pricing) Price(lines []Line, discount decimal.Decimal) Totals {
	subtotal := Subtotal(lines)
	shipping := p.ShippingFeeFor(subtotal)
	return Totals{
		Subtotal:    subtotal,
		ShippingFee: shipping,
		Discount:    discount,
		Total:       Total(subtotal, shipping, discount),
	}
}
