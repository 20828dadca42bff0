package promo

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNegativeDiscount       = errors.New("discount cannot be negative")
	ErrZeroDiscount           = errors.New("discount must be greater than zero")
	ErrDeliveryAddressMissing = errors.New("delivery address, city and zipcode are required")
)

// PromoCode grants a flat discount and pins the delivery address.
type PromoCode struct {
	ID              uuid.UUID
	Code            string
	Discount        decimal.Decimal
	DeliveryAddress Address
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewPromoCode is used by the back office; codes are stored upper-cased.
func NewPromoCode(code string, discount decimal.Decimal, address Address) (*PromoCode, error) {
	c, err := NewCode(code)
	if err != nil {
		return nil, err
	}
	if discount.IsNegative() {
		return nil, ErrNegativeDiscount
	}
	if discount.IsZero() {
		return nil, ErrZeroDiscount
	}
	if !address.IsComplete() {
		return nil, ErrDeliveryAddressMissing
	}
	return &PromoCode{
		ID:              uuid.New(),
		Code:            c.String(),
		Discount:        discount,
		DeliveryAddress: address,
		Active:          true,
	}, nil
}

// Patch is a partial back-office update.
type Patch struct {
	Discount *decimal.Decimal
	Address  *string
	City     *string
	Zipcode  *string
	Active   *bool
}

func (p *PromoCode) Apply(patch Patch) error {
	next := *p
	if patch.Discount != nil {
		if patch.Discount.IsNegative() {
			return ErrNegativeDiscount
		}
		next.Discount = *patch.Discount
	}
	if patch.Address != nil {
		next.DeliveryAddress.Street = *patch.Address
	}
	if patch.City != nil {
		next.DeliveryAddress.City = *patch.City
	}
	if patch.Zipcode != nil {
		next.DeliveryAddress.Zipcode = *patch.Zipcode
	}
	if patch.Active != nil {
		next.Active = *patch.Active
	}
	if !next.DeliveryAddress.IsComplete() {
		return ErrDeliveryAddressMissing
	}
	*p = next
	return nil
}

// Usable reports whether the code can be applied to a cart.
func (p *PromoCode) Usable() bool {
	return p != nil && p.Active && !p.Discount.IsNegative()
}
