package order

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"sandwich-storefront/internal/domain/cart"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const PaymentMethod = "Carte bancaire"

var ErrMissingCustomerField = errors.New("customer field is required")

type CustomerInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	ZipCode   string `json:"zipCode"`
}

// Validate names the first missing field.
func (c CustomerInfo) Validate() error {
	fields := []struct{ name, value string }{
		{"firstName", c.FirstName},
		{"lastName", c.LastName},
		{"phone", c.Phone},
		{"address", c.Address},
		{"city", c.City},
		{"zipCode", c.ZipCode},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingCustomerField, f.name)
		}
	}
	return nil
}

func (c CustomerInfo) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Details is the immutable snapshot handed to the payment and confirmation steps.
type Details struct {
	ID          uuid.UUID       `json:"id"`
	Number      string          `json:"orderNumber"`
	SessionID   string          `json:"sessionId"`
	Items       []cart.Line     `json:"orderItems"`
	Customer    CustomerInfo    `json:"customerInfo"`
	OrderDate   time.Time       `json:"orderDate"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	ShippingFee decimal.Decimal `json:"shippingFee"`
	Discount    decimal.Decimal `json:"discount"`
	Total       decimal.Decimal `json:"orderTotal"`
	PromoCode   string          `json:"promoCode,omitempty"`
}

func NewDetails(sessionID string, lines []cart.Line, customer CustomerInfo, totals cart.Totals, promoCode string, at time.Time) *Details {
	d := &Details{
		ID:          uuid.New(),
		Number:      NewNumber(),
		SessionID:   sessionID,
		Items:       lines,
		Customer:    customer,
		OrderDate:   at,
		Subtotal:    totals.Subtotal,
		ShippingFee: totals.ShippingFee,
		Discount:    decimal.Zero,
		Total:       totals.Total,
	}
	if promoCode != "" {
		d.PromoCode = promoCode
		d.Discount = totals.Discount
	}
	return d
}

func (d *Details) ItemCount() int {
	n := 0
	for _, l := range d.Items {
		n += l.Quantity
	}
	return n
}

// NewNumber is the four digit reference read to the shopper.
func NewNumber() string {
	return fmt.Sprintf("%04d", rand.IntN(10000))
}
