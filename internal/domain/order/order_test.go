//go:build unit

package order_test

import (
	"testing"
	"time"

	"sandwich-storefront/internal/domain/cart"
	"sandwich-storefront/internal/domain/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var customer = order.CustomerInfo{
	FirstName: "Camille",
	LastName:  "Martin",
	Phone:     "0612345678",
	Address:   "8 avenue Jean Jaurès",
	City:      "Lyon",
	ZipCode:   "69007",
}

func TestCustomerInfo_Validate(t *testing.T) {
	assert.NoError(t, customer.Validate())
	assert.Equal(t, "Camille Martin", customer.FullName())

	cases := []struct {
		field  string
		mutate func(*order.CustomerInfo)
	}{
		{field: "firstName", mutate: func(c *order.CustomerInfo) { c.FirstName = "" }},
		{field: "lastName", mutate: func(c *order.CustomerInfo) { c.LastName = " " }},
		{field: "phone", mutate: func(c *order.CustomerInfo) { c.Phone = "" }},
		{field: "address", mutate: func(c *order.CustomerInfo) { c.Address = "" }},
		{field: "city", mutate: func(c *order.CustomerInfo) { c.City = "" }},
		{field: "zipCode", mutate: func(c *order.CustomerInfo) { c.ZipCode = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.field+"なしはエラー", func(t *testing.T) {
			c := customer
			tc.mutate(&c)

			err := c.Validate()

			assert.ErrorIs(t, err, order.ErrMissingCustomerField)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestNewDetails(t *testing.T) {
	lines := []cart.Line{
		{Item: cart.Item{ID: "a", Name: "A", Price: decimal.RequireFromString("6")}, Quantity: 2},
	}
	at := time.Date(2025, 12, 24, 18, 30, 0, 0, time.UTC)

	t.Run("プロモなしは割引0", func(t *testing.T) {
		totals := cart.DefaultPricing().Price(lines, decimal.Zero)

		d := order.NewDetails("session", lines, customer, totals, "", at)

		assert.Regexp(t, `^\d{4}$`, d.Number)
		assert.Equal(t, 2, d.ItemCount())
		assert.True(t, d.Discount.IsZero())
		assert.Empty(t, d.PromoCode)
		assert.Equal(t, "14.50", d.Total.StringFixed(2))
		assert.Equal(t, at, d.OrderDate)
	})

	t.Run("プロモありは割引を記録", func(t *testing.T) {
		totals := cart.DefaultPricing().Price(lines, decimal.RequireFromString("3"))

		d := order.NewDetails("session", lines, customer, totals, "NOEL2025", at)

		assert.Equal(t, "NOEL2025", d.PromoCode)
		assert.Equal(t, "3.00", d.Discount.StringFixed(2))
		assert.Equal(t, "11.50", d.Total.StringFixed(2))
	})
}

func TestNewNumber(t *testing.T) {
	for range 200 {
		require.Regexp(t, `^\d{4}$`, order.NewNumber())
	}
}

func TestStageAt(t *testing.T) {
	interval := 2 * time.Second
	cases := []struct {
		name     string
		elapsed  time.Duration
		stage    order.PaymentStage
		progress int
	}{
		{name: "開始直後", elapsed: 0, stage: order.StageProcessing, progress: 0},
		{name: "時計のずれ", elapsed: -time.Second, stage: order.StageProcessing, progress: 0},
		{name: "1区間目", elapsed: 1999 * time.Millisecond, stage: order.StageProcessing, progress: 33},
		{name: "2区間目", elapsed: 2 * time.Second, stage: order.StageVerifying, progress: 33},
		{name: "3区間目", elapsed: 5 * time.Second, stage: order.StageApproved, progress: 83},
		{name: "完了", elapsed: 6 * time.Second, stage: order.StageCompleted, progress: 100},
		{name: "完了後", elapsed: time.Hour, stage: order.StageCompleted, progress: 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.stage, order.StageAt(tc.elapsed, interval))
			assert.Equal(t, tc.progress, order.Progress(tc.elapsed, interval))
		})
	}

	t.Run("間隔0は即完了", func(t *testing.T) {
		assert.Equal(t, order.StageCompleted, order.StageAt(0, 0))
		assert.Equal(t, 100, order.Progress(0, 0))
	})
}

func TestConfirm(t *testing.T) {
	at := time.Date(2025, 12, 24, 18, 30, 0, 0, time.UTC)
	d := &order.Details{Number: "0042", OrderDate: at}

	c := order.Confirm(d, 45*time.Minute)

	assert.Same(t, d, c.Details)
	assert.Equal(t, at.Add(45*time.Minute), c.EstimatedDelivery)
	assert.Equal(t, order.PaymentMethod, c.PaymentMethod)
}
