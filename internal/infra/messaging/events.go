package messaging

import (
	"time"

	"sandwich-storefront/internal/domain/order"

	"github.com/shopspring/decimal"
)

const (
	OrderSubmittedRoutingKey = "order.submitted.v1"
	orderSubmittedType       = "OrderSubmitted"
)

type OrderSubmitted struct {
	EventType   string             `json:"eventType"`
	OrderID     string             `json:"orderId"`
	OrderNumber string             `json:"orderNumber"`
	SessionID   string             `json:"sessionId"`
	Items       []OrderItemEvent   `json:"items"`
	Customer    order.CustomerInfo `json:"customer"`
	Subtotal    decimal.Decimal    `json:"subtotal"`
	ShippingFee decimal.Decimal    `json:"shippingFee"`
	Discount    decimal.Decimal    `json:"discount"`
	Total       decimal.Decimal    `json:"total"`
	PromoCode   string             `json:"promoCode,omitempty"`
	Timestamp   time.Time          `json:"timestamp"`
}

type OrderItemEvent struct {
	ItemID   string          `json:"itemId"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	IsCustom bool            `json:"isCustom"`
}

func NewOrderSubmitted(d *order.Details, at time.Time) OrderSubmitted {
	ev := OrderSubmitted{
		EventType:   orderSubmittedType,
		OrderID:     d.ID.String(),
		OrderNumber: d.Number,
		SessionID:   d.SessionID,
		Customer:    d.Customer,
		Subtotal:    d.Subtotal,
		ShippingFee: d.ShippingFee,
		Discount:    d.Discount,
		Total:       d.Total,
		PromoCode:   d.PromoCode,
		Timestamp:   at.UTC(),
	}
	for _, l := range d.Items {
		ev.Items = append(ev.Items, OrderItemEvent{
			ItemID:   l.ID,
			Name:     l.Name,
			Quantity: l.Quantity,
			Price:    l.Price,
			IsCustom: l.IsCustom,
		})
	}
	return ev
}
