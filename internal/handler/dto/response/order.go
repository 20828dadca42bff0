package response

import (
	"sandwich-storefront/internal/domain/order"
	"sandwich-storefront/internal/usecase/cart"
	"sandwich-storefront/internal/usecase/queries"
)

type CheckoutResponse struct {
	OrderID       string              `json:"order_id"`
	OrderNumber   string              `json:"order_number"`
	Total         string              `json:"total"`
	Notifications []cart.Notification `json:"notifications"`
}

func FromSubmittedOrder(d *order.Details, notes []cart.Notification) *CheckoutResponse {
	return &CheckoutResponse{
		OrderID:       d.ID.String(),
		OrderNumber:   d.Number,
		Total:         d.Total.StringFixed(2),
		Notifications: Notifications(notes),
	}
}

type PaymentResponse struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
	Stage       string `json:"stage"`
	Progress    int    `json:"progress"`
	Amount      string `json:"amount"`
	Redirect    string `json:"redirect,omitempty"`
}

func FromPaymentView(v *queries.PaymentView) *PaymentResponse {
	return &PaymentResponse{
		OrderID:     v.OrderID.String(),
		OrderNumber: v.OrderNumber,
		Stage:       string(v.Stage),
		Progress:    v.Progress,
		Amount:      v.Amount.StringFixed(2),
		Redirect:    v.Redirect,
	}
}

type CustomerResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	ZipCode   string `json:"zip_code"`
}

type ConfirmationResponse struct {
	OrderID           string             `json:"order_id"`
	OrderNumber       string             `json:"order_number"`
	OrderDate         int64              `json:"order_date"`
	Items             []CartLineResponse `json:"items"`
	ItemCount         int                `json:"item_count"`
	Customer          CustomerResponse   `json:"customer"`
	Subtotal          string             `json:"subtotal"`
	ShippingFee       string             `json:"shipping_fee"`
	Discount          string             `json:"discount"`
	Total             string             `json:"total"`
	PromoCode         string             `json:"promo_code,omitempty"`
	EstimatedDelivery int64              `json:"estimated_delivery"`
	PaymentMethod     string             `json:"payment_method"`
}

func FromConfirmation(c *order.Confirmation) *ConfirmationResponse {
	d := c.Details
	res := &ConfirmationResponse{
		OrderID:     d.ID.String(),
		OrderNumber: d.Number,
		OrderDate:   d.OrderDate.Unix(),
		Items:       make([]CartLineResponse, len(d.Items)),
		ItemCount:   d.ItemCount(),
		Customer: CustomerResponse{
			FirstName: d.Customer.FirstName,
			LastName:  d.Customer.LastName,
			Phone:     d.Customer.Phone,
			Address:   d.Customer.Address,
			City:      d.Customer.City,
			ZipCode:   d.Customer.ZipCode,
		},
		Subtotal:          d.Subtotal.StringFixed(2),
		ShippingFee:       d.ShippingFee.StringFixed(2),
		Discount:          d.Discount.StringFixed(2),
		Total:             d.Total.StringFixed(2),
		PromoCode:         d.PromoCode,
		EstimatedDelivery: c.EstimatedDelivery.Unix(),
		PaymentMethod:     c.PaymentMethod,
	}
	for i, l := range d.Items {
		res.Items[i] = fromLine(l)
	}
	return res
}
