package request

import (
	"sandwich-storefront/internal/domain/order"
)

// Address fields may be left empty while a promo code pins the delivery address.
type CheckoutRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Phone     string `json:"phone" binding:"required,max=30"`
	Address   string `json:"address" binding:"omitempty,max=255"`
	City      string `json:"city" binding:"omitempty,max=100"`
	ZipCode   string `json:"zip_code" binding:"omitempty,zipcode"`
}

func (r *CheckoutRequest) ToDomain() order.CustomerInfo {
	return order.CustomerInfo{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Address:   r.Address,
		City:      r.City,
		ZipCode:   r.ZipCode,
	}
}
