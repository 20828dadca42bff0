//go:build unit || e2e

package builder

import (
	reqdto "sandwich-storefront/internal/handler/dto/request"
)

func NewCheckoutDTO() reqdto.CheckoutRequest {
	return reqdto.CheckoutRequest{
		FirstName: "Camille",
		LastName:  "Martin",
		Phone:     "0612345678",
		Address:   "8 avenue Jean Jaurès",
		City:      "Lyon",
		ZipCode:   "69007",
	}
}
