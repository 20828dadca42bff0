package request

import (
	"sandwich-storefront/internal/domain/promo"
	"sandwich-storefront/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type CreatePromoCodeRequest struct {
	Code     string           `json:"code" binding:"required,promocode"`
	Discount *decimal.Decimal `json:"discount" binding:"required"`
	Address  string           `json:"delivery_address" binding:"required,max=255"`
	City     string           `json:"delivery_city" binding:"required,max=100"`
	Zipcode  string           `json:"delivery_zipcode" binding:"required,zipcode"`
}

func (r *CreatePromoCodeRequest) ToInput() commands.CreatePromoCodeInput {
	return commands.CreatePromoCodeInput{
		Code:     r.Code,
		Discount: *r.Discount,
		Address: promo.Address{
			Street:  r.Address,
			City:    r.City,
			Zipcode: r.Zipcode,
		},
	}
}

type UpdatePromoCodeRequest struct {
	Discount *decimal.Decimal `json:"discount"`
	Address  *string          `json:"delivery_address" binding:"omitempty,max=255"`
	City     *string          `json:"delivery_city" binding:"omitempty,max=100"`
	Zipcode  *string          `json:"delivery_zipcode" binding:"omitempty,zipcode"`
	Active   *bool            `json:"active"`
}

func (r *UpdatePromoCodeRequest) ToPatch() promo.Patch {
	return promo.Patch{
		Discount: r.Discount,
		Address:  r.Address,
		City:     r.City,
		Zipcode:  r.Zipcode,
		Active:   r.Active,
	}
}
