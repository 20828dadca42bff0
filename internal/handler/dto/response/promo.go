package response

import (
	"sandwich-storefront/internal/usecase/queries"
)

type PromoCodeResponse struct {
	ID              string `json:"id"`
	Code            string `json:"code"`
	Discount        string `json:"discount"`
	DeliveryAddress string `json:"delivery_address"`
	DeliveryCity    string `json:"delivery_city"`
	DeliveryZipcode string `json:"delivery_zipcode"`
	Active          bool   `json:"active"`
	CreatedAt       int64  `json:"created_at"`
	UpdatedAt       int64  `json:"updated_at"`
}

func FromPromoCodeView(v *queries.PromoCodeView) *PromoCodeResponse {
	return &PromoCodeResponse{
		ID:              v.ID.String(),
		Code:            v.Code,
		Discount:        v.Discount.StringFixed(2),
		DeliveryAddress: v.DeliveryAddress,
		DeliveryCity:    v.DeliveryCity,
		DeliveryZipcode: v.DeliveryZipcode,
		Active:          v.Active,
		CreatedAt:       v.CreatedAt.Unix(),
		UpdatedAt:       v.UpdatedAt.Unix(),
	}
}

func FromPromoCodeList(items []*queries.PromoCodeView) []*PromoCodeResponse {
	res := make([]*PromoCodeResponse, len(items))
	for i, it := range items {
		res[i] = FromPromoCodeView(it)
	}
	return res
}
