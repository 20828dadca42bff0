//go:build unit || e2e

package builder

import (
	"sandwich-storefront/internal/domain/promo"
	reqdto "sandwich-storefront/internal/handler/dto/request"
	"sandwich-storefront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PromoCodeBuilder struct {
	ID       uuid.UUID
	Code     string
	Discount string
	Street   string
	City     string
	Zipcode  string
	Active   bool
}

func NewPromoCodeBuilder() *PromoCodeBuilder {
	return &PromoCodeBuilder{
		ID:       uuid.New(),
		Code:     "NOEL2025",
		Discount: "3.00",
		Street:   "12 rue de la Paix",
		City:     "Paris",
		Zipcode:  "75002",
		Active:   true,
	}
}

func (p *PromoCodeBuilder) With(mutate func(*PromoCodeBuilder)) *PromoCodeBuilder {
	mutate(p)
	return p
}

func (p *PromoCodeBuilder) WithCode(code string) *PromoCodeBuilder {
	p.Code = code
	return p
}

func (p *PromoCodeBuilder) WithDiscount(discount string) *PromoCodeBuilder {
	p.Discount = discount
	return p
}

func (p *PromoCodeBuilder) AsInactive() *PromoCodeBuilder {
	p.Active = false
	return p
}

func (p *PromoCodeBuilder) Address() promo.Address {
	return promo.Address{Street: p.Street, City: p.City, Zipcode: p.Zipcode}
}

func (p *PromoCodeBuilder) BuildDomain() *promo.PromoCode {
	return &promo.PromoCode{
		ID:              p.ID,
		Code:            p.Code,
		Discount:        decimal.RequireFromString(p.Discount),
		DeliveryAddress: p.Address(),
		Active:          p.Active,
		CreatedAt:       fixedTime,
		UpdatedAt:       fixedTime,
	}
}

func (p *PromoCodeBuilder) BuildView() *queries.PromoCodeView {
	return &queries.PromoCodeView{
		ID:              p.ID,
		Code:            p.Code,
		Discount:        decimal.RequireFromString(p.Discount),
		DeliveryAddress: p.Street,
		DeliveryCity:    p.City,
		DeliveryZipcode: p.Zipcode,
		Active:          p.Active,
		CreatedAt:       fixedTime,
		UpdatedAt:       fixedTime,
	}
}

func (p *PromoCodeBuilder) BuildCreateDTO() reqdto.CreatePromoCodeRequest {
	discount := decimal.RequireFromString(p.Discount)
	return reqdto.CreatePromoCodeRequest{
		Code:     p.Code,
		Discount: &discount,
		Address:  p.Street,
		City:     p.City,
		Zipcode:  p.Zipcode,
	}
}
