package response

import (
	cartdomain "sandwich-storefront/internal/domain/cart"
	"sandwich-storefront/internal/usecase/cart"
)

type CartIngredientResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Price string `json:"price"`
}

type CartLineResponse struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	Price       string                   `json:"price"`
	Image       string                   `json:"image,omitempty"`
	Quantity    int                      `json:"quantity"`
	LineTotal   string                   `json:"line_total"`
	IsCustom    bool                     `json:"is_custom"`
	Ingredients []CartIngredientResponse `json:"ingredients,omitempty"`
}

type AppliedPromoResponse struct {
	Code     string `json:"code"`
	Discount string `json:"discount"`
}

type DeliveryAddressResponse struct {
	Address string `json:"address"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
}

// CartResponse is the shopper's cart after the request, with the
// notifications it raised.
type CartResponse struct {
	Items         []CartLineResponse       `json:"items"`
	ItemCount     int                      `json:"item_count"`
	Subtotal      string                   `json:"subtotal"`
	ShippingFee   string                   `json:"shipping_fee"`
	Discount      string                   `json:"discount"`
	Total         string                   `json:"total"`
	PromoCode     string                   `json:"promo_code,omitempty"`
	Promo         *AppliedPromoResponse    `json:"promo,omitempty"`
	AddressLocked bool                     `json:"address_locked"`
	Delivery      *DeliveryAddressResponse `json:"delivery_address,omitempty"`
	Notifications []cart.Notification      `json:"notifications"`
}

func FromCartView(v cart.View, notes []cart.Notification) *CartResponse {
	res := &CartResponse{
		Items:         make([]CartLineResponse, len(v.Lines)),
		ItemCount:     v.ItemCount,
		Subtotal:      v.Totals.Subtotal.StringFixed(2),
		ShippingFee:   v.Totals.ShippingFee.StringFixed(2),
		Discount:      v.Totals.Discount.StringFixed(2),
		Total:         v.Totals.Total.StringFixed(2),
		PromoCode:     v.PromoCode,
		AddressLocked: v.AddressLocked,
		Notifications: Notifications(notes),
	}
	for i, l := range v.Lines {
		res.Items[i] = fromLine(l)
	}
	if v.Promo != nil {
		res.Promo = &AppliedPromoResponse{
			Code:     v.Promo.Code,
			Discount: v.Promo.Discount.StringFixed(2),
		}
	}
	if v.AddressLocked {
		res.Delivery = &DeliveryAddressResponse{
			Address: v.Address.Street,
			City:    v.Address.City,
			Zipcode: v.Address.Zipcode,
		}
	}
	return res
}

type PromoApplyResponse struct {
	Applied bool          `json:"applied"`
	Cart    *CartResponse `json:"cart"`
}

// Notifications never encodes as null.
func Notifications(notes []cart.Notification) []cart.Notification {
	if notes == nil {
		return []cart.Notification{}
	}
	return notes
}

func fromLine(l cartdomain.Line) CartLineResponse {
	res := CartLineResponse{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		Price:       l.Price.StringFixed(2),
		Image:       l.Image,
		Quantity:    l.Quantity,
		LineTotal:   l.LineTotal().StringFixed(2),
		IsCustom:    l.IsCustom,
	}
	for _, in := range l.Ingredients {
		res.Ingredients = append(res.Ingredients, CartIngredientResponse{
			ID:    in.ID,
			Name:  in.Name,
			Type:  in.Type,
			Price: in.Price.StringFixed(2),
		})
	}
	return res
}
