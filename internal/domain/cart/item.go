package cart

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidItemID   = errors.New("item id is required")
	ErrInvalidItemName = errors.New("item name is required")
	ErrNegativePrice   = errors.New("item price cannot be negative")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrCorruptSnapshot = errors.New("persisted cart is corrupt")
)

// Item is what the shop offers for adding: a catalog sandwich or a custom build.
type Item struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image,omitempty"`
	IsCustom    bool            `json:"isCustom,omitempty"`
	Ingredients []Ingredient    `json:"ingredients,omitempty"`
}

// Ingredient is informational only; lines are priced by Item.Price.
type Ingredient struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Type  string          `json:"type"`
	Price decimal.Decimal `json:"price"`
}

func (i Item) Validate() error {
	if strings.TrimSpace(i.ID) == "" {
		return ErrInvalidItemID
	}
	if strings.TrimSpace(i.Name) == "" {
		return ErrInvalidItemName
	}
	if i.Price.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}

// Line is one distinct entry of the cart.
type Line struct {
	Item
	Quantity int `json:"quantity"`
}

func (l Line) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

func (l Line) clone() Line {
	c := l
	if l.Ingredients != nil {
		c.Ingredients = append([]Ingredient(nil), l.Ingredients...)
	}
	return c
}
