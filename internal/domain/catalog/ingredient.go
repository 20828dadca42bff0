package catalog

import (
	"errors"
	"strings"
	"time"

	"sandwich-storefront/internal/domain/cart"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidIngredientType = errors.New("ingredient type must be one of bread, protein, veggie, sauce")

type IngredientType string

const (
	TypeBread   IngredientType = "bread"
	TypeProtein IngredientType = "protein"
	TypeVeggie  IngredientType = "veggie"
	TypeSauce   IngredientType = "sauce"
)

// IngredientTypes in builder order.
var IngredientTypes = []IngredientType{TypeBread, TypeProtein, TypeVeggie, TypeSauce}

var typeLabels = map[IngredientType]string{
	TypeBread:   "Pain",
	TypeProtein: "Protéine",
	TypeVeggie:  "Légume",
	TypeSauce:   "Sauce",
}

func NewIngredientType(s string) (IngredientType, error) {
	t := IngredientType(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := typeLabels[t]; !ok {
		return "", ErrInvalidIngredientType
	}
	return t, nil
}

func (t IngredientType) String() string { return string(t) }

// Label falls back to the raw value for unknown types.
func (t IngredientType) Label() string {
	if l, ok := typeLabels[t]; ok {
		return l
	}
	return string(t)
}

type Ingredient struct {
	ID        uuid.UUID
	Name      string
	Price     decimal.Decimal
	Type      IngredientType
	Image     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewIngredient(name string, typ IngredientType, price decimal.Decimal, image string) (*Ingredient, error) {
	in := &Ingredient{
		ID:    uuid.New(),
		Name:  strings.TrimSpace(name),
		Price: price,
		Type:  typ,
		Image: strings.TrimSpace(image),
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	return in, nil
}

type IngredientPatch struct {
	Name  *string
	Price *decimal.Decimal
	Type  *IngredientType
	Image *string
}

func (in *Ingredient) Apply(p IngredientPatch) error {
	next := *in
	if p.Name != nil {
		next.Name = strings.TrimSpace(*p.Name)
	}
	if p.Price != nil {
		next.Price = *p.Price
	}
	if p.Type != nil {
		next.Type = *p.Type
	}
	if p.Image != nil {
		next.Image = strings.TrimSpace(*p.Image)
	}
	if err := next.validate(); err != nil {
		return err
	}
	*in = next
	return nil
}

func (in *Ingredient) CartIngredient() cart.Ingredient {
	return cart.Ingredient{
		ID:    in.ID.String(),
		Name:  in.Name,
		Type:  in.Type.String(),
		Price: in.Price,
	}
}

func (in *Ingredient) validate() error {
	if in.Name == "" {
		return ErrNameRequired
	}
	if in.Price.IsNegative() {
		return ErrNegativePrice
	}
	if _, ok := typeLabels[in.Type]; !ok {
		return ErrInvalidIngredientType
	}
	return nil
}

// IngredientFilter narrows the back-office list.
type IngredientFilter struct {
	Type   *IngredientType
	Search string
}
