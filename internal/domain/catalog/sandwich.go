package catalog

import (
	"errors"
	"strings"
	"time"

	"sandwich-storefront/internal/domain/cart"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const DefaultImage = "/placeholder.svg"

var (
	ErrNameRequired        = errors.New("name is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrPriceNotPositive    = errors.New("price must be greater than zero")
	ErrNegativePrice       = errors.New("price cannot be negative")
)

type Sandwich struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	Image       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewSandwich(name, description string, price decimal.Decimal, image string) (*Sandwich, error) {
	s := &Sandwich{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Price:       price,
		Image:       imageOrDefault(image),
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

type SandwichPatch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Image       *string
}

func (s *Sandwich) Apply(p SandwichPatch) error {
	next := *s
	if p.Name != nil {
		next.Name = strings.TrimSpace(*p.Name)
	}
	if p.Description != nil {
		next.Description = strings.TrimSpace(*p.Description)
	}
	if p.Price != nil {
		next.Price = *p.Price
	}
	if p.Image != nil {
		next.Image = imageOrDefault(*p.Image)
	}
	if err := next.validate(); err != nil {
		return err
	}
	*s = next
	return nil
}

// CartItem is the shape the cart receives when a shopper picks this sandwich.
func (s *Sandwich) CartItem() cart.Item {
	return cart.Item{
		ID:          s.ID.String(),
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		Image:       s.Image,
	}
}

func (s *Sandwich) validate() error {
	if s.Name == "" {
		return ErrNameRequired
	}
	if s.Description == "" {
		return ErrDescriptionRequired
	}
	if !s.Price.IsPositive() {
		return ErrPriceNotPositive
	}
	return nil
}

func imageOrDefault(image string) string {
	if strings.TrimSpace(image) == "" {
		return DefaultImage
	}
	return strings.TrimSpace(image)
}
