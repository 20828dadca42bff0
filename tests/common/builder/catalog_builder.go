//go:build unit || e2e

package builder

import (
	"time"

	"sandwich-storefront/internal/domain/cart"
	"sandwich-storefront/internal/domain/catalog"
	reqdto "sandwich-storefront/internal/handler/dto/request"
	"sandwich-storefront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var fixedTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type SandwichBuilder struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       string
	Image       string
}

func NewSandwichBuilder() *SandwichBuilder {
	return &SandwichBuilder{
		ID:          uuid.New(),
		Name:        "L'Américain",
		Description: "Steak haché, cheddar, salade, tomate",
		Price:       "8.50",
		Image:       catalog.DefaultImage,
	}
}

func (s *SandwichBuilder) With(mutate func(*SandwichBuilder)) *SandwichBuilder {
	mutate(s)
	return s
}

func (s *SandwichBuilder) WithName(name string) *SandwichBuilder {
	s.Name = name
	return s
}

func (s *SandwichBuilder) WithPrice(price string) *SandwichBuilder {
	s.Price = price
	return s
}

func (s *SandwichBuilder) BuildDomain() *catalog.Sandwich {
	return &catalog.Sandwich{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       decimal.RequireFromString(s.Price),
		Image:       s.Image,
		CreatedAt:   fixedTime,
		UpdatedAt:   fixedTime,
	}
}

func (s *SandwichBuilder) BuildView() *queries.SandwichView {
	return &queries.SandwichView{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       decimal.RequireFromString(s.Price),
		Image:       s.Image,
		CreatedAt:   fixedTime,
		UpdatedAt:   fixedTime,
	}
}

func (s *SandwichBuilder) BuildItem() cart.Item {
	return s.BuildDomain().CartItem()
}

func (s *SandwichBuilder) BuildCreateDTO() reqdto.CreateSandwichRequest {
	price := decimal.RequireFromString(s.Price)
	image := s.Image
	return reqdto.CreateSandwichRequest{
		Name:        s.Name,
		Description: s.Description,
		Price:       &price,
		Image:       &image,
	}
}

type IngredientBuilder struct {
	ID    uuid.UUID
	Name  string
	Type  catalog.IngredientType
	Price string
	Image string
}

func NewIngredientBuilder() *IngredientBuilder {
	return &IngredientBuilder{
		ID:    uuid.New(),
		Name:  "Baguette traditionnelle",
		Type:  catalog.TypeBread,
		Price: "2.00",
		Image: catalog.DefaultImage,
	}
}

func (i *IngredientBuilder) With(mutate func(*IngredientBuilder)) *IngredientBuilder {
	mutate(i)
	return i
}

func (i *IngredientBuilder) WithName(name string) *IngredientBuilder {
	i.Name = name
	return i
}

func (i *IngredientBuilder) WithType(typ catalog.IngredientType) *IngredientBuilder {
	i.Type = typ
	return i
}

func (i *IngredientBuilder) WithPrice(price string) *IngredientBuilder {
	i.Price = price
	return i
}

func (i *IngredientBuilder) BuildDomain() *catalog.Ingredient {
	return &catalog.Ingredient{
		ID:        i.ID,
		Name:      i.Name,
		Type:      i.Type,
		Price:     decimal.RequireFromString(i.Price),
		Image:     i.Image,
		CreatedAt: fixedTime,
		UpdatedAt: fixedTime,
	}
}

func (i *IngredientBuilder) BuildView() *queries.IngredientView {
	return &queries.IngredientView{
		ID:        i.ID,
		Name:      i.Name,
		Price:     decimal.RequireFromString(i.Price),
		Type:      i.Type.String(),
		TypeLabel: i.Type.Label(),
		Image:     i.Image,
		CreatedAt: fixedTime,
		UpdatedAt: fixedTime,
	}
}

func (i *IngredientBuilder) BuildCreateDTO() reqdto.CreateIngredientRequest {
	price := decimal.RequireFromString(i.Price)
	image := i.Image
	return reqdto.CreateIngredientRequest{
		Name:  i.Name,
		Type:  i.Type.String(),
		Price: &price,
		Image: &image,
	}
}
