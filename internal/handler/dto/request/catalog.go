package request

import (
	"sandwich-storefront/internal/domain/catalog"
	"sandwich-storefront/internal/pkg/patch"
	"sandwich-storefront/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type CreateSandwichRequest struct {
	Name        string           `json:"name" binding:"required,max=120"`
	Description string           `json:"description" binding:"required,max=1000"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	Image       *string          `json:"image" binding:"omitempty,max=2048"`
}

func (r *CreateSandwichRequest) ToInput() commands.CreateSandwichInput {
	return commands.CreateSandwichInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       *r.Price,
		Image:       patch.Coalesce(r.Image, catalog.DefaultImage),
	}
}

type UpdateSandwichRequest struct {
	Name        *string          `json:"name" binding:"omitempty,max=120"`
	Description *string          `json:"description" binding:"omitempty,max=1000"`
	Price       *decimal.Decimal `json:"price"`
	Image       *string          `json:"image" binding:"omitempty,max=2048"`
}

func (r *UpdateSandwichRequest) ToPatch() catalog.SandwichPatch {
	return catalog.SandwichPatch{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Image:       r.Image,
	}
}

type CreateIngredientRequest struct {
	Name  string           `json:"name" binding:"required,max=120"`
	Type  string           `json:"type" binding:"required,oneof=bread protein veggie sauce"`
	Price *decimal.Decimal `json:"price" binding:"required"`
	Image *string          `json:"image" binding:"omitempty,max=2048"`
}

func (r *CreateIngredientRequest) ToInput() (commands.CreateIngredientInput, error) {
	typ, err := catalog.NewIngredientType(r.Type)
	if err != nil {
		return commands.CreateIngredientInput{}, err
	}
	return commands.CreateIngredientInput{
		Name:  r.Name,
		Type:  typ,
		Price: *r.Price,
		Image: patch.Coalesce(r.Image, ""),
	}, nil
}

type UpdateIngredientRequest struct {
	Name  *string          `json:"name" binding:"omitempty,max=120"`
	Type  *string          `json:"type" binding:"omitempty,oneof=bread protein veggie sauce"`
	Price *decimal.Decimal `json:"price"`
	Image *string          `json:"image" binding:"omitempty,max=2048"`
}

func (r *UpdateIngredientRequest) ToPatch() (catalog.IngredientPatch, error) {
	p := catalog.IngredientPatch{
		Name:  r.Name,
		Price: r.Price,
		Image: r.Image,
	}
	if r.Type != nil {
		typ, err := catalog.NewIngredientType(*r.Type)
		if err != nil {
			return catalog.IngredientPatch{}, err
		}
		p.Type = &typ
	}
	return p, nil
}

// IngredientQuery binds the list filters.
type IngredientQuery struct {
	Type   string `form:"type" binding:"omitempty,oneof=bread protein veggie sauce"`
	Search string `form:"search" binding:"omitempty,max=100"`
}

func (q *IngredientQuery) ToFilter() catalog.IngredientFilter {
	f := catalog.IngredientFilter{Search: q.Search}
	if typ, err := catalog.NewIngredientType(q.Type); err == nil {
		f.Type = &typ
	}
	return f
}
