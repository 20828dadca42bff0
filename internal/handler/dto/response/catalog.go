package response

import (
	"sandwich-storefront/internal/usecase/queries"
)

type SandwichResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

func FromSandwichView(v *queries.SandwichView) *SandwichResponse {
	return &SandwichResponse{
		ID:          v.ID.String(),
		Name:        v.Name,
		Description: v.Description,
		Price:       v.Price.StringFixed(2),
		Image:       v.Image,
		CreatedAt:   v.CreatedAt.Unix(),
		UpdatedAt:   v.UpdatedAt.Unix(),
	}
}

func FromSandwichList(items []*queries.SandwichView) []*SandwichResponse {
	res := make([]*SandwichResponse, len(items))
	for i, it := range items {
		res[i] = FromSandwichView(it)
	}
	return res
}

type IngredientResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Type      string `json:"type"`
	TypeLabel string `json:"type_label"`
	Image     string `json:"image,omitempty"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

func FromIngredientView(v *queries.IngredientView) *IngredientResponse {
	return &IngredientResponse{
		ID:        v.ID.String(),
		Name:      v.Name,
		Price:     v.Price.StringFixed(2),
		Type:      v.Type,
		TypeLabel: v.TypeLabel,
		Image:     v.Image,
		CreatedAt: v.CreatedAt.Unix(),
		UpdatedAt: v.UpdatedAt.Unix(),
	}
}

func FromIngredientList(items []*queries.IngredientView) []*IngredientResponse {
	res := make([]*IngredientResponse, len(items))
	for i, it := range items {
		res[i] = FromIngredientView(it)
	}
	return res
}

type BuilderStepResponse struct {
	Step     int                   `json:"step"`
	Title    string                `json:"title"`
	Type     string                `json:"type"`
	Multi    bool                  `json:"multi"`
	Required bool                  `json:"required"`
	Options  []*IngredientResponse `json:"options"`
}

func FromBuilderSteps(steps []*queries.BuilderStepView) []*BuilderStepResponse {
	res := make([]*BuilderStepResponse, len(steps))
	for i, s := range steps {
		res[i] = &BuilderStepResponse{
			Step:     s.Step,
			Title:    s.Title,
			Type:     s.Type,
			Multi:    s.Multi,
			Required: s.Required,
			Options:  FromIngredientList(s.Options),
		}
	}
	return res
}
