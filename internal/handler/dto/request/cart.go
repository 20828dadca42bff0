package request

import (
	"strings"

	"sandwich-storefront/internal/usecase/commands"

	"github.com/google/uuid"
)

type AddSandwichRequest struct {
	SandwichID uuid.UUID `json:"sandwich_id" binding:"required"`
}

// AddCustomRequest carries one ingredient id per single-choice step and lists for the toggles.
type AddCustomRequest struct {
	BreadID   uuid.UUID   `json:"bread_id" binding:"required"`
	ProteinID uuid.UUID   `json:"protein_id" binding:"required"`
	VeggieIDs []uuid.UUID `json:"veggie_ids" binding:"omitempty,max=20"`
	SauceIDs  []uuid.UUID `json:"sauce_ids" binding:"omitempty,max=20"`
}

func (r *AddCustomRequest) ToSelection() commands.CustomSelection {
	return commands.CustomSelection{
		Bread:   r.BreadID,
		Protein: r.ProteinID,
		Veggies: r.VeggieIDs,
		Sauces:  r.SauceIDs,
	}
}

// Quantity is range-checked by the cart itself.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// An empty code clears the applied one.
type ApplyPromoCodeRequest struct {
	Code string `json:"code" binding:"max=64"`
}

// NormalizedCode upper-cases the code the way the promo input field does.
// Whitespace is kept, so a padded code still fails to match.
func (r *ApplyPromoCodeRequest) NormalizedCode() string {
	return strings.ToUpper(r.Code)
}
