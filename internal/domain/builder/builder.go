package builder

import (
	"errors"
	"slices"
	"strings"

	"sandwich-storefront/internal/domain/cart"
	"sandwich-storefront/internal/domain/catalog"

	"github.com/shopspring/decimal"
)

const (
	CustomName   = "Sandwich Personnalisé"
	CustomPrefix = "custom-"
	noSauce      = "sans sauce"
)

var (
	ErrBreadRequired   = errors.New("exactly one bread must be selected")
	ErrProteinRequired = errors.New("exactly one protein must be selected")
	ErrVeggieRequired  = errors.New("at least one veggie must be selected")
	ErrWrongStep       = errors.New("ingredient does not belong to this step")
	ErrUnknownStep     = errors.New("unknown builder step")
)

type Step int

const (
	StepBread Step = iota
	StepProtein
	StepVeggies
	StepSauces
)

var stepTitles = [...]string{"Pain", "Protéine", "Crudités", "Sauces"}

var stepTypes = [...]catalog.IngredientType{
	catalog.TypeBread,
	catalog.TypeProtein,
	catalog.TypeVeggie,
	catalog.TypeSauce,
}

// Steps in the order the shopper walks them.
func Steps() []Step {
	return []Step{StepBread, StepProtein, StepVeggies, StepSauces}
}

func (s Step) Title() string {
	if !s.valid() {
		return ""
	}
	return stepTitles[s]
}

func (s Step) IngredientType() catalog.IngredientType {
	if !s.valid() {
		return ""
	}
	return stepTypes[s]
}

// Multi reports whether the step toggles several options instead of picking one.
func (s Step) Multi() bool {
	return s == StepVeggies || s == StepSauces
}

func (s Step) valid() bool {
	return s >= StepBread && s <= StepSauces
}

// Sandwich is a build in progress.
type Sandwich struct {
	bread   *catalog.Ingredient
	protein *catalog.Ingredient
	veggies []catalog.Ingredient
	sauces  []catalog.Ingredient
}

func New() *Sandwich {
	return &Sandwich{}
}

// Select picks the bread or protein, or toggles a veggie or sauce.
func (b *Sandwich) Select(step Step, in catalog.Ingredient) error {
	if !step.valid() {
		return ErrUnknownStep
	}
	if in.Type != step.IngredientType() {
		return ErrWrongStep
	}
	switch step {
	case StepBread:
		b.bread = &in
	case StepProtein:
		b.protein = &in
	case StepVeggies:
		b.veggies = toggle(b.veggies, in)
	case StepSauces:
		b.sauces = toggle(b.sauces, in)
	}
	return nil
}

func (b *Sandwich) CanProceed(step Step) bool {
	switch step {
	case StepBread:
		return b.bread != nil
	case StepProtein:
		return b.protein != nil
	case StepVeggies:
		return len(b.veggies) > 0
	case StepSauces:
		return true
	default:
		return false
	}
}

func (b *Sandwich) Price() decimal.Decimal {
	total := decimal.Zero
	for _, in := range b.selected() {
		total = total.Add(in.Price)
	}
	return total
}

// Build turns a complete selection into a cart item with the given id suffix.
func (b *Sandwich) Build(idSuffix string) (cart.Item, error) {
	switch {
	case !b.CanProceed(StepBread):
		return cart.Item{}, ErrBreadRequired
	case !b.CanProceed(StepProtein):
		return cart.Item{}, ErrProteinRequired
	case !b.CanProceed(StepVeggies):
		return cart.Item{}, ErrVeggieRequired
	}

	selected := b.selected()
	ingredients := make([]cart.Ingredient, 0, len(selected))
	for _, in := range selected {
		ingredients = append(ingredients, in.CartIngredient())
	}

	return cart.Item{
		ID:          CustomPrefix + idSuffix,
		Name:        CustomName,
		Description: b.describe(),
		Price:       b.Price(),
		Image:       catalog.DefaultImage,
		IsCustom:    true,
		Ingredients: ingredients,
	}, nil
}

func (b *Sandwich) describe() string {
	sauces := noSauce
	if len(b.sauces) > 0 {
		sauces = names(b.sauces)
	}
	return b.bread.Name + " avec " + b.protein.Name + ", " + names(b.veggies) + " et " + sauces
}

func (b *Sandwich) selected() []catalog.Ingredient {
	var out []catalog.Ingredient
	if b.bread != nil {
		out = append(out, *b.bread)
	}
	if b.protein != nil {
		out = append(out, *b.protein)
	}
	out = append(out, b.veggies...)
	return append(out, b.sauces...)
}

func toggle(list []catalog.Ingredient, in catalog.Ingredient) []catalog.Ingredient {
	i := slices.IndexFunc(list, func(x catalog.Ingredient) bool { return x.ID == in.ID })
	if i >= 0 {
		return slices.Delete(list, i, i+1)
	}
	return append(list, in)
}

func names(list []catalog.Ingredient) string {
	parts := make([]string, len(list))
	for i, in := range list {
		parts[i] = in.Name
	}
	return strings.Join(parts, ", ")
}
