package commands

import (
	"context"
	"slices"

	"sandwich-storefront/internal/domain/builder"
	cartdomain "sandwich-storefront/internal/domain/cart"
	"sandwich-storefront/internal/domain/catalog"
	"sandwich-storefront/internal/infra"
	"sandwich-storefront/internal/pkg/errs"
	"sandwich-storefront/internal/usecase/cart"

	"github.com/google/uuid"
)

// CustomSelection is the builder outcome: ingredient ids per step.
type CustomSelection struct {
	Bread   uuid.UUID
	Protein uuid.UUID
	Veggies []uuid.UUID
	Sauces  []uuid.UUID
}

type PromoResult struct {
	Applied bool
	View    cart.View
}

// CartCommands drives a shopper's engine. Every mutation returns the view after it.
type CartCommands interface {
	View(ctx context.Context, sessionID string) (cart.View, error)
	AddSandwich(ctx context.Context, sessionID string, sandwichID uuid.UUID) (cart.View, error)
	AddCustom(ctx context.Context, sessionID string, sel CustomSelection) (cart.View, error)
	RemoveItem(ctx context.Context, sessionID, itemID string) (cart.View, error)
	UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) (cart.View, error)
	Clear(ctx context.Context, sessionID string) (cart.View, error)
	ApplyPromoCode(ctx context.Context, sessionID, code string) (*PromoResult, error)
	RemovePromoCode(ctx context.Context, sessionID string) (cart.View, error)
}

type cartCommandsImpl struct {
	sessions SessionOpener
	catalog  CatalogReader
}

func NewCartCommands(sessions SessionOpener, catalog CatalogReader) CartCommands {
	return &cartCommandsImpl{sessions: sessions, catalog: catalog}
}

func (c *cartCommandsImpl) View(ctx context.Context, sessionID string) (cart.View, error) {
	e, err := c.sessions.Open(ctx, sessionID)
	if err != nil {
		return cart.View{}, err
	}
	return e.Snapshot(), nil
}

func (c *cartCommandsImpl) AddSandwich(ctx context.Context, sessionID string, sandwichID uuid.UUID) (cart.View, error) {
	s, err := c.catalog.FindSandwich(ctx, sandwichID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return cart.View{}, errs.Mark(err, errs.ErrSandwichNotFound)
		}
		return cart.View{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return c.mutate(ctx, sessionID, func(e *cart.Engine) error {
		_, err := e.AddItem(ctx, s.CartItem())
		return err
	})
}

func (c *cartCommandsImpl) AddCustom(ctx context.Context, sessionID string, sel CustomSelection) (cart.View, error) {
	item, err := c.buildCustom(ctx, sel)
	if err != nil {
		return cart.View{}, err
	}
	return c.mutate(ctx, sessionID, func(e *cart.Engine) error {
		_, err := e.AddItem(ctx, item)
		return err
	})
}

func (c *cartCommandsImpl) RemoveItem(ctx context.Context, sessionID, itemID string) (cart.View, error) {
	return c.mutate(ctx, sessionID, func(e *cart.Engine) error {
		return e.RemoveItem(ctx, itemID)
	})
}

func (c *cartCommandsImpl) UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) (cart.View, error) {
	return c.mutate(ctx, sessionID, func(e *cart.Engine) error {
		return e.UpdateQuantity(ctx, itemID, quantity)
	})
}

func (c *cartCommandsImpl) Clear(ctx context.Context, sessionID string) (cart.View, error) {
	return c.mutate(ctx, sessionID, func(e *cart.Engine) error {
		return e.Clear(ctx)
	})
}

func (c *cartCommandsImpl) ApplyPromoCode(ctx context.Context, sessionID, code string) (*PromoResult, error) {
	e, err := c.sessions.Open(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	applied, err := e.ApplyPromoCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return &PromoResult{Applied: applied, View: e.Snapshot()}, nil
}

func (c *cartCommandsImpl) RemovePromoCode(ctx context.Context, sessionID string) (cart.View, error) {
	return c.mutate(ctx, sessionID, func(e *cart.Engine) error {
		return e.RemovePromoCode(ctx)
	})
}

func (c *cartCommandsImpl) mutate(ctx context.Context, sessionID string, fn func(e *cart.Engine) error) (cart.View, error) {
	e, err := c.sessions.Open(ctx, sessionID)
	if err != nil {
		return cart.View{}, err
	}
	if err := fn(e); err != nil {
		return cart.View{}, err
	}
	return e.Snapshot(), nil
}

func (c *cartCommandsImpl) buildCustom(ctx context.Context, sel CustomSelection) (cartdomain.Item, error) {
	// duplicate ids would toggle a multi-select step back off
	veggies := dedupe(sel.Veggies)
	sauces := dedupe(sel.Sauces)

	ids := append([]uuid.UUID{sel.Bread, sel.Protein}, veggies...)
	ids = append(ids, sauces...)
	found, err := c.catalog.FindIngredientsByIDs(ctx, dedupe(ids))
	if err != nil {
		return cartdomain.Item{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	byID := make(map[uuid.UUID]catalog.Ingredient, len(found))
	for _, in := range found {
		byID[in.ID] = *in
	}

	b := builder.New()
	pick := func(step builder.Step, id uuid.UUID) error {
		in, ok := byID[id]
		if !ok {
			return errs.Wrapf(errs.ErrIngredientNotFound, "%s %s", step.Title(), id)
		}
		if err := b.Select(step, in); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		return nil
	}

	if sel.Bread != uuid.Nil {
		if err := pick(builder.StepBread, sel.Bread); err != nil {
			return cartdomain.Item{}, err
		}
	}
	if sel.Protein != uuid.Nil {
		if err := pick(builder.StepProtein, sel.Protein); err != nil {
			return cartdomain.Item{}, err
		}
	}
	for _, id := range veggies {
		if err := pick(builder.StepVeggies, id); err != nil {
			return cartdomain.Item{}, err
		}
	}
	for _, id := range sauces {
		if err := pick(builder.StepSauces, id); err != nil {
			return cartdomain.Item{}, err
		}
	}

	item, err := b.Build(uuid.NewString())
	if err != nil {
		return cartdomain.Item{}, errs.Mark(err, errs.ErrDomainValidation)
	}
	return item, nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id != uuid.Nil && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
