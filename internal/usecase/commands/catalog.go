package commands

import (
	"context"

	"sandwich-storefront/internal/domain/catalog"
	"sandwich-storefront/internal/infra"
	"sandwich-storefront/internal/pkg/errs"
	"sandwich-storefront/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateSandwichInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Image       string
}

type CreateIngredientInput struct {
	Name  string
	Type  catalog.IngredientType
	Price decimal.Decimal
	Image string
}

type CatalogCommands interface {
	CreateSandwich(ctx context.Context, in CreateSandwichInput) (*catalog.Sandwich, error)
	UpdateSandwich(ctx context.Context, id uuid.UUID, p catalog.SandwichPatch) (*catalog.Sandwich, error)
	DeleteSandwich(ctx context.Context, id uuid.UUID) error
	CreateIngredient(ctx context.Context, in CreateIngredientInput) (*catalog.Ingredient, error)
	UpdateIngredient(ctx context.Context, id uuid.UUID, p catalog.IngredientPatch) (*catalog.Ingredient, error)
	DeleteIngredient(ctx context.Context, id uuid.UUID) error
}

type catalogCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCatalogCommands(uow shared.UnitOfWork) CatalogCommands {
	return &catalogCommandsImpl{uow: uow}
}

func (c *catalogCommandsImpl) CreateSandwich(ctx context.Context, in CreateSandwichInput) (*catalog.Sandwich, error) {
	s, err := catalog.NewSandwich(in.Name, in.Description, in.Price, in.Image)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Sandwiches().Create(ctx, tx.DB(), s)
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return s, nil
}

func (c *catalogCommandsImpl) UpdateSandwich(ctx context.Context, id uuid.UUID, p catalog.SandwichPatch) (*catalog.Sandwich, error) {
	var updated *catalog.Sandwich
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Sandwiches().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if err := s.Apply(p); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := tx.Sandwiches().Update(ctx, tx.DB(), s); err != nil {
			return err
		}
		updated = s
		return nil
	})
	if err != nil {
		return nil, mapWriteErr(err, errs.ErrSandwichNotFound)
	}
	return updated, nil
}

func (c *catalogCommandsImpl) DeleteSandwich(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Sandwiches().Delete(ctx, tx.DB(), id)
	})
	return mapWriteErr(err, errs.ErrSandwichNotFound)
}

func (c *catalogCommandsImpl) CreateIngredient(ctx context.Context, in CreateIngredientInput) (*catalog.Ingredient, error) {
	ing, err := catalog.NewIngredient(in.Name, in.Type, in.Price, in.Image)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Ingredients().Create(ctx, tx.DB(), ing)
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return ing, nil
}

func (c *catalogCommandsImpl) UpdateIngredient(ctx context.Context, id uuid.UUID, p catalog.IngredientPatch) (*catalog.Ingredient, error) {
	var updated *catalog.Ingredient
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ing, err := tx.Ingredients().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if err := ing.Apply(p); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := tx.Ingredients().Update(ctx, tx.DB(), ing); err != nil {
			return err
		}
		updated = ing
		return nil
	})
	if err != nil {
		return nil, mapWriteErr(err, errs.ErrIngredientNotFound)
	}
	return updated, nil
}

func (c *catalogCommandsImpl) DeleteIngredient(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Ingredients().Delete(ctx, tx.DB(), id)
	})
	return mapWriteErr(err, errs.ErrIngredientNotFound)
}

// mapWriteErr translates repository kinds into usecase sentinels.
func mapWriteErr(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, notFound)
	case errs.Is(err, errs.ErrDomainValidation):
		return err
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}
