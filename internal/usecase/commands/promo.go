package commands

import (
	"context"

	"sandwich-storefront/internal/domain/promo"
	"sandwich-storefront/internal/infra"
	"sandwich-storefront/internal/pkg/errs"
	"sandwich-storefront/internal/pkg/patch"
	"sandwich-storefront/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreatePromoCodeInput struct {
	Code     string
	Discount decimal.Decimal
	Address  promo.Address
}

type PromoCodeCommands interface {
	CreatePromoCode(ctx context.Context, in CreatePromoCodeInput) (*promo.PromoCode, error)
	UpdatePromoCode(ctx context.Context, id uuid.UUID, p promo.Patch) (*promo.PromoCode, error)
	DeletePromoCode(ctx context.Context, id uuid.UUID) error
}

type promoCodeCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewPromoCodeCommands(uow shared.UnitOfWork) PromoCodeCommands {
	return &promoCodeCommandsImpl{uow: uow}
}

func (c *promoCodeCommandsImpl) CreatePromoCode(ctx context.Context, in CreatePromoCodeInput) (*promo.PromoCode, error) {
	p, err := promo.NewPromoCode(in.Code, in.Discount, in.Address)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.PromoCodes().Create(ctx, tx.DB(), p)
	})
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return nil, errs.Mark(err, errs.ErrPromoCodeDuplicate)
	}
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return p, nil
}

// UpdatePromoCode skips the write when the patch changes nothing.
func (c *promoCodeCommandsImpl) UpdatePromoCode(ctx context.Context, id uuid.UUID, p promo.Patch) (*promo.PromoCode, error) {
	var updated *promo.PromoCode
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.PromoCodes().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if !changes(current, p) {
			updated = current
			return nil
		}
		if err := current.Apply(p); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := tx.PromoCodes().Update(ctx, tx.DB(), current); err != nil {
			return err
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, mapWriteErr(err, errs.ErrPromoCodeNotFound)
	}
	return updated, nil
}

func (c *promoCodeCommandsImpl) DeletePromoCode(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.PromoCodes().Delete(ctx, tx.DB(), id)
	})
	return mapWriteErr(err, errs.ErrPromoCodeNotFound)
}

func changes(current *promo.PromoCode, p promo.Patch) bool {
	addr := current.DeliveryAddress
	discountChanged := p.Discount != nil && !p.Discount.Equal(current.Discount)
	return discountChanged ||
		patch.Changed(p.Address, addr.Street) ||
		patch.Changed(p.City, addr.City) ||
		patch.Changed(p.Zipcode, addr.Zipcode) ||
		patch.Changed(p.Active, current.Active)
}
