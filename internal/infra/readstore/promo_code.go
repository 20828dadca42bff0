package readstore

import (
	"context"

	"sandwich-storefront/internal/domain/promo"
	"sandwich-storefront/internal/infra"
	"sandwich-storefront/internal/infra/converter"
	"sandwich-storefront/internal/infra/db"
	"sandwich-storefront/internal/pkg/errs"
	"sandwich-storefront/internal/pkg/pgconv"
	"sandwich-storefront/internal/usecase/cart"

	"github.com/google/uuid"
)

const (
	listPromoCodes    = `SELECT ` + converter.PromoCodeColumns + ` FROM promo_codes ORDER BY created_at DESC`
	findPromoCode     = `SELECT ` + converter.PromoCodeColumns + ` FROM promo_codes WHERE id = $1`
	lookupActivePromo = `SELECT ` + converter.PromoCodeColumns + ` FROM promo_codes WHERE code = $1 AND active = true`
)

type PromoCodeReadStore struct {
	db db.DBTX
}

func NewPromoCodeReadStore(db db.DBTX) *PromoCodeReadStore {
	return &PromoCodeReadStore{db: db}
}

func (r *PromoCodeReadStore) List(ctx context.Context) ([]*promo.PromoCode, error) {
	rows, err := r.db.Query(ctx, listPromoCodes)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list promo codes", err)
	}
	list, err := collect(rows, converter.ScanPromoCode)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan promo codes", err, infra.KindDBFailure)
	}
	return list, nil
}

func (r *PromoCodeReadStore) FindByID(ctx context.Context, id uuid.UUID) (*promo.PromoCode, error) {
	p, err := converter.ScanPromoCode(r.db.QueryRow(ctx, findPromoCode, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find promo code", err)
	}
	return p, nil
}

// Lookup matches the code exactly, so "noel" does not find "NOEL".
func (r *PromoCodeReadStore) Lookup(ctx context.Context, code string) (*promo.PromoCode, error) {
	p, err := converter.ScanPromoCode(r.db.QueryRow(ctx, lookupActivePromo, code))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, cart.ErrPromoNotFound
		}
		return nil, errs.Wrapf(err, "failed to look up promo code %q", code)
	}
	return p, nil
}

var _ cart.PromoLookup = (*PromoCodeReadStore)(nil)
