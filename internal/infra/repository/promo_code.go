package repository

import (
	"context"

	"sandwich-storefront/internal/domain/promo"
	"sandwich-storefront/internal/infra"
	"sandwich-storefront/internal/infra/converter"
	"sandwich-storefront/internal/infra/db"
	"sandwich-storefront/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	selectPromoCodeForUpdate = `SELECT ` + converter.PromoCodeColumns + ` FROM promo_codes WHERE id = $1 FOR UPDATE`
	insertPromoCode          = `INSERT INTO promo_codes (id, code, discount, delivery_address, delivery_city, delivery_zipcode, active)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	updatePromoCode = `UPDATE promo_codes
SET discount = $2, delivery_address = $3, delivery_city = $4, delivery_zipcode = $5, active = $6, updated_at = now()
WHERE id = $1`
	deletePromoCode = `DELETE FROM promo_codes WHERE id = $1`
)

type PromoCodeRepository struct{}

func NewPromoCodeRepository() *PromoCodeRepository {
	return &PromoCodeRepository{}
}

func (r *PromoCodeRepository) FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*promo.PromoCode, error) {
	p, err := converter.ScanPromoCode(tx.QueryRow(ctx, selectPromoCodeForUpdate, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find promo code", err)
	}
	return p, nil
}

func (r *PromoCodeRepository) Create(ctx context.Context, tx db.DBTX, p *promo.PromoCode) error {
	addr := p.DeliveryAddress
	_, err := tx.Exec(ctx, insertPromoCode,
		p.ID, p.Code, pgconv.DecimalToNumeric(p.Discount), addr.Street, addr.City, addr.Zipcode, p.Active)
	if err != nil {
		return infra.WrapRepoErr("failed to create promo code", err)
	}
	return nil
}

func (r *PromoCodeRepository) Update(ctx context.Context, tx db.DBTX, p *promo.PromoCode) error {
	addr := p.DeliveryAddress
	tag, err := tx.Exec(ctx, updatePromoCode,
		p.ID, pgconv.DecimalToNumeric(p.Discount), addr.Street, addr.City, addr.Zipcode, p.Active)
	if err != nil {
		return infra.WrapRepoErr("failed to update promo code", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("promo code not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PromoCodeRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, deletePromoCode, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete promo code", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("promo code not found", nil, infra.KindNotFound)
	}
	return nil
}
