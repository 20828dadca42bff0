package queries

import (
	"context"

	"sandwich-storefront/internal/domain/promo"
	"sandwich-storefront/internal/infra"
	"sandwich-storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

type PromoCodeReadStore interface {
	List(ctx context.Context) ([]*promo.PromoCode, error)
	FindByID(ctx context.Context, id uuid.UUID) (*promo.PromoCode, error)
}

type PromoCodeQueries interface {
	List(ctx context.Context) ([]*PromoCodeView, error)
	Get(ctx context.Context, id uuid.UUID) (*PromoCodeView, error)
}

type promoCodeQueriesImpl struct {
	readStore PromoCodeReadStore
}

func NewPromoCodeQueries(readStore PromoCodeReadStore) PromoCodeQueries {
	return &promoCodeQueriesImpl{readStore: readStore}
}

func (q *promoCodeQueriesImpl) List(ctx context.Context) ([]*PromoCodeView, error) {
	list, err := q.readStore.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	views := make([]*PromoCodeView, len(list))
	for i, p := range list {
		views[i] = ToPromoCodeView(p)
	}
	return views, nil
}

func (q *promoCodeQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*PromoCodeView, error) {
	p, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrPromoCodeNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return ToPromoCodeView(p), nil
}

func ToPromoCodeView(p *promo.PromoCode) *PromoCodeView {
	return &PromoCodeView{
		ID:              p.ID,
		Code:            p.Code,
		Discount:        p.Discount,
		DeliveryAddress: p.DeliveryAddress.Street,
		DeliveryCity:    p.DeliveryAddress.City,
		DeliveryZipcode: p.DeliveryAddress.Zipcode,
		Active:          p.Active,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
