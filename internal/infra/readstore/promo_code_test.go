//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"sandwich-storefront/internal/infra/readstore"
	"sandwich-storefront/internal/usecase/cart"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var promoCols = []string{
	"id", "code", "discount", "delivery_address", "delivery_city", "delivery_zipcode", "active", "created_at", "updated_at",
}

func TestPromoCodeReadStore_Lookup(t *testing.T) {
	ctx := context.Background()

	// ==================================================
	// success
	// ==================================================
	t.Run("success: active code resolves", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`FROM promo_codes WHERE code = \$1 AND active = true`).
			WithArgs("NOEL").
			WillReturnRows(pgxmock.NewRows(promoCols).
				AddRow(uuid.NewString(), "NOEL", "5.00", "1 Rue du Pôle Nord", "Laponie", "99999", true, fixedNow, fixedNow))

		p, err := readstore.NewPromoCodeReadStore(mock).Lookup(ctx, "NOEL")

		require.NoError(t, err)
		assert.Equal(t, "NOEL", p.Code)
		assert.Equal(t, "5.00", p.Discount.StringFixed(2))
		assert.Equal(t, "Laponie", p.DeliveryAddress.City)
	})

	// ==================================================
	// error
	// ==================================================
	t.Run("error: no match is ErrPromoNotFound", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`FROM promo_codes`).WithArgs("noel").WillReturnError(pgx.ErrNoRows)

		_, err := readstore.NewPromoCodeReadStore(mock).Lookup(ctx, "noel")

		assert.ErrorIs(t, err, cart.ErrPromoNotFound)
	})

	t.Run("error: driver failure is not a miss", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`FROM promo_codes`).WithArgs("NOEL").WillReturnError(assert.AnError)

		_, err := readstore.NewPromoCodeReadStore(mock).Lookup(ctx, "NOEL")

		require.Error(t, err)
		assert.NotErrorIs(t, err, cart.ErrPromoNotFound)
	})
}

func TestPromoCodeReadStore_List(t *testing.T) {
	t.Run("success: newest first", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`FROM promo_codes ORDER BY created_at DESC`).
			WillReturnRows(pgxmock.NewRows(promoCols).
				AddRow(uuid.NewString(), "HIVER", "3.00", "2 Rue", "Lyon", "69001", false, fixedNow, fixedNow).
				AddRow(uuid.NewString(), "NOEL", "5.00", "1 Rue", "Paris", "75001", true, fixedNow, fixedNow))

		list, err := readstore.NewPromoCodeReadStore(mock).List(context.Background())

		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "HIVER", list[0].Code)
		assert.False(t, list[0].Active)
	})
}
