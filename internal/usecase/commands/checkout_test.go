//go:build unit

package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	cartdomain "sandwich-storefront/internal/domain/cart"
	"sandwich-storefront/internal/domain/order"
	"sandwich-storefront/internal/pkg/errs"
	"sandwich-storefront/internal/usecase/commands"
	"sandwich-storefront/tests/common/builder"
	commandsmock "sandwich-storefront/tests/mock/commands"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type checkoutFixture struct {
	*engineFixture
	publisher *commandsmock.MockOrderPublisher
	sut       commands.CheckoutCommands
}

func newCheckoutFixture(t *testing.T, codes promoTable) *checkoutFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &checkoutFixture{
		engineFixture: newEngine(codes),
		publisher:     commandsmock.NewMockOrderPublisher(ctrl),
	}
	sessions := commandsmock.NewMockSessionOpener(ctrl)
	sessions.EXPECT().Open(gomock.Any(), "session-1").Return(f.engine, nil).AnyTimes()
	f.sut = commands.NewCheckoutCommands(sessions, f.publisher, slog.Default())
	return f
}

func customer() order.CustomerInfo {
	return order.CustomerInfo{
		FirstName: "Marie",
		LastName:  "Curie",
		Phone:     "0612345678",
		Address:   "1 rue Pierre et Marie Curie",
		City:      "Paris",
		ZipCode:   "75005",
	}
}

func TestCheckoutCommands_SubmitOrder(t *testing.T) {
	ctx := context.Background()
	s := builder.NewSandwichBuilder().BuildDomain()

	t.Run("正常系: 注文を引き渡しカートを空にする", func(t *testing.T) {
		f := newCheckoutFixture(t, nil)
		_, err := f.engine.AddItem(ctx, s.CartItem())
		require.NoError(t, err)
		f.publisher.EXPECT().PublishOrderSubmitted(gomock.Any(), gomock.Any()).Return(nil)

		got, err := f.sut.SubmitOrder(ctx, "session-1", customer())

		require.NoError(t, err)
		assert.Equal(t, "session-1", got.SessionID)
		assert.Regexp(t, `^\d{4}$`, got.Number)
		assert.Equal(t, customer(), got.Customer)
		assert.Equal(t, 1, got.ItemCount())
		assert.True(t, got.Total.Equal(decimal.RequireFromString("11.00")))
		require.Len(t, f.handoff.orders, 1)
		assert.Same(t, got, f.handoff.orders[0])
		assert.Empty(t, f.engine.Snapshot().Lines)
	})

	t.Run("正常系: 配信失敗でも注文は成立する", func(t *testing.T) {
		f := newCheckoutFixture(t, nil)
		_, err := f.engine.AddItem(ctx, s.CartItem())
		require.NoError(t, err)
		f.publisher.EXPECT().PublishOrderSubmitted(gomock.Any(), gomock.Any()).Return(errors.New("channel closed"))

		got, err := f.sut.SubmitOrder(ctx, "session-1", customer())

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Len(t, f.handoff.orders, 1)
	})

	t.Run("正常系: プロモコードの配送先で上書きする", func(t *testing.T) {
		code := builder.NewPromoCodeBuilder().BuildDomain()
		f := newCheckoutFixture(t, promoTable{code.Code: code})
		_, err := f.engine.AddItem(ctx, s.CartItem())
		require.NoError(t, err)
		applied, err := f.engine.ApplyPromoCode(ctx, code.Code)
		require.NoError(t, err)
		require.True(t, applied)
		f.publisher.EXPECT().PublishOrderSubmitted(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d *order.Details) error {
				assert.Equal(t, code.Code, d.PromoCode)
				return nil
			})

		got, err := f.sut.SubmitOrder(ctx, "session-1", customer())

		require.NoError(t, err)
		assert.Equal(t, "12 rue de la Paix", got.Customer.Address)
		assert.Equal(t, "75002", got.Customer.ZipCode)
		assert.True(t, got.Discount.Equal(decimal.RequireFromString("3.00")))
		assert.True(t, got.Total.Equal(decimal.RequireFromString("8.00")))
		assert.Empty(t, f.engine.Snapshot().PromoCode)
	})

	t.Run("異常系: 空のカート", func(t *testing.T) {
		f := newCheckoutFixture(t, nil)

		_, err := f.sut.SubmitOrder(ctx, "session-1", customer())

		assert.ErrorIs(t, err, cartdomain.ErrEmptyCart)
		assert.Empty(t, f.handoff.orders)
	})

	t.Run("異常系: 必須項目の欠落はカートを残す", func(t *testing.T) {
		f := newCheckoutFixture(t, nil)
		_, err := f.engine.AddItem(ctx, s.CartItem())
		require.NoError(t, err)
		info := customer()
		info.Phone = " "

		_, err = f.sut.SubmitOrder(ctx, "session-1", info)

		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		assert.Contains(t, err.Error(), "phone")
		assert.Len(t, f.engine.Snapshot().Lines, 1)
	})
}
