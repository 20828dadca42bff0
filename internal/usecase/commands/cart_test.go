//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"sandwich-storefront/internal/domain/builder"
	cartdomain "sandwich-storefront/internal/domain/cart"
	"sandwich-storefront/internal/domain/catalog"
	"sandwich-storefront/internal/domain/promo"
	"sandwich-storefront/internal/infra"
	"sandwich-storefront/internal/pkg/errs"
	"sandwich-storefront/internal/usecase/cart"
	"sandwich-storefront/internal/usecase/commands"
	testbuilder "sandwich-storefront/tests/common/builder"
	commandsmock "sandwich-storefront/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type cartFixture struct {
	*engineFixture
	sessions *commandsmock.MockSessionOpener
	catalog  *commandsmock.MockCatalogReader
	sut      commands.CartCommands
}

func newCartFixture(t *testing.T, codes promoTable) *cartFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &cartFixture{
		engineFixture: newEngine(codes),
		sessions:      commandsmock.NewMockSessionOpener(ctrl),
		catalog:       commandsmock.NewMockCatalogReader(ctrl),
	}
	f.sut = commands.NewCartCommands(f.sessions, f.catalog)
	return f
}

func (f *cartFixture) opens() {
	f.sessions.EXPECT().Open(gomock.Any(), "session-1").Return(f.engine, nil).AnyTimes()
}

func ingredient(name string, typ catalog.IngredientType, price string) *catalog.Ingredient {
	return testbuilder.NewIngredientBuilder().WithName(name).WithType(typ).WithPrice(price).BuildDomain()
}

func TestCartCommands_View(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 空のカート", func(t *testing.T) {
		f := newCartFixture(t, nil)
		f.opens()

		v, err := f.sut.View(ctx, "session-1")

		require.NoError(t, err)
		assert.Empty(t, v.Lines)
		assert.True(t, v.Totals.ShippingFee.Equal(decimal.RequireFromString("2.50")))
	})

	t.Run("異常系: セッションを開けない", func(t *testing.T) {
		f := newCartFixture(t, nil)
		f.sessions.EXPECT().Open(gomock.Any(), "").Return(nil, cart.ErrInvalidSession)

		_, err := f.sut.View(ctx, "")

		assert.ErrorIs(t, err, cart.ErrInvalidSession)
	})
}

func TestCartCommands_AddSandwich(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: カタログの価格で追加する", func(t *testing.T) {
		f := newCartFixture(t, nil)
		f.opens()
		s := testbuilder.NewSandwichBuilder().BuildDomain()
		f.catalog.EXPECT().FindSandwich(gomock.Any(), s.ID).Return(s, nil).Times(2)

		_, err := f.sut.AddSandwich(ctx, "session-1", s.ID)
		require.NoError(t, err)
		v, err := f.sut.AddSandwich(ctx, "session-1", s.ID)

		require.NoError(t, err)
		require.Len(t, v.Lines, 1)
		assert.Equal(t, s.ID.String(), v.Lines[0].ID)
		assert.Equal(t, 2, v.Lines[0].Quantity)
		assert.Equal(t, 2, v.ItemCount)
		assert.True(t, v.Totals.Subtotal.Equal(decimal.RequireFromString("17.00")))
		assert.True(t, v.Totals.ShippingFee.IsZero())
		_, persisted := f.store.values[cart.CartKey]
		assert.True(t, persisted)
	})

	t.Run("異常系: 存在しないサンドイッチはセッションを開かない", func(t *testing.T) {
		f := newCartFixture(t, nil)
		id := uuid.New()
		f.catalog.EXPECT().FindSandwich(gomock.Any(), id).Return(nil, notFound("sandwich not found"))

		_, err := f.sut.AddSandwich(ctx, "session-1", id)

		assert.True(t, errs.Is(err, errs.ErrSandwichNotFound))
	})

	t.Run("異常系: カタログの障害", func(t *testing.T) {
		f := newCartFixture(t, nil)
		id := uuid.New()
		f.catalog.EXPECT().FindSandwich(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("failed to find sandwich", errors.New("connection reset")))

		_, err := f.sut.AddSandwich(ctx, "session-1", id)

		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}

func TestCartCommands_AddCustom(t *testing.T) {
	ctx := context.Background()
	bread := ingredient("Baguette", catalog.TypeBread, "2.00")
	protein := ingredient("Poulet", catalog.TypeProtein, "3.50")
	salad := ingredient("Salade", catalog.TypeVeggie, "0.50")
	tomato := ingredient("Tomate", catalog.TypeVeggie, "0.50")
	mayo := ingredient("Mayonnaise", catalog.TypeSauce, "0.00")

	t.Run("正常系: 選択から独自サンドイッチを組み立てる", func(t *testing.T) {
		f := newCartFixture(t, nil)
		f.opens()
		f.catalog.EXPECT().FindIngredientsByIDs(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ids []uuid.UUID) ([]*catalog.Ingredient, error) {
				assert.Equal(t, []uuid.UUID{bread.ID, protein.ID, salad.ID, tomato.ID, mayo.ID}, ids)
				return []*catalog.Ingredient{bread, protein, salad, tomato, mayo}, nil
			})

		v, err := f.sut.AddCustom(ctx, "session-1", commands.CustomSelection{
			Bread:   bread.ID,
			Protein: protein.ID,
			// a repeated id must not toggle the veggie back off
			Veggies: []uuid.UUID{salad.ID, tomato.ID, salad.ID},
			Sauces:  []uuid.UUID{mayo.ID},
		})

		require.NoError(t, err)
		require.Len(t, v.Lines, 1)
		line := v.Lines[0]
		assert.True(t, strings.HasPrefix(line.ID, builder.CustomPrefix))
		assert.Equal(t, builder.CustomName, line.Name)
		assert.True(t, line.IsCustom)
		assert.Equal(t, "Baguette avec Poulet, Salade, Tomate et Mayonnaise", line.Description)
		assert.True(t, line.Price.Equal(decimal.RequireFromString("6.50")))
		assert.Len(t, line.Ingredients, 5)
	})

	t.Run("正常系: 同じ選択でも別の行になる", func(t *testing.T) {
		f := newCartFixture(t, nil)
		f.opens()
		f.catalog.EXPECT().FindIngredientsByIDs(gomock.Any(), gomock.Any()).
			Return([]*catalog.Ingredient{bread, protein, salad}, nil).Times(2)
		sel := commands.CustomSelection{Bread: bread.ID, Protein: protein.ID, Veggies: []uuid.UUID{salad.ID}}

		_, err := f.sut.AddCustom(ctx, "session-1", sel)
		require.NoError(t, err)
		v, err := f.sut.AddCustom(ctx, "session-1", sel)

		require.NoError(t, err)
		assert.Len(t, v.Lines, 2)
	})

	t.Run("異常系: 存在しない具材", func(t *testing.T) {
		f := newCartFixture(t, nil)
		missing := uuid.New()
		f.catalog.EXPECT().FindIngredientsByIDs(gomock.Any(), gomock.Any()).
			Return([]*catalog.Ingredient{bread, protein}, nil)

		_, err := f.sut.AddCustom(ctx, "session-1", commands.CustomSelection{
			Bread: bread.ID, Protein: protein.ID, Veggies: []uuid.UUID{missing},
		})

		assert.True(t, errs.Is(err, errs.ErrIngredientNotFound))
		assert.Contains(t, err.Error(), missing.String())
	})

	t.Run("異常系: 手順に合わない種類の具材", func(t *testing.T) {
		f := newCartFixture(t, nil)
		f.catalog.EXPECT().FindIngredientsByIDs(gomock.Any(), gomock.Any()).
			Return([]*catalog.Ingredient{bread, salad}, nil)

		_, err := f.sut.AddCustom(ctx, "session-1", commands.CustomSelection{
			Bread: bread.ID, Protein: salad.ID, Veggies: []uuid.UUID{salad.ID},
		})

		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		assert.True(t, errs.Is(err, builder.ErrWrongStep))
	})

	t.Run("異常系: 必須の手順が欠けている", func(t *testing.T) {
		cases := map[string]struct {
			sel  commands.CustomSelection
			want error
		}{
			"パンなし": {commands.CustomSelection{Protein: protein.ID, Veggies: []uuid.UUID{salad.ID}}, builder.ErrBreadRequired},
			"具材なし": {commands.CustomSelection{Bread: bread.ID, Veggies: []uuid.UUID{salad.ID}}, builder.ErrProteinRequired},
			"野菜なし": {commands.CustomSelection{Bread: bread.ID, Protein: protein.ID}, builder.ErrVeggieRequired},
		}
		for name, tc := range cases {
			t.Run(name, func(t *testing.T) {
				f := newCartFixture(t, nil)
				f.catalog.EXPECT().FindIngredientsByIDs(gomock.Any(), gomock.Any()).
					Return([]*catalog.Ingredient{bread, protein, salad}, nil)

				_, err := f.sut.AddCustom(ctx, "session-1", tc.sel)

				assert.True(t, errs.Is(err, errs.ErrDomainValidation))
				assert.True(t, errs.Is(err, tc.want))
			})
		}
	})
}

func TestCartCommands_Lines(t *testing.T) {
	ctx := context.Background()
	s := testbuilder.NewSandwichBuilder().BuildDomain()

	seeded := func(t *testing.T) *cartFixture {
		f := newCartFixture(t, nil)
		f.opens()
		_, err := f.engine.AddItem(ctx, s.CartItem())
		require.NoError(t, err)
		return f
	}

	t.Run("正常系: 数量を変更する", func(t *testing.T) {
		f := seeded(t)

		v, err := f.sut.UpdateQuantity(ctx, "session-1", s.ID.String(), 3)

		require.NoError(t, err)
		assert.Equal(t, 3, v.ItemCount)
		assert.True(t, v.Totals.Total.Equal(decimal.RequireFromString("25.50")))
	})

	t.Run("異常系: 数量0は拒否し行を残す", func(t *testing.T) {
		f := seeded(t)

		_, err := f.sut.UpdateQuantity(ctx, "session-1", s.ID.String(), 0)

		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		assert.True(t, errs.Is(err, cartdomain.ErrInvalidQuantity))
		assert.Len(t, f.engine.Snapshot().Lines, 1)
	})

	t.Run("正常系: 未知のIDの削除は何もしない", func(t *testing.T) {
		f := seeded(t)

		v, err := f.sut.RemoveItem(ctx, "session-1", "unknown")

		require.NoError(t, err)
		assert.Len(t, v.Lines, 1)
	})

	t.Run("正常系: 行を削除する", func(t *testing.T) {
		f := seeded(t)

		v, err := f.sut.RemoveItem(ctx, "session-1", s.ID.String())

		require.NoError(t, err)
		assert.Empty(t, v.Lines)
	})

	t.Run("正常系: カートを空にしプロモコードも外す", func(t *testing.T) {
		f := newCartFixture(t, promoTable{"NOEL2025": testbuilder.NewPromoCodeBuilder().BuildDomain()})
		f.opens()
		_, err := f.engine.AddItem(ctx, s.CartItem())
		require.NoError(t, err)
		_, err = f.engine.ApplyPromoCode(ctx, "NOEL2025")
		require.NoError(t, err)

		v, err := f.sut.Clear(ctx, "session-1")

		require.NoError(t, err)
		assert.Empty(t, v.Lines)
		assert.Empty(t, v.PromoCode)
		assert.False(t, v.AddressLocked)
	})
}

func TestCartCommands_PromoCode(t *testing.T) {
	ctx := context.Background()
	code := testbuilder.NewPromoCodeBuilder().BuildDomain()
	s := testbuilder.NewSandwichBuilder().BuildDomain()

	t.Run("正常系: 割引と配送先の固定を反映する", func(t *testing.T) {
		f := newCartFixture(t, promoTable{code.Code: code})
		f.opens()
		_, err := f.engine.AddItem(ctx, s.CartItem())
		require.NoError(t, err)

		res, err := f.sut.ApplyPromoCode(ctx, "session-1", "NOEL2025")

		require.NoError(t, err)
		assert.True(t, res.Applied)
		assert.Equal(t, "NOEL2025", res.View.PromoCode)
		assert.True(t, res.View.AddressLocked)
		assert.Equal(t, code.DeliveryAddress, res.View.Address)
		// 8.50 + 2.50 - 3.00
		assert.True(t, res.View.Totals.Total.Equal(decimal.RequireFromString("8.00")))
	})

	t.Run("正常系: 大文字小文字は区別する", func(t *testing.T) {
		f := newCartFixture(t, promoTable{code.Code: code})
		f.opens()

		res, err := f.sut.ApplyPromoCode(ctx, "session-1", "noel2025")

		require.NoError(t, err)
		assert.False(t, res.Applied)
		assert.Empty(t, res.View.PromoCode)
	})

	t.Run("正常系: 無効なコードは適用しない", func(t *testing.T) {
		inactive := testbuilder.NewPromoCodeBuilder().AsInactive().BuildDomain()
		f := newCartFixture(t, promoTable{inactive.Code: inactive})
		f.opens()

		res, err := f.sut.ApplyPromoCode(ctx, "session-1", inactive.Code)

		require.NoError(t, err)
		assert.False(t, res.Applied)
	})

	t.Run("正常系: コードを外す", func(t *testing.T) {
		f := newCartFixture(t, promoTable{code.Code: code})
		f.opens()
		_, err := f.engine.ApplyPromoCode(ctx, code.Code)
		require.NoError(t, err)

		v, err := f.sut.RemovePromoCode(ctx, "session-1")

		require.NoError(t, err)
		assert.Empty(t, v.PromoCode)
		assert.Equal(t, promo.Address{}, v.Address)
		_, persisted := f.store.values[cart.PromoKey]
		assert.False(t, persisted)
	})

	t.Run("異常系: セッションを開けない", func(t *testing.T) {
		f := newCartFixture(t, nil)
		f.sessions.EXPECT().Open(gomock.Any(), gomock.Any()).Return(nil, cart.ErrInvalidSession)

		res, err := f.sut.ApplyPromoCode(ctx, "", "NOEL2025")

		assert.ErrorIs(t, err, cart.ErrInvalidSession)
		assert.Nil(t, res)
	})
}
