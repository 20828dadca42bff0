//go:build unit

package builder_test

import (
	"testing"

	"sandwich-storefront/internal/domain/builder"
	"sandwich-storefront/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ingredient(name string, typ catalog.IngredientType, price string) catalog.Ingredient {
	return catalog.Ingredient{ID: uuid.New(), Name: name, Type: typ, Price: decimal.RequireFromString(price)}
}

var (
	baguette = ingredient("Baguette", catalog.TypeBread, "2.00")
	complet  = ingredient("Pain complet", catalog.TypeBread, "2.50")
	poulet   = ingredient("Poulet", catalog.TypeProtein, "3.50")
	salade   = ingredient("Salade", catalog.TypeVeggie, "0.50")
	tomate   = ingredient("Tomate", catalog.TypeVeggie, "0.50")
	mayo     = ingredient("Mayonnaise", catalog.TypeSauce, "0.30")
)

func TestSteps(t *testing.T) {
	steps := builder.Steps()

	require.Len(t, steps, 4)
	assert.Equal(t, "Pain", steps[0].Title())
	assert.Equal(t, catalog.TypeVeggie, steps[2].IngredientType())
	assert.False(t, steps[0].Multi())
	assert.False(t, steps[1].Multi())
	assert.True(t, steps[2].Multi())
	assert.True(t, steps[3].Multi())
	assert.Empty(t, builder.Step(9).Title())
}

func TestSandwich_Select(t *testing.T) {
	t.Run("パンは選び直すと置き換わる", func(t *testing.T) {
		b := builder.New()
		require.NoError(t, b.Select(builder.StepBread, baguette))
		require.NoError(t, b.Select(builder.StepBread, complet))

		assert.Equal(t, "2.50", b.Price().StringFixed(2))
	})

	t.Run("野菜は2回選ぶと外れる", func(t *testing.T) {
		b := builder.New()
		require.NoError(t, b.Select(builder.StepVeggies, salade))
		assert.True(t, b.CanProceed(builder.StepVeggies))

		require.NoError(t, b.Select(builder.StepVeggies, salade))
		assert.False(t, b.CanProceed(builder.StepVeggies))
	})

	t.Run("違うステップの材料はエラー", func(t *testing.T) {
		b := builder.New()
		assert.ErrorIs(t, b.Select(builder.StepBread, poulet), builder.ErrWrongStep)
		assert.ErrorIs(t, b.Select(builder.Step(7), baguette), builder.ErrUnknownStep)
	})

	t.Run("ソースは任意", func(t *testing.T) {
		assert.True(t, builder.New().CanProceed(builder.StepSauces))
	})
}

func TestSandwich_Build(t *testing.T) {
	complete := func(t *testing.T) *builder.Sandwich {
		b := builder.New()
		require.NoError(t, b.Select(builder.StepBread, baguette))
		require.NoError(t, b.Select(builder.StepProtein, poulet))
		require.NoError(t, b.Select(builder.StepVeggies, salade))
		require.NoError(t, b.Select(builder.StepVeggies, tomate))
		return b
	}

	t.Run("材料の合計が価格になる", func(t *testing.T) {
		b := complete(t)
		require.NoError(t, b.Select(builder.StepSauces, mayo))

		item, err := b.Build("1700000000000")

		require.NoError(t, err)
		assert.Equal(t, "custom-1700000000000", item.ID)
		assert.Equal(t, builder.CustomName, item.Name)
		assert.True(t, item.IsCustom)
		assert.Equal(t, "6.80", item.Price.StringFixed(2))
		assert.Equal(t, "Baguette avec Poulet, Salade, Tomate et Mayonnaise", item.Description)
		require.Len(t, item.Ingredients, 5)
		assert.Equal(t, "bread", item.Ingredients[0].Type)
		assert.Equal(t, catalog.DefaultImage, item.Image)
	})

	t.Run("ソースなしの説明", func(t *testing.T) {
		item, err := complete(t).Build("x")

		require.NoError(t, err)
		assert.Equal(t, "Baguette avec Poulet, Salade, Tomate et sans sauce", item.Description)
	})

	t.Run("必須ステップが欠けるとエラー", func(t *testing.T) {
		noBread := builder.New()
		_, err := noBread.Build("x")
		assert.ErrorIs(t, err, builder.ErrBreadRequired)

		noProtein := builder.New()
		require.NoError(t, noProtein.Select(builder.StepBread, baguette))
		_, err = noProtein.Build("x")
		assert.ErrorIs(t, err, builder.ErrProteinRequired)

		noVeggie := builder.New()
		require.NoError(t, noVeggie.Select(builder.StepBread, baguette))
		require.NoError(t, noVeggie.Select(builder.StepProtein, poulet))
		_, err = noVeggie.Build("x")
		assert.ErrorIs(t, err, builder.ErrVeggieRequired)
	})
}
