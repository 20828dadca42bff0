package repository

import (
	"context"

	"sandwich-storefront/internal/domain/catalog"
	"sandwich-storefront/internal/infra"
	"sandwich-storefront/internal/infra/converter"
	"sandwich-storefront/internal/infra/db"
	"sandwich-storefront/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	selectIngredientForUpdate = `SELECT ` + converter.IngredientColumns + ` FROM ingredients WHERE id = $1 FOR UPDATE`
	insertIngredient          = `INSERT INTO ingredients (id, name, price, type, image) VALUES ($1, $2, $3, $4, $5)`
	updateIngredient          = `UPDATE ingredients SET name = $2, price = $3, type = $4, image = $5, updated_at = now() WHERE id = $1`
	deleteIngredient          = `DELETE FROM ingredients WHERE id = $1`
)

type IngredientRepository struct{}

func NewIngredientRepository() *IngredientRepository {
	return &IngredientRepository{}
}

func (r *IngredientRepository) FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*catalog.Ingredient, error) {
	in, err := converter.ScanIngredient(tx.QueryRow(ctx, selectIngredientForUpdate, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find ingredient", err)
	}
	return in, nil
}

func (r *IngredientRepository) Create(ctx context.Context, tx db.DBTX, in *catalog.Ingredient) error {
	_, err := tx.Exec(ctx, insertIngredient,
		in.ID, in.Name, pgconv.DecimalToNumeric(in.Price), in.Type.String(), pgconv.OptionalText(in.Image))
	if err != nil {
		return infra.WrapRepoErr("failed to create ingredient", err)
	}
	return nil
}

func (r *IngredientRepository) Update(ctx context.Context, tx db.DBTX, in *catalog.Ingredient) error {
	tag, err := tx.Exec(ctx, updateIngredient,
		in.ID, in.Name, pgconv.DecimalToNumeric(in.Price), in.Type.String(), pgconv.OptionalText(in.Image))
	if err != nil {
		return infra.WrapRepoErr("failed to update ingredient", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("ingredient not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *IngredientRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteIngredient, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete ingredient", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("ingredient not found", nil, infra.KindNotFound)
	}
	return nil
}
