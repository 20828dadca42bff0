package readstore

import (
	"context"

	"sandwich-storefront/internal/domain/catalog"
	"sandwich-storefront/internal/infra"
	"sandwich-storefront/internal/infra/converter"
	"sandwich-storefront/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	listSandwiches = `SELECT ` + converter.SandwichColumns + ` FROM sandwiches ORDER BY name`
	findSandwich   = `SELECT ` + converter.SandwichColumns + ` FROM sandwiches WHERE id = $1`
	// $1 type filter and $2 name search are both optional
	listIngredients = `SELECT ` + converter.IngredientColumns + ` FROM ingredients
WHERE ($1::text IS NULL OR type = $1)
  AND ($2::text = '' OR name ILIKE '%' || $2 || '%')
ORDER BY type, name`
	findIngredientsByIDs = `SELECT ` + converter.IngredientColumns + ` FROM ingredients WHERE id = ANY($1)`
)

type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(db db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: db}
}

func (r *CatalogReadStore) ListSandwiches(ctx context.Context) ([]*catalog.Sandwich, error) {
	rows, err := r.db.Query(ctx, listSandwiches)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sandwiches", err)
	}
	list, err := collect(rows, converter.ScanSandwich)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan sandwiches", err, infra.KindDBFailure)
	}
	return list, nil
}

func (r *CatalogReadStore) FindSandwich(ctx context.Context, id uuid.UUID) (*catalog.Sandwich, error) {
	s, err := converter.ScanSandwich(r.db.QueryRow(ctx, findSandwich, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find sandwich", err)
	}
	return s, nil
}

func (r *CatalogReadStore) ListIngredients(ctx context.Context, filter catalog.IngredientFilter) ([]*catalog.Ingredient, error) {
	var typ *string
	if filter.Type != nil {
		s := filter.Type.String()
		typ = &s
	}
	rows, err := r.db.Query(ctx, listIngredients, typ, filter.Search)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ingredients", err)
	}
	list, err := collect(rows, converter.ScanIngredient)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan ingredients", err, infra.KindDBFailure)
	}
	return list, nil
}

// FindIngredientsByIDs silently skips unknown ids; callers compare lengths.
func (r *CatalogReadStore) FindIngredientsByIDs(ctx context.Context, ids []uuid.UUID) ([]*catalog.Ingredient, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.db.Query(ctx, findIngredientsByIDs, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find ingredients", err)
	}
	list, err := collect(rows, converter.ScanIngredient)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan ingredients", err, infra.KindDBFailure)
	}
	return list, nil
}

func collect[T any](rows pgx.Rows, scan func(converter.Scanner) (*T, error)) ([]*T, error) {
	defer rows.Close()
	var out []*T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
