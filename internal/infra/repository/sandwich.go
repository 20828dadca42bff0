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
	selectSandwichForUpdate = `SELECT ` + converter.SandwichColumns + ` FROM sandwiches WHERE id = $1 FOR UPDATE`
	insertSandwich          = `INSERT INTO sandwiches (id, name, description, price, image) VALUES ($1, $2, $3, $4, $5)`
	updateSandwich          = `UPDATE sandwiches SET name = $2, description = $3, price = $4, image = $5, updated_at = now() WHERE id = $1`
	deleteSandwich          = `DELETE FROM sandwiches WHERE id = $1`
)

type SandwichRepository struct{}

func NewSandwichRepository() *SandwichRepository {
	return &SandwichRepository{}
}

func (r *SandwichRepository) FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*catalog.Sandwich, error) {
	s, err := converter.ScanSandwich(tx.QueryRow(ctx, selectSandwichForUpdate, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find sandwich", err)
	}
	return s, nil
}

func (r *SandwichRepository) Create(ctx context.Context, tx db.DBTX, s *catalog.Sandwich) error {
	_, err := tx.Exec(ctx, insertSandwich, s.ID, s.Name, s.Description, pgconv.DecimalToNumeric(s.Price), s.Image)
	if err != nil {
		return infra.WrapRepoErr("failed to create sandwich", err)
	}
	return nil
}

func (r *SandwichRepository) Update(ctx context.Context, tx db.DBTX, s *catalog.Sandwich) error {
	tag, err := tx.Exec(ctx, updateSandwich, s.ID, s.Name, s.Description, pgconv.DecimalToNumeric(s.Price), s.Image)
	if err != nil {
		return infra.WrapRepoErr("failed to update sandwich", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("sandwich not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SandwichRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteSandwich, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete sandwich", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("sandwich not found", nil, infra.KindNotFound)
	}
	return nil
}
