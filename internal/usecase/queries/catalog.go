package queries

import (
	"context"

	"sandwich-storefront/internal/domain/builder"
	"sandwich-storefront/internal/domain/catalog"
	"sandwich-storefront/internal/infra"
	"sandwich-storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CatalogReadStore interface {
	ListSandwiches(ctx context.Context) ([]*catalog.Sandwich, error)
	FindSandwich(ctx context.Context, id uuid.UUID) (*catalog.Sandwich, error)
	ListIngredients(ctx context.Context, filter catalog.IngredientFilter) ([]*catalog.Ingredient, error)
	FindIngredientsByIDs(ctx context.Context, ids []uuid.UUID) ([]*catalog.Ingredient, error)
}

type CatalogQueries interface {
	ListSandwiches(ctx context.Context) ([]*SandwichView, error)
	GetSandwich(ctx context.Context, id uuid.UUID) (*SandwichView, error)
	ListIngredients(ctx context.Context, filter catalog.IngredientFilter) ([]*IngredientView, error)
	GetIngredient(ctx context.Context, id uuid.UUID) (*IngredientView, error)
	// BuilderOptions groups the ingredient catalog by builder step.
	BuilderOptions(ctx context.Context) ([]*BuilderStepView, error)
}

type catalogQueriesImpl struct {
	readStore CatalogReadStore
}

func NewCatalogQueries(readStore CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{readStore: readStore}
}

func (q *catalogQueriesImpl) ListSandwiches(ctx context.Context) ([]*SandwichView, error) {
	list, err := q.readStore.ListSandwiches(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	views := make([]*SandwichView, 0, len(list))
	for _, s := range list {
		v, err := ToSandwichView(s)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (q *catalogQueriesImpl) GetSandwich(ctx context.Context, id uuid.UUID) (*SandwichView, error) {
	s, err := q.readStore.FindSandwich(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrSandwichNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return ToSandwichView(s)
}

func (q *catalogQueriesImpl) ListIngredients(ctx context.Context, filter catalog.IngredientFilter) ([]*IngredientView, error) {
	list, err := q.readStore.ListIngredients(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return toIngredientViews(list)
}

func (q *catalogQueriesImpl) GetIngredient(ctx context.Context, id uuid.UUID) (*IngredientView, error) {
	list, err := q.readStore.FindIngredientsByIDs(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if len(list) == 0 {
		return nil, errs.Wrapf(errs.ErrIngredientNotFound, "ingredient %s", id)
	}
	return ToIngredientView(list[0])
}

func (q *catalogQueriesImpl) BuilderOptions(ctx context.Context) ([]*BuilderStepView, error) {
	list, err := q.readStore.ListIngredients(ctx, catalog.IngredientFilter{})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	all, err := toIngredientViews(list)
	if err != nil {
		return nil, err
	}

	steps := builder.Steps()
	views := make([]*BuilderStepView, 0, len(steps))
	for _, step := range steps {
		typ := step.IngredientType().String()
		v := &BuilderStepView{
			Step:     int(step) + 1,
			Title:    step.Title(),
			Type:     typ,
			Multi:    step.Multi(),
			Required: step != builder.StepSauces,
			Options:  []*IngredientView{},
		}
		for _, in := range all {
			if in.Type == typ {
				v.Options = append(v.Options, in)
			}
		}
		views = append(views, v)
	}
	return views, nil
}

func ToSandwichView(s *catalog.Sandwich) (*SandwichView, error) {
	var v SandwichView
	if err := copier.Copy(&v, s); err != nil {
		return nil, errs.Wrap(err, "failed to map sandwich")
	}
	return &v, nil
}

func toIngredientViews(list []*catalog.Ingredient) ([]*IngredientView, error) {
	views := make([]*IngredientView, 0, len(list))
	for _, in := range list {
		v, err := ToIngredientView(in)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func ToIngredientView(in *catalog.Ingredient) (*IngredientView, error) {
	var v IngredientView
	if err := copier.Copy(&v, in); err != nil {
		return nil, errs.Wrap(err, "failed to map ingredient")
	}
	// copier cannot derive the label
	v.Type = in.Type.String()
	v.TypeLabel = in.Type.Label()
	return &v, nil
}
