//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"

	"sandwich-storefront/internal/domain/order"
	"sandwich-storefront/internal/domain/promo"
	"sandwich-storefront/internal/usecase/cart"
	"sandwich-storefront/internal/usecase/shared"
	sharedmock "sandwich-storefront/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

// txMocks runs every Within callback against one mocked transaction.
type txMocks struct {
	uow         *sharedmock.MockUnitOfWork
	tx          *sharedmock.MockTx
	sandwiches  *sharedmock.MockSandwichRepository
	ingredients *sharedmock.MockIngredientRepository
	promoCodes  *sharedmock.MockPromoCodeRepository
	users       *sharedmock.MockUserRepository
}

func newTxMocks(t *testing.T) *txMocks {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &txMocks{
		uow:         sharedmock.NewMockUnitOfWork(ctrl),
		tx:          sharedmock.NewMockTx(ctrl),
		sandwiches:  sharedmock.NewMockSandwichRepository(ctrl),
		ingredients: sharedmock.NewMockIngredientRepository(ctrl),
		promoCodes:  sharedmock.NewMockPromoCodeRepository(ctrl),
		users:       sharedmock.NewMockUserRepository(ctrl),
	}
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.tx.EXPECT().Sandwiches().Return(m.sandwiches).AnyTimes()
	m.tx.EXPECT().Ingredients().Return(m.ingredients).AnyTimes()
	m.tx.EXPECT().PromoCodes().Return(m.promoCodes).AnyTimes()
	m.tx.EXPECT().Users().Return(m.users).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	return m
}

type mapStore struct {
	mu     sync.Mutex
	values map[string]string
}

func (s *mapStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *mapStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *mapStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

type promoTable map[string]*promo.PromoCode

func (t promoTable) Lookup(_ context.Context, code string) (*promo.PromoCode, error) {
	p, ok := t[code]
	if !ok {
		return nil, cart.ErrPromoNotFound
	}
	return p, nil
}

type savedOrders struct {
	mu     sync.Mutex
	orders []*order.Details
}

func (s *savedOrders) Save(_ context.Context, d *order.Details) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, d)
	return nil
}

type engineFixture struct {
	engine  *cart.Engine
	store   *mapStore
	handoff *savedOrders
}

func newEngine(codes promoTable) *engineFixture {
	f := &engineFixture{
		store:   &mapStore{values: map[string]string{}},
		handoff: &savedOrders{},
	}
	f.engine = cart.NewEngine("session-1", cart.Deps{
		Store:   f.store,
		Lookup:  codes,
		Handoff: f.handoff,
	})
	return f
}
