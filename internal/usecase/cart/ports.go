package cart

import (
	"context"
	"errors"

	"sandwich-storefront/internal/domain/order"
	"sandwich-storefront/internal/domain/promo"

	"github.com/shopspring/decimal"
)

// Keys of the two entries an engine persists.
const (
	CartKey  = "sandwich-cart"
	PromoKey = "promo-code"
)

var ErrPromoNotFound = errors.New("promo code not found")

// Store is a session-scoped key-value store.
type Store interface {
	// Get reports false when the key is absent.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// StoreFactory scopes a store to one shopper session.
type StoreFactory interface {
	ForSession(sessionID string) Store
}

// PromoLookup returns ErrPromoNotFound when no active record matches code exactly.
type PromoLookup interface {
	Lookup(ctx context.Context, code string) (*promo.PromoCode, error)
}

// OrderHandoff keeps submitted orders for the payment and confirmation steps.
type OrderHandoff interface {
	Save(ctx context.Context, details *order.Details) error
}

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

type Notification struct {
	Kind        NotificationKind `json:"kind"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
}

// Notifier is fire-and-forget.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

type PromoOutcome string

const (
	PromoApplied  PromoOutcome = "applied"
	PromoRejected PromoOutcome = "rejected"
	PromoFailed   PromoOutcome = "lookup_error"
	PromoStale    PromoOutcome = "stale"
)

type Observer interface {
	PromoResolved(outcome PromoOutcome)
	OrderSubmitted(total decimal.Decimal)
	SessionsActive(n int)
}

type NopObserver struct{}

func (NopObserver) PromoResolved(PromoOutcome)     {}
func (NopObserver) OrderSubmitted(decimal.Decimal) {}
func (NopObserver) SessionsActive(int)             {}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, Notification) {}
