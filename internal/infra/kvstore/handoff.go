package kvstore

import (
	"context"
	"encoding/json"
	"time"

	"sandwich-storefront/internal/domain/order"
	"sandwich-storefront/internal/pkg/errs"
	"sandwich-storefront/internal/usecase/cart"

	"github.com/google/uuid"
)

const orderPrefix = "order"

// OrderHandoff keeps submitted order snapshots for the payment and
// confirmation steps until they expire.
type OrderHandoff struct {
	client *Client
	ttl    time.Duration
}

func NewOrderHandoff(client *Client, ttl time.Duration) *OrderHandoff {
	return &OrderHandoff{client: client, ttl: ttl}
}

func (h *OrderHandoff) Save(ctx context.Context, details *order.Details) error {
	payload, err := json.Marshal(details)
	if err != nil {
		return errs.Wrap(err, "failed to encode order snapshot")
	}
	if err := h.client.set(ctx, orderKey(details.ID), string(payload), h.ttl); err != nil {
		return errs.Wrap(err, "failed to store order snapshot")
	}
	return nil
}

// Find returns errs.ErrOrderNotFound for unknown or expired orders.
func (h *OrderHandoff) Find(ctx context.Context, id uuid.UUID) (*order.Details, error) {
	raw, ok, err := h.client.get(ctx, orderKey(id))
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to read order snapshot"), errs.ErrStoreUnavailable)
	}
	if !ok {
		return nil, errs.ErrOrderNotFound
	}
	var d order.Details
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return nil, errs.Wrap(err, "failed to decode order snapshot")
	}
	return &d, nil
}

func orderKey(id uuid.UUID) string {
	return buildKey(orderPrefix, id.String())
}

var _ cart.OrderHandoff = (*OrderHandoff)(nil)
