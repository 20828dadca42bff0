package queries

import (
	"context"
	"time"

	"sandwich-storefront/internal/domain/order"
	"sandwich-storefront/internal/pkg/clock"
	"sandwich-storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

const redirectConfirmation = "confirmation"

type OrderReader interface {
	// Find returns errs.ErrOrderNotFound for unknown or expired orders.
	Find(ctx context.Context, id uuid.UUID) (*order.Details, error)
}

type OrderQueriesConfig struct {
	PaymentStepInterval time.Duration
	DeliveryEstimate    time.Duration
}

// OrderQueries only shows an order to the cart session that submitted it.
type OrderQueries interface {
	Payment(ctx context.Context, sessionID string, id uuid.UUID) (*PaymentView, error)
	Confirmation(ctx context.Context, sessionID string, id uuid.UUID) (*order.Confirmation, error)
}

type orderQueriesImpl struct {
	reader OrderReader
	clock  clock.Clock
	cfg    OrderQueriesConfig
}

func NewOrderQueries(reader OrderReader, clk clock.Clock, cfg OrderQueriesConfig) OrderQueries {
	return &orderQueriesImpl{reader: reader, clock: clk, cfg: cfg}
}

func (q *orderQueriesImpl) Payment(ctx context.Context, sessionID string, id uuid.UUID) (*PaymentView, error) {
	d, err := q.find(ctx, sessionID, id)
	if err != nil {
		return nil, err
	}
	elapsed := q.clock.Now().Sub(d.OrderDate)
	v := &PaymentView{
		OrderID:     d.ID,
		OrderNumber: d.Number,
		Stage:       order.StageAt(elapsed, q.cfg.PaymentStepInterval),
		Progress:    order.Progress(elapsed, q.cfg.PaymentStepInterval),
		Amount:      d.Total,
	}
	if v.Stage == order.StageCompleted {
		v.Redirect = redirectConfirmation
	}
	return v, nil
}

func (q *orderQueriesImpl) Confirmation(ctx context.Context, sessionID string, id uuid.UUID) (*order.Confirmation, error) {
	d, err := q.find(ctx, sessionID, id)
	if err != nil {
		return nil, err
	}
	c := order.Confirm(d, q.cfg.DeliveryEstimate)
	return &c, nil
}

// find reports orders of other sessions as not found.
func (q *orderQueriesImpl) find(ctx context.Context, sessionID string, id uuid.UUID) (*order.Details, error) {
	d, err := q.reader.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if sessionID == "" || d.SessionID != sessionID {
		return nil, errs.ErrOrderNotFound
	}
	return d, nil
}
