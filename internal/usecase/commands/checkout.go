package commands

import (
	"context"
	"log/slog"

	"sandwich-storefront/internal/domain/order"
)

type CheckoutCommands interface {
	// SubmitOrder hands off the cart and announces the order; a failed
	// announcement does not fail the submission.
	SubmitOrder(ctx context.Context, sessionID string, info order.CustomerInfo) (*order.Details, error)
}

type checkoutCommandsImpl struct {
	sessions  SessionOpener
	publisher OrderPublisher
	logger    *slog.Logger
}

func NewCheckoutCommands(sessions SessionOpener, publisher OrderPublisher, logger *slog.Logger) CheckoutCommands {
	return &checkoutCommandsImpl{sessions: sessions, publisher: publisher, logger: logger}
}

func (c *checkoutCommandsImpl) SubmitOrder(ctx context.Context, sessionID string, info order.CustomerInfo) (*order.Details, error) {
	e, err := c.sessions.Open(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	details, err := e.SubmitOrder(ctx, info)
	if err != nil {
		return nil, err
	}
	if err := c.publisher.PublishOrderSubmitted(context.WithoutCancel(ctx), details); err != nil {
		c.logger.ErrorContext(ctx, "failed to publish order submitted event",
			"order_id", details.ID.String(), "error", err.Error())
	}
	return details, nil
}
