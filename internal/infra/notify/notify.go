package notify

import (
	"context"
	"log/slog"
	"sync"

	"sandwich-storefront/internal/usecase/cart"
)

type collectorKey struct{}

// Collector gathers the notifications raised while serving one request.
type Collector struct {
	mu    sync.Mutex
	items []cart.Notification
}

func WithCollector(ctx context.Context) (context.Context, *Collector) {
	c := &Collector{}
	return context.WithValue(ctx, collectorKey{}, c), c
}

func FromContext(ctx context.Context) *Collector {
	c, _ := ctx.Value(collectorKey{}).(*Collector)
	return c
}

// Drain returns the collected notifications and resets the collector.
func (c *Collector) Drain() []cart.Notification {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.items
	c.items = nil
	return out
}

func (c *Collector) add(n cart.Notification) {
	c.mu.Lock()
	c.items = append(c.items, n)
	c.mu.Unlock()
}

// Notifier logs every notification and hands it to the request's collector, if any.
type Notifier struct {
	logger *slog.Logger
}

func NewNotifier(logger *slog.Logger) *Notifier {
	return &Notifier{logger: logger}
}

func (n *Notifier) Notify(ctx context.Context, note cart.Notification) {
	n.logger.DebugContext(ctx, "shopper notification", "kind", string(note.Kind), "title", note.Title)
	if c := FromContext(ctx); c != nil {
		c.add(note)
	}
}

var _ cart.Notifier = (*Notifier)(nil)
