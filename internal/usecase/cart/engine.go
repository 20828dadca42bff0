package cart

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	cartdomain "sandwich-storefront/internal/domain/cart"
	"sandwich-storefront/internal/domain/order"
	"sandwich-storefront/internal/domain/promo"
	"sandwich-storefront/internal/pkg/clock"
	"sandwich-storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	msgAddedDescription = "Vous pouvez modifier votre commande dans le panier."
	msgCustomAdded      = "Sandwich personnalisé ajouté au panier!"
	msgPromoEmpty       = "Veuillez saisir un code promo"
	msgPromoInvalid     = "Code promo invalide ou expiré"
	msgPromoRemoved     = "Code promo supprimé"
	msgRedirectPayment  = "Redirection vers la plateforme de paiement..."
)

type Deps struct {
	Store    Store
	Lookup   PromoLookup
	Handoff  OrderHandoff
	Notifier Notifier
	Observer Observer
	Clock    clock.Clock
	Pricing  cartdomain.Pricing
	Logger   *slog.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Notifier == nil {
		d.Notifier = nopNotifier{}
	}
	if d.Observer == nil {
		d.Observer = NopObserver{}
	}
	if d.Clock == nil {
		d.Clock = clock.NewRealClock()
	}
	if d.Pricing == (cartdomain.Pricing{}) {
		d.Pricing = cartdomain.DefaultPricing()
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	return d
}

// Engine owns one shopper's cart and applied promo code. Mutations are
// serialized; the promo lookup runs without holding the lock.
type Engine struct {
	sessionID string
	deps      Deps

	mu           sync.Mutex
	cart         *cartdomain.Cart
	promoCode    string
	promoDetails *promo.PromoCode
	// promoSeq identifies the latest apply, remove or clear; lookups that
	// finish under an older value are discarded.
	promoSeq uint64
}

func NewEngine(sessionID string, deps Deps) *Engine {
	return &Engine{
		sessionID: sessionID,
		deps:      deps.withDefaults(),
		cart:      cartdomain.New(),
	}
}

func (e *Engine) SessionID() string {
	return e.sessionID
}

// Restore loads the persisted cart and re-resolves the persisted promo code,
// so a code whose record went inactive is dropped.
func (e *Engine) Restore(ctx context.Context) error {
	raw, ok, err := e.deps.Store.Get(ctx, CartKey)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "failed to read persisted cart"), errs.ErrStoreUnavailable)
	}
	code, _, err := e.deps.Store.Get(ctx, PromoKey)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "failed to read persisted promo code"), errs.ErrStoreUnavailable)
	}

	restored := cartdomain.New()
	if ok {
		restored, err = cartdomain.Restore(raw)
		if err != nil {
			e.log().Warn("discarding unreadable persisted cart", "error", err.Error())
		}
	}

	e.mu.Lock()
	e.cart = restored
	e.promoCode = ""
	e.promoDetails = nil
	e.mu.Unlock()

	if code == "" {
		return nil
	}
	_, err = e.ApplyPromoCode(ctx, code)
	return err
}

// AddItem increments the line with item's id or inserts a new line with quantity 1.
// The cart is left unchanged when the write fails.
func (e *Engine) AddItem(ctx context.Context, item cartdomain.Item) (cartdomain.Line, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.cart.Clone()
	if _, err := next.Add(item); err != nil {
		return cartdomain.Line{}, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := e.commitCart(ctx, next); err != nil {
		return cartdomain.Line{}, err
	}
	line, _ := e.cart.Line(item.ID)

	title := item.Name + " ajouté au panier!"
	if item.IsCustom {
		title = msgCustomAdded
	}
	e.deps.Notifier.Notify(ctx, Notification{Kind: NotificationSuccess, Title: title, Description: msgAddedDescription})
	return line, nil
}

// RemoveItem is a no-op for unknown ids.
func (e *Engine) RemoveItem(ctx context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.cart.Clone()
	if !next.Remove(id) {
		return nil
	}
	return e.commitCart(ctx, next)
}

// UpdateQuantity rejects quantities below 1 and ignores unknown ids.
func (e *Engine) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.cart.Clone()
	found, err := next.UpdateQuantity(id, quantity)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	if !found {
		return nil
	}
	return e.commitCart(ctx, next)
}

// Clear empties the lines and drops the promo code.
func (e *Engine) Clear(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.clearLocked(ctx)
}

// ApplyPromoCode resolves code exactly as given. A false result comes with an
// error notification; the error is reserved for store failures, which leave
// the previously applied promo in place.
func (e *Engine) ApplyPromoCode(ctx context.Context, code string) (bool, error) {
	if code == "" {
		e.mu.Lock()
		defer e.mu.Unlock()
		e.promoSeq++
		err := e.dropPromoLocked(ctx)
		e.deps.Notifier.Notify(ctx, Notification{Kind: NotificationError, Title: msgPromoEmpty})
		return false, err
	}

	e.mu.Lock()
	e.promoSeq++
	seq := e.promoSeq
	e.mu.Unlock()

	details, lookupErr := e.deps.Lookup.Lookup(ctx, code)

	e.mu.Lock()
	defer e.mu.Unlock()

	if seq != e.promoSeq {
		e.log().Debug("discarding stale promo lookup", "code", code)
		e.deps.Observer.PromoResolved(PromoStale)
		return false, nil
	}

	switch {
	case lookupErr != nil && !errors.Is(lookupErr, ErrPromoNotFound):
		e.log().Warn("promo lookup failed", "code", code, "error", lookupErr.Error())
		e.deps.Observer.PromoResolved(PromoFailed)
		return false, e.rejectPromoLocked(ctx)
	case lookupErr != nil, !details.Usable(), details.Code != code:
		e.deps.Observer.PromoResolved(PromoRejected)
		return false, e.rejectPromoLocked(ctx)
	}

	if err := e.deps.Store.Set(ctx, PromoKey, code); err != nil {
		e.deps.Observer.PromoResolved(PromoFailed)
		return false, errs.Mark(errs.Wrap(err, "failed to persist promo code"), errs.ErrStoreUnavailable)
	}
	resolved := *details
	e.promoCode = code
	e.promoDetails = &resolved
	e.deps.Observer.PromoResolved(PromoApplied)

	e.deps.Notifier.Notify(ctx, Notification{
		Kind:  NotificationSuccess,
		Title: "Code promo appliqué: " + resolved.Discount.String() + "€ de réduction",
	})
	return true, nil
}

// RemovePromoCode leaves the lines untouched. The removal is only announced
// when a promo was applied.
func (e *Engine) RemovePromoCode(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.promoSeq++
	applied := e.promoCode != ""
	if err := e.dropPromoLocked(ctx); err != nil {
		return err
	}
	if applied {
		e.deps.Notifier.Notify(ctx, Notification{Kind: NotificationSuccess, Title: msgPromoRemoved})
	}
	return nil
}

func (e *Engine) Subtotal() decimal.Decimal {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cart.Subtotal()
}

func (e *Engine) ShippingFee(subtotal decimal.Decimal) decimal.Decimal {
	return e.deps.Pricing.ShippingFeeFor(subtotal)
}

func (e *Engine) Total(subtotal, shippingFee, discount decimal.Decimal) decimal.Decimal {
	return cartdomain.Total(subtotal, shippingFee, discount)
}

// AddressLock reports the promo's delivery address while a promo is applied.
func (e *Engine) AddressLock() (promo.Address, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.addressLockLocked()
}

// DeliveryFields overrides the typed address with the locked one, if any.
func (e *Engine) DeliveryFields(typed order.CustomerInfo) order.CustomerInfo {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.deliveryFieldsLocked(typed)
}

// View is a consistent read of the engine state.
type View struct {
	Lines         []cartdomain.Line
	ItemCount     int
	Totals        cartdomain.Totals
	PromoCode     string
	Promo         *promo.PromoCode
	AddressLocked bool
	Address       promo.Address
}

func (e *Engine) Snapshot() View {
	e.mu.Lock()
	defer e.mu.Unlock()

	v := View{
		Lines:     e.cart.Lines(),
		ItemCount: e.cart.ItemCount(),
		PromoCode: e.promoCode,
	}
	v.Totals = e.deps.Pricing.Price(v.Lines, e.discountLocked())
	if e.promoDetails != nil {
		p := *e.promoDetails
		v.Promo = &p
	}
	v.Address, v.AddressLocked = e.addressLockLocked()
	return v
}

// SubmitOrder hands a snapshot of the cart to the order handoff and then
// clears the cart. Nothing is sent to a remote system here.
func (e *Engine) SubmitOrder(ctx context.Context, info order.CustomerInfo) (*order.Details, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cart.IsEmpty() {
		return nil, cartdomain.ErrEmptyCart
	}
	info = e.deliveryFieldsLocked(info)
	if err := info.Validate(); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	lines := e.cart.Lines()
	totals := e.deps.Pricing.Price(lines, e.discountLocked())
	details := order.NewDetails(e.sessionID, lines, info, totals, e.promoCode, e.deps.Clock.Now())

	if err := e.deps.Handoff.Save(ctx, details); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to hand off order"), errs.ErrStoreUnavailable)
	}
	e.deps.Observer.OrderSubmitted(details.Total)

	if err := e.clearLocked(ctx); err != nil {
		// the order is already handed off; the next Restore sees the stale cart
		e.log().Error("failed to clear cart after submission",
			"order_id", details.ID.String(), "error", err.Error())
		e.cart = cartdomain.New()
		e.promoCode = ""
		e.promoDetails = nil
	}
	e.deps.Notifier.Notify(ctx, Notification{Kind: NotificationSuccess, Title: msgRedirectPayment})
	return details, nil
}

func (e *Engine) clearLocked(ctx context.Context) error {
	e.promoSeq++
	cartErr := e.commitCart(ctx, cartdomain.New())
	promoErr := e.dropPromoLocked(ctx)
	if cartErr != nil {
		return cartErr
	}
	return promoErr
}

func (e *Engine) rejectPromoLocked(ctx context.Context) error {
	err := e.dropPromoLocked(ctx)
	e.deps.Notifier.Notify(ctx, Notification{Kind: NotificationError, Title: msgPromoInvalid})
	return err
}

// dropPromoLocked keeps the applied promo when the persisted code cannot be removed.
func (e *Engine) dropPromoLocked(ctx context.Context) error {
	if err := e.deps.Store.Remove(ctx, PromoKey); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to remove persisted promo code"), errs.ErrStoreUnavailable)
	}
	e.promoCode = ""
	e.promoDetails = nil
	return nil
}

// commitCart persists next and only then makes it the current cart.
func (e *Engine) commitCart(ctx context.Context, next *cartdomain.Cart) error {
	data, err := next.Marshal()
	if err != nil {
		return errs.Wrap(err, "failed to encode cart")
	}
	if err := e.deps.Store.Set(ctx, CartKey, data); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to persist cart"), errs.ErrStoreUnavailable)
	}
	e.cart = next
	return nil
}

func (e *Engine) discountLocked() decimal.Decimal {
	if e.promoDetails == nil {
		return decimal.Zero
	}
	return e.promoDetails.Discount
}

func (e *Engine) addressLockLocked() (promo.Address, bool) {
	if e.promoDetails == nil {
		return promo.Address{}, false
	}
	return e.promoDetails.DeliveryAddress, true
}

func (e *Engine) deliveryFieldsLocked(typed order.CustomerInfo) order.CustomerInfo {
	addr, locked := e.addressLockLocked()
	if !locked {
		return typed
	}
	typed.Address = addr.Street
	typed.City = addr.City
	typed.ZipCode = addr.Zipcode
	return typed
}

func (e *Engine) log() *slog.Logger {
	return e.deps.Logger.With("cart_session", e.sessionID)
}
