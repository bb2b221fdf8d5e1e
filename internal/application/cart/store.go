package cart

import (
	"context"

	"go.uber.org/zap"

	"github.com/kitchcrafter/storefront/internal/domain/cart"
	"github.com/kitchcrafter/storefront/internal/domain/shared/valueobject"
)

// Mutation names the cart operation that produced a snapshot, so the
// presentation layer can pick the matching transient notification.
type Mutation string

const (
	MutationRestore  Mutation = "RESTORE"
	MutationAdd      Mutation = "ADD"
	MutationRemove   Mutation = "REMOVE"
	MutationQuantity Mutation = "QUANTITY"
	MutationZone     Mutation = "ZONE"
	MutationClear    Mutation = "CLEAR"
)

// Snapshot is the derived cart view handed to observers after every
// mutation: the line items plus everything the UI renders from them.
type Snapshot struct {
	Items     []cart.LineItem
	UnitCount int64
	Zone      cart.Zone
	Subtotal  valueobject.Money
	Shipping  valueobject.Money
	Total     valueobject.Money
}

// Observer is the rendering collaborator. It is invoked synchronously
// after each mutation, never deferred or batched.
type Observer interface {
	CartUpdated(mutation Mutation, snapshot Snapshot)
}

// Store owns the cart for the lifetime of the session. Every mutation
// mirrors the full item list into the snapshot repository and then
// notifies observers. Mutations never fail from the caller's point of
// view: a storage hiccup is logged and the in-memory cart stays
// authoritative, matching the fire-and-forget local storage writes of
// the original widget.
type Store struct {
	cart      *cart.Cart
	repo      cart.SnapshotRepository
	rule      cart.ShippingRule
	zone      cart.Zone
	observers []Observer
	logger    *zap.Logger
}

// NewStore creates a store with an empty cart
func NewStore(repo cart.SnapshotRepository, rule cart.ShippingRule, log *zap.Logger) *Store {
	return &Store{
		cart:   cart.NewCart(),
		repo:   repo,
		rule:   rule,
		logger: log.Named("cart-store"),
	}
}

// Subscribe registers an observer for cart updates
func (s *Store) Subscribe(observer Observer) {
	s.observers = append(s.observers, observer)
}

// Restore rehydrates the cart from the persisted snapshot. A missing,
// corrupt, or unreadable snapshot yields an empty cart - startup never
// fails on storage contents.
func (s *Store) Restore(ctx context.Context) {
	items, err := s.repo.Load(ctx)
	if err != nil {
		s.logger.Warn("cart snapshot unavailable, starting empty", zap.Error(err))
		items = nil
	}
	s.cart = cart.Restore(items)
	s.notify(MutationRestore)
}

// Add puts one unit of the product into the cart
func (s *Store) Add(ctx context.Context, id, name string, unitPrice valueobject.Money) {
	s.cart.Add(id, name, unitPrice)
	s.persist(ctx)
	s.notify(MutationAdd)
}

// Remove deletes the line item with the given id
func (s *Store) Remove(ctx context.Context, id string) {
	s.cart.Remove(id)
	s.persist(ctx)
	s.notify(MutationRemove)
}

// SetQuantity sets the quantity for a line item; below one removes it
func (s *Store) SetQuantity(ctx context.Context, id string, quantity int64) {
	s.cart.SetQuantity(id, quantity)
	s.persist(ctx)
	s.notify(MutationQuantity)
}

// Clear empties the cart and persists the empty snapshot. Idempotent.
func (s *Store) Clear(ctx context.Context) {
	s.cart.Clear()
	s.persist(ctx)
	s.notify(MutationClear)
}

// SetZone records the shopper's destination selection, which feeds the
// shipping line of the derived totals. The zone is session state, not
// part of the persisted snapshot.
func (s *Store) SetZone(zone cart.Zone) {
	s.zone = zone
	s.notify(MutationZone)
}

// Items returns a copy of the current line items
func (s *Store) Items() []cart.LineItem {
	return s.cart.Items()
}

// IsEmpty returns true when the cart holds no line items
func (s *Store) IsEmpty() bool {
	return s.cart.IsEmpty()
}

// UnitCount returns the total units across all line items
func (s *Store) UnitCount() int64 {
	return s.cart.UnitCount()
}

// Subtotal returns the sum of all line totals
func (s *Store) Subtotal() valueobject.Money {
	return s.cart.Subtotal()
}

// QuoteShipping returns the flat fee for delivering to the given zone
func (s *Store) QuoteShipping(zone cart.Zone) valueobject.Money {
	return s.rule.FeeFor(zone)
}

// Shipping returns the fee for the currently selected zone
func (s *Store) Shipping() valueobject.Money {
	return s.rule.FeeFor(s.zone)
}

// Total returns subtotal plus shipping for the current zone selection
func (s *Store) Total() valueobject.Money {
	return s.Subtotal().Add(s.Shipping())
}

// Snapshot returns the current derived cart view
func (s *Store) Snapshot() Snapshot {
	subtotal := s.Subtotal()
	shipping := s.Shipping()
	return Snapshot{
		Items:     s.cart.Items(),
		UnitCount: s.cart.UnitCount(),
		Zone:      s.zone,
		Subtotal:  subtotal,
		Shipping:  shipping,
		Total:     subtotal.Add(shipping),
	}
}

func (s *Store) persist(ctx context.Context) {
	if err := s.repo.Save(ctx, s.cart.Items()); err != nil {
		s.logger.Error("failed to persist cart snapshot", zap.Error(err))
	}
}

func (s *Store) notify(mutation Mutation) {
	snapshot := s.Snapshot()
	for _, observer := range s.observers {
		observer.CartUpdated(mutation, snapshot)
	}
}
