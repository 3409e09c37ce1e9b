// Package memory is the process-local data store. One Store is built at
// startup and handed to every service through the ports interfaces; nothing
// survives a restart except the seeded menu.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lionscafe/storefront/internal/core/domain"
)

// Store keeps every entity in maps keyed by id, plus secondary indices that
// are maintained on each write.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	users         map[string]*domain.User
	menuItems     map[string]*domain.MenuItem
	orders        map[string]*domain.Order
	reservations  map[string]*domain.Reservation
	subscriptions map[string]*domain.PushSubscription // keyed by endpoint

	userByEmail        map[string]string
	userByExternalAuth map[string]string
	ordersByUser       map[string][]string
	reservationsByUser map[string][]string
}

// Option customises a Store.
type Option func(*Store)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithoutSeed starts with an empty menu.
func WithoutSeed() Option {
	return func(s *Store) { s.menuItems = make(map[string]*domain.MenuItem) }
}

// NewStore returns a store with the reference menu already loaded.
func NewStore(opts ...Option) *Store {
	s := &Store{
		now:                func() time.Time { return time.Now().UTC() },
		users:              make(map[string]*domain.User),
		orders:             make(map[string]*domain.Order),
		reservations:       make(map[string]*domain.Reservation),
		subscriptions:      make(map[string]*domain.PushSubscription),
		userByEmail:        make(map[string]string),
		userByExternalAuth: make(map[string]string),
		ordersByUser:       make(map[string][]string),
		reservationsByUser: make(map[string][]string),
	}
	s.menuItems = seedMenu()
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newID() string {
	return uuid.NewString()
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

// CreateUser stores a new user. Email and external auth id are unique.
func (s *Store) CreateUser(_ context.Context, u *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.userByEmail[u.Email]; taken {
		return nil, domain.ErrUserExists
	}
	if u.ExternalAuthID != "" {
		if _, taken := s.userByExternalAuth[u.ExternalAuthID]; taken {
			return nil, domain.ErrUserExists
		}
	}

	rec := cloneUser(u)
	rec.ID = newID()
	rec.PaymentCustomerReference = nil
	rec.CreatedAt = s.now()

	s.users[rec.ID] = rec
	s.userByEmail[rec.Email] = rec.ID
	if rec.ExternalAuthID != "" {
		s.userByExternalAuth[rec.ExternalAuthID] = rec.ID
	}
	return cloneUser(rec), nil
}

func (s *Store) GetUser(_ context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	id, ok := s.userByEmail[email]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return s.GetUser(ctx, id)
}

func (s *Store) GetUserByExternalAuthID(ctx context.Context, externalAuthID string) (*domain.User, error) {
	if externalAuthID == "" {
		return nil, domain.ErrUserNotFound
	}
	s.mu.RLock()
	id, ok := s.userByExternalAuth[externalAuthID]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return s.GetUser(ctx, id)
}

func (s *Store) UpdateUserPaymentCustomerReference(_ context.Context, id, ref string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	updated := cloneUser(u)
	updated.PaymentCustomerReference = &ref
	s.users[id] = updated
	return cloneUser(updated), nil
}

// ---------------------------------------------------------------------------
// Menu
// ---------------------------------------------------------------------------

func (s *Store) ListMenuItems(_ context.Context) ([]*domain.MenuItem, error) {
	return s.filterMenu(func(*domain.MenuItem) bool { return true }), nil
}

func (s *Store) GetMenuItemsByCategory(_ context.Context, category string) ([]*domain.MenuItem, error) {
	return s.filterMenu(func(m *domain.MenuItem) bool { return m.Category == category }), nil
}

func (s *Store) filterMenu(keep func(*domain.MenuItem) bool) []*domain.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.MenuItem, 0, len(s.menuItems))
	for _, m := range s.menuItems {
		if keep(m) {
			out = append(out, cloneMenuItem(m))
		}
	}
	sort.Slice(out, func(i, j int) bool { return menuLess(out[i].ID, out[j].ID) })
	return out
}

func (s *Store) GetMenuItem(_ context.Context, id string) (*domain.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.menuItems[id]
	if !ok {
		return nil, domain.ErrMenuItemNotFound
	}
	return cloneMenuItem(m), nil
}

// CreateMenuItem keeps a caller-supplied id (seed data) and otherwise
// generates one.
func (s *Store) CreateMenuItem(_ context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := cloneMenuItem(item)
	if rec.ID == "" {
		rec.ID = newID()
	}
	s.menuItems[rec.ID] = rec
	return cloneMenuItem(rec), nil
}

func (s *Store) UpdateMenuItem(_ context.Context, id string, patch domain.MenuItemPatch) (*domain.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.menuItems[id]
	if !ok {
		return nil, domain.ErrMenuItemNotFound
	}
	updated := cloneMenuItem(m)
	patch.Apply(updated)
	updated.ID = id
	s.menuItems[id] = updated
	return cloneMenuItem(updated), nil
}

// ---------------------------------------------------------------------------
// Orders
// ---------------------------------------------------------------------------

// CreateOrder stores a new order, stamping createdAt and the estimated ready
// time PrepWindow later. An empty status defaults to pending.
func (s *Store) CreateOrder(_ context.Context, o *domain.Order) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := cloneOrder(o)
	rec.ID = newID()
	rec.CreatedAt = s.now()
	rec.EstimatedReady = rec.CreatedAt.Add(domain.PrepWindow)
	if rec.Status == "" {
		rec.Status = domain.OrderPending
	}

	s.orders[rec.ID] = rec
	s.ordersByUser[rec.UserID] = append(s.ordersByUser[rec.UserID], rec.ID)
	return cloneOrder(rec), nil
}

func (s *Store) GetOrder(_ context.Context, id string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return cloneOrder(o), nil
}

func (s *Store) GetOrdersByUser(_ context.Context, userID string) ([]*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.ordersByUser[userID]
	out := make([]*domain.Order, 0, len(ids))
	for _, id := range ids {
		out = append(out, cloneOrder(s.orders[id]))
	}
	return out, nil
}

func (s *Store) UpdateOrderStatus(_ context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	return s.updateOrder(id, func(o *domain.Order) { o.Status = status })
}

func (s *Store) UpdateOrderPaymentReference(_ context.Context, id, ref string) (*domain.Order, error) {
	return s.updateOrder(id, func(o *domain.Order) { o.PaymentReference = &ref })
}

func (s *Store) updateOrder(id string, mutate func(*domain.Order)) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	updated := cloneOrder(o)
	mutate(updated)
	s.orders[id] = updated
	return cloneOrder(updated), nil
}

// ---------------------------------------------------------------------------
// Reservations
// ---------------------------------------------------------------------------

// CreateReservation stores a new reservation; an empty status defaults to confirmed.
func (s *Store) CreateReservation(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := *r
	rec.ID = newID()
	rec.CreatedAt = s.now()
	if rec.Status == "" {
		rec.Status = domain.ReservationConfirmed
	}

	s.reservations[rec.ID] = &rec
	s.reservationsByUser[rec.UserID] = append(s.reservationsByUser[rec.UserID], rec.ID)
	out := rec
	return &out, nil
}

func (s *Store) GetReservation(_ context.Context, id string) (*domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.reservations[id]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	out := *r
	return &out, nil
}

func (s *Store) GetReservationsByUser(_ context.Context, userID string) ([]*domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.reservationsByUser[userID]
	out := make([]*domain.Reservation, 0, len(ids))
	for _, id := range ids {
		r := *s.reservations[id]
		out = append(out, &r)
	}
	return out, nil
}

func (s *Store) UpdateReservationStatus(_ context.Context, id string, status domain.ReservationStatus) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reservations[id]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	updated := *r
	updated.Status = status
	s.reservations[id] = &updated
	out := updated
	return &out, nil
}

// ---------------------------------------------------------------------------
// Push subscriptions
// ---------------------------------------------------------------------------

// SaveSubscription upserts by endpoint: re-subscribing the same browser
// replaces the earlier registration.
func (s *Store) SaveSubscription(_ context.Context, sub *domain.PushSubscription) (*domain.PushSubscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := *sub
	rec.ID = newID()
	rec.CreatedAt = s.now()
	s.subscriptions[rec.Endpoint] = &rec
	out := rec
	return &out, nil
}
