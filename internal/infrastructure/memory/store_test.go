package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/lionscafe/storefront/internal/core/domain"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestStore(opts ...Option) *Store {
	return NewStore(append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)...)
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

func TestStore_CreateUser_AppliesDefaults(t *testing.T) {
	s := newTestStore()
	ref := "cus_should_be_dropped"

	u, err := s.CreateUser(context.Background(), &domain.User{
		Email:                    "ada@example.com",
		Username:                 "ada",
		ExternalAuthID:           "fb-ada",
		PaymentCustomerReference: &ref,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if u.ID == "" {
		t.Error("expected generated id")
	}
	if u.PaymentCustomerReference != nil {
		t.Errorf("payment customer reference must start empty, got %v", *u.PaymentCustomerReference)
	}
	if !u.CreatedAt.Equal(fixedNow) {
		t.Errorf("CreatedAt = %v, want %v", u.CreatedAt, fixedNow)
	}
}

func TestStore_CreateUser_UniqueEmailAndExternalID(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	if _, err := s.CreateUser(ctx, &domain.User{Email: "a@example.com", ExternalAuthID: "uid-1"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := s.CreateUser(ctx, &domain.User{Email: "a@example.com"}); !errors.Is(err, domain.ErrUserExists) {
		t.Errorf("duplicate email: expected ErrUserExists, got %v", err)
	}
	if _, err := s.CreateUser(ctx, &domain.User{Email: "b@example.com", ExternalAuthID: "uid-1"}); !errors.Is(err, domain.ErrUserExists) {
		t.Errorf("duplicate external id: expected ErrUserExists, got %v", err)
	}
	// Users without an external id never collide on it.
	if _, err := s.CreateUser(ctx, &domain.User{Email: "c@example.com"}); err != nil {
		t.Errorf("second user without external id: %v", err)
	}
}

func TestStore_UserSecondaryLookups(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	created, _ := s.CreateUser(ctx, &domain.User{Email: "grace@example.com", Username: "grace", ExternalAuthID: "fb-grace"})

	byEmail, err := s.GetUserByEmail(ctx, "grace@example.com")
	if err != nil || byEmail.ID != created.ID {
		t.Fatalf("GetUserByEmail: %+v %v", byEmail, err)
	}
	byExt, err := s.GetUserByExternalAuthID(ctx, "fb-grace")
	if err != nil || byExt.ID != created.ID {
		t.Fatalf("GetUserByExternalAuthID: %+v %v", byExt, err)
	}

	if _, err := s.GetUserByEmail(ctx, "nobody@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := s.GetUserByExternalAuthID(ctx, ""); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("empty external id must not match, got %v", err)
	}
}

func TestStore_UpdateUserPaymentCustomerReference(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	u, _ := s.CreateUser(ctx, &domain.User{Email: "x@example.com"})

	updated, err := s.UpdateUserPaymentCustomerReference(ctx, u.ID, "cus_123")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.PaymentCustomerReference == nil || *updated.PaymentCustomerReference != "cus_123" {
		t.Fatalf("reference not stored: %+v", updated)
	}

	if _, err := s.UpdateUserPaymentCustomerReference(ctx, "missing", "cus_1"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Menu
// ---------------------------------------------------------------------------

func TestStore_SeededMenu(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	all, _ := s.ListMenuItems(ctx)
	if len(all) != 6 {
		t.Fatalf("expected 6 seeded items, got %d", len(all))
	}
	for i, want := range []string{"1", "2", "3", "4", "5", "6"} {
		if all[i].ID != want {
			t.Errorf("item %d: id %q, want %q", i, all[i].ID, want)
		}
	}

	bakery, _ := s.GetMenuItemsByCategory(ctx, domain.CategoryBakery)
	if len(bakery) != 3 {
		t.Fatalf("expected 3 bakery items, got %d", len(bakery))
	}
	for _, m := range bakery {
		if m.Category != domain.CategoryBakery {
			t.Errorf("item %s has category %q", m.ID, m.Category)
		}
	}

	none, _ := s.GetMenuItemsByCategory(ctx, "desserts")
	if len(none) != 0 {
		t.Errorf("expected no items for unknown category, got %d", len(none))
	}
}

func TestStore_WithoutSeed(t *testing.T) {
	s := newTestStore(WithoutSeed())
	all, _ := s.ListMenuItems(context.Background())
	if len(all) != 0 {
		t.Fatalf("expected empty menu, got %d items", len(all))
	}
}

func TestStore_UpdateMenuItem_Partial(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	price := domain.MustMoney("4.75")

	updated, err := s.UpdateMenuItem(ctx, "1", domain.MenuItemPatch{Price: &price})
	if err != nil {
		t.Fatalf("UpdateMenuItem: %v", err)
	}
	if updated.Price.String() != "4.75" {
		t.Errorf("price = %s, want 4.75", updated.Price)
	}
	if updated.Name != "Artisan Croissants" || updated.Category != domain.CategoryBakery {
		t.Errorf("unpatched fields changed: %+v", updated)
	}

	if _, err := s.UpdateMenuItem(ctx, "404", domain.MenuItemPatch{}); !errors.Is(err, domain.ErrMenuItemNotFound) {
		t.Errorf("expected ErrMenuItemNotFound, got %v", err)
	}
}

func TestStore_MenuItemsAreCopies(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	item, _ := s.GetMenuItem(ctx, "2")
	item.Allergens[0] = "mutated"
	item.Name = "mutated"

	again, _ := s.GetMenuItem(ctx, "2")
	if again.Name != "Signature Latte" || again.Allergens[0] != "dairy" {
		t.Fatalf("store record was mutated through a returned copy: %+v", again)
	}
}

func TestStore_CreateMenuItem(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	created, err := s.CreateMenuItem(ctx, &domain.MenuItem{Name: "Mocha", Price: domain.MustMoney("5.50"), Category: domain.CategoryCoffee})
	if err != nil {
		t.Fatalf("CreateMenuItem: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	coffee, _ := s.GetMenuItemsByCategory(ctx, domain.CategoryCoffee)
	if len(coffee) != 2 {
		t.Errorf("expected 2 coffee items, got %d", len(coffee))
	}
}

// ---------------------------------------------------------------------------
// Orders
// ---------------------------------------------------------------------------

func sampleOrder(userID string) *domain.Order {
	return &domain.Order{
		UserID:    userID,
		Items:     []domain.OrderItem{{ItemID: "1", Quantity: 2, Price: domain.MustMoney("4.50")}},
		Total:     domain.MustMoney("9.00"),
		OrderType: domain.OrderTypePickup,
	}
}

func TestStore_CreateOrder_Defaults(t *testing.T) {
	s := newTestStore()

	o, err := s.CreateOrder(context.Background(), sampleOrder("u1"))
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if o.ID == "" {
		t.Error("expected generated id")
	}
	if o.Status != domain.OrderPending {
		t.Errorf("status = %q, want pending", o.Status)
	}
	if !o.CreatedAt.Equal(fixedNow) {
		t.Errorf("CreatedAt = %v, want %v", o.CreatedAt, fixedNow)
	}
	if got := o.EstimatedReady.Sub(o.CreatedAt); got != 30*time.Minute {
		t.Errorf("EstimatedReady - CreatedAt = %v, want 30m", got)
	}
	if o.PaymentReference != nil {
		t.Error("payment reference must start empty")
	}
}

func TestStore_OrderItemsAreSnapshots(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	in := sampleOrder("u1")

	o, _ := s.CreateOrder(ctx, in)
	in.Items[0].Quantity = 99

	stored, _ := s.GetOrder(ctx, o.ID)
	if stored.Items[0].Quantity != 2 {
		t.Fatalf("stored order changed through the caller's slice: %+v", stored.Items)
	}
}

func TestStore_UpdateOrderStatus_KeepsOtherFields(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	o, _ := s.CreateOrder(ctx, sampleOrder("u1"))

	updated, err := s.UpdateOrderStatus(ctx, o.ID, domain.OrderConfirmed)
	if err != nil {
		t.Fatalf("UpdateOrderStatus: %v", err)
	}
	if updated.Status != domain.OrderConfirmed {
		t.Fatalf("status = %q, want confirmed", updated.Status)
	}

	before := *o
	before.Status = domain.OrderConfirmed
	if updated.ID != before.ID || updated.UserID != before.UserID || updated.Total.String() != before.Total.String() ||
		updated.OrderType != before.OrderType || !updated.CreatedAt.Equal(before.CreatedAt) ||
		!updated.EstimatedReady.Equal(before.EstimatedReady) || len(updated.Items) != len(before.Items) ||
		updated.PaymentReference != nil || updated.Notes != before.Notes {
		t.Fatalf("fields other than status changed:\nbefore %+v\nafter  %+v", before, updated)
	}
}

func TestStore_UpdateOrder_NotFound(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	if _, err := s.UpdateOrderStatus(ctx, "missing", domain.OrderReady); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Errorf("UpdateOrderStatus: expected ErrOrderNotFound, got %v", err)
	}
	if _, err := s.UpdateOrderPaymentReference(ctx, "missing", "pi_1"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Errorf("UpdateOrderPaymentReference: expected ErrOrderNotFound, got %v", err)
	}
	if _, err := s.GetOrder(ctx, "missing"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Errorf("GetOrder: expected ErrOrderNotFound, got %v", err)
	}
}

func TestStore_UpdateOrderPaymentReference(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	o, _ := s.CreateOrder(ctx, sampleOrder("u1"))

	updated, err := s.UpdateOrderPaymentReference(ctx, o.ID, "pi_test123")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.PaymentReference == nil || *updated.PaymentReference != "pi_test123" {
		t.Fatalf("reference not set: %+v", updated)
	}
	if updated.Status != domain.OrderPending {
		t.Errorf("status changed to %q", updated.Status)
	}
}

func TestStore_GetOrdersByUser(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	a1, _ := s.CreateOrder(ctx, sampleOrder("alice"))
	_, _ = s.CreateOrder(ctx, sampleOrder("bob"))
	a2, _ := s.CreateOrder(ctx, sampleOrder("alice"))

	orders, _ := s.GetOrdersByUser(ctx, "alice")
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders for alice, got %d", len(orders))
	}
	got := map[string]bool{orders[0].ID: true, orders[1].ID: true}
	if !got[a1.ID] || !got[a2.ID] {
		t.Errorf("unexpected orders: %v", got)
	}

	empty, _ := s.GetOrdersByUser(ctx, "nobody")
	if len(empty) != 0 {
		t.Errorf("expected no orders, got %d", len(empty))
	}
}

// ---------------------------------------------------------------------------
// Reservations
// ---------------------------------------------------------------------------

func TestStore_CreateReservation_DefaultStatus(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	r, err := s.CreateReservation(ctx, &domain.Reservation{UserID: "u1", Date: fixedNow.Add(48 * time.Hour), PartySize: 4})
	if err != nil {
		t.Fatalf("CreateReservation: %v", err)
	}
	if r.Status != domain.ReservationConfirmed {
		t.Errorf("status = %q, want confirmed", r.Status)
	}
	if !r.CreatedAt.Equal(fixedNow) {
		t.Errorf("CreatedAt = %v", r.CreatedAt)
	}

	explicit, _ := s.CreateReservation(ctx, &domain.Reservation{UserID: "u1", PartySize: 2, Status: domain.ReservationCancelled})
	if explicit.Status != domain.ReservationCancelled {
		t.Errorf("explicit status overwritten: %q", explicit.Status)
	}

	list, _ := s.GetReservationsByUser(ctx, "u1")
	if len(list) != 2 {
		t.Errorf("expected 2 reservations, got %d", len(list))
	}
}

func TestStore_UpdateReservationStatus(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	r, _ := s.CreateReservation(ctx, &domain.Reservation{UserID: "u1", PartySize: 2})

	updated, err := s.UpdateReservationStatus(ctx, r.ID, domain.ReservationCompleted)
	if err != nil || updated.Status != domain.ReservationCompleted {
		t.Fatalf("update: %+v %v", updated, err)
	}
	if _, err := s.UpdateReservationStatus(ctx, "missing", domain.ReservationCancelled); !errors.Is(err, domain.ErrReservationNotFound) {
		t.Errorf("expected ErrReservationNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Subscriptions & concurrency
// ---------------------------------------------------------------------------

func TestStore_SaveSubscription_UpsertsByEndpoint(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	first, _ := s.SaveSubscription(ctx, &domain.PushSubscription{Endpoint: "https://push.example/abc", Keys: domain.SubscriptionKeys{Auth: "a1"}})
	second, _ := s.SaveSubscription(ctx, &domain.PushSubscription{Endpoint: "https://push.example/abc", Keys: domain.SubscriptionKeys{Auth: "a2"}})

	if first.ID == second.ID {
		t.Error("expected a fresh id on re-subscribe")
	}
	if len(s.subscriptions) != 1 {
		t.Fatalf("expected one subscription per endpoint, got %d", len(s.subscriptions))
	}
	if s.subscriptions["https://push.example/abc"].Keys.Auth != "a2" {
		t.Error("latest keys must win")
	}
}

func TestStore_ConcurrentWrites(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o, err := s.CreateOrder(ctx, sampleOrder("load"))
			if err != nil {
				t.Errorf("CreateOrder: %v", err)
				return
			}
			if _, err := s.UpdateOrderStatus(ctx, o.ID, domain.OrderPreparing); err != nil {
				t.Errorf("UpdateOrderStatus: %v", err)
			}
		}()
	}
	wg.Wait()

	orders, _ := s.GetOrdersByUser(ctx, "load")
	if len(orders) != 50 {
		t.Fatalf("expected 50 orders, got %d", len(orders))
	}
}
