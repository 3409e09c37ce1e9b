package handler

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lionscafe/storefront/internal/core/domain"
	"github.com/lionscafe/storefront/internal/core/ports"
)

var errBoom = errors.New("boom")

// newContext builds an echo context for a JSON request with the validator
// installed, the way the router configures it.
func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type stubUserService struct {
	registerFn func(ctx context.Context, in ports.RegisterUserInput) (*domain.User, bool, error)
	getFn      func(ctx context.Context, externalAuthID string) (*domain.User, error)
}

func (s *stubUserService) Register(ctx context.Context, in ports.RegisterUserInput) (*domain.User, bool, error) {
	return s.registerFn(ctx, in)
}

func (s *stubUserService) GetByExternalAuthID(ctx context.Context, externalAuthID string) (*domain.User, error) {
	return s.getFn(ctx, externalAuthID)
}

func (s *stubUserService) SetPaymentCustomerReference(context.Context, string, string) (*domain.User, error) {
	return nil, errBoom
}

type stubMenuService struct {
	listFn   func(ctx context.Context, category string) ([]*domain.MenuItem, error)
	getFn    func(ctx context.Context, id string) (*domain.MenuItem, error)
	createFn func(ctx context.Context, in ports.CreateMenuItemInput) (*domain.MenuItem, error)
	updateFn func(ctx context.Context, id string, patch domain.MenuItemPatch) (*domain.MenuItem, error)
}

func (s *stubMenuService) List(ctx context.Context, category string) ([]*domain.MenuItem, error) {
	return s.listFn(ctx, category)
}

func (s *stubMenuService) Get(ctx context.Context, id string) (*domain.MenuItem, error) {
	return s.getFn(ctx, id)
}

func (s *stubMenuService) Create(ctx context.Context, in ports.CreateMenuItemInput) (*domain.MenuItem, error) {
	return s.createFn(ctx, in)
}

func (s *stubMenuService) Update(ctx context.Context, id string, patch domain.MenuItemPatch) (*domain.MenuItem, error) {
	return s.updateFn(ctx, id, patch)
}

type stubOrderService struct {
	createFn func(ctx context.Context, in ports.CreateOrderInput) (*domain.Order, error)
	getFn    func(ctx context.Context, id string) (*domain.Order, error)
	listFn   func(ctx context.Context, userID string) ([]*domain.Order, error)
	statusFn func(ctx context.Context, id string, status domain.OrderStatus, source string) (*domain.Order, error)
}

func (s *stubOrderService) CreateOrder(ctx context.Context, in ports.CreateOrderInput) (*domain.Order, error) {
	return s.createFn(ctx, in)
}

func (s *stubOrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.getFn(ctx, id)
}

func (s *stubOrderService) ListByUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	return s.listFn(ctx, userID)
}

func (s *stubOrderService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus, source string) (*domain.Order, error) {
	return s.statusFn(ctx, id, status, source)
}

func (s *stubOrderService) AttachPaymentReference(context.Context, string, string) (*domain.Order, error) {
	return nil, errBoom
}

type stubReservationService struct {
	createFn func(ctx context.Context, in ports.CreateReservationInput) (*domain.Reservation, error)
	listFn   func(ctx context.Context, userID string) ([]*domain.Reservation, error)
	statusFn func(ctx context.Context, id string, status domain.ReservationStatus) (*domain.Reservation, error)
}

func (s *stubReservationService) CreateReservation(ctx context.Context, in ports.CreateReservationInput) (*domain.Reservation, error) {
	return s.createFn(ctx, in)
}

func (s *stubReservationService) ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error) {
	return s.listFn(ctx, userID)
}

func (s *stubReservationService) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) (*domain.Reservation, error) {
	return s.statusFn(ctx, id, status)
}

type stubPaymentService struct {
	intentFn func(ctx context.Context, orderID string, amount domain.Money) (string, error)
	eventFn  func(ctx context.Context, event domain.PaymentEvent) error
}

func (s *stubPaymentService) CreatePaymentIntent(ctx context.Context, orderID string, amount domain.Money) (string, error) {
	return s.intentFn(ctx, orderID, amount)
}

func (s *stubPaymentService) HandleProviderEvent(ctx context.Context, event domain.PaymentEvent) error {
	return s.eventFn(ctx, event)
}

type stubDecoder struct {
	decodeFn func(payload []byte, signatureHeader string) (domain.PaymentEvent, error)
}

func (s *stubDecoder) Decode(payload []byte, signatureHeader string) (domain.PaymentEvent, error) {
	return s.decodeFn(payload, signatureHeader)
}

type stubNotificationService struct {
	subscribeFn func(ctx context.Context, in ports.SubscribeInput) (*domain.PushSubscription, error)
}

func (s *stubNotificationService) Subscribe(ctx context.Context, in ports.SubscribeInput) (*domain.PushSubscription, error) {
	return s.subscribeFn(ctx, in)
}
