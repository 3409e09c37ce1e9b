package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lionscafe/storefront/internal/api/middleware"
	"github.com/lionscafe/storefront/internal/core/domain"
	"github.com/lionscafe/storefront/internal/core/ports"
)

const orderBody = `{
	"userId": "u1",
	"items": [{"itemId": "1", "quantity": 2, "price": "3.50"}, {"itemId": "2", "quantity": 1, "price": 4.5}],
	"total": "11.50",
	"orderType": "pickup",
	"notes": "extra hot"
}`

func TestOrderHandler_Create_Success(t *testing.T) {
	h := NewOrderHandler(&stubOrderService{
		createFn: func(_ context.Context, in ports.CreateOrderInput) (*domain.Order, error) {
			if in.UserID != "u1" || in.OrderType != "pickup" || in.Notes != "extra hot" {
				t.Fatalf("unexpected input: %+v", in)
			}
			if len(in.Items) != 2 || in.Items[0].Quantity != 2 || in.Items[1].Price.String() != "4.50" {
				t.Fatalf("unexpected items: %+v", in.Items)
			}
			if in.Total.String() != "11.50" {
				t.Fatalf("unexpected total %s", in.Total)
			}
			return &domain.Order{ID: "o1", UserID: in.UserID, Status: domain.OrderPending, Total: in.Total}, nil
		},
	}, zerolog.Nop())

	c, rec := newContext(http.MethodPost, "/api/orders", orderBody)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != "pending" || resp["total"] != "11.50" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if v, ok := resp["paymentReference"]; !ok || v != nil {
		t.Fatalf("expected explicit null paymentReference, got %v", v)
	}
}

func TestOrderHandler_Create_Validation(t *testing.T) {
	cases := map[string]string{
		"empty items":   `{"userId":"u1","items":[],"total":"0","orderType":"pickup"}`,
		"zero quantity": `{"userId":"u1","items":[{"itemId":"1","quantity":0,"price":"1"}],"total":"0","orderType":"pickup"}`,
		"missing total": `{"userId":"u1","items":[{"itemId":"1","quantity":1,"price":"1"}],"orderType":"pickup"}`,
		"bad type":      `{"userId":"u1","items":[{"itemId":"1","quantity":1,"price":"1"}],"total":"1","orderType":"drone"}`,
	}
	h := NewOrderHandler(&stubOrderService{
		createFn: func(context.Context, ports.CreateOrderInput) (*domain.Order, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}, zerolog.Nop())

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			c, _ := newContext(http.MethodPost, "/api/orders", body)
			if err := h.Create(c); !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestOrderHandler_Create_MalformedJSON(t *testing.T) {
	h := NewOrderHandler(&stubOrderService{}, zerolog.Nop())

	c, _ := newContext(http.MethodPost, "/api/orders", "not-json")
	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestOrderHandler_UpdateStatus_UsesStaffSource(t *testing.T) {
	h := NewOrderHandler(&stubOrderService{
		statusFn: func(_ context.Context, id string, status domain.OrderStatus, source string) (*domain.Order, error) {
			if id != "o1" || status != domain.OrderPreparing || source != ports.SourceStaff {
				t.Fatalf("unexpected call: %s %s %s", id, status, source)
			}
			return &domain.Order{ID: id, Status: status}, nil
		},
	}, zerolog.Nop())

	c, rec := newContext(http.MethodPatch, "/api/orders/o1/status", `{"status":"preparing"}`)
	c.SetParamNames("id")
	c.SetParamValues("o1")
	c.Set(middleware.CtxSubject, "barista-1")
	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestOrderHandler_UpdateStatus_RequiresStatus(t *testing.T) {
	h := NewOrderHandler(&stubOrderService{}, zerolog.Nop())

	c, _ := newContext(http.MethodPatch, "/api/orders/o1/status", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("o1")
	if err := h.UpdateStatus(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestOrderHandler_GetAndList(t *testing.T) {
	h := NewOrderHandler(&stubOrderService{
		getFn: func(_ context.Context, id string) (*domain.Order, error) {
			return nil, domain.ErrOrderNotFound
		},
		listFn: func(_ context.Context, userID string) ([]*domain.Order, error) {
			return []*domain.Order{{ID: "a", UserID: userID}, {ID: "b", UserID: userID}}, nil
		},
	}, zerolog.Nop())

	c, _ := newContext(http.MethodGet, "/api/orders/x", "")
	c.SetParamNames("id")
	c.SetParamValues("x")
	if err := h.Get(c); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}

	c, rec := newContext(http.MethodGet, "/api/orders/user/u1", "")
	c.SetParamNames("userId")
	c.SetParamValues("u1")
	if err := h.ListByUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var list []domain.Order
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(list) != 2 || list[0].ID != "a" {
		t.Fatalf("unexpected list: %+v", list)
	}
}
