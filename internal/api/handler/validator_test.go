package handler

import (
	"errors"
	"strings"
	"testing"

	"github.com/lionscafe/storefront/internal/core/domain"
)

func TestValidator_MessagesUseJSONFieldPaths(t *testing.T) {
	v := NewValidator()
	one := 1

	tests := []struct {
		name string
		req  any
		want string
	}{
		{
			name: "nested item quantity",
			req: &createOrderRequest{
				UserID:    "u1",
				Items:     []orderItemRequest{{ItemID: "1", Quantity: 0, Price: moneyPtr("1")}},
				Total:     moneyPtr("1"),
				OrderType: "pickup",
			},
			want: "items[0].quantity is required",
		},
		{
			name: "empty items",
			req:  &createOrderRequest{UserID: "u1", Items: []orderItemRequest{}, Total: moneyPtr("0"), OrderType: "pickup"},
			want: "items must contain at least 1 item(s)",
		},
		{
			name: "oneof",
			req:  &createReservationRequest{UserID: "u1", PartySize: one, Status: "maybe"},
			want: "status must be one of: confirmed cancelled completed",
		},
		{
			name: "email",
			req:  &registerUserRequest{Email: "nope", Username: "ana"},
			want: "email must be a valid email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q in %q", tt.want, err.Error())
			}
		})
	}
}

func TestValidator_Valid(t *testing.T) {
	req := &subscribeRequest{
		Endpoint: "https://push.example.com/x",
		Keys:     subscriptionKeysRequest{P256dh: "k", Auth: "a"},
	}
	if err := NewValidator().Validate(req); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}

func moneyPtr(s string) *domain.Money {
	m := domain.MustMoney(s)
	return &m
}
