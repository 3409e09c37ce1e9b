package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestMoney_StringAlwaysTwoDigits(t *testing.T) {
	cases := map[string]string{
		"4.5":    "4.50",
		"9":      "9.00",
		"12.50":  "12.50",
		"0":      "0.00",
		"3.005":  "3.01",
		"100.10": "100.10",
	}
	for in, want := range cases {
		if got := MustMoney(in).String(); got != want {
			t.Errorf("MustMoney(%q).String() = %q, want %q", in, got, want)
		}
	}
}

func TestMoney_MinorUnits(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"9.00", 900},
		{"4.50", 450},
		{"19.999", 2000},
		{"0.005", 1},
		{"0.004", 0},
		{"12.345", 1235},
	}
	for _, tc := range cases {
		if got := MustMoney(tc.in).MinorUnits(); got != tc.want {
			t.Errorf("MinorUnits(%s) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestMoney_JSONAcceptsStringsAndNumbers(t *testing.T) {
	var payload struct {
		A Money `json:"a"`
		B Money `json:"b"`
	}
	if err := json.Unmarshal([]byte(`{"a":"4.50","b":9}`), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.A.String() != "4.50" || payload.B.String() != "9.00" {
		t.Fatalf("unexpected values: %s %s", payload.A, payload.B)
	}

	out, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"a":"4.50","b":"9.00"}` {
		t.Fatalf("unexpected json: %s", out)
	}
}

func TestMoney_InvalidInput(t *testing.T) {
	if _, err := NewMoney("four"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	var m Money
	if err := json.Unmarshal([]byte(`"abc"`), &m); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation from JSON, got %v", err)
	}
}

func TestOrder_ItemsTotal(t *testing.T) {
	o := Order{Items: []OrderItem{
		{ItemID: "1", Quantity: 2, Price: MustMoney("4.50")},
		{ItemID: "2", Quantity: 1, Price: MustMoney("5.25")},
	}}
	if got := o.ItemsTotal().String(); got != "14.25" {
		t.Fatalf("ItemsTotal = %s, want 14.25", got)
	}
}

func TestMenuItemPatch_Apply(t *testing.T) {
	item := MenuItem{ID: "1", Name: "Croissant", Price: MustMoney("4.50"), Available: true, Allergens: []string{"gluten"}}
	price := MustMoney("5.00")
	off := false
	MenuItemPatch{Price: &price, Available: &off}.Apply(&item)

	if item.Price.String() != "5.00" {
		t.Errorf("price not applied: %s", item.Price)
	}
	if item.Available {
		t.Error("availability not applied")
	}
	if item.Name != "Croissant" || len(item.Allergens) != 1 {
		t.Errorf("untouched fields changed: %+v", item)
	}
}
