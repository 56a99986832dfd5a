package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDecodeLineItemsAcceptsNumbersAndStrings(t *testing.T) {
	raw := json.RawMessage(`[{"id":17,"name":"a","quantity":2.0,"price":10.5,"total":"21","image":"a.jpg"}]`)
	items, err := DecodeLineItems(raw)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("unexpected items %+v", items)
	}
	if !items[0].Quantity.Equal(decimal.NewFromInt(2)) || !items[0].Total.Equal(decimal.NewFromInt(21)) {
		t.Fatalf("unexpected numbers %+v", items[0])
	}
	if items[0].Quantity.String() != "2" {
		t.Fatalf("expected integral quantity to print as 2, got %s", items[0].Quantity)
	}
}

func TestDecodeLineItemsEmptyAndInvalid(t *testing.T) {
	for _, raw := range []json.RawMessage{nil, json.RawMessage(`null`), EmptyItems} {
		items, err := DecodeLineItems(raw)
		if err != nil || len(items) != 0 {
			t.Fatalf("expected no items for %q, got %+v %v", raw, items, err)
		}
	}

	if _, err := DecodeLineItems(json.RawMessage(`{"name":"a"}`)); err == nil {
		t.Fatal("expected error for non-list payload")
	}
}

func TestDecimalEncodingIsNotChangedGlobally(t *testing.T) {
	data, err := json.Marshal(decimal.RequireFromString("1.5"))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `"1.5"` {
		t.Fatalf("expected library default quoting, got %s", data)
	}
}
