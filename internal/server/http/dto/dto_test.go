package dto

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/flowerbot/internal/domain/model"
)

func TestSubmitOrderRequestToModel(t *testing.T) {
	payload := `{"user":{"id":555,"first_name":"Ольга","username":"olga"},"phone":"+7 900 000-00-00",
		"items":[{"name":"Тюльпаны","quantity":5,"price":120,"total":600,"image":"x.png"}],
		"total":600,"time":"19.10.2026"}`

	var req SubmitOrderRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	sub := req.ToModel()

	if sub.User.ID != 555 || sub.User.FirstName != "Ольга" || sub.User.Username != "olga" {
		t.Fatalf("unexpected user %+v", sub.User)
	}
	if want := `[{"name":"Тюльпаны","quantity":5,"price":120,"total":600,"image":"x.png"}]`; string(sub.Items) != want {
		t.Fatalf("expected raw items, got %s", sub.Items)
	}
	if !sub.Total.Equal(decimal.NewFromInt(600)) || sub.Comment != "" || sub.Time != "19.10.2026" {
		t.Fatalf("unexpected submission %+v", sub)
	}
}

func TestSubmitOrderRequestWithoutItems(t *testing.T) {
	sub := SubmitOrderRequest{}.ToModel()
	if string(sub.Items) != "[]" {
		t.Fatalf("expected empty item list, got %s", sub.Items)
	}

	var req SubmitOrderRequest
	if err := json.Unmarshal([]byte(`{"items":null,"total":0}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if sub := req.ToModel(); string(sub.Items) != "[]" {
		t.Fatalf("expected null items to become an empty list, got %s", sub.Items)
	}
}

func TestSubmitOrderRequestAcceptsFractionalQuantity(t *testing.T) {
	payload := `{"user":{"id":1},"items":[{"id":9,"name":"Розы","quantity":2.0,"price":"150","total":300}],"total":300}`

	var req SubmitOrderRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("quantity 2.0 must be accepted: %v", err)
	}
	items, err := model.DecodeLineItems(req.ToModel().Items)
	if err != nil || len(items) != 1 || items[0].Quantity.String() != "2" {
		t.Fatalf("unexpected items %+v err=%v", items, err)
	}
}

func TestOrderResponseJSON(t *testing.T) {
	resp := NewOrderResponse(model.Order{
		ID:          3,
		UserID:      "10",
		TotalAmount: decimal.RequireFromString("1500.50"),
		FinalAmount: decimal.RequireFromString("1500.50"),
		StatusID:    1,
		CreatedAt:   time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
	})
	raw := json.RawMessage(`[{"id":4,"name":"Розы","quantity":1,"image":"r.jpg"}]`)
	withItems := NewOrderResponse(model.Order{Items: raw, TotalAmount: decimal.NewFromInt(10)})
	itemsData, err := json.Marshal(withItems)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(itemsData), `"items":[{"id":4,"name":"Розы","quantity":1,"image":"r.jpg"}]`) ||
		!strings.Contains(string(itemsData), `"total_amount":10,"final_amount":0`) {
		t.Fatalf("unexpected items encoding %s", itemsData)
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(data)
	for _, part := range []string{`"id":3`, `"items":[]`, `"total_amount":1500.5`, `"status_id":1`} {
		if !strings.Contains(body, part) {
			t.Fatalf("expected %s in %s", part, body)
		}
	}
	if strings.Contains(body, "status_name") {
		t.Fatalf("status name must be omitted when empty: %s", body)
	}
}

func TestUpdateToModel(t *testing.T) {
	var msg Update
	if err := json.Unmarshal([]byte(`{"update_id":1,"message":{"message_id":2,"chat":{"id":42},"text":"/start"}}`), &msg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got := msg.ToModel()
	if got.ID != 1 || got.Message == nil || got.Message.ChatID != 42 || got.Message.Text != "/start" || got.Callback != nil {
		t.Fatalf("unexpected message update %+v", got)
	}

	var cb Update
	if err := json.Unmarshal([]byte(`{"update_id":2,"callback_query":{"id":"q1","data":"x","message":{"chat":{"id":7}}}}`), &cb); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got = cb.ToModel()
	if got.Message != nil || got.Callback == nil || got.Callback.ID != "q1" || got.Callback.ChatID != 7 || got.Callback.Data != "x" {
		t.Fatalf("unexpected callback update %+v", got)
	}

	if empty := (Update{UpdateID: 3}).ToModel(); empty.Message != nil || empty.Callback != nil {
		t.Fatalf("unexpected empty update %+v", empty)
	}
}
