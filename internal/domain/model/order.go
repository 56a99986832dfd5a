package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// InitialStatusID is the "new" status every order is created with.
const InitialStatusID int64 = 1

// EmptyItems is the stored form of an order without items.
var EmptyItems = json.RawMessage(`[]`)

// LineItem is the view of a single cart position used to render
// notifications. Numbers may arrive as JSON numbers or strings.
type LineItem struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Total    decimal.Decimal `json:"total"`
}

// DecodeLineItems reads the typed view of a raw item list. Fields other than
// name, quantity, price and total are ignored.
func DecodeLineItems(raw json.RawMessage) ([]LineItem, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var items []LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode line items: %w", err)
	}
	return items, nil
}

// Order describes a persisted order. Items holds the item list exactly as it
// was submitted. StatusName and StatusColor are only filled for admin
// listings when a matching status exists.
type Order struct {
	ID           int64
	UserID       string
	UserName     string
	UserUsername string
	Phone        string
	Comment      string
	Items        json.RawMessage
	TotalAmount  decimal.Decimal
	FinalAmount  decimal.Decimal
	StatusID     int64
	CreatedAt    time.Time
	StatusName   string
	StatusColor  string
}

// OrderStatus is a row of the status lookup table.
type OrderStatus struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Admin is a chat that receives new order notifications.
type Admin struct {
	TelegramID int64
	IsActive   bool
}

// Customer identifies the Telegram user placing an order.
type Customer struct {
	ID        int64
	FirstName string
	Username  string
}

// OrderSubmission is the raw order coming from the mini-app.
type OrderSubmission struct {
	User    Customer
	Phone   string
	Items   json.RawMessage
	Total   decimal.Decimal
	Comment string
	Time    string
}
