package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/flowerbot/internal/domain/model"
)

// Customer describes the Telegram user placing an order.
type Customer struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	Username  string `json:"username"`
}

// SubmitOrderRequest is the order payload sent by the web app.
type SubmitOrderRequest struct {
	User    Customer        `json:"user"`
	Phone   string          `json:"phone"`
	Items   json.RawMessage `json:"items"`
	Total   decimal.Decimal `json:"total"`
	Comment string          `json:"comment"`
	Time    string          `json:"time"`
}

// ToModel converts the payload into a domain submission.
func (r SubmitOrderRequest) ToModel() model.OrderSubmission {
	return model.OrderSubmission{
		User: model.Customer{
			ID:        r.User.ID,
			FirstName: r.User.FirstName,
			Username:  r.User.Username,
		},
		Phone:   r.Phone,
		Items:   itemsOrEmpty(r.Items),
		Total:   r.Total,
		Comment: r.Comment,
		Time:    r.Time,
	}
}

// UpdateStatusRequest carries a status change for a single order.
type UpdateStatusRequest struct {
	OrderID  int64  `json:"order_id"`
	StatusID *int64 `json:"status_id"`
}

func itemsOrEmpty(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || string(raw) == "null" {
		return model.EmptyItems
	}
	return raw
}

// Amount renders a decimal as a plain JSON number.
type Amount decimal.Decimal

// MarshalJSON implements json.Marshaler.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(a).String()), nil
}

// OrderResponse is a stored order as returned by the list endpoint.
type OrderResponse struct {
	ID           int64           `json:"id"`
	UserID       string          `json:"user_id"`
	UserName     string          `json:"user_name"`
	UserUsername string          `json:"user_username"`
	Phone        string          `json:"phone"`
	Comment      string          `json:"comment"`
	Items        json.RawMessage `json:"items"`
	TotalAmount  Amount          `json:"total_amount"`
	FinalAmount  Amount          `json:"final_amount"`
	StatusID     int64           `json:"status_id"`
	CreatedAt    time.Time       `json:"created_at"`
	StatusName   string          `json:"status_name,omitempty"`
	StatusColor  string          `json:"status_color,omitempty"`
}

// NewOrderResponse maps a domain order to its wire form.
func NewOrderResponse(o model.Order) OrderResponse {
	return OrderResponse{
		ID:           o.ID,
		UserID:       o.UserID,
		UserName:     o.UserName,
		UserUsername: o.UserUsername,
		Phone:        o.Phone,
		Comment:      o.Comment,
		Items:        itemsOrEmpty(o.Items),
		TotalAmount:  Amount(o.TotalAmount),
		FinalAmount:  Amount(o.FinalAmount),
		StatusID:     o.StatusID,
		CreatedAt:    o.CreatedAt,
		StatusName:   o.StatusName,
		StatusColor:  o.StatusColor,
	}
}

// Result is the envelope of order mutations and of every order error.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// HealthResponse reports store reachability.
type HealthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}
