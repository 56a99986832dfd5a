package errors

import "errors"

var (
	ErrOrderIDRequired         = errors.New("Order ID is required")
	ErrInvalidOrderID          = errors.New("Invalid order ID")
	ErrNotificationUnavailable = errors.New("missing bot token or no active admins")
	ErrNotificationFailed      = errors.New("notification was not delivered to any admin")
)
