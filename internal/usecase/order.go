package usecase

import (
	"context"
	"log/slog"
	"strconv"

	domainErrors "github.com/polkiloo/flowerbot/internal/domain/errors"
	"github.com/polkiloo/flowerbot/internal/domain/model"
	"github.com/polkiloo/flowerbot/internal/domain/repository"
)

// OrderNotifier informs administrators about a freshly stored order.
type OrderNotifier interface {
	NotifyNewOrder(ctx context.Context, submission model.OrderSubmission, phone string) error
}

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders   repository.OrderRepository
	statuses repository.StatusRepository
	notifier OrderNotifier
	logger   *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, statuses repository.StatusRepository, notifier OrderNotifier, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{orders: orders, statuses: statuses, notifier: notifier, logger: logger}
}

// Submit stores a new order and then notifies administrators. A failed insert
// aborts before any notification; a failed notification is only logged.
func (u *OrderUseCase) Submit(ctx context.Context, submission model.OrderSubmission) (*model.Order, error) {
	phone := NormalizePhone(submission.Phone)

	record := model.Order{
		UserID:       strconv.FormatInt(submission.User.ID, 10),
		UserName:     submission.User.FirstName,
		UserUsername: submission.User.Username,
		Phone:        phone,
		Comment:      submission.Comment,
		Items:        submission.Items,
		TotalAmount:  submission.Total,
		FinalAmount:  submission.Total,
		StatusID:     model.InitialStatusID,
	}

	order, err := u.orders.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	if err := u.notifier.NotifyNewOrder(ctx, submission, phone); err != nil {
		u.logger.Warn("admin notification failed",
			slog.Int64("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}

	return order, nil
}

// List returns orders of a single user, or every order with status details
// for administrators.
func (u *OrderUseCase) List(ctx context.Context, userID string, isAdmin bool) ([]model.Order, error) {
	if !isAdmin {
		return u.orders.ListByUser(ctx, userID)
	}

	orders, err := u.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	statuses, err := u.statuses.List(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]model.OrderStatus, len(statuses))
	for _, s := range statuses {
		byID[s.ID] = s
	}
	for i := range orders {
		if s, ok := byID[orders[i].StatusID]; ok {
			orders[i].StatusName = s.Name
			orders[i].StatusColor = s.Color
		}
	}
	return orders, nil
}

// UpdateStatus overwrites the status of an order. The status is not checked
// against the lookup table.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID int64, statusID *int64) error {
	if orderID == 0 {
		return domainErrors.ErrOrderIDRequired
	}
	return u.orders.UpdateStatus(ctx, orderID, statusID)
}

// Delete removes an order by the identifier taken from the request path.
func (u *OrderUseCase) Delete(ctx context.Context, rawID string) error {
	id, err := ParseOrderID(rawID)
	if err != nil {
		return err
	}
	return u.orders.Delete(ctx, id)
}
