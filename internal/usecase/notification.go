package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/flowerbot/internal/domain/errors"
	"github.com/polkiloo/flowerbot/internal/domain/model"
	"github.com/polkiloo/flowerbot/internal/domain/repository"
)

const noCommentPlaceholder = "Нет комментария"

// Messenger sends bot messages on behalf of the shop.
type Messenger interface {
	Enabled() bool
	SendMessage(ctx context.Context, msg model.OutgoingMessage) error
	AnswerCallbackQuery(ctx context.Context, callbackID string) error
}

// NotificationUseCase fans new order messages out to active admins.
type NotificationUseCase struct {
	admins    repository.AdminRepository
	messenger Messenger
	timeout   time.Duration
	logger    *slog.Logger
}

// NewNotificationUseCase constructs NotificationUseCase. timeout bounds every single send.
func NewNotificationUseCase(admins repository.AdminRepository, messenger Messenger, timeout time.Duration, logger *slog.Logger) *NotificationUseCase {
	return &NotificationUseCase{admins: admins, messenger: messenger, timeout: timeout, logger: logger}
}

// NotifyNewOrder sends the order summary to every active admin. It succeeds
// when at least one admin received the message.
func (u *NotificationUseCase) NotifyNewOrder(ctx context.Context, submission model.OrderSubmission, phone string) error {
	admins, err := u.admins.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("load admins: %w", err)
	}
	if !u.messenger.Enabled() || len(admins) == 0 {
		return domainErrors.ErrNotificationUnavailable
	}

	msg, err := NewOrderMessage(submission, phone)
	if err != nil {
		return fmt.Errorf("render order message: %w", err)
	}

	delivered := 0
	for _, admin := range admins {
		msg.ChatID = admin.TelegramID
		if err := u.send(ctx, msg); err != nil {
			u.logger.Warn("admin notification not delivered",
				slog.Int64("chat_id", admin.TelegramID),
				slog.String("error", err.Error()),
			)
			continue
		}
		delivered++
	}

	if delivered == 0 {
		return domainErrors.ErrNotificationFailed
	}
	u.logger.Info("admin notification sent", slog.Int("delivered", delivered), slog.Int("admins", len(admins)))
	return nil
}

func (u *NotificationUseCase) send(ctx context.Context, msg model.OutgoingMessage) error {
	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}
	return u.messenger.SendMessage(ctx, msg)
}

// NewOrderMessage renders the admin notification for a submitted order.
func NewOrderMessage(submission model.OrderSubmission, phone string) (model.OutgoingMessage, error) {
	items, err := model.DecodeLineItems(submission.Items)
	if err != nil {
		return model.OutgoingMessage{}, err
	}

	chatLink := fmt.Sprintf("tg://openmessage?user_id=%d", submission.User.ID)
	phoneLink := PhoneChatLink(phone)

	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("• %s - %s шт. × %s ₽ = %s ₽", item.Name, item.Quantity, item.Price, item.Total))
	}

	comment := submission.Comment
	if comment == "" {
		comment = noCommentPlaceholder
	}

	var b strings.Builder
	b.WriteString("🎉 *НОВЫЙ ЗАКАЗ!*\n\n")
	b.WriteString("👤 *Информация о клиенте:*\n")
	fmt.Fprintf(&b, "🆔 ID: `%d`\n", submission.User.ID)
	fmt.Fprintf(&b, "📛 Имя: %s\n", submission.User.FirstName)
	fmt.Fprintf(&b, "👤 Юзернейм: @%s\n", submission.User.Username)
	fmt.Fprintf(&b, "📞 Телефон: `%s`\n\n", phone)
	b.WriteString("🛍️ *Состав заказа:*\n")
	b.WriteString(strings.Join(lines, "\n"))
	fmt.Fprintf(&b, "\n\n💎 *Итого к оплате:* %s ₽\n\n", submission.Total)
	fmt.Fprintf(&b, "📋 *Комментарий:* %s\n\n", comment)
	fmt.Fprintf(&b, "🕐 *Время заказа:* %s\n\n", submission.Time)
	b.WriteString("💬 *Связаться с клиентом:*\n")
	fmt.Fprintf(&b, "[📱 По ID](%s) | [☎️ По номеру](%s)", chatLink, phoneLink)

	return model.OutgoingMessage{
		Text:               b.String(),
		ParseMode:          model.ParseModeMarkdown,
		DisableLinkPreview: true,
		Keyboard: [][]model.Button{{
			{Text: "📱 Написать по ID", URL: chatLink},
			{Text: "☎️ Написать по номеру", URL: phoneLink},
		}},
	}, nil
}
