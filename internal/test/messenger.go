package test

import (
	"context"
	"sync"

	"github.com/polkiloo/flowerbot/internal/domain/model"
)

// MessengerStub records bot API interactions.
type MessengerStub struct {
	Disabled bool
	SendFn   func(context.Context, model.OutgoingMessage) error
	AnswerFn func(context.Context, string) error

	Sent     []model.OutgoingMessage
	Answered []string

	mu sync.Mutex
}

// Enabled reports whether the stub pretends to have a bot token.
func (s *MessengerStub) Enabled() bool {
	return !s.Disabled
}

// SendMessage records the message and delegates to SendFn when set.
func (s *MessengerStub) SendMessage(ctx context.Context, msg model.OutgoingMessage) error {
	s.mu.Lock()
	s.Sent = append(s.Sent, msg)
	s.mu.Unlock()
	if s.SendFn != nil {
		return s.SendFn(ctx, msg)
	}
	return nil
}

// AnswerCallbackQuery records the callback identifier.
func (s *MessengerStub) AnswerCallbackQuery(ctx context.Context, callbackID string) error {
	s.mu.Lock()
	s.Answered = append(s.Answered, callbackID)
	s.mu.Unlock()
	if s.AnswerFn != nil {
		return s.AnswerFn(ctx, callbackID)
	}
	return nil
}

// NotifierStub records order notifications.
type NotifierStub struct {
	Err   error
	Calls []NotifyCall
}

// NotifyCall captures NotifyNewOrder arguments.
type NotifyCall struct {
	Submission model.OrderSubmission
	Phone      string
}

// NotifyNewOrder records the call and returns configured error.
func (s *NotifierStub) NotifyNewOrder(_ context.Context, submission model.OrderSubmission, phone string) error {
	s.Calls = append(s.Calls, NotifyCall{Submission: submission, Phone: phone})
	return s.Err
}
