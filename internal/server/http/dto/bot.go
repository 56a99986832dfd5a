package dto

import "github.com/polkiloo/flowerbot/internal/domain/model"

// Update is the subset of a Telegram update the webhook understands.
type Update struct {
	UpdateID      int64          `json:"update_id"`
	Message       *Message       `json:"message,omitempty"`
	CallbackQuery *CallbackQuery `json:"callback_query,omitempty"`
}

type Chat struct {
	ID int64 `json:"id"`
}

type Message struct {
	MessageID int64  `json:"message_id"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text"`
}

type CallbackQuery struct {
	ID      string   `json:"id"`
	Data    string   `json:"data"`
	Message *Message `json:"message,omitempty"`
}

// ToModel converts the update into its domain form.
func (u Update) ToModel() model.BotUpdate {
	update := model.BotUpdate{ID: u.UpdateID}
	if u.Message != nil {
		update.Message = &model.ChatMessage{ChatID: u.Message.Chat.ID, Text: u.Message.Text}
	}
	if u.CallbackQuery != nil {
		cb := &model.CallbackQuery{ID: u.CallbackQuery.ID, Data: u.CallbackQuery.Data}
		if u.CallbackQuery.Message != nil {
			cb.ChatID = u.CallbackQuery.Message.Chat.ID
		}
		update.Callback = cb
	}
	return update
}
