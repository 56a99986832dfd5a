package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/polkiloo/flowerbot/internal/domain/model"
)

// ErrBotTokenMissing indicates the bot credential is not configured.
var ErrBotTokenMissing = errors.New("bot token is not configured")

// APIError is returned when the Bot API rejects a call.
type APIError struct {
	Method      string
	StatusCode  int
	Description string
}

func (e APIError) Error() string {
	return fmt.Sprintf("telegram %s failed with status %d: %s", e.Method, e.StatusCode, e.Description)
}

// Client exposes the Bot API calls used by the shop.
type Client interface {
	Enabled() bool
	SendMessage(ctx context.Context, msg model.OutgoingMessage) error
	AnswerCallbackQuery(ctx context.Context, callbackID string) error
}

// HTTPClient implements Client on top of the Bot API HTTP interface.
type HTTPClient struct {
	http   *resty.Client
	token  string
	logger *slog.Logger
}

type sendMessageRequest struct {
	ChatID                int64                 `json:"chat_id"`
	Text                  string                `json:"text"`
	ParseMode             string                `json:"parse_mode,omitempty"`
	DisableWebPagePreview bool                  `json:"disable_web_page_preview,omitempty"`
	ReplyMarkup           *inlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

type answerCallbackQueryRequest struct {
	CallbackQueryID string `json:"callback_query_id"`
}

type inlineKeyboardMarkup struct {
	InlineKeyboard [][]inlineKeyboardButton `json:"inline_keyboard"`
}

type inlineKeyboardButton struct {
	Text   string      `json:"text"`
	URL    string      `json:"url,omitempty"`
	WebApp *webAppInfo `json:"web_app,omitempty"`
}

type webAppInfo struct {
	URL string `json:"url"`
}

// apiResponse mirrors the envelope every Bot API method returns.
type apiResponse struct {
	OK          bool            `json:"ok"`
	Description string          `json:"description,omitempty"`
	Result      json.RawMessage `json:"result,omitempty"`
}

// NewHTTPClient creates Bot API client. An empty token yields a client whose
// calls fail with ErrBotTokenMissing.
func NewHTTPClient(baseURL, token string, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse telegram url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("telegram url must be absolute")
	}

	rc := resty.New().
		SetBaseURL(parsed.String()).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &HTTPClient{http: rc, token: token, logger: logger}, nil
}

// Enabled reports whether a bot token is configured.
func (c *HTTPClient) Enabled() bool {
	return c.token != ""
}

// SendMessage delivers a text message with an optional inline keyboard.
func (c *HTTPClient) SendMessage(ctx context.Context, msg model.OutgoingMessage) error {
	req := sendMessageRequest{
		ChatID:                msg.ChatID,
		Text:                  msg.Text,
		ParseMode:             msg.ParseMode,
		DisableWebPagePreview: msg.DisableLinkPreview,
		ReplyMarkup:           toMarkup(msg.Keyboard),
	}
	return c.call(ctx, "sendMessage", req)
}

// AnswerCallbackQuery acknowledges a button press.
func (c *HTTPClient) AnswerCallbackQuery(ctx context.Context, callbackID string) error {
	return c.call(ctx, "answerCallbackQuery", answerCallbackQueryRequest{CallbackQueryID: callbackID})
}

func (c *HTTPClient) call(ctx context.Context, method string, payload any) error {
	if !c.Enabled() {
		return ErrBotTokenMissing
	}

	var result apiResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"token": c.token, "method": method}).
		SetBody(payload).
		SetResult(&result).
		SetError(&result).
		Post("/bot{token}/{method}")
	if err != nil {
		return fmt.Errorf("telegram %s: %w", method, err)
	}

	if resp.IsError() || !result.OK {
		c.logger.Error("telegram request failed",
			slog.String("method", method),
			slog.Int("status", resp.StatusCode()),
			slog.String("description", result.Description),
		)
		return APIError{Method: method, StatusCode: resp.StatusCode(), Description: result.Description}
	}
	return nil
}

func toMarkup(rows [][]model.Button) *inlineKeyboardMarkup {
	if len(rows) == 0 {
		return nil
	}
	markup := &inlineKeyboardMarkup{InlineKeyboard: make([][]inlineKeyboardButton, 0, len(rows))}
	for _, row := range rows {
		buttons := make([]inlineKeyboardButton, 0, len(row))
		for _, b := range row {
			btn := inlineKeyboardButton{Text: b.Text, URL: b.URL}
			if b.WebAppURL != "" {
				btn.URL = ""
				btn.WebApp = &webAppInfo{URL: b.WebAppURL}
			}
			buttons = append(buttons, btn)
		}
		markup.InlineKeyboard = append(markup.InlineKeyboard, buttons)
	}
	return markup
}
