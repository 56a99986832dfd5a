package model

// ParseModeMarkdown selects Telegram legacy Markdown formatting.
const ParseModeMarkdown = "Markdown"

// Button is an inline keyboard button. Exactly one of URL or WebAppURL is set.
type Button struct {
	Text      string
	URL       string
	WebAppURL string
}

// OutgoingMessage is a chat message sent on behalf of the bot.
type OutgoingMessage struct {
	ChatID             int64
	Text               string
	ParseMode          string
	DisableLinkPreview bool
	Keyboard           [][]Button
}

// ChatMessage is an incoming text message.
type ChatMessage struct {
	ChatID int64
	Text   string
}

// CallbackQuery is a button press reported by the bot platform.
type CallbackQuery struct {
	ID     string
	ChatID int64
	Data   string
}

// BotUpdate carries either a message or a callback query.
type BotUpdate struct {
	ID       int64
	Message  *ChatMessage
	Callback *CallbackQuery
}
