package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/polkiloo/flowerbot/internal/domain/model"
)

const (
	welcomeText = "🌸 *Добро пожаловать в магазин элитных цветов!*\n\n" +
		"✨ У нас вы найдете:\n" +
		"• Свежие цветы от проверенных поставщиков\n" +
		"• Красивые букеты для любого случая\n" +
		"• Индивидуальный подход к каждому заказу\n\n" +
		"Нажмите на кнопку ниже, чтобы открыть каталог и сделать заказ!"

	helpTemplate = "🛠 *Помощь по боту*\n\n" +
		"*Как сделать заказ:*\n" +
		"1. Нажмите кнопку «Открыть магазин цветов»\n" +
		"2. Выберите понравившиеся букеты\n" +
		"3. Нажмите «Заказать» под товаром\n" +
		"4. Свяжитесь с менеджером для оформления\n\n" +
		"*Контакты:*\n" +
		"📞 Менеджер: @%s"

	unknownCommandText = "Извините, я не понимаю эту команду. Используйте /help для получения помощи."
)

// BotOptions configures the menus rendered by the bot.
type BotOptions struct {
	WebAppURL       string
	ManagerURL      string
	ManagerUsername string
}

// BotUseCase answers chat updates delivered to the webhook.
type BotUseCase struct {
	messenger Messenger
	opts      BotOptions
}

// NewBotUseCase constructs BotUseCase.
func NewBotUseCase(messenger Messenger, opts BotOptions) *BotUseCase {
	return &BotUseCase{messenger: messenger, opts: opts}
}

// HandleUpdate replies to a text message or acknowledges a callback query.
// Updates carrying neither are ignored.
func (u *BotUseCase) HandleUpdate(ctx context.Context, update model.BotUpdate) error {
	switch {
	case update.Message != nil:
		return u.messenger.SendMessage(ctx, u.reply(update.Message))
	case update.Callback != nil:
		return u.messenger.AnswerCallbackQuery(ctx, update.Callback.ID)
	default:
		return nil
	}
}

func (u *BotUseCase) reply(msg *model.ChatMessage) model.OutgoingMessage {
	text := strings.TrimSpace(msg.Text)
	switch {
	case strings.HasPrefix(text, "/start"):
		return model.OutgoingMessage{
			ChatID:    msg.ChatID,
			Text:      welcomeText,
			ParseMode: model.ParseModeMarkdown,
			Keyboard: [][]model.Button{
				{{Text: "🌸 Открыть магазин цветов", WebAppURL: u.opts.WebAppURL}},
				{{Text: "📞 Связаться с менеджером", URL: u.opts.ManagerURL}},
			},
		}
	case strings.HasPrefix(text, "/help"):
		return model.OutgoingMessage{
			ChatID:    msg.ChatID,
			Text:      fmt.Sprintf(helpTemplate, u.opts.ManagerUsername),
			ParseMode: model.ParseModeMarkdown,
		}
	default:
		return model.OutgoingMessage{
			ChatID:    msg.ChatID,
			Text:      unknownCommandText,
			ParseMode: model.ParseModeMarkdown,
		}
	}
}
