package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"github.com/TimohUSik/SkidkiSteamBot/internal/domain/entity"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/logx"
)

// TelegramBot доставляет найденные скидки подписчикам.
type TelegramBot struct {
	bot *telego.Bot
	// fallbackChatID получает уведомления, чей subscriber id не парсится
	// в chat id. Ноль отключает фолбэк.
	fallbackChatID int64
}

func NewTelegramBot(token string, fallbackChatID int64) (*TelegramBot, error) {
	bot, err := telego.NewBot(token)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	return &TelegramBot{
		bot:            bot,
		fallbackChatID: fallbackChatID,
	}, nil
}

// Run запускает доставку уведомлений из канала.
func (b *TelegramBot) Run(ctx context.Context, notifications <-chan entity.Notification) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case notification, ok := <-notifications:
			if !ok {
				return nil
			}

			if err := b.sendNotification(ctx, notification); err != nil {
				logger(ctx).Error(
					"failed to send deal",
					slog.String(logx.FieldSubscriberID, notification.SubscriberID),
					slog.Int64(logx.FieldAppID, notification.Quote.AppID),
					logx.Error(err),
				)
			}
		}
	}
}

func (b *TelegramBot) sendNotification(ctx context.Context, notification entity.Notification) error {
	chatID, err := strconv.ParseInt(notification.SubscriberID, 10, 64)
	if err != nil {
		if b.fallbackChatID == 0 {
			return fmt.Errorf("subscriber id %q is not a chat id", notification.SubscriberID)
		}

		chatID = b.fallbackChatID
	}

	return b.SendDeal(ctx, chatID, notification.Quote)
}

// SendDeal отправляет одну скидку в чат.
func (b *TelegramBot) SendDeal(ctx context.Context, chatID int64, quote entity.PriceQuote) error {
	msg := tu.Message(
		tu.ID(chatID),
		FormatDeal(quote),
	).WithParseMode(telego.ModeHTML).WithLinkPreviewOptions(&telego.LinkPreviewOptions{IsDisabled: true})

	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}

// SendText отправляет простое текстовое сообщение.
func (b *TelegramBot) SendText(ctx context.Context, chatID int64, text string) error {
	msg := tu.Message(tu.ID(chatID), text)

	_, err := b.bot.SendMessage(ctx, msg)

	return err
}
