package bot

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"github.com/TimohUSik/SkidkiSteamBot/internal/config"
	"github.com/TimohUSik/SkidkiSteamBot/internal/domain/service/deals"
	"github.com/TimohUSik/SkidkiSteamBot/internal/domain/service/watchlist"
	"github.com/TimohUSik/SkidkiSteamBot/internal/transport/bot/handler"
	"github.com/TimohUSik/SkidkiSteamBot/internal/worker"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/contextx"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Bot обслуживает команды подписчиков через long polling.
type Bot struct {
	bot        *telego.Bot
	botHandler *th.BotHandler
}

func New(
	cfg config.Config,
	dealService *deals.Service,
	watchService *watchlist.Service,
	scanner *worker.DealScanner,
) (*Bot, error) {
	bot, err := telego.NewBot(cfg.Bot.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	updates, err := bot.UpdatesViaLongPolling(context.Background(), &telego.GetUpdatesParams{
		Timeout: 60,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get updates: %w", err)
	}

	botHandler, err := th.NewBotHandler(bot, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot handler: %w", err)
	}

	commandHandler := handler.New(dealService, watchService, scanner)
	commandHandler.RegisterRoutes(botHandler, cfg.Bot.AdminID)

	return &Bot{
		bot:        bot,
		botHandler: botHandler,
	}, nil
}

// Run запускает обработку апдейтов до отмены контекста.
func (b *Bot) Run(ctx context.Context) error {
	go func() {
		if err := b.botHandler.Start(); err != nil {
			logger(ctx).Error("bot handler start failed", logx.Error(err))
		}
	}()

	<-ctx.Done()

	if err := b.botHandler.Stop(); err != nil {
		logger(ctx).Error("bot handler stop failed", logx.Error(err))
	}

	return ctx.Err()
}
