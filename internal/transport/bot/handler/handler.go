package handler

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"github.com/TimohUSik/SkidkiSteamBot/internal/domain/service/deals"
	"github.com/TimohUSik/SkidkiSteamBot/internal/domain/service/watchlist"
	"github.com/TimohUSik/SkidkiSteamBot/internal/worker"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Сколько позиций показывает /check, чтобы не заспамить чат.
const (
	checkGamesLimit = 10
	checkDLCLimit   = 5
)

type Handler struct {
	deals   *deals.Service
	watch   *watchlist.Service
	scanner *worker.DealScanner
}

func New(deals *deals.Service, watch *watchlist.Service, scanner *worker.DealScanner) *Handler {
	return &Handler{
		deals:   deals,
		watch:   watch,
		scanner: scanner,
	}
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:    telego.ChatID{ID: chatID},
		Text:      text,
		ParseMode: telego.ModeHTML,
		LinkPreviewOptions: &telego.LinkPreviewOptions{
			IsDisabled: true,
		},
	})

	return err
}
