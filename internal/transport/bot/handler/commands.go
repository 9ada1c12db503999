package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"github.com/TimohUSik/SkidkiSteamBot/internal/domain/entity"
	"github.com/TimohUSik/SkidkiSteamBot/internal/domain/service/watchlist"
	"github.com/TimohUSik/SkidkiSteamBot/internal/infrastructure/notifier"
	"github.com/TimohUSik/SkidkiSteamBot/internal/transport/bot/view"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/logx"
)

func subscriberID(msg telego.Message) string {
	return strconv.FormatInt(msg.Chat.ID, 10)
}

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	keyboard := tu.Keyboard(
		tu.KeyboardRow(
			tu.KeyboardButton(view.MenuCheck),
		),
		tu.KeyboardRow(
			tu.KeyboardButton(view.MenuWatchlist),
			tu.KeyboardButton(view.MenuHelp),
		),
	).WithResizeKeyboard()

	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:      telego.ChatID{ID: msg.Chat.ID},
		Text:        view.StartMessage,
		ParseMode:   telego.ModeHTML,
		ReplyMarkup: keyboard,
	})

	return err
}

func (h *Handler) OnHelp(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.HelpMessage)
}

// OnMenuText маршрутизирует нажатия кнопок главного меню.
func (h *Handler) OnMenuText(ctx *th.Context, msg telego.Message) error {
	switch msg.Text {
	case view.MenuCheck:
		return h.OnCheck(ctx, msg)
	case view.MenuWatchlist:
		return h.OnWatchlist(ctx, msg)
	case view.MenuHelp:
		return h.OnHelp(ctx, msg)
	}

	return nil
}

func (h *Handler) OnCheck(ctx *th.Context, msg telego.Message) error {
	if err := h.sendHTML(ctx, msg.Chat.ID, view.CheckInProgress); err != nil {
		return err
	}

	games, dlc := h.deals.ScanFeatured(ctx)

	tracked, err := h.deals.ScanWatchlist(ctx, subscriberID(msg))
	if err != nil {
		logger(ctx).Error("watchlist check failed", logx.Error(err))
	}

	if len(games) == 0 && len(dlc) == 0 && len(tracked) == 0 {
		return h.sendHTML(ctx, msg.Chat.ID, view.CheckNoDeals)
	}

	if err := h.sendDealsSection(ctx, msg.Chat.ID, view.CheckGamesHeader, limitQuotes(games, checkGamesLimit)); err != nil {
		return err
	}

	if err := h.sendDealsSection(ctx, msg.Chat.ID, view.CheckDLCHeader, limitQuotes(dlc, checkDLCLimit)); err != nil {
		return err
	}

	return h.sendDealsSection(ctx, msg.Chat.ID, view.CheckWatchlist, tracked)
}

func (h *Handler) OnWatchlist(ctx *th.Context, msg telego.Message) error {
	entries, err := h.watch.List(ctx, subscriberID(msg))
	if err != nil {
		logger(ctx).Error("watchlist load failed", logx.Error(err))

		return h.sendHTML(ctx, msg.Chat.ID, view.InternalError)
	}

	if len(entries) == 0 {
		return h.sendHTML(ctx, msg.Chat.ID, view.WatchlistEmpty)
	}

	if err = h.sendHTML(ctx, msg.Chat.ID, view.WatchlistHeader); err != nil {
		return err
	}

	for _, entry := range entries {
		text := fmt.Sprintf("• <b>%s</b> (<code>%d</code>)", entry.Name, entry.AppID)

		if quote, err := h.deals.Quote(ctx, entry.AppID); err == nil {
			text = fmt.Sprintf(
				"• <b>%s</b> (<code>%d</code>) — %s, скидка %d%%",
				entry.Name,
				entry.AppID,
				notifier.FormatPrice(quote.Price.Final, quote.Price.Currency),
				quote.Price.DiscountPercent,
			)
		}

		keyboard := tu.InlineKeyboard(tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("🗑 Удалить").
				WithCallbackData(fmt.Sprintf("del:%d", entry.AppID)),
		))

		_, err = ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
			ChatID:      telego.ChatID{ID: msg.Chat.ID},
			Text:        text,
			ParseMode:   telego.ModeHTML,
			ReplyMarkup: keyboard,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func (h *Handler) OnAdd(ctx *th.Context, msg telego.Message) error {
	parts := strings.Fields(msg.Text)
	if len(parts) < 2 {
		return h.sendHTML(ctx, msg.Chat.ID, view.AddUsage)
	}

	appID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || appID <= 0 {
		return h.sendHTML(ctx, msg.Chat.ID, view.AddInvalidID)
	}

	return h.addToWatchlist(ctx, msg.Chat.ID, appID)
}

func (h *Handler) OnRemove(ctx *th.Context, msg telego.Message) error {
	parts := strings.Fields(msg.Text)
	if len(parts) < 2 {
		return h.sendHTML(ctx, msg.Chat.ID, view.RemoveUsage)
	}

	appID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || appID <= 0 {
		return h.sendHTML(ctx, msg.Chat.ID, view.AddInvalidID)
	}

	res, err := h.watch.Remove(ctx, strconv.FormatInt(msg.Chat.ID, 10), appID)
	if err != nil {
		logger(ctx).Error("watchlist remove failed", logx.Error(err))

		return h.sendHTML(ctx, msg.Chat.ID, view.InternalError)
	}

	if !res.Removed {
		return h.sendHTML(ctx, msg.Chat.ID, fmt.Sprintf(view.RemoveNotFound, appID))
	}

	return h.sendHTML(ctx, msg.Chat.ID, fmt.Sprintf(view.RemoveSuccess, res.Name))
}

func (h *Handler) OnStatus(ctx *th.Context, msg telego.Message) error {
	scannerStatus := "🔴 остановлен"
	if h.scanner.IsRunning() {
		scannerStatus = "🟢 работает"
	}

	minPrice, minDiscount := h.deals.Thresholds()

	text := fmt.Sprintf(
		"📊 <b>Статус</b>\n\n"+
			"🔍 <b>Сканер:</b> %s\n"+
			"💰 <b>Мин. цена без скидки:</b> %d\n"+
			"📉 <b>Мин. скидка:</b> %d%%",
		scannerStatus,
		minPrice,
		minDiscount,
	)

	return h.sendHTML(ctx, msg.Chat.ID, text)
}

// OnScanNow запускает внеплановый прогон сканера.
func (h *Handler) OnScanNow(ctx *th.Context, msg telego.Message) error {
	if h.scanner.TriggerScan() {
		return h.sendHTML(ctx, msg.Chat.ID, view.ScanQueued)
	}

	return h.sendHTML(ctx, msg.Chat.ID, view.ScanAlreadyQueued)
}

func (h *Handler) OnSetMinPrice(ctx *th.Context, msg telego.Message) error {
	parts := strings.Fields(msg.Text)
	if len(parts) < 2 {
		return h.sendHTML(ctx, msg.Chat.ID, view.SetMinPriceUsage)
	}

	price, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || h.deals.SetMinPrice(price) != nil {
		return h.sendHTML(ctx, msg.Chat.ID, view.SetMinPriceInvalid)
	}

	return h.sendHTML(ctx, msg.Chat.ID, fmt.Sprintf(view.SetMinPriceSuccess, price))
}

func (h *Handler) OnSetMinDiscount(ctx *th.Context, msg telego.Message) error {
	parts := strings.Fields(msg.Text)
	if len(parts) < 2 {
		return h.sendHTML(ctx, msg.Chat.ID, view.SetMinDiscountUsage)
	}

	percent, err := strconv.Atoi(parts[1])
	if err != nil || h.deals.SetMinDiscount(percent) != nil {
		return h.sendHTML(ctx, msg.Chat.ID, view.SetMinDiscountInvalid)
	}

	return h.sendHTML(ctx, msg.Chat.ID, fmt.Sprintf(view.SetMinDiscountSuccess, percent))
}

func (h *Handler) addToWatchlist(ctx *th.Context, chatID, appID int64) error {
	res, err := h.watch.Add(ctx, strconv.FormatInt(chatID, 10), appID)
	if err != nil {
		logger(ctx).Error("watchlist add failed", logx.Error(err))

		return h.sendHTML(ctx, chatID, view.InternalError)
	}

	switch res.Status {
	case watchlist.StatusAlreadyTracked:
		return h.sendHTML(ctx, chatID, fmt.Sprintf(view.AddAlreadyTracked, res.Name))
	case watchlist.StatusNotFound:
		return h.sendHTML(ctx, chatID, view.AddNotFound)
	case watchlist.StatusAdded:
	}

	return h.sendHTML(ctx, chatID, fmt.Sprintf(view.AddSuccess, res.Name))
}

func (h *Handler) sendDealsSection(ctx *th.Context, chatID int64, header string, quotes []entity.PriceQuote) error {
	if len(quotes) == 0 {
		return nil
	}

	if err := h.sendHTML(ctx, chatID, header); err != nil {
		return err
	}

	for _, quote := range quotes {
		keyboard := tu.InlineKeyboard(tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("➕ В список").
				WithCallbackData(fmt.Sprintf("add:%d", quote.AppID)),
		))

		_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
			ChatID:      telego.ChatID{ID: chatID},
			Text:        notifier.FormatDeal(quote),
			ParseMode:   telego.ModeHTML,
			ReplyMarkup: keyboard,
			LinkPreviewOptions: &telego.LinkPreviewOptions{
				IsDisabled: true,
			},
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func limitQuotes(quotes []entity.PriceQuote, limit int) []entity.PriceQuote {
	if len(quotes) > limit {
		return quotes[:limit]
	}

	return quotes
}
