package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"github.com/TimohUSik/SkidkiSteamBot/internal/domain/service/watchlist"
	"github.com/TimohUSik/SkidkiSteamBot/internal/transport/bot/view"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/logx"
)

// OnAddCallback обрабатывает кнопку "➕ В список". Формат: "add:<appID>".
func (h *Handler) OnAddCallback(ctx *th.Context, query telego.CallbackQuery) error {
	appID, ok := callbackAppID(query.Data, "add:")
	if !ok || query.Message == nil {
		return h.answerCallback(ctx, query.ID, "")
	}

	chatID := query.Message.GetChat().ID

	res, err := h.watch.Add(ctx, strconv.FormatInt(chatID, 10), appID)
	if err != nil {
		logger(ctx).Error("watchlist add failed", logx.Error(err))

		return h.answerCallback(ctx, query.ID, view.InternalError)
	}

	answer := fmt.Sprintf("✅ %s добавлена", res.Name)

	switch res.Status {
	case watchlist.StatusAlreadyTracked:
		answer = fmt.Sprintf("⚠️ %s уже в списке", res.Name)
	case watchlist.StatusNotFound:
		answer = "❌ Игра не найдена"
	case watchlist.StatusAdded:
	}

	return h.answerCallback(ctx, query.ID, answer)
}

// OnRemoveCallback обрабатывает кнопку "🗑 Удалить". Формат: "del:<appID>".
func (h *Handler) OnRemoveCallback(ctx *th.Context, query telego.CallbackQuery) error {
	appID, ok := callbackAppID(query.Data, "del:")
	if !ok || query.Message == nil {
		return h.answerCallback(ctx, query.ID, "")
	}

	chatID := query.Message.GetChat().ID

	res, err := h.watch.Remove(ctx, strconv.FormatInt(chatID, 10), appID)
	if err != nil {
		logger(ctx).Error("watchlist remove failed", logx.Error(err))

		return h.answerCallback(ctx, query.ID, view.InternalError)
	}

	answer := fmt.Sprintf(view.RemoveNotFound, appID)
	if res.Removed {
		answer = fmt.Sprintf("✅ %s убрана", res.Name)
	}

	return h.answerCallback(ctx, query.ID, answer)
}

func (h *Handler) answerCallback(ctx *th.Context, queryID, text string) error {
	answer := tu.CallbackQuery(queryID)
	if text != "" {
		answer = answer.WithText(text)
	}

	return ctx.Bot().AnswerCallbackQuery(ctx, answer)
}

func callbackAppID(data, prefix string) (int64, bool) {
	raw, ok := strings.CutPrefix(data, prefix)
	if !ok {
		return 0, false
	}

	appID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || appID <= 0 {
		return 0, false
	}

	return appID, true
}
