package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"github.com/TimohUSik/SkidkiSteamBot/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, adminID int64) {
	// Команды для всех подписчиков.
	bh.HandleMessage(h.OnStart, th.CommandEqual("start"))
	bh.HandleMessage(h.OnHelp, th.CommandEqual("help"))
	bh.HandleMessage(h.OnCheck, th.CommandEqual("check"))
	bh.HandleMessage(h.OnWatchlist, th.Or(th.CommandEqual("watchlist"), th.CommandEqual("list")))
	bh.HandleMessage(h.OnAdd, th.CommandEqual("add"))
	bh.HandleMessage(h.OnRemove, th.CommandEqual("remove"))
	bh.HandleMessage(h.OnStatus, th.CommandEqual("status"))

	// Админские команды. Группа ловит только свои команды: AdminOnly обрывает
	// цепочку, и попавший в группу чужой апдейт не дойдёт до остальных роутов.
	adminGroup := bh.Group(th.Or(
		th.CommandEqual("scan"),
		th.CommandEqual("setminprice"),
		th.CommandEqual("setmindiscount"),
	))
	adminGroup.Use(middleware.AdminOnly(adminID))

	adminGroup.HandleMessage(h.OnScanNow, th.CommandEqual("scan"))
	adminGroup.HandleMessage(h.OnSetMinPrice, th.CommandEqual("setminprice"))
	adminGroup.HandleMessage(h.OnSetMinDiscount, th.CommandEqual("setmindiscount"))

	// Кнопки под сообщениями со скидками.
	bh.HandleCallbackQuery(h.OnAddCallback, th.CallbackDataPrefix("add:"))
	bh.HandleCallbackQuery(h.OnRemoveCallback, th.CallbackDataPrefix("del:"))

	// Кнопки главного меню — обычный текст без команды.
	bh.HandleMessage(h.OnMenuText, th.AnyMessage())
}
