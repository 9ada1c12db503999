package view

// Тексты бота. Команды с аргументами показывают формат использования.
const (
	StartMessage = "👋 <b>Привет! Я слежу за скидками в Steam.</b>\n\n" +
		"Я проверяю витрину магазина и твой список желаемого, " +
		"и присылаю игры с большой скидкой.\n\n" +
		"Команды: /help"

	HelpMessage = "📖 <b>Команды</b>\n\n" +
		"/check — проверить скидки сейчас\n" +
		"/watchlist (или /list) — мой список отслеживания\n" +
		"/add <code>ID</code> — добавить игру по ID\n" +
		"/remove <code>ID</code> — убрать игру из списка\n" +
		"/status — состояние сканера и пороги\n\n" +
		"ID игры — число из адреса страницы в магазине:\n" +
		"store.steampowered.com/app/<b>620</b>/..."

	CheckInProgress  = "🔍 Проверяю витрину, это займёт немного времени..."
	CheckNoDeals     = "😴 Подходящих скидок сейчас нет. Загляни позже!"
	CheckGamesHeader = "🎮 <b>Игры со скидками:</b>"
	CheckDLCHeader   = "📦 <b>Дополнения со скидками:</b>"
	CheckWatchlist   = "⭐ <b>Скидки из твоего списка:</b>"

	WatchlistEmpty  = "📋 Список пуст. Добавь игру: /add <code>ID</code>"
	WatchlistHeader = "📋 <b>Твой список отслеживания:</b>"

	AddUsage          = "❌ Использование: /add <code>ID</code>"
	AddInvalidID      = "❌ Неверный формат ID"
	AddNotFound       = "❌ Игра с таким ID не найдена в магазине"
	AddAlreadyTracked = "⚠️ <b>%s</b> уже в списке"
	AddSuccess        = "✅ <b>%s</b> добавлена в список"

	RemoveUsage    = "❌ Использование: /remove <code>ID</code>"
	RemoveNotFound = "⚠️ Игры с ID <code>%d</code> нет в списке"
	RemoveSuccess  = "✅ <b>%s</b> убрана из списка"

	ScanQueued        = "🚀 Проверка запущена"
	ScanAlreadyQueued = "⏳ Проверка уже запланирована"

	SetMinPriceUsage      = "❌ Использование: /setminprice <code>рубли</code>"
	SetMinPriceInvalid    = "❌ Цена должна быть неотрицательным числом"
	SetMinPriceSuccess    = "✅ Минимальная цена без скидки: %d"
	SetMinDiscountUsage   = "❌ Использование: /setmindiscount <code>проценты</code>"
	SetMinDiscountInvalid = "❌ Скидка должна быть числом от 0 до 100"
	SetMinDiscountSuccess = "✅ Минимальная скидка: %d%%"

	InternalError = "💥 Что-то пошло не так, попробуй ещё раз"
)

// Кнопки главного меню.
const (
	MenuCheck     = "🔍 Проверить скидки"
	MenuWatchlist = "📋 Мой список"
	MenuHelp      = "ℹ️ Помощь"
)
