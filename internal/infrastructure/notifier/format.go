package notifier

import (
	"fmt"
	"strings"

	"github.com/TimohUSik/SkidkiSteamBot/internal/domain/entity"
)

// currencySigns maps storefront currency codes to the signs shown to users.
var currencySigns = map[string]string{ //nolint:gochecknoglobals
	"RUB": "₽",
	"UAH": "₴",
	"USD": "$",
	"EUR": "€",
}

// FormatPrice renders an amount in minor units as a whole major-unit price.
func FormatPrice(amount int64, currency string) string {
	sign, ok := currencySigns[currency]
	if !ok {
		sign = currency
	}

	return fmt.Sprintf("%d %s", amount/100, sign)
}

// FormatDeal renders one quote as the HTML deal message.
func FormatDeal(quote entity.PriceQuote) string {
	var sb strings.Builder

	icon := "🎮"
	if quote.Kind == entity.KindDLC {
		icon = "📦"
	}

	sb.WriteString(fmt.Sprintf("%s <b>%s</b>\n", icon, quote.Name))
	sb.WriteString(fmt.Sprintf(
		"💰 <s>%s</s> → <b>%s</b>\n",
		FormatPrice(quote.Price.Initial, quote.Price.Currency),
		FormatPrice(quote.Price.Final, quote.Price.Currency),
	))
	sb.WriteString(fmt.Sprintf("🔥 Скидка: <b>-%d%%</b>\n", quote.Price.DiscountPercent))

	if quote.AltPrice != nil {
		sb.WriteString(fmt.Sprintf(
			"🌍 Регион 2: %s (с наценкой)\n",
			FormatPrice(quote.AltPrice.Final, quote.AltPrice.Currency),
		))
	}

	sb.WriteString(fmt.Sprintf("🔗 <a href=\"%s\">Открыть в магазине</a>", quote.URL))

	return sb.String()
}
